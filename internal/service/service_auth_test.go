// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-securnote/internal/crypto"
	"github.com/MKhiriev/go-securnote/internal/logger"
	"github.com/MKhiriev/go-securnote/internal/mock"
	"github.com/MKhiriev/go-securnote/internal/store"
	"github.com/MKhiriev/go-securnote/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestAuthService_CreateIdentity(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	identity, err := env.auth.CreateIdentity(ctx, "alice", "pw1")
	require.NoError(t, err)

	assert.Equal(t, "alice", identity.Username)
	assert.Len(t, identity.AuthVerifier.Salt, 32)
	assert.Len(t, identity.NoteSalt, 32)
	assert.Len(t, identity.ZKVerifier.Salt, 16)
	assert.Len(t, identity.AuthVerifier.Hash, 64)
	assert.Len(t, identity.ZKVerifier.Hash, 64)
	assert.NotEqual(t, identity.AuthVerifier.Hash, identity.ZKVerifier.Hash)
	assert.True(t, identity.IsActive)
	assert.Nil(t, identity.Certificate)
	assert.Equal(t, env.clock.Now(), identity.CreatedAt)

	exists, err := env.storages.Identities.Exists(ctx, "alice")
	require.NoError(t, err)
	assert.False(t, exists, "CreateIdentity must not persist")
}

func TestAuthService_CreateIdentity_FreshSalts(t *testing.T) {
	env := newTestEnv(t)

	a, err := env.auth.CreateIdentity(context.Background(), "alice", "same")
	require.NoError(t, err)
	b, err := env.auth.CreateIdentity(context.Background(), "bob_1", "same")
	require.NoError(t, err)

	assert.NotEqual(t, a.AuthVerifier.Salt, b.AuthVerifier.Salt)
	assert.NotEqual(t, a.AuthVerifier.Hash, b.AuthVerifier.Hash)
	assert.NotEqual(t, a.NoteSalt, b.NoteSalt)
}

func TestAuthService_CreateIdentity_Errors(t *testing.T) {
	env := newTestEnv(t)
	env.register(t, "alice", "pw1")

	_, err := env.auth.CreateIdentity(context.Background(), "alice", "other")
	assert.ErrorIs(t, err, ErrUserAlreadyExists)
}

func TestAuthService_CreateIdentity_AnyUsername(t *testing.T) {
	env := newTestEnv(t)

	for _, username := range []string{"u1", "x", "alice smith", "алиса"} {
		identity, err := env.auth.CreateIdentity(context.Background(), username, "pw")
		require.NoError(t, err, username)
		assert.Equal(t, username, identity.Username)
	}
}

func TestAuthService_CreateIdentity_StorageFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	identities := mock.NewMockIdentityRepository(ctrl)
	identities.EXPECT().Exists(gomock.Any(), "alice").Return(false, store.ErrStorageUnavailable)

	svc := NewAuthService(identities, crypto.NewKeyDeriver(1000), testSecurity(), logger.Nop())

	_, err := svc.CreateIdentity(context.Background(), "alice", "pw")
	assert.ErrorIs(t, err, store.ErrStorageUnavailable)
}

func TestAuthService_CreateIdentity_SaltFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	identities := mock.NewMockIdentityRepository(ctrl)
	deriver := mock.NewMockKeyDeriver(ctrl)

	identities.EXPECT().Exists(gomock.Any(), "alice").Return(false, nil)
	deriver.EXPECT().GenerateSalt(32).Return(nil, errors.New("entropy exhausted"))

	svc := NewAuthService(identities, deriver, testSecurity(), logger.Nop())

	_, err := svc.CreateIdentity(context.Background(), "alice", "pw")
	assert.ErrorContains(t, err, "entropy exhausted")
}

func TestAuthService_Authenticate(t *testing.T) {
	env := newTestEnv(t)
	env.register(t, "alice", "pw1")
	ctx := context.Background()

	key, err := env.auth.Authenticate(ctx, "alice", "pw1")
	require.NoError(t, err)
	assert.Len(t, key, 32)

	again, err := env.auth.Authenticate(ctx, "alice", "pw1")
	require.NoError(t, err)
	assert.Equal(t, key, again, "note key is deterministic")

	_, err = env.auth.Authenticate(ctx, "alice", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = env.auth.Authenticate(ctx, "nobody", "pw1")
	assert.ErrorIs(t, err, ErrUnknownUser)
}

func TestAuthService_Authenticate_EmptyPassword(t *testing.T) {
	env := newTestEnv(t)
	env.register(t, "alice", "")

	key, err := env.auth.Authenticate(context.Background(), "alice", "")
	require.NoError(t, err)
	assert.Len(t, key, 32)
}

func TestAuthService_Authenticate_UsesStoredSalts(t *testing.T) {
	ctrl := gomock.NewController(t)
	identities := mock.NewMockIdentityRepository(ctrl)
	deriver := mock.NewMockKeyDeriver(ctrl)

	identity := models.Identity{
		Username:     "alice",
		AuthVerifier: models.Verifier{Salt: []byte("auth-salt"), Hash: "stored-hash"},
		NoteSalt:     []byte("note-salt"),
	}
	key := []byte("0123456789abcdef0123456789abcdef")

	gomock.InOrder(
		identities.EXPECT().Get(gomock.Any(), "alice").Return(identity, nil),
		deriver.EXPECT().VerifyPassword([]byte("auth-salt"), "pw", "stored-hash").Return(true),
		deriver.EXPECT().DeriveNoteKey("pw", []byte("note-salt")).Return(key),
	)

	svc := NewAuthService(identities, deriver, testSecurity(), logger.Nop())

	got, err := svc.Authenticate(context.Background(), "alice", "pw")
	require.NoError(t, err)
	assert.Equal(t, key, got)
}

func TestAuthService_GetIdentity_StorageFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	identities := mock.NewMockIdentityRepository(ctrl)
	identities.EXPECT().Get(gomock.Any(), "alice").Return(models.Identity{}, store.ErrStorageUnavailable)

	svc := NewAuthService(identities, crypto.NewKeyDeriver(1000), testSecurity(), logger.Nop())

	_, err := svc.GetIdentity(context.Background(), "alice")
	assert.ErrorIs(t, err, store.ErrStorageUnavailable)
	assert.NotErrorIs(t, err, ErrUnknownUser)
}
