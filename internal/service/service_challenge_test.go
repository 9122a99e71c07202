package service

import (
	"context"
	"encoding/hex"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-securnote/internal/crypto"
	"github.com/MKhiriev/go-securnote/internal/logger"
	"github.com/MKhiriev/go-securnote/internal/mock"
	"github.com/MKhiriev/go-securnote/internal/store"
	"github.com/MKhiriev/go-securnote/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestChallengeService_CreateChallenge(t *testing.T) {
	env := newTestEnv(t)
	env.register(t, "alice", "pw1")
	ctx := context.Background()

	params, err := env.challenges.CreateChallenge(ctx, "alice")
	require.NoError(t, err)
	assert.Len(t, params.Challenge, 32)

	identity, err := env.storages.Identities.Get(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, hex.EncodeToString(identity.ZKVerifier.Salt), params.Salt)

	stored, err := env.storages.Challenges.FindByNonce(ctx, "alice", params.Challenge)
	require.NoError(t, err)
	assert.False(t, stored.Used)
	assert.Equal(t, env.clock.Now().Add(5*time.Minute), stored.ExpiresAt)

	other, err := env.challenges.CreateChallenge(ctx, "alice")
	require.NoError(t, err)
	assert.NotEqual(t, params.Challenge, other.Challenge)

	_, err = env.challenges.CreateChallenge(ctx, "nobody")
	assert.ErrorIs(t, err, ErrUnknownUser)
}

func TestChallengeService_ComputeProof(t *testing.T) {
	env := newTestEnv(t)
	env.register(t, "alice", "pw1")
	ctx := context.Background()

	identity, err := env.storages.Identities.Get(ctx, "alice")
	require.NoError(t, err)

	proof, err := env.challenges.ComputeProof(ctx, "alice", "pw1", "c0ffee")
	require.NoError(t, err)
	assert.Equal(t, crypto.ComputeProof(identity.ZKVerifier.Hash, "c0ffee"), proof)

	_, err = env.challenges.ComputeProof(ctx, "alice", "wrong", "c0ffee")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = env.challenges.ComputeProof(ctx, "nobody", "pw1", "c0ffee")
	assert.ErrorIs(t, err, ErrUnknownUser)
}

func TestChallengeService_VerifyProof_SingleUse(t *testing.T) {
	env := newTestEnv(t)
	env.register(t, "alice", "pw1")
	ctx := context.Background()

	params, err := env.challenges.CreateChallenge(ctx, "alice")
	require.NoError(t, err)
	proof, err := env.challenges.ComputeProof(ctx, "alice", "pw1", params.Challenge)
	require.NoError(t, err)

	ok, err := env.challenges.VerifyProof(ctx, "alice", params.Challenge, proof)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = env.challenges.VerifyProof(ctx, "alice", params.Challenge, proof)
	assert.ErrorIs(t, err, ErrChallengeAlreadyUsed)
	assert.False(t, ok)
}

func TestChallengeService_VerifyProof_WrongProofDoesNotConsume(t *testing.T) {
	env := newTestEnv(t)
	env.register(t, "alice", "pw1")
	ctx := context.Background()

	params, err := env.challenges.CreateChallenge(ctx, "alice")
	require.NoError(t, err)

	ok, err := env.challenges.VerifyProof(ctx, "alice", params.Challenge, crypto.ComputeProof("guess", params.Challenge))
	require.NoError(t, err)
	assert.False(t, ok)

	proof, err := env.challenges.ComputeProof(ctx, "alice", "pw1", params.Challenge)
	require.NoError(t, err)
	ok, err = env.challenges.VerifyProof(ctx, "alice", params.Challenge, proof)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestChallengeService_VerifyProof_Expiry(t *testing.T) {
	env := newTestEnv(t)
	env.register(t, "alice", "pw1")
	ctx := context.Background()

	params, err := env.challenges.CreateChallenge(ctx, "alice")
	require.NoError(t, err)
	proof, err := env.challenges.ComputeProof(ctx, "alice", "pw1", params.Challenge)
	require.NoError(t, err)

	env.clock.Advance(5*time.Minute + time.Second)

	ok, err := env.challenges.VerifyProof(ctx, "alice", params.Challenge, proof)
	assert.ErrorIs(t, err, ErrChallengeExpired)
	assert.False(t, ok)
}

func TestChallengeService_VerifyProof_AtDeadline(t *testing.T) {
	env := newTestEnv(t)
	env.register(t, "alice", "pw1")
	ctx := context.Background()

	params, err := env.challenges.CreateChallenge(ctx, "alice")
	require.NoError(t, err)
	proof, err := env.challenges.ComputeProof(ctx, "alice", "pw1", params.Challenge)
	require.NoError(t, err)

	env.clock.Advance(5 * time.Minute)

	ok, err := env.challenges.VerifyProof(ctx, "alice", params.Challenge, proof)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestChallengeService_VerifyProof_Unknown(t *testing.T) {
	env := newTestEnv(t)
	env.register(t, "alice", "pw1")
	env.register(t, "bob_1", "pw2")
	ctx := context.Background()

	ok, err := env.challenges.VerifyProof(ctx, "alice", "00000000000000000000000000000000", "proof")
	require.NoError(t, err)
	assert.False(t, ok)

	params, err := env.challenges.CreateChallenge(ctx, "alice")
	require.NoError(t, err)
	proof, err := env.challenges.ComputeProof(ctx, "bob_1", "pw2", params.Challenge)
	require.NoError(t, err)

	ok, err = env.challenges.VerifyProof(ctx, "bob_1", params.Challenge, proof)
	require.NoError(t, err)
	assert.False(t, ok, "a challenge is bound to the user it was issued for")
}

func TestChallengeService_VerifyProof_ConcurrentSingleWinner(t *testing.T) {
	env := newTestEnv(t)
	env.register(t, "alice", "pw1")
	ctx := context.Background()

	params, err := env.challenges.CreateChallenge(ctx, "alice")
	require.NoError(t, err)
	proof, err := env.challenges.ComputeProof(ctx, "alice", "pw1", params.Challenge)
	require.NoError(t, err)

	var (
		wg        sync.WaitGroup
		successes atomic.Int32
	)
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if ok, err := env.challenges.VerifyProof(ctx, "alice", params.Challenge, proof); ok && err == nil {
				successes.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), successes.Load())
}

func TestChallengeService_VerifyProof_LostRace(t *testing.T) {
	ctrl := gomock.NewController(t)
	identities := mock.NewMockIdentityRepository(ctrl)
	challenges := mock.NewMockChallengeStore(ctrl)

	now := time.Now()
	zkHash := crypto.NewKeyDeriver(1000).DeriveVerifier([]byte("zk-salt"), "pw")
	challenge := models.Challenge{ChallengeID: "id-1", Username: "alice", ChallengeData: "c0ffee", ExpiresAt: now.Add(time.Minute)}

	challenges.EXPECT().FindByNonce(gomock.Any(), "alice", "c0ffee").Return(challenge, nil)
	identities.EXPECT().Get(gomock.Any(), "alice").Return(models.Identity{
		Username:   "alice",
		ZKVerifier: models.Verifier{Salt: []byte("zk-salt"), Hash: zkHash},
	}, nil)
	challenges.EXPECT().MarkUsed(gomock.Any(), "id-1").Return(false, nil)

	svc := NewChallengeAuthService(identities, challenges, crypto.NewKeyDeriver(1000), testSecurity(), logger.Nop())

	ok, err := svc.VerifyProof(context.Background(), "alice", "c0ffee", crypto.ComputeProof(zkHash, "c0ffee"))
	assert.ErrorIs(t, err, ErrChallengeAlreadyUsed)
	assert.False(t, ok)
}

func TestChallengeService_VerifyProof_StorageFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	challenges := mock.NewMockChallengeStore(ctrl)
	challenges.EXPECT().FindByNonce(gomock.Any(), "alice", "c0ffee").Return(models.Challenge{}, store.ErrStorageUnavailable)

	svc := NewChallengeAuthService(mock.NewMockIdentityRepository(ctrl), challenges, crypto.NewKeyDeriver(1000), testSecurity(), logger.Nop())

	_, err := svc.VerifyProof(context.Background(), "alice", "c0ffee", "proof")
	assert.ErrorIs(t, err, store.ErrStorageUnavailable)
}

func TestChallengeService_Authenticate(t *testing.T) {
	env := newTestEnv(t)
	env.register(t, "alice", "pw1")
	ctx := context.Background()

	ok, err := env.challenges.Authenticate(ctx, "alice", "pw1")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = env.challenges.Authenticate(ctx, "alice", "wrong")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = env.challenges.Authenticate(ctx, "nobody", "pw1")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestChallengeService_Authenticate_StorageFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	identities := mock.NewMockIdentityRepository(ctrl)
	identities.EXPECT().Get(gomock.Any(), "alice").Return(models.Identity{}, store.ErrStorageUnavailable)

	svc := NewChallengeAuthService(identities, mock.NewMockChallengeStore(ctrl), crypto.NewKeyDeriver(1000), testSecurity(), logger.Nop())

	ok, err := svc.Authenticate(context.Background(), "alice", "pw")
	assert.ErrorIs(t, err, store.ErrStorageUnavailable)
	assert.False(t, ok)
}

func TestChallengeService_SweepExpired(t *testing.T) {
	env := newTestEnv(t)
	env.register(t, "alice", "pw1")
	ctx := context.Background()

	old, err := env.challenges.CreateChallenge(ctx, "alice")
	require.NoError(t, err)

	env.clock.Advance(4 * time.Minute)
	fresh, err := env.challenges.CreateChallenge(ctx, "alice")
	require.NoError(t, err)

	env.clock.Advance(2 * time.Minute)
	deleted, err := env.challenges.SweepExpired(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, deleted)

	_, err = env.storages.Challenges.FindByNonce(ctx, "alice", old.Challenge)
	assert.ErrorIs(t, err, store.ErrChallengeNotFound)
	_, err = env.storages.Challenges.FindByNonce(ctx, "alice", fresh.Challenge)
	assert.NoError(t, err)
}

func TestChallengeService_SweepRemovesUsed(t *testing.T) {
	env := newTestEnv(t)
	env.register(t, "alice", "pw1")
	ctx := context.Background()

	ok, err := env.challenges.Authenticate(ctx, "alice", "pw1")
	require.NoError(t, err)
	require.True(t, ok)

	env.clock.Advance(6 * time.Minute)
	deleted, err := env.challenges.SweepExpired(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, deleted)
}

func TestChallengeService_ZeroTTL(t *testing.T) {
	cfg := testSecurity()
	cfg.ChallengeTTL = 0

	env := newTestEnv(t)
	env.register(t, "u1", "pw")
	svc := NewChallengeAuthService(env.storages.Identities, env.storages.Challenges, crypto.NewKeyDeriver(cfg.PBKDF2Iterations), cfg, logger.Nop()).(*challengeService)
	svc.now = env.clock.Now
	ctx := context.Background()

	params, err := svc.CreateChallenge(ctx, "u1")
	require.NoError(t, err)
	proof, err := svc.ComputeProof(ctx, "u1", "pw", params.Challenge)
	require.NoError(t, err)

	env.clock.Advance(time.Second)

	ok, err := svc.VerifyProof(ctx, "u1", params.Challenge, proof)
	assert.ErrorIs(t, err, ErrChallengeExpired)
	assert.False(t, ok)
}

func TestNewChallengeAuthService_NegativeTTL(t *testing.T) {
	cfg := testSecurity()
	cfg.ChallengeTTL = -time.Minute

	svc := NewChallengeAuthService(nil, nil, nil, cfg, logger.Nop()).(*challengeService)
	assert.Equal(t, time.Duration(0), svc.ttl)
}

func TestChallengeService_Authenticate_SaveFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	identities := mock.NewMockIdentityRepository(ctrl)
	challenges := mock.NewMockChallengeStore(ctrl)

	identities.EXPECT().Get(gomock.Any(), "alice").Return(models.Identity{
		Username:   "alice",
		ZKVerifier: models.Verifier{Salt: []byte("zk-salt"), Hash: "00"},
	}, nil)
	saveErr := errors.New("disk quota exceeded")
	challenges.EXPECT().Save(gomock.Any(), gomock.Any()).Return(saveErr)

	svc := NewChallengeAuthService(identities, challenges, crypto.NewKeyDeriver(1000), testSecurity(), logger.Nop())

	ok, err := svc.Authenticate(context.Background(), "alice", "pw")
	assert.ErrorIs(t, err, saveErr)
	assert.False(t, ok)
}
