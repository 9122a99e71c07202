// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"
	"testing"

	"github.com/MKhiriev/go-securnote/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	validChallenge = "00112233445566778899aabbccddeeff"
	validProof     = "0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef"
)

func TestValidateUsername(t *testing.T) {
	tests := []struct {
		username string
		wantErr  bool
	}{
		{username: "alice"},
		{username: "u1"},
		{username: "a"},
		{username: "alice smith"},
		{username: "alice-smith"},
		{username: "алиса"},
		{username: strings.Repeat("a", 64)},
		{username: strings.Repeat("a", 65), wantErr: true},
		{username: "", wantErr: true},
		{username: "alice:smith", wantErr: true},
		{username: "alice\nsmith", wantErr: true},
		{username: "\xff\xfe", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.username, func(t *testing.T) {
			err := ValidateUsername(tt.username)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidUsername)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestIdentityValidator_Dispatch(t *testing.T) {
	v := NewIdentityValidator()
	ctx := context.Background()

	creds := models.Credentials{Username: "alice", Password: "secret"}
	assert.NoError(t, v.Validate(ctx, creds))
	assert.NoError(t, v.Validate(ctx, &creds))

	req := models.ChallengeRequest{Username: "alice"}
	assert.NoError(t, v.Validate(ctx, req))
	assert.NoError(t, v.Validate(ctx, &req))

	proof := models.ProofRequest{Username: "alice", Challenge: validChallenge, Proof: validProof}
	assert.NoError(t, v.Validate(ctx, proof))
	assert.NoError(t, v.Validate(ctx, &proof))

	revoke := models.RevokeRequest{Reason: "key compromise"}
	assert.NoError(t, v.Validate(ctx, revoke))
	assert.NoError(t, v.Validate(ctx, &revoke))

	assert.ErrorIs(t, v.Validate(ctx, "alice"), ErrUnsupportedType)
	assert.ErrorIs(t, v.Validate(ctx, models.NoteRequest{}), ErrUnsupportedType)
}

func TestIdentityValidator_Credentials(t *testing.T) {
	v := NewIdentityValidator()

	tests := []struct {
		name    string
		creds   models.Credentials
		fields  []string
		wantErr error
	}{
		{name: "valid", creds: models.Credentials{Username: "alice", Password: "pw"}},
		{name: "empty password is legal", creds: models.Credentials{Username: "alice"}},
		{name: "bad username", creds: models.Credentials{Username: "a:b", Password: "pw"}, wantErr: ErrInvalidUsername},
		{name: "long password", creds: models.Credentials{Username: "alice", Password: strings.Repeat("p", 1025)}, wantErr: ErrPasswordTooLong},
		{name: "only password checked", creds: models.Credentials{Username: "!"}, fields: []string{FieldPassword}},
		{name: "unknown field", creds: models.Credentials{Username: "alice"}, fields: []string{"email"}, wantErr: ErrUnknownField},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(context.Background(), tt.creds, tt.fields...)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestIdentityValidator_Proof(t *testing.T) {
	v := NewIdentityValidator()

	tests := []struct {
		name    string
		req     models.ProofRequest
		wantErr error
	}{
		{name: "short challenge", req: models.ProofRequest{Username: "alice", Challenge: "abcd", Proof: validProof}, wantErr: ErrInvalidChallenge},
		{name: "non-hex challenge", req: models.ProofRequest{Username: "alice", Challenge: strings.Repeat("z", 32), Proof: validProof}, wantErr: ErrInvalidChallenge},
		{name: "short proof", req: models.ProofRequest{Username: "alice", Challenge: validChallenge, Proof: "00"}, wantErr: ErrInvalidProof},
		{name: "bad username", req: models.ProofRequest{Username: "", Challenge: validChallenge, Proof: validProof}, wantErr: ErrInvalidUsername},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, v.Validate(context.Background(), tt.req), tt.wantErr)
		})
	}
}

func TestIdentityValidator_Revoke(t *testing.T) {
	v := NewIdentityValidator()

	assert.NoError(t, v.Validate(context.Background(), models.RevokeRequest{}))
	assert.ErrorIs(t, v.Validate(context.Background(), models.RevokeRequest{Reason: strings.Repeat("r", 513)}), ErrReasonTooLong)
	assert.ErrorIs(t, v.Validate(context.Background(), models.RevokeRequest{}, FieldUsername), ErrUnknownField)
}
