// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-securnote/internal/app"
	"github.com/MKhiriev/go-securnote/internal/config"
	"github.com/MKhiriev/go-securnote/internal/service"
	"github.com/MKhiriev/go-securnote/internal/store"
	"github.com/MKhiriev/go-securnote/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestRegister(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setup      func(m testMocks)
		wantStatus int
		wantBody   string
	}{
		{
			name: "created",
			body: `{"username":"alice","password":"pw"}`,
			setup: func(m testMocks) {
				m.identity.EXPECT().CreateIdentity(gomock.Any(), "alice", "pw").Return(testCertificate("alice"), nil)
			},
			wantStatus: http.StatusCreated,
		},
		{
			name: "duplicate user",
			body: `{"username":"alice","password":"pw"}`,
			setup: func(m testMocks) {
				m.identity.EXPECT().CreateIdentity(gomock.Any(), "alice", "pw").Return(models.Certificate{}, service.ErrUserAlreadyExists)
			},
			wantStatus: http.StatusConflict,
			wantBody:   app.MsgUserAlreadyExists,
		},
		{
			name: "storage down",
			body: `{"username":"alice","password":"pw"}`,
			setup: func(m testMocks) {
				m.identity.EXPECT().CreateIdentity(gomock.Any(), "alice", "pw").
					Return(models.Certificate{}, fmt.Errorf("save: %w", store.ErrStorageUnavailable))
			},
			wantStatus: http.StatusServiceUnavailable,
			wantBody:   app.MsgStorageUnavailable,
		},
		{name: "malformed json", body: `{"username":`, wantStatus: http.StatusBadRequest, wantBody: app.MsgInvalidDataProvided},
		{name: "unknown field", body: `{"username":"alice","password":"pw","admin":true}`, wantStatus: http.StatusBadRequest},
		{name: "invalid username", body: `{"username":"a:b","password":"pw"}`, wantStatus: http.StatusBadRequest},
		{name: "empty username", body: `{"username":"","password":"pw"}`, wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newMockedHandler(t)
			if tt.setup != nil {
				tt.setup(m)
			}

			req := httptest.NewRequest(http.MethodPost, "/api/user/register", strings.NewReader(tt.body))
			rr := httptest.NewRecorder()
			h.register(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code, rr.Body.String())
			if tt.wantBody != "" {
				assert.Contains(t, rr.Body.String(), tt.wantBody)
			}
			if tt.wantStatus == http.StatusCreated {
				record := decodeResponse[models.CertificateRecord](t, rr)
				assert.Equal(t, "alice", record.Username)
				assert.Equal(t, "AQID", record.Signature)
				_, err := models.ParseCertificateRecord(record)
				assert.NoError(t, err)
			}
		})
	}
}

func TestLogin_ReturnsGrant(t *testing.T) {
	h := newTestHandler()

	req := withUser(httptest.NewRequest(http.MethodPost, "/api/user/login", nil), "alice", testNoteKey)
	rr := httptest.NewRecorder()
	h.login(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	resp := decodeResponse[models.LoginResponse](t, rr)
	assert.Equal(t, models.LoginResponse{Username: "alice", AccessGranted: true}, resp)
}

func TestCreateChallenge(t *testing.T) {
	t.Run("issued", func(t *testing.T) {
		h, m := newMockedHandler(t)
		params := models.ChallengeParams{Challenge: strings.Repeat("a", 32), Salt: strings.Repeat("b", 32)}
		m.identity.EXPECT().CreateChallenge(gomock.Any(), "alice").Return(params, nil)

		rr := httptest.NewRecorder()
		h.createChallenge(rr, httptest.NewRequest(http.MethodPost, "/api/user/challenge", jsonBody(t, models.ChallengeRequest{Username: "alice"})))

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, params, decodeResponse[models.ChallengeParams](t, rr))
	})

	t.Run("unknown user gets a decoy that looks like a real challenge", func(t *testing.T) {
		h, m := newMockedHandler(t)
		m.identity.EXPECT().CreateChallenge(gomock.Any(), "ghost").Return(models.ChallengeParams{}, service.ErrUnknownUser).Times(2)
		m.identity.EXPECT().CreateChallenge(gomock.Any(), "phantom").Return(models.ChallengeParams{}, service.ErrUnknownUser)

		request := func(username string) models.ChallengeParams {
			rr := httptest.NewRecorder()
			h.createChallenge(rr, httptest.NewRequest(http.MethodPost, "/api/user/challenge", jsonBody(t, models.ChallengeRequest{Username: username})))
			require.Equal(t, http.StatusOK, rr.Code)
			return decodeResponse[models.ChallengeParams](t, rr)
		}

		first := request("ghost")
		second := request("ghost")
		other := request("phantom")

		assert.Len(t, first.Challenge, 32)
		assert.Len(t, first.Salt, 2*config.DefaultZKSaltSize)
		assert.NotEqual(t, first.Challenge, second.Challenge, "nonce is fresh per request")
		assert.Equal(t, first.Salt, second.Salt, "salt is stable per username")
		assert.NotEqual(t, first.Salt, other.Salt)
	})

	t.Run("storage failure is not masked", func(t *testing.T) {
		h, m := newMockedHandler(t)
		m.identity.EXPECT().CreateChallenge(gomock.Any(), "alice").Return(models.ChallengeParams{}, store.ErrStorageUnavailable)

		rr := httptest.NewRecorder()
		h.createChallenge(rr, httptest.NewRequest(http.MethodPost, "/api/user/challenge", jsonBody(t, models.ChallengeRequest{Username: "alice"})))

		assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
	})

	t.Run("invalid username", func(t *testing.T) {
		h, _ := newMockedHandler(t)

		rr := httptest.NewRecorder()
		h.createChallenge(rr, httptest.NewRequest(http.MethodPost, "/api/user/challenge", jsonBody(t, models.ChallengeRequest{Username: strings.Repeat("x", 65)})))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestVerifyChallenge(t *testing.T) {
	validProof := models.ProofRequest{
		Username:  "alice",
		Challenge: strings.Repeat("c", 32),
		Proof:     strings.Repeat("d", 64),
	}

	tests := []struct {
		name       string
		req        models.ProofRequest
		setup      func(m testMocks)
		wantStatus int
		wantAuth   *bool
		wantBody   string
	}{
		{
			name: "accepted",
			req:  validProof,
			setup: func(m testMocks) {
				m.identity.EXPECT().VerifyProof(gomock.Any(), "alice", validProof.Challenge, validProof.Proof).Return(true, nil)
				m.identity.EXPECT().IsAccessValid(gomock.Any(), "alice").Return(true, nil)
			},
			wantStatus: http.StatusOK,
			wantAuth:   boolPtr(true),
		},
		{
			name: "wrong proof",
			req:  validProof,
			setup: func(m testMocks) {
				m.identity.EXPECT().VerifyProof(gomock.Any(), "alice", validProof.Challenge, validProof.Proof).Return(false, nil)
			},
			wantStatus: http.StatusUnauthorized,
			wantAuth:   boolPtr(false),
		},
		{
			name: "revoked certificate",
			req:  validProof,
			setup: func(m testMocks) {
				m.identity.EXPECT().VerifyProof(gomock.Any(), "alice", validProof.Challenge, validProof.Proof).Return(true, nil)
				m.identity.EXPECT().IsAccessValid(gomock.Any(), "alice").Return(false, nil)
			},
			wantStatus: http.StatusUnauthorized,
			wantAuth:   boolPtr(false),
		},
		{
			name: "expired challenge",
			req:  validProof,
			setup: func(m testMocks) {
				m.identity.EXPECT().VerifyProof(gomock.Any(), "alice", validProof.Challenge, validProof.Proof).Return(false, service.ErrChallengeExpired)
			},
			wantStatus: http.StatusUnauthorized,
			wantBody:   app.MsgChallengeExpired,
		},
		{
			name: "used challenge",
			req:  validProof,
			setup: func(m testMocks) {
				m.identity.EXPECT().VerifyProof(gomock.Any(), "alice", validProof.Challenge, validProof.Proof).Return(false, service.ErrChallengeAlreadyUsed)
			},
			wantStatus: http.StatusUnauthorized,
			wantBody:   app.MsgChallengeAlreadyUsed,
		},
		{
			name:       "proof is not hex",
			req:        models.ProofRequest{Username: "alice", Challenge: validProof.Challenge, Proof: "zz"},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newMockedHandler(t)
			if tt.setup != nil {
				tt.setup(m)
			}

			rr := httptest.NewRecorder()
			h.verifyChallenge(rr, httptest.NewRequest(http.MethodPost, "/api/user/challenge/verify", jsonBody(t, tt.req)))

			require.Equal(t, tt.wantStatus, rr.Code, rr.Body.String())
			if tt.wantAuth != nil {
				assert.Equal(t, *tt.wantAuth, decodeResponse[models.ProofResponse](t, rr).Authenticated)
			}
			if tt.wantBody != "" {
				assert.Contains(t, rr.Body.String(), tt.wantBody)
			}
		})
	}
}

func TestCertificate(t *testing.T) {
	t.Run("own certificate", func(t *testing.T) {
		h, m := newMockedHandler(t)
		m.identity.EXPECT().Certificate(gomock.Any(), "alice").Return(testCertificate("alice"), nil)

		rr := httptest.NewRecorder()
		h.certificate(rr, withUser(httptest.NewRequest(http.MethodGet, "/api/user/certificate", nil), "alice", testNoteKey))

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "00112233445566778899aabbccddeeff", decodeResponse[models.CertificateRecord](t, rr).CertID)
	})

	t.Run("no certificate", func(t *testing.T) {
		h, m := newMockedHandler(t)
		m.identity.EXPECT().Certificate(gomock.Any(), "alice").Return(models.Certificate{}, service.ErrCertificateNotFound)

		rr := httptest.NewRecorder()
		h.certificate(rr, withUser(httptest.NewRequest(http.MethodGet, "/api/user/certificate", nil), "alice", testNoteKey))

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}
