package service

import (
	"context"
	"encoding/hex"
	"testing"
	"time"

	"github.com/MKhiriev/go-securnote/internal/ca"
	"github.com/MKhiriev/go-securnote/internal/config"
	"github.com/MKhiriev/go-securnote/internal/crypto"
	"github.com/MKhiriev/go-securnote/internal/logger"
	"github.com/MKhiriev/go-securnote/internal/store"
	"github.com/stretchr/testify/require"
)

// testSecurity keeps key sizes and work factors small so the suite stays fast.
func testSecurity() config.Security {
	return config.Security{
		PBKDF2Iterations: 1000,
		RSAKeySize:       1024,
		ChallengeTTL:     5 * time.Minute,
		AuthSaltSize:     32,
		NoteSaltSize:     32,
		ZKSaltSize:       16,
		CAIssuer:         config.DefaultCAIssuer,
	}
}

// testClock is a settable clock shared by the services of one testEnv.
type testClock struct {
	t time.Time
}

func (c *testClock) Now() time.Time { return c.t }

func (c *testClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

type testEnv struct {
	storages  *store.Storages
	authority *ca.Authority
	clock     *testClock

	auth         *authService
	challenges   *challengeService
	certificates *certificateService
	facade       *identityFacade
	notes        *noteService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	cfg := testSecurity()
	log := logger.Nop()
	storages := store.NewMemoryStorages()

	authority, err := ca.New(storages.Revocations, cfg, log)
	require.NoError(t, err)

	clock := &testClock{t: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
	deriver := crypto.NewKeyDeriver(cfg.PBKDF2Iterations)

	auth := NewAuthService(storages.Identities, deriver, cfg, log).(*authService)
	auth.now = clock.Now
	challenges := NewChallengeAuthService(storages.Identities, storages.Challenges, deriver, cfg, log).(*challengeService)
	challenges.now = clock.Now
	certificates := NewCertificateService(storages.Identities, authority, cfg, log).(*certificateService)

	facade := NewIdentityFacade(auth, challenges, certificates, storages.Identities, storages.Activity, log).(*identityFacade)
	facade.activity.now = clock.Now
	notes := NewNoteService(storages.Notes, crypto.NewNoteCipher(), certificates, storages.Activity, log).(*noteService)
	notes.now = clock.Now

	return &testEnv{
		storages:     storages,
		authority:    authority,
		clock:        clock,
		auth:         auth,
		challenges:   challenges,
		certificates: certificates,
		facade:       facade,
		notes:        notes,
	}
}

// register creates username through the facade and fails the test on error.
func (e *testEnv) register(t *testing.T, username, password string) {
	t.Helper()
	_, err := e.facade.CreateIdentity(context.Background(), username, password)
	require.NoError(t, err)
}

func mustDecodeHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	return b
}
