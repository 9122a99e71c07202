package service

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-securnote/internal/config"
	"github.com/MKhiriev/go-securnote/internal/crypto"
	"github.com/MKhiriev/go-securnote/internal/logger"
	"github.com/MKhiriev/go-securnote/internal/store"
	"github.com/MKhiriev/go-securnote/models"
)

// challengeNonceSize is the byte length of challenge ids and nonces.
const challengeNonceSize = 16

// challengeService implements ChallengeAuthService.
//
// The protocol is a salted-hash challenge-response, not a zero-knowledge
// proof: whoever holds zk_verifier.hash can answer any challenge.
type challengeService struct {
	identities store.IdentityRepository
	challenges store.ChallengeStore
	deriver    crypto.KeyDeriver
	ttl        time.Duration

	now    func() time.Time
	logger *logger.Logger
}

func NewChallengeAuthService(identities store.IdentityRepository, challenges store.ChallengeStore, deriver crypto.KeyDeriver, cfg config.Security, log *logger.Logger) ChallengeAuthService {
	// A zero TTL is honoured: such challenges expire as soon as any time passes.
	ttl := max(cfg.ChallengeTTL, 0)
	if cfg.ChallengeTTL < 0 {
		log.Warn().Dur("challenge_ttl", cfg.ChallengeTTL).Msg("negative challenge ttl, using zero")
	}
	log.Debug().Dur("challenge_ttl", ttl).Msg("challenge service created")

	return &challengeService{
		identities: identities,
		challenges: challenges,
		deriver:    deriver,
		ttl:        ttl,
		now:        time.Now,
		logger:     log,
	}
}

// CreateChallenge stores a fresh unused challenge for username and returns
// its nonce with the public ZK salt the prover needs.
func (c *challengeService) CreateChallenge(ctx context.Context, username string) (models.ChallengeParams, error) {
	identity, err := c.identity(ctx, username)
	if err != nil {
		return models.ChallengeParams{}, err
	}

	challengeID, err := crypto.RandomHex(challengeNonceSize)
	if err != nil {
		return models.ChallengeParams{}, fmt.Errorf("error generating challenge id: %w", err)
	}
	challengeData, err := crypto.RandomHex(challengeNonceSize)
	if err != nil {
		return models.ChallengeParams{}, fmt.Errorf("error generating challenge: %w", err)
	}

	now := c.now().UTC()
	challenge := models.Challenge{
		ChallengeID:   challengeID,
		Username:      username,
		ChallengeData: challengeData,
		CreatedAt:     now,
		ExpiresAt:     now.Add(c.ttl),
	}
	if err = c.challenges.Save(ctx, challenge); err != nil {
		logger.FromContext(ctx).Err(err).Str("username", username).Msg("error saving challenge")
		return models.ChallengeParams{}, fmt.Errorf("error saving challenge: %w", err)
	}

	return models.ChallengeParams{
		Challenge: challengeData,
		Salt:      hex.EncodeToString(identity.ZKVerifier.Salt),
	}, nil
}

// ComputeProof recomputes the ZK verifier from password and answers
// challengeData with it. Challenge records are not touched.
func (c *challengeService) ComputeProof(ctx context.Context, username, password, challengeData string) (string, error) {
	identity, err := c.identity(ctx, username)
	if err != nil {
		return "", err
	}

	if !c.deriver.VerifyPassword(identity.ZKVerifier.Salt, password, identity.ZKVerifier.Hash) {
		return "", ErrInvalidCredentials
	}

	return crypto.ComputeProof(identity.ZKVerifier.Hash, challengeData), nil
}

// VerifyProof checks proof against the stored challenge.
//
// An unknown challenge yields false. A consumed one yields
// ErrChallengeAlreadyUsed and one past its deadline ErrChallengeExpired.
// A matching proof consumes the challenge atomically; a wrong proof leaves
// it answerable until it expires.
func (c *challengeService) VerifyProof(ctx context.Context, username, challengeData, proof string) (bool, error) {
	log := logger.FromContext(ctx)

	challenge, err := c.challenges.FindByNonce(ctx, username, challengeData)
	if errors.Is(err, store.ErrChallengeNotFound) {
		return false, nil
	}
	if err != nil {
		log.Err(err).Str("username", username).Msg("challenge lookup failed")
		return false, fmt.Errorf("challenge lookup failed: %w", err)
	}

	if challenge.Used {
		return false, ErrChallengeAlreadyUsed
	}
	if challenge.Expired(c.now()) {
		return false, ErrChallengeExpired
	}

	identity, err := c.identity(ctx, username)
	if errors.Is(err, ErrUnknownUser) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	expected := crypto.ComputeProof(identity.ZKVerifier.Hash, challengeData)
	if !crypto.EqualHex(expected, proof) {
		log.Info().Str("username", username).Msg("challenge proof mismatch")
		return false, nil
	}

	marked, err := c.challenges.MarkUsed(ctx, challenge.ChallengeID)
	if err != nil {
		log.Err(err).Str("challenge_id", challenge.ChallengeID).Msg("error consuming challenge")
		return false, fmt.Errorf("error consuming challenge: %w", err)
	}
	if !marked {
		return false, ErrChallengeAlreadyUsed
	}

	return true, nil
}

// Authenticate runs create, prove and verify in one go. Protocol
// rejections are reported as false; storage and entropy failures surface as
// errors.
func (c *challengeService) Authenticate(ctx context.Context, username, password string) (bool, error) {
	params, err := c.CreateChallenge(ctx, username)
	if err != nil {
		return false, rejectionOrFailure(ctx, username, err)
	}

	proof, err := c.ComputeProof(ctx, username, password, params.Challenge)
	if err != nil {
		return false, rejectionOrFailure(ctx, username, err)
	}

	ok, err := c.VerifyProof(ctx, username, params.Challenge, proof)
	if err != nil {
		return false, rejectionOrFailure(ctx, username, err)
	}
	return ok, nil
}

// SweepExpired removes every challenge created more than one TTL ago.
func (c *challengeService) SweepExpired(ctx context.Context) (int, error) {
	cutoff := c.now().Add(-c.ttl)

	deleted, err := c.challenges.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("error sweeping challenges: %w", err)
	}

	if deleted > 0 {
		logger.FromContext(ctx).Info().Int("deleted", deleted).Time("cutoff", cutoff).Msg("expired challenges swept")
	}
	return deleted, nil
}

func (c *challengeService) identity(ctx context.Context, username string) (models.Identity, error) {
	identity, err := c.identities.Get(ctx, username)
	if errors.Is(err, store.ErrIdentityNotFound) {
		return models.Identity{}, ErrUnknownUser
	}
	if err != nil {
		return models.Identity{}, fmt.Errorf("identity lookup failed: %w", err)
	}
	return identity, nil
}

// rejectionOrFailure swallows the protocol outcomes that mean "not
// authenticated" and returns every other error unchanged.
func rejectionOrFailure(ctx context.Context, username string, err error) error {
	log := logger.FromContext(ctx)

	switch {
	case errors.Is(err, ErrUnknownUser), errors.Is(err, ErrInvalidCredentials),
		errors.Is(err, ErrChallengeExpired), errors.Is(err, ErrChallengeAlreadyUsed):
		log.Debug().Err(err).Str("username", username).Msg("challenge authentication rejected")
		return nil
	default:
		log.Err(err).Str("username", username).Msg("challenge authentication failed")
		return err
	}
}
