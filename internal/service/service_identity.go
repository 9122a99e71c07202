// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-securnote/internal/logger"
	"github.com/MKhiriev/go-securnote/internal/store"
	"github.com/MKhiriev/go-securnote/models"
)

// identityFacade composes the identity services behind IdentityFacade and
// writes the activity log.
type identityFacade struct {
	auth         AuthService
	challenges   ChallengeAuthService
	certificates CertificateService

	identities store.IdentityRepository
	activityDB store.ActivityRepository
	activity   *activityRecorder

	logger *logger.Logger
}

func NewIdentityFacade(
	auth AuthService,
	challenges ChallengeAuthService,
	certificates CertificateService,
	identities store.IdentityRepository,
	activity store.ActivityRepository,
	log *logger.Logger,
) IdentityFacade {
	return &identityFacade{
		auth:         auth,
		challenges:   challenges,
		certificates: certificates,
		identities:   identities,
		activityDB:   activity,
		activity:     newActivityRecorder(activity),
		logger:       log,
	}
}

// CreateIdentity builds the identity, issues its certificate and saves
// both in a single write. A registration that loses the race for the
// username leaves the issued certificate unused.
func (f *identityFacade) CreateIdentity(ctx context.Context, username, password string) (models.Certificate, error) {
	cert, err := f.register(ctx, username, password)
	if err != nil {
		f.activity.record(ctx, username, models.ActionRegister, false, err.Error())
		return models.Certificate{}, err
	}

	f.activity.record(ctx, username, models.ActionRegister, true, cert.CertID)
	f.activity.record(ctx, username, models.ActionCertIssue, true, cert.CertID)
	return cert, nil
}

func (f *identityFacade) register(ctx context.Context, username, password string) (models.Certificate, error) {
	identity, err := f.auth.CreateIdentity(ctx, username, password)
	if err != nil {
		return models.Certificate{}, err
	}

	identity, err = f.certificates.IssueForIdentity(ctx, identity)
	if err != nil {
		return models.Certificate{}, err
	}

	if err = f.identities.Save(ctx, identity); err != nil {
		if errors.Is(err, store.ErrIdentityExists) {
			return models.Certificate{}, ErrUserAlreadyExists
		}
		logger.FromContext(ctx).Err(err).Str("username", username).Msg("error saving identity")
		return models.Certificate{}, fmt.Errorf("error saving identity: %w", err)
	}

	logger.FromContext(ctx).Info().
		Str("username", username).
		Str("cert_id", identity.Certificate.CertID).
		Msg("identity registered")
	return *identity.Certificate, nil
}

func (f *identityFacade) Authenticate(ctx context.Context, username, password string) ([]byte, error) {
	key, err := f.auth.Authenticate(ctx, username, password)
	f.activity.record(ctx, username, models.ActionLogin, err == nil, errDetails(err))
	return key, err
}

func (f *identityFacade) AuthenticateChallenge(ctx context.Context, username, password string) (bool, error) {
	ok, err := f.challenges.Authenticate(ctx, username, password)
	f.activity.record(ctx, username, models.ActionChallengeLogin, ok, errDetails(err))
	return ok, err
}

func (f *identityFacade) IsAccessValid(ctx context.Context, username string) (bool, error) {
	return f.certificates.IsAccessValid(ctx, username)
}

func (f *identityFacade) Revoke(ctx context.Context, username, reason string) (bool, error) {
	revoked, err := f.certificates.Revoke(ctx, username, reason)
	details := reason
	if err != nil {
		details = err.Error()
	}
	f.activity.record(ctx, username, models.ActionCertRevoke, revoked, details)
	return revoked, err
}

// Login authenticates the password and then checks the certificate. The
// key is only returned when both pass.
func (f *identityFacade) Login(ctx context.Context, username, password string) ([]byte, error) {
	key, err := f.auth.Authenticate(ctx, username, password)
	if err != nil {
		f.activity.record(ctx, username, models.ActionLogin, false, err.Error())
		return nil, err
	}

	if err = f.requireAccess(ctx, username); err != nil {
		f.activity.record(ctx, username, models.ActionLogin, false, err.Error())
		return nil, err
	}

	f.activity.record(ctx, username, models.ActionLogin, true, "")
	return key, nil
}

func (f *identityFacade) ChallengeLogin(ctx context.Context, username, password string) ([]byte, error) {
	ok, err := f.challenges.Authenticate(ctx, username, password)
	if err != nil {
		f.activity.record(ctx, username, models.ActionChallengeLogin, false, err.Error())
		return nil, err
	}
	if !ok {
		f.activity.record(ctx, username, models.ActionChallengeLogin, false, ErrInvalidCredentials.Error())
		return nil, ErrInvalidCredentials
	}

	if err = f.requireAccess(ctx, username); err != nil {
		f.activity.record(ctx, username, models.ActionChallengeLogin, false, err.Error())
		return nil, err
	}

	key, err := f.auth.Authenticate(ctx, username, password)
	f.activity.record(ctx, username, models.ActionChallengeLogin, err == nil, errDetails(err))
	return key, err
}

func (f *identityFacade) CreateChallenge(ctx context.Context, username string) (models.ChallengeParams, error) {
	params, err := f.challenges.CreateChallenge(ctx, username)
	f.activity.record(ctx, username, models.ActionChallengeCreate, err == nil, errDetails(err))
	return params, err
}

func (f *identityFacade) VerifyProof(ctx context.Context, username, challengeData, proof string) (bool, error) {
	ok, err := f.challenges.VerifyProof(ctx, username, challengeData, proof)
	f.activity.record(ctx, username, models.ActionChallengeLogin, ok, errDetails(err))
	return ok, err
}

func (f *identityFacade) Certificate(ctx context.Context, username string) (models.Certificate, error) {
	return f.certificates.Certificate(ctx, username)
}

// EnsureCertificate issues a certificate for an identity stored without
// one and persists it with Update.
func (f *identityFacade) EnsureCertificate(ctx context.Context, username string) (models.Certificate, error) {
	identity, err := f.auth.GetIdentity(ctx, username)
	if err != nil {
		return models.Certificate{}, err
	}

	identity, err = f.certificates.IssueForIdentity(ctx, identity)
	if err != nil {
		f.activity.record(ctx, username, models.ActionCertIssue, false, err.Error())
		return models.Certificate{}, err
	}

	if err = f.identities.Update(ctx, identity); err != nil {
		f.activity.record(ctx, username, models.ActionCertIssue, false, err.Error())
		return models.Certificate{}, fmt.Errorf("error updating identity: %w", err)
	}

	f.activity.record(ctx, username, models.ActionCertIssue, true, identity.Certificate.CertID)
	return *identity.Certificate, nil
}

// UserInfo is the administrator view of one identity.
func (f *identityFacade) UserInfo(ctx context.Context, username string) (models.UserInfo, error) {
	identity, err := f.auth.GetIdentity(ctx, username)
	if err != nil {
		return models.UserInfo{}, err
	}

	info := models.UserInfo{
		Username:       identity.Username,
		CreatedAt:      identity.CreatedAt,
		IsActive:       identity.IsActive,
		HasCertificate: identity.HasCertificate(),
	}
	if !identity.HasCertificate() {
		return info, nil
	}

	info.CertID = identity.Certificate.CertID
	valid, err := f.certificates.IsAccessValid(ctx, username)
	if err != nil {
		return models.UserInfo{}, err
	}
	info.Revoked = !valid

	return info, nil
}

func (f *identityFacade) RevokedCertificates(ctx context.Context) ([]models.RevocationEntry, error) {
	return f.certificates.RevokedCertificates(ctx)
}

func (f *identityFacade) AuthorityPublicKey() ([]byte, error) {
	return f.certificates.AuthorityPublicKey()
}

func (f *identityFacade) SweepExpiredChallenges(ctx context.Context) (int, error) {
	deleted, err := f.challenges.SweepExpired(ctx)
	if err == nil && deleted > 0 {
		f.activity.record(ctx, "", models.ActionChallengeSweep, true, fmt.Sprintf("deleted %d", deleted))
	}
	return deleted, err
}

func (f *identityFacade) RecentActivity(ctx context.Context, limit int) ([]models.ActivityRecord, error) {
	return f.activityDB.Recent(ctx, limit)
}

func (f *identityFacade) UserActivity(ctx context.Context, username string, limit int) ([]models.ActivityRecord, error) {
	return f.activityDB.ByUser(ctx, username, limit)
}

func (f *identityFacade) requireAccess(ctx context.Context, username string) error {
	valid, err := f.certificates.IsAccessValid(ctx, username)
	if err != nil {
		return err
	}
	if !valid {
		return ErrCertificateInvalidOrRevoked
	}
	return nil
}

func errDetails(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
