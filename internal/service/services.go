package service

import (
	"github.com/MKhiriev/go-securnote/internal/config"
	"github.com/MKhiriev/go-securnote/internal/crypto"
	"github.com/MKhiriev/go-securnote/internal/logger"
	"github.com/MKhiriev/go-securnote/internal/store"
)

// Services is the set of services the transports depend on.
type Services struct {
	Identity IdentityFacade
	Notes    NoteService
	Admin    AdminService
}

// NewServices wires the identity core from storages, the certificate
// authority and the security configuration.
func NewServices(storages *store.Storages, authority CertificateAuthority, cfg *config.StructuredConfig, log *logger.Logger) *Services {
	deriver := crypto.NewKeyDeriver(cfg.Security.PBKDF2Iterations)

	auth := NewAuthService(storages.Identities, deriver, cfg.Security, log)
	challenges := NewChallengeAuthService(storages.Identities, storages.Challenges, deriver, cfg.Security, log)
	certificates := NewCertificateService(storages.Identities, authority, cfg.Security, log)

	return &Services{
		Identity: NewIdentityFacade(auth, challenges, certificates, storages.Identities, storages.Activity, log),
		Notes:    NewNoteService(storages.Notes, crypto.NewNoteCipher(), certificates, storages.Activity, log),
		Admin:    NewAdminService(cfg.Admin, log),
	}
}
