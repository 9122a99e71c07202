package http

import (
	"github.com/MKhiriev/go-securnote/internal/logger"
	"github.com/MKhiriev/go-securnote/internal/service"
	"github.com/MKhiriev/go-securnote/internal/validators"
)

// Handler serves the SecurNote REST API on top of [service.Services].
type Handler struct {
	services *service.Services

	identityValidator validators.Validator
	decoy             *challengeDecoy

	logger *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:          services,
		identityValidator: validators.NewIdentityValidator(),
		decoy:             newChallengeDecoy(),
		logger:            logger,
	}
}
