package service

import (
	"context"
	"crypto/subtle"
	"fmt"
	"time"

	"github.com/MKhiriev/go-securnote/internal/config"
	"github.com/MKhiriev/go-securnote/internal/logger"
	"github.com/MKhiriev/go-securnote/internal/utils"
	"github.com/MKhiriev/go-securnote/models"
)

// adminService checks the single configured administrator and handles the
// JWT lifecycle of the admin API.
type adminService struct {
	username string
	password string

	tokenSignKey  string
	tokenIssuer   string
	tokenDuration time.Duration

	logger *logger.Logger
}

func NewAdminService(cfg config.Admin, log *logger.Logger) AdminService {
	return &adminService{
		username:      cfg.Username,
		password:      cfg.Password,
		tokenSignKey:  cfg.TokenSignKey,
		tokenIssuer:   cfg.TokenIssuer,
		tokenDuration: cfg.TokenDuration,
		logger:        log,
	}
}

func (a *adminService) Enabled() bool {
	return a.username != ""
}

// Login compares both credentials in constant time and issues a signed
// token for the administrator.
func (a *adminService) Login(ctx context.Context, username, password string) (models.Token, error) {
	if !a.Enabled() {
		return models.Token{}, ErrAdminDisabled
	}

	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(a.username))
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(a.password))
	if userOK&passOK != 1 {
		logger.FromContext(ctx).Warn().Str("username", username).Msg("admin login failed")
		return models.Token{}, ErrInvalidCredentials
	}

	token, err := utils.GenerateJWTToken(a.tokenIssuer, a.username, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken verifies tokenString. Any failure, including a subject other
// than the configured administrator, is ErrTokenIsExpiredOrInvalid.
func (a *adminService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	if !a.Enabled() {
		return models.Token{}, ErrAdminDisabled
	}

	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil || token.Admin != a.username {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
