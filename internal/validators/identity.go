package validators

import (
	"context"
	"encoding/hex"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/MKhiriev/go-securnote/models"
)

const (
	FieldUsername  = "username"
	FieldPassword  = "password"
	FieldChallenge = "challenge"
	FieldProof     = "proof"
	FieldReason    = "reason"
)

const (
	maxUsernameLength = 64
	maxPasswordLength = 1024
	maxReasonLength   = 512

	// challengeHexLength is 128 bits of nonce in hex.
	challengeHexLength = 32
	// proofHexLength is a hex SHA-256 digest.
	proofHexLength = 64
)

// ValidateUsername guards usernames arriving over HTTP. The identity core
// accepts any string; the transport only needs one that survives Basic
// credentials (no ':'), log lines and URL segments.
func ValidateUsername(username string) error {
	switch {
	case username == "", len(username) > maxUsernameLength:
		return ErrInvalidUsername
	case !utf8.ValidString(username), strings.ContainsRune(username, ':'):
		return ErrInvalidUsername
	case strings.ContainsFunc(username, unicode.IsControl):
		return ErrInvalidUsername
	}
	return nil
}

// IdentityValidator checks the request bodies of the identity endpoints:
// credentials, challenge requests, proofs and revocations.
type IdentityValidator struct{}

func NewIdentityValidator() Validator {
	return &IdentityValidator{}
}

func (v *IdentityValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Credentials:
		return v.validateCredentials(value, fields...)
	case *models.Credentials:
		return v.validateCredentials(*value, fields...)

	case models.ChallengeRequest:
		return v.validateChallengeRequest(value, fields...)
	case *models.ChallengeRequest:
		return v.validateChallengeRequest(*value, fields...)

	case models.ProofRequest:
		return v.validateProofRequest(value, fields...)
	case *models.ProofRequest:
		return v.validateProofRequest(*value, fields...)

	case models.RevokeRequest:
		return v.validateRevokeRequest(value, fields...)
	case *models.RevokeRequest:
		return v.validateRevokeRequest(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// validateCredentials accepts an empty password: it still derives a valid key.
func (v *IdentityValidator) validateCredentials(c models.Credentials, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldUsername:
			if err := ValidateUsername(c.Username); err != nil {
				return err
			}
		case FieldPassword:
			if len(c.Password) > maxPasswordLength {
				return ErrPasswordTooLong
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *IdentityValidator) validateChallengeRequest(r models.ChallengeRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername}
	}

	for _, f := range fields {
		switch f {
		case FieldUsername:
			if err := ValidateUsername(r.Username); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *IdentityValidator) validateProofRequest(r models.ProofRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldChallenge, FieldProof}
	}

	for _, f := range fields {
		switch f {
		case FieldUsername:
			if err := ValidateUsername(r.Username); err != nil {
				return err
			}
		case FieldChallenge:
			if !isHex(r.Challenge, challengeHexLength) {
				return ErrInvalidChallenge
			}
		case FieldProof:
			if !isHex(r.Proof, proofHexLength) {
				return ErrInvalidProof
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *IdentityValidator) validateRevokeRequest(r models.RevokeRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldReason}
	}

	for _, f := range fields {
		switch f {
		case FieldReason:
			if len(r.Reason) > maxReasonLength {
				return ErrReasonTooLong
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func isHex(s string, length int) bool {
	if len(s) != length {
		return false
	}
	_, err := hex.DecodeString(s)
	return err == nil
}
