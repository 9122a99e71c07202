package models

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Token wraps an administrator JWT.
//
// It embeds [jwt.Token] for signing and parsing and [jwt.RegisteredClaims] for
// standard claim access. SignedString holds the compact serialized form that
// travels in the Authorization header.
type Token struct {
	*jwt.Token `json:"-"`

	jwt.RegisteredClaims

	SignedString string `json:"-"`

	// Admin is the administrator name taken from the "sub" claim.
	Admin string `json:"-"`
}

// GetAdmin returns the administrator name stored in the "sub" claim.
func (t *Token) GetAdmin() (string, error) {
	subject, err := t.GetSubject()
	if err != nil {
		return "", fmt.Errorf("error extracting admin from token: %w", err)
	}
	if subject == "" {
		return "", fmt.Errorf("error extracting admin from token: empty subject")
	}

	return subject, nil
}

// String returns the compact JWS serialization of the token.
func (t *Token) String() string {
	return t.SignedString
}
