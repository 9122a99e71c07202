package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-securnote/models"
	"github.com/golang-jwt/jwt/v5"
)

// GenerateJWTToken signs an HS256 token for subject. The token carries the
// iss, sub, iat and exp claims; all parameters are required.
func GenerateJWTToken(issuer, subject string, tokenDuration time.Duration, signKey string) (models.Token, error) {
	if issuer == "" || subject == "" || tokenDuration <= 0 || signKey == "" {
		return models.Token{}, errors.New("invalid params for generating JWT Token")
	}

	now := time.Now()
	claims := jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return models.Token{Token: token, RegisteredClaims: claims, SignedString: tokenString, Admin: subject}, nil
}

// ValidateAndParseJWTToken checks the signature, algorithm, issuer and
// expiry of tokenString and returns the token with Admin set from sub.
func ValidateAndParseJWTToken(tokenString, tokenSignKey, tokenIssuer string) (models.Token, error) {
	parsed := &models.Token{}
	token, err := jwt.ParseWithClaims(tokenString, parsed, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	},
		jwt.WithIssuer(tokenIssuer),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	admin, err := parsed.GetAdmin()
	if err != nil {
		return models.Token{}, err
	}

	return models.Token{
		Token:            token,
		RegisteredClaims: parsed.RegisteredClaims,
		SignedString:     tokenString,
		Admin:            admin,
	}, nil
}

// ParseBearerToken extracts the token from an "Authorization: Bearer <t>"
// header value.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Fields(authorizationHeader)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", errors.New("invalid authorization header")
	}
	return parts[1], nil
}
