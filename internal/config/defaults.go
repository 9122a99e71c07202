// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

// Default values applied to every field left empty by the other sources.
const (
	DefaultPBKDF2Iterations       = 100_000
	DefaultRSAKeySize             = 2048
	DefaultChallengeTTL           = 300 * time.Second
	DefaultAuthSaltSize           = 32
	DefaultNoteSaltSize           = 32
	DefaultZKSaltSize             = 16
	DefaultCAIssuer               = "SecurNote CA"
	DefaultHTTPAddress            = "localhost:8080"
	DefaultRequestTimeout         = 30 * time.Second
	DefaultTokenIssuer            = "securnote"
	DefaultTokenDuration          = time.Hour
	DefaultChallengeSweepInterval = time.Minute
)

// Defaults returns the configuration used when no source sets a value.
func Defaults() *StructuredConfig {
	return &StructuredConfig{
		Security: Security{
			PBKDF2Iterations: DefaultPBKDF2Iterations,
			RSAKeySize:       DefaultRSAKeySize,
			ChallengeTTL:     DefaultChallengeTTL,
			AuthSaltSize:     DefaultAuthSaltSize,
			NoteSaltSize:     DefaultNoteSaltSize,
			ZKSaltSize:       DefaultZKSaltSize,
			CAIssuer:         DefaultCAIssuer,
			challengeTTLSet:  true,
		},
		Server: Server{
			HTTPAddress:    DefaultHTTPAddress,
			RequestTimeout: DefaultRequestTimeout,
		},
		Admin: Admin{
			TokenIssuer:   DefaultTokenIssuer,
			TokenDuration: DefaultTokenDuration,
		},
		Adapter: Adapter{
			HTTPAddress:    DefaultHTTPAddress,
			RequestTimeout: DefaultRequestTimeout,
		},
		Workers: Workers{
			ChallengeSweepInterval: DefaultChallengeSweepInterval,
		},
	}
}
