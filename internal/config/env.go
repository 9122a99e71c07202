// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
)

const challengeTTLEnv = "SECURITY_CHALLENGE_TTL"

// parseEnv fills cfg from SECURITY_*, STORAGE_*, SERVER_*, ADMIN_*,
// ADAPTER_* and WORKERS_* variables. Unset variables leave fields zero so
// the later sources can fill them.
func parseEnv(cfg *StructuredConfig) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}
	if _, ok := os.LookupEnv(challengeTTLEnv); ok {
		cfg.Security.setChallengeTTL(cfg.Security.ChallengeTTL)
	}
	return nil
}
