// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Challenge is a single-use nonce issued for the challenge-response login.
// It is consumed by the first matching proof and rejected after ExpiresAt.
type Challenge struct {
	ChallengeID   string
	Username      string
	ChallengeData string
	CreatedAt     time.Time
	ExpiresAt     time.Time
	Used          bool
}

// Expired reports whether the challenge is past its deadline at now.
// A challenge is still valid at exactly ExpiresAt.
func (c Challenge) Expired(now time.Time) bool {
	return now.After(c.ExpiresAt)
}

// ChallengeParams is handed to a caller that starts a challenge login: the
// nonce to answer and the public salt needed to build the proof.
type ChallengeParams struct {
	Challenge string `json:"challenge"`
	Salt      string `json:"salt"`
}
