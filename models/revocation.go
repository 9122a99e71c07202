// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// RevocationEntry marks a certificate as permanently revoked. The ledger
// holds at most one entry per CertID and never removes entries.
type RevocationEntry struct {
	CertID    string    `json:"cert_id"`
	RevokedAt time.Time `json:"revoked_at"`
	Reason    string    `json:"reason"`
}
