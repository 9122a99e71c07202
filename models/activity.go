// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// ActivityAction names an audited identity operation.
type ActivityAction string

const (
	ActionRegister        ActivityAction = "register"
	ActionLogin           ActivityAction = "login"
	ActionChallengeCreate ActivityAction = "challenge_create"
	ActionChallengeLogin  ActivityAction = "challenge_login"
	ActionCertIssue       ActivityAction = "certificate_issue"
	ActionCertRevoke      ActivityAction = "certificate_revoke"
	ActionNoteCreate      ActivityAction = "note_create"
	ActionNoteDelete      ActivityAction = "note_delete"
	ActionChallengeSweep  ActivityAction = "challenge_sweep"
)

// ActivityRecord is one row of the audit trail.
type ActivityRecord struct {
	ID         int64          `json:"id"`
	Timestamp  time.Time      `json:"timestamp"`
	Username   string         `json:"username"`
	Action     ActivityAction `json:"action"`
	Details    string         `json:"details,omitempty"`
	RemoteAddr string         `json:"remote_addr,omitempty"`
	Success    bool           `json:"success"`
}
