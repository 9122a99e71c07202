// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the message strings the SecurNote HTTP API writes
// into error responses. Keeping them in one place keeps the wording stable
// for the CLI client, which matches on status codes only.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or fails validation.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidCredentialsOrAccess is the single answer for an unknown
	// user, a wrong password and a revoked or invalid certificate.
	MsgInvalidCredentialsOrAccess = "invalid credentials or access revoked"

	// MsgInternalServerError is returned for failures the client cannot fix.
	MsgInternalServerError = "internal server error"

	// MsgStorageUnavailable is returned when the persistence backend fails.
	MsgStorageUnavailable = "storage unavailable, try again later"

	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	// MsgAdminDisabled is returned by the admin login when no administrator
	// is configured.
	MsgAdminDisabled = "admin API is disabled"

	MsgUserAlreadyExists = "user already exists"

	MsgChallengeExpired = "challenge expired"

	MsgChallengeAlreadyUsed = "challenge already used"

	MsgCertificateAlreadyIssued = "certificate already issued"

	MsgCertificateNotFound = "certificate not found"

	MsgUserNotFound = "user not found"

	MsgNoteNotFound = "note not found"

	// MsgNoteIntegrity is returned when a stored note fails to decrypt.
	MsgNoteIntegrity = "note integrity check failed"

	MsgMethodNotAllowed = "method not allowed"
)
