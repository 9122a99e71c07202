// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter talks to the SecurNote server on behalf of the CLI client.
//
// [ServerAdapter] hides the REST details: HTTP Basic credentials are attached
// to every authenticated call and non-2xx answers are mapped to the sentinel
// errors in errors.go, so callers can use [errors.Is] (for example
// [ErrUnauthorized] for 401 or [ErrConflict] for 409).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-securnote/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter is the client's view of the SecurNote HTTP API.
type ServerAdapter interface {
	// SetCredentials stores the username and password sent as HTTP Basic
	// credentials on every authenticated request.
	SetCredentials(username, password string)

	Register(ctx context.Context, creds models.Credentials) (models.CertificateRecord, error)

	// Login checks the stored credentials and the certificate in one call.
	Login(ctx context.Context) (models.LoginResponse, error)

	RequestChallenge(ctx context.Context, username string) (models.ChallengeParams, error)
	VerifyChallenge(ctx context.Context, req models.ProofRequest) (models.ProofResponse, error)

	Certificate(ctx context.Context) (models.CertificateRecord, error)

	CreateNote(ctx context.Context, note models.NoteRequest) (string, error)
	ListNotes(ctx context.Context) ([]models.PlainNote, error)
	GetNote(ctx context.Context, noteID string) (models.PlainNote, error)
	DeleteNote(ctx context.Context, noteID string) error
}
