// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Note is an encrypted note as it is stored. Title and content are sealed
// separately, each under its own nonce.
type Note struct {
	NoteID            string
	Username          string
	TitleCiphertext   []byte
	TitleNonce        []byte
	ContentCiphertext []byte
	ContentNonce      []byte
	CreatedAt         time.Time
}

// PlainNote is a decrypted note returned to its owner.
type PlainNote struct {
	NoteID    string    `json:"note_id"`
	Title     string    `json:"title"`
	Content   string    `json:"content,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
