// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrEmptyAuthorizationHeader is returned when a protected route is
	// called without an Authorization header.
	ErrEmptyAuthorizationHeader = errors.New("empty authorization header")

	// ErrInvalidAuthorizationHeader is returned when the Authorization
	// header does not carry the expected scheme.
	ErrInvalidAuthorizationHeader = errors.New("invalid authorization header")
)
