// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client is a runnable command line application.
type Client interface {
	// Run executes the subcommand in args and returns when it is done.
	Run(ctx context.Context, args []string) error
}

// PasswordReader asks the user for a secret.
type PasswordReader interface {
	ReadPassword(prompt string) (string, error)
}
