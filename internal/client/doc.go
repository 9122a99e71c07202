// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the securnote command line client.
//
// Every subcommand is a single round trip (or two, for challenge-login)
// against the server through [adapter.ServerAdapter]. Passwords are read
// from the terminal without echo and never stored.
package client
