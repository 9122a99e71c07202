// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger wraps zerolog.Logger with the constructors and
// context helpers shared by the SecurNote server, its workers and the CLI
// client.
//
// Request-scoped loggers travel in the context; use FromContext or
// FromRequest to obtain them.
package logger

import (
	"context"
	"io"
	"net/http"
	"os"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger embeds zerolog.Logger so the whole zerolog API is available.
type Logger struct {
	zerolog.Logger
}

// NewLogger returns a JSON logger writing to stdout. Every entry carries
// the role, a timestamp and the calling function under "func".
func NewLogger(role string) *Logger {
	return newLogger(os.Stdout, role, zerolog.DebugLevel)
}

// NewClientLogger returns a logger for the CLI. The CLI prints its results
// to stdout, so diagnostics go to w (usually stderr) and only warnings and
// above are emitted.
func NewClientLogger(w io.Writer, role string) *Logger {
	return newLogger(zerolog.ConsoleWriter{Out: w, NoColor: true}, role, zerolog.WarnLevel)
}

func newLogger(w io.Writer, role string, level zerolog.Level) *Logger {
	zerolog.SetGlobalLevel(level)
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name()
	}
	zerolog.CallerFieldName = "func"

	logger := zerolog.New(w).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{logger}
}

// Nop returns a logger that discards everything. Used in tests.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger returns a copy of l that can be enriched without touching
// the parent.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// FromRequest returns the logger attached to the request context.
func FromRequest(r *http.Request) *Logger {
	return FromContext(r.Context())
}

// FromContext returns the logger attached to ctx. When none is attached,
// zerolog's default logger is returned, so the result is never nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
