// Package utils holds small helpers shared across SecurNote packages:
// typed context keys, JSON response writing, the resty client wrapper, JWT
// helpers for the admin API and id generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys so values set here never
// collide with string keys of other packages.
type contextKey string

// String implements fmt.Stringer.
func (c contextKey) String() string {
	return string(c)
}

var (
	// UsernameCtxKey holds the authenticated username of a request.
	UsernameCtxKey = contextKey("username")

	// NoteKeyCtxKey holds the note key derived for the request. It never
	// outlives the request context.
	NoteKeyCtxKey = contextKey("noteKey")

	// RemoteAddrCtxKey holds the client address recorded in the activity log.
	RemoteAddrCtxKey = contextKey("remoteAddr")

	// AdminCtxKey holds the administrator name from a verified admin token.
	AdminCtxKey = contextKey("admin")
)

// WithUsername returns a copy of ctx carrying username.
func WithUsername(ctx context.Context, username string) context.Context {
	return context.WithValue(ctx, UsernameCtxKey, username)
}

// GetUsernameFromContext returns the username and whether a non-empty one
// was set.
func GetUsernameFromContext(ctx context.Context) (string, bool) {
	username, ok := ctx.Value(UsernameCtxKey).(string)
	return username, ok && username != ""
}

// WithNoteKey returns a copy of ctx carrying the derived note key.
func WithNoteKey(ctx context.Context, key []byte) context.Context {
	return context.WithValue(ctx, NoteKeyCtxKey, key)
}

// GetNoteKeyFromContext returns the note key set by [WithNoteKey].
func GetNoteKeyFromContext(ctx context.Context) ([]byte, bool) {
	key, ok := ctx.Value(NoteKeyCtxKey).([]byte)
	return key, ok && len(key) > 0
}

// WithRemoteAddr returns a copy of ctx carrying the client address.
func WithRemoteAddr(ctx context.Context, addr string) context.Context {
	return context.WithValue(ctx, RemoteAddrCtxKey, addr)
}

// GetRemoteAddrFromContext returns the client address or "" when unknown.
func GetRemoteAddrFromContext(ctx context.Context) string {
	addr, _ := ctx.Value(RemoteAddrCtxKey).(string)
	return addr
}

// WithAdmin returns a copy of ctx carrying the administrator name.
func WithAdmin(ctx context.Context, admin string) context.Context {
	return context.WithValue(ctx, AdminCtxKey, admin)
}

// GetAdminFromContext returns the administrator name set by [WithAdmin].
func GetAdminFromContext(ctx context.Context) (string, bool) {
	admin, ok := ctx.Value(AdminCtxKey).(string)
	return admin, ok && admin != ""
}
