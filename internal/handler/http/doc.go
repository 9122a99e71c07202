// Package http implements the REST transport of the SecurNote server.
//
// User routes authenticate with HTTP Basic on every request: the password is
// checked, the certificate is verified against the authority and the note key
// is derived and placed into the request context for the note handlers.
// Admin routes use a short-lived bearer JWT obtained from /api/admin/login
// and are only mounted when an administrator is configured.
package http
