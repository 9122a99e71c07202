// Package server runs the SecurNote HTTP listener and shuts it down
// gracefully when the run context is cancelled.
package server
