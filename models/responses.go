package models

// LoginResponse is returned by a successful password login.
type LoginResponse struct {
	Username      string `json:"username"`
	AccessGranted bool   `json:"access_granted"`
}

// ProofResponse is returned by the challenge verification endpoint.
type ProofResponse struct {
	Authenticated bool `json:"authenticated"`
}

// NoteCreatedResponse carries the identifier of a freshly stored note.
type NoteCreatedResponse struct {
	NoteID string `json:"note_id"`
}

// SweepResponse reports how many challenge records a sweep deleted.
type SweepResponse struct {
	Deleted int `json:"deleted"`
}

// RevokeResponse reports whether a revocation changed the ledger.
type RevokeResponse struct {
	Revoked bool `json:"revoked"`
}
