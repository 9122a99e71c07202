package models

// Credentials is the body of registration and admin login requests.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// ChallengeRequest starts a challenge login for Username.
type ChallengeRequest struct {
	Username string `json:"username"`
}

// ProofRequest answers a previously issued challenge.
type ProofRequest struct {
	Username  string `json:"username"`
	Challenge string `json:"challenge"`
	Proof     string `json:"proof"`
}

// RevokeRequest carries the optional revocation reason.
type RevokeRequest struct {
	Reason string `json:"reason"`
}

// NoteRequest is the plaintext body of a note creation request.
type NoteRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}
