package http

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"

	"github.com/MKhiriev/go-securnote/internal/config"
	"github.com/MKhiriev/go-securnote/models"
)

const (
	decoyKeySize   = 32
	decoyNonceSize = 16
)

// challengeDecoy answers challenge requests for unknown usernames. The nonce
// is fresh and the salt is an HMAC of the username under a per-process key,
// so repeated requests see the same salt just as they would for a real user.
type challengeDecoy struct {
	key      []byte
	saltSize int
}

func newChallengeDecoy() *challengeDecoy {
	key := make([]byte, decoyKeySize)
	// crypto/rand.Read never returns an error.
	_, _ = rand.Read(key)

	return &challengeDecoy{key: key, saltSize: config.DefaultZKSaltSize}
}

func (d *challengeDecoy) params(username string) models.ChallengeParams {
	mac := hmac.New(sha256.New, d.key)
	mac.Write([]byte(username))
	salt := mac.Sum(nil)[:d.saltSize]

	nonce := make([]byte, decoyNonceSize)
	_, _ = rand.Read(nonce)

	return models.ChallengeParams{
		Challenge: hex.EncodeToString(nonce),
		Salt:      hex.EncodeToString(salt),
	}
}
