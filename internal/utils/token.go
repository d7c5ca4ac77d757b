package utils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// AccessTokenBytes is the entropy of an access token; the encoded token is
// twice this length.
const AccessTokenBytes = 24

// NewAccessToken generates an opaque bearer token. It is minted exactly once
// per user, at signup.
func NewAccessToken() (string, error) {
	buf := make([]byte, AccessTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate access token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
