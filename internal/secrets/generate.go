package secrets

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

// DefaultLength is the default number of random bytes for generated secrets.
const DefaultLength = 32

// GenerateRandomSecret returns a URL-safe random token built from length
// bytes of entropy. Length counts random bytes before encoding, not output
// characters: the encoded result is base64.RawURLEncoding.EncodedLen(length)
// characters drawn from [A-Za-z0-9-_], with no padding.
func GenerateRandomSecret(length int) (string, error) {
	buf := make([]byte, length)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}

	return base64.RawURLEncoding.EncodeToString(buf), nil
}

// EncodedLength returns the character length of a generated secret for the
// given number of random bytes.
func EncodedLength(length int) int {
	return base64.RawURLEncoding.EncodedLen(length)
}
