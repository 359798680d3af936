package utils

import (
	"crypto/rand"
	"fmt"

	"github.com/tsubaki-dev/lesson-points-api/internal/constants"
)

// JoinCodeAlphabet is the set of characters join codes are drawn from.
// Visually ambiguous glyphs (0/O, 1/I/L) are excluded.
const JoinCodeAlphabet = "ABCDEFGHJKMNPQRSTUVWXYZ23456789"

// GenerateJoinCode generates a random 6-character household join code.
// Uniqueness is the caller's responsibility.
func GenerateJoinCode() (string, error) {
	bytes := make([]byte, constants.JoinCodeLength)
	if _, err := rand.Read(bytes); err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %w", err)
	}

	code := make([]byte, constants.JoinCodeLength)
	for i, b := range bytes {
		code[i] = JoinCodeAlphabet[int(b)%len(JoinCodeAlphabet)]
	}
	return string(code), nil
}
