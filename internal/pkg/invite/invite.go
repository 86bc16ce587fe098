package invite

import (
	"crypto/rand"
	"fmt"
)

// Codes avoid 0/O and 1/I so they survive being read aloud or copied by hand.
const codeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// GenerateCode returns a random uppercase alphanumeric code of the given length.
func GenerateCode(length int) (string, error) {
	if length <= 0 {
		return "", fmt.Errorf("invite code length must be positive, got %d", length)
	}

	buf := make([]byte, length)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}
	for i, b := range buf {
		buf[i] = codeAlphabet[int(b)%len(codeAlphabet)]
	}
	return string(buf), nil
}

// GenerateUniqueCode generates codes until taken() reports one as free, giving up
// after maxAttempts. The store's unique index remains the actual enforcement;
// this loop only keeps collisions from reaching the user in the common case.
func GenerateUniqueCode(length, maxAttempts int, taken func(code string) (bool, error)) (string, error) {
	for attempt := 0; attempt < maxAttempts; attempt++ {
		code, err := GenerateCode(length)
		if err != nil {
			return "", err
		}
		exists, err := taken(code)
		if err != nil {
			return "", fmt.Errorf("failed to check invite code: %w", err)
		}
		if !exists {
			return code, nil
		}
	}
	return "", fmt.Errorf("could not generate a unique invite code after %d attempts", maxAttempts)
}
