package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/bcrypt"
)

// Argon2id parameters for newly written hashes.
const (
	argonTime    = 1
	argonMemory  = 64 * 1024 // KiB
	argonThreads = 4
	argonKeyLen  = 32
	argonSaltLen = 16
)

// maxPasswordBytes is the bcrypt input limit; argon2 hashes apply the same
// truncation so verification stays consistent across scheme upgrades.
const maxPasswordBytes = 72

// truncatePassword cuts the password to its first 72 UTF-8 bytes. A rune
// split by the cut is dropped entirely rather than kept as invalid bytes.
func truncatePassword(password string) string {
	b := []byte(password)
	if len(b) <= maxPasswordBytes {
		return password
	}
	b = b[:maxPasswordBytes]
	for len(b) > 0 && !utf8.Valid(b) {
		b = b[:len(b)-1]
	}
	return string(b)
}

// HashPassword hashes a password with argon2id and returns the PHC-encoded
// string. Input longer than 72 bytes is truncated first.
func HashPassword(password string) (string, error) {
	password = truncatePassword(password)

	salt := make([]byte, argonSaltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}

	key := argon2.IDKey([]byte(password), salt, argonTime, argonMemory, argonThreads, argonKeyLen)

	encoded := fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version, argonMemory, argonTime, argonThreads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key))

	return encoded, nil
}

// CheckPassword verifies a password against a stored hash. Both argon2id and
// legacy bcrypt hashes are accepted; a malformed hash verifies as false, never
// as an error.
func CheckPassword(hashedPassword, password string) bool {
	password = truncatePassword(password)

	switch {
	case strings.HasPrefix(hashedPassword, "$argon2id$"):
		return checkArgon2id(hashedPassword, password)
	case strings.HasPrefix(hashedPassword, "$2a$"),
		strings.HasPrefix(hashedPassword, "$2b$"),
		strings.HasPrefix(hashedPassword, "$2y$"):
		return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password)) == nil
	default:
		return false
	}
}

// NeedsRehash reports whether a stored hash was written with a scheme other
// than the current one and should be transparently upgraded on the next
// successful verification.
func NeedsRehash(hashedPassword string) bool {
	return !strings.HasPrefix(hashedPassword, "$argon2id$")
}

func checkArgon2id(encoded, password string) bool {
	// $argon2id$v=19$m=65536,t=1,p=4$<salt>$<key>
	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[1] != "argon2id" {
		return false
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil || version != argon2.Version {
		return false
	}

	var memory, iterations uint32
	var parallelism uint8
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &memory, &iterations, &parallelism); err != nil {
		return false
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return false
	}
	key, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil || len(key) == 0 {
		return false
	}

	derived := argon2.IDKey([]byte(password), salt, iterations, memory, parallelism, uint32(len(key)))
	return subtle.ConstantTimeCompare(key, derived) == 1
}
