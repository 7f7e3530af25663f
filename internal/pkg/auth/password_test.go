package auth

import (
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestHashPasswordRoundTrip(t *testing.T) {
	passwords := []string{
		"secret123",
		"p",
		"pässwörd-ünïcödé",
		strings.Repeat("a", 72),
	}
	for _, pw := range passwords {
		hash, err := HashPassword(pw)
		if err != nil {
			t.Fatalf("HashPassword(%q) returned error: %v", pw, err)
		}
		if !strings.HasPrefix(hash, "$argon2id$") {
			t.Fatalf("expected argon2id hash, got %q", hash)
		}
		if !CheckPassword(hash, pw) {
			t.Fatalf("CheckPassword failed for %q", pw)
		}
		if CheckPassword(hash, pw+"x") {
			t.Fatalf("CheckPassword accepted wrong password for %q", pw)
		}
	}
}

func TestHashPasswordTruncatesAt72Bytes(t *testing.T) {
	prefix := strings.Repeat("a", 72)
	first := prefix + "tail-one"
	second := prefix + "completely-different-tail"

	hash, err := HashPassword(first)
	if err != nil {
		t.Fatalf("HashPassword returned error: %v", err)
	}
	// Two passwords sharing the first 72 bytes verify as equal.
	if !CheckPassword(hash, second) {
		t.Fatal("passwords sharing the first 72 bytes should verify as equal")
	}
	if !CheckPassword(hash, prefix) {
		t.Fatal("the 72-byte prefix alone should verify")
	}
}

func TestTruncatePasswordDropsSplitRune(t *testing.T) {
	// 23 three-byte runes occupy 69 bytes; the next rune straddles the cut.
	pw := strings.Repeat("€", 24) // 72 bytes exactly
	if got := truncatePassword(pw); got != pw {
		t.Fatalf("72-byte password should be unchanged, got %d bytes", len(got))
	}

	pw = strings.Repeat("€", 23) + "ab€" // 74 bytes, rune split at 72
	got := truncatePassword(pw)
	if want := strings.Repeat("€", 23) + "ab"; got != want {
		t.Fatalf("truncatePassword = %q, want %q", got, want)
	}
}

func TestCheckPasswordMalformedHash(t *testing.T) {
	malformed := []string{
		"",
		"not-a-hash",
		"$argon2id$",
		"$argon2id$v=19$m=bad$x$y",
		"$argon2id$v=19$m=65536,t=1,p=4$!!!$???",
		"$9z$12$garbage",
	}
	for _, h := range malformed {
		if CheckPassword(h, "whatever") {
			t.Fatalf("CheckPassword accepted malformed hash %q", h)
		}
	}
}

func TestCheckPasswordLegacyBcrypt(t *testing.T) {
	legacy, err := bcrypt.GenerateFromPassword([]byte("old-secret1"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt.GenerateFromPassword returned error: %v", err)
	}
	if !CheckPassword(string(legacy), "old-secret1") {
		t.Fatal("legacy bcrypt hash should verify")
	}
	if CheckPassword(string(legacy), "wrong") {
		t.Fatal("legacy bcrypt hash accepted wrong password")
	}
	if !NeedsRehash(string(legacy)) {
		t.Fatal("bcrypt hash should be flagged for rehash")
	}

	current, err := HashPassword("old-secret1")
	if err != nil {
		t.Fatalf("HashPassword returned error: %v", err)
	}
	if NeedsRehash(current) {
		t.Fatal("argon2id hash should not be flagged for rehash")
	}
}
