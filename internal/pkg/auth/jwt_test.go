package auth

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/rcaa/rcaconnect/internal/pkg/apperrors"
)

func newTestTokenService(secret string) *TokenService {
	return NewTokenService(TokenConfig{
		SecretKey:      secret,
		AccessTokenExp: time.Minute,
		TokenIssuer:    "rcaconnect.test",
	})
}

func TestTokenRoundTrip(t *testing.T) {
	svc := newTestTokenService("test-secret")

	token, err := svc.Generate("a@b.com", 0)
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}

	subject, err := svc.Validate(token)
	if err != nil {
		t.Fatalf("Validate returned error: %v", err)
	}
	if subject != "a@b.com" {
		t.Fatalf("subject = %q, want %q", subject, "a@b.com")
	}
}

func TestTokenExpired(t *testing.T) {
	svc := newTestTokenService("test-secret")

	token, err := svc.Generate("a@b.com", -time.Second)
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}

	if _, err := svc.Validate(token); !errors.Is(err, apperrors.ErrInvalidToken) {
		t.Fatalf("Validate error = %v, want %v", err, apperrors.ErrInvalidToken)
	}
}

func TestTokenWrongSecret(t *testing.T) {
	token, err := newTestTokenService("secret-one").Generate("a@b.com", 0)
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}

	if _, err := newTestTokenService("secret-two").Validate(token); !errors.Is(err, apperrors.ErrInvalidToken) {
		t.Fatalf("Validate error = %v, want %v", err, apperrors.ErrInvalidToken)
	}
}

func TestTokenTampered(t *testing.T) {
	svc := newTestTokenService("test-secret")

	token, err := svc.Generate("a@b.com", 0)
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}

	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		t.Fatalf("expected three token segments, got %d", len(parts))
	}
	tampered := parts[0] + ".eyJzdWIiOiJldmlsQGIuY29tIn0." + parts[2]

	if _, err := svc.Validate(tampered); !errors.Is(err, apperrors.ErrInvalidToken) {
		t.Fatalf("Validate error = %v, want %v", err, apperrors.ErrInvalidToken)
	}
}

func TestValidateRejectsGarbage(t *testing.T) {
	svc := newTestTokenService("test-secret")
	for _, tok := range []string{"", "garbage", "a.b", "a.b.c.d"} {
		if _, err := svc.Validate(tok); !errors.Is(err, apperrors.ErrInvalidToken) {
			t.Fatalf("Validate(%q) error = %v, want %v", tok, err, apperrors.ErrInvalidToken)
		}
	}
}

func TestExtractBearerToken(t *testing.T) {
	if _, err := ExtractBearerToken(""); !errors.Is(err, apperrors.ErrInvalidToken) {
		t.Fatalf("empty header error = %v, want %v", err, apperrors.ErrInvalidToken)
	}
	tok, err := ExtractBearerToken("Bearer abc.def.ghi")
	if err != nil || tok != "abc.def.ghi" {
		t.Fatalf("ExtractBearerToken = %q, %v", tok, err)
	}
	tok, err = ExtractBearerToken("abc.def.ghi")
	if err != nil || tok != "abc.def.ghi" {
		t.Fatalf("bare token: ExtractBearerToken = %q, %v", tok, err)
	}
}
