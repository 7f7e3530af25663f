package auth

import (
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/rcaa/rcaconnect/internal/pkg/apperrors"
)

// DefaultAccessTokenTTL applies when no expiration is configured.
const DefaultAccessTokenTTL = 30 * time.Minute

// TokenConfig defines token signing settings
type TokenConfig struct {
	SecretKey      string
	AccessTokenExp time.Duration
	TokenIssuer    string
}

// TokenService issues and verifies bearer tokens
type TokenService struct {
	config TokenConfig
}

// NewTokenService creates a new TokenService
func NewTokenService(config TokenConfig) *TokenService {
	if config.AccessTokenExp <= 0 {
		config.AccessTokenExp = DefaultAccessTokenTTL
	}
	return &TokenService{config: config}
}

// Generate signs a token whose subject is the user's e-mail. A non-positive
// ttl falls back to the configured expiration.
func (s *TokenService) Generate(subject string, ttl time.Duration) (string, error) {
	if ttl == 0 {
		ttl = s.config.AccessTokenExp
	}

	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		IssuedAt:  jwt.NewNumericDate(now),
		Issuer:    s.config.TokenIssuer,
		ID:        uuid.New().String(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.config.SecretKey))
	if err != nil {
		return "", err
	}
	return signed, nil
}

// AccessTokenTTL returns the configured token lifetime.
func (s *TokenService) AccessTokenTTL() time.Duration {
	return s.config.AccessTokenExp
}

// Validate checks signature and expiry and returns the subject. Every failure
// mode (malformed, tampered, expired) surfaces as the same
// apperrors.ErrInvalidToken so validation internals never leak to callers.
func (s *TokenService) Validate(tokenString string) (string, error) {
	if tokenString == "" {
		return "", apperrors.ErrInvalidToken
	}

	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, apperrors.ErrInvalidToken
		}
		return []byte(s.config.SecretKey), nil
	})
	if err != nil || !token.Valid || claims.Subject == "" {
		return "", apperrors.ErrInvalidToken
	}

	return claims.Subject, nil
}

// ExtractBearerToken extracts the token from an Authorization header value.
func ExtractBearerToken(authHeader string) (string, error) {
	if authHeader == "" {
		return "", apperrors.ErrInvalidToken
	}
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer "), nil
	}
	// Some clients send the bare token without the scheme prefix.
	return authHeader, nil
}
