package middleware

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/rcaa/rcaconnect/internal/app/models"
	"github.com/rcaa/rcaconnect/internal/pkg/apperrors"
	"github.com/rcaa/rcaconnect/internal/pkg/auth"
)

// Context keys set by JWTAuth for downstream handlers
const (
	ContextUserID    = "userID"
	ContextUserEmail = "userEmail"
	ContextUserRole  = "userRole"
)

// userLookup resolves the token subject to an account
type userLookup interface {
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
}

// JWTAuth validates the bearer token and loads the account behind its
// subject. Any token problem is one opaque 401; a disabled account is
// rejected even with a valid token.
func JWTAuth(tokens *auth.TokenService, users userLookup) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := auth.ExtractBearerToken(c.GetHeader("Authorization"))
		if err != nil {
			HandleAPIError(c, apperrors.ErrInvalidToken)
			return
		}

		email, err := tokens.Validate(token)
		if err != nil {
			HandleAPIError(c, apperrors.ErrInvalidToken)
			return
		}

		user, err := users.GetUserByEmail(c.Request.Context(), email)
		if err != nil {
			// A valid token for a deleted account behaves like a bad token.
			HandleAPIError(c, apperrors.ErrInvalidToken)
			return
		}
		if !user.IsActive {
			HandleAPIError(c, apperrors.ErrAccountDisabled)
			return
		}

		c.Set(ContextUserID, user.ID)
		c.Set(ContextUserEmail, user.Email)
		c.Set(ContextUserRole, user.Role)
		c.Next()
	}
}

// RoleRequired gates a route to the given roles. It must run after JWTAuth.
func RoleRequired(roles ...models.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := CurrentUserRole(c)
		if !ok {
			HandleAPIError(c, apperrors.ErrInvalidToken)
			return
		}
		for _, allowed := range roles {
			if role == allowed {
				c.Next()
				return
			}
		}
		HandleAPIError(c, apperrors.ErrPermissionDenied)
	}
}

// CurrentUserID returns the authenticated user's id from the context
func CurrentUserID(c *gin.Context) (int64, bool) {
	v, ok := c.Get(ContextUserID)
	if !ok {
		return 0, false
	}
	id, ok := v.(int64)
	return id, ok
}

// CurrentUserRole returns the authenticated user's role from the context
func CurrentUserRole(c *gin.Context) (models.UserRole, bool) {
	v, ok := c.Get(ContextUserRole)
	if !ok {
		return "", false
	}
	role, ok := v.(models.UserRole)
	return role, ok
}
