package seed

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rcaa/rcaconnect/internal/app/models"
	"github.com/rcaa/rcaconnect/internal/app/repositories"
	"github.com/rcaa/rcaconnect/internal/app/services"
	"github.com/rcaa/rcaconnect/internal/config"
	"github.com/rcaa/rcaconnect/internal/pkg/auth"
	"github.com/rcaa/rcaconnect/internal/pkg/logger"
)

// CreateDefaultAdmin bootstraps the first admin account when none exists for
// the configured address. The one-time password is printed to the log on
// creation and nowhere else.
func CreateDefaultAdmin(ctx context.Context, dbPool *pgxpool.Pool, cfg *config.Config) error {
	if !cfg.App.SeedDefaultAdmin || cfg.App.DefaultAdminEmail == "" {
		return nil
	}

	repos := repositories.NewRepositories(dbPool)
	exists, err := repos.User.EmailExists(ctx, cfg.App.DefaultAdminEmail)
	if err != nil {
		return fmt.Errorf("checking default admin: %w", err)
	}
	if exists {
		return nil
	}

	raw := make([]byte, 8)
	if _, err := rand.Read(raw); err != nil {
		return err
	}
	password := hex.EncodeToString(raw)

	hashed, err := auth.HashPassword(password)
	if err != nil {
		return err
	}

	user := &models.User{
		Email:    cfg.App.DefaultAdminEmail,
		Password: hashed,
		Role:     models.RoleAdmin,
		IsActive: true,
	}
	profile := &models.Profile{FullName: "Administrator"}

	store := services.NewStore(dbPool, repos)
	if err := store.CreateUserWithProfile(ctx, user, profile); err != nil {
		return fmt.Errorf("creating default admin: %w", err)
	}

	logger.Info().
		Str("email", user.Email).
		Str("password", password).
		Msg("Default admin created, change this password immediately")
	return nil
}
