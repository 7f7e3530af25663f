package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/rcaa/rcaconnect/internal/app/controllers"
	appMigrations "github.com/rcaa/rcaconnect/internal/app/migrations"
	appRepos "github.com/rcaa/rcaconnect/internal/app/repositories"
	appRoutes "github.com/rcaa/rcaconnect/internal/app/routes"
	appServices "github.com/rcaa/rcaconnect/internal/app/services"
	"github.com/rcaa/rcaconnect/internal/config"
	"github.com/rcaa/rcaconnect/internal/db"
	appMiddleware "github.com/rcaa/rcaconnect/internal/middleware"
	pkgAuth "github.com/rcaa/rcaconnect/internal/pkg/auth"
	"github.com/rcaa/rcaconnect/internal/pkg/helpers"
	"github.com/rcaa/rcaconnect/internal/pkg/logger"
	"github.com/rcaa/rcaconnect/internal/seed"
)

// Dependencies holds the wired application components
type Dependencies struct {
	Repos               *appRepos.Repositories
	Store               *appServices.Store
	TokenService        *pkgAuth.TokenService
	AuthService         *appServices.AuthService
	UserService         *appServices.UserService
	ImportService       *appServices.ImportService
	CommitteeService    *appServices.CommitteeService
	ContentService      *appServices.ContentService
	AuthController      *appControllers.AuthController
	UserController      *appControllers.UserController
	CommitteeController *appControllers.CommitteeController
	ContentController   *appControllers.ContentController
	Logger              zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection, runs migrations and
// seeds the default admin when configured.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbPool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		dbPool.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection established")

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		dbPool.Close()
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}
	if err := appMigrations.NewMigrator(dbPool).MigrateFromDirectory(migrationsDir); err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations applied")

	if err := seed.CreateDefaultAdmin(context.Background(), dbPool, cfg); err != nil {
		// The API can still serve; an operator can create the admin via the CLI.
		lgr.Error().Err(err).Msg("Failed to seed default admin, proceeding anyway")
	}

	return dbPool, nil
}

// BuildDependencies wires repositories, services and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)
	deps.Store = appServices.NewStore(dbPool, deps.Repos)

	deps.TokenService = pkgAuth.NewTokenService(pkgAuth.TokenConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, pkgAuth.DefaultAccessTokenTTL),
		TokenIssuer:    cfg.JWT.Issuer,
	})

	deps.AuthService = appServices.NewAuthService(deps.Store, deps.TokenService)
	deps.UserService = appServices.NewUserService(deps.Store)
	deps.ImportService = appServices.NewImportService(deps.Store, cfg.App.AlumniEmailDomain)
	deps.CommitteeService = appServices.NewCommitteeService(deps.Store)
	deps.ContentService = appServices.NewContentService(deps.Store)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService)
	deps.UserController = appControllers.NewUserController(deps.UserService, deps.ImportService)
	deps.CommitteeController = appControllers.NewCommitteeController(deps.CommitteeService)
	deps.ContentController = appControllers.NewContentController(deps.ContentService)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	router := gin.Default()

	jwtAuth := appMiddleware.JWTAuth(deps.TokenService, deps.Repos.User)
	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.UserController,
		deps.CommitteeController,
		deps.ContentController,
		jwtAuth,
	)

	return router
}
