package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/rcaa/rcaconnect/internal/bootstrap"
	"github.com/rcaa/rcaconnect/internal/config"
	"github.com/rcaa/rcaconnect/internal/db"
	"github.com/rcaa/rcaconnect/internal/pkg/logger"
)

const programName = "rcactl"

var configFile string

// cliEnv bundles the resources a subcommand needs against a live database.
type cliEnv struct {
	cfg    *config.Config
	dbPool *pgxpool.Pool
	deps   *bootstrap.Dependencies
}

func (e *cliEnv) Close() {
	if e.dbPool != nil {
		e.dbPool.Close()
	}
}

// openEnv loads configuration, connects to the database and wires the
// service layer. Commands run against the same stack as the API server.
func openEnv() (*cliEnv, error) {
	path := configFile
	if path == "" {
		path = filepath.Join("configs", "config.yaml")
	}
	cfg, err := config.LoadConfig(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger.Configure(logger.Config{
		Level:  logger.LogLevel(strings.ToLower(cfg.Logging.Level)),
		Pretty: true,
	})

	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	deps, err := bootstrap.BuildDependencies(cfg, database.Pool, log.Logger)
	if err != nil {
		database.Pool.Close()
		return nil, fmt.Errorf("failed to wire dependencies: %w", err)
	}

	return &cliEnv{cfg: cfg, dbPool: database.Pool, deps: deps}, nil
}

func main() {
	rootCmd := &cobra.Command{
		Use:          programName,
		Short:        "Administrative tool for the RCAA membership backend",
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().
		StringVar(&configFile, "config", "", "path to config file")

	rootCmd.AddCommand(createAdminCommand())
	rootCmd.AddCommand(listUsersCommand())
	rootCmd.AddCommand(importAlumniCommand())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
