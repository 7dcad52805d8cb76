package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/jonathan/resume-studio/internal/config"
	"github.com/jonathan/resume-studio/internal/db"
	"github.com/jonathan/resume-studio/internal/server"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long: `Start an HTTP server exposing the AI task endpoints under /api.

When DATABASE_URL and JWT_SECRET are both set, the authenticated resume
endpoints (/me, /resumes) are enabled as well and pending migrations are applied.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides PORT)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, logger, err := loadConfig()
	if err != nil {
		return err
	}
	if servePort != 0 {
		cfg.Port = servePort
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	coachService, gateway, err := newCoach(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to create llm gateway: %w", err)
	}
	defer func() { _ = gateway.Close() }()

	deps := server.Deps{Coach: coachService, Logger: logger}

	if cfg.DatabaseURL != "" {
		database, err := connectAndMigrate(ctx, cfg.DatabaseURL, logger)
		if err != nil {
			return err
		}
		defer database.Close()
		deps.Store = database
	}

	if jwtConfig, err := config.NewJWTConfig(); err == nil {
		deps.JWT = server.NewJWTService(jwtConfig)
	} else {
		logger.WithError(err).Warn("token validation not configured")
	}

	srv := server.New(server.Config{
		Port:          cfg.Port,
		AllowedOrigin: cfg.AllowedOrigin,
	}, deps)

	return srv.Run(ctx)
}

// connectAndMigrate opens the pool and applies pending migrations.
func connectAndMigrate(ctx context.Context, databaseURL string, logger logrus.FieldLogger) (*db.DB, error) {
	database, err := db.Connect(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	applied, err := database.Migrate(ctx)
	if err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	for _, name := range applied {
		logger.WithField("migration", name).Info("applied migration")
	}
	return database, nil
}
