package cmd

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/beheryahmed1991/subscription-tracker/internal/config"
	"github.com/beheryahmed1991/subscription-tracker/internal/db"
	"github.com/beheryahmed1991/subscription-tracker/internal/identity"
	"github.com/beheryahmed1991/subscription-tracker/internal/logger"
	"github.com/beheryahmed1991/subscription-tracker/internal/migrate"
	"github.com/beheryahmed1991/subscription-tracker/internal/server"
	"github.com/beheryahmed1991/subscription-tracker/internal/subscription"
)

func newServeCmd() *cobra.Command {
	var skipMigrate bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return runServe(ctx, skipMigrate)
		},
	}

	cmd.Flags().BoolVar(&skipMigrate, "skip-migrate", false, "do not apply pending migrations on startup")
	return cmd
}

func runServe(ctx context.Context, skipMigrate bool) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log := logger.New(cfg.Log.Level)
	slog.SetDefault(log)

	database, err := openDatabase(ctx, cfg)
	if err != nil {
		return err
	}
	defer database.Close()

	if cfg.App.AutoMigrate && !skipMigrate {
		if err := migrate.Up(ctx, database); err != nil {
			return fmt.Errorf("run migrations: %w", err)
		}
		log.Info("migrations applied")
	}

	tokens := identity.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	deps := server.Deps{
		Identity:      identity.NewService(identity.NewRepository(database), tokens, cfg.Auth.BcryptCost),
		Subscriptions: subscription.NewService(subscription.NewRepository(database)),
		DB:            database,
		Log:           log,
	}

	srv := server.New(cfg, deps)

	return server.Run(ctx, srv, log, cfg.App.ShutdownTimeout)
}

func openDatabase(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	database, err := db.New(ctx, db.Config{
		URL:             cfg.DB.DSN(),
		MaxOpenConns:    10,
		MaxIdleConns:    5,
		ConnMaxLifetime: time.Hour,
	})
	if err != nil {
		return nil, fmt.Errorf("connect to postgres: %w", err)
	}
	return database, nil
}
