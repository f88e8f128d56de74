package migrate

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"

	"github.com/beheryahmed1991/subscription-tracker/migrations"
)

// Run executes a goose command ("up", "down", "status", ...) against the
// embedded migrations.
func Run(ctx context.Context, db *sql.DB, command string) error {
	goose.SetBaseFS(migrations.Files)
	goose.SetVerbose(false)

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}

	if err := goose.RunContext(ctx, command, db, "."); err != nil {
		return fmt.Errorf("goose %s: %w", command, err)
	}
	return nil
}

// Up runs embedded Goose migrations.
func Up(ctx context.Context, db *sql.DB) error {
	return Run(ctx, db, "up")
}
