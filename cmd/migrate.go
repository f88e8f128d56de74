package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/beheryahmed1991/subscription-tracker/internal/config"
	"github.com/beheryahmed1991/subscription-tracker/internal/logger"
	"github.com/beheryahmed1991/subscription-tracker/internal/migrate"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "migrate [up|down|status]",
		Short:     "Apply, roll back or inspect schema migrations",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"up", "down", "status"},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			log := logger.New(cfg.Log.Level)

			database, err := openDatabase(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer database.Close()

			if err := migrate.Run(cmd.Context(), database, args[0]); err != nil {
				return err
			}
			log.Info("migrate finished", "command", args[0])
			return nil
		},
	}
}
