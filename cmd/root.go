package cmd

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// Execute runs the subtracker command tree.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "subtracker",
		Short:         "Subscription tracker API server",
		Long:          "subtracker serves the subscription tracking REST API and manages its PostgreSQL schema.",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			loadDotEnv()
		},
	}

	rootCmd.AddCommand(
		newServeCmd(),
		newMigrateCmd(),
	)

	return rootCmd
}

// loadDotEnv reads .env files when present. Variables already set in the
// environment take precedence.
func loadDotEnv() {
	for _, path := range []string{".env", "../.env"} {
		_ = godotenv.Load(path)
	}
}
