package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/SscSPs/bizbooks/internal/platform/config"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "bizbooks",
	Short: "bizbooks is a multi-business double-entry ledger service",
	Long: `bizbooks keeps the books of several businesses: chart of accounts,
journal entries, bank accounts and the reports derived from them.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and runs it.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(rootCmd.ErrOrStderr(), err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newMigrateCmd())
}

// bootstrap loads the configuration and installs the JSON logger at the configured level.
func bootstrap() (*config.Config, *slog.Logger, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)
	return cfg, logger, nil
}
