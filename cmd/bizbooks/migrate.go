package main

import (
	"fmt"

	"github.com/SscSPs/bizbooks/internal/platform/config"
	"github.com/SscSPs/bizbooks/pkg/database"
	"github.com/spf13/cobra"
)

func newMigrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:       "migrate [up|down]",
		Short:     "apply or revert PostgreSQL schema migrations",
		Long:      `migrate up applies every pending migration; migrate down reverts the latest one.`,
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{string(database.MigrateUp), string(database.MigrateDown)},
		RunE:      runMigrate,
	}
	return cmd
}

func runMigrate(cmd *cobra.Command, args []string) error {
	cfg, logger, err := bootstrap()
	if err != nil {
		return err
	}
	if cfg.StorageDriver != config.StorageDriverPostgres {
		return fmt.Errorf("migrations only apply to the %s driver, STORAGE_DRIVER is %s", config.StorageDriverPostgres, cfg.StorageDriver)
	}
	return database.Migrate(logger, cfg.DatabaseURL, cfg.MigrationsPath, database.MigrationDirection(args[0]))
}
