package main

import (
	"github.com/lorenzolucchese/tailriskmanagement/pkg/logger"
	"github.com/lorenzolucchese/tailriskmanagement/pkg/migration"
	"github.com/lorenzolucchese/tailriskmanagement/pkg/questdb"
	"github.com/spf13/cobra"
)

var (
	migrationDir string
	steps        int
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Manage the QuestDB schema of the returns tables",
}

var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply pending migrations (all of them unless --steps is set)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withRunner(cmd, func(runner *migration.Runner) error {
			return runner.MigrateUp(cmd.Context(), steps)
		})
	},
}

var migrateDownCmd = &cobra.Command{
	Use:   "down",
	Short: "Revert the latest --steps applied migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withRunner(cmd, func(runner *migration.Runner) error {
			return runner.MigrateDown(cmd.Context(), steps)
		})
	},
}

func init() {
	migrateCmd.PersistentFlags().StringVar(&migrationDir, "dir", "migrations/questdb", "directory holding the *.up.sql and *.down.sql files")
	migrateCmd.PersistentFlags().IntVar(&steps, "steps", 0, "number of migrations to apply or revert")

	migrateCmd.AddCommand(migrateUpCmd, migrateDownCmd)
}

func withRunner(cmd *cobra.Command, fn func(runner *migration.Runner) error) error {
	ctx := cmd.Context()

	log, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	client, err := questdb.NewClient(ctx, cfg.QuestDB.Config)
	if err != nil {
		log.ErrorContext(ctx, err, logger.NewField("action", "init_db"))
		return err
	}
	defer client.Close()

	runner := migration.NewRunner(client, log, migrationDir)
	if err := runner.EnsureMigrationTable(ctx); err != nil {
		return err
	}

	if err := fn(runner); err != nil {
		log.ErrorContext(ctx, err, logger.NewField("dir", migrationDir))
		return err
	}

	log.InfoContext(ctx, "migrations completed", logger.NewField("dir", migrationDir))
	return nil
}
