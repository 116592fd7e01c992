package migration

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/lorenzolucchese/tailriskmanagement/pkg/logger"
	"github.com/lorenzolucchese/tailriskmanagement/pkg/questdb"
)

const (
	directionUp   = "up"
	directionDown = "down"
)

// Migration represents a database migration
type Migration struct {
	ID        string
	Name      string
	Timestamp time.Time
	UpSQL     string
	DownSQL   string
}

// Runner applies and reverts schema migrations against QuestDB.
//
// QuestDB has no DELETE, so schema_migrations is an append-only ledger: each
// apply or revert appends a row and the latest row per id decides its state.
type Runner struct {
	client       questdb.QuestDBClient
	logger       logger.Interface
	migrationDir string
}

// NewRunner creates a new migration runner
func NewRunner(client questdb.QuestDBClient, log logger.Interface, migrationDir string) *Runner {
	return &Runner{
		client:       client,
		logger:       log,
		migrationDir: migrationDir,
	}
}

// EnsureMigrationTable creates the schema_migrations table if it doesn't exist
func (r *Runner) EnsureMigrationTable(ctx context.Context) error {
	createTableSQL := `CREATE TABLE IF NOT EXISTS schema_migrations (
		id SYMBOL,
		name STRING,
		direction SYMBOL,
		applied_at TIMESTAMP
	) TIMESTAMP(applied_at) PARTITION BY YEAR`
	return r.client.Exec(ctx, createTableSQL)
}

// GetAppliedMigrations returns the set of migration ids currently applied.
func (r *Runner) GetAppliedMigrations(ctx context.Context) (map[string]bool, error) {
	applied := make(map[string]bool)

	rows, err := r.client.Query(ctx, "SELECT id, direction FROM schema_migrations ORDER BY applied_at")
	if err != nil {
		return nil, fmt.Errorf("failed to query schema_migrations: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var id, direction string
		if err := rows.Scan(&id, &direction); err != nil {
			return nil, fmt.Errorf("failed to scan schema_migrations: %w", err)
		}
		applied[id] = direction == directionUp
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating schema_migrations: %w", err)
	}

	return applied, nil
}

// LoadMigrations loads all migration files from the migration directory
func (r *Runner) LoadMigrations() ([]Migration, error) {
	upFiles, err := filepath.Glob(filepath.Join(r.migrationDir, "*.up.sql"))
	if err != nil {
		return nil, err
	}

	sort.Strings(upFiles)

	migrations := make([]Migration, 0, len(upFiles))
	for _, upFile := range upFiles {
		migration, err := parseMigrationFiles(upFile)
		if err != nil {
			return nil, fmt.Errorf("failed to parse migration %s: %w", upFile, err)
		}
		migrations = append(migrations, migration)
	}

	return migrations, nil
}

// parseMigrationFiles reads an .up.sql file and its optional .down.sql sibling.
func parseMigrationFiles(upFilePath string) (Migration, error) {
	upContent, err := os.ReadFile(upFilePath)
	if err != nil {
		return Migration{}, err
	}

	id := strings.TrimSuffix(filepath.Base(upFilePath), ".up.sql")
	downFilePath := strings.TrimSuffix(upFilePath, ".up.sql") + ".down.sql"

	// File names follow YYYYMMDDHHMMSS_name.
	name := id
	timestamp := time.Unix(0, 0).UTC()
	if parts := strings.SplitN(id, "_", 2); len(parts) == 2 {
		name = parts[1]
		if ts, err := time.Parse("20060102150405", parts[0]); err == nil {
			timestamp = ts
		}
	}

	var downSQL string
	if downContent, err := os.ReadFile(downFilePath); err == nil {
		downSQL = strings.TrimSpace(string(downContent))
	}

	return Migration{
		ID:        id,
		Name:      name,
		Timestamp: timestamp,
		UpSQL:     strings.TrimSpace(string(upContent)),
		DownSQL:   downSQL,
	}, nil
}

// MigrateUp applies pending migrations. steps <= 0 applies all of them.
func (r *Runner) MigrateUp(ctx context.Context, steps int) error {
	migrations, err := r.LoadMigrations()
	if err != nil {
		return err
	}

	applied, err := r.GetAppliedMigrations(ctx)
	if err != nil {
		return err
	}

	var toApply []Migration
	for _, migration := range migrations {
		if !applied[migration.ID] {
			toApply = append(toApply, migration)
		}
	}

	if steps > 0 && len(toApply) > steps {
		toApply = toApply[:steps]
	}

	for _, migration := range toApply {
		if migration.UpSQL == "" {
			r.logger.Warn("migration has no up statements", logger.NewField("id", migration.ID))
			continue
		}

		if err := r.execAll(ctx, migration.UpSQL); err != nil {
			return fmt.Errorf("failed to apply migration %s: %w", migration.ID, err)
		}

		if err := r.record(ctx, migration, directionUp); err != nil {
			return err
		}

		r.logger.Info("applied migration", logger.NewField("id", migration.ID))
	}

	return nil
}

// MigrateDown reverts the latest steps applied migrations.
func (r *Runner) MigrateDown(ctx context.Context, steps int) error {
	if steps <= 0 {
		return fmt.Errorf("steps must be greater than 0 for down migrations")
	}

	migrations, err := r.LoadMigrations()
	if err != nil {
		return err
	}

	applied, err := r.GetAppliedMigrations(ctx)
	if err != nil {
		return err
	}

	var toRevert []Migration
	for i := len(migrations) - 1; i >= 0 && len(toRevert) < steps; i-- {
		if applied[migrations[i].ID] {
			toRevert = append(toRevert, migrations[i])
		}
	}

	for _, migration := range toRevert {
		if migration.DownSQL == "" {
			return fmt.Errorf("no down statements for migration %s", migration.ID)
		}

		if err := r.execAll(ctx, migration.DownSQL); err != nil {
			return fmt.Errorf("failed to revert migration %s: %w", migration.ID, err)
		}

		if err := r.record(ctx, migration, directionDown); err != nil {
			return err
		}

		r.logger.Info("reverted migration", logger.NewField("id", migration.ID))
	}

	return nil
}

func (r *Runner) execAll(ctx context.Context, sql string) error {
	for _, stmt := range questdb.Statements(sql) {
		if err := r.client.Exec(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

func (r *Runner) record(ctx context.Context, migration Migration, direction string) error {
	err := r.client.Exec(ctx,
		"INSERT INTO schema_migrations (id, name, direction, applied_at) VALUES ($1, $2, $3, now())",
		migration.ID, migration.Name, direction,
	)
	if err != nil {
		return fmt.Errorf("failed to record migration %s: %w", migration.ID, err)
	}
	return nil
}
