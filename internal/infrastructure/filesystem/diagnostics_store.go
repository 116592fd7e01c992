package filesystem

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	v1 "github.com/lorenzolucchese/tailriskmanagement/internal/domain/diagnostics/v1"
)

// DiagnosticsStore writes each diagnostics category as a JSON array file.
type DiagnosticsStore struct {
	dir string
}

// NewDiagnosticsStore creates a DiagnosticsStore writing into dir.
func NewDiagnosticsStore(dir string) *DiagnosticsStore {
	return &DiagnosticsStore{dir: dir}
}

// Path returns the file a category is written to.
func (s *DiagnosticsStore) Path(label, category string) string {
	return filepath.Join(s.dir, fmt.Sprintf("%s_%s.json", label, category))
}

// Save writes <label>_<category>.json for every category of the record.
func (s *DiagnosticsStore) Save(ctx context.Context, label string, record *v1.Record) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create diagnostics directory: %w", err)
	}

	for _, category := range record.Categories() {
		if err := ctx.Err(); err != nil {
			return err
		}

		entries := category.Entries
		if entries == nil {
			entries = []string{}
		}

		data, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode %s: %w", category.Name, err)
		}

		if err := os.WriteFile(s.Path(label, category.Name), append(data, '\n'), 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", category.Name, err)
		}
	}

	return nil
}

// Load reads back a record saved under label. Missing categories are empty.
func (s *DiagnosticsStore) Load(label string) (*v1.Record, error) {
	record := v1.NewRecord()
	targets := map[string]*[]string{
		v1.CategorySkippedOrderBooks:    &record.SkippedOrderBooks,
		v1.CategorySkippedMessages:      &record.SkippedMessages,
		v1.CategoryEmptyIntervals:       &record.EmptyIntervals,
		v1.CategoryNonCanonicalSessions: &record.NonCanonicalSessions,
		v1.CategoryMisaligned:           &record.Misaligned,
		v1.CategoryRejectedDays:         &record.RejectedDays,
	}

	for name, target := range targets {
		data, err := os.ReadFile(s.Path(label, name))
		if os.IsNotExist(err) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", name, err)
		}
		if err := json.Unmarshal(data, target); err != nil {
			return nil, fmt.Errorf("failed to decode %s: %w", name, err)
		}
	}

	return record, nil
}
