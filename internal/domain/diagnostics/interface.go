package diagnostics

import (
	"context"

	v1 "github.com/lorenzolucchese/tailriskmanagement/internal/domain/diagnostics/v1"
)

//go:generate mockgen -source=interface.go -destination=mock/interface_mock.go -package=mock

// Store persists the diagnostics record of a run.
type Store interface {
	Save(ctx context.Context, label string, record *v1.Record) error
}
