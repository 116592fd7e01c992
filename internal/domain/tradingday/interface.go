package tradingday

import (
	"context"

	v1 "github.com/lorenzolucchese/tailriskmanagement/internal/domain/tradingday/v1"
)

// Discoverer finds and pairs the capture files of every trading day below a directory.
type Discoverer interface {
	Discover(ctx context.Context, dir string) (*v1.Manifest, error)
}
