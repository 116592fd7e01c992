package orderbook

import (
	"context"

	v1 "github.com/lorenzolucchese/tailriskmanagement/internal/domain/orderbook/v1"
)

// Reader loads the rows of one order-book file.
//
//go:generate mockgen -source=interface.go -destination=mock/interface_mock.go -package=mock
type Reader interface {
	Read(ctx context.Context, path string) ([]v1.Row, error)
}
