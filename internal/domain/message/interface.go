package message

import (
	"context"

	v1 "github.com/lorenzolucchese/tailriskmanagement/internal/domain/message/v1"
)

// Reader loads the event times of one message file.
//
//go:generate mockgen -source=interface.go -destination=mock/interface_mock.go -package=mock
type Reader interface {
	Read(ctx context.Context, path string) ([]v1.Event, error)
}
