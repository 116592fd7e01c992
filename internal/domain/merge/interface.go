package merge

import "context"

//go:generate mockgen -source=interface.go -destination=mock/interface_mock.go -package=mock

// Merger concatenates the files of a directory matching a glob pattern into
// one file and returns the number of files merged.
type Merger interface {
	Merge(ctx context.Context, srcDir, pattern, dst string) (int, error)
}

// Usecase merges the per-day equidistant outputs of a run.
type Usecase interface {
	Run(ctx context.Context) (string, error)
}
