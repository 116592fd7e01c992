package merge

import (
	"context"

	mergeDomain "github.com/lorenzolucchese/tailriskmanagement/internal/domain/merge"
	"github.com/lorenzolucchese/tailriskmanagement/pkg/errors"
	"github.com/lorenzolucchese/tailriskmanagement/pkg/logger"
)

// Usecase concatenates the equidistant day files of a ticker.
type Usecase struct {
	merger  mergeDomain.Merger
	srcDir  string
	pattern string
	dst     string
	logger  logger.Interface
}

// NewUsecase creates a new merge usecase reading the files of srcDir that
// match pattern and writing dst.
func NewUsecase(merger mergeDomain.Merger, srcDir, pattern, dst string, log logger.Interface) *Usecase {
	return &Usecase{
		merger:  merger,
		srcDir:  srcDir,
		pattern: pattern,
		dst:     dst,
		logger:  log,
	}
}

// Run merges the day files and returns the path of the merged file.
func (u *Usecase) Run(ctx context.Context) (string, error) {
	n, err := u.merger.Merge(ctx, u.srcDir, u.pattern, u.dst)
	if err != nil {
		u.logger.ErrorContext(ctx, err,
			logger.NewField("src", u.srcDir),
			logger.NewField("pattern", u.pattern),
			logger.NewField("dst", u.dst),
		)
		return "", errors.TracerFromError(err)
	}

	if n == 0 {
		u.logger.WarnContext(ctx, "no day files to merge",
			logger.NewField("src", u.srcDir),
			logger.NewField("pattern", u.pattern),
		)
	}

	u.logger.InfoContext(ctx, "merged day files",
		logger.NewField("files", n),
		logger.NewField("dst", u.dst),
	)
	return u.dst, nil
}
