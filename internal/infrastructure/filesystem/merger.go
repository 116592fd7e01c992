package filesystem

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
)

// Merger concatenates csv files into a single file.
type Merger struct{}

// NewMerger creates a new Merger.
func NewMerger() *Merger {
	return &Merger{}
}

// Merge writes every file of srcDir matching pattern, in lexical order, into
// dst and returns how many files were copied. dst is truncated first and is
// skipped if it matches.
func (m *Merger) Merge(ctx context.Context, srcDir, pattern, dst string) (int, error) {
	files, err := filepath.Glob(filepath.Join(srcDir, pattern))
	if err != nil {
		return 0, fmt.Errorf("invalid pattern %q: %w", pattern, err)
	}
	sort.Strings(files)

	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return 0, fmt.Errorf("failed to create output directory: %w", err)
	}

	out, err := os.Create(dst)
	if err != nil {
		return 0, fmt.Errorf("failed to create %s: %w", dst, err)
	}
	defer out.Close()

	buf := bufio.NewWriter(out)
	absDst, _ := filepath.Abs(dst)

	copied := 0
	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return copied, err
		}
		if abs, _ := filepath.Abs(file); abs == absDst {
			continue
		}

		if err := appendFile(buf, file); err != nil {
			return copied, err
		}
		copied++
	}

	if err := buf.Flush(); err != nil {
		return copied, fmt.Errorf("failed to write %s: %w", dst, err)
	}

	return copied, out.Close()
}

// appendFile streams file into w, adding a trailing newline when the file
// does not end with one.
func appendFile(w *bufio.Writer, file string) error {
	in, err := os.Open(file)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", file, err)
	}
	defer in.Close()

	tail := &lastByteWriter{w: w}
	n, err := io.Copy(tail, in)
	if err != nil {
		return fmt.Errorf("failed to copy %s: %w", file, err)
	}

	if n > 0 && tail.last != '\n' {
		return w.WriteByte('\n')
	}
	return nil
}

type lastByteWriter struct {
	w    io.Writer
	last byte
}

func (l *lastByteWriter) Write(p []byte) (int, error) {
	if len(p) > 0 {
		l.last = p[len(p)-1]
	}
	return l.w.Write(p)
}
