package filesystem

import (
	"bufio"
	"context"
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"

	returnsv1 "github.com/lorenzolucchese/tailriskmanagement/internal/domain/returns/v1"
	"github.com/lorenzolucchese/tailriskmanagement/pkg/util"
)

// SeriesWriter writes return series as headerless "timestamp,value" csv files.
type SeriesWriter struct {
	equidistantDir string
	dailyPath      string
}

// NewSeriesWriter creates a SeriesWriter writing one file per day into
// equidistantDir and the daily series to dailyPath.
func NewSeriesWriter(equidistantDir, dailyPath string) *SeriesWriter {
	return &SeriesWriter{
		equidistantDir: equidistantDir,
		dailyPath:      dailyPath,
	}
}

// DayFilePattern matches the day files written for one interval label.
func DayFilePattern(label string) string {
	return label + "_*.csv"
}

// DayPath returns the file a day series is written to.
func (w *SeriesWriter) DayPath(series *returnsv1.DaySeries) string {
	return filepath.Join(w.equidistantDir, fmt.Sprintf("%s_%s.csv", series.Interval, series.Date.Format(util.DateLayout)))
}

// StoreDay writes the series to <interval>_<date>.csv, replacing any previous file.
func (w *SeriesWriter) StoreDay(ctx context.Context, series *returnsv1.DaySeries) error {
	return writeSeries(ctx, w.DayPath(series), util.TimestampLayout, series.Points)
}

// StoreDaily writes the closing-price return series, one line per date.
func (w *SeriesWriter) StoreDaily(ctx context.Context, series *returnsv1.DailySeries) error {
	return writeSeries(ctx, w.dailyPath, util.DateLayout, series.Points)
}

func writeSeries(ctx context.Context, path, layout string, points []returnsv1.ReturnPoint) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	buf := bufio.NewWriter(f)
	writer := csv.NewWriter(buf)
	for _, p := range points {
		if err := writer.Write([]string{p.Timestamp.Format(layout), FormatValue(p.LogReturn)}); err != nil {
			f.Close()
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		f.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := buf.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	return f.Close()
}

// FormatValue renders a float with the shortest exact representation. NaN
// is written as an empty field.
func FormatValue(v float64) string {
	if math.IsNaN(v) {
		return ""
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}
