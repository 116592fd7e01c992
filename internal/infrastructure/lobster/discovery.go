package lobster

import (
	"context"
	"fmt"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"time"

	v1 "github.com/lorenzolucchese/tailriskmanagement/internal/domain/tradingday/v1"
	"github.com/lorenzolucchese/tailriskmanagement/pkg/errors"
	"github.com/lorenzolucchese/tailriskmanagement/pkg/logger"
	"github.com/lorenzolucchese/tailriskmanagement/pkg/util"
)

const (
	orderBookMarker = "orderbook"
	messageMarker   = "message"
)

var datePattern = regexp.MustCompile(`\d{4}-\d{2}-\d{2}`)

// ExtractDate returns the calendar date named by the last YYYY-MM-DD
// substring of name.
func ExtractDate(name string) (time.Time, error) {
	matches := datePattern.FindAllString(name, -1)
	if len(matches) == 0 {
		return time.Time{}, errors.New(errors.ParseError, "no date in file name", name)
	}

	date, err := time.ParseInLocation(util.DateLayout, matches[len(matches)-1], time.UTC)
	if err != nil {
		return time.Time{}, errors.New(errors.ParseError, fmt.Sprintf("invalid date %q", matches[len(matches)-1]), name)
	}
	return date, nil
}

// Discovery pairs LOBSTER order-book and message files found one directory
// level below the input directory.
type Discovery struct {
	logger logger.Interface
}

// NewDiscovery creates a new Discovery.
func NewDiscovery(log logger.Interface) *Discovery {
	return &Discovery{logger: log}
}

// Discover scans dir/*/*.csv and returns the trading days in lexical order
// of their order-book paths.
func (d *Discovery) Discover(ctx context.Context, dir string) (*v1.Manifest, error) {
	files, err := filepath.Glob(filepath.Join(dir, "*", "*.csv"))
	if err != nil {
		return nil, errors.New(errors.DiscoveryError, err.Error(), dir)
	}
	sort.Strings(files)

	var orderBooks, messages, unknown []string
	for _, file := range files {
		name := filepath.Base(file)
		switch {
		case strings.Contains(name, orderBookMarker):
			orderBooks = append(orderBooks, file)
		case strings.Contains(name, messageMarker):
			messages = append(messages, file)
		default:
			unknown = append(unknown, file)
		}
	}

	if len(unknown) > 0 {
		return nil, errors.New(errors.DiscoveryError,
			fmt.Sprintf("%d csv files are neither order books nor messages, first: %s", len(unknown), unknown[0]), dir)
	}
	if len(orderBooks) != len(messages) {
		return nil, errors.New(errors.DiscoveryError,
			fmt.Sprintf("%d order-book files but %d message files", len(orderBooks), len(messages)), dir)
	}

	manifest := &v1.Manifest{
		Days:    make([]v1.Files, 0, len(orderBooks)),
		Undated: []string{},
	}
	for _, orderBook := range orderBooks {
		name := filepath.Base(orderBook)
		date, err := ExtractDate(name)
		if err != nil {
			d.logger.WarnContext(ctx, "order book without date", logger.NewField("orderbook", name))
			manifest.Undated = append(manifest.Undated, name)
			continue
		}

		manifest.Days = append(manifest.Days, v1.Files{
			Date:          date,
			OrderBookPath: orderBook,
			MessagePath:   filepath.Join(filepath.Dir(orderBook), strings.ReplaceAll(name, orderBookMarker, messageMarker)),
		})
	}

	d.logger.InfoContext(ctx, "discovered trading days",
		logger.NewField("dir", dir),
		logger.NewField("days", len(manifest.Days)),
		logger.NewField("undated", len(manifest.Undated)),
	)

	return manifest, nil
}
