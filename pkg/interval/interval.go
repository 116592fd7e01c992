package interval

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/lorenzolucchese/tailriskmanagement/pkg/errors"
)

// Interval represents the spacing of an equidistant resampling grid.
type Interval struct {
	Name     string
	Duration time.Duration
}

// Supported named intervals
var (
	Interval1m  = Interval{Name: "1m", Duration: time.Minute}
	Interval5m  = Interval{Name: "5m", Duration: 5 * time.Minute}
	Interval10m = Interval{Name: "10m", Duration: 10 * time.Minute}
	Interval15m = Interval{Name: "15m", Duration: 15 * time.Minute}
	Interval30m = Interval{Name: "30m", Duration: 30 * time.Minute}
	Interval1h  = Interval{Name: "1h", Duration: time.Hour}
)

// AllIntervals lists the named intervals.
var AllIntervals = []Interval{
	Interval1m, Interval5m, Interval10m, Interval15m, Interval30m, Interval1h,
}

var intervalRegistry = make(map[string]Interval)

func init() {
	for _, interval := range AllIntervals {
		intervalRegistry[interval.Name] = interval
	}
}

// Parse resolves a named interval ("5m"), a minute count ("5min") or any Go
// duration ("90s"). The result must be strictly positive.
func Parse(name string) (Interval, error) {
	name = strings.TrimSpace(name)
	if interval, ok := intervalRegistry[name]; ok {
		return interval, nil
	}

	if minutes, ok := strings.CutSuffix(name, "min"); ok {
		n, err := strconv.Atoi(minutes)
		if err != nil {
			return Interval{}, errors.New(errors.InvalidIntervalError, fmt.Sprintf("unsupported interval %q", name), "interval")
		}
		return New(time.Duration(n) * time.Minute)
	}

	d, err := time.ParseDuration(name)
	if err != nil {
		return Interval{}, errors.New(errors.InvalidIntervalError, fmt.Sprintf("unsupported interval %q", name), "interval")
	}
	return New(d)
}

// New builds an interval from a duration.
func New(d time.Duration) (Interval, error) {
	i := Interval{Name: d.String(), Duration: d}
	if d%time.Minute == 0 {
		i.Name = fmt.Sprintf("%dm", d/time.Minute)
	}
	if err := i.Validate(); err != nil {
		return Interval{}, err
	}
	return i, nil
}

// Validate checks the interval is strictly positive.
func (i Interval) Validate() error {
	if i.Duration <= 0 {
		return errors.New(errors.InvalidIntervalError, fmt.Sprintf("interval must be positive, got %s", i.Duration), "interval")
	}
	return nil
}

// Label is the prefix used in output artifact names, e.g. "1min" or "30s".
func (i Interval) Label() string {
	switch {
	case i.Duration%time.Minute == 0:
		return fmt.Sprintf("%dmin", i.Duration/time.Minute)
	case i.Duration%time.Second == 0:
		return fmt.Sprintf("%ds", i.Duration/time.Second)
	default:
		return strings.ReplaceAll(i.Duration.String(), ".", "_")
	}
}

// String implements fmt.Stringer.
func (i Interval) String() string {
	return i.Name
}

// GetAllIntervalNames returns all named interval names
func GetAllIntervalNames() []string {
	names := make([]string, 0, len(AllIntervals))
	for _, interval := range AllIntervals {
		names = append(names, interval.Name)
	}
	return names
}
