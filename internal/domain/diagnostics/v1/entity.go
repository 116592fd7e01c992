package v1

// Category names, used as file name suffixes when a record is persisted.
const (
	CategorySkippedOrderBooks    = "skipped_orderbook"
	CategorySkippedMessages      = "skipped_messages"
	CategoryEmptyIntervals       = "empty_time_intervals"
	CategoryNonCanonicalSessions = "opening_closing_times"
	CategoryMisaligned           = "misaligned"
	CategoryRejectedDays         = "rejected_days"
)

// Record collects the data-quality exceptions of a whole run.
type Record struct {
	SkippedOrderBooks    []string `json:"skipped_orderbooks"`
	SkippedMessages      []string `json:"skipped_messages"`
	EmptyIntervals       []string `json:"empty_intervals"`
	NonCanonicalSessions []string `json:"non_canonical_sessions"`
	Misaligned           []string `json:"misaligned"`
	RejectedDays         []string `json:"rejected_days"`
}

// NewRecord returns an empty record whose lists are non-nil.
func NewRecord() *Record {
	return &Record{
		SkippedOrderBooks:    []string{},
		SkippedMessages:      []string{},
		EmptyIntervals:       []string{},
		NonCanonicalSessions: []string{},
		Misaligned:           []string{},
		RejectedDays:         []string{},
	}
}

// Category pairs a category name with its entries.
type Category struct {
	Name    string
	Entries []string
}

// Categories returns every list of the record in a fixed order.
func (r *Record) Categories() []Category {
	return []Category{
		{Name: CategorySkippedOrderBooks, Entries: r.SkippedOrderBooks},
		{Name: CategorySkippedMessages, Entries: r.SkippedMessages},
		{Name: CategoryEmptyIntervals, Entries: r.EmptyIntervals},
		{Name: CategoryNonCanonicalSessions, Entries: r.NonCanonicalSessions},
		{Name: CategoryMisaligned, Entries: r.Misaligned},
		{Name: CategoryRejectedDays, Entries: r.RejectedDays},
	}
}

// Total returns the number of entries across all categories.
func (r *Record) Total() int {
	total := 0
	for _, c := range r.Categories() {
		total += len(c.Entries)
	}
	return total
}

// DayReport is what the pipeline of a single day found. Empty fields mean
// nothing to report.
type DayReport struct {
	Date string

	SkippedOrderBook    string
	SkippedMessage      string
	EmptyIntervals      string
	NonCanonicalSession string
	Misaligned          string
	Rejected            string

	// Written is true when the day's series reached every sink.
	Written bool
}
