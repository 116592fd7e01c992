package errors

// ErrorCode represents a specific error code in the system.
type ErrorCode string

const (
	// GeneralInternalError represents a generic internal error.
	GeneralInternalError ErrorCode = "general_internal_error"
	// GeneralRepositoryError represents a generic repository error.
	GeneralRepositoryError ErrorCode = "general_repository_error"
	// GeneralPublisherError represents a generic publisher error.
	GeneralPublisherError ErrorCode = "general_publisher_error"

	// ParseError represents an unreadable or malformed input file.
	ParseError ErrorCode = "parse_error"
	// AlignmentError represents an order book whose row count differs from its message file.
	AlignmentError ErrorCode = "alignment_error"
	// EmptyDayError represents a trading day without a single event.
	EmptyDayError ErrorCode = "empty_day_error"
	// InsufficientDataError represents a price series too short to difference.
	InsufficientDataError ErrorCode = "insufficient_data_error"
	// InvalidIntervalError represents a resampling interval that is not strictly positive.
	InvalidIntervalError ErrorCode = "invalid_interval_error"
	// DiscoveryError represents an input directory whose files cannot be paired.
	DiscoveryError ErrorCode = "discovery_error"
)

// Severity represents the severity level of an error.
type Severity string

const (
	// SeverityFatal stops the whole run.
	SeverityFatal Severity = "fatal"
	// SeverityDay stops the processing of a single trading day.
	SeverityDay Severity = "day"
	// SeverityNone is a condition that is recorded but does not stop anything.
	SeverityNone Severity = "none"
)

// SeverityOf maps an error to the scope it aborts. Unknown errors are fatal.
func SeverityOf(err error) Severity {
	if err == nil {
		return SeverityNone
	}

	switch {
	case ErrorCodeEquals(err, string(ParseError)),
		ErrorCodeEquals(err, string(AlignmentError)),
		ErrorCodeEquals(err, string(EmptyDayError)),
		ErrorCodeEquals(err, string(InsufficientDataError)):
		return SeverityDay
	default:
		return SeverityFatal
	}
}

// New creates ErrorDetails with the given code.
func New(code ErrorCode, message, field string) *ErrorDetails {
	return NewErrorDetails(message, string(code), field)
}
