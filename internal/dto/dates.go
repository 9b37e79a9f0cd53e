package dto

import "time"

// DateFormat is the wire format for all report and posting dates.
const DateFormat = "2006-01-02"

// ParseDateOr parses a YYYY-MM-DD value, falling back to the given default
// when the value is empty or invalid. Reports deliberately fall back to sane
// defaults instead of rejecting bad date input.
func ParseDateOr(s string, fallback time.Time) time.Time {
	if s == "" {
		return fallback
	}
	d, err := time.Parse(DateFormat, s)
	if err != nil {
		return fallback
	}
	return d
}

// DefaultReportRange is the range used when the caller supplies none:
// first day of the current month through today.
func DefaultReportRange(now time.Time) (from, to time.Time) {
	from = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	to = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return from, to
}
