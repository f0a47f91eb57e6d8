package domain

import (
	"fmt"
	"time"
)

// openEnd is the sentinel end instant for a range that is still running.
// It is the maximum value representable in a SQLite-friendly RFC 3339
// timestamp, well past any plausible schedule.
var openEnd = time.Date(9999, time.December, 31, 23, 59, 59, 0, time.UTC)

// DateRange is an immutable period with inclusive start and end. A range may
// be open-ended, meaning the work it describes is still in progress; the end
// is then the sentinel max instant rather than a meaningful timestamp.
type DateRange struct {
	start time.Time
	end   time.Time
}

// NewDateRange creates a closed range. Fails unless start <= end.
func NewDateRange(start, end time.Time) (DateRange, error) {
	if start.After(end) {
		return DateRange{}, &ValidationError{Fields: map[string]string{
			"end": fmt.Sprintf("must not be before start (%s > %s)",
				start.Format(time.RFC3339), end.Format(time.RFC3339)),
		}}
	}
	return DateRange{start: start.UTC(), end: end.UTC()}, nil
}

// NewOpenDateRange creates a range that started but has not finished.
func NewOpenDateRange(start time.Time) DateRange {
	return DateRange{start: start.UTC(), end: openEnd}
}

// Start returns the inclusive start instant.
func (r DateRange) Start() time.Time { return r.start }

// End returns the inclusive end instant; for open-ended ranges this is the
// sentinel max instant.
func (r DateRange) End() time.Time { return r.end }

// IsOpenEnded reports whether the range has no real end yet.
func (r DateRange) IsOpenEnded() bool { return r.end.Equal(openEnd) }

// IsZero reports whether the range is the zero value (no period recorded).
func (r DateRange) IsZero() bool { return r.start.IsZero() && r.end.IsZero() }

// Close returns a copy of an open-ended range ended at the given instant.
// Fails if the range is already closed or end precedes start.
func (r DateRange) Close(end time.Time) (DateRange, error) {
	if !r.IsOpenEnded() {
		return DateRange{}, NewStateError("DateRange.Close", "range is already closed")
	}
	return NewDateRange(r.start, end)
}

// Duration returns end - start for closed ranges and the elapsed time since
// start for open-ended ranges.
func (r DateRange) Duration(now time.Time) time.Duration {
	if r.IsOpenEnded() {
		return now.Sub(r.start)
	}
	return r.end.Sub(r.start)
}

// Contains reports whether t falls inside the range, inclusive on both ends.
func (r DateRange) Contains(t time.Time) bool {
	return !t.Before(r.start) && !t.After(r.end)
}

// Equal reports structural equality of start and end instants.
func (r DateRange) Equal(other DateRange) bool {
	return r.start.Equal(other.start) && r.end.Equal(other.end)
}

// String implements fmt.Stringer.
func (r DateRange) String() string {
	if r.IsOpenEnded() {
		return r.start.Format(time.RFC3339) + " .. (open)"
	}
	return r.start.Format(time.RFC3339) + " .. " + r.end.Format(time.RFC3339)
}
