package pageviews

import (
	"iter"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// dateLayout is the YYYYMMDDHH form used in API paths and item timestamps.
const dateLayout = "2006010215"

// ParseDate parses YYYYMMDD or YYYYMMDDHH. A missing hour means 00.
func ParseDate(s string) (time.Time, error) {
	if len(s) != 8 && len(s) != 10 {
		return time.Time{}, errors.Wrapf(ErrInvalidDate, "%q: want 8 or 10 digits", s)
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return time.Time{}, errors.Wrapf(ErrInvalidDate, "%q: not numeric", s)
		}
	}
	t, err := time.Parse(dateLayout, s+strings.Repeat("0", 10-len(s)))
	if err != nil {
		return time.Time{}, errors.Wrapf(ErrInvalidDate, "%q: %v", s, err)
	}
	return t, nil
}

func FormatDate(t time.Time) string { return t.Format(dateLayout) }

// Increment is a calendar step. Month steps keep the day of month of the
// start, clamped to the length of the target month (Jan 31, Feb 28, Mar 31).
type Increment struct {
	Months int
	Days   int
	Hours  int
}

// at returns the k-th step from start. Steps are always taken from start so
// that month clamping does not accumulate.
func (inc Increment) at(start time.Time, k int) time.Time {
	t := start
	if inc.Months != 0 {
		y, m, d := start.Date()
		first := time.Date(y, m+time.Month(k*inc.Months), 1,
			start.Hour(), start.Minute(), start.Second(), start.Nanosecond(), start.Location())
		if last := first.AddDate(0, 1, -1).Day(); d > last {
			d = last
		}
		t = time.Date(first.Year(), first.Month(), d,
			start.Hour(), start.Minute(), start.Second(), start.Nanosecond(), start.Location())
	}
	return t.AddDate(0, 0, k*inc.Days).Add(time.Duration(k*inc.Hours) * time.Hour)
}

func (inc Increment) zero() bool { return inc.Months <= 0 && inc.Days <= 0 && inc.Hours <= 0 }

// TimestampsBetween yields hour-resolution timestamps in [start, end).
// A non-positive increment yields nothing.
func TimestampsBetween(start, end time.Time, inc Increment) iter.Seq[time.Time] {
	return func(yield func(time.Time) bool) {
		if inc.zero() {
			return
		}
		prev := start
		for k := 0; ; k++ {
			t := inc.at(start, k)
			if !t.Before(end) || (k > 0 && !t.After(prev)) {
				return
			}
			if !yield(t.Truncate(time.Hour)) {
				return
			}
			prev = t
		}
	}
}

// monthStartOnOrAfter returns the first 1st-of-month at midnight that is not
// before t.
func monthStartOnOrAfter(t time.Time) time.Time {
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	if first.Before(t) {
		first = first.AddDate(0, 1, 0)
	}
	return first
}

// DateLike is either a structured calendar date or a formatted date string.
// A nil DateLike means the value was not given.
type DateLike interface {
	resolve() (time.Time, error)
}

type calendarDate time.Time

// Date takes the calendar date of t; the time of day is dropped.
func Date(t time.Time) DateLike { return calendarDate(t) }

func (d calendarDate) resolve() (time.Time, error) {
	t := time.Time(d)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}

type dateString string

// DateString wraps a YYYYMMDD or YYYYMMDDHH string.
func DateString(s string) DateLike { return dateString(s) }

func (d dateString) resolve() (time.Time, error) { return ParseDate(string(d)) }

// defaultRangeDays is how far back start goes when it is not given.
const defaultRangeDays = 30

// resolveRange applies the defaults: end is today, start is 30 days before end.
func resolveRange(start, end DateLike, today time.Time) (time.Time, time.Time, error) {
	if end == nil {
		end = Date(today)
	}
	e, err := end.resolve()
	if err != nil {
		return time.Time{}, time.Time{}, errors.Wrap(err, "end")
	}
	if start == nil {
		start = Date(e.AddDate(0, 0, -defaultRangeDays))
	}
	s, err := start.resolve()
	if err != nil {
		return time.Time{}, time.Time{}, errors.Wrap(err, "start")
	}
	return s, e, nil
}
