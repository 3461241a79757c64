package availability

import (
	"time"

	"octo-mock/internal/pkg/errs"
)

// FormatDateKey projects a timestamp onto the calendar-day key used to
// bucket slots. The caller supplies a timestamp already in the
// product's time zone; host-local time is never consulted.
func FormatDateKey(t time.Time) string {
	return t.Format(DateKeyLayout)
}

// ParseDateKey validates a query date string. Unlike slot ids a bad
// query date is a plain bad request, not an availability-id failure.
func ParseDateKey(s string) (time.Time, error) {
	t, err := time.Parse(DateKeyLayout, s)
	if err != nil || t.Format(DateKeyLayout) != s {
		return time.Time{}, errs.Mark(errs.Newf("malformed date %q", s), errs.ErrInvalidDate)
	}
	return t, nil
}

// EnumerateDays lists every calendar day key in [start, end], both
// endpoints included.
func EnumerateDays(start, end time.Time) ([]string, error) {
	if start.After(end) {
		return nil, errs.Mark(
			errs.Newf("start %s is after end %s", FormatDateKey(start), FormatDateKey(end)),
			errs.ErrInvalidRange,
		)
	}
	var days []string
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		days = append(days, FormatDateKey(d))
	}
	return days, nil
}
