package workout

import (
	"fmt"
	"time"
)

const dateOnlyLayout = "2006-01-02"

// ParseDateRange parses RFC3339 timestamps or plain dates. A plain "to" date
// covers its whole day. Plain dates are UTC days, the same zone workout dates
// are stored in. A missing end leaves that side of the range open.
func ParseDateRange(fromParam, toParam string) (from, to time.Time, err error) {
	to = time.Date(9999, 12, 31, 23, 59, 59, 0, time.UTC)

	if fromParam != "" {
		from, _, err = parseDate(fromParam)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid from date: %w", err)
		}
	}
	if toParam != "" {
		var dateOnly bool
		to, dateOnly, err = parseDate(toParam)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid to date: %w", err)
		}
		if dateOnly {
			to = to.AddDate(0, 0, 1).Add(-time.Nanosecond)
		}
	}
	if to.Before(from) {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid range: %s is before %s", toParam, fromParam)
	}
	return from, to, nil
}

func parseDate(value string) (time.Time, bool, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, false, nil
	}
	t, err := time.Parse(dateOnlyLayout, value)
	if err != nil {
		return time.Time{}, false, err
	}
	return t, true, nil
}
