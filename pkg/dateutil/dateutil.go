package dateutil

import (
	"fmt"
	"time"
)

// DateLayout is the calendar-date layout accepted in input files.
const DateLayout = "2006-01-02"

// MonthsBetween returns the signed number of calendar months from reference to
// target. Day-of-month is ignored.
func MonthsBetween(target, reference time.Time) int {
	return (target.Year()-reference.Year())*12 + int(target.Month()) - int(reference.Month())
}

// DateAfterMonths advances reference by n calendar months, keeping the day of
// month. Days past the end of the target month are clamped to its last day.
func DateAfterMonths(reference time.Time, n int) time.Time {
	total := int(reference.Month()) - 1 + n
	year := reference.Year() + floorDiv(total, 12)
	month := time.Month(total - floorDiv(total, 12)*12 + 1)

	day := reference.Day()
	if last := DaysInMonth(year, month); day > last {
		day = last
	}
	h, m, s := reference.Clock()
	return time.Date(year, month, day, h, m, s, reference.Nanosecond(), reference.Location())
}

// DaysInMonth returns the number of days in the given month.
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// ParseDate parses either a calendar date (2006-01-02) or an RFC3339 timestamp.
func ParseDate(s string) (time.Time, error) {
	if t, err := time.Parse(DateLayout, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD or RFC3339", s)
	}
	return t, nil
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
