package dateutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestMonthsBetween(t *testing.T) {
	tests := []struct {
		name      string
		target    time.Time
		reference time.Time
		want      int
	}{
		{"Same month", date(2020, 1, 15), date(2020, 1, 1), 0},
		{"Two months ahead", date(2020, 3, 15), date(2020, 1, 15), 2},
		{"Across year boundary", date(2021, 2, 1), date(2020, 11, 30), 3},
		{"Day of month ignored", date(2020, 2, 1), date(2020, 1, 31), 1},
		{"Target in the past", date(2019, 11, 15), date(2020, 1, 15), -2},
		{"Several years", date(2030, 6, 15), date(2020, 1, 15), 125},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MonthsBetween(tt.target, tt.reference))
		})
	}
}

func TestDateAfterMonths(t *testing.T) {
	tests := []struct {
		name      string
		reference time.Time
		months    int
		want      time.Time
	}{
		{"21 months crosses two year ends", date(2020, 6, 15), 21, date(2022, 3, 15)},
		{"12 months from December", date(2020, 12, 15), 12, date(2021, 12, 15)},
		{"Into December", date(2020, 1, 15), 11, date(2020, 12, 15)},
		{"One month from November", date(2020, 11, 15), 1, date(2020, 12, 15)},
		{"One month from December", date(2020, 12, 15), 1, date(2021, 1, 15)},
		{"Zero months", date(2020, 5, 15), 0, date(2020, 5, 15)},
		{"Negative months", date(2020, 2, 15), -3, date(2019, 11, 15)},
		{"Clamps to month end", date(2020, 1, 31), 1, date(2020, 2, 29)},
		{"Clamps in non-leap year", date(2021, 1, 31), 1, date(2021, 2, 28)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DateAfterMonths(tt.reference, tt.months))
		})
	}
}

func TestDateAfterMonthsInvertsMonthsBetween(t *testing.T) {
	ref := date(2013, 12, 15)
	for n := -30; n <= 30; n++ {
		assert.Equal(t, n, MonthsBetween(DateAfterMonths(ref, n), ref), "n=%d", n)
	}
}

func TestParseDate(t *testing.T) {
	got, err := ParseDate("2020-03-15")
	require.NoError(t, err)
	assert.Equal(t, date(2020, 3, 15), got)

	got, err = ParseDate("2020-03-15T00:00:00Z")
	require.NoError(t, err)
	assert.Equal(t, date(2020, 3, 15), got)

	_, err = ParseDate("15/03/2020")
	assert.Error(t, err)
}

func TestDaysInMonth(t *testing.T) {
	assert.Equal(t, 29, DaysInMonth(2020, time.February))
	assert.Equal(t, 28, DaysInMonth(2100, time.February))
	assert.Equal(t, 29, DaysInMonth(2000, time.February))
	assert.Equal(t, 31, DaysInMonth(2021, time.December))
}
