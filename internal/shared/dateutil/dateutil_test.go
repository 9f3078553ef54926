package dateutil_test

import (
	"testing"
	"time"

	"dayflow/internal/shared/dateutil"

	"github.com/stretchr/testify/assert"
)

func TestDaysInMonth(t *testing.T) {
	assert.Equal(t, 30, dateutil.DaysInMonth(2025, 6))
	assert.Equal(t, 31, dateutil.DaysInMonth(2025, 7))
	assert.Equal(t, 28, dateutil.DaysInMonth(2025, 2))
	assert.Equal(t, 29, dateutil.DaysInMonth(2024, 2))
	assert.Equal(t, 31, dateutil.DaysInMonth(2025, 12))
}

func TestMonthRange(t *testing.T) {
	start, end := dateutil.MonthRange(2025, 2)
	assert.Equal(t, "2025-02-01", start.Format(dateutil.DateLayout))
	assert.Equal(t, "2025-02-28", end.Format(dateutil.DateLayout))

	start, end = dateutil.MonthRange(2025, 12)
	assert.Equal(t, "2025-12-01", start.Format(dateutil.DateLayout))
	assert.Equal(t, "2025-12-31", end.Format(dateutil.DateLayout))
}

func TestWorkingDaysInMonth(t *testing.T) {
	// June 2025: 21 weekdays.
	assert.Equal(t, 21, dateutil.WorkingDaysInMonth(2025, 6))
	// February 2025 starts on a Saturday: 20 weekdays.
	assert.Equal(t, 20, dateutil.WorkingDaysInMonth(2025, 2))
}

func TestEachDay(t *testing.T) {
	start := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC)

	var seen []string
	err := dateutil.EachDay(start, end, func(day time.Time) error {
		seen = append(seen, day.Format(dateutil.DateLayout))
		return nil
	})

	assert.NoError(t, err)
	assert.Equal(t, []string{"2025-03-10", "2025-03-11", "2025-03-12"}, seen)
}

func TestEachDaySpansWeekend(t *testing.T) {
	// Friday through Monday: all four days visited, weekend included.
	start := time.Date(2025, 3, 7, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	count := 0
	err := dateutil.EachDay(start, end, func(time.Time) error {
		count++
		return nil
	})

	assert.NoError(t, err)
	assert.Equal(t, 4, count)
}

func TestInclusiveDays(t *testing.T) {
	d := func(s string) time.Time {
		t, _ := time.Parse(dateutil.DateLayout, s)
		return t
	}

	assert.Equal(t, 1, dateutil.InclusiveDays(d("2025-03-10"), d("2025-03-10")))
	assert.Equal(t, 3, dateutil.InclusiveDays(d("2025-03-10"), d("2025-03-12")))
	assert.Equal(t, 0, dateutil.InclusiveDays(d("2025-03-12"), d("2025-03-10")))
}
