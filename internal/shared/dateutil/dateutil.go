package dateutil

import "time"

const DateLayout = "2006-01-02"

// DaysInMonth returns the number of calendar days in a month, weekends
// included. Payroll proration uses this count.
func DaysInMonth(year, month int) int {
	// Day zero of the next month is the last day of this one.
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// MonthRange returns the first and last calendar day of a month.
func MonthRange(year, month int) (time.Time, time.Time) {
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC)
	return start, end
}

// WorkingDaysInMonth counts Monday-Friday days. Display screens use this;
// the payroll generator intentionally does not (it prorates over calendar
// days, see DaysInMonth).
func WorkingDaysInMonth(year, month int) int {
	start, end := MonthRange(year, month)
	workingDays := 0
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		wd := d.Weekday()
		if wd != time.Saturday && wd != time.Sunday {
			workingDays++
		}
	}
	return workingDays
}

// EachDay calls fn for every calendar day in [start, end] inclusive,
// weekends included.
func EachDay(start, end time.Time, fn func(day time.Time) error) error {
	for d := truncateToDay(start); !d.After(truncateToDay(end)); d = d.AddDate(0, 0, 1) {
		if err := fn(d); err != nil {
			return err
		}
	}
	return nil
}

// InclusiveDays is the calendar day count of [start, end], both ends counted.
func InclusiveDays(start, end time.Time) int {
	s, e := truncateToDay(start), truncateToDay(end)
	if e.Before(s) {
		return 0
	}
	return int(e.Sub(s).Hours()/24) + 1
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
