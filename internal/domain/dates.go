package domain

import "time"

// MonthBounds returns the first and last calendar day of the given
// month as DayFormat strings. The last day is computed as day zero of
// the following month, which handles 28/29/30/31-day months and leap
// years uniformly.
func MonthBounds(year, month int) (start, end string) {
	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	last := time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC)
	return first.Format(DayFormat), last.Format(DayFormat)
}

// DaysInMonth returns the number of calendar days in the given month.
func DaysInMonth(year, month int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// ValidDay reports whether s is a well-formed DayFormat date.
func ValidDay(s string) bool {
	_, err := time.Parse(DayFormat, s)
	return err == nil
}
