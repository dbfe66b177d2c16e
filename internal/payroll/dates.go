package payroll

import (
	"fmt"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// DateKey formats t as the YYYY-MM-DD key used for records.
func DateKey(t time.Time) string {
	return t.Format(dateLayout)
}

// ParseDateKey parses a YYYY-MM-DD key.
func ParseDateKey(key string) (time.Time, error) {
	t, err := time.Parse(dateLayout, key)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date key %q: %w", key, err)
	}
	return t, nil
}

// MonthKey returns the YYYY-MM prefix shared by every date key of a month.
func MonthKey(year int, month time.Month) string {
	return fmt.Sprintf("%04d-%02d", year, int(month))
}

// InMonth reports whether the date key belongs to the given month.
func InMonth(key string, year int, month time.Month) bool {
	return strings.HasPrefix(key, MonthKey(year, month)+"-")
}

// DaysInMonth returns the number of days in month of year.
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// FirstOfMonth returns midnight UTC on the first day of month.
func FirstOfMonth(year int, month time.Month) time.Time {
	return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
}
