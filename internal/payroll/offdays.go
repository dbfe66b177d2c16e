package payroll

import (
	"errors"
	"slices"
	"time"
)

var ErrInvalidWeekday = errors.New("weekday must be between 0 (Sunday) and 6 (Saturday)")

// IsOffDay reports whether weekday is configured as a non-working day.
func (s Settings) IsOffDay(weekday time.Weekday) bool {
	return slices.Contains(s.OffDays, int(weekday))
}

// IsOffDate reports whether the date key falls on an off-day. Malformed
// keys are never off-days.
func (s Settings) IsOffDate(key string) bool {
	t, err := ParseDateKey(key)
	if err != nil {
		return false
	}
	return s.IsOffDay(t.Weekday())
}

// ToggleOffDay returns a copy of days with weekday added or removed, sorted.
func ToggleOffDay(days []int, weekday int) ([]int, error) {
	if weekday < 0 || weekday > 6 {
		return nil, ErrInvalidWeekday
	}
	out := make([]int, 0, len(days)+1)
	found := false
	for _, d := range days {
		if d == weekday {
			found = true
			continue
		}
		out = append(out, d)
	}
	if !found {
		out = append(out, weekday)
	}
	return normalizeOffDays(out), nil
}

// normalizeOffDays drops out of range and duplicate weekdays and sorts the rest.
func normalizeOffDays(days []int) []int {
	out := make([]int, 0, len(days))
	for _, d := range days {
		if d < 0 || d > 6 || slices.Contains(out, d) {
			continue
		}
		out = append(out, d)
	}
	slices.Sort(out)
	return out
}

// WeekdayShort is the three letter weekday name used in calendar headers.
func WeekdayShort(d int) string {
	return time.Weekday(d).String()[:3]
}
