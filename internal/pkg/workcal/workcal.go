// Package workcal decides which calendar days count as working days for a
// school week and enumerates working-day sequences between two dates.
package workcal

import (
	"errors"
	"time"
)

// ErrInvalidRange is returned when a ranged operation receives an inverted
// range (start after end).
var ErrInvalidRange = errors.New("start date must not be after end date")

// Calendar is a weekend policy: the set of weekdays excluded from working
// days. The zero value treats every day as a working day.
type Calendar struct {
	weekend map[time.Weekday]bool
}

// New builds a Calendar excluding the given weekdays.
func New(weekend ...time.Weekday) Calendar {
	m := make(map[time.Weekday]bool, len(weekend))
	for _, d := range weekend {
		m[d] = true
	}
	return Calendar{weekend: m}
}

// Default is the school-week calendar: Friday and Saturday off.
func Default() Calendar {
	return New(time.Friday, time.Saturday)
}

// IsWorkingDay reports whether d falls outside the weekend set.
func (c Calendar) IsWorkingDay(d time.Time) bool {
	return !c.weekend[d.Weekday()]
}

// WorkingDaysBetween returns every working day from start to end inclusive,
// ascending. It fails fast with ErrInvalidRange on an inverted range rather
// than scanning backward.
func (c Calendar) WorkingDaysBetween(start, end time.Time) ([]time.Time, error) {
	start = day(start)
	end = day(end)
	if start.After(end) {
		return nil, ErrInvalidRange
	}

	var days []time.Time
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if c.IsWorkingDay(d) {
			days = append(days, d)
		}
	}
	return days, nil
}

func day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
