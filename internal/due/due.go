// Package due holds the calendar helpers around item due dates:
// classification for display, quick-date presets and the time picker grid.
package due

import (
	"fmt"
	"time"
)

const (
	DateLayout     = "2006-01-02"
	ClockLayout    = "15:04"
	DateTimeLayout = "2006-01-02T15:04:05"
)

// Class is a presentation-only bucket; it never affects ordering.
type Class int

const (
	None Class = iota
	Overdue
	Today
	Soon
)

func (c Class) String() string {
	switch c {
	case Overdue:
		return "overdue"
	case Today:
		return "due-today"
	case Soon:
		return "due-soon"
	}
	return ""
}

// SoonWindow is the number of days ahead still considered "due soon".
const SoonWindow = 3

// ParseDate parses a YYYY-MM-DD due date at midnight in loc.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	t, err := time.ParseInLocation(DateLayout, s, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("due date %q: %w", s, err)
	}
	return t, nil
}

// civil drops the clock and zone, keeping only the calendar date.
func civil(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DaysUntil returns the number of calendar days from now to due.
// Both are reduced to their calendar dates first, so the result is the
// ceiling of the day delta and is unaffected by DST shifts.
func DaysUntil(due, now time.Time) int {
	// Unix seconds rather than Duration, which overflows past ~292 years.
	return int((civil(due).Unix() - civil(now).Unix()) / 86400)
}

// Classify buckets a day difference.
func Classify(days int) Class {
	switch {
	case days < 0:
		return Overdue
	case days == 0:
		return Today
	case days <= SoonWindow:
		return Soon
	}
	return None
}

// Label returns the class and the short text shown next to an item.
// clock is the optional HH:MM due time ("" when absent).
func Label(dueDate, now time.Time, clock string) (Class, string) {
	days := DaysUntil(dueDate, now)
	class := Classify(days)
	switch class {
	case Overdue:
		return class, withClock(fmt.Sprintf("%d일 지남", -days), clock, true)
	case Today:
		return class, withClock("오늘", clock, false)
	case Soon:
		return class, withClock(fmt.Sprintf("%d일 남음", days), clock, true)
	}
	return class, withClock(fmt.Sprintf("%d/%d", int(dueDate.Month()), dueDate.Day()), clock, false)
}

func withClock(s, clock string, paren bool) string {
	if clock == "" {
		return s
	}
	if paren {
		return s + " (" + clock + ")"
	}
	return s + " " + clock
}
