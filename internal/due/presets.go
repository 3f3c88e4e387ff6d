package due

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"
)

// Preset is a one-tap due date choice.
type Preset struct {
	Key   string
	Label string
}

// Presets are the quick choices offered next to the manual date input.
var Presets = []Preset{
	{Key: "today", Label: "오늘"},
	{Key: "tomorrow", Label: "내일"},
	{Key: "+3", Label: "3일 후"},
	{Key: "+7", Label: "일주일 후"},
	{Key: "month-end", Label: "이번 달 말"},
	{Key: "next-month", Label: "다음 달 1일"},
}

// LastDayOfMonth returns the last calendar day of t's month.
func LastDayOfMonth(t time.Time) time.Time {
	// day 0 of next month normalizes to the last day of this one
	return time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, t.Location())
}

// FirstDayOfNextMonth returns the 1st of the month after t's.
func FirstDayOfNextMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month()+1, 1, 0, 0, 0, 0, t.Location())
}

// AddDays moves t by n calendar days, keeping midnight.
func AddDays(t time.Time, n int) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day()+n, 0, 0, 0, 0, t.Location())
}

// Resolve turns a preset key, "+N", or a literal YYYY-MM-DD into a due date
// string relative to now.
func Resolve(expr string, now time.Time) (string, error) {
	expr = strings.TrimSpace(strings.ToLower(expr))
	var d time.Time
	switch {
	case expr == "":
		return "", fmt.Errorf("empty due date")
	case expr == "today":
		d = AddDays(now, 0)
	case expr == "tomorrow":
		d = AddDays(now, 1)
	case expr == "month-end":
		d = LastDayOfMonth(now)
	case expr == "next-month":
		d = FirstDayOfNextMonth(now)
	case strings.HasPrefix(expr, "+"):
		n, err := strconv.Atoi(expr[1:])
		if err != nil || n < 0 {
			return "", fmt.Errorf("due offset %q: want +N days", expr)
		}
		d = AddDays(now, n)
	default:
		t, err := ParseDate(expr, now.Location())
		if err != nil {
			return "", err
		}
		d = t
	}
	return d.Format(DateLayout), nil
}

// Minutes are the selectable quarter-hours.
var Minutes = []string{"00", "15", "30", "45"}

// Hours returns "00".."23".
func Hours() []string {
	out := make([]string, 24)
	for h := range out {
		out[h] = fmt.Sprintf("%02d", h)
	}
	return out
}

// ValidHour reports whether h is a two-digit hour 00-23.
func ValidHour(h string) bool {
	if len(h) != 2 {
		return false
	}
	n, err := strconv.Atoi(h)
	return err == nil && n >= 0 && n <= 23
}

// ValidMinute reports whether m is one of the quarter-hour options.
func ValidMinute(m string) bool {
	return slices.Contains(Minutes, m)
}

// SplitClock parses "H:MM" or "HH:MM" into picker values.
func SplitClock(s string) (hour, minute string, err error) {
	h, m, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok {
		return "", "", fmt.Errorf("time %q: want HH:MM", s)
	}
	if len(h) == 1 {
		h = "0" + h
	}
	if !ValidHour(h) {
		return "", "", fmt.Errorf("time %q: hour must be 00-23", s)
	}
	if !ValidMinute(m) {
		return "", "", fmt.Errorf("time %q: minutes must be one of %s", s, strings.Join(Minutes, ", "))
	}
	return h, m, nil
}
