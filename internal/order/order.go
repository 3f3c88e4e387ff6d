// Package order computes the display order of a collection.
package order

import (
	"slices"
	"time"

	"github.com/idilsaglam/teamtodo/internal/due"
	"github.com/idilsaglam/teamtodo/internal/model"
)

// key is the comparable projection of an item. Items whose due date does
// not parse are ranked as undated.
type key struct {
	completed bool
	dated     bool
	day       time.Time
	timed     bool
	instant   time.Time
	created   time.Time
}

func keyOf(it model.Item, loc *time.Location) key {
	k := key{completed: it.Completed, created: it.CreatedAt}
	if !it.HasDue() {
		return k
	}
	day, err := due.ParseDate(*it.DueDate, loc)
	if err != nil {
		return k
	}
	k.dated = true
	k.day = day
	k.instant, k.timed = effective(it, day, loc)
	return k
}

// effective returns the due instant and whether it came from a set time.
func effective(it model.Item, day time.Time, loc *time.Location) (time.Time, bool) {
	if it.HasDueTime() {
		if it.DueDateTime != nil {
			if t, err := time.ParseInLocation(due.DateTimeLayout, *it.DueDateTime, loc); err == nil {
				return t, true
			}
		}
		if c, err := time.ParseInLocation(due.ClockLayout, *it.DueTime, loc); err == nil {
			return time.Date(day.Year(), day.Month(), day.Day(), c.Hour(), c.Minute(), 0, 0, loc), true
		}
	}
	return endOfDay(day), false
}

func endOfDay(day time.Time) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), 23, 59, 59, int(999*time.Millisecond), day.Location())
}

// EffectiveInstant is the moment an item is due: its date and time when a
// time is set, the last millisecond of the due day otherwise. ok is false
// for undated items.
func EffectiveInstant(it model.Item, loc *time.Location) (t time.Time, ok bool) {
	k := keyOf(it, withDefault(loc))
	return k.instant, k.dated
}

// Compare ranks two items for display. It is a lexicographic comparison
// over (completed, undated, due day, untimed, due instant, -createdAt), so
// it is transitive.
func Compare(a, b model.Item, loc *time.Location) int {
	loc = withDefault(loc)
	return compareKeys(keyOf(a, loc), keyOf(b, loc))
}

func compareKeys(a, b key) int {
	if a.completed != b.completed {
		if a.completed {
			return 1
		}
		return -1
	}
	if a.dated != b.dated {
		if a.dated {
			return -1
		}
		return 1
	}
	if a.dated {
		if c := a.day.Compare(b.day); c != 0 {
			return c
		}
		if a.timed != b.timed {
			if a.timed {
				return -1
			}
			return 1
		}
		if c := a.instant.Compare(b.instant); c != 0 {
			return c
		}
	}
	// newest first
	return b.created.Compare(a.created)
}

// Order returns a stably sorted copy of items. The input is not modified.
func Order(items []model.Item, loc *time.Location) []model.Item {
	loc = withDefault(loc)
	type ranked struct {
		item model.Item
		key  key
	}
	rs := make([]ranked, len(items))
	for i, it := range items {
		rs[i] = ranked{item: it, key: keyOf(it, loc)}
	}
	slices.SortStableFunc(rs, func(a, b ranked) int {
		return compareKeys(a.key, b.key)
	})
	out := make([]model.Item, len(rs))
	for i, r := range rs {
		out[i] = r.item
	}
	return out
}

func withDefault(loc *time.Location) *time.Location {
	if loc == nil {
		return time.Local
	}
	return loc
}
