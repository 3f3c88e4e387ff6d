package app

import (
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/idilsaglam/teamtodo/internal/due"
	"github.com/idilsaglam/teamtodo/internal/model"
	"github.com/idilsaglam/teamtodo/internal/order"
)

// MaxTextLen is the longest accepted item text, in characters.
const MaxTextLen = 100

// AddInput describes a new item. DueDate is YYYY-MM-DD; Hour and Minute are
// the picker values ("09", "30"). Time is only kept when the date and both
// parts are present.
type AddInput struct {
	Text      string
	DueDate   string
	Hour      string
	Minute    string
	ShareType model.ShareType
}

// Stats counts the active collection.
type Stats struct {
	Total     int
	Completed int
}

func (c *Controller) teamActive() bool { return c.state.Mode == model.ModeTeam }

func (c *Controller) active() *[]model.Item {
	if c.teamActive() {
		return &c.state.Team
	}
	return &c.state.Personal
}

// Items returns the active collection in display order.
func (c *Controller) Items() []model.Item {
	return order.Order(*c.active(), c.loc)
}

// Lookup finds an item by id in the active collection.
func (c *Controller) Lookup(id int) (model.Item, bool) {
	items := *c.active()
	i := slices.IndexFunc(items, func(it model.Item) bool { return it.ID == id })
	if i < 0 {
		return model.Item{}, false
	}
	return items[i], true
}

// Add validates in, assigns the next id and prepends the item.
//
// Team items only land in the team collection while the team mode is
// active; in personal mode a team-flagged item goes to the personal
// collection and no chat notice is posted.
func (c *Controller) Add(in AddInput) (model.Item, error) {
	sess := c.state.Session
	if sess == nil {
		return model.Item{}, ErrNotSignedIn
	}
	text := strings.TrimSpace(in.Text)
	if text == "" {
		return model.Item{}, ErrEmptyText
	}
	if utf8.RuneCountInString(text) > MaxTextLen {
		return model.Item{}, ErrTextTooLong
	}

	it := model.Item{
		Text:       text,
		CreatedAt:  c.now(),
		ShareType:  in.ShareType,
		Author:     sess.Username,
		AuthorName: sess.DisplayName,
	}
	if it.ShareType != model.ShareTeam {
		it.ShareType = model.SharePersonal
	}

	if date := strings.TrimSpace(in.DueDate); date != "" {
		if _, err := due.ParseDate(date, c.loc); err != nil {
			return model.Item{}, fmt.Errorf("%w: %w", ErrInvalidDueDate, err)
		}
		it.DueDate = &date
		hour, minute := strings.TrimSpace(in.Hour), strings.TrimSpace(in.Minute)
		if hour != "" && !due.ValidHour(hour) {
			return model.Item{}, fmt.Errorf("%w: hour %q", ErrInvalidDueTime, hour)
		}
		if minute != "" && !due.ValidMinute(minute) {
			return model.Item{}, fmt.Errorf("%w: minute %q", ErrInvalidDueTime, minute)
		}
		if hour != "" && minute != "" {
			clock := hour + ":" + minute
			stamp := date + "T" + clock + ":00"
			it.DueTime = &clock
			it.DueDateTime = &stamp
		}
	}

	it.ID = c.state.NextID
	c.state.NextID++

	if c.teamActive() && it.ShareType == model.ShareTeam {
		c.state.Team = slices.Insert(c.state.Team, 0, it)
		c.saveTeamTodos()
		c.saveCounter()
		c.postSystem(fmt.Sprintf("%s님이 새로운 팀 할 일을 추가했습니다: \"%s\"", sess.DisplayName, text))
	} else {
		c.state.Personal = slices.Insert(c.state.Personal, 0, it)
		c.saveTodos()
	}
	c.log.Debug("item added", "id", it.ID, "share", it.ShareType, "mode", c.state.Mode)
	return it, nil
}

// Toggle flips completion of id in the active collection. ok is false when
// there is no such item.
func (c *Controller) Toggle(id int) (model.Item, bool) {
	items := *c.active()
	i := slices.IndexFunc(items, func(it model.Item) bool { return it.ID == id })
	if i < 0 {
		return model.Item{}, false
	}
	items[i].Completed = !items[i].Completed
	c.saveActive()
	return items[i], true
}

// Remove deletes id from the active collection and reports whether it existed.
func (c *Controller) Remove(id int) bool {
	col := c.active()
	n := len(*col)
	*col = slices.DeleteFunc(*col, func(it model.Item) bool { return it.ID == id })
	if len(*col) == n {
		return false
	}
	c.saveActive()
	return true
}

// CompletedPersonal counts completed items in the personal collection.
func (c *Controller) CompletedPersonal() int {
	n := 0
	for _, it := range c.state.Personal {
		if it.Completed {
			n++
		}
	}
	return n
}

// ClearCompleted removes completed items from the personal collection only.
func (c *Controller) ClearCompleted() (int, error) {
	n := c.CompletedPersonal()
	if n == 0 {
		return 0, ErrNothingToClear
	}
	c.state.Personal = slices.DeleteFunc(c.state.Personal, func(it model.Item) bool { return it.Completed })
	c.saveTodos()
	return n, nil
}

// ClearAll empties the personal collection and restarts ids at 1. The team
// collection is untouched.
func (c *Controller) ClearAll() (int, error) {
	n := len(c.state.Personal)
	if n == 0 {
		return 0, ErrNothingToClear
	}
	c.state.Personal = []model.Item{}
	c.state.NextID = 1
	c.saveTodos()
	return n, nil
}

// Stats counts the active collection.
func (c *Controller) Stats() Stats {
	var s Stats
	for _, it := range *c.active() {
		s.Total++
		if it.Completed {
			s.Completed++
		}
	}
	return s
}
