package app

import (
	"github.com/idilsaglam/teamtodo/internal/due"
	"github.com/idilsaglam/teamtodo/internal/model"
)

// Titles shown per mode.
const (
	TitlePersonal = "기쁨과소원"
	TitleTeam     = "기쁨과소원 팀"
	OwnLabel      = "나"
)

// Row is one item as the rendering surface receives it.
type Row struct {
	Item       model.Item
	Class      due.Class
	DueLabel   string // "" when the item has no due date
	AuthorName string // set in team mode only
}

// ChatLine is one chat message ready to draw.
type ChatLine struct {
	Who    string
	Clock  string // HH:MM
	Text   string
	Own    bool
	System bool
}

// View is everything a renderer needs for one frame.
type View struct {
	Title     string
	Mode      model.Mode
	User      *model.Session
	Rows      []Row
	Stats     Stats
	Empty     bool
	ShowShare bool
	ShowChat  bool
	Chat      []ChatLine
}

// View builds the display records for the current mode.
func (c *Controller) View() View {
	now := c.Now()
	team := c.teamActive()
	v := View{
		Title:     TitlePersonal,
		Mode:      c.state.Mode,
		Stats:     c.Stats(),
		ShowShare: team,
		ShowChat:  team,
	}
	if team {
		v.Title = TitleTeam
	}
	if s, ok := c.CurrentSession(); ok {
		v.User = &s
	}

	for _, it := range c.Items() {
		r := Row{Item: it}
		if it.HasDue() {
			if d, err := due.ParseDate(*it.DueDate, c.loc); err == nil {
				clock := ""
				if it.HasDueTime() {
					clock = *it.DueTime
				}
				r.Class, r.DueLabel = due.Label(d, now, clock)
			}
		}
		if team {
			r.AuthorName = it.AuthorName
		}
		v.Rows = append(v.Rows, r)
	}
	v.Empty = len(v.Rows) == 0

	if team {
		v.Chat = c.ChatLines()
	}
	return v
}

// ChatLines returns the chat log as display lines, own messages labelled.
func (c *Controller) ChatLines() []ChatLine {
	me := ""
	if c.state.Session != nil {
		me = c.state.Session.Username
	}
	out := make([]ChatLine, 0, len(c.state.Messages))
	for _, m := range c.state.Messages {
		l := ChatLine{
			Who:    m.DisplayName,
			Clock:  m.Timestamp.In(c.loc).Format(due.ClockLayout),
			Text:   m.Text,
			Own:    me != "" && m.Username == me,
			System: m.IsSystem,
		}
		if l.Own {
			l.Who = OwnLabel
		}
		out = append(out, l)
	}
	return out
}
