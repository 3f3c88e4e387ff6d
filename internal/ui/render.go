package ui

import (
	"fmt"
	"strings"

	"github.com/idilsaglam/teamtodo/internal/app"
	"github.com/idilsaglam/teamtodo/internal/due"
)

const (
	EmptyState  = "할 일이 없습니다. 새로운 할 일을 추가해보세요!"
	ChatWelcome = "팀 채팅에 오신 것을 환영합니다!"
)

// StatsLine renders "총 N개 · 완료 M개".
func StatsLine(s app.Stats) string {
	return fmt.Sprintf("총 %d개 · 완료 %d개", s.Total, s.Completed)
}

// DueStyle picks the style for a due class.
func DueStyle(c due.Class) func(...string) string {
	t := Current()
	switch c {
	case due.Overdue:
		return t.Overdue.Render
	case due.Today:
		return t.DueToday.Render
	case due.Soon:
		return t.DueSoon.Render
	}
	return t.Muted.Render
}

// RowLine renders one item: box, text, author and due label.
func RowLine(r app.Row) string {
	t := Current()
	box := t.Muted.Render(t.BoxUnchecked)
	text := r.Item.Text
	if r.Item.Completed {
		box = t.Success.Render(t.BoxChecked)
		text = t.Done.Render(text)
	}
	parts := []string{
		t.Muted.Render(fmt.Sprintf("#%-3d", r.Item.ID)),
		box,
		text,
	}
	if r.AuthorName != "" {
		parts = append(parts, t.Accent.Render("by "+r.AuthorName))
	}
	if r.DueLabel != "" {
		parts = append(parts, DueStyle(r.Class)(r.DueLabel))
	}
	return strings.Join(parts, " ")
}

// ChatLine renders one chat message.
func ChatLine(l app.ChatLine) string {
	t := Current()
	if l.System {
		return t.System.Render(fmt.Sprintf("[%s] %s", l.Clock, l.Text))
	}
	who := l.Who
	if l.Own {
		who = t.Accent.Render(who)
	}
	return fmt.Sprintf("%s %s %s", who, t.Muted.Render("• "+l.Clock), l.Text)
}

// ListLines renders the header, stats and rows of a view.
func ListLines(v app.View) []string {
	t := Current()
	header := t.Title.Render(v.Title)
	if v.User != nil {
		header += "  " + t.Muted.Render(v.User.DisplayName)
	}
	lines := []string{
		header,
		t.Accent.Render(StatsLine(v.Stats)),
		ProgressBar(v.Stats.Completed, v.Stats.Total, 28),
		"",
	}
	if v.Empty {
		return append(lines, t.Muted.Render(EmptyState))
	}
	for _, r := range v.Rows {
		lines = append(lines, RowLine(r))
	}
	return lines
}

// ChatLines renders the chat section, welcome banner first.
func ChatLines(v app.View) []string {
	t := Current()
	lines := []string{t.System.Render(ChatWelcome)}
	for _, l := range v.Chat {
		lines = append(lines, ChatLine(l))
	}
	return lines
}

// Render draws a full view as a framed panel, with the chat below it in
// team mode.
func Render(v app.View) string {
	out := Panel(ListLines(v))
	if v.ShowChat {
		out += "\n" + Panel(ChatLines(v))
	}
	return out
}
