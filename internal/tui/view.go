package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/teamtodo/internal/model"
	"github.com/idilsaglam/teamtodo/internal/ui"
)

// chat lines kept on screen below the list
const chatTail = 8

func (m Model) View() string {
	t := ui.Current()
	v := m.ctl.View()

	header := ui.ListLines(v)[:3:3]
	var below []string
	switch m.state {
	case adding:
		below = append(below, m.addBar())
	case chatting:
		below = append(below, bar("채팅", m.ti.View()))
	case confirming:
		below = append(below, t.Pending.Render(m.question+" (y/n)"))
	}
	if m.feedback != "" {
		style := t.Success
		if m.isError {
			style = t.Error
		}
		below = append(below, style.Render(m.feedback))
	}

	var chat string
	if v.ShowChat {
		lines := ui.ChatLines(v)
		if len(lines) > chatTail+1 {
			lines = append(lines[:1], lines[len(lines)-chatTail:]...)
		}
		chat = ui.Panel(lines)
	}

	// the list takes what is left of the screen
	used := len(header) + 3 + lipgloss.Height(strings.Join(below, "\n"))
	if chat != "" {
		used += lipgloss.Height(chat)
	}
	m.list.SetSize(m.width-4, max(m.height-used, 3))

	body := m.list.View()
	if v.Empty {
		body = t.Muted.Render(ui.EmptyState)
	}
	parts := append(header, body)
	parts = append(parts, below...)
	out := ui.Panel(parts)
	if chat != "" {
		out = lipgloss.JoinVertical(lipgloss.Left, out, chat)
	}
	return out
}

func (m Model) addBar() string {
	title := "새 할 일"
	switch m.step {
	case stepDue:
		title = "마감일"
	case stepTime:
		title = "마감 시간"
	}
	if m.step == stepText && m.ctl.Mode() == model.ModeTeam {
		share := "개인"
		if m.draft.ShareType == model.ShareTeam {
			share = "팀 공유"
		}
		title += " · " + share
	}
	return bar(title, m.ti.View())
}

func bar(title, input string) string {
	t := ui.Current()
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderColor).
		Padding(0, 1).
		Render(t.Title.Render(title) + "\n" + input)
}
