package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/teamtodo/internal/app"
	"github.com/idilsaglam/teamtodo/internal/model"
	"github.com/idilsaglam/teamtodo/internal/store/memstore"
	"github.com/idilsaglam/teamtodo/internal/ui"
)

func newModel(t *testing.T) (Model, *app.Controller) {
	t.Helper()
	ctl := app.New(memstore.New(), app.WithLocation(time.UTC))
	ctl.EnsureDefaultUser()
	return New(ctl), ctl
}

func send(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm, cmd
}

func keyRunes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

var (
	enter = tea.KeyMsg{Type: tea.KeyEnter}
	space = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	esc   = tea.KeyMsg{Type: tea.KeyEsc}
)

func addItem(t *testing.T, m Model, text string, extra ...string) Model {
	t.Helper()
	m, _ = send(t, m, keyRunes("a"))
	m, _ = send(t, m, keyRunes(text))
	m, _ = send(t, m, enter)
	for _, v := range extra {
		m, _ = send(t, m, keyRunes(v))
		m, _ = send(t, m, enter)
	}
	if len(extra) < 2 {
		m, _ = send(t, m, enter)
	}
	return m
}

func TestAddToggleDelete(t *testing.T) {
	m, ctl := newModel(t)

	m = addItem(t, m, "Buy milk")
	if got := ctl.Stats(); got.Total != 1 {
		t.Fatalf("Stats after add: %+v", got)
	}
	if m.state != browsing || m.feedback != ui.MsgAdded {
		t.Fatalf("after add: state=%v feedback=%q", m.state, m.feedback)
	}

	m, cmd := send(t, m, space)
	if cmd == nil || ctl.Stats().Completed != 1 || m.feedback != ui.MsgCompleted {
		t.Fatalf("toggle: stats=%+v feedback=%q", ctl.Stats(), m.feedback)
	}

	m, _ = send(t, m, keyRunes("d"))
	if m.state != confirming {
		t.Fatalf("delete did not ask first: %v", m.state)
	}
	m, _ = send(t, m, keyRunes("n"))
	if ctl.Stats().Total != 1 {
		t.Fatal("declined delete removed the item")
	}
	m, _ = send(t, m, keyRunes("d"))
	m, _ = send(t, m, keyRunes("y"))
	if ctl.Stats().Total != 0 || m.feedback != ui.MsgRemoved {
		t.Fatalf("delete: stats=%+v feedback=%q", ctl.Stats(), m.feedback)
	}
}

func TestAddWithDueAndTime(t *testing.T) {
	m, ctl := newModel(t)
	m = addItem(t, m, "Report", "2030-01-02", "9:30")
	items := ctl.Items()
	if len(items) != 1 || !items[0].HasDueTime() || *items[0].DueTime != "09:30" {
		t.Fatalf("items: %+v", items)
	}
	if !strings.Contains(m.View(), "1/2 09:30") {
		t.Fatalf("due label not drawn:\n%s", m.View())
	}
}

func TestAddRejectsBadDueAndStaysInForm(t *testing.T) {
	m, ctl := newModel(t)
	m, _ = send(t, m, keyRunes("a"))
	m, _ = send(t, m, keyRunes("x"))
	m, _ = send(t, m, enter)
	m, _ = send(t, m, keyRunes("someday"))
	m, _ = send(t, m, enter)
	if m.state != adding || m.step != stepDue || !m.isError {
		t.Fatalf("state=%v step=%v err=%v", m.state, m.step, m.isError)
	}
	m, _ = send(t, m, esc)
	if m.state != browsing || ctl.Stats().Total != 0 {
		t.Fatal("esc did not cancel the form")
	}
}

func TestEmptyTextIsRejected(t *testing.T) {
	m, ctl := newModel(t)
	m, _ = send(t, m, keyRunes("a"))
	m, _ = send(t, m, enter)
	if m.feedback != ui.Message(app.ErrEmptyText) || ctl.Stats().Total != 0 {
		t.Fatalf("feedback=%q", m.feedback)
	}
}

func TestFeedbackExpires(t *testing.T) {
	m, _ := newModel(t)
	m = addItem(t, m, "x")
	old := m.feedbackID
	m, _ = send(t, m, space)

	// a stale tick leaves the newer message alone
	m, _ = send(t, m, feedbackExpired{id: old})
	if m.feedback == "" {
		t.Fatal("stale tick cleared the newer message")
	}
	m, _ = send(t, m, feedbackExpired{id: m.feedbackID})
	if m.feedback != "" {
		t.Fatalf("feedback not cleared: %q", m.feedback)
	}
}

func TestTeamModeAndChat(t *testing.T) {
	m, ctl := newModel(t)

	// chat is team-only
	m, _ = send(t, m, keyRunes("c"))
	if m.state != browsing {
		t.Fatal("chat opened in personal mode")
	}

	m, _ = send(t, m, keyRunes("t"))
	if ctl.Mode() != model.ModeTeam {
		t.Fatal("t did not switch to team mode")
	}

	m, _ = send(t, m, keyRunes("a"))
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.draft.ShareType != model.ShareTeam {
		t.Fatal("tab did not mark the item as shared")
	}
	m, _ = send(t, m, keyRunes("Plan"))
	m, _ = send(t, m, enter)
	m, _ = send(t, m, enter)
	if got := len(ctl.State().Team); got != 1 {
		t.Fatalf("team items: %d", got)
	}

	m, _ = send(t, m, keyRunes("c"))
	m, _ = send(t, m, keyRunes("hello"))
	m, _ = send(t, m, enter)
	msgs := ctl.Messages()
	if len(msgs) != 2 || msgs[1].Text != "hello" {
		t.Fatalf("messages: %+v", msgs)
	}
	view := m.View()
	if !strings.Contains(view, "hello") || !strings.Contains(view, ui.ChatWelcome) {
		t.Fatalf("chat not drawn:\n%s", view)
	}
}

func TestClearKeys(t *testing.T) {
	m, ctl := newModel(t)
	m, _ = send(t, m, keyRunes("x"))
	if m.feedback != ui.MsgNoCompleted {
		t.Fatalf("feedback=%q", m.feedback)
	}

	m = addItem(t, m, "a")
	m = addItem(t, m, "b")
	m, _ = send(t, m, space)
	m, _ = send(t, m, keyRunes("x"))
	m, _ = send(t, m, enter)
	if ctl.Stats().Total != 1 {
		t.Fatalf("clear completed: %+v", ctl.Stats())
	}

	m, _ = send(t, m, keyRunes("X"))
	m, _ = send(t, m, keyRunes("y"))
	if ctl.Stats().Total != 0 || ctl.State().NextID != 1 {
		t.Fatalf("clear all: %+v next=%d", ctl.Stats(), ctl.State().NextID)
	}
}

func TestClearFailureAfterConfirmIsReported(t *testing.T) {
	m, ctl := newModel(t)
	m = addItem(t, m, "a")
	m, _ = send(t, m, space)
	m, _ = send(t, m, keyRunes("x"))
	if m.state != confirming {
		t.Fatalf("state=%v", m.state)
	}
	// reopened while the question is up, so nothing is left to clear
	ctl.Toggle(ctl.State().Personal[0].ID)

	m, _ = send(t, m, keyRunes("y"))
	if m.feedback != ui.MsgNothingToClear || !m.isError {
		t.Fatalf("feedback=%q isError=%v", m.feedback, m.isError)
	}
	if ctl.Stats().Total != 1 {
		t.Fatalf("stats: %+v", ctl.Stats())
	}
}

func TestQuit(t *testing.T) {
	m, _ := newModel(t)
	_, cmd := send(t, m, keyRunes("q"))
	if cmd == nil {
		t.Fatal("q returned no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("q did not quit")
	}
}

func TestEmptyViewShowsHint(t *testing.T) {
	m, _ := newModel(t)
	m, _ = send(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	if !strings.Contains(m.View(), ui.EmptyState) {
		t.Fatalf("empty state missing:\n%s", m.View())
	}
}
