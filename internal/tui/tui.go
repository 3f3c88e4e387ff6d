// Package tui is the full-screen list, add form and team chat.
package tui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/teamtodo/internal/app"
	"github.com/idilsaglam/teamtodo/internal/due"
	"github.com/idilsaglam/teamtodo/internal/model"
	"github.com/idilsaglam/teamtodo/internal/ui"
)

// FeedbackTTL is how long a status message stays on screen.
const FeedbackTTL = 3 * time.Second

// listItem adapts a display row to bubbles/list.Item.
type listItem struct{ row app.Row }

func (i listItem) Title() string       { return i.row.Item.Text }
func (i listItem) Description() string { return i.row.DueLabel }
func (i listItem) FilterValue() string { return i.row.Item.Text }

// single-line rows
type itemDelegate struct{}

func (d itemDelegate) Height() int                               { return 1 }
func (d itemDelegate) Spacing() int                              { return 0 }
func (d itemDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, _ := item.(listItem)
	prefix := "  "
	if index == m.Index() {
		prefix = ui.Current().Selected.Render(">") + " "
	}
	fmt.Fprint(w, prefix+ui.RowLine(it.row))
}

type state int

const (
	browsing state = iota
	adding
	chatting
	confirming
)

// add form steps
type step int

const (
	stepText step = iota
	stepDue
	stepTime
)

type feedbackExpired struct{ id int }

// Model is the bubbletea model. It owns no data: every change goes through
// the controller, and the list is rebuilt from its view.
type Model struct {
	ctl  *app.Controller
	list list.Model
	ti   textinput.Model

	state state
	step  step
	draft app.AddInput

	question string
	onYes    func(*app.Controller) (string, error)

	feedback   string
	feedbackID int
	isError    bool

	width, height int
}

// New builds a model over ctl.
func New(ctl *app.Controller) Model {
	l := list.New(nil, itemDelegate{}, 0, 0)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(true)
	l.Styles.HelpStyle = ui.Current().Help
	l.Styles.PaginationStyle = ui.Current().Help
	l.AdditionalShortHelpKeys = keys.short
	l.AdditionalFullHelpKeys = keys.full
	l.KeyMap.Quit.SetEnabled(false)

	ti := textinput.New()
	ti.Prompt = "> "
	ti.CharLimit = app.MaxTextLen

	m := Model{ctl: ctl, list: l, ti: ti, width: 80, height: 24}
	m.refresh()
	return m
}

// Run starts the program and blocks until the user quits.
func Run(ctl *app.Controller, opts ...tea.ProgramOption) error {
	_, err := tea.NewProgram(New(ctl), opts...).Run()
	return err
}

func (m *Model) refresh() {
	v := m.ctl.View()
	items := make([]list.Item, 0, len(v.Rows))
	for _, r := range v.Rows {
		items = append(items, listItem{row: r})
	}
	m.list.SetItems(items)
}

func (m Model) selected() (model.Item, bool) {
	it, ok := m.list.SelectedItem().(listItem)
	if !ok {
		return model.Item{}, false
	}
	return it.row.Item, true
}

// notify shows msg and schedules its removal.
func (m *Model) notify(msg string, isErr bool) tea.Cmd {
	m.feedbackID++
	m.feedback = msg
	m.isError = isErr
	id := m.feedbackID
	return tea.Tick(FeedbackTTL, func(time.Time) tea.Msg { return feedbackExpired{id: id} })
}

func (m *Model) fail(err error) tea.Cmd { return m.notify(ui.Message(err), true) }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case feedbackExpired:
		// a newer message replaced this one
		if msg.id == m.feedbackID {
			m.feedback = ""
		}
		return m, nil
	case tea.KeyMsg:
		switch m.state {
		case adding:
			return m.updateAdd(msg)
		case chatting:
			return m.updateChat(msg)
		case confirming:
			return m.updateConfirm(msg)
		}
		return m.updateBrowse(msg)
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, keys.Toggle):
		it, ok := m.selected()
		if !ok {
			return m, nil
		}
		it, _ = m.ctl.Toggle(it.ID)
		m.refresh()
		if it.Completed {
			return m, m.notify(ui.MsgCompleted, false)
		}
		return m, m.notify(ui.MsgReopened, false)
	case key.Matches(msg, keys.Delete):
		it, ok := m.selected()
		if !ok {
			return m, nil
		}
		id := it.ID
		m.ask(ui.ConfirmRemove, func(ctl *app.Controller) (string, error) {
			ctl.Remove(id)
			return ui.MsgRemoved, nil
		})
		return m, nil
	case key.Matches(msg, keys.Add):
		m.state, m.step = adding, stepText
		m.draft = app.AddInput{ShareType: model.SharePersonal}
		m.ti.SetValue("")
		m.ti.Placeholder = "할 일을 입력하세요 (tab: 팀 공유)"
		m.ti.Focus()
		return m, textinput.Blink
	case key.Matches(msg, keys.Mode):
		if m.ctl.Mode() == model.ModeTeam {
			m.ctl.SetMode(model.ModePersonal)
		} else {
			m.ctl.SetMode(model.ModeTeam)
		}
		m.refresh()
		m.list.Select(0)
		return m, nil
	case key.Matches(msg, keys.Chat):
		if m.ctl.Mode() != model.ModeTeam {
			return m, nil
		}
		m.state = chatting
		m.ti.SetValue("")
		m.ti.Placeholder = "메시지를 입력하세요..."
		m.ti.Focus()
		return m, textinput.Blink
	case key.Matches(msg, keys.ClearDone):
		n := m.ctl.CompletedPersonal()
		if n == 0 {
			return m, m.notify(ui.MsgNoCompleted, true)
		}
		m.ask(ui.ConfirmClearCompleted(n), func(ctl *app.Controller) (string, error) {
			_, err := ctl.ClearCompleted()
			return ui.MsgClearedDone, err
		})
		return m, nil
	case key.Matches(msg, keys.ClearAll):
		if len(m.ctl.State().Personal) == 0 {
			return m, m.notify(ui.MsgNothingToClear, true)
		}
		m.ask(ui.ConfirmClearAll, func(ctl *app.Controller) (string, error) {
			_, err := ctl.ClearAll()
			return ui.MsgClearedAll, err
		})
		return m, nil
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m *Model) ask(question string, onYes func(*app.Controller) (string, error)) {
	m.state = confirming
	m.question = question
	m.onYes = onYes
}

func (m Model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch strings.ToLower(msg.String()) {
	case "y", "enter":
		done, err := m.onYes(m.ctl)
		m.state, m.onYes = browsing, nil
		m.refresh()
		if err != nil {
			return m, m.fail(err)
		}
		return m, m.notify(done, false)
	case "n", "esc", "q":
		m.state, m.onYes = browsing, nil
	}
	return m, nil
}

func (m Model) updateAdd(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.state = browsing
		m.ti.Blur()
		return m, nil
	case "tab":
		if m.step == stepText {
			if m.draft.ShareType == model.ShareTeam {
				m.draft.ShareType = model.SharePersonal
			} else {
				m.draft.ShareType = model.ShareTeam
			}
		}
		return m, nil
	case "enter":
		return m.advanceAdd()
	}
	var cmd tea.Cmd
	m.ti, cmd = m.ti.Update(msg)
	return m, cmd
}

// advanceAdd moves the add form from text to due date to time, and
// submits when there is nothing left to ask.
func (m Model) advanceAdd() (tea.Model, tea.Cmd) {
	v := strings.TrimSpace(m.ti.Value())
	switch m.step {
	case stepText:
		if v == "" {
			return m, m.fail(app.ErrEmptyText)
		}
		m.draft.Text = v
		m.step = stepDue
		m.ti.SetValue("")
		m.ti.Placeholder = "마감일: today, tomorrow, +3, month-end, YYYY-MM-DD (비우면 없음)"
		return m, nil
	case stepDue:
		if v != "" {
			date, err := due.Resolve(v, m.ctl.Now())
			if err != nil {
				return m, m.fail(app.ErrInvalidDueDate)
			}
			m.draft.DueDate = date
			m.step = stepTime
			m.ti.SetValue("")
			m.ti.Placeholder = "시간 HH:MM (비우면 없음)"
			return m, nil
		}
	case stepTime:
		if v != "" {
			h, mm, err := due.SplitClock(v)
			if err != nil {
				return m, m.fail(app.ErrInvalidDueTime)
			}
			m.draft.Hour, m.draft.Minute = h, mm
		}
	}

	m.state = browsing
	m.ti.Blur()
	if _, err := m.ctl.Add(m.draft); err != nil {
		return m, m.fail(err)
	}
	m.refresh()
	m.list.Select(0)
	return m, m.notify(ui.MsgAdded, false)
}

func (m Model) updateChat(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.state = browsing
		m.ti.Blur()
		return m, nil
	case "enter":
		if _, err := m.ctl.Send(m.ti.Value()); err != nil {
			return m, m.fail(err)
		}
		m.ti.SetValue("")
		return m, nil
	}
	var cmd tea.Cmd
	m.ti, cmd = m.ti.Update(msg)
	return m, cmd
}
