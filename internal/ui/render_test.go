package ui

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/idilsaglam/teamtodo/internal/app"
	"github.com/idilsaglam/teamtodo/internal/due"
	"github.com/idilsaglam/teamtodo/internal/model"
)

func TestMain(m *testing.M) {
	SetColorForcing(false, true)
	SetTheme("mono")
	os.Exit(m.Run())
}

func TestSetColorForcing(t *testing.T) {
	t.Cleanup(func() { SetColorForcing(false, true) })

	SetColorForcing(true, false)
	if got := lipgloss.ColorProfile(); got != termenv.ANSI256 {
		t.Fatalf("force: got profile %v", got)
	}
	SetColorForcing(true, true)
	if got := lipgloss.ColorProfile(); got != termenv.Ascii {
		t.Fatalf("disable with force: got profile %v", got)
	}
}

func TestStatsLine(t *testing.T) {
	if got := StatsLine(app.Stats{Total: 1, Completed: 0}); got != "총 1개 · 완료 0개" {
		t.Fatalf("StatsLine: got %q", got)
	}
}

func TestRowLine(t *testing.T) {
	r := app.Row{
		Item:       model.Item{ID: 7, Text: "Buy milk", Completed: true},
		Class:      due.Today,
		DueLabel:   "오늘 18:00",
		AuthorName: "Ab",
	}
	got := RowLine(r)
	for _, want := range []string{"#7", "[x]", "Buy milk", "by Ab", "오늘 18:00"} {
		if !strings.Contains(got, want) {
			t.Errorf("RowLine missing %q: %q", want, got)
		}
	}
}

func TestRenderTeamShowsChat(t *testing.T) {
	v := app.View{
		Title:    app.TitleTeam,
		Rows:     []app.Row{{Item: model.Item{ID: 1, Text: "Plan"}}},
		Stats:    app.Stats{Total: 1},
		ShowChat: true,
		Chat: []app.ChatLine{
			{Who: "시스템", Clock: "09:00", Text: "notice", System: true},
			{Who: app.OwnLabel, Clock: "09:01", Text: "hello", Own: true},
		},
	}
	out := Render(v)
	for _, want := range []string{app.TitleTeam, "[ ]", "Plan", ChatWelcome, "[09:00] notice", "나 • 09:01 hello"} {
		if !strings.Contains(out, want) {
			t.Errorf("Render missing %q:\n%s", want, out)
		}
	}
}

func TestRenderEmptyPersonal(t *testing.T) {
	out := Render(app.View{Title: app.TitlePersonal, Empty: true})
	if !strings.Contains(out, EmptyState) {
		t.Fatalf("empty state missing:\n%s", out)
	}
	if strings.Contains(out, ChatWelcome) {
		t.Fatalf("chat shown in personal mode:\n%s", out)
	}
}

func TestProgressBar(t *testing.T) {
	tests := []struct {
		done, total int
		want        string
	}{
		{0, 0, "░░░░░░░░░░   0%"},
		{1, 2, "█████░░░░░  50%"},
		{3, 3, "██████████ 100%"},
	}
	for _, tt := range tests {
		if got := ProgressBar(tt.done, tt.total, 10); got != tt.want {
			t.Errorf("ProgressBar(%d, %d): got %q, want %q", tt.done, tt.total, got, tt.want)
		}
	}
}

func TestMessage(t *testing.T) {
	wrapped := fmt.Errorf("%w: hour %q", app.ErrInvalidDueTime, "24")
	if got := Message(wrapped); got != "마감 시간은 00-23시, 00/15/30/45분 중에서 선택해주세요." {
		t.Errorf("wrapped sentinel: got %q", got)
	}
	if got := Message(app.ErrUsernameLength); got != "사용자명은 2-20자 사이여야 합니다." {
		t.Errorf("username length: got %q", got)
	}
	if got := Message(errors.New("disk on fire")); got != "disk on fire" {
		t.Errorf("unknown error: got %q", got)
	}
}

func TestConfirmClearCompleted(t *testing.T) {
	if got := ConfirmClearCompleted(2); got != "완료된 2개의 항목을 삭제하시겠습니까?" {
		t.Fatalf("got %q", got)
	}
}
