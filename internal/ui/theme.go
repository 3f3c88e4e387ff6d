package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme bundles styles, symbols and the panel border.
// All render helpers pull from `current`.
type Theme struct {
	Title, Muted, Accent, Success, Error, Pending lipgloss.Style
	Overdue, DueToday, DueSoon                    lipgloss.Style
	Selected, Done, Help, System                  lipgloss.Style

	BoxUnchecked, BoxChecked string
	SymDone, SymFail         string
	Border                   lipgloss.Border
	BorderColor              lipgloss.Color
}

var current Theme

func init() { SetTheme("classic") }

// SetTheme selects classic (default), neon or mono.
func SetTheme(name string) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "neon":
		current = Theme{
			Title:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13")),
			Muted:   lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
			Accent:  lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
			Success: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
			Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
			Pending: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),

			Overdue:  lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
			DueToday: lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
			DueSoon:  lipgloss.NewStyle().Foreground(lipgloss.Color("14")),

			Selected: lipgloss.NewStyle().Bold(true).Reverse(true),
			Done:     lipgloss.NewStyle().Faint(true).Strikethrough(true),
			Help:     lipgloss.NewStyle().Faint(true),
			System:   lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("13")),

			BoxUnchecked: "◻", BoxChecked: "◼",
			SymDone: "✔", SymFail: "✖",
			Border:      lipgloss.RoundedBorder(),
			BorderColor: lipgloss.Color("13"),
		}
	case "mono":
		plain := lipgloss.NewStyle()
		current = Theme{
			Title: plain.Bold(true), Muted: plain, Accent: plain,
			Success: plain, Error: plain, Pending: plain,
			Overdue: plain, DueToday: plain, DueSoon: plain,
			Selected: plain.Reverse(true), Done: plain, Help: plain, System: plain,

			BoxUnchecked: "[ ]", BoxChecked: "[x]",
			SymDone: "ok", SymFail: "error:",
			Border: lipgloss.NormalBorder(),
		}
	default: // classic
		current = Theme{
			Title:   lipgloss.NewStyle().Bold(true),
			Muted:   lipgloss.NewStyle().Faint(true),
			Accent:  lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
			Success: lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
			Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
			Pending: lipgloss.NewStyle().Foreground(lipgloss.Color("214")),

			Overdue:  lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
			DueToday: lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true),
			DueSoon:  lipgloss.NewStyle().Foreground(lipgloss.Color("12")),

			Selected: lipgloss.NewStyle().Bold(true).Reverse(true),
			Done:     lipgloss.NewStyle().Faint(true).Strikethrough(true),
			Help:     lipgloss.NewStyle().Faint(true),
			System:   lipgloss.NewStyle().Italic(true).Faint(true),

			BoxUnchecked: "☐", BoxChecked: "☑",
			SymDone: "✔", SymFail: "✖",
			Border:      lipgloss.RoundedBorder(),
			BorderColor: lipgloss.Color("8"),
		}
	}
}

// Current exposes what renderers need.
func Current() Theme { return current }
