package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme bundles palette + symbols + box borders.
// All UI helpers pull from `current`.
type Theme struct {
	Name                                    string
	Title, Muted, Accent, Success, Error    lipgloss.Style
	Pending, Selected, Faded                lipgloss.Style
	Border                                  lipgloss.Border
	BorderColor                             lipgloss.Color
	BoxIdle, BoxActive                      string
	SymOK, SymFail, SymActive, SymPast, Bar string
	BarEmpty                                string
}

var current Theme

func init() { SetTheme("classic") }

func SetTheme(name string) {
	switch strings.ToLower(name) {
	case "neon":
		current = Theme{
			Name:  "neon",
			Title: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("201")),
			Muted: lipgloss.NewStyle().Foreground(lipgloss.Color("244")), Accent: lipgloss.NewStyle().Foreground(lipgloss.Color("51")),
			Success: lipgloss.NewStyle().Foreground(lipgloss.Color("46")), Error: lipgloss.NewStyle().Foreground(lipgloss.Color("197")).Bold(true),
			Pending:  lipgloss.NewStyle().Foreground(lipgloss.Color("226")),
			Selected: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("201")),
			Faded:    lipgloss.NewStyle().Faint(true),
			Border:   lipgloss.RoundedBorder(), BorderColor: lipgloss.Color("201"),
			BoxIdle: "◻", BoxActive: "◼",
			SymOK: "✔", SymFail: "✖", SymActive: "●", SymPast: "·",
			Bar: "█", BarEmpty: "░",
		}
	case "mono":
		SetColor(false)
		plain := lipgloss.NewStyle()
		current = Theme{
			Name:  "mono",
			Title: plain.Bold(true), Muted: plain, Accent: plain,
			Success: plain, Error: plain, Pending: plain,
			Selected: plain.Reverse(true), Faded: plain,
			Border: lipgloss.ASCIIBorder(), BorderColor: lipgloss.Color(""),
			BoxIdle: "[ ]", BoxActive: "[x]",
			SymOK: "ok", SymFail: "x", SymActive: "*", SymPast: "-",
			Bar: "#", BarEmpty: ".",
		}
	default: // classic
		current = Theme{
			Name:     "classic",
			Title:    lipgloss.NewStyle().Bold(true),
			Muted:    lipgloss.NewStyle().Faint(true),
			Accent:   lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
			Success:  lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
			Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
			Pending:  lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
			Selected: lipgloss.NewStyle().Bold(true).Reverse(true),
			Faded:    lipgloss.NewStyle().Faint(true).Strikethrough(true),
			Border:   lipgloss.RoundedBorder(), BorderColor: lipgloss.Color("8"),
			BoxIdle: "☐", BoxActive: "☑",
			SymOK: "✔", SymFail: "✖", SymActive: "●", SymPast: "·",
			Bar: "█", BarEmpty: "░",
		}
	}
}

// Expose what renderers need
func Current() Theme { return current }

// SetColor switches the default renderer between the detected color profile
// and plain ASCII output.
func SetColor(enabled bool) {
	if enabled {
		lipgloss.SetColorProfile(termenv.EnvColorProfile())
		return
	}
	lipgloss.SetColorProfile(termenv.Ascii)
}
