package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/meetfocus/internal/model"
)

// ProgressBar renders a bar with percentage for a fraction in [0, 1].
func ProgressBar(fraction float64, width int) string {
	t := Current()
	if width < 5 {
		width = 5
	}
	if fraction < 0 {
		fraction = 0
	}
	if fraction > 1 {
		fraction = 1
	}
	filled := int(fraction * float64(width))
	bar := strings.Repeat(t.Bar, filled) + strings.Repeat(t.BarEmpty, width-filled)
	return fmt.Sprintf("%s %3d%%", bar, int(fraction*100))
}

// Panel frames lines with the current theme's border.
func Panel(lines []string) string {
	t := Current()
	return lipgloss.NewStyle().
		Border(t.Border).
		BorderForeground(t.BorderColor).
		Padding(0, 1).
		Render(strings.Join(lines, "\n"))
}

// ModeCard renders one focus mode. Lit cards take the mode's color.
func ModeCard(m model.Mode, lit bool, width int) string {
	d := m.Describe()
	t := Current()
	style := lipgloss.NewStyle().
		Border(t.Border).
		BorderForeground(t.BorderColor).
		Padding(0, 1).
		Width(width).
		Align(lipgloss.Center)
	if lit {
		style = style.
			BorderForeground(lipgloss.Color(d.Color)).
			Foreground(lipgloss.Color(d.Color)).
			Bold(true)
	}
	body := fmt.Sprintf("%s %s\n[%s] %s", d.Icon, d.Name, d.Key, d.Description)
	return style.Render(body)
}

// ModeCards lays every mode out side by side.
func ModeCards(lit func(model.Mode) bool, width int) string {
	cards := make([]string, 0, len(model.Modes))
	for _, m := range model.Modes {
		cards = append(cards, ModeCard(m, lit(m), width))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

func Fail(msg string) { Failf(os.Stderr, msg) }

// Failf writes an error line to w.
func Failf(w io.Writer, msg string) {
	fmt.Fprintln(w, Current().Error.Render(Current().SymFail+" "+msg))
}
