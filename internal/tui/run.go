package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/meetfocus/internal/session"
)

// Run starts the interactive program and blocks until the user quits.
// Nothing is saved on exit; the session dies with the program.
func Run(sess *session.Session, opt Options) error {
	p := tea.NewProgram(New(sess, opt), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
