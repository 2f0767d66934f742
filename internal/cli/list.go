package cli

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/idilsaglam/meetfocus/internal/form"
	"github.com/idilsaglam/meetfocus/internal/model"
	"github.com/idilsaglam/meetfocus/internal/session"
	"github.com/idilsaglam/meetfocus/internal/store/jsonstore"
	"github.com/idilsaglam/meetfocus/internal/ui"
)

func NewListCmd(deps *Dependencies) *cobra.Command {
	var (
		at       string
		jsonMode bool
	)

	cmd := &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "Print the meetings loaded from --seed and --calendar",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := deps.pinClock(at); err != nil {
				return err
			}
			sess, err := deps.newSession(deps.Log)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if jsonMode {
				return jsonstore.Encode(out, sess.Meetings())
			}
			fmt.Fprintln(out, ui.Panel(listLines(sess)))
			return nil
		},
	}

	cmd.Flags().StringVar(&at, "at", "", "evaluate at this local time (2006-01-02 15:04)")
	cmd.Flags().BoolVar(&jsonMode, "json", false, "print a JSON snapshot instead of a table")
	return cmd
}

func listLines(sess *session.Session) []string {
	t := ui.Current()
	now := sess.Now()
	meetings := sess.Meetings()

	past := 0
	for _, m := range meetings {
		if m.Phase(now) == model.PhasePast {
			past++
		}
	}
	lines := []string{
		t.Title.Render("Meetings") + t.Muted.Render(fmt.Sprintf("  %d total, %d past", len(meetings), past)),
	}
	if len(meetings) > 0 {
		lines = append(lines, ui.ProgressBar(float64(past)/float64(len(meetings)), 20))
	}
	lines = append(lines, "")

	if len(meetings) == 0 {
		return append(lines, t.Muted.Render("No meetings"))
	}

	active, hasActive := sess.Active()
	for i, m := range meetings {
		box, style := t.BoxIdle, t.Pending
		switch {
		case hasActive && m.ID == active.ID:
			box, style = t.BoxActive, t.Accent
		case m.Phase(now) == model.PhasePast:
			style = t.Faded
		case m.Active:
			box = t.BoxActive
		}
		lines = append(lines, style.Render(fmt.Sprintf("%2d %s %s", i+1, box, m.Title)))
		lines = append(lines, t.Muted.Render(fmt.Sprintf("     %s  %d min  %s  %s",
			m.Start.In(sess.Location()).Format("Jan 2 15:04"),
			m.Duration,
			m.Mode.Describe().Name,
			relative(m, now),
		)))
	}
	return lines
}

func relative(m model.Meeting, now time.Time) string {
	switch m.Phase(now) {
	case model.PhaseInProgress:
		return "ends " + humanize.RelTime(m.End(), now, "ago", "from now")
	case model.PhasePast:
		return "ended " + humanize.RelTime(m.End(), now, "ago", "from now")
	default:
		return "starts " + humanize.RelTime(m.Start, now, "ago", "from now")
	}
}

// pinClock freezes the clock at a --at value so every read agrees.
func (d *Dependencies) pinClock(at string) error {
	if at == "" {
		return nil
	}
	t, err := form.ParseStart(at, time.Local)
	if err != nil {
		return fmt.Errorf("--at: %w", err)
	}
	d.Clock = session.Fixed(t)
	return nil
}
