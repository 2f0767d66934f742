package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/meetfocus/internal/model"
)

func NewNowCmd(deps *Dependencies) *cobra.Command {
	var (
		at  string
		all bool
	)

	cmd := &cobra.Command{
		Use:   "now",
		Short: "Print the current active meeting and the mode to use",
		Long: "Prints the meeting that is both marked active and in progress, and the focus\n" +
			"mode it implies. With --all, every in-progress meeting counts as marked.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := deps.pinClock(at); err != nil {
				return err
			}
			sess, err := deps.newSession(deps.Log)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			now := sess.Now()

			current, ok := sess.Active()
			if all {
				meetings := sess.Meetings()
				for i := range meetings {
					meetings[i].Active = true
				}
				current, ok = sess.Policy().Resolve(now, meetings)
			}

			mode := sess.SelectedMode()
			if ok {
				mode = current.Mode
				fmt.Fprintf(out, "meeting: %s (until %s)\n",
					current.Title, current.End().In(sess.Location()).Format("15:04"))
			} else {
				fmt.Fprintln(out, "meeting: none")
			}
			d := mode.Describe()
			fmt.Fprintf(out, "mode:    %s %s\n", d.Icon, d.Name)
			if ok && mode != model.ModeNormal {
				fmt.Fprintf(out, "reply:   %s\n", sess.AutoReply())
			}
			deps.Log.Debug().
				Time("at", now).
				Str("policy", sess.Policy().String()).
				Bool("all", all).
				Msg("resolved")
			return nil
		},
	}

	cmd.Flags().StringVar(&at, "at", "", "evaluate at this local time (2006-01-02 15:04)")
	cmd.Flags().BoolVar(&all, "all", false, "treat every meeting as marked active")
	return cmd
}
