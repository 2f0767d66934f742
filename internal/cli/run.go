package cli

import (
	"github.com/spf13/cobra"

	"github.com/idilsaglam/meetfocus/internal/logger"
	"github.com/idilsaglam/meetfocus/internal/tui"
)

func NewRunCmd(deps *Dependencies) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Open the interactive focus dashboard (default)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(deps)
		},
	}
}

// runTUI owns the terminal, so logs go to log_file or nowhere.
func runTUI(deps *Dependencies) error {
	log, closer, err := logger.File(deps.Config.LogFile, deps.Config.LogLevel)
	if err != nil {
		return err
	}
	defer closer.Close()

	sess, err := deps.newSession(log)
	if err != nil {
		return err
	}
	log.Info().Int("meetings", len(sess.Meetings())).Str("tie_break", sess.Policy().String()).Msg("session started")
	err = tui.Run(sess, tui.Options{Tick: deps.Config.Tick})
	log.Info().Msg("session ended")
	return err
}
