package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/meetfocus/internal/session"
	"github.com/idilsaglam/meetfocus/internal/ui"
)

func NewSetupCmd(deps *Dependencies) *cobra.Command {
	return &cobra.Command{
		Use:   "setup",
		Short: "Print the phone setup guide and the auto-reply text",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			t := ui.Current()
			lines := ui.GuideLines()
			reply := deps.Config.AutoReply
			if reply == "" {
				reply = session.DefaultAutoReply
			}
			lines = append(lines, "", t.Title.Render("Auto-reply"), reply)
			fmt.Fprintln(cmd.OutOrStdout(), ui.Panel(lines))
			return nil
		},
	}
}
