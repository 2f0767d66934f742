package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/meetfocus/internal/model"
	"github.com/idilsaglam/meetfocus/internal/ui"
)

func NewModesCmd(deps *Dependencies) *cobra.Command {
	return &cobra.Command{
		Use:   "modes",
		Short: "Show the available focus modes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			def, err := model.ParseMode(deps.Config.DefaultMode)
			if err != nil {
				def = model.ModeNormal
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.ModeCards(func(m model.Mode) bool { return m == def }, 22))
			return nil
		},
	}
}
