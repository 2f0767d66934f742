package main

import (
	"os"

	"github.com/idilsaglam/meetfocus/internal/cli"
	"github.com/idilsaglam/meetfocus/internal/ui"
)

func main() {
	rootCmd := cli.NewRootCmd(&cli.Dependencies{})
	if err := rootCmd.Execute(); err != nil {
		ui.Fail(err.Error())
		os.Exit(1)
	}
}
