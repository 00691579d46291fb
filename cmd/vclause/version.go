package main

import (
	"fmt"

	"github.com/urfave/cli/v2"
)

// set with -ldflags at build time
var (
	BuildTag    = "dev"
	BuildCommit = "none"
)

func versionCommand(ui UI) *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: "print the version",
		Action: func(cCtx *cli.Context) error {
			_, err := fmt.Fprintf(ui.Out, "vclause version %s (commit: %s)\n", BuildTag, BuildCommit)
			return err
		},
	}
}
