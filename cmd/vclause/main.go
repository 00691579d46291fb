package main

import (
	"fmt"
	"io"
	"os"

	"github.com/czcorpus/cnc-gokit/logging"
	"github.com/urfave/cli/v2"

	"github.com/revelaction/vclause/cnf"
)

// UI contains the output streams for the application.
// Used for injecting buffers during testing.
type UI struct {
	Out io.Writer
	Err io.Writer
}

func main() {
	ui := UI{Out: os.Stdout, Err: os.Stderr}

	if err := newApp(ui).Run(os.Args); err != nil {
		fprintErr(ui.Err, err)
		os.Exit(1)
	}
}

func fprintErr(w io.Writer, err error) {
	_, _ = fmt.Fprintf(w, "vclause: %v\n", err)
}

func newApp(ui UI) *cli.App {
	return &cli.App{
		Name:      "vclause",
		Usage:     "extract verb clause records from dependency parsed corpora",
		Version:   fmt.Sprintf("%s (commit: %s)", BuildTag, BuildCommit),
		Writer:    ui.Out,
		ErrWriter: ui.Err,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "warn",
				Usage:   "log `LEVEL`: debug, info, warn or error",
				EnvVars: []string{"VCLAUSE_LOG_LEVEL"},
			},
			&cli.StringFlag{
				Name:  "log-file",
				Usage: "append the log to `FILE` instead of stderr",
			},
		},
		Before: func(cCtx *cli.Context) error {
			return cnf.SetupLogging(cCtx.String("log-file"), logging.LogLevel(cCtx.String("log-level")))
		},
		Commands: []*cli.Command{
			extractCommand(ui),
			docCommand(ui),
			sentenceCommand(ui),
			inspectCommand(ui),
			statCommand(ui),
			importDocCommand(ui),
			rowsCommand(ui),
			tagsetCommand(ui),
			serveCommand(ui),
			versionCommand(ui),
		},
	}
}
