package main

import (
	"github.com/urfave/cli/v2"

	"github.com/revelaction/vclause/query"
)

func inspectCommand(ui UI) *cli.Command {
	flags := append([]cli.Flag{corpusFlag()}, extractionFlags()...)

	return &cli.Command{
		Name:  "inspect",
		Usage: "browse the verb records of the corpus in a prompt",
		Flags: append(flags, rendererFlags()...),
		Action: func(cCtx *cli.Context) error {
			e, err := newExtractor(cCtx)
			if err != nil {
				return err
			}

			r, err := newRenderer(cCtx, ui)
			if err != nil {
				return err
			}

			p := &Pool{}
			defer p.Close()

			repo, err := NewDocRepository(p, cCtx.String("corpus"))
			if err != nil {
				return err
			}

			if err := preload(repo); err != nil {
				return err
			}

			return query.NewHandler(repo, e, r).Run()
		},
	}
}
