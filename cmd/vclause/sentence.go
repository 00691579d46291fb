package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/urfave/cli/v2"

	"github.com/revelaction/vclause/clause"
	"github.com/revelaction/vclause/render"
)

func sentenceCommand(ui UI) *cli.Command {
	return &cli.Command{
		Name:      "sentence",
		Usage:     "print the tokens of a sentence, its verb records and the dropped verbs",
		ArgsUsage: "<docId> <sentId>",
		Flags: append([]cli.Flag{
			corpusFlag(),
			&cli.BoolFlag{Name: "no-color", Usage: "do not color the verbs"},
		}, extractionFlags()...),
		Action: func(cCtx *cli.Context) error {
			if cCtx.Args().Len() != 2 {
				return errors.New("sentence needs a doc id and a sentence id")
			}

			docId, err := strconv.Atoi(cCtx.Args().Get(0))
			if err != nil {
				return fmt.Errorf("invalid doc id: %s", cCtx.Args().Get(0))
			}
			sentId, err := strconv.Atoi(cCtx.Args().Get(1))
			if err != nil {
				return fmt.Errorf("invalid sentence id: %s", cCtx.Args().Get(1))
			}

			e, err := newExtractor(cCtx)
			if err != nil {
				return err
			}

			p := &Pool{}
			defer p.Close()

			repo, err := NewDocRepository(p, cCtx.String("corpus"))
			if err != nil {
				return err
			}

			doc, err := repo.Read(docId)
			if err != nil {
				return err
			}

			if sentId < 0 || sentId >= len(doc.Tokens) {
				return fmt.Errorf("sentence index %d out of bounds (0-%d)", sentId, len(doc.Tokens)-1)
			}

			s := doc.Sentence(sentId)
			res := e.Sentence(s)

			r := render.NewRenderer(ui.Out)
			r.HasColor = !cCtx.Bool("no-color")

			var drops []clause.Drop
			if res.Record != nil {
				drops = res.Record.Drops
			} else {
				var noInfoErr clause.NoInformationError
				if errors.As(res.Err, &noInfoErr) {
					drops = noInfoErr.Drops
				}
			}

			fmt.Fprintf(ui.Out, "✍  %d ", sentId)
			r.Record(s, res.Record, drops)
			fmt.Fprintln(ui.Out)
			r.Tokens(s.Tokens)
			fmt.Fprintln(ui.Out)

			if res.Record != nil {
				r.Verbs(res.Record, e.Columns())
			}
			r.Drops(drops)

			if res.Err != nil {
				fmt.Fprintf(ui.Out, "✗  sentence discarded: %v\n", res.Err)
			}

			return nil
		},
	}
}
