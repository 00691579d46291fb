package main

import (
	"encoding/json"
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/revelaction/vclause/extract"
	"github.com/revelaction/vclause/render"
	"github.com/revelaction/vclause/stat"
)

func statCommand(ui UI) *cli.Command {
	flags := []cli.Flag{
		corpusFlag(),
		&cli.IntSliceFlag{
			Name:    "doc",
			Aliases: []string{"d"},
			Usage:   "count only the doc `ID`s",
		},
		&cli.BoolFlag{Name: "json", Usage: "print the statistics as JSON"},
	}

	return &cli.Command{
		Name:  "stat",
		Usage: "print the extraction statistics of the corpus",
		Flags: append(flags, extractionFlags()...),
		Action: func(cCtx *cli.Context) error {
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

			hdl := stat.NewHandler()
			err = e.Corpus(cCtx.Context, repo, cCtx.IntSlice("doc"), func(res extract.DocResult) error {
				hdl.Aggregate(res)
				return nil
			})
			if err != nil {
				return err
			}

			stats := hdl.Get()
			if cCtx.Bool("json") {
				return json.NewEncoder(ui.Out).Encode(stats)
			}

			printStats(stats, ui)
			return nil
		},
	}
}

func printStats(stats stat.Stats, ui UI) {
	fmt.Fprintf(ui.Out, "Num docs %d, num sentences %d, built %d, failed %d, with matrix %d\n",
		stats.NumDocs, stats.NumSentences, stats.NumBuilt, stats.NumFailed, stats.NumMatrix)
	fmt.Fprintf(ui.Out, "Num verbs %d, dropped %d, rows %d, verbs per sentence %.2f\n",
		stats.NumVerbs, stats.NumDropped, stats.NumRows, stats.VerbsPerSentenceMean)

	r := render.NewRenderer(ui.Out)
	if len(stats.FailedByKind) > 0 {
		r.Counts("Failed sentences by kind", stats.FailedByKind)
	}
	if len(stats.DroppedByKind) > 0 {
		r.Counts("Dropped verbs by kind", stats.DroppedByKind)
	}
}
