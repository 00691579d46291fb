package main

import (
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/revelaction/vclause/render"
	"github.com/revelaction/vclause/selection"
	"github.com/revelaction/vclause/storage"
)

func rowsCommand(ui UI) *cli.Command {
	return &cli.Command{
		Name:  "rows",
		Usage: "list the stored extraction runs, or print the rows of a run",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "db", Usage: "SQLite `DB` of the runs", Required: true},
			&cli.StringFlag{Name: "run", Aliases: []string{"r"}, Usage: "print the rows of the run `ID`"},
			&cli.StringSliceFlag{
				Name:    "select",
				Aliases: []string{"s"},
				Usage:   "keep the rows matching the `ITEM`s (tense=past, !modal)",
			},
		},
		Action: func(cCtx *cli.Context) error {
			p := &Pool{}
			defer p.Close()

			rs, err := NewRowRepository(p, cCtx.String("db"))
			if err != nil {
				return err
			}

			runs, err := rs.Runs()
			if err != nil {
				return err
			}

			runId := cCtx.String("run")
			if runId == "" {
				listRuns(runs, ui)
				return nil
			}

			expr, err := selection.Parse(cCtx.StringSlice("select"))
			if err != nil {
				return err
			}

			for _, run := range runs {
				if run.Id == runId {
					return printRows(rs, run, expr, ui)
				}
			}

			return fmt.Errorf("run not found: %s", runId)
		},
	}
}

func listRuns(runs []storage.Run, ui UI) {
	for _, run := range runs {
		fmt.Fprintf(ui.Out, "🔑 %s %s %s %s\n", run.Id, run.Created.Format("2006-01-02 15:04:05"), run.Corpus, strings.Join(run.Headers, ","))
	}
}

func printRows(rr storage.RowReader, run storage.Run, expr selection.Expr, ui UI) error {
	for _, h := range expr.Headers() {
		found := false
		for _, rh := range run.Headers {
			if rh == h {
				found = true
			}
		}
		if !found {
			return fmt.Errorf("header %s not stored in run %s", h, run.Id)
		}
	}

	w := render.NewTSVWriter(ui.Out)
	if err := w.Header(run.Headers); err != nil {
		return err
	}

	err := rr.Rows(run.Id, func(row storage.Row) error {
		if !expr.Match(run.Headers, row.Values) {
			return nil
		}
		return w.Rows([]storage.Row{row})
	})
	if err != nil {
		return err
	}

	return w.Flush()
}
