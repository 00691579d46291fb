package main

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/gosuri/uiprogress"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/revelaction/vclause/extract"
	"github.com/revelaction/vclause/render"
	"github.com/revelaction/vclause/stat"
	"github.com/revelaction/vclause/storage"
)

type ExtractOptions struct {
	Corpus string
	Format string
	Out    string
	DocIds []int
	NoIds  bool
}

func extractCommand(ui UI) *cli.Command {
	flags := []cli.Flag{
		corpusFlag(),
		&cli.StringFlag{
			Name:    "format",
			Aliases: []string{"f"},
			Value:   "tsv",
			Usage:   "output `FORMAT`: tsv or json",
		},
		&cli.StringFlag{
			Name:    "out",
			Aliases: []string{"o"},
			Usage:   "store the rows as a new run in the SQLite `DB` instead of printing them",
		},
		&cli.IntSliceFlag{
			Name:    "doc",
			Aliases: []string{"d"},
			Usage:   "extract only the doc `ID`s",
		},
		&cli.BoolFlag{
			Name:  "no-ids",
			Usage: "omit the doc, sentence and verb columns of the tsv format",
		},
	}

	return &cli.Command{
		Name:  "extract",
		Usage: "extract the verb rows of a corpus",
		Flags: append(flags, extractionFlags()...),
		Action: func(cCtx *cli.Context) error {
			e, err := newExtractor(cCtx)
			if err != nil {
				return err
			}

			opts := ExtractOptions{
				Corpus: cCtx.String("corpus"),
				Format: cCtx.String("format"),
				Out:    cCtx.String("out"),
				DocIds: cCtx.IntSlice("doc"),
				NoIds:  cCtx.Bool("no-ids"),
			}

			p := &Pool{}
			defer p.Close()

			repo, err := NewDocRepository(p, opts.Corpus)
			if err != nil {
				return err
			}

			if opts.Out != "" {
				return extractToDB(cCtx.Context, e, repo, p, opts, ui)
			}

			switch opts.Format {
			case "tsv":
				return extractTSV(cCtx.Context, e, repo, opts, ui)
			case "json":
				return extractJSON(cCtx.Context, e, repo, opts, ui)
			}

			return fmt.Errorf("unknown format: %s", opts.Format)
		},
	}
}

func extractTSV(ctx context.Context, e *extract.Extractor, repo storage.DocReader, opts ExtractOptions, ui UI) error {
	w := render.NewTSVWriter(ui.Out)
	w.Ids = !opts.NoIds
	if err := w.Header(e.Columns()); err != nil {
		return err
	}

	err := e.Corpus(ctx, repo, opts.DocIds, func(res extract.DocResult) error {
		logDiscarded(res)
		if err := w.Rows(res.Rows()); err != nil {
			return err
		}
		return w.Flush()
	})
	if err != nil {
		return err
	}

	return w.Flush()
}

func extractJSON(ctx context.Context, e *extract.Extractor, repo storage.DocReader, opts ExtractOptions, ui UI) error {
	jr := render.NewJSONRenderer(ui.Out)

	return e.Corpus(ctx, repo, opts.DocIds, func(res extract.DocResult) error {
		logDiscarded(res)
		for _, s := range res.Sentences {
			if s.Err != nil {
				continue
			}

			if err := jr.RenderLine(render.NewSentenceJSON(res.DocId, s.Id, s.Record, s.Rows, nil)); err != nil {
				return err
			}
		}
		return nil
	})
}

func extractToDB(ctx context.Context, e *extract.Extractor, repo storage.DocReader, p *Pool, opts ExtractOptions, ui UI) error {
	rs, err := NewRowRepository(p, opts.Out)
	if err != nil {
		return err
	}

	run := storage.Run{
		Id:      uuid.New().String(),
		Corpus:  opts.Corpus,
		Headers: e.Columns(),
		Created: time.Now().UTC(),
	}
	if err := rs.CreateRun(run); err != nil {
		return err
	}

	total := len(opts.DocIds)
	if total == 0 {
		docs, err := repo.List()
		if err != nil {
			return err
		}
		total = len(docs)
	}

	uiprogress.Start()
	bar := uiprogress.AddBar(total)
	bar.AppendCompleted()
	bar.PrependElapsed()

	var numDocs, numRows int
	err = e.Corpus(ctx, repo, opts.DocIds, func(res extract.DocResult) error {
		logDiscarded(res)

		rows := res.Rows()
		if err := rs.WriteRows(run.Id, rows); err != nil {
			return fmt.Errorf("failed to write rows of doc %d: %w", res.DocId, err)
		}

		numDocs++
		numRows += len(rows)
		bar.Incr()
		return nil
	})
	uiprogress.Stop()

	if err != nil {
		return err
	}

	fmt.Fprintf(ui.Out, "Run %s: stored %d rows of %d docs in %s\n", run.Id, numRows, numDocs, opts.Out)
	return nil
}

func logDiscarded(res extract.DocResult) {
	for _, s := range res.Sentences {
		if s.Err == nil {
			continue
		}

		log.Debug().
			Int("doc", res.DocId).
			Int("sentence", s.Id).
			Str("kind", stat.Kind(s.Err)).
			Err(s.Err).
			Msg("sentence discarded")
	}
}
