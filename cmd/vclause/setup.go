package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gosuri/uiprogress"
	"github.com/urfave/cli/v2"

	"github.com/revelaction/vclause/clause"
	"github.com/revelaction/vclause/extract"
	"github.com/revelaction/vclause/lexicon"
	"github.com/revelaction/vclause/render"
	"github.com/revelaction/vclause/selection"
	"github.com/revelaction/vclause/storage"
	"github.com/revelaction/vclause/storage/filesystem"
	"github.com/revelaction/vclause/storage/sqlite/zombiezen"
	"github.com/revelaction/vclause/storage/vert"
	"github.com/revelaction/vclause/tagset"
	"github.com/revelaction/vclause/verb"
)

// NewDocRepository opens the corpus at path: a directory of JSON docs, a
// vertical file or a SQLite database.
func NewDocRepository(p *Pool, path string) (storage.DocRepository, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("repository not found: %s", path)
	}

	if info.IsDir() {
		return filesystem.NewDocStore(path)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".vert", ".xml", ".txt":
		return vert.Open(path)
	}

	pool, err := p.Open(path)
	if err != nil {
		return nil, err
	}
	return zombiezen.NewDocStore(pool), nil
}

// NewRowRepository opens the rows database, creating it if needed.
func NewRowRepository(p *Pool, path string) (*zombiezen.RowStore, error) {
	pool, err := p.Open(path)
	if err != nil {
		return nil, err
	}
	return zombiezen.NewRowStore(pool), nil
}

func corpusFlag() cli.Flag {
	return &cli.StringFlag{
		Name:     "corpus",
		Aliases:  []string{"c"},
		Usage:    "corpus `PATH`: a directory of JSON docs, a vertical file or a SQLite db",
		EnvVars:  []string{"VCLAUSE_CORPUS"},
		Required: true,
	}
}

func tagsetFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "tagset",
		Aliases: []string{"t"},
		Usage:   "HCL tagset `FILE`, the built-in english tagset if not given",
		EnvVars: []string{"VCLAUSE_TAGSET"},
	}
}

// extractionFlags are the flags read by newExtractor
func extractionFlags() []cli.Flag {
	return []cli.Flag{
		tagsetFlag(),
		&cli.StringSliceFlag{
			Name:    "lexicon",
			Aliases: []string{"l"},
			Usage:   "word list `FILE`s checking the lexical values, no check if not given",
			EnvVars: []string{"VCLAUSE_LEXICON"},
		},
		&cli.StringFlag{
			Name:  "headers",
			Usage: "comma separated `HEADERS` of the rows",
		},
		&cli.StringSliceFlag{
			Name:    "select",
			Aliases: []string{"s"},
			Usage:   "keep the rows matching the `ITEM`s (tense=past, !modal)",
		},
		&cli.BoolFlag{
			Name:  "no-validate",
			Usage: "keep the verbs that fail the clause checks",
		},
		&cli.IntFlag{
			Name:    "workers",
			Aliases: []string{"w"},
			Usage:   "number of sentences processed in parallel, 0 for the number of CPUs",
		},
	}
}

func rendererFlags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{Name: "no-color", Usage: "do not color the verbs"},
		&cli.BoolFlag{Name: "no-prefix", Usage: "do not prefix the sentences with doc and sentence ids"},
		&cli.StringFlag{
			Name:  "format",
			Value: render.DefaultFormat,
			Usage: fmt.Sprintf("sentence `FORMAT`: %s", strings.Join(render.SupportedFormats(), ", ")),
		},
	}
}

func loadTagset(path string) (*tagset.Tagset, error) {
	if path == "" {
		return tagset.English(), nil
	}
	return tagset.Load(path)
}

func parseHeaders(s string) ([]string, error) {
	if s == "" {
		return verb.DefaultHeaders, nil
	}

	var headers []string
	for _, h := range strings.Split(s, ",") {
		h = strings.TrimSpace(h)
		if !verb.IsHeader(h) {
			return nil, fmt.Errorf("unknown header: %q", h)
		}
		headers = append(headers, h)
	}

	return headers, nil
}

func newExtractor(cCtx *cli.Context) (*extract.Extractor, error) {
	ts, err := loadTagset(cCtx.String("tagset"))
	if err != nil {
		return nil, err
	}

	headers, err := parseHeaders(cCtx.String("headers"))
	if err != nil {
		return nil, err
	}

	expr, err := selection.Parse(cCtx.StringSlice("select"))
	if err != nil {
		return nil, err
	}

	var filter lexicon.Filter
	if paths := cCtx.StringSlice("lexicon"); len(paths) > 0 {
		dict, err := lexicon.LoadFiles(paths...)
		if err != nil {
			return nil, err
		}
		filter = dict
	}

	return &extract.Extractor{
		Aggregator: clause.NewAggregator(ts, clause.WithValidation(!cCtx.Bool("no-validate"))),
		Headers:    headers,
		Filter:     filter,
		Select:     expr,
		Workers:    cCtx.Int("workers"),
	}, nil
}

func newRenderer(cCtx *cli.Context, ui UI) (*render.Renderer, error) {
	r := render.NewRenderer(ui.Out)
	r.HasColor = !cCtx.Bool("no-color")
	r.HasPrefix = !cCtx.Bool("no-prefix")

	format := cCtx.String("format")
	supported := false
	for _, f := range render.SupportedFormats() {
		if f == format {
			supported = true
		}
	}
	if !supported {
		return nil, fmt.Errorf("unknown format: %s", format)
	}
	r.Format = format

	return r, nil
}

// preload loads the whole corpus in memory when the repository supports it,
// showing a progress bar.
func preload(repo storage.DocReader) error {
	pl, ok := repo.(storage.Preloader)
	if !ok {
		return nil
	}

	docs, err := repo.List()
	if err != nil {
		return err
	}

	uiprogress.Start()
	defer uiprogress.Stop()

	bar := uiprogress.AddBar(len(docs))
	bar.AppendCompleted()
	bar.PrependElapsed()

	return pl.Preload(func(current, total int, name string) {
		bar.Set(current)
	})
}
