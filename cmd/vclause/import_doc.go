package main

import (
	"fmt"

	"github.com/gosuri/uiprogress"
	"github.com/urfave/cli/v2"

	"github.com/revelaction/vclause/storage/sqlite/zombiezen"
)

type ImportDocOptions struct {
	From string
	To   string
}

func importDocCommand(ui UI) *cli.Command {
	return &cli.Command{
		Name:  "import-doc",
		Usage: "copy the docs of a corpus into a SQLite database",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "from", Usage: "source corpus `PATH`", Required: true},
			&cli.StringFlag{Name: "to", Usage: "destination SQLite `DB`", Required: true},
		},
		Action: func(cCtx *cli.Context) error {
			return importDoc(ImportDocOptions{From: cCtx.String("from"), To: cCtx.String("to")}, ui)
		},
	}
}

func importDoc(opts ImportDocOptions, ui UI) error {
	p := &Pool{}
	defer p.Close()

	src, err := NewDocRepository(p, opts.From)
	if err != nil {
		return err
	}

	pool, err := p.Open(opts.To)
	if err != nil {
		return err
	}
	dst := zombiezen.NewDocStore(pool)

	fmt.Fprintf(ui.Out, "Reading docs from %s...\n", opts.From)
	docs, err := src.List()
	if err != nil {
		return err
	}

	uiprogress.Start()
	bar := uiprogress.AddBar(len(docs))
	bar.AppendCompleted()
	bar.PrependElapsed()

	count := 0
	for _, docMeta := range docs {
		doc, err := src.Read(docMeta.Id)
		if err != nil {
			uiprogress.Stop()
			return fmt.Errorf("failed to read doc %s: %w", docMeta.Title, err)
		}

		if err := dst.Write(doc); err != nil {
			uiprogress.Stop()
			return fmt.Errorf("failed to write doc %s: %w", docMeta.Title, err)
		}
		count++
		bar.Incr()
	}
	uiprogress.Stop()

	fmt.Fprintf(ui.Out, "Successfully imported %d docs from %s to %s\n", count, opts.From, opts.To)
	return nil
}
