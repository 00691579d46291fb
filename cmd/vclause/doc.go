package main

import (
	"fmt"
	"strconv"

	"github.com/urfave/cli/v2"

	"github.com/revelaction/vclause/render"
	sent "github.com/revelaction/vclause/sentence"
	"github.com/revelaction/vclause/storage"
)

type DocOptions struct {
	Start int
	Count int
}

func docCommand(ui UI) *cli.Command {
	return &cli.Command{
		Name:      "doc",
		Usage:     "list the docs of the corpus, or print the sentences of a doc",
		ArgsUsage: "[docId]",
		Flags: []cli.Flag{
			corpusFlag(),
			&cli.IntFlag{Name: "start", Usage: "first sentence `INDEX` to print"},
			&cli.IntFlag{Name: "count", Value: -1, Usage: "`NUMBER` of sentences to print, -1 for all"},
		},
		Action: func(cCtx *cli.Context) error {
			p := &Pool{}
			defer p.Close()

			repo, err := NewDocRepository(p, cCtx.String("corpus"))
			if err != nil {
				return err
			}

			if cCtx.Args().Len() == 0 {
				return listDocs(repo, ui)
			}

			id, err := strconv.Atoi(cCtx.Args().First())
			if err != nil {
				return fmt.Errorf("invalid doc id: %s", cCtx.Args().First())
			}

			doc, err := repo.Read(id)
			if err != nil {
				return err
			}

			renderDoc(doc, DocOptions{Start: cCtx.Int("start"), Count: cCtx.Int("count")}, ui)
			return nil
		},
	}
}

func renderDoc(doc sent.Doc, opts DocOptions, ui UI) {
	start := max(opts.Start, 0)
	if start >= len(doc.Tokens) {
		return
	}

	sentences := doc.Tokens[start:]
	if opts.Count >= 0 && opts.Count < len(sentences) {
		sentences = sentences[:opts.Count]
	}

	r := render.NewRenderer(ui.Out)
	for i, sentence := range sentences {
		prefix := fmt.Sprintf("✍  %d ", start+i)
		r.Sentence(sentence, prefix)
	}
}

func listDocs(repo storage.DocReader, ui UI) error {
	docs, err := repo.List()
	if err != nil {
		return err
	}

	for _, doc := range docs {
		fmt.Fprintf(ui.Out, "📖 %d %s\n", doc.Id, doc.Title)
	}
	return nil
}
