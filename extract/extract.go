// Package extract runs the verb extraction over documents: every sentence is
// aggregated into a sentence record, projected into rows and filtered by a
// selection.
package extract

import (
	"context"
	"runtime"
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/revelaction/vclause/clause"
	"github.com/revelaction/vclause/lexicon"
	sent "github.com/revelaction/vclause/sentence"
	"github.com/revelaction/vclause/selection"
	"github.com/revelaction/vclause/storage"
)

type Extractor struct {
	Aggregator *clause.Aggregator

	// Headers of the projected rows
	Headers []string

	// Filter checks the lexical values. nil disables it.
	Filter lexicon.Filter

	// Select keeps the matching rows. Empty keeps all.
	Select selection.Expr

	// Workers bounds the sentences processed at the same time. Zero means
	// the number of CPUs.
	Workers int
}

type SentenceResult struct {
	Id     int
	Record *clause.Record
	Rows   []storage.Row

	// Err is the reason the sentence was discarded
	Err error
}

type DocResult struct {
	DocId     int
	Title     string
	Sentences []SentenceResult
}

// Rows returns the rows of all sentences, in sentence order.
func (r DocResult) Rows() []storage.Row {
	var rows []storage.Row
	for _, s := range r.Sentences {
		rows = append(rows, s.Rows...)
	}
	return rows
}

// Columns returns the projected headers: the configured headers followed by
// the headers the selection reads and the configured ones lack.
func (e *Extractor) Columns() []string {
	cols := slices.Clone(e.Headers)
	for _, h := range e.Select.Headers() {
		if !slices.Contains(cols, h) {
			cols = append(cols, h)
		}
	}
	return cols
}

// Sentence builds the record of s and its selected rows. A failing sentence
// is reported in Err, never returned as an error.
func (e *Extractor) Sentence(s sent.Sentence) SentenceResult {
	res := SentenceResult{Id: s.Id}

	rec, err := e.Aggregator.Build(s)
	if err != nil {
		res.Err = err
		return res
	}
	res.Record = rec

	cols := e.Columns()
	values, err := rec.Project(cols, e.Filter)
	if err != nil {
		res.Err = err
		return res
	}

	for i, vr := range rec.Verbs() {
		if !e.Select.Match(cols, values[i]) {
			continue
		}

		res.Rows = append(res.Rows, storage.Row{
			DocId:      s.DocId,
			SentenceId: s.Id,
			VerbIndex:  vr.Index,
			Values:     values[i],
		})
	}

	return res
}

// Doc processes the sentences of doc in parallel. Results keep the sentence
// order. It fails only if ctx is cancelled.
func (e *Extractor) Doc(ctx context.Context, doc sent.Doc) (DocResult, error) {
	workers := e.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	results := make([]SentenceResult, len(doc.Tokens))
	for i := range doc.Tokens {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			results[i] = e.Sentence(doc.Sentence(i))
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return DocResult{}, err
	}

	return DocResult{DocId: doc.Id, Title: doc.Title, Sentences: results}, nil
}

// Corpus processes the documents of r, in list order, and calls fn with the
// result of each. ids restricts the documents when not empty.
func (e *Extractor) Corpus(ctx context.Context, r storage.DocReader, ids []int, fn func(DocResult) error) error {
	if len(ids) == 0 {
		docs, err := r.List()
		if err != nil {
			return err
		}

		for _, d := range docs {
			ids = append(ids, d.Id)
		}
	}

	for _, id := range ids {
		doc, err := r.Read(id)
		if err != nil {
			return err
		}

		res, err := e.Doc(ctx, doc)
		if err != nil {
			return err
		}

		if err := fn(res); err != nil {
			return err
		}
	}

	return nil
}
