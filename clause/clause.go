// Package clause aggregates the verb records of a sentence.
package clause

import (
	"sort"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/revelaction/vclause/lexicon"
	sent "github.com/revelaction/vclause/sentence"
	"github.com/revelaction/vclause/tagset"
	"github.com/revelaction/vclause/verb"
)

// None is the projected value of an absent field.
const None = "NONE"

// Drop is a verb whose record could not be built or did not validate.
type Drop struct {
	Token sent.Token
	Err   error
}

type Option func(*Aggregator)

// WithValidation enables or disables the validator and the single matrix
// check. Validation is on by default.
func WithValidation(v bool) Option {
	return func(a *Aggregator) {
		a.validate = v
	}
}

func WithLogger(l zerolog.Logger) Option {
	return func(a *Aggregator) {
		a.logger = l
	}
}

type Aggregator struct {
	tags      *tagset.Tagset
	validator *verb.Validator
	validate  bool
	logger    zerolog.Logger
}

func NewAggregator(ts *tagset.Tagset, opts ...Option) *Aggregator {
	a := &Aggregator{
		tags:      ts,
		validator: verb.NewValidator(ts),
		validate:  true,
		logger:    log.Logger,
	}

	for _, opt := range opts {
		opt(a)
	}

	return a
}

func (a *Aggregator) Tagset() *tagset.Tagset {
	return a.tags
}

// Build returns the record of the sentence s. Verbs that fail are dropped;
// the sentence fails only if no verb survives or, with validation, if more
// than one surviving verb is a matrix verb.
func (a *Aggregator) Build(s sent.Sentence) (*Record, error) {
	rec := &Record{
		DocId:      s.DocId,
		SentenceId: s.Id,
		verbs:      map[int]*verb.Record{},
	}

	re := a.tags.Pattern(tagset.Verb)
	if re == nil {
		return nil, NoInformationError{Msg: "tagset defines no verb category"}
	}

	b := verb.NewBuilder(s, a.tags)
	for _, t := range s.Filter(re) {
		vr, err := b.Build(t)
		if err == nil && a.validate {
			err = a.validator.Validate(vr)
		}

		if err != nil {
			a.logger.Debug().
				Int("doc", s.DocId).
				Int("sentence", s.Id).
				Int("verb", t.Id).
				Str("lemma", t.Lemma).
				Err(err).
				Msg("verb dropped")
			rec.Drops = append(rec.Drops, Drop{Token: t, Err: err})
			continue
		}

		rec.verbs[t.Id] = vr
	}

	if len(rec.verbs) == 0 {
		return nil, NoInformationError{Msg: "no valid verb in sentence", Drops: rec.Drops}
	}

	if a.validate {
		var matrix []int
		for _, vr := range rec.Verbs() {
			if vr.Matrix {
				matrix = append(matrix, vr.Index)
			}
		}

		if len(matrix) > 1 {
			return nil, MultipleMatrixError{Msg: "more than one matrix verb", Indexes: matrix}
		}
	}

	return rec, nil
}

// Record maps the verbs of a sentence to their records.
type Record struct {
	DocId      int
	SentenceId int

	// Drops lists the verbs left out, in sentence order.
	Drops []Drop

	verbs map[int]*verb.Record
}

func (r *Record) Len() int {
	return len(r.verbs)
}

// Verb returns the record of the verb token with the given Id.
func (r *Record) Verb(id int) (*verb.Record, bool) {
	vr, ok := r.verbs[id]
	return vr, ok
}

// Verbs returns the records ordered by verb index.
func (r *Record) Verbs() []*verb.Record {
	vrs := make([]*verb.Record, 0, len(r.verbs))
	for _, vr := range r.verbs {
		vrs = append(vrs, vr)
	}

	sort.Slice(vrs, func(i, j int) bool {
		return vrs[i].Index < vrs[j].Index
	})

	return vrs
}

// Matrix returns the matrix verb record. If there is none it fails with
// NoMatrixError when required, and returns nil otherwise.
func (r *Record) Matrix(required bool) (*verb.Record, error) {
	for _, vr := range r.Verbs() {
		if vr.Matrix {
			return vr, nil
		}
	}

	if required {
		return nil, NoMatrixError{Msg: "sentence has no matrix verb"}
	}

	return nil, nil
}

// ByHighestIndex returns the record whose auxiliary chain reaches the token
// i.
func (r *Record) ByHighestIndex(i int) (*verb.Record, error) {
	for _, vr := range r.Verbs() {
		if vr.HighestIndex == i {
			return vr, nil
		}
	}

	return nil, NotFoundError{Msg: "no verb record with highest index", Index: i}
}

// Project returns one row per verb record, ordered by verb index, with the
// values of the headers. Values are lower-cased, absent fields are None.
// Lexical values are checked by f if not nil.
func (r *Record) Project(headers []string, f lexicon.Filter) ([][]string, error) {
	var rows [][]string
	for _, vr := range r.Verbs() {
		row := make([]string, len(headers))
		for i, h := range headers {
			v, ok := vr.Value(h)
			if !ok {
				row[i] = None
				continue
			}

			v = strings.ToLower(v)
			if f != nil && verb.IsLexical(h) {
				if err := f.Check(v); err != nil {
					return nil, err
				}
			}

			row[i] = v
		}

		rows = append(rows, row)
	}

	return rows, nil
}
