// Package verb builds and validates the linguistic record of a single verb
// token of a dependency-parsed sentence.
package verb

import (
	sent "github.com/revelaction/vclause/sentence"
	"github.com/revelaction/vclause/tagset"
)

// maxHops bounds the climb of the auxiliary chain: modal, have, be above the
// lexical verb.
const maxHops = 3

// Provider answers the dependency queries the Builder needs.
// sentence.Sentence is a Provider.
type Provider interface {
	Parent(id int) (sent.Token, bool)
	Dependents(id int) []sent.Token
}

type Builder struct {
	prov Provider
	tags *tagset.Tagset
}

func NewBuilder(p Provider, ts *tagset.Tagset) *Builder {
	return &Builder{prov: p, tags: ts}
}

// Build returns the record of the verb token t. It fails with ChainError if
// t is itself a link in the middle of an auxiliary chain.
func (b *Builder) Build(t sent.Token) (*Record, error) {
	r := &Record{
		Word:     t.Text,
		Lemma:    t.Lemma,
		Tag:      t.Tag,
		Index:    t.Id,
		Relation: t.Dep,
		Tense:    b.tags.Tense(t.Tag),
	}

	if err := b.scan(r, t.Id); err != nil {
		return nil, err
	}

	if err := b.climb(r); err != nil {
		return nil, err
	}

	return r, nil
}

// climb walks up the auxiliary chain from the verb. Each level reached is
// rescanned for dependents.
func (b *Builder) climb(r *Record) error {
	id, relation := r.Index, r.Relation
	for hop := 0; ; hop++ {
		r.HighestIndex = id
		b.cascade(r)

		if relation == b.tags.Relations.Root {
			r.Matrix = true
			if r.Tense == tagset.Nil && id == r.Index && r.Modal == nil {
				r.Tense = tagset.Present
			}
			return nil
		}

		if hop == maxHops {
			return nil
		}

		parent, ok := b.prov.Parent(id)
		if !ok {
			return nil
		}

		if !b.aux(r, parent) {
			return nil
		}

		if err := b.scan(r, parent.Id); err != nil {
			return err
		}

		id, relation = parent.Id, parent.Dep
	}
}

// aux records the auxiliary p in r. It returns false if p is not an
// auxiliary.
func (b *Builder) aux(r *Record, p sent.Token) bool {
	t := b.tags.Tense(p.Tag)
	switch b.tags.Aux(p.Lemma, p.Tag) {
	case tagset.Have:
		r.Have = &t
	case tagset.Be:
		r.Be = &t
	case tagset.Modal:
		r.Modal = ptr(p.Lemma)
	case tagset.Do:
		r.Tense = t
	default:
		return false
	}

	return true
}

// cascade turns the form below an auxiliary into a participle.
func (b *Builder) cascade(r *Record) {
	if r.Be != nil && r.Tense == tagset.Past {
		r.Tense = tagset.PastPart
	}

	if r.Have != nil {
		if r.Tense == tagset.Past {
			r.Tense = tagset.PastPart
		}

		if r.Be != nil && *r.Be == tagset.Past {
			r.Be = ptr(tagset.PastPart)
		}
	}
}

// scan collects the arguments, adjuncts and subordination markers among the
// dependents of the token id.
func (b *Builder) scan(r *Record, id int) error {
	rel := b.tags.Relations
	for _, d := range b.prov.Dependents(id) {
		if b.tags.Is(tagset.Infinitive, d.Tag) {
			r.To = true
		}

		switch {
		case b.tags.Is(tagset.Noun, d.Tag):
			switch d.Dep {
			case rel.Subject:
				r.Subject = ptr(d.Lemma)
			case rel.Object:
				r.Objects = append(r.Objects, d.Lemma)
			case rel.Predicate:
				r.Predicate = ptr(d.Lemma)
				r.PredClass = ptr(PredNoun)
			}
		case b.tags.Is(tagset.Adjective, d.Tag):
			if d.Dep == rel.Predicate {
				r.Predicate = ptr(d.Lemma)
				r.PredClass = ptr(PredAdjective)
			}
		}

		switch {
		case b.tags.Is(tagset.Preposition, d.Tag):
			if !b.tags.IsNonPreposition(d.Lemma) {
				r.Preps = append(r.Preps, b.prep(d))
			}
		case b.tags.Is(tagset.Particle, d.Tag):
			r.Particle = ptr(d.Lemma)
		}

		b.complementizer(r, d)

		if id == r.Index && b.tags.Is(tagset.Verb, d.Tag) {
			switch d.Dep {
			case rel.Object:
				r.EmbeddedIndex = ptr(d.Id)
			case rel.VerbChain:
				return ChainError{Msg: "this verb is in the middle of an aux chain"}
			}
		}
	}

	return nil
}

func (b *Builder) prep(p sent.Token) Prep {
	slot := Prep{}
	for _, d := range b.prov.Dependents(p.Id) {
		switch {
		case b.tags.Is(tagset.Noun, d.Tag):
			slot.Label = p.Lemma
			slot.Object = ptr(d.Lemma)
		case b.tags.Is(tagset.Preposition, d.Tag):
			// compound preposition, the object hangs from the second one
			for _, dd := range b.prov.Dependents(d.Id) {
				if b.tags.Is(tagset.Noun, dd.Tag) {
					slot.Label = p.Lemma + "_" + d.Lemma
					slot.Object = ptr(dd.Lemma)
				}
			}
		}
	}

	if slot.Label == "" {
		slot.Label = p.Lemma
	}

	return slot
}

func (b *Builder) complementizer(r *Record, d sent.Token) {
	deps := b.prov.Dependents(d.Id)
	switch {
	case b.tags.IsComplementizer(d.Lemma) && b.tags.Is(tagset.Preposition, d.Tag):
		if d.Id < r.Index && len(deps) == 0 {
			r.Complementizer = ptr(d.Lemma)
		}
	case b.tags.IsClauseWh(d.Lemma, d.Tag):
		r.Complementizer = ptr(d.Lemma)
	case b.tags.Is(tagset.Noun, d.Tag):
		for _, dd := range deps {
			if b.tags.IsClauseWh(dd.Lemma, dd.Tag) {
				r.Complementizer = ptr(dd.Lemma)
			}
		}
	}
}
