// Package tagset holds the declarative tables that map the tags and relation
// labels of a dependency-parsed corpus to the categories the verb extraction
// reasons about. Traversal code never matches tags directly, so a corpus with
// a different tag inventory only needs a different Tagset.
package tagset

import (
	"regexp"
	"slices"
	"strings"
)

type Category string

const (
	Verb        Category = "verb"
	Noun        Category = "noun"
	Adjective   Category = "adjective"
	Adverb      Category = "adverb"
	Preposition Category = "preposition"
	Particle    Category = "particle"
	Determiner  Category = "determiner"
	Numeral     Category = "numeral"
	Wh          Category = "wh"
	Infinitive  Category = "infinitive"
)

// Categories lists all known categories
func Categories() []Category {
	return []Category{Verb, Noun, Adjective, Adverb, Preposition, Particle, Determiner, Numeral, Wh, Infinitive}
}

type Tense string

const (
	Past     Tense = "past"
	Gerund   Tense = "gerund"
	PastPart Tense = "pastpart"
	Present  Tense = "present"

	// Nil is the tense of non-finite (bare) forms
	Nil Tense = "nil"
)

func (t Tense) In(tenses ...Tense) bool {
	return slices.Contains(tenses, t)
}

type Aux string

const (
	NoAux Aux = ""
	Have  Aux = "have"
	Be    Aux = "be"
	Modal Aux = "modal"
	Do    Aux = "do"
)

// Rule associates a tag pattern to a value. Patterns are unanchored regular
// expressions, the built-in ones anchor themselves with ^.
type Rule[T ~string] struct {
	Value   T
	Pattern *regexp.Regexp
}

type Relations struct {
	Subject           string `json:"subject"`
	Object            string `json:"object"`
	Predicate         string `json:"predicate"`
	Root              string `json:"root"`
	VerbChain         string `json:"verb_chain"`
	ClausalComplement string `json:"clausal_complement"`
}

type Tagset struct {
	Name string

	// Categories in classification order. A category appears at most once.
	Categories []Rule[Category]

	// Tenses in matching order. A tag matching none is Nil.
	Tenses []Rule[Tense]

	// Auxiliaries in matching order. Do-support is detected by lemma, not
	// by tag.
	Auxiliaries []Rule[Aux]

	Relations Relations

	DoLemma string

	// Complementizers are the lexical items that introduce an embedded
	// clause when tagged as prepositions.
	Complementizers []string

	// NonPrepositions are preposition-tagged items that never open a
	// preposition slot.
	NonPrepositions []string

	// FreeChoice marks wh words that do not introduce a clause (whatever,
	// whoever).
	FreeChoice string
}

// Is reports whether tag belongs to the category c.
func (ts *Tagset) Is(c Category, tag string) bool {
	for _, r := range ts.Categories {
		if r.Value == c {
			return r.Pattern.MatchString(tag)
		}
	}

	return false
}

// Pattern returns the pattern of the category c, nil if the tagset does not
// define it.
func (ts *Tagset) Pattern(c Category) *regexp.Regexp {
	for _, r := range ts.Categories {
		if r.Value == c {
			return r.Pattern
		}
	}

	return nil
}

// Classify returns the first category, in table order, the tag belongs to.
func (ts *Tagset) Classify(tag string) (Category, bool) {
	for _, r := range ts.Categories {
		if r.Pattern.MatchString(tag) {
			return r.Value, true
		}
	}

	return "", false
}

// Tense returns the tense a verb tag carries.
func (ts *Tagset) Tense(tag string) Tense {
	for _, r := range ts.Tenses {
		if r.Pattern.MatchString(tag) {
			return r.Value
		}
	}

	return Nil
}

// Aux classifies a parent of a verb as an auxiliary. NoAux means the parent
// is an ordinary lexical word.
func (ts *Tagset) Aux(lemma, tag string) Aux {
	for _, r := range ts.Auxiliaries {
		if r.Pattern.MatchString(tag) {
			return r.Value
		}
	}

	if ts.DoLemma != "" && lemma == ts.DoLemma {
		return Do
	}

	return NoAux
}

func (ts *Tagset) IsComplementizer(lemma string) bool {
	return slices.Contains(ts.Complementizers, lemma)
}

func (ts *Tagset) IsNonPreposition(lemma string) bool {
	return slices.Contains(ts.NonPrepositions, lemma)
}

func (ts *Tagset) IsFreeChoice(lemma string) bool {
	return ts.FreeChoice != "" && strings.Contains(lemma, ts.FreeChoice)
}

// IsClauseWh reports whether the token is a wh word able to introduce a
// clause, that is a wh word without the free choice marker.
func (ts *Tagset) IsClauseWh(lemma, tag string) bool {
	return !ts.IsFreeChoice(lemma) && ts.Is(Wh, tag)
}
