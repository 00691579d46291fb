package verb

import (
	"regexp"
	"strconv"

	"github.com/revelaction/vclause/tagset"
)

type PredClass string

const (
	PredNoun      PredClass = "N"
	PredAdjective PredClass = "Adj"
)

// Prep is a numbered preposition slot. Compound prepositions are labelled
// with both lemmas joined by "_" (because_of).
type Prep struct {
	Label  string  `json:"label"`
	Object *string `json:"object,omitempty"`
}

// Record is the linguistic record of one verb token. Pointer fields are nil
// when the grammatical role did not occur.
type Record struct {
	Word     string `json:"word"`
	Lemma    string `json:"lemma"`
	Tag      string `json:"pos"`
	Index    int    `json:"index"`
	Relation string `json:"relation"`

	Tense        tagset.Tense `json:"tense"`
	Matrix       bool         `json:"matrix"`
	To           bool         `json:"to"`
	HighestIndex int          `json:"highest_index"`

	Modal *string       `json:"modal,omitempty"`
	Have  *tagset.Tense `json:"have,omitempty"`
	Be    *tagset.Tense `json:"be,omitempty"`

	Subject   *string    `json:"subject,omitempty"`
	Objects   []string   `json:"objects,omitempty"`
	Predicate *string    `json:"predicate,omitempty"`
	PredClass *PredClass `json:"predclass,omitempty"`
	Preps     []Prep     `json:"preps,omitempty"`
	Particle  *string    `json:"particle,omitempty"`

	Complementizer *string `json:"complementizer,omitempty"`
	EmbeddedIndex  *int    `json:"embedded_index,omitempty"`
}

// DefaultHeaders are the columns projected when the caller does not choose
// any.
var DefaultHeaders = []string{
	"lemma", "tense", "matrix", "to", "modal", "have", "be",
	"subject", "object1", "object2", "predicate", "predclass",
	"prep1", "prep1object", "prep2", "prep2object",
	"particle", "complementizer", "highest_index", "embedded_index",
}

var (
	objectHeader = regexp.MustCompile(`^object([1-9][0-9]*)$`)
	prepHeader   = regexp.MustCompile(`^prep([1-9][0-9]*)(object)?$`)
)

// lexical headers hold words. Only those are checked by a lexical filter.
var lexical = map[string]bool{
	"word":           true,
	"lemma":          true,
	"modal":          true,
	"subject":        true,
	"predicate":      true,
	"particle":       true,
	"complementizer": true,
}

// IsLexical reports whether the values of the header are words.
func IsLexical(header string) bool {
	return lexical[header] || objectHeader.MatchString(header) || prepHeader.MatchString(header)
}

// IsHeader reports whether header names a field of the record.
func IsHeader(header string) bool {
	switch header {
	case "word", "lemma", "pos", "index", "relation", "tense", "matrix", "to",
		"highest_index", "embedded_index", "modal", "have", "be", "subject",
		"predicate", "predclass", "particle", "complementizer":
		return true
	}

	return objectHeader.MatchString(header) || prepHeader.MatchString(header)
}

// Value returns the value of the field named by header, false if the field
// is absent.
func (r *Record) Value(header string) (string, bool) {
	switch header {
	case "word":
		return r.Word, true
	case "lemma":
		return r.Lemma, true
	case "pos":
		return r.Tag, true
	case "index":
		return strconv.Itoa(r.Index), true
	case "relation":
		return r.Relation, true
	case "tense":
		return string(r.Tense), true
	case "matrix":
		return strconv.FormatBool(r.Matrix), true
	case "to":
		return strconv.FormatBool(r.To), true
	case "highest_index":
		return strconv.Itoa(r.HighestIndex), true
	case "embedded_index":
		if r.EmbeddedIndex == nil {
			return "", false
		}
		return strconv.Itoa(*r.EmbeddedIndex), true
	case "modal":
		return str(r.Modal)
	case "have":
		return tense(r.Have)
	case "be":
		return tense(r.Be)
	case "subject":
		return str(r.Subject)
	case "predicate":
		return str(r.Predicate)
	case "predclass":
		if r.PredClass == nil {
			return "", false
		}
		return string(*r.PredClass), true
	case "particle":
		return str(r.Particle)
	case "complementizer":
		return str(r.Complementizer)
	}

	if m := objectHeader.FindStringSubmatch(header); m != nil {
		n, _ := strconv.Atoi(m[1])
		if n > len(r.Objects) {
			return "", false
		}
		return r.Objects[n-1], true
	}

	if m := prepHeader.FindStringSubmatch(header); m != nil {
		n, _ := strconv.Atoi(m[1])
		if n > len(r.Preps) {
			return "", false
		}

		p := r.Preps[n-1]
		if m[2] == "" {
			return p.Label, true
		}
		return str(p.Object)
	}

	return "", false
}

func str(s *string) (string, bool) {
	if s == nil {
		return "", false
	}
	return *s, true
}

func tense(t *tagset.Tense) (string, bool) {
	if t == nil {
		return "", false
	}
	return string(*t), true
}

func ptr[T any](v T) *T {
	return &v
}
