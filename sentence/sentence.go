package sentence

import (
	"regexp"
)

type Doc struct {
	Id int

	Title string

	Labels []string
	Tokens [][]Token `json:"tokens"`
}

// Sentence returns the sentence at position i of the doc.
func (d Doc) Sentence(i int) Sentence {
	return Sentence{Id: i, DocId: d.Id, Tokens: d.Tokens[i]}
}

// Library is a collection of Doc
type Library []Doc

// Token represents a word of the sentence, with POS and metadata.
type Token struct {
	// The position of the token in the sentence, starting at 1. Head refers
	// to this field.
	Id int `json:"id"`

	// The Id of the syntactic parent, 0 for none
	Head       int    `json:"head"`
	SentenceId int    `json:"sent"`
	Pos        string `json:"pos"`

	// The relation to the parent (SBJ, OBJ, ROOT, VC...)
	Dep string `json:"dep"`

	// The fine-grained tag of the tagset (VVD, NN, IN...)
	Tag string `json:"tag"`

	// the index of the start character of the token in the original doc
	Idx int `json:"idx"`

	// The unmodified word
	Text string `json:"text"`

	// The lemma of the word
	Lemma string `json:"lemma"`

	// The index of the word in the sentence, starting at 0.
	Index int `json:"index"`
}

// Sentence is the dependency tree of one sentence. It answers the parent and
// dependents queries the verb extraction needs.
type Sentence struct {
	Id     int     `json:"id"`
	DocId  int     `json:"doc_id"`
	Tokens []Token `json:"tokens"`
}

// Token returns the token with the given Id.
func (s Sentence) Token(id int) (Token, bool) {
	// tokens are usually stored in Id order
	if id >= 1 && id <= len(s.Tokens) && s.Tokens[id-1].Id == id {
		return s.Tokens[id-1], true
	}

	for _, t := range s.Tokens {
		if t.Id == id {
			return t, true
		}
	}

	return Token{}, false
}

// Parent returns the syntactic parent of the token with the given Id. It
// returns false for the root and for heads pointing outside the sentence.
func (s Sentence) Parent(id int) (Token, bool) {
	t, ok := s.Token(id)
	if !ok || t.Head == 0 || t.Head == t.Id {
		return Token{}, false
	}

	return s.Token(t.Head)
}

// Dependents returns the tokens whose parent is the token with the given Id,
// in sentence order.
func (s Sentence) Dependents(id int) []Token {
	var deps []Token
	for _, t := range s.Tokens {
		if t.Head == id && t.Id != id {
			deps = append(deps, t)
		}
	}

	return deps
}

// Filter returns the tokens whose tag matches re, in sentence order.
func (s Sentence) Filter(re *regexp.Regexp) []Token {
	var tokens []Token
	for _, t := range s.Tokens {
		if re.MatchString(t.Tag) {
			tokens = append(tokens, t)
		}
	}

	return tokens
}
