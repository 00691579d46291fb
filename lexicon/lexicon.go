// Package lexicon implements the optional lexical-validity filter applied to
// projected row values.
package lexicon

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/client9/gospell"
	"github.com/czcorpus/cnc-gokit/fs"
)

const (
	MsgMisspelled       = "word misspelled"
	MsgInvalidCharacter = "invalid character in sentence"

	// compoundSeparator joins the parts of compound values (because_of)
	compoundSeparator = "_"
)

type LexicalError struct {
	Msg  string
	Word string
}

func (err LexicalError) Error() string {
	return fmt.Sprintf("%s: %q", err.Msg, err.Word)
}

// Filter decides whether a lower-cased value is a valid word.
type Filter interface {
	Check(word string) error
}

// Nop accepts every word. It is the default filter.
type Nop struct{}

func (Nop) Check(string) error { return nil }

// Speller reports whether a single lower-cased word is correct.
// *gospell.GoSpell is a Speller.
type Speller interface {
	Spell(word string) bool
}

// Dictionary is a plain word list. Words are stored lower-cased.
type Dictionary struct {
	words map[string]struct{}
}

var _ Speller = (*Dictionary)(nil)

func NewDictionary(words ...string) *Dictionary {
	d := &Dictionary{words: make(map[string]struct{}, len(words))}
	d.Add(words...)
	return d
}

func (d *Dictionary) Add(words ...string) {
	for _, w := range words {
		d.words[strings.ToLower(w)] = struct{}{}
	}
}

func (d *Dictionary) Len() int {
	return len(d.words)
}

// Load adds the words of a plain list, one word per line. Only the first
// field of a line is read.
func (d *Dictionary) Load(r io.Reader) error {
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}

		d.Add(fields[0])
	}

	return sc.Err()
}

func (d *Dictionary) Spell(word string) bool {
	_, ok := d.words[strings.ToLower(word)]
	return ok
}

// Check accepts a word if every part of it is in the dictionary.
func (d *Dictionary) Check(word string) error {
	return check(word, d.Spell)
}

// Lexicon accepts a word if any of its spellers does, f.ex. the US and the
// GB lists.
type Lexicon struct {
	spellers []Speller
}

var _ Filter = (*Lexicon)(nil)

func NewLexicon(spellers ...Speller) *Lexicon {
	return &Lexicon{spellers: spellers}
}

// Len returns the number of word lists.
func (l *Lexicon) Len() int {
	return len(l.spellers)
}

func (l *Lexicon) Check(word string) error {
	return check(word, l.spell)
}

func (l *Lexicon) spell(word string) bool {
	for _, s := range l.spellers {
		if s.Spell(word) {
			return true
		}
	}

	return false
}

// NewHunspell reads a hunspell dictionary. Words of the .dic file are
// expanded with the affix rules of the .aff file.
func NewHunspell(aff, dic io.Reader) (Speller, error) {
	gs, err := gospell.NewGoSpellReader(aff, dic)
	if err != nil {
		return nil, fmt.Errorf("failed to read hunspell dictionary: %w", err)
	}

	return gs, nil
}

// LoadFiles builds a lexicon with the union of the word lists. A .dic file
// with an .aff file next to it is read as a hunspell dictionary, any other
// file as a plain list.
func LoadFiles(paths ...string) (*Lexicon, error) {
	l := NewLexicon()
	for _, p := range paths {
		s, err := loadFile(p)
		if err != nil {
			return nil, err
		}

		l.spellers = append(l.spellers, s)
	}

	return l, nil
}

func loadFile(path string) (Speller, error) {
	dic, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("IO error: %w", err)
	}
	defer dic.Close()

	affPath := strings.TrimSuffix(path, ".dic") + ".aff"
	if filepath.Ext(path) == ".dic" && fs.PathExists(affPath) {
		aff, err := os.Open(affPath)
		if err != nil {
			return nil, fmt.Errorf("IO error: %w", err)
		}
		defer aff.Close()

		s, err := NewHunspell(aff, dic)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		return s, nil
	}

	d := NewDictionary()
	if err := d.Load(dic); err != nil {
		return nil, fmt.Errorf("failed to read word list %s: %w", path, err)
	}

	return d, nil
}

func check(word string, spell func(string) bool) error {
	for _, part := range strings.Split(word, compoundSeparator) {
		if !isWord(part) {
			return LexicalError{Msg: MsgInvalidCharacter, Word: word}
		}

		if !spell(strings.ToLower(part)) {
			return LexicalError{Msg: MsgMisspelled, Word: word}
		}
	}

	return nil
}

func isWord(s string) bool {
	if s == "" {
		return false
	}

	for _, r := range s {
		if !unicode.IsLetter(r) && r != '\'' && r != '-' {
			return false
		}
	}

	return true
}
