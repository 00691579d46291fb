// Package vert reads dependency-parsed corpora in the vertical format of
// the parsed ukWaC: structure tags on their own lines and one token per line
// with the tab separated fields word, lemma, tag, index, head and relation.
//
//	<text id="http://example.com/page">
//	<s>
//	He	he	PP	1	2	SBJ
//	eats	eat	VVZ	2	0	ROOT
//	</s>
//	</text>
package vert

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	sent "github.com/revelaction/vclause/sentence"
	"github.com/revelaction/vclause/storage"
)

const numFields = 6

var textId = regexp.MustCompile(`\bid="([^"]*)"`)

// Parse reads all documents of a vertical file. Sentences outside a <text>
// element belong to an implicit document titled name.
func Parse(r io.Reader, name string) ([]sent.Doc, error) {
	var (
		docs    []sent.Doc
		doc     *sent.Doc
		current []sent.Token
		inSent  bool
		offset  int
	)

	closeDoc := func() {
		if doc != nil {
			docs = append(docs, *doc)
			doc = nil
		}
	}

	openDoc := func(title string) {
		closeDoc()
		doc = &sent.Doc{Id: len(docs), Title: title}
	}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNum := 0
	for sc.Scan() {
		lineNum++
		line := strings.TrimSpace(sc.Text())

		switch {
		case line == "":
			continue
		case strings.HasPrefix(line, "<text"):
			title := name
			if m := textId.FindStringSubmatch(line); m != nil {
				title = m[1]
			}
			openDoc(title)
		case line == "</text>":
			closeDoc()
		case line == "<s>" || strings.HasPrefix(line, "<s "):
			current, inSent, offset = nil, true, 0
		case line == "</s>":
			if doc == nil {
				openDoc(name)
			}
			if len(current) > 0 {
				doc.Tokens = append(doc.Tokens, current)
			}
			current, inSent = nil, false
		case strings.HasPrefix(line, "<"):
			// other structures (<p>, <g/>) carry no tokens
			continue
		default:
			if !inSent {
				return nil, fmt.Errorf("line %d: token outside a sentence", lineNum)
			}

			sentId := 0
			if doc != nil {
				sentId = len(doc.Tokens)
			}

			tok, err := parseToken(line, sentId, offset)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNum, err)
			}

			offset += len(tok.Text) + 1
			current = append(current, tok)
		}
	}

	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failure reading vertical file: %w", err)
	}

	if inSent {
		return nil, fmt.Errorf("line %d: unclosed sentence", lineNum)
	}

	closeDoc()
	return docs, nil
}

func parseToken(line string, sentId, offset int) (sent.Token, error) {
	fields := strings.Split(line, "\t")
	if len(fields) < numFields {
		return sent.Token{}, fmt.Errorf("expected %d fields, got %d", numFields, len(fields))
	}

	id, err := strconv.Atoi(fields[3])
	if err != nil || id < 1 {
		return sent.Token{}, fmt.Errorf("error parsing index field (%s)", fields[3])
	}

	head, err := strconv.Atoi(fields[4])
	if err != nil || head < 0 {
		return sent.Token{}, fmt.Errorf("error parsing head field (%s)", fields[4])
	}

	if fields[0] == "" {
		return sent.Token{}, fmt.Errorf("empty word field")
	}

	if fields[5] == "" {
		return sent.Token{}, fmt.Errorf("empty relation field")
	}

	return sent.Token{
		Id:         id,
		Head:       head,
		SentenceId: sentId,
		Pos:        fields[2],
		Tag:        fields[2],
		Dep:        fields[5],
		Idx:        offset,
		Text:       fields[0],
		Lemma:      fields[1],
		Index:      id - 1,
	}, nil
}

// Reader is a read only document repository over a vertical file. The whole
// file is parsed when opened.
type Reader struct {
	docs []sent.Doc
}

var _ storage.DocRepository = (*Reader)(nil)

func Open(path string) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("IO error: %w", err)
	}
	defer f.Close()

	docs, err := Parse(f, filepath.Base(path))
	if err != nil {
		return nil, fmt.Errorf("vertical file %s: %w", path, err)
	}

	return &Reader{docs: docs}, nil
}

// List returns the metadata of the docs.
func (r *Reader) List() ([]sent.Doc, error) {
	docs := make([]sent.Doc, len(r.docs))
	for i, d := range r.docs {
		docs[i] = sent.Doc{Id: d.Id, Title: d.Title, Labels: d.Labels}
	}
	return docs, nil
}

func (r *Reader) Read(id int) (sent.Doc, error) {
	if id < 0 || id >= len(r.docs) {
		return sent.Doc{}, fmt.Errorf("doc id out of range: %d", id)
	}
	return r.docs[id], nil
}

func (r *Reader) Write(doc sent.Doc) error {
	return fmt.Errorf("read-only storage")
}
