package render

import (
	"encoding/json"
	"errors"
	"io"

	"github.com/revelaction/vclause/clause"
	"github.com/revelaction/vclause/storage"
	"github.com/revelaction/vclause/verb"
)

type DropJSON struct {
	Index int    `json:"index"`
	Lemma string `json:"lemma"`
	Kind  string `json:"kind"`
	Error string `json:"error"`
}

// SentenceJSON is the serialized result of one sentence.
type SentenceJSON struct {
	DocId      int            `json:"doc_id"`
	SentenceId int            `json:"sentence_id"`
	Verbs      []*verb.Record `json:"verbs"`
	Rows       [][]string     `json:"rows,omitempty"`
	Dropped    []DropJSON     `json:"dropped"`
	Error      string         `json:"error,omitempty"`
}

// NewSentenceJSON collects the result of a sentence. rec is nil when the
// sentence failed with err.
func NewSentenceJSON(docId, sentId int, rec *clause.Record, rows []storage.Row, err error) SentenceJSON {
	s := SentenceJSON{
		DocId:      docId,
		SentenceId: sentId,
		Verbs:      []*verb.Record{},
		Dropped:    []DropJSON{},
	}

	for _, row := range rows {
		s.Rows = append(s.Rows, row.Values)
	}

	var drops []clause.Drop
	if rec != nil {
		s.Verbs = rec.Verbs()
		drops = rec.Drops
	}

	if err != nil {
		s.Error = err.Error()
		var noInfoErr clause.NoInformationError
		if errors.As(err, &noInfoErr) {
			drops = noInfoErr.Drops
		}
	}

	for _, d := range drops {
		s.Dropped = append(s.Dropped, DropJSON{
			Index: d.Token.Id,
			Lemma: d.Token.Lemma,
			Kind:  verb.Kind(d.Err),
			Error: d.Err.Error(),
		})
	}

	return s
}

// JSONRenderer writes sentence results as JSON to a writer.
type JSONRenderer struct {
	W io.Writer
}

// NewJSONRenderer creates a JSONRenderer writing to w.
func NewJSONRenderer(w io.Writer) *JSONRenderer {
	return &JSONRenderer{W: w}
}

// Render serializes sentence results as a JSON array.
func (r *JSONRenderer) Render(results []SentenceJSON) error {
	if results == nil {
		results = []SentenceJSON{}
	}
	return json.NewEncoder(r.W).Encode(results)
}

// RenderLine writes one sentence result as a JSON line.
func (r *JSONRenderer) RenderLine(result SentenceJSON) error {
	return json.NewEncoder(r.W).Encode(result)
}
