package render

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/revelaction/vclause/storage"
)

// TSVWriter writes rows as tab separated values, prefixed by the doc,
// sentence and verb ids when Ids is set.
type TSVWriter struct {
	Ids bool
	w   *csv.Writer
}

func NewTSVWriter(w io.Writer) *TSVWriter {
	cw := csv.NewWriter(w)
	cw.Comma = '\t'
	return &TSVWriter{Ids: true, w: cw}
}

func (t *TSVWriter) Header(headers []string) error {
	if t.Ids {
		headers = append([]string{"doc", "sentence", "verb"}, headers...)
	}
	return t.w.Write(headers)
}

func (t *TSVWriter) Rows(rows []storage.Row) error {
	for _, row := range rows {
		record := row.Values
		if t.Ids {
			record = append([]string{strconv.Itoa(row.DocId), strconv.Itoa(row.SentenceId), strconv.Itoa(row.VerbIndex)}, row.Values...)
		}

		if err := t.w.Write(record); err != nil {
			return err
		}
	}

	return nil
}

func (t *TSVWriter) Flush() error {
	t.w.Flush()
	return t.w.Error()
}
