package storage

import (
	"time"

	sent "github.com/revelaction/vclause/sentence"
)

// DocReader defines read operations for document storage
type DocReader interface {
	// List returns the metadata (Id, Title, Labels) of documents.
	// Content (Tokens) is not loaded.
	List() ([]sent.Doc, error)

	// Read returns a document by ID
	Read(id int) (sent.Doc, error)
}

// DocWriter defines write operations for document storage
type DocWriter interface {
	// Write persists a document and its sentences to storage
	Write(doc sent.Doc) error
}

// DocRepository combines read and write operations
type DocRepository interface {
	DocReader
	DocWriter
}

// Preloader defines an optional capability for repositories that require
// or support eager loading of data into memory.
type Preloader interface {
	Preload(cb func(current, total int, name string)) error
}

// Run is one extraction over a corpus. The rows of a run share its headers.
type Run struct {
	Id      string    `json:"id"`
	Corpus  string    `json:"corpus"`
	Headers []string  `json:"headers"`
	Created time.Time `json:"created"`
}

// Row is the projection of one verb record.
type Row struct {
	DocId      int      `json:"doc_id"`
	SentenceId int      `json:"sentence_id"`
	VerbIndex  int      `json:"verb_index"`
	Values     []string `json:"values"`
}

// RowWriter defines write operations for extracted rows
type RowWriter interface {
	CreateRun(run Run) error
	WriteRows(runId string, rows []Row) error
}

// RowReader defines read operations for extracted rows
type RowReader interface {
	// Runs returns the runs, newest first
	Runs() ([]Run, error)

	// Rows calls fn for every row of the run, in document and sentence
	// order.
	Rows(runId string, fn func(Row) error) error
}
