package filesystem

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	sent "github.com/revelaction/vclause/sentence"
	"github.com/revelaction/vclause/storage"
)

type DocStore struct {
	docDir string

	// In-memory cache, docs are loaded lazily by Read
	mu   sync.Mutex
	docs []sent.Doc
}

var _ storage.DocRepository = (*DocStore)(nil)
var _ storage.Preloader = (*DocStore)(nil)

// NewDocStore creates a filesystem document handler. Only the metadata of
// the .json files in docDir is read.
func NewDocStore(docDir string) (*DocStore, error) {
	files, err := os.ReadDir(docDir)
	if err != nil {
		return nil, err
	}

	docs := make([]sent.Doc, 0, len(files))

	idx := 0
	for _, file := range files {
		if filepath.Ext(file.Name()) == ".json" {
			docs = append(docs, sent.Doc{
				Id:    idx,
				Title: file.Name(),
			})
			idx++
		}
	}

	return &DocStore{
		docDir: docDir,
		docs:   docs,
	}, nil
}

// LoadAll preloads all docs into memory.
func (h *DocStore) LoadAll(cb func(current, total int, name string)) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	total := len(h.docs)
	for i := range h.docs {
		doc := &h.docs[i] // pointer to modify in place

		if cb != nil {
			cb(i+1, total, doc.Title)
		}

		if err := h.load(doc); err != nil {
			return err
		}
	}

	return nil
}

func (h *DocStore) Preload(cb func(current, total int, name string)) error {
	return h.LoadAll(cb)
}

// load must be called with h.mu held.
func (h *DocStore) load(doc *sent.Doc) error {
	if doc.Tokens != nil {
		return nil
	}

	fullDoc, err := ReadDoc(filepath.Join(h.docDir, doc.Title))
	if err != nil {
		return err
	}

	// Title and Id are already set
	doc.Tokens = fullDoc.Tokens
	doc.Labels = fullDoc.Labels
	return nil
}

// List returns the metadata of the docs.
func (h *DocStore) List() ([]sent.Doc, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	docs := make([]sent.Doc, len(h.docs))
	for i, d := range h.docs {
		docs[i] = sent.Doc{Id: d.Id, Title: d.Title, Labels: d.Labels}
	}
	return docs, nil
}

// Read returns the doc, loading it from disk if it was not preloaded.
func (h *DocStore) Read(id int) (sent.Doc, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if id < 0 || id >= len(h.docs) {
		return sent.Doc{}, fmt.Errorf("doc id out of range: %d", id)
	}

	if err := h.load(&h.docs[id]); err != nil {
		return sent.Doc{}, err
	}

	return h.docs[id], nil
}

// Write stores the doc as a JSON file named after its title.
func (h *DocStore) Write(doc sent.Doc) error {
	name := filepath.Base(doc.Title)
	if !strings.HasSuffix(name, ".json") {
		name += ".json"
	}

	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("JSON encoding error: %w", err)
	}

	if err := os.WriteFile(filepath.Join(h.docDir, name), data, 0644); err != nil {
		return fmt.Errorf("IO error: %w", err)
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	doc.Id = len(h.docs)
	doc.Title = name
	h.docs = append(h.docs, doc)
	return nil
}

// ReadDoc reads a Doc JSON from the given path and unmarshals it.
func ReadDoc(path string) (sent.Doc, error) {
	f, err := os.ReadFile(path)
	if err != nil {
		return sent.Doc{}, fmt.Errorf("IO error: %w", err)
	}

	var doc sent.Doc
	err = json.Unmarshal(f, &doc)
	if err != nil {
		return sent.Doc{}, fmt.Errorf("JSON decoding error: %w", err)
	}

	return doc, nil
}
