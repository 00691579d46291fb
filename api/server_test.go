package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/revelaction/vclause/clause"
	"github.com/revelaction/vclause/cnf"
	"github.com/revelaction/vclause/lexicon"
	"github.com/revelaction/vclause/render"
	sent "github.com/revelaction/vclause/sentence"
	"github.com/revelaction/vclause/tagset"
)

type memReader map[int]sent.Doc

func (m memReader) List() ([]sent.Doc, error) {
	var docs []sent.Doc
	for _, d := range m {
		docs = append(docs, sent.Doc{Id: d.Id, Title: d.Title})
	}
	return docs, nil
}

func (m memReader) Read(id int) (sent.Doc, error) {
	d, ok := m[id]
	if !ok {
		return sent.Doc{}, fmt.Errorf("doc %d not found", id)
	}
	return d, nil
}

var passive = []sent.Token{
	{Id: 1, Head: 2, Text: "ball", Lemma: "ball", Tag: "NN", Dep: "SBJ"},
	{Id: 2, Text: "was", Lemma: "be", Tag: "VBD", Dep: "ROOT", Index: 1},
	{Id: 3, Head: 2, Text: "thrown", Lemma: "throw", Tag: "VVN", Dep: "VC", Index: 2},
}

func newTestServer(docs memReader, filter lexicon.Filter) http.Handler {
	gin.SetMode(gin.TestMode)

	conf := &cnf.Conf{CorsAllowedOrigins: []string{"http://localhost:3000"}}
	actions := &Actions{
		Aggregator: clause.NewAggregator(tagset.English(), clause.WithLogger(zerolog.Nop())),
		Filter:     filter,
		Headers:    []string{"lemma", "tense", "be"},
		Version:    "v0.1.0",
	}
	if docs != nil {
		actions.Docs = docs
	}

	return NewServer(conf, actions).Handler()
}

func do(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestRoot(t *testing.T) {
	w := do(t, newTestServer(nil, nil), http.MethodGet, "/", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var got map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "vclause", got["name"])
	assert.Equal(t, "v0.1.0", got["version"])
	assert.Equal(t, "english", got["tagset"])
	assert.Equal(t, false, got["corpus"])
}

func TestTagset(t *testing.T) {
	w := do(t, newTestServer(nil, nil), http.MethodGet, "/tagset", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var got tagset.Description
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "english", got.Name)
	assert.Equal(t, "VC", got.Relations.VerbChain)
}

func TestExtract(t *testing.T) {
	w := do(t, newTestServer(nil, nil), http.MethodPost, "/extract", ExtractRequest{Tokens: passive})
	require.Equal(t, http.StatusOK, w.Code)

	var got render.SentenceJSON
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got.Verbs, 1)
	assert.Equal(t, "throw", got.Verbs[0].Lemma)
	assert.Equal(t, [][]string{{"throw", "pastpart", "past"}}, got.Rows)
	require.Len(t, got.Dropped, 1)
	assert.Equal(t, 2, got.Dropped[0].Index)
}

func TestExtractHeadersAndSelect(t *testing.T) {
	h := newTestServer(nil, nil)

	w := do(t, h, http.MethodPost, "/extract", ExtractRequest{Tokens: passive, Headers: []string{"lemma"}, Select: []string{"tense=past"}})
	require.Equal(t, http.StatusOK, w.Code)
	var got render.SentenceJSON
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Len(t, got.Verbs, 1)
	assert.Empty(t, got.Rows)

	w = do(t, h, http.MethodPost, "/extract", ExtractRequest{Tokens: passive, Headers: []string{"colour"}})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, h, http.MethodPost, "/extract", ExtractRequest{Tokens: passive, Select: []string{"=x"}})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestExtractBadRequest(t *testing.T) {
	h := newTestServer(nil, nil)

	req := httptest.NewRequest(http.MethodPost, "/extract", bytes.NewBufferString("{"))
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, h, http.MethodPost, "/extract", ExtractRequest{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestExtractUnprocessable(t *testing.T) {
	h := newTestServer(nil, nil)

	// a bare verb has no valid matrix clause
	w := do(t, h, http.MethodPost, "/extract", ExtractRequest{Tokens: []sent.Token{{Id: 1, Lemma: "run", Tag: "VVZ", Dep: "ROOT"}}})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "no valid verb in sentence")

	// the lexicon rejects the lemma
	h = newTestServer(nil, lexicon.NewDictionary("ball"))
	w = do(t, h, http.MethodPost, "/extract", ExtractRequest{Tokens: passive})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestSentence(t *testing.T) {
	docs := memReader{1: {Id: 1, Title: "news", Tokens: [][]sent.Token{passive}}}
	h := newTestServer(docs, nil)

	w := do(t, h, http.MethodGet, "/doc/1/sentence/0?headers=lemma", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var got render.SentenceJSON
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, 1, got.DocId)
	assert.Equal(t, [][]string{{"throw"}}, got.Rows)

	w = do(t, h, http.MethodGet, "/doc/1/sentence/3", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(t, h, http.MethodGet, "/doc/2/sentence/0", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(t, h, http.MethodGet, "/doc/x/sentence/0", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSentenceWithoutCorpus(t *testing.T) {
	w := do(t, newTestServer(nil, nil), http.MethodGet, "/doc/1/sentence/0", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCORS(t *testing.T) {
	h := newTestServer(nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "http://evil.example")
	w = httptest.NewRecorder()
	h.ServeHTTP(w, req)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}
