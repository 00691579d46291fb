package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/czcorpus/cnc-gokit/uniresp"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/revelaction/vclause/clause"
	"github.com/revelaction/vclause/extract"
	"github.com/revelaction/vclause/lexicon"
	"github.com/revelaction/vclause/rdb"
	"github.com/revelaction/vclause/render"
	"github.com/revelaction/vclause/selection"
	sent "github.com/revelaction/vclause/sentence"
	"github.com/revelaction/vclause/storage"
	"github.com/revelaction/vclause/verb"
)

// ExtractRequest is the body of POST /extract
type ExtractRequest struct {
	Tokens  []sent.Token `json:"tokens"`
	Headers []string     `json:"headers"`
	Select  []string     `json:"select"`
}

type Actions struct {
	Aggregator *clause.Aggregator
	Filter     lexicon.Filter

	// Headers projected when the request names none
	Headers []string

	// Docs is nil when the server has no corpus
	Docs storage.DocReader

	Cache   *rdb.Cache
	Version string
}

func (a *Actions) Root(ctx *gin.Context) {
	uniresp.WriteJSONResponse(ctx.Writer, map[string]any{
		"name":    "vclause",
		"version": a.Version,
		"tagset":  a.Aggregator.Tagset().Name,
		"corpus":  a.Docs != nil,
	})
}

func (a *Actions) Tagset(ctx *gin.Context) {
	uniresp.WriteJSONResponse(ctx.Writer, a.Aggregator.Tagset().Describe())
}

func (a *Actions) Extract(ctx *gin.Context) {
	body, err := ctx.GetRawData()
	if err != nil {
		uniresp.RespondWithErrorJSON(ctx, err, http.StatusBadRequest)
		return
	}

	key := rdb.Key(a.Aggregator.Tagset().Name, body)
	cached, ok, err := a.Cache.Get(ctx.Request.Context(), key)
	if err != nil {
		log.Warn().Err(err).Msg("cache unavailable")
	}
	if ok {
		log.Debug().Str("key", key).Msg("extraction served from cache")
		uniresp.WriteRawJSONResponse(ctx.Writer, cached)
		return
	}

	var req ExtractRequest
	if err := json.Unmarshal(body, &req); err != nil {
		uniresp.RespondWithErrorJSON(ctx, fmt.Errorf("invalid request body: %w", err), http.StatusBadRequest)
		return
	}
	if len(req.Tokens) == 0 {
		uniresp.RespondWithErrorJSON(ctx, errors.New("no tokens in request"), http.StatusBadRequest)
		return
	}

	e, err := a.extractor(req.Headers, req.Select)
	if err != nil {
		uniresp.RespondWithErrorJSON(ctx, err, http.StatusBadRequest)
		return
	}

	data, status, err := a.sentence(e, sent.Sentence{Tokens: req.Tokens})
	if err != nil {
		uniresp.RespondWithErrorJSON(ctx, err, status)
		return
	}

	if err := a.Cache.Set(ctx.Request.Context(), key, data); err != nil {
		log.Warn().Err(err).Msg("failed to cache extraction")
	}

	uniresp.WriteRawJSONResponse(ctx.Writer, data)
}

// Sentence extracts a sentence of the corpus. The headers query parameter is
// a comma separated list.
func (a *Actions) Sentence(ctx *gin.Context) {
	if a.Docs == nil {
		uniresp.RespondWithErrorJSON(ctx, errors.New("no corpus configured"), http.StatusNotFound)
		return
	}

	docId, err := strconv.Atoi(ctx.Param("docId"))
	if err != nil {
		uniresp.RespondWithErrorJSON(ctx, fmt.Errorf("invalid doc id: %s", ctx.Param("docId")), http.StatusBadRequest)
		return
	}
	sentId, err := strconv.Atoi(ctx.Param("sentId"))
	if err != nil {
		uniresp.RespondWithErrorJSON(ctx, fmt.Errorf("invalid sentence id: %s", ctx.Param("sentId")), http.StatusBadRequest)
		return
	}

	doc, err := a.Docs.Read(docId)
	if err != nil {
		uniresp.RespondWithErrorJSON(ctx, err, http.StatusNotFound)
		return
	}
	if sentId < 0 || sentId >= len(doc.Tokens) {
		uniresp.RespondWithErrorJSON(ctx, fmt.Errorf("sentence %d not found in doc %d", sentId, docId), http.StatusNotFound)
		return
	}

	var headers []string
	if h := ctx.Query("headers"); h != "" {
		headers = strings.Split(h, ",")
	}

	e, err := a.extractor(headers, ctx.QueryArray("select"))
	if err != nil {
		uniresp.RespondWithErrorJSON(ctx, err, http.StatusBadRequest)
		return
	}

	data, status, err := a.sentence(e, doc.Sentence(sentId))
	if err != nil {
		uniresp.RespondWithErrorJSON(ctx, err, status)
		return
	}

	uniresp.WriteRawJSONResponse(ctx.Writer, data)
}

func (a *Actions) extractor(headers, sel []string) (*extract.Extractor, error) {
	if len(headers) == 0 {
		headers = a.Headers
	}
	if len(headers) == 0 {
		headers = verb.DefaultHeaders
	}

	for _, h := range headers {
		if !verb.IsHeader(h) {
			return nil, fmt.Errorf("unknown header: %s", h)
		}
	}

	expr, err := selection.Parse(sel)
	if err != nil {
		return nil, err
	}

	return &extract.Extractor{
		Aggregator: a.Aggregator,
		Headers:    headers,
		Filter:     a.Filter,
		Select:     expr,
	}, nil
}

// sentence returns the serialized result of s, or the status and error of a
// failed sentence.
func (a *Actions) sentence(e *extract.Extractor, s sent.Sentence) ([]byte, int, error) {
	res := e.Sentence(s)
	if res.Err != nil {
		return nil, http.StatusUnprocessableEntity, res.Err
	}

	data, err := json.Marshal(render.NewSentenceJSON(s.DocId, s.Id, res.Record, res.Rows, nil))
	if err != nil {
		return nil, http.StatusInternalServerError, err
	}

	return data, http.StatusOK, nil
}
