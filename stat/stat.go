package stat

import (
	"errors"
	"sort"

	"github.com/revelaction/vclause/clause"
	"github.com/revelaction/vclause/extract"
	"github.com/revelaction/vclause/lexicon"
	"github.com/revelaction/vclause/verb"
)

type Handler struct {
	stats Stats
}

type Stats struct {
	NumDocs      int `json:"docs"`
	NumSentences int `json:"sentences"`
	NumBuilt     int `json:"built"`
	NumFailed    int `json:"failed"`
	NumMatrix    int `json:"matrix"`

	// verbs with a record, and verbs dropped from their sentence
	NumVerbs   int `json:"verbs"`
	NumDropped int `json:"dropped"`
	NumRows    int `json:"rows"`

	FailedByKind  map[string]int `json:"failed_by_kind"`
	DroppedByKind map[string]int `json:"dropped_by_kind"`

	VerbsPerSentenceMean float64 `json:"verbs_per_sentence"`
}

func (h *Handler) Get() Stats {
	return h.stats
}

func NewHandler() *Handler {
	stats := Stats{
		FailedByKind:  map[string]int{},
		DroppedByKind: map[string]int{},
	}
	return &Handler{
		stats: stats,
	}
}

func (h *Handler) Aggregate(res extract.DocResult) {
	h.stats.NumDocs++
	for _, s := range res.Sentences {
		h.stats.NumSentences++
		h.stats.NumRows += len(s.Rows)

		if s.Err != nil {
			h.stats.NumFailed++
			h.stats.FailedByKind[Kind(s.Err)]++

			// drops of a sentence without any record still count
			var noInfoErr clause.NoInformationError
			if errors.As(s.Err, &noInfoErr) {
				h.addDrops(noInfoErr.Drops)
			}
			continue
		}

		h.stats.NumBuilt++
		h.stats.NumVerbs += s.Record.Len()
		h.addDrops(s.Record.Drops)

		if m, _ := s.Record.Matrix(false); m != nil {
			h.stats.NumMatrix++
		}
	}

	if h.stats.NumBuilt > 0 {
		h.stats.VerbsPerSentenceMean = float64(h.stats.NumVerbs) / float64(h.stats.NumBuilt)
	}
}

func (h *Handler) addDrops(drops []clause.Drop) {
	for _, d := range drops {
		h.stats.NumDropped++
		h.stats.DroppedByKind[verb.Kind(d.Err)]++
	}
}

// Kind names the reason a sentence failed.
func Kind(err error) string {
	var lexErr lexicon.LexicalError
	if errors.As(err, &lexErr) {
		return "lexical"
	}

	return clause.Kind(err)
}

// Kinds returns the keys of a by-kind count, sorted.
func Kinds(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
