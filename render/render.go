package render

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/revelaction/vclause/clause"
	sent "github.com/revelaction/vclause/sentence"
)

const (
	partialOffset = 6
	DefaultFormat = "all"
)

var (
	Red       = "\033[1;31m"
	Green     = "\033[1;32m"
	Yellow    = "\033[0;33m"
	Gray      = "\033[0;37m"
	Off       = "\033[0m"
	Yellow256 = "\033[1;38;5;130m"
	Grey256   = "\033[1;38;5;145m"
	Green256  = "\033[1;38;5;70m"
)

func SupportedFormats() []string {
	return []string{"all", "part", "verbs"}
}

type Renderer struct {
	Out io.Writer

	HasColor bool

	HasPrefix bool

	// Format determines the format of the sentence
	//
	// all: print all sentence
	// part: print the surrounding of the verbs in the sentence, cut the rest.
	// verbs: print only the lemma and tense of the verbs
	Format string

	DocNames map[int]string
}

func NewRenderer(w io.Writer) *Renderer {
	return &Renderer{Out: w, Format: DefaultFormat, DocNames: map[int]string{}}
}

func (r *Renderer) AddDocName(docId int, name string) {
	r.DocNames[docId] = name
}

// Sentence prints the text of the sentence.
func (r *Renderer) Sentence(s []sent.Token, prefix string) {
	fmt.Fprintf(r.Out, "%s%s\n", prefix, r.sentence(s, nil, nil))
}

// Record prints the sentence with the verbs of rec highlighted and the
// dropped verbs marked.
func (r *Renderer) Record(s sent.Sentence, rec *clause.Record, drops []clause.Drop) {
	var verbs []sent.Token
	if rec != nil {
		for _, vr := range rec.Verbs() {
			if t, ok := s.Token(vr.Index); ok {
				verbs = append(verbs, t)
			}
		}
	}

	var dropped []sent.Token
	for _, d := range drops {
		dropped = append(dropped, d.Token)
	}

	var text string
	switch r.Format {
	case "part":
		text = r.syntagma(s.Tokens, verbs, dropped)
	case "verbs":
		text = verbsString(rec)
	default:
		text = r.sentence(s.Tokens, verbs, dropped)
	}

	fmt.Fprintf(r.Out, "%s%s\n", r.prefix(s), text)
}

// Tokens prints one line per token with its dependency fields.
func (r *Renderer) Tokens(s []sent.Token) {
	for _, token := range s {
		fmt.Fprintf(r.Out, "%20q %15q %8s %6d %6d %8s\n", token.Text, token.Lemma, token.Tag, token.Id, token.Head, token.Dep)
	}
}

// Verbs prints the headers of each verb record, one verb per block.
func (r *Renderer) Verbs(rec *clause.Record, headers []string) {
	for _, vr := range rec.Verbs() {
		title := fmt.Sprintf("%d %s", vr.Index, vr.Word)
		if r.HasColor {
			title = Green256 + title + Off
		}
		fmt.Fprintf(r.Out, "🔑 %s\n", title)

		for _, h := range headers {
			v, ok := vr.Value(h)
			if !ok {
				v = clause.None
			}
			fmt.Fprintf(r.Out, "    %-16s %s\n", h, v)
		}
	}
}

// Drops prints the dropped verbs and why.
func (r *Renderer) Drops(drops []clause.Drop) {
	for _, d := range drops {
		reason := d.Err.Error()
		if r.HasColor {
			reason = Red + reason + Off
		}
		fmt.Fprintf(r.Out, "✗  %d %s: %s\n", d.Token.Id, d.Token.Text, reason)
	}
}

func (r *Renderer) prefix(s sent.Sentence) string {
	if !r.HasPrefix {
		return ""
	}

	return fmt.Sprintf("[%s %2d %5d] ✍  ", r.title(s.DocId), s.DocId, s.Id)
}

func (r *Renderer) title(docId int) string {
	title := r.DocNames[docId]
	var part string
	if len(title) <= 20 {
		part = fmt.Sprintf("%-20s", title)
	} else {
		part = title[:20]
	}

	if !r.HasColor {
		return part
	}

	return Grey256 + part + Off
}

func (r *Renderer) sentence(sentence, verbs, dropped []sent.Token) string {
	if !hasOffsets(sentence) {
		words := make([]string, len(sentence))
		for i, token := range sentence {
			words[i] = colorToken(token, verbs, dropped, r.HasColor)
		}
		return strings.Join(words, " ")
	}

	var str strings.Builder
	var lastIdx, lastLen int
	for i, token := range sentence {
		l := len([]rune(token.Text))
		if i == 0 {
			str.WriteString(colorToken(token, verbs, dropped, r.HasColor))
			lastIdx = token.Idx
			lastLen = l
			continue
		}

		// parts of a multi token word share the idx, their text is
		// rendered once
		diff := token.Idx - lastIdx

		if diff > 0 {
			str.WriteString(strings.Repeat(" ", max(diff-lastLen, 0)))
			str.WriteString(colorToken(token, verbs, dropped, r.HasColor))
		}

		lastIdx = token.Idx
		lastLen = l
	}

	return strings.ReplaceAll(str.String(), "\n", " ")
}

// hasOffsets reports whether the tokens carry character offsets. Corpora
// without them have all idx fields set to zero.
func hasOffsets(sentence []sent.Token) bool {
	for _, t := range sentence {
		if t.Idx != 0 {
			return true
		}
	}

	return len(sentence) < 2
}

func (r *Renderer) syntagma(sentence, verbs, dropped []sent.Token) string {
	// if no verbs, we print the whole sentence
	if len(verbs) == 0 {
		return r.sentence(sentence, verbs, dropped)
	}

	first, last := verbs[0].Index, verbs[0].Index
	for _, v := range verbs {
		first = min(first, v.Index)
		last = max(last, v.Index)
	}

	lastTokenIndex := len(sentence) - 1
	from, to := 0, lastTokenIndex

	if first > partialOffset {
		from = first - partialOffset
	}

	if lastTokenIndex-last > partialOffset {
		to = last + partialOffset
	}

	return r.sentence(sentence[from:to+1], verbs, dropped)
}

// verbsString renders the lemma and tense of each verb (eat/present).
func verbsString(rec *clause.Record) string {
	if rec == nil {
		return ""
	}

	var sl []string
	for _, vr := range rec.Verbs() {
		s := vr.Lemma + "/" + string(vr.Tense)
		if vr.Matrix {
			s += "*"
		}
		sl = append(sl, s)
	}

	return strings.Join(sl, " ")
}

func colorToken(token sent.Token, verbs, dropped []sent.Token, hasColor bool) string {
	if !hasColor {
		return token.Text
	}

	for _, v := range verbs {
		if v.Id == token.Id {
			return Green256 + token.Text + Off
		}
	}

	for _, d := range dropped {
		if d.Id == token.Id {
			return Red + token.Text + Off
		}
	}

	return token.Text
}

// NextFormat sets the Renderer Format option to a different one, following
// the SupportedFormats() order.
func (r *Renderer) NextFormat() {
	supported := SupportedFormats()
	for i, format := range supported {
		if format == r.Format {
			r.Format = supported[(i+1)%len(supported)]
			return
		}
	}

	r.Format = supported[0]
}

func (r *Renderer) NextPrefix() {
	// toggle
	r.HasPrefix = !r.HasPrefix
}

// Counts prints a by-kind count sorted by frequency.
func (r *Renderer) Counts(title string, counts map[string]int) {
	kinds := make([]string, 0, len(counts))
	for k := range counts {
		kinds = append(kinds, k)
	}

	sort.SliceStable(kinds, func(i, j int) bool {
		if counts[kinds[i]] != counts[kinds[j]] {
			return counts[kinds[i]] > counts[kinds[j]]
		}
		return kinds[i] < kinds[j]
	})

	fmt.Fprintf(r.Out, "%s\n", title)
	for _, k := range kinds {
		fmt.Fprintf(r.Out, "    %-20s %d\n", k, counts[k])
	}
}
