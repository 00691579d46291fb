package query

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/c-bata/go-prompt"

	"github.com/revelaction/vclause/clause"
	"github.com/revelaction/vclause/extract"
	"github.com/revelaction/vclause/render"
	"github.com/revelaction/vclause/selection"
	"github.com/revelaction/vclause/storage"
	"github.com/revelaction/vclause/verb"
)

const (
	cmdQuit    = "quit"
	cmdHeaders = "headers"
	cmdDoc     = "doc"
	cmdSelect  = "select"
	cmdShow    = "show"
)

type command struct {
	name    string
	docId   *int
	sentId  *int
	headers []string
	expr    selection.Expr
}

type Handler struct {
	DocRepo   storage.DocReader
	Extractor *extract.Extractor
	Renderer  *render.Renderer

	// current doc, nil before the first doc command
	docId *int
}

func NewHandler(dr storage.DocReader, e *extract.Extractor, r *render.Renderer) *Handler {
	return &Handler{
		DocRepo:   dr,
		Extractor: e,
		Renderer:  r,
	}
}

func (h *Handler) Run() error {
	fmt.Fprintln(h.Renderer.Out, "🔑 Ctrl+X: Toggle prefix, Ctrl+F: next Format, 🔧 quit")

	docList, err := h.DocRepo.List()
	if err != nil {
		return err
	}
	for _, d := range docList {
		h.Renderer.AddDocName(d.Id, d.Title)
	}

	// initialize prompt history
	history := []string{}

	for {
		in := prompt.Input("      🔖 ", h.completer,
			prompt.OptionTitle("vclause inspect"),
			prompt.OptionPrefixTextColor(prompt.Yellow),
			prompt.OptionPreviewSuggestionTextColor(prompt.Blue),
			prompt.OptionSelectedSuggestionBGColor(prompt.LightGray),
			prompt.OptionMaxSuggestion(12),
			prompt.OptionSuggestionBGColor(prompt.DarkGray),
			prompt.OptionHistory(history),
			prompt.OptionAddKeyBind(prompt.KeyBind{
				Key: prompt.ControlF,
				Fn: func(buf *prompt.Buffer) {
					h.Renderer.NextFormat()
					fmt.Fprintln(h.Renderer.Out, "Format set to: "+h.Renderer.Format)
				}}),
			prompt.OptionAddKeyBind(prompt.KeyBind{
				Key: prompt.ControlX,
				Fn: func(buf *prompt.Buffer) {
					h.Renderer.NextPrefix()
					fmt.Fprintf(h.Renderer.Out, "Prefix set to %t\n", h.Renderer.HasPrefix)
				}}),
		)

		cmd, err := parse(in)
		if err != nil {
			fmt.Fprintf(h.Renderer.Out, "✗  %v\n", err)
			continue
		}

		if cmd.name == cmdQuit {
			return nil
		}

		history = append(history, in)
		if err := h.exec(context.Background(), cmd); err != nil {
			fmt.Fprintf(h.Renderer.Out, "✗  %v\n", err)
		}
	}
}

func (h *Handler) exec(ctx context.Context, cmd command) error {
	switch cmd.name {
	case cmdHeaders:
		if len(cmd.headers) == 0 {
			fmt.Fprintln(h.Renderer.Out, strings.Join(h.Extractor.Headers, ","))
			return nil
		}
		h.Extractor.Headers = cmd.headers
		return nil

	case cmdDoc:
		h.docId = cmd.docId
		return h.doc(ctx, *cmd.docId, nil)

	case cmdSelect:
		if h.docId == nil {
			return errors.New("no doc given, use doc <id> first")
		}
		return h.doc(ctx, *h.docId, cmd.expr)

	case cmdShow:
		docId := h.docId
		if cmd.docId != nil {
			docId = cmd.docId
		}
		if docId == nil {
			return errors.New("no doc given, use <docId> <sentId>")
		}
		return h.sentence(*docId, *cmd.sentId)
	}

	return fmt.Errorf("unknown command: %s", cmd.name)
}

// doc prints the sentences of a doc. With a selection only the sentences
// with selected rows are printed, followed by the rows.
func (h *Handler) doc(ctx context.Context, docId int, expr selection.Expr) error {
	doc, err := h.DocRepo.Read(docId)
	if err != nil {
		return err
	}

	e := *h.Extractor
	e.Select = expr
	res, err := e.Doc(ctx, doc)
	if err != nil {
		return err
	}

	for _, s := range res.Sentences {
		if expr != nil && len(s.Rows) == 0 {
			continue
		}

		var drops = dropsOf(s)
		h.Renderer.Record(doc.Sentence(s.Id), s.Record, drops)
		for _, row := range s.Rows {
			fmt.Fprintf(h.Renderer.Out, "    %s\n", strings.Join(row.Values, " "))
		}
	}

	return nil
}

func (h *Handler) sentence(docId, sentId int) error {
	doc, err := h.DocRepo.Read(docId)
	if err != nil {
		return err
	}

	if sentId < 0 || sentId >= len(doc.Tokens) {
		return fmt.Errorf("sentence index %d out of bounds (0-%d)", sentId, len(doc.Tokens)-1)
	}

	s := doc.Sentence(sentId)
	res := h.Extractor.Sentence(s)

	h.Renderer.Record(s, res.Record, dropsOf(res))
	h.Renderer.Tokens(s.Tokens)
	if res.Record != nil {
		h.Renderer.Verbs(res.Record, h.Extractor.Columns())
	}
	h.Renderer.Drops(dropsOf(res))

	if res.Err != nil {
		fmt.Fprintf(h.Renderer.Out, "✗  sentence discarded: %v\n", res.Err)
	}

	return nil
}

func (h *Handler) completer(in prompt.Document) []prompt.Suggest {
	s := []prompt.Suggest{}
	befCursor := in.TextBeforeCursor()

	if befCursor == "" {
		return s
	}

	tokens := strings.Split(befCursor, " ")
	if len(tokens) == 1 {
		for _, c := range []string{cmdHeaders, cmdDoc, cmdSelect, cmdQuit} {
			if strings.HasPrefix(c, tokens[0]) {
				s = append(s, prompt.Suggest{Text: c})
			}
		}
		return s
	}

	if tokens[0] != cmdSelect && tokens[0] != cmdHeaders {
		return s
	}

	word := strings.TrimPrefix(in.GetWordBeforeCursor(), "!")
	if idx := strings.LastIndex(word, ","); idx >= 0 {
		word = word[idx+1:]
	}

	for _, hd := range verb.DefaultHeaders {
		if strings.HasPrefix(hd, word) {
			s = append(s, prompt.Suggest{Text: hd, Description: "🔑 header"})
		}
	}

	return s
}

// parse converts the user input to a command:
//
//	quit
//	headers [h1,h2,...]
//	doc <docId>
//	select <selection items>
//	[docId] <sentId>
func parse(in string) (command, error) {
	tokens := strings.Fields(in)
	if len(tokens) == 0 {
		return command{}, errors.New("empty input")
	}

	switch tokens[0] {
	case cmdQuit:
		return command{name: cmdQuit}, nil

	case cmdHeaders:
		cmd := command{name: cmdHeaders}
		for _, arg := range tokens[1:] {
			for _, hd := range strings.Split(arg, ",") {
				if hd == "" {
					continue
				}
				if !verb.IsHeader(hd) {
					return command{}, fmt.Errorf("unknown header: %s", hd)
				}
				cmd.headers = append(cmd.headers, hd)
			}
		}
		return cmd, nil

	case cmdDoc:
		if len(tokens) != 2 {
			return command{}, errors.New("usage: doc <docId>")
		}
		id, err := strconv.Atoi(tokens[1])
		if err != nil {
			return command{}, fmt.Errorf("invalid doc id: %s", tokens[1])
		}
		return command{name: cmdDoc, docId: &id}, nil

	case cmdSelect:
		expr, err := selection.Parse(tokens[1:])
		if err != nil {
			return command{}, err
		}
		if len(expr) == 0 {
			return command{}, errors.New("usage: select <items>")
		}
		return command{name: cmdSelect, expr: expr}, nil
	}

	var ids []int
	for _, t := range tokens {
		id, err := strconv.Atoi(t)
		if err != nil {
			return command{}, fmt.Errorf("unknown command: %s", tokens[0])
		}
		ids = append(ids, id)
	}

	switch len(ids) {
	case 1:
		return command{name: cmdShow, sentId: &ids[0]}, nil
	case 2:
		return command{name: cmdShow, docId: &ids[0], sentId: &ids[1]}, nil
	}

	return command{}, errors.New("usage: [docId] <sentId>")
}

func dropsOf(s extract.SentenceResult) []clause.Drop {
	if s.Record != nil {
		return s.Record.Drops
	}

	var noInfoErr clause.NoInformationError
	if errors.As(s.Err, &noInfoErr) {
		return noInfoErr.Drops
	}

	return nil
}
