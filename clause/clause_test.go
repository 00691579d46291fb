package clause

import (
	"bytes"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/revelaction/vclause/lexicon"
	sent "github.com/revelaction/vclause/sentence"
	"github.com/revelaction/vclause/tagset"
	"github.com/revelaction/vclause/verb"
)

func tok(id, head int, text, lemma, tag, dep string) sent.Token {
	return sent.Token{Id: id, Head: head, Text: text, Lemma: lemma, Tag: tag, Dep: dep, Index: id - 1}
}

func newAggregator(opts ...Option) *Aggregator {
	opts = append([]Option{WithLogger(zerolog.Nop())}, opts...)
	return NewAggregator(tagset.English(), opts...)
}

func passive() sent.Sentence {
	// Mary was thrown by him
	return sent.Sentence{Id: 3, DocId: 1, Tokens: []sent.Token{
		tok(1, 2, "Mary", "Mary", "NP", "SBJ"),
		tok(2, 0, "was", "be", "VBD", "ROOT"),
		tok(3, 2, "thrown", "throw", "VVN", "VC"),
		tok(4, 3, "by", "by", "IN", "LGS"),
		tok(5, 4, "him", "he", "PP", "PMOD"),
		tok(6, 2, ".", ".", "SENT", "P"),
	}}
}

func TestBuildDropsMidChain(t *testing.T) {
	rec, err := newAggregator().Build(passive())
	require.NoError(t, err)

	assert.Equal(t, 1, rec.Len())
	assert.Equal(t, 1, rec.DocId)
	assert.Equal(t, 3, rec.SentenceId)

	_, ok := rec.Verb(3)
	assert.True(t, ok)

	require.Len(t, rec.Drops, 1)
	assert.Equal(t, 2, rec.Drops[0].Token.Id)
	assert.Equal(t, "chain", verb.Kind(rec.Drops[0].Err))
}

func TestBuildDropsInvalidArgument(t *testing.T) {
	// he said she walked by him
	s := sent.Sentence{Tokens: []sent.Token{
		tok(1, 2, "he", "he", "PP", "SBJ"),
		tok(2, 0, "said", "say", "VVD", "ROOT"),
		tok(3, 4, "she", "she", "PP", "SBJ"),
		tok(4, 2, "walked", "walk", "VVD", "OBJ"),
		tok(5, 4, "by", "by", "IN", "ADV"),
		tok(6, 5, "him", "he", "PP", "PMOD"),
	}}

	rec, err := newAggregator().Build(s)
	require.NoError(t, err)
	assert.Equal(t, 1, rec.Len())

	said, ok := rec.Verb(2)
	require.True(t, ok)
	require.NotNil(t, said.EmbeddedIndex)
	assert.Equal(t, 4, *said.EmbeddedIndex)

	require.Len(t, rec.Drops, 1)
	assert.Equal(t, 4, rec.Drops[0].Token.Id)
	var argErr verb.ArgumentError
	assert.True(t, errors.As(rec.Drops[0].Err, &argErr))
}

func twoRoots() sent.Sentence {
	// he ran she smiled
	return sent.Sentence{Tokens: []sent.Token{
		tok(1, 2, "he", "he", "PP", "SBJ"),
		tok(2, 0, "ran", "run", "VVD", "ROOT"),
		tok(3, 4, "she", "she", "PP", "SBJ"),
		tok(4, 0, "smiled", "smile", "VVD", "ROOT"),
	}}
}

func TestBuildMultipleMatrix(t *testing.T) {
	_, err := newAggregator().Build(twoRoots())

	var multipleErr MultipleMatrixError
	require.True(t, errors.As(err, &multipleErr))
	assert.Equal(t, []int{2, 4}, multipleErr.Indexes)
	assert.Equal(t, "multiple-matrix", Kind(err))
}

func TestBuildWithoutValidation(t *testing.T) {
	rec, err := newAggregator(WithValidation(false)).Build(twoRoots())
	require.NoError(t, err)
	assert.Equal(t, 2, rec.Len())

	// the by argument survives when not validated
	rec, err = newAggregator(WithValidation(false)).Build(sent.Sentence{Tokens: []sent.Token{
		tok(1, 2, "he", "he", "PP", "SBJ"),
		tok(2, 0, "ran", "run", "VVD", "ROOT"),
		tok(3, 2, "by", "by", "IN", "ADV"),
	}})
	require.NoError(t, err)
	assert.Empty(t, rec.Drops)
}

func TestBuildNoInformation(t *testing.T) {
	_, err := newAggregator().Build(sent.Sentence{Tokens: []sent.Token{
		tok(1, 0, "yes", "yes", "UH", "ROOT"),
	}})

	var noInfoErr NoInformationError
	require.True(t, errors.As(err, &noInfoErr))
	assert.Empty(t, noInfoErr.Drops)

	// only verb fails
	_, err = newAggregator().Build(sent.Sentence{Tokens: []sent.Token{
		tok(1, 0, "runs", "run", "VVZ", "ROOT"),
	}})
	require.True(t, errors.As(err, &noInfoErr))
	require.Len(t, noInfoErr.Drops, 1)
	assert.Equal(t, "matrix", verb.Kind(noInfoErr.Drops[0].Err))
}

func TestBuildLogsDrops(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)

	_, err := NewAggregator(tagset.English(), WithLogger(logger)).Build(passive())
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "verb dropped")
	assert.Contains(t, buf.String(), `"lemma":"be"`)
}

func TestMatrix(t *testing.T) {
	rec, err := newAggregator().Build(passive())
	require.NoError(t, err)

	m, err := rec.Matrix(true)
	require.NoError(t, err)
	assert.Equal(t, 3, m.Index)

	// to go
	rec, err = newAggregator().Build(sent.Sentence{Tokens: []sent.Token{
		tok(1, 2, "to", "to", "TO", "VMOD"),
		tok(2, 0, "go", "go", "VV", "OBJ"),
	}})
	require.NoError(t, err)

	_, err = rec.Matrix(true)
	var noMatrixErr NoMatrixError
	assert.True(t, errors.As(err, &noMatrixErr))

	m, err = rec.Matrix(false)
	assert.NoError(t, err)
	assert.Nil(t, m)
}

func TestByHighestIndex(t *testing.T) {
	rec, err := newAggregator().Build(passive())
	require.NoError(t, err)

	vr, err := rec.ByHighestIndex(2)
	require.NoError(t, err)
	assert.Equal(t, "throw", vr.Lemma)

	_, err = rec.ByHighestIndex(3)
	var notFoundErr NotFoundError
	require.True(t, errors.As(err, &notFoundErr))
	assert.Equal(t, 3, notFoundErr.Index)
}

func TestProject(t *testing.T) {
	rec, err := newAggregator().Build(passive())
	require.NoError(t, err)

	headers := []string{"lemma", "tense", "be", "modal", "subject", "prep1", "prep1object", "matrix"}
	rows, err := rec.Project(headers, nil)
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"throw", "pastpart", "past", None, "mary", "by", "he", "true"},
	}, rows)

	again, err := rec.Project(headers, nil)
	require.NoError(t, err)
	assert.Equal(t, rows, again)
}

func TestProjectFilter(t *testing.T) {
	rec, err := newAggregator().Build(passive())
	require.NoError(t, err)

	headers := []string{"lemma", "tense", "subject", "prep1object"}
	dict := lexicon.NewDictionary("throw", "mary")

	_, err = rec.Project(headers, dict)
	var lexErr lexicon.LexicalError
	require.True(t, errors.As(err, &lexErr))
	assert.Equal(t, lexicon.MsgMisspelled, lexErr.Msg)
	assert.Equal(t, "he", lexErr.Word)

	// non lexical values are never checked
	dict.Add("he")
	rows, err := rec.Project(headers, dict)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"throw", "pastpart", "mary", "he"}}, rows)

	rows, err = rec.Project(headers, lexicon.Nop{})
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestProjectOrder(t *testing.T) {
	rec, err := newAggregator(WithValidation(false)).Build(twoRoots())
	require.NoError(t, err)

	rows, err := rec.Project([]string{"index", "lemma"}, nil)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"2", "run"}, {"4", "smile"}}, rows)
}
