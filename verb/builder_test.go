package verb

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sent "github.com/revelaction/vclause/sentence"
	"github.com/revelaction/vclause/tagset"
)

func tok(id, head int, text, lemma, tag, dep string) sent.Token {
	return sent.Token{Id: id, Head: head, Text: text, Lemma: lemma, Tag: tag, Dep: dep, Index: id - 1}
}

func build(t *testing.T, s sent.Sentence, id int) (*Record, error) {
	t.Helper()
	tk, ok := s.Token(id)
	require.True(t, ok)
	return NewBuilder(s, tagset.English()).Build(tk)
}

func TestBuildPresentMatrix(t *testing.T) {
	// he eats
	s := sent.Sentence{Tokens: []sent.Token{
		tok(1, 2, "he", "he", "PP", "SBJ"),
		tok(2, 0, "eats", "eat", "VVZ", "ROOT"),
	}}

	r, err := build(t, s, 2)
	require.NoError(t, err)
	assert.Equal(t, tagset.Present, r.Tense)
	assert.True(t, r.Matrix)
	assert.False(t, r.To)
	require.NotNil(t, r.Subject)
	assert.Equal(t, "he", *r.Subject)
	assert.Equal(t, 2, r.HighestIndex)

	assert.NoError(t, NewValidator(tagset.English()).Validate(r))
}

func passive() sent.Sentence {
	// the ball was thrown by him
	return sent.Sentence{Tokens: []sent.Token{
		tok(1, 2, "the", "the", "DT", "NMOD"),
		tok(2, 3, "ball", "ball", "NN", "SBJ"),
		tok(3, 0, "was", "be", "VBD", "ROOT"),
		tok(4, 3, "thrown", "throw", "VVN", "VC"),
		tok(5, 4, "by", "by", "IN", "LGS"),
		tok(6, 5, "him", "he", "PP", "PMOD"),
	}}
}

func TestBuildPassive(t *testing.T) {
	r, err := build(t, passive(), 4)
	require.NoError(t, err)

	assert.Equal(t, tagset.PastPart, r.Tense)
	require.NotNil(t, r.Be)
	assert.Equal(t, tagset.Past, *r.Be)
	assert.True(t, r.Matrix)
	require.NotNil(t, r.Subject)
	assert.Equal(t, "ball", *r.Subject)
	assert.Equal(t, 3, r.HighestIndex)

	v, ok := r.Value("prep1")
	assert.True(t, ok)
	assert.Equal(t, "by", v)
	v, ok = r.Value("prep1object")
	assert.True(t, ok)
	assert.Equal(t, "he", v)

	assert.NoError(t, NewValidator(tagset.English()).Validate(r))
}

func TestBuildMidChain(t *testing.T) {
	_, err := build(t, passive(), 3)

	var chainErr ChainError
	assert.True(t, errors.As(err, &chainErr))
	assert.Equal(t, "chain", Kind(err))
}

func TestBuildFullChain(t *testing.T) {
	// he might have been running
	s := sent.Sentence{Tokens: []sent.Token{
		tok(1, 2, "he", "he", "PP", "SBJ"),
		tok(2, 0, "might", "might", "MD", "ROOT"),
		tok(3, 2, "have", "have", "VH", "VC"),
		tok(4, 3, "been", "be", "VBN", "VC"),
		tok(5, 4, "running", "run", "VVG", "VC"),
	}}

	r, err := build(t, s, 5)
	require.NoError(t, err)

	assert.Equal(t, tagset.Gerund, r.Tense)
	require.NotNil(t, r.Modal)
	assert.Equal(t, "might", *r.Modal)
	require.NotNil(t, r.Have)
	assert.Equal(t, tagset.Nil, *r.Have)
	require.NotNil(t, r.Be)
	assert.Equal(t, tagset.PastPart, *r.Be)
	assert.True(t, r.Matrix)
	assert.Equal(t, 2, r.HighestIndex)
	require.NotNil(t, r.Subject)
	assert.Equal(t, "he", *r.Subject)

	assert.NoError(t, NewValidator(tagset.English()).Validate(r))
}

func TestCascadeHave(t *testing.T) {
	// he had walked, with the participle mistagged as past
	s := sent.Sentence{Tokens: []sent.Token{
		tok(1, 2, "he", "he", "PP", "SBJ"),
		tok(2, 0, "had", "have", "VHD", "ROOT"),
		tok(3, 2, "walked", "walk", "VVD", "VC"),
	}}

	r, err := build(t, s, 3)
	require.NoError(t, err)
	assert.Equal(t, tagset.PastPart, r.Tense)
	require.NotNil(t, r.Have)
	assert.Equal(t, tagset.Past, *r.Have)
}

func TestCascadeBeUnderHave(t *testing.T) {
	// he has was seen, the be link mistagged as past
	s := sent.Sentence{Tokens: []sent.Token{
		tok(1, 2, "he", "he", "PP", "SBJ"),
		tok(2, 0, "has", "have", "VHZ", "ROOT"),
		tok(3, 2, "was", "be", "VBD", "VC"),
		tok(4, 3, "seen", "see", "VVN", "VC"),
	}}

	r, err := build(t, s, 4)
	require.NoError(t, err)
	require.NotNil(t, r.Be)
	assert.Equal(t, tagset.PastPart, *r.Be)
	require.NotNil(t, r.Have)
	assert.Equal(t, tagset.Present, *r.Have)
	assert.NoError(t, NewValidator(tagset.English()).Validate(r))
}

func TestDoSupport(t *testing.T) {
	// he did not go
	s := sent.Sentence{Tokens: []sent.Token{
		tok(1, 2, "he", "he", "PP", "SBJ"),
		tok(2, 0, "did", "do", "VVD", "ROOT"),
		tok(3, 2, "not", "not", "RB", "ADV"),
		tok(4, 2, "go", "go", "VV", "VC"),
	}}

	r, err := build(t, s, 4)
	require.NoError(t, err)
	assert.Equal(t, tagset.Past, r.Tense)
	assert.True(t, r.Matrix)
	assert.Nil(t, r.Have)
	assert.Nil(t, r.Be)
	assert.Nil(t, r.Modal)
}

func TestModalKeepsNil(t *testing.T) {
	// he can go
	s := sent.Sentence{Tokens: []sent.Token{
		tok(1, 2, "he", "he", "PP", "SBJ"),
		tok(2, 0, "can", "can", "MD", "ROOT"),
		tok(3, 2, "go", "go", "VV", "VC"),
	}}

	r, err := build(t, s, 3)
	require.NoError(t, err)
	assert.Equal(t, tagset.Nil, r.Tense)
	assert.NoError(t, NewValidator(tagset.English()).Validate(r))
}

func TestEmbeddedInfinitive(t *testing.T) {
	// he wants to go
	s := sent.Sentence{Tokens: []sent.Token{
		tok(1, 2, "he", "he", "PP", "SBJ"),
		tok(2, 0, "wants", "want", "VVZ", "ROOT"),
		tok(3, 4, "to", "to", "TO", "VMOD"),
		tok(4, 2, "go", "go", "VV", "OBJ"),
	}}

	r, err := build(t, s, 2)
	require.NoError(t, err)
	require.NotNil(t, r.EmbeddedIndex)
	assert.Equal(t, 4, *r.EmbeddedIndex)
	assert.Empty(t, r.Objects)

	r, err = build(t, s, 4)
	require.NoError(t, err)
	assert.True(t, r.To)
	assert.False(t, r.Matrix)
	assert.Equal(t, 4, r.HighestIndex)
	assert.NoError(t, NewValidator(tagset.English()).Validate(r))
}

func TestComplementizerThat(t *testing.T) {
	// I know that he left
	s := sent.Sentence{Tokens: []sent.Token{
		tok(1, 2, "I", "I", "PP", "SBJ"),
		tok(2, 0, "know", "know", "VVP", "ROOT"),
		tok(3, 5, "that", "that", "IN", "VMOD"),
		tok(4, 5, "he", "he", "PP", "SBJ"),
		tok(5, 2, "left", "leave", "VVD", "OBJ"),
	}}

	r, err := build(t, s, 5)
	require.NoError(t, err)
	require.NotNil(t, r.Complementizer)
	assert.Equal(t, "that", *r.Complementizer)
	// that never opens a preposition slot
	assert.Empty(t, r.Preps)
	assert.NoError(t, NewValidator(tagset.English()).Validate(r))
}

func TestComplementizerWh(t *testing.T) {
	// I know the reason why, I wonder whatever
	s := sent.Sentence{Tokens: []sent.Token{
		tok(1, 2, "I", "I", "PP", "SBJ"),
		tok(2, 0, "know", "know", "VVP", "ROOT"),
		tok(3, 4, "the", "the", "DT", "NMOD"),
		tok(4, 2, "reason", "reason", "NN", "OBJ"),
		tok(5, 4, "why", "why", "WRB", "NMOD"),
	}}

	r, err := build(t, s, 2)
	require.NoError(t, err)
	require.NotNil(t, r.Complementizer)
	assert.Equal(t, "why", *r.Complementizer)
	assert.Equal(t, []string{"reason"}, r.Objects)

	s.Tokens[4] = tok(5, 4, "whatever", "whatever", "WDT", "NMOD")
	r, err = build(t, s, 2)
	require.NoError(t, err)
	assert.Nil(t, r.Complementizer)
}

func TestCompoundPreposition(t *testing.T) {
	// he left because of the rain
	s := sent.Sentence{Tokens: []sent.Token{
		tok(1, 2, "he", "he", "PP", "SBJ"),
		tok(2, 0, "left", "leave", "VVD", "ROOT"),
		tok(3, 2, "because", "because", "IN", "ADV"),
		tok(4, 3, "of", "of", "IN", "PMOD"),
		tok(5, 6, "the", "the", "DT", "NMOD"),
		tok(6, 4, "rain", "rain", "NN", "PMOD"),
		tok(7, 2, "in", "in", "IN", "ADV"),
	}}

	r, err := build(t, s, 2)
	require.NoError(t, err)
	require.Len(t, r.Preps, 2)
	assert.Equal(t, "because_of", r.Preps[0].Label)
	require.NotNil(t, r.Preps[0].Object)
	assert.Equal(t, "rain", *r.Preps[0].Object)

	assert.Equal(t, "in", r.Preps[1].Label)
	_, ok := r.Value("prep2object")
	assert.False(t, ok)
}

func TestParticleAndPredicate(t *testing.T) {
	// he gave up, he is happy
	s := sent.Sentence{Tokens: []sent.Token{
		tok(1, 2, "he", "he", "PP", "SBJ"),
		tok(2, 0, "gave", "give", "VVD", "ROOT"),
		tok(3, 2, "up", "up", "RP", "PRT"),
	}}

	r, err := build(t, s, 2)
	require.NoError(t, err)
	require.NotNil(t, r.Particle)
	assert.Equal(t, "up", *r.Particle)

	s = sent.Sentence{Tokens: []sent.Token{
		tok(1, 2, "he", "he", "PP", "SBJ"),
		tok(2, 0, "is", "be", "VBZ", "ROOT"),
		tok(3, 2, "happy", "happy", "JJ", "PRD"),
	}}

	r, err = build(t, s, 2)
	require.NoError(t, err)
	require.NotNil(t, r.Predicate)
	assert.Equal(t, "happy", *r.Predicate)
	require.NotNil(t, r.PredClass)
	assert.Equal(t, PredAdjective, *r.PredClass)
	// a be verb without a verb below is not an auxiliary
	assert.Nil(t, r.Be)
}
