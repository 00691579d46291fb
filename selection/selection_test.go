package selection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	expr, err := Parse([]string{"tense=past|PastPart", "!modal=can subject", "!complementizer"})
	require.NoError(t, err)
	require.Len(t, expr, 4)

	assert.Equal(t, Item{Header: "tense", Values: []string{"past", "pastpart"}}, expr[0])
	assert.Equal(t, Item{Header: "modal", Values: []string{"can"}, Negate: true}, expr[1])
	assert.Equal(t, Item{Header: "subject"}, expr[2])
	assert.Equal(t, Item{Header: "complementizer", Negate: true}, expr[3])

	assert.Equal(t, "tense=past|pastpart !modal=can subject !complementizer", expr.String())
	assert.Equal(t, []string{"tense", "modal", "subject", "complementizer"}, expr.Headers())
}

func TestParseErrors(t *testing.T) {
	for _, arg := range []string{"=past", "!", "colour=red", "tense=", "tense=past|"} {
		_, err := Parse([]string{arg})
		assert.Error(t, err, arg)
	}
}

func TestMatch(t *testing.T) {
	headers := []string{"lemma", "tense", "modal", "subject", "complementizer"}
	row := []string{"run", "gerund", "might", "he", "NONE"}

	tests := []struct {
		args  []string
		match bool
	}{
		{nil, true},
		{[]string{"tense=gerund"}, true},
		{[]string{"tense=past|gerund"}, true},
		{[]string{"tense=past"}, false},
		{[]string{"!modal=can"}, true},
		{[]string{"!modal=might"}, false},
		{[]string{"subject", "!complementizer"}, true},
		{[]string{"complementizer"}, false},
		{[]string{"particle"}, false},
		{[]string{"!particle"}, false},
	}

	for _, tt := range tests {
		expr, err := Parse(tt.args)
		require.NoError(t, err)
		assert.Equal(t, tt.match, expr.Match(headers, row), expr.String())
	}
}
