package vert

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const corpus = `<text id="http://example.com/a">
<s>
The	the	DT	1	2	NMOD
ball	ball	NN	2	3	SBJ
was	be	VBD	3	0	ROOT
thrown	throw	VVN	4	3	VC
</s>
<p>
<s>
He	he	PP	1	2	SBJ
eats	eat	VVZ	2	0	ROOT
</s>
</p>
</text>
<text id="http://example.com/b">
<s>
Go	go	VV	1	0	ROOT
</s>
</text>
`

func TestParse(t *testing.T) {
	docs, err := Parse(strings.NewReader(corpus), "ukwac")
	require.NoError(t, err)
	require.Len(t, docs, 2)

	assert.Equal(t, "http://example.com/a", docs[0].Title)
	assert.Equal(t, 0, docs[0].Id)
	require.Len(t, docs[0].Tokens, 2)

	thrown := docs[0].Tokens[0][3]
	assert.Equal(t, 4, thrown.Id)
	assert.Equal(t, 3, thrown.Head)
	assert.Equal(t, "VVN", thrown.Tag)
	assert.Equal(t, "VC", thrown.Dep)
	assert.Equal(t, "throw", thrown.Lemma)
	assert.Equal(t, 3, thrown.Index)

	eats := docs[0].Tokens[1][1]
	assert.Equal(t, 1, eats.SentenceId)
	assert.Equal(t, 3, eats.Idx)

	assert.Equal(t, 1, docs[1].Id)
	assert.Len(t, docs[1].Tokens, 1)
}

func TestParseImplicitDoc(t *testing.T) {
	docs, err := Parse(strings.NewReader("<s>\nGo\tgo\tVV\t1\t0\tROOT\n</s>\n"), "plain.vert")
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "plain.vert", docs[0].Title)
}

func TestParseErrors(t *testing.T) {
	tests := map[string]string{
		"fields":   "<s>\nGo\tgo\tVV\t1\t0\n</s>\n",
		"index":    "<s>\nGo\tgo\tVV\tx\t0\tROOT\n</s>\n",
		"head":     "<s>\nGo\tgo\tVV\t1\t-1\tROOT\n</s>\n",
		"outside":  "Go\tgo\tVV\t1\t0\tROOT\n",
		"unclosed": "<s>\nGo\tgo\tVV\t1\t0\tROOT\n",
	}

	for name, src := range tests {
		_, err := Parse(strings.NewReader(src), "bad")
		assert.Error(t, err, name)
	}

	_, err := Parse(strings.NewReader("<s>\nGo\tgo\tVV\tx\t0\tROOT\n</s>\n"), "bad")
	assert.ErrorContains(t, err, "line 2")
}

func TestReader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corpus.vert")
	require.NoError(t, os.WriteFile(path, []byte(corpus), 0644))

	r, err := Open(path)
	require.NoError(t, err)

	docs, err := r.List()
	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Nil(t, docs[0].Tokens)

	doc, err := r.Read(1)
	require.NoError(t, err)
	assert.Equal(t, "go", doc.Tokens[0][0].Lemma)

	_, err = r.Read(2)
	assert.Error(t, err)
	assert.Error(t, r.Write(doc))
}
