package trie

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	t.Parallel()
	tr := New("letter", "digit", "space", "char", "reset", "show", "done", "d")

	tests := []struct {
		name       string
		prefix     string
		wantWord   string
		wantCands  []string
		wantResolv bool
	}{
		{name: "exact", prefix: "digit", wantWord: "digit", wantResolv: true},
		{name: "unique prefix", prefix: "le", wantWord: "letter", wantResolv: true},
		{name: "exact short word wins", prefix: "d", wantWord: "d", wantResolv: true},
		{name: "ambiguous", prefix: "s", wantCands: []string{"show", "space"}},
		{name: "no match", prefix: "x"},
		{name: "longer than word", prefix: "letters"},
		{name: "empty", prefix: ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			word, cands, ok := tr.Resolve(tt.prefix)
			assert.Equal(t, tt.wantResolv, ok)
			assert.Equal(t, tt.wantWord, word)
			assert.Equal(t, tt.wantCands, cands)
		})
	}
}

func TestComplete(t *testing.T) {
	t.Parallel()
	tr := New("reset", "render", "rest", "match")

	assert.Equal(t, []string{"render", "reset", "rest"}, tr.Complete("re"))
	assert.Equal(t, []string{"reset", "rest"}, tr.Complete("res"))
	assert.Equal(t, []string{"match", "render", "reset", "rest"}, tr.Complete(""))
	assert.Nil(t, tr.Complete("z"))
}

func TestContains(t *testing.T) {
	t.Parallel()
	tr := New("ab")
	tr.Insert("ab")
	assert.True(t, tr.Contains("ab"))
	assert.False(t, tr.Contains("a"))
	assert.False(t, tr.Contains("abc"))
}

func TestMultibyteWords(t *testing.T) {
	t.Parallel()
	tr := New("letra", "dígito", "espacio")
	word, _, ok := tr.Resolve("dí")
	assert.True(t, ok)
	assert.Equal(t, "dígito", word)
}

func TestString(t *testing.T) {
	t.Parallel()
	tr := New("ab", "ac")
	assert.Equal(t, "a(b(*)c(*))", tr.String())

	tr = New("abc", "abd", "ae", "f")
	assert.Equal(t, "a(b(c(*)d(*))e(*))f(*)", tr.String())
}
