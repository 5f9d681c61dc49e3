package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gnolang/rxgen/pattern"
)

func TestDecodeDefaults(t *testing.T) {
	t.Parallel()
	cfg, err := Decode(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	dialects, err := cfg.DialectList()
	require.NoError(t, err)
	assert.Equal(t, []pattern.Dialect{pattern.DialectPython, pattern.DialectJavaScript}, dialects)

	r, err := cfg.Renderer()
	require.NoError(t, err)
	assert.Equal(t, pattern.EscapeMeta, r.Escape)
	assert.True(t, cfg.ColorEnabled())
}

func TestDecode(t *testing.T) {
	t.Parallel()
	src := `
name: ids
dialects: [go, js]
escape: verbatim
color: false
workers: 2
patterns:
  - name: code
    pattern: '[a-zA-Z]\d\d'
    accept: [a12, Z00]
    reject: [a1, "112"]
`
	cfg, err := Decode(strings.NewReader(src))
	require.NoError(t, err)

	assert.Equal(t, "ids", cfg.Name)
	dialects, err := cfg.DialectList()
	require.NoError(t, err)
	assert.Equal(t, []pattern.Dialect{pattern.DialectGo, pattern.DialectJavaScript}, dialects)

	r, err := cfg.Renderer()
	require.NoError(t, err)
	assert.Equal(t, pattern.EscapeVerbatim, r.Escape)
	assert.False(t, cfg.ColorEnabled())
	assert.Equal(t, 2, cfg.Workers)

	spec, err := cfg.Pattern("code")
	require.NoError(t, err)
	assert.Equal(t, 3, spec.Len())

	_, err = cfg.Pattern("missing")
	assert.Error(t, err)
}

func TestDecodeInvalid(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		src     string
		wantErr string
	}{
		{"bad dialect", "dialects: [cobol]", "unknown dialect"},
		{"bad escape", "escape: html", "unknown escape policy"},
		{"negative workers", "workers: -1", "workers"},
		{"bad yaml", "dialects: [", "decoding config"},
		{"unnamed pattern", "patterns:\n  - pattern: x", "missing name"},
		{"duplicate pattern", "patterns:\n  - {name: a, pattern: x}\n  - {name: a, pattern: y}", "duplicate"},
		{"unparsable pattern", "patterns:\n  - {name: a, pattern: '[xyz]'}", "unsupported character class"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := Decode(strings.NewReader(tt.src))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestWriteThenLoad(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "rxgen.yaml")

	cfg := Default()
	cfg.Patterns = []NamedPattern{{Name: "pin", Pattern: `\d\d\d\d`, Accept: []string{"1234"}}}
	require.NoError(t, Write(path, cfg))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoadMissing(t *testing.T) {
	t.Parallel()
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestCheck(t *testing.T) {
	t.Parallel()
	np := NamedPattern{
		Name:    "code",
		Pattern: `[a-zA-Z]\d`,
		Accept:  []string{"a1", "ab", "a"},
		Reject:  []string{"11", "b2"},
	}

	failures, err := Check(np)
	require.NoError(t, err)
	require.Len(t, failures, 3)

	assert.Equal(t, Failure{Pattern: "code", Sample: "ab", Want: true, Pos: 1}, failures[0])
	assert.Equal(t, Failure{Pattern: "code", Sample: "a", Want: true, Pos: -1}, failures[1])
	assert.Equal(t, Failure{Pattern: "code", Sample: "b2", Want: false, Pos: -1}, failures[2])

	assert.Contains(t, failures[0].String(), "position 1")
	assert.Contains(t, failures[1].String(), "length differs")
	assert.Contains(t, failures[2].String(), "listed under reject")
}

func TestCheckAll(t *testing.T) {
	t.Parallel()
	cfg := Default()
	cfg.Patterns = []NamedPattern{
		{Name: "ok", Pattern: `\s`, Accept: []string{" ", "\t"}, Reject: []string{"", "x"}},
		{Name: "bad", Pattern: `x`, Accept: []string{"y"}},
	}
	failures, err := cfg.CheckAll()
	require.NoError(t, err)
	require.Len(t, failures, 1)
	assert.Equal(t, "bad", failures[0].Pattern)

	cfg.Patterns = append(cfg.Patterns, NamedPattern{Name: "broken", Pattern: `\`})
	_, err = cfg.CheckAll()
	assert.ErrorIs(t, err, pattern.ErrTrailingEscape)
}
