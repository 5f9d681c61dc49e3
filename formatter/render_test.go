package formatter

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gnolang/rxgen/pattern"
)

func TestFormatRenders(t *testing.T) {
	t.Parallel()
	spec := pattern.NewSpec(pattern.Letter(), pattern.Digit(), pattern.Literal('@'))

	expected := `pattern: [a-zA-Z][0-9]@
  python     r"[a-zA-Z][0-9]@"
  javascript /[a-zA-Z][0-9]@/
`
	got := FormatRenders(pattern.DefaultRenderer, spec,
		[]pattern.Dialect{pattern.DialectPython, pattern.DialectJavaScript})
	assert.Equal(t, expected, got)
}

func TestFormatRendersVerbatim(t *testing.T) {
	t.Parallel()
	spec := pattern.NewSpec(pattern.Literal('.'))
	got := FormatRenders(pattern.Renderer{Escape: pattern.EscapeVerbatim}, spec,
		[]pattern.Dialect{pattern.DialectJavaScript})
	assert.Equal(t, "pattern: .\n  javascript /./\n", got)
}

func TestFormatTokens(t *testing.T) {
	t.Parallel()
	spec := pattern.NewSpec(pattern.Letter(), pattern.Whitespace(), pattern.Literal('#'))
	expected := `0 | letter
1 | whitespace
2 | literal('#')
`
	assert.Equal(t, expected, FormatTokens(spec))
	assert.Equal(t, "", FormatTokens(pattern.NewSpec()))
}
