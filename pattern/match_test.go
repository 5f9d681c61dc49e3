package pattern

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFullMatch(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		spec  Spec
		input string
		want  bool
	}{
		{"empty matches empty", NewSpec(), "", true},
		{"empty rejects non-empty", NewSpec(), "a", false},
		{"letter digit", NewSpec(Letter(), Digit()), "a5", true},
		{"letter digit upper", NewSpec(Letter(), Digit()), "Z0", true},
		{"digit position rejects letter", NewSpec(Letter(), Digit()), "ab", false},
		{"too short", NewSpec(Letter(), Digit()), "a", false},
		{"too long", NewSpec(Letter(), Digit()), "a55", false},
		{"no substring match", NewSpec(Digit()), "x1y", false},
		{"space", NewSpec(Whitespace()), " ", true},
		{"tab", NewSpec(Whitespace()), "\t", true},
		{"newline", NewSpec(Whitespace()), "\n", true},
		{"carriage return", NewSpec(Whitespace()), "\r", true},
		{"form feed", NewSpec(Whitespace()), "\f", true},
		{"vertical tab is not whitespace", NewSpec(Whitespace()), "\v", false},
		{"no-break space is not whitespace", NewSpec(Whitespace()), "\u00a0", false},
		{"whitespace rejects empty", NewSpec(Whitespace()), "", false},
		{"literal", NewSpec(Literal('x')), "x", true},
		{"literal other", NewSpec(Literal('x')), "y", false},
		{"literal case sensitive", NewSpec(Literal('x')), "X", false},
		{"literal metachar is not a wildcard", NewSpec(Literal('.')), "a", false},
		{"literal metachar", NewSpec(Literal('.')), ".", true},
		{"non-ascii letter", NewSpec(Letter()), "é", false},
		{"arabic-indic digit", NewSpec(Digit()), "٣", false},
		{"multibyte literal counts one position", NewSpec(Literal('é'), Digit()), "é7", true},
		{"email-ish", NewSpec(Letter(), Letter(), Literal('@'), Digit()), "ab@1", true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, FullMatch(tt.spec, tt.input))
			assert.Equal(t, tt.want, tt.spec.Match(tt.input))
		})
	}
}

func TestFullMatchImpliesEqualLength(t *testing.T) {
	t.Parallel()
	spec := NewSpec(Letter(), Whitespace(), Digit())
	inputs := []string{"", "a", "a ", "a 1", "a 12", "ab1", "a\t9", "  1"}
	for _, in := range inputs {
		if FullMatch(spec, in) {
			assert.Equal(t, spec.Len(), len([]rune(in)), "input %q", in)
		}
	}
}

func TestFullMatchIsStateless(t *testing.T) {
	t.Parallel()
	spec := NewSpec(Digit(), Digit())
	for i := 0; i < 3; i++ {
		assert.True(t, FullMatch(spec, "42"))
		assert.False(t, FullMatch(spec, "4x"))
	}
}

func TestMismatch(t *testing.T) {
	t.Parallel()
	spec := NewSpec(Letter(), Digit(), Literal('!'))

	pos, ok := Mismatch(spec, "a1!")
	assert.True(t, ok)
	assert.Equal(t, 0, pos)

	pos, ok = Mismatch(spec, "a1")
	assert.False(t, ok)
	assert.Equal(t, -1, pos)

	pos, ok = Mismatch(spec, "1a!")
	assert.False(t, ok)
	assert.Equal(t, 0, pos)

	pos, ok = Mismatch(spec, "é1?")
	assert.False(t, ok)
	assert.Equal(t, 0, pos)

	pos, ok = Mismatch(spec, "a1?")
	assert.False(t, ok)
	assert.Equal(t, 2, pos)
}

// The escaped plain form is a regular expression accepting exactly the
// strings the matcher accepts.
func TestFullMatchAgreesWithRegexp(t *testing.T) {
	t.Parallel()
	specs := []Spec{
		NewSpec(),
		NewSpec(Letter(), Digit()),
		NewSpec(Whitespace(), Literal('.'), Literal('*')),
		NewSpec(Literal('['), Literal('\\'), Literal(']'), Literal('$')),
		NewSpec(Literal('/'), Literal('"'), Literal('\t')),
		NewSpec(Literal('\v')),
		NewSpec(Digit()),
	}
	inputs := []string{
		"", "a5", "5a", " .*", "\t.*", " x*", `[\]$`, `[\]^`,
		"/\"\t", "/\" ", "\v.*", "\f.*", "\v", "5", "\u0663", "a\u0663",
	}

	for _, spec := range specs {
		re := regexp.MustCompile("^(?:" + Plain(spec) + ")$")
		for _, in := range inputs {
			assert.Equal(t, re.MatchString(in), FullMatch(spec, in),
				"pattern %q input %q", Plain(spec), in)
		}
	}
}
