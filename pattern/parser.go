package pattern

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

var (
	ErrTrailingEscape = errors.New("trailing backslash")
	ErrUnknownClass   = errors.New("unsupported character class")
	ErrBadEscape      = errors.New(`malformed \x escape`)
	ErrUnknownToken   = errors.New("unsupported token")
)

// SyntaxError reports where parsing failed.
type SyntaxError struct {
	Pos  int    // byte offset (Parse) or word index (ParseTokens)
	Text string // offending input
	Err  error
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("pattern: %v at %d: %q", e.Err, e.Pos, e.Text)
}

func (e *SyntaxError) Unwrap() error { return e.Err }

// Parse reads the plain form produced by Plain back into a Spec.
//
// Besides the fragments Plain emits, [A-Za-z] and [0-9] are accepted as
// class spellings, and unescaped metacharacters other than '[' and '\' are
// taken as literals so text rendered with EscapeVerbatim still parses.
func Parse(text string) (Spec, error) {
	lexemes := newLexer(text).tokenize()
	tokens := make([]Token, 0, len(lexemes))
	for _, lx := range lexemes {
		switch lx.typ {
		case lexClass, lexLiteral:
			tokens = append(tokens, lx.token)
		case lexError:
			return Spec{}, &SyntaxError{Pos: lx.pos, Text: lx.value, Err: lx.err}
		case lexEOF:
			return NewSpec(tokens...), nil
		}
	}
	return NewSpec(tokens...), nil
}

// MustParse is like Parse but panics on error.
func MustParse(text string) Spec {
	s, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return s
}

// ParseTokens builds a Spec from builder command words:
//
//	letter | l       Letter
//	digit | d        Digit
//	space | s | ws   Whitespace
//	char:X | lit:X   Literal(X)
func ParseTokens(words []string) (Spec, error) {
	b := NewBuilder()
	for i, w := range words {
		if err := applyWord(b, w); err != nil {
			return Spec{}, &SyntaxError{Pos: i, Text: w, Err: err}
		}
	}
	return b.Snapshot(), nil
}

func applyWord(b *Builder, w string) error {
	if name, arg, ok := strings.Cut(w, ":"); ok {
		switch strings.ToLower(name) {
		case "char", "lit", "literal":
			return b.AddLiteral(arg)
		}
		return ErrUnknownToken
	}
	switch strings.ToLower(w) {
	case "letter", "l":
		b.AddLetter()
	case "digit", "d":
		b.AddDigit()
	case "space", "s", "ws", "whitespace":
		b.AddWhitespace()
	default:
		return ErrUnknownToken
	}
	return nil
}

func decodeRune(s string) (rune, int) {
	return utf8.DecodeRuneInString(s)
}
