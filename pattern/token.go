package pattern

import "fmt"

// Kind identifies the variant of a Token.
type Kind int

const (
	KindLetter     Kind = iota // ASCII letter, a-z or A-Z
	KindDigit                  // ASCII decimal digit
	KindWhitespace             // space, tab, newline, carriage return, form feed
	KindLiteral                // exactly one specific character
)

func (k Kind) String() string {
	switch k {
	case KindLetter:
		return "letter"
	case KindDigit:
		return "digit"
	case KindWhitespace:
		return "whitespace"
	case KindLiteral:
		return "literal"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Token is the atomic unit of a pattern. Its fields are unexported so a
// Token cannot change after construction.
type Token struct {
	kind Kind
	char rune // only meaningful for KindLiteral
}

func Letter() Token     { return Token{kind: KindLetter} }
func Digit() Token      { return Token{kind: KindDigit} }
func Whitespace() Token { return Token{kind: KindWhitespace} }

// Literal returns a token matching exactly c.
func Literal(c rune) Token { return Token{kind: KindLiteral, char: c} }

func (t Token) Kind() Kind { return t.kind }

// Char returns the literal character, or 0 for class tokens.
func (t Token) Char() rune {
	if t.kind != KindLiteral {
		return 0
	}
	return t.char
}

// Matches reports whether the single character r satisfies the token.
func (t Token) Matches(r rune) bool {
	switch t.kind {
	case KindLetter:
		return isASCIILetter(r)
	case KindDigit:
		return isASCIIDigit(r)
	case KindWhitespace:
		return isSpace(r)
	case KindLiteral:
		return r == t.char
	default:
		panic(fmt.Sprintf("pattern: unknown token kind %d", int(t.kind)))
	}
}

func (t Token) String() string {
	if t.kind == KindLiteral {
		return fmt.Sprintf("literal(%q)", t.char)
	}
	return t.kind.String()
}

func isASCIILetter(r rune) bool {
	return ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z')
}

func isASCIIDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

// isSpace is the conventional \s class. Unlike unicode.IsSpace it excludes
// vertical tab, NEL and the non-ASCII spaces.
func isSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r', '\f':
		return true
	}
	return false
}
