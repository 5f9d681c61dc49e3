package pattern

import (
	"strings"
	"unicode/utf8"
)

// lexemeType classifies a fragment of the plain form.
type lexemeType int

const (
	lexClass   lexemeType = iota // [a-zA-Z], [0-9], \s and their accepted spellings
	lexLiteral                   // a raw or escaped single character
	lexError                     // malformed fragment; err is set
	lexEOF
)

type lexeme struct {
	typ   lexemeType
	value string // source text of the fragment
	pos   int    // byte offset in the input
	token Token  // decoded token for lexClass and lexLiteral
	err   error
}

// bracketClasses are the bracket expressions understood by the lexer.
// Anything else starting with '[' is rejected.
var bracketClasses = []struct {
	text  string
	token Token
}{
	{LetterClass, Letter()},
	{"[A-Za-z]", Letter()},
	{DigitClass, Digit()},
}

// lexer scans the plain form of a pattern one fragment at a time.
type lexer struct {
	input    string
	position int
	lexemes  []lexeme
}

func newLexer(input string) *lexer {
	return &lexer{
		input:   input,
		lexemes: make([]lexeme, 0, len(input)),
	}
}

// tokenize scans the whole input. Scanning stops at the first error, whose
// lexeme is the last one before lexEOF.
func (l *lexer) tokenize() []lexeme {
	for l.position < len(l.input) {
		start := l.position
		var ok bool
		switch l.input[l.position] {
		case '\\':
			ok = l.lexEscape(start)
		case '[':
			ok = l.lexBracket(start)
		default:
			ok = l.lexRaw(start)
		}
		if !ok {
			break
		}
	}
	l.add(lexeme{typ: lexEOF, pos: l.position})
	return l.lexemes
}

func (l *lexer) lexEscape(start int) bool {
	if start+1 >= len(l.input) {
		l.fail(start, ErrTrailingEscape)
		return false
	}
	c, size := decodeRune(l.input[start+1:])
	if c == utf8.RuneError && size == 1 {
		l.fail(start, ErrInvalidUTF8)
		return false
	}
	end := start + 1 + size
	var tok Token
	switch c {
	case 'd':
		tok = Digit()
	case 's':
		tok = Whitespace()
	case 'x':
		hex := l.input[end:min(end+2, len(l.input))]
		v, ok := parseHexByte(hex)
		if !ok {
			l.fail(start, ErrBadEscape)
			return false
		}
		end += 2
		tok = Literal(rune(v))
	default:
		if ctl, ok := unescapeControl(c); ok {
			tok = Literal(ctl)
		} else if isASCIILetter(c) || isASCIIDigit(c) {
			// \w, \b, \1 and friends are not part of the token language.
			l.fail(start, ErrUnknownToken)
			return false
		} else {
			tok = Literal(c)
		}
	}
	typ := lexLiteral
	if tok.kind != KindLiteral {
		typ = lexClass
	}
	l.add(lexeme{typ: typ, value: l.input[start:end], pos: start, token: tok})
	l.position = end
	return true
}

func (l *lexer) lexBracket(start int) bool {
	rest := l.input[start:]
	for _, bc := range bracketClasses {
		if strings.HasPrefix(rest, bc.text) {
			l.add(lexeme{typ: lexClass, value: bc.text, pos: start, token: bc.token})
			l.position += len(bc.text)
			return true
		}
	}
	l.fail(start, ErrUnknownClass)
	return false
}

func (l *lexer) lexRaw(start int) bool {
	c, size := decodeRune(l.input[start:])
	if c == utf8.RuneError && size == 1 {
		l.fail(start, ErrInvalidUTF8)
		return false
	}
	l.add(lexeme{typ: lexLiteral, value: l.input[start : start+size], pos: start, token: Literal(c)})
	l.position += size
	return true
}

func (l *lexer) fail(pos int, err error) {
	l.add(lexeme{typ: lexError, value: l.input[pos:], pos: pos, err: err})
	l.position = len(l.input)
}

func (l *lexer) add(lx lexeme) {
	l.lexemes = append(l.lexemes, lx)
}

func unescapeControl(c rune) (rune, bool) {
	switch c {
	case 't':
		return '\t', true
	case 'n':
		return '\n', true
	case 'r':
		return '\r', true
	case 'f':
		return '\f', true
	case 'v':
		return '\v', true
	}
	return 0, false
}

func parseHexByte(s string) (byte, bool) {
	if len(s) != 2 {
		return 0, false
	}
	var v byte
	for i := 0; i < 2; i++ {
		c := s[i]
		switch {
		case '0' <= c && c <= '9':
			v = v<<4 | (c - '0')
		case 'a' <= c && c <= 'f':
			v = v<<4 | (c - 'a' + 10)
		case 'A' <= c && c <= 'F':
			v = v<<4 | (c - 'A' + 10)
		default:
			return 0, false
		}
	}
	return v, true
}
