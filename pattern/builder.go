package pattern

import (
	"errors"
	"unicode/utf8"
)

var (
	ErrEmptyLiteral  = errors.New("literal requires exactly one character, got none")
	ErrMultipleChars = errors.New("literal requires exactly one character, got several")
	ErrInvalidUTF8   = errors.New("invalid UTF-8")
)

// Builder accumulates tokens in insertion order. The zero value is an empty
// builder ready for use. A Builder must not be used concurrently.
type Builder struct {
	buf []Token
}

func NewBuilder() *Builder {
	return &Builder{}
}

func (b *Builder) AddLetter()     { b.Add(Letter()) }
func (b *Builder) AddDigit()      { b.Add(Digit()) }
func (b *Builder) AddWhitespace() { b.Add(Whitespace()) }

// AddLiteral appends a literal token for the single character in s.
// The buffer is left untouched when s does not hold exactly one character
// or is not valid UTF-8.
func (b *Builder) AddLiteral(s string) error {
	c, err := singleRune(s)
	if err != nil {
		return err
	}
	b.Add(Literal(c))
	return nil
}

// Add appends t as-is.
func (b *Builder) Add(t Token) {
	b.buf = append(b.buf, t)
}

// Reset clears the buffer back to empty.
func (b *Builder) Reset() {
	b.buf = nil
}

func (b *Builder) Len() int { return len(b.buf) }

// Snapshot returns a Spec that does not share storage with the builder.
func (b *Builder) Snapshot() Spec {
	return NewSpec(b.buf...)
}

// Plain returns the canonical textual form of the live buffer.
func (b *Builder) Plain() string {
	return DefaultRenderer.Plain(Spec{tokens: b.buf})
}

func singleRune(s string) (rune, error) {
	if !utf8.ValidString(s) {
		return 0, ErrInvalidUTF8
	}
	switch n := utf8.RuneCountInString(s); {
	case n == 0:
		return 0, ErrEmptyLiteral
	case n > 1:
		return 0, ErrMultipleChars
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r, nil
}
