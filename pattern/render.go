package pattern

import (
	"fmt"
	"strconv"
	"strings"
)

// Class fragments used by the plain form. Digit is spelled as a bracket
// class because \d accepts non-ASCII digits in Python.
const (
	LetterClass     = "[a-zA-Z]"
	DigitClass      = "[0-9]"
	WhitespaceClass = `\s`
)

// metaChars are escaped in the plain form under EscapeMeta.
const metaChars = `\.+*?()|[]{}^$`

// Dialect is a host language literal syntax a pattern can be rendered into.
type Dialect int

const (
	DialectPlain      Dialect = iota // no wrapper
	DialectPython                    // r"..."
	DialectJavaScript                // /.../
	DialectGo                        // "..." interpreted string literal
	DialectJava                      // "..." string literal
)

var dialectNames = map[Dialect]string{
	DialectPlain:      "plain",
	DialectPython:     "python",
	DialectJavaScript: "javascript",
	DialectGo:         "go",
	DialectJava:       "java",
}

var dialectAliases = map[string]Dialect{
	"plain":      DialectPlain,
	"python":     DialectPython,
	"py":         DialectPython,
	"javascript": DialectJavaScript,
	"js":         DialectJavaScript,
	"go":         DialectGo,
	"golang":     DialectGo,
	"java":       DialectJava,
}

func (d Dialect) String() string {
	if name, ok := dialectNames[d]; ok {
		return name
	}
	return fmt.Sprintf("Dialect(%d)", int(d))
}

// ParseDialect resolves a dialect name or alias, case-insensitively.
func ParseDialect(name string) (Dialect, error) {
	d, ok := dialectAliases[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, fmt.Errorf("unknown dialect %q", name)
	}
	return d, nil
}

// Dialects lists every wrapping dialect in a stable order.
func Dialects() []Dialect {
	return []Dialect{DialectPython, DialectJavaScript, DialectGo, DialectJava}
}

// EscapePolicy decides how literal characters are written out.
type EscapePolicy int

const (
	// EscapeMeta backslash-escapes regex metacharacters and control
	// characters in the plain form, and each dialect's delimiter in its
	// wrapped form, so every render is a valid host literal. The result
	// accepts exactly what the Matcher does, except that Whitespace
	// renders as \s: Go's \s is the same five characters, while Python,
	// JavaScript and Java also accept \v (and, for Python str patterns and
	// JavaScript, Unicode spaces).
	EscapeMeta EscapePolicy = iota
	// EscapeVerbatim writes literals raw, even when that changes the meaning
	// of the rendered pattern or breaks the host literal.
	EscapeVerbatim
)

func (e EscapePolicy) String() string {
	switch e {
	case EscapeMeta:
		return "meta"
	case EscapeVerbatim:
		return "verbatim"
	default:
		return fmt.Sprintf("EscapePolicy(%d)", int(e))
	}
}

func ParseEscapePolicy(name string) (EscapePolicy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "meta":
		return EscapeMeta, nil
	case "verbatim", "none":
		return EscapeVerbatim, nil
	default:
		return 0, fmt.Errorf("unknown escape policy %q", name)
	}
}

// Renderer turns a Spec into pattern text. The zero value uses EscapeMeta.
type Renderer struct {
	Escape EscapePolicy
}

var DefaultRenderer = Renderer{Escape: EscapeMeta}

// Render renders p for d with the default escape policy.
func Render(p Spec, d Dialect) string { return DefaultRenderer.Render(p, d) }

// Plain renders p without a dialect wrapper with the default escape policy.
func Plain(p Spec) string { return DefaultRenderer.Plain(p) }

// RenderAll renders p once per dialect, in order.
func RenderAll(p Spec, dialects []Dialect) []string {
	return DefaultRenderer.RenderAll(p, dialects)
}

func (r Renderer) Plain(p Spec) string {
	return r.lower(p, "")
}

func (r Renderer) Render(p Spec, d Dialect) string {
	switch d {
	case DialectPlain:
		return r.Plain(p)
	case DialectPython:
		return `r"` + r.lower(p, `"`) + `"`
	case DialectJavaScript:
		body := r.lower(p, "/")
		if body == "" && r.Escape == EscapeMeta {
			// "//" starts a comment.
			body = "(?:)"
		}
		return "/" + body + "/"
	case DialectGo:
		return strconv.Quote(r.Plain(p))
	case DialectJava:
		return javaQuote(r.Plain(p))
	default:
		panic(fmt.Sprintf("pattern: unknown dialect %d", int(d)))
	}
}

func (r Renderer) RenderAll(p Spec, dialects []Dialect) []string {
	out := make([]string, len(dialects))
	for i, d := range dialects {
		out[i] = r.Render(p, d)
	}
	return out
}

// lower writes every token's fragment. delims are the extra characters the
// wrapping literal needs escaped.
func (r Renderer) lower(p Spec, delims string) string {
	var sb strings.Builder
	for _, t := range p.tokens {
		switch t.kind {
		case KindLetter:
			sb.WriteString(LetterClass)
		case KindDigit:
			sb.WriteString(DigitClass)
		case KindWhitespace:
			sb.WriteString(WhitespaceClass)
		case KindLiteral:
			if r.Escape == EscapeVerbatim {
				sb.WriteRune(t.char)
				continue
			}
			writeEscaped(&sb, t.char, delims)
		default:
			panic(fmt.Sprintf("pattern: unknown token kind %d", int(t.kind)))
		}
	}
	return sb.String()
}

// controlEscapes leaves out \v, which Java reads as a class of vertical
// whitespace; it is written as \x0b instead.
var controlEscapes = map[rune]string{
	'\t': `\t`,
	'\n': `\n`,
	'\r': `\r`,
	'\f': `\f`,
}

func writeEscaped(sb *strings.Builder, c rune, delims string) {
	if esc, ok := controlEscapes[c]; ok {
		sb.WriteString(esc)
		return
	}
	if c < 0x20 || c == 0x7f {
		fmt.Fprintf(sb, `\x%02x`, c)
		return
	}
	// Line and paragraph separators end a JavaScript regex literal.
	if (c == '\u2028' || c == '\u2029') && strings.ContainsRune(delims, '/') {
		fmt.Fprintf(sb, `\u%04x`, c)
		return
	}
	if strings.ContainsRune(metaChars, c) || strings.ContainsRune(delims, c) {
		sb.WriteByte('\\')
	}
	sb.WriteRune(c)
}

// javaQuote produces a Java string literal for s.
func javaQuote(s string) string {
	var sb strings.Builder
	sb.WriteByte('"')
	for _, c := range s {
		switch c {
		case '\\':
			sb.WriteString(`\\`)
		case '"':
			sb.WriteString(`\"`)
		case '\n':
			sb.WriteString(`\n`)
		case '\t':
			sb.WriteString(`\t`)
		case '\r':
			sb.WriteString(`\r`)
		case '\f':
			sb.WriteString(`\f`)
		case '\b':
			sb.WriteString(`\b`)
		default:
			if c < 0x20 || c == 0x7f {
				fmt.Fprintf(&sb, `\u%04x`, c)
				continue
			}
			sb.WriteRune(c)
		}
	}
	sb.WriteByte('"')
	return sb.String()
}
