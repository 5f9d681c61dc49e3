package formatter

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"text/template"
	"unicode/utf8"

	"github.com/gnolang/rxgen/internal/config"
	"github.com/gnolang/rxgen/pattern"
)

// MatchReport is the outcome of matching one candidate.
type MatchReport struct {
	// Source names where the candidate came from, e.g. "args:1" or
	// "names.txt:12".
	Source string       `json:"source"`
	Input  string       `json:"input"`
	OK     bool         `json:"ok"`
	Pos    int          `json:"pos"`
	Spec   pattern.Spec `json:"-"`
}

// NewMatchReport matches input against spec.
func NewMatchReport(source string, spec pattern.Spec, input string) MatchReport {
	pos, ok := pattern.Mismatch(spec, input)
	return MatchReport{Source: source, Input: input, OK: ok, Pos: pos, Spec: spec}
}

const mismatchTemplate = `{{header .Source}}
{{gutter}}
{{line .Input}}
{{underline .}}
`

var mismatchTmpl = template.Must(template.New("mismatch").Funcs(template.FuncMap{
	"header":    mismatchHeader,
	"gutter":    func() string { return lineStyle.Sprint("  |") },
	"line":      inputLine,
	"underline": underline,
}).Parse(mismatchTemplate))

// FormatMatch renders a single line for matches and a caret diagnostic for
// mismatches.
func FormatMatch(rep MatchReport) string {
	if rep.OK {
		return okStyle.Sprint("ok: ") + sourceStyle.Sprint(rep.Source) + " " + strconv.Quote(rep.Input) + "\n"
	}
	var buf bytes.Buffer
	if err := mismatchTmpl.Execute(&buf, rep); err != nil {
		return fmt.Sprintf("Error formatting match: %v\n", err)
	}
	return buf.String()
}

// FormatMatches formats every report in order, skipping matches when
// onlyFailures is set.
func FormatMatches(reps []MatchReport, onlyFailures bool) string {
	var sb strings.Builder
	for _, rep := range reps {
		if onlyFailures && rep.OK {
			continue
		}
		sb.WriteString(FormatMatch(rep))
	}
	return sb.String()
}

// FormatFailures formats the failed samples of a pattern check.
func FormatFailures(failures []config.Failure) string {
	var sb strings.Builder
	for _, f := range failures {
		sb.WriteString(errorStyle.Sprint("error: "))
		sb.WriteString(messageStyle.Sprint(f.String()))
		sb.WriteString("\n")
	}
	return sb.String()
}

func mismatchHeader(source string) string {
	return errorStyle.Sprint("mismatch: ") + sourceStyle.Sprint(source)
}

func inputLine(input string) string {
	return lineStyle.Sprint("  | ") + visible(input)
}

// underline places the caret by counting runes, so it drifts right of the
// offending character after wide characters such as CJK.
func underline(rep MatchReport) string {
	if rep.Pos < 0 {
		return lineStyle.Sprint("  = ") + messageStyle.Sprintf("length %d, pattern needs %d",
			utf8.RuneCountInString(rep.Input), rep.Spec.Len())
	}
	col := 0
	var got rune
	for i, r := range []rune(rep.Input) {
		if i == rep.Pos {
			got = r
			break
		}
		col += utf8.RuneCountInString(visibleRune(r))
	}
	want := rep.Spec.At(rep.Pos)
	return lineStyle.Sprint("  | ") + strings.Repeat(" ", col) +
		messageStyle.Sprintf("^ expected %s, got %s", want, strconv.QuoteRune(got))
}

// visible escapes control characters so carets line up.
func visible(s string) string {
	var sb strings.Builder
	for _, r := range s {
		sb.WriteString(visibleRune(r))
	}
	return sb.String()
}

func visibleRune(r rune) string {
	if r < 0x20 || r == 0x7f {
		q := strconv.QuoteRune(r)
		return q[1 : len(q)-1]
	}
	return string(r)
}
