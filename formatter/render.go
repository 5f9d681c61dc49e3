package formatter

import (
	"fmt"
	"strings"

	"github.com/gnolang/rxgen/pattern"
)

// FormatRenders lists the plain form of spec followed by one line per
// dialect, names aligned.
func FormatRenders(r pattern.Renderer, spec pattern.Spec, dialects []pattern.Dialect) string {
	var sb strings.Builder
	sb.WriteString(sourceStyle.Sprint("pattern: "))
	sb.WriteString(r.Plain(spec))
	sb.WriteString("\n")

	width := 0
	for _, d := range dialects {
		width = max(width, len(d.String()))
	}
	for _, d := range dialects {
		sb.WriteString("  ")
		sb.WriteString(dialectStyle.Sprintf("%-*s", width, d.String()))
		sb.WriteString(" ")
		sb.WriteString(r.Render(spec, d))
		sb.WriteString("\n")
	}
	return sb.String()
}

// FormatTokens describes each token of spec on its own line.
func FormatTokens(spec pattern.Spec) string {
	var sb strings.Builder
	width := len(fmt.Sprint(max(spec.Len()-1, 0)))
	for i := 0; i < spec.Len(); i++ {
		sb.WriteString(lineStyle.Sprintf("%*d | ", width, i))
		sb.WriteString(spec.At(i).String())
		sb.WriteString("\n")
	}
	return sb.String()
}
