package pattern

import "unicode/utf8"

// FullMatch reports whether input matches p position for position. The
// token language has no repetition, so inputs whose length in runes differs
// from p.Len() are rejected without inspection.
func FullMatch(p Spec, input string) bool {
	_, ok := Mismatch(p, input)
	return ok
}

// Mismatch is FullMatch that also reports where the match failed: the
// index of the first rejected rune, or -1 when the lengths differ.
// When ok is true pos is meaningless.
func Mismatch(p Spec, input string) (pos int, ok bool) {
	if utf8.RuneCountInString(input) != len(p.tokens) {
		return -1, false
	}
	i := 0
	for _, r := range input {
		if !p.tokens[i].Matches(r) {
			return i, false
		}
		i++
	}
	return 0, true
}
