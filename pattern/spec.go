package pattern

// Spec is an ordered, immutable sequence of tokens. Position i of a
// candidate string is tested against token i. The zero value is the empty
// pattern, which matches only the empty string.
type Spec struct {
	tokens []Token
}

// NewSpec copies tokens into a new Spec.
func NewSpec(tokens ...Token) Spec {
	if len(tokens) == 0 {
		return Spec{}
	}
	cp := make([]Token, len(tokens))
	copy(cp, tokens)
	return Spec{tokens: cp}
}

func (s Spec) Len() int { return len(s.tokens) }

// At returns the token at position i.
func (s Spec) At(i int) Token { return s.tokens[i] }

// Tokens returns a copy of the token sequence.
func (s Spec) Tokens() []Token {
	cp := make([]Token, len(s.tokens))
	copy(cp, s.tokens)
	return cp
}

func (s Spec) Equal(other Spec) bool {
	if len(s.tokens) != len(other.tokens) {
		return false
	}
	for i := range s.tokens {
		if s.tokens[i] != other.tokens[i] {
			return false
		}
	}
	return true
}

// Match reports whether input fully matches s.
func (s Spec) Match(input string) bool { return FullMatch(s, input) }

// String returns the plain form with the default escape policy.
func (s Spec) String() string { return Plain(s) }

// Mismatch is the method form of the package-level Mismatch.
func (s Spec) Mismatch(input string) (pos int, ok bool) { return Mismatch(s, input) }
