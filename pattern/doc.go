/*
Package pattern implements a concatenation-only pattern language, a full-string
matcher for it, and renderers that emit the pattern as a regular expression
literal for several host languages.

# Tokens

A pattern is a sequence of tokens, each of which consumes exactly one
character of the candidate string:

  - Letter: an ASCII letter, a-z or A-Z
  - Digit: an ASCII decimal digit, 0-9
  - Whitespace: space, tab, newline, carriage return or form feed
  - Literal(c): exactly the character c, case-sensitive

There is no alternation, grouping, repetition or anchoring. Two consecutive
Letter tokens are two positions, never "one or more letters".

# Building and matching

	b := pattern.NewBuilder()
	b.AddLetter()
	b.AddDigit()
	if err := b.AddLiteral("@"); err != nil {
		return err
	}
	spec := b.Snapshot()

	spec.Match("a5@")  // true
	spec.Match("a5")   // false, length differs
	spec.Match("ab@")  // false, 'b' is not a digit

# Rendering

The plain form lowers Letter to [a-zA-Z], Digit to [0-9], Whitespace to \s
and a literal to itself. Dialects wrap the plain form:

	pattern.Render(spec, pattern.DialectPython)     // r"[a-zA-Z][0-9]@"
	pattern.Render(spec, pattern.DialectJavaScript) // /[a-zA-Z][0-9]@/

With the default EscapeMeta policy, literal regex metacharacters and control
characters are backslash-escaped and each dialect escapes its own delimiter,
so every render is a valid literal of its host language. The rendered text
accepts what Match accepts, with one exception: \s in Python, JavaScript and
Java also accepts a vertical tab, and Unicode spaces in Python and
JavaScript. Only Go's \s is exactly the Whitespace set. EscapeVerbatim
writes literals raw, so a JavaScript render of an empty pattern is "//", a
comment rather than a regular expression.

Parse reads the plain form back into a Spec.
*/
package pattern
