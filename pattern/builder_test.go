package pattern

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilderAppendsInOrder(t *testing.T) {
	t.Parallel()
	b := NewBuilder()
	b.AddLetter()
	b.AddLetter()
	b.AddDigit()
	b.AddWhitespace()
	require.NoError(t, b.AddLiteral("@"))

	spec := b.Snapshot()
	want := []Token{Letter(), Letter(), Digit(), Whitespace(), Literal('@')}
	assert.Equal(t, len(want), spec.Len())
	assert.Equal(t, want, spec.Tokens())
	assert.Equal(t, len(want), b.Len())
}

func TestBuilderAddLiteral(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		input   string
		wantErr error
		want    rune
	}{
		{name: "ascii", input: "x", want: 'x'},
		{name: "multibyte", input: "é", want: 'é'},
		{name: "backslash", input: `\`, want: '\\'},
		{name: "empty", input: "", wantErr: ErrEmptyLiteral},
		{name: "several", input: "ab", wantErr: ErrMultipleChars},
		{name: "invalid byte", input: "\xff", wantErr: ErrInvalidUTF8},
		{name: "replacement char", input: "\ufffd", want: '\ufffd'},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			b := NewBuilder()
			b.AddDigit()

			err := b.AddLiteral(tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, 1, b.Len(), "buffer must be unchanged on error")
				assert.Equal(t, []Token{Digit()}, b.Snapshot().Tokens())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, []Token{Digit(), Literal(tt.want)}, b.Snapshot().Tokens())
		})
	}
}

func TestBuilderSnapshotNotAliased(t *testing.T) {
	t.Parallel()
	b := NewBuilder()
	b.AddLetter()
	snap := b.Snapshot()

	b.AddDigit()
	b.Reset()
	b.AddWhitespace()

	assert.Equal(t, []Token{Letter()}, snap.Tokens())
	assert.True(t, snap.Match("q"))

	tokens := snap.Tokens()
	tokens[0] = Digit()
	assert.Equal(t, Letter(), snap.At(0), "Tokens must return a copy")
}

func TestBuilderResetRestoresFreshState(t *testing.T) {
	t.Parallel()
	build := func(b *Builder) {
		b.AddDigit()
		require.NoError(t, b.AddLiteral("-"))
		b.AddLetter()
	}

	fresh := NewBuilder()
	build(fresh)

	reused := NewBuilder()
	reused.AddWhitespace()
	reused.AddWhitespace()
	reused.Reset()
	assert.Equal(t, 0, reused.Len())
	assert.Equal(t, "", reused.Plain())
	build(reused)

	assert.True(t, fresh.Snapshot().Equal(reused.Snapshot()))
}

func TestBuilderZeroValue(t *testing.T) {
	t.Parallel()
	var b Builder
	assert.Equal(t, 0, b.Snapshot().Len())
	assert.True(t, b.Snapshot().Match(""))
	b.AddLetter()
	assert.Equal(t, "[a-zA-Z]", b.Plain())
}

func TestBuilderPlainTracksLiveBuffer(t *testing.T) {
	t.Parallel()
	b := NewBuilder()
	b.AddLetter()
	b.AddDigit()
	require.NoError(t, b.AddLiteral("@"))
	assert.Equal(t, `[a-zA-Z][0-9]@`, b.Plain())

	b.AddWhitespace()
	assert.Equal(t, `[a-zA-Z][0-9]@\s`, b.Plain())
}
