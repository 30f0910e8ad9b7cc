package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLexIdentifierKeywordsAndWildcard(t *testing.T) {
	t.Parallel()

	cases := []struct {
		src  string
		kind TokenKind
	}{
		{"let", KeywordLet},
		{"func", KeywordFunc},
		{"return", KeywordReturn},
		{"_", Wildcard},
		{"x", Identifier},
		{"café", Identifier}, // Unicode identifier-continue scalar (é)
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.src, func(t *testing.T) {
			t.Parallel()
			c := NewCursor([]byte(tc.src))
			kind := lexIdentifier(&c)
			assert.Equal(t, tc.kind, kind)
			assert.Equal(t, len(tc.src), c.Offset())
		})
	}
}

func TestLexBacktickIdentifier(t *testing.T) {
	t.Parallel()

	t.Run("escaped keyword", func(t *testing.T) {
		c := NewCursor([]byte("`return`"))
		kind := lexBacktickIdentifier(&c)
		assert.Equal(t, Identifier, kind)
		assert.Equal(t, 8, c.Offset())
	})

	t.Run("bare backtick dollar form", func(t *testing.T) {
		c := NewCursor([]byte("`$`"))
		kind := lexBacktickIdentifier(&c)
		assert.Equal(t, Identifier, kind)
	})

	t.Run("unterminated on the same line falls back to a bare backtick", func(t *testing.T) {
		c := NewCursor([]byte("`oops\n"))
		kind := lexBacktickIdentifier(&c)
		assert.Equal(t, Backtick, kind)
		assert.Equal(t, 1, c.Offset())
	})
}

func TestLexDollarIdentifier(t *testing.T) {
	t.Parallel()

	t.Run("positional capture", func(t *testing.T) {
		c := NewCursor([]byte("$0"))
		kind := lexDollarIdentifier(&c)
		assert.Equal(t, DollarIdentifier, kind)
		assert.Equal(t, 2, c.Offset())
	})

	t.Run("named dollar identifier", func(t *testing.T) {
		c := NewCursor([]byte("$foo"))
		kind := lexDollarIdentifier(&c)
		assert.Equal(t, Identifier, kind)
	})

	t.Run("bare dollar", func(t *testing.T) {
		c := NewCursor([]byte("$"))
		kind := lexDollarIdentifier(&c)
		assert.Equal(t, Identifier, kind)
		assert.Equal(t, 1, c.Offset())
	})
}

func TestLexOperatorBoundnessFixity(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		src  string
		skip int // bytes to skip before the operator under test
		kind TokenKind
	}{
		{"binary plus surrounded by spaces", "a + b", 2, BinaryOperator},
		{"prefix minus at start", "-a", 0, PrefixOperator},
		{"postfix bang after identifier", "a!", 1, ExclamationMark},
		{"prefix ampersand", "&a", 0, PrefixAmpersand},
		{"infix question mark", "a ? b", 2, InfixQuestionMark},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			c := NewCursor([]byte(tc.src))
			c.pos = tc.skip
			if tc.skip > 0 {
				c.prev = tc.src[tc.skip-1]
			}
			kind := lexOperator(&c)
			assert.Equal(t, tc.kind, kind)
		})
	}
}

func TestLexOperatorTruncatesAtLineComment(t *testing.T) {
	t.Parallel()
	c := NewCursor([]byte("+-//comment"))
	kind := lexOperator(&c)
	assert.Equal(t, BinaryOperator, kind)
	assert.Equal(t, 2, c.Offset())
}

func TestIndexPlaceholderOpenAndClose(t *testing.T) {
	t.Parallel()
	// The Normal-state '<' dispatch (driver_test.go's placeholder scenario)
	// is the reachable path into lexEditorPlaceholder; these two helpers
	// exist for the case where a placeholder sits inside a longer run that
	// already contains other operator bytes before the '<'.
	run := []byte("<#x")
	idx := indexPlaceholderOpen(run)
	require.Equal(t, 0, idx)
	assert.True(t, hasPlaceholderClose([]byte("<#x#>"), idx))
	assert.False(t, hasPlaceholderClose([]byte("<#x\n#>"), idx))
}
