package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdvanceValidatingUTF8Character(t *testing.T) {
	t.Parallel()

	t.Run("ascii fast path", func(t *testing.T) {
		c := NewCursor([]byte("a"))
		r, ok := c.advanceValidatingUTF8Character()
		require.True(t, ok)
		assert.Equal(t, 'a', r)
		assert.Equal(t, 1, c.Offset())
	})

	t.Run("multi-byte scalars", func(t *testing.T) {
		cases := []struct {
			src  string
			want rune
		}{
			{"é", 'é'},
			{"€", '€'},
			{"🙂", '🙂'},
		}
		for _, tc := range cases {
			c := NewCursor([]byte(tc.src))
			r, ok := c.advanceValidatingUTF8Character()
			require.True(t, ok, tc.src)
			assert.Equal(t, tc.want, r)
			assert.Equal(t, len(tc.src), c.Offset())
		}
	})

	t.Run("bare continuation byte resynchronizes", func(t *testing.T) {
		c := NewCursor([]byte{0x80, 0x80, 'a'})
		_, ok := c.advanceValidatingUTF8Character()
		assert.False(t, ok)
		assert.Equal(t, 2, c.Offset())
	})

	t.Run("truncated sequence resynchronizes", func(t *testing.T) {
		c := NewCursor([]byte{0xE2, 0x82}) // missing the third byte of €
		_, ok := c.advanceValidatingUTF8Character()
		assert.False(t, ok)
		assert.Equal(t, 2, c.Offset())
	})

	t.Run("surrogate encoding rejected", func(t *testing.T) {
		c := NewCursor([]byte{0xED, 0xA0, 0x80}) // U+D800
		_, ok := c.advanceValidatingUTF8Character()
		assert.False(t, ok)
	})

	t.Run("overlong encoding rejected", func(t *testing.T) {
		c := NewCursor([]byte{0xC0, 0xAF}) // overlong '/'
		_, ok := c.advanceValidatingUTF8Character()
		assert.False(t, ok)
	})
}

func TestIsLeftAndRightBound(t *testing.T) {
	t.Parallel()

	t.Run("buffer start is never left-bound", func(t *testing.T) {
		c := NewCursor([]byte("+x"))
		assert.False(t, c.isLeftBound())
		assert.True(t, c.isRightBound())
	})

	t.Run("identifier on the left binds", func(t *testing.T) {
		c := NewCursor([]byte("a+"))
		c.Advance()
		assert.True(t, c.isLeftBound())
		assert.True(t, c.isRightBound())
	})

	t.Run("EOF on the right does not bind", func(t *testing.T) {
		c := NewCursor([]byte("a"))
		c.Advance()
		assert.False(t, c.isRightBound())
	})

	t.Run("openers and separators do not bind", func(t *testing.T) {
		for _, src := range []string{"(+", "[+", "{+", ",+", ";+", ":+"} {
			c := NewCursor([]byte(src))
			c.Advance()
			assert.False(t, c.isLeftBound(), src)
		}
	})

	t.Run("closers and separators on the right do not bind", func(t *testing.T) {
		for _, src := range []string{")", "]", "}", ",", ";", ":"} {
			c := NewCursor([]byte(src))
			assert.False(t, c.isRightBound(), src)
		}
	})

	t.Run("comment openers on the right do not bind", func(t *testing.T) {
		c := NewCursor([]byte("//"))
		assert.False(t, c.isRightBound())
		c = NewCursor([]byte("/*"))
		assert.False(t, c.isRightBound())
	})

	t.Run("just-closed block comment does not bind left", func(t *testing.T) {
		c := NewCursor([]byte("/**/+"))
		for i := 0; i < 4; i++ {
			c.Advance()
		}
		assert.False(t, c.isLeftBound())
	})

	t.Run("non-breaking space does not bind either side", func(t *testing.T) {
		buf := []byte("a\u00A0+\u00A0b")
		c := NewCursor(buf)
		c.Advance() // a
		c.Advance() // 0xC2
		c.Advance() // 0xA0
		assert.False(t, c.isLeftBound())
		c.Advance() // +
		assert.False(t, c.isRightBound())
	})
}
