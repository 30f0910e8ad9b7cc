package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lexOneNumber(src string) (TokenKind, *LexerError, string) {
	c := NewCursor([]byte(src))
	kind, err := lexNumber(&c)
	return kind, err, src[:c.Offset()]
}

func TestLexNumberIntegers(t *testing.T) {
	t.Parallel()

	cases := []struct {
		src  string
		text string
	}{
		{"42", "42"},
		{"0", "0"},
		{"1_000_000", "1_000_000"},
		{"0x1F", "0x1F"},
		{"0o17", "0o17"},
		{"0b1010", "0b1010"},
		{"0xff.description", "0xff"},
		{"42.method()", "42"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.src, func(t *testing.T) {
			t.Parallel()
			kind, err, text := lexOneNumber(tc.src)
			assert.Equal(t, IntegerLiteral, kind)
			assert.Nil(t, err)
			assert.Equal(t, tc.text, text)
		})
	}
}

func TestLexNumberFloats(t *testing.T) {
	t.Parallel()

	cases := []string{
		"3.14",
		"1.0e10",
		"1e-10",
		"0xff.fp0",
		"0x1p10",
		"0x1.8p-1",
	}

	for _, src := range cases {
		src := src
		t.Run(src, func(t *testing.T) {
			t.Parallel()
			kind, err, text := lexOneNumber(src)
			assert.Equal(t, FloatingLiteral, kind)
			assert.Nil(t, err)
			assert.Equal(t, src, text)
		})
	}
}

func TestLexNumberDotNotFollowedByDigitStaysInteger(t *testing.T) {
	t.Parallel()
	// "4.x" is integer 4 then a separate '.' for the driver to re-lex.
	kind, err, text := lexOneNumber("4.x")
	assert.Equal(t, IntegerLiteral, kind)
	assert.Nil(t, err)
	assert.Equal(t, "4", text)
}

func TestLexNumberHexPrefixWithNoDigitsBacksOff(t *testing.T) {
	t.Parallel()
	// "0x" with nothing hex-ish after it backs up to just "0", leaving 'x'
	// for the driver to re-lex as an identifier.
	kind, err, text := lexOneNumber("0xy")
	assert.Equal(t, IntegerLiteral, kind)
	assert.Nil(t, err)
	assert.Equal(t, "0", text)
}

func TestLexNumberInvalidDigitErrors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		src  string
		kind LexerErrorKind
	}{
		{"0b102", InvalidBinaryDigit},
		{"0o18", InvalidOctalDigit},
		{"0xfg", InvalidHexDigit},
		{"1a2", InvalidDecimalDigit},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.src, func(t *testing.T) {
			t.Parallel()
			_, err, _ := lexOneNumber(tc.src)
			require.NotNil(t, err)
			assert.Equal(t, tc.kind, err.Kind)
		})
	}
}

func TestLexNumberExponentErrors(t *testing.T) {
	t.Parallel()

	t.Run("missing digit after e", func(t *testing.T) {
		_, err, _ := lexOneNumber("1e")
		require.NotNil(t, err)
		assert.Equal(t, ExpectedDigitInFloat, err.Kind)
	})

	t.Run("underscore right after e", func(t *testing.T) {
		_, err, _ := lexOneNumber("1e_5")
		require.NotNil(t, err)
		assert.Equal(t, InvalidFloatingPointExponentCharacter, err.Kind)
	})

	t.Run("hex float without binary exponent", func(t *testing.T) {
		_, err, _ := lexOneNumber("0x1.8")
		require.NotNil(t, err)
		assert.Equal(t, ExpectedBinaryExponentInHexFloat, err.Kind)
	})
}
