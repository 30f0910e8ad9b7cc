package lexer

import "unicode"

func isASCIIDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func isASCIIHexDigit(b byte) bool {
	return isASCIIDigit(b) || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}

func isASCIIOctalDigit(b byte) bool {
	return b >= '0' && b <= '7'
}

func isASCIIBinaryDigit(b byte) bool {
	return b == '0' || b == '1'
}

func isASCIILetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

// isIdentifierStartByte reports whether b alone (ASCII fast path) can
// start an identifier.
func isIdentifierStartByte(b byte) bool {
	return isASCIILetter(b) || b == '_'
}

func isIdentifierContinueByte(b byte) bool {
	return isIdentifierStartByte(b) || isASCIIDigit(b)
}

// isIdentifierStartScalar extends the ASCII grammar to any scalar
// satisfying Unicode's identifier-start predicate.
func isIdentifierStartScalar(r rune) bool {
	if r < 0x80 {
		return isIdentifierStartByte(byte(r))
	}
	return unicode.IsLetter(r) || unicode.Is(unicode.Nl, r)
}

func isIdentifierContinueScalar(r rune) bool {
	if r < 0x80 {
		return isIdentifierContinueByte(byte(r))
	}
	return unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.Is(unicode.Mn, r) ||
		unicode.Is(unicode.Mc, r) || unicode.Is(unicode.Pc, r)
}

// isOperatorByte reports membership in the ASCII operator-character set.
func isOperatorByte(b byte) bool {
	switch b {
	case '/', '=', '-', '+', '!', '*', '%', '<', '>', '&', '|', '^', '~', '?':
		return true
	}
	return false
}

func isOperatorScalar(r rune) bool {
	if r < 0x80 {
		return isOperatorByte(byte(r))
	}
	// Non-ASCII math/other-symbol scalars count as operator characters;
	// the broad Unicode categories stand in for an enumerated codepoint
	// table.
	return unicode.Is(unicode.Sm, r) || unicode.Is(unicode.So, r)
}

func isWhitespaceByte(b byte) bool {
	switch b {
	case ' ', '\t', '\v', '\f':
		return true
	}
	return false
}

func isNewlineByte(b byte) bool {
	return b == '\n' || b == '\r'
}
