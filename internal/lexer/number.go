package lexer

import "strings"

// lexNumber recognizes decimal, hex, octal, and binary integer literals and
// decimal/hex floating literals. The cursor must be positioned at the first
// digit of the literal (not yet consumed). It returns the literal's
// TokenKind and at most one error, with the offset relative to the
// literal's start.
func lexNumber(c *Cursor) (TokenKind, *LexerError) {
	start := c.pos

	if b, _ := c.Peek(0); b == '0' {
		switch next, ok := c.Peek(1); {
		case ok && next == 'x':
			c.Advance()
			c.Advance()
			return lexHexNumber(c, start)
		case ok && next == 'o':
			c.Advance()
			c.Advance()
			return lexRadixInteger(c, start, isASCIIOctalDigit, InvalidOctalDigit)
		case ok && next == 'b':
			c.Advance()
			c.Advance()
			return lexRadixInteger(c, start, isASCIIBinaryDigit, InvalidBinaryDigit)
		}
	}

	return lexDecimalNumber(c, start)
}

// consumeDigitRun consumes a run of isDigit bytes and '_' separators. A byte
// in stops terminates the run before the invalid-digit check, so exponent
// markers can end a run cleanly. Identifier-continuation bytes outside the
// radix class are still consumed and reported once, at the first invalid
// position.
func consumeDigitRun(c *Cursor, start int, isDigit func(byte) bool, errKind LexerErrorKind, pendingErr **LexerError, stops string) (sawDigit bool) {
	for {
		b, ok := c.Peek(0)
		if !ok {
			return sawDigit
		}
		switch {
		case b == '_':
			c.Advance()
		case isDigit(b):
			sawDigit = true
			c.Advance()
		case strings.IndexByte(stops, b) >= 0:
			return sawDigit
		case isIdentifierContinueByte(b):
			if *pendingErr == nil {
				*pendingErr = newLexerError(errKind, c.pos-start)
			}
			sawDigit = true
			c.Advance()
		default:
			return sawDigit
		}
	}
}

func lexRadixInteger(c *Cursor, start int, isDigit func(byte) bool, errKind LexerErrorKind) (TokenKind, *LexerError) {
	var pendingErr *LexerError
	sawDigit := consumeDigitRun(c, start, isDigit, errKind, &pendingErr, "")

	if !sawDigit {
		// No digit followed the radix prefix: roll back to just after the
		// leading '0' and let the prefix letter be re-lexed as its own
		// token (e.g. an identifier).
		c.pos = start + 1
		c.prev = c.buf[start]
		return IntegerLiteral, nil
	}

	return IntegerLiteral, pendingErr
}

// lexHexNumber lexes the digits after an already-consumed "0x" prefix,
// including the optional ".hexdigits" fraction and [pP] binary exponent of
// a hexadecimal floating literal.
func lexHexNumber(c *Cursor, start int) (TokenKind, *LexerError) {
	var pendingErr *LexerError
	sawDigit := consumeDigitRun(c, start, isASCIIHexDigit, InvalidHexDigit, &pendingErr, "pP")

	if !sawDigit {
		c.pos = start + 1
		c.prev = c.buf[start]
		return IntegerLiteral, nil
	}

	if b, ok := c.Peek(0); ok && b == '.' {
		nb, ok2 := c.Peek(1)
		if !ok2 || !isASCIIHexDigit(nb) {
			// Not a fraction: recover as integer then a separate '.' for
			// the driver to re-lex.
			return IntegerLiteral, pendingErr
		}

		dotPos := c.pos
		c.Advance()
		for {
			fb, ok3 := c.Peek(0)
			if !ok3 || (!isASCIIHexDigit(fb) && fb != '_') {
				break
			}
			c.Advance()
		}

		if pb, ok3 := c.Peek(0); ok3 && (pb == 'p' || pb == 'P') {
			return lexExponent(c, start, pendingErr)
		}

		// No binary exponent. When the byte after the dot is a decimal
		// digit the fraction was unambiguous, so this is a malformed hex
		// float; otherwise something like "0xff.description" was consumed
		// too far and the dot belongs to member access.
		if !isASCIIDigit(nb) {
			c.pos = dotPos
			c.prev = c.buf[dotPos-1]
			return IntegerLiteral, pendingErr
		}
		if pendingErr == nil {
			pendingErr = newLexerError(ExpectedBinaryExponentInHexFloat, dotPos-start)
		}
		return FloatingLiteral, pendingErr
	}

	if pb, ok := c.Peek(0); ok && (pb == 'p' || pb == 'P') {
		return lexExponent(c, start, pendingErr)
	}

	return IntegerLiteral, pendingErr
}

func lexDecimalNumber(c *Cursor, start int) (TokenKind, *LexerError) {
	var pendingErr *LexerError
	consumeDigitRun(c, start, isASCIIDigit, InvalidDecimalDigit, &pendingErr, "eE")

	isFloat := false
	if b, ok := c.Peek(0); ok && b == '.' {
		// A '.' only joins a float if followed by a digit and the byte
		// before the literal is not itself '.' (so "x.0.1" stays member
		// access and "4.x" is integer 4 then '.').
		nb, ok2 := c.Peek(1)
		precededByDot := start > 0 && c.buf[start-1] == '.'
		if ok2 && isASCIIDigit(nb) && !precededByDot {
			isFloat = true
			c.Advance()
			consumeDigitRun(c, start, isASCIIDigit, InvalidDecimalDigit, &pendingErr, "eE")
		}
	}

	if b, ok := c.Peek(0); ok && (b == 'e' || b == 'E') {
		return lexExponent(c, start, pendingErr)
	}

	if isFloat {
		return FloatingLiteral, pendingErr
	}
	return IntegerLiteral, pendingErr
}

// lexExponent consumes an [eE]/[pP] exponent marker, an optional sign, and
// a decimal digit run, distinguishing a missing digit, a leading '_', and
// an invalid digit as three separate errors.
func lexExponent(c *Cursor, start int, pendingErr *LexerError) (TokenKind, *LexerError) {
	c.Advance() // the e/E/p/P marker
	c.AdvanceMatching2('+', '-')

	runStart := c.pos
	first, hasFirst := c.Peek(0)

	if hasFirst && first == '_' {
		if pendingErr == nil {
			pendingErr = newLexerError(InvalidFloatingPointExponentCharacter, runStart-start)
		}
	} else if !hasFirst || !isASCIIDigit(first) {
		if pendingErr == nil {
			pendingErr = newLexerError(ExpectedDigitInFloat, runStart-start)
		}
		return FloatingLiteral, pendingErr
	}

	sawDigit := false
loop:
	for {
		b, ok := c.Peek(0)
		if !ok {
			break
		}
		switch {
		case isASCIIDigit(b):
			sawDigit = true
			c.Advance()
		case b == '_':
			c.Advance()
		case isIdentifierContinueByte(b):
			if pendingErr == nil {
				pendingErr = newLexerError(InvalidFloatingPointExponentDigit, c.pos-start)
			}
			c.Advance()
		default:
			break loop
		}
	}
	if !sawDigit && pendingErr == nil {
		pendingErr = newLexerError(ExpectedDigitInFloat, runStart-start)
	}
	return FloatingLiteral, pendingErr
}
