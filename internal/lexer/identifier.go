package lexer

// lexIdentifier recognizes an identifier. The cursor is positioned at the
// first byte (already known to be an identifier-start scalar). The returned
// TokenKind is looked up against the keyword catalogue; `_` alone becomes
// Wildcard.
func lexIdentifier(c *Cursor) TokenKind {
	start := c.pos
	c.advanceValidatingUTF8Character() // the already-verified identifier-start scalar
	c.AdvanceWhileScalar(isIdentifierContinueScalar)

	text := string(c.buf[start:c.pos])
	if text == "_" {
		return Wildcard
	}
	if kind, ok := keywords[text]; ok {
		return kind
	}
	return Identifier
}

// lexBacktickIdentifier recognizes the `` `ident` `` escaped-identifier
// form. The cursor is positioned at the opening backtick.
func lexBacktickIdentifier(c *Cursor) TokenKind {
	c.Advance() // opening backtick
	afterOpen := *c

	// The special form `` `$` `` falls out of the general scan below: '$'
	// is ordinary content, then the closing backtick sees sawContent=true.
	sawContent := false
	for {
		b, ok := c.Peek(0)
		if !ok || isNewlineByte(b) {
			// Unterminated: no closing backtick on this line. Only the
			// opening backtick is the token.
			*c = afterOpen
			return Backtick
		}
		if b == '`' {
			if sawContent {
				c.Advance()
				return Identifier
			}
			return Backtick
		}
		if !c.AdvanceIfScalar(func(rune) bool { return true }) {
			c.Advance()
		}
		sawContent = true
	}
}

// lexDollarIdentifier recognizes '$'-prefixed names: '$' plus digits only is
// a DollarIdentifier, '$' plus any other identifier-continue run is an
// ordinary Identifier, as is a bare '$'. The cursor is positioned at '$'.
func lexDollarIdentifier(c *Cursor) TokenKind {
	c.Advance() // '$'

	b, ok := c.Peek(0)
	if !ok {
		return Identifier // bare '$'
	}

	if isASCIIDigit(b) {
		for {
			b, ok := c.Peek(0)
			if !ok || !isASCIIDigit(b) {
				break
			}
			c.Advance()
		}
		return DollarIdentifier
	}

	if isIdentifierContinueByte(b) || b >= 0x80 {
		c.AdvanceWhileScalar(isIdentifierContinueScalar)
		return Identifier
	}

	return Identifier // bare '$'
}

// lexOperator consumes a maximal run of operator scalars, then classifies
// it by special-casing, editor placeholder/comment truncation, and finally
// boundness.
func lexOperator(c *Cursor) TokenKind {
	start := c.pos
	startedWithDot := func() bool {
		b, _ := c.Peek(0)
		return b == '.'
	}()

	// Standalone postfix punctuators immediately after a left-bound
	// position are not part of an operator run.
	if b, ok := c.Peek(0); ok && (b == '!' || b == '?') && c.isLeftBound() {
		c.Advance()
		if b == '!' {
			return ExclamationMark
		}
		return PostfixQuestionMark
	}

	leftBound := c.isLeftBound()

	for {
		b, ok := c.Peek(0)
		if !ok {
			break
		}
		if b == '.' {
			if !startedWithDot {
				break
			}
			c.Advance()
			continue
		}
		if isOperatorByte(b) {
			c.Advance()
			continue
		}
		if b >= 0x80 {
			snapshot := *c
			if r, ok := c.advanceValidatingUTF8Character(); ok && isOperatorScalar(r) {
				continue
			}
			*c = snapshot
		}
		break
	}

	runBytes := c.buf[start:c.pos]

	// An editor placeholder "<#...#>" starting inside the run truncates the
	// run at "<#". The '#' is never an operator byte, so the window extends
	// one byte past the run to catch a '<' at the run's end.
	windowEnd := c.pos + 1
	if windowEnd > len(c.buf) {
		windowEnd = len(c.buf)
	}
	if idx := indexPlaceholderOpen(c.buf[start:windowEnd]); idx > 0 && hasPlaceholderClose(c.buf, start+idx) {
		c.pos = start + idx
		c.prev = c.buf[c.pos-1]
		runBytes = c.buf[start:c.pos]
	}

	// A run containing "//" or "/*" after position 1 truncates before the
	// comment.
	if idx := indexCommentStart(runBytes); idx > 0 {
		c.pos = start + idx
		c.prev = c.buf[c.pos-1]
		runBytes = c.buf[start:c.pos]
	}

	// A run not itself made of dots, immediately followed by a bare '.',
	// never reads as binary: rightBound flips to the opposite of leftBound,
	// so the run is postfix when something precedes it (x^.y) and prefix
	// when nothing does (^.y). See the note on Cursor.isRightBound.
	var rightBound bool
	if !startedWithDot {
		if nb, ok := c.Peek(0); ok && nb == '.' {
			rightBound = !leftBound
		} else {
			rightBound = c.isRightBound()
		}
	} else {
		rightBound = c.isRightBound()
	}
	return classifyOperatorRun(runBytes, leftBound, rightBound)
}

func indexPlaceholderOpen(run []byte) int {
	for i := 0; i+1 < len(run); i++ {
		if run[i] == '<' && run[i+1] == '#' {
			return i
		}
	}
	return -1
}

func hasPlaceholderClose(buf []byte, from int) bool {
	for i := from; i+1 < len(buf); i++ {
		if buf[i] == '#' && buf[i+1] == '>' {
			return true
		}
		if buf[i] == '\n' {
			return false
		}
	}
	return false
}

func indexCommentStart(run []byte) int {
	for i := 1; i+1 < len(run); i++ {
		if (run[i] == '/' && run[i+1] == '/') || (run[i] == '/' && run[i+1] == '*') {
			return i
		}
	}
	return -1
}

func classifyOperatorRun(run []byte, leftBound, rightBound bool) TokenKind {
	switch string(run) {
	case "=":
		return Equal
	case "&":
		if rightBound && !leftBound {
			return PrefixAmpersand
		}
		return classifyByBoundness(leftBound, rightBound)
	case ".":
		return Period
	case "?":
		switch {
		case leftBound == rightBound:
			return InfixQuestionMark
		case leftBound:
			return PostfixQuestionMark
		default:
			return PrefixQuestionMark
		}
	case "->":
		return Arrow
	case "*/":
		return Unknown
	}

	for i := 0; i+1 < len(run); i++ {
		if run[i] == '*' && run[i+1] == '/' {
			return Unknown
		}
	}

	return classifyByBoundness(leftBound, rightBound)
}

func classifyByBoundness(leftBound, rightBound bool) TokenKind {
	switch {
	case leftBound == rightBound:
		return BinaryOperator
	case leftBound:
		return PostfixOperator
	default:
		return PrefixOperator
	}
}
