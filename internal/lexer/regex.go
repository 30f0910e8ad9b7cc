package lexer

// tryLexRegexLiteral speculatively lexes a "/.../" or "#/.../#" regex
// literal. It is only attempted in Normal state when the position is not
// left-bound
// (otherwise '/' is division). On any failure the cursor is restored to
// its entry position and false is returned, so the caller falls back to
// ordinary operator/pound lexing.
func tryLexRegexLiteral(c *Cursor) (TokenKind, bool) {
	if c.isLeftBound() {
		return Unknown, false
	}

	snapshot := *c

	poundCount := 0
	for c.AdvanceMatching('#') {
		poundCount++
	}
	if !c.AdvanceMatching('/') {
		*c = snapshot
		return Unknown, false
	}

	if poundCount == 0 {
		if b, ok := c.Peek(0); ok && (b == ' ' || b == '\t' || isNewlineByte(b)) {
			*c = snapshot
			return Unknown, false
		}
	}

	isMultiline := regexOpeningIsMultiline(*c)

	parenDepth := 0
	for {
		b, ok := c.Peek(0)
		if !ok {
			*c = snapshot
			return Unknown, false
		}

		if isNewlineByte(b) && !isMultiline {
			*c = snapshot
			return Unknown, false
		}

		switch {
		case b == '\\':
			c.Advance()
			if _, ok := c.Peek(0); !ok {
				*c = snapshot
				return Unknown, false
			}
			if _, ok := c.advanceValidatingUTF8Character(); !ok {
				c.Advance()
			}
			continue

		case b == '(':
			c.Advance()
			parenDepth++
			continue

		case b == ')':
			if parenDepth == 0 {
				*c = snapshot
				return Unknown, false
			}
			parenDepth--
			c.Advance()
			continue

		case b == '/':
			switch closed, abort := tryCloseRegex(c, poundCount, isMultiline); {
			case closed:
				return RegexLiteral, true
			case abort:
				*c = snapshot
				return Unknown, false
			}
			continue
		}

		c.Advance()
	}
}

// regexOpeningIsMultiline reports whether the opening '/' (just consumed,
// c positioned right after it) is followed by only spaces/tabs then a
// newline.
func regexOpeningIsMultiline(c Cursor) bool {
	for {
		b, ok := c.Peek(0)
		if !ok {
			return false
		}
		if b == ' ' || b == '\t' {
			c.Advance()
			continue
		}
		return isNewlineByte(b)
	}
}

// tryCloseRegex attempts to interpret the '/' at the cursor as the regex
// literal's closing delimiter. closed=true means it succeeded and the
// cursor has been advanced through the closing delimiter. abort=true means
// the speculation failed outright (a well-formed close immediately
// followed by a comment opener) and the caller must restore its own
// snapshot. Otherwise ('/' is ordinary body content) the cursor is left
// advanced past the single '/' for the caller to keep scanning.
func tryCloseRegex(c *Cursor, poundCount int, isMultiline bool) (closed, abort bool) {
	beforeSlash := *c
	c.Advance() // '/'

	matched := 0
	for matched < poundCount && c.AdvanceMatching('#') {
		matched++
	}
	if matched != poundCount {
		*c = beforeSlash
		c.Advance()
		return false, false
	}

	if poundCount == 0 && !isMultiline {
		if prev, ok := beforeSlash.PeekBack(1); ok && (prev == ' ' || prev == '\t') {
			*c = beforeSlash
			c.Advance()
			return false, false
		}
	}

	if nb, ok := c.Peek(0); ok && (nb == '/' || nb == '*') {
		return false, true
	}

	return true, false
}
