package lexer

// lexEditorPlaceholder recognizes a "<#...#>" editor placeholder. The
// cursor is positioned at '<', already known to be followed by '#'. On
// success it consumes through the closing "#>" and returns Identifier; on
// failure (embedded newline, or no close) it restores the cursor and
// returns false so the caller falls back to operator lexing.
func lexEditorPlaceholder(c *Cursor) (TokenKind, bool) {
	snapshot := *c
	c.Advance() // '<'
	c.Advance() // '#'

	for {
		b, ok := c.Peek(0)
		if !ok || isNewlineByte(b) {
			*c = snapshot
			return Unknown, false
		}
		if b == '#' {
			if nb, ok2 := c.Peek(1); ok2 && nb == '>' {
				c.Advance()
				c.Advance()
				return Identifier, true
			}
		}
		c.Advance()
	}
}

// lexPound recognizes directive keywords: '#' followed by ASCII letters
// matched against a fixed vocabulary. Unrecognized names
// collapse to the bare Pound token without consuming the trailing
// identifier. The cursor is positioned at '#'.
func lexPound(c *Cursor) TokenKind {
	c.Advance() // '#'

	start := c.pos
	prevAtStart := c.prev
	for {
		b, ok := c.Peek(0)
		if !ok || !(isASCIILetter(b) || b == '_') {
			break
		}
		c.Advance()
	}

	name := string(c.buf[start:c.pos])
	if kind, ok := poundKeywords[name]; ok {
		return kind
	}

	// Unrecognized name: don't consume it, fall back to bare Pound.
	c.pos = start
	c.prev = prevAtStart
	return Pound
}
