package lexer

// isLeftBound reports whether the position touches something on its left:
// it is left-bound iff it is not preceded by whitespace, an opener, a
// separator, start-of-buffer, a just-consumed "*/" comment, or the second
// byte of a non-breaking space (U+00A0 = 0xC2 0xA0).
func (c Cursor) isLeftBound() bool {
	if c.pos == 0 {
		return false
	}

	prev := c.prev
	switch prev {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return false
	case '(', '[', '{':
		return false
	case ',', ';', ':':
		return false
	}

	if prev == 0xA0 {
		if b, ok := c.PeekBack(2); ok && b == 0xC2 {
			return false
		}
	}

	if prev == '/' {
		if b, ok := c.PeekBack(2); ok && b == '*' {
			return false
		}
	}

	return true
}

// isRightBound reports whether the position touches something on its
// right: it is right-bound iff the following byte is not whitespace, a
// closer, a separator, EOF, the start of a comment, or U+00A0. A following
// '.' is ordinary (non-excluded) content here. The dot/fixity rule that
// makes `x^.y` read as postfix `^` then `.` while `^.y` reads as prefix
// `^` is about the fixity of the operator run ending at this position, and
// isLeftBound at the run's end is always true once any operator byte
// precedes it, so it cannot distinguish the two cases by itself.
// lexOperator applies that rule using the run's own leftBound instead; see
// identifier.go.
func (c Cursor) isRightBound() bool {
	next, ok := c.Peek(0)
	if !ok {
		return false
	}

	switch next {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return false
	case ')', ']', '}':
		return false
	case ',', ';', ':':
		return false
	}

	if next == 0xC2 {
		if b, ok := c.Peek(1); ok && b == 0xA0 {
			return false
		}
	}

	if next == '/' {
		if b, ok := c.Peek(1); ok && (b == '/' || b == '*') {
			return false
		}
	}

	return true
}
