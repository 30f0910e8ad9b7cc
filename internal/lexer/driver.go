package lexer

// pendingInterpolationFrame is what the driver keeps on its stack while
// Normal-state dispatch re-lexes the bytes inside a "\(...)" interpolation.
// Only the driver needs this: the skip-scan in string_literal.go only ever
// reports where the matching ')' is, never walks the enclosed tokens
// itself.
type pendingInterpolationFrame struct {
	resumeAt    int
	stringState State
}

// Lexer drives the cursor/state machine, producing one Lexeme per Next
// call: a Cursor plus the small amount of extra bookkeeping (the
// interpolation stack) that the cursor's own State sum type doesn't
// carry. Like Cursor, constructing one never
// allocates beyond the stack's backing array, which only grows for source
// that actually nests string interpolations.
type Lexer struct {
	cursor      Cursor
	interpStack []pendingInterpolationFrame
}

// NewLexer starts a driver over buf at buffer offset 0, Normal state.
func NewLexer(buf []byte) *Lexer {
	return &Lexer{cursor: NewCursor(buf)}
}

// Cursor exposes the driver's current cursor snapshot, mainly for tests
// that want to assert on offsets independently of lexeme byte ranges.
func (l *Lexer) Cursor() Cursor {
	return l.cursor
}

// Next produces exactly one Lexeme and advances the driver's cursor past
// it: leading trivia (state permitting), recognizer dispatch, trailing
// trivia (never crossing a newline), then the state handoff.
func (l *Lexer) Next() Lexeme {
	c := &l.cursor

	leadingStart := c.Offset()
	state := c.State()

	var sawNewline bool
	if state.admitsTrivia(atNewlineHere(c)) {
		sawNewline = c.scanTrivia(true)
	}

	textStart := c.Offset()
	kind, lexErr, newState := l.dispatch(state)
	trailingStart := c.Offset()

	if newState.admitsTrivia(atNewlineHere(c)) {
		c.scanTrivia(false)
	}
	trailingEnd := c.Offset()

	c.SetState(newState)

	var flags LexemeFlags
	if sawNewline || leadingStart == 0 {
		flags |= FlagAtStartOfLine
	}
	if state.Kind == StateInStringLiteral && state.PoundCount > 0 && kind == StringLiteralContents {
		flags |= FlagIsRawStringContent
	}

	return Lexeme{
		Kind:                 kind,
		Flags:                flags,
		Error:                lexErr,
		LeadingTriviaStart:   leadingStart,
		LeadingTriviaLength:  textStart - leadingStart,
		TextLength:           trailingStart - textStart,
		TrailingTriviaLength: trailingEnd - trailingStart,
	}
}

// AllLexemes drains the driver and returns every produced lexeme,
// inclusive of the terminating EOF lexeme.
func (l *Lexer) AllLexemes() []Lexeme {
	var out []Lexeme
	for {
		lx := l.Next()
		out = append(out, lx)
		if lx.Kind == EOF {
			return out
		}
	}
}

func atNewlineHere(c *Cursor) bool {
	b, ok := c.Peek(0)
	return ok && isNewlineByte(b)
}

// dispatch routes on the entry state to the matching recognizer. The
// cursor is already positioned at textStart.
func (l *Lexer) dispatch(state State) (TokenKind, *LexerError, State) {
	c := &l.cursor

	switch state.Kind {
	case StateAfterRawStringDelimiter:
		kind, strKind := lexStringQuote(c, state.PoundCount)
		return kind, nil, inStringLiteralState(strKind, state.PoundCount)

	case StateInStringLiteral:
		res := scanStringBody(c, state.StringKind, state.PoundCount)
		if res.opensInterpolation {
			l.interpStack = append(l.interpStack, pendingInterpolationFrame{
				resumeAt:    res.resumeAt,
				stringState: inStringLiteralState(state.StringKind, state.PoundCount),
			})
		}
		return res.kind, res.err, res.state

	case StateAfterStringLiteral:
		return l.dispatchAfterStringLiteral(state)

	case StateAfterClosingStringQuote:
		for c.AdvanceMatching('#') {
		}
		return RawStringDelimiter, nil, NormalState()

	default: // StateNormal
		return l.dispatchNormal()
	}
}

// dispatchAfterStringLiteral consumes the closing quote once the body has
// been scanned. The cursor is guaranteed to sit exactly at the stop-quote
// sequence isStopQuote matched (one '"' for single-line, three for
// multi-line, one '\'' for a char literal).
func (l *Lexer) dispatchAfterStringLiteral(state State) (TokenKind, *LexerError, State) {
	c := &l.cursor

	var kind TokenKind
	switch state.StringKind {
	case StringMultiLine:
		c.Advance()
		c.Advance()
		c.Advance()
		kind = MultilineStringQuote
	case StringSingleQuote:
		c.Advance()
		kind = SingleQuote
	default:
		c.Advance()
		kind = StringQuote
	}

	if state.IsRaw {
		return kind, nil, afterClosingStringQuoteState()
	}
	return kind, nil, NormalState()
}

// dispatchNormal handles Normal-state lexing: resume
// a pending interpolation if the cursor has reached its matching ')', else
// route the current byte to the Number/Identifier/Operator/String/Regex/
// Placeholder recognizers or a fixed single-byte punctuation token.
func (l *Lexer) dispatchNormal() (TokenKind, *LexerError, State) {
	c := &l.cursor

	if n := len(l.interpStack); n > 0 {
		top := l.interpStack[n-1]
		if b, ok := c.Peek(0); ok && b == ')' && c.Offset() == top.resumeAt {
			l.interpStack = l.interpStack[:n-1]
			c.Advance()
			return RightParen, nil, top.stringState
		}
	}

	b, ok := c.Peek(0)
	if !ok {
		return EOF, nil, NormalState()
	}

	switch {
	case b == '`':
		return lexBacktickIdentifier(c), nil, NormalState()

	case b == '$':
		return lexDollarIdentifier(c), nil, NormalState()

	case b == '"' || b == '\'':
		kind, strKind := lexStringQuote(c, 0)
		return kind, nil, inStringLiteralState(strKind, 0)

	case b == '#':
		if !c.isLeftBound() {
			if kind, ok := tryLexRegexLiteral(c); ok {
				return kind, nil, NormalState()
			}
		}
		if kind, poundCount, ok := lexRawStringDelimiterPrefix(c); ok {
			return kind, nil, afterRawStringDelimiterState(poundCount)
		}
		return lexPound(c), nil, NormalState()

	case b == '/':
		if !c.isLeftBound() {
			if kind, ok := tryLexRegexLiteral(c); ok {
				return kind, nil, NormalState()
			}
		}
		return lexOperator(c), nil, NormalState()

	case b == '<':
		if nb, ok := c.Peek(1); ok && nb == '#' {
			if kind, ok := lexEditorPlaceholder(c); ok {
				return kind, nil, NormalState()
			}
		}
		return lexOperator(c), nil, NormalState()

	case isASCIIDigit(b):
		kind, err := lexNumber(c)
		return kind, err, NormalState()

	case isIdentifierStartByte(b):
		return lexIdentifier(c), nil, NormalState()

	case b == '.':
		return lexOperator(c), nil, NormalState()

	case isOperatorByte(b):
		return lexOperator(c), nil, NormalState()

	case b == '@':
		c.Advance()
		return AtSign, nil, NormalState()
	case b == '{':
		c.Advance()
		return LeftBrace, nil, NormalState()
	case b == '}':
		c.Advance()
		return RightBrace, nil, NormalState()
	case b == '[':
		c.Advance()
		return LeftBracket, nil, NormalState()
	case b == ']':
		c.Advance()
		return RightBracket, nil, NormalState()
	case b == '(':
		c.Advance()
		return LeftParen, nil, NormalState()
	case b == ')':
		c.Advance()
		return RightParen, nil, NormalState()
	case b == ',':
		c.Advance()
		return Comma, nil, NormalState()
	case b == ';':
		c.Advance()
		return Semicolon, nil, NormalState()
	case b == ':':
		c.Advance()
		return Colon, nil, NormalState()
	case b == '\\':
		c.Advance()
		return Backslash, nil, NormalState()

	case b >= 0x80:
		snapshot := *c
		if r, ok := c.advanceValidatingUTF8Character(); ok {
			if isIdentifierStartScalar(r) {
				*c = snapshot
				return lexIdentifier(c), nil, NormalState()
			}
			if isOperatorScalar(r) {
				*c = snapshot
				return lexOperator(c), nil, NormalState()
			}
			return Unknown, nil, NormalState()
		}
		return Unknown, nil, NormalState()

	default:
		c.Advance()
		return Unknown, nil, NormalState()
	}
}
