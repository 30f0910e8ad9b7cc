package lexer

// StateKind discriminates the five variants of the scanner State sum type.
type StateKind int

const (
	// StateNormal is the default mode.
	StateNormal StateKind = iota
	// StateAfterRawStringDelimiter means PoundCount leading '#' were seen;
	// the opening quote is awaited.
	StateAfterRawStringDelimiter
	// StateInStringLiteral means the cursor is inside a string body of
	// StringKind with PoundCount raw delimiter hashes.
	StateInStringLiteral
	// StateAfterStringLiteral means the body closed; the closing quote is
	// awaited. IsRaw records whether the literal had any '#' delimiters.
	StateAfterStringLiteral
	// StateAfterClosingStringQuote means the closing quote was seen;
	// trailing '#'s are awaited.
	StateAfterClosingStringQuote
)

// StringKind distinguishes the three string body flavors a
// StateInStringLiteral can be scanning.
type StringKind int

const (
	StringSingleLine StringKind = iota
	StringMultiLine
	StringSingleQuote
)

// State is the scanner state sum type, modeled as a Go idiom for a tagged
// union: a discriminant (Kind) plus the payload fields relevant to that
// variant. Only the fields documented for a given Kind are meaningful.
//
//	StateNormal                    : no payload.
//	StateAfterRawStringDelimiter    : PoundCount.
//	StateInStringLiteral            : StringKind, PoundCount.
//	StateAfterStringLiteral         : StringKind, IsRaw.
//	StateAfterClosingStringQuote    : no payload.
type State struct {
	Kind       StateKind
	StringKind StringKind
	PoundCount int
	IsRaw      bool
}

// NormalState is the default scanner state.
func NormalState() State {
	return State{Kind: StateNormal}
}

func afterRawStringDelimiterState(poundCount int) State {
	return State{Kind: StateAfterRawStringDelimiter, PoundCount: poundCount}
}

func inStringLiteralState(kind StringKind, poundCount int) State {
	return State{Kind: StateInStringLiteral, StringKind: kind, PoundCount: poundCount}
}

func afterStringLiteralState(kind StringKind, isRaw bool) State {
	return State{Kind: StateAfterStringLiteral, StringKind: kind, IsRaw: isRaw}
}

func afterClosingStringQuoteState() State {
	return State{Kind: StateAfterClosingStringQuote}
}

// admitsTrivia gates trivia scanning purely off the scanner state: always
// in Normal, never in the delimiter-awaiting states, and inside a
// single-line string only when positioned at a line terminator, so the
// newline terminates the literal cleanly. atNewline reports whether the
// cursor currently sits at such a terminator.
func (s State) admitsTrivia(atNewline bool) bool {
	switch s.Kind {
	case StateNormal:
		return true
	case StateInStringLiteral:
		if s.StringKind == StringSingleLine || s.StringKind == StringSingleQuote {
			return atNewline
		}
		return false
	case StateAfterRawStringDelimiter, StateAfterStringLiteral, StateAfterClosingStringQuote:
		return false
	default:
		return false
	}
}
