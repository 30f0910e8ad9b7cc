package lexer

import "fmt"

// LexemeFlags is a bit set of lexeme classification flags.
type LexemeFlags uint8

const (
	// FlagAtStartOfLine is set iff the lexeme's leading trivia contains at
	// least one newline, or the lexeme sits at buffer offset 0.
	FlagAtStartOfLine LexemeFlags = 1 << iota
	// FlagIsRawStringContent marks StringLiteralContents lexemes produced
	// inside a raw ("#...#") string body, for consumers that care.
	FlagIsRawStringContent
)

func (f LexemeFlags) Has(flag LexemeFlags) bool {
	return f&flag != 0
}

// Lexeme is one produced token: a kind, classification flags, an optional
// error, and four byte-range lengths that partition a contiguous slice of
// the buffer. Lexemes borrow from the buffer; nothing here copies source
// text into the heap.
type Lexeme struct {
	Kind  TokenKind
	Flags LexemeFlags
	Error *LexerError

	// LeadingTriviaStart is the buffer offset where this lexeme's leading
	// trivia begins.
	LeadingTriviaStart  int
	LeadingTriviaLength int
	TextLength          int
	TrailingTriviaLength int
}

// TextStart is the buffer offset where the lexeme's token text begins.
func (l Lexeme) TextStart() int {
	return l.LeadingTriviaStart + l.LeadingTriviaLength
}

// TrailingTriviaStart is the buffer offset where trailing trivia begins.
func (l Lexeme) TrailingTriviaStart() int {
	return l.TextStart() + l.TextLength
}

// End is the buffer offset one past this lexeme's trailing trivia, which
// is also the LeadingTriviaStart of the next lexeme.
func (l Lexeme) End() int {
	return l.TrailingTriviaStart() + l.TrailingTriviaLength
}

// Text returns the lexeme's token text (excluding trivia) from buf.
func (l Lexeme) Text(buf []byte) []byte {
	start := l.TextStart()
	return buf[start : start+l.TextLength]
}

// IsAtStartOfLine reports the isAtStartOfLine classification flag.
func (l Lexeme) IsAtStartOfLine() bool {
	return l.Flags.Has(FlagAtStartOfLine)
}

// Is reports whether the lexeme has the given kind.
func (l Lexeme) Is(kind TokenKind) bool {
	return l.Kind == kind
}

func (l Lexeme) String() string {
	if l.Error != nil {
		return fmt.Sprintf("%s<error: %s>", l.Kind, l.Error.GetMessage())
	}
	return l.Kind.String()
}

// WithText renders the lexeme alongside its token text in "kind(text)"
// form, the format cmd/ylang-lex prints by default.
func (l Lexeme) WithText(buf []byte) string {
	if l.Kind == EOF {
		return l.Kind.String() + "()"
	}
	return fmt.Sprintf("%s(%s)", l.Kind, string(l.Text(buf)))
}
