package lexer

import "fmt"

// TokenKind tags a lexeme with what was recognized. The upper syntactic
// parser owns the full token vocabulary; this is the concrete set the
// Identifier/Operator/Number/String/Regex recognizers need to tag the
// lexemes they produce.
type TokenKind int

const (
	EOF TokenKind = iota
	Unknown

	Identifier
	DollarIdentifier
	Wildcard // bare `_`

	IntegerLiteral
	FloatingLiteral
	StringQuote
	MultilineStringQuote
	SingleQuote
	RawStringDelimiter
	StringLiteralContents
	RegexLiteral

	BinaryOperator
	PrefixOperator
	PostfixOperator

	Equal
	Arrow // ->
	Period
	PrefixAmpersand
	ExclamationMark
	PrefixQuestionMark
	PostfixQuestionMark
	InfixQuestionMark
	Backtick

	AtSign
	LeftBrace
	RightBrace
	LeftBracket
	RightBracket
	LeftParen
	RightParen
	Comma
	Semicolon
	Colon
	Backslash

	PoundAssert
	PoundSourceLocation
	PoundWarning
	PoundError
	PoundIf
	PoundElse
	PoundElseif
	PoundEndif
	PoundAvailable
	PoundUnavailable
	PoundHasSymbol
	Pound

	// keywordBase marks the start of the keyword catalogue; grammar-level
	// disambiguation of contextual keywords is the parser's job.
	keywordBase
	KeywordLet
	KeywordVar
	KeywordFunc
	KeywordIf
	KeywordElse
	KeywordWhile
	KeywordFor
	KeywordReturn
	KeywordStruct
	KeywordEnum
	KeywordTrue
	KeywordFalse
	KeywordImport
	KeywordBreak
	KeywordContinue
)

var tokenKindNames = map[TokenKind]string{
	EOF:                    "eof",
	Unknown:                "unknown",
	Identifier:             "identifier",
	DollarIdentifier:       "dollarIdentifier",
	Wildcard:               "wildcard",
	IntegerLiteral:         "integerLiteral",
	FloatingLiteral:        "floatingLiteral",
	StringQuote:            "stringQuote",
	MultilineStringQuote:   "multilineStringQuote",
	SingleQuote:            "singleQuote",
	RawStringDelimiter:     "rawStringDelimiter",
	StringLiteralContents:  "stringLiteralContents",
	RegexLiteral:           "regexLiteral",
	BinaryOperator:         "binaryOperator",
	PrefixOperator:         "prefixOperator",
	PostfixOperator:        "postfixOperator",
	Equal:                  "equal",
	Arrow:                  "arrow",
	Period:                 "period",
	PrefixAmpersand:        "prefixAmpersand",
	ExclamationMark:        "exclamationMark",
	PrefixQuestionMark:     "prefixQuestionMark",
	PostfixQuestionMark:    "postfixQuestionMark",
	InfixQuestionMark:      "infixQuestionMark",
	Backtick:               "backtick",
	AtSign:                 "at",
	LeftBrace:              "leftBrace",
	RightBrace:             "rightBrace",
	LeftBracket:            "leftBracket",
	RightBracket:           "rightBracket",
	LeftParen:              "leftParen",
	RightParen:             "rightParen",
	Comma:                  "comma",
	Semicolon:              "semicolon",
	Colon:                  "colon",
	Backslash:              "backslash",
	PoundAssert:            "poundAssert",
	PoundSourceLocation:    "poundSourceLocation",
	PoundWarning:           "poundWarning",
	PoundError:             "poundError",
	PoundIf:                "poundIf",
	PoundElse:              "poundElse",
	PoundElseif:            "poundElseif",
	PoundEndif:             "poundEndif",
	PoundAvailable:         "poundAvailable",
	PoundUnavailable:       "poundUnavailable",
	PoundHasSymbol:         "poundHasSymbol",
	Pound:                  "pound",
	KeywordLet:             "let",
	KeywordVar:             "var",
	KeywordFunc:            "func",
	KeywordIf:              "if",
	KeywordElse:            "else",
	KeywordWhile:           "while",
	KeywordFor:             "for",
	KeywordReturn:          "return",
	KeywordStruct:          "struct",
	KeywordEnum:            "enum",
	KeywordTrue:            "true",
	KeywordFalse:           "false",
	KeywordImport:          "import",
	KeywordBreak:           "break",
	KeywordContinue:        "continue",
}

func (tk TokenKind) String() string {
	if name, ok := tokenKindNames[tk]; ok {
		return name
	}
	panic(fmt.Sprintf("TokenKind.String(): received illegal token kind: %d", tk))
}

// keywords is the catalogue consulted after an identifier is lexed.
var keywords = map[string]TokenKind{
	"let":      KeywordLet,
	"var":      KeywordVar,
	"func":     KeywordFunc,
	"if":       KeywordIf,
	"else":     KeywordElse,
	"while":    KeywordWhile,
	"for":      KeywordFor,
	"return":   KeywordReturn,
	"struct":   KeywordStruct,
	"enum":     KeywordEnum,
	"true":     KeywordTrue,
	"false":    KeywordFalse,
	"import":   KeywordImport,
	"break":    KeywordBreak,
	"continue": KeywordContinue,
}

// poundKeywords is the fixed '#'-directive vocabulary.
var poundKeywords = map[string]TokenKind{
	"assert":         PoundAssert,
	"sourceLocation": PoundSourceLocation,
	"warning":        PoundWarning,
	"error":          PoundError,
	"if":             PoundIf,
	"else":           PoundElse,
	"elseif":         PoundElseif,
	"endif":          PoundEndif,
	"available":      PoundAvailable,
	"unavailable":    PoundUnavailable,
	"_hasSymbol":     PoundHasSymbol,
}
