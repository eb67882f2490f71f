package lualex

import (
	"unicode"

	"github.com/samber/lo"
)

type Token struct {
	Kind   TokenKind
	Text   string
	Number Number
	Pos    Pos
}

type TokenKind uint8

const (
	TokenEOF TokenKind = iota
	TokenName
	TokenNumber
	TokenString

	// keywords
	TokenAnd
	TokenBreak
	TokenDo
	TokenElse
	TokenElseif
	TokenEnd
	TokenFalse
	TokenFor
	TokenFunction
	TokenGoto
	TokenIf
	TokenIn
	TokenLocal
	TokenNil
	TokenNot
	TokenOr
	TokenRepeat
	TokenReturn
	TokenThen
	TokenTrue
	TokenUntil
	TokenWhile

	// symbols
	TokenPlus
	TokenMinus
	TokenMultiply
	TokenDivide
	TokenFloorDivide
	TokenModulo
	TokenExponent
	TokenLength
	TokenBitAnd
	TokenBitXor
	TokenBitOr
	TokenShiftLeft
	TokenShiftRight
	TokenEqual
	TokenNotEqual
	TokenLessEqual
	TokenGreaterEqual
	TokenLessThan
	TokenGreaterThan
	TokenAssign
	TokenLeftParen
	TokenRightParen
	TokenLeftBrace
	TokenRightBrace
	TokenLeftBracket
	TokenRightBracket
	TokenLabel
	TokenSemicolon
	TokenColon
	TokenComma
	TokenDot
	TokenConcat
	TokenEllipsis

	numTokenKinds
)

var kindInfos = [numTokenKinds]struct {
	text string
	name string
}{
	TokenEOF:    {"eof", "EOF"},
	TokenName:   {"name", "Name"},
	TokenNumber: {"number", "Number"},
	TokenString: {"string", "String"},

	TokenAnd:      {"and", "And"},
	TokenBreak:    {"break", "Break"},
	TokenDo:       {"do", "Do"},
	TokenElse:     {"else", "Else"},
	TokenElseif:   {"elseif", "Elseif"},
	TokenEnd:      {"end", "End"},
	TokenFalse:    {"false", "False"},
	TokenFor:      {"for", "For"},
	TokenFunction: {"function", "Function"},
	TokenGoto:     {"goto", "Goto"},
	TokenIf:       {"if", "If"},
	TokenIn:       {"in", "In"},
	TokenLocal:    {"local", "Local"},
	TokenNil:      {"nil", "Nil"},
	TokenNot:      {"not", "Not"},
	TokenOr:       {"or", "Or"},
	TokenRepeat:   {"repeat", "Repeat"},
	TokenReturn:   {"return", "Return"},
	TokenThen:     {"then", "Then"},
	TokenTrue:     {"true", "True"},
	TokenUntil:    {"until", "Until"},
	TokenWhile:    {"while", "While"},

	TokenPlus:         {"+", "Plus"},
	TokenMinus:        {"-", "Minus"},
	TokenMultiply:     {"*", "Multiply"},
	TokenDivide:       {"/", "Divide"},
	TokenFloorDivide:  {"//", "FloorDivide"},
	TokenModulo:       {"%", "Modulo"},
	TokenExponent:     {"^", "Exponent"},
	TokenLength:       {"#", "Length"},
	TokenBitAnd:       {"&", "BitAnd"},
	TokenBitXor:       {"~", "BitXor"},
	TokenBitOr:        {"|", "BitOr"},
	TokenShiftLeft:    {"<<", "ShiftLeft"},
	TokenShiftRight:   {">>", "ShiftRight"},
	TokenEqual:        {"==", "Equal"},
	TokenNotEqual:     {"~=", "NotEqual"},
	TokenLessEqual:    {"<=", "LessEqual"},
	TokenGreaterEqual: {">=", "GreaterEqual"},
	TokenLessThan:     {"<", "LessThan"},
	TokenGreaterThan:  {">", "GreaterThan"},
	TokenAssign:       {"=", "Assign"},
	TokenLeftParen:    {"(", "LeftParen"},
	TokenRightParen:   {")", "RightParen"},
	TokenLeftBrace:    {"{", "LeftBrace"},
	TokenRightBrace:   {"}", "RightBrace"},
	TokenLeftBracket:  {"[", "LeftBracket"},
	TokenRightBracket: {"]", "RightBracket"},
	TokenLabel:        {"::", "Label"},
	TokenSemicolon:    {";", "Semicolon"},
	TokenColon:        {":", "Colon"},
	TokenComma:        {",", "Comma"},
	TokenDot:          {".", "Dot"},
	TokenConcat:       {"..", "Concat"},
	TokenEllipsis:     {"...", "Ellipsis"},
}

// String returns the spelling of the kind: the keyword or symbol text,
// or a lower case class name for EOF, names, numbers and strings.
func (k TokenKind) String() string {
	if k >= numTokenKinds {
		return "invalid"
	}
	return kindInfos[k].text
}

// Name returns the Go-style name of the kind, e.g. "LessEqual".
func (k TokenKind) Name() string {
	if k >= numTokenKinds {
		return "Invalid"
	}
	return kindInfos[k].name
}

func (k TokenKind) IsKeyword() bool {
	_, ok := keywords[k.String()]
	return ok && k < numTokenKinds
}

func (k TokenKind) IsSymbol() bool {
	_, ok := symbols[k.String()]
	return ok && k < numTokenKinds
}

// AllKinds returns every token kind in declaration order.
func AllKinds() []TokenKind {
	return lo.Times(int(numTokenKinds), func(i int) TokenKind {
		return TokenKind(i)
	})
}

func isClassKind(k TokenKind) bool {
	return k == TokenEOF || k == TokenName || k == TokenNumber || k == TokenString
}

func isAlphaText(s string) bool {
	return lo.EveryBy([]rune(s), unicode.IsLetter)
}

var (
	keywords = lo.Associate(
		lo.Filter(AllKinds(), func(k TokenKind, _ int) bool {
			return !isClassKind(k) && isAlphaText(k.String())
		}),
		func(k TokenKind) (string, TokenKind) {
			return k.String(), k
		},
	)

	symbols = lo.Associate(
		lo.Filter(AllKinds(), func(k TokenKind, _ int) bool {
			return !isAlphaText(k.String())
		}),
		func(k TokenKind) (string, TokenKind) {
			return k.String(), k
		},
	)

	maxSymbolLen = lo.Max(lo.Map(lo.Keys(symbols), func(s string, _ int) int {
		return len(s)
	}))
)

// Keywords returns a copy of the reserved word table.
func Keywords() map[string]TokenKind {
	return lo.Assign(keywords)
}

// Symbols returns a copy of the operator and punctuation table.
func Symbols() map[string]TokenKind {
	return lo.Assign(symbols)
}

// LookupKeyword reports the keyword kind for text.
func LookupKeyword(text string) (TokenKind, bool) {
	k, ok := keywords[text]
	return k, ok
}
