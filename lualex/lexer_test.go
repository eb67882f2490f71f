package lualex

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type tokenInfo struct {
	Kind   TokenKind
	Text   string
	Line   int
	Column int
}

func lexInfos(t *testing.T, input string) []tokenInfo {
	t.Helper()
	tokens, err := Tokenize(NewSource("test.lua", input), Options{})
	require.NoError(t, err)
	var infos []tokenInfo
	for _, token := range tokens {
		infos = append(infos, tokenInfo{token.Kind, token.Text, token.Pos.Line, token.Pos.Column})
	}
	return infos
}

func TestNextSimple(t *testing.T) {
	l := newTestLexer("a=2.45e-3;d=a+4<5")

	expect := func(kind TokenKind, text string, number Number, column int) {
		t.Helper()
		token, err := l.Next()
		require.NoError(t, err)
		assert.Equal(t, kind, token.Kind)
		assert.Equal(t, text, token.Text)
		assert.Equal(t, number, token.Number)
		assert.Equal(t, 1, token.Pos.Line)
		assert.Equal(t, column, token.Pos.Column)
		assert.Equal(t, column-1, token.Pos.Offset)
	}

	expect(TokenName, "a", Number{}, 1)
	expect(TokenAssign, "=", Number{}, 2)
	expect(TokenNumber, "2.45e-3", Number{Integer: "2", Fraction: "45", Exponent: "-3"}, 3)
	expect(TokenSemicolon, ";", Number{}, 10)
	expect(TokenName, "d", Number{}, 11)
	expect(TokenAssign, "=", Number{}, 12)
	expect(TokenName, "a", Number{}, 13)
	expect(TokenPlus, "+", Number{}, 14)
	expect(TokenNumber, "4", Number{Integer: "4"}, 15)
	expect(TokenLessThan, "<", Number{}, 16)
	expect(TokenNumber, "5", Number{Integer: "5"}, 17)
	expect(TokenEOF, "", Number{}, 18)
	expect(TokenEOF, "", Number{}, 18)
}

func TestNextEOFIdempotent(t *testing.T) {
	l := newTestLexer("x")
	_, err := l.Next()
	require.NoError(t, err)
	first, err := l.Next()
	require.NoError(t, err)
	for range 5 {
		token, err := l.Next()
		require.NoError(t, err)
		assert.Equal(t, first, token)
	}
	assert.Equal(t, TokenEOF, first.Kind)
}

func TestNextEmpty(t *testing.T) {
	assert.Equal(t, []tokenInfo{{TokenEOF, "", 1, 1}}, lexInfos(t, ""))
	assert.Equal(t, []tokenInfo{{TokenEOF, "", 2, 3}}, lexInfos(t, "  \n  "))
	assert.Equal(t, []tokenInfo{{TokenEOF, "", 1, 15}}, lexInfos(t, "#!/usr/bin/lua"))
}

func TestNextCommentString(t *testing.T) {
	infos := lexInfos(t, "'abc\\\ndef'--abc\n\"abab'\"--[==[\n\\\n]===]]==]'abc'")
	assert.Equal(t, []tokenInfo{
		{TokenString, "abc\ndef", 1, 1},
		{TokenString, "abab'", 3, 1},
		{TokenString, "abc", 5, 10},
		{TokenEOF, "", 5, 15},
	}, infos)
}

func TestNextKeywords(t *testing.T) {
	infos := lexInfos(t, "local function f(...) return nil end goto_ x")
	assert.Equal(t, []tokenInfo{
		{TokenLocal, "local", 1, 1},
		{TokenFunction, "function", 1, 7},
		{TokenName, "f", 1, 16},
		{TokenLeftParen, "(", 1, 17},
		{TokenEllipsis, "...", 1, 18},
		{TokenRightParen, ")", 1, 21},
		{TokenReturn, "return", 1, 23},
		{TokenNil, "nil", 1, 30},
		{TokenEnd, "end", 1, 34},
		{TokenName, "goto_", 1, 38},
		{TokenName, "x", 1, 44},
		{TokenEOF, "", 1, 45},
	}, infos)
}

func TestNextSymbols(t *testing.T) {
	tests := []struct {
		input string
		kinds []TokenKind
	}{
		{"a...b..c.d", []TokenKind{TokenName, TokenEllipsis, TokenName, TokenConcat, TokenName, TokenDot, TokenName}},
		{"<<=", []TokenKind{TokenShiftLeft, TokenAssign}},
		{"<=<", []TokenKind{TokenLessEqual, TokenLessThan}},
		{"~=~", []TokenKind{TokenNotEqual, TokenBitXor}},
		{"::x::", []TokenKind{TokenLabel, TokenName, TokenLabel}},
		{"a//b/c", []TokenKind{TokenName, TokenFloorDivide, TokenName, TokenDivide, TokenName}},
		{"#t%2^3", []TokenKind{TokenLength, TokenName, TokenModulo, TokenNumber, TokenExponent, TokenNumber}},
		{"{[1]=2}", []TokenKind{TokenLeftBrace, TokenLeftBracket, TokenNumber, TokenRightBracket, TokenAssign, TokenNumber, TokenRightBrace}},
		{"a>>b>=c", []TokenKind{TokenName, TokenShiftRight, TokenName, TokenGreaterEqual, TokenName}},
		{"x&y|z", []TokenKind{TokenName, TokenBitAnd, TokenName, TokenBitOr, TokenName}},
		{"a-b", []TokenKind{TokenName, TokenMinus, TokenName}},
		{"a:b,c*d", []TokenKind{TokenName, TokenColon, TokenName, TokenComma, TokenName, TokenMultiply, TokenName}},
	}
	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			var kinds []TokenKind
			for _, info := range lexInfos(t, test.input) {
				kinds = append(kinds, info.Kind)
			}
			assert.Equal(t, append(test.kinds, TokenEOF), kinds)
		})
	}
}

func TestNextLongString(t *testing.T) {
	infos := lexInfos(t, "x = [==[\nhello ]] world]==] .. [[a]]")
	assert.Equal(t, []tokenInfo{
		{TokenName, "x", 1, 1},
		{TokenAssign, "=", 1, 3},
		{TokenString, "\nhello ]] world", 1, 5},
		{TokenConcat, "..", 2, 20},
		{TokenString, "a", 2, 23},
		{TokenEOF, "", 2, 28},
	}, infos)
}

func TestNextHint(t *testing.T) {
	l := newTestLexer("1. 2")
	token, err := l.Next()
	require.NoError(t, err)
	assert.Equal(t, Number{Integer: "1"}, token.Number)
	assert.Equal(t, &Hint{Message: hintMissingFraction, Line: 0, Column: 2}, l.LastHint())

	_, err = l.Next()
	require.NoError(t, err)
	assert.Nil(t, l.LastHint())
}

func TestNextUnrecognized(t *testing.T) {
	for _, input := range []string{"!", "a = $", "@x", "é"} {
		l := newTestLexer(input)
		var err error
		for err == nil {
			var token Token
			token, err = l.Next()
			require.False(t, err == nil && token.Kind == TokenEOF, input)
		}
		assert.ErrorIs(t, err, ErrUnrecognizedCharacter, input)
	}
}

func TestNextErrorIsSticky(t *testing.T) {
	l := newTestLexer("a ! b")
	token, err := l.Next()
	require.NoError(t, err)
	assert.Equal(t, "a", token.Text)

	_, err = l.Next()
	require.ErrorIs(t, err, ErrUnrecognizedCharacter)
	_, again := l.Next()
	assert.Equal(t, err, again)
	assert.Equal(t, err, l.Err())
}

func TestNextDiagnostics(t *testing.T) {
	buf := new(bytes.Buffer)
	l := NewLexer(NewSource("main.lua", "local x = 1\nlocal y = $"), Options{
		Diagnostics: buf,
	})
	var err error
	for err == nil {
		_, err = l.Next()
	}
	var posErr PosError
	require.True(t, errors.As(err, &posErr))
	assert.Equal(t, 2, posErr.Pos.Line)
	assert.Equal(t, 11, posErr.Pos.Column)
	assert.Equal(t,
		"error on line 2:\n"+
			"local y = $\n"+
			"          ^\n"+
			"unrecognised character '$' at main.lua:2:11\n",
		buf.String(),
	)
}

func TestNextStringErrorsPropagate(t *testing.T) {
	_, err := Tokenize(NewSource("", "x = 'abc"), Options{})
	assert.ErrorIs(t, err, ErrUnterminatedString)

	_, err = Tokenize(NewSource("", "--[[ never closed"), Options{})
	assert.ErrorIs(t, err, ErrUnclosedLongBracket)

	_, err = Tokenize(NewSource("", "x = [=x"), Options{})
	assert.ErrorIs(t, err, ErrMalformedLongBracket)
}

func TestAll(t *testing.T) {
	var texts []string
	for token, err := range newTestLexer("a b c").All() {
		require.NoError(t, err)
		texts = append(texts, token.Text)
	}
	assert.Equal(t, []string{"a", "b", "c"}, texts)

	var errs []error
	texts = texts[:0]
	for token, err := range newTestLexer("a ! b").All() {
		if err != nil {
			errs = append(errs, err)
			continue
		}
		texts = append(texts, token.Text)
	}
	assert.Equal(t, []string{"a"}, texts)
	require.Len(t, errs, 1)
	assert.ErrorIs(t, errs[0], ErrUnrecognizedCharacter)

	texts = texts[:0]
	for token := range newTestLexer("a b c").All() {
		texts = append(texts, token.Text)
		break
	}
	assert.Equal(t, []string{"a"}, texts)
}

func TestTokensAreComparable(t *testing.T) {
	a, err := Tokenize(NewSource("", "x = 0x1p4"), Options{})
	require.NoError(t, err)
	b, err := Tokenize(NewSource("", "x = 0x1p4"), Options{})
	require.NoError(t, err)
	require.Len(t, a, len(b))
	for i := range a {
		// different sources, same lexemes
		a[i].Pos.Source = nil
		b[i].Pos.Source = nil
		assert.True(t, a[i] == b[i])
	}
}
