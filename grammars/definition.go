package grammars

import (
	"io"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/reusee/tumfl/lualex"
)

// Definition exposes lualex as a participle lexer. Symbol names are the
// token kind names, e.g. Name, Number, String, LessEqual.
type Definition struct {
	Options lualex.Options
}

var _ lexer.Definition = Definition{}
var _ lexer.StringDefinition = Definition{}

func (d Definition) Symbols() map[string]lexer.TokenType {
	ret := make(map[string]lexer.TokenType)
	for _, kind := range lualex.AllKinds() {
		ret[kind.Name()] = TokenType(kind)
	}
	return ret
}

func (d Definition) Lex(filename string, r io.Reader) (lexer.Lexer, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return d.LexString(filename, string(content))
}

func (d Definition) LexString(filename string, input string) (lexer.Lexer, error) {
	return &adapter{
		lexer: lualex.NewLexer(lualex.NewSource(filename, input), d.Options),
	}, nil
}

func TokenType(kind lualex.TokenKind) lexer.TokenType {
	if kind == lualex.TokenEOF {
		return lexer.EOF
	}
	return lexer.TokenType(kind)
}

type adapter struct {
	lexer *lualex.Lexer
}

func (a *adapter) Next() (lexer.Token, error) {
	token, err := a.lexer.Next()
	if err != nil {
		return lexer.Token{}, err
	}
	return Convert(token), nil
}

// Convert maps a lualex token to a participle token. Strings carry their
// decoded content, numbers their source text.
func Convert(token lualex.Token) lexer.Token {
	var filename string
	if token.Pos.Source != nil {
		filename = token.Pos.Source.Name
	}
	return lexer.Token{
		Type:  TokenType(token.Kind),
		Value: token.Text,
		Pos: lexer.Position{
			Filename: filename,
			Offset:   token.Pos.Offset,
			Line:     token.Pos.Line,
			Column:   token.Pos.Column,
		},
	}
}

// Build builds a participle parser for grammar G over Lua tokens.
func Build[G any](options ...participle.Option) (*participle.Parser[G], error) {
	return participle.Build[G](
		append([]participle.Option{
			participle.Lexer(Definition{}),
		}, options...)...,
	)
}
