package lualex

import (
	"fmt"
	"io"
	"iter"
	"log/slog"
)

type Options struct {
	// Logger receives warnings such as ignored escapes. nil means slog.Default().
	Logger *slog.Logger
	// Diagnostics receives a rendered report for every lex error.
	Diagnostics io.Writer
}

// Lexer turns a Source into tokens, one per Next call.
// A Lexer must not be used from multiple goroutines.
type Lexer struct {
	cursor
	logger      *slog.Logger
	diagnostics io.Writer

	lastHint      *Hint
	err           error
	lookahead     *Token
	lookaheadHint *Hint
}

func NewLexer(source *Source, options Options) *Lexer {
	logger := options.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Lexer{
		cursor:      newCursor(source),
		logger:      logger,
		diagnostics: options.Diagnostics,
	}
}

// LastHint returns the hint recorded while producing the last token.
func (l *Lexer) LastHint() *Hint {
	return l.lastHint
}

// Err returns the error that aborted the lex, if any.
func (l *Lexer) Err() error {
	return l.err
}

// Next returns the next token. After the end of input it keeps returning
// the same EOF token. After an error it keeps returning that error.
// A token buffered by Current is returned first.
func (l *Lexer) Next() (Token, error) {
	if l.lookahead != nil {
		token := *l.lookahead
		l.lookahead = nil
		l.lastHint = l.lookaheadHint
		return token, nil
	}
	return l.next()
}

func (l *Lexer) next() (Token, error) {
	l.lastHint = nil
	if l.err != nil {
		return Token{}, l.err
	}

	if err := l.skipTrivia(); err != nil {
		return Token{}, err
	}

	pos := l.pos()
	switch {

	case l.atEOF():
		return Token{
			Kind: TokenEOF,
			Pos:  pos,
		}, nil

	case isLetter(l.current):
		name := l.scanName()
		kind := TokenName
		if k, ok := keywords[name]; ok {
			kind = k
		}
		return Token{
			Kind: kind,
			Text: name,
			Pos:  pos,
		}, nil

	case isDigit(l.current):
		number, hint := l.scanNumber()
		l.lastHint = hint
		if hint != nil {
			l.logger.Debug("number hint",
				"message", hint.Message,
				"pos", pos.String(),
			)
		}
		return Token{
			Kind:   TokenNumber,
			Text:   l.text[pos.Offset:l.offset],
			Number: number,
			Pos:    pos,
		}, nil

	case l.current == '\'' || l.current == '"':
		str, err := l.scanString()
		if err != nil {
			return Token{}, err
		}
		return Token{
			Kind: TokenString,
			Text: str,
			Pos:  pos,
		}, nil

	case l.atLongBracket():
		str, err := l.scanLongBracket()
		if err != nil {
			return Token{}, err
		}
		return Token{
			Kind: TokenString,
			Text: str,
			Pos:  pos,
		}, nil

	}

	// longest symbol first
	for n := maxSymbolLen; n > 0; n-- {
		if l.offset+n > len(l.text) {
			continue
		}
		text := l.text[l.offset : l.offset+n]
		kind, ok := symbols[text]
		if !ok {
			continue
		}
		for range n {
			l.advance()
		}
		return Token{
			Kind: kind,
			Text: text,
			Pos:  pos,
		}, nil
	}

	return Token{}, l.fail(
		fmt.Errorf("%w %q", ErrUnrecognizedCharacter, l.current),
		pos,
	)
}

func (l *Lexer) scanName() string {
	if !isLetter(l.current) {
		panic(fmt.Errorf("name scan at %q", l.current))
	}
	start := l.offset
	for isAlphanumeric(l.current) {
		l.advance()
	}
	return l.text[start:l.offset]
}

func (l *Lexer) fail(err error, pos Pos) error {
	posErr := PosError{
		Err: err,
		Pos: pos,
	}
	if l.diagnostics != nil {
		_, _ = io.WriteString(l.diagnostics, posErr.Report())
	}
	l.logger.Debug("lex error",
		"error", err,
		"pos", pos.String(),
	)
	l.err = posErr
	return posErr
}

// All yields tokens up to, not including, EOF. An error is yielded once
// and ends the iteration.
func (l *Lexer) All() iter.Seq2[Token, error] {
	return func(yield func(Token, error) bool) {
		for {
			token, err := l.Next()
			if err != nil {
				yield(token, err)
				return
			}
			if token.Kind == TokenEOF {
				return
			}
			if !yield(token, nil) {
				return
			}
		}
	}
}

// Tokenize lexes the whole source. The returned tokens end with EOF.
func Tokenize(source *Source, options Options) ([]Token, error) {
	l := NewLexer(source, options)
	var tokens []Token
	for {
		token, err := l.Next()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, token)
		if token.Kind == TokenEOF {
			return tokens, nil
		}
	}
}
