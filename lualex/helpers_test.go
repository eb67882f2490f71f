package lualex

import (
	"bytes"
	"log/slog"
)

func newTestLexer(text string) *Lexer {
	return NewLexer(NewSource("test.lua", text), Options{})
}

func newLoggedLexer(text string) (*Lexer, *bytes.Buffer) {
	buf := new(bytes.Buffer)
	return NewLexer(NewSource("test.lua", text), Options{
		Logger: slog.New(slog.NewTextHandler(buf, nil)),
	}), buf
}
