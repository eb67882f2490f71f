package lualex

import (
	"unicode"
	"unicode/utf8"
)

const eof rune = -1

// newlineState tracks newline, text, trailing space sequences.
// It is updated on every advance and not read anywhere yet.
type newlineState uint8

const (
	newlineNone newlineState = iota
	newlineSeen
	newlineText
	newlineSpace
)

type cursor struct {
	source *Source
	text   string

	offset  int
	width   int
	line    int
	column  int
	current rune

	newline newlineState
}

func newCursor(source *Source) cursor {
	c := cursor{
		source: source,
		text:   source.Content,
	}
	c.decode()
	return c
}

func (c *cursor) decode() {
	if c.offset >= len(c.text) {
		c.current = eof
		c.width = 0
		return
	}
	c.current, c.width = utf8.DecodeRuneInString(c.text[c.offset:])
}

func (c *cursor) atEOF() bool {
	return c.current == eof
}

func (c *cursor) advance() {
	if c.current == eof {
		return
	}
	if c.current == '\n' {
		c.line++
		c.column = 0
	} else {
		c.column++
	}
	c.offset += c.width
	c.decode()
	if c.current == eof {
		return
	}

	switch {
	case c.current == '\n':
		c.newline = newlineSeen
	case unicode.IsSpace(c.current):
		if c.newline == newlineText {
			c.newline = newlineSpace
		}
	default:
		if c.newline == newlineSeen {
			c.newline = newlineText
		}
		if c.newline == newlineSpace {
			c.newline = newlineNone
		}
	}
}

func (c *cursor) peek() rune {
	next := c.offset + c.width
	if c.current == eof || next >= len(c.text) {
		return eof
	}
	r, _ := utf8.DecodeRuneInString(c.text[next:])
	return r
}

func (c *cursor) newlineState() newlineState {
	return c.newline
}

func (c *cursor) pos() Pos {
	return Pos{
		Source: c.source,
		Offset: c.offset,
		Line:   c.line + 1,
		Column: c.column + 1,
	}
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isHexDigit(r rune) bool {
	return isDigit(r) || r >= 'a' && r <= 'f' || r >= 'A' && r <= 'F'
}

func isLetter(r rune) bool {
	return r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r == '_'
}

func isAlphanumeric(r rune) bool {
	return isLetter(r) || isDigit(r)
}

func isSpace(r rune) bool {
	return r != eof && unicode.IsSpace(r)
}
