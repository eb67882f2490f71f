package lualex

import (
	"fmt"
	"strings"
)

var escapeCodes = map[rune]byte{
	'a':  '\a',
	'b':  '\b',
	'f':  '\f',
	'n':  '\n',
	'\n': '\n',
	'r':  '\r',
	't':  '\t',
	'v':  '\v',
	'\\': '\\',
	'"':  '"',
	'\'': '\'',
}

// scanString decodes a quoted string. Escaped byte values are written as
// raw bytes, other characters keep their source encoding.
func (l *Lexer) scanString() (string, error) {
	if l.current != '\'' && l.current != '"' {
		panic(fmt.Errorf("string scan at %q", l.current))
	}
	closing := l.current
	l.advance()

	var sb strings.Builder
	escape := false
	for l.current != eof && (escape || l.current != closing) {

		if !escape {
			switch l.current {
			case '\\':
				escape = true
			case '\n':
				return "", l.fail(
					fmt.Errorf("%w: invalid end of string", ErrUnterminatedString),
					l.pos(),
				)
			default:
				sb.WriteString(l.text[l.offset : l.offset+l.width])
			}
			l.advance()
			continue
		}

		escape = false
		escapePos := l.pos()
		switch {

		case l.current == 'z':
			l.advance()
			l.skipWhitespace()

		case l.current == 'x':
			l.advance()
			value := 0
			for range 2 {
				if !isHexDigit(l.current) {
					return "", l.fail(ErrInvalidHexEscape, escapePos)
				}
				value = value<<4 | hexValue(l.current)
				l.advance()
			}
			sb.WriteByte(byte(value))

		case l.current == 'u':
			l.logger.Warn("ignoring unicode escape",
				"pos", escapePos.String(),
			)
			l.advance()

		case isDigit(l.current):
			value := 0
			for i := 0; i < 3 && isDigit(l.current); i++ {
				value = value*10 + int(l.current-'0')
				l.advance()
			}
			if value > 255 {
				return "", l.fail(
					fmt.Errorf("%w: invalid char with number %d", ErrDecimalEscapeRange, value),
					escapePos,
				)
			}
			sb.WriteByte(byte(value))

		default:
			b, ok := escapeCodes[l.current]
			if !ok {
				return "", l.fail(
					fmt.Errorf("%w: backslash before %q", ErrInvalidEscape, l.current),
					escapePos,
				)
			}
			sb.WriteByte(b)
			l.advance()

		}
	}

	if l.current != closing {
		return "", l.fail(
			fmt.Errorf("%w: did not close string", ErrUnterminatedString),
			l.pos(),
		)
	}
	l.advance()

	return sb.String(), nil
}
