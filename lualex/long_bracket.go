package lualex

import "fmt"

// scanLongBracket returns the verbatim content between [==[ and ]==].
// The cursor must be at '[' followed by '[' or '='.
func (l *Lexer) scanLongBracket() (string, error) {
	if l.current != '[' || (l.peek() != '[' && l.peek() != '=') {
		panic(fmt.Errorf("long bracket scan at %q", l.current))
	}
	openPos := l.pos()
	l.advance()

	level := 0
	for l.current == '=' {
		level++
		l.advance()
	}
	if l.current != '[' {
		return "", l.fail(ErrMalformedLongBracket, l.pos())
	}
	l.advance()

	start := l.offset
	// -1 when not in a closer, else the number of '=' after a ']'
	closing := -1
	for l.current != eof {
		if l.current == ']' && closing == level {
			end := l.offset - level - 1
			l.advance()
			return l.text[start:end], nil
		}
		switch {
		case l.current == '=' && closing >= 0:
			closing++
		case l.current == ']':
			closing = 0
		default:
			closing = -1
		}
		l.advance()
	}

	return "", l.fail(ErrUnclosedLongBracket, openPos)
}

func (l *Lexer) atLongBracket() bool {
	if l.current != '[' {
		return false
	}
	next := l.peek()
	return next == '[' || next == '='
}
