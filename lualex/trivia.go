package lualex

import "fmt"

func (l *Lexer) atShebang() bool {
	return l.line == 0 && l.column == 0 && l.current == '#' && l.peek() == '!'
}

func (l *Lexer) skipLine() {
	for l.current != eof && l.current != '\n' {
		l.advance()
	}
}

func (l *Lexer) skipWhitespace() {
	for isSpace(l.current) {
		l.advance()
	}
}

func (l *Lexer) atComment() bool {
	return l.current == '-' && l.peek() == '-'
}

// skipComment skips a short comment up to the newline, or a long comment
// including its closer.
func (l *Lexer) skipComment() error {
	if !l.atComment() {
		panic(fmt.Errorf("comment scan at %q", l.current))
	}
	l.advance()
	l.advance()
	if l.atLongBracket() {
		_, err := l.scanLongBracket()
		return err
	}
	l.skipLine()
	return nil
}

// skipTrivia skips the shebang line, whitespace and comments.
func (l *Lexer) skipTrivia() error {
	for {
		switch {
		case l.atShebang():
			l.skipLine()
		case isSpace(l.current):
			l.skipWhitespace()
		case l.atComment():
			if err := l.skipComment(); err != nil {
				return err
			}
		default:
			return nil
		}
	}
}
