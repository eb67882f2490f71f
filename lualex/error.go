package lualex

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrMalformedLongBracket  = errors.New("malformed long bracket")
	ErrUnclosedLongBracket   = errors.New("long brackets never closed")
	ErrUnrecognizedCharacter = errors.New("unrecognised character")
	ErrUnterminatedString    = errors.New("unterminated string")
	ErrInvalidEscape         = errors.New("invalid escape sequence")
	ErrInvalidHexEscape      = errors.New("invalid hex digit")
	ErrDecimalEscapeRange    = errors.New("decimal escape out of range")
)

type PosError struct {
	Err error
	Pos Pos
}

func (p PosError) Error() string {
	if p.Pos.Source == nil {
		return p.Err.Error()
	}
	return fmt.Sprintf("%s at %s", p.Err.Error(), p.Pos)
}

// Report renders the error with the offending source line and a caret
// under the failing column.
func (p PosError) Report() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("error on line %d:\n", p.Pos.Line))
	if p.Pos.Source != nil {
		if line, ok := p.Pos.Source.Line(p.Pos.Line); ok {
			sb.WriteString(line)
			sb.WriteString("\n")
			sb.WriteString(caret(line, p.Pos.Column))
			sb.WriteString("\n")
		}
	}
	sb.WriteString(p.Error())
	sb.WriteString("\n")
	return sb.String()
}

func (p PosError) Unwrap() error {
	return p.Err
}

func WithPos(err error, pos Pos) error {
	if err == nil {
		return nil
	}
	var posErr PosError
	if errors.As(err, &posErr) {
		return err
	}
	return PosError{
		Err: err,
		Pos: pos,
	}
}

// caret returns the padding for column in line followed by '^'.
// Tabs are kept so the caret lines up in a terminal.
func caret(line string, column int) string {
	var sb strings.Builder
	col := column - 1
	i := 0
	for _, r := range line {
		if i >= col {
			break
		}
		if r == '\t' {
			sb.WriteString("\t")
		} else {
			for range runeWidth(r) {
				sb.WriteString(" ")
			}
		}
		i++
	}
	// past the end of the line, e.g. at a newline
	for ; i < col; i++ {
		sb.WriteString(" ")
	}
	sb.WriteString("^")
	return sb.String()
}

func runeWidth(r rune) int {
	if r == 0 {
		return 0
	}
	if r >= 0x1100 &&
		(r <= 0x115f || r == 0x2329 || r == 0x232a ||
			(r >= 0x2e80 && r <= 0xa4cf && r != 0x303f) ||
			(r >= 0xac00 && r <= 0xd7a3) ||
			(r >= 0xf900 && r <= 0xfaff) ||
			(r >= 0xfe10 && r <= 0xfe19) ||
			(r >= 0xfe30 && r <= 0xfe6f) ||
			(r >= 0xff00 && r <= 0xff60) ||
			(r >= 0xffe0 && r <= 0xffe6)) {
		return 2
	}
	return 1
}
