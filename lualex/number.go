package lualex

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Number is an unconverted numeral. Digits are lower case, an empty
// field is absent.
type Number struct {
	Hex         bool
	Integer     string
	Fraction    string
	Exponent    string
	HexExponent string
}

// Hint is an advisory note about a likely mistake. Line and Column are 0-based.
type Hint struct {
	Message string
	Line    int
	Column  int
}

const (
	hintMissingInteger  = "forgot an integer part of a number"
	hintMissingFraction = "forgot a fractional part after a dot"
)

func (l *Lexer) scanNumber() (ret Number, hint *Hint) {
	digit := isDigit

	if l.current == '0' && (l.peek() == 'x' || l.peek() == 'X') {
		ret.Hex = true
		digit = isHexDigit
		l.advance()
		l.advance()
	}

	ret.Integer = l.scanDigits(digit)
	if ret.Integer == "" {
		hint = l.hint(hintMissingInteger)
	}

	if l.current == '.' {
		l.advance()
		ret.Fraction = l.scanDigits(digit)
		if ret.Fraction == "" {
			hint = l.hint(hintMissingFraction)
		}
	}

	if ret.Hex && (l.current == 'p' || l.current == 'P') ||
		!ret.Hex && (l.current == 'e' || l.current == 'E') {
		l.advance()
		var sign string
		if l.current == '+' || l.current == '-' {
			sign = string(l.current)
			l.advance()
		}
		// exponents are decimal in both modes
		if digits := l.scanDigits(isDigit); digits != "" {
			if ret.Hex {
				ret.HexExponent = sign + digits
			} else {
				ret.Exponent = sign + digits
			}
		}
	}

	return
}

func (l *Lexer) scanDigits(digit func(rune) bool) string {
	start := l.offset
	for digit(l.current) {
		l.advance()
	}
	return strings.ToLower(l.text[start:l.offset])
}

func (l *Lexer) hint(message string) *Hint {
	return &Hint{
		Message: message,
		Line:    l.line,
		Column:  l.column,
	}
}

// IsInteger reports whether the numeral denotes a Lua integer.
func (n Number) IsInteger() bool {
	return n.Fraction == "" && n.Exponent == "" && n.HexExponent == "" && n.Integer != ""
}

// String reconstructs the numeral in canonical form.
func (n Number) String() string {
	var sb strings.Builder
	if n.Hex {
		sb.WriteString("0x")
	}
	sb.WriteString(n.Integer)
	if n.Fraction != "" {
		sb.WriteString(".")
		sb.WriteString(n.Fraction)
	}
	if n.Exponent != "" {
		sb.WriteString("e")
		sb.WriteString(n.Exponent)
	}
	if n.HexExponent != "" {
		sb.WriteString("p")
		sb.WriteString(n.HexExponent)
	}
	return sb.String()
}

// Int64 converts an integer numeral. Hex integers wrap around modulo 2^64,
// decimal integers that overflow are not integers.
func (n Number) Int64() (int64, bool) {
	if !n.IsInteger() {
		return 0, false
	}
	if n.Hex {
		var v uint64
		for _, r := range n.Integer {
			v = v<<4 | uint64(hexValue(r))
		}
		return int64(v), true
	}
	v, err := strconv.ParseInt(n.Integer, 10, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// Float64 converts the numeral to a float.
func (n Number) Float64() (float64, error) {
	if n.Integer == "" && n.Fraction == "" {
		return 0, fmt.Errorf("malformed number %q", n.String())
	}
	text := n.String()
	if n.Hex {
		text = n.hexFloatText()
	}
	v, err := strconv.ParseFloat(text, 64)
	if err != nil && math.IsInf(v, 0) {
		// overflow is infinity in Lua
		return v, nil
	}
	return v, err
}

func (n Number) hexFloatText() string {
	mantissa := n.Integer
	if mantissa == "" {
		mantissa = "0"
	}
	text := "0x" + mantissa
	if n.Fraction != "" {
		text += "." + n.Fraction
	}
	// strconv requires the binary exponent on hex floats
	exponent := n.HexExponent
	if exponent == "" {
		exponent = "0"
	}
	return text + "p" + exponent
}

func hexValue(r rune) int {
	switch {
	case r >= '0' && r <= '9':
		return int(r - '0')
	case r >= 'a' && r <= 'f':
		return int(r-'a') + 10
	case r >= 'A' && r <= 'F':
		return int(r-'A') + 10
	}
	return 0
}
