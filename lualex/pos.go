package lualex

import "fmt"

// Pos is the position of the first character of a lexeme.
// Line and Column are 1-based, Column counts characters.
type Pos struct {
	Source *Source
	Offset int
	Line   int
	Column int
}

func (p Pos) String() string {
	if p.Source == nil || p.Source.Name == "" {
		return fmt.Sprintf("%d:%d", p.Line, p.Column)
	}
	return fmt.Sprintf("%s:%d:%d", p.Source.Name, p.Line, p.Column)
}
