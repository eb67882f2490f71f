package lualex

import "strings"

// Source is a decoded Lua chunk and its lines, kept for diagnostics.
type Source struct {
	Name    string
	Content string
	Lines   []string
}

func NewSource(name string, content string) *Source {
	return &Source{
		Name:    name,
		Content: content,
		Lines:   strings.Split(content, "\n"),
	}
}

// Line returns the 1-based line n, or false if out of range.
func (s *Source) Line(n int) (string, bool) {
	idx := n - 1
	if idx < 0 || idx >= len(s.Lines) {
		return "", false
	}
	return s.Lines[idx], true
}
