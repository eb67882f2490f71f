package main

import (
	"encoding/json"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/reusee/tumfl/lualex"
	"github.com/samber/lo"
)

type lexed struct {
	Token lualex.Token
	Hint  *lualex.Hint
}

func lexSource(source *lualex.Source, options lualex.Options) (ret []lexed, err error) {
	l := lualex.NewLexer(source, options)
	for {
		token, err := l.Next()
		if err != nil {
			return ret, err
		}
		ret = append(ret, lexed{
			Token: token,
			Hint:  l.LastHint(),
		})
		if token.Kind == lualex.TokenEOF {
			return ret, nil
		}
	}
}

func writeText(w io.Writer, tokens []lexed, hints bool) error {
	for _, t := range tokens {
		text := t.Token.Text
		if t.Token.Kind == lualex.TokenNumber {
			text = t.Token.Number.String()
		}
		if _, err := fmt.Fprintf(w, "%d:%d\t%s\t%q", t.Token.Pos.Line, t.Token.Pos.Column, t.Token.Kind.Name(), text); err != nil {
			return wrap(err)
		}
		if hints && t.Hint != nil {
			if _, err := fmt.Fprintf(w, "\thint: %s at %d:%d", t.Hint.Message, t.Hint.Line+1, t.Hint.Column+1); err != nil {
				return wrap(err)
			}
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return wrap(err)
		}
	}
	return nil
}

type jsonNumber struct {
	Hex         bool   `json:"hex,omitempty"`
	Integer     string `json:"integer,omitempty"`
	Fraction    string `json:"fraction,omitempty"`
	Exponent    string `json:"exponent,omitempty"`
	HexExponent string `json:"hex_exponent,omitempty"`
}

// jsonHint positions are 1-based like token positions.
type jsonHint struct {
	Message string `json:"message"`
	Line    int    `json:"line"`
	Column  int    `json:"column"`
}

type jsonToken struct {
	Source string      `json:"source"`
	Kind   string      `json:"kind"`
	Text   string      `json:"text,omitempty"`
	Bytes  []byte      `json:"bytes,omitempty"`
	Number *jsonNumber `json:"number,omitempty"`
	Line   int         `json:"line"`
	Column int         `json:"column"`
	Offset int         `json:"offset"`
	Hint   *jsonHint   `json:"hint,omitempty"`
}

func toJSONToken(t lexed, hints bool) jsonToken {
	ret := jsonToken{
		Kind:   t.Token.Kind.Name(),
		Text:   t.Token.Text,
		Line:   t.Token.Pos.Line,
		Column: t.Token.Pos.Column,
		Offset: t.Token.Pos.Offset,
	}
	if !utf8.ValidString(t.Token.Text) {
		// json replaces invalid utf-8 with U+FFFD, keep the exact bytes too
		ret.Bytes = []byte(t.Token.Text)
	}
	if t.Token.Pos.Source != nil {
		ret.Source = t.Token.Pos.Source.Name
	}
	if t.Token.Kind == lualex.TokenNumber {
		n := jsonNumber(t.Token.Number)
		ret.Number = &n
	}
	if hints && t.Hint != nil {
		ret.Hint = &jsonHint{
			Message: t.Hint.Message,
			Line:    t.Hint.Line + 1,
			Column:  t.Hint.Column + 1,
		}
	}
	return ret
}

// writeJSON writes one object per line.
func writeJSON(w io.Writer, tokens []lexed, hints bool) error {
	encoder := json.NewEncoder(w)
	for _, t := range lo.Map(tokens, func(t lexed, _ int) jsonToken {
		return toJSONToken(t, hints)
	}) {
		if err := encoder.Encode(t); err != nil {
			return wrap(err)
		}
	}
	return nil
}
