package lualex

// TokenStream is a token source with one token of lookahead.
type TokenStream interface {
	Current() (Token, error)
	Consume()
}

var _ TokenStream = new(Lexer)

func (l *Lexer) Current() (Token, error) {
	if l.lookahead == nil {
		token, err := l.next()
		if err != nil {
			return Token{}, err
		}
		l.lookahead = &token
		l.lookaheadHint = l.lastHint
	}
	return *l.lookahead, nil
}

func (l *Lexer) Consume() {
	l.lookahead = nil
}

type SliceTokenStream struct {
	tokens []Token
	idx    int
}

var _ TokenStream = new(SliceTokenStream)

func NewSliceTokenStream(tokens []Token) *SliceTokenStream {
	return &SliceTokenStream{
		tokens: tokens,
	}
}

func (s *SliceTokenStream) Current() (Token, error) {
	if s.idx >= len(s.tokens) {
		eof := Token{Kind: TokenEOF}
		if len(s.tokens) > 0 {
			eof.Pos = s.tokens[len(s.tokens)-1].Pos
		}
		return eof, nil
	}
	return s.tokens[s.idx], nil
}

func (s *SliceTokenStream) Consume() {
	if s.idx < len(s.tokens) {
		s.idx++
	}
}
