package logs

import (
	"io"
	"os"

	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
}

// Span identifies one lex request, usually one input file.
type Span string

type spanKey struct{}

var SpanKey = spanKey{}

// Writer receives the terminal log output.
type Writer io.Writer

func (Module) Writer() Writer {
	return os.Stderr
}
