package logs

import (
	"bytes"
	"strings"
	"testing"

	"github.com/reusee/dscope"
)

func TestLogger(t *testing.T) {
	buf := new(bytes.Buffer)
	dscope.New(new(Module)).Fork(
		func() Writer {
			return buf
		},
	).Call(func(
		logger Logger,
	) {
		logger.Info("lexed", "tokens", 42)
		logger.Debug("hidden")
	})
	if !strings.Contains(buf.String(), "tokens=42") {
		t.Fatalf("got %q", buf.String())
	}
	if !strings.Contains(buf.String(), "tool=tumfl") {
		t.Fatalf("got %q", buf.String())
	}
	if strings.Contains(buf.String(), "hidden") {
		t.Fatalf("got %q", buf.String())
	}
}

func TestLoggerTool(t *testing.T) {
	buf := new(bytes.Buffer)
	dscope.New(new(Module)).Fork(
		func() Writer {
			return buf
		},
		func() Tool {
			return "tumfl-lex"
		},
	).Call(func(
		logger Logger,
	) {
		logger.Info("start")
	})
	if !strings.Contains(buf.String(), "tool=tumfl-lex") {
		t.Fatalf("got %q", buf.String())
	}
}

func TestToJournalKey(t *testing.T) {
	if got := toJournalKey("lex.span-id"); got != "LEX_SPAN_ID" {
		t.Fatalf("got %s", got)
	}
}
