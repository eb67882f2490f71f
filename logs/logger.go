package logs

import (
	"context"
	"log/slog"
	"os"
	"path"
	"strings"
	"time"

	"github.com/reusee/tumfl/cmds"
	slogmulti "github.com/samber/slog-multi"
	slogjournal "github.com/systemd/slog-journal"
)

var level = new(slog.LevelVar)

func init() {
	cmds.Define("-log-debug", cmds.Func(func() {
		level.Set(slog.LevelDebug)
	}).Desc("set log level to debug"))
	cmds.Define("-log-info", cmds.Func(func() {
		level.Set(slog.LevelInfo)
	}).Desc("set log level to info"))
	cmds.Define("-log-warn", cmds.Func(func() {
		level.Set(slog.LevelWarn)
	}).Desc("set log level to warn"))
	cmds.Define("-log-error", cmds.Func(func() {
		level.Set(slog.LevelError)
	}).Desc("set log level to error"))
}

type Logger = *slog.Logger

// Tool names the program in every record.
type Tool string

func (Module) Tool() Tool {
	return "tumfl"
}

func (Module) Logger(
	writer Writer,
	tool Tool,
) Logger {
	var handlers []slog.Handler

	terminal := terminalHandler(writer)
	if terminal != nil {
		handlers = append(handlers, terminal)
	}

	journal, err := journalHandler()
	if err != nil {
		if terminal != nil {
			record := slog.NewRecord(time.Now(), slog.LevelDebug, "no systemd journal", 0)
			record.Add("error", err)
			_ = terminal.Handle(context.Background(), record)
		}
	} else {
		handlers = append(handlers, journal)
	}

	return slog.New(&Handler{
		Handler: slogmulti.Fanout(handlers...),
	}).With("tool", string(tool))
}

// terminalHandler returns nil when running as a systemd service, where the
// journal receives the records instead.
func terminalHandler(writer Writer) slog.Handler {
	if cgroupPath, err := getCgroupPath(); err == nil &&
		strings.HasSuffix(path.Dir(cgroupPath), ".service") {
		return nil
	}
	return slog.NewTextHandler(writer, &slog.HandlerOptions{
		Level: level,
	})
}

func journalHandler() (slog.Handler, error) {
	return slogjournal.NewHandler(&slogjournal.Options{
		ReplaceGroup: toJournalKey,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			a.Key = toJournalKey(a.Key)
			return a
		},
	})
}

// toJournalKey maps an attribute key to a journal field name.
func toJournalKey(str string) string {
	str = strings.ToUpper(str)
	str = strings.Map(func(r rune) rune {
		if r >= 'A' && r <= 'Z' ||
			r >= '0' && r <= '9' {
			return r
		}
		return '_'
	}, str)
	return str
}

func getCgroupPath() (string, error) {
	content, err := os.ReadFile("/proc/self/cgroup")
	if err != nil {
		return "", err
	}
	parts := strings.Split(strings.TrimSpace(string(content)), ":")
	if len(parts) >= 3 {
		return parts[2], nil
	}
	return "", nil
}
