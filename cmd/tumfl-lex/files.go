package main

import (
	"io"
	"os"
	"path/filepath"

	"github.com/reusee/tumfl/cmds"
	"github.com/reusee/tumfl/lexconfigs"
	"github.com/reusee/tumfl/lualex"
	"golang.org/x/term"
)

var files []string

func init() {
	cmds.Define("-file", cmds.Func(func(pattern string) {
		files = append(files, expandPattern(pattern)...)
	}).Desc("lex files matching the glob pattern"))
}

func expandPattern(pattern string) (ret []string) {
	paths, err := filepath.Glob(pattern)
	if err != nil || len(paths) == 0 {
		// let the open report it
		return []string{pattern}
	}
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			continue
		}
		if info.IsDir() {
			continue
		}
		ret = append(ret, path)
	}
	return
}

func readSources(paths []string, exclude lexconfigs.Exclude) (ret []*lualex.Source, err error) {
	for _, path := range paths {
		if exclude(path) {
			continue
		}
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, wrap(err)
		}
		ret = append(ret, lualex.NewSource(path, string(content)))
	}
	return
}

const stdinName = "stdin"

// readStdin returns nil when stdin is a terminal.
func readStdin() (*lualex.Source, error) {
	if term.IsTerminal(int(os.Stdin.Fd())) {
		return nil, nil
	}
	content, err := io.ReadAll(os.Stdin)
	if err != nil {
		return nil, wrap(err)
	}
	return lualex.NewSource(stdinName, string(content)), nil
}
