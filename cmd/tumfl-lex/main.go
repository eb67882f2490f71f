package main

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"github.com/reusee/dscope"
	"github.com/reusee/tumfl/cmds"
	"github.com/reusee/tumfl/debugs"
	"github.com/reusee/tumfl/lexconfigs"
	"github.com/reusee/tumfl/logs"
	"github.com/reusee/tumfl/lualex"
	"github.com/reusee/tumfl/modes"
	"github.com/reusee/tumfl/syncs"
	"github.com/samber/lo"
)

var tapFlag = cmds.Switch("-tap", "open a starlark repl on the tokens of each input")

func main() {
	cmds.Execute(os.Args[1:])
	ctx := context.Background()

	scope := dscope.New(
		new(Module),
		modes.ForProduction(),
	).Fork(
		func() logs.Tool {
			return "tumfl-lex"
		},
	)

	var failed bool
	scope.Call(func(
		logger logs.Logger,
		newSpan logs.NewSpan,
		format lexconfigs.OutputFormat,
		hints lexconfigs.ShowHints,
		exclude lexconfigs.Exclude,
		jobs lexconfigs.Jobs,
		tap debugs.Tap,
	) {
		if !format.Valid() {
			fmt.Fprintf(os.Stderr, "unknown format: %s\n\n", format)
			cmds.GlobalExecutor.PrintUsage()
			os.Exit(2)
		}

		sources, err := readSources(files, exclude)
		ce(err)
		if len(files) == 0 {
			source, err := readStdin()
			ce(err)
			if source == nil {
				cmds.GlobalExecutor.PrintUsage()
				os.Exit(2)
			}
			sources = append(sources, source)
		}

		write := writeText
		if format == lexconfigs.FormatJSON {
			write = writeJSON
		}

		results := syncs.Map(syncs.NewSemaphore(int(jobs)), sources, func(source *lualex.Source) result {
			return lexResult(ctx, logger, newSpan, source)
		})

		for _, res := range results {
			os.Stderr.Write(res.diagnostics.Bytes())
			if res.err != nil {
				failed = true
				continue
			}
			ce(write(os.Stdout, res.tokens, bool(hints)))
			if *tapFlag {
				tap(res.ctx, res.source.Name, debugs.TokenGlobals(
					res.source.Name,
					lo.Map(res.tokens, func(t lexed, _ int) lualex.Token {
						return t.Token
					}),
				))
			}
		}
	})

	if failed {
		os.Exit(1)
	}
}

type result struct {
	ctx         context.Context
	source      *lualex.Source
	tokens      []lexed
	diagnostics *bytes.Buffer
	err         error
}

func lexResult(
	ctx context.Context,
	logger logs.Logger,
	newSpan logs.NewSpan,
	source *lualex.Source,
) result {
	ctx, span := newSpan(ctx, source.Name)
	ret := result{
		ctx:         ctx,
		source:      source,
		diagnostics: new(bytes.Buffer),
	}
	tokens, err := lexSource(source, lualex.Options{
		Logger:      logger.With("span", span),
		Diagnostics: ret.diagnostics,
	})
	ret.tokens = tokens
	ret.err = logs.WrapSpan(ctx, err)
	if ret.err != nil {
		logger.InfoContext(ctx, "lex failed",
			"source", source.Name,
			"tokens", len(ret.tokens),
		)
	} else {
		logger.DebugContext(ctx, "lexed",
			"source", source.Name,
			"tokens", len(ret.tokens),
		)
	}
	return ret
}
