package debugs

import (
	"context"
	"maps"
	"slices"

	"github.com/reusee/tumfl/logs"
	"github.com/reusee/tumfl/lualex"
	"go.starlark.net/repl"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Tap opens a starlark REPL with globals converted to starlark values.
type Tap func(ctx context.Context, what string, globals map[string]any)

func (Module) Tap(
	logger logs.Logger,
) Tap {
	return func(ctx context.Context, what string, globals map[string]any) {
		logger.InfoContext(ctx, "tap: "+what,
			"globals", slices.Sorted(maps.Keys(globals)),
		)
		defer func() {
			logger.InfoContext(ctx, "tap end: "+what)
		}()

		thread := &starlark.Thread{
			Name: "tap",
		}
		repl.REPLOptions(fileOptions, thread, Globals(globals))
	}
}

var fileOptions = &syntax.FileOptions{
	Set:             true,
	While:           true,
	TopLevelControl: true,
}

func Globals(globals map[string]any) starlark.StringDict {
	ret := make(starlark.StringDict)
	for name, value := range globals {
		ret[name] = toStarlarkValue(value)
	}
	return ret
}

// TokenGlobals returns the tap globals for a lexed chunk.
func TokenGlobals(name string, tokens []lualex.Token) map[string]any {
	return map[string]any{
		"name":   name,
		"tokens": tokens,
		"count": func(kind string) int {
			n := 0
			for _, token := range tokens {
				if token.Kind.Name() == kind {
					n++
				}
			}
			return n
		},
	}
}
