package main

import (
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/tumfl/logs"
	"github.com/reusee/tumfl/lualex"
	"github.com/reusee/tumfl/modes"
	"github.com/reusee/tumfl/syncs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLexResults(t *testing.T) {
	sources := []*lualex.Source{
		lualex.NewSource("a.lua", "return 1"),
		lualex.NewSource("b.lua", "x = [==[ open"),
		lualex.NewSource("c.lua", "local s = 'ok'"),
	}
	dscope.New(
		new(logs.Module),
		modes.ForTest(t),
	).Call(func(
		logger logs.Logger,
		newSpan logs.NewSpan,
	) {
		results := syncs.Map(syncs.NewSemaphore(2), sources, func(source *lualex.Source) result {
			return lexResult(t.Context(), logger, newSpan, source)
		})
		require.Len(t, results, 3)

		assert.NoError(t, results[0].err)
		assert.Equal(t, "a.lua", results[0].source.Name)
		assert.Len(t, results[0].tokens, 3)
		assert.Zero(t, results[0].diagnostics.Len())

		assert.ErrorIs(t, results[1].err, lualex.ErrUnclosedLongBracket)
		assert.Contains(t, results[1].diagnostics.String(), "error on line 1:")

		assert.NoError(t, results[2].err)
		assert.Equal(t, lualex.TokenString, results[2].tokens[3].Token.Kind)
		assert.Equal(t, "ok", results[2].tokens[3].Token.Text)
	})
}

func TestLexResultSpan(t *testing.T) {
	dscope.New(
		new(logs.Module),
		modes.ForTest(t),
	).Call(func(
		logger logs.Logger,
		newSpan logs.NewSpan,
	) {
		res := lexResult(t.Context(), logger, newSpan, lualex.NewSource("d.lua", "a = @"))
		require.ErrorIs(t, res.err, lualex.ErrUnrecognizedCharacter)
		assert.Contains(t, res.err.Error(), "span: ")
		assert.NotNil(t, res.ctx.Value(logs.SpanKey))
	})
}
