/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package syntax_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/propcheck/syntax"
)

func TestParse_Leaves(t *testing.T) {
	expr, err := syntax.Parse("<length>")
	require.NoError(t, err)
	assert.Equal(t, syntax.Data, expr.Type)
	assert.Equal(t, syntax.Length, expr.DataType)
	assert.Equal(t, syntax.NoMultiplier, expr.Multiplier.Type)

	expr, err = syntax.Parse("auto")
	require.NoError(t, err)
	assert.Equal(t, syntax.Keyword, expr.Type)
	assert.Equal(t, "auto", expr.Keyword)
}

func TestParse_Or(t *testing.T) {
	expr, err := syntax.Parse("<length> | <percentage> | auto")
	require.NoError(t, err)
	require.Equal(t, syntax.Combinator, expr.Type)
	assert.Equal(t, syntax.Or, expr.Combinator)
	require.Len(t, expr.SubExpressions, 3)
	assert.Equal(t, syntax.Percentage, expr.SubExpressions[1].DataType)
	assert.Equal(t, "auto", expr.SubExpressions[2].Keyword)
}

func TestParse_Precedence(t *testing.T) {
	// a b && c || d | e  ==  [ [ [ a b ] && c ] || d ] | e
	expr, err := syntax.Parse("a b && c || d | e")
	require.NoError(t, err)
	require.Equal(t, syntax.Or, expr.Combinator)
	require.Len(t, expr.SubExpressions, 2)

	orOr := expr.SubExpressions[0]
	require.Equal(t, syntax.OrOr, orOr.Combinator)
	andAnd := orOr.SubExpressions[0]
	require.Equal(t, syntax.AndAnd, andAnd.Combinator)
	jux := andAnd.SubExpressions[0]
	require.Equal(t, syntax.Juxtaposition, jux.Combinator)
	assert.Equal(t, "a", jux.SubExpressions[0].Keyword)
	assert.Equal(t, "b", jux.SubExpressions[1].Keyword)
}

func TestParse_Multipliers(t *testing.T) {
	tests := []struct {
		syntax   string
		min, max int
	}{
		{"<length>?", 0, 1},
		{"<length>*", 0, syntax.Unbounded},
		{"<length>+", 1, syntax.Unbounded},
		{"<length>{2}", 2, 2},
		{"<length>{1,4}", 1, 4},
		{"<length>{ 2 , }", 2, syntax.Unbounded},
	}
	for _, tt := range tests {
		t.Run(tt.syntax, func(t *testing.T) {
			expr, err := syntax.Parse(tt.syntax)
			require.NoError(t, err)
			assert.Equal(t, syntax.Combinator, expr.Type)
			assert.Equal(t, syntax.Group, expr.Combinator)
			assert.Equal(t, syntax.Range, expr.Multiplier.Type)
			assert.Equal(t, tt.min, expr.Multiplier.Min)
			assert.Equal(t, tt.max, expr.Multiplier.Max)
			require.Len(t, expr.SubExpressions, 1)
			assert.Equal(t, syntax.Length, expr.SubExpressions[0].DataType)
		})
	}
}

func TestParse_BracketGroup(t *testing.T) {
	expr, err := syntax.Parse("[ <length> | <percentage> ]{1,4}")
	require.NoError(t, err)
	require.Equal(t, syntax.Group, expr.Combinator)
	inner := expr.SubExpressions[0]
	assert.Equal(t, syntax.Or, inner.Combinator)
	assert.Len(t, inner.SubExpressions, 2)

	// Brackets without a multiplier only affect grouping.
	expr, err = syntax.Parse("[ a | b ] c")
	require.NoError(t, err)
	require.Equal(t, syntax.Juxtaposition, expr.Combinator)
	assert.Equal(t, syntax.Or, expr.SubExpressions[0].Combinator)
}

func TestParse_Comma(t *testing.T) {
	expr, err := syntax.Parse("a [ , a ]*")
	require.NoError(t, err)
	require.Equal(t, syntax.Juxtaposition, expr.Combinator)
	group := expr.SubExpressions[1]
	require.Equal(t, syntax.Group, group.Combinator)
	assert.Equal(t, ",", group.SubExpressions[0].SubExpressions[0].Keyword)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name   string
		syntax string
	}{
		{"empty", ""},
		{"blank", "   "},
		{"unknown data type", "<angle>"},
		{"unclosed bracket", "[ a | b"},
		{"stray close", "a ]"},
		{"dangling bar", "a |"},
		{"leading bar", "| a"},
		{"lone ampersand", "a & b"},
		{"comma multiplier", "<length>#"},
		{"reversed range", "<length>{4,1}"},
		{"zero range", "<length>{0}"},
		{"bad range", "<length>{a,b}"},
		{"unterminated range", "<length>{1,"},
		{"unterminated data", "<length"},
		{"garbage", "a $ b"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expr, err := syntax.Parse(tt.syntax)
			assert.Nil(t, expr)
			assert.True(t, errors.Is(err, syntax.ErrInvalidSyntax), "got %v", err)
		})
	}
}

func TestExpressionString(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"<length>", "<length>"},
		{"auto|<length>", "auto | <length>"},
		{"<length>{1,4}", "<length>{1,4}"},
		{"[<length>|<percentage>]{1,4}", "[ <length> | <percentage> ]{1,4}"},
		{"a b | c", "[ a b ] | c"},
		{"a && b?", "a && b?"},
		{"<number>+", "<number>+"},
		{"<number>{2,}", "<number>{2,}"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			expr, err := syntax.Parse(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, expr.String())

			// Rendered text parses back to the same rendering.
			again, err := syntax.Parse(expr.String())
			require.NoError(t, err)
			assert.Equal(t, tt.want, again.String())
		})
	}
}

func TestMustParse_Panics(t *testing.T) {
	assert.Panics(t, func() { syntax.MustParse("<nope>") })
	assert.NotPanics(t, func() { syntax.MustParse("<color>") })
}

func TestCache(t *testing.T) {
	var cache syntax.Cache

	first, err := cache.Get("<length> | auto")
	require.NoError(t, err)
	second, err := cache.Get("<length> | auto")
	require.NoError(t, err)
	assert.Same(t, first, second)

	_, err = cache.Get("<bogus>")
	assert.ErrorIs(t, err, syntax.ErrInvalidSyntax)
	_, err = cache.Get("<bogus>")
	assert.ErrorIs(t, err, syntax.ErrInvalidSyntax)

	assert.Equal(t, 2, cache.Len())
}

func TestCache_Concurrent(t *testing.T) {
	var cache syntax.Cache
	var wg sync.WaitGroup
	results := make([]*syntax.Expression, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], _ = cache.Get("<color>{1,4}")
		}(i)
	}
	wg.Wait()
	for _, r := range results {
		assert.Same(t, results[0], r)
	}
}
