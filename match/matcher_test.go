/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package match_test

import (
	"strings"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/propcheck/match"
	"bennypowers.dev/propcheck/syntax"
	"bennypowers.dev/propcheck/value"
)

type colorTable map[string]colorful.Color

func (t colorTable) NamedColor(name string) (colorful.Color, bool) {
	c, ok := t[strings.ToLower(name)]
	return c, ok
}

var testColors = colorTable{
	"red":  {R: 1},
	"blue": {B: 1},
}

func validateText(t *testing.T, grammar, input string) match.Result[string] {
	t.Helper()
	expr := syntax.MustParse(grammar)
	return match.NewTextMatcher(testColors).Validate(expr, value.Tokenize(input))
}

func TestValidate_Text(t *testing.T) {
	tests := []struct {
		name    string
		grammar string
		input   string
		code    match.Code
		token   string
	}{
		{"length", "<length> | <percentage>", "10px", match.OK, ""},
		{"percentage", "<length> | <percentage>", "50%", match.OK, ""},
		{"missing unit", "<length> | <percentage>", "10", match.Syntax, "10"},
		{"unitless zero length", "<length>", "0", match.OK, ""},
		{"unitless zero decimal", "<percentage>", "0.00", match.OK, ""},
		{"hex color", "<color>", "#ff00ff", match.OK, ""},
		{"short hex color", "<color>", "#f0f", match.OK, ""},
		{"bad hex color", "<color>", "#ff00f", match.Syntax, "#ff00f"},
		{"rgb color", "<color>", "rgb(255, 0, 10)", match.OK, ""},
		{"rgba color", "<color>", "rgba(255, 0, 10, 0.5)", match.OK, ""},
		{"rgba with three components", "<color>", "rgba(255, 0, 10)", match.Syntax, "rgba(255, 0, 10)"},
		{"named color", "<color>", "Red", match.OK, ""},
		{"unknown color", "<color>", "notacolor", match.Syntax, "notacolor"},
		{"keyword", "auto | <length>", "AUTO", match.OK, ""},
		{"trailing token", "auto | <length>", "auto extra", match.ExpectedEndOfValue, "extra"},
		{"integer", "<integer>", "-3", match.OK, ""},
		{"integer rejects decimal", "<integer>", "3.5", match.Syntax, "3.5"},
		{"number", "<number>", "+3.5", match.OK, ""},
		{"resource", "<resource>", `resource("Images/bg")`, match.OK, ""},
		{"resource with var path", "<resource>", "resource(var(--path))", match.Syntax, "resource(var(--path))"},
		{"url", "<url>", "url('a.png')", match.OK, ""},
		{"url with var path", "<url>", "url( var(--a) )", match.Syntax, "url( var(--a) )"},
		{"range full", "<length>{1,4}", "1px 2px 3px 4px", match.OK, ""},
		{"range exceeded", "<length>{1,4}", "1px 2px 3px 4px 5px", match.ExpectedEndOfValue, "5px"},
		{"range below min", "<length>{2,3}", "1px", match.Syntax, "1px"},
		{"optional present", "<length> <color>?", "1px red", match.OK, ""},
		{"optional absent", "<length> <color>?", "1px", match.OK, ""},
		{"juxtaposition in order", "<length> <color>", "10px red", match.OK, ""},
		{"juxtaposition out of order", "<length> <color>", "red 10px", match.Syntax, "red"},
		{"juxtaposition missing tail", "<length> <color>", "10px", match.Syntax, "10px"},
		{"or-or first order", "<length> || <color>", "10px red", match.OK, ""},
		{"or-or second order", "<length> || <color>", "red 10px", match.OK, ""},
		{"or-or one", "<length> || <color>", "red", match.OK, ""},
		{"and-and both orders", "<length> && <color>", "red 10px", match.OK, ""},
		{"and-and missing one", "<length> && <color>", "10px", match.Syntax, "10px"},
		{"and-and with optional", "<length>{2,3} && <color>?", "1px 2px", match.OK, ""},
		{"or takes first alternative", "a | [ a b ]", "a b", match.ExpectedEndOfValue, "b"},
		{"comma list", "<length> [ , <length> ]*", "1px, 2px,3px", match.OK, ""},
		{"dangling comma", "<length> [ , <length> ]*", "1px,", match.ExpectedEndOfValue, ","},
		{"empty repetition terminates", "[ a? ]*", "b", match.ExpectedEndOfValue, "b"},
		{"empty repetition fills min", "[ a? ]{2} b", "b", match.OK, ""},
		{"empty data repetition fills min", "[ <length>? ]{2,3} auto", "auto", match.OK, ""},
		{"partial repetition fills min", "[ a? ]{3} b", "a b", match.OK, ""},
		{"initial accepted", "<color>", "initial", match.OK, ""},
		{"initial then extra", "<color>", "initial red", match.ExpectedEndOfValue, "red"},
		{"env accepted", "<length>", "env(safe-area-inset-top)", match.OK, ""},
		{"unbalanced function", "<color>", "rgb(1, 2", match.Syntax, "rgb(1, 2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := validateText(t, tt.grammar, tt.input)
			assert.Equal(t, tt.code, res.Code, "code")
			if tt.token == "" {
				assert.False(t, res.HasToken(), "unexpected offending token %q", res.Token)
				return
			}
			require.True(t, res.HasToken(), "expected offending token %q", tt.token)
			assert.Equal(t, tt.token, res.Token)
		})
	}
}

func TestValidate_Empty(t *testing.T) {
	m := match.NewTextMatcher(testColors)
	res := m.Validate(syntax.MustParse("<length>"), nil)
	assert.Equal(t, match.EmptyValue, res.Code)
	assert.False(t, res.HasToken())
}

func TestValidate_OffendingIndex(t *testing.T) {
	res := validateText(t, "<length> <length>", "1px red")
	require.Equal(t, match.Syntax, res.Code)
	// The juxtaposition rewinds to where it started.
	assert.Equal(t, 0, res.Index)
	assert.Equal(t, "1px", res.Token)

	res = validateText(t, "<length>{1,4}", "1px 2px 3px 4px 5px")
	assert.Equal(t, 4, res.Index)
}

func TestValidate_LoneVariable(t *testing.T) {
	grammars := []string{
		"<length> | <percentage>",
		"<color>",
		"auto | <length>",
		"<length>{1,4}",
		"<length>{2,3}",
		"a b c",
		"<length> && <color>",
		"<length> || <color>",
		"[ <length> <color> ]+",
		"none | [ <number> <number>? ] || [ <length> | <percentage> | auto ]",
	}
	m := match.NewTextMatcher(testColors)
	for _, g := range grammars {
		t.Run(g, func(t *testing.T) {
			res := m.Validate(syntax.MustParse(g), []string{"var(--x)"})
			assert.Equal(t, match.OK, res.Code)
			assert.Equal(t, 1, res.VariableMatches)
		})
	}
}

func TestValidate_VariableLeniency(t *testing.T) {
	tests := []struct {
		name    string
		grammar string
		input   string
		code    match.Code
		vars    int
	}{
		{"variable fills a leaf", "<length> <color>", "var(--w) red", match.OK, 1},
		{"trailing variable covers the rest", "<length> <length> <color>", "1px var(--rest)", match.OK, 1},
		{"and-and completed by variable", "<length> && <color> && auto", "red var(--x)", match.OK, 1},
		{"range completed by variable", "<length>{3}", "1px var(--x)", match.OK, 1},
		{"variable does not excuse a mismatch", "<length> <color>", "var(--w) 10px", match.Syntax, 0},
		{"two variables", "<length> <color>", "var(--w) var(--c)", match.OK, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := validateText(t, tt.grammar, tt.input)
			assert.Equal(t, tt.code, res.Code)
			assert.Equal(t, tt.vars, res.VariableMatches)
		})
	}
}

func TestValidate_ReuseIsIdempotent(t *testing.T) {
	m := match.NewTextMatcher(testColors)
	exprA := syntax.MustParse("<length> | auto")
	exprB := syntax.MustParse("<color>")

	first := m.Validate(exprA, []string{"var(--a)"})
	_ = m.Validate(exprB, []string{"nope", "more"})
	second := m.Validate(exprA, []string{"var(--a)"})
	assert.Equal(t, first, second)

	// A variable matched in one call must not leak into the next.
	res := m.Validate(syntax.MustParse("<length> <length>"), []string{"1px"})
	assert.Equal(t, match.Syntax, res.Code)
	assert.Zero(t, res.VariableMatches)
}

func TestValidate_Resolved(t *testing.T) {
	px := value.Dimension(10, value.Pixel)
	pct := value.Dimension(50, value.Percent)
	tests := []struct {
		name    string
		grammar string
		values  []value.Value
		code    match.Code
	}{
		{"length", "<length> | <percentage>", []value.Value{px}, match.OK},
		{"percentage", "<length> | <percentage>", []value.Value{pct}, match.OK},
		{"unitless number", "<length> | <percentage>", []value.Value{value.Float(10)}, match.Syntax},
		{"unitless zero", "<length>", []value.Value{value.Float(0)}, match.OK},
		{"number", "<number>", []value.Value{value.Float(1.5)}, match.OK},
		{"integer", "<integer>", []value.Value{value.Float(2)}, match.OK},
		{"dimension is not a number", "<number>", []value.Value{px}, match.Syntax},
		{"color", "<color>", []value.Value{{Type: value.TypeColor, Color: colorful.Color{R: 1}, Alpha: 1}}, match.OK},
		{"named color enum", "<color>", []value.Value{value.Enum("blue")}, match.OK},
		{"unknown enum color", "<color>", []value.Value{value.Enum("notacolor")}, match.Syntax},
		{"resource", "<resource>", []value.Value{{Type: value.TypeResourcePath, Text: "a"}}, match.OK},
		{"url", "<url>", []value.Value{{Type: value.TypeAssetReference, Text: "a"}}, match.OK},
		{"resource is not url", "<url>", []value.Value{{Type: value.TypeResourcePath, Text: "a"}}, match.Syntax},
		{"keyword", "auto | <length>", []value.Value{value.Keyword("auto")}, match.OK},
		{"enum keyword", "row | column", []value.Value{value.Enum("Column")}, match.OK},
		{"initial", "<color>", []value.Value{value.Keyword("initial")}, match.OK},
		{"trailing", "auto | <length>", []value.Value{value.Keyword("auto"), value.Enum("extra")}, match.ExpectedEndOfValue},
		{"range", "<length>{1,4}", []value.Value{px, px, px, px}, match.OK},
		{"empty", "<length>", nil, match.EmptyValue},
	}
	m := match.NewResolvedMatcher(testColors)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := m.Validate(syntax.MustParse(tt.grammar), tt.values)
			assert.Equal(t, tt.code, res.Code)
			assert.Zero(t, res.VariableMatches)
		})
	}
}

func TestBackendsAgree(t *testing.T) {
	grammars := []string{
		"<length> | <percentage> | auto",
		"<color>",
		"<length>{1,4}",
		"<number> <number>? || [ <length> | auto ]",
		"flex-start | flex-end | center",
	}
	inputs := []string{"10px", "0", "50%", "auto", "#ff0000", "red", "1px 2px", "1 2 auto", "center", "1px 2px 3px 4px 5px", "12"}

	text := match.NewTextMatcher(testColors)
	resolved := match.NewResolvedMatcher(testColors)
	for _, g := range grammars {
		expr := syntax.MustParse(g)
		for _, in := range inputs {
			values, err := value.Resolve(in)
			require.NoError(t, err, in)
			a := text.Validate(expr, value.Tokenize(in))
			b := resolved.Validate(expr, values)
			assert.Equal(t, a.Code, b.Code, "%q against %q", in, g)
			assert.Equal(t, a.Index, b.Index, "%q against %q", in, g)
		}
	}
}

func TestCodeString(t *testing.T) {
	assert.Equal(t, "ok", match.OK.String())
	assert.Equal(t, "syntax", match.Syntax.String())
	assert.Equal(t, "empty-value", match.EmptyValue.String())
	assert.Equal(t, "expected-end-of-value", match.ExpectedEndOfValue.String())
	assert.Equal(t, "code(9)", match.Code(9).String())
}
