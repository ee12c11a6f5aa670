/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package match

import (
	"regexp"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"bennypowers.dev/propcheck/syntax"
)

// ColorTable looks up named colors such as "rebeccapurple".
type ColorTable interface {
	NamedColor(name string) (colorful.Color, bool)
}

// Patterns recognizing raw tokens.
var (
	numberPattern     = regexp.MustCompile(`^[+-]?\d+(\.\d+)?$`)
	integerPattern    = regexp.MustCompile(`^[+-]?\d+$`)
	lengthPattern     = regexp.MustCompile(`^[+-]?\d+(\.\d+)?px$`)
	percentagePattern = regexp.MustCompile(`^[+-]?\d+(\.\d+)?%$`)
	zeroPattern       = regexp.MustCompile(`^0(\.0+)?$`)
	hexColorPattern   = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)
	rgbPattern        = regexp.MustCompile(`^rgb\(\s*` + num + `\s*,\s*` + num + `\s*,\s*` + num + `\s*\)$`)
	rgbaPattern       = regexp.MustCompile(`^rgba\(\s*` + num + `\s*,\s*` + num + `\s*,\s*` + num + `\s*,\s*` + num + `\s*\)$`)
	resourcePattern   = regexp.MustCompile(`^resource\((.*)\)$`)
	urlPattern        = regexp.MustCompile(`^url\((.*)\)$`)
)

const num = `[+-]?\d+(?:\.\d+)?`

// IsNumber reports whether tok is a plain number such as "10" or "-1.5",
// without a unit or exponent.
func IsNumber(tok string) bool {
	return numberPattern.MatchString(tok)
}

// TextClassifier classifies raw string tokens as produced by value.Tokenize.
type TextClassifier struct {
	// Colors resolves color names. A nil table accepts no names.
	Colors ColorTable
}

// NewTextMatcher returns a Matcher over raw string tokens.
func NewTextMatcher(colors ColorTable) *Matcher[string] {
	return New[string](TextClassifier{Colors: colors})
}

// MatchData implements Classifier.
func (c TextClassifier) MatchData(tok string, dt syntax.DataType) bool {
	switch dt {
	case syntax.Number:
		return numberPattern.MatchString(tok)
	case syntax.Integer:
		return integerPattern.MatchString(tok)
	case syntax.Length:
		return lengthPattern.MatchString(tok) || zeroPattern.MatchString(tok)
	case syntax.Percentage:
		return percentagePattern.MatchString(tok) || zeroPattern.MatchString(tok)
	case syntax.Color:
		return c.isColor(tok)
	case syntax.Resource:
		return functionPathMatches(resourcePattern, tok)
	case syntax.URL:
		return functionPathMatches(urlPattern, tok)
	}
	return false
}

func (c TextClassifier) isColor(tok string) bool {
	if hexColorPattern.MatchString(tok) || rgbPattern.MatchString(tok) || rgbaPattern.MatchString(tok) {
		return true
	}
	if c.Colors == nil {
		return false
	}
	_, ok := c.Colors.NamedColor(tok)
	return ok
}

// functionPathMatches reports whether tok is a call of the pattern's
// function whose argument is a path rather than a nested var() call.
func functionPathMatches(pattern *regexp.Regexp, tok string) bool {
	m := pattern.FindStringSubmatch(tok)
	if m == nil {
		return false
	}
	path := strings.TrimSpace(m[1])
	return path != "" && !strings.HasPrefix(path, "var(")
}

// MatchKeyword implements Classifier.
func (TextClassifier) MatchKeyword(tok, keyword string) bool {
	return strings.EqualFold(tok, keyword)
}

// IsVariable implements Classifier.
func (TextClassifier) IsVariable(tok string) bool {
	return strings.HasPrefix(tok, "var(")
}

// IsGlobal implements Classifier. The "initial" keyword and env() calls
// are valid for every property.
func (TextClassifier) IsGlobal(tok string) bool {
	return strings.EqualFold(tok, "initial") || strings.HasPrefix(tok, "env(")
}
