/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package match

import (
	"math"
	"strings"

	"bennypowers.dev/propcheck/syntax"
	"bennypowers.dev/propcheck/value"
)

// zeroTolerance is how close to zero a unitless float must be to stand in
// for a length or percentage.
const zeroTolerance = 1e-6

// ResolvedClassifier classifies resolved value handles.
type ResolvedClassifier struct {
	// Colors resolves enum names to colors. A nil table accepts no names.
	Colors ColorTable
}

// NewResolvedMatcher returns a Matcher over resolved values.
func NewResolvedMatcher(colors ColorTable) *Matcher[value.Value] {
	return New[value.Value](ResolvedClassifier{Colors: colors})
}

// MatchData implements Classifier.
func (c ResolvedClassifier) MatchData(v value.Value, dt syntax.DataType) bool {
	switch dt {
	case syntax.Number, syntax.Integer:
		return v.Type == value.TypeFloat
	case syntax.Length:
		return isDimension(v, value.Pixel) || isZero(v)
	case syntax.Percentage:
		return isDimension(v, value.Percent) || isZero(v)
	case syntax.Color:
		if v.Type == value.TypeColor {
			return true
		}
		if v.Type == value.TypeEnum && c.Colors != nil {
			_, ok := c.Colors.NamedColor(v.Text)
			return ok
		}
		return false
	case syntax.Resource:
		return v.Type == value.TypeResourcePath
	case syntax.URL:
		return v.Type == value.TypeAssetReference
	}
	return false
}

func isDimension(v value.Value, unit value.Unit) bool {
	return v.Type == value.TypeDimension && v.Unit == unit
}

func isZero(v value.Value) bool {
	return v.Type == value.TypeFloat && math.Abs(v.Number) < zeroTolerance
}

// MatchKeyword implements Classifier.
func (ResolvedClassifier) MatchKeyword(v value.Value, keyword string) bool {
	if v.Type != value.TypeKeyword && v.Type != value.TypeEnum {
		return false
	}
	return strings.EqualFold(v.Text, keyword)
}

// IsVariable implements Classifier. Resolved values never hold variables;
// an unresolved variable is rejected before values are resolved.
func (ResolvedClassifier) IsVariable(value.Value) bool {
	return false
}

// IsGlobal implements Classifier.
func (ResolvedClassifier) IsGlobal(v value.Value) bool {
	return v.Type == value.TypeKeyword && strings.EqualFold(v.Text, "initial")
}
