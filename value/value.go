/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package value

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/mazznoer/csscolorparser"
)

// Sentinel errors for value resolution.
var (
	// ErrUnresolvedVariable indicates a var() reference reached resolution.
	ErrUnresolvedVariable = errors.New("unresolved variable reference")

	// ErrInvalidValue indicates a token could not be resolved to any value type.
	ErrInvalidValue = errors.New("invalid value")
)

// Type is the discriminant of a resolved Value.
type Type int

const (
	TypeFloat Type = iota
	TypeDimension
	TypeColor
	TypeResourcePath
	TypeAssetReference
	TypeEnum
	TypeKeyword
)

var typeNames = [...]string{
	TypeFloat:          "float",
	TypeDimension:      "dimension",
	TypeColor:          "color",
	TypeResourcePath:   "resource-path",
	TypeAssetReference: "asset-reference",
	TypeEnum:           "enum",
	TypeKeyword:        "keyword",
}

func (t Type) String() string {
	if int(t) < len(typeNames) {
		return typeNames[t]
	}
	return "type(" + strconv.Itoa(int(t)) + ")"
}

// Unit is the unit of a TypeDimension value.
type Unit int

const (
	Pixel Unit = iota
	Percent
	Second
	Millisecond
	Degree
)

var unitSuffixes = [...]string{
	Pixel:       "px",
	Percent:     "%",
	Second:      "s",
	Millisecond: "ms",
	Degree:      "deg",
}

func (u Unit) String() string {
	if int(u) < len(unitSuffixes) {
		return unitSuffixes[u]
	}
	return "unit(" + strconv.Itoa(int(u)) + ")"
}

// Value is a resolved property value handle.
type Value struct {
	Type Type

	// Number holds TypeFloat and TypeDimension magnitudes.
	Number float64

	// Unit is set for TypeDimension.
	Unit Unit

	// Color and Alpha are set for TypeColor.
	Color colorful.Color
	Alpha float64

	// Text holds the path of TypeResourcePath and TypeAssetReference,
	// and the name of TypeEnum and TypeKeyword.
	Text string
}

// Float returns a TypeFloat value.
func Float(n float64) Value {
	return Value{Type: TypeFloat, Number: n}
}

// Dimension returns a TypeDimension value.
func Dimension(n float64, unit Unit) Value {
	return Value{Type: TypeDimension, Number: n, Unit: unit}
}

// Enum returns a TypeEnum value.
func Enum(name string) Value {
	return Value{Type: TypeEnum, Text: name}
}

// Keyword returns a TypeKeyword value.
func Keyword(name string) Value {
	return Value{Type: TypeKeyword, Text: name}
}

// String renders the value in stylesheet notation.
func (v Value) String() string {
	switch v.Type {
	case TypeFloat:
		return strconv.FormatFloat(v.Number, 'g', -1, 64)
	case TypeDimension:
		return strconv.FormatFloat(v.Number, 'g', -1, 64) + v.Unit.String()
	case TypeColor:
		if v.Alpha < 1 {
			r, g, b := v.Color.RGB255()
			return fmt.Sprintf("rgba(%d, %d, %d, %g)", r, g, b, v.Alpha)
		}
		return v.Color.Hex()
	case TypeResourcePath:
		return "resource(" + strconv.Quote(v.Text) + ")"
	case TypeAssetReference:
		return "url(" + strconv.Quote(v.Text) + ")"
	default:
		return v.Text
	}
}

var (
	numericPattern    = regexp.MustCompile(`^([+-]?\d+(?:\.\d+)?)(px|%|ms|s|deg)?$`)
	identifierPattern = regexp.MustCompile(`^-?[a-zA-Z_][a-zA-Z0-9_-]*$`)
)

// keywords resolve to TypeKeyword; any other identifier is a TypeEnum.
var keywords = map[string]bool{
	"initial": true,
	"inherit": true,
	"unset":   true,
	"auto":    true,
	"none":    true,
}

var units = map[string]Unit{
	"px":  Pixel,
	"%":   Percent,
	"s":   Second,
	"ms":  Millisecond,
	"deg": Degree,
}

// Resolve tokenizes raw and compiles each token into a Value.
func Resolve(raw string) ([]Value, error) {
	tokens := Tokenize(raw)
	values := make([]Value, 0, len(tokens))
	for _, tok := range tokens {
		v, err := ResolveToken(tok)
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, nil
}

// ResolveToken compiles a single token produced by Tokenize.
func ResolveToken(tok string) (Value, error) {
	if tok == Comma {
		return Keyword(Comma), nil
	}

	lower := strings.ToLower(tok)
	switch {
	case strings.HasPrefix(lower, "var("):
		return Value{}, fmt.Errorf("%w: %s", ErrUnresolvedVariable, tok)
	case strings.HasPrefix(lower, "resource("):
		path, ok := functionArgument(tok, "resource")
		if isVariable(path) {
			return Value{}, fmt.Errorf("%w: %s", ErrUnresolvedVariable, tok)
		}
		if !ok {
			return Value{}, fmt.Errorf("%w: %s", ErrInvalidValue, tok)
		}
		return Value{Type: TypeResourcePath, Text: path}, nil
	case strings.HasPrefix(lower, "url("):
		path, ok := functionArgument(tok, "url")
		if isVariable(path) {
			return Value{}, fmt.Errorf("%w: %s", ErrUnresolvedVariable, tok)
		}
		if !ok {
			return Value{}, fmt.Errorf("%w: %s", ErrInvalidValue, tok)
		}
		return Value{Type: TypeAssetReference, Text: path}, nil
	}

	if m := numericPattern.FindStringSubmatch(tok); m != nil {
		n, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			return Value{}, fmt.Errorf("%w: %s", ErrInvalidValue, tok)
		}
		if m[2] == "" {
			return Float(n), nil
		}
		return Dimension(n, units[m[2]]), nil
	}

	if strings.HasPrefix(tok, "#") || strings.HasSuffix(tok, ")") {
		c, err := csscolorparser.Parse(tok)
		if err != nil {
			return Value{}, fmt.Errorf("%w: %s", ErrInvalidValue, tok)
		}
		return Value{
			Type:  TypeColor,
			Color: colorful.Color{R: c.R, G: c.G, B: c.B},
			Alpha: c.A,
		}, nil
	}

	if identifierPattern.MatchString(tok) {
		if keywords[lower] {
			return Keyword(lower), nil
		}
		return Enum(tok), nil
	}

	return Value{}, fmt.Errorf("%w: %s", ErrInvalidValue, tok)
}

func isVariable(arg string) bool {
	return strings.HasPrefix(strings.ToLower(arg), "var(")
}

// functionArgument returns the trimmed, unquoted argument of name(...).
func functionArgument(tok, name string) (string, bool) {
	if len(tok) < len(name)+2 || !strings.HasSuffix(tok, ")") {
		return "", false
	}
	arg := strings.TrimSpace(tok[len(name)+1 : len(tok)-1])
	if unquoted, err := strconv.Unquote(arg); err == nil {
		arg = unquoted
	} else if len(arg) >= 2 && arg[0] == '\'' && arg[len(arg)-1] == '\'' {
		arg = arg[1 : len(arg)-1]
	}
	return arg, arg != ""
}
