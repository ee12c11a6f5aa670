/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package syntax provides the grammar model for property value syntaxes
// and a parser for the value definition notation used to declare them,
// e.g. "<length> | <percentage> | auto".
package syntax

import (
	"math"
	"strconv"
	"strings"
)

// ExpressionType discriminates the kind of an Expression node.
type ExpressionType int

const (
	// Combinator nodes combine their SubExpressions.
	Combinator ExpressionType = iota

	// Keyword nodes match a literal keyword, case-insensitively.
	Keyword

	// Data nodes match any token of a DataType.
	Data
)

// CombinatorType describes how a combinator's children must match.
type CombinatorType int

const (
	// Or matches exactly one of its children: a | b
	Or CombinatorType = iota

	// OrOr matches one or more children in any order, each at most once: a || b
	OrOr

	// AndAnd matches all children in any order: a && b
	AndAnd

	// Juxtaposition matches all children in declaration order: a b
	Juxtaposition

	// Group wraps exactly one child, scoping a multiplier: [ a ]
	Group
)

var combinatorNames = [...]string{
	Or:            "or",
	OrOr:          "or-or",
	AndAnd:        "and-and",
	Juxtaposition: "juxtaposition",
	Group:         "group",
}

// String returns the combinator's name.
func (c CombinatorType) String() string {
	if int(c) < len(combinatorNames) {
		return combinatorNames[c]
	}
	return "combinator(" + strconv.Itoa(int(c)) + ")"
}

// separator returns the text placed between children when rendering.
func (c CombinatorType) separator() string {
	switch c {
	case Or:
		return " | "
	case OrOr:
		return " || "
	case AndAnd:
		return " && "
	default:
		return " "
	}
}

// DataType is a semantic category a token can belong to.
type DataType int

const (
	Number DataType = iota
	Integer
	Length
	Percentage
	Color
	Resource
	URL
)

var dataTypeNames = [...]string{
	Number:     "number",
	Integer:    "integer",
	Length:     "length",
	Percentage: "percentage",
	Color:      "color",
	Resource:   "resource",
	URL:        "url",
}

// String returns the placeholder name of the data type, without brackets.
func (d DataType) String() string {
	if int(d) < len(dataTypeNames) {
		return dataTypeNames[d]
	}
	return "data(" + strconv.Itoa(int(d)) + ")"
}

// DataTypeFromString parses a placeholder name such as "length".
func DataTypeFromString(name string) (DataType, bool) {
	for i, n := range dataTypeNames {
		if n == name {
			return DataType(i), true
		}
	}
	return 0, false
}

// MultiplierType discriminates a Multiplier.
type MultiplierType int

const (
	// NoMultiplier means exactly one occurrence.
	NoMultiplier MultiplierType = iota

	// Range means between Min and Max occurrences, both inclusive.
	Range
)

// Unbounded is the Max of a multiplier with no upper limit, as in "+" or "*".
const Unbounded = math.MaxInt32

// Multiplier constrains how many times a node may repeat.
type Multiplier struct {
	Type MultiplierType
	Min  int
	Max  int
}

// String renders the multiplier in its shortest notation.
func (m Multiplier) String() string {
	if m.Type == NoMultiplier {
		return ""
	}
	switch {
	case m.Min == 0 && m.Max == 1:
		return "?"
	case m.Min == 0 && m.Max == Unbounded:
		return "*"
	case m.Min == 1 && m.Max == Unbounded:
		return "+"
	case m.Max == Unbounded:
		return "{" + strconv.Itoa(m.Min) + ",}"
	case m.Min == m.Max:
		return "{" + strconv.Itoa(m.Min) + "}"
	default:
		return "{" + strconv.Itoa(m.Min) + "," + strconv.Itoa(m.Max) + "}"
	}
}

// Expression is a node of a parsed syntax.
// Trees are immutable once parsed and safe to share between goroutines.
type Expression struct {
	Type ExpressionType

	// Combinator is set when Type is Combinator.
	Combinator CombinatorType

	// Keyword is set when Type is Keyword.
	Keyword string

	// DataType is set when Type is Data.
	DataType DataType

	Multiplier Multiplier

	// SubExpressions are the children of a combinator.
	// A Group has exactly one.
	SubExpressions []*Expression
}

// String renders the expression back to value definition notation.
func (e *Expression) String() string {
	var sb strings.Builder
	e.write(&sb, false)
	return sb.String()
}

func (e *Expression) write(sb *strings.Builder, nested bool) {
	switch e.Type {
	case Keyword:
		sb.WriteString(e.Keyword)
	case Data:
		sb.WriteString("<")
		sb.WriteString(e.DataType.String())
		sb.WriteString(">")
	case Combinator:
		if e.Combinator == Group {
			child := e.SubExpressions[0]
			if child.Type == Combinator && child.Combinator != Group {
				sb.WriteString("[ ")
				child.write(sb, false)
				sb.WriteString(" ]")
			} else {
				child.write(sb, true)
			}
			break
		}
		if nested {
			sb.WriteString("[ ")
		}
		for i, sub := range e.SubExpressions {
			if i > 0 {
				sb.WriteString(e.Combinator.separator())
			}
			sub.write(sb, sub.Type == Combinator && sub.Combinator != Group)
		}
		if nested {
			sb.WriteString(" ]")
		}
	}
	sb.WriteString(e.Multiplier.String())
}
