/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package match checks token sequences against parsed property syntaxes.
//
// The backtracking algorithm is written once in Matcher and works over any
// token representation through a Classifier. Two classifiers are provided:
// TextClassifier for raw string tokens and ResolvedClassifier for
// resolved value handles.
package match

import (
	"fmt"

	"bennypowers.dev/propcheck/syntax"
)

// Classifier tells the Matcher how to test tokens of type T.
type Classifier[T any] interface {
	// MatchData reports whether tok belongs to the data type.
	MatchData(tok T, dt syntax.DataType) bool

	// MatchKeyword reports whether tok is the keyword, ignoring case.
	MatchKeyword(tok T, keyword string) bool

	// IsVariable reports whether tok is a variable reference whose value
	// is unknown until it is substituted.
	IsVariable(tok T) bool

	// IsGlobal reports whether tok is accepted by every syntax,
	// such as the "initial" keyword.
	IsGlobal(tok T) bool
}

// Code is the outcome of a match.
type Code int

const (
	// OK means the tokens satisfy the syntax.
	OK Code = iota

	// Syntax means the tokens could not satisfy the syntax.
	Syntax

	// EmptyValue means there were no tokens.
	EmptyValue

	// ExpectedEndOfValue means a prefix of the tokens satisfied the syntax
	// but tokens were left over.
	ExpectedEndOfValue
)

var codeNames = [...]string{
	OK:                 "ok",
	Syntax:             "syntax",
	EmptyValue:         "empty-value",
	ExpectedEndOfValue: "expected-end-of-value",
}

func (c Code) String() string {
	if int(c) < len(codeNames) {
		return codeNames[c]
	}
	return fmt.Sprintf("code(%d)", int(c))
}

// Result describes the outcome of Matcher.Validate.
type Result[T any] struct {
	Code Code

	// Index is the position of the offending token, or -1 when there is none.
	Index int

	// Token is the offending token when Index >= 0.
	Token T

	// VariableMatches counts tokens accepted because they were variable references.
	VariableMatches int
}

// OK reports whether the match succeeded.
func (r Result[T]) OK() bool {
	return r.Code == OK
}

// HasToken reports whether the result carries an offending token.
func (r Result[T]) HasToken() bool {
	return r.Index >= 0
}

// context is the cursor state saved and restored around combinators.
type context struct {
	index     int
	variables int
}

// Matcher runs the matching algorithm. A Matcher keeps per-call state
// and must not be used by more than one goroutine at a time; Validate
// resets that state, so a Matcher can be reused for unrelated values.
type Matcher[T any] struct {
	classifier Classifier[T]
	tokens     []T
	current    context
	marks      []context
}

// New returns a Matcher that classifies tokens with c.
func New[T any](c Classifier[T]) *Matcher[T] {
	return &Matcher[T]{classifier: c}
}

// Validate matches the whole token sequence against expr.
func (m *Matcher[T]) Validate(expr *syntax.Expression, tokens []T) Result[T] {
	m.reset(tokens)
	defer m.reset(nil)

	if len(tokens) == 0 {
		return Result[T]{Code: EmptyValue, Index: -1}
	}

	if m.classifier.IsGlobal(tokens[0]) {
		m.moveNext()
	} else if !m.match(expr) {
		return m.result(Syntax)
	}

	if m.hasCurrent() {
		return m.result(ExpectedEndOfValue)
	}

	return Result[T]{Code: OK, Index: -1, VariableMatches: m.current.variables}
}

func (m *Matcher[T]) reset(tokens []T) {
	m.tokens = tokens
	m.current = context{}
	m.marks = m.marks[:0]
}

func (m *Matcher[T]) result(code Code) Result[T] {
	r := Result[T]{Code: code, Index: -1, VariableMatches: m.current.variables}
	if m.hasCurrent() {
		r.Index = m.current.index
		r.Token = m.tokens[m.current.index]
	}
	return r
}

func (m *Matcher[T]) hasCurrent() bool {
	return m.current.index < len(m.tokens)
}

func (m *Matcher[T]) currentToken() T {
	return m.tokens[m.current.index]
}

func (m *Matcher[T]) moveNext() {
	if m.current.index < len(m.tokens) {
		m.current.index++
	}
}

func (m *Matcher[T]) save() {
	m.marks = append(m.marks, m.current)
}

func (m *Matcher[T]) restore() {
	m.current = m.marks[len(m.marks)-1]
	m.marks = m.marks[:len(m.marks)-1]
}

func (m *Matcher[T]) drop() {
	m.marks = m.marks[:len(m.marks)-1]
}

// match applies expr's multiplier around matchExpression.
func (m *Matcher[T]) match(expr *syntax.Expression) bool {
	if expr.Multiplier.Type == syntax.NoMultiplier {
		return m.matchExpression(expr)
	}

	m.save()
	count := 0
	for m.hasCurrent() && count < expr.Multiplier.Max {
		before := m.current.index
		if !m.matchExpression(expr) {
			break
		}
		count++
		// A repetition that consumed nothing succeeds every time after.
		if m.current.index == before {
			count = max(count, expr.Multiplier.Min)
			break
		}
	}

	if count >= expr.Multiplier.Min && count <= expr.Multiplier.Max || m.variableCoversRest() {
		m.drop()
		return true
	}
	m.restore()
	return false
}

// variableCoversRest reports whether a failure should be forgiven because
// the input is exhausted and a variable was matched: the variable's value
// may supply whatever is still missing.
func (m *Matcher[T]) variableCoversRest() bool {
	return !m.hasCurrent() && m.current.variables > 0
}

func (m *Matcher[T]) matchExpression(expr *syntax.Expression) bool {
	var ok bool
	switch expr.Type {
	case syntax.Combinator:
		ok = m.matchCombinator(expr)
	case syntax.Data, syntax.Keyword:
		ok = m.matchLeaf(expr)
	}

	return ok || m.variableCoversRest()
}

func (m *Matcher[T]) matchLeaf(expr *syntax.Expression) bool {
	if !m.hasCurrent() {
		return false
	}

	tok := m.currentToken()
	var ok bool
	switch {
	case m.classifier.IsVariable(tok):
		ok = true
		m.current.variables++
	case expr.Type == syntax.Data:
		ok = m.classifier.MatchData(tok, expr.DataType)
	default:
		ok = m.classifier.MatchKeyword(tok, expr.Keyword)
	}

	if ok {
		m.moveNext()
	}
	return ok
}

func (m *Matcher[T]) matchCombinator(expr *syntax.Expression) bool {
	depth := len(m.marks)
	m.save()
	start := m.current

	var ok bool
	switch expr.Combinator {
	case syntax.Juxtaposition:
		ok = m.matchJuxtaposition(expr)
	case syntax.Or:
		ok = m.matchOr(expr)
	case syntax.OrOr:
		ok = m.matchMany(expr) > 0
	case syntax.AndAnd:
		ok = m.matchMany(expr) == len(expr.SubExpressions)
	case syntax.Group:
		ok = m.match(expr.SubExpressions[0])
	}

	if len(m.marks) != depth+1 {
		panic(fmt.Sprintf("match: unbalanced marks in %s: depth %d, want %d", expr.Combinator, len(m.marks), depth+1))
	}
	if ok || m.variableCoversRest() {
		ok = true
		m.drop()
	} else {
		m.restore()
		if m.current != start {
			panic(fmt.Sprintf("match: %s restored cursor to %d, want %d", expr.Combinator, m.current.index, start.index))
		}
	}
	return ok
}

func (m *Matcher[T]) matchJuxtaposition(expr *syntax.Expression) bool {
	for _, sub := range expr.SubExpressions {
		if !m.match(sub) {
			return false
		}
	}
	return true
}

func (m *Matcher[T]) matchOr(expr *syntax.Expression) bool {
	for _, sub := range expr.SubExpressions {
		if m.match(sub) {
			return true
		}
	}
	return false
}

// matchMany matches the children of expr in any order, each at most once,
// and returns how many matched. After every successful child the scan
// restarts from the first unmatched child, so input order decides which
// child consumes which tokens.
func (m *Matcher[T]) matchMany(expr *syntax.Expression) int {
	matched := make([]bool, len(expr.SubExpressions))
	count := 0
	for progress := true; progress && count < len(matched); {
		progress = false
		for i, sub := range expr.SubExpressions {
			if matched[i] {
				continue
			}
			m.save()
			if m.match(sub) {
				m.drop()
				matched[i] = true
				count++
				progress = true
				break
			}
			m.restore()
		}
	}
	return count
}
