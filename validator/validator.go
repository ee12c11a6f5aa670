/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package validator checks property values against the syntaxes
// registered for their property names.
package validator

import (
	"errors"
	"fmt"
	"strings"

	"bennypowers.dev/propcheck/internal/logger"
	"bennypowers.dev/propcheck/match"
	"bennypowers.dev/propcheck/syntax"
	"bennypowers.dev/propcheck/value"
)

// DefaultCustomPropertyPrefix marks custom properties, which are not validated.
const DefaultCustomPropertyPrefix = "--"

// Hint texts.
const (
	unitHint  = "Property expects a unit. Did you forget to add px or %?"
	colorHint = "Unsupported color '%s'."
)

// Source supplies property syntaxes.
type Source interface {
	// Syntax returns the value syntax registered for a property.
	Syntax(name string) (string, bool)

	// ClosestName suggests a registered name similar to an unknown one.
	ClosestName(name string) (string, bool)
}

// Validator validates property values. It holds no per-call state and is
// safe for concurrent use.
type Validator struct {
	source Source
	colors match.ColorTable
	prefix string
	cache  *syntax.Cache
}

// Option configures a Validator.
type Option func(*Validator)

// WithColors sets the table used to recognize color names.
func WithColors(colors match.ColorTable) Option {
	return func(v *Validator) {
		v.colors = colors
	}
}

// WithCustomPropertyPrefix changes the prefix of properties that bypass
// validation. An empty prefix validates every property.
func WithCustomPropertyPrefix(prefix string) Option {
	return func(v *Validator) {
		v.prefix = prefix
	}
}

// WithCache shares a parsed syntax cache between validators.
func WithCache(cache *syntax.Cache) Option {
	return func(v *Validator) {
		v.cache = cache
	}
}

// New returns a Validator reading syntaxes from source.
func New(source Source, opts ...Option) *Validator {
	v := &Validator{
		source: source,
		prefix: DefaultCustomPropertyPrefix,
	}
	for _, opt := range opts {
		opt(v)
	}
	if v.cache == nil {
		v.cache = &syntax.Cache{}
	}
	return v
}

// ValidateProperty validates a raw property value such as "10px auto".
func (v *Validator) ValidateProperty(name, raw string) Result {
	syntaxText, expr, early := v.lookup(name)
	if early != nil {
		return *early
	}
	res := match.NewTextMatcher(v.colors).Validate(expr, value.Tokenize(raw))
	return report(name, syntaxText, res, func(tok string) string { return tok })
}

// ValidateResolved validates a value that was already resolved to typed values.
func (v *Validator) ValidateResolved(name string, values []value.Value) Result {
	syntaxText, expr, early := v.lookup(name)
	if early != nil {
		return *early
	}
	res := match.NewResolvedMatcher(v.colors).Validate(expr, values)
	return report(name, syntaxText, res, value.Value.String)
}

// ValidateResolvedText resolves raw with value.Resolve and validates the
// resulting values. Values that cannot be resolved, including var()
// references, are reported as errors.
func (v *Validator) ValidateResolvedText(name, raw string) Result {
	if v.isCustom(name) {
		return Result{Status: StatusOK, Property: name}
	}
	values, err := value.Resolve(raw)
	if err != nil {
		r := Result{
			Status:   StatusError,
			Kind:     KindUnresolvedValue,
			Property: name,
			Message:  fmt.Sprintf("Cannot resolve value '%s': %v", raw, err),
		}
		if errors.Is(err, value.ErrUnresolvedVariable) {
			r.Hint = "Variables cannot be resolved ahead of time; validate the raw value instead."
		}
		return r
	}
	return v.ValidateResolved(name, values)
}

func (v *Validator) isCustom(name string) bool {
	return v.prefix != "" && strings.HasPrefix(name, v.prefix)
}

// lookup finds and parses the syntax for name. It returns a non-nil
// Result when validation ends before matching.
func (v *Validator) lookup(name string) (string, *syntax.Expression, *Result) {
	if v.isCustom(name) {
		return "", nil, &Result{Status: StatusOK, Property: name}
	}

	syntaxText, ok := v.source.Syntax(name)
	if !ok {
		msg := fmt.Sprintf("Unknown property '%s'", name)
		if closest, ok := v.source.ClosestName(name); ok {
			msg += fmt.Sprintf(" (did you mean '%s'?)", closest)
		}
		return "", nil, &Result{
			Status:   StatusError,
			Kind:     KindUnknownProperty,
			Property: name,
			Message:  msg,
		}
	}

	expr, err := v.cache.Get(syntaxText)
	if err != nil {
		logger.Warn("invalid syntax for %s: %v", name, err)
		return "", nil, &Result{
			Status:   StatusError,
			Kind:     KindInvalidGrammar,
			Property: name,
			Message:  fmt.Sprintf("Invalid property syntax '%s'", syntaxText),
		}
	}
	return syntaxText, expr, nil
}

// report turns a match result into a validation Result.
func report[T any](name, syntaxText string, res match.Result[T], text func(T) string) Result {
	r := Result{Property: name, VariableMatches: res.VariableMatches}
	if res.HasToken() {
		r.Token = text(res.Token)
	}

	switch res.Code {
	case match.OK:
		r.Status = StatusOK
	case match.EmptyValue:
		r.Status = StatusError
		r.Kind = KindEmptyValue
		r.Message = fmt.Sprintf("Expected (%s) but found empty value", syntaxText)
	case match.ExpectedEndOfValue:
		r.Status = StatusWarning
		r.Kind = KindExpectedEndOfValue
		r.Message = fmt.Sprintf("Expected end of value but found '%s'", r.Token)
	default:
		r.Status = StatusError
		r.Kind = KindSyntax
		if res.HasToken() {
			r.Message = fmt.Sprintf("Expected (%s) but found '%s'", syntaxText, r.Token)
			r.Hint = hint(syntaxText, r.Token)
		} else {
			r.Message = fmt.Sprintf("Expected (%s) but found end of value", syntaxText)
		}
	}
	return r
}

// hint guesses at the cause of a syntax error from the syntax text.
func hint(syntaxText, token string) string {
	if match.IsNumber(token) {
		if strings.Contains(syntaxText, "<length>") || strings.Contains(syntaxText, "<percentage>") {
			return unitHint
		}
	}
	if strings.HasPrefix(syntaxText, "<color>") {
		return fmt.Sprintf(colorHint, token)
	}
	return ""
}
