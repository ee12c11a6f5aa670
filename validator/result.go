/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package validator

import (
	"fmt"
	"strings"
)

// Status is the severity of a validation Result.
type Status int

const (
	StatusOK Status = iota
	StatusError
	StatusWarning
)

var statusNames = [...]string{
	StatusOK:      "ok",
	StatusError:   "error",
	StatusWarning: "warning",
}

func (s Status) String() string {
	if int(s) < len(statusNames) {
		return statusNames[s]
	}
	return fmt.Sprintf("status(%d)", int(s))
}

// MarshalText implements encoding.TextMarshaler.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Kind classifies why a value failed validation.
type Kind int

const (
	// KindNone is the kind of a successful result.
	KindNone Kind = iota

	// KindUnknownProperty means no syntax is registered for the property.
	KindUnknownProperty

	// KindInvalidGrammar means the registered syntax does not parse.
	KindInvalidGrammar

	// KindEmptyValue means the value had no tokens.
	KindEmptyValue

	// KindSyntax means the value does not satisfy the syntax.
	KindSyntax

	// KindExpectedEndOfValue means the value had trailing tokens.
	KindExpectedEndOfValue

	// KindUnresolvedValue means a value could not be resolved to typed values.
	KindUnresolvedValue
)

var kindNames = [...]string{
	KindNone:               "none",
	KindUnknownProperty:    "unknown-property",
	KindInvalidGrammar:     "invalid-grammar",
	KindEmptyValue:         "empty-value",
	KindSyntax:             "syntax",
	KindExpectedEndOfValue: "expected-end-of-value",
	KindUnresolvedValue:    "unresolved-value",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Result is the outcome of validating one property value.
type Result struct {
	// Status is ok, error or warning.
	Status Status `json:"status"`

	// Kind tells why validation failed.
	Kind Kind `json:"kind"`

	// Property is the validated property name.
	Property string `json:"property"`

	// Message describes the problem.
	Message string `json:"message,omitempty"`

	// Token is the offending token, if any.
	Token string `json:"token,omitempty"`

	// Hint suggests a fix.
	Hint string `json:"hint,omitempty"`

	// VariableMatches counts var() references accepted in place of values.
	VariableMatches int `json:"variableMatches,omitempty"`
}

// OK reports whether the value is valid.
func (r Result) OK() bool {
	return r.Status == StatusOK
}

// String renders the result for humans.
func (r Result) String() string {
	if r.OK() {
		return r.Property + ": ok"
	}
	var sb strings.Builder
	sb.WriteString(r.Status.String())
	sb.WriteString(": ")
	if r.Property != "" {
		sb.WriteString(r.Property)
		sb.WriteString(": ")
	}
	sb.WriteString(r.Message)
	if r.Hint != "" {
		sb.WriteString(" (")
		sb.WriteString(r.Hint)
		sb.WriteString(")")
	}
	return sb.String()
}
