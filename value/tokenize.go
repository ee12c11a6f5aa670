/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package value splits raw property values into tokens and compiles them
// into resolved value handles.
package value

import "strings"

// Comma is the token emitted for a top-level comma.
const Comma = ","

// Tokenize splits a raw property value into its parts.
//
// Whitespace separates tokens. A top-level comma is emitted as its own ","
// token. Function calls are kept whole, including nested calls and any
// whitespace or commas between their parentheses, so "rgb(1, 2, 3)" is a
// single token. Unbalanced parentheses are not rejected; whatever was
// collected is flushed at the end of input.
func Tokenize(raw string) []string {
	var tokens []string
	var current strings.Builder
	depth := 0

	flush := func() {
		if current.Len() > 0 {
			tokens = append(tokens, current.String())
			current.Reset()
		}
	}

	for _, r := range raw {
		switch {
		case r == '(':
			depth++
			current.WriteRune(r)
		case r == ')' && depth > 0:
			depth--
			current.WriteRune(r)
		case depth > 0:
			current.WriteRune(r)
		case r == ',':
			flush()
			tokens = append(tokens, Comma)
		case isSpace(r):
			flush()
		default:
			current.WriteRune(r)
		}
	}
	flush()

	return tokens
}

func isSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r', '\f':
		return true
	}
	return false
}
