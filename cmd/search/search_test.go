/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package search

import (
	"regexp"
	"testing"

	"bennypowers.dev/propcheck/cmd/render"
)

func TestMatchString(t *testing.T) {
	tests := []struct {
		name     string
		s        string
		query    string
		pattern  *regexp.Regexp
		expected bool
	}{
		{"simple match", "border-top-width", "top", nil, true},
		{"case insensitive", "Border-Top", "top", nil, true},
		{"no match", "border-top-width", "margin", nil, false},
		{"syntax match", "<length> | auto", "<length>", nil, true},
		{"empty query", "margin", "", nil, true},
		{"empty string", "", "query", nil, false},
		{"regex match", "margin-top", "", regexp.MustCompile(`^margin-`), true},
		{"regex no match", "padding-top", "", regexp.MustCompile(`^margin-`), false},
		{"regex multiplier", "[ <length> ]{1,4}", "", regexp.MustCompile(`\{\d,\d\}`), true},
		{"regex case sensitive", "Color", "", regexp.MustCompile(`color`), false},
		{"regex case insensitive", "Color", "", regexp.MustCompile(`(?i)color`), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := matchString(tt.s, tt.query, tt.pattern)
			if got != tt.expected {
				t.Errorf("matchString(%q, %q, pattern) = %v, want %v", tt.s, tt.query, got, tt.expected)
			}
		})
	}
}

func TestFilterRows(t *testing.T) {
	rows := []render.Row{
		{Name: "border-color", Syntax: "<color>"},
		{Name: "color", Syntax: "<color>"},
		{Name: "margin-top", Syntax: "<length> | <percentage> | auto"},
		{Name: "width", Syntax: "<length> | <percentage> | auto"},
		{Name: "opacity", Syntax: "<number>"},
	}

	t.Run("any field", func(t *testing.T) {
		result := filterRows(rows, "color", nil, anyField)
		if len(result) != 2 {
			t.Errorf("expected 2 rows, got %d", len(result))
		}
	})

	t.Run("name only", func(t *testing.T) {
		result := filterRows(rows, "auto", nil, nameField)
		if len(result) != 0 {
			t.Errorf("expected 0 rows, got %d", len(result))
		}
	})

	t.Run("syntax only", func(t *testing.T) {
		result := filterRows(rows, "auto", nil, syntaxField)
		if len(result) != 2 {
			t.Errorf("expected 2 rows, got %d", len(result))
		}
	})

	t.Run("regex on names", func(t *testing.T) {
		result := filterRows(rows, "", regexp.MustCompile(`^(width|opacity)$`), nameField)
		if len(result) != 2 {
			t.Errorf("expected 2 rows, got %d", len(result))
		}
	})

	t.Run("no matches is empty, not nil", func(t *testing.T) {
		result := filterRows(rows, "zzz", nil, anyField)
		if result == nil || len(result) != 0 {
			t.Errorf("expected empty slice, got %#v", result)
		}
	})
}
