/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package list

import (
	"testing"

	"bennypowers.dev/propcheck/cmd/render"
)

func TestFilterRows(t *testing.T) {
	rows := []render.Row{
		{Name: "border-top-width", Syntax: "<length>"},
		{Name: "border-color", Syntax: "<color>"},
		{Name: "margin", Syntax: "[ <length> | auto ]{1,4}"},
		{Name: "margin-top", Syntax: "<length> | auto"},
		{Name: "-unity-font", Syntax: "<resource> | <url>"},
	}

	t.Run("no filters", func(t *testing.T) {
		result := filterRows(rows, "", "")
		if len(result) != 5 {
			t.Errorf("expected 5 rows, got %d", len(result))
		}
	})

	t.Run("filter by section", func(t *testing.T) {
		result := filterRows(rows, "border", "")
		if len(result) != 2 {
			t.Errorf("expected 2 border rows, got %d", len(result))
		}
		for _, r := range result {
			if r.Section() != "border" {
				t.Errorf("expected section border, got %s", r.Section())
			}
		}
	})

	t.Run("section ignores case", func(t *testing.T) {
		result := filterRows(rows, "Unity", "")
		if len(result) != 1 || result[0].Name != "-unity-font" {
			t.Errorf("expected -unity-font, got %v", result)
		}
	})

	t.Run("filter by prefix", func(t *testing.T) {
		result := filterRows(rows, "", "margin-")
		if len(result) != 1 || result[0].Name != "margin-top" {
			t.Errorf("expected margin-top, got %v", result)
		}
	})

	t.Run("combined filters", func(t *testing.T) {
		result := filterRows(rows, "margin", "MARGIN")
		if len(result) != 2 {
			t.Errorf("expected 2 rows, got %d", len(result))
		}
	})

	t.Run("no matches", func(t *testing.T) {
		result := filterRows(rows, "padding", "")
		if len(result) != 0 {
			t.Errorf("expected 0 rows, got %d", len(result))
		}
	})
}
