/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package render

import (
	"bytes"
	"strings"
	"testing"

	"bennypowers.dev/propcheck/sheet"
	"bennypowers.dev/propcheck/validator"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Border Radius", "border-radius"},
		{"border-radius", "border-radius"},
		{"-unity-font", "unity-font"},
		{"Flex  Basis", "flex-basis"},
		{"with_underscores", "with-underscores"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if result := slugify(tt.input); result != tt.expected {
				t.Errorf("slugify(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestToTitleCase(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"border", "Border"},
		{"unity", "Unity"},
		{"text-shadow", "Text-Shadow"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if result := toTitleCase(tt.input); result != tt.expected {
				t.Errorf("toTitleCase(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestRowSection(t *testing.T) {
	tests := []struct {
		name     string
		expected string
	}{
		{"border-top-width", "border"},
		{"-unity-font", "unity"},
		{"color", "color"},
	}
	for _, tt := range tests {
		if got := (Row{Name: tt.name}).Section(); got != tt.expected {
			t.Errorf("Section(%q) = %q, want %q", tt.name, got, tt.expected)
		}
	}
}

func TestTable(t *testing.T) {
	var buf bytes.Buffer
	rows := []Row{{Name: "width", Syntax: "<length>"}, {Name: "max-width", Syntax: "none"}}
	if err := Table(&buf, rows); err != nil {
		t.Fatal(err)
	}
	expected := "width      <length>\nmax-width  none\n"
	if buf.String() != expected {
		t.Errorf("Table() =\n%q\nwant\n%q", buf.String(), expected)
	}
}

func TestMarkdown(t *testing.T) {
	rows := []Row{
		{Name: "margin", Syntax: "auto | <length>"},
		{Name: "border-width", Syntax: "<length>"},
		{Name: "border-color", Syntax: "<color>"},
	}

	var buf bytes.Buffer
	if err := Markdown(&buf, rows, MarkdownOptions{IncludeTOC: true}); err != nil {
		t.Fatal(err)
	}

	expected := "## Table Of Contents\n\n" +
		"- [Border](#border)\n" +
		"- [Margin](#margin)\n\n" +
		"## Border {#border}\n\n" +
		"| Name         | Syntax     |\n" +
		"|--------------|------------|\n" +
		"| border-width | `<length>` |\n" +
		"| border-color | `<color>`  |\n" +
		"\n" +
		"## Margin {#margin}\n\n" +
		"| Name   | Syntax             |\n" +
		"|--------|--------------------|\n" +
		"| margin | `auto \\| <length>` |\n"
	if buf.String() != expected {
		t.Errorf("Markdown() =\n%s\nwant\n%s", buf.String(), expected)
	}
}

func TestColorSwatch(t *testing.T) {
	if s := ColorSwatch("#ff0000"); !strings.Contains(s, "48;2;255;0;0") {
		t.Errorf("unexpected swatch %q", s)
	}
	if s := ColorSwatch("10px"); s != "" {
		t.Errorf("expected no swatch for a length, got %q", s)
	}
}

func TestFindings(t *testing.T) {
	reports := []FileReport{
		{File: "a.css", Findings: []validator.Finding{
			{
				Declaration: sheet.Declaration{Property: "width", Value: "10", ValueRange: sheet.Range{Start: sheet.Position{Line: 1, Column: 9}}},
				Result:      validator.Result{Status: validator.StatusError, Kind: validator.KindSyntax, Message: "Expected (<length>) but found '10'", Hint: "add a unit"},
			},
			{
				Declaration: sheet.Declaration{Property: "height", Value: "1px"},
				Result:      validator.Result{Status: validator.StatusOK},
			},
		}},
		{File: "b.css", Error: "no such file"},
	}

	var buf bytes.Buffer
	if err := Findings(&buf, reports); err != nil {
		t.Fatal(err)
	}
	expected := "a.css:2:10: error: Expected (<length>) but found '10' (add a unit)\n" +
		"b.css: error: no such file\n"
	if buf.String() != expected {
		t.Errorf("Findings() =\n%s\nwant\n%s", buf.String(), expected)
	}

	s := Summarize(reports)
	if s.Files != 2 || s.Errors != 2 || s.Warnings != 0 {
		t.Errorf("Summarize() = %+v", s)
	}
}

func TestResult(t *testing.T) {
	var buf bytes.Buffer
	if err := Result(&buf, "10px", validator.Result{Property: "width"}); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "width: 10px ok\n" {
		t.Errorf("Result() = %q", buf.String())
	}
}
