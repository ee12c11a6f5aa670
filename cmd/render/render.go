/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package render provides shared rendering functions for CLI output.
package render

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"unicode"

	"github.com/goccy/go-json"
	"github.com/mazznoer/csscolorparser"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Row holds display values for a single property.
type Row struct {
	Name   string `json:"name"`
	Syntax string `json:"syntax"`
}

// Section is the heading a property is grouped under in markdown output,
// e.g. "border" for border-top-width and "unity" for -unity-font.
func (r Row) Section() string {
	name := strings.TrimLeft(r.Name, "-")
	if i := strings.IndexByte(name, '-'); i > 0 {
		return name[:i]
	}
	return name
}

// ColumnWidth returns the width of the widest name, at least the header's.
func ColumnWidth(rows []Row) int {
	width := len("Name")
	for _, r := range rows {
		width = max(width, len(r.Name))
	}
	return width
}

// ColorSwatch returns a 24-bit ANSI color block for the given color value,
// or "" when the value is not a color.
func ColorSwatch(value string) string {
	c, err := csscolorparser.Parse(value)
	if err != nil {
		return ""
	}
	r, g, b, _ := c.RGBA255()
	return fmt.Sprintf("\x1b[48;2;%d;%d;%dm  \x1b[0m ", r, g, b)
}

// Table renders rows as an aligned two-column table.
func Table(w io.Writer, rows []Row) error {
	nameW := ColumnWidth(rows)
	for _, r := range rows {
		if _, err := fmt.Fprintf(w, "%-*s  %s\n", nameW, r.Name, r.Syntax); err != nil {
			return err
		}
	}
	return nil
}

// Names renders just the property names, one per line.
func Names(w io.Writer, rows []Row) error {
	for _, r := range rows {
		if _, err := fmt.Fprintln(w, r.Name); err != nil {
			return err
		}
	}
	return nil
}

// JSON renders v as indented JSON.
func JSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// MarkdownOptions configures markdown output.
type MarkdownOptions struct {
	IncludeTOC bool
}

// Markdown renders rows as markdown tables, one section per property family.
func Markdown(w io.Writer, rows []Row, opts MarkdownOptions) error {
	if len(rows) == 0 {
		return nil
	}

	sections := make(map[string][]Row)
	for _, r := range rows {
		sections[r.Section()] = append(sections[r.Section()], r)
	}
	names := make([]string, 0, len(sections))
	for name := range sections {
		names = append(names, name)
	}
	sort.Strings(names)

	var sb strings.Builder
	if opts.IncludeTOC {
		sb.WriteString("## Table Of Contents\n\n")
		for _, name := range names {
			fmt.Fprintf(&sb, "- [%s](#%s)\n", toTitleCase(name), slugify(name))
		}
		sb.WriteString("\n")
	}

	for i, name := range names {
		if i > 0 {
			sb.WriteString("\n")
		}
		fmt.Fprintf(&sb, "## %s {#%s}\n\n", toTitleCase(name), slugify(name))
		writeTable(&sb, sections[name])
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

func writeTable(sb *strings.Builder, rows []Row) {
	nameW, syntaxW := ColumnWidth(rows), len("Syntax")
	cells := make([]string, len(rows))
	for i, r := range rows {
		cells[i] = "`" + strings.ReplaceAll(r.Syntax, "|", `\|`) + "`"
		syntaxW = max(syntaxW, len(cells[i]))
	}

	fmt.Fprintf(sb, "| %-*s | %-*s |\n", nameW, "Name", syntaxW, "Syntax")
	fmt.Fprintf(sb, "|-%s-|-%s-|\n", strings.Repeat("-", nameW), strings.Repeat("-", syntaxW))
	for i, r := range rows {
		fmt.Fprintf(sb, "| %-*s | %-*s |\n", nameW, r.Name, syntaxW, cells[i])
	}
}

// slugify converts a name to a URL-safe anchor ID.
// e.g., "Color Brand" -> "color-brand"
func slugify(name string) string {
	var result strings.Builder
	for _, r := range strings.ToLower(name) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			result.WriteRune(r)
		} else if r == ' ' || r == '-' || r == '_' || r == '.' {
			result.WriteRune('-')
		}
	}
	s := result.String()
	for strings.Contains(s, "--") {
		s = strings.ReplaceAll(s, "--", "-")
	}
	return strings.Trim(s, "-")
}

// toTitleCase converts a string to Title Case.
func toTitleCase(s string) string {
	return cases.Title(language.English).String(s)
}
