/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package list provides the list command for propcheck.
package list

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"bennypowers.dev/propcheck/cmd/render"
	"bennypowers.dev/propcheck/cmd/workspace"
)

// Cmd is the list cobra command.
var Cmd = &cobra.Command{
	Use:   "list",
	Short: "List known properties and their syntaxes",
	Long: `List every property in the catalog, including properties added in the
config file, with optional filtering and formatting.`,
	Args: cobra.NoArgs,
	RunE: run,
}

func init() {
	Cmd.Flags().String("section", "", "Only list properties in a section, e.g. border")
	Cmd.Flags().String("starts-with", "", "Only list properties whose names start with a string")
	Cmd.Flags().String("format", "table", "Output format: table, json, names, markdown")
	Cmd.Flags().Bool("toc", false, "Include a table of contents in markdown output")
}

func run(cmd *cobra.Command, args []string) error {
	section, _ := cmd.Flags().GetString("section")
	prefix, _ := cmd.Flags().GetString("starts-with")
	format, _ := cmd.Flags().GetString("format")
	toc, _ := cmd.Flags().GetBool("toc")

	ws, err := workspace.LoadOS()
	if err != nil {
		return err
	}

	names := ws.Catalog.Names()
	rows := make([]render.Row, 0, len(names))
	for _, name := range names {
		s, _ := ws.Catalog.Syntax(name)
		rows = append(rows, render.Row{Name: name, Syntax: s})
	}
	rows = filterRows(rows, section, prefix)

	out := cmd.OutOrStdout()
	switch format {
	case "json":
		return render.JSON(out, rows)
	case "names":
		return render.Names(out, rows)
	case "markdown":
		return render.Markdown(out, rows, render.MarkdownOptions{IncludeTOC: toc})
	case "table":
		return render.Table(out, rows)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// filterRows keeps rows in section whose names start with prefix.
// Empty filters match everything.
func filterRows(rows []render.Row, section, prefix string) []render.Row {
	filtered := make([]render.Row, 0, len(rows))
	for _, r := range rows {
		if section != "" && !strings.EqualFold(r.Section(), section) {
			continue
		}
		if prefix != "" && !strings.HasPrefix(r.Name, strings.ToLower(prefix)) {
			continue
		}
		filtered = append(filtered, r)
	}
	return filtered
}
