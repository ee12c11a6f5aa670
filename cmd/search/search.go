/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package search provides the search command for propcheck.
package search

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/spf13/cobra"

	"bennypowers.dev/propcheck/cmd/render"
	"bennypowers.dev/propcheck/cmd/workspace"
)

// Cmd is the search cobra command.
var Cmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search properties by name or syntax",
	Long: `Search the property catalog by name or value syntax with optional regex support.

  propcheck search border --name
  propcheck search '<color>' --syntax
  propcheck search '^margin-(top|bottom)$' --regex`,
	Args: cobra.ExactArgs(1),
	RunE: run,
}

func init() {
	Cmd.Flags().Bool("name", false, "Search names only")
	Cmd.Flags().Bool("syntax", false, "Search syntaxes only")
	Cmd.Flags().Bool("regex", false, "Query is a regex")
	Cmd.Flags().String("format", "table", "Output format: table, json, names")
}

// field selects what a query is matched against.
type field int

const (
	anyField field = iota
	nameField
	syntaxField
)

func run(cmd *cobra.Command, args []string) error {
	query := args[0]

	nameOnly, _ := cmd.Flags().GetBool("name")
	syntaxOnly, _ := cmd.Flags().GetBool("syntax")
	useRegex, _ := cmd.Flags().GetBool("regex")
	format, _ := cmd.Flags().GetString("format")

	if nameOnly && syntaxOnly {
		return fmt.Errorf("--name and --syntax are mutually exclusive")
	}

	var pattern *regexp.Regexp
	if useRegex {
		var err error
		pattern, err = regexp.Compile(query)
		if err != nil {
			return fmt.Errorf("invalid regex: %w", err)
		}
	}

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

	in := anyField
	switch {
	case nameOnly:
		in = nameField
	case syntaxOnly:
		in = syntaxField
	}
	matches := filterRows(rows, query, pattern, in)

	out := cmd.OutOrStdout()
	switch format {
	case "json":
		return render.JSON(out, matches)
	case "names":
		return render.Names(out, matches)
	default:
		return render.Table(out, matches)
	}
}

func filterRows(rows []render.Row, query string, pattern *regexp.Regexp, in field) []render.Row {
	matches := make([]render.Row, 0)
	for _, r := range rows {
		var matched bool
		switch in {
		case nameField:
			matched = matchString(r.Name, query, pattern)
		case syntaxField:
			matched = matchString(r.Syntax, query, pattern)
		default:
			matched = matchString(r.Name, query, pattern) || matchString(r.Syntax, query, pattern)
		}
		if matched {
			matches = append(matches, r)
		}
	}
	return matches
}

func matchString(s, query string, pattern *regexp.Regexp) bool {
	if pattern != nil {
		return pattern.MatchString(s)
	}
	return strings.Contains(strings.ToLower(s), strings.ToLower(query))
}
