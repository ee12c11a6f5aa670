/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package syntax provides the syntax command for propcheck.
package syntax

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"bennypowers.dev/propcheck/cmd/render"
	"bennypowers.dev/propcheck/cmd/workspace"
	"bennypowers.dev/propcheck/syntax"
)

// Cmd is the syntax cobra command.
var Cmd = &cobra.Command{
	Use:   "syntax <property|expression>",
	Short: "Show how a value syntax parses",
	Long: `Parse the syntax registered for a property, or a syntax expression given
directly, and print its normalized form and expression tree.

  propcheck syntax margin
  propcheck syntax '[ <length> | auto ]{1,4}'`,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	Cmd.Flags().String("format", "text", "Output format: text, json")
}

// explanation describes a parsed syntax.
type explanation struct {
	Property   string      `json:"property,omitempty"`
	Syntax     string      `json:"syntax"`
	Normalized string      `json:"normalized"`
	Tree       syntax.Node `json:"tree"`
}

func run(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")

	ws, err := workspace.LoadOS()
	if err != nil {
		return err
	}

	ex, err := explain(ws.Catalog, args[0])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	switch format {
	case "json":
		return render.JSON(out, ex)
	case "text":
		return writeText(out, ex)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// syntaxSource looks up property syntaxes.
type syntaxSource interface {
	Syntax(name string) (string, bool)
}

// explain parses query as a property's syntax when the property is known,
// and as a syntax expression otherwise.
func explain(src syntaxSource, query string) (explanation, error) {
	ex := explanation{Syntax: query}
	if s, ok := src.Syntax(query); ok {
		ex.Property = strings.ToLower(query)
		ex.Syntax = s
	}
	expr, err := syntax.Parse(ex.Syntax)
	if err != nil {
		return explanation{}, fmt.Errorf("error parsing %q: %w", ex.Syntax, err)
	}
	ex.Normalized = expr.String()
	ex.Tree = expr.Describe()
	return ex, nil
}

func writeText(w io.Writer, ex explanation) error {
	var sb strings.Builder
	if ex.Property != "" {
		fmt.Fprintf(&sb, "property:   %s\n", ex.Property)
	}
	fmt.Fprintf(&sb, "syntax:     %s\n", ex.Syntax)
	fmt.Fprintf(&sb, "normalized: %s\n\n", ex.Normalized)
	sb.WriteString(ex.Tree.String())
	_, err := io.WriteString(w, sb.String())
	return err
}
