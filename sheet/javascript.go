/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package sheet

import (
	"strings"

	tree_sitter "github.com/tree-sitter/go-tree-sitter"
	tree_sitter_javascript "github.com/tree-sitter/tree-sitter-javascript/bindings/go"
)

// cssTag is the template tag whose literals hold stylesheets.
const cssTag = "css"

// parseJavaScript extracts declarations from css`` tagged templates.
// Each ${} substitution is validated as a variable reference.
func parseJavaScript(src []byte) ([]Declaration, error) {
	tree, err := parseTree(tree_sitter_javascript.Language(), src)
	if err != nil {
		return nil, err
	}
	defer tree.Close()

	var (
		decls   []Declaration
		walkErr error
	)
	walk(tree.RootNode(), func(n *tree_sitter.Node) bool {
		if n.Kind() != "call_expression" {
			return true
		}
		fn := n.ChildByFieldName("function")
		tmpl := n.ChildByFieldName("arguments")
		if fn == nil || tmpl == nil || tmpl.Kind() != "template_string" || fn.Utf8Text(src) != cssTag {
			return true
		}

		fragment, r := templateFragment(tmpl, src)
		found, err := parseCSS(fragment, r)
		if err != nil && walkErr == nil {
			walkErr = err
		}
		decls = append(decls, found...)
		// Substitutions may hold nested templates.
		return true
	})
	return decls, walkErr
}

// templateFragment returns the body of a template literal with each
// substitution blanked out to an identifier of the same byte length, so
// tree-sitter positions in the fragment line up with the document.
func templateFragment(tmpl *tree_sitter.Node, src []byte) ([]byte, region) {
	start, end := tmpl.StartByte()+1, tmpl.EndByte()-1
	if end < start {
		end = start
	}
	fragment := append([]byte(nil), src[start:end]...)

	origin := tmpl.StartPosition()
	origin.Column++
	r := region{origin: origin}

	for i := uint(0); i < tmpl.ChildCount(); i++ {
		c := tmpl.Child(i)
		if c == nil || c.Kind() != "template_substitution" {
			continue
		}
		s, e := c.StartByte()-start, c.EndByte()-start
		expr := strings.TrimSpace(strings.TrimSuffix(strings.TrimPrefix(c.Utf8Text(src), "${"), "}"))
		r.subs = append(r.subs, substitution{
			start:       s,
			end:         e,
			replacement: "var(--" + expr + ")",
		})
		for j := s; j < e; j++ {
			if fragment[j] != '\n' && fragment[j] != '\r' {
				fragment[j] = 'x'
			}
		}
	}
	return fragment, r
}
