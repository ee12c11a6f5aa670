/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package sheet

import (
	tree_sitter "github.com/tree-sitter/go-tree-sitter"
	tree_sitter_css "github.com/tree-sitter/tree-sitter-css/bindings/go"
)

// parseCSS extracts declarations from a CSS fragment located at r.
func parseCSS(src []byte, r region) ([]Declaration, error) {
	tree, err := parseTree(tree_sitter_css.Language(), src)
	if err != nil {
		return nil, err
	}
	defer tree.Close()

	var decls []Declaration
	walk(tree.RootNode(), func(n *tree_sitter.Node) bool {
		if n.Kind() != "declaration" {
			return true
		}
		if d, ok := declaration(n, src, r); ok {
			decls = append(decls, d)
		}
		return false
	})
	return decls, nil
}

// declaration reads a declaration node. The value span runs from the
// first value node after the colon to the last one before !important.
func declaration(n *tree_sitter.Node, src []byte, r region) (Declaration, bool) {
	var (
		name        *tree_sitter.Node
		colon       *tree_sitter.Node
		first, last *tree_sitter.Node
	)
	for i := uint(0); i < n.ChildCount(); i++ {
		c := n.Child(i)
		if c == nil {
			continue
		}
		switch kind := c.Kind(); {
		case kind == "property_name" && name == nil:
			name = c
		case kind == ":" && colon == nil:
			colon = c
		case colon == nil, kind == ";", kind == "important", kind == "comment":
		default:
			if first == nil {
				first = c
			}
			last = c
		}
	}
	if name == nil || colon == nil {
		return Declaration{}, false
	}
	if r.overlaps(name.StartByte(), name.EndByte()) {
		return Declaration{}, false
	}

	d := Declaration{
		Property:      name.Utf8Text(src),
		PropertyRange: r.span(name.StartPosition(), name.EndPosition()),
	}
	if first == nil {
		d.ValueRange = r.span(colon.EndPosition(), colon.EndPosition())
		return d, true
	}
	d.Value = r.text(src, first.StartByte(), last.EndByte())
	d.ValueRange = r.span(first.StartPosition(), last.EndPosition())
	return d, true
}
