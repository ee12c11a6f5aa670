/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package sheet

import (
	"strings"

	tree_sitter "github.com/tree-sitter/go-tree-sitter"
	tree_sitter_html "github.com/tree-sitter/tree-sitter-html/bindings/go"
)

// styleAttributeSelector turns a style attribute into a rule CSS can parse.
const styleAttributeSelector = "*{"

// parseHTML extracts declarations from <style> elements and style attributes.
func parseHTML(src []byte) ([]Declaration, error) {
	tree, err := parseTree(tree_sitter_html.Language(), src)
	if err != nil {
		return nil, err
	}
	defer tree.Close()

	var (
		decls   []Declaration
		walkErr error
	)
	collect := func(found []Declaration, err error) {
		if err != nil && walkErr == nil {
			walkErr = err
		}
		decls = append(decls, found...)
	}

	walk(tree.RootNode(), func(n *tree_sitter.Node) bool {
		switch n.Kind() {
		case "style_element":
			if raw := childOfKind(n, "raw_text"); raw != nil {
				collect(parseCSS(src[raw.StartByte():raw.EndByte()], region{origin: raw.StartPosition()}))
			}
			return false
		case "attribute":
			name := childOfKind(n, "attribute_name")
			if name == nil || !strings.EqualFold(name.Utf8Text(src), "style") {
				return false
			}
			value := attributeValue(n)
			if value == nil {
				return false
			}
			fragment := styleAttributeSelector + value.Utf8Text(src) + "}"
			collect(parseCSS([]byte(fragment), region{
				origin: value.StartPosition(),
				prefix: uint(len(styleAttributeSelector)),
			}))
			return false
		}
		return true
	})
	return decls, walkErr
}

// attributeValue finds the value node of a quoted or unquoted attribute.
func attributeValue(attr *tree_sitter.Node) *tree_sitter.Node {
	if v := childOfKind(attr, "attribute_value"); v != nil {
		return v
	}
	if q := childOfKind(attr, "quoted_attribute_value"); q != nil {
		return childOfKind(q, "attribute_value")
	}
	return nil
}
