/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package sheet

import (
	"fmt"
	"unsafe"

	tree_sitter "github.com/tree-sitter/go-tree-sitter"
)

// parseTree parses src with the given grammar. The caller closes the tree.
func parseTree(grammar unsafe.Pointer, src []byte) (*tree_sitter.Tree, error) {
	parser := tree_sitter.NewParser()
	defer parser.Close()

	if err := parser.SetLanguage(tree_sitter.NewLanguage(grammar)); err != nil {
		return nil, fmt.Errorf("failed to load grammar: %w", err)
	}
	tree := parser.Parse(src, nil)
	if tree == nil {
		return nil, fmt.Errorf("failed to parse document")
	}
	return tree, nil
}

// walk visits n and its descendants depth-first. Returning false from
// visit skips the node's children.
func walk(n *tree_sitter.Node, visit func(*tree_sitter.Node) bool) {
	if n == nil || !visit(n) {
		return
	}
	for i := uint(0); i < n.ChildCount(); i++ {
		walk(n.Child(i), visit)
	}
}

// childOfKind returns the first direct child of the given kind.
func childOfKind(n *tree_sitter.Node, kind string) *tree_sitter.Node {
	for i := uint(0); i < n.ChildCount(); i++ {
		if c := n.Child(i); c != nil && c.Kind() == kind {
			return c
		}
	}
	return nil
}

// region places an embedded CSS fragment inside its host document.
type region struct {
	// origin is where the fragment starts in the host document.
	origin tree_sitter.Point

	// prefix counts synthetic bytes prepended to the fragment's first line.
	prefix uint

	// subs are template substitutions, in fragment byte offsets.
	subs []substitution
}

type substitution struct {
	start, end  uint
	replacement string
}

// position maps a fragment point to a host document position.
func (r region) position(p tree_sitter.Point) Position {
	col := p.Column
	if p.Row == 0 {
		col = r.origin.Column + col - min(col, r.prefix)
	}
	return Position{
		Line:   uint32(r.origin.Row + p.Row),
		Column: uint32(col),
	}
}

func (r region) span(start, end tree_sitter.Point) Range {
	return Range{Start: r.position(start), End: r.position(end)}
}

// overlaps reports whether any substitution intersects [start, end).
func (r region) overlaps(start, end uint) bool {
	for _, s := range r.subs {
		if s.start < end && start < s.end {
			return true
		}
	}
	return false
}

// text returns src[start:end] with substitutions restored.
func (r region) text(src []byte, start, end uint) string {
	if len(r.subs) == 0 {
		return string(src[start:end])
	}
	var out []byte
	pos := start
	for _, s := range r.subs {
		if s.end <= start || s.start >= end {
			continue
		}
		if s.start > pos {
			out = append(out, src[pos:s.start]...)
		}
		out = append(out, s.replacement...)
		pos = max(pos, s.end)
	}
	if pos < end {
		out = append(out, src[pos:end]...)
	}
	return string(out)
}
