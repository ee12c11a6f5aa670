/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package syntax

import "strings"

// Node is a serializable view of an Expression tree.
type Node struct {
	// Kind is "keyword", "data" or the combinator name.
	Kind       string `json:"kind"`
	Value      string `json:"value,omitempty"`
	Multiplier string `json:"multiplier,omitempty"`
	Children   []Node `json:"children,omitempty"`
}

// Describe converts the expression to a Node tree.
func (e *Expression) Describe() Node {
	n := Node{Multiplier: e.Multiplier.String()}
	switch e.Type {
	case Keyword:
		n.Kind = "keyword"
		n.Value = e.Keyword
	case Data:
		n.Kind = "data"
		n.Value = "<" + e.DataType.String() + ">"
	default:
		n.Kind = e.Combinator.String()
		for _, sub := range e.SubExpressions {
			n.Children = append(n.Children, sub.Describe())
		}
	}
	return n
}

// Tree renders the expression as an indented outline, one node per line.
func (e *Expression) Tree() string {
	return e.Describe().String()
}

// String renders the node and its children as an indented outline.
func (n Node) String() string {
	var sb strings.Builder
	n.writeTree(&sb, 0)
	return sb.String()
}

func (n Node) writeTree(sb *strings.Builder, depth int) {
	sb.WriteString(strings.Repeat("  ", depth))
	sb.WriteString(n.Kind)
	if n.Value != "" {
		sb.WriteString(" ")
		sb.WriteString(n.Value)
	}
	if n.Multiplier != "" {
		sb.WriteString(" ")
		sb.WriteString(n.Multiplier)
	}
	sb.WriteString("\n")
	for _, c := range n.Children {
		c.writeTree(sb, depth+1)
	}
}
