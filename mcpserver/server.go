/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package mcpserver exposes property validation as Model Context Protocol tools.
package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"bennypowers.dev/propcheck/internal/version"
	"bennypowers.dev/propcheck/syntax"
	"bennypowers.dev/propcheck/validator"
)

// Catalog lists the known properties.
type Catalog interface {
	Names() []string
	Syntax(name string) (string, bool)
}

// Server holds the tool handlers.
type Server struct {
	validator *validator.Validator
	catalog   Catalog
	cache     syntax.Cache
	server    *mcp.Server
}

// New returns a server with every tool registered.
func New(v *validator.Validator, cat Catalog) *Server {
	s := &Server{validator: v, catalog: cat}
	s.server = mcp.NewServer(&mcp.Implementation{
		Name:    "propcheck",
		Version: version.Get(),
	}, nil)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "validate_property",
		Description: "Validate a style property value against the property's value syntax.",
	}, s.validateProperty)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "validate_stylesheet",
		Description: "Validate every declaration in a CSS, HTML or JavaScript document and report problems.",
	}, s.validateStylesheet)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_properties",
		Description: "List known style properties and their value syntaxes.",
	}, s.listProperties)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "explain_syntax",
		Description: "Parse a property's value syntax, or a syntax expression, and describe its structure.",
	}, s.explainSyntax)

	return s
}

// MCP returns the underlying SDK server.
func (s *Server) MCP() *mcp.Server {
	return s.server
}

// Run serves the tools over stdin and stdout until ctx is done or the
// client disconnects.
func (s *Server) Run(ctx context.Context) error {
	return s.server.Run(ctx, &mcp.StdioTransport{})
}
