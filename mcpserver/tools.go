/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package mcpserver

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"bennypowers.dev/propcheck/sheet"
	"bennypowers.dev/propcheck/validator"
)

// ValidatePropertyInput is the input of validate_property.
type ValidatePropertyInput struct {
	Property string `json:"property" jsonschema:"the property name, e.g. width"`
	Value    string `json:"value" jsonschema:"the raw property value, e.g. 10px auto"`
	Resolved bool   `json:"resolved,omitempty" jsonschema:"resolve the value to typed values before matching"`
}

// ResultOutput is a validation result with string enums.
type ResultOutput struct {
	Status          string `json:"status"`
	Kind            string `json:"kind"`
	Property        string `json:"property"`
	Message         string `json:"message,omitempty"`
	Token           string `json:"token,omitempty"`
	Hint            string `json:"hint,omitempty"`
	VariableMatches int    `json:"variableMatches,omitempty"`
}

func toOutput(r validator.Result) ResultOutput {
	return ResultOutput{
		Status:          r.Status.String(),
		Kind:            r.Kind.String(),
		Property:        r.Property,
		Message:         r.Message,
		Token:           r.Token,
		Hint:            r.Hint,
		VariableMatches: r.VariableMatches,
	}
}

func (s *Server) validateProperty(_ context.Context, _ *mcp.CallToolRequest, in ValidatePropertyInput) (*mcp.CallToolResult, ResultOutput, error) {
	if in.Property == "" {
		return nil, ResultOutput{}, fmt.Errorf("property is required")
	}
	var r validator.Result
	if in.Resolved {
		r = s.validator.ValidateResolvedText(in.Property, in.Value)
	} else {
		r = s.validator.ValidateProperty(in.Property, in.Value)
	}
	return nil, toOutput(r), nil
}

// ValidateStylesheetInput is the input of validate_stylesheet.
type ValidateStylesheetInput struct {
	Source   string `json:"source" jsonschema:"the document text"`
	Language string `json:"language,omitempty" jsonschema:"css, html or javascript; defaults to css"`
}

// FindingOutput is a problem located in a document. Lines and columns are zero-based.
type FindingOutput struct {
	Result ResultOutput `json:"result"`
	Value  string       `json:"value"`
	Line   uint32       `json:"line"`
	Column uint32       `json:"column"`
}

// ValidateStylesheetOutput is the output of validate_stylesheet.
type ValidateStylesheetOutput struct {
	Declarations int             `json:"declarations"`
	Problems     []FindingOutput `json:"problems"`
}

func (s *Server) validateStylesheet(_ context.Context, _ *mcp.CallToolRequest, in ValidateStylesheetInput) (*mcp.CallToolResult, ValidateStylesheetOutput, error) {
	lang := sheet.CSS
	if in.Language != "" {
		var err error
		if lang, err = sheet.LanguageFromString(in.Language); err != nil {
			return nil, ValidateStylesheetOutput{}, err
		}
	}

	findings, err := s.validator.CheckDocument([]byte(in.Source), lang, validator.ModeText)
	if err != nil {
		return nil, ValidateStylesheetOutput{}, err
	}

	out := ValidateStylesheetOutput{Declarations: len(findings), Problems: []FindingOutput{}}
	for _, f := range validator.Problems(findings) {
		at := f.Range().Start
		out.Problems = append(out.Problems, FindingOutput{
			Result: toOutput(f.Result),
			Value:  f.Value,
			Line:   at.Line,
			Column: at.Column,
		})
	}
	return nil, out, nil
}

// ListPropertiesInput is the input of list_properties.
type ListPropertiesInput struct {
	Filter string `json:"filter,omitempty" jsonschema:"only list properties whose name contains this text"`
}

// PropertyOutput is one known property.
type PropertyOutput struct {
	Name   string `json:"name"`
	Syntax string `json:"syntax"`
}

// ListPropertiesOutput is the output of list_properties.
type ListPropertiesOutput struct {
	Properties []PropertyOutput `json:"properties"`
}

func (s *Server) listProperties(_ context.Context, _ *mcp.CallToolRequest, in ListPropertiesInput) (*mcp.CallToolResult, ListPropertiesOutput, error) {
	filter := strings.ToLower(in.Filter)
	out := ListPropertiesOutput{Properties: []PropertyOutput{}}
	for _, name := range s.catalog.Names() {
		if filter != "" && !strings.Contains(name, filter) {
			continue
		}
		syn, _ := s.catalog.Syntax(name)
		out.Properties = append(out.Properties, PropertyOutput{Name: name, Syntax: syn})
	}
	return nil, out, nil
}

// ExplainSyntaxInput is the input of explain_syntax.
type ExplainSyntaxInput struct {
	Query string `json:"query" jsonschema:"a property name such as margin, or a syntax expression such as <length>{1,4}"`
}

// ExplainSyntaxOutput is the output of explain_syntax.
type ExplainSyntaxOutput struct {
	Property   string `json:"property,omitempty"`
	Syntax     string `json:"syntax"`
	Normalized string `json:"normalized"`

	// Tree is an indented outline of the parsed expression.
	Tree string `json:"tree"`
}

func (s *Server) explainSyntax(_ context.Context, _ *mcp.CallToolRequest, in ExplainSyntaxInput) (*mcp.CallToolResult, ExplainSyntaxOutput, error) {
	out := ExplainSyntaxOutput{Syntax: in.Query}
	if syn, ok := s.catalog.Syntax(in.Query); ok {
		out.Property = strings.ToLower(in.Query)
		out.Syntax = syn
	}

	expr, err := s.cache.Get(out.Syntax)
	if err != nil {
		return nil, ExplainSyntaxOutput{}, err
	}
	out.Normalized = expr.String()
	out.Tree = expr.Tree()
	return nil, out, nil
}
