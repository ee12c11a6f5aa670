/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package lsp

import (
	protocol "github.com/tliron/glsp/protocol_3_16"

	"bennypowers.dev/propcheck/sheet"
	"bennypowers.dev/propcheck/validator"
)

// diagnosticSource names this server in editor diagnostics.
const diagnosticSource = "propcheck"

// Diagnostics validates a document and converts its problems to LSP
// diagnostics. Valid declarations produce nothing.
func Diagnostics(text string, lang sheet.Language, v *validator.Validator) ([]protocol.Diagnostic, error) {
	findings, err := v.CheckDocument([]byte(text), lang, validator.ModeText)
	if err != nil {
		return nil, err
	}

	diagnostics := []protocol.Diagnostic{}
	for _, f := range validator.Problems(findings) {
		diagnostics = append(diagnostics, toDiagnostic(f))
	}
	return diagnostics, nil
}

func toDiagnostic(f validator.Finding) protocol.Diagnostic {
	severity := protocol.DiagnosticSeverityError
	if f.Result.Status == validator.StatusWarning {
		severity = protocol.DiagnosticSeverityWarning
	}

	message := f.Result.Message
	if f.Result.Hint != "" {
		message += "\n" + f.Result.Hint
	}

	source := diagnosticSource
	return protocol.Diagnostic{
		Range:    toRange(f.Range()),
		Severity: &severity,
		Code:     &protocol.IntegerOrString{Value: f.Result.Kind.String()},
		Source:   &source,
		Message:  message,
	}
}

func toRange(r sheet.Range) protocol.Range {
	return protocol.Range{
		Start: protocol.Position{Line: r.Start.Line, Character: r.Start.Column},
		End:   protocol.Position{Line: r.End.Line, Character: r.End.Column},
	}
}
