/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package validator

import (
	"fmt"

	"bennypowers.dev/propcheck/sheet"
)

// Mode selects how declaration values are matched.
type Mode int

const (
	// ModeText matches raw value tokens; var() references are accepted.
	ModeText Mode = iota

	// ModeResolved resolves values to typed values before matching.
	ModeResolved
)

// Finding is a validation result located in a document.
type Finding struct {
	sheet.Declaration
	Result Result `json:"result"`
}

// Range is where the finding should be reported: the property name for
// unknown properties, the value otherwise.
func (f Finding) Range() sheet.Range {
	if f.Result.Kind == KindUnknownProperty {
		return f.PropertyRange
	}
	return f.ValueRange
}

// CheckDocument extracts the declarations in src and validates each one.
// Every declaration yields a Finding, including valid ones.
func (v *Validator) CheckDocument(src []byte, lang sheet.Language, mode Mode) ([]Finding, error) {
	decls, err := sheet.Parse(src, lang)
	if err != nil {
		return nil, fmt.Errorf("failed to extract declarations: %w", err)
	}

	findings := make([]Finding, 0, len(decls))
	for _, d := range decls {
		var r Result
		if mode == ModeResolved {
			r = v.ValidateResolvedText(d.Property, d.Value)
		} else {
			r = v.ValidateProperty(d.Property, d.Value)
		}
		findings = append(findings, Finding{Declaration: d, Result: r})
	}
	return findings, nil
}

// Problems filters findings down to errors and warnings.
func Problems(findings []Finding) []Finding {
	var out []Finding
	for _, f := range findings {
		if !f.Result.OK() {
			out = append(out, f)
		}
	}
	return out
}
