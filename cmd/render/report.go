/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package render

import (
	"fmt"
	"io"

	"bennypowers.dev/propcheck/validator"
)

// FileReport is the findings for one file.
type FileReport struct {
	File     string              `json:"file"`
	Error    string              `json:"error,omitempty"`
	Findings []validator.Finding `json:"findings"`
}

// Summary counts problems across reports.
type Summary struct {
	Files    int `json:"files"`
	Errors   int `json:"errors"`
	Warnings int `json:"warnings"`
}

// Summarize counts the errors and warnings in reports. Unreadable files
// count as errors.
func Summarize(reports []FileReport) Summary {
	s := Summary{Files: len(reports)}
	for _, r := range reports {
		if r.Error != "" {
			s.Errors++
		}
		for _, f := range r.Findings {
			switch f.Result.Status {
			case validator.StatusError:
				s.Errors++
			case validator.StatusWarning:
				s.Warnings++
			}
		}
	}
	return s
}

// Findings renders problems compiler-style, one per line, with
// one-based line and column numbers.
func Findings(w io.Writer, reports []FileReport) error {
	for _, r := range reports {
		if r.Error != "" {
			if _, err := fmt.Fprintf(w, "%s: error: %s\n", r.File, r.Error); err != nil {
				return err
			}
		}
		for _, f := range r.Findings {
			if f.Result.OK() {
				continue
			}
			at := f.Range().Start
			line := fmt.Sprintf("%s:%d:%d: %s: %s", r.File, at.Line+1, at.Column+1, f.Result.Status, f.Result.Message)
			if f.Result.Hint != "" {
				line += " (" + f.Result.Hint + ")"
			}
			if _, err := fmt.Fprintln(w, line); err != nil {
				return err
			}
		}
	}
	return nil
}

// Result renders a single validation result for the check command.
// Valid color values get a swatch.
func Result(w io.Writer, value string, r validator.Result) error {
	if r.OK() {
		_, err := fmt.Fprintf(w, "%s: %s%s ok\n", r.Property, ColorSwatch(value), value)
		return err
	}
	_, err := fmt.Fprintln(w, r.String())
	return err
}
