/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package sheet extracts property declarations from stylesheets and from
// styles embedded in HTML and JavaScript, using tree-sitter grammars.
package sheet

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// ErrUnsupportedLanguage indicates a file whose language has no extractor.
var ErrUnsupportedLanguage = errors.New("unsupported language")

// Language selects an extractor.
type Language int

const (
	CSS Language = iota
	HTML
	JavaScript
)

func (l Language) String() string {
	switch l {
	case CSS:
		return "css"
	case HTML:
		return "html"
	case JavaScript:
		return "javascript"
	default:
		return fmt.Sprintf("language(%d)", int(l))
	}
}

// LanguageFromString parses a language name as used in config files and
// LSP language identifiers.
func LanguageFromString(s string) (Language, error) {
	switch strings.ToLower(s) {
	case "css", "uss", "tss":
		return CSS, nil
	case "html":
		return HTML, nil
	case "javascript", "js", "javascriptreact", "typescript", "typescriptreact":
		return JavaScript, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedLanguage, s)
	}
}

// LanguageForPath picks a language from a file extension.
func LanguageForPath(path string) (Language, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".css", ".uss", ".tss":
		return CSS, nil
	case ".html", ".htm":
		return HTML, nil
	case ".js", ".mjs":
		return JavaScript, nil
	default:
		return 0, fmt.Errorf("%w: %s", ErrUnsupportedLanguage, path)
	}
}

// Position is a zero-based line and byte column.
type Position struct {
	Line   uint32 `json:"line"`
	Column uint32 `json:"column"`
}

// Range is a half-open span of source text.
type Range struct {
	Start Position `json:"start"`
	End   Position `json:"end"`
}

// Declaration is one "property: value" pair found in a document.
type Declaration struct {
	Property string `json:"property"`

	// Value is the raw value text, without !important.
	Value string `json:"value"`

	PropertyRange Range `json:"propertyRange"`
	ValueRange    Range `json:"valueRange"`
}

// Parse extracts the declarations in src, in document order.
func Parse(src []byte, lang Language) ([]Declaration, error) {
	switch lang {
	case CSS:
		return parseCSS(src, region{})
	case HTML:
		return parseHTML(src)
	case JavaScript:
		return parseJavaScript(src)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedLanguage, lang)
	}
}
