/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package config provides configuration loading for propcheck.
package config

import (
	"github.com/bmatcuk/doublestar/v4"
	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"bennypowers.dev/propcheck/catalog"
	"bennypowers.dev/propcheck/validator"
)

// Config represents the propcheck configuration.
type Config struct {
	// Files specifies stylesheets to validate (paths or globs).
	Files []FileSpec `yaml:"files" json:"files"`

	// CustomPropertyPrefix marks properties that are never validated.
	// An empty string validates every property.
	CustomPropertyPrefix string `yaml:"customPropertyPrefix" json:"customPropertyPrefix"`

	// Properties adds properties or overrides built-in syntaxes.
	Properties map[string]string `yaml:"properties" json:"properties"`

	// Colors adds named colors, e.g. brand: "#ff3366".
	Colors map[string]string `yaml:"colors" json:"colors"`

	// Strict treats warnings as failures.
	Strict bool `yaml:"strict" json:"strict"`
}

// FileSpec represents a stylesheet file specification.
// It can be specified as a simple string path or as an object with overrides.
type FileSpec struct {
	// Path is the file path or doublestar glob.
	Path string `yaml:"path" json:"path"`

	// Language overrides extension-based language detection
	// ("css", "html" or "javascript").
	Language string `yaml:"language" json:"language"`
}

// UnmarshalYAML handles both string and object forms for FileSpec.
func (f *FileSpec) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		f.Path = node.Value
		return nil
	}

	type rawFileSpec FileSpec
	return node.Decode((*rawFileSpec)(f))
}

// UnmarshalJSON handles both string and object forms for FileSpec.
func (f *FileSpec) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		f.Path = s
		return nil
	}

	type rawFileSpec FileSpec
	return json.Unmarshal(data, (*rawFileSpec)(f))
}

// Default returns a config with default values.
func Default() *Config {
	return &Config{
		CustomPropertyPrefix: validator.DefaultCustomPropertyPrefix,
	}
}

// CatalogOptions returns the catalog customizations from the config.
func (c *Config) CatalogOptions() catalog.Options {
	return catalog.Options{
		Properties: c.Properties,
		Colors:     c.Colors,
	}
}

// LanguageForFile returns the language override for path, or "" if the
// file matches no spec with an override. Patterns are matched relative to
// rootDir, and later specs win.
func (c *Config) LanguageForFile(rootDir, path string) string {
	lang := ""
	for _, spec := range c.Files {
		if spec.Language == "" {
			continue
		}
		pattern := absPattern(rootDir, spec.Path)
		if pattern == path || matchDoublestar(pattern, path) {
			lang = spec.Language
		}
	}
	return lang
}

// FilePaths returns the list of file paths from all FileSpecs.
func (c *Config) FilePaths() []string {
	paths := make([]string, 0, len(c.Files))
	for _, spec := range c.Files {
		paths = append(paths, spec.Path)
	}
	return paths
}

// matchDoublestar provides ** glob matching using the doublestar library.
func matchDoublestar(pattern, path string) bool {
	matched, _ := doublestar.Match(pattern, path)
	return matched
}
