/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package catalog provides the table of known style properties and their
// value syntaxes, along with named color lookup.
package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/agnivade/levenshtein"
	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"
)

//go:embed properties.yaml
var builtinYAML []byte

// ErrInvalidColor indicates a configured color could not be parsed.
var ErrInvalidColor = errors.New("invalid color")

// Options customizes a Catalog.
type Options struct {
	// Properties adds properties or replaces built-in syntaxes.
	Properties map[string]string

	// Colors adds named colors, e.g. "brand": "#ff3366".
	Colors map[string]string
}

// Catalog maps property names to value syntaxes. A Catalog is immutable
// once built and safe for concurrent use.
type Catalog struct {
	syntaxes map[string]string
	names    []string
	colors   map[string]colorful.Color
}

type catalogFile struct {
	Properties map[string]string `yaml:"properties"`
}

var (
	builtinOnce     sync.Once
	builtinSyntaxes map[string]string
	builtinErr      error
)

func loadBuiltin() (map[string]string, error) {
	builtinOnce.Do(func() {
		var file catalogFile
		if err := yaml.Unmarshal(builtinYAML, &file); err != nil {
			builtinErr = fmt.Errorf("failed to decode built-in properties: %w", err)
			return
		}
		builtinSyntaxes = file.Properties
	})
	return builtinSyntaxes, builtinErr
}

// Default returns a catalog of the built-in properties.
func Default() *Catalog {
	c, err := New(Options{})
	if err != nil {
		// The built-in table is embedded; failing to decode it is a build defect.
		panic(err)
	}
	return c
}

// New returns a catalog of the built-in properties with opts applied.
func New(opts Options) (*Catalog, error) {
	builtin, err := loadBuiltin()
	if err != nil {
		return nil, err
	}

	c := &Catalog{
		syntaxes: make(map[string]string, len(builtin)+len(opts.Properties)),
		colors:   make(map[string]colorful.Color, len(opts.Colors)),
	}
	for name, s := range builtin {
		c.syntaxes[strings.ToLower(name)] = s
	}
	for name, s := range opts.Properties {
		c.syntaxes[strings.ToLower(name)] = s
	}
	for name, raw := range opts.Colors {
		color, err := parseColor(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %q", ErrInvalidColor, name, raw)
		}
		c.colors[strings.ToLower(name)] = color
	}

	c.names = make([]string, 0, len(c.syntaxes))
	for name := range c.syntaxes {
		c.names = append(c.names, name)
	}
	sort.Strings(c.names)

	return c, nil
}

// Syntax returns the value syntax registered for a property.
func (c *Catalog) Syntax(name string) (string, bool) {
	s, ok := c.syntaxes[strings.ToLower(name)]
	return s, ok
}

// Names returns all property names in sorted order.
func (c *Catalog) Names() []string {
	return append([]string(nil), c.names...)
}

// Len returns the number of properties.
func (c *Catalog) Len() int {
	return len(c.names)
}

// ClosestName suggests the known property most similar to name,
// for reporting typos. It returns false when nothing is close enough.
func (c *Catalog) ClosestName(name string) (string, bool) {
	name = strings.ToLower(name)
	if name == "" {
		return "", false
	}

	threshold := max(2, len(name)/3)
	best, bestDistance := "", threshold+1
	for _, candidate := range c.names {
		d := levenshtein.ComputeDistance(name, candidate)
		if d < bestDistance {
			best, bestDistance = candidate, d
		}
	}
	return best, best != ""
}

// NamedColor resolves a configured or CSS named color.
func (c *Catalog) NamedColor(name string) (colorful.Color, bool) {
	if color, ok := c.colors[strings.ToLower(name)]; ok {
		return color, true
	}
	return NamedColor(name)
}
