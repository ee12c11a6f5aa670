/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package catalog

import (
	"github.com/lucasb-eyer/go-colorful"
	"github.com/mazznoer/csscolorparser"
)

// NamedColor resolves a CSS color name such as "rebeccapurple".
// Only purely alphabetic names qualify; hex and functional notations
// are not names.
func NamedColor(name string) (colorful.Color, bool) {
	if name == "" {
		return colorful.Color{}, false
	}
	for i := 0; i < len(name); i++ {
		c := name[i]
		if (c < 'a' || c > 'z') && (c < 'A' || c > 'Z') {
			return colorful.Color{}, false
		}
	}
	color, err := parseColor(name)
	return color, err == nil
}

// CSSColors is a color table of the CSS named colors.
type CSSColors struct{}

// NamedColor implements match.ColorTable.
func (CSSColors) NamedColor(name string) (colorful.Color, bool) {
	return NamedColor(name)
}

func parseColor(s string) (colorful.Color, error) {
	c, err := csscolorparser.Parse(s)
	if err != nil {
		return colorful.Color{}, err
	}
	return colorful.Color{R: c.R, G: c.G, B: c.B}, nil
}
