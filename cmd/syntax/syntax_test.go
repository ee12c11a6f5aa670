/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package syntax

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSource map[string]string

func (f fakeSource) Syntax(name string) (string, bool) {
	s, ok := f[name]
	return s, ok
}

func TestExplain_Property(t *testing.T) {
	src := fakeSource{"x-size": "auto | <length>{1,4}"}

	ex, err := explain(src, "x-size")
	require.NoError(t, err)
	assert.Equal(t, "x-size", ex.Property)
	assert.Equal(t, "auto | <length>{1,4}", ex.Syntax)
	assert.Equal(t, "or", ex.Tree.Kind)
	require.Len(t, ex.Tree.Children, 2)
	assert.Equal(t, "auto", ex.Tree.Children[0].Value)
	assert.Equal(t, "group", ex.Tree.Children[1].Kind)
	assert.Equal(t, "{1,4}", ex.Tree.Children[1].Multiplier)
	require.Len(t, ex.Tree.Children[1].Children, 1)
	assert.Equal(t, "<length>", ex.Tree.Children[1].Children[0].Value)
}

func TestExplain_Expression(t *testing.T) {
	ex, err := explain(fakeSource{}, "<color>")
	require.NoError(t, err)
	assert.Empty(t, ex.Property)
	assert.Equal(t, "data", ex.Tree.Kind)
	assert.Equal(t, "<color>", ex.Normalized)
}

func TestExplain_Invalid(t *testing.T) {
	_, err := explain(fakeSource{}, "<length> |")
	assert.Error(t, err)
}

func TestWriteText(t *testing.T) {
	ex, err := explain(fakeSource{"x-color": "<color>"}, "x-color")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, writeText(&buf, ex))
	assert.Equal(t, "property:   x-color\nsyntax:     <color>\nnormalized: <color>\n\ndata <color>\n", buf.String())
}
