// Copyright 2016 Google Inc. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sourcegraph/treematch"
)

func TestTokenizeAtoms(t *testing.T) {
	items, err := Tokenize("a b c")
	require.NoError(t, err)
	require.Len(t, items, 3)
	for i, want := range []string{"a", "b", "c"} {
		v, ok := items[i].AtomValue()
		require.True(t, ok)
		assert.Equal(t, want, v)
	}
}

func TestTokenizeGroup(t *testing.T) {
	items, err := Tokenize("f (x, y)")
	require.NoError(t, err)
	require.Len(t, items, 2)

	v, ok := items[0].AtomValue()
	require.True(t, ok)
	assert.Equal(t, "f", v)

	tag, ok := items[1].Tag()
	require.True(t, ok)
	assert.Equal(t, "paren", tag)

	children, ok := items[1].Children()
	require.True(t, ok)
	require.Len(t, children, 2)
}

func TestTokenizePlaceholder(t *testing.T) {
	items, err := Tokenize("f (__a)")
	require.NoError(t, err)
	require.Len(t, items, 2)

	children, ok := items[1].Children()
	require.True(t, ok)
	require.Len(t, children, 1)

	name, ok := children[0].Name()
	require.True(t, ok)
	assert.Equal(t, treematch.PlaceholderName("__a"), name)
}

func TestTokenizeNestedGroups(t *testing.T) {
	items, err := Tokenize("f (g (x))")
	require.NoError(t, err)
	require.Len(t, items, 2)

	outerChildren, ok := items[1].Children()
	require.True(t, ok)
	require.Len(t, outerChildren, 2)

	v, ok := outerChildren[0].AtomValue()
	require.True(t, ok)
	assert.Equal(t, "g", v)

	innerChildren, ok := outerChildren[1].Children()
	require.True(t, ok)
	require.Len(t, innerChildren, 1)
}

func TestTokenizeUnterminatedGroupErrors(t *testing.T) {
	_, err := Tokenize("f (x")
	assert.Error(t, err)
}
