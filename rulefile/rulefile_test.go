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

package rulefile

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleYAML = `
rules:
  - name: wrap-b
    match: "b"
    replace: "B B"
  - name: drop-placeholder
    match: "a __x c"
    replace: "a __x c"
`

func TestParse(t *testing.T) {
	f, err := Parse(strings.NewReader(sampleYAML), "sample.yaml")
	require.NoError(t, err)
	require.Len(t, f.Rules, 2)
	assert.Equal(t, "wrap-b", f.Rules[0].Name)
	assert.Equal(t, "b", f.Rules[0].Match)
}

func TestParseRejectsEmptyMatch(t *testing.T) {
	_, err := Parse(strings.NewReader("rules:\n  - name: bad\n    match: \"\"\n    replace: x\n"), "bad.yaml")
	assert.Error(t, err)
}

func TestCompile(t *testing.T) {
	f, err := Parse(strings.NewReader(sampleYAML), "sample.yaml")
	require.NoError(t, err)

	compiled, err := f.Compile()
	require.NoError(t, err)
	require.Len(t, compiled, 2)

	assert.Equal(t, "wrap-b", compiled[0].Name)
	require.Len(t, compiled[0].Pattern, 1)
	v, ok := compiled[0].Pattern[0].AtomValue()
	require.True(t, ok)
	assert.Equal(t, "b", v)
	require.Len(t, compiled[0].Replacement, 2)
}
