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

package coverage

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sourcegraph/treematch"
)

func TestFromMatches(t *testing.T) {
	matches := []treematch.Match[string]{
		{Start: 0, Len: 2},
		{Start: 5, Len: 1},
	}

	s := FromMatches(matches)
	assert.True(t, s.Covers(0))
	assert.True(t, s.Covers(1))
	assert.False(t, s.Covers(2))
	assert.True(t, s.Covers(5))
	assert.EqualValues(t, 3, s.Count())
	assert.Equal(t, []int{2, 3, 4, 6}, s.Gaps(7))
}

func TestZeroLengthMatchAddsNothing(t *testing.T) {
	matches := []treematch.Match[string]{{Start: 3, Len: 0}}
	s := FromMatches(matches)
	assert.EqualValues(t, 0, s.Count())
}
