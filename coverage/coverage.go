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

// Package coverage tracks which haystack indices a FindAll pass consumed,
// the same way zoekt's query package uses a roaring.Bitmap to track which
// repo IDs a query touches, except here the set ranges over item positions
// in a single top-level items slice instead of repo IDs.
package coverage

import (
	"github.com/RoaringBitmap/roaring"

	"github.com/sourcegraph/treematch"
)

// Set is a bitmap of the top-level item indices covered by one or more
// matches.
type Set struct {
	bitmap *roaring.Bitmap
}

// New returns an empty coverage set.
func New() *Set {
	return &Set{bitmap: roaring.New()}
}

// FromMatches builds a Set covering every index any match in matches spans.
func FromMatches[T comparable](matches []treematch.Match[T]) *Set {
	s := New()
	for _, m := range matches {
		Add(s, m)
	}
	return s
}

// Add marks m's span [m.Start, m.Start+m.Len) as covered. A zero-length
// match contributes nothing. A free function rather than a method, since
// Go methods can't carry their own type parameter independent of the
// receiver's.
func Add[T comparable](s *Set, m treematch.Match[T]) {
	for i := m.Start; i < m.Start+m.Len; i++ {
		s.bitmap.Add(uint32(i))
	}
}

// Covers reports whether index i was covered by any added match.
func (s *Set) Covers(i int) bool {
	return s.bitmap.Contains(uint32(i))
}

// Count returns the number of distinct covered indices.
func (s *Set) Count() uint64 {
	return s.bitmap.GetCardinality()
}

// Gaps returns the indices in [0, n) not covered by any match, in
// ascending order — the positions find_all passed over without matching.
func (s *Set) Gaps(n int) []int {
	var gaps []int
	for i := 0; i < n; i++ {
		if !s.bitmap.Contains(uint32(i)) {
			gaps = append(gaps, i)
		}
	}
	return gaps
}
