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

package treematch

import "unsafe"

// sliceID turns a []Item[T] into an O(1) identity key based on the address
// of its backing array, not its contents. This is sound within a single
// top-level find/replace call: the borrowed slices handed to the matcher
// never move and their contents never change for the call's duration, so
// the same (pat, items) slice pair reached through different recursion
// paths is guaranteed to mean the same thing. An implementation that
// copies slices around would need to switch to a structural or
// index-based key instead.
type sliceID struct {
	ptr uintptr
	len int
}

func identify[T comparable](s []Item[T]) sliceID {
	if len(s) == 0 {
		return sliceID{}
	}
	return sliceID{ptr: uintptr(unsafe.Pointer(&s[0])), len: len(s)}
}

type cacheKey struct {
	pat   sliceID
	items sliceID
	mode  MatchMode
}

// treeCache is the memo cache shared across recursion depths within a
// single MatchItems call. It is discarded when that call returns.
// FindAll and ReplaceAll call MatchItems once per scan position, so each
// probe gets a fresh cache; no cache is shared across positions.
//
// treeCache is not safe for concurrent use. Per spec, a single top-level
// call is single-threaded and synchronous; an implementation that wants to
// share a cache across calls or goroutines must add an exclusive-mutation,
// shared-read guard (e.g. sync.RWMutex) around entries, since readers must
// see a consistent snapshot while a writer installs a new entry. We don't
// need that here because every call gets its own cache.
type treeCache[T comparable] struct {
	entries map[cacheKey]*seqMatchState[T]
}

func newTreeCache[T comparable]() *treeCache[T] {
	return &treeCache[T]{entries: make(map[cacheKey]*seqMatchState[T])}
}

// match returns the (possibly cached) seqMatchState for matching pat
// against items under mode.
func (c *treeCache[T]) match(pat, items []Item[T], mode MatchMode) *seqMatchState[T] {
	key := cacheKey{pat: identify(pat), items: identify(items), mode: mode}
	if s, ok := c.entries[key]; ok {
		return s
	}

	s := newSeqMatchState(c, pat, items, mode)
	switch mode {
	case ModeFull:
		if s.matched(len(pat), len(items)).hasMatch() {
			s.ok = true
			s.matchEnd = len(items)
		}
	case ModeBegin, ModeSearch:
		// Scan for the largest j whose (len(pat), j) cell matches. We
		// start at j=0 (not j=1) so that an empty pattern, or a pattern
		// that is satisfied by consuming nothing (e.g. a lone multi-item
		// placeholder matching zero items), is still found — this is
		// what makes "empty pattern matches at every position with zero
		// length" (spec boundary behavior) hold. See DESIGN.md.
		for j := 0; j <= len(items); j++ {
			if s.matched(len(pat), j).hasMatch() {
				s.ok = true
				s.matchEnd = j
			}
		}
	}

	c.entries[key] = s
	return s
}

// fullMatches reports whether pat fully matches items under ModeFull.
func (c *treeCache[T]) fullMatches(pat, items []Item[T]) bool {
	return c.match(pat, items, ModeFull).ok
}
