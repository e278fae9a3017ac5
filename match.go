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

// MatchMode selects what "pat matches items" means for a single probe.
type MatchMode uint8

const (
	// ModeFull requires pat to align exactly from pat[0] to the end of pat
	// against items[0] to the end of items. Used when recursing into a
	// group whose children must be consumed in their entirety.
	ModeFull MatchMode = iota

	// ModeBegin requires pat to align starting at items[0], but allows
	// items to have unmatched remainder. Used to probe a single start
	// position in the haystack.
	ModeBegin

	// ModeSearch behaves like ModeBegin but additionally relaxes the start
	// boundary, so pat may align starting anywhere in items. FindAll and
	// ReplaceAll reach "search anywhere" behavior by scanning start
	// positions themselves with ModeBegin; ModeSearch is exposed directly
	// for callers (e.g. MatchItems) that want a single probe to search a
	// whole slice without an external scan loop.
	ModeSearch
)

func (m MatchMode) String() string {
	switch m {
	case ModeFull:
		return "full"
	case ModeBegin:
		return "begin"
	case ModeSearch:
		return "search"
	default:
		return "unknown"
	}
}

// Match is the result of a successful match.
type Match[T comparable] struct {
	// Start is the index, within the items slice the match was probed
	// against, where the match begins.
	Start int

	// Len is the number of items consumed by the match.
	Len int

	// Captures maps placeholder name to the captured ordered sub-sequence
	// of items. A single-item placeholder captures a one-element slice; a
	// multi-item placeholder captures a (possibly empty) slice. Captures
	// made inside a recursively matched group are merged into this same
	// map; a name reused at multiple nesting levels is overwritten by
	// whichever one fillMatch visits last (see setCapture in capture.go).
	Captures map[PlaceholderName][]Item[T]
}

func newMatch[T comparable]() Match[T] {
	return Match[T]{Captures: make(map[PlaceholderName][]Item[T])}
}
