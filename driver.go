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

// MatchItems answers whether pat matches items under mode, returning the
// Match (with captures filled in) and true on success. It is the internal
// primitive FindAll and ReplaceAll probe with at every candidate position,
// and is exported because it's independently useful (and directly
// testable): ModeFull for "does this exactly match", ModeBegin for "does
// this match a prefix", ModeSearch for "does this match anywhere in the
// slice".
func MatchItems[T comparable](items, pat []Item[T], mode MatchMode) (Match[T], bool) {
	cache := newTreeCache[T]()
	st := cache.match(pat, items, mode)
	if !st.ok {
		return Match[T]{}, false
	}
	m := newMatch[T]()
	st.fillMatch(&m)
	return m, true
}

// FindAll scans items left-to-right for non-overlapping matches of pat,
// reported in pre-order: top-level matches in the order found, and, at any
// position where no top-level match starts and the item there is a Group,
// the matches found inside that group's children immediately after. A
// match found inside a group has Start/Len relative to that group's
// children, not to the top-level items slice.
func FindAll[T comparable](items, pat []Item[T]) []Match[T] {
	var out []Match[T]
	k := 0
	for k < len(items) {
		if m, ok := MatchItems(items[k:], pat, ModeBegin); ok {
			m.Start += k
			out = append(out, m)
			// Advance past the match, but always by at least one item so
			// a zero-length match (e.g. an all-multi-placeholder pattern)
			// can't stall the scan forever.
			if m.Len > 0 {
				k += m.Len
			} else {
				k++
			}
			continue
		}
		if children, ok := items[k].Children(); ok {
			out = append(out, FindAll(children, pat)...)
		}
		k++
	}
	return out
}

// ReplaceAll returns a fresh items sequence with left-to-right,
// non-overlapping matches of pat replaced by replacer.Expand(match). The
// input is not mutated. The item immediately after each replaced match is
// copied over as is: it is not probed as a match start and, if it is a
// Group, not searched. Matches inside other unmatched groups are replaced
// recursively.
func ReplaceAll[T comparable](items, pat []Item[T], replacer Replacer[T]) []Item[T] {
	result := make([]Item[T], 0, len(items))
	k := 0
	for k < len(items) {
		if m, ok := MatchItems(items[k:], pat, ModeBegin); ok {
			replacement := replacer.Expand(m)
			result = append(result, replacement...)
			// Advance k — an index into the original items slice — past
			// the matched span (m.Len, not len(replacement): the
			// replacement was already spliced into result, it has no
			// further bearing on where the original slice continues from)
			// and then one further item, unprocessed, into result. That
			// extra "+1" item is deliberately skipped as a fresh match
			// start, not deleted, mirroring tree_match.rs's
			// replace_in_place: it rebuilds the whole items vector with
			// the replacement spliced in and the untouched tail appended
			// whole, then advances its own index by replaced_len + 1 into
			// that *post-splice* array. Advancing this driver's
			// original-slice index the same way would drop every item
			// between m.Len and len(replacement) whenever they differ, so
			// here the "+1" item is carried over by hand instead. See
			// spec.md §9.
			k += m.Len
			if k < len(items) {
				result = append(result, items[k])
				k++
			}
			continue
		}
		it := items[k]
		if children, ok := it.Children(); ok {
			tag, _ := it.Tag()
			it = Group(tag, ReplaceAll(children, pat, replacer))
		}
		result = append(result, it)
		k++
	}
	return result
}
