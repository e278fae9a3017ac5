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

// seqMatchState answers, for one depth level: does pat[0..i] match
// items[0..j], and how? It is a dynamic-programming table over
// i in 0..=len(pat), j in 0..=len(items). Each cell stores a set of
// seqFlags rather than a single boolean, because the same prefix pair may
// be reachable by several strategies, and capture reconstruction needs to
// know which one won.
type seqMatchState[T comparable] struct {
	root  *treeCache[T] // shared memo cache across recursion depths
	pat   []Item[T]
	items []Item[T]
	mode  MatchMode

	table []seqFlags // (len(items)+1) * (len(pat)+1) cells, row-major on j

	ok       bool // whether a match was found at all
	matchEnd int  // valid iff ok: pat matches items[..matchEnd]
}

func newSeqMatchState[T comparable](root *treeCache[T], pat, items []Item[T], mode MatchMode) *seqMatchState[T] {
	s := &seqMatchState[T]{
		root:  root,
		pat:   pat,
		items: items,
		mode:  mode,
		table: make([]seqFlags, (len(items)+1)*(len(pat)+1)),
	}
	for i := range s.table {
		s.table[i] = flagUnknown
	}
	return s
}

func (s *seqMatchState[T]) cell(i, j int) int {
	return j*(len(s.pat)+1) + i
}

func (s *seqMatchState[T]) get(i, j int) seqFlags {
	f := s.table[s.cell(i, j)]
	if f == flagUnknown {
		panic("treematch: read of unknown DP cell (i, j) before it was computed")
	}
	return f
}

// matched computes (memoized) whether pat[..i] matches items[..j].
func (s *seqMatchState[T]) matched(i, j int) seqFlags {
	idx := s.cell(i, j)
	if cached := s.table[idx]; cached != flagUnknown {
		return cached
	}

	result := s.compute(i, j)
	if result.has(flagUnknown) {
		panic("treematch: computed result must never carry the unknown sentinel")
	}
	s.table[idx] = result
	return result
}

func (s *seqMatchState[T]) compute(i, j int) seqFlags {
	switch {
	case i == 0 && j == 0:
		return flagInit
	case i == 0 && s.mode == ModeSearch:
		// Search mode: the start does not have to match, so an empty
		// pattern prefix is satisfied at any position.
		return flagInit
	case i == 1 && j == 0 && isMultiPlaceholder(s.pat[0]):
		// Special boundary: a multi-item placeholder at the very start of
		// the pattern may open with an empty capture before any item is
		// consumed.
		return flagPlaceholderMulti
	case i == 0 || j == 0:
		return 0
	default:
		return s.step(i, j)
	}
}

func isMultiPlaceholder[T comparable](it Item[T]) bool {
	name, ok := it.Name()
	return ok && name.MatchesMultiple()
}

// step handles the general recurrence at (i, j), inspecting pat[i-1] and
// items[j-1].
func (s *seqMatchState[T]) step(i, j int) seqFlags {
	p := s.pat[i-1]
	it := s.items[j-1]

	switch p.kind {
	case KindAtom:
		if it.kind == KindAtom && p.atom == it.atom && s.matched(i-1, j-1).hasMatch() {
			return flagItem
		}
		return 0

	case KindGroup:
		if it.kind == KindGroup && p.tag == it.tag &&
			s.matched(i-1, j-1).hasMatch() &&
			s.root.fullMatches(p.children, it.children) {
			return flagTree
		}
		return 0

	case KindPlaceholder:
		return s.stepPlaceholder(i, j, p, it)

	default:
		return 0
	}
}

func (s *seqMatchState[T]) stepPlaceholder(i, j int, p, it Item[T]) seqFlags {
	matchesTree := p.name.MatchesTree()

	if p.name.MatchesMultiple() {
		var result seqFlags
		// Open: pattern advances, no item consumed yet.
		if s.matched(i-1, j).hasMatch() {
			result |= flagPlaceholderMulti
		}
		// Extend: one more item folds into the already-open run.
		prev := s.matched(i, j-1)
		if prev.has(flagPlaceholderMulti) || prev.has(flagPlaceholderMultiExtend) {
			if matchesTree || it.kind != KindGroup {
				result |= flagPlaceholderMultiExtend
			}
		}
		return result
	}

	// Single-item placeholder: an atom is always eligible; a group is
	// eligible only if the name carries 'g'. A Placeholder appearing in
	// the haystack (undefined per spec) never satisfies it.eligible,
	// matching the reference's quiet "treat as unmatched".
	eligible := it.kind == KindAtom || (it.kind == KindGroup && matchesTree)
	if eligible && s.matched(i-1, j-1).hasMatch() {
		return flagPlaceholderSingle
	}
	return 0
}

// fillMatch walks backwards from (len(pat), matchEnd), picking exactly one
// predecessor per cell by priority (ITEM > TREE > MULTI_EXTEND > MULTI /
// SINGLE), and fills in m.Captures, m.Start and m.Len. Requires s.ok.
func (s *seqMatchState[T]) fillMatch(m *Match[T]) {
	patLen := len(s.pat)
	itemLen := s.matchEnd
	multiLen := 0

	for {
		itemDec := 1
		flags := s.get(patLen, itemLen)

		switch {
		case flags.has(flagItem):
			patLen--

		case flags.has(flagTree):
			p := s.pat[patLen-1]
			it := s.items[itemLen-1]
			child := s.root.match(p.children, it.children, ModeFull)
			child.fillMatch(m)
			patLen--

		case flags.has(flagPlaceholderMultiExtend):
			multiLen++

		case flags.has(flagPlaceholderMulti) || flags.has(flagPlaceholderSingle):
			var start, length int
			if flags.has(flagPlaceholderSingle) {
				start, length = itemLen-1, 1
			} else {
				itemDec = 0
				start, length = itemLen, multiLen
			}
			name := s.pat[patLen-1].name
			setCapture(m, name, append([]Item[T]{}, s.items[start:start+length]...))
			patLen--
			multiLen = 0
		}

		if patLen == 0 && itemLen > 0 {
			itemLen -= itemDec
			break
		}
		if itemLen == 0 {
			break
		}
		itemLen -= itemDec
	}

	m.Start = itemLen
	m.Len = s.matchEnd - itemLen
}
