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

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// atoms builds a flat []Item[string] from plain strings, for readable
// test fixtures.
func atoms(ss ...string) []Item[string] {
	out := make([]Item[string], len(ss))
	for i, s := range ss {
		out[i] = Atom(s)
	}
	return out
}

func capture(t *testing.T, m Match[string], name string) []string {
	t.Helper()
	items, ok := m.Captures[PlaceholderName(name)]
	require.True(t, ok, "missing capture %q", name)
	out := make([]string, len(items))
	for i, it := range items {
		v, ok := it.AtomValue()
		require.True(t, ok)
		out[i] = v
	}
	return out
}

// assertCaptures diffs a match's whole capture map against an expected one
// in a single shot, via Item[T]'s Equal method (go-cmp uses it
// automatically in place of reflecting Item's unexported fields) — useful
// once a test cares about more than one placeholder's captured sub-tree.
func assertCaptures(t *testing.T, m Match[string], want map[PlaceholderName][]Item[string]) {
	t.Helper()
	if diff := cmp.Diff(want, m.Captures); diff != "" {
		t.Errorf("captures mismatch (-want +got):\n%s", diff)
	}
}

// scenario 1: pat = [a, __x, c], items = [a, b, c] -> one match {x: [b]}.
func TestFindAll_SingleItemPlaceholder(t *testing.T) {
	pat := append(atoms("a"), Placeholder[string]("__x"), Atom("c"))
	items := atoms("a", "b", "c")

	matches := FindAll(items, pat)
	require.Len(t, matches, 1)
	assert.Equal(t, 0, matches[0].Start)
	assert.Equal(t, 3, matches[0].Len)
	assertCaptures(t, matches[0], map[PlaceholderName][]Item[string]{
		"__x": atoms("b"),
	})
}

// pat = [a, ___x, c], items = [a, b, b, c, c]: the multi-item placeholder
// is greedy, so it consumes as much as possible (including the first "c")
// before backing off just enough for the trailing literal "c" to match the
// very last item: {x: [b, b, c]}, len=5 (the whole haystack). This is the
// largest-j tie-break spec.md §4.2 prescribes; see DESIGN.md for why
// spec.md's own worked example for this case (which claims len=4) doesn't
// square with that rule or with the reference it's grounded on.
func TestFindAll_MultiItemPlaceholderGreedyConsumesMaximally(t *testing.T) {
	pat := append(atoms("a"), Placeholder[string]("___x"), Atom("c"))
	items := atoms("a", "b", "b", "c", "c")

	matches := FindAll(items, pat)
	require.Len(t, matches, 1)
	assert.Equal(t, 0, matches[0].Start)
	assert.Equal(t, 5, matches[0].Len)
	assertCaptures(t, matches[0], map[PlaceholderName][]Item[string]{
		"___x": atoms("b", "b", "c"),
	})
}

// scenario 3: pat = [G(a, __gx)], items = [G(a, b), G(a, c)] -> two matches.
func TestFindAll_GroupCapable(t *testing.T) {
	pat := []Item[string]{Group("a", []Item[string]{Placeholder[string]("__gx")})}
	items := []Item[string]{
		Group("a", atoms("b")),
		Group("a", atoms("c")),
	}

	matches := FindAll(items, pat)
	require.Len(t, matches, 2)
	assertCaptures(t, matches[0], map[PlaceholderName][]Item[string]{"__gx": atoms("b")})
	assertCaptures(t, matches[1], map[PlaceholderName][]Item[string]{"__gx": atoms("c")})
}

// scenario 4: pat = [f, (__a)], items = [f, (x), g, f, (y)] -> two matches.
func TestFindAll_RecursesPastNonMatchingItems(t *testing.T) {
	pat := []Item[string]{
		Atom("f"),
		Group("paren", []Item[string]{Placeholder[string]("__a")}),
	}
	items := []Item[string]{
		Atom("f"),
		Group("paren", atoms("x")),
		Atom("g"),
		Atom("f"),
		Group("paren", atoms("y")),
	}

	matches := FindAll(items, pat)
	require.Len(t, matches, 2)
	assert.Equal(t, []string{"x"}, capture(t, matches[0], "__a"))
	assert.Equal(t, []string{"y"}, capture(t, matches[1], "__a"))
}

// scenario 5: replace_all([a, b, c], [b], [B, B]) = [a, B, B, c].
func TestReplaceAll_LiteralTemplate(t *testing.T) {
	items := atoms("a", "b", "c")
	pat := atoms("b")
	replacement := Template[string](atoms("B", "B"))

	got := ReplaceAll(items, pat, replacement)
	assert.Equal(t, atomsToStrings(got), []string{"a", "B", "B", "c"})
}

// scenario 6: replace_all([f, (x, g, y)], [g], [G]) recurses into the
// group: [f, (x, G, y)].
func TestReplaceAll_RecursesIntoUnmatchedGroup(t *testing.T) {
	items := []Item[string]{
		Atom("f"),
		Group("paren", atoms("x", "g", "y")),
	}
	pat := atoms("g")
	replacement := Template[string](atoms("G"))

	got := ReplaceAll(items, pat, replacement)
	require.Len(t, got, 2)
	assert.Equal(t, "f", mustAtom(t, got[0]))
	children, ok := got[1].Children()
	require.True(t, ok)
	assert.Equal(t, []string{"x", "G", "y"}, atomsToStrings(children))
}

func TestReplaceAll_NoOccurrenceIsIdentity(t *testing.T) {
	items := atoms("a", "b", "c")
	pat := atoms("z")
	got := ReplaceAll(items, pat, Template[string](atoms("Z")))
	assert.Equal(t, atomsToStrings(items), atomsToStrings(got))
}

// The "+1" advance past a replacement skips exactly one item of the
// original sequence as a fresh match start (see driver.go's ReplaceAll and
// spec.md §9): matching "a" at k=0 advances past it, then "b" is carried
// over unprocessed rather than independently matched and replaced, and the
// scan resumes at "c". So only "a" and "c" are ever handed to the
// replacer, even though the pattern would match any single atom.
func TestReplaceAll_FuncReplacer(t *testing.T) {
	items := atoms("a", "b", "c")
	pat := []Item[string]{Placeholder[string]("__x")}

	var calls int
	replacer := ReplacerFunc[string](func(m Match[string]) []Item[string] {
		calls++
		v := capture(t, m, "__x")[0]
		return atoms(v + v)
	})

	got := ReplaceAll(items, pat, replacer)
	assert.Equal(t, []string{"aa", "b", "cc"}, atomsToStrings(got))
	assert.Equal(t, 2, calls)
}

func TestFindAll_GroupTagsMustMatch(t *testing.T) {
	pat := []Item[string]{Group("a", atoms("x"))}
	items := []Item[string]{Group("b", atoms("x"))}
	assert.Empty(t, FindAll(items, pat))
}

func TestSingleItemPlaceholderRefusesGroupWithoutG(t *testing.T) {
	pat := []Item[string]{Placeholder[string]("__x")}
	items := []Item[string]{Group("a", atoms("x"))}
	// The group itself isn't eligible for a non-g placeholder...
	_, ok := MatchItems(items, pat, ModeFull)
	assert.False(t, ok)

	// ...but FindAll's recursive descent still finds the atom inside it,
	// since __x has no objection to atoms.
	matches := FindAll(items, pat)
	require.Len(t, matches, 1)
	assert.Equal(t, []string{"x"}, capture(t, matches[0], "__x"))
}

func TestFindAll_EmptyPatternMatchesEveryPositionWithZeroLength(t *testing.T) {
	items := atoms("a", "b")
	matches := FindAll(items, nil)
	require.Len(t, matches, 2)
	for i, m := range matches {
		assert.Equal(t, i, m.Start)
		assert.Equal(t, 0, m.Len)
	}
}

func TestMatchItems_ModeFullRequiresWholeInput(t *testing.T) {
	items := atoms("a", "b")
	pat := atoms("a")
	_, ok := MatchItems(items, pat, ModeFull)
	assert.False(t, ok)

	_, ok = MatchItems(items[:1], pat, ModeFull)
	assert.True(t, ok)
}

func TestMatchItems_ModeSearchFindsAnywhere(t *testing.T) {
	items := atoms("x", "y", "a")
	pat := atoms("a")
	m, ok := MatchItems(items, pat, ModeSearch)
	require.True(t, ok)
	assert.Equal(t, 1, m.Len)
}

func atomsToStrings(items []Item[string]) []string {
	out := make([]string, len(items))
	for i, it := range items {
		v, _ := it.AtomValue()
		out[i] = v
	}
	return out
}

func mustAtom(t *testing.T, it Item[string]) string {
	t.Helper()
	v, ok := it.AtomValue()
	require.True(t, ok)
	return v
}
