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
	"fmt"
	"strings"
)

// Kind discriminates the three shapes an Item can take.
type Kind uint8

const (
	KindAtom Kind = iota
	KindGroup
	KindPlaceholder
)

func (k Kind) String() string {
	switch k {
	case KindAtom:
		return "atom"
	case KindGroup:
		return "group"
	case KindPlaceholder:
		return "placeholder"
	default:
		return "unknown"
	}
}

// Item is the fundamental tree element, parameterised over the payload
// type T. T only needs value-equality (the comparable constraint gives us
// that, and with it cheap, by-value cloning for free) and a debug
// representation, which we get from fmt's default formatting.
//
// An Item is exactly one of:
//   - Atom(t):           an indivisible payload.
//   - Group(tag, kids):  a nested sub-sequence with a tag that participates
//     in matching by equality.
//   - Placeholder(name): a pattern-only capture site.
//
// Items are immutable values once constructed; callers own any Match or
// Captures the engine hands back.
type Item[T comparable] struct {
	kind     Kind
	atom     T
	tag      T
	children []Item[T]
	name     PlaceholderName
}

// Atom builds an indivisible item carrying t.
func Atom[T comparable](t T) Item[T] {
	return Item[T]{kind: KindAtom, atom: t}
}

// Group builds a nested sub-sequence tagged with tag. children is kept as
// given (not copied); callers should treat it as immutable afterwards.
func Group[T comparable](tag T, children []Item[T]) Item[T] {
	return Item[T]{kind: KindGroup, tag: tag, children: children}
}

// Placeholder builds a pattern-only capture site. name encodes both the
// matching grammar (see PlaceholderName) and the capture key.
func Placeholder[T comparable](name string) Item[T] {
	return Item[T]{kind: KindPlaceholder, name: PlaceholderName(name)}
}

// Kind reports which of the three shapes this item has.
func (it Item[T]) Kind() Kind { return it.kind }

func (it Item[T]) IsAtom() bool        { return it.kind == KindAtom }
func (it Item[T]) IsGroup() bool       { return it.kind == KindGroup }
func (it Item[T]) IsPlaceholder() bool { return it.kind == KindPlaceholder }

// AtomValue returns the payload and true if it is an Atom.
func (it Item[T]) AtomValue() (T, bool) {
	if it.kind != KindAtom {
		var zero T
		return zero, false
	}
	return it.atom, true
}

// Tag returns the group tag and true if it is a Group.
func (it Item[T]) Tag() (T, bool) {
	if it.kind != KindGroup {
		var zero T
		return zero, false
	}
	return it.tag, true
}

// Children returns the group's children and true if it is a Group.
func (it Item[T]) Children() ([]Item[T], bool) {
	if it.kind != KindGroup {
		return nil, false
	}
	return it.children, true
}

// Name returns the placeholder name and true if it is a Placeholder.
func (it Item[T]) Name() (PlaceholderName, bool) {
	if it.kind != KindPlaceholder {
		return "", false
	}
	return it.name, true
}

// Equal reports deep structural equality: same shape, same atom/tag value,
// same children (recursively), same placeholder name.
func (it Item[T]) Equal(other Item[T]) bool {
	if it.kind != other.kind {
		return false
	}
	switch it.kind {
	case KindAtom:
		return it.atom == other.atom
	case KindGroup:
		if it.tag != other.tag || len(it.children) != len(other.children) {
			return false
		}
		for i := range it.children {
			if !it.children[i].Equal(other.children[i]) {
				return false
			}
		}
		return true
	case KindPlaceholder:
		return it.name == other.name
	default:
		return false
	}
}

// String renders a debug representation, e.g. "a", "(tag b c)", "__x".
func (it Item[T]) String() string {
	switch it.kind {
	case KindAtom:
		return fmt.Sprintf("%v", it.atom)
	case KindGroup:
		parts := make([]string, 0, len(it.children)+1)
		parts = append(parts, fmt.Sprintf("%v", it.tag))
		for _, c := range it.children {
			parts = append(parts, c.String())
		}
		return "(" + strings.Join(parts, " ") + ")"
	case KindPlaceholder:
		return string(it.name)
	default:
		return "<invalid item>"
	}
}

// PlaceholderName is a placeholder's name string, interpreted as a small
// sub-grammar per spec:
//
//   - three or more leading underscores ("___") mark a multi-item
//     (zero-or-more, greedy) wildcard; otherwise it is single-item (exactly
//     one item).
//   - the letter 'g' anywhere in the name additionally allows the
//     placeholder to match Group items; without it, placeholders refuse
//     groups.
//
// The name doubles as the capture key returned to the caller.
type PlaceholderName string

// MatchesMultiple reports whether this is a zero-or-more wildcard.
func (p PlaceholderName) MatchesMultiple() bool {
	return strings.HasPrefix(string(p), "___")
}

// MatchesTree reports whether this placeholder is eligible to capture a
// Group as a whole item.
func (p PlaceholderName) MatchesTree() bool {
	return strings.ContainsRune(string(p), 'g')
}
