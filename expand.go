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

// Expand builds a replacement sequence from template, splicing captures in
// place of placeholders with the same name:
//
//   - an Atom is copied unchanged.
//   - a Group is reproduced with Expand applied to its children; the tag
//     is preserved.
//   - a Placeholder is replaced by captures[name], spliced in place (not
//     wrapped in anything); if the name is absent, it contributes nothing.
func Expand[T comparable](template []Item[T], captures map[PlaceholderName][]Item[T]) []Item[T] {
	result := make([]Item[T], 0, len(template))
	for _, it := range template {
		switch it.kind {
		case KindGroup:
			result = append(result, Group(it.tag, Expand(it.children, captures)))
		case KindPlaceholder:
			if captured, ok := captures[it.name]; ok {
				result = append(result, captured...)
			}
		default:
			result = append(result, it)
		}
	}
	return result
}

// Replacer produces a replacement item sequence for a single Match.
// ReplaceAll is oblivious to whether the Replacer wraps a literal template
// or arbitrary logic.
type Replacer[T comparable] interface {
	Expand(m Match[T]) []Item[T]
}

// Template is a literal replacement sequence, expanded against the match's
// captures via Expand.
type Template[T comparable] []Item[T]

func (t Template[T]) Expand(m Match[T]) []Item[T] {
	return Expand([]Item[T](t), m.Captures)
}

// ReplacerFunc adapts a plain function to Replacer, for programmatic
// rewriting that isn't expressible as a template.
type ReplacerFunc[T comparable] func(m Match[T]) []Item[T]

func (f ReplacerFunc[T]) Expand(m Match[T]) []Item[T] {
	return f(m)
}
