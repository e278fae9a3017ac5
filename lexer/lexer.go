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

// Package lexer turns a flat text notation into an []Item[string] tree the
// treematch engine can operate over: the CLI and the examples use it to
// turn pattern/replacement/subject text into trees without callers
// hand-building Item values.
//
// Grammar (deliberately small — this is a worked example, not a general
// parser):
//
//	expr   := atom | group | placeholder
//	group  := "(" expr* ")"                 ; always tagged "paren"; children
//	                                        ; separated by commas and/or whitespace
//	atom   := bare word, e.g. f, x, 42
//	placeholder := a word matching the placeholder grammar (leading
//	               underscore), e.g. __x, ___x
//
// A group is never tag-prefixed by an adjacent word — "f (x)" parses as the
// atom "f" followed by a separate paren group, matching the shape
// spec.md's worked examples use (a bare atom preceding an unrelated
// group). Tokens are separated by commas, parentheses, and whitespace; it
// uses github.com/grafana/regexp for tokenization, the same drop-in
// regexp package zoekt's own matchtree.go imports.
package lexer

import (
	"strings"

	"github.com/grafana/regexp"
	"github.com/pkg/errors"

	"github.com/sourcegraph/treematch"
)

var tokenPattern = regexp.MustCompile(`\s*(\(|\)|,|[^\s(),]+)`)

// Tokenize parses src into a sequence of top-level items.
func Tokenize(src string) ([]treematch.Item[string], error) {
	toks := tokenize(src)
	items, rest, err := parseSeq(toks, ")")
	if err != nil {
		return nil, err
	}
	if len(rest) != 0 {
		return nil, errors.Errorf("unexpected trailing input starting at %q", rest[0])
	}
	return items, nil
}

func tokenize(src string) []string {
	matches := tokenPattern.FindAllStringSubmatch(src, -1)
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		out = append(out, m[1])
	}
	return out
}

// parseSeq consumes items until it sees stopAt (not itself consumed) or
// runs out of tokens, returning the remaining unconsumed tokens.
func parseSeq(toks []string, stopAt string) ([]treematch.Item[string], []string, error) {
	var items []treematch.Item[string]
	for len(toks) > 0 {
		if toks[0] == stopAt {
			return items, toks, nil
		}
		if toks[0] == "," {
			toks = toks[1:]
			continue
		}
		item, rest, err := parseOne(toks)
		if err != nil {
			return nil, nil, err
		}
		items = append(items, item)
		toks = rest
	}
	return items, toks, nil
}

const groupTag = "paren"

func parseOne(toks []string) (treematch.Item[string], []string, error) {
	if len(toks) == 0 {
		return treematch.Item[string]{}, nil, errors.New("unexpected end of input")
	}

	head, rest := toks[0], toks[1:]
	switch head {
	case ")", ",":
		return treematch.Item[string]{}, nil, errors.Errorf("unexpected token %q", head)
	case "(":
		children, rest2, err := parseSeq(rest, ")")
		if err != nil {
			return treematch.Item[string]{}, nil, err
		}
		if len(rest2) == 0 || rest2[0] != ")" {
			return treematch.Item[string]{}, nil, errors.New("unterminated group")
		}
		return treematch.Group(groupTag, children), rest2[1:], nil
	default:
		if isPlaceholderWord(head) {
			return treematch.Placeholder[string](head), rest, nil
		}
		return treematch.Atom(head), rest, nil
	}
}

// isPlaceholderWord reports whether word uses the placeholder naming
// grammar (a leading underscore). Any other word, including a bare "g",
// is an atom.
func isPlaceholderWord(word string) bool {
	return strings.HasPrefix(word, "_")
}
