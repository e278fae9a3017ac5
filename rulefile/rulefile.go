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

// Package rulefile loads pattern/replacement rules for the treematch CLI
// from a YAML file, in the same config-entry-list shape zoekt's
// cmd/zoekt-indexserver config.go reads its list of ConfigEntry values
// from.
package rulefile

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/sourcegraph/treematch"
	"github.com/sourcegraph/treematch/lexer"
)

// Rule is one pattern -> replacement entry as written in a rule file.
// Both Match and Replace are parsed by lexer.Tokenize into an Item tree of
// string tokens before use.
type Rule struct {
	Name    string `yaml:"name"`
	Match   string `yaml:"match"`
	Replace string `yaml:"replace"`
}

// File is the top-level shape of a rule file: a named, ordered list of
// rules, applied in order by the CLI's replace subcommand.
type File struct {
	Rules []Rule `yaml:"rules"`
}

// Load reads and parses a rule file at path.
func Load(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening rule file %q", path)
	}
	defer f.Close()

	return Parse(f, path)
}

// Parse decodes a rule file from r. name is used only for error messages.
func Parse(r io.Reader, name string) (*File, error) {
	var f File
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&f); err != nil {
		return nil, errors.Wrapf(err, "parsing rule file %q", name)
	}
	for i, rule := range f.Rules {
		if rule.Match == "" {
			return nil, errors.Errorf("rule file %q: rule %d (%s) has an empty match pattern", name, i, rule.Name)
		}
	}
	return &f, nil
}

// Compiled is a Rule with its pattern and replacement already tokenized,
// ready to feed into treematch.ReplaceAll.
type Compiled struct {
	Name        string
	Pattern     []treematch.Item[string]
	Replacement treematch.Template[string]
}

// Compile tokenizes every rule's Match/Replace text via lexer.Tokenize.
func (f *File) Compile() ([]Compiled, error) {
	out := make([]Compiled, 0, len(f.Rules))
	for _, rule := range f.Rules {
		pat, err := lexer.Tokenize(rule.Match)
		if err != nil {
			return nil, errors.Wrapf(err, "rule %q: match pattern", rule.Name)
		}
		repl, err := lexer.Tokenize(rule.Replace)
		if err != nil {
			return nil, errors.Wrapf(err, "rule %q: replacement", rule.Name)
		}
		out = append(out, Compiled{
			Name:        rule.Name,
			Pattern:     pat,
			Replacement: treematch.Template[string](repl),
		})
	}
	return out, nil
}
