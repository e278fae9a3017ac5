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

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/peterbourgon/ff/v3/ffcli"
	"github.com/pkg/errors"

	"github.com/sourcegraph/treematch"
	"github.com/sourcegraph/treematch/internal/metrics"
	"github.com/sourcegraph/treematch/internal/rtrace"
	"github.com/sourcegraph/treematch/lexer"
)

var findMetrics = metrics.NewRedFMetrics("treematch_find", metrics.WithLabels("mode"))

func findCmd() *ffcli.Command {
	fs := flag.NewFlagSet("treematch find", flag.ExitOnError)
	pattern := fs.String("pattern", "", "pattern text, e.g. 'f (__a)'")
	anywhere := fs.Bool("anywhere", false, "search mode: report a single match found anywhere in the input, without the find_all scan")

	return &ffcli.Command{
		Name:       "find",
		ShortUsage: "treematch find -pattern <pattern> <file>",
		ShortHelp:  "report matches of a pattern against a file's tokenized contents",
		FlagSet:    fs,
		Exec: func(ctx context.Context, args []string) error {
			if len(args) == 0 {
				return errors.New("missing input file")
			}
			if *pattern == "" {
				return errors.New("-pattern is required")
			}

			src, err := os.ReadFile(args[0])
			if err != nil {
				return errors.Wrapf(err, "reading %q", args[0])
			}
			items, err := lexer.Tokenize(string(src))
			if err != nil {
				return errors.Wrap(err, "tokenizing input")
			}
			pat, err := lexer.Tokenize(*pattern)
			if err != nil {
				return errors.Wrap(err, "tokenizing pattern")
			}

			callID := rtrace.NewCallID()
			mode := "find_all"
			if *anywhere {
				mode = "search"
			}
			ctx, span := rtrace.StartCall(ctx, "treematch.find", callID, len(pat), len(items))
			defer span.End()

			start := time.Now()
			if *anywhere {
				m, ok := treematch.MatchItems(items, pat, treematch.ModeSearch)
				findMetrics.Observe(time.Since(start), !ok, mode)
				rtrace.RecordOutcome(span, boolToCount(ok))
				if !ok {
					fmt.Println("no match")
					return nil
				}
				fmt.Printf("match at %d, length %d\n", m.Start, m.Len)
				printCaptures(m)
				return nil
			}

			matches := treematch.FindAll(items, pat)
			findMetrics.Observe(time.Since(start), len(matches) == 0, mode)
			rtrace.RecordOutcome(span, len(matches))

			fmt.Printf("%s matches across %s items\n",
				humanize.Comma(int64(len(matches))), humanize.Comma(int64(len(items))))
			for _, m := range matches {
				fmt.Printf("  [%d, %d)\n", m.Start, m.Start+m.Len)
				printCaptures(m)
			}
			return nil
		},
	}
}

func boolToCount(ok bool) int {
	if ok {
		return 1
	}
	return 0
}

func printCaptures(m treematch.Match[string]) {
	for name, items := range m.Captures {
		var vals []string
		for _, it := range items {
			vals = append(vals, it.String())
		}
		fmt.Printf("    %s = %v\n", name, vals)
	}
}
