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

// Command treematch is a small CLI wrapping find/replace over text parsed
// by the lexer package, in the same rootConfig/ffcli.Command shape zoekt's
// cmd/zoekt-sourcegraph-indexserver debug subcommands use.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/peterbourgon/ff/v3/ffcli"
	"go.uber.org/zap"

	"github.com/sourcegraph/treematch/internal/rlog"
)

func main() {
	logger, _ := zap.NewProduction()
	rlog.Set(logger)

	root := &ffcli.Command{
		Name:       "treematch",
		ShortUsage: "treematch <subcommand> [flags] <args>",
		ShortHelp:  "find and replace patterns in s-expression-shaped text",
		Subcommands: []*ffcli.Command{
			findCmd(),
			replaceCmd(),
		},
		Exec: func(context.Context, []string) error {
			return flag.ErrHelp
		},
	}

	if err := root.Parse(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := root.Run(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
