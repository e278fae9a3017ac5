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
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/fsnotify/fsnotify"
	"github.com/peterbourgon/ff/v3/ffcli"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/sourcegraph/treematch"
	"github.com/sourcegraph/treematch/internal/metrics"
	"github.com/sourcegraph/treematch/internal/rlog"
	"github.com/sourcegraph/treematch/internal/rtrace"
	"github.com/sourcegraph/treematch/lexer"
	"github.com/sourcegraph/treematch/rulefile"
)

var replaceMetrics = metrics.NewRedFMetrics("treematch_replace")

func replaceCmd() *ffcli.Command {
	fs := flag.NewFlagSet("treematch replace", flag.ExitOnError)
	rulesPath := fs.String("rules", "", "path to a .rules.yaml rule file")
	watch := fs.Bool("watch", false, "re-run whenever the rule file changes")

	return &ffcli.Command{
		Name:       "replace",
		ShortUsage: "treematch replace -rules <rules.yaml> <file>...",
		ShortHelp:  "apply a rule file's pattern/replacement rules to one or more files",
		FlagSet:    fs,
		Exec: func(ctx context.Context, args []string) error {
			if *rulesPath == "" {
				return errors.New("-rules is required")
			}
			if len(args) == 0 {
				return errors.New("at least one input file is required")
			}

			if err := runReplace(ctx, *rulesPath, args); err != nil {
				return err
			}
			if !*watch {
				return nil
			}
			return watchAndRerun(ctx, *rulesPath, args)
		},
	}
}

// runReplace loads rules once and applies them to every file concurrently;
// each file is an independent top-level ReplaceAll call, so fanning them
// out across goroutines doesn't need any cache sharing.
func runReplace(ctx context.Context, rulesPath string, files []string) error {
	rf, err := rulefile.Load(rulesPath)
	if err != nil {
		return err
	}
	compiled, err := rf.Compile()
	if err != nil {
		return err
	}

	g, _ := errgroup.WithContext(ctx)
	for _, file := range files {
		file := file
		g.Go(func() error {
			return applyRulesToFile(file, compiled)
		})
	}
	return g.Wait()
}

func applyRulesToFile(path string, rules []rulefile.Compiled) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "reading %q", path)
	}

	items, err := lexer.Tokenize(string(src))
	if err != nil {
		return errors.Wrapf(err, "tokenizing %q", path)
	}

	callID := rtrace.NewCallID()
	_, span := rtrace.StartCall(context.Background(), "treematch.replace_all", callID, 0, len(items))
	defer span.End()

	start := time.Now()
	total := len(items)
	matches := 0
	for _, rule := range rules {
		tmpl := rule.Replacement
		counting := treematch.ReplacerFunc[string](func(m treematch.Match[string]) []treematch.Item[string] {
			matches++
			return tmpl.Expand(m)
		})
		items = treematch.ReplaceAll(items, rule.Pattern, counting)
	}
	replaceMetrics.Observe(time.Since(start), false)
	rtrace.RecordOutcome(span, matches)

	fmt.Printf("%s: %s items -> %s items across %d rules\n",
		filepath.Base(path), humanize.Comma(int64(total)), humanize.Comma(int64(len(items))), len(rules))
	return nil
}

// watchAndRerun reloads rulesPath on every write and reapplies it to files,
// in the same fsnotify.NewWatcher/watcher.Add shape zoekt's
// cmd/zoekt-indexserver config.go uses to watch its own config file.
func watchAndRerun(ctx context.Context, rulesPath string, files []string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, "creating file watcher")
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(rulesPath)); err != nil {
		return errors.Wrapf(err, "watching %q", filepath.Dir(rulesPath))
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != filepath.Clean(rulesPath) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			rlog.Get().Info("rule file changed, reloading", zap.String("path", rulesPath))
			if err := runReplace(ctx, rulesPath, files); err != nil {
				rlog.Get().Warn("reload failed", zap.Error(err))
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			rlog.Get().Warn("watcher error", zap.Error(err))
		}
	}
}
