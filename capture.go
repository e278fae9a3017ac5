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
	"go.uber.org/zap"

	"github.com/sourcegraph/treematch/internal/rlog"
)

// setCapture records a placeholder's captured items into the match. A name
// reused by a nested group match overwrites whatever the same name already
// captured at an outer level — the reference engine this is grounded on
// does this silently; we additionally log it at debug level, since a
// silent overwrite is the kind of thing worth surfacing to a caller who
// turned logging on (see spec.md §9, open question 3).
func setCapture[T comparable](m *Match[T], name PlaceholderName, items []Item[T]) {
	if _, exists := m.Captures[name]; exists {
		rlog.Debug("treematch: capture name reused, overwriting",
			zap.String("name", string(name)))
	}
	m.Captures[name] = items
}
