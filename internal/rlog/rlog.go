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

// Package rlog is treematch's thin wrapper around zap, in the spirit of
// zoekt's own log package: a lazily-initialized global logger that library
// and CLI code can reach for without threading a logger through every call
// site. Unlike zoekt's sourcegraph/log, this does not bridge to
// OpenTelemetry resources or enforce a service-wide Init() — treematch is a
// library first, and most processes embedding it will already have their
// own zap logger; Set lets them install it.
package rlog

import (
	"sync"

	"go.uber.org/zap"
)

var (
	mu     sync.RWMutex
	global *zap.Logger
)

// Set installs the logger used by package-level helpers. Passing nil
// disables logging (the default).
func Set(l *zap.Logger) {
	mu.Lock()
	defer mu.Unlock()
	global = l
}

// Get returns the currently installed logger, or a no-op logger if none
// was installed.
func Get() *zap.Logger {
	mu.RLock()
	defer mu.RUnlock()
	if global == nil {
		return zap.NewNop()
	}
	return global
}

// Debug logs at debug level through the installed logger, if any.
func Debug(msg string, fields ...zap.Field) {
	Get().Debug(msg, fields...)
}

// Warn logs at warn level through the installed logger, if any.
func Warn(msg string, fields ...zap.Field) {
	Get().Warn(msg, fields...)
}
