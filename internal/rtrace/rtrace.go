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

// Package rtrace wraps a top-level matcher call in an OpenTelemetry span,
// in the same style zoekt's cmd/zoekt-indexserver wraps its fetch/index
// operations: a package-level tracer, a span per call carrying attributes
// describing the call, ended via defer.
package rtrace

import (
	"context"

	"github.com/rs/xid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("github.com/sourcegraph/treematch")

// CallID is a short, sortable, unique-enough-in-practice identifier
// attached to one top-level FindAll/ReplaceAll call, for correlating log
// lines with the span that covers the same call.
type CallID string

// NewCallID mints a fresh correlation ID.
func NewCallID() CallID {
	return CallID(xid.New().String())
}

// StartCall opens a span named op, tagged with id and the pattern/haystack
// sizes, and returns the derived context plus the span to End via defer.
func StartCall(ctx context.Context, op string, id CallID, patLen, itemLen int) (context.Context, trace.Span) {
	return tracer.Start(ctx, op, trace.WithAttributes(
		attribute.String("treematch.call_id", string(id)),
		attribute.Int("treematch.pattern_len", patLen),
		attribute.Int("treematch.items_len", itemLen),
	))
}

// RecordOutcome annotates span with the result of the call once it's known.
func RecordOutcome(span trace.Span, matchCount int) {
	span.SetAttributes(attribute.Int("treematch.match_count", matchCount))
}
