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

// Package metrics provides RED (rate/errors/duration) instrumentation for
// top-level matcher calls.
package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Example usage:
//
//	m := NewRedFMetrics("treematch_find_all", WithLabels("mode"))
//	start := time.Now()
//	_, ok := engine.Do()
//	m.Observe(time.Since(start), !ok, "begin")

// RedFMetrics tracks how often an operation ran, how long it took, and how
// often it failed.
type RedFMetrics struct {
	Count    *prometheus.CounterVec
	Duration *prometheus.HistogramVec

	ErrorCount    *prometheus.CounterVec
	ErrorDuration *prometheus.HistogramVec
}

// Observe records one call. failed distinguishes a "no match found" outcome
// from a successful one; the matcher itself never returns a Go error (a
// non-match is absence of a Match, per spec.md §7), so this stands in for
// the err != nil branch the teacher's RedFMetrics.Observe switches on.
func (m *RedFMetrics) Observe(d time.Duration, failed bool, lvals ...string) {
	if failed {
		m.ErrorCount.WithLabelValues(lvals...).Inc()
		m.ErrorDuration.WithLabelValues(lvals...).Observe(d.Seconds())
		return
	}

	m.Count.WithLabelValues(lvals...).Inc()
	m.Duration.WithLabelValues(lvals...).Observe(d.Seconds())
}

type redfMetricOptions struct {
	countHelp    string
	durationHelp string

	errorsCountHelp    string
	errorsDurationHelp string

	labels          []string
	durationBuckets []float64
}

// RedfMetricsOption alters the default behavior of NewRedFMetrics.
type RedfMetricsOption func(o *redfMetricOptions)

// WithLabels overrides the default (empty) labels for all metrics.
func WithLabels(labels ...string) RedfMetricsOption {
	return func(o *redfMetricOptions) { o.labels = labels }
}

// WithDurationBuckets overrides the default histogram bucket values.
func WithDurationBuckets(buckets []float64) RedfMetricsOption {
	return func(o *redfMetricOptions) {
		if len(buckets) != 0 {
			o.durationBuckets = buckets
		}
	}
}

// NewRedFMetrics builds the four counters/histograms for an operation named
// name, registering none of them (callers register against their own
// *prometheus.Registry, so tests don't collide on the default one).
func NewRedFMetrics(name string, overrides ...RedfMetricsOption) *RedFMetrics {
	options := &redfMetricOptions{
		countHelp:          fmt.Sprintf("Number of successful %s calls", name),
		durationHelp:       fmt.Sprintf("Time in seconds spent in successful %s calls", name),
		errorsCountHelp:    fmt.Sprintf("Number of %s calls that found no match", name),
		errorsDurationHelp: fmt.Sprintf("Time in seconds spent in %s calls that found no match", name),

		labels:          nil,
		durationBuckets: prometheus.DefBuckets,
	}

	for _, override := range overrides {
		override(options)
	}

	return &RedFMetrics{
		Count: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: fmt.Sprintf("%s_total", name),
			Help: options.countHelp,
		}, options.labels),

		Duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    fmt.Sprintf("%s_duration_seconds", name),
			Help:    options.durationHelp,
			Buckets: options.durationBuckets,
		}, options.labels),

		ErrorCount: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: fmt.Sprintf("%s_no_match_total", name),
			Help: options.errorsCountHelp,
		}, options.labels),

		ErrorDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    fmt.Sprintf("%s_no_match_duration_seconds", name),
			Help:    options.errorsDurationHelp,
			Buckets: options.durationBuckets,
		}, options.labels),
	}
}
