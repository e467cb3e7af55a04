// Copyright (C) 2025 Jason Barnett
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package paths

import (
	"context"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// Package-level tracer and meter for path queries.
var (
	tracer = otel.Tracer("pants.paths")
	meter  = otel.Meter("pants.paths")
)

// Metrics for path enumeration.
var (
	searchLatency metric.Float64Histogram
	pathsFound    metric.Int64Counter
	edgesVisited  metric.Int64Counter

	metricsOnce sync.Once
	metricsErr  error
)

// initMetrics initializes the metrics. Safe to call multiple times.
func initMetrics() error {
	metricsOnce.Do(func() {
		var err error

		searchLatency, err = meter.Float64Histogram(
			"paths_search_duration_seconds",
			metric.WithDescription("Duration of per-root path searches"),
			metric.WithUnit("s"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		pathsFound, err = meter.Int64Counter(
			"paths_found_total",
			metric.WithDescription("Total number of paths found"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		edgesVisited, err = meter.Int64Counter(
			"paths_edges_visited_total",
			metric.WithDescription("Total number of graph edges expanded"),
		)
		if err != nil {
			metricsErr = err
			return
		}
	})
	return metricsErr
}

// recordSearchMetrics records counters for one completed per-root search.
func recordSearchMetrics(ctx context.Context, duration time.Duration, stats SearchStats) {
	if err := initMetrics(); err != nil {
		return
	}

	searchLatency.Record(ctx, duration.Seconds())
	pathsFound.Add(ctx, int64(stats.PathsFound))
	edgesVisited.Add(ctx, int64(stats.EdgesVisited))
}

// startRootSpan creates a span covering the fan-out for one root.
func startRootSpan(ctx context.Context, root Address, destCount int) (context.Context, trace.Span) {
	return tracer.Start(ctx, "paths.FindPathsToAll",
		trace.WithAttributes(
			attribute.String("paths.root", string(root)),
			attribute.Int("paths.destination_count", destCount),
		),
	)
}

// setRootSpanResult sets result attributes on a per-root span.
func setRootSpanResult(span trace.Span, closureSize, pathCount int) {
	span.SetAttributes(
		attribute.Int("paths.closure_size", closureSize),
		attribute.Int("paths.path_count", pathCount),
	)
}
