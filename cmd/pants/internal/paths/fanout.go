// Copyright (C) 2025 Jason Barnett
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package paths

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/codes"
	"golang.org/x/sync/errgroup"
)

// FindPathsToAll enumerates paths from one root to every destination.
//
// # Description
//
// The adjacency map for root is resolved through provider exactly once —
// transitive closure first, then successor lists for the whole closure —
// and shared read-only by one concurrent Search per destination. Results
// are slotted by destination index, so the output order matches the input
// destination order regardless of goroutine scheduling.
//
// # Inputs
//
//   - ctx: Context for cancellation. Must not be nil.
//   - provider: Adjacency oracle. Errors propagate unchanged.
//   - root: The source target.
//   - dests: Destination targets, in output order.
//   - sink: Progress sink shared by all destination searches. May be nil.
//
// # Outputs
//
//   - [][]Path: Per-destination path lists, indexed like dests.
//   - error: Non-nil on provider failure or cancellation; no partial
//     results are returned.
func FindPathsToAll(ctx context.Context, provider AdjacencyProvider, root Address, dests []Address, sink ProgressSink) ([][]Path, error) {
	ctx, span := startRootSpan(ctx, root, len(dests))
	defer span.End()
	start := time.Now()

	notify(sink, fmt.Sprintf("Loading dependencies for %s...", root))
	closure, err := provider.TransitiveClosure(ctx, root)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("resolving transitive closure of %s: %w", root, err)
	}

	notify(sink, fmt.Sprintf("Resolving %d targets...", len(closure)))
	adj, err := provider.Successors(ctx, closure)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("resolving dependencies of %s: %w", root, err)
	}

	notify(sink, fmt.Sprintf("Finding paths to %d destinations...", len(dests)))
	results := make([][]Path, len(dests))
	stats := make([]SearchStats, len(dests))

	g, gctx := errgroup.WithContext(ctx)
	for i, dest := range dests {
		i, dest := i, dest
		g.Go(func() error {
			notify(sink, fmt.Sprintf("Finding paths from %s to %s...", root, dest))
			search := NewSearch(gctx, adj, root, dest, sink)
			var found []Path
			for {
				path, ok := search.Next()
				if !ok {
					break
				}
				found = append(found, path)
			}
			results[i] = found
			stats[i] = search.Stats()
			// A search cannot fail on its own; only cancellation cuts it
			// short, and a cancelled search must not pass for a complete
			// one.
			return gctx.Err()
		})
	}
	if err := g.Wait(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	var total SearchStats
	pathCount := 0
	for i := range results {
		pathCount += len(results[i])
		total.PathsFound += stats[i].PathsFound
		total.EdgesVisited += stats[i].EdgesVisited
	}
	setRootSpanResult(span, len(closure), pathCount)
	recordSearchMetrics(ctx, time.Since(start), total)

	return results, nil
}

// FindAllPaths enumerates paths from every root to every destination and
// flattens the results.
//
// # Description
//
// One concurrent FindPathsToAll per root, each resolving its own adjacency
// map. The flattened output iterates roots in input order, destinations in
// input order within each root, and discovery order within each pair.
// Shortest-first ordering holds within a pair only, never across pairs.
//
// The first failure cancels the remaining work and propagates; there is no
// partial-result salvage. Zero roots or zero destinations yield an empty
// result and no error.
func FindAllPaths(ctx context.Context, provider AdjacencyProvider, roots, dests []Address, sink ProgressSink) ([]Path, error) {
	perRoot := make([][][]Path, len(roots))

	g, gctx := errgroup.WithContext(ctx)
	for i, root := range roots {
		i, root := i, root
		g.Go(func() error {
			result, err := FindPathsToAll(gctx, provider, root, dests, sink)
			if err != nil {
				return err
			}
			perRoot[i] = result
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var flattened []Path
	for _, byDest := range perRoot {
		for _, pathList := range byDest {
			flattened = append(flattened, pathList...)
		}
	}
	return flattened, nil
}
