// Copyright (C) 2025 Jason Barnett
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package paths

import "context"

// Progress notification cadence.
const (
	// progressEdgeInterval is the minimum number of newly expanded edges
	// between "Exploring paths..." notices.
	progressEdgeInterval = 1000

	// progressPathInterval triggers a "Found N paths so far..." notice on
	// every Nth found path.
	progressPathInterval = 100
)

// Address identifies a build target. Addresses are opaque to this package;
// equality is the only operation the engine needs.
type Address string

// Edge is an ordered (predecessor, successor) pair scoped to a single
// search. The zero-value Pred marks the synthetic starting edge of a run:
// the root itself has no predecessor.
type Edge struct {
	Pred Address
	Succ Address
}

// AdjacencyMap maps a target to its ordered successor list. Successor order
// determines the tie-break order among equal-length paths, so it must be
// deterministic. The map is built once per root and is read-only for the
// duration of every Search sharing it.
type AdjacencyMap map[Address][]Address

// Path is an ordered sequence of addresses, root first and destination
// last. A root-equals-destination path has length 1. Paths are never
// mutated after the iterator yields them.
type Path []Address

// Strings converts a Path to plain strings for rendering.
func (p Path) Strings() []string {
	out := make([]string, len(p))
	for i, addr := range p {
		out[i] = string(addr)
	}
	return out
}

// AdjacencyProvider supplies reachability data for a root target. The
// engine treats it as a pure oracle: results are used as given, errors
// propagate unchanged, and nothing is retried.
//
// Resolution is expensive, so FindPathsToAll calls it exactly once per
// root no matter how many destinations share that root.
type AdjacencyProvider interface {
	// TransitiveClosure returns every target reachable from root via
	// dependency edges, including root itself.
	TransitiveClosure(ctx context.Context, root Address) ([]Address, error)

	// Successors returns the ordered immediate dependencies of each given
	// target. Targets without outgoing edges may be omitted from the map.
	Successors(ctx context.Context, nodes []Address) (AdjacencyMap, error)
}

// SearchStats reports counters accumulated by one Search run.
type SearchStats struct {
	// PathsFound is the number of paths yielded so far.
	PathsFound int

	// EdgesVisited is the number of distinct edges expanded so far. An
	// edge reached again through a different partial path is not counted
	// twice.
	EdgesVisited int
}
