// Copyright (C) 2025 Jason Barnett
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package paths enumerates directed paths between build targets in a
// dependency graph.
//
// The engine has three layers:
//
//   - Search: a cycle-safe breadth-first search over a precomputed
//     adjacency map for a single (root, destination) pair. Paths come out
//     lazily through a pull iterator, shortest first.
//   - FindPathsToAll: resolves the adjacency map for one root exactly once
//     and runs one Search per destination concurrently over it.
//   - FindAllPaths: runs one FindPathsToAll per root concurrently and
//     flattens the results in input order.
//
// Adjacency data comes from an AdjacencyProvider, typically a loaded
// buildgraph.Graph. The engine never mutates the adjacency map, so it is
// shared without locking across all destination searches for a root.
//
// Cycle safety comes from tracking visited edges, not visited nodes: each
// (predecessor, successor) edge is expanded at most once per search, which
// guarantees termination on cyclic graphs while still allowing a node to
// appear on multiple reported paths when distinct edges reach it.
package paths
