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
)

// Search is a lazy breadth-first enumeration of the paths from one root to
// one destination over a shared adjacency map.
//
// # Description
//
// Paths are produced through the pull iterator Next, ordered by length,
// shortest first; equal-length paths follow adjacency order and dequeue
// order, so output is deterministic for a deterministic AdjacencyMap.
// Cycles are handled by never expanding the same incoming edge twice.
//
// No work happens between Next calls: a caller that stops pulling stops
// all further edge expansion, which keeps destinations with enormous path
// counts cheap to abandon.
//
// # Thread Safety
//
// A Search owns its queue and visited-edge set exclusively and must be
// used from a single goroutine. The adjacency map is only read, so any
// number of Search instances may share one.
type Search struct {
	ctx  context.Context
	adj  AdjacencyMap
	root Address
	dest Address
	sink ProgressSink

	queue   []Path
	visited map[Edge]struct{}
	found   []Path // yielded buffer, filled during expansion
	done    bool

	stats      SearchStats
	lastNotice int
}

// NewSearch prepares a path search from root to dest over adj. A nil sink
// disables progress notices.
func NewSearch(ctx context.Context, adj AdjacencyMap, root, dest Address, sink ProgressSink) *Search {
	s := &Search{
		ctx:     ctx,
		adj:     adj,
		root:    root,
		dest:    dest,
		sink:    sink,
		visited: make(map[Edge]struct{}),
	}

	if root == dest {
		// The trivial self-path; no graph exploration occurs.
		s.found = []Path{{root}}
	} else {
		s.queue = []Path{{root}}
	}
	return s
}

// Next returns the next path, or ok=false when the search is exhausted or
// the context is cancelled. Cancellation is checked before every dequeue,
// so iteration stops promptly without background work.
func (s *Search) Next() (path Path, ok bool) {
	for {
		if len(s.found) > 0 {
			path = s.found[0]
			s.found = s.found[1:]
			return path, true
		}
		if s.done || len(s.queue) == 0 {
			s.done = true
			return nil, false
		}
		if s.ctx.Err() != nil {
			s.done = true
			return nil, false
		}
		s.expand()
	}
}

// Stats returns the counters accumulated so far.
func (s *Search) Stats() SearchStats {
	return s.stats
}

// expand dequeues one partial path and walks its successors, buffering any
// completed paths and enqueuing the rest.
func (s *Search) expand() {
	cur := s.queue[0]
	s.queue = s.queue[1:]

	current := cur[len(cur)-1]
	var pred Address
	if len(cur) > 1 {
		pred = cur[len(cur)-2]
	}
	edge := Edge{Pred: pred, Succ: current}

	// The same node can be reached through different partial paths; once
	// its incoming edge has been expanded by an earlier, shorter dequeue,
	// re-expanding it would only duplicate work (and on cycles, never
	// terminate).
	if _, seen := s.visited[edge]; seen {
		return
	}
	s.visited[edge] = struct{}{}

	s.stats.EdgesVisited++
	if s.stats.EdgesVisited-s.lastNotice >= progressEdgeInterval {
		notify(s.sink, fmt.Sprintf("Exploring paths... Found %d paths, visited %d edges",
			s.stats.PathsFound, s.stats.EdgesVisited))
		s.lastNotice = s.stats.EdgesVisited
	}

	for _, succ := range s.adj[current] {
		next := make(Path, 0, len(cur)+1)
		next = append(append(next, cur...), succ)

		if succ == s.dest {
			// Completed paths are yielded immediately, never re-enqueued.
			s.stats.PathsFound++
			if s.stats.PathsFound%progressPathInterval == 0 {
				notify(s.sink, fmt.Sprintf("Found %d paths so far...", s.stats.PathsFound))
			}
			s.found = append(s.found, next)
		} else {
			s.queue = append(s.queue, next)
		}
	}
}

// FindPaths runs a Search to exhaustion and returns every path from root
// to dest. The result is empty (not an error) when no path exists.
func FindPaths(ctx context.Context, adj AdjacencyMap, root, dest Address, sink ProgressSink) []Path {
	search := NewSearch(ctx, adj, root, dest, sink)

	var result []Path
	for {
		path, ok := search.Next()
		if !ok {
			return result
		}
		result = append(result, path)
	}
}
