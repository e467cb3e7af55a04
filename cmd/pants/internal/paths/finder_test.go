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
	"reflect"
	"strings"
	"sync"
	"testing"
)

// collectSink records every notice it receives.
type collectSink struct {
	mu      sync.Mutex
	notices []string
}

func (s *collectSink) Notify(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notices = append(s.notices, msg)
}

func (s *collectSink) count(substr string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, msg := range s.notices {
		if strings.Contains(msg, substr) {
			n++
		}
	}
	return n
}

// panicSink panics on every notice.
type panicSink struct{}

func (panicSink) Notify(string) { panic("sink exploded") }

func pathsEqual(t *testing.T, got []Path, want []Path) {
	t.Helper()
	if !reflect.DeepEqual(got, want) {
		t.Errorf("paths = %v, want %v", got, want)
	}
}

func TestFindPaths_SelfPath(t *testing.T) {
	// Adjacency content is irrelevant for root == destination.
	adj := AdjacencyMap{
		"A": {"B"},
		"B": {"A"},
	}

	got := FindPaths(context.Background(), adj, "A", "A", nil)
	pathsEqual(t, got, []Path{{"A"}})
}

func TestFindPaths_Direct(t *testing.T) {
	adj := AdjacencyMap{"A": {"B"}}

	got := FindPaths(context.Background(), adj, "A", "B", nil)
	pathsEqual(t, got, []Path{{"A", "B"}})
}

func TestFindPaths_DiamondOrdering(t *testing.T) {
	// A -> B, A -> C, B -> D, C -> D. Both paths have length 3; adjacency
	// order of A breaks the tie.
	adj := AdjacencyMap{
		"A": {"B", "C"},
		"B": {"D"},
		"C": {"D"},
	}

	got := FindPaths(context.Background(), adj, "A", "D", nil)
	pathsEqual(t, got, []Path{{"A", "B", "D"}, {"A", "C", "D"}})
}

func TestFindPaths_ShortestFirst(t *testing.T) {
	// Direct edge plus a two-hop detour.
	adj := AdjacencyMap{
		"A": {"B", "D"},
		"B": {"C"},
		"C": {"D"},
	}

	got := FindPaths(context.Background(), adj, "A", "D", nil)
	if len(got) < 2 {
		t.Fatalf("expected at least 2 paths, got %v", got)
	}
	for i := 1; i < len(got); i++ {
		if len(got[i]) < len(got[i-1]) {
			t.Errorf("path %d (%v) is shorter than path %d (%v)", i, got[i], i-1, got[i-1])
		}
	}
	pathsEqual(t, got[:1], []Path{{"A", "D"}})
}

func TestFindPaths_CycleTerminates(t *testing.T) {
	// A -> B, B -> A, A -> C: the A/B cycle must not loop forever.
	adj := AdjacencyMap{
		"A": {"B", "C"},
		"B": {"A"},
	}

	got := FindPaths(context.Background(), adj, "A", "C", nil)

	// The B -> A edge re-reaches A, so [A,B,A,C] is also a legitimate
	// path under visited-edge semantics; after that every edge is spent.
	pathsEqual(t, got, []Path{{"A", "C"}, {"A", "B", "A", "C"}})
}

func TestFindPaths_NoPath(t *testing.T) {
	adj := AdjacencyMap{
		"A": {"B"},
		"Z": {"A"},
	}

	got := FindPaths(context.Background(), adj, "A", "Z", nil)
	if got != nil {
		t.Errorf("expected no paths, got %v", got)
	}
}

func TestFindPaths_UnknownRoot(t *testing.T) {
	adj := AdjacencyMap{"A": {"B"}}

	got := FindPaths(context.Background(), adj, "X", "B", nil)
	if got != nil {
		t.Errorf("expected no paths for unknown root, got %v", got)
	}
}

func TestSearch_NoEdgeExpandedTwice(t *testing.T) {
	// Duplicate successor entries put the same edge on the queue twice;
	// only the first dequeue may expand it.
	adj := AdjacencyMap{
		"A": {"B", "B"},
		"B": {"D"},
	}

	search := NewSearch(context.Background(), adj, "A", "D", nil)
	var got []Path
	for {
		path, ok := search.Next()
		if !ok {
			break
		}
		got = append(got, path)
	}

	pathsEqual(t, got, []Path{{"A", "B", "D"}})

	// Expanded edges: (-, A) and (A, B). The duplicate (A, B) entry is
	// skipped, and the completed path's (B, D) edge is never expanded.
	if stats := search.Stats(); stats.EdgesVisited != 2 {
		t.Errorf("EdgesVisited = %d, want 2", stats.EdgesVisited)
	}
}

func TestSearch_LazyStopsExpansion(t *testing.T) {
	// Long chain behind the direct edge; pulling only the first path must
	// leave the chain unexplored.
	adj := AdjacencyMap{
		"A": {"Z", "B"},
		"B": {"C"},
		"C": {"D"},
		"D": {"Z"},
	}

	search := NewSearch(context.Background(), adj, "A", "Z", nil)
	path, ok := search.Next()
	if !ok {
		t.Fatal("expected a first path")
	}
	pathsEqual(t, []Path{path}, []Path{{"A", "Z"}})

	// Only the root edge has been expanded so far.
	if stats := search.Stats(); stats.EdgesVisited != 1 {
		t.Errorf("EdgesVisited after one pull = %d, want 1", stats.EdgesVisited)
	}
}

func TestSearch_ContextCancellation(t *testing.T) {
	adj := AdjacencyMap{
		"A": {"B"},
		"B": {"C"},
		"C": {"Z"},
	}

	ctx, cancel := context.WithCancel(context.Background())
	search := NewSearch(ctx, adj, "A", "Z", nil)
	cancel()

	if path, ok := search.Next(); ok {
		t.Errorf("expected no path after cancellation, got %v", path)
	}
	if stats := search.Stats(); stats.EdgesVisited != 0 {
		t.Errorf("EdgesVisited after cancellation = %d, want 0", stats.EdgesVisited)
	}
}

func TestSearch_SelfPathIgnoresCancellation(t *testing.T) {
	// The self-path is produced at construction; nothing is expanded.
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	search := NewSearch(ctx, AdjacencyMap{}, "A", "A", nil)
	path, ok := search.Next()
	if !ok || len(path) != 1 || path[0] != "A" {
		t.Errorf("self path = %v ok=%v, want [A] true", path, ok)
	}
	if _, ok := search.Next(); ok {
		t.Error("expected exactly one self path")
	}
}

func TestSearch_ProgressCadence(t *testing.T) {
	// Wide two-level graph: root -> mid_i -> dest for 1100 mids. Expanding
	// the root edge plus 1100 mid edges crosses the 1000-edge threshold
	// once, and 1100 found paths trigger eleven per-100 notices.
	const mids = 1100
	adj := AdjacencyMap{}
	for i := 0; i < mids; i++ {
		mid := Address(fmt.Sprintf("mid%04d", i))
		adj["root"] = append(adj["root"], mid)
		adj[mid] = []Address{"dest"}
	}

	sink := &collectSink{}
	got := FindPaths(context.Background(), adj, "root", "dest", sink)

	if len(got) != mids {
		t.Fatalf("found %d paths, want %d", len(got), mids)
	}
	if n := sink.count("visited"); n != 1 {
		t.Errorf("edge progress notices = %d, want 1", n)
	}
	if n := sink.count("paths so far"); n != mids/progressPathInterval {
		t.Errorf("path progress notices = %d, want %d", n, mids/progressPathInterval)
	}
}

func TestSearch_PanickingSinkDoesNotBreakSearch(t *testing.T) {
	const mids = 1100
	adj := AdjacencyMap{}
	for i := 0; i < mids; i++ {
		mid := Address(fmt.Sprintf("mid%04d", i))
		adj["root"] = append(adj["root"], mid)
		adj[mid] = []Address{"dest"}
	}

	got := FindPaths(context.Background(), adj, "root", "dest", panicSink{})
	if len(got) != mids {
		t.Errorf("found %d paths with panicking sink, want %d", len(got), mids)
	}
}

func TestFindPaths_ParallelRoutesRevisitNode(t *testing.T) {
	// Two distinct edges into B (from A and from C) mean B appears on two
	// different reported paths; preserved behavior, paths need not be
	// node-simple.
	adj := AdjacencyMap{
		"A": {"B", "C"},
		"B": {"Z"},
		"C": {"B"},
	}

	got := FindPaths(context.Background(), adj, "A", "Z", nil)
	pathsEqual(t, got, []Path{{"A", "B", "Z"}, {"A", "C", "B", "Z"}})
}
