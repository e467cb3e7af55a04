// Copyright (C) 2025 Jason Barnett
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package buildgraph

import (
	"context"

	"github.com/jasonwbarnett/pants/cmd/pants/internal/paths"
)

// Target is one node of the dependency graph: an address plus its ordered
// direct dependencies.
type Target struct {
	Address      paths.Address
	Dependencies []paths.Address
}

// Graph is an in-memory dependency graph with a deterministic target
// order. It implements paths.AdjacencyProvider.
//
// # Thread Safety
//
// Graph is immutable after loading and safe for concurrent use.
type Graph struct {
	targets map[paths.Address]*Target
	order   []paths.Address
}

// newGraph creates an empty graph sized for n targets.
func newGraph(n int) *Graph {
	return &Graph{
		targets: make(map[paths.Address]*Target, n),
		order:   make([]paths.Address, 0, n),
	}
}

// add inserts a target. Later duplicates overwrite dependencies but keep
// the original position.
func (g *Graph) add(addr paths.Address, deps []paths.Address) {
	if existing, ok := g.targets[addr]; ok {
		existing.Dependencies = deps
		return
	}
	g.targets[addr] = &Target{Address: addr, Dependencies: deps}
	g.order = append(g.order, addr)
}

// Len returns the number of targets in the graph.
func (g *Graph) Len() int {
	return len(g.order)
}

// Addresses returns every target address in graph order. The returned
// slice is a copy.
func (g *Graph) Addresses() []paths.Address {
	out := make([]paths.Address, len(g.order))
	copy(out, g.order)
	return out
}

// Contains reports whether addr exists in the graph.
func (g *Graph) Contains(addr paths.Address) bool {
	_, ok := g.targets[addr]
	return ok
}

// Dependencies returns the ordered direct dependencies of addr.
func (g *Graph) Dependencies(addr paths.Address) ([]paths.Address, error) {
	target, ok := g.targets[addr]
	if !ok {
		return nil, &UnknownTargetError{Address: string(addr)}
	}
	out := make([]paths.Address, len(target.Dependencies))
	copy(out, target.Dependencies)
	return out, nil
}

// Dependents returns every target with a direct dependency on addr, in
// graph order.
func (g *Graph) Dependents(addr paths.Address) ([]paths.Address, error) {
	if !g.Contains(addr) {
		return nil, &UnknownTargetError{Address: string(addr)}
	}

	var out []paths.Address
	for _, candidate := range g.order {
		for _, dep := range g.targets[candidate].Dependencies {
			if dep == addr {
				out = append(out, candidate)
				break
			}
		}
	}
	return out, nil
}

// TransitiveClosure returns every target reachable from root, including
// root, in breadth-first discovery order.
//
// # Thread Safety
//
// Safe for concurrent use.
func (g *Graph) TransitiveClosure(ctx context.Context, root paths.Address) ([]paths.Address, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !g.Contains(root) {
		return nil, &UnknownTargetError{Address: string(root), Context: "resolving transitive closure"}
	}

	closure := []paths.Address{root}
	seen := map[paths.Address]struct{}{root: {}}
	for i := 0; i < len(closure); i++ {
		for _, dep := range g.targets[closure[i]].Dependencies {
			if _, ok := seen[dep]; ok {
				continue
			}
			seen[dep] = struct{}{}
			closure = append(closure, dep)
		}
	}
	return closure, nil
}

// TransitiveDependents returns every target that transitively depends on
// addr, excluding addr itself, in breadth-first discovery order.
func (g *Graph) TransitiveDependents(addr paths.Address) ([]paths.Address, error) {
	if !g.Contains(addr) {
		return nil, &UnknownTargetError{Address: string(addr)}
	}

	reverse := g.reverseEdges()
	var out []paths.Address
	frontier := []paths.Address{addr}
	seen := map[paths.Address]struct{}{addr: {}}
	for i := 0; i < len(frontier); i++ {
		for _, dependent := range reverse[frontier[i]] {
			if _, ok := seen[dependent]; ok {
				continue
			}
			seen[dependent] = struct{}{}
			frontier = append(frontier, dependent)
			out = append(out, dependent)
		}
	}
	return out, nil
}

// Successors returns the ordered dependency lists for the given targets.
// Unknown targets are an error; the caller is expected to pass a closure
// produced by this graph.
//
// # Thread Safety
//
// Safe for concurrent use.
func (g *Graph) Successors(ctx context.Context, nodes []paths.Address) (paths.AdjacencyMap, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	adj := make(paths.AdjacencyMap, len(nodes))
	for _, node := range nodes {
		target, ok := g.targets[node]
		if !ok {
			return nil, &UnknownTargetError{Address: string(node), Context: "resolving dependencies"}
		}
		adj[node] = target.Dependencies
	}
	return adj, nil
}

// reverseEdges builds the dependent-lists map, preserving graph order
// within each list.
func (g *Graph) reverseEdges() map[paths.Address][]paths.Address {
	reverse := make(map[paths.Address][]paths.Address, len(g.targets))
	for _, addr := range g.order {
		for _, dep := range g.targets[addr].Dependencies {
			reverse[dep] = append(reverse[dep], addr)
		}
	}
	return reverse
}

var _ paths.AdjacencyProvider = (*Graph)(nil)
