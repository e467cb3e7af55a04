// Copyright (C) 2025 Jason Barnett
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/jasonwbarnett/pants/cmd/pants/internal/buildgraph"
	"github.com/jasonwbarnett/pants/cmd/pants/internal/paths"
)

// =============================================================================
// COMMAND FLAGS
// =============================================================================

var depsTransitive bool

// =============================================================================
// COMMAND DEFINITIONS
// =============================================================================

// dependenciesCmd lists the dependencies of matched targets.
var dependenciesCmd = &cobra.Command{
	Use:   "dependencies PATTERN",
	Short: "List the dependencies of matched targets",
	Long: `List the dependencies of the targets matched by an address pattern.

Direct dependencies by default; --transitive expands the full closure.

Examples:
  pants dependencies src/app:main
  pants dependencies --transitive 'src/app::'`,
	Args: cobra.ExactArgs(1),
	Run:  runDependencies,
}

// dependentsCmd lists the dependents of matched targets.
var dependentsCmd = &cobra.Command{
	Use:   "dependents PATTERN",
	Short: "List the dependents of matched targets",
	Long: `List the targets that depend on the targets matched by a pattern.

Direct dependents by default; --transitive expands the full reverse
closure.

Examples:
  pants dependents src/util:strings
  pants dependents --transitive 'src/util::'`,
	Args: cobra.ExactArgs(1),
	Run:  runDependents,
}

func init() {
	dependenciesCmd.Flags().BoolVar(&depsTransitive, "transitive", false,
		"Include transitive dependencies")
	dependentsCmd.Flags().BoolVar(&depsTransitive, "transitive", false,
		"Include transitive dependents")

	rootCmd.AddCommand(dependenciesCmd)
	rootCmd.AddCommand(dependentsCmd)
}

// =============================================================================
// COMMAND IMPLEMENTATIONS
// =============================================================================

// runDependencies lists direct or transitive dependencies.
func runDependencies(cmd *cobra.Command, args []string) {
	runEdgeQuery(args, func(graph *buildgraph.Graph, addr paths.Address) ([]paths.Address, error) {
		if depsTransitive {
			closure, err := graph.TransitiveClosure(context.Background(), addr)
			if err != nil {
				return nil, err
			}
			// The closure includes the root itself; dependencies do not.
			return closure[1:], nil
		}
		return graph.Dependencies(addr)
	})
}

// runDependents lists direct or transitive dependents.
func runDependents(cmd *cobra.Command, args []string) {
	runEdgeQuery(args, func(graph *buildgraph.Graph, addr paths.Address) ([]paths.Address, error) {
		if depsTransitive {
			return graph.TransitiveDependents(addr)
		}
		return graph.Dependents(addr)
	})
}

// runEdgeQuery resolves the pattern, applies query to each match, and
// prints the deduplicated union in match order.
func runEdgeQuery(args []string, query func(*buildgraph.Graph, paths.Address) ([]paths.Address, error)) {
	graph, err := loadGraph()
	if err != nil {
		outputError("Failed to load graph", err)
		exitWith(paths.ExitError)
	}

	matches, err := resolvePatterns(graph, args)
	if err != nil {
		outputError("Failed to resolve pattern", err)
		exitWith(paths.ExitError)
	}

	var out []paths.Address
	seen := make(map[paths.Address]struct{})
	for _, addr := range matches {
		related, err := query(graph, addr)
		if err != nil {
			outputError("Query failed", err)
			exitWith(paths.ExitError)
		}
		for _, rel := range related {
			if _, ok := seen[rel]; ok {
				continue
			}
			seen[rel] = struct{}{}
			out = append(out, rel)
		}
	}

	if err := writeAddressesJSON(os.Stdout, out); err != nil {
		outputError("Failed to write results", err)
		exitWith(paths.ExitError)
	}
	exitWith(paths.ExitSuccess)
}
