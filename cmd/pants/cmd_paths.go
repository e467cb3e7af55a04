// Copyright (C) 2025 Jason Barnett
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/jasonwbarnett/pants/cmd/pants/internal/paths"
)

// =============================================================================
// COMMAND FLAGS
// =============================================================================

var (
	pathsFrom       string
	pathsTo         string
	pathsOutputFile string
	pathsNoProgress bool
)

// =============================================================================
// COMMAND DEFINITION
// =============================================================================

// pathsCmd lists the paths between two address patterns.
var pathsCmd = &cobra.Command{
	Use:   "paths --from=PATTERN --to=PATTERN",
	Short: "List the paths between two address patterns",
	Long: `List the paths between two addresses.

Either pattern may match a group of targets, e.g.
--from=src/app:main --to=src/library::. Every matched source is paired
with every matched destination; for each pair, all dependency paths are
listed shortest first. Output is a JSON array of arrays of addresses.

Examples:
  pants paths --from=src/app:main --to=src/util:strings
  pants paths --from=src/app:: --to=src/util:: --output=paths.json
  pants paths --from=src/app:main --to=src/util:: --no-progress`,
	Args: cobra.NoArgs,
	Run:  runPaths,
}

func init() {
	pathsCmd.Flags().StringVar(&pathsFrom, "from", "",
		"The path starting address pattern (required)")
	pathsCmd.Flags().StringVar(&pathsTo, "to", "",
		"The path end address pattern (required)")
	pathsCmd.Flags().StringVar(&pathsOutputFile, "output", "",
		"Write results to this file instead of stdout")
	pathsCmd.Flags().BoolVar(&pathsNoProgress, "no-progress", false,
		"Suppress progress notices on stderr")

	rootCmd.AddCommand(pathsCmd)
}

// =============================================================================
// COMMAND IMPLEMENTATION
// =============================================================================

// runPaths executes the paths query.
func runPaths(cmd *cobra.Command, args []string) {
	ctx := context.Background()

	// Configuration errors abort before any graph work begins.
	if pathsFrom == "" {
		outputError("Invalid arguments", paths.ErrMissingFrom)
		exitWith(paths.ExitBadArgs)
	}
	if pathsTo == "" {
		outputError("Invalid arguments", paths.ErrMissingTo)
		exitWith(paths.ExitBadArgs)
	}

	sink := progressSink()

	graph, err := loadGraph()
	if err != nil {
		outputError("Failed to load graph", err)
		exitWith(paths.ExitError)
	}

	sink.Notify(fmt.Sprintf("Resolving source targets from %s...", pathsFrom))
	roots, err := resolvePatterns(graph, []string{pathsFrom})
	if err != nil {
		outputError("Failed to resolve --from", err)
		exitWith(paths.ExitError)
	}

	dests, err := resolvePatterns(graph, []string{pathsTo})
	if err != nil {
		outputError("Failed to resolve --to", err)
		exitWith(paths.ExitError)
	}

	sink.Notify(fmt.Sprintf("Found %d source targets and %d destination targets",
		len(roots), len(dests)))

	found, err := paths.FindAllPaths(ctx, graph, roots, dests, sink)
	if err != nil {
		outputError("Path search failed", err)
		exitWith(paths.ExitError)
	}
	logger.Info("path search complete",
		"roots", len(roots),
		"destinations", len(dests),
		"paths", len(found),
	)

	out, cleanup, err := openOutput(pathsOutputFile)
	if err != nil {
		outputError("Failed to open output", err)
		exitWith(paths.ExitError)
	}
	writeErr := writePathsJSON(out, found)
	if err := cleanup(); err != nil && writeErr == nil {
		writeErr = err
	}
	if writeErr != nil {
		outputError("Failed to write results", writeErr)
		exitWith(paths.ExitError)
	}

	// Zero paths found is still success.
	exitWith(paths.ExitSuccess)
}

// progressSink picks the sink for this run: stderr when it is a terminal
// and --no-progress is unset, otherwise a no-op.
func progressSink() paths.ProgressSink {
	if pathsNoProgress || !isatty.IsTerminal(os.Stderr.Fd()) {
		return paths.NopSink{}
	}
	return paths.NewWriterSink(os.Stderr)
}
