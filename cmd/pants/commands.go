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
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/jasonwbarnett/pants/cmd/pants/internal/buildgraph"
	"github.com/jasonwbarnett/pants/cmd/pants/internal/paths"
	"github.com/jasonwbarnett/pants/pkg/logging"
)

// =============================================================================
// GLOBAL FLAGS
// =============================================================================

var (
	graphFile   string
	logLevel    string
	enableTrace bool
)

// logger is the process-wide structured logger, tagged with a per-run id.
// Set in PersistentPreRun, before any command handler runs.
var logger = logging.Default()

// tracerProvider is non-nil when --trace is set; flushed by exitWith.
var tracerProvider *sdktrace.TracerProvider

// =============================================================================
// ROOT COMMAND
// =============================================================================

var rootCmd = &cobra.Command{
	Use:   "pants",
	Short: "Query a build-target dependency graph",
	Long: `pants answers queries about a build-target dependency graph snapshot.

The snapshot is a JSON or YAML file mapping target addresses to their
dependency lists (see --graph). Primary output goes to stdout; progress
and logs go to stderr.

Subcommands:
  paths         - List the paths between two address patterns
  list          - List the targets matched by an address pattern
  dependencies  - List the dependencies of matched targets
  dependents    - List the dependents of matched targets

Examples:
  pants paths --from=src/app:main --to=src/util::
  pants list 'src::'
  pants dependencies --transitive src/app:main`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&graphFile, "graph", "pants-graph.json",
		"Dependency graph snapshot to query (.json, .yaml or .yml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info",
		"Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVar(&enableTrace, "trace", false,
		"Export OpenTelemetry spans to stderr")

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		logger = logging.New(logging.Config{
			Level:   logging.ParseLevel(logLevel),
			Service: "pants",
		}).With("run_id", uuid.NewString())

		if enableTrace {
			if err := setupTracing(); err != nil {
				logger.Warn("tracing setup failed", "error", err)
			}
		}
	}
}

// setupTracing installs a stderr span exporter as the global tracer
// provider.
func setupTracing() error {
	exporter, err := stdouttrace.New(stdouttrace.WithWriter(os.Stderr))
	if err != nil {
		return fmt.Errorf("creating stdout trace exporter: %w", err)
	}
	tracerProvider = sdktrace.NewTracerProvider(sdktrace.WithBatcher(exporter))
	otel.SetTracerProvider(tracerProvider)
	return nil
}

// exitWith flushes tracing and terminates the process.
func exitWith(code int) {
	if tracerProvider != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = tracerProvider.Shutdown(ctx)
	}
	os.Exit(code)
}

// loadGraph loads the snapshot named by --graph.
func loadGraph() (*buildgraph.Graph, error) {
	graph, err := buildgraph.Load(graphFile)
	if err != nil {
		return nil, err
	}
	logger.Debug("graph loaded", "file", graphFile, "targets", graph.Len())
	return graph, nil
}

// outputError reports a command failure on stderr.
func outputError(msg string, err error) {
	logger.Error(msg, "error", err)
	fmt.Fprintf(os.Stderr, "Error: %s: %v\n", msg, err)
}

// resolvePatterns resolves each pattern and returns the matches
// concatenated in pattern order.
func resolvePatterns(graph *buildgraph.Graph, patterns []string) ([]paths.Address, error) {
	var out []paths.Address
	seen := make(map[paths.Address]struct{})
	for _, pattern := range patterns {
		matches, err := graph.Resolve(pattern)
		if err != nil {
			return nil, fmt.Errorf("resolving %q: %w", pattern, err)
		}
		for _, addr := range matches {
			if _, ok := seen[addr]; ok {
				continue
			}
			seen[addr] = struct{}{}
			out = append(out, addr)
		}
	}
	return out, nil
}
