// Copyright (C) 2025 Jason Barnett
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/jasonwbarnett/pants/cmd/pants/internal/paths"
)

// listCmd lists the targets matched by an address pattern.
var listCmd = &cobra.Command{
	Use:   "list PATTERN",
	Short: "List the targets matched by an address pattern",
	Long: `List the targets matched by an address pattern.

Examples:
  pants list src/app:main
  pants list 'src/lib:'
  pants list '::'`,
	Args: cobra.ExactArgs(1),
	Run:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

// runList resolves the pattern and prints the matches. Zero matches is
// not an error.
func runList(cmd *cobra.Command, args []string) {
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

	if err := writeAddressesJSON(os.Stdout, matches); err != nil {
		outputError("Failed to write results", err)
		exitWith(paths.ExitError)
	}
	exitWith(paths.ExitSuccess)
}
