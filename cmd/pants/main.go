// Copyright (C) 2025 Jason Barnett
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package main

import (
	"os"

	"github.com/jasonwbarnett/pants/cmd/pants/internal/paths"
)

func main() {
	// Cobra handles parsing the arguments; command handlers exit through
	// exitWith so tracing is flushed first.
	if err := rootCmd.Execute(); err != nil {
		exitWith(paths.ExitBadArgs)
	}
	_ = os.Stdout.Sync()
	exitWith(paths.ExitSuccess)
}
