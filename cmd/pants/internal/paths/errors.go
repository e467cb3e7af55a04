// Copyright (C) 2025 Jason Barnett
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package paths

import "errors"

// Exit codes for path commands.
const (
	ExitSuccess = 0 // Operation completed (even with zero paths found)
	ExitError   = 1 // Graph load, resolution, or provider failure
	ExitBadArgs = 2 // Invalid or missing arguments
)

// Sentinel errors for path queries.
var (
	// Configuration errors, detected before any graph work begins.
	ErrMissingFrom = errors.New("must set --from")
	ErrMissingTo   = errors.New("must set --to")
)
