// Copyright (C) 2025 Jason Barnett
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package buildgraph

import (
	"errors"
	"fmt"
)

// Sentinel errors for graph loading and queries.
var (
	ErrUnknownTarget     = errors.New("target not found in graph")
	ErrEmptyPattern      = errors.New("address pattern must not be empty")
	ErrUnsupportedFormat = errors.New("unsupported graph snapshot format")
)

// UnknownTargetError reports an address that does not exist in the loaded
// graph, with the context in which it was required.
type UnknownTargetError struct {
	Address string
	Context string
}

// Error implements the error interface.
func (e *UnknownTargetError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("target %q not found in graph (%s)", e.Address, e.Context)
	}
	return fmt.Sprintf("target %q not found in graph", e.Address)
}

// Unwrap returns the sentinel error.
func (e *UnknownTargetError) Unwrap() error {
	return ErrUnknownTarget
}
