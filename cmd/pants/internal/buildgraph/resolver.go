// Copyright (C) 2025 Jason Barnett
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package buildgraph

import (
	"strings"

	"github.com/jasonwbarnett/pants/cmd/pants/internal/paths"
)

// Resolve matches an address pattern against the graph and returns the
// matched targets in graph order.
//
// # Description
//
// Supported patterns:
//
//   - "dir:name"  literal address; matches zero or one target
//   - "dir:"      every target whose directory is exactly dir
//   - "dir::"     every target in or under dir
//   - "::"        every target in the graph
//
// A pattern that matches nothing resolves to an empty slice, not an
// error: downstream fan-outs over zero targets are well defined. Only an
// empty pattern is rejected.
func (g *Graph) Resolve(pattern string) ([]paths.Address, error) {
	pattern = strings.TrimSpace(pattern)
	if pattern == "" {
		return nil, ErrEmptyPattern
	}

	switch {
	case pattern == "::":
		return g.Addresses(), nil

	case strings.HasSuffix(pattern, "::"):
		dir := strings.TrimSuffix(pattern, "::")
		var out []paths.Address
		for _, addr := range g.order {
			if d := addressDir(addr); d == dir || strings.HasPrefix(d, dir+"/") {
				out = append(out, addr)
			}
		}
		return out, nil

	case strings.HasSuffix(pattern, ":"):
		dir := strings.TrimSuffix(pattern, ":")
		var out []paths.Address
		for _, addr := range g.order {
			if addressDir(addr) == dir {
				out = append(out, addr)
			}
		}
		return out, nil

	default:
		if g.Contains(paths.Address(pattern)) {
			return []paths.Address{paths.Address(pattern)}, nil
		}
		return nil, nil
	}
}

// addressDir returns the directory part of an address: everything before
// the last colon, or the whole address if it has none.
func addressDir(addr paths.Address) string {
	s := string(addr)
	if idx := strings.LastIndex(s, ":"); idx >= 0 {
		return s[:idx]
	}
	return s
}
