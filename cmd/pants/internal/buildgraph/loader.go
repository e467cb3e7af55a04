// Copyright (C) 2025 Jason Barnett
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package buildgraph

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/jasonwbarnett/pants/cmd/pants/internal/paths"
)

// snapshotFile is the on-disk graph snapshot format.
type snapshotFile struct {
	Targets map[string]snapshotTarget `json:"targets" yaml:"targets"`
}

// snapshotTarget holds the serialized form of one target.
type snapshotTarget struct {
	Dependencies []string `json:"dependencies" yaml:"dependencies"`
}

// Load reads a graph snapshot from path. The format is chosen by file
// extension: .json, or .yaml/.yml.
//
// # Description
//
// Targets are inserted in lexicographic address order so that graph order
// (and with it pattern-resolution order) is deterministic regardless of
// map iteration; dependency lists keep their file order, which is what
// drives tie-breaking among equal-length paths.
//
// Every dependency must itself be a target in the snapshot; a dangling
// reference is a load error, not something discovered mid-search.
func Load(path string) (*Graph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading graph snapshot: %w", err)
	}

	var snapshot snapshotFile
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		if err := json.Unmarshal(data, &snapshot); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &snapshot); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	return fromSnapshot(&snapshot)
}

// fromSnapshot validates a parsed snapshot and builds the Graph.
func fromSnapshot(snapshot *snapshotFile) (*Graph, error) {
	addrs := make([]string, 0, len(snapshot.Targets))
	for addr := range snapshot.Targets {
		if strings.TrimSpace(addr) == "" {
			return nil, fmt.Errorf("graph snapshot contains an empty target address")
		}
		addrs = append(addrs, addr)
	}
	sort.Strings(addrs)

	graph := newGraph(len(addrs))
	for _, addr := range addrs {
		entry := snapshot.Targets[addr]
		deps := make([]paths.Address, len(entry.Dependencies))
		for i, dep := range entry.Dependencies {
			if _, ok := snapshot.Targets[dep]; !ok {
				return nil, &UnknownTargetError{
					Address: dep,
					Context: fmt.Sprintf("dependency of %s", addr),
				}
			}
			deps[i] = paths.Address(dep)
		}
		graph.add(paths.Address(addr), deps)
	}
	return graph, nil
}
