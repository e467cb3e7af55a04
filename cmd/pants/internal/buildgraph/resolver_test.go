// Copyright (C) 2025 Jason Barnett
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package buildgraph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jasonwbarnett/pants/cmd/pants/internal/paths"
)

func TestResolve(t *testing.T) {
	graph := createTestGraph(t)

	tests := []struct {
		name    string
		pattern string
		want    []paths.Address
	}{
		{
			name:    "literal address",
			pattern: "src/app:main",
			want:    []paths.Address{"src/app:main"},
		},
		{
			name:    "literal address not in graph",
			pattern: "src/app:other",
			want:    nil,
		},
		{
			name:    "directory",
			pattern: "src/lib:",
			want:    []paths.Address{"src/lib:core", "src/lib:extra"},
		},
		{
			name:    "directory with no targets",
			pattern: "src/nothing:",
			want:    nil,
		},
		{
			name:    "recursive",
			pattern: "src::",
			want:    []paths.Address{"src/app:main", "src/lib:core", "src/lib:extra", "src/util:strings"},
		},
		{
			name:    "recursive exact directory",
			pattern: "src/util::",
			want:    []paths.Address{"src/util:strings"},
		},
		{
			name:    "recursive does not match prefix of a segment",
			pattern: "src/li::",
			want:    nil,
		},
		{
			name:    "everything",
			pattern: "::",
			want: []paths.Address{
				"src/app:main",
				"src/lib:core",
				"src/lib:extra",
				"src/util:strings",
				"tools/gen:gen",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := graph.Resolve(tt.pattern)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolve_EmptyPattern(t *testing.T) {
	graph := createTestGraph(t)

	_, err := graph.Resolve("")
	assert.ErrorIs(t, err, ErrEmptyPattern)

	_, err = graph.Resolve("   ")
	assert.ErrorIs(t, err, ErrEmptyPattern)
}
