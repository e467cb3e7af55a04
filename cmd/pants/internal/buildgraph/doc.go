// Copyright (C) 2025 Jason Barnett
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package buildgraph loads and queries a build-target dependency graph
// snapshot.
//
// A snapshot is a JSON or YAML file mapping target addresses to their
// ordered dependency lists, exported by whatever build system owns the
// real graph. Graph implements paths.AdjacencyProvider on top of the
// loaded snapshot and backs the supplementary list/dependencies/dependents
// commands.
//
// Address patterns follow build-tool conventions:
//
//	src/app:main   the single target with that address
//	src/app:       every target in the src/app directory
//	src/app::      every target under src/app, recursively
//	::             every target in the graph
package buildgraph
