// Copyright (C) 2025 Jason Barnett
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/jasonwbarnett/pants/cmd/pants/internal/paths"
)

// openOutput returns the primary-output writer: stdout by default, or the
// named file. The cleanup function closes the file (a no-op for stdout)
// and must be called even on write failure.
func openOutput(path string) (io.Writer, func() error, error) {
	if path == "" {
		return os.Stdout, func() error { return nil }, nil
	}
	file, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("creating %s: %w", path, err)
	}
	return file, file.Close, nil
}

// writePathsJSON renders paths as a pretty-printed JSON array of arrays
// of address strings, terminated by a newline. Zero paths render as [].
func writePathsJSON(w io.Writer, found []paths.Path) error {
	rendered := make([][]string, 0, len(found))
	for _, path := range found {
		rendered = append(rendered, path.Strings())
	}

	data, err := json.MarshalIndent(rendered, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding paths: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("writing paths: %w", err)
	}
	return nil
}

// writeAddressesJSON renders addresses as a pretty-printed JSON array of
// strings, terminated by a newline. Zero addresses render as [].
func writeAddressesJSON(w io.Writer, addrs []paths.Address) error {
	rendered := make([]string, 0, len(addrs))
	for _, addr := range addrs {
		rendered = append(rendered, string(addr))
	}

	data, err := json.MarshalIndent(rendered, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding addresses: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("writing addresses: %w", err)
	}
	return nil
}
