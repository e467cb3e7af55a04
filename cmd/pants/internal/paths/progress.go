// Copyright (C) 2025 Jason Barnett
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package paths

import (
	"fmt"
	"io"
	"sync"
)

// ProgressSink receives advisory status notices during a search. Notices
// are fire-and-forget: they carry no results, participate in no control
// flow, and a failing sink never affects search correctness.
//
// # Thread Safety
//
// Implementations must be safe for concurrent use; every destination
// search for a root shares the same sink.
type ProgressSink interface {
	// Notify reports a human-readable status line.
	Notify(msg string)
}

// WriterSink writes progress notices to an io.Writer, one per line.
// Intended for stderr so that notices never interleave with primary
// command output on stdout.
type WriterSink struct {
	mu sync.Mutex
	w  io.Writer
}

// NewWriterSink creates a WriterSink over w.
func NewWriterSink(w io.Writer) *WriterSink {
	return &WriterSink{w: w}
}

// Notify writes the notice followed by a newline. Write errors are
// dropped; progress is advisory.
func (s *WriterSink) Notify(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fmt.Fprintln(s.w, msg)
}

// NopSink discards all notices.
type NopSink struct{}

// Notify discards the notice.
func (NopSink) Notify(string) {}

var (
	_ ProgressSink = (*WriterSink)(nil)
	_ ProgressSink = NopSink{}
)

// notify delivers a notice to sink, shielding the search from a
// misbehaving implementation. A panicking sink must never break the
// search.
func notify(sink ProgressSink, msg string) {
	if sink == nil {
		return
	}
	defer func() { _ = recover() }()
	sink.Notify(msg)
}
