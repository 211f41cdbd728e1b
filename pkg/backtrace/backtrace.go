// Copyright 2026 backtrace project authors. All rights reserved.
// Use of this source code is governed by Apache 2 LICENSE that can be found in the LICENSE file.

// Package backtrace generates a backtrace of the calling goroutine as a
// human readable string.
//
// The package is meant to be called from crash handlers (deferred recover
// hooks and the like) where diagnostic output must be produced before the
// process state is lost, so the public surface never returns an error: any
// failure along the way degrades to a less informative rendering of the
// affected frame, and a stack that cannot be walked at all yields a fixed
// placeholder string.
//
// Capture is safe for concurrent use; every invocation walks only its own
// goroutine's stack and owns all of its data. It performs ordinary heap
// allocations, so calling it from a context where the runtime allocator is
// already corrupted is undefined.
package backtrace

import (
	"strings"

	"github.com/backtrace-project/backtrace/pkg/symbolizer"
)

// Returned when the stack cannot be walked at all.
const unavailable = "<stack trace unavailable>"

var defaultWalker = symbolizer.NewRuntimeWalker()

// Capture walks the calling goroutine's stack and renders it as text.
// Frames of this package's own capture machinery and well-known runtime
// scaffolding frames near process start are trimmed away, so the trace
// begins at the caller's code and ends at its entry point.
func Capture() string {
	return capture(defaultWalker)
}

func capture(walker symbolizer.Walker) string {
	frames := walker.Walk(1)
	if len(frames) == 0 {
		return unavailable
	}
	return format(frames)
}

// Format renders an already-captured frame sequence the same way Capture
// does, including trimming. It is deterministic: the same input always
// produces the same string.
func Format(frames []symbolizer.Frame) string {
	if len(frames) == 0 {
		return unavailable
	}
	return format(frames)
}

func format(frames []symbolizer.Frame) string {
	buf := new(strings.Builder)
	for i, frame := range trimFrames(frames) {
		formatFrameInto(buf, i, frame)
	}
	return buf.String()
}
