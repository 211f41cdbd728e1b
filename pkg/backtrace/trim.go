// Copyright 2026 backtrace project authors. All rights reserved.
// Use of this source code is governed by Apache 2 LICENSE that can be found in the LICENSE file.

package backtrace

import (
	"reflect"
	"runtime"
	"strings"

	"github.com/backtrace-project/backtrace/pkg/symbolizer"
)

// Opportunistic trimming of frames that are implementation artifacts
// rather than user-meaningful stack context. It only removes frames it is
// sure about; when in doubt it keeps them, and if trimming would remove
// everything the untrimmed sequence is used instead.

const (
	// How many innermost frames to search for panic-dispatch scaffolding.
	panicLookback = 10
	// How many outermost frames to search for runtime entry markers.
	entryLookback = 6
)

// trimMarker anchors the prefix computation below. It must stay outside
// Capture's call graph: referencing Capture in the initializer would form
// an initialization cycle through trimFrames.
func trimMarker() {}

// Function-name prefixes of this library's own packages, computed from
// functions in those packages so the check survives renames and vendoring.
var capturePrefixes = []string{
	funcPkgPrefix(trimMarker),
	funcPkgPrefix(symbolizer.NewRuntimeWalker),
}

func funcPkgPrefix(fn any) string {
	name := runtime.FuncForPC(reflect.ValueOf(fn).Pointer()).Name()
	slash := strings.LastIndex(name, "/")
	if slash < 0 {
		slash = 0
	}
	dot := strings.Index(name[slash:], ".")
	if dot < 0 {
		return name
	}
	return name[:slash+dot+1]
}

func trimFrames(frames []symbolizer.Frame) []symbolizer.Frame {
	trimmed := trimTail(trimHead(frames))
	if len(trimmed) == 0 {
		return frames
	}
	return trimmed
}

// trimHead drops this library's own capture frames at the innermost end.
// If a panic-dispatch chain sits right below them (capture from inside a
// recovered panic), everything up to and including its last frame goes
// too, so the trace starts at the code that actually panicked.
func trimHead(frames []symbolizer.Frame) []symbolizer.Frame {
	start := 0
	for start < len(frames) && isCaptureFrame(frames[start]) {
		start++
	}
	frames = frames[start:]
	window := len(frames)
	if window > panicLookback {
		window = panicLookback
	}
	for i := window - 1; i >= 0; i-- {
		if frameContainsSymbol(frames[i], isPanicDispatch) {
			return frames[i+1:]
		}
	}
	return frames
}

// trimTail cuts the trace at the innermost runtime entry marker within the
// outermost few frames. No marker found means no trimming: showing extra
// frames beats silently truncating real ones.
func trimTail(frames []symbolizer.Frame) []symbolizer.Frame {
	start := len(frames) - entryLookback
	if start < 0 {
		start = 0
	}
	for i := start; i < len(frames); i++ {
		if frameContainsSymbol(frames[i], isRuntimeEntry) {
			return frames[:i]
		}
	}
	return frames
}

func isCaptureFrame(frame symbolizer.Frame) bool {
	return frameContainsSymbol(frame, func(name string) bool {
		for _, prefix := range capturePrefixes {
			if strings.HasPrefix(name, prefix) {
				return true
			}
		}
		return false
	})
}

func isPanicDispatch(name string) bool {
	return name == "runtime.gopanic" ||
		name == "runtime.sigpanic" ||
		strings.HasPrefix(name, "runtime.panic")
}

// Fragments marking the runtime/process startup chain. The exact set is
// runtime-version dependent; matching is best-effort.
var runtimeEntryMarkers = []string{
	"runtime.main",
	"runtime.goexit",
	"runtime.rt0_go",
	"testing.tRunner",
}

func isRuntimeEntry(name string) bool {
	for _, marker := range runtimeEntryMarkers {
		if strings.Contains(name, marker) {
			return true
		}
	}
	return false
}

func frameContainsSymbol(frame symbolizer.Frame, pred func(string) bool) bool {
	for _, sym := range frame.Symbols {
		if sym.Name != "" && pred(sym.Name) {
			return true
		}
	}
	return false
}
