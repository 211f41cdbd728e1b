// Copyright 2026 backtrace project authors. All rights reserved.
// Use of this source code is governed by Apache 2 LICENSE that can be found in the LICENSE file.

// Package symbolizer obtains raw stack frames with resolved symbol
// information from the Go runtime.
//
// A physical frame can carry several symbols when the compiler has inlined
// calls into it; the innermost logical call comes first. Symbol resolution
// never fails: an address the runtime knows nothing about produces a Frame
// with an empty symbol list.
package symbolizer

import "runtime"

type Symbol struct {
	Name string
	File string
	Line int
}

type Frame struct {
	PC      uintptr
	Symbols []Symbol
}

// Walker produces the call stack of the calling goroutine, innermost frame
// first. skip is the number of caller frames to omit below the innermost
// reported one, with 0 identifying the caller of Walk.
type Walker interface {
	Walk(skip int) []Frame
}

func NewRuntimeWalker() Walker {
	return runtimeWalker{}
}

type runtimeWalker struct{}

func (runtimeWalker) Walk(skip int) []Frame {
	// +2 to skip runtime.Callers itself and this method.
	pcs := make([]uintptr, 64)
	for {
		n := runtime.Callers(skip+2, pcs)
		if n < len(pcs) {
			pcs = pcs[:n]
			break
		}
		pcs = make([]uintptr, 2*len(pcs))
	}
	if len(pcs) == 0 {
		return nil
	}
	var frames []Frame
	iter := runtime.CallersFrames(pcs)
	// CallersFrames expands an inlined call chain into several
	// runtime.Frame values sharing one PC, innermost call first and the
	// physical (non-inlined) function last. Fold each expansion back into
	// a single Frame with multiple symbols. Equal PCs alone do not mark
	// the group: direct recursion repeats the same return PC across
	// distinct physical frames, so a group stays open only while the
	// runtime reports inlined entries (fr.Func == nil for those).
	open := false
	for {
		fr, more := iter.Next()
		if n := len(frames); open && n > 0 && frames[n-1].PC == fr.PC {
			frames[n-1].Symbols = append(frames[n-1].Symbols, makeSymbol(fr))
		} else {
			f := Frame{PC: fr.PC}
			if fr.Function != "" || fr.File != "" {
				f.Symbols = []Symbol{makeSymbol(fr)}
			}
			frames = append(frames, f)
		}
		open = fr.Func == nil && fr.Function != ""
		if !more {
			break
		}
	}
	return frames
}

func makeSymbol(fr runtime.Frame) Symbol {
	return Symbol{
		Name: fr.Function,
		File: fr.File,
		Line: fr.Line,
	}
}
