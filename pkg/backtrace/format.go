// Copyright 2026 backtrace project authors. All rights reserved.
// Use of this source code is governed by Apache 2 LICENSE that can be found in the LICENSE file.

package backtrace

import (
	"fmt"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/backtrace-project/backtrace/pkg/symbolizer"
)

const (
	// Inlined symbols are indented past the frame number field,
	// source locations further still.
	inlineIndent   = "    "
	locationIndent = "        "
)

// formatFrameInto renders one surviving frame. The first symbol gets the
// numeric label; the remaining symbols of the frame (inlined call sites)
// render as indented, unnumbered blocks without incrementing the counter.
func formatFrameInto(buf *strings.Builder, index int, frame symbolizer.Frame) {
	if len(frame.Symbols) == 0 {
		fmt.Fprintf(buf, "%v: at address %#x\n", index, frame.PC)
		return
	}
	lastName := ""
	for i, sym := range frame.Symbols {
		name := symbolizer.Demangle(sym.Name)
		if name == "" {
			name = "<unknown>"
		}
		switch {
		case i == 0:
			fmt.Fprintf(buf, "%v: %v\n", index, name)
		case name != lastName:
			fmt.Fprintf(buf, "%v%v\n", inlineIndent, name)
		}
		lastName = name
		if loc := sourceLocation(sym); loc != "" {
			fmt.Fprintf(buf, "%vat %v\n", locationIndent, loc)
		}
	}
}

func sourceLocation(sym symbolizer.Symbol) string {
	if sym.File == "" {
		return ""
	}
	if sym.Line <= 0 {
		return cleanPath(sym.File)
	}
	return fmt.Sprintf("%v:%v", cleanPath(sym.File), sym.Line)
}

var gorootSrc = func() string {
	if goroot := runtime.GOROOT(); goroot != "" {
		return goroot + "/src/"
	}
	return ""
}()

// cleanPath opportunistically shortens absolute source paths. Paths into
// the module cache start at the module's own path element, GOROOT paths at
// the goroot-relative component. Anything it does not recognize passes
// through untouched; compile-time paths recorded in foreign binaries keep
// their original shape.
func cleanPath(p string) string {
	if !filepath.IsAbs(p) {
		return p
	}
	// GOROOT before the module cache: with toolchain management the
	// GOROOT itself lives inside the module cache.
	if gorootSrc != "" {
		if rel := strings.TrimPrefix(p, gorootSrc); rel != p {
			return rel
		}
	}
	const modCache = "/pkg/mod/"
	if i := strings.Index(p, modCache); i >= 0 {
		return p[i+len(modCache):]
	}
	return p
}
