// Copyright 2026 backtrace project authors. All rights reserved.
// Use of this source code is governed by Apache 2 LICENSE that can be found in the LICENSE file.

package symbolizer

import "github.com/ianlancetaylor/demangle"

var demangleCache Cache

// Demangle converts a mangled symbol name into its human-readable form.
// Names the demangler does not recognize (including ordinary Go function
// names, which are never mangled) are returned unchanged. It never fails.
//
// Mangled names show up in Go stacks through cgo frames (Itanium C++ ABI
// symbols) and through symbols of foreign binaries resolved by external
// unwinders.
func Demangle(name string) string {
	if name == "" {
		return ""
	}
	return demangleCache.Demangle(demangleOne, name)
}

func demangleOne(name string) string {
	if d, err := demangle.ToString(name); err == nil {
		return d
	}
	return name
}
