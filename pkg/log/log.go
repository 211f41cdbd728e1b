// Copyright 2026 backtrace project authors. All rights reserved.
// Use of this source code is governed by Apache 2 LICENSE that can be found in the LICENSE file.

// Package log provides logging for the command line tools with a global
// verbosity setting. The library packages never log; a crash-path trace
// generator has no business writing to stderr on its own.
package log

import (
	"flag"
	golog "log"
)

var flagV = flag.Int("vv", 0, "verbosity")

func Logf(v int, msg string, args ...interface{}) {
	if v <= *flagV {
		golog.Printf(msg, args...)
	}
}
