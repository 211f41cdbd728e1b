// Copyright 2026 backtrace project authors. All rights reserved.
// Use of this source code is governed by Apache 2 LICENSE that can be found in the LICENSE file.

// bt-demo prints the backtrace of a small synthetic call chain.
// With -panic it captures from inside a recovered panic instead, which is
// the intended production use: calling backtrace.Capture from a crash
// handler once the process is already doomed.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/backtrace-project/backtrace/pkg/backtrace"
	"github.com/backtrace-project/backtrace/pkg/log"
	"github.com/backtrace-project/backtrace/pkg/tool"
)

var (
	flagDepth = flag.Int("depth", 3, "extra stack depth before capturing")
	flagPanic = flag.Bool("panic", false, "capture from a recovered panic")
	flagOut   = flag.String("out", "", "write the trace to this file instead of stdout")
)

func main() {
	if args := tool.Init("bt-demo [flags]"); len(args) != 0 {
		tool.Failf("unexpected arguments: %v", args)
	}
	if *flagDepth < 0 {
		tool.Failf("depth must be non-negative")
	}
	var trace string
	if *flagPanic {
		trace = capturedFromPanic(*flagDepth)
	} else {
		trace = descend(*flagDepth)
	}
	log.Logf(1, "captured %v bytes of trace", len(trace))
	if *flagOut != "" {
		if err := os.WriteFile(*flagOut, []byte(trace), 0644); err != nil {
			tool.Fail(err)
		}
		return
	}
	fmt.Print(trace)
}

func descend(depth int) string {
	if depth == 0 {
		return backtrace.Capture()
	}
	return descend(depth - 1)
}

func capturedFromPanic(depth int) (trace string) {
	defer func() {
		if recover() != nil {
			trace = backtrace.Capture()
		}
	}()
	explode(depth)
	return ""
}

func explode(depth int) {
	if depth == 0 {
		panic("bt-demo: synthetic crash")
	}
	explode(depth - 1)
}
