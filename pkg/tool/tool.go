// Copyright 2026 backtrace project authors. All rights reserved.
// Use of this source code is governed by Apache 2 LICENSE that can be found in the LICENSE file.

// Package tool contains helpers shared by the command line tools.
package tool

import (
	"flag"
	"fmt"
	"os"
)

// Init parses command line flags and returns positional arguments.
func Init(usage string) []string {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %v\n", usage)
		flag.PrintDefaults()
	}
	flag.Parse()
	return flag.Args()
}

func Failf(msg string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, msg+"\n", args...)
	os.Exit(1)
}

func Fail(err error) {
	Failf("%v", err)
}
