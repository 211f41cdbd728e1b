// Copyright 2026 backtrace project authors. All rights reserved.
// Use of this source code is governed by Apache 2 LICENSE that can be found in the LICENSE file.

// Live captures of real goroutine stacks. These live in an external test
// package on purpose: frames of the library's own packages get trimmed, so
// the callers here must not belong to them.
package backtrace_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/backtrace-project/backtrace/pkg/backtrace"
)

//go:noinline
func captureFromHelper() string {
	return backtrace.Capture()
}

func TestCaptureContainsCaller(t *testing.T) {
	out := captureFromHelper()
	require.NotEmpty(t, out)
	assert.Contains(t, out, "captureFromHelper")
	assert.Contains(t, out, "TestCaptureContainsCaller")
	assert.Contains(t, out, "live_test.go")
	assert.True(t, strings.HasPrefix(out, "0: "), "first frame not numbered 0:\n%v", out)
	// Our own capture machinery and the runtime scaffolding are gone.
	assert.NotContains(t, out, "pkg/backtrace.Capture")
	assert.NotContains(t, out, "testing.tRunner")
	assert.NotContains(t, out, "runtime.goexit")
}

//go:noinline
func boom() {
	panic("live test crash")
}

func TestCaptureFromPanicHook(t *testing.T) {
	var out string
	func() {
		defer func() {
			if recover() != nil {
				out = backtrace.Capture()
			}
		}()
		boom()
	}()
	require.NotEmpty(t, out)
	assert.Contains(t, out, "boom")
	assert.NotContains(t, out, "runtime.gopanic")
}

func TestCaptureConcurrent(t *testing.T) {
	var g errgroup.Group
	for i := 0; i < 8; i++ {
		g.Go(func() error {
			for j := 0; j < 50; j++ {
				out := captureFromHelper()
				if out == "" {
					return fmt.Errorf("empty capture")
				}
				if !strings.Contains(out, "captureFromHelper") {
					return fmt.Errorf("missing helper frame:\n%v", out)
				}
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
}

func ExampleCapture() {
	fmt.Println(backtrace.Capture())
}
