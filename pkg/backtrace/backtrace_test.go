// Copyright 2026 backtrace project authors. All rights reserved.
// Use of this source code is governed by Apache 2 LICENSE that can be found in the LICENSE file.

package backtrace

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/backtrace-project/backtrace/pkg/symbolizer"
)

type fakeWalker []symbolizer.Frame

func (w fakeWalker) Walk(int) []symbolizer.Frame { return w }

func TestCaptureUnwalkableStack(t *testing.T) {
	assert.Equal(t, unavailable, capture(fakeWalker(nil)))
}

func TestFormatEmpty(t *testing.T) {
	assert.Equal(t, unavailable, Format(nil))
}

func TestCaptureFromFakeWalker(t *testing.T) {
	w := fakeWalker{
		frame(0x1, sym("app.userA", "file.go", 10)),
		frame(0x2, sym("runtime.main", "", 0)),
	}
	assert.Equal(t, "0: app.userA\n        at file.go:10\n", capture(w))
}
