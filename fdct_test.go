// Copyright 2011 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bjpeg

import (
	"math"
	"testing"

	qt "github.com/frankban/quicktest"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestFDCTConstantBlockHasOnlyDC(t *testing.T) {
	c := qt.New(t)

	var in, out [blockSize]float64
	for i := range in {
		in[i] = 37 // a constant level-shifted block.
	}
	fdct(&in, &out)

	approx := cmpopts.EquateApprox(0, 1e-6)
	for i := 1; i < blockSize; i++ {
		c.Assert(out[i], qt.CmpEquals(approx), 0.0, qt.Commentf("index %d", i))
	}
	// DC term is 8*(1/4)*alpha(0)*alpha(0)*64*37 = 8 * (1/4) * (1/2) * 64 * 37.
	want := 8 * 0.25 * 0.5 * 64 * 37.0
	c.Assert(out[0], qt.CmpEquals(approx), want)
}

func TestFDCTLevelShiftRange(t *testing.T) {
	c := qt.New(t)

	var samples sampleBlock
	for i := range samples {
		samples[i] = byte(i * 4 % 256)
	}
	var shifted [blockSize]float64
	levelShift(&samples, &shifted)
	for i, s := range shifted {
		c.Assert(s, qt.Equals, float64(samples[i])-128)
		c.Assert(math.Abs(s) <= 128, qt.IsTrue)
	}
}
