// Copyright 2011 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bjpeg

import (
	"bytes"
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestWriteBlockAllZero(t *testing.T) {
	c := qt.New(t)

	var buf bytes.Buffer
	bs := &bitSink{w: &buf}
	var coeffs block // all zero: DC diff 0, no AC coefficients.

	dc := writeBlock(bs, &lumaDCLUT, &lumaACLUT, &coeffs, 0)
	c.Assert(dc, qt.Equals, int32(0))
	c.Assert(bs.err, qt.IsNil)

	// DC diff 0 -> symbol 0, code length 2 (lumaDCSpec counts[1]=1
	// values[0]=0 so code for symbol 0 is 2 bits "00"), no payload
	// bits. Then EOB for luma AC (symbol 0x00, a 4-bit code "1010").
	bs.padByte()
	c.Assert(buf.Len(), qt.Equals, 1)
}

func TestWriteBlockDCDifference(t *testing.T) {
	c := qt.New(t)

	var buf bytes.Buffer
	bs := &bitSink{w: &buf}
	var coeffs block
	coeffs[unzig[0]] = 10

	dc := writeBlock(bs, &lumaDCLUT, &lumaACLUT, &coeffs, 4)
	c.Assert(dc, qt.Equals, int32(10))
	c.Assert(bs.err, qt.IsNil)
}

func TestWriteBlockRunsOfZeros(t *testing.T) {
	c := qt.New(t)

	var buf bytes.Buffer
	bs := &bitSink{w: &buf}
	var coeffs block
	coeffs[unzig[20]] = 3 // a single nonzero AC coefficient after 19 zeros.

	dc := writeBlock(bs, &lumaDCLUT, &lumaACLUT, &coeffs, 0)
	c.Assert(dc, qt.Equals, int32(0))
	c.Assert(bs.err, qt.IsNil)
	c.Assert(buf.Len() > 0, qt.IsTrue)
}
