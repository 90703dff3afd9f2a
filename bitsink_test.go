// Copyright 2011 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bjpeg

import (
	"bytes"
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestBitSinkWriteBits(t *testing.T) {
	c := qt.New(t)

	var buf bytes.Buffer
	s := &bitSink{w: &buf}
	s.writeBits(0x1, 1)
	s.writeBits(0x5, 3)
	s.writeBits(0x0, 4)
	c.Assert(s.err, qt.IsNil)
	c.Assert(buf.Bytes(), qt.DeepEquals, []byte{0xd0})
}

func TestBitSinkStuffing(t *testing.T) {
	c := qt.New(t)

	var buf bytes.Buffer
	s := &bitSink{w: &buf}
	s.writeBits(0xff, 8)
	c.Assert(buf.Bytes(), qt.DeepEquals, []byte{0xff, 0x00})
}

func TestPadByteNoOpWhenAligned(t *testing.T) {
	c := qt.New(t)

	var buf bytes.Buffer
	s := &bitSink{w: &buf}
	s.writeBits(0xab, 8)
	s.padByte()
	c.Assert(buf.Bytes(), qt.DeepEquals, []byte{0xab})
}

func TestPadByteFillsWithOnes(t *testing.T) {
	c := qt.New(t)

	var buf bytes.Buffer
	s := &bitSink{w: &buf}
	s.writeBits(0x3, 3) // 011, 5 bits short of a byte
	s.padByte()
	c.Assert(buf.Bytes(), qt.DeepEquals, []byte{0x7f})
}
