// Copyright 2011 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bjpeg

import (
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestBuildHuffmanLUTCanonical(t *testing.T) {
	c := qt.New(t)

	// Same shape as the DC luminance table (Annex K.3): a single
	// symbol at each of lengths 2 and 3.
	spec := huffmanSpec{
		counts: [16]byte{0, 1, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
		values: []byte{10, 20},
	}
	lut := buildHuffmanLUT(spec)

	c.Assert(lut[10], qt.Equals, huffCode{length: 2, code: 0})
	c.Assert(lut[20], qt.Equals, huffCode{length: 3, code: 2})
}

func TestBuildHuffmanLUTPanicsOnMismatch(t *testing.T) {
	c := qt.New(t)

	spec := huffmanSpec{
		counts: [16]byte{1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
		values: []byte{1, 2},
	}
	c.Assert(func() { buildHuffmanLUT(spec) }, qt.PanicMatches, "bjpeg: internal invariant violated:.*")
}

func TestStandardTablesHaveAssignedCodes(t *testing.T) {
	c := qt.New(t)

	for _, spec := range []huffmanSpec{lumaDCSpec, chromaDCSpec, lumaACSpec, chromaACSpec} {
		lut := buildHuffmanLUT(spec)
		for _, v := range spec.values {
			c.Assert(lut[v].length, qt.Not(qt.Equals), uint8(0))
		}
	}
}

func TestQuantTablesAreFullBlocks(t *testing.T) {
	c := qt.New(t)
	c.Assert(len(lumaQuantNatural), qt.Equals, blockSize)
	c.Assert(len(chromaQuantNatural), qt.Equals, blockSize)
}
