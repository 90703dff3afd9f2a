// Copyright 2011 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bjpeg

// emitHuff writes the Huffman code for symbol to bs, looked up in lut.
func emitHuff(bs *bitSink, lut *huffmanLUT, symbol byte) {
	c := lut[symbol]
	invariant(c.length != 0, "huffman lookup for unassigned symbol %d", symbol)
	bs.writeBits(uint32(c.code), uint32(c.length))
}

// emitHuffRLE writes the Huffman code for symbol to bs, followed by
// size more raw (unencoded) bits holding payload. It is used for both
// the DC difference (size/payload from encodeCoefficient) and each AC
// run/size byte together with its coefficient's payload.
func emitHuffRLE(bs *bitSink, lut *huffmanLUT, symbol byte, size uint8, payload uint32) {
	emitHuff(bs, lut, symbol)
	if size > 0 {
		bs.writeBits(payload, uint32(size))
	}
}

// writeBlock entropy-codes one quantized 8x8 block of coefficients to
// bs, in zig-zag order, and returns its DC value, for use as prevDC on
// the next block of the same component. coeffs is indexed in natural
// order, as produced by quantize, and read through unzig.
func writeBlock(bs *bitSink, dcLUT, acLUT *huffmanLUT, coeffs *block, prevDC int32) int32 {
	dc := coeffs[unzig[0]]
	diff := dc - prevDC
	size, payload := encodeCoefficient(diff)
	emitHuffRLE(bs, dcLUT, size, size, payload)

	run := 0
	for k := 1; k < blockSize; k++ {
		c := coeffs[unzig[k]]
		if c == 0 {
			run++
			continue
		}
		for run > 15 {
			emitHuff(bs, acLUT, 0xf0) // ZRL: 16 zero coefficients.
			run -= 16
		}
		size, payload := encodeCoefficient(c)
		symbol := byte(run<<4) | size
		emitHuffRLE(bs, acLUT, symbol, size, payload)
		run = 0
	}
	if run > 0 {
		emitHuff(bs, acLUT, 0x00) // EOB: all remaining coefficients are zero.
	}
	return dc
}
