// Copyright 2011 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bjpeg

// Markers. Only the subset a baseline single-scan encoder emits is
// listed here.
const (
	markerSOF0 = 0xc0 // Start Of Frame (Baseline Sequential).
	markerDHT  = 0xc4 // Define Huffman Table.
	markerSOI  = 0xd8 // Start Of Image.
	markerEOI  = 0xd9 // End Of Image.
	markerSOS  = 0xda // Start Of Scan.
	markerDQT  = 0xdb // Define Quantization Table.
	markerAPP0 = 0xe0 // JFIF application segment.
)

// blockSize is the number of coefficients in an 8x8 block.
const blockSize = 64

// block holds 64 natural-order (not zig-zag) signed quantized
// coefficients.
type block [blockSize]int32

// sampleBlock holds 64 natural-order 8-bit samples extracted from the
// source pixel buffer.
type sampleBlock [blockSize]byte

// unzig maps a zig-zag position (0..63) to the natural-order index of the
// corresponding coefficient (Annex A, Figure A.6).
var unzig = [blockSize]int{
	0, 1, 8, 16, 9, 2, 3, 10,
	17, 24, 32, 25, 18, 11, 4, 5,
	12, 19, 26, 33, 40, 48, 41, 34,
	27, 20, 13, 6, 7, 14, 21, 28,
	35, 42, 49, 56, 57, 50, 43, 36,
	29, 22, 15, 23, 30, 37, 44, 51,
	58, 59, 52, 45, 38, 31, 39, 46,
	53, 60, 61, 54, 47, 55, 62, 63,
}
