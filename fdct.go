// Copyright 2011 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bjpeg

import "math"

// fdctCoeff holds the separable 1-D cosine basis used by fdct, scaled
// so that a direct two-pass matrix multiply reproduces the forward DCT
// of section 4.5 without a fast (AAN/Loeffler-style) factorization.
// This encoder favors the textbook O(n^3) separable transform over a
// fast DCT: at one transform per 8x8 block the constant factor never
// dominates, and the direct form is straightforward to verify against
// a reference coefficient table in tests.
var fdctCoeff [8][8]float64

func init() {
	for u := 0; u < 8; u++ {
		for x := 0; x < 8; x++ {
			fdctCoeff[u][x] = math.Cos(float64(2*x+1) * float64(u) * math.Pi / 16)
		}
	}
}

// fdctAlpha returns the normalization factor C(u) of the forward DCT.
func fdctAlpha(u int) float64 {
	if u == 0 {
		return 1 / math.Sqrt2
	}
	return 1
}

// fdct computes the forward DCT-II of an 8x8 block of level-shifted
// samples (each in [-128, 127]), in natural (row-major) order, writing
// signed float coefficients into out. The separable two-pass form
// first transforms rows, then columns. The result is scaled by a
// factor of 8 above the textbook normalization, so that quantize can
// divide by 8*q in one step rather than pre-scaling every quantization
// table entry.
func fdct(in *[blockSize]float64, out *[blockSize]float64) {
	var tmp [blockSize]float64
	for y := 0; y < 8; y++ {
		for u := 0; u < 8; u++ {
			var sum float64
			for x := 0; x < 8; x++ {
				sum += in[y*8+x] * fdctCoeff[u][x]
			}
			tmp[y*8+u] = sum * fdctAlpha(u) / 2
		}
	}
	for u := 0; u < 8; u++ {
		for v := 0; v < 8; v++ {
			var sum float64
			for y := 0; y < 8; y++ {
				sum += tmp[y*8+u] * fdctCoeff[v][y]
			}
			out[v*8+u] = sum * fdctAlpha(v) * 4
		}
	}
}
