// Copyright 2011 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bjpeg

// valueAt reads the byte at linear offset i in pix, clamping i to the
// last valid index of pix rather than treating an out-of-range read as
// an error. The block extractors clamp pixel coordinates to the last
// valid column/row themselves to pad partial edge blocks; valueAt only
// matters when pix is shorter than stride*height.
func valueAt(pix []byte, i int) byte {
	if i >= len(pix) {
		i = len(pix) - 1
	}
	return pix[i]
}

// rgbToYCbCr converts one RGB triple to YCbCr using the JFIF
// full-range conversion (values in [0, 255], no head-/foot-room).
func rgbToYCbCr(r, g, b byte) (y, cb, cr byte) {
	rf, gf, bf := float64(r), float64(g), float64(b)
	yf := 0.299*rf + 0.587*gf + 0.114*bf
	cbf := -0.1687*rf - 0.3313*gf + 0.5*bf + 128
	crf := 0.5*rf - 0.4187*gf - 0.0813*bf + 128
	return clampTrunc(yf), clampTrunc(cbf), clampTrunc(crf)
}

// clampTrunc truncates f toward zero and clamps it to [0, 255].
func clampTrunc(f float64) byte {
	i := int(f)
	if i < 0 {
		return 0
	}
	if i > 255 {
		return 255
	}
	return byte(i)
}

// extractGray extracts one 8x8 block of samples from a Gray8 or
// GrayA8 image, starting at pixel (x0, y0), always reading channel 0
// of each pixel. An earlier draft of this routine read channel index
// 1; for a GrayA8 buffer that silently pulled the alpha byte instead
// of the gray sample for every pixel (see DESIGN.md,
// decision 3).
func extractGray(pix []byte, stride, width, height, bpp, x0, y0 int, out *sampleBlock) {
	for by := 0; by < 8; by++ {
		y := y0 + by
		if y >= height {
			y = height - 1
		}
		rowStart := y * stride
		for bx := 0; bx < 8; bx++ {
			x := x0 + bx
			if x >= width {
				x = width - 1
			}
			out[by*8+bx] = valueAt(pix, rowStart+x*bpp)
		}
	}
}

// extractYCbCr extracts three 8x8 blocks (Y, Cb, Cr) from an RGB8 or
// RGBA8 source buffer, starting at pixel (x0, y0), converting each
// sample with rgbToYCbCr. Partial blocks at the right/bottom edge
// replicate the last valid column/row, matching extractGray.
func extractYCbCr(pix []byte, stride, width, height, bpp, x0, y0 int, y, cb, cr *sampleBlock) {
	for by := 0; by < 8; by++ {
		row := y0 + by
		if row >= height {
			row = height - 1
		}
		rowStart := row * stride
		for bx := 0; bx < 8; bx++ {
			col := x0 + bx
			if col >= width {
				col = width - 1
			}
			off := rowStart + col*bpp
			r := valueAt(pix, off)
			g := valueAt(pix, off+1)
			b := valueAt(pix, off+2)
			yy, cbb, crr := rgbToYCbCr(r, g, b)
			idx := by*8 + bx
			y[idx] = yy
			cb[idx] = cbb
			cr[idx] = crr
		}
	}
}
