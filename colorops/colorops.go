// Copyright 2011 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package colorops provides small, allocation-free pixel transforms
// for preparing an RGB or RGBA buffer before it is handed to bjpeg.
package colorops

// Grayscale overwrites each RGB(A) pixel of pix in place with its
// luma value, replicated across the R, G and B channels, using the
// same weights bjpeg.rgbToYCbCr uses for the Y channel. bpp is the
// number of bytes per pixel (3 for RGB, 4 for RGBA); any bytes past
// the first 3 channels (alpha) are left untouched.
func Grayscale(pix []byte, bpp int) {
	for i := 0; i+2 < len(pix); i += bpp {
		r, g, b := float64(pix[i]), float64(pix[i+1]), float64(pix[i+2])
		y := clamp(0.299*r + 0.587*g + 0.114*b)
		pix[i], pix[i+1], pix[i+2] = y, y, y
	}
}

// Invert replaces every color channel byte of pix with its
// complement (255-v). bpp is the number of bytes per pixel; when bpp
// is 4 the 4th byte of each pixel (alpha) is left untouched.
func Invert(pix []byte, bpp int) {
	channels := bpp
	if bpp == 4 {
		channels = 3
	}
	for i := 0; i+channels <= len(pix); i += bpp {
		for c := 0; c < channels; c++ {
			pix[i+c] = 255 - pix[i+c]
		}
	}
}

// Brighten adds delta to every color channel byte of pix, saturating
// at 0 and 255. bpp behaves as in Invert.
func Brighten(pix []byte, bpp int, delta int) {
	channels := bpp
	if bpp == 4 {
		channels = 3
	}
	for i := 0; i+channels <= len(pix); i += bpp {
		for c := 0; c < channels; c++ {
			pix[i+c] = clamp(float64(pix[i+c]) + float64(delta))
		}
	}
}

// Contrast scales every color channel byte of pix about the midpoint
// 127.5 by factor, saturating at 0 and 255. A factor of 1 leaves pix
// unchanged; 0 flattens it to solid gray.
func Contrast(pix []byte, bpp int, factor float64) {
	channels := bpp
	if bpp == 4 {
		channels = 3
	}
	for i := 0; i+channels <= len(pix); i += bpp {
		for c := 0; c < channels; c++ {
			v := (float64(pix[i+c])-127.5)*factor + 127.5
			pix[i+c] = clamp(v)
		}
	}
}

func clamp(f float64) byte {
	if f < 0 {
		return 0
	}
	if f > 255 {
		return 255
	}
	return byte(f + 0.5)
}
