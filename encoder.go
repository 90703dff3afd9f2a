// Copyright 2011 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bjpeg implements a baseline (sequential DCT, Huffman-coded)
// JPEG encoder for in-memory pixel buffers.
package bjpeg

import (
	"bufio"
	"io"
)

// ColorType identifies the layout of the flat pixel buffer passed to
// Encode: how many bytes make up one pixel and whether the pixel is
// grayscale or RGB(A). These are the only four layouts Encode accepts;
// anything else is reported through UnsupportedError.
type ColorType int

const (
	Gray8 ColorType = iota
	GrayA8
	RGB8
	RGBA8
)

func (ct ColorType) String() string {
	switch ct {
	case Gray8:
		return "Gray8"
	case GrayA8:
		return "GrayA8"
	case RGB8:
		return "RGB8"
	case RGBA8:
		return "RGBA8"
	default:
		return "ColorType(?)"
	}
}

// bpp returns the number of bytes occupied by one pixel.
func (ct ColorType) bpp() int {
	switch ct {
	case Gray8:
		return 1
	case GrayA8:
		return 2
	case RGB8:
		return 3
	case RGBA8:
		return 4
	default:
		return 0
	}
}

// grayscale reports whether ct has a single luma channel rather than
// three RGB channels.
func (ct ColorType) grayscale() bool {
	switch ct {
	case Gray8, GrayA8:
		return true
	default:
		return false
	}
}

func (ct ColorType) valid() bool {
	switch ct {
	case Gray8, GrayA8, RGB8, RGBA8:
		return true
	default:
		return false
	}
}

// componentDesc is one entry of the frame header's component list.
// Every component in this encoder samples 1x1 (no chroma subsampling:
// see DESIGN.md's Open Question decision on 4:4:4 vs 4:2:2).
type componentDesc struct {
	id       byte
	quantID  byte
	dcID     byte
	acID     byte
	dcLUT    *huffmanLUT
	acLUT    *huffmanLUT
	quantTbl *[blockSize]byte
}

const (
	compY  = 1
	compCb = 2
	compCr = 3
)

// Encode writes pix, a width x height image in the layout ct
// describes, to w as a baseline JFIF/JPEG stream. pix must hold at
// least stride*height bytes where stride = width*ct.bpp(); a shorter
// buffer is not an error; the missing samples are read as the last
// byte present (see valueAt).
func Encode(w io.Writer, pix []byte, width, height int, ct ColorType) error {
	if !ct.valid() {
		return UnsupportedError(ct.String())
	}
	if width <= 0 || height <= 0 {
		return UnsupportedError("image has a zero or negative dimension")
	}
	if len(pix) == 0 {
		return UnsupportedError("empty pixel buffer")
	}

	ww, ok := w.(writer)
	if !ok {
		ww = bufio.NewWriter(w)
	}
	bs := &bitSink{w: ww}

	e := &encoder{bs: bs, width: width, height: height, ct: ct, pix: pix, stride: width * ct.bpp()}
	e.encode()

	if f, ok := ww.(flusher); ok && e.bs.err == nil {
		e.bs.err = f.Flush()
	}
	return e.bs.err
}

type encoder struct {
	bs     *bitSink
	width  int
	height int
	ct     ColorType
	pix    []byte
	stride int
}

func (e *encoder) encode() {
	e.writeMarker(markerSOI)
	e.writeAPP0()
	e.writeDQT(0, &lumaQuantNatural)
	if !e.ct.grayscale() {
		e.writeDQT(1, &chromaQuantNatural)
	}
	e.writeSOF0()
	e.writeDHT(0, 0, lumaDCSpec)
	e.writeDHT(1, 0, lumaACSpec)
	if !e.ct.grayscale() {
		e.writeDHT(0, 1, chromaDCSpec)
		e.writeDHT(1, 1, chromaACSpec)
	}
	e.writeSOS()
	e.encodeScan()
	e.bs.padByte()
	e.writeMarker(markerEOI)
}

func (e *encoder) writeMarker(marker byte) {
	e.bs.write([]byte{0xff, marker})
}

func (e *encoder) writeSegment(marker byte, payload []byte) {
	n := len(payload) + 2
	e.bs.write([]byte{0xff, marker, byte(n >> 8), byte(n)})
	e.bs.write(payload)
}

// writeAPP0 writes the JFIF identification segment: no thumbnail, no
// density information beyond "aspect ratio only".
func (e *encoder) writeAPP0() {
	payload := []byte{
		'J', 'F', 'I', 'F', 0x00,
		0x01, 0x02, // version 1.02
		0x00,       // units: 0 = aspect ratio only
		0x00, 0x01, // Xdensity
		0x00, 0x01, // Ydensity
		0x00, // thumbnail width
		0x00, // thumbnail height
	}
	e.writeSegment(markerAPP0, payload)
}

func (e *encoder) writeDQT(id byte, table *[blockSize]byte) {
	payload := make([]byte, 1+blockSize)
	payload[0] = id
	for i := 0; i < blockSize; i++ {
		payload[1+i] = table[unzig[i]]
	}
	e.writeSegment(markerDQT, payload)
}

func (e *encoder) writeSOF0() {
	comps := e.components()
	payload := make([]byte, 0, 6+3*len(comps))
	payload = append(payload, 8) // sample precision
	payload = append(payload, byte(e.height>>8), byte(e.height))
	payload = append(payload, byte(e.width>>8), byte(e.width))
	payload = append(payload, byte(len(comps)))
	for _, c := range comps {
		payload = append(payload, c.id, 0x11, c.quantID)
	}
	e.writeSegment(markerSOF0, payload)
}

func (e *encoder) writeDHT(class, id byte, spec huffmanSpec) {
	payload := make([]byte, 0, 1+16+len(spec.values))
	payload = append(payload, class<<4|id)
	payload = append(payload, spec.counts[:]...)
	payload = append(payload, spec.values...)
	e.writeSegment(markerDHT, payload)
}

func (e *encoder) writeSOS() {
	comps := e.components()
	payload := make([]byte, 0, 4+2*len(comps))
	payload = append(payload, byte(len(comps)))
	for _, c := range comps {
		payload = append(payload, c.id, c.dcID<<4|c.acID)
	}
	payload = append(payload, 0, 63, 0) // spectral selection / approximation, fixed for baseline
	e.writeSegment(markerSOS, payload)
}

// components returns the frame's component descriptors in the order
// they're emitted: luma first, then (for non-grayscale color types)
// Cb and Cr.
func (e *encoder) components() []componentDesc {
	if e.ct.grayscale() {
		return []componentDesc{
			{id: compY, quantID: 0, dcID: 0, acID: 0, dcLUT: &lumaDCLUT, acLUT: &lumaACLUT, quantTbl: &lumaQuantNatural},
		}
	}
	return []componentDesc{
		{id: compY, quantID: 0, dcID: 0, acID: 0, dcLUT: &lumaDCLUT, acLUT: &lumaACLUT, quantTbl: &lumaQuantNatural},
		{id: compCb, quantID: 1, dcID: 1, acID: 1, dcLUT: &chromaDCLUT, acLUT: &chromaACLUT, quantTbl: &chromaQuantNatural},
		{id: compCr, quantID: 1, dcID: 1, acID: 1, dcLUT: &chromaDCLUT, acLUT: &chromaACLUT, quantTbl: &chromaQuantNatural},
	}
}

// quantize divides each of the 64 natural-order FDCT outputs in in by
// 8 times the corresponding entry of q, rounding half away from zero,
// and writes the result to out. See DESIGN.md's Open Question decision
// on why this rounds instead of truncating.
func quantize(in *[blockSize]float64, q *[blockSize]byte, out *block) {
	for i := 0; i < blockSize; i++ {
		d := in[i] / (8 * float64(q[i]))
		if d >= 0 {
			out[i] = int32(d + 0.5)
		} else {
			out[i] = -int32(-d + 0.5)
		}
	}
}

// encodeScan walks the image in 8x8-block order, entropy-coding one
// block per component at each block position (non-interleaved
// chroma subsampling is not performed: every component is sampled at
// full resolution, 1 block per block position).
func (e *encoder) encodeScan() {
	comps := e.components()
	prevDC := make([]int32, len(comps))

	var samples, yS, cbS, crS sampleBlock
	var shifted [blockSize]float64
	var coeffsF [blockSize]float64
	var coeffs block

	for y0 := 0; y0 < e.height; y0 += 8 {
		for x0 := 0; x0 < e.width; x0 += 8 {
			if e.ct.grayscale() {
				extractGray(e.pix, e.stride, e.width, e.height, e.ct.bpp(), x0, y0, &samples)
				levelShift(&samples, &shifted)
				fdct(&shifted, &coeffsF)
				quantize(&coeffsF, comps[0].quantTbl, &coeffs)
				prevDC[0] = writeBlock(e.bs, comps[0].dcLUT, comps[0].acLUT, &coeffs, prevDC[0])
				continue
			}

			extractYCbCr(e.pix, e.stride, e.width, e.height, e.ct.bpp(), x0, y0, &yS, &cbS, &crS)
			for i, sb := range []*sampleBlock{&yS, &cbS, &crS} {
				levelShift(sb, &shifted)
				fdct(&shifted, &coeffsF)
				quantize(&coeffsF, comps[i].quantTbl, &coeffs)
				prevDC[i] = writeBlock(e.bs, comps[i].dcLUT, comps[i].acLUT, &coeffs, prevDC[i])
			}
		}
	}
}

// levelShift subtracts 128 from each sample, mapping the unsigned
// [0, 255] range to the signed [-128, 127] range the FDCT expects.
func levelShift(in *sampleBlock, out *[blockSize]float64) {
	for i, s := range in {
		out[i] = float64(s) - 128
	}
}
