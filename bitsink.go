// Copyright 2011 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bjpeg

import "io"

// writer is what a bitSink needs from its destination: byte-at-a-time
// writes for segment framing, and bulk writes for segment payloads and
// Huffman table values. Encode wraps a plain io.Writer in a
// *bufio.Writer when it doesn't already satisfy this.
type writer interface {
	io.Writer
	io.ByteWriter
}

// flusher is implemented by writers (such as *bufio.Writer) that buffer
// internally and need an explicit flush before Encode returns.
type flusher interface {
	Flush() error
}

// bitSink is the stateful bit accumulator behind the entropy-coded
// scan: a 32-bit accumulator holding bits left-justified against the
// next unemitted bit, plus a count of how many of those bits are
// meaningful. Segment builders call writeByte/write directly, bypassing
// the accumulator (no stuffing there); the entropy-coded scan calls
// writeBits, which stuffs a 0x00 after every 0xFF byte it emits.
type bitSink struct {
	w     writer
	err   error
	acc   uint32
	nbits uint32
}

func (s *bitSink) writeByte(b byte) {
	if s.err != nil {
		return
	}
	s.err = s.w.WriteByte(b)
}

func (s *bitSink) write(p []byte) {
	if s.err != nil {
		return
	}
	_, s.err = s.w.Write(p)
}

// writeBits emits the low size bits of bits, most-significant bit
// first. The precondition is size <= 16 and bits < 1<<size; the
// postcondition is nbits < 8. Every 0xFF byte flushed from the
// accumulator is immediately followed by a stuffed 0x00, as required
// within the entropy-coded segment.
func (s *bitSink) writeBits(bits, size uint32) {
	if s.err != nil {
		return
	}
	s.nbits += size
	s.acc |= bits << (32 - s.nbits)
	for s.nbits >= 8 {
		b := byte(s.acc >> 24)
		s.writeByte(b)
		if b == 0xff {
			s.writeByte(0x00)
		}
		s.acc <<= 8
		s.nbits -= 8
	}
}

// padByte flushes any partial byte left in the accumulator by filling
// it with 1-bits, as required for the final byte of entropy-coded data
// before EOI. It is a no-op when the accumulator is already
// byte-aligned — emitting a fixed seven 1-bits unconditionally would
// produce a spurious 0xFF 0x00 pair in that case (see DESIGN.md,
// decision 4).
func (s *bitSink) padByte() {
	if s.err != nil || s.nbits == 0 {
		return
	}
	n := 8 - s.nbits
	s.writeBits(1<<n-1, n)
}
