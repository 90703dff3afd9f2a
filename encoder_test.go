// Copyright 2011 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bjpeg

import (
	"bytes"
	"testing"

	qt "github.com/frankban/quicktest"
	"github.com/google/go-cmp/cmp"
)

func TestEncodeGraySmokeTest(t *testing.T) {
	c := qt.New(t)

	pix := make([]byte, 16*16)
	for i := range pix {
		pix[i] = byte(i)
	}
	var buf bytes.Buffer
	err := Encode(&buf, pix, 16, 16, Gray8)
	c.Assert(err, qt.IsNil)

	b := buf.Bytes()
	c.Assert(b[0:2], qt.DeepEquals, []byte{0xff, markerSOI})
	c.Assert(b[len(b)-2:], qt.DeepEquals, []byte{0xff, markerEOI})
}

func TestEncodeRGBNonMultipleOf8(t *testing.T) {
	c := qt.New(t)

	width, height := 10, 6
	pix := make([]byte, width*height*3)
	var buf bytes.Buffer
	err := Encode(&buf, pix, width, height, RGB8)
	c.Assert(err, qt.IsNil)
	c.Assert(buf.Len() > 0, qt.IsTrue)
}

func TestEncodeRejectsZeroDimension(t *testing.T) {
	c := qt.New(t)

	var buf bytes.Buffer
	err := Encode(&buf, []byte{1, 2, 3}, 0, 1, RGB8)
	c.Assert(err, qt.ErrorMatches, "bjpeg: unsupported:.*")
}

func TestEncodeRejectsInvalidColorType(t *testing.T) {
	c := qt.New(t)

	var buf bytes.Buffer
	err := Encode(&buf, []byte{1, 2, 3}, 1, 1, ColorType(99))
	c.Assert(err, qt.ErrorMatches, "bjpeg: unsupported:.*")
}

func TestEncodeGrayscaleOmitsChromaSegments(t *testing.T) {
	c := qt.New(t)

	pix := make([]byte, 8*8)
	var gray, rgb bytes.Buffer
	c.Assert(Encode(&gray, pix, 8, 8, Gray8), qt.IsNil)

	rgbPix := make([]byte, 8*8*3)
	c.Assert(Encode(&rgb, rgbPix, 8, 8, RGB8), qt.IsNil)

	// The grayscale stream has exactly one DQT and two DHT segments;
	// the color stream has two DQT and four DHT segments. A rough
	// proxy: the color stream must be strictly larger for the same
	// pixel count.
	if diff := cmp.Diff(true, len(rgb.Bytes()) > len(gray.Bytes())); diff != "" {
		t.Errorf("expected color stream to carry more header bytes than grayscale (-want +got):\n%s", diff)
	}
}

func TestEncodeWritesToPlainWriter(t *testing.T) {
	c := qt.New(t)

	// A writer that is neither a writer (no WriteByte) nor a flusher,
	// to exercise the bufio.Writer wrapping path.
	pw := &plainWriter{}
	pix := make([]byte, 8*8)
	err := Encode(pw, pix, 8, 8, Gray8)
	c.Assert(err, qt.IsNil)
	c.Assert(pw.buf.Len() > 0, qt.IsTrue)
}

type plainWriter struct {
	buf bytes.Buffer
}

func (p *plainWriter) Write(b []byte) (int, error) { return p.buf.Write(b) }
