// Copyright 2011 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command bjpegtool re-encodes an image file as a baseline JPEG,
// optionally applying a color transform first.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/draw"
	_ "image/gif"
	_ "image/png"
	"log"
	"os"

	"golang.org/x/image/bmp"

	"github.com/go-bjpeg/bjpeg"
	"github.com/go-bjpeg/bjpeg/colorops"
)

func init() {
	image.RegisterFormat("bmp", "BM", bmp.Decode, bmp.DecodeConfig)
}

var (
	in        = flag.String("i", "", "input image path (png, gif or bmp)")
	out       = flag.String("o", "", "output JPEG path")
	grayscale = flag.Bool("gray", false, "convert to grayscale before encoding")
	invert    = flag.Bool("invert", false, "invert colors before encoding")
	brighten  = flag.Int("brighten", 0, "add this amount to every color channel")
	contrast  = flag.Float64("contrast", 1, "scale contrast by this factor")
)

func main() {
	flag.Parse()
	if *in == "" || *out == "" {
		fmt.Fprintln(os.Stderr, "usage: bjpegtool -i in.png -o out.jpg")
		os.Exit(2)
	}
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	f, err := os.Open(*in)
	if err != nil {
		return err
	}
	defer f.Close()

	src, _, err := image.Decode(f)
	if err != nil {
		return err
	}

	bounds := src.Bounds()
	rgba := image.NewRGBA(bounds)
	draw.Draw(rgba, bounds, src, bounds.Min, draw.Src)

	width, height := bounds.Dx(), bounds.Dy()
	pix := rgba.Pix
	if rgba.Stride != width*4 {
		return bjpeg.UnsupportedError("unexpected stride in decoded image")
	}

	const bpp = 4
	if *grayscale {
		colorops.Grayscale(pix, bpp)
	}
	if *invert {
		colorops.Invert(pix, bpp)
	}
	if *brighten != 0 {
		colorops.Brighten(pix, bpp, *brighten)
	}
	if *contrast != 1 {
		colorops.Contrast(pix, bpp, *contrast)
	}

	of, err := os.Create(*out)
	if err != nil {
		return err
	}
	defer of.Close()

	return bjpeg.Encode(of, pix, width, height, bjpeg.RGBA8)
}
