package bjpeg

import "fmt"

// UnsupportedError reports that the caller asked this encoder to do
// something it deliberately does not support: a ColorType outside
// {Gray8, GrayA8, RGB8, RGBA8}, or an image with a zero dimension.
type UnsupportedError string

func (e UnsupportedError) Error() string { return "bjpeg: unsupported: " + string(e) }

// internalError marks a failed internal assertion: a standard table
// whose code-length counts don't sum to its value count, or a Huffman
// lookup against a zero-length entry. (Quantization tables are
// fixed-size 64-entry arrays, so their length is never checked.) These
// indicate a programmer error, not a bad
// input, so invariant panics with one rather than returning it as an
// error the caller could plausibly recover from.
type internalError string

func (e internalError) Error() string { return "bjpeg: internal invariant violated: " + string(e) }

// invariant panics with an internalError if cond is false. It exists so
// the condition and message sit next to each other at the call site,
// the way an assert would in a language that has one.
func invariant(cond bool, format string, args ...any) {
	if !cond {
		panic(internalError(fmt.Sprintf(format, args...)))
	}
}
