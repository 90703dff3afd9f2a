// Copyright 2011 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bjpeg

import "math/bits"

// encodeCoefficient computes the (size, payload) pair used to encode a
// single DC difference or AC coefficient value c. size is the number
// of bits needed to represent the coefficient's magnitude category;
// payload is those size bits, right-justified. Positive c encodes as
// itself; negative c encodes as c-1, so that the sign is recoverable
// from the payload's leading bit alone.
func encodeCoefficient(c int32) (size uint8, payload uint32) {
	if c == 0 {
		return 0, 0
	}
	a := c
	if a < 0 {
		a = -a
	}
	size = uint8(bits.Len32(uint32(a)))
	if c < 0 {
		c--
	}
	payload = uint32(c) & (1<<size - 1)
	return size, payload
}
