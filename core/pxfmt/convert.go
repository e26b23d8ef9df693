// Copyright (C) 2017 Google Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package pxfmt

import "github.com/CSRedRat/vogl/core/fault"

const (
	// ErrUnsupportedCombination is returned by Identify when the base
	// format and data type do not name a supported encoding.
	ErrUnsupportedCombination = fault.Const("unsupported format and type combination")
	// ErrUnsupportedEncoding is returned when a SizedFormat is not in the
	// registry.
	ErrUnsupportedEncoding = fault.Const("unsupported pixel encoding")
	// ErrIntermediateMismatch is returned when one side of a conversion
	// uses the floating-point intermediate and the other the integer one.
	ErrIntermediateMismatch = fault.Const("incompatible intermediate representations")
	// ErrShortBuffer is returned when a buffer cannot hold the pixel block.
	ErrShortBuffer = fault.Const("buffer too small for pixel block")
)

// Convert re-encodes a width×height block of pixels from srcFmt in src to
// dstFmt in dst. Rows are padded to 4-byte multiples in both buffers; the
// final row need not carry the padding. Both formats must use the same
// intermediate representation, and on any error dst is left untouched.
func Convert(dst, src []byte, width, height int, srcFmt, dstFmt SizedFormat) error {
	s, d := lookup(srcFmt), lookup(dstFmt)
	if s == nil || d == nil {
		return ErrUnsupportedEncoding
	}
	if s.floats != d.floats {
		return ErrIntermediateMismatch
	}
	if err := srcFmt.Check(src, width, height); err != nil {
		return err
	}
	if err := dstFmt.Check(dst, width, height); err != nil {
		return err
	}
	srcStride := srcFmt.RowStride(width)
	dstStride := dstFmt.RowStride(width)
	srcBpp, dstBpp := int(s.bpp), int(d.bpp)
	var px pixel
	for y := 0; y < height; y++ {
		srcRow := src[y*srcStride:]
		dstRow := dst[y*dstStride:]
		for x := 0; x < width; x++ {
			s.decode(srcRow[x*srcBpp:], &px)
			d.encode(dstRow[x*dstBpp:], &px)
		}
	}
	return nil
}
