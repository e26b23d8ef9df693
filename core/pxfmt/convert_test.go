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

package pxfmt_test

import (
	"encoding/binary"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CSRedRat/vogl/core/pxfmt"
)

// fill builds deterministic pixel content for a w×h block of f. Formats with
// float storage get small exact float words; everything else gets a byte
// pattern with the high bit clear, which keeps signed components positive.
func fill(f pxfmt.SizedFormat, w, h int) []byte {
	buf := make([]byte, f.Size(w, h))
	if strings.Contains(f.String(), "FLOAT") {
		for off := 0; off+4 <= len(buf); off += 4 {
			v := float32(off%7+1) / 8
			binary.LittleEndian.PutUint32(buf[off:], math.Float32bits(v))
		}
		return buf
	}
	for i := range buf {
		buf[i] = byte(0x21+i*0x17) & 0x7F
	}
	return buf
}

// rows returns the pixel bytes of each row of buf, without the row padding.
func rows(f pxfmt.SizedFormat, buf []byte, w, h int) [][]byte {
	stride := f.RowStride(w)
	n := f.BytesPerPixel() * w
	out := make([][]byte, h)
	for y := 0; y < h; y++ {
		out[y] = buf[y*stride:][:n]
	}
	return out
}

func TestSelfConversionStability(t *testing.T) {
	const w, h = 3, 2
	for _, f := range pxfmt.Formats() {
		f := f
		t.Run(f.String(), func(t *testing.T) {
			src := fill(f, w, h)
			c1 := make([]byte, f.Size(w, h))
			require.NoError(t, pxfmt.Convert(c1, src, w, h, f, f))
			c2 := make([]byte, f.Size(w, h))
			require.NoError(t, pxfmt.Convert(c2, c1, w, h, f, f))
			assert.Equal(t, c1, c2)
		})
	}
}

func TestSelfConversionExact(t *testing.T) {
	const w, h = 3, 2
	for _, f := range pxfmt.Formats() {
		// S32_FLOAT truncates to an integer, and the combined
		// depth+stencil float format masks its stencil word, so neither
		// preserves arbitrary input bits.
		if f == pxfmt.S32Float || f == pxfmt.D32FloatS8Uint {
			continue
		}
		f := f
		t.Run(f.String(), func(t *testing.T) {
			src := fill(f, w, h)
			dst := make([]byte, f.Size(w, h))
			require.NoError(t, pxfmt.Convert(dst, src, w, h, f, f))
			assert.Equal(t, rows(f, src, w, h), rows(f, dst, w, h))
		})
	}
}

func TestUnormRoundTripExhaustive(t *testing.T) {
	const w, h = 256, 1
	src := make([]byte, w)
	for i := range src {
		src[i] = byte(i)
	}
	dst := make([]byte, w)
	require.NoError(t, pxfmt.Convert(dst, src, w, h, pxfmt.R8Unorm, pxfmt.R8Unorm))
	assert.Equal(t, src, dst)
}

func TestSnormNegativeLimitClamps(t *testing.T) {
	// -128 decodes to the clamped -1.0 and re-encodes as -127.
	src := []byte{0x80}
	dst := make([]byte, 1)
	require.NoError(t, pxfmt.Convert(dst, src, 1, 1, pxfmt.R8Snorm, pxfmt.R8Snorm))
	assert.Equal(t, []byte{0x81}, dst)
}

func TestSnormToFloat(t *testing.T) {
	src := make([]byte, 2)
	binary.LittleEndian.PutUint16(src, 0x8000) // -32768
	dst := make([]byte, 4)
	require.NoError(t, pxfmt.Convert(dst, src, 1, 1, pxfmt.R16Snorm, pxfmt.R32Float))
	got := math.Float32frombits(binary.LittleEndian.Uint32(dst))
	assert.Equal(t, float32(-1), got)

	binary.LittleEndian.PutUint16(src, 0x7FFF) // 32767
	require.NoError(t, pxfmt.Convert(dst, src, 1, 1, pxfmt.R16Snorm, pxfmt.R32Float))
	got = math.Float32frombits(binary.LittleEndian.Uint32(dst))
	assert.Equal(t, float32(1), got)
}

func TestRGBA8ToRGB565(t *testing.T) {
	src := []byte{0xFF, 0x80, 0x00, 0xFF}
	dst := make([]byte, 2)
	require.NoError(t, pxfmt.Convert(dst, src, 1, 1, pxfmt.RGBA8Unorm, pxfmt.RGB565Unorm))

	to := pxfmt.RGB565Unorm
	var want uint32
	for c, raw := range []byte{0xFF, 0x80, 0x00} {
		v := float64(raw) / 255
		want |= uint32(int64(v*float64(to.Max(c)))) << to.Shift(c)
	}
	assert.Equal(t, uint16(want), binary.LittleEndian.Uint16(dst))
}

func TestMissingSlotDefaults(t *testing.T) {
	// Red-only input: green and blue default to 0, alpha to 1.
	src := []byte{0x40}
	dst := make([]byte, 4)
	require.NoError(t, pxfmt.Convert(dst, src, 1, 1, pxfmt.R8Unorm, pxfmt.RGBA8Unorm))
	assert.Equal(t, []byte{0x40, 0x00, 0x00, 0xFF}, dst)

	// Green-only input lands in the green slot.
	require.NoError(t, pxfmt.Convert(dst, src, 1, 1, pxfmt.G8Unorm, pxfmt.RGBA8Unorm))
	assert.Equal(t, []byte{0x00, 0x40, 0x00, 0xFF}, dst)

	// The integer intermediate defaults alpha to 1, not to the component
	// maximum.
	require.NoError(t, pxfmt.Convert(dst, src, 1, 1, pxfmt.R8Uint, pxfmt.RGBA8Uint))
	assert.Equal(t, []byte{0x40, 0x00, 0x00, 0x01}, dst)
}

func TestDepthStencilSplit(t *testing.T) {
	// Depth all-ones must decode to exactly 1.0, stencil to the low byte.
	src := make([]byte, 4)
	binary.LittleEndian.PutUint32(src, 0xFFFFFF42)
	dst := make([]byte, 8)
	require.NoError(t, pxfmt.Convert(dst, src, 1, 1, pxfmt.D24UnormS8Uint, pxfmt.D32FloatS8Uint))
	assert.Equal(t, float32(1), math.Float32frombits(binary.LittleEndian.Uint32(dst)))
	assert.Equal(t, uint32(0x42), binary.LittleEndian.Uint32(dst[4:]))

	// And back again.
	back := make([]byte, 4)
	require.NoError(t, pxfmt.Convert(back, dst, 1, 1, pxfmt.D32FloatS8Uint, pxfmt.D24UnormS8Uint))
	assert.Equal(t, uint32(0xFFFFFF42), binary.LittleEndian.Uint32(back))
}

func TestIntermediateMismatch(t *testing.T) {
	src := fill(pxfmt.RGBA8Unorm, 1, 1)
	dst := []byte{0xAA, 0xAA, 0xAA, 0xAA}
	err := pxfmt.Convert(dst, src, 1, 1, pxfmt.RGBA8Unorm, pxfmt.RGBA8Uint)
	assert.ErrorIs(t, err, pxfmt.ErrIntermediateMismatch)
	assert.Equal(t, []byte{0xAA, 0xAA, 0xAA, 0xAA}, dst, "dst must be untouched on error")

	err = pxfmt.Convert(dst, src, 1, 1, pxfmt.R32Uint, pxfmt.R32Float)
	assert.ErrorIs(t, err, pxfmt.ErrIntermediateMismatch)
}

func TestConvertErrors(t *testing.T) {
	src := fill(pxfmt.R8Unorm, 2, 2)
	dst := make([]byte, pxfmt.R8Unorm.Size(2, 2))

	err := pxfmt.Convert(dst, src, 2, 2, pxfmt.Invalid, pxfmt.R8Unorm)
	assert.ErrorIs(t, err, pxfmt.ErrUnsupportedEncoding)
	err = pxfmt.Convert(dst, src, 2, 2, pxfmt.R8Unorm, pxfmt.SizedFormat(0x7FFF))
	assert.ErrorIs(t, err, pxfmt.ErrUnsupportedEncoding)

	err = pxfmt.Convert(dst, src[:3], 2, 2, pxfmt.R8Unorm, pxfmt.R8Unorm)
	assert.ErrorIs(t, err, pxfmt.ErrShortBuffer)
	err = pxfmt.Convert(dst[:3], src, 2, 2, pxfmt.R8Unorm, pxfmt.R8Unorm)
	assert.ErrorIs(t, err, pxfmt.ErrShortBuffer)
}

func TestConvertNonSquare(t *testing.T) {
	// 5×3 and 3×5 exercise unequal width and height in both orientations;
	// v*257 is the exact 8-to-16-bit unorm expansion.
	for _, dim := range []struct{ w, h int }{{5, 3}, {3, 5}} {
		srcStride := pxfmt.R8Unorm.RowStride(dim.w)
		dstStride := pxfmt.R16Unorm.RowStride(dim.w)
		src := make([]byte, pxfmt.R8Unorm.Size(dim.w, dim.h))
		for y := 0; y < dim.h; y++ {
			for x := 0; x < dim.w; x++ {
				src[y*srcStride+x] = byte(y*16 + x + 1)
			}
		}
		dst := make([]byte, pxfmt.R16Unorm.Size(dim.w, dim.h))
		require.NoError(t, pxfmt.Convert(dst, src, dim.w, dim.h, pxfmt.R8Unorm, pxfmt.R16Unorm))
		for y := 0; y < dim.h; y++ {
			for x := 0; x < dim.w; x++ {
				want := uint16(y*16+x+1) * 257
				got := binary.LittleEndian.Uint16(dst[y*dstStride+2*x:])
				assert.Equal(t, want, got, "%dx%d pixel (%d,%d)", dim.w, dim.h, x, y)
			}
		}
	}
}

func TestRowPaddingIgnored(t *testing.T) {
	const w, h = 3, 3 // RGB8 rows are 9 bytes padded to 12
	clean := fill(pxfmt.RGB8Unorm, w, h)
	dirty := append([]byte(nil), clean...)
	stride := pxfmt.RGB8Unorm.RowStride(w)
	for y := 0; y < h; y++ {
		for i := pxfmt.RGB8Unorm.BytesPerPixel() * w; i < stride; i++ {
			dirty[y*stride+i] = 0xEE
		}
	}
	a := make([]byte, pxfmt.RGBA8Unorm.Size(w, h))
	b := make([]byte, pxfmt.RGBA8Unorm.Size(w, h))
	require.NoError(t, pxfmt.Convert(a, clean, w, h, pxfmt.RGB8Unorm, pxfmt.RGBA8Unorm))
	require.NoError(t, pxfmt.Convert(b, dirty, w, h, pxfmt.RGB8Unorm, pxfmt.RGBA8Unorm))
	assert.Equal(t, a, b)
}

func TestLastRowWithoutPadding(t *testing.T) {
	// A 1×2 RGB8 block is two 3-byte pixels with a 4-byte row stride; the
	// final row does not need the padding byte.
	src := make([]byte, 7)
	for i := range src {
		src[i] = byte(i + 1)
	}
	dst := make([]byte, 7)
	require.NoError(t, pxfmt.Convert(dst, src, 1, 2, pxfmt.RGB8Unorm, pxfmt.RGB8Unorm))
	assert.Equal(t, src[:3], dst[:3])
	assert.Equal(t, src[4:7], dst[4:7])

	err := pxfmt.Convert(dst, src[:6], 1, 2, pxfmt.RGB8Unorm, pxfmt.RGB8Unorm)
	assert.ErrorIs(t, err, pxfmt.ErrShortBuffer)
}

func TestConvertZeroSizeBlocks(t *testing.T) {
	assert.NoError(t, pxfmt.Convert(nil, nil, 0, 0, pxfmt.R8Unorm, pxfmt.R8Unorm))
	assert.NoError(t, pxfmt.Convert(nil, nil, 4, 0, pxfmt.R8Unorm, pxfmt.R8Unorm))
	assert.NoError(t, pxfmt.Convert(nil, nil, 0, 4, pxfmt.R8Unorm, pxfmt.R8Unorm))
}
