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

import (
	"github.com/CSRedRat/vogl/core/data/endian"
	"github.com/CSRedRat/vogl/core/math/f64"
)

// pixel is the canonical intermediate form of a single pixel. Formats that
// need floating point populate f, integer formats populate u. Slot order is
// red, green, blue, alpha; depth aliases the red slot and stencil the green
// slot.
type pixel struct {
	f [4]float64
	u [4]uint32
}

// signExtend reinterprets the low bits of v as a signed two's complement
// value of the given width.
func signExtend(v uint32, bits uint8) int32 {
	shift := 32 - bits
	return int32(v<<shift) >> shift
}

// decode reads one pixel at the start of src into p. Slots the format does
// not store are left at their defaults: zero for color and depth, one for
// alpha.
func (d *descriptor) decode(src []byte, p *pixel) {
	p.f = [4]float64{0, 0, 0, 1}
	p.u = [4]uint32{0, 0, 0, 1}
	switch d.fmt {
	case D24UnormS8Uint:
		d.decodeD24S8(src, p)
	case D32FloatS8Uint:
		d.decodeD32FS8(src, p)
	default:
		switch {
		case d.packed:
			d.decodePacked(src, p)
		case d.normalized:
			d.decodeNorm(src, p)
		default:
			d.decodeCopy(src, p)
		}
	}
}

// decodePacked extracts each component from the format's single storage
// scalar using the derived mask and shift.
func (d *descriptor) decodePacked(src []byte, p *pixel) {
	raw := endian.Scalar(src, 0, int(d.bpp))
	for c := 0; c < int(d.comps); c++ {
		slot := d.slot[c]
		if slot < 0 {
			continue
		}
		v := (raw & d.mask[c]) >> d.shift[c]
		if !d.normalized {
			p.u[slot] = v
			continue
		}
		m := float64(d.max[c])
		if d.signed {
			p.f[slot] = f64.Clamp(float64(signExtend(v, d.bits[c]))/m, -1, 1)
		} else {
			p.f[slot] = float64(v) / m
		}
	}
}

// decodeNorm reads one storage unit per component and scales it to the
// [0, 1] (unsigned) or clamped [-1, 1] (signed) floating-point range.
func (d *descriptor) decodeNorm(src []byte, p *pixel) {
	sz := d.unit.size()
	for c := 0; c < int(d.comps); c++ {
		slot := d.slot[c]
		if slot < 0 {
			continue
		}
		off := c * sz
		m := float64(d.max[c])
		if !d.signed {
			p.f[slot] = float64(endian.Scalar(src, off, sz)) / m
			continue
		}
		var v int32
		switch d.unit {
		case s8:
			v = int32(endian.Int8(src, off))
		case s16:
			v = int32(endian.Int16(src, off))
		default:
			v = endian.Int32(src, off)
		}
		p.f[slot] = f64.Clamp(float64(v)/m, -1, 1)
	}
}

// decodeCopy reads each component verbatim: floats into the floating-point
// slot, integers sign- or zero-extended into the 32-bit integer slot.
func (d *descriptor) decodeCopy(src []byte, p *pixel) {
	sz := d.unit.size()
	for c := 0; c < int(d.comps); c++ {
		slot := d.slot[c]
		if slot < 0 {
			continue
		}
		off := c * sz
		switch d.unit {
		case f32:
			v := endian.Float32(src, off)
			if d.floats {
				p.f[slot] = float64(v)
			} else {
				// S32_FLOAT carries integer data in a float unit.
				p.u[slot] = uint32(v)
			}
		case s8:
			p.u[slot] = uint32(endian.Int8(src, off))
		case s16:
			p.u[slot] = uint32(endian.Int16(src, off))
		case s32:
			p.u[slot] = uint32(endian.Int32(src, off))
		default:
			p.u[slot] = endian.Scalar(src, off, sz)
		}
	}
}

func (d *descriptor) decodeD24S8(src []byte, p *pixel) {
	v := endian.Uint32(src, 0)
	p.f[0] = float64((v&d.mask[0])>>d.shift[0]) / float64(d.max[0])
	p.u[1] = (v & d.mask[1]) >> d.shift[1]
}

func (d *descriptor) decodeD32FS8(src []byte, p *pixel) {
	p.f[0] = float64(endian.Float32(src, 0))
	p.u[1] = endian.Uint32(src, 4) & d.mask[1]
}
