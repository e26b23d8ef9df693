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

import "github.com/CSRedRat/vogl/core/data/endian"

// encode writes the pixel p to the start of dst in the descriptor's format.
// Normalized components are quantized by truncation, so values that decoded
// from the same format re-encode to the identical bits.
func (d *descriptor) encode(dst []byte, p *pixel) {
	switch d.fmt {
	case D24UnormS8Uint:
		d.encodeD24S8(dst, p)
	case D32FloatS8Uint:
		d.encodeD32FS8(dst, p)
	default:
		switch {
		case d.packed:
			d.encodePacked(dst, p)
		case d.normalized:
			d.encodeNorm(dst, p)
		default:
			d.encodeCopy(dst, p)
		}
	}
}

// quantize scales a normalized value to an integer component of the given
// maximum, truncating toward zero.
func quantize(v, max float64) uint32 {
	return uint32(int64(v * max))
}

func (d *descriptor) encodePacked(dst []byte, p *pixel) {
	var raw uint32
	for c := 0; c < int(d.comps); c++ {
		slot := d.slot[c]
		if slot < 0 {
			continue
		}
		if d.normalized {
			raw |= (quantize(p.f[slot], float64(d.max[c])) << d.shift[c]) & d.mask[c]
		} else {
			raw |= (p.u[slot] << d.shift[c]) & d.mask[c]
		}
	}
	endian.PutScalar(dst, 0, int(d.bpp), raw)
}

func (d *descriptor) encodeNorm(dst []byte, p *pixel) {
	sz := d.unit.size()
	for c := 0; c < int(d.comps); c++ {
		slot := d.slot[c]
		if slot < 0 {
			continue
		}
		endian.PutScalar(dst, c*sz, sz, quantize(p.f[slot], float64(d.max[c])))
	}
}

func (d *descriptor) encodeCopy(dst []byte, p *pixel) {
	sz := d.unit.size()
	for c := 0; c < int(d.comps); c++ {
		slot := d.slot[c]
		if slot < 0 {
			continue
		}
		off := c * sz
		if d.unit != f32 {
			endian.PutScalar(dst, off, sz, p.u[slot])
			continue
		}
		if d.floats {
			endian.PutFloat32(dst, off, float32(p.f[slot]))
		} else {
			endian.PutFloat32(dst, off, float32(p.u[slot]))
		}
	}
}

func (d *descriptor) encodeD24S8(dst []byte, p *pixel) {
	v := (quantize(p.f[0], float64(d.max[0])) << d.shift[0]) & d.mask[0]
	v |= p.u[1] & d.mask[1]
	endian.PutUint32(dst, 0, v)
}

func (d *descriptor) encodeD32FS8(dst []byte, p *pixel) {
	endian.PutFloat32(dst, 0, float32(p.f[0]))
	endian.PutUint32(dst, 4, p.u[1]&d.mask[1])
}
