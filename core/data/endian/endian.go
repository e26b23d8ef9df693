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

// Package endian provides offset-based typed reads and writes of plain data
// values held in byte slices.
//
// All multi-byte values use little-endian layout, the native byte order of
// every target the capture and replay tooling runs on. Accesses are bounds
// checked by the runtime; no pointer reinterpretation is performed.
package endian

import (
	"encoding/binary"
	"math"
)

// Uint8 returns the byte at off.
func Uint8(b []byte, off int) uint8 { return b[off] }

// PutUint8 stores v at off.
func PutUint8(b []byte, off int, v uint8) { b[off] = v }

// Uint16 returns the 16-bit value at off.
func Uint16(b []byte, off int) uint16 { return binary.LittleEndian.Uint16(b[off:]) }

// PutUint16 stores v at off.
func PutUint16(b []byte, off int, v uint16) { binary.LittleEndian.PutUint16(b[off:], v) }

// Uint32 returns the 32-bit value at off.
func Uint32(b []byte, off int) uint32 { return binary.LittleEndian.Uint32(b[off:]) }

// PutUint32 stores v at off.
func PutUint32(b []byte, off int, v uint32) { binary.LittleEndian.PutUint32(b[off:], v) }

// Int8 returns the byte at off as a signed value.
func Int8(b []byte, off int) int8 { return int8(b[off]) }

// Int16 returns the 16-bit value at off as a signed value.
func Int16(b []byte, off int) int16 { return int16(Uint16(b, off)) }

// Int32 returns the 32-bit value at off as a signed value.
func Int32(b []byte, off int) int32 { return int32(Uint32(b, off)) }

// Float32 returns the 32-bit floating-point value at off.
func Float32(b []byte, off int) float32 {
	return math.Float32frombits(Uint32(b, off))
}

// PutFloat32 stores v at off.
func PutFloat32(b []byte, off int, v float32) {
	PutUint32(b, off, math.Float32bits(v))
}

// Scalar returns the size-byte storage scalar at off, zero-extended to 32
// bits. size must be 1, 2 or 4.
func Scalar(b []byte, off, size int) uint32 {
	switch size {
	case 1:
		return uint32(Uint8(b, off))
	case 2:
		return uint32(Uint16(b, off))
	default:
		return Uint32(b, off)
	}
}

// PutScalar stores the low size bytes of v at off. size must be 1, 2 or 4.
func PutScalar(b []byte, off, size int, v uint32) {
	switch size {
	case 1:
		PutUint8(b, off, uint8(v))
	case 2:
		PutUint16(b, off, uint16(v))
	default:
		PutUint32(b, off, v)
	}
}
