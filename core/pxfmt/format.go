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

import "fmt"

// SizedFormat identifies one supported pixel storage format. The values form
// the contract with the surrounding capture/replay tooling and must not be
// reordered.
type SizedFormat int

const (
	// Invalid is the sentinel for an unsupported or unidentified format.
	Invalid SizedFormat = iota

	// Red
	R8Unorm
	R8Snorm
	R16Unorm
	R16Snorm
	R32Unorm
	R32Snorm
	R32Float

	// Green
	G8Unorm
	G8Snorm
	G16Unorm
	G16Snorm
	G32Unorm
	G32Snorm
	G32Float

	// Blue
	B8Unorm
	B8Snorm
	B16Unorm
	B16Snorm
	B32Unorm
	B32Snorm
	B32Float

	// Alpha
	A8Unorm
	A8Snorm
	A16Unorm
	A16Snorm
	A32Unorm
	A32Snorm
	A32Float

	// Red+green
	RG8Unorm
	RG8Snorm
	RG16Unorm
	RG16Snorm
	RG32Unorm
	RG32Snorm
	RG32Float

	// RGB
	RGB8Unorm
	RGB8Snorm
	RGB16Unorm
	RGB16Snorm
	RGB32Unorm
	RGB32Snorm
	RGB32Float
	RGB332Unorm
	RGB233Unorm
	RGB565Unorm
	RGB565RevUnorm

	// RGBA
	RGBA8Unorm
	RGBA8Snorm
	RGBA16Unorm
	RGBA16Snorm
	RGBA32Unorm
	RGBA32Snorm
	RGBA32Float
	RGBA4Unorm
	RGBA4RevUnorm
	RGB5A1Unorm
	A1RGB5Unorm
	RGBA8RevUnorm
	RGB10A2Unorm
	A2RGB10Unorm

	// BGRA
	BGRA8Unorm
	BGRA8Snorm
	BGRA16Unorm
	BGRA16Snorm
	BGRA32Unorm
	BGRA32Snorm
	BGRA32Float
	BGRA4Unorm
	BGRA4RevUnorm
	BGR5A1Unorm
	A1BGR5Unorm
	BGRA8RevUnorm
	BGR10A2Unorm
	A2BGR10Unorm

	// Red, integer
	R8Uint
	R8Sint
	R16Uint
	R16Sint
	R32Uint
	R32Sint

	// Green, integer
	G8Uint
	G8Sint
	G16Uint
	G16Sint
	G32Uint
	G32Sint

	// Blue, integer
	B8Uint
	B8Sint
	B16Uint
	B16Sint
	B32Uint
	B32Sint

	// Alpha, integer
	A8Uint
	A8Sint
	A16Uint
	A16Sint
	A32Uint
	A32Sint

	// Red+green, integer
	RG8Uint
	RG8Sint
	RG16Uint
	RG16Sint
	RG32Uint
	RG32Sint

	// RGB, integer
	RGB8Uint
	RGB8Sint
	RGB16Uint
	RGB16Sint
	RGB32Uint
	RGB32Sint
	RGB332Uint
	RGB233Uint
	RGB565Uint
	RGB565RevUint

	// RGBA, integer
	RGBA8Uint
	RGBA8Sint
	RGBA16Uint
	RGBA16Sint
	RGBA32Uint
	RGBA32Sint
	RGBA4Uint
	RGBA4RevUint
	RGB5A1Uint
	A1RGB5Uint
	RGBA8RevUint
	RGB10A2Uint
	A2RGB10Uint

	// BGRA, integer
	BGRA8Uint
	BGRA8Sint
	BGRA16Uint
	BGRA16Sint
	BGRA32Uint
	BGRA32Sint
	BGRA4Uint
	BGRA4RevUint
	BGR5A1Uint
	A1BGR5Uint
	BGRA8RevUint
	BGR10A2Uint
	A2BGR10Uint

	// Depth
	D8Unorm
	D8Snorm
	D16Unorm
	D16Snorm
	D32Unorm
	D32Snorm
	D32Float

	// Stencil
	S8Uint
	S8Sint
	S16Uint
	S16Sint
	S32Uint
	S32Sint
	S32Float

	// Combined depth+stencil. These two violate the generic component model
	// and are handled by dedicated decode/encode routines.
	D24UnormS8Uint
	D32FloatS8Uint

	sizedFormatCount
)

// unit is the storage scalar type used to address components (unpacked
// formats) or whole pixels (packed formats).
type unit uint8

const (
	u8 unit = iota
	s8
	u16
	s16
	u32
	s32
	f32
)

// size returns the width of the storage unit in bytes.
func (u unit) size() int {
	switch u {
	case u8, s8:
		return 1
	case u16, s16:
		return 2
	default:
		return 4
	}
}

type (
	// ix is the per-component canonical intermediate slot table.
	// Slots: 0=red/depth, 1=green/stencil, 2=blue, 3=alpha; -1 means the
	// component does not exist in the format.
	ix = [4]int8
	// bw is a per-component bit width or bit shift table.
	bw = [4]uint8
)

// fmtInfo holds the declared layout facts for one SizedFormat. The columns
// are: storage unit, component count, bytes per pixel, needs a floating-point
// intermediate, normalized, signed, packed, slot indices, bit widths, shifts.
type fmtInfo struct {
	unit       unit
	comps      uint8
	bpp        uint8
	floats     bool
	normalized bool
	signed     bool
	packed     bool
	slot       ix
	bits       bw
	shift      bw
}

var fmtInfos = [sizedFormatCount]fmtInfo{
	// Red
	R8Unorm:  {u8, 1, 1, true, true, false, false, ix{0, -1, -1, -1}, bw{8, 0, 0, 0}, bw{0, 0, 0, 0}},
	R8Snorm:  {s8, 1, 1, true, true, true, false, ix{0, -1, -1, -1}, bw{8, 0, 0, 0}, bw{0, 0, 0, 0}},
	R16Unorm: {u16, 1, 2, true, true, false, false, ix{0, -1, -1, -1}, bw{16, 0, 0, 0}, bw{0, 0, 0, 0}},
	R16Snorm: {s16, 1, 2, true, true, true, false, ix{0, -1, -1, -1}, bw{16, 0, 0, 0}, bw{0, 0, 0, 0}},
	R32Unorm: {u32, 1, 4, true, true, false, false, ix{0, -1, -1, -1}, bw{32, 0, 0, 0}, bw{0, 0, 0, 0}},
	R32Snorm: {s32, 1, 4, true, true, true, false, ix{0, -1, -1, -1}, bw{32, 0, 0, 0}, bw{0, 0, 0, 0}},
	R32Float: {f32, 1, 4, true, false, false, false, ix{0, -1, -1, -1}, bw{0, 0, 0, 0}, bw{0, 0, 0, 0}},

	// Green
	G8Unorm:  {u8, 1, 1, true, true, false, false, ix{1, -1, -1, -1}, bw{8, 0, 0, 0}, bw{0, 0, 0, 0}},
	G8Snorm:  {s8, 1, 1, true, true, true, false, ix{1, -1, -1, -1}, bw{8, 0, 0, 0}, bw{0, 0, 0, 0}},
	G16Unorm: {u16, 1, 2, true, true, false, false, ix{1, -1, -1, -1}, bw{16, 0, 0, 0}, bw{0, 0, 0, 0}},
	G16Snorm: {s16, 1, 2, true, true, true, false, ix{1, -1, -1, -1}, bw{16, 0, 0, 0}, bw{0, 0, 0, 0}},
	G32Unorm: {u32, 1, 4, true, true, false, false, ix{1, -1, -1, -1}, bw{32, 0, 0, 0}, bw{0, 0, 0, 0}},
	G32Snorm: {s32, 1, 4, true, true, true, false, ix{1, -1, -1, -1}, bw{32, 0, 0, 0}, bw{0, 0, 0, 0}},
	G32Float: {f32, 1, 4, true, false, false, false, ix{1, -1, -1, -1}, bw{0, 0, 0, 0}, bw{0, 0, 0, 0}},

	// Blue
	B8Unorm:  {u8, 1, 1, true, true, false, false, ix{2, -1, -1, -1}, bw{8, 0, 0, 0}, bw{0, 0, 0, 0}},
	B8Snorm:  {s8, 1, 1, true, true, true, false, ix{2, -1, -1, -1}, bw{8, 0, 0, 0}, bw{0, 0, 0, 0}},
	B16Unorm: {u16, 1, 2, true, true, false, false, ix{2, -1, -1, -1}, bw{16, 0, 0, 0}, bw{0, 0, 0, 0}},
	B16Snorm: {s16, 1, 2, true, true, true, false, ix{2, -1, -1, -1}, bw{16, 0, 0, 0}, bw{0, 0, 0, 0}},
	B32Unorm: {u32, 1, 4, true, true, false, false, ix{2, -1, -1, -1}, bw{32, 0, 0, 0}, bw{0, 0, 0, 0}},
	B32Snorm: {s32, 1, 4, true, true, true, false, ix{2, -1, -1, -1}, bw{32, 0, 0, 0}, bw{0, 0, 0, 0}},
	B32Float: {f32, 1, 4, true, false, false, false, ix{2, -1, -1, -1}, bw{0, 0, 0, 0}, bw{0, 0, 0, 0}},

	// Alpha
	A8Unorm:  {u8, 1, 1, true, true, false, false, ix{3, -1, -1, -1}, bw{8, 0, 0, 0}, bw{0, 0, 0, 0}},
	A8Snorm:  {s8, 1, 1, true, true, true, false, ix{3, -1, -1, -1}, bw{8, 0, 0, 0}, bw{0, 0, 0, 0}},
	A16Unorm: {u16, 1, 2, true, true, false, false, ix{3, -1, -1, -1}, bw{16, 0, 0, 0}, bw{0, 0, 0, 0}},
	A16Snorm: {s16, 1, 2, true, true, true, false, ix{3, -1, -1, -1}, bw{16, 0, 0, 0}, bw{0, 0, 0, 0}},
	A32Unorm: {u32, 1, 4, true, true, false, false, ix{3, -1, -1, -1}, bw{32, 0, 0, 0}, bw{0, 0, 0, 0}},
	A32Snorm: {s32, 1, 4, true, true, true, false, ix{3, -1, -1, -1}, bw{32, 0, 0, 0}, bw{0, 0, 0, 0}},
	A32Float: {f32, 1, 4, true, false, false, false, ix{3, -1, -1, -1}, bw{0, 0, 0, 0}, bw{0, 0, 0, 0}},

	// Red+green
	RG8Unorm:  {u8, 2, 2, true, true, false, false, ix{0, 1, -1, -1}, bw{8, 8, 0, 0}, bw{0, 0, 0, 0}},
	RG8Snorm:  {s8, 2, 2, true, true, true, false, ix{0, 1, -1, -1}, bw{8, 8, 0, 0}, bw{0, 0, 0, 0}},
	RG16Unorm: {u16, 2, 4, true, true, false, false, ix{0, 1, -1, -1}, bw{16, 16, 0, 0}, bw{0, 0, 0, 0}},
	RG16Snorm: {s16, 2, 4, true, true, true, false, ix{0, 1, -1, -1}, bw{16, 16, 0, 0}, bw{0, 0, 0, 0}},
	RG32Unorm: {u32, 2, 8, true, true, false, false, ix{0, 1, -1, -1}, bw{32, 32, 0, 0}, bw{0, 0, 0, 0}},
	RG32Snorm: {s32, 2, 8, true, true, true, false, ix{0, 1, -1, -1}, bw{32, 32, 0, 0}, bw{0, 0, 0, 0}},
	RG32Float: {f32, 2, 8, true, false, false, false, ix{0, 1, -1, -1}, bw{0, 0, 0, 0}, bw{0, 0, 0, 0}},

	// RGB
	RGB8Unorm:      {u8, 3, 3, true, true, false, false, ix{0, 1, 2, -1}, bw{8, 8, 8, 0}, bw{0, 0, 0, 0}},
	RGB8Snorm:      {s8, 3, 3, true, true, true, false, ix{0, 1, 2, -1}, bw{8, 8, 8, 0}, bw{0, 0, 0, 0}},
	RGB16Unorm:     {u16, 3, 6, true, true, false, false, ix{0, 1, 2, -1}, bw{16, 16, 16, 0}, bw{0, 0, 0, 0}},
	RGB16Snorm:     {s16, 3, 6, true, true, true, false, ix{0, 1, 2, -1}, bw{16, 16, 16, 0}, bw{0, 0, 0, 0}},
	RGB32Unorm:     {u32, 3, 12, true, true, false, false, ix{0, 1, 2, -1}, bw{32, 32, 32, 0}, bw{0, 0, 0, 0}},
	RGB32Snorm:     {s32, 3, 12, true, true, true, false, ix{0, 1, 2, -1}, bw{32, 32, 32, 0}, bw{0, 0, 0, 0}},
	RGB32Float:     {f32, 3, 12, true, false, false, false, ix{0, 1, 2, -1}, bw{0, 0, 0, 0}, bw{0, 0, 0, 0}},
	RGB332Unorm:    {u8, 3, 1, true, true, false, true, ix{0, 1, 2, -1}, bw{3, 3, 2, 0}, bw{5, 2, 0, 0}},
	RGB233Unorm:    {u8, 3, 1, true, true, false, true, ix{0, 1, 2, -1}, bw{3, 3, 2, 0}, bw{0, 3, 6, 0}},
	RGB565Unorm:    {u16, 3, 2, true, true, false, true, ix{0, 1, 2, -1}, bw{5, 6, 5, 0}, bw{11, 5, 0, 0}},
	RGB565RevUnorm: {u16, 3, 2, true, true, false, true, ix{0, 1, 2, -1}, bw{5, 6, 5, 0}, bw{0, 5, 11, 0}},

	// RGBA
	RGBA8Unorm:    {u32, 4, 4, true, true, false, true, ix{0, 1, 2, 3}, bw{8, 8, 8, 8}, bw{0, 8, 16, 24}},
	RGBA8Snorm:    {u32, 4, 4, true, true, true, true, ix{0, 1, 2, 3}, bw{8, 8, 8, 8}, bw{0, 8, 16, 24}},
	RGBA16Unorm:   {u16, 4, 8, true, true, false, false, ix{0, 1, 2, 3}, bw{16, 16, 16, 16}, bw{0, 0, 0, 0}},
	RGBA16Snorm:   {s16, 4, 8, true, true, true, false, ix{0, 1, 2, 3}, bw{16, 16, 16, 16}, bw{0, 0, 0, 0}},
	RGBA32Unorm:   {u32, 4, 16, true, true, false, false, ix{0, 1, 2, 3}, bw{32, 32, 32, 32}, bw{0, 0, 0, 0}},
	RGBA32Snorm:   {s32, 4, 16, true, true, true, false, ix{0, 1, 2, 3}, bw{32, 32, 32, 32}, bw{0, 0, 0, 0}},
	RGBA32Float:   {f32, 4, 16, true, false, false, false, ix{0, 1, 2, 3}, bw{0, 0, 0, 0}, bw{0, 0, 0, 0}},
	RGBA4Unorm:    {u16, 4, 2, true, true, false, true, ix{0, 1, 2, 3}, bw{4, 4, 4, 4}, bw{12, 8, 4, 0}},
	RGBA4RevUnorm: {u16, 4, 2, true, true, false, true, ix{0, 1, 2, 3}, bw{4, 4, 4, 4}, bw{0, 4, 8, 12}},
	RGB5A1Unorm:   {u16, 4, 2, true, true, false, true, ix{0, 1, 2, 3}, bw{5, 5, 5, 1}, bw{11, 6, 1, 0}},
	A1RGB5Unorm:   {u16, 4, 2, true, true, false, true, ix{0, 1, 2, 3}, bw{5, 5, 5, 1}, bw{0, 5, 10, 15}},
	RGBA8RevUnorm: {u32, 4, 4, true, true, false, true, ix{0, 1, 2, 3}, bw{8, 8, 8, 8}, bw{24, 16, 8, 0}},
	RGB10A2Unorm:  {u32, 4, 4, true, true, false, true, ix{0, 1, 2, 3}, bw{10, 10, 10, 2}, bw{22, 12, 2, 0}},
	A2RGB10Unorm:  {u32, 4, 4, true, true, false, true, ix{0, 1, 2, 3}, bw{10, 10, 10, 2}, bw{0, 10, 20, 30}},

	// BGRA
	BGRA8Unorm:    {u32, 4, 4, true, true, false, true, ix{0, 1, 2, 3}, bw{8, 8, 8, 8}, bw{16, 8, 0, 24}},
	BGRA8Snorm:    {u32, 4, 4, true, true, true, true, ix{0, 1, 2, 3}, bw{8, 8, 8, 8}, bw{16, 8, 0, 24}},
	BGRA16Unorm:   {u16, 4, 8, true, true, false, false, ix{2, 1, 0, 3}, bw{16, 16, 16, 16}, bw{0, 0, 0, 0}},
	BGRA16Snorm:   {s16, 4, 8, true, true, true, false, ix{2, 1, 0, 3}, bw{16, 16, 16, 16}, bw{0, 0, 0, 0}},
	BGRA32Unorm:   {u32, 4, 16, true, true, false, false, ix{2, 1, 0, 3}, bw{32, 32, 32, 32}, bw{0, 0, 0, 0}},
	BGRA32Snorm:   {s32, 4, 16, true, true, true, false, ix{2, 1, 0, 3}, bw{32, 32, 32, 32}, bw{0, 0, 0, 0}},
	BGRA32Float:   {f32, 4, 16, true, false, false, false, ix{2, 1, 0, 3}, bw{0, 0, 0, 0}, bw{0, 0, 0, 0}},
	BGRA4Unorm:    {u16, 4, 2, true, true, false, true, ix{0, 1, 2, 3}, bw{4, 4, 4, 4}, bw{4, 8, 12, 0}},
	BGRA4RevUnorm: {u16, 4, 2, true, true, false, true, ix{0, 1, 2, 3}, bw{4, 4, 4, 4}, bw{0, 12, 8, 4}},
	BGR5A1Unorm:   {u16, 4, 2, true, true, false, true, ix{0, 1, 2, 3}, bw{5, 5, 5, 1}, bw{1, 6, 11, 0}},
	A1BGR5Unorm:   {u16, 4, 2, true, true, false, true, ix{0, 1, 2, 3}, bw{5, 5, 5, 1}, bw{10, 5, 0, 15}},
	BGRA8RevUnorm: {u32, 4, 4, true, true, false, true, ix{0, 1, 2, 3}, bw{8, 8, 8, 8}, bw{24, 0, 8, 16}},
	BGR10A2Unorm:  {u32, 4, 4, true, true, false, true, ix{0, 1, 2, 3}, bw{10, 10, 10, 2}, bw{2, 12, 22, 0}},
	A2BGR10Unorm:  {u32, 4, 4, true, true, false, true, ix{0, 1, 2, 3}, bw{10, 10, 10, 2}, bw{20, 10, 0, 30}},

	// Red, integer
	R8Uint:  {u8, 1, 1, false, false, false, false, ix{0, -1, -1, -1}, bw{8, 0, 0, 0}, bw{0, 0, 0, 0}},
	R8Sint:  {s8, 1, 1, false, false, true, false, ix{0, -1, -1, -1}, bw{8, 0, 0, 0}, bw{0, 0, 0, 0}},
	R16Uint: {u16, 1, 2, false, false, false, false, ix{0, -1, -1, -1}, bw{16, 0, 0, 0}, bw{0, 0, 0, 0}},
	R16Sint: {s16, 1, 2, false, false, true, false, ix{0, -1, -1, -1}, bw{16, 0, 0, 0}, bw{0, 0, 0, 0}},
	R32Uint: {u32, 1, 4, false, false, false, false, ix{0, -1, -1, -1}, bw{32, 0, 0, 0}, bw{0, 0, 0, 0}},
	R32Sint: {s32, 1, 4, false, false, true, false, ix{0, -1, -1, -1}, bw{32, 0, 0, 0}, bw{0, 0, 0, 0}},

	// Green, integer
	G8Uint:  {u8, 1, 1, false, false, false, false, ix{1, -1, -1, -1}, bw{8, 0, 0, 0}, bw{0, 0, 0, 0}},
	G8Sint:  {s8, 1, 1, false, false, true, false, ix{1, -1, -1, -1}, bw{8, 0, 0, 0}, bw{0, 0, 0, 0}},
	G16Uint: {u16, 1, 2, false, false, false, false, ix{1, -1, -1, -1}, bw{16, 0, 0, 0}, bw{0, 0, 0, 0}},
	G16Sint: {s16, 1, 2, false, false, true, false, ix{1, -1, -1, -1}, bw{16, 0, 0, 0}, bw{0, 0, 0, 0}},
	G32Uint: {u32, 1, 4, false, false, false, false, ix{1, -1, -1, -1}, bw{32, 0, 0, 0}, bw{0, 0, 0, 0}},
	G32Sint: {s32, 1, 4, false, false, true, false, ix{1, -1, -1, -1}, bw{32, 0, 0, 0}, bw{0, 0, 0, 0}},

	// Blue, integer
	B8Uint:  {u8, 1, 1, false, false, false, false, ix{2, -1, -1, -1}, bw{8, 0, 0, 0}, bw{0, 0, 0, 0}},
	B8Sint:  {s8, 1, 1, false, false, true, false, ix{2, -1, -1, -1}, bw{8, 0, 0, 0}, bw{0, 0, 0, 0}},
	B16Uint: {u16, 1, 2, false, false, false, false, ix{2, -1, -1, -1}, bw{16, 0, 0, 0}, bw{0, 0, 0, 0}},
	B16Sint: {s16, 1, 2, false, false, true, false, ix{2, -1, -1, -1}, bw{16, 0, 0, 0}, bw{0, 0, 0, 0}},
	B32Uint: {u32, 1, 4, false, false, false, false, ix{2, -1, -1, -1}, bw{32, 0, 0, 0}, bw{0, 0, 0, 0}},
	B32Sint: {s32, 1, 4, false, false, true, false, ix{2, -1, -1, -1}, bw{32, 0, 0, 0}, bw{0, 0, 0, 0}},

	// Alpha, integer
	A8Uint:  {u8, 1, 1, false, false, false, false, ix{3, -1, -1, -1}, bw{8, 0, 0, 0}, bw{0, 0, 0, 0}},
	A8Sint:  {s8, 1, 1, false, false, true, false, ix{3, -1, -1, -1}, bw{8, 0, 0, 0}, bw{0, 0, 0, 0}},
	A16Uint: {u16, 1, 2, false, false, false, false, ix{3, -1, -1, -1}, bw{16, 0, 0, 0}, bw{0, 0, 0, 0}},
	A16Sint: {s16, 1, 2, false, false, true, false, ix{3, -1, -1, -1}, bw{16, 0, 0, 0}, bw{0, 0, 0, 0}},
	A32Uint: {u32, 1, 4, false, false, false, false, ix{3, -1, -1, -1}, bw{32, 0, 0, 0}, bw{0, 0, 0, 0}},
	A32Sint: {s32, 1, 4, false, false, true, false, ix{3, -1, -1, -1}, bw{32, 0, 0, 0}, bw{0, 0, 0, 0}},

	// Red+green, integer
	RG8Uint:  {u8, 2, 2, false, false, false, false, ix{0, 1, -1, -1}, bw{8, 8, 0, 0}, bw{0, 0, 0, 0}},
	RG8Sint:  {s8, 2, 2, false, false, true, false, ix{0, 1, -1, -1}, bw{8, 8, 0, 0}, bw{0, 0, 0, 0}},
	RG16Uint: {u16, 2, 4, false, false, false, false, ix{0, 1, -1, -1}, bw{16, 16, 0, 0}, bw{0, 0, 0, 0}},
	RG16Sint: {s16, 2, 4, false, false, true, false, ix{0, 1, -1, -1}, bw{16, 16, 0, 0}, bw{0, 0, 0, 0}},
	RG32Uint: {u32, 2, 8, false, false, false, false, ix{0, 1, -1, -1}, bw{32, 32, 0, 0}, bw{0, 0, 0, 0}},
	RG32Sint: {s32, 2, 8, false, false, true, false, ix{0, 1, -1, -1}, bw{32, 32, 0, 0}, bw{0, 0, 0, 0}},

	// RGB, integer
	RGB8Uint:      {u8, 3, 3, false, false, false, false, ix{0, 1, 2, -1}, bw{8, 8, 8, 0}, bw{0, 0, 0, 0}},
	RGB8Sint:      {s8, 3, 3, false, false, true, false, ix{0, 1, 2, -1}, bw{8, 8, 8, 0}, bw{0, 0, 0, 0}},
	RGB16Uint:     {u16, 3, 6, false, false, false, false, ix{0, 1, 2, -1}, bw{16, 16, 16, 0}, bw{0, 0, 0, 0}},
	RGB16Sint:     {s16, 3, 6, false, false, true, false, ix{0, 1, 2, -1}, bw{16, 16, 16, 0}, bw{0, 0, 0, 0}},
	RGB32Uint:     {u32, 3, 12, false, false, false, false, ix{0, 1, 2, -1}, bw{32, 32, 32, 0}, bw{0, 0, 0, 0}},
	RGB32Sint:     {s32, 3, 12, false, false, true, false, ix{0, 1, 2, -1}, bw{32, 32, 32, 0}, bw{0, 0, 0, 0}},
	RGB332Uint:    {u8, 3, 1, false, false, false, true, ix{0, 1, 2, -1}, bw{3, 3, 2, 0}, bw{5, 2, 0, 0}},
	RGB233Uint:    {u8, 3, 1, false, false, false, true, ix{0, 1, 2, -1}, bw{3, 3, 2, 0}, bw{0, 3, 6, 0}},
	RGB565Uint:    {u16, 3, 2, false, false, false, true, ix{0, 1, 2, -1}, bw{5, 6, 5, 0}, bw{11, 5, 0, 0}},
	RGB565RevUint: {u16, 3, 2, false, false, false, true, ix{0, 1, 2, -1}, bw{5, 6, 5, 0}, bw{0, 5, 11, 0}},

	// RGBA, integer
	RGBA8Uint:    {u32, 4, 4, false, false, false, true, ix{0, 1, 2, 3}, bw{8, 8, 8, 8}, bw{0, 8, 16, 24}},
	RGBA8Sint:    {u32, 4, 4, false, false, true, true, ix{0, 1, 2, 3}, bw{8, 8, 8, 8}, bw{0, 8, 16, 24}},
	RGBA16Uint:   {u16, 4, 8, false, false, false, false, ix{0, 1, 2, 3}, bw{16, 16, 16, 16}, bw{0, 0, 0, 0}},
	RGBA16Sint:   {s16, 4, 8, false, false, true, false, ix{0, 1, 2, 3}, bw{16, 16, 16, 16}, bw{0, 0, 0, 0}},
	RGBA32Uint:   {u32, 4, 16, false, false, false, false, ix{0, 1, 2, 3}, bw{32, 32, 32, 32}, bw{0, 0, 0, 0}},
	RGBA32Sint:   {s32, 4, 16, false, false, true, false, ix{0, 1, 2, 3}, bw{32, 32, 32, 32}, bw{0, 0, 0, 0}},
	RGBA4Uint:    {u16, 4, 2, false, false, false, true, ix{0, 1, 2, 3}, bw{4, 4, 4, 4}, bw{12, 8, 4, 0}},
	RGBA4RevUint: {u16, 4, 2, false, false, false, true, ix{0, 1, 2, 3}, bw{4, 4, 4, 4}, bw{0, 4, 8, 12}},
	RGB5A1Uint:   {u16, 4, 2, false, false, false, true, ix{0, 1, 2, 3}, bw{5, 5, 5, 1}, bw{11, 6, 1, 0}},
	A1RGB5Uint:   {u16, 4, 2, false, false, false, true, ix{0, 1, 2, 3}, bw{5, 5, 5, 1}, bw{0, 5, 10, 15}},
	RGBA8RevUint: {u32, 4, 4, false, false, false, true, ix{0, 1, 2, 3}, bw{8, 8, 8, 8}, bw{24, 16, 8, 0}},
	RGB10A2Uint:  {u32, 4, 4, false, false, false, true, ix{0, 1, 2, 3}, bw{10, 10, 10, 2}, bw{22, 12, 2, 0}},
	A2RGB10Uint:  {u32, 4, 4, false, false, false, true, ix{0, 1, 2, 3}, bw{10, 10, 10, 2}, bw{0, 10, 20, 30}},

	// BGRA, integer
	BGRA8Uint:    {u32, 4, 4, false, false, false, true, ix{0, 1, 2, 3}, bw{8, 8, 8, 8}, bw{16, 8, 0, 24}},
	BGRA8Sint:    {u32, 4, 4, false, false, true, true, ix{0, 1, 2, 3}, bw{8, 8, 8, 8}, bw{16, 8, 0, 24}},
	BGRA16Uint:   {u16, 4, 8, false, false, false, false, ix{2, 1, 0, 3}, bw{16, 16, 16, 16}, bw{0, 0, 0, 0}},
	BGRA16Sint:   {s16, 4, 8, false, false, true, false, ix{2, 1, 0, 3}, bw{16, 16, 16, 16}, bw{0, 0, 0, 0}},
	BGRA32Uint:   {u32, 4, 16, false, false, false, false, ix{2, 1, 0, 3}, bw{32, 32, 32, 32}, bw{0, 0, 0, 0}},
	BGRA32Sint:   {s32, 4, 16, false, false, true, false, ix{2, 1, 0, 3}, bw{32, 32, 32, 32}, bw{0, 0, 0, 0}},
	BGRA4Uint:    {u16, 4, 2, false, false, false, true, ix{0, 1, 2, 3}, bw{4, 4, 4, 4}, bw{4, 8, 12, 0}},
	BGRA4RevUint: {u16, 4, 2, false, false, false, true, ix{0, 1, 2, 3}, bw{4, 4, 4, 4}, bw{0, 12, 8, 4}},
	BGR5A1Uint:   {u16, 4, 2, false, false, false, true, ix{0, 1, 2, 3}, bw{5, 5, 5, 1}, bw{1, 6, 11, 0}},
	A1BGR5Uint:   {u16, 4, 2, false, false, false, true, ix{0, 1, 2, 3}, bw{5, 5, 5, 1}, bw{10, 5, 0, 15}},
	BGRA8RevUint: {u32, 4, 4, false, false, false, true, ix{0, 1, 2, 3}, bw{8, 8, 8, 8}, bw{24, 0, 8, 16}},
	BGR10A2Uint:  {u32, 4, 4, false, false, false, true, ix{0, 1, 2, 3}, bw{10, 10, 10, 2}, bw{2, 12, 22, 0}},
	A2BGR10Uint:  {u32, 4, 4, false, false, false, true, ix{0, 1, 2, 3}, bw{10, 10, 10, 2}, bw{20, 10, 0, 30}},

	// Depth
	D8Unorm:  {u8, 1, 1, true, true, false, false, ix{0, -1, -1, -1}, bw{8, 0, 0, 0}, bw{0, 0, 0, 0}},
	D8Snorm:  {s8, 1, 1, true, true, true, false, ix{0, -1, -1, -1}, bw{8, 0, 0, 0}, bw{0, 0, 0, 0}},
	D16Unorm: {u16, 1, 2, true, true, false, false, ix{0, -1, -1, -1}, bw{16, 0, 0, 0}, bw{0, 0, 0, 0}},
	D16Snorm: {s16, 1, 2, true, true, true, false, ix{0, -1, -1, -1}, bw{16, 0, 0, 0}, bw{0, 0, 0, 0}},
	D32Unorm: {u32, 1, 4, true, true, false, false, ix{0, -1, -1, -1}, bw{32, 0, 0, 0}, bw{0, 0, 0, 0}},
	D32Snorm: {s32, 1, 4, true, true, true, false, ix{0, -1, -1, -1}, bw{32, 0, 0, 0}, bw{0, 0, 0, 0}},
	D32Float: {f32, 1, 4, true, false, false, false, ix{0, -1, -1, -1}, bw{0, 0, 0, 0}, bw{0, 0, 0, 0}},

	// Stencil
	S8Uint:   {u8, 1, 1, false, false, false, false, ix{0, -1, -1, -1}, bw{0, 0, 0, 0}, bw{0, 0, 0, 0}},
	S8Sint:   {s8, 1, 1, false, false, true, false, ix{0, -1, -1, -1}, bw{0, 0, 0, 0}, bw{0, 0, 0, 0}},
	S16Uint:  {u16, 1, 2, false, false, false, false, ix{0, -1, -1, -1}, bw{0, 0, 0, 0}, bw{0, 0, 0, 0}},
	S16Sint:  {s16, 1, 2, false, false, true, false, ix{0, -1, -1, -1}, bw{0, 0, 0, 0}, bw{0, 0, 0, 0}},
	S32Uint:  {u32, 1, 4, false, false, false, false, ix{0, -1, -1, -1}, bw{0, 0, 0, 0}, bw{0, 0, 0, 0}},
	S32Sint:  {s32, 1, 4, false, false, true, false, ix{0, -1, -1, -1}, bw{0, 0, 0, 0}, bw{0, 0, 0, 0}},
	S32Float: {f32, 1, 4, false, false, false, false, ix{0, -1, -1, -1}, bw{0, 0, 0, 0}, bw{0, 0, 0, 0}},

	// Combined depth+stencil. Depth occupies the upper bits of the packed
	// scalar, stencil the low 8 bits.
	D24UnormS8Uint: {u32, 2, 4, true, false, false, false, ix{0, 1, -1, -1}, bw{24, 8, 0, 0}, bw{8, 0, 0, 0}},
	D32FloatS8Uint: {f32, 2, 8, true, false, false, false, ix{0, 1, -1, -1}, bw{0, 8, 0, 0}, bw{0, 0, 0, 0}},
}

// descriptor is the registry entry for one SizedFormat: the declared layout
// facts plus the values derived from them at startup.
type descriptor struct {
	fmt SizedFormat
	fmtInfo
	max  [4]uint32
	mask [4]uint32
}

var descriptors [sizedFormatCount]descriptor

// maxValue returns the maximum representable value of a component with the
// given signedness and bit width.
func maxValue(signed bool, bits uint8) uint32 {
	if bits == 0 {
		return 0
	}
	if signed {
		bits--
	}
	return uint32(uint64(1)<<bits - 1)
}

func init() {
	for f := SizedFormat(1); f < sizedFormatCount; f++ {
		info := fmtInfos[f]
		d := &descriptors[f]
		d.fmt = f
		d.fmtInfo = info
		for c := 0; c < int(info.comps); c++ {
			d.max[c] = maxValue(info.signed, info.bits[c])
			d.mask[c] = d.max[c] << info.shift[c]
		}
		if !info.packed {
			continue
		}
		// A packed format's component masks must be pairwise disjoint and
		// must fit the storage scalar.
		width := uint64(info.bpp) * 8
		used := uint32(0)
		for c := 0; c < int(info.comps); c++ {
			if d.slot[c] < 0 {
				continue
			}
			if used&d.mask[c] != 0 {
				panic(fmt.Errorf("format %v: overlapping component masks", f))
			}
			if uint64(d.mask[c]) >= uint64(1)<<width {
				panic(fmt.Errorf("format %v: component mask exceeds %d-bit storage", f, width))
			}
			used |= d.mask[c]
		}
	}
}

// lookup returns the descriptor for f, or nil if f has none.
func lookup(f SizedFormat) *descriptor {
	if f <= Invalid || f >= sizedFormatCount {
		return nil
	}
	return &descriptors[f]
}

// Valid reports whether f names a supported format.
func (f SizedFormat) Valid() bool { return lookup(f) != nil }

// BytesPerPixel returns the storage size of one pixel in bytes, or 0 if f is
// not a supported format.
func (f SizedFormat) BytesPerPixel() int {
	d := lookup(f)
	if d == nil {
		return 0
	}
	return int(d.bpp)
}

// ComponentCount returns the number of components stored per pixel.
func (f SizedFormat) ComponentCount() int {
	d := lookup(f)
	if d == nil {
		return 0
	}
	return int(d.comps)
}

// IsPacked reports whether all components share a single storage scalar.
func (f SizedFormat) IsPacked() bool {
	d := lookup(f)
	return d != nil && d.packed
}

// IsNormalized reports whether integer values represent fractions of the
// component's maximum value.
func (f SizedFormat) IsNormalized() bool {
	d := lookup(f)
	return d != nil && d.normalized
}

// IsSigned reports whether the components are signed.
func (f SizedFormat) IsSigned() bool {
	d := lookup(f)
	return d != nil && d.signed
}

// NeedsFloat reports whether conversion goes through the floating-point
// intermediate rather than the 32-bit integer one.
func (f SizedFormat) NeedsFloat() bool {
	d := lookup(f)
	return d != nil && d.floats
}

// Bits returns the bit width of component c (0-3).
func (f SizedFormat) Bits(c int) uint8 {
	d := lookup(f)
	if d == nil {
		return 0
	}
	return d.bits[c]
}

// Shift returns the bit shift of component c within the packed storage
// scalar, or 0 for unpacked formats.
func (f SizedFormat) Shift(c int) uint8 {
	d := lookup(f)
	if d == nil {
		return 0
	}
	return d.shift[c]
}

// Max returns the maximum representable value of component c.
func (f SizedFormat) Max(c int) uint32 {
	d := lookup(f)
	if d == nil {
		return 0
	}
	return d.max[c]
}

// RowStride returns the number of bytes between the starts of two adjacent
// rows of the given width: the pixel data size rounded up to the next
// multiple of 4.
func (f SizedFormat) RowStride(width int) int {
	return (f.BytesPerPixel()*width + 3) &^ 3
}

// Size returns the number of bytes needed to hold a width×height block,
// including the row padding.
func (f SizedFormat) Size(width, height int) int {
	return f.RowStride(width) * height
}

// Check returns an error if data is too small to hold a width×height block.
// The final row is not required to carry the row padding.
func (f SizedFormat) Check(data []byte, width, height int) error {
	d := lookup(f)
	if d == nil {
		return ErrUnsupportedEncoding
	}
	if width < 0 || height < 0 {
		return ErrShortBuffer
	}
	need := 0
	if width > 0 && height > 0 {
		need = f.RowStride(width)*(height-1) + int(d.bpp)*width
	}
	if len(data) < need {
		return ErrShortBuffer
	}
	return nil
}
