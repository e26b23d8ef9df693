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

// BaseFormat names the component layout half of a pixel transfer encoding,
// mirroring the GL format parameter.
type BaseFormat int

const (
	Red BaseFormat = iota
	Green
	Blue
	Alpha
	RG
	RGB
	BGR
	RGBA
	BGRA
	RedInteger
	GreenInteger
	BlueInteger
	AlphaInteger
	RGInteger
	RGBInteger
	BGRInteger
	RGBAInteger
	BGRAInteger
	DepthComponent
	StencilIndex
	DepthStencil
)

var baseFormatNames = map[BaseFormat]string{
	Red:            "RED",
	Green:          "GREEN",
	Blue:           "BLUE",
	Alpha:          "ALPHA",
	RG:             "RG",
	RGB:            "RGB",
	BGR:            "BGR",
	RGBA:           "RGBA",
	BGRA:           "BGRA",
	RedInteger:     "RED_INTEGER",
	GreenInteger:   "GREEN_INTEGER",
	BlueInteger:    "BLUE_INTEGER",
	AlphaInteger:   "ALPHA_INTEGER",
	RGInteger:      "RG_INTEGER",
	RGBInteger:     "RGB_INTEGER",
	BGRInteger:     "BGR_INTEGER",
	RGBAInteger:    "RGBA_INTEGER",
	BGRAInteger:    "BGRA_INTEGER",
	DepthComponent: "DEPTH_COMPONENT",
	StencilIndex:   "STENCIL_INDEX",
	DepthStencil:   "DEPTH_STENCIL",
}

func (b BaseFormat) String() string {
	if s, ok := baseFormatNames[b]; ok {
		return s
	}
	return fmt.Sprintf("BaseFormat(%d)", int(b))
}

// DataType names the per-component storage half of a pixel transfer
// encoding, mirroring the GL type parameter.
type DataType int

const (
	UnsignedByte DataType = iota
	Byte
	UnsignedShort
	Short
	UnsignedInt
	Int
	Float
	UnsignedByte332
	UnsignedByte233Rev
	UnsignedShort565
	UnsignedShort565Rev
	UnsignedShort4444
	UnsignedShort4444Rev
	UnsignedShort5551
	UnsignedShort1555Rev
	UnsignedInt8888
	UnsignedInt8888Rev
	UnsignedInt1010102
	UnsignedInt2101010Rev
	UnsignedInt248
	Float32UnsignedInt248Rev
)

var dataTypeNames = map[DataType]string{
	UnsignedByte:             "UNSIGNED_BYTE",
	Byte:                     "BYTE",
	UnsignedShort:            "UNSIGNED_SHORT",
	Short:                    "SHORT",
	UnsignedInt:              "UNSIGNED_INT",
	Int:                      "INT",
	Float:                    "FLOAT",
	UnsignedByte332:          "UNSIGNED_BYTE_3_3_2",
	UnsignedByte233Rev:       "UNSIGNED_BYTE_2_3_3_REV",
	UnsignedShort565:         "UNSIGNED_SHORT_5_6_5",
	UnsignedShort565Rev:      "UNSIGNED_SHORT_5_6_5_REV",
	UnsignedShort4444:        "UNSIGNED_SHORT_4_4_4_4",
	UnsignedShort4444Rev:     "UNSIGNED_SHORT_4_4_4_4_REV",
	UnsignedShort5551:        "UNSIGNED_SHORT_5_5_5_1",
	UnsignedShort1555Rev:     "UNSIGNED_SHORT_1_5_5_5_REV",
	UnsignedInt8888:          "UNSIGNED_INT_8_8_8_8",
	UnsignedInt8888Rev:       "UNSIGNED_INT_8_8_8_8_REV",
	UnsignedInt1010102:       "UNSIGNED_INT_10_10_10_2",
	UnsignedInt2101010Rev:    "UNSIGNED_INT_2_10_10_10_REV",
	UnsignedInt248:           "UNSIGNED_INT_24_8",
	Float32UnsignedInt248Rev: "FLOAT_32_UNSIGNED_INT_24_8_REV",
}

func (t DataType) String() string {
	if s, ok := dataTypeNames[t]; ok {
		return s
	}
	return fmt.Sprintf("DataType(%d)", int(t))
}

// ParseBaseFormat returns the base format with the given name, as produced
// by String.
func ParseBaseFormat(name string) (BaseFormat, error) {
	for b, s := range baseFormatNames {
		if s == name {
			return b, nil
		}
	}
	return 0, fmt.Errorf("unknown base format %q: %w", name, ErrUnsupportedCombination)
}

// ParseDataType returns the data type with the given name, as produced by
// String.
func ParseDataType(name string) (DataType, error) {
	for t, s := range dataTypeNames {
		if s == name {
			return t, nil
		}
	}
	return 0, fmt.Errorf("unknown data type %q: %w", name, ErrUnsupportedCombination)
}

// Identify maps a (base format, data type) pair to the SizedFormat that
// stores it. Combinations with no supported encoding return Invalid and
// ErrUnsupportedCombination.
func Identify(base BaseFormat, ty DataType) (SizedFormat, error) {
	f := identify(base, ty)
	if f == Invalid {
		return Invalid, fmt.Errorf("%v/%v: %w", base, ty, ErrUnsupportedCombination)
	}
	return f, nil
}

func identify(base BaseFormat, ty DataType) SizedFormat {
	switch base {
	case Red:
		return singleChannel(ty, R8Unorm, R8Snorm, R16Unorm, R16Snorm, R32Unorm, R32Snorm, R32Float)
	case Green:
		return singleChannel(ty, G8Unorm, G8Snorm, G16Unorm, G16Snorm, G32Unorm, G32Snorm, G32Float)
	case Blue:
		return singleChannel(ty, B8Unorm, B8Snorm, B16Unorm, B16Snorm, B32Unorm, B32Snorm, B32Float)
	case Alpha:
		return singleChannel(ty, A8Unorm, A8Snorm, A16Unorm, A16Snorm, A32Unorm, A32Snorm, A32Float)
	case RG:
		return singleChannel(ty, RG8Unorm, RG8Snorm, RG16Unorm, RG16Snorm, RG32Unorm, RG32Snorm, RG32Float)
	case RGB:
		switch ty {
		case UnsignedByte332:
			return RGB332Unorm
		case UnsignedByte233Rev:
			return RGB233Unorm
		case UnsignedShort565:
			return RGB565Unorm
		case UnsignedShort565Rev:
			return RGB565RevUnorm
		}
		return singleChannel(ty, RGB8Unorm, RGB8Snorm, RGB16Unorm, RGB16Snorm, RGB32Unorm, RGB32Snorm, RGB32Float)
	case RGBA:
		switch ty {
		case UnsignedShort4444:
			return RGBA4Unorm
		case UnsignedShort4444Rev:
			return RGBA4RevUnorm
		case UnsignedShort5551:
			return RGB5A1Unorm
		case UnsignedShort1555Rev:
			return A1RGB5Unorm
		case UnsignedInt8888:
			return RGBA8Unorm
		case UnsignedInt8888Rev:
			return RGBA8RevUnorm
		case UnsignedInt1010102:
			return RGB10A2Unorm
		case UnsignedInt2101010Rev:
			return A2RGB10Unorm
		}
		return singleChannel(ty, RGBA8Unorm, RGBA8Snorm, RGBA16Unorm, RGBA16Snorm, RGBA32Unorm, RGBA32Snorm, RGBA32Float)
	case BGRA:
		switch ty {
		case UnsignedShort4444:
			return BGRA4Unorm
		case UnsignedShort4444Rev:
			return BGRA4RevUnorm
		case UnsignedShort5551:
			return BGR5A1Unorm
		case UnsignedShort1555Rev:
			return A1BGR5Unorm
		case UnsignedInt8888:
			return BGRA8Unorm
		case UnsignedInt8888Rev:
			return BGRA8RevUnorm
		case UnsignedInt1010102:
			return BGR10A2Unorm
		case UnsignedInt2101010Rev:
			return A2BGR10Unorm
		}
		return singleChannel(ty, BGRA8Unorm, BGRA8Snorm, BGRA16Unorm, BGRA16Snorm, BGRA32Unorm, BGRA32Snorm, BGRA32Float)
	case RedInteger:
		return singleChannel(ty, R8Uint, R8Sint, R16Uint, R16Sint, R32Uint, R32Sint, Invalid)
	case GreenInteger:
		return singleChannel(ty, G8Uint, G8Sint, G16Uint, G16Sint, G32Uint, G32Sint, Invalid)
	case BlueInteger:
		return singleChannel(ty, B8Uint, B8Sint, B16Uint, B16Sint, B32Uint, B32Sint, Invalid)
	case AlphaInteger:
		return singleChannel(ty, A8Uint, A8Sint, A16Uint, A16Sint, A32Uint, A32Sint, Invalid)
	case RGInteger:
		return singleChannel(ty, RG8Uint, RG8Sint, RG16Uint, RG16Sint, RG32Uint, RG32Sint, Invalid)
	case RGBInteger:
		switch ty {
		case UnsignedByte332:
			return RGB332Uint
		case UnsignedByte233Rev:
			return RGB233Uint
		case UnsignedShort565:
			return RGB565Uint
		case UnsignedShort565Rev:
			return RGB565RevUint
		}
		return singleChannel(ty, RGB8Uint, RGB8Sint, RGB16Uint, RGB16Sint, RGB32Uint, RGB32Sint, Invalid)
	case RGBAInteger:
		switch ty {
		case UnsignedShort4444:
			return RGBA4Uint
		case UnsignedShort4444Rev:
			return RGBA4RevUint
		case UnsignedShort5551:
			return RGB5A1Uint
		case UnsignedShort1555Rev:
			return A1RGB5Uint
		case UnsignedInt8888:
			return RGBA8Uint
		case UnsignedInt8888Rev:
			return RGBA8RevUint
		case UnsignedInt1010102:
			return RGB10A2Uint
		case UnsignedInt2101010Rev:
			return A2RGB10Uint
		}
		return singleChannel(ty, RGBA8Uint, RGBA8Sint, RGBA16Uint, RGBA16Sint, RGBA32Uint, RGBA32Sint, Invalid)
	case BGRAInteger:
		switch ty {
		case UnsignedShort4444:
			return BGRA4Uint
		case UnsignedShort4444Rev:
			return BGRA4RevUint
		case UnsignedShort5551:
			return BGR5A1Uint
		case UnsignedShort1555Rev:
			return A1BGR5Uint
		case UnsignedInt8888:
			return BGRA8Uint
		case UnsignedInt8888Rev:
			return BGRA8RevUint
		case UnsignedInt1010102:
			return BGR10A2Uint
		case UnsignedInt2101010Rev:
			return A2BGR10Uint
		}
		return singleChannel(ty, BGRA8Uint, BGRA8Sint, BGRA16Uint, BGRA16Sint, BGRA32Uint, BGRA32Sint, Invalid)
	case DepthComponent:
		return singleChannel(ty, D8Unorm, D8Snorm, D16Unorm, D16Snorm, D32Unorm, D32Snorm, D32Float)
	case StencilIndex:
		return singleChannel(ty, S8Uint, S8Sint, S16Uint, S16Sint, S32Uint, S32Sint, S32Float)
	case DepthStencil:
		switch ty {
		case UnsignedInt248:
			return D24UnormS8Uint
		case Float32UnsignedInt248Rev:
			return D32FloatS8Uint
		}
	}
	return Invalid
}

// singleChannel maps the seven scalar data types to the given formats.
// Layouts with no encoding for a type pass Invalid (integer layouts reject
// Float).
func singleChannel(ty DataType, ub, b, us, s, ui, i, f SizedFormat) SizedFormat {
	switch ty {
	case UnsignedByte:
		return ub
	case Byte:
		return b
	case UnsignedShort:
		return us
	case Short:
		return s
	case UnsignedInt:
		return ui
	case Int:
		return i
	case Float:
		return f
	}
	return Invalid
}
