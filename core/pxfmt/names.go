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

// Channel identifies what a stored component represents.
type Channel int

const (
	ChannelRed Channel = iota
	ChannelGreen
	ChannelBlue
	ChannelAlpha
	ChannelDepth
	ChannelStencil
)

func (c Channel) String() string {
	switch c {
	case ChannelRed:
		return "R"
	case ChannelGreen:
		return "G"
	case ChannelBlue:
		return "B"
	case ChannelAlpha:
		return "A"
	case ChannelDepth:
		return "D"
	case ChannelStencil:
		return "S"
	}
	return fmt.Sprintf("Channel(%d)", int(c))
}

var colorChannels = [4]Channel{ChannelRed, ChannelGreen, ChannelBlue, ChannelAlpha}

// Channels returns the channels stored by the format, in component order.
func (f SizedFormat) Channels() []Channel {
	d := lookup(f)
	if d == nil {
		return nil
	}
	switch {
	case f == D24UnormS8Uint || f == D32FloatS8Uint:
		return []Channel{ChannelDepth, ChannelStencil}
	case f >= D8Unorm && f <= D32Float:
		return []Channel{ChannelDepth}
	case f >= S8Uint && f <= S32Float:
		return []Channel{ChannelStencil}
	}
	out := make([]Channel, 0, d.comps)
	for c := 0; c < int(d.comps); c++ {
		if d.slot[c] >= 0 {
			out = append(out, colorChannels[d.slot[c]])
		}
	}
	return out
}

var fmtNames = [sizedFormatCount]string{
	Invalid: "INVALID",

	R8Unorm:  "R8_UNORM",
	R8Snorm:  "R8_SNORM",
	R16Unorm: "R16_UNORM",
	R16Snorm: "R16_SNORM",
	R32Unorm: "R32_UNORM",
	R32Snorm: "R32_SNORM",
	R32Float: "R32_FLOAT",

	G8Unorm:  "G8_UNORM",
	G8Snorm:  "G8_SNORM",
	G16Unorm: "G16_UNORM",
	G16Snorm: "G16_SNORM",
	G32Unorm: "G32_UNORM",
	G32Snorm: "G32_SNORM",
	G32Float: "G32_FLOAT",

	B8Unorm:  "B8_UNORM",
	B8Snorm:  "B8_SNORM",
	B16Unorm: "B16_UNORM",
	B16Snorm: "B16_SNORM",
	B32Unorm: "B32_UNORM",
	B32Snorm: "B32_SNORM",
	B32Float: "B32_FLOAT",

	A8Unorm:  "A8_UNORM",
	A8Snorm:  "A8_SNORM",
	A16Unorm: "A16_UNORM",
	A16Snorm: "A16_SNORM",
	A32Unorm: "A32_UNORM",
	A32Snorm: "A32_SNORM",
	A32Float: "A32_FLOAT",

	RG8Unorm:  "RG8_UNORM",
	RG8Snorm:  "RG8_SNORM",
	RG16Unorm: "RG16_UNORM",
	RG16Snorm: "RG16_SNORM",
	RG32Unorm: "RG32_UNORM",
	RG32Snorm: "RG32_SNORM",
	RG32Float: "RG32_FLOAT",

	RGB8Unorm:      "RGB8_UNORM",
	RGB8Snorm:      "RGB8_SNORM",
	RGB16Unorm:     "RGB16_UNORM",
	RGB16Snorm:     "RGB16_SNORM",
	RGB32Unorm:     "RGB32_UNORM",
	RGB32Snorm:     "RGB32_SNORM",
	RGB32Float:     "RGB32_FLOAT",
	RGB332Unorm:    "RGB332_UNORM",
	RGB233Unorm:    "RGB233_UNORM",
	RGB565Unorm:    "RGB565_UNORM",
	RGB565RevUnorm: "RGB565_REV_UNORM",

	RGBA8Unorm:    "RGBA8_UNORM",
	RGBA8Snorm:    "RGBA8_SNORM",
	RGBA16Unorm:   "RGBA16_UNORM",
	RGBA16Snorm:   "RGBA16_SNORM",
	RGBA32Unorm:   "RGBA32_UNORM",
	RGBA32Snorm:   "RGBA32_SNORM",
	RGBA32Float:   "RGBA32_FLOAT",
	RGBA4Unorm:    "RGBA4_UNORM",
	RGBA4RevUnorm: "RGBA4_REV_UNORM",
	RGB5A1Unorm:   "RGB5A1_UNORM",
	A1RGB5Unorm:   "A1RGB5_UNORM",
	RGBA8RevUnorm: "RGBA8_REV_UNORM",
	RGB10A2Unorm:  "RGB10A2_UNORM",
	A2RGB10Unorm:  "A2RGB10_UNORM",

	BGRA8Unorm:    "BGRA8_UNORM",
	BGRA8Snorm:    "BGRA8_SNORM",
	BGRA16Unorm:   "BGRA16_UNORM",
	BGRA16Snorm:   "BGRA16_SNORM",
	BGRA32Unorm:   "BGRA32_UNORM",
	BGRA32Snorm:   "BGRA32_SNORM",
	BGRA32Float:   "BGRA32_FLOAT",
	BGRA4Unorm:    "BGRA4_UNORM",
	BGRA4RevUnorm: "BGRA4_REV_UNORM",
	BGR5A1Unorm:   "BGR5A1_UNORM",
	A1BGR5Unorm:   "A1BGR5_UNORM",
	BGRA8RevUnorm: "BGRA8_REV_UNORM",
	BGR10A2Unorm:  "BGR10A2_UNORM",
	A2BGR10Unorm:  "A2BGR10_UNORM",

	R8Uint:  "R8_UINT",
	R8Sint:  "R8_SINT",
	R16Uint: "R16_UINT",
	R16Sint: "R16_SINT",
	R32Uint: "R32_UINT",
	R32Sint: "R32_SINT",

	G8Uint:  "G8_UINT",
	G8Sint:  "G8_SINT",
	G16Uint: "G16_UINT",
	G16Sint: "G16_SINT",
	G32Uint: "G32_UINT",
	G32Sint: "G32_SINT",

	B8Uint:  "B8_UINT",
	B8Sint:  "B8_SINT",
	B16Uint: "B16_UINT",
	B16Sint: "B16_SINT",
	B32Uint: "B32_UINT",
	B32Sint: "B32_SINT",

	A8Uint:  "A8_UINT",
	A8Sint:  "A8_SINT",
	A16Uint: "A16_UINT",
	A16Sint: "A16_SINT",
	A32Uint: "A32_UINT",
	A32Sint: "A32_SINT",

	RG8Uint:  "RG8_UINT",
	RG8Sint:  "RG8_SINT",
	RG16Uint: "RG16_UINT",
	RG16Sint: "RG16_SINT",
	RG32Uint: "RG32_UINT",
	RG32Sint: "RG32_SINT",

	RGB8Uint:      "RGB8_UINT",
	RGB8Sint:      "RGB8_SINT",
	RGB16Uint:     "RGB16_UINT",
	RGB16Sint:     "RGB16_SINT",
	RGB32Uint:     "RGB32_UINT",
	RGB32Sint:     "RGB32_SINT",
	RGB332Uint:    "RGB332_UINT",
	RGB233Uint:    "RGB233_UINT",
	RGB565Uint:    "RGB565_UINT",
	RGB565RevUint: "RGB565_REV_UINT",

	RGBA8Uint:    "RGBA8_UINT",
	RGBA8Sint:    "RGBA8_SINT",
	RGBA16Uint:   "RGBA16_UINT",
	RGBA16Sint:   "RGBA16_SINT",
	RGBA32Uint:   "RGBA32_UINT",
	RGBA32Sint:   "RGBA32_SINT",
	RGBA4Uint:    "RGBA4_UINT",
	RGBA4RevUint: "RGBA4_REV_UINT",
	RGB5A1Uint:   "RGB5A1_UINT",
	A1RGB5Uint:   "A1RGB5_UINT",
	RGBA8RevUint: "RGBA8_REV_UINT",
	RGB10A2Uint:  "RGB10A2_UINT",
	A2RGB10Uint:  "A2RGB10_UINT",

	BGRA8Uint:    "BGRA8_UINT",
	BGRA8Sint:    "BGRA8_SINT",
	BGRA16Uint:   "BGRA16_UINT",
	BGRA16Sint:   "BGRA16_SINT",
	BGRA32Uint:   "BGRA32_UINT",
	BGRA32Sint:   "BGRA32_SINT",
	BGRA4Uint:    "BGRA4_UINT",
	BGRA4RevUint: "BGRA4_REV_UINT",
	BGR5A1Uint:   "BGR5A1_UINT",
	A1BGR5Uint:   "A1BGR5_UINT",
	BGRA8RevUint: "BGRA8_REV_UINT",
	BGR10A2Uint:  "BGR10A2_UINT",
	A2BGR10Uint:  "A2BGR10_UINT",

	D8Unorm:  "D8_UNORM",
	D8Snorm:  "D8_SNORM",
	D16Unorm: "D16_UNORM",
	D16Snorm: "D16_SNORM",
	D32Unorm: "D32_UNORM",
	D32Snorm: "D32_SNORM",
	D32Float: "D32_FLOAT",

	S8Uint:   "S8_UINT",
	S8Sint:   "S8_SINT",
	S16Uint:  "S16_UINT",
	S16Sint:  "S16_SINT",
	S32Uint:  "S32_UINT",
	S32Sint:  "S32_SINT",
	S32Float: "S32_FLOAT",

	D24UnormS8Uint: "D24_UNORM_S8_UINT",
	D32FloatS8Uint: "D32_FLOAT_S8_UINT",
}

var fmtByName map[string]SizedFormat

func init() {
	fmtByName = make(map[string]SizedFormat, sizedFormatCount)
	for f := SizedFormat(1); f < sizedFormatCount; f++ {
		fmtByName[fmtNames[f]] = f
	}
}

func (f SizedFormat) String() string {
	if f < 0 || f >= sizedFormatCount {
		return fmt.Sprintf("SizedFormat(%d)", int(f))
	}
	return fmtNames[f]
}

// ParseSizedFormat returns the format with the given name, as produced by
// String. It returns Invalid and an error if the name is not recognized.
func ParseSizedFormat(name string) (SizedFormat, error) {
	if f, ok := fmtByName[name]; ok {
		return f, nil
	}
	return Invalid, fmt.Errorf("unknown pixel format %q: %w", name, ErrUnsupportedEncoding)
}

// Formats returns all supported formats in registry order.
func Formats() []SizedFormat {
	out := make([]SizedFormat, 0, sizedFormatCount-1)
	for f := SizedFormat(1); f < sizedFormatCount; f++ {
		out = append(out, f)
	}
	return out
}
