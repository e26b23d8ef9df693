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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CSRedRat/vogl/core/pxfmt"
)

func TestIdentify(t *testing.T) {
	for _, test := range []struct {
		base pxfmt.BaseFormat
		ty   pxfmt.DataType
		want pxfmt.SizedFormat
	}{
		{pxfmt.Red, pxfmt.UnsignedByte, pxfmt.R8Unorm},
		{pxfmt.Red, pxfmt.Byte, pxfmt.R8Snorm},
		{pxfmt.Red, pxfmt.Float, pxfmt.R32Float},
		{pxfmt.Green, pxfmt.UnsignedShort, pxfmt.G16Unorm},
		{pxfmt.Blue, pxfmt.Int, pxfmt.B32Snorm},
		{pxfmt.Alpha, pxfmt.UnsignedInt, pxfmt.A32Unorm},
		{pxfmt.RG, pxfmt.Short, pxfmt.RG16Snorm},
		{pxfmt.RGB, pxfmt.UnsignedByte, pxfmt.RGB8Unorm},
		{pxfmt.RGB, pxfmt.UnsignedByte332, pxfmt.RGB332Unorm},
		{pxfmt.RGB, pxfmt.UnsignedByte233Rev, pxfmt.RGB233Unorm},
		{pxfmt.RGB, pxfmt.UnsignedShort565, pxfmt.RGB565Unorm},
		{pxfmt.RGB, pxfmt.UnsignedShort565Rev, pxfmt.RGB565RevUnorm},
		{pxfmt.RGBA, pxfmt.UnsignedByte, pxfmt.RGBA8Unorm},
		{pxfmt.RGBA, pxfmt.UnsignedInt8888, pxfmt.RGBA8Unorm},
		{pxfmt.RGBA, pxfmt.UnsignedInt8888Rev, pxfmt.RGBA8RevUnorm},
		{pxfmt.RGBA, pxfmt.UnsignedShort4444, pxfmt.RGBA4Unorm},
		{pxfmt.RGBA, pxfmt.UnsignedShort5551, pxfmt.RGB5A1Unorm},
		{pxfmt.RGBA, pxfmt.UnsignedShort1555Rev, pxfmt.A1RGB5Unorm},
		{pxfmt.RGBA, pxfmt.UnsignedInt1010102, pxfmt.RGB10A2Unorm},
		{pxfmt.RGBA, pxfmt.UnsignedInt2101010Rev, pxfmt.A2RGB10Unorm},
		{pxfmt.BGRA, pxfmt.UnsignedByte, pxfmt.BGRA8Unorm},
		{pxfmt.BGRA, pxfmt.UnsignedShort5551, pxfmt.BGR5A1Unorm},
		{pxfmt.BGRA, pxfmt.UnsignedInt2101010Rev, pxfmt.A2BGR10Unorm},
		{pxfmt.RedInteger, pxfmt.UnsignedByte, pxfmt.R8Uint},
		{pxfmt.RedInteger, pxfmt.Int, pxfmt.R32Sint},
		{pxfmt.AlphaInteger, pxfmt.Short, pxfmt.A16Sint},
		{pxfmt.RGInteger, pxfmt.UnsignedInt, pxfmt.RG32Uint},
		{pxfmt.RGBInteger, pxfmt.UnsignedShort565, pxfmt.RGB565Uint},
		{pxfmt.RGBAInteger, pxfmt.UnsignedInt8888, pxfmt.RGBA8Uint},
		{pxfmt.RGBAInteger, pxfmt.UnsignedInt2101010Rev, pxfmt.A2RGB10Uint},
		{pxfmt.BGRAInteger, pxfmt.UnsignedShort4444Rev, pxfmt.BGRA4RevUint},
		{pxfmt.DepthComponent, pxfmt.UnsignedShort, pxfmt.D16Unorm},
		{pxfmt.DepthComponent, pxfmt.Float, pxfmt.D32Float},
		{pxfmt.StencilIndex, pxfmt.UnsignedByte, pxfmt.S8Uint},
		{pxfmt.StencilIndex, pxfmt.Float, pxfmt.S32Float},
		{pxfmt.DepthStencil, pxfmt.UnsignedInt248, pxfmt.D24UnormS8Uint},
		{pxfmt.DepthStencil, pxfmt.Float32UnsignedInt248Rev, pxfmt.D32FloatS8Uint},
	} {
		got, err := pxfmt.Identify(test.base, test.ty)
		require.NoError(t, err, "%v/%v", test.base, test.ty)
		assert.Equal(t, test.want, got, "%v/%v", test.base, test.ty)
	}
}

func TestIdentifyUnsupported(t *testing.T) {
	for _, test := range []struct {
		base pxfmt.BaseFormat
		ty   pxfmt.DataType
	}{
		{pxfmt.BGR, pxfmt.UnsignedByte},
		{pxfmt.BGRInteger, pxfmt.UnsignedByte},
		{pxfmt.Red, pxfmt.UnsignedByte332},
		{pxfmt.RGB, pxfmt.UnsignedShort4444},
		{pxfmt.DepthComponent, pxfmt.UnsignedShort565},
		{pxfmt.RedInteger, pxfmt.Float},
		{pxfmt.RGBAInteger, pxfmt.Float},
		{pxfmt.DepthComponent, pxfmt.UnsignedInt248},
		{pxfmt.DepthStencil, pxfmt.Float},
		{pxfmt.BaseFormat(-1), pxfmt.UnsignedByte},
		{pxfmt.RGBA, pxfmt.DataType(-1)},
	} {
		got, err := pxfmt.Identify(test.base, test.ty)
		assert.ErrorIs(t, err, pxfmt.ErrUnsupportedCombination, "%v/%v", test.base, test.ty)
		assert.Equal(t, pxfmt.Invalid, got)
	}
}
