package dxtex

import (
	"fmt"

	"github.com/gogpu/gputypes"
)

var webGPUFormats = map[Format]gputypes.TextureFormat{
	FormatR8Unorm: gputypes.TextureFormatR8Unorm,
	FormatR8Snorm: gputypes.TextureFormatR8Snorm,
	FormatR8Uint:  gputypes.TextureFormatR8Uint,
	FormatR8Sint:  gputypes.TextureFormatR8Sint,

	FormatR16Unorm: gputypes.TextureFormatR16Unorm,
	FormatR16Snorm: gputypes.TextureFormatR16Snorm,
	FormatR16Uint:  gputypes.TextureFormatR16Uint,
	FormatR16Sint:  gputypes.TextureFormatR16Sint,
	FormatR16Float: gputypes.TextureFormatR16Float,

	FormatR8G8Unorm: gputypes.TextureFormatRG8Unorm,
	FormatR8G8Snorm: gputypes.TextureFormatRG8Snorm,
	FormatR8G8Uint:  gputypes.TextureFormatRG8Uint,
	FormatR8G8Sint:  gputypes.TextureFormatRG8Sint,

	FormatR32Float: gputypes.TextureFormatR32Float,
	FormatR32Uint:  gputypes.TextureFormatR32Uint,
	FormatR32Sint:  gputypes.TextureFormatR32Sint,

	FormatR16G16Unorm: gputypes.TextureFormatRG16Unorm,
	FormatR16G16Snorm: gputypes.TextureFormatRG16Snorm,
	FormatR16G16Uint:  gputypes.TextureFormatRG16Uint,
	FormatR16G16Sint:  gputypes.TextureFormatRG16Sint,
	FormatR16G16Float: gputypes.TextureFormatRG16Float,

	FormatR8G8B8A8Unorm:     gputypes.TextureFormatRGBA8Unorm,
	FormatR8G8B8A8UnormSRGB: gputypes.TextureFormatRGBA8UnormSrgb,
	FormatR8G8B8A8Snorm:     gputypes.TextureFormatRGBA8Snorm,
	FormatR8G8B8A8Uint:      gputypes.TextureFormatRGBA8Uint,
	FormatR8G8B8A8Sint:      gputypes.TextureFormatRGBA8Sint,
	FormatB8G8R8A8Unorm:     gputypes.TextureFormatBGRA8Unorm,
	FormatB8G8R8A8UnormSRGB: gputypes.TextureFormatBGRA8UnormSrgb,

	FormatR10G10B10A2Uint:   gputypes.TextureFormatRGB10A2Uint,
	FormatR10G10B10A2Unorm:  gputypes.TextureFormatRGB10A2Unorm,
	FormatR11G11B10Float:    gputypes.TextureFormatRG11B10Ufloat,
	FormatR9G9B9E5SharedExp: gputypes.TextureFormatRGB9E5Ufloat,

	FormatR32G32Float: gputypes.TextureFormatRG32Float,
	FormatR32G32Uint:  gputypes.TextureFormatRG32Uint,
	FormatR32G32Sint:  gputypes.TextureFormatRG32Sint,

	FormatR16G16B16A16Unorm: gputypes.TextureFormatRGBA16Unorm,
	FormatR16G16B16A16Snorm: gputypes.TextureFormatRGBA16Snorm,
	FormatR16G16B16A16Uint:  gputypes.TextureFormatRGBA16Uint,
	FormatR16G16B16A16Sint:  gputypes.TextureFormatRGBA16Sint,
	FormatR16G16B16A16Float: gputypes.TextureFormatRGBA16Float,

	FormatR32G32B32A32Float: gputypes.TextureFormatRGBA32Float,
	FormatR32G32B32A32Uint:  gputypes.TextureFormatRGBA32Uint,
	FormatR32G32B32A32Sint:  gputypes.TextureFormatRGBA32Sint,

	FormatD16Unorm:          gputypes.TextureFormatDepth16Unorm,
	FormatD24UnormS8Uint:    gputypes.TextureFormatDepth24PlusStencil8,
	FormatD32Float:          gputypes.TextureFormatDepth32Float,
	FormatD32FloatS8X24Uint: gputypes.TextureFormatDepth32FloatStencil8,

	FormatBC1Unorm:     gputypes.TextureFormatBC1RGBAUnorm,
	FormatBC1UnormSRGB: gputypes.TextureFormatBC1RGBAUnormSrgb,
	FormatBC2Unorm:     gputypes.TextureFormatBC2RGBAUnorm,
	FormatBC2UnormSRGB: gputypes.TextureFormatBC2RGBAUnormSrgb,
	FormatBC3Unorm:     gputypes.TextureFormatBC3RGBAUnorm,
	FormatBC3UnormSRGB: gputypes.TextureFormatBC3RGBAUnormSrgb,
	FormatBC4Unorm:     gputypes.TextureFormatBC4RUnorm,
	FormatBC4Snorm:     gputypes.TextureFormatBC4RSnorm,
	FormatBC5Unorm:     gputypes.TextureFormatBC5RGUnorm,
	FormatBC5Snorm:     gputypes.TextureFormatBC5RGSnorm,
	FormatBC6HUF16:     gputypes.TextureFormatBC6HRGBUfloat,
	FormatBC6HSF16:     gputypes.TextureFormatBC6HRGBFloat,
	FormatBC7Unorm:     gputypes.TextureFormatBC7RGBAUnorm,
	FormatBC7UnormSRGB: gputypes.TextureFormatBC7RGBAUnormSrgb,
}

// WebGPUFormat returns the WebGPU texture format with the same memory
// layout as f. Typeless, video, packed and palettized formats have none.
func (f Format) WebGPUFormat() (gputypes.TextureFormat, bool) {
	tf, ok := webGPUFormats[f]
	return tf, ok
}

// ViewDimension returns the default view dimension for a texture of this shape.
func (m TexMetadata) ViewDimension() gputypes.TextureViewDimension {
	switch m.Dimension {
	case Dimension1D:
		return gputypes.TextureViewDimension1D
	case Dimension3D:
		return gputypes.TextureViewDimension3D
	case Dimension2D:
		switch {
		case m.IsCubemap() && m.ArraySize > 6:
			return gputypes.TextureViewDimensionCubeArray
		case m.IsCubemap():
			return gputypes.TextureViewDimensionCube
		case m.ArraySize > 1:
			return gputypes.TextureViewDimension2DArray
		default:
			return gputypes.TextureViewDimension2D
		}
	default:
		return gputypes.TextureViewDimensionUndefined
	}
}

// TextureDescriptor describes a sampled, copyable GPU texture matching m.
// Array items and cube faces become array layers; volume depth becomes
// the third extent.
func (m TexMetadata) TextureDescriptor(label string) (gputypes.TextureDescriptor, error) {
	if err := m.Validate(); err != nil {
		return gputypes.TextureDescriptor{}, err
	}

	format, ok := m.Format.WebGPUFormat()
	if !ok {
		return gputypes.TextureDescriptor{}, fmt.Errorf("%w: %s has no WebGPU equivalent", ErrUnsupportedFormat, m.Format)
	}

	var dim gputypes.TextureDimension
	layers := m.ArraySize
	switch m.Dimension {
	case Dimension1D:
		dim = gputypes.TextureDimension1D
	case Dimension2D:
		dim = gputypes.TextureDimension2D
	case Dimension3D:
		dim = gputypes.TextureDimension3D
		layers = m.Depth
	}

	width, err := u32FromInt(m.Width)
	if err != nil {
		return gputypes.TextureDescriptor{}, err
	}
	height, err := u32FromInt(m.Height)
	if err != nil {
		return gputypes.TextureDescriptor{}, err
	}
	depth, err := u32FromInt(layers)
	if err != nil {
		return gputypes.TextureDescriptor{}, err
	}
	mips, err := u32FromInt(m.MipLevels)
	if err != nil {
		return gputypes.TextureDescriptor{}, err
	}

	return gputypes.TextureDescriptor{
		Label: label,
		Size: gputypes.Extent3D{
			Width:              width,
			Height:             height,
			DepthOrArrayLayers: depth,
		},
		MipLevelCount: mips,
		SampleCount:   1,
		Dimension:     dim,
		Format:        format,
		Usage:         gputypes.TextureUsageCopySrc | gputypes.TextureUsageCopyDst | gputypes.TextureUsageTextureBinding,
	}, nil
}
