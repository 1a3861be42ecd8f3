package dxtex

import "fmt"

// Format is a pixel format identifier using DXGI_FORMAT numbering.
//
// All attributes are derived from a static table; formats outside the
// table are reported as invalid and classify as false/0 everywhere.
type Format uint32

// Pixel formats.
const (
	FormatUnknown Format = 0

	FormatR32G32B32A32Typeless Format = 1
	FormatR32G32B32A32Float    Format = 2
	FormatR32G32B32A32Uint     Format = 3
	FormatR32G32B32A32Sint     Format = 4

	FormatR32G32B32Typeless Format = 5
	FormatR32G32B32Float    Format = 6
	FormatR32G32B32Uint     Format = 7
	FormatR32G32B32Sint     Format = 8

	FormatR16G16B16A16Typeless Format = 9
	FormatR16G16B16A16Float    Format = 10
	FormatR16G16B16A16Unorm    Format = 11
	FormatR16G16B16A16Uint     Format = 12
	FormatR16G16B16A16Snorm    Format = 13
	FormatR16G16B16A16Sint     Format = 14

	FormatR32G32Typeless Format = 15
	FormatR32G32Float    Format = 16
	FormatR32G32Uint     Format = 17
	FormatR32G32Sint     Format = 18

	FormatR32G8X24Typeless       Format = 19
	FormatD32FloatS8X24Uint      Format = 20
	FormatR32FloatX8X24Typeless  Format = 21
	FormatX32TypelessG8X24Uint   Format = 22
	FormatR10G10B10A2Typeless    Format = 23
	FormatR10G10B10A2Unorm       Format = 24
	FormatR10G10B10A2Uint        Format = 25
	FormatR11G11B10Float         Format = 26
	FormatR8G8B8A8Typeless       Format = 27
	FormatR8G8B8A8Unorm          Format = 28
	FormatR8G8B8A8UnormSRGB      Format = 29
	FormatR8G8B8A8Uint           Format = 30
	FormatR8G8B8A8Snorm          Format = 31
	FormatR8G8B8A8Sint           Format = 32
	FormatR16G16Typeless         Format = 33
	FormatR16G16Float            Format = 34
	FormatR16G16Unorm            Format = 35
	FormatR16G16Uint             Format = 36
	FormatR16G16Snorm            Format = 37
	FormatR16G16Sint             Format = 38
	FormatR32Typeless            Format = 39
	FormatD32Float               Format = 40
	FormatR32Float               Format = 41
	FormatR32Uint                Format = 42
	FormatR32Sint                Format = 43
	FormatR24G8Typeless          Format = 44
	FormatD24UnormS8Uint         Format = 45
	FormatR24UnormX8Typeless     Format = 46
	FormatX24TypelessG8Uint      Format = 47
	FormatR8G8Typeless           Format = 48
	FormatR8G8Unorm              Format = 49
	FormatR8G8Uint               Format = 50
	FormatR8G8Snorm              Format = 51
	FormatR8G8Sint               Format = 52
	FormatR16Typeless            Format = 53
	FormatR16Float               Format = 54
	FormatD16Unorm               Format = 55
	FormatR16Unorm               Format = 56
	FormatR16Uint                Format = 57
	FormatR16Snorm               Format = 58
	FormatR16Sint                Format = 59
	FormatR8Typeless             Format = 60
	FormatR8Unorm                Format = 61
	FormatR8Uint                 Format = 62
	FormatR8Snorm                Format = 63
	FormatR8Sint                 Format = 64
	FormatA8Unorm                Format = 65
	FormatR1Unorm                Format = 66
	FormatR9G9B9E5SharedExp      Format = 67
	FormatR8G8B8G8Unorm          Format = 68
	FormatG8R8G8B8Unorm          Format = 69
	FormatBC1Typeless            Format = 70
	FormatBC1Unorm               Format = 71
	FormatBC1UnormSRGB           Format = 72
	FormatBC2Typeless            Format = 73
	FormatBC2Unorm               Format = 74
	FormatBC2UnormSRGB           Format = 75
	FormatBC3Typeless            Format = 76
	FormatBC3Unorm               Format = 77
	FormatBC3UnormSRGB           Format = 78
	FormatBC4Typeless            Format = 79
	FormatBC4Unorm               Format = 80
	FormatBC4Snorm               Format = 81
	FormatBC5Typeless            Format = 82
	FormatBC5Unorm               Format = 83
	FormatBC5Snorm               Format = 84
	FormatB5G6R5Unorm            Format = 85
	FormatB5G5R5A1Unorm          Format = 86
	FormatB8G8R8A8Unorm          Format = 87
	FormatB8G8R8X8Unorm          Format = 88
	FormatR10G10B10XRBiasA2Unorm Format = 89
	FormatB8G8R8A8Typeless       Format = 90
	FormatB8G8R8A8UnormSRGB      Format = 91
	FormatB8G8R8X8Typeless       Format = 92
	FormatB8G8R8X8UnormSRGB      Format = 93
	FormatBC6HTypeless           Format = 94
	FormatBC6HUF16               Format = 95
	FormatBC6HSF16               Format = 96
	FormatBC7Typeless            Format = 97
	FormatBC7Unorm               Format = 98
	FormatBC7UnormSRGB           Format = 99

	FormatAYUV          Format = 100
	FormatY410          Format = 101
	FormatY416          Format = 102
	FormatNV12          Format = 103
	FormatP010          Format = 104
	FormatP016          Format = 105
	FormatOpaque420     Format = 106
	FormatYUY2          Format = 107
	FormatY210          Format = 108
	FormatY216          Format = 109
	FormatNV11          Format = 110
	FormatAI44          Format = 111
	FormatIA44          Format = 112
	FormatP8            Format = 113
	FormatA8P8          Format = 114
	FormatB4G4R4A4Unorm Format = 115
	FormatP208          Format = 130
	FormatV208          Format = 131
	FormatV408          Format = 132

	FormatSamplerFeedbackMinMipOpaque        Format = 189
	FormatSamplerFeedbackMipRegionUsedOpaque Format = 190
	FormatA4B4G4R4Unorm                      Format = 191
)

// FormatType is the numeric interpretation of a format's channels.
type FormatType int

// Format data types.
const (
	FormatTypeUnknown FormatType = iota
	FormatTypeFloat
	FormatTypeUNORM
	FormatTypeSNORM
	FormatTypeUINT
	FormatTypeSINT
	FormatTypeSharedExp
)

func (t FormatType) String() string {
	switch t {
	case FormatTypeFloat:
		return "FLOAT"
	case FormatTypeUNORM:
		return "UNORM"
	case FormatTypeSNORM:
		return "SNORM"
	case FormatTypeUINT:
		return "UINT"
	case FormatTypeSINT:
		return "SINT"
	case FormatTypeSharedExp:
		return "SHAREDEXP"
	default:
		return "UNKNOWN"
	}
}

func (f Format) info() *formatInfo {
	if int(f) >= len(formatTable) {
		return &formatInfo{}
	}

	return &formatTable[f]
}

func (f Format) is(c formatClass) bool { return f.info().class&c != 0 }

// String returns the DXGI name without the DXGI_FORMAT_ prefix.
func (f Format) String() string {
	if name := f.info().name; name != "" {
		return name
	}

	return fmt.Sprintf("Format(%d)", uint32(f))
}

// IsValid reports whether f is a known, non-UNKNOWN format.
func (f Format) IsValid() bool { return f != FormatUnknown && f.info().name != "" }

// IsCompressed reports whether f is a BCn block-compressed format.
func (f Format) IsCompressed() bool { return f.is(classCompressed) }

// IsPacked reports whether f stores two pixels per addressable unit.
func (f Format) IsPacked() bool { return f.is(classPacked) }

// IsVideo reports whether f is a YUV video format.
func (f Format) IsVideo() bool { return f.is(classVideo) }

// IsPlanar reports whether f stores its components in separate planes.
func (f Format) IsPlanar() bool { return f.is(classPlanar) }

// IsPalettized reports whether f is an indexed palette format.
func (f Format) IsPalettized() bool { return f.is(classPalettized) }

// IsDepthStencil reports whether f is a depth/stencil format.
func (f Format) IsDepthStencil() bool { return f.is(classDepthStencil) }

// IsSRGB reports whether f stores sRGB-encoded color.
func (f Format) IsSRGB() bool { return f.is(classSRGB) }

// IsBGR reports whether f stores blue in the lowest bits.
func (f Format) IsBGR() bool { return f.is(classBGR) }

// IsTypeless reports whether f has no fixed numeric interpretation.
// With partial set, formats where only some channels are typeless
// (e.g. R24_UNORM_X8_TYPELESS) also count.
func (f Format) IsTypeless(partial bool) bool {
	if f.is(classTypeless) {
		return true
	}

	return partial && f.is(classPartialTypeless)
}

// HasAlpha reports whether f carries an alpha channel.
func (f Format) HasAlpha() bool { return f.is(classAlpha) }

// BitsPerPixel returns the storage bits per pixel, or 0 for unknown formats.
// Block-compressed formats report their average (4 or 8).
func (f Format) BitsPerPixel() int { return int(f.info().bpp) }

// BitsPerColor returns the bits of the widest color channel, or 0.
func (f Format) BitsPerColor() int { return int(f.info().bpc) }

// DataType returns the numeric interpretation of f's channels.
func (f Format) DataType() FormatType { return f.info().dataType }

// MakeSRGB returns the sRGB variant of f, or f when none exists.
func (f Format) MakeSRGB() Format { return partner(f, f.info().srgb) }

// MakeLinear returns the non-sRGB variant of f, or f when none exists.
func (f Format) MakeLinear() Format { return partner(f, f.info().linear) }

// MakeTypeless returns the typeless variant of f, or f when none exists.
func (f Format) MakeTypeless() Format { return partner(f, f.info().typeless) }

// MakeTypelessUNORM returns the UNORM variant of a typeless f, or f.
func (f Format) MakeTypelessUNORM() Format { return partner(f, f.info().typelessUNORM) }

// MakeTypelessFLOAT returns the FLOAT variant of a typeless f, or f.
func (f Format) MakeTypelessFLOAT() Format { return partner(f, f.info().typelessFLOAT) }

func partner(f, p Format) Format {
	if p == FormatUnknown {
		return f
	}

	return p
}
