package dxtex

import "github.com/woozymasta/bcn"

// ddsConv records the pixel conversions a legacy DDS payload needs on load.
type ddsConv uint32

const (
	convExpand ddsConv = 1 << iota // source bpp differs from the target format
	convNoAlpha
	convSwizzle
	convSwizzle10
	convPMAlpha
	conv888
	convL8
	convA8L8
	convL16
	conv565
	conv5551
	conv4444
)

const (
	ddsPFRGBA       = bcn.DDSPFRGB | bcn.DDSPFAlphaPixels
	ddsPFLuminanceA = bcn.DDSPFLuminance | bcn.DDSPFAlphaPixels
)

// legacyDDSFormat maps one legacy pixel-format description to a Format.
// expanded/expandConv apply under DDSFlagExpandLuminance when set.
type legacyDDSFormat struct {
	format     Format
	conv       ddsConv
	expanded   Format
	expandConv ddsConv
	pf         bcn.DDSPixelFormat
}

func fourCCPF(a, b, c, d byte) bcn.DDSPixelFormat {
	return bcn.DDSPixelFormat{Flags: bcn.DDSPFFourCC, FourCC: makeFourCC(a, b, c, d)}
}

func numericPF(code uint32) bcn.DDSPixelFormat {
	return bcn.DDSPixelFormat{Flags: bcn.DDSPFFourCC, FourCC: code}
}

func maskPF(flags, bits, r, g, b, a uint32) bcn.DDSPixelFormat {
	return bcn.DDSPixelFormat{Flags: flags, RGBBitCount: bits, RBitMask: r, GBitMask: g, BBitMask: b, ABitMask: a}
}

var legacyDDSFormats = []legacyDDSFormat{
	{format: FormatBC1Unorm, pf: fourCCPF('D', 'X', 'T', '1')},
	{format: FormatBC2Unorm, pf: fourCCPF('D', 'X', 'T', '3')},
	{format: FormatBC3Unorm, pf: fourCCPF('D', 'X', 'T', '5')},
	{format: FormatBC2Unorm, conv: convPMAlpha, pf: fourCCPF('D', 'X', 'T', '2')},
	{format: FormatBC3Unorm, conv: convPMAlpha, pf: fourCCPF('D', 'X', 'T', '4')},
	{format: FormatBC4Unorm, pf: fourCCPF('B', 'C', '4', 'U')},
	{format: FormatBC4Snorm, pf: fourCCPF('B', 'C', '4', 'S')},
	{format: FormatBC5Unorm, pf: fourCCPF('B', 'C', '5', 'U')},
	{format: FormatBC5Snorm, pf: fourCCPF('B', 'C', '5', 'S')},
	{format: FormatBC4Unorm, pf: fourCCPF('A', 'T', 'I', '1')},
	{format: FormatBC5Unorm, pf: fourCCPF('A', 'T', 'I', '2')},
	{format: FormatR8G8B8G8Unorm, pf: fourCCPF('R', 'G', 'B', 'G')},
	{format: FormatG8R8G8B8Unorm, pf: fourCCPF('G', 'R', 'G', 'B')},
	{format: FormatYUY2, pf: fourCCPF('Y', 'U', 'Y', '2')},

	{format: FormatB8G8R8A8Unorm, pf: maskPF(ddsPFRGBA, 32, 0x00ff0000, 0x0000ff00, 0x000000ff, 0xff000000)},
	{format: FormatB8G8R8X8Unorm, pf: maskPF(bcn.DDSPFRGB, 32, 0x00ff0000, 0x0000ff00, 0x000000ff, 0)},
	{format: FormatR8G8B8A8Unorm, pf: maskPF(ddsPFRGBA, 32, 0x000000ff, 0x0000ff00, 0x00ff0000, 0xff000000)},
	{format: FormatR8G8B8A8Unorm, conv: convNoAlpha, pf: maskPF(bcn.DDSPFRGB, 32, 0x000000ff, 0x0000ff00, 0x00ff0000, 0)},
	{format: FormatR16G16Unorm, pf: maskPF(bcn.DDSPFRGB, 32, 0x0000ffff, 0xffff0000, 0, 0)},
	{format: FormatR10G10B10A2Unorm, pf: maskPF(ddsPFRGBA, 32, 0x000003ff, 0x000ffc00, 0x3ff00000, 0xc0000000)},
	{format: FormatR10G10B10A2Unorm, conv: convSwizzle10, pf: maskPF(ddsPFRGBA, 32, 0x3ff00000, 0x000ffc00, 0x000003ff, 0xc0000000)},

	{format: FormatR8G8B8A8Unorm, conv: convExpand | conv888, pf: maskPF(bcn.DDSPFRGB, 24, 0xff0000, 0x00ff00, 0x0000ff, 0)},

	{format: FormatB5G6R5Unorm, pf: maskPF(bcn.DDSPFRGB, 16, 0xf800, 0x07e0, 0x001f, 0)},
	{format: FormatB5G5R5A1Unorm, pf: maskPF(ddsPFRGBA, 16, 0x7c00, 0x03e0, 0x001f, 0x8000)},
	{format: FormatB5G5R5A1Unorm, conv: convNoAlpha, pf: maskPF(bcn.DDSPFRGB, 16, 0x7c00, 0x03e0, 0x001f, 0)},
	{format: FormatB4G4R4A4Unorm, pf: maskPF(ddsPFRGBA, 16, 0x0f00, 0x00f0, 0x000f, 0xf000)},
	{format: FormatB4G4R4A4Unorm, conv: convNoAlpha, pf: maskPF(bcn.DDSPFRGB, 16, 0x0f00, 0x00f0, 0x000f, 0)},

	{
		format: FormatR8Unorm, expanded: FormatR8G8B8A8Unorm, expandConv: convExpand | convL8,
		pf: maskPF(bcn.DDSPFLuminance, 8, 0xff, 0, 0, 0),
	},
	{
		format: FormatR16Unorm, expanded: FormatR16G16B16A16Unorm, expandConv: convExpand | convL16,
		pf: maskPF(bcn.DDSPFLuminance, 16, 0xffff, 0, 0, 0),
	},
	{
		format: FormatR8G8Unorm, expanded: FormatR8G8B8A8Unorm, expandConv: convExpand | convA8L8,
		pf: maskPF(ddsPFLuminanceA, 16, 0x00ff, 0, 0, 0xff00),
	},
	{format: FormatA8Unorm, pf: maskPF(bcn.DDSPFAlpha, 8, 0, 0, 0, 0xff)},

	{format: FormatR16G16B16A16Unorm, pf: numericPF(36)},
	{format: FormatR16G16B16A16Snorm, pf: numericPF(110)},
	{format: FormatR16Float, pf: numericPF(111)},
	{format: FormatR16G16Float, pf: numericPF(112)},
	{format: FormatR16G16B16A16Float, pf: numericPF(113)},
	{format: FormatR32Float, pf: numericPF(114)},
	{format: FormatR32G32Float, pf: numericPF(115)},
	{format: FormatR32G32B32A32Float, pf: numericPF(116)},
}

// legacyFormat finds the Format for a pixel-format block without a DX10 header.
func legacyFormat(pf bcn.DDSPixelFormat, flags DDSFlags) (Format, ddsConv, bool) {
	for _, entry := range legacyDDSFormats {
		if !entry.matches(pf) {
			continue
		}

		f, conv := entry.format, entry.conv
		if flags&DDSFlagExpandLuminance != 0 && entry.expanded != FormatUnknown {
			f, conv = entry.expanded, entry.expandConv
		}
		if flags&DDSFlagNoR10B10G10A2Fixup != 0 {
			conv &^= convSwizzle10
		}

		return f, conv, true
	}

	return FormatUnknown, 0, false
}

func (e legacyDDSFormat) matches(pf bcn.DDSPixelFormat) bool {
	if e.pf.Flags&bcn.DDSPFFourCC != 0 {
		return pf.Flags&bcn.DDSPFFourCC != 0 && pf.FourCC == e.pf.FourCC
	}

	if pf.Flags&bcn.DDSPFFourCC != 0 || pf.Flags&e.pf.Flags&^bcn.DDSPFAlphaPixels == 0 {
		return false
	}

	return pf.RGBBitCount == e.pf.RGBBitCount &&
		pf.RBitMask == e.pf.RBitMask &&
		pf.GBitMask == e.pf.GBitMask &&
		pf.BBitMask == e.pf.BBitMask &&
		pf.ABitMask == e.pf.ABitMask
}

// legacyPixelFormat returns the legacy pixel-format block that describes f,
// or false when f needs the DX10 header.
func legacyPixelFormat(f Format, pmAlpha bool) (bcn.DDSPixelFormat, bool) {
	switch {
	case f == FormatBC2Unorm && pmAlpha:
		return fourCCPF('D', 'X', 'T', '2'), true
	case f == FormatBC3Unorm && pmAlpha:
		return fourCCPF('D', 'X', 'T', '4'), true
	case pmAlpha:
		return bcn.DDSPixelFormat{}, false
	}

	for _, entry := range legacyDDSFormats {
		if entry.format == f && entry.conv == 0 {
			return entry.pf, true
		}
	}

	return bcn.DDSPixelFormat{}, false
}
