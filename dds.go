package dxtex

import (
	"bytes"
	"fmt"

	"github.com/woozymasta/bcn"
)

// DDSFlags controls DDS reading and writing.
type DDSFlags uint32

const (
	// DDSFlagNone uses default behavior.
	DDSFlagNone DDSFlags = 0
	// DDSFlagLegacyDWORD reads rows padded to 4 bytes, as old writers produced.
	DDSFlagLegacyDWORD DDSFlags = 0x1
	// DDSFlagNoLegacyExpansion fails on legacy layouts that need pixel expansion.
	DDSFlagNoLegacyExpansion DDSFlags = 0x2
	// DDSFlagNoR10B10G10A2Fixup takes B10G10R10A2 masks at face value
	// instead of swapping red and blue.
	DDSFlagNoR10B10G10A2Fixup DDSFlags = 0x4
	// DDSFlagForceRGB converts BGR formats to their RGB equivalents on load.
	DDSFlagForceRGB DDSFlags = 0x8
	// DDSFlagNo16BPP expands 565, 5551 and 4444 formats to R8G8B8A8 on load.
	DDSFlagNo16BPP DDSFlags = 0x10
	// DDSFlagExpandLuminance expands L8, A8L8 and L16 to RGBA on load.
	DDSFlagExpandLuminance DDSFlags = 0x20
	// DDSFlagBadDXTnTails reads BC mip tails sized by truncated block counts.
	DDSFlagBadDXTnTails DDSFlags = 0x40
	// DDSFlagForceDX10Ext always writes the DX10 extension header.
	DDSFlagForceDX10Ext DDSFlags = 0x10000
	// DDSFlagForceDX10ExtMisc2 writes the DX10 header including the alpha mode.
	DDSFlagForceDX10ExtMisc2 DDSFlags = 0x20000
)

const (
	ddsDX10HeaderSize = 20

	ddsCaps2CubemapAllFaces = 0xFE00
	ddsCaps2Volume          = 0x200000

	ddsMiscFlags2AlphaModeMask = 0x7
)

// DDSMetaData is the legacy pixel-format block of a DDS header.
type DDSMetaData struct {
	Size        uint32
	Flags       uint32
	FourCC      uint32
	RGBBitCount uint32
	RBitMask    uint32
	GBitMask    uint32
	BBitMask    uint32
	ABitMask    uint32
}

// IsDX10 reports whether the file carries a DX10 extension header.
func (d DDSMetaData) IsDX10() bool {
	return d.Flags&bcn.DDSPFFourCC != 0 && d.FourCC == bcn.DDSFourCCDX10
}

// ddsInfo is a decoded DDS header.
type ddsInfo struct {
	meta      TexMetadata
	pf        DDSMetaData
	conv      ddsConv
	headerLen int
}

// GetMetadataFromDDSMemory parses the header of a DDS file.
func GetMetadataFromDDSMemory(data []byte, flags DDSFlags) (TexMetadata, error) {
	meta, _, err := GetMetadataFromDDSMemoryEx(data, flags)
	return meta, err
}

// GetMetadataFromDDSMemoryEx parses the header of a DDS file and also
// returns its legacy pixel-format block.
func GetMetadataFromDDSMemoryEx(data []byte, flags DDSFlags) (TexMetadata, DDSMetaData, error) {
	info, err := decodeDDSHeader(data, flags)
	if err != nil {
		return TexMetadata{}, DDSMetaData{}, err
	}

	return info.meta, info.pf, nil
}

// decodeDDSHeader validates the magic and headers and derives the texture shape.
func decodeDDSHeader(data []byte, flags DDSFlags) (ddsInfo, error) {
	if len(data) < 4+bcn.DDSHeaderSize {
		return ddsInfo{}, fmt.Errorf("%w: DDS needs %d header bytes, have %d", ErrTruncated, 4+bcn.DDSHeaderSize, len(data))
	}

	r := bytes.NewReader(data)
	hdr, err := bcn.ReadDDSHeader(r)
	if err != nil {
		return ddsInfo{}, fmt.Errorf("%w: %v", ErrDDSHeaderRead, err)
	}

	info := ddsInfo{
		pf:        DDSMetaData(hdr.PixelFormat),
		headerLen: 4 + bcn.DDSHeaderSize,
	}

	var meta TexMetadata
	if info.pf.IsDX10() {
		if len(data) < info.headerLen+ddsDX10HeaderSize {
			return ddsInfo{}, fmt.Errorf("%w: DX10 header", ErrTruncated)
		}
		dx10, err := bcn.ReadDDSHeaderDX10(r, hdr)
		if err != nil {
			return ddsInfo{}, fmt.Errorf("%w: %v", ErrDDSDX10Read, err)
		}
		info.headerLen += ddsDX10HeaderSize

		if meta, err = dx10Metadata(hdr, dx10); err != nil {
			return ddsInfo{}, err
		}
	} else {
		var conv ddsConv
		if meta, conv, err = legacyMetadata(hdr, flags); err != nil {
			return ddsInfo{}, err
		}
		info.conv = conv
	}

	meta.MipLevels = max(1, int(hdr.MipMapCount))
	meta.Format, info.conv = applyLoadFlags(meta.Format, info.conv, flags)

	if info.conv&convExpand != 0 && flags&DDSFlagNoLegacyExpansion != 0 {
		return ddsInfo{}, fmt.Errorf("%w: %s", ErrLegacyExpansion, meta.Format)
	}
	if err := meta.Validate(); err != nil {
		return ddsInfo{}, fmt.Errorf("%w: %v", ErrDDSInvalidHeader, err)
	}

	info.meta = meta
	return info, nil
}

// dx10Metadata reads the shape from a DX10 extension header.
func dx10Metadata(hdr *bcn.DDSHeader, dx10 *bcn.DDSHeaderDX10) (TexMetadata, error) {
	meta := TexMetadata{
		Width:     int(hdr.Width),
		Height:    1,
		Depth:     1,
		ArraySize: int(dx10.ArraySize),
		Format:    Format(dx10.DXGIFormat),
		Dimension: Dimension(dx10.ResourceDimension),
		AlphaMode: AlphaMode(dx10.MiscFlags2 & ddsMiscFlags2AlphaModeMask),
	}

	if meta.ArraySize == 0 {
		return TexMetadata{}, fmt.Errorf("%w: DX10 array size 0", ErrDDSInvalidHeader)
	}
	if !meta.Format.IsValid() || meta.Format.IsPalettized() {
		return TexMetadata{}, fmt.Errorf("%w: DXGI format %d", ErrUnknownDDSFormat, dx10.DXGIFormat)
	}

	switch meta.Dimension {
	case Dimension1D:
		if hdr.Flags&bcn.DDSFlagHeight != 0 && hdr.Height != 1 {
			return TexMetadata{}, fmt.Errorf("%w: 1D texture with height %d", ErrDDSInvalidHeader, hdr.Height)
		}

	case Dimension2D:
		meta.Height = int(hdr.Height)
		if dx10.MiscFlag&uint32(MiscTextureCube) != 0 {
			meta.MiscFlags |= MiscTextureCube
			meta.ArraySize *= 6
		}

	case Dimension3D:
		if hdr.Flags&bcn.DDSFlagDepth == 0 {
			return TexMetadata{}, fmt.Errorf("%w: volume without depth flag", ErrDDSInvalidHeader)
		}
		if meta.ArraySize > 1 {
			return TexMetadata{}, fmt.Errorf("%w: volume array size %d", ErrDDSInvalidHeader, meta.ArraySize)
		}
		meta.Height = int(hdr.Height)
		meta.Depth = int(hdr.Depth)

	default:
		return TexMetadata{}, fmt.Errorf("%w: resource dimension %d", ErrDDSInvalidHeader, dx10.ResourceDimension)
	}

	return meta, nil
}

// legacyMetadata reads the shape from a header without the DX10 extension.
func legacyMetadata(hdr *bcn.DDSHeader, flags DDSFlags) (TexMetadata, ddsConv, error) {
	meta := TexMetadata{
		Width:     int(hdr.Width),
		Height:    int(hdr.Height),
		Depth:     1,
		ArraySize: 1,
		Dimension: Dimension2D,
	}

	switch {
	case hdr.Flags&bcn.DDSFlagDepth != 0 || hdr.Caps2&ddsCaps2Volume != 0:
		meta.Depth = int(hdr.Depth)
		meta.Dimension = Dimension3D

	case hdr.Caps2&bcn.DDSCaps2Cubemap != 0:
		if hdr.Caps2&ddsCaps2CubemapAllFaces != ddsCaps2CubemapAllFaces {
			return TexMetadata{}, 0, fmt.Errorf("%w: caps2 0x%x", ErrPartialCubemap, hdr.Caps2)
		}
		meta.ArraySize = 6
		meta.MiscFlags |= MiscTextureCube
	}

	f, conv, ok := legacyFormat(hdr.PixelFormat, flags)
	if !ok {
		return TexMetadata{}, 0, fmt.Errorf("%w: flags 0x%x fourcc %q bits %d",
			ErrUnknownDDSFormat, hdr.PixelFormat.Flags, fourCCString(hdr.PixelFormat.FourCC), hdr.PixelFormat.RGBBitCount)
	}

	meta.Format = f
	if conv&convPMAlpha != 0 {
		meta.AlphaMode = AlphaModePremultiplied
	}

	Logger().Debug("legacy DDS pixel format mapped",
		"fourcc", fourCCString(hdr.PixelFormat.FourCC),
		"bits", hdr.PixelFormat.RGBBitCount,
		"format", f.String(),
		"expand", conv&convExpand != 0,
	)

	return meta, conv, nil
}

// applyLoadFlags rewrites formats that DDSFlagForceRGB and DDSFlagNo16BPP convert.
func applyLoadFlags(f Format, conv ddsConv, flags DDSFlags) (Format, ddsConv) {
	if flags&DDSFlagForceRGB != 0 {
		switch f {
		case FormatB8G8R8A8Unorm:
			return FormatR8G8B8A8Unorm, conv | convSwizzle
		case FormatB8G8R8A8UnormSRGB:
			return FormatR8G8B8A8UnormSRGB, conv | convSwizzle
		case FormatB8G8R8A8Typeless:
			return FormatR8G8B8A8Typeless, conv | convSwizzle
		case FormatB8G8R8X8Unorm:
			return FormatR8G8B8A8Unorm, conv | convSwizzle | convNoAlpha
		case FormatB8G8R8X8UnormSRGB:
			return FormatR8G8B8A8UnormSRGB, conv | convSwizzle | convNoAlpha
		case FormatB8G8R8X8Typeless:
			return FormatR8G8B8A8Typeless, conv | convSwizzle | convNoAlpha
		}
	}

	if flags&DDSFlagNo16BPP != 0 {
		switch f {
		case FormatB5G6R5Unorm:
			return FormatR8G8B8A8Unorm, conv | convExpand | conv565
		case FormatB5G5R5A1Unorm:
			return FormatR8G8B8A8Unorm, conv | convExpand | conv5551
		case FormatB4G4R4A4Unorm:
			return FormatR8G8B8A8Unorm, conv | convExpand | conv4444
		}
	}

	return f, conv
}

// fourCCString renders a FourCC code as text.
func fourCCString(value uint32) string {
	return string([]byte{
		byte(value & 0xff),
		byte((value >> 8) & 0xff),
		byte((value >> 16) & 0xff),
		byte((value >> 24) & 0xff),
	})
}

// makeFourCC packs four characters into a FourCC code.
func makeFourCC(a, b, c, d byte) uint32 {
	return uint32(a) | uint32(b)<<8 | uint32(c)<<16 | uint32(d)<<24
}
