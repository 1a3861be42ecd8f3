package dxtex

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"
)

// TGAFlags controls TGA reading.
type TGAFlags uint32

const (
	// TGAFlagNone uses default behavior.
	TGAFlagNone TGAFlags = 0
	// TGAFlagBGR keeps BGR channel order (B8G8R8A8/B8G8R8X8) instead of swizzling to RGBA.
	TGAFlagBGR TGAFlags = 0x1
	// TGAFlagAllowAllZeroAlpha keeps an alpha channel that is zero everywhere.
	// By default such images are treated as opaque.
	TGAFlagAllowAllZeroAlpha TGAFlags = 0x2
	// TGAFlagIgnoreSRGB ignores the gamma recorded in the extension area.
	TGAFlagIgnoreSRGB TGAFlags = 0x10
	// TGAFlagForceSRGB always reports an sRGB format.
	TGAFlagForceSRGB TGAFlags = 0x20
	// TGAFlagForceLinear never reports an sRGB format.
	TGAFlagForceLinear TGAFlags = 0x40
	// TGAFlagDefaultSRGB assumes sRGB when the file has no gamma information.
	TGAFlagDefaultSRGB TGAFlags = 0x80
	// TGAFlagIgnoreOrigin reads rows top-down regardless of the descriptor.
	TGAFlagIgnoreOrigin TGAFlags = 0x100
	// TGAFlagExpandGrayscale expands 8-bit grayscale to R8G8B8A8.
	TGAFlagExpandGrayscale TGAFlags = 0x200
)

const (
	tgaHeaderSize    = 18
	tgaFooterSize    = 26
	tgaExtensionSize = 495

	tgaDescAlphaMask  = 0x0F
	tgaDescRightLeft  = 0x10
	tgaDescTopDown    = 0x20
	tgaDescInterleave = 0xC0

	tgaExtGammaOffset = 478
	tgaExtAlphaOffset = 494
)

var tgaSignature = []byte("TRUEVISION-XFILE.\x00")

// TGA image types.
const (
	tgaNoImage        = 0
	tgaColorMapped    = 1
	tgaTrueColor      = 2
	tgaGrayscale      = 3
	tgaColorMappedRLE = 9
	tgaTrueColorRLE   = 10
	tgaGrayscaleRLE   = 11
)

// tgaInfo is a decoded TGA header.
type tgaInfo struct {
	meta      TexMetadata
	offset    int // first pixel byte
	bpp       int // source bits per pixel
	rle       bool
	expand    bool
	alphaBits int
	rightLeft bool
	bottomUp  bool
	grayscale bool
}

// GetMetadataFromTGAMemory parses the header of a TGA file.
func GetMetadataFromTGAMemory(data []byte, flags TGAFlags) (TexMetadata, error) {
	info, err := decodeTGAHeader(data, flags)
	if err != nil {
		return TexMetadata{}, err
	}

	return info.meta, nil
}

func decodeTGAHeader(data []byte, flags TGAFlags) (tgaInfo, error) {
	if len(data) < tgaHeaderSize {
		return tgaInfo{}, fmt.Errorf("%w: TGA needs %d header bytes, have %d", ErrTruncated, tgaHeaderSize, len(data))
	}

	le := binary.LittleEndian
	idLength := int(data[0])
	colorMapType := data[1]
	imageType := data[2]
	width := int(le.Uint16(data[12:]))
	height := int(le.Uint16(data[14:]))
	bpp := int(data[16])
	desc := data[17]

	if colorMapType != 0 {
		return tgaInfo{}, fmt.Errorf("%w: color map type %d", ErrTGAImageType, colorMapType)
	}
	if desc&tgaDescInterleave != 0 {
		return tgaInfo{}, fmt.Errorf("%w: interleaved rows", ErrTGAImageType)
	}
	if width == 0 || height == 0 {
		return tgaInfo{}, fmt.Errorf("%w: %dx%d", ErrTGAHeader, width, height)
	}

	info := tgaInfo{
		offset:    tgaHeaderSize + idLength,
		bpp:       bpp,
		alphaBits: int(desc & tgaDescAlphaMask),
		rightLeft: desc&tgaDescRightLeft != 0,
		bottomUp:  desc&tgaDescTopDown == 0 && flags&TGAFlagIgnoreOrigin == 0,
	}
	meta := TexMetadata{
		Width:     width,
		Height:    height,
		Depth:     1,
		ArraySize: 1,
		MipLevels: 1,
		Dimension: Dimension2D,
	}

	switch imageType {
	case tgaTrueColor, tgaTrueColorRLE:
		info.rle = imageType == tgaTrueColorRLE
		switch bpp {
		case 15, 16:
			meta.Format = FormatB5G5R5A1Unorm
			if bpp == 15 || info.alphaBits == 0 {
				meta.AlphaMode = AlphaModeOpaque
			}
		case 24:
			meta.Format = FormatR8G8B8A8Unorm
			if flags&TGAFlagBGR != 0 {
				meta.Format = FormatB8G8R8X8Unorm
			}
			meta.AlphaMode = AlphaModeOpaque
			info.expand = true
		case 32:
			meta.Format = FormatR8G8B8A8Unorm
			if flags&TGAFlagBGR != 0 {
				meta.Format = FormatB8G8R8A8Unorm
			}
		default:
			return tgaInfo{}, fmt.Errorf("%w: %d bits per pixel", ErrTGAImageType, bpp)
		}

	case tgaGrayscale, tgaGrayscaleRLE:
		info.rle = imageType == tgaGrayscaleRLE
		info.grayscale = true
		if bpp != 8 {
			return tgaInfo{}, fmt.Errorf("%w: %d-bit grayscale", ErrTGAImageType, bpp)
		}
		meta.Format = FormatR8Unorm
		if flags&TGAFlagExpandGrayscale != 0 {
			meta.Format = FormatR8G8B8A8Unorm
			meta.AlphaMode = AlphaModeOpaque
			info.expand = true
		}

	case tgaNoImage, tgaColorMapped, tgaColorMappedRLE:
		return tgaInfo{}, fmt.Errorf("%w: image type %d", ErrTGAImageType, imageType)

	default:
		return tgaInfo{}, fmt.Errorf("%w: image type %d", ErrTGAHeader, imageType)
	}

	if info.offset > len(data) {
		return tgaInfo{}, fmt.Errorf("%w: TGA image ID", ErrTruncated)
	}

	srgb := flags&TGAFlagDefaultSRGB != 0
	if ext := tgaExtensionArea(data); ext != nil {
		if mode, ok := tgaAlphaMode(ext[tgaExtAlphaOffset]); ok {
			meta.AlphaMode = mode
		}
		if gamma, ok := tgaGamma(ext); ok {
			srgb = math.Abs(gamma-2.2) < 0.01 || math.Abs(gamma-2.4) < 0.01
		}
	}

	switch {
	case flags&TGAFlagForceLinear != 0:
		// keep the linear format
	case flags&TGAFlagForceSRGB != 0:
		meta.Format = meta.Format.MakeSRGB()
	case srgb && flags&TGAFlagIgnoreSRGB == 0:
		meta.Format = meta.Format.MakeSRGB()
	}

	info.meta = meta
	return info, nil
}

// tgaExtensionArea returns the TGA 2.0 extension area, or nil when the
// file has no valid footer.
func tgaExtensionArea(data []byte) []byte {
	if len(data) < tgaHeaderSize+tgaFooterSize {
		return nil
	}

	footer := data[len(data)-tgaFooterSize:]
	if !bytes.Equal(footer[8:], tgaSignature) {
		return nil
	}

	off := int(binary.LittleEndian.Uint32(footer))
	if off < tgaHeaderSize || off > len(data)-tgaFooterSize-tgaExtensionSize {
		return nil
	}

	ext := data[off : off+tgaExtensionSize]
	if binary.LittleEndian.Uint16(ext) != tgaExtensionSize {
		return nil
	}

	return ext
}

func tgaAlphaMode(attr byte) (AlphaMode, bool) {
	switch attr {
	case 0:
		return AlphaModeOpaque, true
	case 3:
		return AlphaModeStraight, true
	case 4:
		return AlphaModePremultiplied, true
	default:
		return AlphaModeUnknown, false
	}
}

func tgaGamma(ext []byte) (float64, bool) {
	num := binary.LittleEndian.Uint16(ext[tgaExtGammaOffset:])
	den := binary.LittleEndian.Uint16(ext[tgaExtGammaOffset+2:])
	if num == 0 || den == 0 {
		return 0, false
	}

	return float64(num) / float64(den), true
}
