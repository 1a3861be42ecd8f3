package dxtex

import (
	"encoding/binary"
	"math"

	"github.com/woozymasta/bcn"
	"github.com/x448/float16"
)

// IsAlphaAllOpaque reports whether every pixel of every subresource has a
// fully opaque alpha value.
//
// Formats without alpha report true. Uncompressed RGBA, BGRA, A8, packed
// alpha and AYUV/Y410/Y416 layouts are decoded per pixel; BC1-BC3 are
// block-decoded. Typeless formats are read through their UNORM (else
// FLOAT) variant. Formats with alpha but no decoder here (BC7, typeless
// formats without a variant) report false. An empty container reports false.
func (s *ScratchImage) IsAlphaAllOpaque() bool {
	if len(s.subs) == 0 {
		return false
	}

	f := s.meta.Format
	if !f.HasAlpha() {
		return true
	}
	if f.IsTypeless(false) {
		switch {
		case f.MakeTypelessUNORM() != f:
			f = f.MakeTypelessUNORM()
		case f.MakeTypelessFLOAT() != f:
			f = f.MakeTypelessFLOAT()
		default:
			return false
		}
	}

	for i := range s.subs {
		img := s.image(i)
		img.Format = f
		if !imageAlphaOpaque(img) {
			return false
		}
	}

	return true
}

// imageAlphaOpaque scans one image. It reports false for undecodable formats.
func imageAlphaOpaque(img Image) bool {
	switch img.Format {
	case FormatBC1Unorm, FormatBC1UnormSRGB:
		return blockAlphaOpaque(img, bcn.FormatDXT1)
	case FormatBC2Unorm, FormatBC2UnormSRGB:
		return blockAlphaOpaque(img, bcn.FormatDXT3)
	case FormatBC3Unorm, FormatBC3UnormSRGB:
		return blockAlphaOpaque(img, bcn.FormatDXT5)
	}

	opaque := pixelAlphaTest(img.Format)
	if opaque == nil {
		return false
	}

	size := img.Format.BitsPerPixel() / 8
	for y := range img.Height {
		row := img.Pixels[y*img.RowPitch:]
		for x := range img.Width {
			if !opaque(row[x*size : x*size+size]) {
				return false
			}
		}
	}

	return true
}

// pixelAlphaTest returns a predicate over one little-endian pixel, or nil
// when the layout is not decoded here.
func pixelAlphaTest(f Format) func(px []byte) bool {
	switch f {
	case FormatR32G32B32A32Float:
		return func(px []byte) bool {
			return math.Float32frombits(binary.LittleEndian.Uint32(px[12:])) >= 1
		}
	case FormatR32G32B32A32Uint:
		return func(px []byte) bool { return binary.LittleEndian.Uint32(px[12:]) == math.MaxUint32 }
	case FormatR32G32B32A32Sint:
		return func(px []byte) bool { return binary.LittleEndian.Uint32(px[12:]) == math.MaxInt32 }

	case FormatR16G16B16A16Float:
		return func(px []byte) bool {
			return float16.Frombits(binary.LittleEndian.Uint16(px[6:])).Float32() >= 1
		}
	case FormatR16G16B16A16Unorm, FormatR16G16B16A16Uint, FormatY416:
		return func(px []byte) bool { return binary.LittleEndian.Uint16(px[6:]) == math.MaxUint16 }
	case FormatR16G16B16A16Snorm, FormatR16G16B16A16Sint:
		return func(px []byte) bool { return binary.LittleEndian.Uint16(px[6:]) == math.MaxInt16 }

	case FormatR10G10B10A2Unorm, FormatR10G10B10A2Uint, FormatR10G10B10XRBiasA2Unorm, FormatY410:
		return func(px []byte) bool { return px[3]>>6 == 3 }

	case FormatR8G8B8A8Unorm, FormatR8G8B8A8UnormSRGB, FormatR8G8B8A8Uint,
		FormatB8G8R8A8Unorm, FormatB8G8R8A8UnormSRGB, FormatAYUV:
		return func(px []byte) bool { return px[3] == 0xFF }
	case FormatR8G8B8A8Snorm, FormatR8G8B8A8Sint:
		return func(px []byte) bool { return px[3] == 0x7F }

	case FormatA8Unorm:
		return func(px []byte) bool { return px[0] == 0xFF }
	case FormatB5G5R5A1Unorm:
		return func(px []byte) bool { return px[1]&0x80 != 0 }
	case FormatB4G4R4A4Unorm:
		return func(px []byte) bool { return px[1]&0xF0 == 0xF0 }
	case FormatA4B4G4R4Unorm:
		return func(px []byte) bool { return px[0]&0x0F == 0x0F }

	default:
		return nil
	}
}

// blockAlphaOpaque decodes a BC1-BC3 image and checks every alpha byte.
func blockAlphaOpaque(img Image, f bcn.Format) bool {
	decoded, err := bcn.DecodeImageWithOptions(img.Pixels, img.Width, img.Height, f, &bcn.DecodeOptions{Workers: 1})
	if err != nil {
		Logger().Debug("alpha scan decode failed", "format", img.Format.String(), "error", err)
		return false
	}

	for i := 3; i < len(decoded.Pix); i += 4 {
		if decoded.Pix[i] != 0xFF {
			return false
		}
	}

	return true
}
