package dxtex

import "fmt"

// CPFlags controls pitch computation and container allocation.
type CPFlags uint32

const (
	// CPFlagNone uses tightly packed byte rows.
	CPFlagNone CPFlags = 0
	// CPFlagLegacyDWORD aligns rows to 4 bytes (legacy DDS writers).
	CPFlagLegacyDWORD CPFlags = 0x1
	// CPFlagParagraph aligns rows to 16 bytes.
	CPFlagParagraph CPFlags = 0x2
	// CPFlagYMM aligns rows to 32 bytes.
	CPFlagYMM CPFlags = 0x4
	// CPFlagZMM aligns rows to 64 bytes.
	CPFlagZMM CPFlags = 0x8
	// CPFlagPage4K aligns rows to 4096 bytes.
	CPFlagPage4K CPFlags = 0x200
	// CPFlagBadDXTnTails truncates BC block counts like some legacy writers.
	CPFlagBadDXTnTails CPFlags = 0x1000
	// CPFlag24BPP overrides bits per pixel with 24.
	CPFlag24BPP CPFlags = 0x10000
	// CPFlag16BPP overrides bits per pixel with 16.
	CPFlag16BPP CPFlags = 0x20000
	// CPFlag8BPP overrides bits per pixel with 8.
	CPFlag8BPP CPFlags = 0x40000
	// CPFlagZeroMemory requests zeroed pixels. Allocations are always
	// zeroed, so the flag is accepted for parity only.
	CPFlagZeroMemory CPFlags = 0x80000
)

// ComputePitch returns the row and slice pitch in bytes of a width×height
// image of format f.
func ComputePitch(f Format, width, height int, flags CPFlags) (rowPitch, slicePitch int, err error) {
	if width < 0 || height < 0 {
		return 0, 0, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}

	var pitch, slice uint64
	var ok bool
	w, h := uint64(width), uint64(height)

	switch f {
	case FormatBC1Typeless, FormatBC1Unorm, FormatBC1UnormSRGB,
		FormatBC4Typeless, FormatBC4Unorm, FormatBC4Snorm:
		pitch, slice, ok = blockPitch(w, h, 8, flags)

	case FormatBC2Typeless, FormatBC2Unorm, FormatBC2UnormSRGB,
		FormatBC3Typeless, FormatBC3Unorm, FormatBC3UnormSRGB,
		FormatBC5Typeless, FormatBC5Unorm, FormatBC5Snorm,
		FormatBC6HTypeless, FormatBC6HUF16, FormatBC6HSF16,
		FormatBC7Typeless, FormatBC7Unorm, FormatBC7UnormSRGB:
		pitch, slice, ok = blockPitch(w, h, 16, flags)

	case FormatR8G8B8G8Unorm, FormatG8R8G8B8Unorm, FormatYUY2:
		pitch, ok = mul64((w+1)>>1, 4)
		slice, ok = mul64ok(pitch, h, ok)

	case FormatY210, FormatY216:
		pitch, ok = mul64((w+1)>>1, 8)
		slice, ok = mul64ok(pitch, h, ok)

	case FormatNV12, FormatOpaque420:
		if height%2 != 0 {
			return 0, 0, fmt.Errorf("%w: %s requires even height, got %d", ErrInvalidDimensions, f, height)
		}
		pitch, ok = mul64((w+1)>>1, 2)
		slice, ok = mul64ok(pitch, h+((h+1)>>1), ok)

	case FormatP010, FormatP016:
		if height%2 != 0 {
			return 0, 0, fmt.Errorf("%w: %s requires even height, got %d", ErrInvalidDimensions, f, height)
		}
		pitch, ok = mul64((w+1)>>1, 4)
		slice, ok = mul64ok(pitch, h+((h+1)>>1), ok)

	case FormatNV11:
		// Chroma plane is sized like 4:2:2; the 4:1:1 data fits inside it.
		pitch, ok = mul64((w+3)>>2, 4)
		slice, ok = mul64ok(pitch, h*2, ok && h <= maxUint64/2)

	case FormatP208:
		pitch, ok = mul64((w+1)>>1, 2)
		slice, ok = mul64ok(pitch, h*2, ok && h <= maxUint64/2)

	case FormatV208:
		if height%2 != 0 {
			return 0, 0, fmt.Errorf("%w: %s requires even height, got %d", ErrInvalidDimensions, f, height)
		}
		pitch, ok = w, true
		slice, ok = mul64ok(pitch, h+(((h+1)>>1)*2), ok)

	case FormatV408:
		pitch, ok = w, true
		slice, ok = mul64ok(pitch, h+((h>>1)*4), ok)

	default:
		bpp := uint64(f.BitsPerPixel())
		if bpp == 0 {
			return 0, 0, fmt.Errorf("%w: %s", ErrInvalidFormat, f)
		}
		switch {
		case flags&CPFlag24BPP != 0:
			bpp = 24
		case flags&CPFlag16BPP != 0:
			bpp = 16
		case flags&CPFlag8BPP != 0:
			bpp = 8
		}
		pitch, ok = alignedRowPitch(w, bpp, flags)
		slice, ok = mul64ok(pitch, h, ok)
	}

	if !ok || pitch > uint64(maxInt) || slice > uint64(maxInt) {
		return 0, 0, fmt.Errorf("%w: %s %dx%d", ErrArithmeticOverflow, f, width, height)
	}

	return int(pitch), int(slice), nil
}

// ComputeScanlines returns the number of pitch rows in an image of the
// given height: block rows for BC formats, summed plane rows for planar
// formats, height otherwise.
func ComputeScanlines(f Format, height int) int {
	if height < 0 {
		return 0
	}

	switch {
	case f.IsCompressed():
		return max(1, (height+3)/4)
	}

	switch f {
	case FormatNV11, FormatP208:
		return height * 2
	case FormatV208:
		return height + ((height+1)>>1)*2
	case FormatV408:
		return height + (height>>1)*4
	case FormatNV12, FormatP010, FormatP016, FormatOpaque420:
		return height + ((height + 1) >> 1)
	default:
		return height
	}
}

const maxUint64 = ^uint64(0)

func blockPitch(w, h, blockBytes uint64, flags CPFlags) (pitch, slice uint64, ok bool) {
	var nbw, nbh uint64
	if flags&CPFlagBadDXTnTails != 0 {
		nbw, nbh = w>>2, h>>2
		pitch, ok = mul64(nbw, blockBytes)
		pitch = max(1, pitch)
		slice, ok = mul64ok(pitch, nbh, ok)
		return pitch, max(1, slice), ok
	}

	nbw = max(1, (w+3)/4)
	nbh = max(1, (h+3)/4)
	pitch, ok = mul64(nbw, blockBytes)
	slice, ok = mul64ok(pitch, nbh, ok)

	return pitch, slice, ok
}

func alignedRowPitch(w, bpp uint64, flags CPFlags) (uint64, bool) {
	bits, ok := mul64(w, bpp)
	if !ok || bits > maxUint64-4095*8 {
		return 0, false
	}

	switch {
	case flags&CPFlagPage4K != 0:
		return ((bits + 32767) / 32768) * 4096, true
	case flags&CPFlagZMM != 0:
		return ((bits + 511) / 512) * 64, true
	case flags&CPFlagYMM != 0:
		return ((bits + 255) / 256) * 32, true
	case flags&CPFlagParagraph != 0:
		return ((bits + 127) / 128) * 16, true
	case flags&CPFlagLegacyDWORD != 0:
		return ((bits + 31) / 32) * 4, true
	default:
		return (bits + 7) / 8, true
	}
}

func mul64(a, b uint64) (uint64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	if a > maxUint64/b {
		return 0, false
	}

	return a * b, true
}

func mul64ok(a, b uint64, ok bool) (uint64, bool) {
	if !ok {
		return 0, false
	}

	return mul64(a, b)
}
