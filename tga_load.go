package dxtex

import "fmt"

// LoadFromTGAMemory parses a TGA file and decodes its pixels into a new
// ScratchImage.
func LoadFromTGAMemory(data []byte, flags TGAFlags) (*ScratchImage, error) {
	info, err := decodeTGAHeader(data, flags)
	if err != nil {
		return nil, err
	}

	img := &ScratchImage{}
	if err := img.Initialize(info.meta, CPFlagNone); err != nil {
		return nil, err
	}

	dst := img.image(0)
	src := &tgaPixelReader{data: data[info.offset:], size: (info.bpp + 7) / 8, rle: info.rle}
	w, h := dst.Width, dst.Height
	bpp := dst.Format.BitsPerPixel() / 8
	bgr := flags&TGAFlagBGR != 0

	for y := range h {
		row := y
		if info.bottomUp {
			row = h - 1 - y
		}
		line := dst.Pixels[row*dst.RowPitch:]

		for x := range w {
			px, err := src.next()
			if err != nil {
				return nil, fmt.Errorf("%w: pixel (%d,%d)", err, x, y)
			}

			col := x
			if info.rightLeft {
				col = w - 1 - x
			}
			info.storePixel(line[col*bpp:col*bpp+bpp], px, bgr)
		}
	}

	if info.meta.Format.HasAlpha() && flags&TGAFlagAllowAllZeroAlpha == 0 && !info.meta.IsPMAlpha() {
		if forceOpaqueIfZeroAlpha(dst) {
			img.meta.AlphaMode = AlphaModeOpaque
		}
	}

	return img, nil
}

// storePixel converts one source pixel into the destination layout.
func (info tgaInfo) storePixel(dst, px []byte, bgr bool) {
	switch {
	case info.grayscale && info.expand:
		dst[0], dst[1], dst[2], dst[3] = px[0], px[0], px[0], 0xFF

	case info.grayscale:
		dst[0] = px[0]

	case info.bpp == 15 || info.bpp == 16:
		dst[0], dst[1] = px[0], px[1]
		if info.bpp == 15 || info.alphaBits == 0 {
			dst[1] |= 0x80
		}

	case info.bpp == 24 && bgr:
		dst[0], dst[1], dst[2], dst[3] = px[0], px[1], px[2], 0xFF

	case info.bpp == 24:
		dst[0], dst[1], dst[2], dst[3] = px[2], px[1], px[0], 0xFF

	case bgr:
		copy(dst, px[:4])

	default:
		dst[0], dst[1], dst[2], dst[3] = px[2], px[1], px[0], px[3]
	}
}

// forceOpaqueIfZeroAlpha sets alpha to opaque when every pixel of img has
// zero alpha. It reports whether it did.
func forceOpaqueIfZeroAlpha(img Image) bool {
	var mask [2]byte
	bpp := 4
	switch img.Format.MakeLinear() {
	case FormatB5G5R5A1Unorm:
		mask, bpp = [2]byte{1, 0x80}, 2
	case FormatR8G8B8A8Unorm, FormatB8G8R8A8Unorm:
		mask = [2]byte{3, 0xFF}
	default:
		return false
	}

	for y := range img.Height {
		line := img.Pixels[y*img.RowPitch:]
		for x := range img.Width {
			if line[x*bpp+int(mask[0])]&mask[1] != 0 {
				return false
			}
		}
	}

	for y := range img.Height {
		line := img.Pixels[y*img.RowPitch:]
		for x := range img.Width {
			line[x*bpp+int(mask[0])] |= mask[1]
		}
	}

	return true
}

// tgaPixelReader yields source pixels from a raw or run-length stream.
type tgaPixelReader struct {
	data   []byte
	pos    int
	size   int
	rle    bool
	repeat int  // pixels left in the current packet
	run    bool // current packet repeats one pixel
	last   []byte
}

func (r *tgaPixelReader) next() ([]byte, error) {
	if !r.rle {
		return r.take()
	}

	if r.repeat == 0 {
		if r.pos >= len(r.data) {
			return nil, fmt.Errorf("%w: missing packet header", ErrTGARLE)
		}
		hdr := r.data[r.pos]
		r.pos++
		r.repeat = int(hdr&0x7F) + 1
		r.run = hdr&0x80 != 0
		if r.run {
			px, err := r.take()
			if err != nil {
				return nil, fmt.Errorf("%w: %v", ErrTGARLE, err)
			}
			r.last = px
		}
	}

	r.repeat--
	if r.run {
		return r.last, nil
	}

	px, err := r.take()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTGARLE, err)
	}

	return px, nil
}

func (r *tgaPixelReader) take() ([]byte, error) {
	if r.pos+r.size > len(r.data) {
		return nil, ErrTruncated
	}

	px := r.data[r.pos : r.pos+r.size]
	r.pos += r.size
	return px, nil
}
