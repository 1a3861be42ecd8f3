package dxtex

import (
	"encoding/binary"
	"fmt"
)

// LoadFromDDSMemory parses a DDS file and copies its pixels into a new
// ScratchImage, converting legacy layouts as requested by flags.
func LoadFromDDSMemory(data []byte, flags DDSFlags) (*ScratchImage, error) {
	info, err := decodeDDSHeader(data, flags)
	if err != nil {
		return nil, err
	}

	payload := data[info.headerLen:]
	pitchFlags := info.sourcePitchFlags(flags)

	_, need, err := layoutSize(info.meta, pitchFlags)
	if err != nil {
		return nil, err
	}
	if need > len(payload) {
		return nil, fmt.Errorf("%w: DDS payload needs %d bytes, have %d", ErrTruncated, need, len(payload))
	}

	img := &ScratchImage{}
	if err := img.Initialize(info.meta, CPFlagNone); err != nil {
		return nil, err
	}

	offset := 0

	for i := range img.subs {
		dst := img.image(i)
		row, slice, err := ComputePitch(dst.Format, dst.Width, dst.Height, pitchFlags)
		if err != nil {
			return nil, err
		}

		end, err := addSize(offset, slice)
		if err != nil {
			return nil, err
		}
		if end > len(payload) {
			return nil, fmt.Errorf("%w: image %d needs %d payload bytes, have %d", ErrTruncated, i, end, len(payload))
		}

		src := Image{
			Width:      dst.Width,
			Height:     dst.Height,
			Format:     dst.Format,
			RowPitch:   row,
			SlicePitch: slice,
			Pixels:     payload[offset:end],
		}
		if info.conv&^convPMAlpha == 0 {
			copyRows(dst, src)
		} else {
			convertImage(dst, src, info.conv)
		}

		offset = end
	}

	return img, nil
}

// sourcePitchFlags returns the pitch flags describing the file's row layout.
func (info ddsInfo) sourcePitchFlags(flags DDSFlags) CPFlags {
	var cp CPFlags
	if flags&DDSFlagLegacyDWORD != 0 {
		cp |= CPFlagLegacyDWORD
	}
	if flags&DDSFlagBadDXTnTails != 0 {
		cp |= CPFlagBadDXTnTails
	}

	switch {
	case info.conv&conv888 != 0:
		cp |= CPFlag24BPP
	case info.conv&(convA8L8|convL16|conv565|conv5551|conv4444) != 0:
		cp |= CPFlag16BPP
	case info.conv&convL8 != 0:
		cp |= CPFlag8BPP
	}

	return cp
}

// convertImage copies src into dst one scanline at a time applying conv.
func convertImage(dst, src Image, conv ddsConv) {
	for y := range ComputeScanlines(dst.Format, dst.Height) {
		s := src.Pixels[y*src.RowPitch:]
		d := dst.Pixels[y*dst.RowPitch : (y+1)*dst.RowPitch]
		convertRow(d, s, dst.Width, dst.Format, conv)
	}
}

// convertRow converts one scanline of width pixels.
func convertRow(dst, src []byte, width int, f Format, conv ddsConv) {
	le := binary.LittleEndian

	switch {
	case conv&conv888 != 0:
		for x := range width {
			b := src[x*3:]
			dst[x*4], dst[x*4+1], dst[x*4+2], dst[x*4+3] = b[2], b[1], b[0], 0xFF
		}

	case conv&convL8 != 0:
		for x := range width {
			l := src[x]
			dst[x*4], dst[x*4+1], dst[x*4+2], dst[x*4+3] = l, l, l, 0xFF
		}

	case conv&convA8L8 != 0:
		for x := range width {
			l, a := src[x*2], src[x*2+1]
			dst[x*4], dst[x*4+1], dst[x*4+2], dst[x*4+3] = l, l, l, a
		}

	case conv&convL16 != 0:
		for x := range width {
			l := le.Uint16(src[x*2:])
			d := dst[x*8:]
			le.PutUint16(d, l)
			le.PutUint16(d[2:], l)
			le.PutUint16(d[4:], l)
			le.PutUint16(d[6:], 0xFFFF)
		}

	case conv&conv565 != 0:
		for x := range width {
			v := le.Uint16(src[x*2:])
			r, g, b := byte(v>>11&0x1F), byte(v>>5&0x3F), byte(v&0x1F)
			dst[x*4], dst[x*4+1], dst[x*4+2], dst[x*4+3] = r<<3|r>>2, g<<2|g>>4, b<<3|b>>2, 0xFF
		}

	case conv&conv5551 != 0:
		for x := range width {
			v := le.Uint16(src[x*2:])
			r, g, b := byte(v>>10&0x1F), byte(v>>5&0x1F), byte(v&0x1F)
			a := byte(0)
			if v&0x8000 != 0 || conv&convNoAlpha != 0 {
				a = 0xFF
			}
			dst[x*4], dst[x*4+1], dst[x*4+2], dst[x*4+3] = r<<3|r>>2, g<<3|g>>2, b<<3|b>>2, a
		}

	case conv&conv4444 != 0:
		for x := range width {
			v := le.Uint16(src[x*2:])
			a := byte(v>>12&0xF) * 0x11
			if conv&convNoAlpha != 0 {
				a = 0xFF
			}
			dst[x*4], dst[x*4+1], dst[x*4+2], dst[x*4+3] = byte(v>>8&0xF)*0x11, byte(v>>4&0xF)*0x11, byte(v&0xF)*0x11, a
		}

	default:
		n := copy(dst, src)
		fixupRow(dst[:n], width, f, conv)
	}
}

// fixupRow applies in-place swizzles and alpha forcing to same-size pixels.
func fixupRow(row []byte, width int, f Format, conv ddsConv) {
	le := binary.LittleEndian
	bpp := f.BitsPerPixel() / 8

	for x := range width {
		if (x+1)*bpp > len(row) {
			return
		}
		px := row[x*bpp : (x+1)*bpp]

		if conv&convSwizzle != 0 && bpp == 4 {
			px[0], px[2] = px[2], px[0]
		}
		if conv&convSwizzle10 != 0 && bpp == 4 {
			v := le.Uint32(px)
			r, b := v&0x3FF, v>>20&0x3FF
			le.PutUint32(px, v&^(0x3FF|0x3FF<<20)|b|r<<20)
		}
		if conv&convNoAlpha != 0 {
			switch f {
			case FormatB5G5R5A1Unorm:
				px[1] |= 0x80
			case FormatB4G4R4A4Unorm:
				px[1] |= 0xF0
			default:
				if bpp == 4 {
					px[3] = 0xFF
				}
			}
		}
	}
}
