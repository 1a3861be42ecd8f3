package dxtex

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/woozymasta/bcn"
)

// SaveToDDSMemory serializes img as a DDS file. Formats expressible with a
// legacy pixel-format block are written without the DX10 header unless
// flags force it; rows are written tightly packed.
func SaveToDDSMemory(img *ScratchImage, flags DDSFlags) (*Blob, error) {
	if img == nil || img.ImageCount() == 0 {
		return nil, ErrEmptyContainer
	}

	meta := img.Metadata()
	hdr, dx10, err := encodeDDSHeader(meta, flags)
	if err != nil {
		return nil, err
	}

	var head bytes.Buffer
	if err := bcn.WriteDDSMagic(&head); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidArgument, err)
	}
	if err := bcn.WriteDDSHeader(&head, hdr); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidArgument, err)
	}
	if dx10 != nil {
		if err := binary.Write(&head, binary.LittleEndian, dx10); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidArgument, err)
		}
	}

	images := img.Images()
	packed := make([]Image, len(images))
	total := head.Len()
	for i, src := range images {
		row, slice, err := ComputePitch(src.Format, src.Width, src.Height, CPFlagNone)
		if err != nil {
			return nil, err
		}
		packed[i] = Image{Width: src.Width, Height: src.Height, Format: src.Format, RowPitch: row, SlicePitch: slice}
		if total, err = addSize(total, slice); err != nil {
			return nil, err
		}
	}

	blob := &Blob{}
	if err := blob.Initialize(total); err != nil {
		return nil, err
	}

	out := blob.Bytes()
	offset := copy(out, head.Bytes())
	for i, src := range images {
		dst := packed[i]
		dst.Pixels = out[offset : offset+dst.SlicePitch]
		copyRows(dst, src)
		offset += dst.SlicePitch
	}

	return blob, nil
}

// encodeDDSHeader builds the DDS header for meta, plus the DX10 extension when needed.
func encodeDDSHeader(meta TexMetadata, flags DDSFlags) (*bcn.DDSHeader, *bcn.DDSHeaderDX10, error) {
	if err := meta.Validate(); err != nil {
		return nil, nil, err
	}

	width, err := u32FromInt(meta.Width)
	if err != nil {
		return nil, nil, err
	}
	height, err := u32FromInt(meta.Height)
	if err != nil {
		return nil, nil, err
	}
	depth, err := u32FromInt(meta.Depth)
	if err != nil {
		return nil, nil, err
	}
	mips, err := u32FromInt(meta.MipLevels)
	if err != nil {
		return nil, nil, err
	}

	hdr := &bcn.DDSHeader{
		Size:        bcn.DDSHeaderSize,
		Flags:       bcn.DDSFlagCaps | bcn.DDSFlagHeight | bcn.DDSFlagWidth | bcn.DDSFlagPixelFormat | bcn.DDSFlagMipmapCount,
		Height:      height,
		Width:       width,
		MipMapCount: mips,
		Caps:        bcn.DDSCapsTexture,
	}
	if mips > 1 {
		hdr.Caps |= bcn.DDSCapsComplex | bcn.DDSCapsMipmap
	}

	switch meta.Dimension {
	case Dimension3D:
		hdr.Flags |= bcn.DDSFlagDepth
		hdr.Depth = depth
		hdr.Caps |= bcn.DDSCapsComplex
		hdr.Caps2 = ddsCaps2Volume
	case Dimension2D:
		if meta.IsCubemap() {
			hdr.Caps |= bcn.DDSCapsComplex
			hdr.Caps2 = ddsCaps2CubemapAllFaces
		}
	}

	row, slice, err := ComputePitch(meta.Format, meta.Width, meta.Height, CPFlagNone)
	if err != nil {
		return nil, nil, err
	}
	if meta.Format.IsCompressed() {
		hdr.Flags |= bcn.DDSFlagLinearSize
		if hdr.PitchOrLinearSize, err = u32FromInt(slice); err != nil {
			return nil, nil, err
		}
	} else {
		hdr.Flags |= bcn.DDSFlagPitch
		if hdr.PitchOrLinearSize, err = u32FromInt(row); err != nil {
			return nil, nil, err
		}
	}

	pf, legacy := legacyPixelFormat(meta.Format, meta.IsPMAlpha())
	needDX10 := !legacy ||
		flags&(DDSFlagForceDX10Ext|DDSFlagForceDX10ExtMisc2) != 0 ||
		meta.Dimension == Dimension1D ||
		(meta.ArraySize > 1 && !(meta.IsCubemap() && meta.ArraySize == 6))

	if !needDX10 {
		hdr.PixelFormat = pf
		hdr.PixelFormat.Size = bcn.DDSPixelFormatSize
		return hdr, nil, nil
	}

	hdr.PixelFormat = bcn.DDSPixelFormat{Size: bcn.DDSPixelFormatSize, Flags: bcn.DDSPFFourCC, FourCC: bcn.DDSFourCCDX10}

	arraySize := meta.ArraySize
	dx10 := &bcn.DDSHeaderDX10{
		DXGIFormat:        uint32(meta.Format),
		ResourceDimension: uint32(meta.Dimension),
	}
	if meta.IsCubemap() {
		dx10.MiscFlag = uint32(MiscTextureCube)
		arraySize /= 6
	}
	if dx10.ArraySize, err = u32FromInt(arraySize); err != nil {
		return nil, nil, err
	}
	if flags&DDSFlagForceDX10ExtMisc2 != 0 || meta.IsPMAlpha() {
		dx10.MiscFlags2 = uint32(meta.AlphaMode) & ddsMiscFlags2AlphaModeMask
	}

	return hdr, dx10, nil
}
