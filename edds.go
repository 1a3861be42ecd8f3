// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/dxtex

package dxtex

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/woozymasta/bcn"
)

// EDDSWriteOptions configures EDDS writing. Nil means defaults.
type EDDSWriteOptions struct {
	// Compress stores mip levels as LZ4 chunk streams where that is smaller.
	Compress bool
	// MaxMipMaps limits the number of stored levels. 0 stores every level.
	MaxMipMaps int
}

// SaveToEDDSMemory serializes a single 2D texture as an Enfusion EDDS file:
// a DDS header followed by a block table and one block per mip level,
// smallest level first.
func SaveToEDDSMemory(img *ScratchImage, opts *EDDSWriteOptions) (*Blob, error) {
	if img == nil || img.ImageCount() == 0 {
		return nil, ErrEmptyContainer
	}
	if opts == nil {
		opts = &EDDSWriteOptions{}
	}
	if opts.MaxMipMaps < 0 {
		return nil, fmt.Errorf("%w: max mipmaps %d", ErrInvalidMipLevels, opts.MaxMipMaps)
	}

	meta := img.Metadata()
	if meta.Dimension != Dimension2D || meta.ArraySize != 1 {
		return nil, fmt.Errorf("%w: %s array %d", ErrEDDSShape, meta.Dimension, meta.ArraySize)
	}
	format, ok := eddsFormat(meta.Format)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrEDDSFormat, meta.Format)
	}

	mips := meta.MipLevels
	if opts.MaxMipMaps > 0 {
		mips = min(mips, opts.MaxMipMaps)
	}

	hdr, err := makeEDDSHeader(meta, mips, format)
	if err != nil {
		return nil, err
	}

	blocks := make([]eddsBlock, mips)
	total := 4 + bcn.DDSHeaderSize + 8*mips
	for level := range mips {
		src, _ := img.GetImage(level, 0, 0)
		block, err := encodeBlock(tightPixels(src), opts.Compress)
		if err != nil {
			return nil, fmt.Errorf("%w (mipmap %d)", err, level)
		}
		blocks[level] = block
		if total, err = addSize(total, len(block.body)); err != nil {
			return nil, err
		}

		Logger().Debug("edds block encoded", "mip", level, "magic", block.magic, "raw", len(src.Pixels), "stored", len(block.body))
	}

	var head bytes.Buffer
	if err := bcn.WriteDDSMagic(&head); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidArgument, err)
	}
	if err := bcn.WriteDDSHeader(&head, hdr); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidArgument, err)
	}

	blob := &Blob{}
	if err := blob.Initialize(total); err != nil {
		return nil, err
	}

	out := blob.Bytes()
	offset := copy(out, head.Bytes())
	for level := mips - 1; level >= 0; level-- {
		offset += copy(out[offset:], blocks[level].magic)
		binary.LittleEndian.PutUint32(out[offset:], uint32(len(blocks[level].body)))
		offset += 4
	}
	for level := mips - 1; level >= 0; level-- {
		offset += copy(out[offset:], blocks[level].body)
	}

	return blob, nil
}

// LoadFromEDDSMemory parses an EDDS file and decodes every stored mip
// level into a new ScratchImage.
//
// Files written without a block table hold one payload for the top level;
// it is read as an LZ4 chunk stream, or as raw data when its size matches.
func LoadFromEDDSMemory(data []byte) (*ScratchImage, error) {
	info, err := decodeDDSHeader(data, DDSFlagNone)
	if err != nil {
		return nil, err
	}

	meta := info.meta
	if meta.Dimension != Dimension2D || meta.ArraySize != 1 {
		return nil, fmt.Errorf("%w: %s array %d", ErrEDDSShape, meta.Dimension, meta.ArraySize)
	}
	if _, ok := eddsFormat(meta.Format); !ok {
		return nil, fmt.Errorf("%w: %s", ErrEDDSFormat, meta.Format)
	}

	payload := data[info.headerLen:]
	blocks, _, err := parseBlockTable(payload, meta.MipLevels)
	if err != nil {
		Logger().Debug("edds block table unreadable, trying single payload", "error", err)
		return loadEDDSSingleBlock(meta, payload)
	}

	for i, block := range blocks {
		if err := checkBlockSize(meta, meta.MipLevels-1-i, block); err != nil {
			return nil, err
		}
	}

	img := &ScratchImage{}
	if err := img.Initialize(meta, CPFlagNone); err != nil {
		return nil, err
	}

	for i, block := range blocks {
		level := meta.MipLevels - 1 - i
		dst, _ := img.GetImage(level, 0, 0)
		if err := decodeBlock(block, dst.Pixels); err != nil {
			return nil, fmt.Errorf("%w (mipmap %d)", err, level)
		}
	}

	return img, nil
}

// loadEDDSSingleBlock reads a table-less file holding only the top level.
func loadEDDSSingleBlock(meta TexMetadata, payload []byte) (*ScratchImage, error) {
	meta.MipLevels = 1

	if err := checkBlockSize(meta, 0, eddsBlock{magic: blockMagicLZ4, body: payload}); err != nil {
		return nil, err
	}

	img := &ScratchImage{}
	if err := img.Initialize(meta, CPFlagNone); err != nil {
		return nil, err
	}

	dst, _ := img.GetImage(0, 0, 0)
	err := decodeBlock(eddsBlock{magic: blockMagicLZ4, body: payload}, dst.Pixels)
	switch {
	case err == nil:
		return img, nil
	case len(payload) == len(dst.Pixels):
		copy(dst.Pixels, payload)
		return img, nil
	default:
		return nil, err
	}
}

// checkBlockSize rejects a block that cannot fill mip level of meta,
// before any storage for the level is allocated.
func checkBlockSize(meta TexMetadata, level int, b eddsBlock) error {
	_, size, err := ComputePitch(meta.Format, mipDimension(meta.Width, level), mipDimension(meta.Height, level), CPFlagNone)
	if err != nil {
		return err
	}

	switch b.magic {
	case blockMagicCOPY:
		if len(b.body) != size {
			return fmt.Errorf("%w: mipmap %d expected %d, got %d", ErrCopySizeMismatch, level, size, len(b.body))
		}
	case blockMagicLZ4:
		if size/eddsMaxInflate > len(b.body) {
			return fmt.Errorf("%w: mipmap %d needs %d bytes from a %d byte LZ4 block", ErrTruncated, level, size, len(b.body))
		}
	}

	return nil
}

// tightPixels returns the pixels of img with rows packed at the minimal pitch.
func tightPixels(img Image) []byte {
	row, slice, err := ComputePitch(img.Format, img.Width, img.Height, CPFlagNone)
	if err != nil || row == img.RowPitch {
		return img.Pixels
	}

	out := Image{Width: img.Width, Height: img.Height, Format: img.Format, RowPitch: row, SlicePitch: slice, Pixels: make([]byte, slice)}
	copyRows(out, img)

	return out.Pixels
}

// eddsFormat maps f to the block format EDDS readers understand.
func eddsFormat(f Format) (bcn.Format, bool) {
	switch f.MakeLinear() {
	case FormatBC1Unorm:
		return bcn.FormatDXT1, true
	case FormatBC2Unorm:
		return bcn.FormatDXT3, true
	case FormatBC3Unorm:
		return bcn.FormatDXT5, true
	case FormatBC4Unorm:
		return bcn.FormatBC4, true
	case FormatBC5Unorm:
		return bcn.FormatBC5, true
	case FormatR8G8B8A8Unorm:
		return bcn.FormatRGBA8, true
	case FormatB8G8R8A8Unorm:
		return bcn.FormatBGRA8, true
	default:
		return bcn.FormatUnknown, false
	}
}

// enfusionReserved1 marks the header as written for the Enfusion engine.
func enfusionReserved1() [11]uint32 {
	return [11]uint32{
		0,
		0x31464e45, // "ENF1"
		0, 0, 0, 0, 0, 0, 0, 0, 0,
	}
}

// makeEDDSHeader builds the legacy DDS header EDDS files carry.
func makeEDDSHeader(meta TexMetadata, mips int, format bcn.Format) (*bcn.DDSHeader, error) {
	width, err := u32FromInt(meta.Width)
	if err != nil {
		return nil, err
	}
	height, err := u32FromInt(meta.Height)
	if err != nil {
		return nil, err
	}
	mipCount, err := u32FromInt(mips)
	if err != nil {
		return nil, err
	}

	hdr := &bcn.DDSHeader{
		Size:        bcn.DDSHeaderSize,
		Flags:       bcn.DDSFlagCaps | bcn.DDSFlagHeight | bcn.DDSFlagWidth | bcn.DDSFlagPixelFormat,
		Height:      height,
		Width:       width,
		Depth:       1,
		MipMapCount: mipCount,
		Reserved1:   enfusionReserved1(),
		Caps:        bcn.DDSCapsTexture,
	}
	if mipCount > 1 {
		hdr.Flags |= bcn.DDSFlagMipmapCount
		hdr.Caps |= bcn.DDSCapsComplex | bcn.DDSCapsMipmap
	}
	hdr.PixelFormat.Size = bcn.DDSPixelFormatSize

	fourCC := func(a, b, c, d byte) {
		hdr.Flags |= bcn.DDSFlagLinearSize
		hdr.PixelFormat.Flags = bcn.DDSPFFourCC
		hdr.PixelFormat.FourCC = makeFourCC(a, b, c, d)
	}
	rgba := func(r, g, b uint32) {
		hdr.Flags |= bcn.DDSFlagPitch
		hdr.PixelFormat.Flags = bcn.DDSPFRGB | bcn.DDSPFAlphaPixels
		hdr.PixelFormat.RGBBitCount = 32
		hdr.PixelFormat.RBitMask = r
		hdr.PixelFormat.GBitMask = g
		hdr.PixelFormat.BBitMask = b
		hdr.PixelFormat.ABitMask = 0xff000000
	}

	switch format {
	case bcn.FormatDXT1:
		fourCC('D', 'X', 'T', '1')
	case bcn.FormatDXT3:
		fourCC('D', 'X', 'T', '3')
	case bcn.FormatDXT5:
		fourCC('D', 'X', 'T', '5')
	case bcn.FormatBC4:
		fourCC('A', 'T', 'I', '1')
	case bcn.FormatBC5:
		fourCC('A', 'T', 'I', '2')
	case bcn.FormatRGBA8:
		rgba(0x000000ff, 0x0000ff00, 0x00ff0000)
	case bcn.FormatBGRA8:
		rgba(0x00ff0000, 0x0000ff00, 0x000000ff)
	default:
		return nil, fmt.Errorf("%w: %s", ErrEDDSFormat, format)
	}

	row, slice, err := ComputePitch(meta.Format, meta.Width, meta.Height, CPFlagNone)
	if err != nil {
		return nil, err
	}
	size := row
	if meta.Format.IsCompressed() {
		size = slice
	}
	if hdr.PitchOrLinearSize, err = u32FromInt(size); err != nil {
		return nil, err
	}

	return hdr, nil
}
