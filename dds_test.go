package dxtex

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"

	"github.com/woozymasta/bcn"
)

// legacyDDS builds a DDS file without the DX10 header around payload.
func legacyDDS(t *testing.T, w, h int, pf bcn.DDSPixelFormat, caps2 uint32, payload []byte) []byte {
	t.Helper()

	pf.Size = bcn.DDSPixelFormatSize
	hdr := &bcn.DDSHeader{
		Size:        bcn.DDSHeaderSize,
		Flags:       bcn.DDSFlagCaps | bcn.DDSFlagHeight | bcn.DDSFlagWidth | bcn.DDSFlagPixelFormat,
		Height:      uint32(h),
		Width:       uint32(w),
		PixelFormat: pf,
		Caps:        bcn.DDSCapsTexture,
		Caps2:       caps2,
	}

	var buf bytes.Buffer
	if err := bcn.WriteDDSMagic(&buf); err != nil {
		t.Fatalf("WriteDDSMagic: %v", err)
	}
	if err := bcn.WriteDDSHeader(&buf, hdr); err != nil {
		t.Fatalf("WriteDDSHeader: %v", err)
	}
	buf.Write(payload)

	return buf.Bytes()
}

// patterned fills every byte of img with a position-derived value.
func patterned(img *ScratchImage) *ScratchImage {
	pix := img.PixelsMut()
	for i := range pix {
		pix[i] = byte(i*7 + 3)
	}

	return img
}

func TestDDSHeaderErrors(t *testing.T) {
	t.Parallel()

	badMagic := legacyDDS(t, 4, 4, fourCCPF('D', 'X', 'T', '1'), 0, nil)
	badMagic[0] = 'X'

	badSize := legacyDDS(t, 4, 4, fourCCPF('D', 'X', 'T', '1'), 0, nil)
	binary.LittleEndian.PutUint32(badSize[4:], 100)

	zeroWidth := legacyDDS(t, 0, 4, fourCCPF('D', 'X', 'T', '1'), 0, nil)

	tests := []struct {
		name    string
		data    []byte
		wantErr error
	}{
		{name: "empty", data: nil, wantErr: ErrTruncated},
		{name: "short", data: []byte("DDS "), wantErr: ErrTruncated},
		{name: "bad-magic", data: badMagic, wantErr: ErrDDSHeaderRead},
		{name: "bad-header-size", data: badSize, wantErr: ErrDDSHeaderRead},
		{name: "zero-width", data: zeroWidth, wantErr: ErrDDSInvalidHeader},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := GetMetadataFromDDSMemory(tc.data, DDSFlagNone)
			if !errors.Is(err, tc.wantErr) || !errors.Is(err, ErrParse) {
				t.Fatalf("expected error %v, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestDDSLegacyFormatMapping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		pf        bcn.DDSPixelFormat
		flags     DDSFlags
		want      Format
		wantAlpha AlphaMode
	}{
		{name: "dxt1", pf: fourCCPF('D', 'X', 'T', '1'), want: FormatBC1Unorm},
		{name: "dxt2", pf: fourCCPF('D', 'X', 'T', '2'), want: FormatBC2Unorm, wantAlpha: AlphaModePremultiplied},
		{name: "dxt4", pf: fourCCPF('D', 'X', 'T', '4'), want: FormatBC3Unorm, wantAlpha: AlphaModePremultiplied},
		{name: "ati1", pf: fourCCPF('A', 'T', 'I', '1'), want: FormatBC4Unorm},
		{name: "bc5s", pf: fourCCPF('B', 'C', '5', 'S'), want: FormatBC5Snorm},
		{name: "yuy2", pf: fourCCPF('Y', 'U', 'Y', '2'), want: FormatYUY2},
		{name: "numeric-float4", pf: numericPF(116), want: FormatR32G32B32A32Float},
		{name: "numeric-half", pf: numericPF(111), want: FormatR16Float},
		{name: "bgra8", pf: maskPF(ddsPFRGBA, 32, 0x00ff0000, 0x0000ff00, 0x000000ff, 0xff000000), want: FormatB8G8R8A8Unorm},
		{name: "bgrx8", pf: maskPF(bcn.DDSPFRGB, 32, 0x00ff0000, 0x0000ff00, 0x000000ff, 0), want: FormatB8G8R8X8Unorm},
		{name: "rgba8", pf: maskPF(ddsPFRGBA, 32, 0x000000ff, 0x0000ff00, 0x00ff0000, 0xff000000), want: FormatR8G8B8A8Unorm},
		{name: "bgr10a2", pf: maskPF(ddsPFRGBA, 32, 0x3ff00000, 0x000ffc00, 0x000003ff, 0xc0000000), want: FormatR10G10B10A2Unorm},
		{name: "rgb888", pf: maskPF(bcn.DDSPFRGB, 24, 0xff0000, 0x00ff00, 0x0000ff, 0), want: FormatR8G8B8A8Unorm},
		{name: "565", pf: maskPF(bcn.DDSPFRGB, 16, 0xf800, 0x07e0, 0x001f, 0), want: FormatB5G6R5Unorm},
		{name: "4444", pf: maskPF(ddsPFRGBA, 16, 0x0f00, 0x00f0, 0x000f, 0xf000), want: FormatB4G4R4A4Unorm},
		{name: "l8", pf: maskPF(bcn.DDSPFLuminance, 8, 0xff, 0, 0, 0), want: FormatR8Unorm},
		{name: "l16", pf: maskPF(bcn.DDSPFLuminance, 16, 0xffff, 0, 0, 0), want: FormatR16Unorm},
		{name: "a8l8", pf: maskPF(ddsPFLuminanceA, 16, 0x00ff, 0, 0, 0xff00), want: FormatR8G8Unorm},
		{name: "a8", pf: maskPF(bcn.DDSPFAlpha, 8, 0, 0, 0, 0xff), want: FormatA8Unorm},
		{name: "l8-expand", pf: maskPF(bcn.DDSPFLuminance, 8, 0xff, 0, 0, 0), flags: DDSFlagExpandLuminance, want: FormatR8G8B8A8Unorm},
		{name: "l16-expand", pf: maskPF(bcn.DDSPFLuminance, 16, 0xffff, 0, 0, 0), flags: DDSFlagExpandLuminance, want: FormatR16G16B16A16Unorm},
		{name: "bgra8-force-rgb", pf: maskPF(ddsPFRGBA, 32, 0x00ff0000, 0x0000ff00, 0x000000ff, 0xff000000), flags: DDSFlagForceRGB, want: FormatR8G8B8A8Unorm},
		{name: "565-no16bpp", pf: maskPF(bcn.DDSPFRGB, 16, 0xf800, 0x07e0, 0x001f, 0), flags: DDSFlagNo16BPP, want: FormatR8G8B8A8Unorm},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			meta, pf, err := GetMetadataFromDDSMemoryEx(legacyDDS(t, 8, 8, tc.pf, 0, nil), tc.flags)
			if err != nil {
				t.Fatalf("GetMetadataFromDDSMemoryEx: %v", err)
			}
			if meta.Format != tc.want {
				t.Fatalf("Format = %s, want %s", meta.Format, tc.want)
			}
			if meta.AlphaMode != tc.wantAlpha {
				t.Fatalf("AlphaMode = %d, want %d", meta.AlphaMode, tc.wantAlpha)
			}
			if pf.IsDX10() {
				t.Fatalf("IsDX10() = true for a legacy header")
			}
			if pf.FourCC != tc.pf.FourCC || pf.RGBBitCount != tc.pf.RGBBitCount {
				t.Fatalf("pixel format = %+v, want %+v", pf, tc.pf)
			}
			if meta.Dimension != Dimension2D || meta.MipLevels != 1 || meta.ArraySize != 1 {
				t.Fatalf("shape = %s mips %d array %d", meta.Dimension, meta.MipLevels, meta.ArraySize)
			}
		})
	}
}

func TestDDSLegacyFormatErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		pf      bcn.DDSPixelFormat
		caps2   uint32
		flags   DDSFlags
		wantErr error
	}{
		{name: "unknown-fourcc", pf: fourCCPF('A', 'B', 'C', 'D'), wantErr: ErrUnknownDDSFormat},
		{name: "unknown-masks", pf: maskPF(bcn.DDSPFRGB, 32, 0xff, 0xff, 0xff, 0), wantErr: ErrUnknownDDSFormat},
		{name: "partial-cubemap", pf: fourCCPF('D', 'X', 'T', '1'), caps2: bcn.DDSCaps2Cubemap | 0x400, wantErr: ErrPartialCubemap},
		{
			name: "expansion-disabled", pf: maskPF(bcn.DDSPFRGB, 24, 0xff0000, 0x00ff00, 0x0000ff, 0),
			flags: DDSFlagNoLegacyExpansion, wantErr: ErrLegacyExpansion,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := GetMetadataFromDDSMemory(legacyDDS(t, 4, 4, tc.pf, tc.caps2, nil), tc.flags)
			if !errors.Is(err, tc.wantErr) || !errors.Is(err, ErrUnsupportedFormat) {
				t.Fatalf("expected error %v, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestDDSLoadConvertsLegacyPixels(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		w, h    int
		pf      bcn.DDSPixelFormat
		flags   DDSFlags
		payload []byte
		want    []byte
	}{
		{
			name: "rgb888", w: 2, h: 1,
			pf:      maskPF(bcn.DDSPFRGB, 24, 0xff0000, 0x00ff00, 0x0000ff, 0),
			payload: []byte{0x10, 0x20, 0x30, 0x40, 0x50, 0x60},
			want:    []byte{0x30, 0x20, 0x10, 0xFF, 0x60, 0x50, 0x40, 0xFF},
		},
		{
			name: "bgra8-force-rgb", w: 1, h: 1, flags: DDSFlagForceRGB,
			pf:      maskPF(ddsPFRGBA, 32, 0x00ff0000, 0x0000ff00, 0x000000ff, 0xff000000),
			payload: []byte{1, 2, 3, 4},
			want:    []byte{3, 2, 1, 4},
		},
		{
			name: "bgrx8-force-rgb", w: 1, h: 1, flags: DDSFlagForceRGB,
			pf:      maskPF(bcn.DDSPFRGB, 32, 0x00ff0000, 0x0000ff00, 0x000000ff, 0),
			payload: []byte{1, 2, 3, 0},
			want:    []byte{3, 2, 1, 0xFF},
		},
		{
			name: "rgbx8", w: 1, h: 1,
			pf:      maskPF(bcn.DDSPFRGB, 32, 0x000000ff, 0x0000ff00, 0x00ff0000, 0),
			payload: []byte{1, 2, 3, 0},
			want:    []byte{1, 2, 3, 0xFF},
		},
		{
			name: "a8l8-expand", w: 1, h: 1, flags: DDSFlagExpandLuminance,
			pf:      maskPF(ddsPFLuminanceA, 16, 0x00ff, 0, 0, 0xff00),
			payload: []byte{0x80, 0x40},
			want:    []byte{0x80, 0x80, 0x80, 0x40},
		},
		{
			name: "l8-expand", w: 2, h: 1, flags: DDSFlagExpandLuminance,
			pf:      maskPF(bcn.DDSPFLuminance, 8, 0xff, 0, 0, 0),
			payload: []byte{0x11, 0x22},
			want:    []byte{0x11, 0x11, 0x11, 0xFF, 0x22, 0x22, 0x22, 0xFF},
		},
		{
			name: "565-no16bpp", w: 1, h: 1, flags: DDSFlagNo16BPP,
			pf:      maskPF(bcn.DDSPFRGB, 16, 0xf800, 0x07e0, 0x001f, 0),
			payload: []byte{0x00, 0xF8},
			want:    []byte{0xFF, 0, 0, 0xFF},
		},
		{
			name: "5551-no-alpha", w: 1, h: 1,
			pf:      maskPF(bcn.DDSPFRGB, 16, 0x7c00, 0x03e0, 0x001f, 0),
			payload: []byte{0x1F, 0x00},
			want:    []byte{0x1F, 0x80},
		},
		{
			name: "bgr10a2-swap", w: 1, h: 1,
			pf:      maskPF(ddsPFRGBA, 32, 0x3ff00000, 0x000ffc00, 0x000003ff, 0xc0000000),
			payload: []byte{0xFF, 0x03, 0x00, 0xC0},
			want:    []byte{0x00, 0x00, 0xF0, 0xFF},
		},
		{
			name: "bgr10a2-no-fixup", w: 1, h: 1, flags: DDSFlagNoR10B10G10A2Fixup,
			pf:      maskPF(ddsPFRGBA, 32, 0x3ff00000, 0x000ffc00, 0x000003ff, 0xc0000000),
			payload: []byte{0xFF, 0x03, 0x00, 0xC0},
			want:    []byte{0xFF, 0x03, 0x00, 0xC0},
		},
		{
			name: "l8-dword-rows", w: 3, h: 2, flags: DDSFlagLegacyDWORD,
			pf:      maskPF(bcn.DDSPFLuminance, 8, 0xff, 0, 0, 0),
			payload: []byte{1, 2, 3, 0, 4, 5, 6, 0},
			want:    []byte{1, 2, 3, 4, 5, 6},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			img, err := LoadFromDDSMemory(legacyDDS(t, tc.w, tc.h, tc.pf, 0, tc.payload), tc.flags)
			if err != nil {
				t.Fatalf("LoadFromDDSMemory: %v", err)
			}
			if got := img.Pixels(); !bytes.Equal(got, tc.want) {
				t.Fatalf("Pixels() = %x, want %x", got, tc.want)
			}
		})
	}
}

func TestDDSLoadTruncatedPayload(t *testing.T) {
	t.Parallel()

	data := legacyDDS(t, 4, 4, maskPF(ddsPFRGBA, 32, 0x000000ff, 0x0000ff00, 0x00ff0000, 0xff000000), 0, make([]byte, 63))
	if _, err := LoadFromDDSMemory(data, DDSFlagNone); !errors.Is(err, ErrTruncated) {
		t.Fatalf("expected error %v, got %v", ErrTruncated, err)
	}
}

// dx10DDS builds a header-only DDS file with the DX10 extension.
func dx10DDS(t *testing.T, w, h int, ext bcn.DDSHeaderDX10) []byte {
	t.Helper()

	hdr := &bcn.DDSHeader{
		Size:   bcn.DDSHeaderSize,
		Flags:  bcn.DDSFlagCaps | bcn.DDSFlagHeight | bcn.DDSFlagWidth | bcn.DDSFlagPixelFormat,
		Height: uint32(h),
		Width:  uint32(w),
		PixelFormat: bcn.DDSPixelFormat{
			Size:   bcn.DDSPixelFormatSize,
			Flags:  bcn.DDSPFFourCC,
			FourCC: bcn.DDSFourCCDX10,
		},
		Caps: bcn.DDSCapsTexture,
	}

	var buf bytes.Buffer
	if err := bcn.WriteDDSMagic(&buf); err != nil {
		t.Fatalf("WriteDDSMagic: %v", err)
	}
	if err := bcn.WriteDDSHeader(&buf, hdr); err != nil {
		t.Fatalf("WriteDDSHeader: %v", err)
	}
	if err := binary.Write(&buf, binary.LittleEndian, ext); err != nil {
		t.Fatalf("write DX10 header: %v", err)
	}

	return buf.Bytes()
}

func TestDDSLoadHugeArrayWithoutPayload(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		misc  uint32
		faces int
	}{
		{name: "array", faces: 1},
		{name: "cube-array", misc: uint32(MiscTextureCube), faces: 6},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			data := dx10DDS(t, 1, 1, bcn.DDSHeaderDX10{
				DXGIFormat:        uint32(FormatR8Unorm),
				ResourceDimension: uint32(Dimension2D),
				MiscFlag:          tc.misc,
				ArraySize:         0x7FFFFFFF,
			})
			if len(data) != 4+bcn.DDSHeaderSize+ddsDX10HeaderSize {
				t.Fatalf("header is %d bytes", len(data))
			}

			meta, err := GetMetadataFromDDSMemory(data, DDSFlagNone)
			if err != nil {
				t.Fatalf("GetMetadataFromDDSMemory: %v", err)
			}
			if want := 0x7FFFFFFF * tc.faces; meta.ArraySize != want {
				t.Fatalf("ArraySize = %d, want %d", meta.ArraySize, want)
			}

			_, err = LoadFromDDSMemory(data, DDSFlagNone)
			if !errors.Is(err, ErrTruncated) || !errors.Is(err, ErrParse) {
				t.Fatalf("expected error %v, got %v", ErrTruncated, err)
			}
		})
	}
}

func TestDDSLegacyVolumeFromDepthFlag(t *testing.T) {
	t.Parallel()

	hdr := &bcn.DDSHeader{
		Size:        bcn.DDSHeaderSize,
		Flags:       bcn.DDSFlagCaps | bcn.DDSFlagHeight | bcn.DDSFlagWidth | bcn.DDSFlagPixelFormat | bcn.DDSFlagDepth,
		Height:      4,
		Width:       4,
		Depth:       4,
		PixelFormat: maskPF(ddsPFRGBA, 32, 0x000000ff, 0x0000ff00, 0x00ff0000, 0xff000000),
		Caps:        bcn.DDSCapsTexture,
	}
	hdr.PixelFormat.Size = bcn.DDSPixelFormatSize

	var buf bytes.Buffer
	if err := bcn.WriteDDSMagic(&buf); err != nil {
		t.Fatalf("WriteDDSMagic: %v", err)
	}
	if err := bcn.WriteDDSHeader(&buf, hdr); err != nil {
		t.Fatalf("WriteDDSHeader: %v", err)
	}
	payload := make([]byte, 4*4*4*4)
	for i := range payload {
		payload[i] = byte(i)
	}
	buf.Write(payload)

	img, err := LoadFromDDSMemory(buf.Bytes(), DDSFlagNone)
	if err != nil {
		t.Fatalf("LoadFromDDSMemory: %v", err)
	}

	meta := img.Metadata()
	if meta.Dimension != Dimension3D || meta.Depth != 4 || meta.ArraySize != 1 {
		t.Fatalf("Metadata() = %s depth %d array %d, want 3D depth 4 array 1", meta.Dimension, meta.Depth, meta.ArraySize)
	}
	if img.ImageCount() != 4 || !bytes.Equal(img.Pixels(), payload) {
		t.Fatalf("volume slices not loaded from the payload")
	}
}

func TestDDSSaveLoadRoundTrip(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		init     func(*ScratchImage) error
		flags    DDSFlags
		wantDX10 bool
	}{
		{
			name: "rgba8-mips",
			init: func(s *ScratchImage) error { return s.Initialize2D(FormatR8G8B8A8Unorm, 8, 4, 1, 0, CPFlagNone) },
		},
		{
			name: "bc1-mips",
			init: func(s *ScratchImage) error { return s.Initialize2D(FormatBC1Unorm, 8, 8, 1, 2, CPFlagNone) },
		},
		{
			name: "bgra8-cube",
			init: func(s *ScratchImage) error { return s.InitializeCube(FormatB8G8R8A8Unorm, 4, 4, 1, 1, CPFlagNone) },
		},
		{
			name: "half-volume",
			init: func(s *ScratchImage) error { return s.Initialize3D(FormatR16G16B16A16Float, 4, 4, 4, 0, CPFlagNone) },
		},
		{
			name:     "r8-1d-array",
			init:     func(s *ScratchImage) error { return s.Initialize1D(FormatR8Unorm, 16, 2, 3, CPFlagNone) },
			wantDX10: true,
		},
		{
			name:     "bc7-array",
			init:     func(s *ScratchImage) error { return s.Initialize2D(FormatBC7UnormSRGB, 8, 8, 3, 0, CPFlagNone) },
			wantDX10: true,
		},
		{
			name:     "rgba8-cube-array",
			init:     func(s *ScratchImage) error { return s.InitializeCube(FormatR8G8B8A8Unorm, 2, 2, 2, 0, CPFlagNone) },
			wantDX10: true,
		},
		{
			name:     "rgba8-forced-dx10",
			init:     func(s *ScratchImage) error { return s.Initialize2D(FormatR8G8B8A8Unorm, 4, 4, 1, 1, CPFlagNone) },
			flags:    DDSFlagForceDX10Ext,
			wantDX10: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			src := &ScratchImage{}
			if err := tc.init(src); err != nil {
				t.Fatalf("init: %v", err)
			}
			patterned(src)

			blob, err := SaveToDDSMemory(src, tc.flags)
			if err != nil {
				t.Fatalf("SaveToDDSMemory: %v", err)
			}

			header := 4 + bcn.DDSHeaderSize
			if tc.wantDX10 {
				header += ddsDX10HeaderSize
			}
			if want := header + src.Size(); blob.Len() != want {
				t.Fatalf("blob length = %d, want %d", blob.Len(), want)
			}

			_, pf, err := GetMetadataFromDDSMemoryEx(blob.Bytes(), DDSFlagNone)
			if err != nil {
				t.Fatalf("GetMetadataFromDDSMemoryEx: %v", err)
			}
			if pf.IsDX10() != tc.wantDX10 {
				t.Fatalf("IsDX10() = %v, want %v", pf.IsDX10(), tc.wantDX10)
			}

			got, err := LoadFromDDSMemory(blob.Bytes(), DDSFlagNone)
			if err != nil {
				t.Fatalf("LoadFromDDSMemory: %v", err)
			}
			if got.Metadata() != src.Metadata() {
				t.Fatalf("Metadata() = %+v, want %+v", got.Metadata(), src.Metadata())
			}
			if !bytes.Equal(got.Pixels(), src.Pixels()) {
				t.Fatalf("pixels differ after round trip")
			}
		})
	}
}

func TestDDSSaveAlphaMode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		format   Format
		alpha    AlphaMode
		flags    DDSFlags
		wantDX10 bool
		fourCC   uint32
	}{
		{name: "bc2-premultiplied", format: FormatBC2Unorm, alpha: AlphaModePremultiplied, fourCC: makeFourCC('D', 'X', 'T', '2')},
		{name: "bc3-premultiplied", format: FormatBC3Unorm, alpha: AlphaModePremultiplied, fourCC: makeFourCC('D', 'X', 'T', '4')},
		{name: "rgba8-premultiplied", format: FormatR8G8B8A8Unorm, alpha: AlphaModePremultiplied, wantDX10: true, fourCC: bcn.DDSFourCCDX10},
		{name: "bc1-opaque-misc2", format: FormatBC1Unorm, alpha: AlphaModeOpaque, flags: DDSFlagForceDX10ExtMisc2, wantDX10: true, fourCC: bcn.DDSFourCCDX10},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			src := &ScratchImage{}
			meta := TexMetadata{Width: 4, Height: 4, Depth: 1, ArraySize: 1, MipLevels: 1, Format: tc.format, Dimension: Dimension2D, AlphaMode: tc.alpha}
			if err := src.Initialize(meta, CPFlagNone); err != nil {
				t.Fatalf("Initialize: %v", err)
			}

			blob, err := SaveToDDSMemory(src, tc.flags)
			if err != nil {
				t.Fatalf("SaveToDDSMemory: %v", err)
			}

			got, pf, err := GetMetadataFromDDSMemoryEx(blob.Bytes(), DDSFlagNone)
			if err != nil {
				t.Fatalf("GetMetadataFromDDSMemoryEx: %v", err)
			}
			if pf.IsDX10() != tc.wantDX10 || pf.FourCC != tc.fourCC {
				t.Fatalf("pixel format DX10=%v fourcc %q, want DX10=%v fourcc %q",
					pf.IsDX10(), fourCCString(pf.FourCC), tc.wantDX10, fourCCString(tc.fourCC))
			}
			if got.AlphaMode != tc.alpha || got.Format != tc.format {
				t.Fatalf("loaded %s alpha %d, want %s alpha %d", got.Format, got.AlphaMode, tc.format, tc.alpha)
			}
		})
	}
}

func TestDDSSaveEmpty(t *testing.T) {
	t.Parallel()

	for _, img := range []*ScratchImage{nil, {}} {
		if _, err := SaveToDDSMemory(img, DDSFlagNone); !errors.Is(err, ErrEmptyContainer) {
			t.Fatalf("expected error %v, got %v", ErrEmptyContainer, err)
		}
	}
}
