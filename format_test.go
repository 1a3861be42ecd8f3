package dxtex

import "testing"

func TestFormatPredicatesTable(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		format     Format
		valid      bool
		compressed bool
		packed     bool
		planar     bool
		palette    bool
		depth      bool
		srgb       bool
		bgr        bool
		alpha      bool
	}{
		{name: "rgba8", format: FormatR8G8B8A8Unorm, valid: true, alpha: true},
		{name: "rgba8-srgb", format: FormatR8G8B8A8UnormSRGB, valid: true, srgb: true, alpha: true},
		{name: "bgra8", format: FormatB8G8R8A8Unorm, valid: true, bgr: true, alpha: true},
		{name: "bgrx8", format: FormatB8G8R8X8Unorm, valid: true, bgr: true},
		{name: "bc1", format: FormatBC1Unorm, valid: true, compressed: true, alpha: true},
		{name: "bc4", format: FormatBC4Unorm, valid: true, compressed: true},
		{name: "yuy2", format: FormatYUY2, valid: true, packed: true},
		{name: "nv12", format: FormatNV12, valid: true, planar: true},
		{name: "p8", format: FormatP8, valid: true, palette: true},
		{name: "d24s8", format: FormatD24UnormS8Uint, valid: true, depth: true},
		{name: "unknown", format: FormatUnknown},
		{name: "gap", format: Format(120)},
		{name: "out-of-table", format: Format(4000)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := []bool{
				tc.format.IsValid(), tc.format.IsCompressed(), tc.format.IsPacked(),
				tc.format.IsPlanar(), tc.format.IsPalettized(), tc.format.IsDepthStencil(),
				tc.format.IsSRGB(), tc.format.IsBGR(), tc.format.HasAlpha(),
			}
			want := []bool{
				tc.valid, tc.compressed, tc.packed,
				tc.planar, tc.palette, tc.depth,
				tc.srgb, tc.bgr, tc.alpha,
			}
			for i := range want {
				if got[i] != want[i] {
					t.Fatalf("%s predicates = %v, want %v", tc.format, got, want)
				}
			}
		})
	}
}

func TestFormatBitsTable(t *testing.T) {
	t.Parallel()

	tests := []struct {
		format Format
		bpp    int
		bpc    int
		typ    FormatType
	}{
		{format: FormatR32G32B32A32Float, bpp: 128, bpc: 32, typ: FormatTypeFloat},
		{format: FormatR8G8B8A8Unorm, bpp: 32, bpc: 8, typ: FormatTypeUNORM},
		{format: FormatR8G8B8A8Snorm, bpp: 32, bpc: 8, typ: FormatTypeSNORM},
		{format: FormatB5G6R5Unorm, bpp: 16, bpc: 6, typ: FormatTypeUNORM},
		{format: FormatR9G9B9E5SharedExp, bpp: 32, bpc: 14, typ: FormatTypeSharedExp},
		{format: FormatBC1Unorm, bpp: 4, bpc: 5, typ: FormatTypeUNORM},
		{format: FormatBC7Unorm, bpp: 8, bpc: 8, typ: FormatTypeUNORM},
		{format: FormatNV12, bpp: 12, bpc: 8, typ: FormatTypeUnknown},
		{format: FormatR1Unorm, bpp: 1, bpc: 1, typ: FormatTypeUNORM},
		{format: FormatUnknown, bpp: 0, bpc: 0, typ: FormatTypeUnknown},
		{format: Format(999), bpp: 0, bpc: 0, typ: FormatTypeUnknown},
	}

	for _, tc := range tests {
		t.Run(tc.format.String(), func(t *testing.T) {
			t.Parallel()

			if got := tc.format.BitsPerPixel(); got != tc.bpp {
				t.Fatalf("BitsPerPixel() = %d, want %d", got, tc.bpp)
			}
			if got := tc.format.BitsPerColor(); got != tc.bpc {
				t.Fatalf("BitsPerColor() = %d, want %d", got, tc.bpc)
			}
			if got := tc.format.DataType(); got != tc.typ {
				t.Fatalf("DataType() = %s, want %s", got, tc.typ)
			}
		})
	}
}

func TestFormatTypelessMatchesTypedBits(t *testing.T) {
	t.Parallel()

	for f := range Format(len(formatTable)) {
		if !f.IsValid() || f.IsTypeless(false) {
			continue
		}
		tl := f.MakeTypeless()
		if tl == f {
			continue
		}
		if !tl.IsTypeless(false) {
			t.Fatalf("%s.MakeTypeless() = %s, not typeless", f, tl)
		}
		if tl.BitsPerPixel() != f.BitsPerPixel() {
			t.Fatalf("%s BitsPerPixel() = %d, typed %s = %d", tl, tl.BitsPerPixel(), f, f.BitsPerPixel())
		}
	}
}

func TestFormatPartners(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		got  Format
		want Format
	}{
		{name: "srgb", got: FormatR8G8B8A8Unorm.MakeSRGB(), want: FormatR8G8B8A8UnormSRGB},
		{name: "srgb-identity", got: FormatR16Float.MakeSRGB(), want: FormatR16Float},
		{name: "linear", got: FormatBC1UnormSRGB.MakeLinear(), want: FormatBC1Unorm},
		{name: "linear-identity", got: FormatR8G8B8A8Unorm.MakeLinear(), want: FormatR8G8B8A8Unorm},
		{name: "typeless", got: FormatB8G8R8A8UnormSRGB.MakeTypeless(), want: FormatB8G8R8A8Typeless},
		{name: "typeless-unorm", got: FormatR16G16B16A16Typeless.MakeTypelessUNORM(), want: FormatR16G16B16A16Unorm},
		{name: "typeless-float", got: FormatR16G16B16A16Typeless.MakeTypelessFLOAT(), want: FormatR16G16B16A16Float},
		{name: "typeless-float-identity", got: FormatR8G8B8A8Typeless.MakeTypelessFLOAT(), want: FormatR8G8B8A8Typeless},
		{name: "unknown", got: Format(4000).MakeSRGB(), want: Format(4000)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			if tc.got != tc.want {
				t.Fatalf("partner = %s, want %s", tc.got, tc.want)
			}
		})
	}
}

func TestFormatIsTypelessPartial(t *testing.T) {
	t.Parallel()

	if FormatR24UnormX8Typeless.IsTypeless(false) {
		t.Fatalf("R24_UNORM_X8_TYPELESS.IsTypeless(false) = true, want false")
	}
	if !FormatR24UnormX8Typeless.IsTypeless(true) {
		t.Fatalf("R24_UNORM_X8_TYPELESS.IsTypeless(true) = false, want true")
	}
	if !FormatR8G8B8A8Typeless.IsTypeless(false) {
		t.Fatalf("R8G8B8A8_TYPELESS.IsTypeless(false) = false, want true")
	}
}

func TestFormatString(t *testing.T) {
	t.Parallel()

	if got := FormatR8G8B8A8Unorm.String(); got != "R8G8B8A8_UNORM" {
		t.Fatalf("String() = %q, want %q", got, "R8G8B8A8_UNORM")
	}
	if got := Format(120).String(); got != "Format(120)" {
		t.Fatalf("String() = %q, want %q", got, "Format(120)")
	}
	if got := FormatTypeSharedExp.String(); got != "SHAREDEXP" {
		t.Fatalf("String() = %q, want %q", got, "SHAREDEXP")
	}
}
