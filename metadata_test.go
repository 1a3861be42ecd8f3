package dxtex

import (
	"errors"
	"testing"
)

func TestTexMetadataValidateTable(t *testing.T) {
	t.Parallel()

	valid2D := TexMetadata{Width: 8, Height: 8, Depth: 1, ArraySize: 1, MipLevels: 4, Format: FormatR8G8B8A8Unorm, Dimension: Dimension2D}

	tests := []struct {
		name    string
		mutate  func(*TexMetadata)
		wantErr error
	}{
		{name: "valid-2d", mutate: func(*TexMetadata) {}},
		{name: "valid-cube", mutate: func(m *TexMetadata) { m.ArraySize, m.MiscFlags = 12, MiscTextureCube }},
		{name: "valid-1d", mutate: func(m *TexMetadata) { m.Height, m.Dimension = 1, Dimension1D }},
		{name: "valid-3d", mutate: func(m *TexMetadata) { m.Depth, m.Dimension = 16, Dimension3D; m.MipLevels = 5 }},
		{name: "unknown-format", mutate: func(m *TexMetadata) { m.Format = FormatUnknown }, wantErr: ErrUnsupportedFormat},
		{name: "palettized", mutate: func(m *TexMetadata) { m.Format = FormatP8 }, wantErr: ErrPalettizedFormat},
		{name: "zero-width", mutate: func(m *TexMetadata) { m.Width = 0 }, wantErr: ErrInvalidArgument},
		{name: "zero-array", mutate: func(m *TexMetadata) { m.ArraySize = 0 }, wantErr: ErrInvalidArraySize},
		{name: "1d-height", mutate: func(m *TexMetadata) { m.Dimension = Dimension1D }, wantErr: ErrInvalidDimensions},
		{name: "2d-depth", mutate: func(m *TexMetadata) { m.Depth = 2 }, wantErr: ErrInvalidDimensions},
		{name: "3d-array", mutate: func(m *TexMetadata) { m.Dimension, m.ArraySize = Dimension3D, 2 }, wantErr: ErrInvalidArraySize},
		{name: "bad-dimension", mutate: func(m *TexMetadata) { m.Dimension = 7 }, wantErr: ErrInvalidDimension},
		{name: "cube-not-6", mutate: func(m *TexMetadata) { m.ArraySize, m.MiscFlags = 5, MiscTextureCube }, wantErr: ErrInvalidArraySize},
		{name: "cube-3d", mutate: func(m *TexMetadata) { m.Dimension, m.MiscFlags = Dimension3D, MiscTextureCube }, wantErr: ErrInvalidDimension},
		{name: "zero-mips", mutate: func(m *TexMetadata) { m.MipLevels = 0 }, wantErr: ErrInvalidMipLevels},
		{name: "too-many-mips", mutate: func(m *TexMetadata) { m.MipLevels = 5 }, wantErr: ErrInvalidMipLevels},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			meta := valid2D
			tc.mutate(&meta)
			err := meta.Validate()
			if tc.wantErr == nil {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected error %v, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestComputeIndexBijection(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		meta TexMetadata
	}{
		{name: "2d-array", meta: TexMetadata{Width: 16, Height: 8, Depth: 1, ArraySize: 3, MipLevels: 5, Format: FormatR8Unorm, Dimension: Dimension2D}},
		{name: "1d", meta: TexMetadata{Width: 16, Height: 1, Depth: 1, ArraySize: 2, MipLevels: 3, Format: FormatR8Unorm, Dimension: Dimension1D}},
		{name: "volume", meta: TexMetadata{Width: 8, Height: 8, Depth: 8, ArraySize: 1, MipLevels: 4, Format: FormatR8Unorm, Dimension: Dimension3D}},
		{name: "volume-shallow", meta: TexMetadata{Width: 16, Height: 16, Depth: 3, ArraySize: 1, MipLevels: 5, Format: FormatR8Unorm, Dimension: Dimension3D}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			count := tc.meta.SubresourceCount()
			seen := make([]bool, count)
			items, depth := tc.meta.ArraySize, tc.meta.Depth

			for mip := range tc.meta.MipLevels {
				slices := 1
				if tc.meta.Dimension == Dimension3D {
					slices = mipDimension(depth, mip)
				}
				for item := range items {
					for slice := range slices {
						idx, ok := tc.meta.ComputeIndex(mip, item, slice)
						if !ok {
							t.Fatalf("ComputeIndex(%d,%d,%d) = false, want true", mip, item, slice)
						}
						if idx < 0 || idx >= count || seen[idx] {
							t.Fatalf("ComputeIndex(%d,%d,%d) = %d, not a fresh index below %d", mip, item, slice, idx, count)
						}
						seen[idx] = true
					}
				}
			}

			for i, ok := range seen {
				if !ok {
					t.Fatalf("index %d never produced", i)
				}
			}
		})
	}
}

func TestComputeIndexOrderAndRange(t *testing.T) {
	t.Parallel()

	arr := TexMetadata{Width: 4, Height: 4, Depth: 1, ArraySize: 2, MipLevels: 3, Format: FormatR8Unorm, Dimension: Dimension2D}
	if idx, _ := arr.ComputeIndex(1, 1, 0); idx != 4 {
		t.Fatalf("ComputeIndex(1,1,0) = %d, want 4", idx)
	}

	vol := TexMetadata{Width: 4, Height: 4, Depth: 4, ArraySize: 1, MipLevels: 3, Format: FormatR8Unorm, Dimension: Dimension3D}
	if idx, _ := vol.ComputeIndex(1, 0, 1); idx != 5 {
		t.Fatalf("ComputeIndex(1,0,1) = %d, want 5", idx)
	}
	if idx, _ := vol.ComputeIndex(2, 0, 0); idx != 6 {
		t.Fatalf("ComputeIndex(2,0,0) = %d, want 6", idx)
	}

	outOfRange := []struct {
		meta             TexMetadata
		mip, item, slice int
	}{
		{meta: arr, mip: 3},
		{meta: arr, item: 2},
		{meta: arr, slice: 1},
		{meta: arr, mip: -1},
		{meta: vol, item: 1},
		{meta: vol, mip: 1, slice: 2},
		{meta: TexMetadata{MipLevels: 1, ArraySize: 1}},
	}
	for _, tc := range outOfRange {
		if _, ok := tc.meta.ComputeIndex(tc.mip, tc.item, tc.slice); ok {
			t.Fatalf("ComputeIndex(%d,%d,%d) on %s = true, want false", tc.mip, tc.item, tc.slice, tc.meta.Dimension)
		}
	}
}

func TestSubresourceCount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		meta TexMetadata
		want int
	}{
		{meta: TexMetadata{ArraySize: 6, MipLevels: 3, Dimension: Dimension2D}, want: 18},
		{meta: TexMetadata{ArraySize: 1, MipLevels: 4, Depth: 8, Dimension: Dimension3D}, want: 15},
		{meta: TexMetadata{ArraySize: 2, MipLevels: 1, Dimension: Dimension1D}, want: 2},
		{meta: TexMetadata{ArraySize: 2, MipLevels: 2}, want: 0},
	}

	for _, tc := range tests {
		if got := tc.meta.SubresourceCount(); got != tc.want {
			t.Fatalf("SubresourceCount() = %d, want %d", got, tc.want)
		}
	}
}

func TestCalculateMipLevelsTable(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		w, h, d int
		mips    int
		want    int
		wantErr error
	}{
		{name: "full-256", w: 256, h: 256, d: 1, want: 9},
		{name: "full-non-pow2", w: 5, h: 3, d: 1, want: 3},
		{name: "full-1x1", w: 1, h: 1, d: 1, want: 1},
		{name: "full-volume", w: 4, h: 4, d: 32, want: 6},
		{name: "explicit", w: 64, h: 64, d: 1, mips: 3, want: 3},
		{name: "too-many", w: 4, h: 4, d: 1, mips: 4, wantErr: ErrInvalidMipLevels},
		{name: "negative", w: 4, h: 4, d: 1, mips: -1, wantErr: ErrInvalidMipLevels},
		{name: "zero-width", w: 0, h: 4, d: 1, wantErr: ErrInvalidDimensions},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := CalculateMipLevels(tc.w, tc.h, tc.d, tc.mips)
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("expected error %v, got %v", tc.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("CalculateMipLevels: %v", err)
			}
			if got != tc.want {
				t.Fatalf("CalculateMipLevels(%d,%d,%d,%d) = %d, want %d", tc.w, tc.h, tc.d, tc.mips, got, tc.want)
			}
		})
	}
}

func TestMipDimensionTable(t *testing.T) {
	t.Parallel()

	tests := []struct {
		base  int
		level int
		want  int
	}{
		{base: 1024, level: 0, want: 1024},
		{base: 1024, level: 1, want: 512},
		{base: 1024, level: 10, want: 1},
		{base: 1024, level: 20, want: 1},
		{base: 3, level: 1, want: 1},
		{base: 3, level: 2, want: 1},
	}

	for _, tc := range tests {
		if got := mipDimension(tc.base, tc.level); got != tc.want {
			t.Fatalf("mipDimension(%d,%d) = %d, want %d", tc.base, tc.level, got, tc.want)
		}
	}
}

func TestDimensionString(t *testing.T) {
	t.Parallel()

	if got := Dimension3D.String(); got != "3D" {
		t.Fatalf("String() = %q, want %q", got, "3D")
	}
	if got := Dimension(9).String(); got != "Dimension(9)" {
		t.Fatalf("String() = %q, want %q", got, "Dimension(9)")
	}
}
