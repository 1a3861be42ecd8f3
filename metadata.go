package dxtex

import "fmt"

// Dimension is the texture dimensionality, numbered like D3D resource
// dimensions so DDS DX10 headers map directly.
type Dimension uint32

// Texture dimensions.
const (
	Dimension1D Dimension = 2
	Dimension2D Dimension = 3
	Dimension3D Dimension = 4
)

func (d Dimension) String() string {
	switch d {
	case Dimension1D:
		return "1D"
	case Dimension2D:
		return "2D"
	case Dimension3D:
		return "3D"
	default:
		return fmt.Sprintf("Dimension(%d)", uint32(d))
	}
}

// MiscFlags holds resource misc flags.
type MiscFlags uint32

// MiscTextureCube marks a 2D texture array as a set of cubemaps.
const MiscTextureCube MiscFlags = 0x4

// AlphaMode describes how the alpha channel should be interpreted.
type AlphaMode uint32

// Alpha modes, numbered like the DDS DX10 miscFlags2 field.
const (
	AlphaModeUnknown       AlphaMode = 0
	AlphaModeStraight      AlphaMode = 1
	AlphaModePremultiplied AlphaMode = 2
	AlphaModeOpaque        AlphaMode = 3
	AlphaModeCustom        AlphaMode = 4
)

// TexMetadata describes a texture's shape and format.
type TexMetadata struct {
	Width     int
	Height    int // 1 for 1D
	Depth     int // 1 unless 3D
	ArraySize int // always 1 for 3D; faces*cubes for cubemaps
	MipLevels int
	MiscFlags MiscFlags
	AlphaMode AlphaMode
	Format    Format
	Dimension Dimension
}

// IsCubemap reports whether the texture is a cubemap or cubemap array.
func (m TexMetadata) IsCubemap() bool { return m.MiscFlags&MiscTextureCube != 0 }

// IsVolumemap reports whether the texture is a 3D volume.
func (m TexMetadata) IsVolumemap() bool { return m.Dimension == Dimension3D }

// IsPMAlpha reports whether alpha is premultiplied.
func (m TexMetadata) IsPMAlpha() bool { return m.AlphaMode == AlphaModePremultiplied }

// Validate checks the shape invariants.
func (m TexMetadata) Validate() error {
	if !m.Format.IsValid() {
		return fmt.Errorf("%w: %s", ErrInvalidFormat, m.Format)
	}
	if m.Format.IsPalettized() {
		return fmt.Errorf("%w: %s", ErrPalettizedFormat, m.Format)
	}
	if m.Width < 1 || m.Height < 1 || m.Depth < 1 {
		return fmt.Errorf("%w: %dx%dx%d", ErrInvalidDimensions, m.Width, m.Height, m.Depth)
	}
	if m.ArraySize < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidArraySize, m.ArraySize)
	}

	switch m.Dimension {
	case Dimension1D:
		if m.Height != 1 || m.Depth != 1 {
			return fmt.Errorf("%w: 1D texture with height %d depth %d", ErrInvalidDimensions, m.Height, m.Depth)
		}
	case Dimension2D:
		if m.Depth != 1 {
			return fmt.Errorf("%w: 2D texture with depth %d", ErrInvalidDimensions, m.Depth)
		}
	case Dimension3D:
		if m.ArraySize != 1 {
			return fmt.Errorf("%w: volume with array size %d", ErrInvalidArraySize, m.ArraySize)
		}
	default:
		return fmt.Errorf("%w: %s", ErrInvalidDimension, m.Dimension)
	}

	if m.IsCubemap() {
		if m.Dimension != Dimension2D {
			return fmt.Errorf("%w: cubemap must be 2D, got %s", ErrInvalidDimension, m.Dimension)
		}
		if m.ArraySize%6 != 0 {
			return fmt.Errorf("%w: cubemap array size %d", ErrInvalidArraySize, m.ArraySize)
		}
	}

	if m.MipLevels < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidMipLevels, m.MipLevels)
	}
	if _, err := CalculateMipLevels(m.Width, m.Height, m.Depth, m.MipLevels); err != nil {
		return err
	}

	return nil
}

// ComputeIndex maps a subresource coordinate to its linear index.
// 1D/2D textures are item-major (item*MipLevels+mip, slice must be 0);
// volumes are mip-major with every depth slice of a level stored
// contiguously (item must be 0). It reports false when out of range.
func (m TexMetadata) ComputeIndex(mip, item, slice int) (int, bool) {
	if mip < 0 || mip >= m.MipLevels || item < 0 || slice < 0 {
		return 0, false
	}

	switch m.Dimension {
	case Dimension1D, Dimension2D:
		if slice > 0 || item >= m.ArraySize {
			return 0, false
		}
		return item*m.MipLevels + mip, true

	case Dimension3D:
		if item > 0 {
			return 0, false
		}
		index := 0
		for level := range mip {
			index += mipDimension(m.Depth, level)
		}
		if slice >= mipDimension(m.Depth, mip) {
			return 0, false
		}
		return index + slice, true

	default:
		return 0, false
	}
}

// SubresourceCount returns the number of images in the texture.
func (m TexMetadata) SubresourceCount() int {
	switch m.Dimension {
	case Dimension1D, Dimension2D:
		return max(0, m.ArraySize) * max(0, m.MipLevels)
	case Dimension3D:
		count := 0
		for level := range m.MipLevels {
			count += mipDimension(m.Depth, level)
		}
		return count
	default:
		return 0
	}
}
