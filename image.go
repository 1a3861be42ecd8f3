package dxtex

import "fmt"

// Image describes one subresource: a mip level of one array item, or one
// depth slice of a volume mip level.
//
// Image never owns Pixels. Views returned by a ScratchImage alias its
// storage and must not be used after the container is released or
// re-initialized.
type Image struct {
	Width      int
	Height     int
	Format     Format
	RowPitch   int
	SlicePitch int
	Pixels     []byte
}

// validate checks that img can serve as a copy-in source.
func (img Image) validate() error {
	if img.Pixels == nil {
		return ErrNilPixels
	}
	if img.Width < 1 || img.Height < 1 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, img.Width, img.Height)
	}

	row, _, err := ComputePitch(img.Format, img.Width, img.Height, CPFlagNone)
	if err != nil {
		return err
	}
	if img.RowPitch < row {
		return fmt.Errorf("%w: row pitch %d below %d", ErrShortPixels, img.RowPitch, row)
	}

	need, err := mulSize(ComputeScanlines(img.Format, img.Height)-1, img.RowPitch)
	if err != nil {
		return err
	}
	if need, err = addSize(need, row); err != nil {
		return err
	}
	if len(img.Pixels) < need {
		return fmt.Errorf("%w: have %d bytes, need %d", ErrShortPixels, len(img.Pixels), need)
	}

	return nil
}

// sameShape reports whether img matches the format and size of ref.
func (img Image) sameShape(ref Image) bool {
	return img.Format == ref.Format && img.Width == ref.Width && img.Height == ref.Height
}

// copyRows copies src into dst scanline by scanline, advancing each side
// by its own row pitch.
func copyRows(dst, src Image) {
	n := min(src.RowPitch, dst.RowPitch)
	lines := ComputeScanlines(dst.Format, dst.Height)

	for y := range lines {
		s := y * src.RowPitch
		d := y * dst.RowPitch
		copy(dst.Pixels[d:d+n], src.Pixels[s:min(s+n, len(src.Pixels))])
	}
}
