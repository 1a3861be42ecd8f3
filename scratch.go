package dxtex

import (
	"fmt"
	"slices"
)

// ScratchImage owns the pixel storage of a texture: one contiguous
// allocation partitioned among all subresources in ComputeIndex order.
//
// The zero value is an empty container. A ScratchImage must not be
// mutated from several goroutines at once.
type ScratchImage struct {
	meta   TexMetadata
	flags  CPFlags
	memory []byte
	subs   []subresource
}

// subresource locates one image inside the arena.
type subresource struct {
	offset     int
	width      int
	height     int
	rowPitch   int
	slicePitch int
}

const (
	// maxSubresources bounds the subresource table of one container.
	maxSubresources = 1 << 20
	// maxArenaSize bounds the pixel storage of one container.
	maxArenaSize = 1 << 34
)

type layoutKind int

const (
	layoutExplicit layoutKind = iota
	layout1D
	layout2D
	layout3D
	layoutCube
	layoutFromImages
)

// layoutRequest is the single input of the container builder.
type layoutRequest struct {
	kind layoutKind

	meta TexMetadata // layoutExplicit

	format    Format
	width     int
	height    int
	depth     int
	arraySize int // item count, or cube count for layoutCube
	mipLevels int

	images  []Image // layoutFromImages
	allow1D bool
	cube    bool
	volume  bool
}

// Initialize allocates storage for the texture described by meta.
// A zero MipLevels requests the full chain.
func (s *ScratchImage) Initialize(meta TexMetadata, flags CPFlags) error {
	return s.build(layoutRequest{kind: layoutExplicit, meta: meta}, flags)
}

// Initialize1D allocates a 1D texture (array).
func (s *ScratchImage) Initialize1D(f Format, length, arraySize, mipLevels int, flags CPFlags) error {
	return s.build(layoutRequest{
		kind:      layout1D,
		format:    f,
		width:     length,
		height:    1,
		depth:     1,
		arraySize: arraySize,
		mipLevels: mipLevels,
	}, flags)
}

// Initialize2D allocates a 2D texture (array).
func (s *ScratchImage) Initialize2D(f Format, width, height, arraySize, mipLevels int, flags CPFlags) error {
	return s.build(layoutRequest{
		kind:      layout2D,
		format:    f,
		width:     width,
		height:    height,
		depth:     1,
		arraySize: arraySize,
		mipLevels: mipLevels,
	}, flags)
}

// Initialize3D allocates a volume texture.
func (s *ScratchImage) Initialize3D(f Format, width, height, depth, mipLevels int, flags CPFlags) error {
	return s.build(layoutRequest{
		kind:      layout3D,
		format:    f,
		width:     width,
		height:    height,
		depth:     depth,
		arraySize: 1,
		mipLevels: mipLevels,
	}, flags)
}

// InitializeCube allocates nCubes cubemaps of six faces each.
func (s *ScratchImage) InitializeCube(f Format, width, height, nCubes, mipLevels int, flags CPFlags) error {
	return s.build(layoutRequest{
		kind:      layoutCube,
		format:    f,
		width:     width,
		height:    height,
		depth:     1,
		arraySize: nCubes,
		mipLevels: mipLevels,
	}, flags)
}

// InitializeFromImage allocates a single-image texture and copies src into it.
// The result is 1D only when allow1D is set and src is one row high.
func (s *ScratchImage) InitializeFromImage(src Image, allow1D bool, flags CPFlags) error {
	return s.build(layoutRequest{kind: layoutFromImages, images: []Image{src}, allow1D: allow1D}, flags)
}

// InitializeArrayFromImages allocates a texture array with one item per
// image and copies the images in order. All images must share format and size.
func (s *ScratchImage) InitializeArrayFromImages(images []Image, allow1D bool, flags CPFlags) error {
	return s.build(layoutRequest{kind: layoutFromImages, images: images, allow1D: allow1D}, flags)
}

// InitializeCubeFromImages allocates len(images)/6 cubemaps and copies the
// faces in order. The image count must be a positive multiple of six.
func (s *ScratchImage) InitializeCubeFromImages(images []Image, flags CPFlags) error {
	return s.build(layoutRequest{kind: layoutFromImages, images: images, cube: true}, flags)
}

// Initialize3DFromImages allocates a single-mip volume and copies one
// image per depth slice. len(images) must equal depth.
func (s *ScratchImage) Initialize3DFromImages(images []Image, depth int, flags CPFlags) error {
	return s.build(layoutRequest{kind: layoutFromImages, images: images, depth: depth, volume: true}, flags)
}

// Release frees the storage and resets s to the empty state.
// Calling it on an empty container is a no-op.
func (s *ScratchImage) Release() {
	*s = ScratchImage{}
}

// build is the one path every initializer takes: derive metadata,
// validate, lay out, allocate and copy in.
func (s *ScratchImage) build(req layoutRequest, flags CPFlags) error {
	s.Release()

	meta, err := req.metadata()
	if err != nil {
		return err
	}
	if err := meta.Validate(); err != nil {
		return err
	}

	subs, size, err := computeLayout(meta, flags)
	if err != nil {
		return err
	}

	memory, err := allocate(size)
	if err != nil {
		return err
	}

	next := ScratchImage{meta: meta, flags: flags, memory: memory, subs: subs}
	for i, src := range req.images {
		copyRows(next.image(i), src)
	}

	Logger().Debug("scratch image allocated",
		"format", meta.Format.String(),
		"dimension", meta.Dimension.String(),
		"images", len(subs),
		"bytes", size,
	)

	*s = next
	return nil
}

// metadata derives the texture shape requested by r.
func (r layoutRequest) metadata() (TexMetadata, error) {
	meta := TexMetadata{
		Width:     r.width,
		Height:    r.height,
		Depth:     r.depth,
		ArraySize: r.arraySize,
		MipLevels: r.mipLevels,
		Format:    r.format,
	}

	switch r.kind {
	case layoutExplicit:
		meta = r.meta

	case layout1D:
		meta.Dimension = Dimension1D

	case layout2D:
		meta.Dimension = Dimension2D

	case layout3D:
		meta.Dimension = Dimension3D

	case layoutCube:
		if r.arraySize < 1 {
			return TexMetadata{}, fmt.Errorf("%w: %d cubes", ErrInvalidArraySize, r.arraySize)
		}
		arraySize, err := mulSize(r.arraySize, 6)
		if err != nil {
			return TexMetadata{}, err
		}
		meta.ArraySize = arraySize
		meta.Dimension = Dimension2D
		meta.MiscFlags = MiscTextureCube

	case layoutFromImages:
		return r.imagesMetadata()
	}

	if meta.MipLevels == 0 && meta.Width > 0 && meta.Height > 0 && meta.Depth > 0 {
		mips, err := CalculateMipLevels(meta.Width, meta.Height, meta.Depth, 0)
		if err != nil {
			return TexMetadata{}, err
		}
		meta.MipLevels = mips
	}

	return meta, nil
}

// imagesMetadata checks copy-in sources and derives a single-mip shape.
func (r layoutRequest) imagesMetadata() (TexMetadata, error) {
	switch {
	case r.cube && (len(r.images) == 0 || len(r.images)%6 != 0):
		return TexMetadata{}, fmt.Errorf("%w: cubemap needs a multiple of 6 faces, got %d", ErrImageCount, len(r.images))
	case r.volume && len(r.images) != r.depth:
		return TexMetadata{}, fmt.Errorf("%w: volume depth %d, got %d images", ErrImageCount, r.depth, len(r.images))
	case len(r.images) == 0:
		return TexMetadata{}, ErrNoImages
	}

	first := r.images[0]
	for i, img := range r.images {
		if err := img.validate(); err != nil {
			return TexMetadata{}, fmt.Errorf("image %d: %w", i, err)
		}
		if !img.sameShape(first) {
			return TexMetadata{}, fmt.Errorf("%w: image %d is %s %dx%d, image 0 is %s %dx%d",
				ErrImageMismatch, i, img.Format, img.Width, img.Height, first.Format, first.Width, first.Height)
		}
	}

	meta := TexMetadata{
		Width:     first.Width,
		Height:    first.Height,
		Depth:     1,
		ArraySize: len(r.images),
		MipLevels: 1,
		Format:    first.Format,
		Dimension: Dimension2D,
	}

	switch {
	case r.volume:
		meta.Depth = len(r.images)
		meta.ArraySize = 1
		meta.Dimension = Dimension3D
	case r.cube:
		meta.MiscFlags = MiscTextureCube
	case r.allow1D && first.Height == 1:
		meta.Dimension = Dimension1D
	}

	return meta, nil
}

// layoutSize returns the subresource count and the total byte size of
// meta under flags without building the table.
func layoutSize(meta TexMetadata, flags CPFlags) (count, total int, err error) {
	for level := range meta.MipLevels {
		_, slice, err := ComputePitch(meta.Format, mipDimension(meta.Width, level), mipDimension(meta.Height, level), flags)
		if err != nil {
			return 0, 0, err
		}

		n := meta.ArraySize
		if meta.Dimension == Dimension3D {
			n = mipDimension(meta.Depth, level)
		}

		if slice, err = mulSize(slice, n); err != nil {
			return 0, 0, err
		}
		if total, err = addSize(total, slice); err != nil {
			return 0, 0, err
		}
		if count, err = addSize(count, n); err != nil {
			return 0, 0, err
		}
	}

	return count, total, nil
}

// checkLayout rejects shapes whose storage cannot be allocated.
func checkLayout(meta TexMetadata, flags CPFlags) (count, total int, err error) {
	count, total, err = layoutSize(meta, flags)
	switch {
	case err != nil:
		return 0, 0, err
	case count > maxSubresources:
		return 0, 0, fmt.Errorf("%w: %d subresources (max %d)", ErrOutOfMemory, count, maxSubresources)
	case total > maxArenaSize:
		return 0, 0, fmt.Errorf("%w: %d bytes (max %d)", ErrOutOfMemory, total, maxArenaSize)
	}

	return count, total, nil
}

// computeLayout returns the subresource table and total arena size.
func computeLayout(meta TexMetadata, flags CPFlags) ([]subresource, int, error) {
	switch meta.Dimension {
	case Dimension1D, Dimension2D, Dimension3D:
	default:
		return nil, 0, fmt.Errorf("%w: %s", ErrInvalidDimension, meta.Dimension)
	}

	count, _, err := checkLayout(meta, flags)
	if err != nil {
		return nil, 0, err
	}

	subs := make([]subresource, 0, count)
	total := 0

	add := func(w, h int) error {
		row, slice, err := ComputePitch(meta.Format, w, h, flags)
		if err != nil {
			return err
		}
		subs = append(subs, subresource{offset: total, width: w, height: h, rowPitch: row, slicePitch: slice})
		total += slice
		return nil
	}

	if meta.Dimension == Dimension3D {
		for level := range meta.MipLevels {
			w, h := mipDimension(meta.Width, level), mipDimension(meta.Height, level)
			for range mipDimension(meta.Depth, level) {
				if err := add(w, h); err != nil {
					return nil, 0, err
				}
			}
		}
	} else {
		for range meta.ArraySize {
			for level := range meta.MipLevels {
				if err := add(mipDimension(meta.Width, level), mipDimension(meta.Height, level)); err != nil {
					return nil, 0, err
				}
			}
		}
	}

	return subs, total, nil
}

// allocate returns a zeroed arena, reporting ErrOutOfMemory when the
// runtime refuses the size.
func allocate(size int) (buf []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			buf, err = nil, fmt.Errorf("%w: %d bytes: %v", ErrOutOfMemory, size, r)
		}
	}()

	return make([]byte, size), nil
}

// image materializes the view of subresource i.
func (s *ScratchImage) image(i int) Image {
	sub := s.subs[i]
	end := sub.offset + sub.slicePitch

	return Image{
		Width:      sub.width,
		Height:     sub.height,
		Format:     s.meta.Format,
		RowPitch:   sub.rowPitch,
		SlicePitch: sub.slicePitch,
		Pixels:     s.memory[sub.offset:end:end],
	}
}

// Metadata returns the texture shape. It is the zero value when s is empty.
func (s *ScratchImage) Metadata() TexMetadata { return s.meta }

// GetImage returns the view of one subresource, or false when the
// coordinate is out of range or s is empty.
func (s *ScratchImage) GetImage(mip, item, slice int) (Image, bool) {
	idx, ok := s.meta.ComputeIndex(mip, item, slice)
	if !ok || idx >= len(s.subs) {
		return Image{}, false
	}

	return s.image(idx), true
}

// Images returns views of all subresources in ComputeIndex order.
func (s *ScratchImage) Images() []Image {
	if len(s.subs) == 0 {
		return nil
	}

	out := make([]Image, len(s.subs))
	for i := range s.subs {
		out[i] = s.image(i)
	}

	return out
}

// ImageCount returns the number of subresources.
func (s *ScratchImage) ImageCount() int { return len(s.subs) }

// Pixels returns the whole arena for reading. Callers must not modify it;
// use PixelsMut for in-place edits.
func (s *ScratchImage) Pixels() []byte { return slices.Clip(s.memory) }

// PixelsMut returns the whole arena for in-place modification.
// The slice is capacity-capped: appending to it never grows the arena.
func (s *ScratchImage) PixelsMut() []byte { return slices.Clip(s.memory) }

// Size returns the arena size in bytes.
func (s *ScratchImage) Size() int { return len(s.memory) }

// OverrideFormat reinterprets the pixels as f without touching them.
// It succeeds only when every subresource has the same pitches under f;
// otherwise it returns false and leaves s unchanged.
func (s *ScratchImage) OverrideFormat(f Format) bool {
	if len(s.subs) == 0 || !f.IsValid() || f.IsPlanar() || f.IsPalettized() {
		return false
	}

	old := s.meta.Format
	if f.BitsPerPixel() != old.BitsPerPixel() ||
		f.IsCompressed() != old.IsCompressed() ||
		f.IsPacked() != old.IsPacked() {
		return false
	}

	for _, sub := range s.subs {
		row, slice, err := ComputePitch(f, sub.width, sub.height, s.flags)
		if err != nil || row != sub.rowPitch || slice != sub.slicePitch {
			return false
		}
	}

	s.meta.Format = f
	return true
}

// Clone returns a deep copy of s with its own storage.
func (s *ScratchImage) Clone() (*ScratchImage, error) {
	if len(s.subs) == 0 {
		return nil, ErrEmptyContainer
	}

	out := &ScratchImage{}
	if err := out.Initialize(s.meta, s.flags); err != nil {
		return nil, err
	}
	copy(out.memory, s.memory)

	return out, nil
}

// Transfer moves the storage of s into a new container and leaves s empty.
func (s *ScratchImage) Transfer() *ScratchImage {
	out := &ScratchImage{}
	*out = *s
	s.Release()

	return out
}
