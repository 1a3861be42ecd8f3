package dxtex

import (
	"fmt"
	"unsafe"
)

const blobAlign = 16

// Blob is a growable byte buffer whose first byte is 16-byte aligned.
// It holds encoded output such as serialized DDS or EDDS files.
type Blob struct {
	buf  []byte
	size int
}

// Initialize allocates size bytes, releasing any previous buffer.
func (b *Blob) Initialize(size int) error {
	b.Release()
	if size <= 0 {
		return fmt.Errorf("%w: %d", ErrBlobSize, size)
	}

	buf, err := alignedAlloc(size)
	if err != nil {
		return err
	}

	b.buf, b.size = buf, size
	return nil
}

// Release frees the buffer. Cap and Len become 0.
func (b *Blob) Release() {
	b.buf, b.size = nil, 0
}

// Bytes returns the buffer contents up to Len.
func (b *Blob) Bytes() []byte { return b.buf[:b.size:b.size] }

// Len returns the logical length in bytes.
func (b *Blob) Len() int { return b.size }

// Cap returns the allocated size in bytes.
func (b *Blob) Cap() int { return len(b.buf) }

// Resize reallocates the buffer to size bytes, keeping the first
// min(Len, size) bytes. An uninitialized Blob is initialized.
func (b *Blob) Resize(size int) error {
	if size <= 0 {
		return fmt.Errorf("%w: %d", ErrBlobSize, size)
	}
	if b.buf == nil {
		return b.Initialize(size)
	}

	buf, err := alignedAlloc(size)
	if err != nil {
		return err
	}
	copy(buf, b.buf[:min(b.size, size)])

	Logger().Debug("blob reallocated", "from", len(b.buf), "to", size)
	b.buf, b.size = buf, size
	return nil
}

// Trim shortens Len to size without touching the allocation.
func (b *Blob) Trim(size int) error {
	if size <= 0 || size > b.size {
		return fmt.Errorf("%w: trim to %d, length %d", ErrBlobSize, size, b.size)
	}

	b.size = size
	return nil
}

// alignedAlloc returns a zeroed size-byte slice starting on a blobAlign boundary.
func alignedAlloc(size int) ([]byte, error) {
	total, err := addSize(size, blobAlign-1)
	if err != nil {
		return nil, err
	}

	raw, err := allocate(total)
	if err != nil {
		return nil, err
	}

	off := 0
	if rem := int(uintptr(unsafe.Pointer(&raw[0])) & (blobAlign - 1)); rem != 0 {
		off = blobAlign - rem
	}

	return raw[off : off+size : off+size], nil
}
