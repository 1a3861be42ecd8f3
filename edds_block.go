// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/dxtex

package dxtex

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/pierrec/lz4/v4"
)

const (
	// blockMagicCOPY marks an uncompressed block.
	blockMagicCOPY = "COPY"
	// blockMagicLZ4 marks an LZ4 chunk-stream block.
	blockMagicLZ4 = "LZ4 "

	// eddsChunkSize is the Enfusion chunk size and dictionary window.
	eddsChunkSize = 64 * 1024

	// blocks below this size are always stored as COPY.
	eddsMinCompressSize = 1024
	// LZ4 output must be at most this fraction of the input to be kept.
	eddsMaxCompressRatio = 0.85
	// eddsMaxInflate bounds how much an LZ4 body can expand.
	eddsMaxInflate = 255

	eddsChunkLast   = 0x80
	eddsMaxChunkLen = 0x7FFFFF
)

// eddsBlock is one mip level body as stored in the file.
type eddsBlock struct {
	magic string
	body  []byte
}

// encodeBlock stores one mip payload, as an LZ4 chunk stream when
// compress is set and it pays off, as COPY otherwise.
func encodeBlock(data []byte, compress bool) (eddsBlock, error) {
	raw := eddsBlock{magic: blockMagicCOPY, body: data}
	if !compress || len(data) < eddsMinCompressSize {
		return raw, nil
	}

	rawSize, err := i32FromInt(len(data))
	if err != nil {
		return eddsBlock{}, err
	}

	var stream bytes.Buffer
	stream.Grow(4 + len(data))
	stream.Write(binary.LittleEndian.AppendUint32(make([]byte, 0, 4), uint32(rawSize)))

	chunk := make([]byte, lz4.CompressBlockBound(eddsChunkSize))
	for start := 0; start < len(data); start += eddsChunkSize {
		end := min(start+eddsChunkSize, len(data))
		src := data[start:end]

		n, err := lz4.CompressBlockHC(src, chunk, 0, nil, nil)
		if err != nil {
			return eddsBlock{}, fmt.Errorf("%w: %v", ErrLZ4Compress, err)
		}
		if n == 0 || float64(n) > float64(len(src))*eddsMaxCompressRatio {
			return raw, nil
		}
		if n > eddsMaxChunkLen {
			return eddsBlock{}, fmt.Errorf("%w: %d", ErrChunkTooLarge, n)
		}

		flags := byte(0)
		if end == len(data) {
			flags = eddsChunkLast
		}
		stream.Write([]byte{byte(n), byte(n >> 8), byte(n >> 16), flags})
		stream.Write(chunk[:n])
	}

	if float64(stream.Len()) > float64(len(data))*eddsMaxCompressRatio {
		return raw, nil
	}
	if _, err := i32FromInt(stream.Len()); err != nil {
		return eddsBlock{}, err
	}

	return eddsBlock{magic: blockMagicLZ4, body: stream.Bytes()}, nil
}

// decodeBlock inflates b into dst, which must have exactly the mip size.
func decodeBlock(b eddsBlock, dst []byte) error {
	switch b.magic {
	case blockMagicCOPY:
		if len(b.body) != len(dst) {
			return fmt.Errorf("%w: expected %d, got %d", ErrCopySizeMismatch, len(dst), len(b.body))
		}
		copy(dst, b.body)
		return nil
	case blockMagicLZ4:
		return decodeChunkStream(lz4Stream(b.body, len(dst)), dst)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownBlockMagic, b.magic)
	}
}

// lz4Stream strips the uncompressed-size prefix written by current tools.
// Some older files store the chunk stream without it.
func lz4Stream(body []byte, size int) []byte {
	if len(body) < 8 {
		return body
	}

	prefix := int(binary.LittleEndian.Uint32(body))
	first := int(body[4]) | int(body[5])<<8 | int(body[6])<<16
	if prefix == size && first > 0 && first < 1<<20 {
		return body[4:]
	}

	return body
}

// decodeChunkStream decodes a chunk stream into dst. Each chunk may
// reference the previous 64 KiB of output as its dictionary.
func decodeChunkStream(stream, dst []byte) error {
	out := 0
	for {
		if len(stream) < 4 {
			return fmt.Errorf("%w: need 4 bytes header, have %d", ErrChunkStreamTruncated, len(stream))
		}

		size := int(stream[0]) | int(stream[1])<<8 | int(stream[2])<<16
		flags := stream[3]
		stream = stream[4:]

		if flags&^eddsChunkLast != 0 {
			return fmt.Errorf("%w: 0x%02x", ErrUnknownLZ4Flags, flags)
		}
		if size <= 0 || size > len(stream) {
			return fmt.Errorf("%w: %d (remaining %d)", ErrInvalidChunkSize, size, len(stream))
		}
		if out >= len(dst) {
			return ErrDecodeOverrun
		}

		window := dst[out:min(out+eddsChunkSize, len(dst))]
		dict := dst[max(0, out-eddsChunkSize):out]
		n, err := lz4.UncompressBlockWithDict(stream[:size], window, dict)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrLZ4Decode, err)
		}

		out += n
		stream = stream[size:]

		if flags&eddsChunkLast != 0 {
			break
		}
	}

	if out != len(dst) {
		return fmt.Errorf("%w: expected %d, got %d", ErrDecodedSizeMismatch, len(dst), out)
	}
	if len(stream) != 0 {
		return fmt.Errorf("%w: %d bytes left after decode", ErrBlockLengthMismatch, len(stream))
	}

	return nil
}

// parseBlockTable reads count table entries (magic + int32 size) from data.
func parseBlockTable(data []byte, count int) ([]eddsBlock, int, error) {
	need, err := mulSize(count, 8)
	if err != nil {
		return nil, 0, err
	}
	if len(data) < need {
		return nil, 0, fmt.Errorf("%w: block table needs %d bytes, have %d", ErrTruncated, need, len(data))
	}

	blocks := make([]eddsBlock, count)
	sizes := make([]int, count)
	for i := range count {
		entry := data[i*8:]
		magic := string(entry[:4])
		size := int32(binary.LittleEndian.Uint32(entry[4:]))

		if magic != blockMagicCOPY && magic != blockMagicLZ4 {
			return nil, 0, fmt.Errorf("%w: %d: %q", ErrBlockTableUnknownMagic, i, magic)
		}
		if size < 0 {
			return nil, 0, fmt.Errorf("%w: %d: %d", ErrBlockTableInvalidSize, i, size)
		}

		blocks[i].magic = magic
		sizes[i] = int(size)
	}

	offset := need
	for i, size := range sizes {
		if size > len(data)-offset {
			return nil, 0, fmt.Errorf("%w: block %d body", ErrTruncated, i)
		}
		blocks[i].body = data[offset : offset+size]
		offset += size
	}

	return blocks, offset, nil
}
