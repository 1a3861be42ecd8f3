package dxtex

import (
	"errors"
	"fmt"
)

// Error kinds. Every error returned by this package matches exactly one of
// these with errors.Is.
var (
	// ErrInvalidArgument indicates a malformed shape, flag set or size.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrOutOfMemory indicates the pixel or blob allocation failed.
	ErrOutOfMemory = errors.New("out of memory")
	// ErrArithmeticOverflow indicates a pitch or size computation left the int range.
	ErrArithmeticOverflow = errors.New("arithmetic overflow")
	// ErrFormatMismatch indicates inconsistent source images for array/cube/volume construction.
	ErrFormatMismatch = errors.New("format mismatch")
	// ErrUnsupportedFormat indicates no defined geometry or decoding for a format.
	ErrUnsupportedFormat = errors.New("unsupported format")
	// ErrParse indicates bad magic, a truncated buffer or malformed header grammar.
	ErrParse = errors.New("parse error")
)

var (
	// ErrInvalidFormat indicates a format value missing from the format table.
	ErrInvalidFormat = fmt.Errorf("%w: invalid format", ErrUnsupportedFormat)
	// ErrPalettizedFormat indicates a palettized format, which has no direct storage.
	ErrPalettizedFormat = fmt.Errorf("%w: palettized format", ErrUnsupportedFormat)
	// ErrInvalidDimensions indicates a zero or inconsistent width, height or depth.
	ErrInvalidDimensions = fmt.Errorf("%w: invalid dimensions", ErrInvalidArgument)
	// ErrInvalidArraySize indicates a zero array size or a cubemap size not divisible by 6.
	ErrInvalidArraySize = fmt.Errorf("%w: invalid array size", ErrInvalidArgument)
	// ErrInvalidMipLevels indicates a mip count longer than the full chain.
	ErrInvalidMipLevels = fmt.Errorf("%w: invalid mip levels", ErrInvalidArgument)
	// ErrInvalidDimension indicates an unknown texture dimension.
	ErrInvalidDimension = fmt.Errorf("%w: invalid texture dimension", ErrInvalidArgument)
	// ErrNilPixels indicates a source image without pixel data.
	ErrNilPixels = fmt.Errorf("%w: image has no pixels", ErrInvalidArgument)
	// ErrShortPixels indicates a source image buffer shorter than its pitch requires.
	ErrShortPixels = fmt.Errorf("%w: image pixels shorter than pitch", ErrInvalidArgument)
	// ErrNoImages indicates an empty source image list.
	ErrNoImages = fmt.Errorf("%w: no images", ErrInvalidArgument)
	// ErrEmptyContainer indicates an operation on a released or never initialized ScratchImage.
	ErrEmptyContainer = fmt.Errorf("%w: empty container", ErrInvalidArgument)
	// ErrBlobSize indicates a zero blob size or a trim beyond the current length.
	ErrBlobSize = fmt.Errorf("%w: invalid blob size", ErrInvalidArgument)

	// ErrImageMismatch indicates source images with differing format or dimensions.
	ErrImageMismatch = fmt.Errorf("%w: images differ in format or size", ErrFormatMismatch)
	// ErrImageCount indicates a source image count that does not fit the requested shape.
	ErrImageCount = fmt.Errorf("%w: unexpected image count", ErrFormatMismatch)

	// ErrTruncated indicates a buffer shorter than its headers or payload require.
	ErrTruncated = fmt.Errorf("%w: truncated data", ErrParse)
	// ErrDDSHeaderRead indicates DDS header read failed.
	ErrDDSHeaderRead = fmt.Errorf("%w: reading DDS header failed", ErrParse)
	// ErrDDSDX10Read indicates DDS DX10 header read failed.
	ErrDDSDX10Read = fmt.Errorf("%w: reading DDS DX10 header failed", ErrParse)
	// ErrDDSInvalidHeader indicates inconsistent DDS header fields.
	ErrDDSInvalidHeader = fmt.Errorf("%w: invalid DDS header", ErrParse)
	// ErrUnknownDDSFormat indicates a DDS pixel format with no equivalent Format.
	ErrUnknownDDSFormat = fmt.Errorf("%w: no format for DDS pixel format", ErrUnsupportedFormat)
	// ErrPartialCubemap indicates a legacy DDS cubemap without all six faces.
	ErrPartialCubemap = fmt.Errorf("%w: partial cubemap", ErrUnsupportedFormat)
	// ErrLegacyExpansion indicates a legacy DDS layout that needs expansion which was suppressed.
	ErrLegacyExpansion = fmt.Errorf("%w: legacy pixel expansion disabled", ErrUnsupportedFormat)
	// ErrTGAHeader indicates a malformed TGA header.
	ErrTGAHeader = fmt.Errorf("%w: invalid TGA header", ErrParse)
	// ErrTGAImageType indicates a TGA image type this package does not read.
	ErrTGAImageType = fmt.Errorf("%w: unsupported TGA image type", ErrUnsupportedFormat)
	// ErrTGARLE indicates a corrupt TGA run-length stream.
	ErrTGARLE = fmt.Errorf("%w: corrupt TGA RLE data", ErrParse)
	// ErrHDRSignature indicates a missing Radiance signature line.
	ErrHDRSignature = fmt.Errorf("%w: missing Radiance signature", ErrParse)
	// ErrHDRHeader indicates a malformed Radiance header or resolution line.
	ErrHDRHeader = fmt.Errorf("%w: invalid Radiance header", ErrParse)
	// ErrHDRFormat indicates a Radiance pixel format other than RGBE.
	ErrHDRFormat = fmt.Errorf("%w: unsupported Radiance format", ErrUnsupportedFormat)

	// ErrEDDSFormat indicates a format the EDDS container cannot carry.
	ErrEDDSFormat = fmt.Errorf("%w: format not supported by EDDS", ErrUnsupportedFormat)
	// ErrEDDSShape indicates a texture shape the EDDS container cannot carry.
	ErrEDDSShape = fmt.Errorf("%w: EDDS stores a single 2D item", ErrInvalidArgument)
	// ErrChunkTooLarge indicates a compressed chunk exceeds allowed size.
	ErrChunkTooLarge = fmt.Errorf("%w: compressed chunk too large", ErrArithmeticOverflow)
	// ErrLZ4Compress indicates LZ4 compression failed.
	ErrLZ4Compress = fmt.Errorf("%w: LZ4 compression failed", ErrInvalidArgument)
	// ErrLZ4Decode indicates LZ4 decode failed.
	ErrLZ4Decode = fmt.Errorf("%w: LZ4 decode failed", ErrParse)
	// ErrCopySizeMismatch indicates COPY block data size mismatch.
	ErrCopySizeMismatch = fmt.Errorf("%w: COPY block size mismatch", ErrParse)
	// ErrUnknownBlockMagic indicates an unknown block magic.
	ErrUnknownBlockMagic = fmt.Errorf("%w: unknown block magic", ErrParse)
	// ErrChunkStreamTruncated indicates LZ4 chunk stream is truncated.
	ErrChunkStreamTruncated = fmt.Errorf("%w: LZ4 chunk-stream truncated", ErrParse)
	// ErrUnknownLZ4Flags indicates unknown LZ4 chunk flags.
	ErrUnknownLZ4Flags = fmt.Errorf("%w: unknown LZ4 flags", ErrParse)
	// ErrInvalidChunkSize indicates invalid LZ4 chunk size.
	ErrInvalidChunkSize = fmt.Errorf("%w: invalid compressed chunk size", ErrParse)
	// ErrDecodeOverrun indicates decoded data overruns target buffer.
	ErrDecodeOverrun = fmt.Errorf("%w: decoded LZ4 overruns target buffer", ErrParse)
	// ErrDecodedSizeMismatch indicates decoded size mismatch.
	ErrDecodedSizeMismatch = fmt.Errorf("%w: LZ4 decoded size mismatch", ErrParse)
	// ErrBlockLengthMismatch indicates leftover bytes after decode.
	ErrBlockLengthMismatch = fmt.Errorf("%w: LZ4 block length mismatch", ErrParse)
	// ErrBlockTableUnknownMagic indicates unknown block magic in table.
	ErrBlockTableUnknownMagic = fmt.Errorf("%w: unknown block magic in table", ErrParse)
	// ErrBlockTableInvalidSize indicates invalid size in block table.
	ErrBlockTableInvalidSize = fmt.Errorf("%w: invalid block size in table", ErrParse)
)
