/*
Package dxtex manages in-memory GPU texture data.

It classifies DXGI pixel formats and computes their byte layout, owns pixel
storage for textures with mip chains, array items, cube faces and volume
slices (ScratchImage), and reads texture shape from DDS, TGA and Radiance
HDR byte buffers without decoding pixels unless asked to.

DDS and TGA payloads can be loaded into a ScratchImage; DDS and Enfusion
EDDS files (LZ4 chunk-stream compressed mip blocks) can be written into an
aligned Blob. Callers supply and receive byte slices; the package does no
file I/O.

Errors match one of ErrInvalidArgument, ErrOutOfMemory,
ErrArithmeticOverflow, ErrFormatMismatch, ErrUnsupportedFormat or ErrParse
with errors.Is. The package logs debug records through SetLogger and is
silent by default.
*/
package dxtex
