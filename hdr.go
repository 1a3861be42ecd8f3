package dxtex

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

const (
	hdrFormatRGBE = "32-bit_rle_rgbe"
	hdrFormatXYZE = "32-bit_rle_xyze"

	// hdrMaxHeader bounds the text header scan.
	hdrMaxHeader = 64 * 1024
)

var hdrSignatures = []string{"#?RADIANCE", "#?RGBE"}

// GetMetadataFromHDRMemory parses the text header of a Radiance RGBE file.
// The result is always a single R32G32B32A32_FLOAT 2D image. A header
// without a FORMAT line is taken as RGBE.
func GetMetadataFromHDRMemory(data []byte) (TexMetadata, error) {
	lines := hdrLines(data)

	sig, ok := lines.next()
	if !ok || !hasHDRSignature(sig) {
		return TexMetadata{}, ErrHDRSignature
	}

	for {
		line, ok := lines.next()
		if !ok {
			return TexMetadata{}, fmt.Errorf("%w: header not terminated", ErrHDRHeader)
		}
		if line == "" {
			break
		}
		if strings.HasPrefix(line, "#") {
			continue
		}

		key, value, found := strings.Cut(line, "=")
		if !found || key != "FORMAT" {
			continue
		}
		switch strings.TrimSpace(value) {
		case hdrFormatRGBE:
			// supported
		case hdrFormatXYZE:
			return TexMetadata{}, fmt.Errorf("%w: %s", ErrHDRFormat, hdrFormatXYZE)
		default:
			return TexMetadata{}, fmt.Errorf("%w: FORMAT=%s", ErrHDRFormat, value)
		}
	}

	res, ok := lines.next()
	if !ok {
		return TexMetadata{}, fmt.Errorf("%w: missing resolution line", ErrHDRHeader)
	}
	width, height, err := parseHDRResolution(res)
	if err != nil {
		return TexMetadata{}, err
	}

	return TexMetadata{
		Width:     width,
		Height:    height,
		Depth:     1,
		ArraySize: 1,
		MipLevels: 1,
		Format:    FormatR32G32B32A32Float,
		Dimension: Dimension2D,
		AlphaMode: AlphaModeOpaque,
	}, nil
}

func hasHDRSignature(line string) bool {
	for _, sig := range hdrSignatures {
		if strings.HasPrefix(line, sig) {
			return true
		}
	}

	return false
}

// parseHDRResolution parses "-Y h +X w" and its flipped variants.
func parseHDRResolution(line string) (width, height int, err error) {
	fields := strings.Fields(line)
	if len(fields) != 4 {
		return 0, 0, fmt.Errorf("%w: resolution %q", ErrHDRHeader, line)
	}

	yAxis, xAxis := fields[0], fields[2]
	if (yAxis != "-Y" && yAxis != "+Y") || (xAxis != "+X" && xAxis != "-X") {
		if strings.HasSuffix(yAxis, "X") {
			return 0, 0, fmt.Errorf("%w: column-major resolution %q", ErrHDRFormat, line)
		}
		return 0, 0, fmt.Errorf("%w: resolution %q", ErrHDRHeader, line)
	}

	height, err = strconv.Atoi(fields[1])
	if err != nil || height < 1 {
		return 0, 0, fmt.Errorf("%w: height %q", ErrHDRHeader, fields[1])
	}
	width, err = strconv.Atoi(fields[3])
	if err != nil || width < 1 {
		return 0, 0, fmt.Errorf("%w: width %q", ErrHDRHeader, fields[3])
	}

	return width, height, nil
}

// hdrLineReader splits the header into lines. The final line may lack
// its terminator unless the header was cut at hdrMaxHeader.
type hdrLineReader struct {
	data     []byte
	pos      int
	complete bool
}

func hdrLines(data []byte) *hdrLineReader {
	return &hdrLineReader{
		data:     data[:min(len(data), hdrMaxHeader)],
		complete: len(data) <= hdrMaxHeader,
	}
}

// next returns the next line without its terminator.
func (r *hdrLineReader) next() (string, bool) {
	rest := r.data[r.pos:]
	i := bytes.IndexByte(rest, '\n')
	switch {
	case i >= 0:
		r.pos += i + 1
	case r.complete && len(rest) > 0:
		r.pos += len(rest)
		i = len(rest)
	default:
		return "", false
	}

	return strings.TrimSuffix(string(rest[:i]), "\r"), true
}
