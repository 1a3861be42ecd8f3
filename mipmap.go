package dxtex

import "fmt"

// fullMipChain returns the number of levels from the largest dimension down to 1x1.
func fullMipChain(width, height, depth int) int {
	count := 1
	w, h, d := width, height, depth
	for w > 1 || h > 1 || d > 1 {
		count++
		w, h, d = w>>1, h>>1, d>>1
	}

	return count
}

// CalculateMipLevels resolves a requested mip count for the given dimensions.
// Zero means the full chain, floor(log2(max(width, height, depth)))+1.
// A request longer than the full chain fails with ErrInvalidMipLevels.
func CalculateMipLevels(width, height, depth, mipLevels int) (int, error) {
	if width < 1 || height < 1 || depth < 1 {
		return 0, fmt.Errorf("%w: %dx%dx%d", ErrInvalidDimensions, width, height, depth)
	}

	chain := fullMipChain(width, height, depth)
	switch {
	case mipLevels == 0:
		return chain, nil
	case mipLevels < 0 || mipLevels > chain:
		return 0, fmt.Errorf("%w: %d for %dx%dx%d (max %d)", ErrInvalidMipLevels, mipLevels, width, height, depth, chain)
	}

	return mipLevels, nil
}

// mipDimension calculates the dimension of a mipmap level.
func mipDimension(base, level int) int {
	result := base >> level
	if result < 1 {
		return 1
	}

	return result
}
