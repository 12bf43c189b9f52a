package dsp

import "github.com/xuguangxin/rav1e/pixel"

// FilterMode selects the sub-pixel interpolation filter family.
type FilterMode int

const (
	FilterRegular FilterMode = iota
	FilterSmooth
	FilterSharp
	FilterBilinear
)

// 8-tap interpolation coefficients, 16 phases in 1/16-pel steps. The taps
// of each phase sum to 128.
var subPelFilters8 = [16][8]int32{
	{0, 0, 0, 128, 0, 0, 0, 0},
	{0, 2, -6, 126, 8, -2, 0, 0},
	{0, 2, -10, 122, 18, -4, 0, 0},
	{0, 2, -12, 116, 28, -8, 2, 0},
	{0, 2, -14, 110, 38, -10, 2, 0},
	{0, 2, -14, 102, 48, -12, 2, 0},
	{0, 2, -16, 94, 58, -12, 2, 0},
	{0, 2, -14, 84, 66, -12, 2, 0},
	{0, 2, -14, 76, 76, -14, 2, 0},
	{0, 2, -12, 66, 84, -14, 2, 0},
	{0, 2, -12, 58, 94, -16, 2, 0},
	{0, 2, -12, 48, 102, -14, 2, 0},
	{0, 2, -10, 38, 110, -14, 2, 0},
	{0, 2, -8, 28, 116, -12, 2, 0},
	{0, 0, -4, 18, 122, -10, 2, 0},
	{0, 0, -2, 8, 126, -6, 2, 0},
}

var subPelFilters8Smooth = [16][8]int32{
	{0, 0, 0, 128, 0, 0, 0, 0},
	{0, 2, 28, 62, 34, 2, 0, 0},
	{0, 0, 26, 62, 36, 4, 0, 0},
	{0, 0, 22, 62, 40, 4, 0, 0},
	{0, 0, 20, 60, 42, 6, 0, 0},
	{0, 0, 18, 58, 44, 8, 0, 0},
	{0, 0, 16, 56, 46, 10, 0, 0},
	{0, -2, 16, 54, 48, 12, 0, 0},
	{0, -2, 14, 52, 52, 14, -2, 0},
	{0, 0, 12, 48, 54, 16, -2, 0},
	{0, 0, 10, 46, 56, 16, 0, 0},
	{0, 0, 8, 44, 58, 18, 0, 0},
	{0, 0, 6, 42, 60, 20, 0, 0},
	{0, 0, 4, 40, 62, 22, 0, 0},
	{0, 0, 4, 36, 62, 26, 0, 0},
	{0, 0, 2, 34, 62, 28, 2, 0},
}

var subPelFilters8Sharp = [16][8]int32{
	{0, 0, 0, 128, 0, 0, 0, 0},
	{-2, 2, -6, 126, 8, -2, 2, 0},
	{-2, 6, -12, 124, 16, -6, 4, -2},
	{-2, 8, -18, 120, 26, -10, 6, -2},
	{-4, 10, -22, 116, 38, -14, 6, -2},
	{-4, 10, -22, 108, 48, -18, 8, -2},
	{-4, 10, -24, 100, 60, -20, 8, -2},
	{-4, 10, -24, 90, 70, -22, 10, -2},
	{-4, 12, -24, 80, 80, -24, 12, -4},
	{-2, 10, -22, 70, 90, -24, 10, -4},
	{-2, 8, -20, 60, 100, -24, 10, -4},
	{-2, 8, -18, 48, 108, -22, 10, -4},
	{-2, 6, -14, 38, 116, -22, 10, -4},
	{-2, 6, -10, 26, 120, -18, 8, -2},
	{-2, 4, -6, 16, 124, -12, 6, -2},
	{0, 2, -2, 8, 126, -6, 2, -2},
}

// 4-tap variants used when the filtered dimension is 4 or less.
var subPelFilters4 = [16][8]int32{
	{0, 0, 0, 128, 0, 0, 0, 0},
	{0, 0, -4, 126, 8, -2, 0, 0},
	{0, 0, -8, 122, 18, -4, 0, 0},
	{0, 0, -10, 116, 28, -6, 0, 0},
	{0, 0, -12, 110, 38, -8, 0, 0},
	{0, 0, -12, 102, 48, -10, 0, 0},
	{0, 0, -14, 94, 58, -10, 0, 0},
	{0, 0, -12, 84, 66, -10, 0, 0},
	{0, 0, -12, 76, 76, -12, 0, 0},
	{0, 0, -10, 66, 84, -12, 0, 0},
	{0, 0, -10, 58, 94, -14, 0, 0},
	{0, 0, -10, 48, 102, -12, 0, 0},
	{0, 0, -8, 38, 110, -12, 0, 0},
	{0, 0, -6, 28, 116, -10, 0, 0},
	{0, 0, -4, 18, 122, -8, 0, 0},
	{0, 0, -2, 8, 126, -4, 0, 0},
}

var subPelFilters4Smooth = [16][8]int32{
	{0, 0, 0, 128, 0, 0, 0, 0},
	{0, 0, 30, 62, 34, 2, 0, 0},
	{0, 0, 26, 62, 36, 4, 0, 0},
	{0, 0, 22, 62, 40, 4, 0, 0},
	{0, 0, 20, 60, 42, 6, 0, 0},
	{0, 0, 18, 58, 44, 8, 0, 0},
	{0, 0, 16, 56, 46, 10, 0, 0},
	{0, 0, 14, 54, 48, 12, 0, 0},
	{0, 0, 12, 52, 52, 12, 0, 0},
	{0, 0, 12, 48, 54, 14, 0, 0},
	{0, 0, 10, 46, 56, 16, 0, 0},
	{0, 0, 8, 44, 58, 18, 0, 0},
	{0, 0, 6, 42, 60, 20, 0, 0},
	{0, 0, 4, 40, 62, 22, 0, 0},
	{0, 0, 4, 36, 62, 26, 0, 0},
	{0, 0, 2, 34, 62, 30, 0, 0},
}

var bilinearFilters = [16][8]int32{
	{0, 0, 0, 128, 0, 0, 0, 0},
	{0, 0, 0, 120, 8, 0, 0, 0},
	{0, 0, 0, 112, 16, 0, 0, 0},
	{0, 0, 0, 104, 24, 0, 0, 0},
	{0, 0, 0, 96, 32, 0, 0, 0},
	{0, 0, 0, 88, 40, 0, 0, 0},
	{0, 0, 0, 80, 48, 0, 0, 0},
	{0, 0, 0, 72, 56, 0, 0, 0},
	{0, 0, 0, 64, 64, 0, 0, 0},
	{0, 0, 0, 56, 72, 0, 0, 0},
	{0, 0, 0, 48, 80, 0, 0, 0},
	{0, 0, 0, 40, 88, 0, 0, 0},
	{0, 0, 0, 32, 96, 0, 0, 0},
	{0, 0, 0, 24, 104, 0, 0, 0},
	{0, 0, 0, 16, 112, 0, 0, 0},
	{0, 0, 0, 8, 120, 0, 0, 0},
}

// getFilter returns the tap set for one axis. Dimensions of 4 or less use
// the short filters.
func getFilter(mode FilterMode, frac int32, length int) *[8]int32 {
	phase := frac & 15
	switch mode {
	case FilterRegular:
		if length <= 4 {
			return &subPelFilters4[phase]
		}
		return &subPelFilters8[phase]
	case FilterSmooth:
		if length <= 4 {
			return &subPelFilters4Smooth[phase]
		}
		return &subPelFilters8Smooth[phase]
	case FilterSharp:
		return &subPelFilters8Sharp[phase]
	case FilterBilinear:
		return &bilinearFilters[phase]
	}
	panic("dsp: unknown filter mode")
}

func intermediateBits(bitDepth int) int {
	if bitDepth == 12 {
		return 2
	}
	return 4
}

// Put8Tap writes final interpolated pixels for the block at the window
// origin into dst. colFrac and rowFrac are 1/16-pel phases; a zero phase
// on both axes degenerates to a plain copy.
func Put8Tap[T pixel.Sample](
	dst []T, dstStride int, src *PlaneWindow[T], width, height int,
	colFrac, rowFrac int32, modeX, modeY FilterMode, bitDepth int,
) {
	maxSampleVal := pixel.MaxValue(bitDepth)
	ib := intermediateBits(bitDepth)

	switch {
	case colFrac == 0 && rowFrac == 0:
		for r := 0; r < height; r++ {
			row := dst[r*dstStride:][:width]
			for c := 0; c < width; c++ {
				row[c] = src.Sample(c, r)
			}
		}
	case colFrac == 0:
		yFilter := getFilter(modeY, rowFrac, height)
		for r := 0; r < height; r++ {
			row := dst[r*dstStride:][:width]
			for c := 0; c < width; c++ {
				sum := int32(0)
				for k := 0; k < 8; k++ {
					sum += yFilter[k] * int32(src.Sample(c, r+k-3))
				}
				row[c] = T(pixel.Clamp(pixel.RoundShift(sum, 7), 0, maxSampleVal))
			}
		}
	case rowFrac == 0:
		xFilter := getFilter(modeX, colFrac, width)
		for r := 0; r < height; r++ {
			row := dst[r*dstStride:][:width]
			for c := 0; c < width; c++ {
				sum := int32(0)
				for k := 0; k < 8; k++ {
					sum += xFilter[k] * int32(src.Sample(c+k-3, r))
				}
				t := pixel.RoundShift(sum, 7-ib)
				row[c] = T(pixel.Clamp(pixel.RoundShift(t, ib), 0, maxSampleVal))
			}
		}
	default:
		xFilter := getFilter(modeX, colFrac, width)
		yFilter := getFilter(modeY, rowFrac, height)
		var intermediate [(maxBlockDim + 7) * 8]int16

		for cg := 0; cg < width; cg += 8 {
			cw := min(8, width-cg)
			for r := 0; r < height+7; r++ {
				for c := cg; c < cg+cw; c++ {
					sum := int32(0)
					for k := 0; k < 8; k++ {
						sum += xFilter[k] * int32(src.Sample(c+k-3, r-3))
					}
					intermediate[r*8+(c-cg)] = int16(pixel.RoundShift(sum, 7-ib))
				}
			}
			for r := 0; r < height; r++ {
				row := dst[r*dstStride:]
				for c := cg; c < cg+cw; c++ {
					sum := int32(0)
					for k := 0; k < 8; k++ {
						sum += yFilter[k] * int32(intermediate[(r+k)*8+(c-cg)])
					}
					row[c] = T(pixel.Clamp(pixel.RoundShift(sum, 7+ib), 0, maxSampleVal))
				}
			}
		}
	}
}

// maxBlockDim bounds the two-pass intermediate buffer.
const maxBlockDim = 128

// Prep8Tap interpolates into a higher-precision temporary for later
// blending. Values carry the intermediate-bits scale and are not rounded
// to the sample range.
func Prep8Tap[T pixel.Sample](
	tmp []int16, src *PlaneWindow[T], width, height int,
	colFrac, rowFrac int32, modeX, modeY FilterMode, bitDepth int,
) {
	ib := intermediateBits(bitDepth)

	switch {
	case colFrac == 0 && rowFrac == 0:
		for r := 0; r < height; r++ {
			for c := 0; c < width; c++ {
				tmp[r*width+c] = int16(src.Sample(c, r)) << ib
			}
		}
	case colFrac == 0:
		yFilter := getFilter(modeY, rowFrac, height)
		for r := 0; r < height; r++ {
			for c := 0; c < width; c++ {
				sum := int32(0)
				for k := 0; k < 8; k++ {
					sum += yFilter[k] * int32(src.Sample(c, r+k-3))
				}
				tmp[r*width+c] = int16(pixel.RoundShift(sum, 7-ib))
			}
		}
	case rowFrac == 0:
		xFilter := getFilter(modeX, colFrac, width)
		for r := 0; r < height; r++ {
			for c := 0; c < width; c++ {
				sum := int32(0)
				for k := 0; k < 8; k++ {
					sum += xFilter[k] * int32(src.Sample(c+k-3, r))
				}
				tmp[r*width+c] = int16(pixel.RoundShift(sum, 7-ib))
			}
		}
	default:
		xFilter := getFilter(modeX, colFrac, width)
		yFilter := getFilter(modeY, rowFrac, height)
		var intermediate [(maxBlockDim + 7) * 8]int16

		for cg := 0; cg < width; cg += 8 {
			cw := min(8, width-cg)
			for r := 0; r < height+7; r++ {
				for c := cg; c < cg+cw; c++ {
					sum := int32(0)
					for k := 0; k < 8; k++ {
						sum += xFilter[k] * int32(src.Sample(c+k-3, r-3))
					}
					intermediate[r*8+(c-cg)] = int16(pixel.RoundShift(sum, 7-ib))
				}
			}
			for r := 0; r < height; r++ {
				for c := cg; c < cg+cw; c++ {
					sum := int32(0)
					for k := 0; k < 8; k++ {
						sum += yFilter[k] * int32(intermediate[(r+k)*8+(c-cg)])
					}
					tmp[r*width+c] = int16(pixel.RoundShift(sum, 7))
				}
			}
		}
	}
}

// Avg blends two prepared buffers into final pixels, undoing the
// intermediate-bits scale with rounding.
func Avg[T pixel.Sample](
	dst []T, dstStride int, tmp1, tmp2 []int16, width, height, bitDepth int,
) {
	maxSampleVal := pixel.MaxValue(bitDepth)
	ib := intermediateBits(bitDepth)

	for r := 0; r < height; r++ {
		row := dst[r*dstStride:][:width]
		for c := 0; c < width; c++ {
			sum := int32(tmp1[r*width+c]) + int32(tmp2[r*width+c])
			row[c] = T(pixel.Clamp(pixel.RoundShift(sum, ib+1), 0, maxSampleVal))
		}
	}
}
