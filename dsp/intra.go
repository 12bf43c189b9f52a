package dsp

import "github.com/xuguangxin/rav1e/pixel"

// Intra fill kernels. Every kernel writes a w-by-h block into dst (rows
// stride apart). The left slice is ordered bottom-to-top, matching the
// edge buffer layout, so left[h-1-r] is the sample beside row r.

// PredDC fills the block with the average of the above and left samples.
func PredDC[T pixel.Sample](dst []T, stride, w, h int, above, left []T) {
	edges := int32(w + h)
	sum := int32(0)
	for i := 0; i < w; i++ {
		sum += int32(above[i])
	}
	for i := 0; i < h; i++ {
		sum += int32(left[i])
	}
	avg := T((sum + (edges >> 1)) / edges)
	fill(dst, stride, w, h, avg)
}

// PredDC128 fills the block with the flat mid-range value for the bit
// depth. Used at the frame origin where no neighbors exist.
func PredDC128[T pixel.Sample](dst []T, stride, w, h, bitDepth int) {
	fill(dst, stride, w, h, T(int32(128)<<(bitDepth-8)))
}

// PredDCLeft fills the block with the average of the left samples only.
func PredDCLeft[T pixel.Sample](dst []T, stride, w, h int, above, left []T) {
	sum := int32(0)
	for i := 0; i < h; i++ {
		sum += int32(left[i])
	}
	avg := T((sum + int32(h>>1)) / int32(h))
	fill(dst, stride, w, h, avg)
}

// PredDCTop fills the block with the average of the above samples only.
func PredDCTop[T pixel.Sample](dst []T, stride, w, h int, above, left []T) {
	sum := int32(0)
	for i := 0; i < w; i++ {
		sum += int32(above[i])
	}
	avg := T((sum + int32(w>>1)) / int32(w))
	fill(dst, stride, w, h, avg)
}

// PredH replicates the left column across each row.
func PredH[T pixel.Sample](dst []T, stride, w, h int, left []T) {
	for r := 0; r < h; r++ {
		row := dst[r*stride:][:w]
		v := left[h-1-r]
		for c := range row {
			row[c] = v
		}
	}
}

// PredV replicates the above row down each column.
func PredV[T pixel.Sample](dst []T, stride, w, h int, above []T) {
	for r := 0; r < h; r++ {
		copy(dst[r*stride:][:w], above[:w])
	}
}

// PredPaeth picks, per pixel, whichever of above/left/top-left is closest
// to above + left - top_left.
func PredPaeth[T pixel.Sample](
	dst []T, stride, w, h int, above, left []T, topLeft T,
) {
	tl := int32(topLeft)
	for r := 0; r < h; r++ {
		row := dst[r*stride:][:w]
		l := int32(left[h-1-r])
		for c := 0; c < w; c++ {
			a := int32(above[c])
			base := a + l - tl
			pa := abs32(base - a)
			pl := abs32(base - l)
			ptl := abs32(base - tl)
			switch {
			case pa <= pl && pa <= ptl:
				row[c] = T(a)
			case pl <= ptl:
				row[c] = T(l)
			default:
				row[c] = T(tl)
			}
		}
	}
}

// smWeightLog2Scale is the log2 of the smooth prediction weight scale.
const smWeightLog2Scale = 8

// smWeightArrays holds the smooth interpolation weights. The run for a
// dimension d starts at offset d; the first two entries are never indexed.
var smWeightArrays = [128]int32{
	0, 0,
	// dim = 2
	255, 128,
	// dim = 4
	255, 149, 85, 64,
	// dim = 8
	255, 197, 146, 105, 73, 50, 37, 32,
	// dim = 16
	255, 225, 196, 170, 145, 123, 102, 84, 68, 54, 43, 33, 26, 20, 17, 16,
	// dim = 32
	255, 240, 225, 210, 196, 182, 169, 157, 145, 133, 122, 111, 101, 92,
	83, 74, 66, 59, 52, 45, 39, 34, 29, 25, 21, 17, 14, 12, 10, 9, 8, 8,
	// dim = 64
	255, 248, 240, 233, 225, 218, 210, 203, 196, 189, 182, 176, 169, 163,
	156, 150, 144, 138, 133, 127, 121, 116, 111, 106, 101, 96, 91, 86,
	82, 77, 73, 69, 65, 61, 57, 54, 50, 47, 44, 41, 38, 35, 32, 29,
	27, 25, 22, 20, 18, 16, 15, 13, 12, 10, 9, 8, 7, 6, 6, 5, 5, 4, 4, 4,
}

// PredSmooth blends above and left with distance weights in both
// directions.
func PredSmooth[T pixel.Sample](dst []T, stride, w, h int, above, left []T) {
	belowPred := int32(left[0])    // bottom-most left sample
	rightPred := int32(above[w-1]) // right-most above sample
	weightsW := smWeightArrays[w:]
	weightsH := smWeightArrays[h:]

	const scale = 1 << smWeightLog2Scale
	const log2Scale = 1 + smWeightLog2Scale

	for r := 0; r < h; r++ {
		row := dst[r*stride:][:w]
		l := int32(left[h-1-r])
		wh := weightsH[r]
		for c := 0; c < w; c++ {
			ww := weightsW[c]
			pred := int32(above[c])*wh + belowPred*(scale-wh) +
				l*ww + rightPred*(scale-ww)
			row[c] = T((pred + (1 << smWeightLog2Scale)) >> log2Scale)
		}
	}
}

// PredSmoothH blends left and the right-most above sample horizontally.
func PredSmoothH[T pixel.Sample](dst []T, stride, w, h int, above, left []T) {
	rightPred := int32(above[w-1])
	weightsW := smWeightArrays[w:]

	const scale = 1 << smWeightLog2Scale

	for r := 0; r < h; r++ {
		row := dst[r*stride:][:w]
		l := int32(left[h-1-r])
		for c := 0; c < w; c++ {
			ww := weightsW[c]
			pred := l*ww + rightPred*(scale-ww)
			row[c] = T((pred + (scale >> 1)) >> smWeightLog2Scale)
		}
	}
}

// PredSmoothV blends above and the bottom-most left sample vertically.
func PredSmoothV[T pixel.Sample](dst []T, stride, w, h int, above, left []T) {
	belowPred := int32(left[0])
	weightsH := smWeightArrays[h:]

	const scale = 1 << smWeightLog2Scale

	for r := 0; r < h; r++ {
		row := dst[r*stride:][:w]
		wh := weightsH[r]
		for c := 0; c < w; c++ {
			pred := int32(above[c])*wh + belowPred*(scale-wh)
			row[c] = T((pred + (scale >> 1)) >> smWeightLog2Scale)
		}
	}
}

func fill[T pixel.Sample](dst []T, stride, w, h int, v T) {
	for r := 0; r < h; r++ {
		row := dst[r*stride:][:w]
		for c := range row {
			row[c] = v
		}
	}
}

func abs32(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}
