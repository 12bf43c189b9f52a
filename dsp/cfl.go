package dsp

import "github.com/xuguangxin/rav1e/pixel"

// Chroma-from-luma kernels. Each fills the block with its DC variant and
// then biases every pixel by alpha times the caller-supplied AC
// coefficient, clamped to the bit-depth range. The ac slice is row-major,
// w coefficients per row.

func scaledLumaQ0(alphaQ3 int16, acQ3 int16) int32 {
	scaledLumaQ6 := int32(alphaQ3) * int32(acQ3)
	return pixel.RoundShiftSigned(scaledLumaQ6, 6)
}

func cflInner[T pixel.Sample](dst []T, stride, w, h int, ac []int16, alpha int16, bitDepth int) {
	sampleMax := pixel.MaxValue(bitDepth)
	avg := int32(dst[0])
	for r := 0; r < h; r++ {
		row := dst[r*stride:][:w]
		luma := ac[r*w:][:w]
		for c := 0; c < w; c++ {
			v := avg + scaledLumaQ0(alpha, luma[c])
			row[c] = T(pixel.Clamp(v, 0, sampleMax))
		}
	}
}

// PredCfl predicts from the average of above and left plus the scaled
// luma AC contribution.
func PredCfl[T pixel.Sample](
	dst []T, stride, w, h int, ac []int16, alpha int16, bitDepth int,
	above, left []T,
) {
	PredDC(dst, stride, w, h, above, left)
	cflInner(dst, stride, w, h, ac, alpha, bitDepth)
}

// PredCfl128 is the frame-origin variant over the flat mid-range value.
func PredCfl128[T pixel.Sample](
	dst []T, stride, w, h int, ac []int16, alpha int16, bitDepth int,
) {
	PredDC128(dst, stride, w, h, bitDepth)
	cflInner(dst, stride, w, h, ac, alpha, bitDepth)
}

// PredCflLeft averages the left samples only before the AC correction.
func PredCflLeft[T pixel.Sample](
	dst []T, stride, w, h int, ac []int16, alpha int16, bitDepth int,
	above, left []T,
) {
	PredDCLeft(dst, stride, w, h, above, left)
	cflInner(dst, stride, w, h, ac, alpha, bitDepth)
}

// PredCflTop averages the above samples only before the AC correction.
func PredCflTop[T pixel.Sample](
	dst []T, stride, w, h int, ac []int16, alpha int16, bitDepth int,
	above, left []T,
) {
	PredDCTop(dst, stride, w, h, above, left)
	cflInner(dst, stride, w, h, ac, alpha, bitDepth)
}
