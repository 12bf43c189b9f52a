package dsp

import "github.com/xuguangxin/rav1e/pixel"

// drIntraDerivative maps a prediction angle to its slope in 1/64-pixel
// units. Only the base angles the dispatcher can produce carry values;
// the table is sparse by construction.
var drIntraDerivative = [90]int32{
	3: 1023, 6: 547, 9: 372, 14: 273, 17: 215, 20: 178,
	23: 151, 26: 132, 29: 116, 32: 102, 36: 90, 39: 80,
	42: 71, 45: 64, 48: 57, 51: 51, 54: 45, 58: 40,
	61: 35, 64: 31, 67: 27, 70: 23, 73: 19, 76: 15,
	81: 11, 84: 7, 87: 3,
}

// PredDirectional interpolates along the given angle (in degrees,
// measured from the positive row axis). The above run must hold w+h
// samples; leftAndBelow holds h left samples preceded by w below-left
// samples, ordered bottom-to-top.
func PredDirectional[T pixel.Sample](
	dst []T, stride, w, h int,
	above, leftAndBelow []T, topLeft T, angle, bitDepth int,
) {
	switch {
	case angle > 0 && angle < 90:
		dirZone1(dst, stride, w, h, above, drIntraDerivative[angle])
	case angle > 90 && angle < 180:
		dx := drIntraDerivative[180-angle]
		dy := drIntraDerivative[angle-90]
		dirZone2(dst, stride, w, h, above, leftAndBelow, topLeft, dx, dy)
	case angle > 180 && angle < 270:
		dirZone3(dst, stride, w, h, leftAndBelow, drIntraDerivative[270-angle])
	case angle == 90:
		PredV(dst, stride, w, h, above)
	case angle == 180:
		PredH(dst, stride, w, h, leftAndBelow[len(leftAndBelow)-h:])
	default:
		panic("dsp: directional angle out of range")
	}
}

// Zone 1: the whole block projects onto the above run.
func dirZone1[T pixel.Sample](dst []T, stride, w, h int, above []T, dx int32) {
	maxBaseX := w + h - 1
	x := dx
	for r := 0; r < h; r++ {
		row := dst[r*stride:][:w]
		base := int(x >> 6)
		shift := (x >> 1) & 0x1f
		for c := 0; c < w; c++ {
			if base+c >= maxBaseX {
				v := above[maxBaseX]
				for ; c < w; c++ {
					row[c] = v
				}
				break
			}
			val := int32(above[base+c])*(32-shift) + int32(above[base+c+1])*shift
			row[c] = T((val + 16) >> 5)
		}
		x += dx
	}
}

// Zone 2: columns project onto the above run or, left of the top-left
// corner, onto the left run.
func dirZone2[T pixel.Sample](
	dst []T, stride, w, h int,
	above, leftAndBelow []T, topLeft T, dx, dy int32,
) {
	aboveAt := func(i int) int32 {
		if i < 0 {
			return int32(topLeft)
		}
		return int32(above[i])
	}
	// leftAndBelow is bottom-to-top; logical index 0 is the sample beside
	// row 0.
	leftAt := func(i int) int32 {
		if i < 0 {
			return int32(topLeft)
		}
		return int32(leftAndBelow[len(leftAndBelow)-1-i])
	}

	for r := 0; r < h; r++ {
		row := dst[r*stride:][:w]
		for c := 0; c < w; c++ {
			x := int32(c<<6) - int32(r+1)*dx
			baseX := int(x >> 6)
			var val int32
			if baseX >= -1 {
				shift := (x >> 1) & 0x1f
				val = aboveAt(baseX)*(32-shift) + aboveAt(baseX+1)*shift
			} else {
				y := int32(r<<6) - int32(c+1)*dy
				baseY := int(y >> 6)
				shift := (y >> 1) & 0x1f
				val = leftAt(baseY)*(32-shift) + leftAt(baseY+1)*shift
			}
			row[c] = T((val + 16) >> 5)
		}
	}
}

// Zone 3: the whole block projects onto the left run, reading past the
// block into the below-left extension.
func dirZone3[T pixel.Sample](
	dst []T, stride, w, h int, leftAndBelow []T, dy int32,
) {
	leftAt := func(i int) int32 {
		return int32(leftAndBelow[len(leftAndBelow)-1-i])
	}
	maxBaseY := w + h - 1

	y := dy
	for c := 0; c < w; c++ {
		base := int(y >> 6)
		shift := (y >> 1) & 0x1f
		for r := 0; r < h; r++ {
			if base+r >= maxBaseY {
				v := T(leftAt(maxBaseY))
				for ; r < h; r++ {
					dst[r*stride+c] = v
				}
				break
			}
			val := leftAt(base+r)*(32-shift) + leftAt(base+r+1)*shift
			dst[r*stride+c] = T((val + 16) >> 5)
		}
		y += dy
	}
}
