// Package pixel defines the generic sample type shared by the prediction
// core and the DSP kernels.
//
// Planes carry either 8-bit or 16-bit samples depending on the active bit
// depth (8–16). All kernel arithmetic widens to int32, so the constraint
// exists only to keep plane storage compact.
package pixel

// Sample is the set of types a pixel plane may store.
type Sample interface {
	~uint8 | ~uint16
}

// Cast converts a widened intermediate value back to a sample type.
// The caller is responsible for clamping to the bit-depth range first.
func Cast[T Sample](v int32) T {
	return T(v)
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi int32) int32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// MaxValue returns the largest legal sample value for a bit depth.
func MaxValue(bitDepth int) int32 {
	return (1 << bitDepth) - 1
}

// RoundShift rounds v to the nearest multiple of 2^bits, then shifts.
// This is the rounding used throughout the AV1 filter pipeline.
func RoundShift(v int32, bits int) int32 {
	return (v + (1 << (bits - 1))) >> bits
}

// RoundShiftSigned behaves like RoundShift for non-negative v and rounds
// the magnitude for negative v, matching the reference codec's
// ROUND_POWER_OF_TWO_SIGNED.
func RoundShiftSigned(v int32, bits int) int32 {
	if v < 0 {
		return -RoundShift(-v, bits)
	}
	return RoundShift(v, bits)
}
