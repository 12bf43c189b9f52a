package rav1e

// MotionVector is a displacement in eighth-pixel units. It is a plain
// value type; all arithmetic is exact fixed-point integer arithmetic.
type MotionVector struct {
	Row, Col int16
}

// Add returns the componentwise sum of two motion vectors.
func (mv MotionVector) Add(other MotionVector) MotionVector {
	return MotionVector{Row: mv.Row + other.Row, Col: mv.Col + other.Col}
}

// Div returns the vector with both components divided by s. Division
// truncates toward zero; this affects reconstructed pixels bit-for-bit and
// must not be changed to rounding.
func (mv MotionVector) Div(s int16) MotionVector {
	return MotionVector{Row: mv.Row / s, Col: mv.Col / s}
}

// QuantizeToFullpel truncates both components toward zero to the nearest
// full-pixel multiple.
func (mv MotionVector) QuantizeToFullpel() MotionVector {
	return MotionVector{Row: (mv.Row / 8) * 8, Col: (mv.Col / 8) * 8}
}

// IsZero reports whether both components are zero.
func (mv MotionVector) IsZero() bool {
	return mv.Row == 0 && mv.Col == 0
}

// Symbols for coding which motion vector components are zero jointly.
type MvJointType int

const (
	MvJointZero  MvJointType = iota // both components zero
	MvJointHnzvz                    // vertical zero, horizontal nonzero
	MvJointHzvnz                    // horizontal zero, vertical nonzero
	MvJointHnzvnz                   // both components nonzero
)

// MvJoints is the number of joint-zero symbols.
const MvJoints = 4

// MvSubpelPrecision selects how finely motion vectors are signaled.
type MvSubpelPrecision int

const (
	MvSubpelNone MvSubpelPrecision = iota - 1
	MvSubpelLowPrecision
	MvSubpelHighPrecision
)
