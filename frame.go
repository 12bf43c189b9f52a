package rav1e

import "github.com/xuguangxin/rav1e/pixel"

// ChromaSampling is the chroma plane layout relative to luma.
type ChromaSampling int

const (
	// Cs420 halves chroma in both dimensions.
	Cs420 ChromaSampling = iota
	// Cs422 halves chroma horizontally.
	Cs422
	// Cs444 keeps chroma at full resolution.
	Cs444
)

// Decimation returns the chroma subsampling shifts for each axis.
func (c ChromaSampling) Decimation() (xdec, ydec int) {
	switch c {
	case Cs420:
		return 1, 1
	case Cs422:
		return 1, 0
	case Cs444:
		return 0, 0
	}
	panic("rav1e: invalid chroma sampling")
}

// Sequence carries the per-sequence coding parameters the prediction core
// reads.
type Sequence struct {
	Width, Height  int
	BitDepth       int
	ChromaSampling ChromaSampling
}

// Frame is one decoded or reconstructed picture: a luma plane and two
// chroma planes.
type Frame[T pixel.Sample] struct {
	Planes [3]*Plane[T]
}

// NewFrame allocates a frame of the given luma dimensions. Chroma plane
// dimensions round up under decimation.
func NewFrame[T pixel.Sample](width, height int, cs ChromaSampling) *Frame[T] {
	xdec, ydec := cs.Decimation()
	cw := (width + (1 << xdec) - 1) >> xdec
	ch := (height + (1 << ydec) - 1) >> ydec
	return &Frame[T]{
		Planes: [3]*Plane[T]{
			NewPlane[T](width, height, 0, 0),
			NewPlane[T](cw, ch, xdec, ydec),
			NewPlane[T](cw, ch, xdec, ydec),
		},
	}
}

// RefFramesSet holds the reconstructed frames available as references.
// Unfilled slots are nil.
type RefFramesSet[T pixel.Sample] struct {
	Frames [RefFrames]*Frame[T]
}

// FrameInvariants is the per-frame state the prediction engine reads. It
// is immutable while a frame is being encoded, so concurrent block
// workers may share one value.
type FrameInvariants[T pixel.Sample] struct {
	Sequence *Sequence
	// RefFrames maps each of the seven inter reference slots to an index
	// into RecBuffer.
	RefFrames [InterRefsPerFrame]int
	RecBuffer RefFramesSet[T]
}
