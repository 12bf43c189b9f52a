package rav1e

import (
	"github.com/xuguangxin/rav1e/dsp"
	"github.com/xuguangxin/rav1e/pixel"
)

// angleStep is one angle-delta unit in degrees.
const angleStep = 3

// MaxAngleDelta bounds the angle delta of directional modes.
const MaxAngleDelta = 3

// baseAngle returns the nominal prediction angle in degrees. The diagonal
// mode names are historical; the angles below are the ones the arithmetic
// actually uses.
func (m PredictionMode) baseAngle() int {
	switch m {
	case VPred:
		return 90
	case HPred:
		return 180
	case D45Pred:
		return 45
	case D135Pred:
		return 135
	case D117Pred:
		return 113
	case D153Pred:
		return 157
	case D207Pred:
		return 203
	case D63Pred:
		return 67
	}
	return 0
}

// PredictIntra fills the transform block covered by dst from the edge
// buffer. The edge buffer must have been built for the same block with
// GetIntraEdges. ac carries the luma AC coefficients for chroma-from-luma,
// row-major with the block width per row; it is read only when mode is
// UvCflPred with a nonzero alpha. angleDelta refines directional modes in
// steps of 3 degrees.
func PredictIntra[T pixel.Sample](
	tileRect TileRect, dst *PlaneRegion[T], txSize TxSize, bitDepth int,
	ac []int16, mode PredictionMode, angleDelta int, alpha int16,
	edge *IntraEdge[T],
) {
	if !mode.IsIntra() {
		panic("rav1e: intra prediction requested for an inter mode")
	}

	w, h := txSize.Width(), txSize.Height()
	x := dst.Rect().X - tileRect.X
	y := dst.Rect().Y - tileRect.Y

	// PAETH needs both neighbors and the corner; at a tile edge it
	// collapses to the mode that reads only the side that exists. The
	// edge builder derives its need flags from the same switch.
	if mode == PaethPred {
		switch {
		case x == 0 && y == 0:
			mode = DcPred
		case y == 0:
			mode = HPred
		case x == 0:
			mode = VPred
		}
	}

	data := dst.Data()
	stride := dst.Stride()

	above := edge.Above(w + h)
	left := edge.Left(h)
	topLeft := edge.TopLeft()

	// A zero alpha carries no luma contribution; the chroma-from-luma mode
	// degenerates to plain DC.
	if mode == UvCflPred && alpha == 0 {
		mode = DcPred
	}

	switch {
	case mode == DcPred:
		switch {
		case x > 0 && y > 0:
			dsp.PredDC(data, stride, w, h, above, left)
		case x > 0:
			dsp.PredDCLeft(data, stride, w, h, above, left)
		case y > 0:
			dsp.PredDCTop(data, stride, w, h, above, left)
		default:
			dsp.PredDC128(data, stride, w, h, bitDepth)
		}
	case mode == UvCflPred:
		switch {
		case x > 0 && y > 0:
			dsp.PredCfl(data, stride, w, h, ac, alpha, bitDepth, above, left)
		case x > 0:
			dsp.PredCflLeft(data, stride, w, h, ac, alpha, bitDepth, above, left)
		case y > 0:
			dsp.PredCflTop(data, stride, w, h, ac, alpha, bitDepth, above, left)
		default:
			dsp.PredCfl128(data, stride, w, h, ac, alpha, bitDepth)
		}
	case mode == PaethPred:
		dsp.PredPaeth(data, stride, w, h, above, left, topLeft)
	case mode == SmoothPred:
		dsp.PredSmooth(data, stride, w, h, above, left)
	case mode == SmoothHPred:
		dsp.PredSmoothH(data, stride, w, h, above, left)
	case mode == SmoothVPred:
		dsp.PredSmoothV(data, stride, w, h, above, left)
	case mode == VPred && angleDelta == 0:
		dsp.PredV(data, stride, w, h, above)
	case mode == HPred && angleDelta == 0:
		dsp.PredH(data, stride, w, h, left)
	case mode.IsDirectional():
		angle := mode.baseAngle() + angleDelta*angleStep
		dsp.PredDirectional(data, stride, w, h, above,
			edge.LeftAndBelow(w, h), topLeft, angle, bitDepth)
	default:
		panic("rav1e: no intra predictor for mode")
	}
}
