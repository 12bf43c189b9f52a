package rav1e

import (
	"github.com/xuguangxin/rav1e/pixel"
)

// edgeBufSize holds up to 2*MaxTxSizeDim left samples, one top-left
// sample, and up to 2*MaxTxSizeDim above samples.
const edgeBufSize = 4*MaxTxSizeDim + 1

// IntraEdge is the pixel border used by intra prediction. Left samples
// occupy the low half of the buffer, ordered bottom-to-top and
// right-aligned; the top-left sample sits in the middle; above samples
// follow it. The buffer is built fresh per prediction call and is
// read-only once built. Callers may reuse one buffer across calls.
type IntraEdge[T pixel.Sample] struct {
	buf [edgeBufSize]T
}

const leftEdgeSize = 2 * MaxTxSizeDim

// Above returns the first n above samples.
func (e *IntraEdge[T]) Above(n int) []T {
	return e.buf[leftEdgeSize+1 : leftEdgeSize+1+n]
}

// TopLeft returns the top-left corner sample.
func (e *IntraEdge[T]) TopLeft() T { return e.buf[leftEdgeSize] }

// Left returns the h left samples, ordered bottom-to-top.
func (e *IntraEdge[T]) Left(h int) []T {
	return e.buf[leftEdgeSize-h : leftEdgeSize]
}

// LeftAndBelow returns the h left samples preceded by w below-left
// samples, ordered bottom-to-top.
func (e *IntraEdge[T]) LeftAndBelow(w, h int) []T {
	return e.buf[leftEdgeSize-h-w : leftEdgeSize]
}

// GetIntraEdges assembles the border for predicting the transform block at
// po with the given mode and angle delta. Only the runs the mode can read
// are built.
func GetIntraEdges[T pixel.Sample](
	edge *IntraEdge[T], dst *PlaneRegion[T], po PlaneOffset,
	txSize TxSize, bitDepth int, mode PredictionMode, angleDelta int,
) {
	getIntraEdges(edge, dst, po, txSize, bitDepth, mode, angleDelta, true)
}

// GetIntraEdgesFull assembles every border run regardless of mode. The
// chroma-from-luma analysis path needs the full border before the final
// mode is known.
func GetIntraEdgesFull[T pixel.Sample](
	edge *IntraEdge[T], dst *PlaneRegion[T], po PlaneOffset,
	txSize TxSize, bitDepth int,
) {
	getIntraEdges(edge, dst, po, txSize, bitDepth, DcPred, 0, false)
}

func getIntraEdges[T pixel.Sample](
	edge *IntraEdge[T], dst *PlaneRegion[T], po PlaneOffset,
	txSize TxSize, bitDepth int, mode PredictionMode, angleDelta int,
	haveMode bool,
) {
	cfg := dst.PlaneCfg()
	base := int32(128) << (bitDepth - 8)

	x, y := po.X, po.Y
	w, h := txSize.Width(), txSize.Height()

	left := edge.buf[:leftEdgeSize]
	above := edge.buf[leftEdgeSize+1:]

	needsLeft := true
	needsTopLeft := true
	needsTop := true
	needsTopRight := true
	needsBottomLeft := true

	if haveMode {
		// A PAETH prediction at a frame or tile edge degenerates; derive the
		// needs from the mode it degenerates to.
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

		if mode.IsDirectional() {
			// The directional zones determine the runs: below 90 degrees
			// the block projects onto above and top-right, between 90 and
			// 180 onto above, top-left and left, above 180 onto left and
			// below-left. The angle delta can move V and H into a
			// neighboring zone.
			angle := mode.baseAngle() + angleDelta*angleStep
			needsLeft = angle > 90
			needsTopLeft = angle > 90 && angle < 180
			needsTop = angle < 180
			needsTopRight = angle < 90
			needsBottomLeft = angle > 180
		} else {
			dcOrCfl := mode == DcPred || mode == UvCflPred

			needsLeft = !dcOrCfl || x != 0
			needsTopLeft = mode == PaethPred
			needsTop = !dcOrCfl || y != 0
			needsTopRight = false
			needsBottomLeft = false
		}
	}

	if needsLeft {
		if x != 0 {
			for i := 0; i < h; i++ {
				left[leftEdgeSize-h+i] = dst.At(x-1, y+h-1-i)
			}
		} else {
			var val T
			if y != 0 {
				val = dst.At(0, y-1)
			} else {
				val = T(base + 1)
			}
			for i := leftEdgeSize - h; i < leftEdgeSize; i++ {
				left[i] = val
			}
		}
	}

	if needsTopLeft {
		switch {
		case x == 0 && y == 0:
			edge.buf[leftEdgeSize] = T(base)
		case y == 0:
			edge.buf[leftEdgeSize] = dst.At(x-1, 0)
		case x == 0:
			edge.buf[leftEdgeSize] = dst.At(0, y-1)
		default:
			edge.buf[leftEdgeSize] = dst.At(x-1, y-1)
		}
	}

	if needsTop {
		if y != 0 {
			copy(above[:w], dst.Row(y-1)[x:x+w])
		} else {
			var val T
			if x != 0 {
				val = dst.At(x-1, 0)
			} else {
				val = T(base - 1)
			}
			for i := 0; i < w; i++ {
				above[i] = val
			}
		}
	}

	if needsTopRight {
		bo := BlockOffset{X: x >> (2 - cfg.XDec), Y: y >> (2 - cfg.YDec)}
		bsize := BlockSizeFromWH(w<<cfg.XDec, h<<cfg.YDec)

		numAvail := 0
		if y != 0 && HasTopRight(bo, bsize) {
			numAvail = min(w, dst.Rect().Width-x-w)
		}
		if numAvail > 0 {
			copy(above[w:w+numAvail], dst.Row(y-1)[x+w:x+w+numAvail])
		}
		if numAvail < h {
			// Shortfall extends the last available sample.
			val := above[w+numAvail-1]
			for i := w + numAvail; i < w+h; i++ {
				above[i] = val
			}
		}
	}

	if needsBottomLeft {
		bo := BlockOffset{X: x >> (2 - cfg.XDec), Y: y >> (2 - cfg.YDec)}
		bsize := BlockSizeFromWH(w<<cfg.XDec, h<<cfg.YDec)

		numAvail := 0
		if x != 0 && HasBottomLeft(bo, bsize) {
			numAvail = min(h, dst.Rect().Height-y-h)
		}
		if numAvail > 0 {
			for i := 0; i < numAvail; i++ {
				left[leftEdgeSize-h-1-i] = dst.At(x-1, y+h+i)
			}
		}
		if numAvail < w {
			val := left[leftEdgeSize-h-numAvail]
			for i := leftEdgeSize - h - w; i < leftEdgeSize-h-numAvail; i++ {
				left[i] = val
			}
		}
	}
}
