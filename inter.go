package rav1e

import (
	"github.com/xuguangxin/rav1e/dsp"
	"github.com/xuguangxin/rav1e/pixel"
)

// interpParams carries one reference tap window together with its
// sub-pixel phases.
type interpParams[T pixel.Sample] struct {
	window  dsp.PlaneWindow[T]
	colFrac int32
	rowFrac int32
}

// getInterpParams resolves the reference window and 1/16-pel phases for
// one motion vector against one reconstructed plane. The motion vector is
// in eighth luma pixels; chroma decimation folds into the shift.
func getInterpParams[T pixel.Sample](
	rec *Plane[T], frameOrigin PlaneOffset, mv MotionVector,
) interpParams[T] {
	shiftRow := 3 + rec.Cfg.YDec
	shiftCol := 3 + rec.Cfg.XDec
	rowOffset := int(mv.Row) >> shiftRow
	colOffset := int(mv.Col) >> shiftCol
	rowFrac := int32(int(mv.Row)-(rowOffset<<shiftRow)) << (4 - shiftRow)
	colFrac := int32(int(mv.Col)-(colOffset<<shiftCol)) << (4 - shiftCol)

	return interpParams[T]{
		window: dsp.PlaneWindow[T]{
			Data:   rec.Data,
			Stride: rec.Cfg.Stride,
			X:      frameOrigin.X + colOffset,
			Y:      frameOrigin.Y + rowOffset,
			Width:  rec.Cfg.Width,
			Height: rec.Cfg.Height,
		},
		colFrac: colFrac,
		rowFrac: rowFrac,
	}
}

// refPlane returns the reconstructed plane backing one reference slot, or
// nil when the slot is unfilled.
func refPlane[T pixel.Sample](
	fi *FrameInvariants[T], p int, ref RefType,
) *Plane[T] {
	rec := fi.RecBuffer.Frames[fi.RefFrames[ref.ToIndex()]]
	if rec == nil {
		return nil
	}
	return rec.Planes[p]
}

// PredictInter motion-compensates the width-by-height block at po (a
// tile-relative offset in plane p) into dst. refFrames and mvs carry the
// one or two references of the block; the second slot is ignored unless
// it names a real inter reference. A reference slot whose reconstructed
// frame is missing is skipped, leaving the corresponding contribution
// zero.
func PredictInter[T pixel.Sample](
	fi *FrameInvariants[T], tileRect TileRect, p int, po PlaneOffset,
	dst *PlaneRegion[T], width, height int,
	refFrames [2]RefType, mvs [2]MotionVector,
) {
	isCompound := refFrames[1] != IntraFrame && refFrames[1] != NoneFrame
	bitDepth := fi.Sequence.BitDepth
	frameOrigin := tileRect.ToFramePlaneOffset(po)

	if !isCompound {
		rec := refPlane(fi, p, refFrames[0])
		if rec == nil {
			Logger().Debug("inter prediction skipped, reference not in buffer",
				"ref", refFrames[0].String(), "plane", p)
			return
		}
		ip := getInterpParams(rec, frameOrigin, mvs[0])
		dsp.Put8Tap(dst.Data(), dst.Stride(), &ip.window, width, height,
			ip.colFrac, ip.rowFrac, dsp.FilterRegular, dsp.FilterRegular,
			bitDepth)
		return
	}

	// Zeroed scratch keeps the blend deterministic when a reference slot
	// is skipped.
	var tmp [2][MaxBlockDim * MaxBlockDim]int16
	for i := 0; i < 2; i++ {
		rec := refPlane(fi, p, refFrames[i])
		if rec == nil {
			Logger().Debug("compound contribution skipped, reference not in buffer",
				"ref", refFrames[i].String(), "plane", p)
			continue
		}
		ip := getInterpParams(rec, frameOrigin, mvs[i])
		dsp.Prep8Tap(tmp[i][:], &ip.window, width, height,
			ip.colFrac, ip.rowFrac, dsp.FilterRegular, dsp.FilterRegular,
			bitDepth)
	}
	dsp.Avg(dst.Data(), dst.Stride(), tmp[0][:], tmp[1][:], width, height,
		bitDepth)
}
