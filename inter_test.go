package rav1e

import "testing"

// interFixture builds a frame context with the LAST_FRAME slot populated.
func interFixture(refs ...*Frame[uint8]) *FrameInvariants[uint8] {
	fi := &FrameInvariants[uint8]{
		Sequence: &Sequence{Width: 64, Height: 64, BitDepth: 8, ChromaSampling: Cs420},
	}
	for i, f := range refs {
		fi.RecBuffer.Frames[i] = f
	}
	// All seven slots point at buffer 0 by default; redirect the BWDREF
	// slot at buffer 1 when a second reference frame is present.
	if len(refs) > 1 {
		fi.RefFrames[BwdrefFrame.ToIndex()] = 1
	}
	return fi
}

func TestPredictInterZeroMvCopies(t *testing.T) {
	ref := NewFrame[uint8](64, 64, Cs420)
	fillGradient(ref.Planes[0])
	fi := interFixture(ref)

	dst := NewPlane[uint8](64, 64, 0, 0)
	region := dst.AsRegion()
	blk := region.Subregion(16, 16, 16, 16)

	PredictInter(fi, TileRect{Width: 64, Height: 64}, 0,
		PlaneOffset{X: 16, Y: 16}, &blk, 16, 16,
		[2]RefType{LastFrame, NoneFrame}, [2]MotionVector{})

	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			want := ref.Planes[0].At(16+x, 16+y)
			if got := blk.At(x, y); got != want {
				t.Fatalf("(%d,%d) = %d, want %d", x, y, got, want)
			}
		}
	}
}

func TestPredictInterFullpelMvShifts(t *testing.T) {
	ref := NewFrame[uint8](64, 64, Cs420)
	fillGradient(ref.Planes[0])
	fi := interFixture(ref)

	dst := NewPlane[uint8](64, 64, 0, 0)
	region := dst.AsRegion()
	blk := region.Subregion(16, 16, 8, 8)

	// 2 pixels right, 1 down, in eighth-pel units.
	mv := MotionVector{Row: 8, Col: 16}
	PredictInter(fi, TileRect{Width: 64, Height: 64}, 0,
		PlaneOffset{X: 16, Y: 16}, &blk, 8, 8,
		[2]RefType{LastFrame, NoneFrame}, [2]MotionVector{mv})

	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			want := ref.Planes[0].At(18+x, 17+y)
			if got := blk.At(x, y); got != want {
				t.Fatalf("(%d,%d) = %d, want %d", x, y, got, want)
			}
		}
	}
}

func TestPredictInterCompoundAverages(t *testing.T) {
	ref0 := NewFrame[uint8](64, 64, Cs420)
	ref0.Planes[0].Fill(100)
	ref1 := NewFrame[uint8](64, 64, Cs420)
	ref1.Planes[0].Fill(200)
	fi := interFixture(ref0, ref1)

	dst := NewPlane[uint8](64, 64, 0, 0)
	region := dst.AsRegion()
	blk := region.Subregion(16, 16, 8, 8)

	PredictInter(fi, TileRect{Width: 64, Height: 64}, 0,
		PlaneOffset{X: 16, Y: 16}, &blk, 8, 8,
		[2]RefType{LastFrame, BwdrefFrame}, [2]MotionVector{})

	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			if got := blk.At(x, y); got != 150 {
				t.Fatalf("compound (%d,%d) = %d, want 150", x, y, got)
			}
		}
	}
}

func TestPredictInterHalfpelUniformPlane(t *testing.T) {
	// Interpolation over a constant plane reproduces the constant at any
	// fractional phase, since the filter taps sum to 128.
	ref := NewFrame[uint8](64, 64, Cs420)
	ref.Planes[0].Fill(180)
	fi := interFixture(ref)

	dst := NewPlane[uint8](64, 64, 0, 0)
	region := dst.AsRegion()
	blk := region.Subregion(16, 16, 8, 8)

	mv := MotionVector{Row: 4, Col: 4} // half-pel in both axes
	PredictInter(fi, TileRect{Width: 64, Height: 64}, 0,
		PlaneOffset{X: 16, Y: 16}, &blk, 8, 8,
		[2]RefType{LastFrame, NoneFrame}, [2]MotionVector{mv})

	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			if got := blk.At(x, y); got != 180 {
				t.Fatalf("halfpel (%d,%d) = %d, want 180", x, y, got)
			}
		}
	}
}

func TestPredictInterChromaPlaneShift(t *testing.T) {
	// In a 4:2:0 chroma plane a luma motion of 2 full pixels is 1 chroma
	// pixel; the shift is subsample aware.
	ref := NewFrame[uint8](64, 64, Cs420)
	fillGradient(ref.Planes[1])
	fi := interFixture(ref)

	dst := NewPlane[uint8](32, 32, 1, 1)
	region := dst.AsRegion()
	blk := region.Subregion(8, 8, 4, 4)

	mv := MotionVector{Row: 0, Col: 16}
	PredictInter(fi, TileRect{Width: 32, Height: 32}, 1,
		PlaneOffset{X: 8, Y: 8}, &blk, 4, 4,
		[2]RefType{LastFrame, NoneFrame}, [2]MotionVector{mv})

	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			want := ref.Planes[1].At(9+x, 8+y)
			if got := blk.At(x, y); got != want {
				t.Fatalf("chroma (%d,%d) = %d, want %d", x, y, got, want)
			}
		}
	}
}

func TestPredictInterMissingReferenceLeavesDst(t *testing.T) {
	fi := &FrameInvariants[uint8]{
		Sequence: &Sequence{Width: 64, Height: 64, BitDepth: 8},
	}

	dst := NewPlane[uint8](64, 64, 0, 0)
	dst.Fill(42)
	region := dst.AsRegion()
	blk := region.Subregion(16, 16, 8, 8)

	PredictInter(fi, TileRect{Width: 64, Height: 64}, 0,
		PlaneOffset{X: 16, Y: 16}, &blk, 8, 8,
		[2]RefType{LastFrame, NoneFrame}, [2]MotionVector{})

	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			if got := blk.At(x, y); got != 42 {
				t.Fatalf("missing ref wrote (%d,%d) = %d, want untouched 42", x, y, got)
			}
		}
	}
}
