package rav1e

// Neighbor availability. Both predicates answer whether the block
// diagonally adjacent to the given block has already been reconstructed
// under the fixed raster/partition decode order, reasoning purely over
// bitmasked mi coordinates inside one 64x64 superblock.

// HasTopRight reports whether the block at bo (mi units) with size bsize
// may read the pixels above and to the right of itself.
func HasTopRight(bo BlockOffset, bsize BlockSize) bool {
	sbMiSize := Block64x64.WidthMi() // assume 64x64 superblocks for now
	maskRow := bo.Y & LocalBlockMask
	maskCol := bo.X & LocalBlockMask
	targetN4W := bsize.WidthMi()
	targetN4H := bsize.HeightMi()

	bs := max(targetN4W, targetN4H)

	if bs > Block64x64.WidthMi() {
		return false
	}

	hasTR := !((maskRow&bs) != 0 && (maskCol&bs) != 0)

	// Walk up the enclosing block sizes until availability stabilizes.
	for bs < sbMiSize {
		if maskCol&bs != 0 {
			if maskCol&(2*bs) != 0 && maskRow&(2*bs) != 0 {
				hasTR = false
				break
			}
		} else {
			break
		}
		bs <<= 1
	}

	// The left hand of two vertical rectangles always has a top right (the
	// block above it will have been decoded).
	if targetN4W < targetN4H && bo.X&targetN4W == 0 {
		hasTR = true
	}

	// The bottom of two horizontal rectangles never has a top right (the
	// block to its right has not been decoded yet).
	if targetN4W > targetN4H && bo.Y&targetN4H != 0 {
		hasTR = false
	}

	return hasTR
}

// HasBottomLeft reports whether the block at bo (mi units) with size bsize
// may read the pixels below and to the left of itself.
func HasBottomLeft(bo BlockOffset, bsize BlockSize) bool {
	sbMiSize := Block64x64.WidthMi() // assume 64x64 superblocks for now
	maskRow := bo.Y & LocalBlockMask
	maskCol := bo.X & LocalBlockMask
	targetN4W := bsize.WidthMi()
	targetN4H := bsize.HeightMi()

	bs := max(targetN4W, targetN4H)

	if bs > Block64x64.WidthMi() {
		return false
	}

	hasBL := maskRow&bs == 0 && maskCol&bs == 0 && bs < sbMiSize

	for 2*bs < sbMiSize {
		if maskCol&bs == 0 {
			if maskCol&(2*bs) == 0 && maskRow&(2*bs) == 0 {
				hasBL = true
				break
			}
		} else {
			break
		}
		bs <<= 1
	}

	// The right hand of two vertical rectangles never has a bottom left
	// (the block below it has not been decoded yet).
	if targetN4W < targetN4H && bo.X&targetN4W != 0 {
		hasBL = false
	}

	// The top of two horizontal rectangles always has a bottom left (the
	// block to its left will have been decoded).
	if targetN4W > targetN4H && bo.Y&targetN4H == 0 {
		hasBL = true
	}

	return hasBL
}
