package rav1e

import "fmt"

// BlockSize identifies one of the 22 coding block shapes. The ordinal order
// matches the reference codec; comparison helpers and the legacy CFL rule
// depend on it.
type BlockSize int

const (
	Block4x4 BlockSize = iota
	Block4x8
	Block8x4
	Block8x8
	Block8x16
	Block16x8
	Block16x16
	Block16x32
	Block32x16
	Block32x32
	Block32x64
	Block64x32
	Block64x64
	Block64x128
	Block128x64
	Block128x128
	Block4x16
	Block16x4
	Block8x32
	Block32x8
	Block16x64
	Block64x16
	BlockInvalid
)

// BlockSizesAll is the number of valid block sizes.
const BlockSizesAll = 22

var blockWidthLog2 = [BlockSizesAll]int{
	2, 2, 3, 3, 3, 4, 4, 4, 5, 5, 5, 6, 6, 6, 7, 7, 2, 4, 3, 5, 4, 6,
}

var blockHeightLog2 = [BlockSizesAll]int{
	2, 3, 2, 3, 4, 3, 4, 5, 4, 5, 6, 5, 6, 7, 6, 7, 4, 2, 5, 3, 6, 4,
}

// BlockSizeFromWH returns the block size with the given pixel dimensions.
// Any (w, h) pair outside the enumerated set is a programming error and
// panics.
func BlockSizeFromWH(w, h int) BlockSize {
	for bs := Block4x4; bs < BlockInvalid; bs++ {
		if bs.Width() == w && bs.Height() == h {
			return bs
		}
	}
	panic(fmt.Sprintf("rav1e: no block size for %dx%d", w, h))
}

// Width returns the block width in pixels.
func (bs BlockSize) Width() int { return 1 << bs.WidthLog2() }

// WidthLog2 returns the log2 of the block width.
func (bs BlockSize) WidthLog2() int { return blockWidthLog2[bs] }

// WidthMi returns the block width in mi units.
func (bs BlockSize) WidthMi() int { return bs.Width() >> MiSizeLog2 }

// Height returns the block height in pixels.
func (bs BlockSize) Height() int { return 1 << bs.HeightLog2() }

// HeightLog2 returns the log2 of the block height.
func (bs BlockSize) HeightLog2() int { return blockHeightLog2[bs] }

// HeightMi returns the block height in mi units.
func (bs BlockSize) HeightMi() int { return bs.Height() >> MiSizeLog2 }

// IsSqr reports whether the block is square.
func (bs BlockSize) IsSqr() bool { return bs.WidthLog2() == bs.HeightLog2() }

// CflAllowed reports whether chroma-from-luma prediction is permitted for
// this block. The ordinal comparison is the legacy classification rule:
// every size at or below 32x32 in enumeration order qualifies.
func (bs BlockSize) CflAllowed() bool { return bs <= Block32x32 }

// IsSub8x8 reports whether the block degenerates below 8x8 in a plane with
// the given chroma decimation.
func (bs BlockSize) IsSub8x8(xdec, ydec int) bool {
	return xdec != 0 && bs.WidthLog2() == 2 || ydec != 0 && bs.HeightLog2() == 2
}

// Sub8x8Offset returns the mi offset a sub-8x8 block must be nudged by so
// its chroma prediction reads the co-located 8x8 area.
func (bs BlockSize) Sub8x8Offset(xdec, ydec int) (int, int) {
	offX, offY := 0, 0
	if xdec != 0 && bs.WidthLog2() == 2 {
		offX = -1
	}
	if ydec != 0 && bs.HeightLog2() == 2 {
		offY = -1
	}
	return offX, offY
}

// GreaterThan reports whether bs strictly dominates other. This is a
// partial order: a block larger in one dimension and smaller in the other
// compares false both ways.
func (bs BlockSize) GreaterThan(other BlockSize) bool {
	return (bs.Width() > other.Width() && bs.Height() >= other.Height()) ||
		(bs.Width() >= other.Width() && bs.Height() > other.Height())
}

// Gte reports whether bs dominates or equals other.
func (bs BlockSize) Gte(other BlockSize) bool {
	return bs.GreaterThan(other) ||
		(bs.Width() == other.Width() && bs.Height() == other.Height())
}

// TxSize returns the largest transform size with the same shape as the
// block, clamped to 64x64 for the sizes that exceed the transform range.
func (bs BlockSize) TxSize() TxSize {
	switch bs {
	case Block4x4:
		return Tx4x4
	case Block4x8:
		return Tx4x8
	case Block8x4:
		return Tx8x4
	case Block8x8:
		return Tx8x8
	case Block8x16:
		return Tx8x16
	case Block16x8:
		return Tx16x8
	case Block16x16:
		return Tx16x16
	case Block16x32:
		return Tx16x32
	case Block32x16:
		return Tx32x16
	case Block32x32:
		return Tx32x32
	case Block32x64:
		return Tx32x64
	case Block64x32:
		return Tx64x32
	case Block4x16:
		return Tx4x16
	case Block16x4:
		return Tx16x4
	case Block8x32:
		return Tx8x32
	case Block32x8:
		return Tx32x8
	case Block16x64:
		return Tx16x64
	case Block64x16:
		return Tx64x16
	case BlockInvalid:
		panic("rav1e: tx size of invalid block")
	default:
		return Tx64x64
	}
}

// maxTxSizeRect maps a block size to its largest legal rectangular
// transform before coded-size clamping.
var maxTxSizeRect = [BlockSizesAll]TxSize{
	Tx4x4, Tx4x8, Tx8x4, Tx8x8, Tx8x16, Tx16x8, Tx16x16, Tx16x32,
	Tx32x16, Tx32x32, Tx32x64, Tx64x32, Tx64x64, Tx64x64, Tx64x64,
	Tx64x64, Tx4x16, Tx16x4, Tx8x32, Tx32x8, Tx16x64, Tx64x16,
}

// PlaneBlockSize returns the block size as seen by a plane with the given
// chroma decimation, with dimensions floored at the minimum unit.
func (bs BlockSize) PlaneBlockSize(xdec, ydec int) BlockSize {
	w := bs.Width() >> xdec
	if w < MiSize {
		w = MiSize
	}
	h := bs.Height() >> ydec
	if h < MiSize {
		h = MiSize
	}
	return BlockSizeFromWH(w, h)
}

// LargestUvTxSize returns the largest transform size the chroma planes of
// this block may code. The lookup is plane-adjusted first, then clamped to
// the maximum codeable size: some luma transform sizes exceed what chroma
// planes are allowed to use.
func (bs BlockSize) LargestUvTxSize(xdec, ydec int) TxSize {
	planeBs := bs.PlaneBlockSize(xdec, ydec)
	return maxTxSizeRect[planeBs].CodedTxSize()
}

// Subsize returns the size of each sub-block produced by splitting bs with
// the given partition, or BlockInvalid when that partition is not legal for
// this size. Callers must check for BlockInvalid.
func (bs BlockSize) Subsize(partition PartitionType) BlockSize {
	return subsizeLookup[partition][bs]
}

// IsRectTxAllowed reports whether rectangular transforms may be used
// inside this block.
func (bs BlockSize) IsRectTxAllowed() bool {
	return rectTxAllowed[bs]
}

var rectTxAllowed = [BlockSizesAll]bool{
	Block4x8:   true,
	Block8x4:   true,
	Block8x16:  true,
	Block16x8:  true,
	Block16x32: true,
	Block32x16: true,
	Block32x64: true,
	Block64x32: true,
	Block4x16:  true,
	Block16x4:  true,
	Block8x32:  true,
	Block32x8:  true,
	Block16x64: true,
	Block64x16: true,
}

func (bs BlockSize) String() string {
	if bs == BlockInvalid {
		return "BLOCK_INVALID"
	}
	return fmt.Sprintf("BLOCK_%dX%d", bs.Width(), bs.Height())
}
