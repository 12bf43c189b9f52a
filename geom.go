package rav1e

// Central geometry constants. Every coordinate the availability predicates
// and lookup tables reason about is expressed in "mi" units of 4 pixels,
// local to one 64x64 superblock.
const (
	// MiSizeLog2 is the log2 of the minimum coding unit, in pixels.
	MiSizeLog2 = 2
	// MiSize is the minimum coding unit, in pixels.
	MiSize = 1 << MiSizeLog2

	// SuperblockSizeLog2 is the log2 of the superblock span, in pixels.
	SuperblockSizeLog2 = 6
	// SuperblockSize is the superblock span, in pixels.
	SuperblockSize = 1 << SuperblockSizeLog2

	// SuperblockMiSize is the superblock span in mi units.
	SuperblockMiSize = SuperblockSize >> MiSizeLog2

	// LocalBlockMask masks a mi-unit coordinate to its superblock-local range.
	LocalBlockMask = SuperblockMiSize - 1

	// MaxTxSizeDim is the largest transform dimension, in pixels.
	MaxTxSizeDim = 64

	// MaxBlockDim is the largest block dimension, in pixels.
	MaxBlockDim = 128
)

// PlaneOffset addresses a sample position within one plane.
type PlaneOffset struct {
	X, Y int
}

// BlockOffset addresses a block position in mi units.
type BlockOffset struct {
	X, Y int
}

// Rect is a pixel rectangle, offset relative to the frame origin.
type Rect struct {
	X, Y          int
	Width, Height int
}

// TileRect is the pixel rectangle a tile covers within its plane.
type TileRect struct {
	X, Y          int
	Width, Height int
}

// ToFramePlaneOffset converts a tile-relative plane offset to a
// frame-relative one.
func (t TileRect) ToFramePlaneOffset(po PlaneOffset) PlaneOffset {
	return PlaneOffset{X: t.X + po.X, Y: t.Y + po.Y}
}
