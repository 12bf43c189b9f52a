package rav1e

import "fmt"

// TxSize identifies one of the 19 transform unit shapes: the five square
// sizes first, then the fourteen rectangular ones, in reference order.
type TxSize int

const (
	Tx4x4 TxSize = iota
	Tx8x8
	Tx16x16
	Tx32x32
	Tx64x64

	Tx4x8
	Tx8x4
	Tx8x16
	Tx16x8
	Tx16x32
	Tx32x16
	Tx32x64
	Tx64x32

	Tx4x16
	Tx16x4
	Tx8x32
	Tx32x8
	Tx16x64
	Tx64x16
)

const (
	// TxSizesSqr is the number of square transform sizes.
	TxSizesSqr = 5
	// TxSizesAll is the number of transform sizes, rectangular included.
	TxSizesAll = 19
)

// Width returns the transform width in pixels.
func (tx TxSize) Width() int { return 1 << tx.WidthLog2() }

// WidthLog2 returns the log2 of the transform width.
func (tx TxSize) WidthLog2() int {
	switch tx {
	case Tx4x4, Tx4x8, Tx4x16:
		return 2
	case Tx8x8, Tx8x4, Tx8x16, Tx8x32:
		return 3
	case Tx16x16, Tx16x8, Tx16x32, Tx16x4, Tx16x64:
		return 4
	case Tx32x32, Tx32x16, Tx32x64, Tx32x8:
		return 5
	case Tx64x64, Tx64x32, Tx64x16:
		return 6
	}
	panic(fmt.Sprintf("rav1e: invalid tx size %d", int(tx)))
}

// WidthIndex returns the width as an index into per-dimension tables.
func (tx TxSize) WidthIndex() int { return tx.WidthLog2() - Tx4x4.WidthLog2() }

// Height returns the transform height in pixels.
func (tx TxSize) Height() int { return 1 << tx.HeightLog2() }

// HeightLog2 returns the log2 of the transform height.
func (tx TxSize) HeightLog2() int {
	switch tx {
	case Tx4x4, Tx8x4, Tx16x4:
		return 2
	case Tx8x8, Tx4x8, Tx16x8, Tx32x8:
		return 3
	case Tx16x16, Tx8x16, Tx32x16, Tx4x16, Tx64x16:
		return 4
	case Tx32x32, Tx16x32, Tx64x32, Tx8x32:
		return 5
	case Tx64x64, Tx32x64, Tx16x64:
		return 6
	}
	panic(fmt.Sprintf("rav1e: invalid tx size %d", int(tx)))
}

// HeightIndex returns the height as an index into per-dimension tables.
func (tx TxSize) HeightIndex() int { return tx.HeightLog2() - Tx4x4.HeightLog2() }

// WidthMi returns the transform width in mi units.
func (tx TxSize) WidthMi() int { return tx.Width() >> MiSizeLog2 }

// HeightMi returns the transform height in mi units.
func (tx TxSize) HeightMi() int { return tx.Height() >> MiSizeLog2 }

// Area returns the number of samples the transform covers.
func (tx TxSize) Area() int { return 1 << tx.AreaLog2() }

// AreaLog2 returns the log2 of the sample count.
func (tx TxSize) AreaLog2() int { return tx.WidthLog2() + tx.HeightLog2() }

// IsRect reports whether the transform is rectangular.
func (tx TxSize) IsRect() bool { return tx.WidthLog2() != tx.HeightLog2() }

// BlockSize returns the block size with the same pixel dimensions.
func (tx TxSize) BlockSize() BlockSize {
	return BlockSizeFromWH(tx.Width(), tx.Height())
}

// Sqr returns the square transform whose dimension is the smaller of the
// transform's two dimensions.
func (tx TxSize) Sqr() TxSize {
	switch tx {
	case Tx4x4, Tx4x8, Tx8x4, Tx4x16, Tx16x4:
		return Tx4x4
	case Tx8x8, Tx8x16, Tx16x8, Tx8x32, Tx32x8:
		return Tx8x8
	case Tx16x16, Tx16x32, Tx32x16, Tx16x64, Tx64x16:
		return Tx16x16
	case Tx32x32, Tx32x64, Tx64x32:
		return Tx32x32
	case Tx64x64:
		return Tx64x64
	}
	panic(fmt.Sprintf("rav1e: invalid tx size %d", int(tx)))
}

// SqrUp returns the square ancestor whose dimension is the larger of the
// transform's two dimensions. SqrUp is idempotent.
func (tx TxSize) SqrUp() TxSize {
	switch tx {
	case Tx4x4:
		return Tx4x4
	case Tx8x8, Tx4x8, Tx8x4:
		return Tx8x8
	case Tx16x16, Tx8x16, Tx16x8, Tx4x16, Tx16x4:
		return Tx16x16
	case Tx32x32, Tx16x32, Tx32x16, Tx8x32, Tx32x8:
		return Tx32x32
	case Tx64x64, Tx32x64, Tx64x32, Tx16x64, Tx64x16:
		return Tx64x64
	}
	panic(fmt.Sprintf("rav1e: invalid tx size %d", int(tx)))
}

// CodedTxSize clamps the transform to the maximum size that can actually
// be coded: 64-point dimensions code as 32.
func (tx TxSize) CodedTxSize() TxSize {
	switch tx {
	case Tx64x64, Tx64x32, Tx32x64:
		return Tx32x32
	case Tx64x16:
		return Tx32x16
	case Tx16x64:
		return Tx16x32
	}
	return tx
}

// TxSizeByDims returns the transform size with the given pixel dimensions.
// Any pair outside the enumerated set is a programming error and panics.
func TxSizeByDims(w, h int) TxSize {
	for tx := TxSize(0); tx < TxSizesAll; tx++ {
		if tx.Width() == w && tx.Height() == h {
			return tx
		}
	}
	panic(fmt.Sprintf("rav1e: no tx size for %dx%d", w, h))
}

func (tx TxSize) String() string {
	return fmt.Sprintf("TX_%dX%d", tx.Width(), tx.Height())
}
