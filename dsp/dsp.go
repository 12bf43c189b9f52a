// Package dsp implements the pixel-fill kernels for intra prediction and
// the 8-tap sub-pixel interpolation filters for motion compensation.
//
// This is the capability layer the prediction engine drives: kernels
// operate on raw sample slices with an explicit stride and are
// parameterized by block dimensions, so one routine serves every
// transform size. All arithmetic widens to int32 and matches the
// reference codec bit-for-bit.
package dsp

import "github.com/xuguangxin/rav1e/pixel"

// PlaneWindow is a read-only window into a reference plane. The window
// origin may lie outside the plane; reads clamp to the valid rectangle,
// replicating edge samples the way a padded plane would.
type PlaneWindow[T pixel.Sample] struct {
	Data   []T
	Stride int
	// X, Y is the window origin within the plane.
	X, Y int
	// Width, Height bound the valid sample rectangle of the plane.
	Width, Height int
}

// Sample returns the plane sample at (dx, dy) relative to the window
// origin, clamped to the plane bounds.
func (w *PlaneWindow[T]) Sample(dx, dy int) T {
	x := w.X + dx
	if x < 0 {
		x = 0
	} else if x > w.Width-1 {
		x = w.Width - 1
	}
	y := w.Y + dy
	if y < 0 {
		y = 0
	} else if y > w.Height-1 {
		y = w.Height - 1
	}
	return w.Data[y*w.Stride+x]
}
