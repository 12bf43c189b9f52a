package rav1e

import (
	"github.com/xuguangxin/rav1e/pixel"
)

// PlaneConfig carries the immutable geometry of one plane.
type PlaneConfig struct {
	// Stride is the distance between vertically adjacent samples.
	Stride int
	// Width and Height bound the valid sample rectangle.
	Width, Height int
	// XDec and YDec are the chroma decimation shifts relative to luma
	// (0 for luma and for undecimated chroma).
	XDec, YDec int
}

// Plane is a rectangular sample buffer for one image component.
//
// Planes read by inter prediction must be treated as read-only for the
// duration of encoding the current frame; the core takes no locks.
type Plane[T pixel.Sample] struct {
	Data []T
	Cfg  PlaneConfig
}

// NewPlane allocates a plane of the given dimensions and decimation.
func NewPlane[T pixel.Sample](width, height, xdec, ydec int) *Plane[T] {
	return &Plane[T]{
		Data: make([]T, width*height),
		Cfg: PlaneConfig{
			Stride: width,
			Width:  width,
			Height: height,
			XDec:   xdec,
			YDec:   ydec,
		},
	}
}

// Row returns the samples of row y.
func (p *Plane[T]) Row(y int) []T {
	return p.Data[y*p.Cfg.Stride:][:p.Cfg.Width]
}

// At returns the sample at (x, y).
func (p *Plane[T]) At(x, y int) T {
	return p.Data[y*p.Cfg.Stride+x]
}

// Fill sets every sample of the plane to v.
func (p *Plane[T]) Fill(v T) {
	for i := range p.Data {
		p.Data[i] = v
	}
}

// AsRegion returns a mutable region covering the whole plane, with its
// rect at the frame origin.
func (p *Plane[T]) AsRegion() PlaneRegion[T] {
	return PlaneRegion[T]{
		data:   p.Data,
		stride: p.Cfg.Stride,
		rect:   Rect{X: 0, Y: 0, Width: p.Cfg.Width, Height: p.Cfg.Height},
		cfg:    &p.Cfg,
	}
}

// Region returns a mutable view of the given frame-relative rectangle.
func (p *Plane[T]) Region(rect Rect) PlaneRegion[T] {
	return PlaneRegion[T]{
		data:   p.Data[rect.Y*p.Cfg.Stride+rect.X:],
		stride: p.Cfg.Stride,
		rect:   rect,
		cfg:    &p.Cfg,
	}
}

// PlaneRegion is a window into a plane. Rows are addressed relative to the
// region origin; the rect records where the region sits in the frame.
//
// A destination region handed to the prediction engine must be exclusively
// owned by the caller for the duration of the call.
type PlaneRegion[T pixel.Sample] struct {
	data   []T
	stride int
	rect   Rect
	cfg    *PlaneConfig
}

// Rect returns the frame-relative rectangle the region covers.
func (r *PlaneRegion[T]) Rect() Rect { return r.rect }

// PlaneCfg returns the configuration of the underlying plane.
func (r *PlaneRegion[T]) PlaneCfg() *PlaneConfig { return r.cfg }

// Stride returns the row stride of the underlying plane.
func (r *PlaneRegion[T]) Stride() int { return r.stride }

// Data returns the raw samples starting at the region origin. Rows are
// Stride() apart.
func (r *PlaneRegion[T]) Data() []T { return r.data }

// Row returns the samples of region-local row y.
func (r *PlaneRegion[T]) Row(y int) []T {
	return r.data[y*r.stride:][:r.rect.Width]
}

// At returns the sample at region-local (x, y).
func (r *PlaneRegion[T]) At(x, y int) T {
	return r.data[y*r.stride+x]
}

// Set writes the sample at region-local (x, y).
func (r *PlaneRegion[T]) Set(x, y int, v T) {
	r.data[y*r.stride+x] = v
}

// Subregion returns the sub-window at region-local (x, y) with the given
// dimensions. The sub-window shares the underlying samples.
func (r *PlaneRegion[T]) Subregion(x, y, w, h int) PlaneRegion[T] {
	return PlaneRegion[T]{
		data:   r.data[y*r.stride+x:],
		stride: r.stride,
		rect:   Rect{X: r.rect.X + x, Y: r.rect.Y + y, Width: w, Height: h},
		cfg:    r.cfg,
	}
}
