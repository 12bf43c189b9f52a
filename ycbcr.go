package rav1e

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"

	"github.com/xuguangxin/rav1e/pixel"
)

// FrameFromImage converts an image into a frame of bit-depth-scaled YCbCr
// planes with the requested chroma decimation. Conversion uses the BT.601
// matrix of the standard library; 8-bit sources are shifted up to the
// target bit depth.
func FrameFromImage[T pixel.Sample](
	img image.Image, cs ChromaSampling, bitDepth int,
) *Frame[T] {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	f := NewFrame[T](w, h, cs)
	shift := bitDepth - 8

	if src, ok := img.(*image.YCbCr); ok && ratioMatches(src.SubsampleRatio, cs) {
		copyYCbCr(f, src, shift)
		return f
	}

	// Full-resolution conversion first; chroma decimation is a resampling
	// step over 8-bit gray planes.
	cb := image.NewGray(image.Rect(0, 0, w, h))
	cr := image.NewGray(image.Rect(0, 0, w, h))
	luma := f.Planes[0]
	for y := 0; y < h; y++ {
		row := luma.Row(y)
		for x := 0; x < w; x++ {
			r, g, bl, _ := img.At(b.Min.X+x, b.Min.Y+y).RGBA()
			yy, cbv, crv := color.RGBToYCbCr(uint8(r>>8), uint8(g>>8), uint8(bl>>8))
			row[x] = T(int32(yy) << shift)
			cb.Pix[y*cb.Stride+x] = cbv
			cr.Pix[y*cr.Stride+x] = crv
		}
	}

	for i, full := range [2]*image.Gray{cb, cr} {
		p := f.Planes[i+1]
		small := full
		if p.Cfg.Width != w || p.Cfg.Height != h {
			small = image.NewGray(image.Rect(0, 0, p.Cfg.Width, p.Cfg.Height))
			draw.ApproxBiLinear.Scale(small, small.Bounds(), full, full.Bounds(), draw.Src, nil)
		}
		for y := 0; y < p.Cfg.Height; y++ {
			row := p.Row(y)
			for x := 0; x < p.Cfg.Width; x++ {
				row[x] = T(int32(small.Pix[y*small.Stride+x]) << shift)
			}
		}
	}
	return f
}

func ratioMatches(r image.YCbCrSubsampleRatio, cs ChromaSampling) bool {
	switch cs {
	case Cs420:
		return r == image.YCbCrSubsampleRatio420
	case Cs422:
		return r == image.YCbCrSubsampleRatio422
	case Cs444:
		return r == image.YCbCrSubsampleRatio444
	}
	return false
}

// copyYCbCr is the fast path for sources already in the target layout.
func copyYCbCr[T pixel.Sample](f *Frame[T], src *image.YCbCr, shift int) {
	b := src.Bounds()
	luma := f.Planes[0]
	for y := 0; y < luma.Cfg.Height; y++ {
		row := luma.Row(y)
		srcRow := src.Y[src.YOffset(b.Min.X, b.Min.Y+y):]
		for x := range row {
			row[x] = T(int32(srcRow[x]) << shift)
		}
	}
	for i, data := range [2][]uint8{src.Cb, src.Cr} {
		p := f.Planes[i+1]
		for y := 0; y < p.Cfg.Height; y++ {
			row := p.Row(y)
			off := src.COffset(b.Min.X, b.Min.Y+(y<<p.Cfg.YDec))
			srcRow := data[off:]
			for x := range row {
				row[x] = T(int32(srcRow[x]) << shift)
			}
		}
	}
}
