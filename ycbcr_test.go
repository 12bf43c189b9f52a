package rav1e

import (
	"image"
	"image/color"
	"testing"
)

func TestFrameFromImageUniformGray(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 16, 16))
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			img.Set(x, y, color.RGBA{R: 128, G: 128, B: 128, A: 255})
		}
	}
	wantY, wantCb, wantCr := color.RGBToYCbCr(128, 128, 128)

	f := FrameFromImage[uint8](img, Cs420, 8)
	for p, want := range []uint8{wantY, wantCb, wantCr} {
		plane := f.Planes[p]
		for y := 0; y < plane.Cfg.Height; y++ {
			for _, v := range plane.Row(y) {
				if v != want {
					t.Fatalf("plane %d sample = %d, want %d", p, v, want)
				}
			}
		}
	}
}

func TestFrameFromImagePlaneDimensions(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 17, 11))

	f420 := FrameFromImage[uint8](img, Cs420, 8)
	if f420.Planes[1].Cfg.Width != 9 || f420.Planes[1].Cfg.Height != 6 {
		t.Errorf("4:2:0 chroma = %dx%d, want 9x6",
			f420.Planes[1].Cfg.Width, f420.Planes[1].Cfg.Height)
	}
	if f420.Planes[1].Cfg.XDec != 1 || f420.Planes[1].Cfg.YDec != 1 {
		t.Error("4:2:0 chroma decimation not recorded")
	}

	f444 := FrameFromImage[uint8](img, Cs444, 8)
	if f444.Planes[2].Cfg.Width != 17 || f444.Planes[2].Cfg.Height != 11 {
		t.Errorf("4:4:4 chroma = %dx%d, want 17x11",
			f444.Planes[2].Cfg.Width, f444.Planes[2].Cfg.Height)
	}
}

func TestFrameFromImageHighBitDepthScales(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 8, 8))
	for i := range img.Pix {
		img.Pix[i] = 200
	}
	wantY, _, _ := color.RGBToYCbCr(200, 200, 200)

	f := FrameFromImage[uint16](img, Cs420, 10)
	if got := f.Planes[0].At(0, 0); got != uint16(wantY)<<2 {
		t.Errorf("10-bit luma = %d, want %d", got, uint16(wantY)<<2)
	}
}

func TestFrameFromImageYCbCrFastPath(t *testing.T) {
	src := image.NewYCbCr(image.Rect(0, 0, 8, 8), image.YCbCrSubsampleRatio420)
	for i := range src.Y {
		src.Y[i] = uint8(i)
	}
	for i := range src.Cb {
		src.Cb[i] = 100 + uint8(i)
		src.Cr[i] = 200 - uint8(i)
	}

	f := FrameFromImage[uint8](src, Cs420, 8)
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			if got, want := f.Planes[0].At(x, y), src.Y[src.YOffset(x, y)]; got != want {
				t.Fatalf("luma (%d,%d) = %d, want %d", x, y, got, want)
			}
		}
	}
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			off := src.COffset(x*2, y*2)
			if got, want := f.Planes[1].At(x, y), src.Cb[off]; got != want {
				t.Fatalf("cb (%d,%d) = %d, want %d", x, y, got, want)
			}
			if got, want := f.Planes[2].At(x, y), src.Cr[off]; got != want {
				t.Fatalf("cr (%d,%d) = %d, want %d", x, y, got, want)
			}
		}
	}
}

func TestNewFrameChromaRoundsUp(t *testing.T) {
	f := NewFrame[uint8](5, 3, Cs420)
	if f.Planes[1].Cfg.Width != 3 || f.Planes[1].Cfg.Height != 2 {
		t.Errorf("chroma = %dx%d, want 3x2",
			f.Planes[1].Cfg.Width, f.Planes[1].Cfg.Height)
	}
}
