package dsp

import "testing"

func gradientWindow(w, h int) *PlaneWindow[uint8] {
	data := make([]uint8, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			data[y*w+x] = uint8((x + 2*y) & 0xff)
		}
	}
	return &PlaneWindow[uint8]{Data: data, Stride: w, Width: w, Height: h}
}

func TestPlaneWindowClampsReads(t *testing.T) {
	win := gradientWindow(8, 8)
	win.X, win.Y = 0, 0

	if got, want := win.Sample(-3, -3), win.Data[0]; got != want {
		t.Errorf("Sample(-3,-3) = %d, want %d", got, want)
	}
	if got, want := win.Sample(100, 100), win.Data[63]; got != want {
		t.Errorf("Sample(100,100) = %d, want %d", got, want)
	}
	if got, want := win.Sample(3, -1), win.Data[3]; got != want {
		t.Errorf("Sample(3,-1) = %d, want %d", got, want)
	}
}

func TestFilterTapsSumTo128(t *testing.T) {
	tables := map[string]*[16][8]int32{
		"regular":  &subPelFilters8,
		"smooth":   &subPelFilters8Smooth,
		"sharp":    &subPelFilters8Sharp,
		"regular4": &subPelFilters4,
		"smooth4":  &subPelFilters4Smooth,
		"bilinear": &bilinearFilters,
	}
	for name, table := range tables {
		for phase, taps := range table {
			sum := int32(0)
			for _, tap := range taps {
				sum += tap
			}
			if sum != 128 {
				t.Errorf("%s phase %d: taps sum to %d, want 128", name, phase, sum)
			}
		}
	}
}

func TestPut8TapZeroPhaseCopies(t *testing.T) {
	win := gradientWindow(32, 32)
	win.X, win.Y = 8, 8

	dst := make([]uint8, 8*8)
	Put8Tap(dst, 8, win, 8, 8, 0, 0, FilterRegular, FilterRegular, 8)
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			want := win.Data[(8+y)*32+8+x]
			if got := dst[y*8+x]; got != want {
				t.Fatalf("(%d,%d) = %d, want %d", x, y, got, want)
			}
		}
	}
}

func TestPut8TapConstantPlaneAllPhases(t *testing.T) {
	win := &PlaneWindow[uint8]{
		Data: make([]uint8, 32*32), Stride: 32, Width: 32, Height: 32,
		X: 8, Y: 8,
	}
	for i := range win.Data {
		win.Data[i] = 151
	}

	for _, mode := range []FilterMode{FilterRegular, FilterSmooth, FilterSharp, FilterBilinear} {
		for frac := int32(0); frac < 16; frac++ {
			dst := make([]uint8, 8*8)
			Put8Tap(dst, 8, win, 8, 8, frac, frac, mode, mode, 8)
			for i, v := range dst {
				if v != 151 {
					t.Fatalf("mode %d frac %d: sample %d = %d, want 151",
						mode, frac, i, v)
				}
			}
		}
	}
}

func TestPrep8TapZeroPhaseShifts(t *testing.T) {
	win := gradientWindow(32, 32)
	win.X, win.Y = 8, 8

	tmp := make([]int16, 8*8)
	Prep8Tap(tmp, win, 8, 8, 0, 0, FilterRegular, FilterRegular, 8)
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			want := int16(win.Data[(8+y)*32+8+x]) << 4
			if got := tmp[y*8+x]; got != want {
				t.Fatalf("(%d,%d) = %d, want %d", x, y, got, want)
			}
		}
	}

	// 12-bit depth uses 2 intermediate bits.
	win16 := &PlaneWindow[uint16]{
		Data: make([]uint16, 32*32), Stride: 32, Width: 32, Height: 32,
		X: 8, Y: 8,
	}
	win16.Data[8*32+8] = 4000
	tmp16 := make([]int16, 8*8)
	Prep8Tap(tmp16, win16, 8, 8, 0, 0, FilterRegular, FilterRegular, 12)
	if got := tmp16[0]; got != 4000<<2 {
		t.Errorf("12-bit prep = %d, want %d", got, 4000<<2)
	}
}

func TestAvgBlendsPreps(t *testing.T) {
	w1 := &PlaneWindow[uint8]{Data: make([]uint8, 16*16), Stride: 16, Width: 16, Height: 16}
	w2 := &PlaneWindow[uint8]{Data: make([]uint8, 16*16), Stride: 16, Width: 16, Height: 16}
	for i := range w1.Data {
		w1.Data[i] = 100
		w2.Data[i] = 200
	}

	t1 := make([]int16, 8*8)
	t2 := make([]int16, 8*8)
	Prep8Tap(t1, w1, 8, 8, 0, 0, FilterRegular, FilterRegular, 8)
	Prep8Tap(t2, w2, 8, 8, 0, 0, FilterRegular, FilterRegular, 8)

	dst := make([]uint8, 8*8)
	Avg(dst, 8, t1, t2, 8, 8, 8)
	for i, v := range dst {
		if v != 150 {
			t.Fatalf("avg sample %d = %d, want 150", i, v)
		}
	}
}

func TestGetFilterShortensForNarrowDims(t *testing.T) {
	if got := getFilter(FilterRegular, 8, 4); got != &subPelFilters4[8] {
		t.Error("regular filter for dim 4 should use the 4-tap table")
	}
	if got := getFilter(FilterRegular, 8, 8); got != &subPelFilters8[8] {
		t.Error("regular filter for dim 8 should use the 8-tap table")
	}
	if got := getFilter(FilterSharp, 8, 4); got != &subPelFilters8Sharp[8] {
		t.Error("sharp filter has no 4-tap variant")
	}
	if got := getFilter(FilterSmooth, 3, 2); got != &subPelFilters4Smooth[3] {
		t.Error("smooth filter for dim 2 should use the 4-tap table")
	}
}
