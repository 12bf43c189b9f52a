package rav1e

import "testing"

func TestNewPlaneGeometry(t *testing.T) {
	p := NewPlane[uint8](32, 16, 1, 1)
	if p.Cfg.Stride != 32 || p.Cfg.Width != 32 || p.Cfg.Height != 16 {
		t.Errorf("unexpected config %+v", p.Cfg)
	}
	if len(p.Data) != 32*16 {
		t.Errorf("len(Data) = %d, want %d", len(p.Data), 32*16)
	}
}

func TestPlaneRowAndAt(t *testing.T) {
	p := NewPlane[uint8](8, 8, 0, 0)
	fillGradient(p)
	for y := 0; y < 8; y++ {
		row := p.Row(y)
		for x := range row {
			if row[x] != p.At(x, y) {
				t.Fatalf("Row/At mismatch at (%d,%d)", x, y)
			}
		}
	}
}

func TestRegionSubregionRects(t *testing.T) {
	p := NewPlane[uint8](64, 64, 0, 0)
	fillGradient(p)

	region := p.Region(Rect{X: 8, Y: 16, Width: 32, Height: 32})
	if got := region.Rect(); got != (Rect{X: 8, Y: 16, Width: 32, Height: 32}) {
		t.Errorf("Region rect = %+v", got)
	}
	if got, want := region.At(0, 0), p.At(8, 16); got != want {
		t.Errorf("region origin = %d, want %d", got, want)
	}

	sub := region.Subregion(4, 4, 8, 8)
	if got := sub.Rect(); got != (Rect{X: 12, Y: 20, Width: 8, Height: 8}) {
		t.Errorf("Subregion rect = %+v", got)
	}
	if got, want := sub.At(0, 0), p.At(12, 20); got != want {
		t.Errorf("subregion origin = %d, want %d", got, want)
	}
}

func TestRegionWritesThrough(t *testing.T) {
	p := NewPlane[uint8](16, 16, 0, 0)
	region := p.AsRegion()
	sub := region.Subregion(4, 4, 4, 4)
	sub.Set(1, 2, 77)
	if got := p.At(5, 6); got != 77 {
		t.Errorf("plane sample = %d, want write-through 77", got)
	}
}

func TestTileRectToFramePlaneOffset(t *testing.T) {
	tile := TileRect{X: 64, Y: 128, Width: 64, Height: 64}
	po := tile.ToFramePlaneOffset(PlaneOffset{X: 4, Y: 8})
	if po.X != 68 || po.Y != 136 {
		t.Errorf("ToFramePlaneOffset = %+v, want {68 136}", po)
	}
}
