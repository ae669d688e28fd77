package view

import (
	"math"
	"testing"
)

func TestScreenToCellRoundTrip(t *testing.T) {
	cam := NewCamera(128, 96, 3)
	cam.ZoomAt(100, 50, 4)
	cam.PanBy(-37, 12)

	for _, cell := range [][2]int{{0, 0}, {29, 12}, {40, 20}, {50, 30}, {58, 33}} {
		sx, sy := cam.CellToScreen(cell[0], cell[1])
		// Probe the cell's center rather than its corner to stay clear of
		// floating point noise at the boundary.
		half := cam.pixelsPerCell() / 2
		gx, gy, ok := cam.ScreenToCell(sx+half, sy+half)
		if !ok {
			// Cells scrolled out of the viewport are legitimately
			// unresolvable.
			vw, vh := cam.ViewportSize()
			if sx >= 0 && sy >= 0 && sx < float64(vw) && sy < float64(vh) {
				t.Fatalf("cell (%d,%d) visible at (%f,%f) but did not resolve", cell[0], cell[1], sx, sy)
			}
			continue
		}
		if gx != cell[0] || gy != cell[1] {
			t.Fatalf("round trip for cell (%d,%d) returned (%d,%d)", cell[0], cell[1], gx, gy)
		}
	}
}

func TestZoomAtKeepsCursorCell(t *testing.T) {
	cam := NewCamera(256, 256, 2)
	px, py := 311.0, 187.0

	for _, factor := range []float64{1.5, 1.5, 2, 1.25} {
		beforeX, beforeY, ok := cam.ScreenToCell(px, py)
		if !ok {
			t.Fatalf("cursor position must resolve before zoom (zoom=%f)", cam.Zoom())
		}
		cam.ZoomAt(px, py, factor)
		afterX, afterY, ok := cam.ScreenToCell(px, py)
		if !ok {
			t.Fatalf("cursor position must resolve after zoom (zoom=%f)", cam.Zoom())
		}
		if beforeX != afterX || beforeY != afterY {
			t.Fatalf("zoom to %f moved cursor cell from (%d,%d) to (%d,%d)",
				cam.Zoom(), beforeX, beforeY, afterX, afterY)
		}
	}
}

func TestZoomClampedToBounds(t *testing.T) {
	cam := NewCamera(64, 64, 4)
	cam.ZoomAt(10, 10, 0.5)
	if cam.Zoom() != 1 {
		t.Fatalf("zoom below 1 must clamp to 1, got %f", cam.Zoom())
	}
	if x, y := cam.Pan(); x != 0 || y != 0 {
		t.Fatalf("pan must be (0,0) at zoom 1, got (%f,%f)", x, y)
	}

	for i := 0; i < 40; i++ {
		cam.ZoomAt(128, 128, 2)
	}
	if cam.Zoom() != DefaultMaxZoom {
		t.Fatalf("zoom must clamp to %f, got %f", DefaultMaxZoom, cam.Zoom())
	}
}

func TestPanClampingKeepsViewportInsideMap(t *testing.T) {
	cam := NewCamera(200, 100, 2)
	cam.ZoomAt(200, 100, 5)

	deltas := [][2]float64{
		{1e6, 1e6}, {-1e6, 0}, {0, -1e6}, {-37.5, 12.25}, {400, -90}, {-1e6, -1e6},
	}
	for _, d := range deltas {
		cam.PanBy(d[0], d[1])
		panX, panY := cam.Pan()
		spanX := float64(200) / cam.Zoom()
		spanY := float64(100) / cam.Zoom()
		if panX < 0 || panY < 0 || panX+spanX > 200+1e-9 || panY+spanY > 100+1e-9 {
			t.Fatalf("viewport [%f,%f]+[%f,%f] escaped the map bounds", panX, panY, spanX, spanY)
		}
	}
}

func TestPanAtFullZoomIsForcedToOrigin(t *testing.T) {
	cam := NewCamera(128, 128, 3)
	cam.PanBy(-50, -80)
	if x, y := cam.Pan(); x != 0 || y != 0 {
		t.Fatalf("panning at zoom 1 must stay at (0,0), got (%f,%f)", x, y)
	}
}

func TestScreenToCellOutOfBounds(t *testing.T) {
	cam := NewCamera(32, 32, 2)
	if _, _, ok := cam.ScreenToCell(-1, 5); ok {
		t.Fatal("negative screen coordinates must not resolve")
	}
	if _, _, ok := cam.ScreenToCell(64, 5); ok {
		t.Fatal("coordinates beyond the viewport must not resolve")
	}
	if _, _, ok := cam.ScreenToCell(63.9, 63.9); !ok {
		t.Fatal("the last in-bounds pixel must resolve")
	}
}

func TestResizeResetsView(t *testing.T) {
	cam := NewCamera(64, 64, 2)
	cam.ZoomAt(30, 30, 8)
	cam.PanBy(-20, -20)
	cam.Resize(128, 96)

	if cam.Zoom() != 1 {
		t.Fatalf("resize must reset zoom, got %f", cam.Zoom())
	}
	if x, y := cam.Pan(); x != 0 || y != 0 {
		t.Fatalf("resize must reset pan, got (%f,%f)", x, y)
	}
	if vw, vh := cam.ViewportSize(); vw != 256 || vh != 192 {
		t.Fatalf("unexpected viewport size %dx%d", vw, vh)
	}
}

func TestRenderTransformMatchesCellMapping(t *testing.T) {
	cam := NewCamera(100, 100, 3)
	cam.ZoomAt(150, 150, 2.5)
	cam.PanBy(-33, 17)

	scale, tx, ty := cam.RenderTransform()
	for _, cell := range [][2]int{{0, 0}, {10, 20}, {99, 99}} {
		wantX, wantY := cam.CellToScreen(cell[0], cell[1])
		gotX := float64(cell[0])*scale + tx
		gotY := float64(cell[1])*scale + ty
		if math.Abs(gotX-wantX) > 1e-9 || math.Abs(gotY-wantY) > 1e-9 {
			t.Fatalf("render transform disagrees with CellToScreen for (%d,%d)", cell[0], cell[1])
		}
	}
}
