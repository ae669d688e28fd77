package view

import "math"

// DefaultMaxZoom bounds the magnification factor.
const DefaultMaxZoom = 32.0

// Camera maintains the zoom/pan state of the viewport and converts between
// screen pixels and map cells in both directions. Pan is expressed in
// map-cell units as the map coordinate visible at the viewport's top-left
// corner. At zoom 1 the whole map is visible and clamping forces the pan to
// (0, 0).
type Camera struct {
	mapW, mapH int
	scale      int // device pixels per cell at zoom 1

	zoom       float64
	panX, panY float64
	maxZoom    float64
}

// NewCamera constructs a camera over a mapW x mapH cell grid displayed at
// the given integer pixel scale.
func NewCamera(mapW, mapH, scale int) *Camera {
	if scale < 1 {
		scale = 1
	}
	return &Camera{mapW: mapW, mapH: mapH, scale: scale, zoom: 1, maxZoom: DefaultMaxZoom}
}

// Zoom returns the current magnification factor.
func (c *Camera) Zoom() float64 { return c.zoom }

// Pan returns the map coordinate at the viewport's top-left corner.
func (c *Camera) Pan() (float64, float64) { return c.panX, c.panY }

// ViewportSize returns the fixed display size in device pixels.
func (c *Camera) ViewportSize() (int, int) { return c.mapW * c.scale, c.mapH * c.scale }

// Reset returns to the full-map view.
func (c *Camera) Reset() {
	c.zoom = 1
	c.panX = 0
	c.panY = 0
}

// Resize retargets the camera at a new map size and resets the view, so a
// freshly generated world is never shown through a stale transform.
func (c *Camera) Resize(mapW, mapH int) {
	c.mapW = mapW
	c.mapH = mapH
	c.Reset()
}

// pixelsPerCell is the effective display scale including zoom.
func (c *Camera) pixelsPerCell() float64 { return float64(c.scale) * c.zoom }

// ScreenToCell inverse-maps a viewport pixel to the map cell underneath it.
// The boolean is false when the point falls outside the generated area.
func (c *Camera) ScreenToCell(px, py float64) (int, int, bool) {
	ppc := c.pixelsPerCell()
	cellX := int(math.Floor(c.panX + px/ppc))
	cellY := int(math.Floor(c.panY + py/ppc))
	if cellX < 0 || cellX >= c.mapW || cellY < 0 || cellY >= c.mapH {
		return 0, 0, false
	}
	vw, vh := c.ViewportSize()
	if px < 0 || py < 0 || px >= float64(vw) || py >= float64(vh) {
		return 0, 0, false
	}
	return cellX, cellY, true
}

// CellToScreen maps a cell's top-left corner to viewport pixels.
func (c *Camera) CellToScreen(cellX, cellY int) (float64, float64) {
	ppc := c.pixelsPerCell()
	return (float64(cellX) - c.panX) * ppc, (float64(cellY) - c.panY) * ppc
}

// ZoomAt multiplies the zoom by factor, clamped to [1, maxZoom], while
// keeping the map point under (px, py) stationary on screen. The new pan is
// solved from that invariant rather than recomputed heuristically: with m
// the anchored map coordinate, pan' = m - px/(scale*zoom').
func (c *Camera) ZoomAt(px, py, factor float64) {
	if factor <= 0 {
		return
	}
	oldPPC := c.pixelsPerCell()
	anchorX := c.panX + px/oldPPC
	anchorY := c.panY + py/oldPPC

	c.zoom *= factor
	if c.zoom < 1 {
		c.zoom = 1
	}
	if c.zoom > c.maxZoom {
		c.zoom = c.maxZoom
	}

	newPPC := c.pixelsPerCell()
	c.panX = anchorX - px/newPPC
	c.panY = anchorY - py/newPPC
	c.clampPan()
}

// PanBy shifts the view by a screen-space delta, moving the map with the
// pointer. The delta is converted to map units by the current scale.
func (c *Camera) PanBy(dx, dy float64) {
	ppc := c.pixelsPerCell()
	c.panX -= dx / ppc
	c.panY -= dy / ppc
	c.clampPan()
}

// clampPan keeps the visible viewport inside [0, mapW] x [0, mapH]. The
// visible span is map/zoom cells, so the pan bound collapses to zero at
// zoom 1.
func (c *Camera) clampPan() {
	maxPanX := float64(c.mapW) - float64(c.mapW)/c.zoom
	maxPanY := float64(c.mapH) - float64(c.mapH)/c.zoom
	c.panX = clamp(c.panX, 0, maxPanX)
	c.panY = clamp(c.panY, 0, maxPanY)
}

// RenderTransform returns the scale factor and pixel translation to apply
// when compositing the map raster to the viewport.
func (c *Camera) RenderTransform() (scale, tx, ty float64) {
	ppc := c.pixelsPerCell()
	return ppc, -c.panX * ppc, -c.panY * ppc
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
