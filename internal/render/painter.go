//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"

	"mapview/internal/world"
)

// LayerPainter owns the map raster: a fixed-size RGBA buffer uploaded into
// an ebiten image. Redraw refreshes the raster when the world or the
// selected layer changes; Blit composites it every frame with the camera
// transform applied, so pan/zoom never touches the pixel fill.
type LayerPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewLayerPainter allocates a painter for a w x h cell map.
func NewLayerPainter(w, h int) *LayerPainter {
	lp := &LayerPainter{w: w, h: h, buf: make([]byte, 4*w*h)}
	lp.img = ebiten.NewImage(w, h)
	return lp
}

// Redraw fills the raster from the world's selected layer and uploads it.
func (lp *LayerPainter) Redraw(d *world.Data, layer world.Layer) error {
	if err := FillLayer(lp.buf, d, layer); err != nil {
		return err
	}
	lp.img.ReplacePixels(lp.buf)
	return nil
}

// Blit draws the raster onto dst with the provided scale and translation,
// as produced by Camera.RenderTransform.
func (lp *LayerPainter) Blit(dst *ebiten.Image, scale, tx, ty float64) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(tx, ty)
	dst.DrawImage(lp.img, op)
}

// Size returns the dimensions of the underlying raster.
func (lp *LayerPainter) Size() (int, int) { return lp.w, lp.h }
