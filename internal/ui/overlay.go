//go:build ebiten

package ui

import (
	"mapview/internal/world"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Overlay draws an optional province border mask on top of the map. The
// mask is rebuilt only when the world changes; toggling costs nothing.
type Overlay struct {
	showBorders bool

	img    *ebiten.Image
	buf    []byte
	cached *world.Data
}

// NewOverlay constructs a new overlay instance with borders enabled.
func NewOverlay() *Overlay {
	return &Overlay{showBorders: true}
}

// Update handles the border toggle key.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyB) {
		o.showBorders = !o.showBorders
	}
}

// Draw composites the border mask with the camera transform applied.
func (o *Overlay) Draw(screen *ebiten.Image, d *world.Data, scale, tx, ty float64) {
	if !o.showBorders || d == nil {
		return
	}
	o.ensureMask(d)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(tx, ty)
	screen.DrawImage(o.img, op)
}

// ensureMask rebuilds the border pixels when the world identity changes. A
// cell is a border cell when its province differs from the cell to the
// right or below, land-to-land only.
func (o *Overlay) ensureMask(d *world.Data) {
	if o.cached == d {
		return
	}
	total := d.Width * d.Height
	if o.img == nil || o.img.Bounds().Dx() != d.Width || o.img.Bounds().Dy() != d.Height {
		o.img = ebiten.NewImage(d.Width, d.Height)
		o.buf = make([]byte, 4*total)
	}
	for i := range o.buf {
		o.buf[i] = 0
	}
	for y := 0; y < d.Height; y++ {
		for x := 0; x < d.Width; x++ {
			i := y*d.Width + x
			id := d.ProvinceIDs[i]
			if id == 0 {
				continue
			}
			border := false
			if x+1 < d.Width {
				if n := d.ProvinceIDs[i+1]; n != 0 && n != id {
					border = true
				}
			}
			if !border && y+1 < d.Height {
				if n := d.ProvinceIDs[i+d.Width]; n != 0 && n != id {
					border = true
				}
			}
			if border {
				base := i * 4
				o.buf[base+3] = 150
			}
		}
	}
	o.img.ReplacePixels(o.buf)
	o.cached = d
}
