//go:build ebiten

package app

import (
	"image/color"
	"math"

	"mapview/internal/inspect"
	"mapview/internal/render"
	"mapview/internal/ui"
	"mapview/internal/world"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const (
	// HUDWidth is the pixel width of the control panel.
	HUDWidth = 260

	// dragThreshold is the pointer travel in pixels beyond which a press
	// becomes a drag and the release is no longer a click.
	dragThreshold = 4

	// zoomStep is the magnification per wheel notch.
	zoomStep = 1.15
)

// Game adapts a Session to the ebiten.Game interface and translates raw
// input events into session calls.
type Game struct {
	session *Session
	painter *render.LayerPainter
	overlay *ui.Overlay
	hud     *ui.HUD

	pressed   bool
	dragMoved bool
	pressX    int
	pressY    int
	lastX     int
	lastY     int
}

// New constructs a Game for the provided session.
func New(session *Session) *Game {
	return &Game{
		session: session,
		overlay: ui.NewOverlay(),
		hud:     ui.NewHUD(session, HUDWidth),
	}
}

// Update handles per-frame input and keeps the raster fresh.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		if g.session.Selection().Kind != inspect.KindNone {
			g.session.ClearSelection()
		} else {
			return ebiten.Termination
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		g.session.SetLayer(world.LayerHeightmap)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		g.session.SetLayer(world.LayerBiomes)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit3) {
		g.session.SetLayer(world.LayerProvinces)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit4) {
		g.session.SetLayer(world.LayerRegions)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		g.session.Generate()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.session.Camera().Reset()
	}

	vw, _ := g.session.Camera().ViewportSize()
	g.hud.Update(vw)
	g.overlay.Update()
	g.handleMouse(vw)

	return g.refreshRaster()
}

// handleMouse implements drag-pan, wheel zoom and click selection. A drag
// and a wheel zoom are mutually exclusive per input sequence, and a release
// after real pointer travel is not a click.
func (g *Game) handleMouse(vw int) {
	mx, my := ebiten.CursorPosition()
	camera := g.session.Camera()

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) && mx >= 0 && mx < vw {
		g.pressed = true
		g.dragMoved = false
		g.pressX, g.pressY = mx, my
		g.lastX, g.lastY = mx, my
	}

	if g.pressed && ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		if !g.dragMoved && (absInt(mx-g.pressX) > dragThreshold || absInt(my-g.pressY) > dragThreshold) {
			g.dragMoved = true
		}
		if g.dragMoved {
			dx, dy := mx-g.lastX, my-g.lastY
			if dx != 0 || dy != 0 {
				camera.PanBy(float64(dx), float64(dy))
			}
		}
		g.lastX, g.lastY = mx, my
	}

	if g.pressed && inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		g.pressed = false
		if !g.dragMoved && mx < vw {
			g.session.Click(float64(mx), float64(my))
		}
	}

	if !g.pressed && mx >= 0 && mx < vw {
		if _, wy := ebiten.Wheel(); wy != 0 {
			camera.ZoomAt(float64(mx), float64(my), math.Pow(zoomStep, wy))
		}
	}
}

// refreshRaster rebuilds the layer raster when the session marks it stale.
// A fill error means the palette no longer covers the engine's id ranges;
// that is a defect worth aborting on, not a recoverable condition.
func (g *Game) refreshRaster() error {
	if !g.session.NeedsRedraw() {
		return nil
	}
	data := g.session.World()
	if data == nil {
		g.session.MarkClean()
		return nil
	}
	if g.painter == nil {
		g.painter = render.NewLayerPainter(data.Width, data.Height)
	} else if w, h := g.painter.Size(); w != data.Width || h != data.Height {
		g.painter = render.NewLayerPainter(data.Width, data.Height)
	}
	if err := g.painter.Redraw(data, g.session.Layer()); err != nil {
		return err
	}
	g.session.MarkClean()
	return nil
}

// Draw composites the map raster with the camera transform, then the
// border overlay and the HUD panel.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 10, G: 10, B: 12, A: 255})
	if g.painter != nil {
		scale, tx, ty := g.session.Camera().RenderTransform()
		g.painter.Blit(screen, scale, tx, ty)
		if g.session.Layer() == world.LayerProvinces || g.session.Layer() == world.LayerRegions {
			g.overlay.Draw(screen, g.session.World(), scale, tx, ty)
		}
	}
	vw, vh := g.session.Camera().ViewportSize()
	g.hud.Draw(screen, vw, vh)
}

// Layout returns the logical screen size: the map viewport plus the panel.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	vw, vh := g.session.Camera().ViewportSize()
	return vw + HUDWidth, vh
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
