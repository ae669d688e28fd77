package app

import (
	"fmt"
	"strconv"

	"mapview/internal/core"
	"mapview/internal/inspect"
	"mapview/internal/params"
	"mapview/internal/view"
	"mapview/internal/world"
)

// Mode is the interaction state machine: Idle -> Generating -> Ready ->
// (Generating | Error). Generation runs synchronously inside one update
// tick, so overlapping requests cannot occur.
type Mode uint8

const (
	ModeIdle Mode = iota
	ModeGenerating
	ModeReady
	ModeError
)

var modeNames = [...]string{
	ModeIdle:       "idle",
	ModeGenerating: "generating",
	ModeReady:      "ready",
	ModeError:      "error",
}

// String returns the lowercase mode name.
func (m Mode) String() string {
	if int(m) < len(modeNames) {
		return modeNames[m]
	}
	return "unknown"
}

// Session is the display-independent part of the interaction controller. It
// owns the pending parameter edits, the generation bridge, the camera, the
// selected layer and the current selection; the GUI layer only translates
// raw input events into calls on it.
type Session struct {
	mode   Mode
	errMsg string

	pending      params.Params
	resolvedSeed int64

	bridge    *world.Bridge
	camera    *view.Camera
	layer     world.Layer
	selection inspect.Selection

	dirty bool
}

// NewSession wires a session around the provided engine. The camera starts
// sized to the pending map dimensions so the window has a shape before the
// first generation.
func NewSession(engine world.Engine, initial params.Params, layer world.Layer, scale int) *Session {
	return &Session{
		pending: initial,
		bridge:  world.NewBridge(engine),
		camera:  view.NewCamera(initial.Width, initial.Height, scale),
		layer:   layer,
	}
}

// Mode returns the current state machine mode.
func (s *Session) Mode() Mode { return s.mode }

// Err returns the surfaced error text, empty outside ModeError.
func (s *Session) Err() string { return s.errMsg }

// World returns the currently published world, or nil before the first
// successful generation.
func (s *Session) World() *world.Data { return s.bridge.Current() }

// Camera exposes the view transform.
func (s *Session) Camera() *view.Camera { return s.camera }

// Layer returns the displayed layer.
func (s *Session) Layer() world.Layer { return s.layer }

// Selection returns the current click selection.
func (s *Session) Selection() inspect.Selection { return s.selection }

// ClearSelection dismisses the info panel content.
func (s *Session) ClearSelection() { s.selection = inspect.Selection{} }

// NeedsRedraw reports whether the raster is stale; MarkClean acknowledges a
// completed redraw.
func (s *Session) NeedsRedraw() bool { return s.dirty }

// MarkClean acknowledges that the raster was rebuilt.
func (s *Session) MarkClean() { s.dirty = false }

// SetLayer switches the displayed layer. Switching operates on the held
// world only; it never re-invokes generation.
func (s *Session) SetLayer(l world.Layer) {
	if l == s.layer {
		return
	}
	s.layer = l
	s.dirty = true
}

// Generate validates the pending parameters and runs the engine. On any
// failure the previously published world stays displayed and the error is
// surfaced verbatim; on success the camera resets and the selection clears
// so the new world is never shown through stale view state.
func (s *Session) Generate() {
	s.mode = ModeGenerating

	validated, verr := params.Validate(s.pending)
	if verr != nil {
		s.mode = ModeError
		s.errMsg = verr.Error()
		return
	}
	// Surface the resolved seed so an absent seed is still reproducible.
	s.resolvedSeed = validated.Seed

	data, err := s.bridge.Generate(validated)
	if err != nil {
		s.mode = ModeError
		s.errMsg = err.Error()
		return
	}

	s.mode = ModeReady
	s.errMsg = ""
	sz := data.Size()
	s.camera.Resize(sz.W, sz.H)
	s.selection = inspect.Selection{}
	s.dirty = true
}

// Click inverse-maps a viewport pixel and resolves the selection. A click
// outside the generated area clears the selection; that is a normal signal,
// not an error.
func (s *Session) Click(px, py float64) {
	data := s.World()
	if data == nil {
		return
	}
	cx, cy, ok := s.camera.ScreenToCell(px, py)
	if !ok {
		s.selection = inspect.Selection{}
		return
	}
	s.selection = inspect.Inspect(data, s.layer, cx, cy)
}

// StatusLines summarizes the session for the HUD.
func (s *Session) StatusLines() []string {
	lines := []string{fmt.Sprintf("State: %s", s.mode)}
	if s.mode == ModeError {
		lines = append(lines, "Error: "+s.errMsg)
	}
	if s.resolvedSeed != 0 {
		lines = append(lines, fmt.Sprintf("Seed: %d", s.resolvedSeed))
	}
	lines = append(lines, fmt.Sprintf("Layer: %s", s.layer))
	return lines
}

// SelectionLines formats the current selection for the info panel.
func (s *Session) SelectionLines() []string {
	return inspect.Describe(s.selection)
}

// ParameterControls lists the HUD-adjustable generation parameters.
func (s *Session) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "seed", Label: "Seed", Type: core.ParamTypeInt, Step: 1, Min: 0, HasMin: true},
		{Key: "world_type", Label: "World", Type: core.ParamTypeEnum, Options: params.WorldTypeNames()},
		{Key: "width", Label: "Width", Type: core.ParamTypeInt, Step: 32, Min: params.MinMapDim, Max: params.MaxMapDim, HasMin: true, HasMax: true},
		{Key: "height", Label: "Height", Type: core.ParamTypeInt, Step: 32, Min: params.MinMapDim, Max: params.MaxMapDim, HasMin: true, HasMax: true},
		{Key: "temperature", Label: "Temperature", Type: core.ParamTypeFloat, Step: 0.1, Min: -1, Max: 1, HasMin: true, HasMax: true},
		{Key: "humidity", Label: "Humidity", Type: core.ParamTypeFloat, Step: 0.1, Min: -1, Max: 1, HasMin: true, HasMax: true},
		{Key: "elevation", Label: "Elevation", Type: core.ParamTypeFloat, Step: 0.1, Min: -1, Max: 1, HasMin: true, HasMax: true},
		{Key: "island_density", Label: "Islands", Type: core.ParamTypeFloat, Step: 0.05, Min: 0, Max: 1, HasMin: true, HasMax: true},
		{Key: "provinces", Label: "Provinces", Type: core.ParamTypeInt, Step: 1, Min: params.MinProvinceCount, HasMin: true},
	}
}

// Parameters snapshots the pending (not yet generated) parameter values.
func (s *Session) Parameters() core.ParameterSnapshot {
	p := s.pending
	return core.ParameterSnapshot{Params: []core.Parameter{
		{Key: "seed", Label: "Seed", Type: core.ParamTypeInt, Value: strconv.FormatInt(p.Seed, 10)},
		{Key: "world_type", Label: "World", Type: core.ParamTypeEnum, Value: strconv.Itoa(int(p.WorldType))},
		{Key: "width", Label: "Width", Type: core.ParamTypeInt, Value: strconv.Itoa(p.Width)},
		{Key: "height", Label: "Height", Type: core.ParamTypeInt, Value: strconv.Itoa(p.Height)},
		{Key: "temperature", Label: "Temperature", Type: core.ParamTypeFloat, Value: strconv.FormatFloat(p.Temperature, 'f', -1, 64)},
		{Key: "humidity", Label: "Humidity", Type: core.ParamTypeFloat, Value: strconv.FormatFloat(p.Humidity, 'f', -1, 64)},
		{Key: "elevation", Label: "Elevation", Type: core.ParamTypeFloat, Value: strconv.FormatFloat(p.Elevation, 'f', -1, 64)},
		{Key: "island_density", Label: "Islands", Type: core.ParamTypeFloat, Value: strconv.FormatFloat(p.IslandDensity, 'f', -1, 64)},
		{Key: "provinces", Label: "Provinces", Type: core.ParamTypeInt, Value: strconv.Itoa(p.ProvinceCount)},
	}}
}

// SetIntParameter updates an integer or enum field of the pending set.
// Values are applied as-is; Validate reports range problems at generate
// time with a field-specific message.
func (s *Session) SetIntParameter(key string, value int) bool {
	switch key {
	case "seed":
		s.pending.Seed = int64(value)
	case "world_type":
		if value < 0 || value >= len(params.WorldTypeNames()) {
			return false
		}
		s.pending.WorldType = params.WorldType(value)
	case "width":
		s.pending.Width = value
	case "height":
		s.pending.Height = value
	case "provinces":
		s.pending.ProvinceCount = value
	default:
		return false
	}
	return true
}

// SetFloatParameter updates a float field of the pending set.
func (s *Session) SetFloatParameter(key string, value float64) bool {
	switch key {
	case "temperature":
		s.pending.Temperature = value
	case "humidity":
		s.pending.Humidity = value
	case "elevation":
		s.pending.Elevation = value
	case "island_density":
		s.pending.IslandDensity = value
	default:
		return false
	}
	return true
}
