package world

import (
	"errors"
	"testing"

	"mapview/internal/params"
)

type stubEngine struct {
	data *Data
	err  error
}

func (s *stubEngine) Generate(params.Params) (*Data, error) {
	return s.data, s.err
}

func validStubData(w, h int) *Data {
	total := w * h
	return &Data{
		Width:       w,
		Height:      h,
		Heightmap:   make([]float32, total),
		BiomeIDs:    make([]uint8, total),
		ProvinceIDs: make([]uint16, total),
		RegionIDs:   make([]uint16, total),
		Provinces:   map[uint16]Province{1: {Name: "Alpha", Region: 1}},
		Regions:     map[uint16]Region{1: {Name: "North", Provinces: []uint16{1}}},
	}
}

func testParams(w, h int) params.Params {
	p := params.Default()
	p.Width = w
	p.Height = h
	return p
}

func TestBridgePublishesValidOutput(t *testing.T) {
	engine := &stubEngine{data: validStubData(32, 16)}
	bridge := NewBridge(engine)

	data, err := bridge.Generate(testParams(32, 16))
	if err != nil {
		t.Fatalf("unexpected generation error: %v", err)
	}
	if data != engine.data {
		t.Fatal("bridge must publish the engine's buffers by reference, not a copy")
	}
	if bridge.Current() != data {
		t.Fatal("Current must return the freshly published world")
	}
}

func TestBridgeRejectsCorruptOutput(t *testing.T) {
	corrupt := validStubData(32, 16)
	corrupt.BiomeIDs = corrupt.BiomeIDs[:10]
	engine := &stubEngine{data: corrupt}
	bridge := NewBridge(engine)

	_, err := bridge.Generate(testParams(32, 16))
	var genErr *GenerationError
	if !errors.As(err, &genErr) || genErr.Kind != ErrCorruptOutput {
		t.Fatalf("expected CorruptOutput error, got %v", err)
	}
	if bridge.Current() != nil {
		t.Fatal("corrupt output must not be published")
	}
}

func TestBridgeKeepsPreviousWorldOnFailure(t *testing.T) {
	engine := &stubEngine{data: validStubData(32, 16)}
	bridge := NewBridge(engine)
	first, err := bridge.Generate(testParams(32, 16))
	if err != nil {
		t.Fatalf("unexpected generation error: %v", err)
	}

	engine.data = nil
	engine.err = errors.New("engine rejected parameters")
	_, err = bridge.Generate(testParams(32, 16))
	var genErr *GenerationError
	if !errors.As(err, &genErr) || genErr.Kind != ErrEngineRejected {
		t.Fatalf("expected EngineRejected error, got %v", err)
	}
	if bridge.Current() != first {
		t.Fatal("previous world must remain published after a failed generation")
	}
}

func TestBridgeRejectsDanglingRegionReference(t *testing.T) {
	data := validStubData(32, 16)
	data.Provinces[2] = Province{Name: "Beta", Region: 99}
	bridge := NewBridge(&stubEngine{data: data})

	_, err := bridge.Generate(testParams(32, 16))
	var genErr *GenerationError
	if !errors.As(err, &genErr) || genErr.Kind != ErrCorruptOutput {
		t.Fatalf("expected CorruptOutput for dangling region reference, got %v", err)
	}
}

func TestDataSizeMatchesBuffers(t *testing.T) {
	data := validStubData(32, 16)
	sz := data.Size()
	if sz.W != 32 || sz.H != 16 {
		t.Fatalf("unexpected size %+v", sz)
	}
	if sz.Cells() != len(data.Heightmap) {
		t.Fatalf("cell count %d does not match buffer length %d", sz.Cells(), len(data.Heightmap))
	}

	degenerate := &Data{Width: 32, Height: 0}
	if degenerate.Size().Cells() != 0 {
		t.Fatal("degenerate dimensions must report zero cells")
	}
	bridge := NewBridge(&stubEngine{data: degenerate})
	_, err := bridge.Generate(testParams(32, 0))
	var genErr *GenerationError
	if !errors.As(err, &genErr) || genErr.Kind != ErrCorruptOutput {
		t.Fatalf("expected CorruptOutput for degenerate dimensions, got %v", err)
	}
}

func TestParseLayerRoundTrip(t *testing.T) {
	for _, l := range []Layer{LayerHeightmap, LayerBiomes, LayerProvinces, LayerRegions} {
		parsed, ok := ParseLayer(l.String())
		if !ok || parsed != l {
			t.Fatalf("layer %v did not round trip through %q", l, l.String())
		}
	}
	if _, ok := ParseLayer("rivers"); ok {
		t.Fatal("unknown layer name must not parse")
	}
}
