package render

import (
	"testing"

	"mapview/internal/gen"
	"mapview/internal/params"
	"mapview/internal/world"
)

func smallWorld(t *testing.T) *world.Data {
	t.Helper()
	p := params.Default()
	p.Seed = 42
	p.Width = 64
	p.Height = 64
	p.ProvinceCount = 8
	data, err := gen.New().Generate(p)
	if err != nil {
		t.Fatalf("generation failed: %v", err)
	}
	return data
}

func TestBiomePaletteCoverage(t *testing.T) {
	for id := uint8(0); id < 16; id++ {
		col, ok := BiomeColor(id)
		if !ok {
			t.Fatalf("biome id %d has no palette entry", id)
		}
		if col.A != 255 {
			t.Fatalf("biome id %d has a non-opaque color", id)
		}
	}
	if _, ok := BiomeColor(16); ok {
		t.Fatal("biome id 16 must be outside the palette")
	}
}

func TestIDColorsAreStableAndDistinct(t *testing.T) {
	if ProvinceColor(0) != WaterColor || RegionColor(0) != WaterColor {
		t.Fatal("id 0 must render as the fixed water color")
	}
	seen := map[[3]uint8]uint16{}
	for id := uint16(1); id <= 64; id++ {
		a := ProvinceColor(id)
		b := ProvinceColor(id)
		if a != b {
			t.Fatalf("province color for id %d is not stable", id)
		}
		key := [3]uint8{a.R, a.G, a.B}
		if prev, dup := seen[key]; dup {
			t.Fatalf("province ids %d and %d collide on color %v", prev, id, a)
		}
		seen[key] = id
		if a == ProvinceColor(id+1) {
			t.Fatalf("adjacent province ids %d and %d are indistinguishable", id, id+1)
		}
	}
}

func TestHeightGradientIsMonotoneAtEndpoints(t *testing.T) {
	low := HeightColor(0)
	high := HeightColor(1)
	if low == high {
		t.Fatal("gradient endpoints must differ")
	}
	if HeightColor(-0.5) != low || HeightColor(1.5) != high {
		t.Fatal("heights outside [0,1] must clamp to the gradient endpoints")
	}
	if HeightColor(0.25) != HeightColor(0.25) {
		t.Fatal("gradient lookup must be deterministic")
	}
}

func TestFillLayerCoversEveryCell(t *testing.T) {
	data := smallWorld(t)
	buf := make([]byte, 4*data.Width*data.Height)

	for _, layer := range []world.Layer{world.LayerHeightmap, world.LayerBiomes, world.LayerProvinces, world.LayerRegions} {
		for i := range buf {
			buf[i] = 0
		}
		if err := FillLayer(buf, data, layer); err != nil {
			t.Fatalf("layer %v must render valid data, got %v", layer, err)
		}
		for i := 3; i < len(buf); i += 4 {
			if buf[i] != 255 {
				t.Fatalf("layer %v left cell %d without an opaque pixel", layer, i/4)
			}
		}
	}
}

func TestFillLayerDoesNotMutateWorld(t *testing.T) {
	data := smallWorld(t)
	heightBefore := append([]float32(nil), data.Heightmap...)
	biomesBefore := append([]uint8(nil), data.BiomeIDs...)

	buf := make([]byte, 4*data.Width*data.Height)
	if err := FillLayer(buf, data, world.LayerHeightmap); err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if err := FillLayer(buf, data, world.LayerProvinces); err != nil {
		t.Fatalf("render failed: %v", err)
	}

	for i := range heightBefore {
		if data.Heightmap[i] != heightBefore[i] {
			t.Fatal("rendering must not mutate the heightmap")
		}
	}
	for i := range biomesBefore {
		if data.BiomeIDs[i] != biomesBefore[i] {
			t.Fatal("rendering must not mutate the biome buffer")
		}
	}
}

func TestFillLayerRejectsCorruptBiome(t *testing.T) {
	data := smallWorld(t)
	data.BiomeIDs[5] = 200
	buf := make([]byte, 4*data.Width*data.Height)
	if err := FillLayer(buf, data, world.LayerBiomes); err == nil {
		t.Fatal("an out-of-range biome id must be a rendering error, not clamped")
	}
}

func TestFillLayerRejectsWrongBufferSize(t *testing.T) {
	data := smallWorld(t)
	if err := FillLayer(make([]byte, 8), data, world.LayerHeightmap); err == nil {
		t.Fatal("a mis-sized pixel buffer must be rejected")
	}
}
