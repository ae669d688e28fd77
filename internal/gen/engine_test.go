package gen

import (
	"slices"
	"testing"

	"mapview/internal/params"
)

func archipelagoParams() params.Params {
	p := params.Default()
	p.Seed = 42
	p.WorldType = params.Archipelago
	p.Width = 512
	p.Height = 512
	p.ProvinceCount = 50
	return p
}

func TestGenerateDeterministic(t *testing.T) {
	p := params.Default()
	p.Seed = 99
	p.Width = 96
	p.Height = 64
	p.ProvinceCount = 12

	engine := New()
	a, err := engine.Generate(p)
	if err != nil {
		t.Fatalf("first generation failed: %v", err)
	}
	b, err := engine.Generate(p)
	if err != nil {
		t.Fatalf("second generation failed: %v", err)
	}

	if !slices.Equal(a.Heightmap, b.Heightmap) {
		t.Fatal("heightmap not deterministic for identical parameters")
	}
	if !slices.Equal(a.BiomeIDs, b.BiomeIDs) {
		t.Fatal("biome buffer not deterministic for identical parameters")
	}
	if !slices.Equal(a.ProvinceIDs, b.ProvinceIDs) {
		t.Fatal("province buffer not deterministic for identical parameters")
	}
	if !slices.Equal(a.RegionIDs, b.RegionIDs) {
		t.Fatal("region buffer not deterministic for identical parameters")
	}
	for id, prov := range a.Provinces {
		if b.Provinces[id] != prov {
			t.Fatalf("province %d metadata differs between runs", id)
		}
	}

	p.Seed = 100
	c, err := engine.Generate(p)
	if err != nil {
		t.Fatalf("third generation failed: %v", err)
	}
	if slices.Equal(a.Heightmap, c.Heightmap) {
		t.Fatal("different seeds should produce different terrain")
	}
}

func TestGenerateArchipelagoScenario(t *testing.T) {
	p := archipelagoParams()
	data, err := New().Generate(p)
	if err != nil {
		t.Fatalf("generation failed: %v", err)
	}

	total := p.Width * p.Height
	if total != 262144 {
		t.Fatalf("unexpected cell count %d", total)
	}
	if len(data.Heightmap) != total || len(data.BiomeIDs) != total ||
		len(data.ProvinceIDs) != total || len(data.RegionIDs) != total {
		t.Fatal("all four buffers must have one entry per cell")
	}

	if len(data.Provinces) != 50 {
		t.Fatalf("expected exactly 50 provinces, got %d", len(data.Provinces))
	}
	for id := uint16(1); id <= 50; id++ {
		if _, ok := data.Provinces[id]; !ok {
			t.Fatalf("province table missing id %d", id)
		}
	}

	ocean := 0
	for _, id := range data.ProvinceIDs {
		if id == 0 {
			ocean++
		}
	}
	if ocean == 0 {
		t.Fatal("an archipelago must contain ocean cells")
	}
}

func TestGenerateBuffersStayConsistent(t *testing.T) {
	p := params.Default()
	p.Seed = 7
	p.Width = 80
	p.Height = 80
	p.ProvinceCount = 10

	data, err := New().Generate(p)
	if err != nil {
		t.Fatalf("generation failed: %v", err)
	}

	for i, prov := range data.ProvinceIDs {
		region := data.RegionIDs[i]
		if prov == 0 {
			if region != 0 {
				t.Fatalf("cell %d has region %d but no province", i, region)
			}
			continue
		}
		meta, ok := data.Provinces[prov]
		if !ok {
			t.Fatalf("cell %d references unknown province %d", i, prov)
		}
		if meta.Region != region {
			t.Fatalf("cell %d: region buffer %d disagrees with province table %d", i, region, meta.Region)
		}
		if _, ok := data.Regions[region]; !ok {
			t.Fatalf("cell %d references unknown region %d", i, region)
		}
	}

	for id, region := range data.Regions {
		if len(region.Provinces) == 0 {
			t.Fatalf("region %d has no member provinces", id)
		}
		for _, prov := range region.Provinces {
			if data.Provinces[prov].Region != id {
				t.Fatalf("region %d lists province %d owned by region %d", id, prov, data.Provinces[prov].Region)
			}
		}
	}

	for i, b := range data.BiomeIDs {
		if b >= BiomeCount {
			t.Fatalf("cell %d has out-of-range biome id %d", i, b)
		}
	}
	for i, h := range data.Heightmap {
		if h < 0 || h > 1 {
			t.Fatalf("cell %d has out-of-range height %f", i, h)
		}
	}
}

func TestWorldTypesShiftClimate(t *testing.T) {
	base := params.Default()
	base.Seed = 5
	base.Width = 64
	base.Height = 64
	base.ProvinceCount = 8

	engine := New()

	cold := base
	cold.WorldType = params.IceAge
	coldData, err := engine.Generate(cold)
	if err != nil {
		t.Fatalf("iceage generation failed: %v", err)
	}

	dry := base
	dry.WorldType = params.Desert
	dryData, err := engine.Generate(dry)
	if err != nil {
		t.Fatalf("desert generation failed: %v", err)
	}

	frozen := countBiomes(coldData.BiomeIDs, BiomeSnow, BiomeTundra, BiomeGlacier)
	arid := countBiomes(dryData.BiomeIDs, BiomeDesert, BiomeSavanna)
	if frozen == 0 {
		t.Fatal("an ice age world should contain frozen biomes")
	}
	if arid == 0 {
		t.Fatal("a desert world should contain arid biomes")
	}
}

func TestSeaLevelBoundaryAgreesAcrossPasses(t *testing.T) {
	// float32(0.45) sits just below the float64 value, so a cell at exactly
	// that height is land for the province fill and must be land for the
	// biome pass too.
	shape := shaping{seaLevel: 0.45}
	heights := []float32{float32(shape.seaLevel)}
	humidity := []float32{0.5}

	p := params.Default()
	p.Width = 1
	p.Height = 1
	p.ProvinceCount = 1

	biomes := classifyBiomes(p, shape, heights, humidity)
	switch biomes[0] {
	case BiomeDeepOcean, BiomeOcean, BiomeShallows:
		t.Fatalf("cell at sea level classified as water biome %d", biomes[0])
	}

	provs, _, err := partitionProvinces(p, shape, heights, biomes, newRNG(1))
	if err != nil {
		t.Fatalf("partition failed: %v", err)
	}
	if provs[0] == 0 {
		t.Fatal("cell at sea level must be claimable land")
	}
}

func countBiomes(ids []uint8, want ...uint8) int {
	n := 0
	for _, id := range ids {
		for _, w := range want {
			if id == w {
				n++
				break
			}
		}
	}
	return n
}
