package gen

import (
	"mapview/internal/params"
	"mapview/internal/world"
)

// Engine is the reference generation engine. It synthesizes terrain with
// Perlin noise shaped per world type, classifies 16 biomes from elevation
// and climate, partitions land into provinces by seeded flood fill, and
// groups provinces into regions. Generation is fully deterministic for a
// given parameter set.
type Engine struct{}

// New constructs the reference engine.
func New() *Engine { return &Engine{} }

// Generate produces a complete world for validated parameters. The returned
// buffers are freshly allocated for this call and never mutated afterwards.
func (e *Engine) Generate(p params.Params) (*world.Data, error) {
	shape := shapingFor(p.WorldType, p.IslandDensity)
	rng := newRNG(p.Seed)

	heights := buildHeightmap(p, shape)
	humidity := buildHumidity(p, shape)
	biomes := classifyBiomes(p, shape, heights, humidity)

	provs, provTable, err := partitionProvinces(p, shape, heights, biomes, rng)
	if err != nil {
		return nil, err
	}
	regionCells, regionTable := groupRegions(provs, provTable, p.ProvinceCount, p.Width, p.Height, rng)

	return &world.Data{
		Width:       p.Width,
		Height:      p.Height,
		Heightmap:   heights,
		BiomeIDs:    biomes,
		ProvinceIDs: provs,
		RegionIDs:   regionCells,
		Provinces:   provTable,
		Regions:     regionTable,
	}, nil
}
