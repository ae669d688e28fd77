package app

import (
	"flag"

	"mapview/internal/params"
	"mapview/internal/world"
)

// Config represents the command-line parameters for the viewer.
type Config struct {
	Seed      int64
	WorldType string
	Width     int
	Height    int
	Provinces int
	Layer     string
	Scale     int
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Seed:      42,
		WorldType: params.EarthLike.String(),
		Width:     256,
		Height:    256,
		Provinces: 24,
		Layer:     world.LayerHeightmap.String(),
		Scale:     3,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.Int64Var(&c.Seed, "seed", c.Seed, "generation seed (0 resolves from the clock)")
	fs.StringVar(&c.WorldType, "world", c.WorldType, "world type (earthlike, supercontinent, archipelago, mediterranean, iceage, desert)")
	fs.IntVar(&c.Width, "width", c.Width, "map width in cells")
	fs.IntVar(&c.Height, "height", c.Height, "map height in cells")
	fs.IntVar(&c.Provinces, "provinces", c.Provinces, "target province count")
	fs.StringVar(&c.Layer, "layer", c.Layer, "initial layer (heightmap, biomes, provinces, regions)")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
}

// Params converts the flag values into a generation parameter set. Unknown
// world type names fall back to the default so validation can report on the
// numeric fields.
func (c *Config) Params() params.Params {
	p := params.Default()
	p.Seed = c.Seed
	if wt, ok := params.ParseWorldType(c.WorldType); ok {
		p.WorldType = wt
	}
	p.Width = c.Width
	p.Height = c.Height
	p.ProvinceCount = c.Provinces
	return p
}
