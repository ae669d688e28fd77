package params

import (
	"strconv"
	"time"
)

// WorldType selects the generation archetype.
type WorldType uint8

const (
	EarthLike WorldType = iota
	Supercontinent
	Archipelago
	Mediterranean
	IceAge
	Desert
)

var worldTypeNames = [...]string{
	EarthLike:      "earthlike",
	Supercontinent: "supercontinent",
	Archipelago:    "archipelago",
	Mediterranean:  "mediterranean",
	IceAge:         "iceage",
	Desert:         "desert",
}

// String returns the lowercase name of the world type.
func (t WorldType) String() string {
	if int(t) < len(worldTypeNames) {
		return worldTypeNames[t]
	}
	return "unknown"
}

// WorldTypeNames lists the recognized world type names in enum order.
func WorldTypeNames() []string {
	names := make([]string, len(worldTypeNames))
	copy(names, worldTypeNames[:])
	return names
}

// ParseWorldType resolves a name to a WorldType.
func ParseWorldType(name string) (WorldType, bool) {
	for i, n := range worldTypeNames {
		if n == name {
			return WorldType(i), true
		}
	}
	return EarthLike, false
}

// Bounds enforced by Validate. Width/height cap the worst-case buffer size;
// the province cap is a function of map area.
const (
	MinMapDim        = 16
	MaxMapDim        = 2048
	MinProvinceCount = 1
	ProvinceAreaDiv  = 64
)

// MaxProvinceCount returns the largest province count accepted for a map of
// the given dimensions.
func MaxProvinceCount(width, height int) int {
	n := width * height / ProvinceAreaDiv
	if n < MinProvinceCount {
		n = MinProvinceCount
	}
	return n
}

// Params holds one validated set of generation parameters.
type Params struct {
	Seed      int64
	WorldType WorldType

	Width  int
	Height int

	Temperature   float64
	Humidity      float64
	Elevation     float64
	IslandDensity float64

	ProvinceCount int
}

// Default returns the standard parameter set.
func Default() Params {
	return Params{
		Seed:          42,
		WorldType:     EarthLike,
		Width:         256,
		Height:        256,
		Temperature:   0,
		Humidity:      0,
		Elevation:     0,
		IslandDensity: 0.5,
		ProvinceCount: 24,
	}
}

// FromMap populates a parameter set from string key/value pairs, starting
// from defaults. Unknown keys and unparseable values are ignored; Validate
// is still responsible for range checking.
func FromMap(cfg map[string]string) Params {
	p := Default()
	if cfg == nil {
		return p
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			p.Seed = parsed
		}
	}
	if v, ok := cfg["world_type"]; ok {
		if parsed, ok := ParseWorldType(v); ok {
			p.WorldType = parsed
		}
	}
	if v, ok := cfg["width"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			p.Width = parsed
		}
	}
	if v, ok := cfg["height"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			p.Height = parsed
		}
	}
	if v, ok := cfg["temperature"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			p.Temperature = parsed
		}
	}
	if v, ok := cfg["humidity"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			p.Humidity = parsed
		}
	}
	if v, ok := cfg["elevation"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			p.Elevation = parsed
		}
	}
	if v, ok := cfg["island_density"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			p.IslandDensity = parsed
		}
	}
	if v, ok := cfg["provinces"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			p.ProvinceCount = parsed
		}
	}
	return p
}

// now is replaced in tests that need a fixed clock for seed resolution.
var now = time.Now
