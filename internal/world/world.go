package world

import "mapview/internal/core"

// Layer identifies one of the visualizable per-cell buffers.
type Layer uint8

const (
	LayerHeightmap Layer = iota
	LayerBiomes
	LayerProvinces
	LayerRegions
)

var layerNames = [...]string{
	LayerHeightmap: "heightmap",
	LayerBiomes:    "biomes",
	LayerProvinces: "provinces",
	LayerRegions:   "regions",
}

// String returns the lowercase layer name.
func (l Layer) String() string {
	if int(l) < len(layerNames) {
		return layerNames[l]
	}
	return "unknown"
}

// ParseLayer resolves a name to a Layer.
func ParseLayer(name string) (Layer, bool) {
	for i, n := range layerNames {
		if n == name {
			return Layer(i), true
		}
	}
	return LayerHeightmap, false
}

// ProvinceType classifies a province by its dominant terrain.
type ProvinceType uint8

const (
	ProvincePlains ProvinceType = iota
	ProvinceHills
	ProvinceMountains
	ProvinceDesert
	ProvinceTundra
)

var provinceTypeNames = [...]string{
	ProvincePlains:    "plains",
	ProvinceHills:     "hills",
	ProvinceMountains: "mountains",
	ProvinceDesert:    "desert",
	ProvinceTundra:    "tundra",
}

// String returns the lowercase province type name.
func (t ProvinceType) String() string {
	if int(t) < len(provinceTypeNames) {
		return provinceTypeNames[t]
	}
	return "unknown"
}

// Province holds the metadata table entry for one province id.
type Province struct {
	Name    string
	Type    ProvinceType
	Coastal bool
	Region  uint16
}

// Region holds the metadata table entry for one region id.
type Region struct {
	Name      string
	Provinces []uint16
}

// Data is the immutable result of one generation call. The per-cell buffers
// are row-major views over the engine's output and share its backing memory;
// callers must treat them as read-only.
type Data struct {
	Width  int
	Height int

	Heightmap   []float32
	BiomeIDs    []uint8
	ProvinceIDs []uint16
	RegionIDs   []uint16

	Provinces map[uint16]Province
	Regions   map[uint16]Region
}

// Size reports the grid dimensions.
func (d *Data) Size() core.Size { return core.Size{W: d.Width, H: d.Height} }

// Index returns the linear buffer index for coordinates (x, y). Bounds are
// the caller's responsibility.
func (d *Data) Index(x, y int) int { return y*d.Width + x }

// ProvinceAt returns the province id at (x, y); 0 means ocean/unclaimed.
func (d *Data) ProvinceAt(x, y int) uint16 {
	return d.ProvinceIDs[d.Index(x, y)]
}

// RegionAt returns the region id at (x, y); 0 means no region.
func (d *Data) RegionAt(x, y int) uint16 {
	return d.RegionIDs[d.Index(x, y)]
}

// InBounds reports whether (x, y) addresses a cell of the map.
func (d *Data) InBounds(x, y int) bool {
	return x >= 0 && x < d.Width && y >= 0 && y < d.Height
}
