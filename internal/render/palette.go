package render

import (
	"image/color"
	"math"
)

// WaterColor is the fixed color for province/region id 0 (ocean or
// unclaimed cells).
var WaterColor = color.RGBA{R: 24, G: 44, B: 84, A: 255}

// biomePalette maps the 16 biome ids to fixed colors, index == id.
var biomePalette = [16]color.RGBA{
	{R: 16, G: 32, B: 72, A: 255},    // deep ocean
	{R: 26, G: 52, B: 108, A: 255},   // ocean
	{R: 48, G: 92, B: 150, A: 255},   // shallows
	{R: 214, G: 200, B: 152, A: 255}, // beach
	{R: 222, G: 192, B: 110, A: 255}, // desert
	{R: 180, G: 172, B: 90, A: 255},  // savanna
	{R: 112, G: 166, B: 76, A: 255},  // grassland
	{R: 62, G: 126, B: 62, A: 255},   // forest
	{R: 34, G: 102, B: 54, A: 255},   // rainforest
	{R: 72, G: 110, B: 86, A: 255},   // taiga
	{R: 150, G: 158, B: 138, A: 255}, // tundra
	{R: 228, G: 232, B: 238, A: 255}, // snow
	{R: 142, G: 128, B: 96, A: 255},  // hills
	{R: 120, G: 110, B: 104, A: 255}, // mountains
	{R: 170, G: 166, B: 164, A: 255}, // alpine
	{R: 240, G: 246, B: 252, A: 255}, // glacier
}

// BiomeColor returns the palette entry for a biome id. The boolean is false
// for ids outside the declared 0..15 range, which is a rendering defect.
func BiomeColor(id uint8) (color.RGBA, bool) {
	if int(id) >= len(biomePalette) {
		return color.RGBA{}, false
	}
	return biomePalette[id], true
}

// Hypsometric gradient over the engine's fixed [0,1] height range. Using the
// theoretical range rather than observed min/max keeps the mapping stable
// across renders of the same data.
var heightStops = []struct {
	t   float64
	col color.RGBA
}{
	{0.0, color.RGBA{R: 12, G: 24, B: 64, A: 255}},
	{0.3, color.RGBA{R: 40, G: 72, B: 132, A: 255}},
	{0.45, color.RGBA{R: 96, G: 140, B: 180, A: 255}},
	{0.5, color.RGBA{R: 110, G: 156, B: 96, A: 255}},
	{0.65, color.RGBA{R: 160, G: 156, B: 94, A: 255}},
	{0.8, color.RGBA{R: 150, G: 120, B: 90, A: 255}},
	{1.0, color.RGBA{R: 244, G: 246, B: 250, A: 255}},
}

// HeightColor maps a normalized elevation to the hypsometric gradient.
func HeightColor(v float32) color.RGBA {
	t := clamp01(float64(v))
	for i := 1; i < len(heightStops); i++ {
		curr := heightStops[i]
		if t <= curr.t {
			prev := heightStops[i-1]
			span := curr.t - prev.t
			var local float64
			if span > 0 {
				local = (t - prev.t) / span
			}
			return lerpRGBA(prev.col, curr.col, local)
		}
	}
	return heightStops[len(heightStops)-1].col
}

// ProvinceColor derives a stable, visually distinct color from a province
// id. Id 0 is the fixed water color; all other ids hash onto the hue wheel
// via the golden-ratio conjugate so neighboring ids land far apart.
func ProvinceColor(id uint16) color.RGBA {
	if id == 0 {
		return WaterColor
	}
	return idColor(id, 0.18, 0.55, 0.85)
}

// RegionColor is the region-layer counterpart of ProvinceColor. Regions use
// a deeper, more saturated band so the two layers read differently.
func RegionColor(id uint16) color.RGBA {
	if id == 0 {
		return WaterColor
	}
	return idColor(id, 0.52, 0.68, 0.72)
}

const goldenRatioConjugate = 0.618033988749895

func idColor(id uint16, hueOffset, sat, val float64) color.RGBA {
	hue := math.Mod(float64(id)*goldenRatioConjugate+hueOffset, 1)
	return hsvToRGB(hue, sat, val)
}

func hsvToRGB(h, s, v float64) color.RGBA {
	i := int(h * 6)
	f := h*6 - float64(i)
	p := v * (1 - s)
	q := v * (1 - f*s)
	t := v * (1 - (1-f)*s)

	var r, g, b float64
	switch i % 6 {
	case 0:
		r, g, b = v, t, p
	case 1:
		r, g, b = q, v, p
	case 2:
		r, g, b = p, v, t
	case 3:
		r, g, b = p, q, v
	case 4:
		r, g, b = t, p, v
	default:
		r, g, b = v, p, q
	}
	return color.RGBA{
		R: uint8(math.Round(r * 255)),
		G: uint8(math.Round(g * 255)),
		B: uint8(math.Round(b * 255)),
		A: 255,
	}
}

func lerpRGBA(a, b color.RGBA, t float64) color.RGBA {
	t = clamp01(t)
	return color.RGBA{
		R: lerpComponent(a.R, b.R, t),
		G: lerpComponent(a.G, b.G, t),
		B: lerpComponent(a.B, b.B, t),
		A: lerpComponent(a.A, b.A, t),
	}
}

func lerpComponent(a, b uint8, t float64) uint8 {
	return uint8(math.Round(float64(a) + (float64(b)-float64(a))*t))
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
