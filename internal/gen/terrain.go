package gen

import (
	"github.com/aquilax/go-perlin"

	"mapview/internal/params"
)

// Perlin constants shared by the terrain and climate fields. Alpha/beta of 2
// with three iterations gives terrain-like fractal noise.
const (
	noiseAlpha      = 2
	noiseBeta       = 2
	noiseIterations = 3

	terrainFrequency = 4.0
	islandFrequency  = 12.0
	humidFrequency   = 3.0

	elevationBiasWeight = 0.15
)

// shaping captures how a world type skews terrain and climate.
type shaping struct {
	seaLevel     float64
	radialWeight float64 // >0 raises the map center, <0 sinks it
	islandWeight float64
	tempOffset   float64
	humidOffset  float64
}

func shapingFor(t params.WorldType, islandDensity float64) shaping {
	switch t {
	case params.Supercontinent:
		return shaping{seaLevel: 0.42, radialWeight: 0.28, islandWeight: 0.05 * islandDensity}
	case params.Archipelago:
		return shaping{seaLevel: 0.58, radialWeight: -0.08, islandWeight: 0.35 * islandDensity}
	case params.Mediterranean:
		return shaping{seaLevel: 0.48, radialWeight: -0.30, islandWeight: 0.10 * islandDensity}
	case params.IceAge:
		return shaping{seaLevel: 0.45, islandWeight: 0.15 * islandDensity, tempOffset: -0.45}
	case params.Desert:
		return shaping{seaLevel: 0.45, islandWeight: 0.15 * islandDensity, tempOffset: 0.2, humidOffset: -0.45}
	default: // EarthLike
		return shaping{seaLevel: 0.45, islandWeight: 0.15 * islandDensity}
	}
}

// buildHeightmap synthesizes the [0,1] elevation field for the requested
// parameters. Two noise fields are blended: a low-frequency continental base
// and a higher-frequency island field whose weight depends on the world
// type and island density.
func buildHeightmap(p params.Params, shape shaping) []float32 {
	base := perlin.NewPerlin(noiseAlpha, noiseBeta, noiseIterations, p.Seed)
	islands := perlin.NewPerlin(noiseAlpha, noiseBeta, noiseIterations, p.Seed+1)

	w, h := p.Width, p.Height
	out := make([]float32, w*h)
	for y := 0; y < h; y++ {
		ny := float64(y) / float64(h)
		for x := 0; x < w; x++ {
			nx := float64(x) / float64(w)

			v := 0.5 + 0.5*base.Noise2D(nx*terrainFrequency, ny*terrainFrequency)
			v += shape.radialWeight * (1 - 2*radialDistance(nx, ny))

			if shape.islandWeight > 0 {
				iv := islands.Noise2D(nx*islandFrequency, ny*islandFrequency)
				if iv > 0 {
					v += shape.islandWeight * iv
				}
			}

			v += elevationBiasWeight * p.Elevation
			out[y*w+x] = float32(clamp01(v))
		}
	}
	return out
}

// buildHumidity synthesizes the [0,1] moisture field used by biome
// classification. It uses an independent noise seed so humidity does not
// mirror the terrain.
func buildHumidity(p params.Params, shape shaping) []float32 {
	noise := perlin.NewPerlin(noiseAlpha, noiseBeta, noiseIterations, p.Seed+2)

	w, h := p.Width, p.Height
	out := make([]float32, w*h)
	for y := 0; y < h; y++ {
		ny := float64(y) / float64(h)
		for x := 0; x < w; x++ {
			nx := float64(x) / float64(w)
			v := 0.5 + 0.5*noise.Noise2D(nx*humidFrequency, ny*humidFrequency)
			v += 0.5*p.Humidity + shape.humidOffset
			out[y*w+x] = float32(clamp01(v))
		}
	}
	return out
}

// radialDistance returns the normalized distance of (nx, ny) from the map
// center, 0 at the center and ~1 at the corners.
func radialDistance(nx, ny float64) float64 {
	dx := 2*nx - 1
	dy := 2*ny - 1
	d := (dx*dx + dy*dy) / 2
	if d > 1 {
		d = 1
	}
	return d
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
