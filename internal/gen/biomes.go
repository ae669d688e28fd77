package gen

import "mapview/internal/params"

// Biome ids 0..15. The renderer's palette must cover exactly this range.
const (
	BiomeDeepOcean uint8 = iota
	BiomeOcean
	BiomeShallows
	BiomeBeach
	BiomeDesert
	BiomeSavanna
	BiomeGrassland
	BiomeForest
	BiomeRainforest
	BiomeTaiga
	BiomeTundra
	BiomeSnow
	BiomeHills
	BiomeMountains
	BiomeAlpine
	BiomeGlacier

	BiomeCount = 16
)

// Elevation bands relative to sea level.
const (
	deepBand     = 0.15
	oceanBand    = 0.05
	beachBand    = 0.02
	hillsBand    = 0.25
	mountainBand = 0.35
)

// classifyBiomes assigns one of the 16 biome ids to every cell from its
// elevation, latitude temperature and humidity. Temperature falls toward the
// poles and with altitude; both climate fields carry the user biases and the
// world type offsets.
func classifyBiomes(p params.Params, shape shaping, heights, humidity []float32) []uint8 {
	w, h := p.Width, p.Height
	// The water/land split must agree with the province fill, which compares
	// float32 heights against a float32 sea level.
	sea := float64(float32(shape.seaLevel))
	out := make([]uint8, w*h)
	for y := 0; y < h; y++ {
		// Equator at the vertical center, poles at the top/bottom edges.
		latitude := 1 - abs64(2*float64(y)/float64(h)-1)
		for x := 0; x < w; x++ {
			i := y*w + x
			elev := float64(heights[i])
			temp := latitude + 0.5*p.Temperature + shape.tempOffset
			if elev > sea {
				temp -= 0.8 * (elev - sea)
			}
			out[i] = classifyCell(elev, temp, float64(humidity[i]), sea)
		}
	}
	return out
}

func classifyCell(elev, temp, humid, seaLevel float64) uint8 {
	switch {
	case elev < seaLevel-deepBand:
		return BiomeDeepOcean
	case elev < seaLevel-oceanBand:
		return BiomeOcean
	case elev < seaLevel:
		return BiomeShallows
	case elev < seaLevel+beachBand:
		return BiomeBeach
	case elev >= seaLevel+mountainBand:
		switch {
		case temp < 0.15:
			return BiomeGlacier
		case temp < 0.35:
			return BiomeAlpine
		default:
			return BiomeMountains
		}
	case elev >= seaLevel+hillsBand:
		return BiomeHills
	}

	switch {
	case temp < 0.18:
		return BiomeSnow
	case temp < 0.3:
		return BiomeTundra
	case temp < 0.45:
		return BiomeTaiga
	case humid < 0.25:
		return BiomeDesert
	case humid < 0.45:
		return BiomeSavanna
	case humid < 0.6:
		return BiomeGrassland
	case humid < 0.8:
		return BiomeForest
	default:
		return BiomeRainforest
	}
}

func abs64(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
