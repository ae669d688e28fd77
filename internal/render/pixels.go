package render

import (
	"fmt"
	"image/color"

	"mapview/internal/world"
)

// FillLayer writes the selected layer of the world into buf as RGBA pixels,
// one cell per pixel in row-major order. The buffer must hold 4*width*height
// bytes. WorldData is never mutated. An out-of-range biome id is reported as
// an error rather than clamped; for valid data this cannot happen.
func FillLayer(buf []byte, d *world.Data, layer world.Layer) error {
	total := d.Width * d.Height
	if len(buf) != 4*total {
		return fmt.Errorf("pixel buffer length %d, want %d", len(buf), 4*total)
	}
	switch layer {
	case world.LayerHeightmap:
		fillHeightRGBA(buf, d.Heightmap)
		return nil
	case world.LayerBiomes:
		return fillBiomeRGBA(buf, d.BiomeIDs)
	case world.LayerProvinces:
		fillIDRGBA(buf, d.ProvinceIDs, ProvinceColor)
		return nil
	case world.LayerRegions:
		fillIDRGBA(buf, d.RegionIDs, RegionColor)
		return nil
	default:
		return fmt.Errorf("unknown layer %d", layer)
	}
}

func fillHeightRGBA(buf []byte, heights []float32) {
	for i, v := range heights {
		putRGBA(buf, i, HeightColor(v))
	}
}

func fillBiomeRGBA(buf []byte, ids []uint8) error {
	for i, id := range ids {
		col, ok := BiomeColor(id)
		if !ok {
			return fmt.Errorf("biome id %d at cell %d outside palette", id, i)
		}
		putRGBA(buf, i, col)
	}
	return nil
}

func fillIDRGBA(buf []byte, ids []uint16, colorFor func(uint16) color.RGBA) {
	// Id runs are long (provinces are connected blobs), so caching the last
	// lookup keeps the hash math off the hot path.
	lastID := uint16(0)
	lastCol := colorFor(0)
	for i, id := range ids {
		if id != lastID {
			lastID = id
			lastCol = colorFor(id)
		}
		putRGBA(buf, i, lastCol)
	}
}

func putRGBA(buf []byte, i int, col color.RGBA) {
	base := i * 4
	buf[base+0] = col.R
	buf[base+1] = col.G
	buf[base+2] = col.B
	buf[base+3] = col.A
}
