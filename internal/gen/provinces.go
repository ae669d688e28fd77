package gen

import (
	"fmt"
	"math"
	"math/rand/v2"
	"sort"

	"mapview/internal/params"
	"mapview/internal/world"
)

const (
	provincesPerRegion = 6
	seedAttempts       = 16
)

// partitionProvinces grows the requested number of provinces over the land
// cells (elevation >= sea level) with a deterministic multi-source flood
// fill. Ocean cells keep id 0, as do land cells on islets no seed reached.
func partitionProvinces(p params.Params, shape shaping, heights []float32, biomes []uint8, rng *rand.Rand) ([]uint16, map[uint16]world.Province, error) {
	w, h := p.Width, p.Height
	total := w * h
	sea := float32(shape.seaLevel)

	land := make([]int, 0, total)
	for i := 0; i < total; i++ {
		if heights[i] >= sea {
			land = append(land, i)
		}
	}
	if len(land) < p.ProvinceCount {
		return nil, nil, fmt.Errorf("only %d land cells for %d provinces", len(land), p.ProvinceCount)
	}

	seeds, err := placeSeeds(land, p.ProvinceCount, w, rng)
	if err != nil {
		return nil, nil, err
	}

	provs := make([]uint16, total)
	queue := make([]int, 0, len(land))
	for i, seed := range seeds {
		provs[seed] = uint16(i + 1)
		queue = append(queue, seed)
	}

	// FIFO fill with a fixed neighbor order keeps the partition
	// reproducible for a given seed placement.
	for len(queue) > 0 {
		idx := queue[0]
		queue = queue[1:]
		id := provs[idx]
		x := idx % w
		if x > 0 {
			queue = claim(provs, heights, sea, idx-1, id, queue)
		}
		if x+1 < w {
			queue = claim(provs, heights, sea, idx+1, id, queue)
		}
		if idx >= w {
			queue = claim(provs, heights, sea, idx-w, id, queue)
		}
		if idx+w < total {
			queue = claim(provs, heights, sea, idx+w, id, queue)
		}
	}

	table := buildProvinceTable(p, provs, heights, biomes, sea, rng)
	return provs, table, nil
}

func claim(provs []uint16, heights []float32, sea float32, idx int, id uint16, queue []int) []int {
	if provs[idx] != 0 || heights[idx] < sea {
		return queue
	}
	provs[idx] = id
	return append(queue, idx)
}

// placeSeeds picks distinct land cells for province seeds, preferring
// candidates at least half a mean province radius apart. When spacing cannot
// be satisfied the last candidate is accepted so the count always holds.
func placeSeeds(land []int, count, w int, rng *rand.Rand) ([]int, error) {
	minDist := 0.5 * math.Sqrt(float64(len(land))/float64(count))
	used := make(map[int]bool, count)
	seeds := make([]int, 0, count)

	for len(seeds) < count {
		placed := false
		for attempt := 0; attempt < seedAttempts; attempt++ {
			cand := land[rng.IntN(len(land))]
			if used[cand] {
				continue
			}
			if attempt < seedAttempts-1 && tooClose(cand, seeds, w, minDist) {
				continue
			}
			seeds = append(seeds, cand)
			used[cand] = true
			placed = true
			break
		}
		if !placed {
			for _, cand := range land {
				if !used[cand] {
					seeds = append(seeds, cand)
					used[cand] = true
					placed = true
					break
				}
			}
		}
		if !placed {
			return nil, fmt.Errorf("exhausted land cells placing %d province seeds", count)
		}
	}
	return seeds, nil
}

func tooClose(cand int, seeds []int, w int, minDist float64) bool {
	cx, cy := cand%w, cand/w
	for _, s := range seeds {
		dx := float64(cx - s%w)
		dy := float64(cy - s/w)
		if math.Sqrt(dx*dx+dy*dy) < minDist {
			return true
		}
	}
	return false
}

func buildProvinceTable(p params.Params, provs []uint16, heights []float32, biomes []uint8, sea float32, rng *rand.Rand) map[uint16]world.Province {
	w, h := p.Width, p.Height
	total := w * h

	histograms := make([][BiomeCount]int, p.ProvinceCount+1)
	coastal := make([]bool, p.ProvinceCount+1)
	for i := 0; i < total; i++ {
		id := provs[i]
		if id == 0 {
			continue
		}
		histograms[id][biomes[i]]++
		if !coastal[id] && touchesWater(i, heights, sea, w, total) {
			coastal[id] = true
		}
	}

	table := make(map[uint16]world.Province, p.ProvinceCount)
	for id := 1; id <= p.ProvinceCount; id++ {
		dominant := 0
		for b := 1; b < BiomeCount; b++ {
			if histograms[id][b] > histograms[id][dominant] {
				dominant = b
			}
		}
		table[uint16(id)] = world.Province{
			Name:    nameFor(rng),
			Type:    provinceTypeFor(uint8(dominant)),
			Coastal: coastal[id],
		}
	}
	return table
}

func touchesWater(idx int, heights []float32, sea float32, w, total int) bool {
	x := idx % w
	if x > 0 && heights[idx-1] < sea {
		return true
	}
	if x+1 < w && heights[idx+1] < sea {
		return true
	}
	if idx >= w && heights[idx-w] < sea {
		return true
	}
	if idx+w < total && heights[idx+w] < sea {
		return true
	}
	return false
}

func provinceTypeFor(biome uint8) world.ProvinceType {
	switch biome {
	case BiomeMountains, BiomeAlpine, BiomeGlacier:
		return world.ProvinceMountains
	case BiomeHills:
		return world.ProvinceHills
	case BiomeDesert, BiomeSavanna:
		return world.ProvinceDesert
	case BiomeSnow, BiomeTundra, BiomeTaiga:
		return world.ProvinceTundra
	default:
		return world.ProvincePlains
	}
}

// groupRegions clusters provinces into regions of roughly provincesPerRegion
// members by walking the province adjacency graph in id order. It fills the
// per-cell region buffer, writes each province's owning region back into the
// table, and returns the region metadata.
func groupRegions(provs []uint16, provTable map[uint16]world.Province, count, w, h int, rng *rand.Rand) ([]uint16, map[uint16]world.Region) {
	adjacency := provinceAdjacency(provs, count, w, h)

	targetRegions := (count + provincesPerRegion - 1) / provincesPerRegion
	maxSize := (count + targetRegions - 1) / targetRegions

	regionOf := make([]uint16, count+1)
	regions := make(map[uint16]world.Region)
	var nextRegion uint16

	for id := 1; id <= count; id++ {
		if regionOf[id] != 0 {
			continue
		}
		nextRegion++
		members := make([]uint16, 0, maxSize)
		queue := []uint16{uint16(id)}
		for len(queue) > 0 && len(members) < maxSize {
			prov := queue[0]
			queue = queue[1:]
			if regionOf[prov] != 0 {
				continue
			}
			regionOf[prov] = nextRegion
			members = append(members, prov)

			neighbors := make([]uint16, 0, len(adjacency[prov]))
			for n := range adjacency[prov] {
				if regionOf[n] == 0 {
					neighbors = append(neighbors, n)
				}
			}
			sort.Slice(neighbors, func(i, j int) bool { return neighbors[i] < neighbors[j] })
			queue = append(queue, neighbors...)
		}
		regions[nextRegion] = world.Region{Name: nameFor(rng), Provinces: members}
	}

	for id, region := range regionOf[1:] {
		prov := provTable[uint16(id+1)]
		prov.Region = region
		provTable[uint16(id+1)] = prov
	}

	cells := make([]uint16, len(provs))
	for i, id := range provs {
		if id != 0 {
			cells[i] = regionOf[id]
		}
	}
	return cells, regions
}

func provinceAdjacency(provs []uint16, count, w, h int) map[uint16]map[uint16]bool {
	adjacency := make(map[uint16]map[uint16]bool, count)
	link := func(a, b uint16) {
		if a == 0 || b == 0 || a == b {
			return
		}
		if adjacency[a] == nil {
			adjacency[a] = make(map[uint16]bool)
		}
		if adjacency[b] == nil {
			adjacency[b] = make(map[uint16]bool)
		}
		adjacency[a][b] = true
		adjacency[b][a] = true
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := y*w + x
			if x+1 < w {
				link(provs[i], provs[i+1])
			}
			if y+1 < h {
				link(provs[i], provs[i+w])
			}
		}
	}
	return adjacency
}
