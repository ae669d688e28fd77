package inspect

import (
	"fmt"

	"mapview/internal/world"
)

// Kind discriminates what a click resolved to.
type Kind uint8

const (
	KindNone Kind = iota
	KindProvince
	KindRegion
)

// Selection is the metadata snapshot for one resolved click. It is
// recomputed per click and never persisted.
type Selection struct {
	Kind Kind

	ProvinceID   uint16
	ProvinceName string
	ProvinceType world.ProvinceType
	Coastal      bool

	RegionID    uint16
	RegionName  string
	MemberCount int
}

// Inspect resolves the cell at (x, y) to a selection. Inspection always
// reads the province/region buffers regardless of the displayed layer:
// users expect "what is this place" to answer consistently whether they are
// looking at terrain or at borders. On the Regions layer the selection is
// the region itself; on every other layer it is the province, with its
// owning region attached. Province id 0 (ocean/unclaimed) resolves to None.
func Inspect(d *world.Data, layer world.Layer, x, y int) Selection {
	if d == nil || !d.InBounds(x, y) {
		return Selection{}
	}

	provID := d.ProvinceAt(x, y)
	if provID == 0 {
		return Selection{}
	}
	regionID := d.RegionAt(x, y)
	region := d.Regions[regionID]

	if layer == world.LayerRegions {
		return Selection{
			Kind:        KindRegion,
			RegionID:    regionID,
			RegionName:  region.Name,
			MemberCount: len(region.Provinces),
		}
	}

	prov := d.Provinces[provID]
	return Selection{
		Kind:         KindProvince,
		ProvinceID:   provID,
		ProvinceName: prov.Name,
		ProvinceType: prov.Type,
		Coastal:      prov.Coastal,
		RegionID:     regionID,
		RegionName:   region.Name,
		MemberCount:  len(region.Provinces),
	}
}

// Describe formats a selection as short display lines for the info panel.
func Describe(s Selection) []string {
	switch s.Kind {
	case KindProvince:
		coast := "landlocked"
		if s.Coastal {
			coast = "coastal"
		}
		return []string{
			fmt.Sprintf("Province %s (#%d)", s.ProvinceName, s.ProvinceID),
			fmt.Sprintf("%s, %s", s.ProvinceType, coast),
			fmt.Sprintf("Region %s (%d provinces)", s.RegionName, s.MemberCount),
		}
	case KindRegion:
		return []string{
			fmt.Sprintf("Region %s (#%d)", s.RegionName, s.RegionID),
			fmt.Sprintf("%d provinces", s.MemberCount),
		}
	default:
		return nil
	}
}
