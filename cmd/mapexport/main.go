package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"log"
	"os"
	"strings"

	"mapview/internal/gen"
	"mapview/internal/params"
	"mapview/internal/render"
	"mapview/internal/world"
)

type kvList []string

func (l *kvList) String() string {
	return strings.Join(*l, ",")
}

func (l *kvList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

func main() {
	seed := flag.Int64("seed", 42, "generation seed (0 resolves from the clock)")
	worldType := flag.String("world", params.EarthLike.String(), "world type")
	width := flag.Int("width", 512, "map width in cells")
	height := flag.Int("height", 512, "map height in cells")
	provinces := flag.Int("provinces", 50, "target province count")
	layerName := flag.String("layer", world.LayerBiomes.String(), "layer to export")
	out := flag.String("out", "map.png", "output PNG path")
	var overrides kvList
	flag.Var(&overrides, "set", "climate override in key=value form (repeatable)")
	flag.Parse()

	m := map[string]string{}
	for _, kv := range overrides {
		parts := strings.SplitN(kv, "=", 2)
		if len(parts) != 2 {
			continue
		}
		m[parts[0]] = parts[1]
	}
	p := params.FromMap(m)
	p.Seed = *seed
	p.Width = *width
	p.Height = *height
	p.ProvinceCount = *provinces
	if wt, ok := params.ParseWorldType(*worldType); ok {
		p.WorldType = wt
	} else {
		log.Fatalf("unknown world type %q", *worldType)
	}

	layer, ok := world.ParseLayer(*layerName)
	if !ok {
		log.Fatalf("unknown layer %q", *layerName)
	}

	validated, verr := params.Validate(p)
	if verr != nil {
		log.Fatalf("invalid parameters: %v", verr)
	}

	bridge := world.NewBridge(gen.New())
	data, err := bridge.Generate(validated)
	if err != nil {
		log.Fatalf("generation failed: %v", err)
	}

	img := image.NewRGBA(image.Rect(0, 0, data.Width, data.Height))
	if err := render.FillLayer(img.Pix, data, layer); err != nil {
		log.Fatalf("render failed: %v", err)
	}

	f, err := os.Create(*out)
	if err != nil {
		log.Fatalf("create %s: %v", *out, err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		log.Fatalf("encode %s: %v", *out, err)
	}

	fmt.Printf("Wrote %s: %dx%d %s layer, seed %d, %d provinces in %d regions\n",
		*out, data.Width, data.Height, layer, validated.Seed, len(data.Provinces), len(data.Regions))
}
