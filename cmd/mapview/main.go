//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"mapview/internal/app"
	"mapview/internal/gen"
	"mapview/internal/world"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	layer, ok := world.ParseLayer(cfg.Layer)
	if !ok {
		log.Fatalf("unknown layer %q", cfg.Layer)
	}

	session := app.NewSession(gen.New(), cfg.Params(), layer, cfg.Scale)
	session.Generate()
	if session.Mode() == app.ModeError {
		log.Fatalf("initial generation failed: %s", session.Err())
	}

	game := app.New(session)
	vw, vh := session.Camera().ViewportSize()

	ebiten.SetWindowTitle("mapview - " + cfg.WorldType)
	ebiten.SetWindowSize(vw+app.HUDWidth, vh)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
