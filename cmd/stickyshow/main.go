// stickyshow replays a scenario's scroll script and renders one PNG per
// step, color-coding the sticky element by its applied scheme.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"stickyfill/pkg/render"
	"stickyfill/pkg/scenario"
)

func main() {
	scenarioPath := flag.String("scenario", "", "scenario TOML file")
	outDir := flag.String("o", ".", "output directory for frame PNGs")
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: stickyshow -scenario <file.toml> [-o dir]\n\nFlags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if *verbose {
		log.SetLevel(log.DebugLevel)
	}
	if *scenarioPath == "" {
		flag.Usage()
		os.Exit(1)
	}

	sc, err := scenario.Load(*scenarioPath)
	if err != nil {
		log.Fatal("load scenario", "err", err)
	}
	world, err := sc.Build()
	if err != nil {
		log.Fatal("build scenario", "err", err)
	}

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		log.Fatal("create output directory", "err", err)
	}

	steps := sc.Scroll
	if len(steps) == 0 {
		steps = []scenario.Step{{X: 0, Y: 0}}
	}

	scheme := world.Sticky.Scheme()
	log.Info("initial state", "scheme", scheme)

	for i, step := range steps {
		world.Apply(step)

		if next := world.Sticky.Scheme(); next != scheme {
			log.Info("scheme change", "scroll", step.Y, "from", scheme, "to", next)
			scheme = next
		}
		log.Debug("frame", "step", i, "x", step.X, "y", step.Y, "scheme", scheme)

		r := render.NewRenderer(int(sc.Viewport.Width), int(sc.Viewport.Height))
		r.Render(world.Engine.Layout(), step.X, step.Y)

		path := filepath.Join(*outDir, fmt.Sprintf("frame-%03d.png", i))
		if err := r.SavePNG(path); err != nil {
			log.Fatal("save frame", "path", path, "err", err)
		}
	}

	log.Info("done", "frames", len(steps), "dir", *outDir)
}
