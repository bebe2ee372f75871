// stickyrun executes a JavaScript file against a simulated document.
// Scripts see the trimmed DOM, window scrolling and the Stickyfill
// global; frames queue until the script yields and are pumped here.
//
// With -scenario the script runs against the scenario's prebuilt page;
// without it the document starts empty except for a body, and the
// script builds the page itself.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/log"

	"stickyfill/pkg/html"
	"stickyfill/pkg/js"
	"stickyfill/pkg/layout"
	"stickyfill/pkg/scenario"
	"stickyfill/pkg/sticky"
)

const maxFrames = 1024

func main() {
	scenarioPath := flag.String("scenario", "", "scenario TOML file (optional)")
	width := flag.Float64("width", 800, "viewport width for bare documents")
	height := flag.Float64("height", 600, "viewport height for bare documents")
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: stickyrun [-scenario <file.toml>] <script.js>\n\nFlags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if *verbose {
		log.SetLevel(log.DebugLevel)
	}
	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(1)
	}

	var (
		view  *layout.Engine
		sched *sticky.ManualScheduler
		world *scenario.World
	)
	if *scenarioPath != "" {
		sc, err := scenario.Load(*scenarioPath)
		if err != nil {
			log.Fatal("load scenario", "err", err)
		}
		world, err = sc.Build()
		if err != nil {
			log.Fatal("build scenario", "err", err)
		}
		view = world.Engine
		sched = world.Sched
	} else {
		doc := html.NewDocument()
		doc.Root.AddChild(html.NewElement("body"))
		view = layout.NewEngine(doc, *width, *height)
		sched = sticky.NewManualScheduler()
	}

	src, err := os.ReadFile(flag.Arg(0))
	if err != nil {
		log.Fatal("read script", "err", err)
	}

	engine := js.New(view, sched)
	if _, err := engine.RunString(string(src)); err != nil {
		log.Fatal("execute script", "err", err)
	}
	frames := engine.RunFrames(maxFrames)

	if world != nil {
		log.Info("script finished",
			"frames", frames,
			"scroll", view.ScrollY(),
			"scheme", world.Sticky.Scheme(),
		)
	} else {
		log.Info("script finished", "frames", frames, "scroll", view.ScrollY())
	}
}
