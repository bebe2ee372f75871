// stickyview opens a window with a scroll slider driving the simulated
// document: drag to scroll, watch the element pin and release. Edits to
// the scenario file reload the world in place.
package main

import (
	"flag"
	"fmt"
	"os"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"

	"stickyfill/pkg/render"
	"stickyfill/pkg/scenario"
)

type viewer struct {
	mu    sync.Mutex
	sc    *scenario.Scenario
	world *scenario.World

	canvasImg *canvas.Image
	status    *widget.Label
	slider    *widget.Slider
}

func main() {
	scenarioPath := flag.String("scenario", "", "scenario TOML file")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: stickyview -scenario <file.toml>\n\nFlags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if *scenarioPath == "" {
		flag.Usage()
		os.Exit(1)
	}

	v := &viewer{}
	if err := v.load(*scenarioPath); err != nil {
		log.Fatal("load scenario", "err", err)
	}

	a := app.New()
	w := a.NewWindow("stickyview")
	w.Resize(fyne.NewSize(float32(v.sc.Viewport.Width), float32(v.sc.Viewport.Height)+80))

	v.canvasImg = canvas.NewImageFromImage(v.frame(0).Image())
	v.canvasImg.FillMode = canvas.ImageFillOriginal

	v.status = widget.NewLabel("scroll 0, scheme " + v.world.Sticky.Scheme().String())

	v.slider = widget.NewSlider(0, v.sc.MaxScrollY(v.world))
	v.slider.OnChanged = func(y float64) {
		v.scrollTo(y)
	}

	w.SetContent(container.NewBorder(v.slider, v.status, nil, nil, v.canvasImg))

	go v.watch(*scenarioPath)

	w.ShowAndRun()
}

func (v *viewer) load(path string) error {
	sc, err := scenario.Load(path)
	if err != nil {
		return err
	}
	world, err := sc.Build()
	if err != nil {
		return err
	}
	v.mu.Lock()
	v.sc = sc
	v.world = world
	v.mu.Unlock()
	return nil
}

// frame renders the world at the given vertical offset.
func (v *viewer) frame(y float64) *render.Renderer {
	v.mu.Lock()
	defer v.mu.Unlock()
	r := render.NewRenderer(int(v.sc.Viewport.Width), int(v.sc.Viewport.Height))
	r.Render(v.world.Engine.Layout(), v.world.Engine.ScrollX(), y)
	return r
}

func (v *viewer) scrollTo(y float64) {
	v.mu.Lock()
	v.world.Apply(scenario.Step{X: v.world.Engine.ScrollX(), Y: y})
	scheme := v.world.Sticky.Scheme()
	v.mu.Unlock()

	v.canvasImg.Image = v.frame(y).Image()
	v.canvasImg.Refresh()
	v.status.SetText(fmt.Sprintf("scroll %.0f, scheme %s", y, scheme))
}

// watch reloads the scenario when the file changes on disk.
func (v *viewer) watch(path string) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		log.Error("watch scenario", "err", err)
		return
	}
	defer watcher.Close()
	if err := watcher.Add(path); err != nil {
		log.Error("watch scenario", "err", err)
		return
	}

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if err := v.load(path); err != nil {
				log.Error("reload scenario", "err", err)
				continue
			}
			log.Info("scenario reloaded", "path", path)
			v.slider.Max = v.sc.MaxScrollY(v.world)
			v.slider.SetValue(0)
			v.scrollTo(0)
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			log.Error("watch scenario", "err", err)
		}
	}
}
