// Package js scripts the positioning engine: a goja runtime with a
// trimmed DOM surface (document/element/style proxies), a window object
// carrying the scroll offsets and requestAnimationFrame, and the
// Stickyfill global mirroring the embedding API.
package js

import (
	"fmt"

	"github.com/dop251/goja"

	"stickyfill/pkg/html"
	"stickyfill/pkg/layout"
	"stickyfill/pkg/sticky"
)

// Engine executes JavaScript against a simulated document.
type Engine struct {
	vm    *goja.Runtime
	doc   *html.Document
	view  *layout.Engine
	sched *sticky.ManualScheduler
	ctx   *domContext
}

// New creates a JS engine bound to the document owned by view. Frames
// requested via requestAnimationFrame (and by sticky instances) queue on
// sched and run when the host pumps it.
func New(view *layout.Engine, sched *sticky.ManualScheduler) *Engine {
	vm := goja.New()
	e := &Engine{
		vm:    vm,
		doc:   view.Document(),
		view:  view,
		sched: sched,
	}

	c := &consoleAPI{}
	c.register(vm)

	e.ctx = registerDocument(e)
	registerWindow(e)
	registerStickyfill(e)

	return e
}

// RunString executes one script.
func (e *Engine) RunString(src string) (goja.Value, error) {
	val, err := e.vm.RunString(src)
	if err != nil {
		return nil, fmt.Errorf("script: %w", err)
	}
	return val, nil
}

// RunFrames pumps queued frame callbacks, at most maxFrames frames.
// Returns the number of frames run.
func (e *Engine) RunFrames(maxFrames int) int {
	return e.sched.Run(maxFrames)
}
