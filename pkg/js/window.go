package js

import (
	"github.com/dop251/goja"
)

// registerWindow sets up the global `window` object: scroll offsets,
// scrollTo/scrollBy and requestAnimationFrame feeding the frame queue.
// Scripts may also call requestAnimationFrame as a bare global.
func registerWindow(engine *Engine) {
	vm := engine.vm
	proxy := vm.NewDynamicObject(&windowAccessor{engine: engine})
	vm.Set("window", proxy)
	vm.Set("requestAnimationFrame", func(call goja.FunctionCall) goja.Value {
		return requestAnimationFrame(engine, call)
	})
}

type windowAccessor struct {
	engine *Engine
}

func (w *windowAccessor) Get(key string) goja.Value {
	vm := w.engine.vm
	view := w.engine.view
	switch key {
	case "pageXOffset", "scrollX":
		return vm.ToValue(view.ScrollX())
	case "pageYOffset", "scrollY":
		return vm.ToValue(view.ScrollY())
	case "innerWidth":
		return vm.ToValue(view.ViewportWidth())
	case "innerHeight":
		return vm.ToValue(view.ViewportHeight())

	case "scrollTo":
		return vm.ToValue(func(call goja.FunctionCall) goja.Value {
			if len(call.Arguments) < 2 {
				panic(vm.NewTypeError("Failed to execute 'scrollTo': 2 arguments required"))
			}
			view.SetScroll(call.Arguments[0].ToFloat(), call.Arguments[1].ToFloat())
			return goja.Undefined()
		})
	case "scrollBy":
		return vm.ToValue(func(call goja.FunctionCall) goja.Value {
			if len(call.Arguments) < 2 {
				panic(vm.NewTypeError("Failed to execute 'scrollBy': 2 arguments required"))
			}
			view.SetScroll(
				view.ScrollX()+call.Arguments[0].ToFloat(),
				view.ScrollY()+call.Arguments[1].ToFloat(),
			)
			return goja.Undefined()
		})
	case "requestAnimationFrame":
		return vm.ToValue(func(call goja.FunctionCall) goja.Value {
			return requestAnimationFrame(w.engine, call)
		})
	}
	return goja.Undefined()
}

func (w *windowAccessor) Set(key string, val goja.Value) bool {
	return false
}

func (w *windowAccessor) Has(key string) bool {
	switch key {
	case "pageXOffset", "pageYOffset", "scrollX", "scrollY",
		"innerWidth", "innerHeight",
		"scrollTo", "scrollBy", "requestAnimationFrame":
		return true
	}
	return false
}

func (w *windowAccessor) Delete(key string) bool {
	return false
}

func (w *windowAccessor) Keys() []string {
	return []string{"pageXOffset", "pageYOffset", "innerWidth", "innerHeight"}
}

func requestAnimationFrame(engine *Engine, call goja.FunctionCall) goja.Value {
	vm := engine.vm
	if len(call.Arguments) == 0 {
		panic(vm.NewTypeError("Failed to execute 'requestAnimationFrame': 1 argument required"))
	}
	cb, ok := goja.AssertFunction(call.Arguments[0])
	if !ok {
		panic(vm.NewTypeError("Failed to execute 'requestAnimationFrame': callback is not a function"))
	}
	engine.sched.RequestFrame(func() {
		// Errors inside frame callbacks surface on the next RunString;
		// a detached callback has nowhere better to report.
		_, _ = cb(goja.Undefined())
	})
	return goja.Undefined()
}
