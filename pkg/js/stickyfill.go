package js

import (
	"github.com/dop251/goja"

	"stickyfill/pkg/sticky"
)

// registerStickyfill exposes the embedding API to scripts:
//
//	var s = Stickyfill.create(el, {offsetTop: 10});
//	s.scheme;    // "static" | "fixed" | "absolute"
//	s.refresh();
//	s.remove();
func registerStickyfill(engine *Engine) {
	vm := engine.vm

	obj := vm.NewObject()
	obj.Set("create", func(call goja.FunctionCall) goja.Value {
		if len(call.Arguments) == 0 {
			panic(vm.NewTypeError("Failed to execute 'create': 1 argument required"))
		}
		node := engine.ctx.unwrapNode(call.Arguments[0])
		if node == nil {
			panic(vm.NewTypeError("Failed to execute 'create': parameter 1 is not an Element"))
		}

		opts := sticky.Options{}
		if len(call.Arguments) > 1 && !goja.IsNull(call.Arguments[1]) && !goja.IsUndefined(call.Arguments[1]) {
			optsObj := call.Arguments[1].ToObject(vm)
			if v := optsObj.Get("offsetTop"); v != nil && !goja.IsUndefined(v) {
				opts.OffsetTop = v.ToFloat()
				opts.HasOffsetTop = true
			}
		}

		st, err := sticky.New(node, engine.view, engine.sched, opts)
		if err != nil {
			panic(vm.NewTypeError(err.Error()))
		}
		return vm.NewDynamicObject(&stickyAccessor{engine: engine, instance: st})
	})
	vm.Set("Stickyfill", obj)
}

type stickyAccessor struct {
	engine   *Engine
	instance *sticky.Sticky
}

func (s *stickyAccessor) Get(key string) goja.Value {
	vm := s.engine.vm
	switch key {
	case "scheme":
		return vm.ToValue(s.instance.Scheme().String())
	case "refresh":
		return vm.ToValue(func(call goja.FunctionCall) goja.Value {
			s.instance.Refresh()
			return goja.Undefined()
		})
	case "remove":
		return vm.ToValue(func(call goja.FunctionCall) goja.Value {
			s.instance.Remove()
			return goja.Undefined()
		})
	}
	return goja.Undefined()
}

func (s *stickyAccessor) Set(key string, val goja.Value) bool {
	return false
}

func (s *stickyAccessor) Has(key string) bool {
	switch key {
	case "scheme", "refresh", "remove":
		return true
	}
	return false
}

func (s *stickyAccessor) Delete(key string) bool {
	return false
}

func (s *stickyAccessor) Keys() []string {
	return []string{"scheme"}
}
