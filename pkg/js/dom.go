package js

import (
	"strings"
	"unicode"

	"github.com/dop251/goja"

	"stickyfill/pkg/html"
)

// domContext holds shared state for DOM bindings within a single engine.
// It maintains a node-to-proxy cache so the same JS object is returned
// for the same underlying *html.Node (needed for === identity checks).
type domContext struct {
	engine *Engine
	cache  map[*html.Node]goja.Value
}

// registerDocument sets up the global `document` object.
func registerDocument(engine *Engine) *domContext {
	ctx := &domContext{
		engine: engine,
		cache:  make(map[*html.Node]goja.Value),
	}
	vm := engine.vm

	docObj := vm.NewObject()
	docObj.Set("getElementById", func(call goja.FunctionCall) goja.Value {
		if len(call.Arguments) == 0 {
			return goja.Null()
		}
		id := call.Arguments[0].String()
		node := getElementById(engine.doc.Root, id)
		if node == nil {
			return goja.Null()
		}
		return ctx.elementProxy(node)
	})
	docObj.Set("createElement", func(call goja.FunctionCall) goja.Value {
		if len(call.Arguments) == 0 {
			panic(vm.NewTypeError("Failed to execute 'createElement' on 'Document': 1 argument required"))
		}
		tag := strings.ToLower(call.Arguments[0].String())
		return ctx.elementProxy(html.NewElement(tag))
	})
	vm.Set("document", docObj)

	// document.body resolves lazily so scripts can build it themselves
	docObj.DefineAccessorProperty("body",
		vm.ToValue(func(call goja.FunctionCall) goja.Value {
			if body := getElementByTag(engine.doc.Root, "body"); body != nil {
				return ctx.elementProxy(body)
			}
			return ctx.elementProxy(engine.doc.Root)
		}), nil, goja.FLAG_FALSE, goja.FLAG_TRUE)

	return ctx
}

func getElementById(root *html.Node, id string) *html.Node {
	if val, ok := root.GetAttribute("id"); ok && val == id {
		return root
	}
	for _, child := range root.Children {
		if found := getElementById(child, id); found != nil {
			return found
		}
	}
	return nil
}

func getElementByTag(root *html.Node, tag string) *html.Node {
	if root.TagName == tag {
		return root
	}
	for _, child := range root.Children {
		if found := getElementByTag(child, tag); found != nil {
			return found
		}
	}
	return nil
}

// elementProxy returns the cached JS object for a node, creating it on
// first access.
func (ctx *domContext) elementProxy(node *html.Node) goja.Value {
	if node == nil {
		return goja.Null()
	}
	if cached, ok := ctx.cache[node]; ok {
		return cached
	}
	proxy := ctx.engine.vm.NewDynamicObject(&elementAccessor{ctx: ctx, node: node})
	ctx.cache[node] = proxy
	return proxy
}

// unwrapNode recovers the *html.Node behind an element proxy.
func (ctx *domContext) unwrapNode(val goja.Value) *html.Node {
	for node, proxy := range ctx.cache {
		if proxy.StrictEquals(val) {
			return node
		}
	}
	return nil
}

type elementAccessor struct {
	ctx  *domContext
	node *html.Node
}

func (e *elementAccessor) Get(key string) goja.Value {
	vm := e.ctx.engine.vm
	switch key {
	case "tagName", "nodeName":
		return vm.ToValue(strings.ToUpper(e.node.TagName))
	case "id":
		id, _ := e.node.GetAttribute("id")
		return vm.ToValue(id)
	case "parentNode", "parentElement":
		if e.node.Parent == nil {
			return goja.Null()
		}
		return e.ctx.elementProxy(e.node.Parent)
	case "style":
		return vm.NewDynamicObject(&styleAccessor{ctx: e.ctx, node: e.node})

	case "getAttribute":
		return vm.ToValue(func(call goja.FunctionCall) goja.Value {
			if len(call.Arguments) == 0 {
				return goja.Null()
			}
			val, ok := e.node.GetAttribute(call.Arguments[0].String())
			if !ok {
				return goja.Null()
			}
			return vm.ToValue(val)
		})
	case "setAttribute":
		return vm.ToValue(func(call goja.FunctionCall) goja.Value {
			if len(call.Arguments) < 2 {
				panic(vm.NewTypeError("Failed to execute 'setAttribute': 2 arguments required"))
			}
			e.node.SetAttribute(call.Arguments[0].String(), call.Arguments[1].String())
			return goja.Undefined()
		})

	case "appendChild":
		return vm.ToValue(func(call goja.FunctionCall) goja.Value {
			if len(call.Arguments) == 0 {
				panic(vm.NewTypeError("Failed to execute 'appendChild': 1 argument required"))
			}
			child := e.ctx.unwrapNode(call.Arguments[0])
			if child == nil {
				panic(vm.NewTypeError("Failed to execute 'appendChild': parameter is not a Node"))
			}
			if child.Parent != nil {
				child.Parent.RemoveChild(child)
			}
			e.node.AddChild(child)
			return e.ctx.elementProxy(child)
		})
	case "removeChild":
		return vm.ToValue(func(call goja.FunctionCall) goja.Value {
			if len(call.Arguments) == 0 {
				panic(vm.NewTypeError("Failed to execute 'removeChild': 1 argument required"))
			}
			child := e.ctx.unwrapNode(call.Arguments[0])
			if child == nil || e.node.RemoveChild(child) == nil {
				panic(vm.NewTypeError("Failed to execute 'removeChild': the node is not a child of this node"))
			}
			return e.ctx.elementProxy(child)
		})
	case "insertBefore":
		return vm.ToValue(func(call goja.FunctionCall) goja.Value {
			if len(call.Arguments) == 0 {
				panic(vm.NewTypeError("Failed to execute 'insertBefore': 1 argument required"))
			}
			newChild := e.ctx.unwrapNode(call.Arguments[0])
			if newChild == nil {
				panic(vm.NewTypeError("Failed to execute 'insertBefore': parameter 1 is not a Node"))
			}
			var refChild *html.Node
			if len(call.Arguments) > 1 && !goja.IsNull(call.Arguments[1]) && !goja.IsUndefined(call.Arguments[1]) {
				refChild = e.ctx.unwrapNode(call.Arguments[1])
			}
			e.node.InsertBefore(newChild, refChild)
			return e.ctx.elementProxy(newChild)
		})

	case "getBoundingClientRect":
		return vm.ToValue(func(call goja.FunctionCall) goja.Value {
			rect := e.ctx.engine.view.BoundingRect(e.node)
			obj := vm.NewObject()
			obj.Set("top", rect.Top)
			obj.Set("left", rect.Left)
			obj.Set("bottom", rect.Bottom)
			obj.Set("right", rect.Right)
			obj.Set("width", rect.Width)
			obj.Set("height", rect.Height)
			return obj
		})
	}
	return goja.Undefined()
}

func (e *elementAccessor) Set(key string, val goja.Value) bool {
	switch key {
	case "id":
		e.node.SetAttribute("id", val.String())
		return true
	}
	return false
}

func (e *elementAccessor) Has(key string) bool {
	switch key {
	case "tagName", "nodeName", "id", "parentNode", "parentElement", "style",
		"getAttribute", "setAttribute",
		"appendChild", "removeChild", "insertBefore",
		"getBoundingClientRect":
		return true
	}
	return false
}

func (e *elementAccessor) Delete(key string) bool {
	return false
}

func (e *elementAccessor) Keys() []string {
	return []string{"tagName", "id", "style"}
}

// styleAccessor bridges JS camelCase style property access to CSS
// kebab-case on the node's inline style attribute.
type styleAccessor struct {
	ctx  *domContext
	node *html.Node
}

func (s *styleAccessor) Get(key string) goja.Value {
	prop := camelToKebab(key)
	if val, ok := s.node.StyleValue(prop); ok {
		return s.ctx.engine.vm.ToValue(val)
	}
	return s.ctx.engine.vm.ToValue("")
}

func (s *styleAccessor) Set(key string, val goja.Value) bool {
	prop := camelToKebab(key)
	str := val.String()
	if str == "" {
		s.node.RemoveStyle(prop)
	} else {
		s.node.SetStyle(prop, str)
	}
	return true
}

func (s *styleAccessor) Has(key string) bool {
	_, ok := s.node.StyleValue(camelToKebab(key))
	return ok
}

func (s *styleAccessor) Delete(key string) bool {
	s.node.RemoveStyle(camelToKebab(key))
	return true
}

func (s *styleAccessor) Keys() []string {
	style := s.node.InlineStyle()
	keys := make([]string, 0, len(style.Properties))
	for prop := range style.Properties {
		keys = append(keys, prop)
	}
	return keys
}

func camelToKebab(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsUpper(r) {
			b.WriteByte('-')
			b.WriteRune(unicode.ToLower(r))
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}
