package sticky

import (
	"stickyfill/pkg/html"
)

// PlaceholderAttr marks placeholder nodes in the DOM so tooling (the
// renderer, scripts) can tell them from real content.
const PlaceholderAttr = "data-sticky-placeholder"

// Placeholder is the flow-reserving proxy swapped in for the element
// once it leaves static flow. It is created hidden, sized to the
// element's static border box, and inserted immediately before the
// element so the surrounding flow cannot collapse or jump.
type Placeholder struct {
	node   *html.Node
	target *html.Node
	view   View
}

func newPlaceholder(target *html.Node, view View) *Placeholder {
	p := &Placeholder{
		node:   html.NewElement("div"),
		target: target,
		view:   view,
	}
	p.node.SetAttribute(PlaceholderAttr, "true")

	// The placeholder reserves the element's margin box, so the
	// element's margins carry over.
	style := target.InlineStyle()
	for _, prop := range []string{"margin-top", "margin-right", "margin-bottom", "margin-left"} {
		if val, ok := style.Get(prop); ok {
			p.node.SetStyle(prop, val)
		}
	}
	p.node.SetStyle("display", "none")

	rect := view.BoundingRect(target)
	p.node.SetStyleLength("width", rect.Width)
	p.node.SetStyleLength("height", rect.Height)

	target.Parent.InsertBefore(p.node, target)
	return p
}

func (p *Placeholder) Node() *html.Node {
	return p.node
}

// SetVisible toggles flow participation. Redundant toggles write nothing.
func (p *Placeholder) SetVisible(visible bool) {
	want := "none"
	if visible {
		want = "block"
	}
	if cur, ok := p.node.StyleValue("display"); ok && cur == want {
		return
	}
	p.node.SetStyle("display", want)
}

// Refresh re-measures the reserved box. Only meaningful while the target
// is in flow; out of flow the target's rect no longer reflects its
// static size, so the recorded box is kept.
func (p *Placeholder) Refresh(targetInFlow bool) {
	if !targetInFlow {
		return
	}
	rect := p.view.BoundingRect(p.target)
	p.node.SetStyleLength("width", rect.Width)
	p.node.SetStyleLength("height", rect.Height)
}

// remove detaches the placeholder from the document.
func (p *Placeholder) remove() {
	if p.node.Parent != nil {
		p.node.Parent.RemoveChild(p.node)
	}
}
