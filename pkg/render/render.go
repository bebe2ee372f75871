package render

import (
	"image"

	"github.com/fogleman/gg"

	"stickyfill/pkg/css"
	"stickyfill/pkg/layout"
	"stickyfill/pkg/sticky"
)

// Renderer paints the simulated document's geometry: plain boxes in
// gray, the placeholder as a dashed outline, and the sticky element
// color-coded by its applied scheme.
type Renderer struct {
	context *gg.Context
}

func NewRenderer(width, height int) *Renderer {
	return &Renderer{context: gg.NewContext(width, height)}
}

// Render draws the boxes as seen through the viewport at the given
// scroll offset.
func (r *Renderer) Render(boxes []*layout.Box, scrollX, scrollY float64) {
	r.context.SetRGB(1, 1, 1)
	r.context.Clear()

	all := collectAllBoxes(boxes)

	// Out-of-flow boxes paint above normal flow. Relative boxes stay in
	// the flow layer: they establish positioning contexts without rising
	// above their own children.
	for _, box := range all {
		if !box.IsOutOfFlow() {
			r.drawBox(box, scrollX, scrollY)
		}
	}
	for _, box := range all {
		if box.IsOutOfFlow() {
			r.drawBox(box, scrollX, scrollY)
		}
	}
}

// collectAllBoxes flattens the box tree into a single list
func collectAllBoxes(boxes []*layout.Box) []*layout.Box {
	result := make([]*layout.Box, 0)
	for _, box := range boxes {
		result = append(result, box)
		result = append(result, collectAllBoxes(box.Children)...)
	}
	return result
}

func (r *Renderer) drawBox(box *layout.Box, scrollX, scrollY float64) {
	x := box.X - scrollX
	y := box.Y - scrollY
	w := box.BorderBoxWidth()
	h := box.BorderBoxHeight()
	if w <= 0 || h <= 0 {
		return
	}

	if _, ok := box.Node.GetAttribute(sticky.PlaceholderAttr); ok {
		r.context.SetDash(4, 4)
		r.context.SetRGB(0.45, 0.45, 0.45)
		r.context.SetLineWidth(1)
		r.context.DrawRectangle(x, y, w, h)
		r.context.Stroke()
		r.context.SetDash()
		return
	}

	fillR, fillG, fillB := 0.92, 0.92, 0.92
	if _, ok := box.Node.GetAttribute("data-sticky"); ok {
		switch box.Position {
		case css.PositionFixed:
			fillR, fillG, fillB = 0.30, 0.55, 0.95 // pinned to viewport
		case css.PositionAbsolute:
			fillR, fillG, fillB = 0.95, 0.60, 0.25 // pinned to container bottom
		default:
			fillR, fillG, fillB = 0.55, 0.80, 0.55 // in flow
		}
	}

	r.context.SetRGB(fillR, fillG, fillB)
	r.context.DrawRectangle(x, y, w, h)
	r.context.Fill()

	r.context.SetRGB(0.25, 0.25, 0.25)
	r.context.SetLineWidth(1)
	r.context.DrawRectangle(x, y, w, h)
	r.context.Stroke()
}

// Image returns the rendered frame.
func (r *Renderer) Image() image.Image {
	return r.context.Image()
}

// SavePNG writes the rendered frame to a PNG file.
func (r *Renderer) SavePNG(path string) error {
	return r.context.SavePNG(path)
}
