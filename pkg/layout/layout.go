package layout

import (
	"stickyfill/pkg/css"
	"stickyfill/pkg/html"
)

// Layout performs a full block layout of the document and returns the
// top-level boxes. Every call recomputes from the current DOM state, so
// reads within one evaluation pass are mutually consistent.
func (e *Engine) Layout() []*Box {
	e.outOfFlow = nil

	boxes := make([]*Box, 0, len(e.doc.Root.Children))
	cursor := 0.0
	for _, child := range e.doc.Root.Children {
		box := e.layoutNode(child, 0, cursor, e.viewport.width, nil)
		if box == nil {
			continue
		}
		boxes = append(boxes, box)
		if box.IsOutOfFlow() {
			continue
		}
		cursor = box.Y + box.BorderBoxHeight() + box.Margin.Bottom
	}

	for _, box := range e.outOfFlow {
		e.placeOutOfFlow(box)
	}
	return boxes
}

// IsOutOfFlow reports whether the box is removed from normal flow.
func (b *Box) IsOutOfFlow() bool {
	return b.Position == css.PositionAbsolute || b.Position == css.PositionFixed
}

// layoutNode lays out one element as a block box. x is the content-edge
// left of the parent, y the current flow cursor (the box's margin-box
// top). Returns nil for text nodes and display:none subtrees.
func (e *Engine) layoutNode(node *html.Node, x, y, availableWidth float64, parent *Box) *Box {
	if node.Type != html.ElementNode {
		return nil
	}

	style := node.InlineStyle()
	if style.GetDisplay() == css.DisplayNone {
		return nil
	}

	box := &Box{
		Node:     node,
		Style:    style,
		Margin:   style.GetMargin(),
		Padding:  style.GetPadding(),
		Border:   style.GetBorderWidth(),
		Parent:   parent,
		Position: style.GetPosition(),
	}

	// Border-box position in normal flow; out-of-flow boxes are
	// repositioned afterwards from their containing block.
	box.X = x + box.Margin.Left
	box.Y = y + box.Margin.Top

	if width, ok := style.GetLength("width"); ok {
		box.Width = width
	} else {
		box.Width = availableWidth - box.Margin.Left - box.Margin.Right -
			box.Padding.Left - box.Padding.Right - box.Border.Left - box.Border.Right
		if box.Width < 0 {
			box.Width = 0
		}
	}

	// Children stack vertically inside the content box
	contentX := box.X + box.Border.Left + box.Padding.Left
	contentY := box.Y + box.Border.Top + box.Padding.Top
	cursor := contentY
	for _, child := range node.Children {
		childBox := e.layoutNode(child, contentX, cursor, box.Width, box)
		if childBox == nil {
			continue
		}
		box.Children = append(box.Children, childBox)
		if childBox.IsOutOfFlow() {
			continue
		}
		cursor = childBox.Y + childBox.BorderBoxHeight() + childBox.Margin.Bottom
	}

	if height, ok := style.GetLength("height"); ok {
		box.Height = height
	} else {
		box.Height = cursor - contentY
	}

	if box.IsOutOfFlow() {
		e.outOfFlow = append(e.outOfFlow, box)
	}
	return box
}

// placeOutOfFlow positions a fixed or absolute box, following CSS 2.1
// §10.3.7/§10.6.4 for the offset arithmetic, and shifts its laid-out
// subtree along with it.
func (e *Engine) placeOutOfFlow(box *Box) {
	offset := box.Style.GetPositionOffset()

	var cbX, cbY, cbWidth, cbHeight float64
	if box.Position == css.PositionFixed {
		// Viewport is the containing block; document coordinates are
		// viewport coordinates plus the scroll offset.
		cbX = e.scrollX
		cbY = e.scrollY
		cbWidth = e.viewport.width
		cbHeight = e.viewport.height
	} else if cb := box.FindContainingBlock(); cb != nil {
		// Positioned relative to the containing block's padding edge
		cbX = cb.X + cb.Border.Left
		cbY = cb.Y + cb.Border.Top
		cbWidth = cb.Width + cb.Padding.Left + cb.Padding.Right
		cbHeight = cb.Height + cb.Padding.Top + cb.Padding.Bottom
	} else {
		// Initial containing block
		cbX = 0
		cbY = 0
		cbWidth = e.viewport.width
		cbHeight = e.viewport.height
	}

	newX := box.X
	newY := box.Y

	if offset.HasLeft {
		newX = cbX + offset.Left + box.Margin.Left
	} else if offset.HasRight {
		newX = cbX + cbWidth - offset.Right - box.Margin.Right - box.Width -
			box.Padding.Left - box.Padding.Right - box.Border.Left - box.Border.Right
	}

	if offset.HasTop {
		newY = cbY + offset.Top + box.Margin.Top
	} else if offset.HasBottom {
		newY = cbY + cbHeight - offset.Bottom - box.Margin.Bottom - box.Height -
			box.Padding.Top - box.Padding.Bottom - box.Border.Top - box.Border.Bottom
	}

	shiftBox(box, newX-box.X, newY-box.Y)
}

func shiftBox(box *Box, dx, dy float64) {
	if dx == 0 && dy == 0 {
		return
	}
	box.X += dx
	box.Y += dy
	for _, child := range box.Children {
		shiftBox(child, dx, dy)
	}
}
