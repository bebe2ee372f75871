package layout

import (
	"stickyfill/pkg/css"
	"stickyfill/pkg/html"
)

// Rect is a viewport-relative rectangle, the shape returned by
// getBoundingClientRect-style reads. All edges refer to the border box.
type Rect struct {
	Top    float64
	Left   float64
	Bottom float64
	Right  float64
	Width  float64
	Height float64
}

type Box struct {
	Node     *html.Node
	Style    *css.Style
	X        float64 // Border-box left, document coordinates
	Y        float64 // Border-box top, document coordinates
	Width    float64 // Content width
	Height   float64 // Content height
	Margin   css.BoxEdge
	Padding  css.BoxEdge
	Border   css.BoxEdge
	Children []*Box
	Parent   *Box // Containing-block search walks this chain
	Position css.PositionType
}

// BorderBoxWidth returns the width including padding and borders.
func (b *Box) BorderBoxWidth() float64 {
	return b.Width + b.Padding.Left + b.Padding.Right + b.Border.Left + b.Border.Right
}

// BorderBoxHeight returns the height including padding and borders.
func (b *Box) BorderBoxHeight() float64 {
	return b.Height + b.Padding.Top + b.Padding.Bottom + b.Border.Top + b.Border.Bottom
}

// IsPositioned returns true if the box has position != static
func (b *Box) IsPositioned() bool {
	return b.Position != css.PositionStatic
}

// FindContainingBlock finds the containing block for a positioned box.
// For absolute boxes: the nearest positioned ancestor (nil means the
// initial containing block). For everything else: the parent box.
func (b *Box) FindContainingBlock() *Box {
	switch b.Position {
	case css.PositionAbsolute:
		for cur := b.Parent; cur != nil; cur = cur.Parent {
			if cur.IsPositioned() {
				return cur
			}
		}
		return nil
	case css.PositionFixed:
		// Fixed boxes are positioned relative to the viewport
		return nil
	default:
		return b.Parent
	}
}
