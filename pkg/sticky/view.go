package sticky

import (
	"stickyfill/pkg/html"
	"stickyfill/pkg/layout"
)

// View is the scroll-offset source and geometry-read surface the state
// machine consumes. layout.Engine satisfies it; tests substitute fakes.
//
// All reads are synchronous and consistent within one evaluation pass:
// nothing mutates the layout between two reads of the same pass.
type View interface {
	ScrollX() float64
	ScrollY() float64

	// BoundingRect returns the node's border box, viewport-relative.
	BoundingRect(n *html.Node) layout.Rect

	// OffsetFromDocumentTop returns the node's distance from the document
	// top via the offset-ancestor chain, independent of scroll. It is the
	// authoritative fallback when the page is unscrolled.
	OffsetFromDocumentTop(n *html.Node) float64

	// AddScrollListener subscribes to scroll notifications.
	AddScrollListener(fn func())
}

var _ View = (*layout.Engine)(nil)
