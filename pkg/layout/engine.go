package layout

import (
	"stickyfill/pkg/html"
)

// Engine owns the document's geometry: viewport size, scroll offsets and
// the block layout pass. It is the scroll-notification source and the
// geometry-read surface the positioning code consumes.
type Engine struct {
	doc      *html.Document
	viewport struct {
		width  float64
		height float64
	}
	scrollX float64
	scrollY float64

	listeners []func()

	outOfFlow []*Box // Collected during the flow pass, placed after it
}

func NewEngine(doc *html.Document, viewportWidth, viewportHeight float64) *Engine {
	e := &Engine{doc: doc}
	e.viewport.width = viewportWidth
	e.viewport.height = viewportHeight
	return e
}

func (e *Engine) Document() *html.Document {
	return e.doc
}

func (e *Engine) ViewportWidth() float64 {
	return e.viewport.width
}

func (e *Engine) ViewportHeight() float64 {
	return e.viewport.height
}

func (e *Engine) ScrollX() float64 {
	return e.scrollX
}

func (e *Engine) ScrollY() float64 {
	return e.scrollY
}

// SetScroll moves the viewport and fires scroll listeners. Listeners run
// synchronously, in registration order, on the caller's goroutine.
func (e *Engine) SetScroll(x, y float64) {
	e.scrollX = x
	e.scrollY = y
	for _, fn := range e.listeners {
		fn()
	}
}

// AddScrollListener registers a callback fired on every SetScroll.
func (e *Engine) AddScrollListener(fn func()) {
	e.listeners = append(e.listeners, fn)
}

// BoundingRect lays the document out and returns the node's border box,
// viewport-relative. Nodes not in the layout (detached or display:none)
// yield a zero Rect.
func (e *Engine) BoundingRect(n *html.Node) Rect {
	box := findBox(e.Layout(), n)
	if box == nil {
		return Rect{}
	}
	r := Rect{
		Top:    box.Y - e.scrollY,
		Left:   box.X - e.scrollX,
		Width:  box.BorderBoxWidth(),
		Height: box.BorderBoxHeight(),
	}
	r.Bottom = r.Top + r.Height
	r.Right = r.Left + r.Width
	return r
}

// OffsetFromDocumentTop returns the node's border-box top in document
// coordinates: the value the offset-ancestor chain sums to, independent
// of the current scroll position.
func (e *Engine) OffsetFromDocumentTop(n *html.Node) float64 {
	box := findBox(e.Layout(), n)
	if box == nil {
		return 0
	}
	return box.Y
}

func findBox(boxes []*Box, n *html.Node) *Box {
	for _, box := range boxes {
		if box.Node == n {
			return box
		}
		if found := findBox(box.Children, n); found != nil {
			return found
		}
	}
	return nil
}
