// Package sticky emulates position:sticky for a block element inside a
// scrollable document. A Sticky watches scroll notifications from its
// View, coalesces them into at most one evaluation per animation frame,
// and keeps the element in exactly one of three positioning schemes:
// inline in flow (static), pinned to the viewport top (fixed), or pinned
// to the bottom of its container (absolute). A hidden placeholder node
// reserves the element's static box so the handover never makes the
// surrounding flow jump.
package sticky

import (
	"errors"
	"fmt"
	"math"

	"stickyfill/pkg/css"
	"stickyfill/pkg/html"
	"stickyfill/pkg/layout"
)

// ErrDetached is returned when the element has no parent node: the
// container is the parent, so there is nothing to stick to.
var ErrDetached = errors.New("sticky: element has no parent")

// Options configures a Sticky instance.
type Options struct {
	// OffsetTop overrides the computed top offset (container border-top
	// plus padding-top). Must be non-negative. Only honored when
	// HasOffsetTop is set, so an explicit zero is distinguishable from
	// "not configured".
	OffsetTop    float64
	HasOffsetTop bool
}

// Sticky is the per-element positioning state machine. One instance owns
// one element and its placeholder; all mutation of their styles goes
// through scheme transitions.
type Sticky struct {
	element   *html.Node
	container *html.Node
	view      View
	sched     FrameScheduler

	placeholder *Placeholder

	scheme Scheme

	offsetTop    float64
	offsetBottom float64
	threshold    float64

	// Left offsets differ per scheme: fixed is viewport-relative,
	// absolute is container-relative.
	leftFixed    float64
	leftAbsolute float64

	staticWidth  float64
	staticHeight float64

	// Latest scroll sample and the single piece of in-flight state: one
	// evaluation pending for the next frame.
	sampleX float64
	sampleY float64
	pending bool

	removed bool
}

// New attaches sticky behavior to element. The element must already be
// in the document (have a parent) and be measurable; the caller must not
// move it between documents afterwards. The container is the element's
// parent node.
func New(element *html.Node, view View, sched FrameScheduler, opts Options) (*Sticky, error) {
	if element == nil {
		return nil, errors.New("sticky: nil element")
	}
	if element.Parent == nil {
		return nil, ErrDetached
	}
	if opts.HasOffsetTop && (opts.OffsetTop < 0 || math.IsNaN(opts.OffsetTop)) {
		return nil, fmt.Errorf("sticky: offsetTop must be a non-negative number, got %v", opts.OffsetTop)
	}

	s := &Sticky{
		element:   element,
		container: element.Parent,
		view:      view,
		sched:     sched,
		scheme:    SchemeStatic,
	}

	elRect := view.BoundingRect(element)
	contRect := view.BoundingRect(s.container)
	if !numericRect(elRect) || !numericRect(contRect) {
		return nil, fmt.Errorf("sticky: element or container box is not numeric")
	}

	// The container must establish an absolute-positioning context for
	// the bottom-pinned scheme to resolve against it.
	ensurePositioned(s.container)

	contStyle := s.container.InlineStyle()
	contBorder := contStyle.GetBorderWidth()
	contPadding := contStyle.GetPadding()

	if opts.HasOffsetTop {
		s.offsetTop = opts.OffsetTop
	} else {
		s.offsetTop = contBorder.Top + contPadding.Top
	}
	s.offsetBottom = contBorder.Bottom + contPadding.Bottom

	s.threshold = s.distanceFromDocumentTop(element) - s.offsetTop

	marginLeft := element.InlineStyle().LengthOrZero("margin-left")
	s.leftFixed = view.ScrollX() + elRect.Left - marginLeft
	s.leftAbsolute = (elRect.Left - marginLeft) - (contRect.Left + contBorder.Left)

	s.staticWidth = elRect.Width
	s.staticHeight = elRect.Height

	// Marker attribute, same idea as the placeholder's: lets tooling
	// spot the managed element without holding the instance.
	element.SetAttribute("data-sticky", "true")

	s.placeholder = newPlaceholder(element, view)

	view.AddScrollListener(s.onScroll)

	// Evaluate once on the first frame so a page that loads already
	// scrolled past the threshold pins without waiting for a scroll.
	s.sampleX = view.ScrollX()
	s.sampleY = view.ScrollY()
	s.pending = true
	sched.RequestFrame(s.frame)

	return s, nil
}

// Scheme returns the currently applied positioning scheme.
func (s *Sticky) Scheme() Scheme {
	return s.scheme
}

// Placeholder returns the flow-reserving proxy node's owner.
func (s *Sticky) Placeholder() *Placeholder {
	return s.placeholder
}

// Refresh re-derives the threshold after a layout-affecting change the
// engine cannot observe (container resize, content change). While the
// element is out of flow the placeholder is the flow-accurate stand-in,
// so the threshold comes from its position. The applied scheme is left
// untouched; the next scroll-driven evaluation uses the new threshold.
func (s *Sticky) Refresh() {
	if s.removed {
		return
	}
	anchor := s.element
	inFlow := s.scheme == SchemeStatic
	if !inFlow {
		anchor = s.placeholder.Node()
	}
	s.threshold = s.distanceFromDocumentTop(anchor) - s.offsetTop
	s.placeholder.Refresh(inFlow)
	if inFlow {
		rect := s.view.BoundingRect(s.element)
		s.staticWidth = rect.Width
		s.staticHeight = rect.Height
	}
}

// Remove tears the instance down: the element returns to static flow,
// the placeholder leaves the document, and further notifications are
// ignored.
func (s *Sticky) Remove() {
	if s.removed {
		return
	}
	if s.scheme != SchemeStatic {
		s.apply(SchemeStatic)
	}
	s.placeholder.remove()
	s.removed = true
}

// onScroll is the coalescing scroll sampler: every notification records
// the latest offset, but at most one evaluation is scheduled per frame.
func (s *Sticky) onScroll() {
	if s.removed {
		return
	}
	s.sampleX = s.view.ScrollX()
	s.sampleY = s.view.ScrollY()
	if s.pending {
		return
	}
	s.pending = true
	s.sched.RequestFrame(s.frame)
}

func (s *Sticky) frame() {
	// Cleared before evaluating: a notification arriving during the
	// evaluation must schedule a new frame, not be dropped.
	s.pending = false
	s.update()
}

// update is the per-frame evaluation: decide the scheme from the latest
// scroll sample and fresh geometry, and mutate styles only on an actual
// scheme change. Wrong decisions self-heal on the next frame, so
// transient geometry (a zero-height container mid-reflow) needs no
// special handling: it simply fails the fit check.
func (s *Sticky) update() {
	if s.removed {
		return
	}

	contRect := s.view.BoundingRect(s.container)
	elRect := s.view.BoundingRect(s.element)

	availableSpace := contRect.Bottom - s.offsetBottom - s.offsetTop
	fits := availableSpace >= elRect.Height

	// Strict threshold comparison: at exactly the threshold the element
	// is no longer static. An exact fit prefers fixed over absolute.
	next := SchemeAbsolute
	if s.sampleY < s.threshold {
		next = SchemeStatic
	} else if fits {
		next = SchemeFixed
	}

	if next != s.scheme {
		s.apply(next)
	}
}

// apply transitions to a scheme, clearing the other schemes' properties
// before setting its own and toggling the placeholder.
func (s *Sticky) apply(next Scheme) {
	el := s.element
	switch next {
	case SchemeStatic:
		el.RemoveStyle("position")
		el.RemoveStyle("top")
		el.RemoveStyle("bottom")
		el.RemoveStyle("left")
		el.RemoveStyle("width")
		s.placeholder.SetVisible(false)

	case SchemeFixed:
		el.RemoveStyle("bottom")
		el.SetStyle("position", "fixed")
		el.SetStyleLength("top", s.offsetTop)
		el.SetStyleLength("left", s.leftFixed)
		el.SetStyleLength("width", s.staticWidth)
		s.placeholder.SetVisible(true)

	case SchemeAbsolute:
		el.RemoveStyle("top")
		el.SetStyle("position", "absolute")
		el.SetStyleLength("bottom", s.offsetBottom)
		el.SetStyleLength("left", s.leftAbsolute)
		el.SetStyleLength("width", s.staticWidth)
		s.placeholder.SetVisible(true)
	}
	s.scheme = next
}

// distanceFromDocumentTop resolves the element's document-relative top.
// With a non-zero scroll, scroll plus the viewport-relative top is
// exact. At zero scroll the offset-ancestor chain is authoritative:
// viewport-relative top equals document-relative top only when no
// ancestor is itself offset.
func (s *Sticky) distanceFromDocumentTop(n *html.Node) float64 {
	if y := s.view.ScrollY(); y != 0 {
		return y + s.view.BoundingRect(n).Top
	}
	return s.view.OffsetFromDocumentTop(n)
}

// ensurePositioned makes the node an absolute-positioning reference if
// it is not one already.
func ensurePositioned(n *html.Node) {
	if n.InlineStyle().GetPosition() == css.PositionStatic {
		n.SetStyle("position", "relative")
	}
}

func numericRect(r layout.Rect) bool {
	return !(math.IsNaN(r.Top) || math.IsNaN(r.Left) || math.IsNaN(r.Bottom) ||
		math.IsNaN(r.Right) || math.IsNaN(r.Width) || math.IsNaN(r.Height))
}
