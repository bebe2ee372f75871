package scenario

import (
	"testing"

	"stickyfill/pkg/html"
	"stickyfill/pkg/sticky"
)

// The canonical walk: element at document offset 50 (lead 10 + spacer
// 40), height 100, explicit offsetTop 0, container content 350 tall.
const walkScenario = `
lead = 10
tail = 500

[viewport]
width = 800
height = 600

[element]
height = 100
spacer = 40
trailing = 210
offset_top = 0

[[scroll]]
y = 0

[[scroll]]
y = 60

[[scroll]]
y = 270
`

func buildWalk(t *testing.T) (*Scenario, *World) {
	t.Helper()
	sc, err := Parse(walkScenario)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	world, err := sc.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return sc, world
}

func TestParseRejectsBadScenarios(t *testing.T) {
	cases := []string{
		``, // no viewport
		"[viewport]\nwidth = 800\nheight = 600\n", // no element height
		"[viewport]\nwidth = 800\nheight = 600\n[element]\nheight = 100\noffset_top = -4\n",
	}
	for _, src := range cases {
		if _, err := Parse(src); err == nil {
			t.Errorf("expected error for scenario %q", src)
		}
	}
}

func TestBuildGeometry(t *testing.T) {
	_, world := buildWalk(t)

	rect := world.Engine.BoundingRect(world.Element)
	if rect.Top != 50 {
		t.Errorf("element top = %g, want 50", rect.Top)
	}
	cont := world.Engine.BoundingRect(world.Container)
	if cont.Top != 10 || cont.Bottom != 360 {
		t.Errorf("container rect = %+v, want 10..360", cont)
	}
}

func TestScenarioWalk(t *testing.T) {
	sc, world := buildWalk(t)

	world.Apply(sc.Scroll[0])
	if world.Sticky.Scheme() != sticky.SchemeStatic {
		t.Fatalf("scroll 0: expected static, got %v", world.Sticky.Scheme())
	}

	// scroll 60: container bottom 300, available space 300 >= 100
	world.Apply(sc.Scroll[1])
	if world.Sticky.Scheme() != sticky.SchemeFixed {
		t.Fatalf("scroll 60: expected fixed, got %v", world.Sticky.Scheme())
	}
	if rect := world.Engine.BoundingRect(world.Element); rect.Top != 0 {
		t.Errorf("pinned element top = %g, want offsetTop 0", rect.Top)
	}

	// scroll 270: container bottom 90, available space 90 < 100
	world.Apply(sc.Scroll[2])
	if world.Sticky.Scheme() != sticky.SchemeAbsolute {
		t.Fatalf("scroll 270: expected absolute, got %v", world.Sticky.Scheme())
	}
	el := world.Engine.BoundingRect(world.Element)
	cont := world.Engine.BoundingRect(world.Container)
	if el.Bottom != cont.Bottom {
		t.Errorf("absolute element bottom = %g, want container bottom %g", el.Bottom, cont.Bottom)
	}

	world.Apply(Step{Y: 0})
	if world.Sticky.Scheme() != sticky.SchemeStatic {
		t.Fatalf("back at top: expected static, got %v", world.Sticky.Scheme())
	}
}

func TestPlaceholderPreservesFlow(t *testing.T) {
	sc, world := buildWalk(t)

	trailing := childByID(world.Container, "trailing")
	if trailing == nil {
		t.Fatal("trailing content missing")
	}
	before := world.Engine.OffsetFromDocumentTop(trailing)

	world.Apply(sc.Scroll[1]) // pin the element
	if world.Sticky.Scheme() != sticky.SchemeFixed {
		t.Fatalf("expected fixed, got %v", world.Sticky.Scheme())
	}

	after := world.Engine.OffsetFromDocumentTop(trailing)
	if before != after {
		t.Errorf("trailing content moved from %g to %g when the element pinned", before, after)
	}
}

func TestThresholdBoundaryEndToEnd(t *testing.T) {
	_, world := buildWalk(t)

	world.Apply(Step{Y: 49})
	if world.Sticky.Scheme() != sticky.SchemeStatic {
		t.Fatalf("threshold-1: expected static, got %v", world.Sticky.Scheme())
	}

	world.Apply(Step{Y: 50})
	if world.Sticky.Scheme() != sticky.SchemeFixed {
		t.Fatalf("threshold: expected fixed, got %v", world.Sticky.Scheme())
	}
}

func TestMaxScrollY(t *testing.T) {
	sc, world := buildWalk(t)
	if max := sc.MaxScrollY(world); max != 270 {
		t.Errorf("MaxScrollY = %g, want 270 from the script", max)
	}

	sc.Scroll = nil
	// body: 10 + 350 + 500 = 860 tall, viewport 600
	if max := sc.MaxScrollY(world); max != 260 {
		t.Errorf("MaxScrollY = %g, want document overflow 260", max)
	}
}

func childByID(n *html.Node, id string) *html.Node {
	for _, child := range n.Children {
		if got, _ := child.GetAttribute("id"); got == id {
			return child
		}
		if found := childByID(child, id); found != nil {
			return found
		}
	}
	return nil
}
