package render

import (
	"testing"

	"stickyfill/pkg/scenario"
)

const testScenario = `
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
`

func buildWorld(t *testing.T) *scenario.World {
	t.Helper()
	sc, err := scenario.Parse(testScenario)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	world, err := sc.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return world
}

func pixel(t *testing.T, r *Renderer, x, y int) (uint32, uint32, uint32) {
	t.Helper()
	red, green, blue, _ := r.Image().At(x, y).RGBA()
	return red >> 8, green >> 8, blue >> 8
}

func TestRenderDimensions(t *testing.T) {
	r := NewRenderer(800, 600)
	bounds := r.Image().Bounds()
	if bounds.Dx() != 800 || bounds.Dy() != 600 {
		t.Errorf("image bounds = %v, want 800x600", bounds)
	}
}

func TestRenderStaticElement(t *testing.T) {
	world := buildWorld(t)

	r := NewRenderer(800, 600)
	r.Render(world.Engine.Layout(), 0, 0)

	// element spans 50..150 in flow; in-flow sticky paints green
	red, green, blue := pixel(t, r, 400, 100)
	if green <= red || green <= blue {
		t.Errorf("expected a green element pixel, got rgb(%d, %d, %d)", red, green, blue)
	}
}

func TestRenderPinnedElement(t *testing.T) {
	world := buildWorld(t)
	world.Apply(scenario.Step{Y: 60})

	r := NewRenderer(800, 600)
	r.Render(world.Engine.Layout(), world.Engine.ScrollX(), world.Engine.ScrollY())

	// pinned element sits at viewport top and paints blue
	red, green, blue := pixel(t, r, 400, 50)
	if blue <= red || blue <= 200 {
		t.Errorf("expected a blue pinned pixel, got rgb(%d, %d, %d)", red, green, blue)
	}

	// below the element the tail content is plain gray
	red, green, blue = pixel(t, r, 400, 450)
	if red != green || green != blue {
		t.Errorf("expected gray flow content, got rgb(%d, %d, %d)", red, green, blue)
	}
}
