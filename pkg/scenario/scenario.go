// Package scenario builds simulated documents from TOML descriptions: a
// viewport, a container with a sticky element inside it, and a scripted
// sequence of scroll offsets. The CLIs and the integration tests drive
// the positioning engine through these worlds.
package scenario

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"stickyfill/pkg/css"
	"stickyfill/pkg/html"
	"stickyfill/pkg/layout"
	"stickyfill/pkg/sticky"
)

type Scenario struct {
	Viewport  ViewportSpec  `toml:"viewport"`
	Lead      float64       `toml:"lead"` // content height above the container
	Tail      float64       `toml:"tail"` // content height below the container
	Container ContainerSpec `toml:"container"`
	Element   ElementSpec   `toml:"element"`
	Scroll    []Step        `toml:"scroll"`
}

type ViewportSpec struct {
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
}

type ContainerSpec struct {
	Width     float64 `toml:"width"`      // 0 means full viewport width
	MarginTop float64 `toml:"margin_top"` // on top of lead content
	Padding   float64 `toml:"padding"`    // uniform
	Border    float64 `toml:"border"`     // uniform width
}

type ElementSpec struct {
	Height     float64  `toml:"height"`
	Width      float64  `toml:"width"`       // 0 means full container width
	MarginLeft float64  `toml:"margin_left"` //
	Spacer     float64  `toml:"spacer"`      // container content above the element
	Trailing   float64  `toml:"trailing"`    // container content below the element
	OffsetTop  *float64 `toml:"offset_top"`  // explicit override; nil means computed
}

type Step struct {
	X float64 `toml:"x"`
	Y float64 `toml:"y"`
}

// Load reads a scenario from a TOML file.
func Load(path string) (*Scenario, error) {
	var sc Scenario
	if _, err := toml.DecodeFile(path, &sc); err != nil {
		return nil, fmt.Errorf("scenario %s: %w", path, err)
	}
	if err := sc.validate(); err != nil {
		return nil, fmt.Errorf("scenario %s: %w", path, err)
	}
	return &sc, nil
}

// Parse reads a scenario from TOML source text.
func Parse(data string) (*Scenario, error) {
	var sc Scenario
	if _, err := toml.Decode(data, &sc); err != nil {
		return nil, fmt.Errorf("scenario: %w", err)
	}
	if err := sc.validate(); err != nil {
		return nil, fmt.Errorf("scenario: %w", err)
	}
	return &sc, nil
}

func (sc *Scenario) validate() error {
	if sc.Viewport.Width <= 0 || sc.Viewport.Height <= 0 {
		return fmt.Errorf("viewport must have positive width and height, got %gx%g",
			sc.Viewport.Width, sc.Viewport.Height)
	}
	if sc.Element.Height <= 0 {
		return fmt.Errorf("element height must be positive, got %g", sc.Element.Height)
	}
	if sc.Element.OffsetTop != nil && *sc.Element.OffsetTop < 0 {
		return fmt.Errorf("offset_top must be non-negative, got %g", *sc.Element.OffsetTop)
	}
	return nil
}

// World is a built scenario: document, geometry engine, frame scheduler
// and the attached sticky instance.
type World struct {
	Doc    *html.Document
	Engine *layout.Engine
	Sched  *sticky.ManualScheduler

	Sticky *sticky.Sticky

	Body      *html.Node
	Container *html.Node
	Element   *html.Node
}

// Build constructs the DOM, attaches the sticky instance and runs its
// initial evaluation frame so the world starts settled.
func (sc *Scenario) Build() (*World, error) {
	doc := html.NewDocument()

	body := html.NewElement("body")
	body.SetAttribute("id", "body")
	doc.Root.AddChild(body)

	if sc.Lead > 0 {
		lead := html.NewElement("div")
		lead.SetAttribute("id", "lead")
		lead.SetStyleLength("height", sc.Lead)
		body.AddChild(lead)
	}

	container := html.NewElement("div")
	container.SetAttribute("id", "container")
	if sc.Container.Width > 0 {
		container.SetStyleLength("width", sc.Container.Width)
	}
	if sc.Container.MarginTop > 0 {
		container.SetStyleLength("margin-top", sc.Container.MarginTop)
	}
	if sc.Container.Padding > 0 {
		for _, side := range []string{"top", "right", "bottom", "left"} {
			container.SetStyleLength("padding-"+side, sc.Container.Padding)
		}
	}
	if sc.Container.Border > 0 {
		for _, side := range []string{"top", "right", "bottom", "left"} {
			container.SetStyleLength("border-"+side+"-width", sc.Container.Border)
		}
	}
	body.AddChild(container)

	if sc.Element.Spacer > 0 {
		spacer := html.NewElement("div")
		spacer.SetAttribute("id", "spacer")
		spacer.SetStyleLength("height", sc.Element.Spacer)
		container.AddChild(spacer)
	}

	element := html.NewElement("div")
	element.SetAttribute("id", "sticky")
	element.SetStyleLength("height", sc.Element.Height)
	if sc.Element.Width > 0 {
		element.SetStyleLength("width", sc.Element.Width)
	}
	if sc.Element.MarginLeft > 0 {
		element.SetStyleLength("margin-left", sc.Element.MarginLeft)
	}
	container.AddChild(element)

	if sc.Element.Trailing > 0 {
		trailing := html.NewElement("div")
		trailing.SetAttribute("id", "trailing")
		trailing.SetStyleLength("height", sc.Element.Trailing)
		container.AddChild(trailing)
	}

	if sc.Tail > 0 {
		tail := html.NewElement("div")
		tail.SetAttribute("id", "tail")
		tail.SetStyleLength("height", sc.Tail)
		body.AddChild(tail)
	}

	engine := layout.NewEngine(doc, sc.Viewport.Width, sc.Viewport.Height)
	sched := sticky.NewManualScheduler()

	opts := sticky.Options{}
	if sc.Element.OffsetTop != nil {
		opts.OffsetTop = *sc.Element.OffsetTop
		opts.HasOffsetTop = true
	}

	st, err := sticky.New(element, engine, sched, opts)
	if err != nil {
		return nil, fmt.Errorf("scenario: %w", err)
	}
	sched.Step()

	return &World{
		Doc:       doc,
		Engine:    engine,
		Sched:     sched,
		Sticky:    st,
		Body:      body,
		Container: container,
		Element:   element,
	}, nil
}

// Apply scrolls to a step's offset and runs the resulting frame.
func (w *World) Apply(s Step) {
	w.Engine.SetScroll(s.X, s.Y)
	w.Sched.Step()
}

// MaxScrollY returns the largest vertical offset in the scroll script,
// or the document overflow when the script is empty.
func (sc *Scenario) MaxScrollY(w *World) float64 {
	max := 0.0
	for _, step := range sc.Scroll {
		if step.Y > max {
			max = step.Y
		}
	}
	if max > 0 {
		return max
	}
	bodyRect := w.Engine.BoundingRect(w.Body)
	if overflow := bodyRect.Height - sc.Viewport.Height; overflow > 0 {
		return overflow
	}
	return 0
}

// ElementPosition returns the element's applied position property, for
// reporting. Static elements carry no inline position.
func (w *World) ElementPosition() css.PositionType {
	return w.Element.InlineStyle().GetPosition()
}
