package css

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

type Style struct {
	Properties map[string]string
}

func NewStyle() *Style {
	return &Style{Properties: make(map[string]string)}
}

func (s *Style) Get(property string) (string, bool) {
	val, ok := s.Properties[property]
	return val, ok
}

func (s *Style) Set(property, value string) {
	s.Properties[property] = value
}

// Remove deletes a property. Removing an absent property is a no-op.
func (s *Style) Remove(property string) {
	delete(s.Properties, property)
}

func (s *Style) GetLength(property string) (float64, bool) {
	val, ok := s.Get(property)
	if !ok {
		return 0, false
	}
	return ParseLength(val)
}

// SetLength sets a property to a pixel length value.
func (s *Style) SetLength(property string, px float64) {
	s.Set(property, FormatLength(px))
}

// ParseLength parses a length value (e.g., "100px" or "100")
func ParseLength(val string) (float64, bool) {
	val = strings.TrimSpace(val)
	val = strings.TrimSuffix(val, "px")
	num, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return 0, false
	}
	return num, true
}

// FormatLength renders a pixel length the way inline styles carry it.
// Whole values print without a fraction ("50px", not "50.000000px").
func FormatLength(px float64) string {
	return strconv.FormatFloat(px, 'f', -1, 64) + "px"
}

// LengthOrZero returns the length value or 0 if not set or unparsable.
func (s *Style) LengthOrZero(property string) float64 {
	val, ok := s.GetLength(property)
	if !ok {
		return 0
	}
	return val
}

// BoxEdge represents the four sides of a box (top, right, bottom, left)
type BoxEdge struct {
	Top    float64
	Right  float64
	Bottom float64
	Left   float64
}

// GetMargin returns the margin values for all four sides
func (s *Style) GetMargin() BoxEdge {
	return BoxEdge{
		Top:    s.LengthOrZero("margin-top"),
		Right:  s.LengthOrZero("margin-right"),
		Bottom: s.LengthOrZero("margin-bottom"),
		Left:   s.LengthOrZero("margin-left"),
	}
}

// GetPadding returns the padding values for all four sides
func (s *Style) GetPadding() BoxEdge {
	return BoxEdge{
		Top:    s.LengthOrZero("padding-top"),
		Right:  s.LengthOrZero("padding-right"),
		Bottom: s.LengthOrZero("padding-bottom"),
		Left:   s.LengthOrZero("padding-left"),
	}
}

// GetBorderWidth returns the border width for all four sides
func (s *Style) GetBorderWidth() BoxEdge {
	return BoxEdge{
		Top:    s.LengthOrZero("border-top-width"),
		Right:  s.LengthOrZero("border-right-width"),
		Bottom: s.LengthOrZero("border-bottom-width"),
		Left:   s.LengthOrZero("border-left-width"),
	}
}

// Position type constants
type PositionType string

const (
	PositionStatic   PositionType = "static"
	PositionRelative PositionType = "relative"
	PositionAbsolute PositionType = "absolute"
	PositionFixed    PositionType = "fixed"
)

// GetPosition returns the position type (default: static)
func (s *Style) GetPosition() PositionType {
	if pos, ok := s.Get("position"); ok {
		switch pos {
		case "relative":
			return PositionRelative
		case "absolute":
			return PositionAbsolute
		case "fixed":
			return PositionFixed
		}
	}
	return PositionStatic
}

// Display type constants. Only the block/none distinction matters here:
// everything in flow lays out as a block box.
type DisplayType string

const (
	DisplayBlock DisplayType = "block"
	DisplayNone  DisplayType = "none"
)

// GetDisplay returns the display type (default: block)
func (s *Style) GetDisplay() DisplayType {
	if disp, ok := s.Get("display"); ok && disp == "none" {
		return DisplayNone
	}
	return DisplayBlock
}

// PositionOffset holds the offset values for positioned elements
type PositionOffset struct {
	Top    float64
	Right  float64
	Bottom float64
	Left   float64

	HasTop    bool
	HasRight  bool
	HasBottom bool
	HasLeft   bool
}

// GetPositionOffset returns positioning offset values
func (s *Style) GetPositionOffset() PositionOffset {
	offset := PositionOffset{}

	if top, ok := s.GetLength("top"); ok {
		offset.Top = top
		offset.HasTop = true
	}
	if right, ok := s.GetLength("right"); ok {
		offset.Right = right
		offset.HasRight = true
	}
	if bottom, ok := s.GetLength("bottom"); ok {
		offset.Bottom = bottom
		offset.HasBottom = true
	}
	if left, ok := s.GetLength("left"); ok {
		offset.Left = left
		offset.HasLeft = true
	}

	return offset
}

// ParseInline parses a style attribute value ("width: 10px; height: 20px")
// into a Style. Malformed declarations are skipped.
func ParseInline(attr string) *Style {
	style := NewStyle()
	for _, decl := range strings.Split(attr, ";") {
		decl = strings.TrimSpace(decl)
		if decl == "" {
			continue
		}
		colon := strings.Index(decl, ":")
		if colon < 0 {
			continue
		}
		prop := strings.TrimSpace(decl[:colon])
		val := strings.TrimSpace(decl[colon+1:])
		if prop == "" || val == "" {
			continue
		}
		style.Set(prop, val)
	}
	return style
}

// FormatInline serializes a Style back to a style attribute value.
// Properties are emitted in sorted order so the result is deterministic.
func (s *Style) FormatInline() string {
	if len(s.Properties) == 0 {
		return ""
	}
	props := make([]string, 0, len(s.Properties))
	for prop := range s.Properties {
		props = append(props, prop)
	}
	sort.Strings(props)

	var b strings.Builder
	for i, prop := range props {
		if i > 0 {
			b.WriteString("; ")
		}
		fmt.Fprintf(&b, "%s: %s", prop, s.Properties[prop])
	}
	return b.String()
}
