package css

import (
	"testing"
)

func TestParseLength(t *testing.T) {
	cases := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"100px", 100, true},
		{"100", 100, true},
		{" 12.5px ", 12.5, true},
		{"0px", 0, true},
		{"auto", 0, false},
		{"", 0, false},
	}
	for _, c := range cases {
		got, ok := ParseLength(c.in)
		if ok != c.ok || got != c.want {
			t.Errorf("ParseLength(%q) = %v, %v; want %v, %v", c.in, got, ok, c.want, c.ok)
		}
	}
}

func TestFormatLength(t *testing.T) {
	if got := FormatLength(50); got != "50px" {
		t.Errorf("FormatLength(50) = %q, want %q", got, "50px")
	}
	if got := FormatLength(12.5); got != "12.5px" {
		t.Errorf("FormatLength(12.5) = %q, want %q", got, "12.5px")
	}
}

func TestBoxEdgeGetters(t *testing.T) {
	s := NewStyle()
	s.Set("margin-top", "10px")
	s.Set("padding-bottom", "7px")
	s.Set("border-top-width", "3px")

	if m := s.GetMargin(); m.Top != 10 || m.Left != 0 {
		t.Errorf("unexpected margin: %+v", m)
	}
	if p := s.GetPadding(); p.Bottom != 7 || p.Top != 0 {
		t.Errorf("unexpected padding: %+v", p)
	}
	if b := s.GetBorderWidth(); b.Top != 3 {
		t.Errorf("unexpected border: %+v", b)
	}
}

func TestGetPosition(t *testing.T) {
	s := NewStyle()
	if s.GetPosition() != PositionStatic {
		t.Error("default position should be static")
	}
	s.Set("position", "fixed")
	if s.GetPosition() != PositionFixed {
		t.Error("expected fixed")
	}
	s.Remove("position")
	if s.GetPosition() != PositionStatic {
		t.Error("removed position should fall back to static")
	}
}

func TestGetPositionOffset(t *testing.T) {
	s := NewStyle()
	s.Set("top", "5px")
	s.Set("left", "20px")

	offset := s.GetPositionOffset()
	if !offset.HasTop || offset.Top != 5 {
		t.Errorf("expected top 5, got %+v", offset)
	}
	if !offset.HasLeft || offset.Left != 20 {
		t.Errorf("expected left 20, got %+v", offset)
	}
	if offset.HasBottom || offset.HasRight {
		t.Errorf("bottom/right should be unset, got %+v", offset)
	}
}

func TestParseInlineRoundTrip(t *testing.T) {
	style := ParseInline("width: 100px; height: 50px;  position:relative ")
	if v, _ := style.Get("width"); v != "100px" {
		t.Errorf("width = %q", v)
	}
	if v, _ := style.Get("position"); v != "relative" {
		t.Errorf("position = %q", v)
	}

	// deterministic, sorted serialization
	if got := style.FormatInline(); got != "height: 50px; position: relative; width: 100px" {
		t.Errorf("FormatInline = %q", got)
	}
}

func TestParseInlineMalformed(t *testing.T) {
	style := ParseInline("width; : 10px; ;; height: 5px")
	if len(style.Properties) != 1 {
		t.Fatalf("expected 1 property, got %+v", style.Properties)
	}
	if v, _ := style.Get("height"); v != "5px" {
		t.Errorf("height = %q", v)
	}
}

func TestGetDisplay(t *testing.T) {
	s := NewStyle()
	if s.GetDisplay() != DisplayBlock {
		t.Error("default display should be block")
	}
	s.Set("display", "none")
	if s.GetDisplay() != DisplayNone {
		t.Error("expected none")
	}
}
