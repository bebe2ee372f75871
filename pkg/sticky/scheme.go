package sticky

// Scheme is the element's current positioning mode. The element is in
// exactly one scheme at all times; the placeholder participates in flow
// exactly when the scheme is not SchemeStatic.
type Scheme int

const (
	SchemeStatic Scheme = iota
	SchemeFixed
	SchemeAbsolute
)

func (s Scheme) String() string {
	switch s {
	case SchemeStatic:
		return "static"
	case SchemeFixed:
		return "fixed"
	case SchemeAbsolute:
		return "absolute"
	}
	return "unknown"
}
