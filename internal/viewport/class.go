package viewport

import "fmt"

// Class is a viewport breakpoint class, ordered narrowest to widest.
type Class int

const (
	// Compact covers phone-sized viewports (≤576px).
	Compact Class = iota
	// Narrow covers large phones and small tablets (≤768px).
	Narrow
	// Handheld covers tablets below the desktop breakpoint (<992px).
	Handheld
	// Wide covers desktop viewports (≥992px).
	Wide
)

// String returns the lowercase class name.
func (c Class) String() string {
	switch c {
	case Compact:
		return "compact"
	case Narrow:
		return "narrow"
	case Handheld:
		return "handheld"
	case Wide:
		return "wide"
	default:
		return fmt.Sprintf("Class(%d)", int(c))
	}
}

// AtMost reports whether c is other or a narrower class. Passes use
// this to express policies like "narrow or smaller".
func (c Class) AtMost(other Class) bool {
	return c <= other
}

// Breakpoints holds the three width thresholds that separate the four
// classes. Compact and Narrow are inclusive upper bounds; Handheld is
// an exclusive upper bound (a width equal to Handheld is Wide).
type Breakpoints struct {
	Compact  int
	Narrow   int
	Handheld int
}

// DefaultBreakpoints returns the page's standard thresholds.
func DefaultBreakpoints() Breakpoints {
	return Breakpoints{Compact: 576, Narrow: 768, Handheld: 992}
}

// Classify maps a width in CSS pixels to its breakpoint class. It is
// pure and total: negative widths classify as Compact.
func (b Breakpoints) Classify(width int) Class {
	switch {
	case width <= b.Compact:
		return Compact
	case width <= b.Narrow:
		return Narrow
	case width < b.Handheld:
		return Handheld
	default:
		return Wide
	}
}
