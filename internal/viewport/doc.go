// Package viewport classifies viewport widths into breakpoint classes.
//
// The classifier is a pure function over a width in CSS pixels. Four
// classes exist, matching the page's responsive breakpoints:
//
//   - Compact:  width ≤ 576
//   - Narrow:   width ≤ 768
//   - Handheld: width < 992
//   - Wide:     everything else
//
// The compact and narrow thresholds are inclusive (a width of exactly
// 576 is Compact); the handheld threshold is exclusive (992 is Wide).
// Classification is total and deterministic for any width, and is
// recomputed on demand rather than cached, so callers always see the
// class for the width they hold right now.
package viewport
