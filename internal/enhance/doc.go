// Package enhance implements the responsive enhancement engine: the
// ordered set of mutation passes that adapt a server-rendered page to
// small viewports without touching the markup it was authored with.
//
// # Passes
//
// Each pass is a self-contained routine over the current document and
// viewport class: select the elements matching a structural pattern,
// and for those qualifying under the active class and not yet
// enhanced, apply one bounded mutation. Passes fall into two policy
// classes:
//
//   - Structural passes inject a node or attribute once and are
//     guarded by an idempotency marker observable in the document
//     itself (an injected toggle control, a data-label attribute, a
//     stacking class). Skipping the guard would duplicate controls on
//     every re-run.
//   - Cosmetic passes set style values that are pure functions of the
//     current viewport class and are re-applied unconditionally.
//     Guarding them would freeze the value at the first-observed
//     viewport.
//
// The document is the sole source of truth for structural markers; no
// bookkeeping lives outside it. Handler bindings are the exception
// (they are not observable in the tree), so the once-only binding
// passes keep a per-engine bound flag instead.
//
// # Lifecycle
//
// Bootstrap runs every pass once when the page signals readiness.
// Resize notifications feed a single-slot debouncer; when a resize
// burst goes quiet, only the width-sensitive passes re-run. Click and
// touch events drive the collapsible panel state machine and touch
// feedback independently of the resize cycle.
//
// A missing structural target is never an error: the pass simply
// no-ops for that element and will see it again on the next run.
package enhance
