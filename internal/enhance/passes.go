package enhance

import (
	"strings"

	"github.com/KunalPoonia/smart-attendance-system/internal/dom"
	"github.com/KunalPoonia/smart-attendance-system/internal/events"
	"github.com/KunalPoonia/smart-attendance-system/internal/viewport"
)

const (
	labelAttr    = "data-label"
	stackedClass = "btn-group-stacked"
)

// PassInfo describes one enhancement pass for diagnostics and the
// inspect TUI.
type PassInfo struct {
	Name string
	// WidthSensitive passes re-run after a resize settles; the rest
	// bind handlers once at bootstrap.
	WidthSensitive bool
	// Structural passes are guarded by a document marker; cosmetic
	// ones re-apply unconditionally.
	Structural bool
	// Applies reports whether the pass mutates anything at the given
	// viewport class, ignoring per-element conditions.
	Applies func(viewport.Class) bool
}

type passEntry struct {
	info PassInfo
	run  func(*Engine, viewport.Class)
}

// passTable is the fixed pass order. Bootstrap runs it top to bottom;
// resize re-runs only the width-sensitive rows.
var passTable = []passEntry{
	{
		info: PassInfo{
			Name:           "collapse-filter-panels",
			WidthSensitive: true,
			Structural:     true,
			Applies:        func(c viewport.Class) bool { return c.AtMost(viewport.Narrow) },
		},
		run: runCollapseFilterPanels,
	},
	{
		info: PassInfo{
			Name:           "label-table-cells",
			WidthSensitive: true,
			Structural:     true,
			Applies:        func(c viewport.Class) bool { return c == viewport.Compact },
		},
		run: runLabelTableCells,
	},
	{
		info: PassInfo{
			Name:           "nav-auto-close",
			WidthSensitive: false,
			Structural:     false,
			Applies:        func(viewport.Class) bool { return true },
		},
		run: runNavAutoClose,
	},
	{
		info: PassInfo{
			Name:           "touch-feedback",
			WidthSensitive: false,
			Structural:     false,
			Applies:        func(viewport.Class) bool { return true },
		},
		run: runTouchFeedback,
	},
	{
		info: PassInfo{
			Name:           "stack-button-groups",
			WidthSensitive: true,
			Structural:     true,
			Applies:        func(c viewport.Class) bool { return c == viewport.Compact },
		},
		run: runStackButtonGroups,
	},
	{
		info: PassInfo{
			Name:           "default-list-view",
			WidthSensitive: true,
			Structural:     false,
			Applies:        func(c viewport.Class) bool { return c == viewport.Compact },
		},
		run: runDefaultListView,
	},
	{
		info: PassInfo{
			Name:           "tune-card-density",
			WidthSensitive: true,
			Structural:     false,
			Applies:        func(c viewport.Class) bool { return c.AtMost(viewport.Narrow) },
		},
		run: runTuneCardDensity,
	},
	{
		info: PassInfo{
			Name:           "size-quick-filters",
			WidthSensitive: true,
			Structural:     false,
			Applies:        func(c viewport.Class) bool { return c == viewport.Compact },
		},
		run: runSizeQuickFilters,
	},
	{
		info: PassInfo{
			Name:           "smooth-scroll",
			WidthSensitive: false,
			Structural:     false,
			Applies:        func(viewport.Class) bool { return true },
		},
		run: runSmoothScroll,
	},
}

// Passes returns the pass metadata in execution order.
func Passes() []PassInfo {
	out := make([]PassInfo, len(passTable))
	for i, p := range passTable {
		out[i] = p.info
	}
	return out
}

// runCollapseFilterPanels injects a toggle control before each filter
// form and collapses the form by default. The injected toggle is the
// idempotency marker: a form that already has one is left alone, so a
// panel the user expanded stays expanded across resizes.
func runCollapseFilterPanels(e *Engine, class viewport.Class) {
	if !class.AtMost(viewport.Narrow) {
		return
	}
	for _, form := range e.page.FilterForms() {
		if applied(form, marker{siblingClass: toggleClass}) {
			continue
		}
		e.panels = append(e.panels, newPanel(e, form))
	}
}

// runLabelTableCells copies header text onto body cells as data-label
// attributes, matched strictly by column index. Cells beyond the
// header count are skipped; the attribute is the idempotency marker.
func runLabelTableCells(e *Engine, class viewport.Class) {
	if class != viewport.Compact {
		return
	}
	for _, table := range e.page.Tables() {
		headers := dom.TableHeaders(table)
		if len(headers) == 0 {
			continue
		}
		labels := make([]string, len(headers))
		for i, h := range headers {
			labels[i] = dom.Text(h)
		}
		for _, row := range dom.TableBodyRows(table) {
			for i, cell := range dom.RowCells(row) {
				if i >= len(labels) {
					break
				}
				if applied(cell, marker{attr: labelAttr}) {
					continue
				}
				dom.SetAttr(cell, labelAttr, labels[i])
			}
		}
	}
}

// runNavAutoClose binds, once, the handlers that close an open nav
// menu on handheld-or-narrower viewports: clicking a nav link or
// clicking outside the nav triggers the existing menu toggler.
func runNavAutoClose(e *Engine, _ viewport.Class) {
	if e.navBound {
		return
	}
	toggler := e.page.NavToggler()
	collapse := e.page.NavCollapse()
	if toggler == nil || collapse == nil {
		return
	}

	// Reads width lock-free: this runs inside dispatches that may
	// originate from a pass already holding the engine lock.
	closeMenu := func() {
		if !e.CurrentClass().AtMost(viewport.Handheld) {
			return
		}
		if !dom.HasClass(collapse, "show") {
			return
		}
		e.events.Click(toggler)
	}

	for _, link := range e.page.NavLinks() {
		e.bind(link, events.Click, func(*events.Event) { closeMenu() })
	}
	e.bind(e.page.Root(), events.Click, func(ev *events.Event) {
		if dom.Contains(collapse, ev.Target) || dom.Contains(toggler, ev.Target) {
			return
		}
		closeMenu()
	})
	e.navBound = true
}

// runTouchFeedback binds, once, press and release handlers to the
// interactive elements. The transient pressed style reverts after a
// fixed delay following release.
func runTouchFeedback(e *Engine, _ viewport.Class) {
	if e.touchBound {
		return
	}
	for _, el := range e.page.Interactive() {
		el := el
		e.bind(el, events.TouchStart, func(*events.Event) { e.touch.press(el) })
		e.bind(el, events.TouchEnd, func(*events.Event) { e.touch.release(el) })
	}
	e.touchBound = true
}

// runStackButtonGroups stacks button groups with more than two buttons
// at compact width. The stacking class is the idempotency marker.
func runStackButtonGroups(e *Engine, class viewport.Class) {
	if class != viewport.Compact {
		return
	}
	for _, group := range e.page.ButtonGroups() {
		if len(dom.ByTag(group, "button")) <= 2 {
			continue
		}
		if applied(group, marker{class: stackedClass}) {
			continue
		}
		dom.AddClass(group, stackedClass)
	}
}

// runDefaultListView forces list view at compact width when grid view
// is active at evaluation time. Deliberately unguarded and one-way:
// the pass re-evaluates on every run but never restores grid view when
// the viewport widens again.
func runDefaultListView(e *Engine, class viewport.Class) {
	if class != viewport.Compact {
		return
	}
	grid := e.page.GridViewButton()
	list := e.page.ListViewButton()
	if grid == nil || list == nil {
		return
	}
	if !dom.HasClass(grid, "active") {
		return
	}
	e.events.Click(list)
}

// runTuneCardDensity sets explicit icon and display-text sizes on the
// dashboard stat cards. The sizes are pure functions of the viewport
// class, so re-applying is safe and unguarded.
func runTuneCardDensity(e *Engine, class viewport.Class) {
	if !class.AtMost(viewport.Narrow) {
		return
	}
	iconSize, valueSize := e.cfg.Cards.NarrowIcon, e.cfg.Cards.NarrowValue
	if class == viewport.Compact {
		iconSize, valueSize = e.cfg.Cards.CompactIcon, e.cfg.Cards.CompactValue
	}
	for _, card := range e.page.StatCards() {
		if icon := e.page.StatIcon(card); icon != nil {
			dom.SetStyle(icon, "font-size", iconSize)
		}
		if value := e.page.StatValue(card); value != nil {
			dom.SetStyle(value, "font-size", valueSize)
		}
	}
}

// runSizeQuickFilters enlarges quick-filter tap targets at compact
// width. Unconditional re-apply, same rationale as card density.
func runSizeQuickFilters(e *Engine, class viewport.Class) {
	if class != viewport.Compact {
		return
	}
	for _, btn := range e.page.QuickFilterButtons() {
		dom.SetStyle(btn, "min-height", e.cfg.QuickFilter.MinHeight)
		dom.SetStyle(btn, "padding", e.cfg.QuickFilter.Padding)
	}
}

// runSmoothScroll binds, once, click handlers on same-document anchor
// links that suppress the default jump and animate to the target. A
// link whose target is missing keeps its default behavior.
func runSmoothScroll(e *Engine, _ viewport.Class) {
	if e.scrollBound {
		return
	}
	for _, a := range e.page.AnchorLinks() {
		a := a
		e.bind(a, events.Click, func(ev *events.Event) {
			// Re-read the href at dispatch time: page code may have
			// rewritten or removed it since binding.
			href, ok := dom.Attr(a, "href")
			if !ok || !strings.HasPrefix(href, "#") || len(href) < 2 {
				return
			}
			target := dom.ByID(e.page.Root(), href[1:])
			if target == nil {
				return
			}
			ev.PreventDefault()
			e.page.ScrollTo(target)
		})
	}
	e.scrollBound = true
}
