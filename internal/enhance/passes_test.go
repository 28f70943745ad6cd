package enhance

import (
	"testing"

	"golang.org/x/net/html"

	"github.com/KunalPoonia/smart-attendance-system/internal/dom"
	"github.com/KunalPoonia/smart-attendance-system/internal/events"
)

// TestPassOrder pins the fixed execution order from the pass table.
func TestPassOrder(t *testing.T) {
	want := []string{
		"collapse-filter-panels",
		"label-table-cells",
		"nav-auto-close",
		"touch-feedback",
		"stack-button-groups",
		"default-list-view",
		"tune-card-density",
		"size-quick-filters",
		"smooth-scroll",
	}

	infos := Passes()
	if len(infos) != len(want) {
		t.Fatalf("got %d passes, want %d", len(infos), len(want))
	}
	for i, info := range infos {
		if info.Name != want[i] {
			t.Errorf("pass %d = %q, want %q", i, info.Name, want[i])
		}
	}
}

// TestWidthSensitiveSet pins which passes re-run on resize.
func TestWidthSensitiveSet(t *testing.T) {
	widthSensitive := map[string]bool{
		"collapse-filter-panels": true,
		"label-table-cells":      true,
		"stack-button-groups":    true,
		"default-list-view":      true,
		"tune-card-density":      true,
		"size-quick-filters":     true,
		"nav-auto-close":         false,
		"touch-feedback":         false,
		"smooth-scroll":          false,
	}

	for _, info := range Passes() {
		if info.WidthSensitive != widthSensitive[info.Name] {
			t.Errorf("pass %q width-sensitive = %v, want %v", info.Name, info.WidthSensitive, widthSensitive[info.Name])
		}
	}
}

// TestTableLabelingScenarioC verifies cells are labeled strictly by
// column index.
func TestTableLabelingScenarioC(t *testing.T) {
	f := newFixture(t, pageHTML, 400)
	f.engine.RunAll()

	table := f.page.Tables()[0]
	cells := dom.RowCells(dom.TableBodyRows(table)[0])
	if len(cells) != 2 {
		t.Fatalf("fixture row has %d cells, want 2", len(cells))
	}

	for i, want := range []string{"Name", "Date"} {
		if got, _ := dom.Attr(cells[i], labelAttr); got != want {
			t.Errorf("cell %d label = %q, want %q", i, got, want)
		}
	}
}

// TestTableLabelingSkipsAtWiderClasses verifies labeling applies at
// compact only.
func TestTableLabelingSkipsAtWiderClasses(t *testing.T) {
	f := newFixture(t, pageHTML, 700)
	f.engine.RunAll()

	table := f.page.Tables()[0]
	cell := dom.RowCells(dom.TableBodyRows(table)[0])[0]
	if dom.HasAttr(cell, labelAttr) {
		t.Error("cells were labeled at narrow width, want compact only")
	}
}

// TestTableLabelingExtraCells verifies rows wider than the header are
// labeled only up to the header count.
func TestTableLabelingExtraCells(t *testing.T) {
	source := `<!DOCTYPE html><html><body>
<table class="table">
<thead><tr><th>Name</th></tr></thead>
<tbody><tr><td>Asha</td><td>spillover</td></tr></tbody>
</table></body></html>`

	f := newFixture(t, source, 400)
	f.engine.RunAll()

	cells := dom.RowCells(dom.TableBodyRows(f.page.Tables()[0])[0])
	if v, _ := dom.Attr(cells[0], labelAttr); v != "Name" {
		t.Errorf("first cell label = %q, want %q", v, "Name")
	}
	if dom.HasAttr(cells[1], labelAttr) {
		t.Error("cell beyond header count should not be labeled")
	}
}

// TestTableWithoutHeadersNoOp verifies a headerless table is skipped
// entirely.
func TestTableWithoutHeadersNoOp(t *testing.T) {
	source := `<!DOCTYPE html><html><body>
<table class="table"><tbody><tr><td>Asha</td></tr></tbody></table>
</body></html>`

	f := newFixture(t, source, 400)
	f.engine.RunAll()

	cell := dom.RowCells(dom.TableBodyRows(f.page.Tables()[0])[0])[0]
	if dom.HasAttr(cell, labelAttr) {
		t.Error("headerless table cell was labeled")
	}
}

// TestButtonGroupStacking verifies groups with more than two buttons
// stack at compact width and pairs are left alone.
func TestButtonGroupStacking(t *testing.T) {
	f := newFixture(t, pageHTML, 400)
	f.engine.RunAll()

	if !dom.HasClass(dom.ByID(f.root, "triple"), stackedClass) {
		t.Error("three-button group not stacked at compact width")
	}
	if dom.HasClass(dom.ByID(f.root, "pair"), stackedClass) {
		t.Error("two-button group stacked, want untouched")
	}
}

// TestButtonGroupStackingWiderClasses verifies no stacking outside
// compact.
func TestButtonGroupStackingWiderClasses(t *testing.T) {
	f := newFixture(t, pageHTML, 700)
	f.engine.RunAll()

	if dom.HasClass(dom.ByID(f.root, "triple"), stackedClass) {
		t.Error("group stacked at narrow width, want compact only")
	}
}

// TestCardDensity verifies the sizes are a function of the viewport
// class.
func TestCardDensity(t *testing.T) {
	tests := []struct {
		name      string
		width     int
		wantIcon  string
		wantValue string
	}{
		{"Compact sizes", 400, "2rem", "1.25rem"},
		{"Narrow sizes", 700, "2.5rem", "1.5rem"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, pageHTML, tt.width)
			f.engine.RunAll()

			card := f.page.StatCards()[0]
			if got := dom.Style(f.page.StatIcon(card), "font-size"); got != tt.wantIcon {
				t.Errorf("icon font-size = %q, want %q", got, tt.wantIcon)
			}
			if got := dom.Style(f.page.StatValue(card), "font-size"); got != tt.wantValue {
				t.Errorf("value font-size = %q, want %q", got, tt.wantValue)
			}
		})
	}
}

// TestCardDensitySkipsWide verifies wide viewports leave the cards
// untouched.
func TestCardDensitySkipsWide(t *testing.T) {
	f := newFixture(t, pageHTML, 1200)
	f.engine.RunAll()

	card := f.page.StatCards()[0]
	if got := dom.Style(f.page.StatIcon(card), "font-size"); got != "" {
		t.Errorf("icon font-size = %q at wide width, want unset", got)
	}
}

// TestQuickFilterSizing verifies tap-target sizing at compact width
// only.
func TestQuickFilterSizing(t *testing.T) {
	f := newFixture(t, pageHTML, 400)
	f.engine.RunAll()

	for _, btn := range f.page.QuickFilterButtons() {
		if got := dom.Style(btn, "min-height"); got != "44px" {
			t.Errorf("quick-filter min-height = %q, want 44px", got)
		}
		if got := dom.Style(btn, "padding"); got == "" {
			t.Error("quick-filter padding not applied")
		}
	}

	wide := newFixture(t, pageHTML, 1200)
	wide.engine.RunAll()
	for _, btn := range wide.page.QuickFilterButtons() {
		if got := dom.Style(btn, "min-height"); got != "" {
			t.Errorf("quick-filter min-height = %q at wide width, want unset", got)
		}
	}
}

// navFixture wires the page's own toggler behavior: clicking the
// toggler flips the collapse region's show class.
func navFixture(t *testing.T, width int) (*testFixture, *html.Node, *html.Node) {
	t.Helper()
	f := newFixture(t, pageHTML, width)

	toggler := f.page.NavToggler()
	collapse := f.page.NavCollapse()
	f.events.Bind(toggler, events.Click, func(*events.Event) {
		if dom.HasClass(collapse, "show") {
			dom.RemoveClass(collapse, "show")
		} else {
			dom.AddClass(collapse, "show")
		}
	})

	f.engine.RunAll()
	return f, toggler, collapse
}

// TestNavAutoCloseOnLinkClick verifies clicking a nav link closes an
// open menu on handheld-or-narrower viewports.
func TestNavAutoCloseOnLinkClick(t *testing.T) {
	f, _, collapse := navFixture(t, 800)

	link := f.page.NavLinks()[0]
	f.events.Click(link)

	if dom.HasClass(collapse, "show") {
		t.Error("menu still open after nav link click at handheld width")
	}
}

// TestNavAutoCloseOnOutsideClick verifies clicking outside the nav
// closes an open menu.
func TestNavAutoCloseOnOutsideClick(t *testing.T) {
	f, _, collapse := navFixture(t, 800)

	outside := f.page.StatCards()[0]
	f.events.Click(outside)

	if dom.HasClass(collapse, "show") {
		t.Error("menu still open after outside click at handheld width")
	}
}

// TestNavAutoCloseSkipsWide verifies the menu is left open on wide
// viewports.
func TestNavAutoCloseSkipsWide(t *testing.T) {
	f, _, collapse := navFixture(t, 1200)

	f.events.Click(f.page.NavLinks()[0])

	if !dom.HasClass(collapse, "show") {
		t.Error("menu closed at wide width, want untouched")
	}
}

// TestNavAutoCloseTogglerClickIgnored verifies clicking the toggler
// itself is not treated as an outside click.
func TestNavAutoCloseTogglerClickIgnored(t *testing.T) {
	f, toggler, collapse := navFixture(t, 800)

	// The page handler closes the menu; the engine must not fire the
	// toggler a second time and re-open it.
	f.events.Click(toggler)

	if dom.HasClass(collapse, "show") {
		t.Error("menu open after toggler click, want closed exactly once")
	}
}

// TestSmoothScroll verifies anchor clicks suppress the default jump
// and scroll to the resolved target.
func TestSmoothScroll(t *testing.T) {
	f := newFixture(t, pageHTML, 400)

	var scrolled *html.Node
	f.page.OnScroll(func(n *html.Node) { scrolled = n })
	f.engine.RunAll()

	ev := f.events.Click(dom.ByID(f.root, "jumpFilters"))
	if !ev.DefaultPrevented() {
		t.Error("anchor click default not prevented")
	}
	if scrolled != dom.ByID(f.root, "filters") {
		t.Error("did not scroll to the anchor target")
	}
}

// TestSmoothScrollMissingTarget verifies a dangling anchor keeps its
// default behavior.
func TestSmoothScrollMissingTarget(t *testing.T) {
	f := newFixture(t, pageHTML, 400)

	var scrolled *html.Node
	f.page.OnScroll(func(n *html.Node) { scrolled = n })
	f.engine.RunAll()

	ev := f.events.Click(dom.ByID(f.root, "jumpMissing"))
	if ev.DefaultPrevented() {
		t.Error("default prevented for an anchor with no target")
	}
	if scrolled != nil {
		t.Error("scrolled despite missing target")
	}
}

// TestSmoothScrollHrefChangedAfterBind verifies an anchor whose href
// was removed or emptied after binding keeps its default behavior.
func TestSmoothScrollHrefChangedAfterBind(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(n *html.Node)
	}{
		{"href removed", func(n *html.Node) { dom.RemoveAttr(n, "href") }},
		{"href emptied", func(n *html.Node) { dom.SetAttr(n, "href", "") }},
		{"href rewritten off-page", func(n *html.Node) { dom.SetAttr(n, "href", "/away") }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, pageHTML, 400)

			var scrolled *html.Node
			f.page.OnScroll(func(n *html.Node) { scrolled = n })
			f.engine.RunAll()

			a := dom.ByID(f.root, "jumpFilters")
			tt.mutate(a)

			ev := f.events.Click(a)
			if ev.DefaultPrevented() {
				t.Error("default prevented for an anchor no longer targeting the page")
			}
			if scrolled != nil {
				t.Error("scrolled despite the rewritten href")
			}
		})
	}
}

// TestTouchFeedbackLifecycle verifies the idle → pressed → releasing →
// idle cycle and the transient styling.
func TestTouchFeedbackLifecycle(t *testing.T) {
	f := newFixture(t, pageHTML, 400)
	f.engine.RunAll()

	btn := dom.ByID(f.root, "listViewBtn")
	if got := f.engine.TouchState(btn); got != TouchIdle {
		t.Fatalf("initial touch state = %v, want idle", got)
	}

	f.events.Dispatch(&events.Event{Type: events.TouchStart, Target: btn})
	if got := f.engine.TouchState(btn); got != TouchPressed {
		t.Fatalf("state after touchstart = %v, want pressed", got)
	}
	if dom.Style(btn, "transform") == "" || dom.Style(btn, "opacity") == "" {
		t.Error("pressed styling not applied")
	}

	f.events.Dispatch(&events.Event{Type: events.TouchEnd, Target: btn})
	waitFor(t, func() bool { return f.engine.TouchState(btn) == TouchIdle },
		"touch state never reverted to idle")

	if dom.Style(btn, "transform") != "" || dom.Style(btn, "opacity") != "" {
		t.Error("pressed styling not reverted")
	}
}

// TestTouchFeedbackIndependentElements verifies concurrent presses on
// different elements don't interfere.
func TestTouchFeedbackIndependentElements(t *testing.T) {
	f := newFixture(t, pageHTML, 400)
	f.engine.RunAll()

	a := dom.ByID(f.root, "listViewBtn")
	b := dom.ByID(f.root, "gridViewBtn")

	f.events.Dispatch(&events.Event{Type: events.TouchStart, Target: a})
	f.events.Dispatch(&events.Event{Type: events.TouchStart, Target: b})
	f.events.Dispatch(&events.Event{Type: events.TouchEnd, Target: a})

	waitFor(t, func() bool { return f.engine.TouchState(a) == TouchIdle },
		"first element never reverted")
	if got := f.engine.TouchState(b); got != TouchPressed {
		t.Errorf("second element state = %v, want still pressed", got)
	}
}
