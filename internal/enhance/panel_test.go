package enhance

import (
	"testing"

	"github.com/KunalPoonia/smart-attendance-system/internal/dom"
)

// TestPanelToggleScenarioB verifies one click expands the panel with
// all facets flipped, and a second click reverts exactly to the
// post-bootstrap state.
func TestPanelToggleScenarioB(t *testing.T) {
	f := newFixture(t, pageHTML, 400)
	f.engine.RunAll()

	snapshot, err := dom.RenderString(f.root)
	if err != nil {
		t.Fatal(err)
	}

	panels := f.engine.Panels()
	if len(panels) != 1 {
		t.Fatalf("got %d panels, want 1", len(panels))
	}
	p := panels[0]

	f.events.Click(p.Toggle())
	if p.State() != PanelExpanded {
		t.Fatalf("state after one click = %v, want expanded", p.State())
	}
	if dom.HasClass(p.Form(), collapsedClass) {
		t.Error("form still collapsed after expanding")
	}
	label := dom.FirstByClass(p.Toggle(), toggleLabelClass)
	if dom.Text(label) != labelHide {
		t.Errorf("label = %q, want %q", dom.Text(label), labelHide)
	}
	icon := dom.FirstByClass(p.Toggle(), iconExpanded)
	if icon == nil {
		t.Error("icon not flipped to expanded orientation")
	}

	f.events.Click(p.Toggle())
	reverted, err := dom.RenderString(f.root)
	if err != nil {
		t.Fatal(err)
	}
	if reverted != snapshot {
		t.Errorf("second click did not revert to the post-bootstrap state:\nwant: %s\ngot:  %s", snapshot, reverted)
	}
}

// TestPanelToggleParity verifies N toggles leave the panel collapsed
// for even N and expanded for odd N, with the facets agreeing every
// time.
func TestPanelToggleParity(t *testing.T) {
	f := newFixture(t, pageHTML, 400)
	f.engine.RunAll()

	p := f.engine.Panels()[0]
	for n := 1; n <= 7; n++ {
		f.events.Click(p.Toggle())

		want := PanelCollapsed
		if n%2 == 1 {
			want = PanelExpanded
		}
		if p.State() != want {
			t.Fatalf("after %d clicks state = %v, want %v", n, p.State(), want)
		}
		if !p.FacetsConsistent() {
			t.Fatalf("after %d clicks the facets disagree with state %v", n, p.State())
		}
	}
}

// TestPanelSurvivesResize verifies an expanded panel keeps its state
// when the width-sensitive passes re-run: the injected toggle is the
// idempotency marker, so the panel is not re-enhanced.
func TestPanelSurvivesResize(t *testing.T) {
	f := newFixture(t, pageHTML, 400)
	f.engine.RunAll()

	p := f.engine.Panels()[0]
	f.events.Click(p.Toggle())
	if p.State() != PanelExpanded {
		t.Fatal("expected expanded panel before resize")
	}

	f.engine.Resize(500)
	f.settle()

	if got := len(f.engine.Panels()); got != 1 {
		t.Fatalf("panel count after resize = %d, want 1", got)
	}
	if p.State() != PanelExpanded {
		t.Error("resize re-collapsed a panel the user expanded")
	}
	if got := len(dom.ByClass(f.root, toggleClass)); got != 1 {
		t.Errorf("toggle count after resize = %d, want 1", got)
	}
}

// TestPanelNotEnhancedWide verifies no panel is created at handheld or
// wider viewports.
func TestPanelNotEnhancedWide(t *testing.T) {
	for _, width := range []int{800, 1200} {
		f := newFixture(t, pageHTML, width)
		f.engine.RunAll()
		if got := len(f.engine.Panels()); got != 0 {
			t.Errorf("width %d created %d panels, want 0", width, got)
		}
	}
}

// TestMultiplePanelsIndependent verifies each filter form gets its own
// panel with independent state.
func TestMultiplePanelsIndependent(t *testing.T) {
	source := `<!DOCTYPE html><html><body>
<form class="filter-form" id="a"></form>
<form class="filter-form" id="b"></form>
</body></html>`

	f := newFixture(t, source, 400)
	f.engine.RunAll()

	panels := f.engine.Panels()
	if len(panels) != 2 {
		t.Fatalf("got %d panels, want 2", len(panels))
	}

	f.events.Click(panels[0].Toggle())
	if panels[0].State() != PanelExpanded {
		t.Error("first panel did not expand")
	}
	if panels[1].State() != PanelCollapsed {
		t.Error("second panel changed state with the first")
	}
}
