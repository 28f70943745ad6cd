package dom

import (
	"testing"

	"golang.org/x/net/html"
)

const samplePage = `<!DOCTYPE html>
<html><body>
<nav class="navbar">
  <button class="navbar-toggler">Menu</button>
  <div class="navbar-collapse">
    <a class="nav-link" href="/a">A</a>
    <a class="nav-link" href="/b">B</a>
  </div>
</nav>
<form class="filter-form"></form>
<table class="table"><thead></thead><tbody></tbody></table>
<table><tbody></tbody></table>
<div class="btn-group"></div>
<button id="listViewBtn" class="btn">List</button>
<button id="gridViewBtn" class="btn active">Grid</button>
<div class="stat-card">
  <i class="stat-icon"></i><span class="stat-value">9</span>
</div>
<div class="quick-filters"><button class="btn">Today</button></div>
<a href="#top" id="anchor">Top</a>
<a href="#" id="bareHash">Hash only</a>
<a href="/away">Away</a>
<div class="card"></div>
</body></html>`

func samplePageAdapter(t *testing.T) (*HTMLPage, *html.Node) {
	t.Helper()
	root, err := ParseString(samplePage)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	return NewHTMLPage(root, DefaultSelectors()), root
}

// TestPageAccessors verifies each named accessor finds its pattern.
func TestPageAccessors(t *testing.T) {
	p, _ := samplePageAdapter(t)

	if got := len(p.FilterForms()); got != 1 {
		t.Errorf("FilterForms = %d, want 1", got)
	}
	// Only tables carrying the table class count.
	if got := len(p.Tables()); got != 1 {
		t.Errorf("Tables = %d, want 1", got)
	}
	if p.NavToggler() == nil || p.NavCollapse() == nil {
		t.Error("nav toggler/collapse not found")
	}
	if got := len(p.NavLinks()); got != 2 {
		t.Errorf("NavLinks = %d, want 2", got)
	}
	if got := len(p.ButtonGroups()); got != 1 {
		t.Errorf("ButtonGroups = %d, want 1", got)
	}
	if p.ListViewButton() == nil || p.GridViewButton() == nil {
		t.Error("view toggle buttons not found")
	}
	if got := len(p.StatCards()); got != 1 {
		t.Errorf("StatCards = %d, want 1", got)
	}
	card := p.StatCards()[0]
	if p.StatIcon(card) == nil || p.StatValue(card) == nil {
		t.Error("stat card parts not found")
	}
	if got := len(p.QuickFilterButtons()); got != 1 {
		t.Errorf("QuickFilterButtons = %d, want 1", got)
	}
}

// TestAnchorLinks verifies only same-document anchors with a fragment
// qualify.
func TestAnchorLinks(t *testing.T) {
	p, root := samplePageAdapter(t)

	anchors := p.AnchorLinks()
	if len(anchors) != 1 {
		t.Fatalf("AnchorLinks = %d, want 1", len(anchors))
	}
	if anchors[0] != ByID(root, "anchor") {
		t.Error("wrong anchor matched")
	}
}

// TestInteractive verifies the touch-feedback element set covers all
// configured classes without duplicates.
func TestInteractive(t *testing.T) {
	p, _ := samplePageAdapter(t)

	// 2 nav-links, 3 standalone buttons (toggler has no btn class but
	// list/grid/quick-filter do), 1 plain card.
	want := 6
	els := p.Interactive()
	if len(els) != want {
		t.Errorf("Interactive = %d elements, want %d", len(els), want)
	}
	seen := map[*html.Node]bool{}
	for _, el := range els {
		if seen[el] {
			t.Error("Interactive returned a duplicate element")
		}
		seen[el] = true
	}
}

// TestMissingPatterns verifies accessors on a bare page return empty
// results, never errors.
func TestMissingPatterns(t *testing.T) {
	root, err := ParseString(`<!DOCTYPE html><html><body><p>bare</p></body></html>`)
	if err != nil {
		t.Fatal(err)
	}
	p := NewHTMLPage(root, DefaultSelectors())

	if p.NavToggler() != nil || p.ListViewButton() != nil {
		t.Error("expected nil for missing singular patterns")
	}
	if len(p.FilterForms()) != 0 || len(p.StatCards()) != 0 || len(p.QuickFilterButtons()) != 0 {
		t.Error("expected empty slices for missing plural patterns")
	}
}

// TestScrollSink verifies ScrollTo is a no-op without a sink and
// forwards with one.
func TestScrollSink(t *testing.T) {
	p, root := samplePageAdapter(t)
	target := ByID(root, "anchor")

	p.ScrollTo(target) // no sink registered; must not panic

	var got *html.Node
	p.OnScroll(func(n *html.Node) { got = n })
	p.ScrollTo(target)
	if got != target {
		t.Error("scroll sink did not receive the target")
	}
}
