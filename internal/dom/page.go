package dom

import (
	"strings"

	"golang.org/x/net/html"
)

// Selectors names the structural hooks present in the server-rendered
// markup. Classes are given without a leading dot, ids without a hash.
type Selectors struct {
	FilterForm     string   // filter form container class
	Table          string   // data table class
	NavToggler     string   // navbar hamburger toggle class
	NavCollapse    string   // collapsible navbar region class
	NavLink        string   // navigation link class
	ButtonGroup    string   // button group container class
	ListViewButton string   // list view control id
	GridViewButton string   // grid view control id
	StatCard       string   // dashboard stat card class
	StatIcon       string   // stat card icon class
	StatValue      string   // stat card display value class
	QuickFilters   string   // quick-filter button cluster class
	Interactive    []string // classes that receive touch feedback
}

// DefaultSelectors returns the hooks used by the attendance pages.
func DefaultSelectors() Selectors {
	return Selectors{
		FilterForm:     "filter-form",
		Table:          "table",
		NavToggler:     "navbar-toggler",
		NavCollapse:    "navbar-collapse",
		NavLink:        "nav-link",
		ButtonGroup:    "btn-group",
		ListViewButton: "listViewBtn",
		GridViewButton: "gridViewBtn",
		StatCard:       "stat-card",
		StatIcon:       "stat-icon",
		StatValue:      "stat-value",
		QuickFilters:   "quick-filters",
		Interactive:    []string{"btn", "card", "nav-link"},
	}
}

// Page is the capability contract the enhancement engine depends on.
// Every accessor reflects the live document: a node injected by one
// pass is visible to the next query. Accessors return nil or empty
// slices when the page lacks the pattern; callers treat that as a
// no-op, never an error.
type Page interface {
	// Root returns the document root, used for outside-click
	// bindings and in-page anchor resolution.
	Root() *html.Node

	FilterForms() []*html.Node
	Tables() []*html.Node
	NavToggler() *html.Node
	NavCollapse() *html.Node
	NavLinks() []*html.Node
	ButtonGroups() []*html.Node
	ListViewButton() *html.Node
	GridViewButton() *html.Node
	StatCards() []*html.Node
	StatIcon(card *html.Node) *html.Node
	StatValue(card *html.Node) *html.Node
	QuickFilterButtons() []*html.Node
	AnchorLinks() []*html.Node
	Interactive() []*html.Node

	// ScrollTo animates the page to the given element. The adapter
	// owns the mechanism; headless adapters may record or ignore it.
	ScrollTo(target *html.Node)
}

// HTMLPage implements Page over a parsed html.Node tree.
type HTMLPage struct {
	root   *html.Node
	sel    Selectors
	scroll func(*html.Node)
}

// NewHTMLPage wraps a parsed document with the given selectors.
func NewHTMLPage(root *html.Node, sel Selectors) *HTMLPage {
	return &HTMLPage{root: root, sel: sel}
}

// OnScroll registers a sink invoked by ScrollTo. Used by tests and
// diagnostics to observe smooth-scroll requests; nil means ignore.
func (p *HTMLPage) OnScroll(fn func(*html.Node)) {
	p.scroll = fn
}

// Root returns the document root node.
func (p *HTMLPage) Root() *html.Node { return p.root }

// FilterForms returns the filter form containers on the page.
func (p *HTMLPage) FilterForms() []*html.Node {
	return ByClass(p.root, p.sel.FilterForm)
}

// Tables returns the data tables on the page.
func (p *HTMLPage) Tables() []*html.Node {
	return FindAll(p.root, func(n *html.Node) bool {
		return n.Data == "table" && HasClass(n, p.sel.Table)
	})
}

// NavToggler returns the navbar hamburger control, or nil.
func (p *HTMLPage) NavToggler() *html.Node {
	return FirstByClass(p.root, p.sel.NavToggler)
}

// NavCollapse returns the collapsible navbar region, or nil.
func (p *HTMLPage) NavCollapse() *html.Node {
	return FirstByClass(p.root, p.sel.NavCollapse)
}

// NavLinks returns the navigation links inside the collapsible region.
func (p *HTMLPage) NavLinks() []*html.Node {
	collapse := p.NavCollapse()
	if collapse == nil {
		return nil
	}
	return ByClass(collapse, p.sel.NavLink)
}

// ButtonGroups returns the button group containers on the page.
func (p *HTMLPage) ButtonGroups() []*html.Node {
	return ByClass(p.root, p.sel.ButtonGroup)
}

// ListViewButton returns the list view control, or nil.
func (p *HTMLPage) ListViewButton() *html.Node {
	return ByID(p.root, p.sel.ListViewButton)
}

// GridViewButton returns the grid view control, or nil.
func (p *HTMLPage) GridViewButton() *html.Node {
	return ByID(p.root, p.sel.GridViewButton)
}

// StatCards returns the dashboard stat cards.
func (p *HTMLPage) StatCards() []*html.Node {
	return ByClass(p.root, p.sel.StatCard)
}

// StatIcon returns the icon element inside a stat card, or nil.
func (p *HTMLPage) StatIcon(card *html.Node) *html.Node {
	return FirstByClass(card, p.sel.StatIcon)
}

// StatValue returns the display value element inside a stat card, or
// nil.
func (p *HTMLPage) StatValue(card *html.Node) *html.Node {
	return FirstByClass(card, p.sel.StatValue)
}

// QuickFilterButtons returns the buttons inside the quick-filter
// cluster.
func (p *HTMLPage) QuickFilterButtons() []*html.Node {
	cluster := FirstByClass(p.root, p.sel.QuickFilters)
	if cluster == nil {
		return nil
	}
	return ByTag(cluster, "button")
}

// AnchorLinks returns same-document anchor links (href="#...").
func (p *HTMLPage) AnchorLinks() []*html.Node {
	return FindAll(p.root, func(n *html.Node) bool {
		if n.Data != "a" {
			return false
		}
		href, ok := Attr(n, "href")
		return ok && strings.HasPrefix(href, "#") && len(href) > 1
	})
}

// Interactive returns the elements that receive touch feedback, in
// document order, each at most once.
func (p *HTMLPage) Interactive() []*html.Node {
	return FindAll(p.root, func(n *html.Node) bool {
		for _, class := range p.sel.Interactive {
			if HasClass(n, class) {
				return true
			}
		}
		return false
	})
}

// ScrollTo forwards to the registered scroll sink, if any.
func (p *HTMLPage) ScrollTo(target *html.Node) {
	if p.scroll != nil {
		p.scroll(target)
	}
}
