package enhance

import (
	"golang.org/x/net/html"

	"github.com/KunalPoonia/smart-attendance-system/internal/dom"
	"github.com/KunalPoonia/smart-attendance-system/internal/events"
)

const (
	toggleClass      = "filter-toggle-btn"
	toggleLabelClass = "filter-toggle-label"
	collapsedClass   = "filter-collapsed"

	iconCollapsed = "bi-chevron-down"
	iconExpanded  = "bi-chevron-up"

	labelShow = "Show Filters"
	labelHide = "Hide Filters"
)

// PanelState is the collapsible panel's state.
type PanelState string

const (
	PanelCollapsed PanelState = "collapsed"
	PanelExpanded  PanelState = "expanded"
)

// Panel governs one filter panel's collapsed/expanded state. The state
// is encoded in three facets that must never disagree: the panel's
// collapsed class, the toggle icon orientation, and the toggle label
// text. All three update together on every transition.
//
// A panel starts collapsed when first enhanced and is never explicitly
// destroyed; it goes away with the form element.
type Panel struct {
	form   *html.Node
	toggle *html.Node
	icon   *html.Node
	label  *html.Node
	state  PanelState
	sub    events.Subscription
}

// newPanel injects the toggle control immediately before the form,
// collapses the form, and binds the click handler. Caller holds the
// engine lock.
func newPanel(e *Engine, form *html.Node) *Panel {
	label := dom.Element("span", "class", toggleLabelClass)
	dom.SetText(label, labelShow)

	icon := dom.Element("i", "class", "bi "+iconCollapsed)

	toggle := dom.Element("button",
		"type", "button",
		"class", "btn btn-outline-secondary w-100 "+toggleClass,
	)
	toggle.AppendChild(label)
	toggle.AppendChild(&html.Node{Type: html.TextNode, Data: " "})
	toggle.AppendChild(icon)

	dom.InsertBefore(form, toggle)
	dom.AddClass(form, collapsedClass)

	p := &Panel{form: form, toggle: toggle, icon: icon, label: label, state: PanelCollapsed}
	p.sub = e.bind(toggle, events.Click, func(*events.Event) {
		e.mu.Lock()
		defer e.mu.Unlock()
		p.flip()
	})
	return p
}

// flip transitions the state and updates all three facets together.
// Rapid repeated clicks are serialized by the engine lock, so a reader
// never observes the facets mid-transition.
func (p *Panel) flip() {
	if p.state == PanelCollapsed {
		p.state = PanelExpanded
		dom.RemoveClass(p.form, collapsedClass)
		dom.RemoveClass(p.icon, iconCollapsed)
		dom.AddClass(p.icon, iconExpanded)
		dom.SetText(p.label, labelHide)
		return
	}
	p.state = PanelCollapsed
	dom.AddClass(p.form, collapsedClass)
	dom.RemoveClass(p.icon, iconExpanded)
	dom.AddClass(p.icon, iconCollapsed)
	dom.SetText(p.label, labelShow)
}

// State returns the panel's current state.
func (p *Panel) State() PanelState { return p.state }

// Toggle returns the injected toggle control.
func (p *Panel) Toggle() *html.Node { return p.toggle }

// Form returns the enhanced filter form.
func (p *Panel) Form() *html.Node { return p.form }

// FacetsConsistent reports whether the three visual facets agree with
// the state. Always true outside a transition; exists for tests and
// diagnostics.
func (p *Panel) FacetsConsistent() bool {
	collapsed := p.state == PanelCollapsed
	if dom.HasClass(p.form, collapsedClass) != collapsed {
		return false
	}
	if dom.HasClass(p.icon, iconCollapsed) != collapsed {
		return false
	}
	if dom.HasClass(p.icon, iconExpanded) == collapsed {
		return false
	}
	wantLabel := labelHide
	if collapsed {
		wantLabel = labelShow
	}
	return dom.Text(p.label) == wantLabel
}
