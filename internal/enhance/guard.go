package enhance

import (
	"golang.org/x/net/html"

	"github.com/KunalPoonia/smart-attendance-system/internal/dom"
)

// marker identifies the observable trace a structural pass leaves in
// the document. At least one field is set; any present trace counts as
// already-enhanced.
type marker struct {
	// attr is an attribute on the element itself.
	attr string
	// class is a class on the element itself.
	class string
	// siblingClass is a class on an injected control that precedes
	// the element as its nearest element sibling.
	siblingClass string
}

// applied reports whether the marker already exists for the element.
// It queries the live document on every call; a node injected moments
// ago by the same pass invocation is visible here. This is the check
// every structural pass must make before mutating.
func applied(n *html.Node, m marker) bool {
	if m.attr != "" && dom.HasAttr(n, m.attr) {
		return true
	}
	if m.class != "" && dom.HasClass(n, m.class) {
		return true
	}
	if m.siblingClass != "" {
		if prev := dom.PrevElementSibling(n); prev != nil && dom.HasClass(prev, m.siblingClass) {
			return true
		}
	}
	return false
}
