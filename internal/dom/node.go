package dom

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
)

// Parse parses an HTML document from r.
func Parse(r io.Reader) (*html.Node, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML document: %w", err)
	}
	return root, nil
}

// ParseString parses an HTML document from a string.
func ParseString(s string) (*html.Node, error) {
	return Parse(strings.NewReader(s))
}

// Render serializes the document rooted at n.
func Render(w io.Writer, n *html.Node) error {
	if err := html.Render(w, n); err != nil {
		return fmt.Errorf("failed to render HTML document: %w", err)
	}
	return nil
}

// RenderString serializes the document rooted at n to a string.
func RenderString(n *html.Node) (string, error) {
	var sb strings.Builder
	if err := Render(&sb, n); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// Attr returns the value of the named attribute and whether it exists.
func Attr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// HasAttr reports whether the named attribute exists on n.
func HasAttr(n *html.Node, key string) bool {
	_, ok := Attr(n, key)
	return ok
}

// SetAttr sets the named attribute, replacing any existing value.
func SetAttr(n *html.Node, key, val string) {
	for i := range n.Attr {
		if n.Attr[i].Key == key {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}

// RemoveAttr deletes the named attribute if present.
func RemoveAttr(n *html.Node, key string) {
	for i := range n.Attr {
		if n.Attr[i].Key == key {
			n.Attr = append(n.Attr[:i], n.Attr[i+1:]...)
			return
		}
	}
}

// ClassList returns the element's classes in document order.
func ClassList(n *html.Node) []string {
	val, ok := Attr(n, "class")
	if !ok {
		return nil
	}
	return strings.Fields(val)
}

// HasClass reports whether the element carries the given class.
func HasClass(n *html.Node, class string) bool {
	for _, c := range ClassList(n) {
		if c == class {
			return true
		}
	}
	return false
}

// AddClass appends a class if not already present.
func AddClass(n *html.Node, class string) {
	if HasClass(n, class) {
		return
	}
	classes := append(ClassList(n), class)
	SetAttr(n, "class", strings.Join(classes, " "))
}

// RemoveClass removes a class if present. An empty resulting list keeps
// an empty class attribute rather than deleting it, matching browser
// classList behavior.
func RemoveClass(n *html.Node, class string) {
	classes := ClassList(n)
	kept := classes[:0]
	for _, c := range classes {
		if c != class {
			kept = append(kept, c)
		}
	}
	if len(kept) != len(classes) {
		SetAttr(n, "class", strings.Join(kept, " "))
	}
}

// Style returns the value of an inline style property, or "" if unset.
func Style(n *html.Node, prop string) string {
	raw, _ := Attr(n, "style")
	for _, decl := range strings.Split(raw, ";") {
		k, v, ok := strings.Cut(decl, ":")
		if ok && strings.TrimSpace(k) == prop {
			return strings.TrimSpace(v)
		}
	}
	return ""
}

// SetStyle sets an inline style property, replacing any existing
// declaration for the same property and preserving the others.
func SetStyle(n *html.Node, prop, value string) {
	raw, _ := Attr(n, "style")
	var decls []string
	for _, decl := range strings.Split(raw, ";") {
		k, _, ok := strings.Cut(decl, ":")
		if !ok || strings.TrimSpace(k) == prop || strings.TrimSpace(decl) == "" {
			continue
		}
		decls = append(decls, strings.TrimSpace(decl))
	}
	decls = append(decls, prop+": "+value)
	SetAttr(n, "style", strings.Join(decls, "; "))
}

// RemoveStyle deletes an inline style property, leaving the rest of the
// style attribute intact.
func RemoveStyle(n *html.Node, prop string) {
	raw, ok := Attr(n, "style")
	if !ok {
		return
	}
	var decls []string
	for _, decl := range strings.Split(raw, ";") {
		k, _, cut := strings.Cut(decl, ":")
		if !cut || strings.TrimSpace(k) == prop || strings.TrimSpace(decl) == "" {
			continue
		}
		decls = append(decls, strings.TrimSpace(decl))
	}
	if len(decls) == 0 {
		RemoveAttr(n, "style")
		return
	}
	SetAttr(n, "style", strings.Join(decls, "; "))
}

// Text returns the concatenated text content of n, whitespace-trimmed.
func Text(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(c *html.Node) {
		if c.Type == html.TextNode {
			sb.WriteString(c.Data)
		}
		for child := c.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(n)
	return strings.TrimSpace(sb.String())
}

// SetText replaces all children of n with a single text node.
func SetText(n *html.Node, text string) {
	for n.FirstChild != nil {
		n.RemoveChild(n.FirstChild)
	}
	n.AppendChild(&html.Node{Type: html.TextNode, Data: text})
}

// Element creates a detached element node. Attributes are given as
// key/value pairs; a trailing unpaired key is ignored.
func Element(tag string, attrPairs ...string) *html.Node {
	n := &html.Node{Type: html.ElementNode, Data: tag}
	for i := 0; i+1 < len(attrPairs); i += 2 {
		SetAttr(n, attrPairs[i], attrPairs[i+1])
	}
	return n
}

// InsertBefore inserts newNode as the immediately preceding sibling of
// ref. It is a no-op when ref has no parent.
func InsertBefore(ref, newNode *html.Node) {
	if ref.Parent == nil {
		return
	}
	ref.Parent.InsertBefore(newNode, ref)
}

// Walk visits n and every descendant in document order. Returning
// false from fn stops the walk.
func Walk(n *html.Node, fn func(*html.Node) bool) bool {
	if !fn(n) {
		return false
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if !Walk(c, fn) {
			return false
		}
	}
	return true
}

// FindAll returns the element nodes under root (inclusive) matching
// pred, in document order.
func FindAll(root *html.Node, pred func(*html.Node) bool) []*html.Node {
	var out []*html.Node
	Walk(root, func(n *html.Node) bool {
		if n.Type == html.ElementNode && pred(n) {
			out = append(out, n)
		}
		return true
	})
	return out
}

// ByClass returns all elements under root carrying the given class.
func ByClass(root *html.Node, class string) []*html.Node {
	return FindAll(root, func(n *html.Node) bool { return HasClass(n, class) })
}

// FirstByClass returns the first element under root carrying the given
// class, or nil.
func FirstByClass(root *html.Node, class string) *html.Node {
	var found *html.Node
	Walk(root, func(n *html.Node) bool {
		if n.Type == html.ElementNode && HasClass(n, class) {
			found = n
			return false
		}
		return true
	})
	return found
}

// ByTag returns all elements under root with the given tag name.
func ByTag(root *html.Node, tag string) []*html.Node {
	return FindAll(root, func(n *html.Node) bool { return n.Data == tag })
}

// FirstByTag returns the first element under root with the given tag
// name, or nil.
func FirstByTag(root *html.Node, tag string) *html.Node {
	var found *html.Node
	Walk(root, func(n *html.Node) bool {
		if n.Type == html.ElementNode && n.Data == tag {
			found = n
			return false
		}
		return true
	})
	return found
}

// ByID returns the element under root with the given id, or nil.
func ByID(root *html.Node, id string) *html.Node {
	var found *html.Node
	Walk(root, func(n *html.Node) bool {
		if n.Type == html.ElementNode {
			if v, ok := Attr(n, "id"); ok && v == id {
				found = n
				return false
			}
		}
		return true
	})
	return found
}

// Contains reports whether n is root or a descendant of root.
func Contains(root, n *html.Node) bool {
	for cur := n; cur != nil; cur = cur.Parent {
		if cur == root {
			return true
		}
	}
	return false
}

// PrevElementSibling returns the nearest preceding sibling element of
// n, skipping text and comment nodes, or nil.
func PrevElementSibling(n *html.Node) *html.Node {
	for s := n.PrevSibling; s != nil; s = s.PrevSibling {
		if s.Type == html.ElementNode {
			return s
		}
	}
	return nil
}

// ChildElements returns the direct element children of n.
func ChildElements(n *html.Node) []*html.Node {
	var out []*html.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			out = append(out, c)
		}
	}
	return out
}

// TableHeaders returns the th elements inside the table's thead, in
// column order. A table without a thead yields nil.
func TableHeaders(table *html.Node) []*html.Node {
	thead := FirstByTag(table, "thead")
	if thead == nil {
		return nil
	}
	return ByTag(thead, "th")
}

// TableBodyRows returns the tr elements inside the table's tbody. A
// table without a tbody yields nil.
func TableBodyRows(table *html.Node) []*html.Node {
	tbody := FirstByTag(table, "tbody")
	if tbody == nil {
		return nil
	}
	return ByTag(tbody, "tr")
}

// RowCells returns the td elements that are direct children of a row.
func RowCells(row *html.Node) []*html.Node {
	var out []*html.Node
	for _, c := range ChildElements(row) {
		if c.Data == "td" {
			out = append(out, c)
		}
	}
	return out
}
