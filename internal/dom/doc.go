// Package dom provides helpers for querying and mutating a parsed HTML
// document tree, plus the typed page adapter the enhancement engine
// works against.
//
// The document tree is the golang.org/x/net/html node tree. Nothing in
// this package keeps state outside the tree itself: class lists,
// attributes, and inline styles are read from and written to the nodes
// directly, so a query performed after a mutation always observes that
// mutation. This is what makes the engine's idempotency markers
// reliable.
//
// # Page Adapter
//
// The Page interface exposes named accessors for the structural
// patterns the enhancement passes target (filter forms, tables, the
// navigation toggler, stat cards, and so on). The engine depends on
// this capability contract rather than on raw selector strings, which
// isolates it from markup changes and lets tests run it against small
// handwritten documents.
//
// HTMLPage is the production implementation, driven by a Selectors
// value naming the class and id hooks present in the server-rendered
// markup.
package dom
