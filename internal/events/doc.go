// Package events provides a handler registry with bubbling dispatch
// for the enhancement engine.
//
// The engine binds click and touch handlers to document nodes; user
// interaction arrives as dispatched events that bubble from the target
// node up through its ancestors, invoking handlers in binding order at
// each level. Bindings return a Subscription whose Cancel method
// detaches the handler, giving tests deterministic teardown instead of
// relying on garbage collection of detached nodes.
//
// Dispatch follows the page's single-threaded event model: callers are
// expected to drive Dispatch from one goroutine at a time (handlers may
// re-dispatch synchronously, as a nav auto-close handler does when it
// triggers the menu toggler). Only registry mutation is locked.
package events
