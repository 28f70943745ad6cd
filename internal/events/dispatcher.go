package events

import (
	"sync"

	"golang.org/x/net/html"
)

// Type identifies an event kind.
type Type string

const (
	Click      Type = "click"
	TouchStart Type = "touchstart"
	TouchEnd   Type = "touchend"
)

// Event is a dispatched interaction. Target is the node the event
// originates at; the event bubbles from there to the document root.
type Event struct {
	Type      Type
	Target    *html.Node
	prevented bool
}

// PreventDefault marks the event's default action as suppressed. The
// dispatcher itself performs no default action; the flag is observable
// by the dispatching caller via DefaultPrevented.
func (e *Event) PreventDefault() { e.prevented = true }

// DefaultPrevented reports whether a handler suppressed the default
// action.
func (e *Event) DefaultPrevented() bool { return e.prevented }

// Handler reacts to a dispatched event.
type Handler func(*Event)

// Subscription detaches a bound handler when cancelled. Cancel is safe
// to call more than once.
type Subscription struct {
	cancel func()
}

// Cancel detaches the handler.
func (s Subscription) Cancel() {
	if s.cancel != nil {
		s.cancel()
	}
}

type binding struct {
	id      uint64
	handler Handler
}

// Dispatcher routes events to handlers bound on document nodes.
type Dispatcher struct {
	mu     sync.Mutex
	nextID uint64
	bound  map[*html.Node]map[Type][]binding
}

// NewDispatcher creates an empty dispatcher.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{bound: make(map[*html.Node]map[Type][]binding)}
}

// Bind attaches a handler to a node for the given event type. Handlers
// bound to the same node and type fire in binding order.
func (d *Dispatcher) Bind(n *html.Node, t Type, h Handler) Subscription {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.nextID++
	id := d.nextID
	byType := d.bound[n]
	if byType == nil {
		byType = make(map[Type][]binding)
		d.bound[n] = byType
	}
	byType[t] = append(byType[t], binding{id: id, handler: h})

	return Subscription{cancel: func() { d.unbind(n, t, id) }}
}

func (d *Dispatcher) unbind(n *html.Node, t Type, id uint64) {
	d.mu.Lock()
	defer d.mu.Unlock()

	byType := d.bound[n]
	if byType == nil {
		return
	}
	list := byType[t]
	for i := range list {
		if list[i].id == id {
			byType[t] = append(list[:i], list[i+1:]...)
			break
		}
	}
	if len(byType[t]) == 0 {
		delete(byType, t)
	}
	if len(byType) == 0 {
		delete(d.bound, n)
	}
}

// HandlerCount returns the number of handlers bound to a node for the
// given type. Used by idempotency tests.
func (d *Dispatcher) HandlerCount(n *html.Node, t Type) int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.bound[n][t])
}

// Dispatch delivers an event, bubbling from the target node through
// each ancestor to the root. Handler slices are copied under the lock
// and invoked outside it, so handlers may bind, cancel, or re-dispatch
// synchronously.
func (d *Dispatcher) Dispatch(ev *Event) {
	for n := ev.Target; n != nil; n = n.Parent {
		for _, h := range d.handlersFor(n, ev.Type) {
			h(ev)
		}
	}
}

// Click dispatches a click event targeted at n and returns it, so the
// caller can inspect DefaultPrevented.
func (d *Dispatcher) Click(n *html.Node) *Event {
	ev := &Event{Type: Click, Target: n}
	d.Dispatch(ev)
	return ev
}

func (d *Dispatcher) handlersFor(n *html.Node, t Type) []Handler {
	d.mu.Lock()
	defer d.mu.Unlock()

	list := d.bound[n][t]
	if len(list) == 0 {
		return nil
	}
	out := make([]Handler, len(list))
	for i, b := range list {
		out[i] = b.handler
	}
	return out
}
