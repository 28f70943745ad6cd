package enhance

import (
	"context"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"
	"golang.org/x/net/html"

	"github.com/KunalPoonia/smart-attendance-system/internal/config"
	"github.com/KunalPoonia/smart-attendance-system/internal/dom"
	"github.com/KunalPoonia/smart-attendance-system/internal/events"
	"github.com/KunalPoonia/smart-attendance-system/internal/logging"
	"github.com/KunalPoonia/smart-attendance-system/internal/schedule"
	"github.com/KunalPoonia/smart-attendance-system/internal/viewport"
)

// Engine applies the enhancement passes to one page. It owns the
// resize debouncer and the touch-feedback timers, so its lifecycle is
// explicit: construct, Bootstrap (or RunAll), feed Resize, Close.
type Engine struct {
	page   dom.Page
	events *events.Dispatcher
	cfg    *config.Config
	bp     viewport.Breakpoints

	// width is read lock-free by event handlers that must not block
	// on a pass in progress.
	width atomic.Int64

	// mu serializes pass runs and panel transitions against the
	// debounce timer goroutine.
	mu sync.Mutex

	debounce *schedule.Debouncer
	touch    *touchController
	panels   []*Panel
	subs     []events.Subscription

	navBound    bool
	touchBound  bool
	scrollBound bool
}

// New creates an engine over the given page at an initial viewport
// width.
func New(page dom.Page, dispatcher *events.Dispatcher, cfg *config.Config, width int) *Engine {
	e := &Engine{
		page:   page,
		events: dispatcher,
		cfg:    cfg,
		bp:     cfg.PageBreakpoints(),
	}
	e.touch = newTouchController(&e.mu, cfg.ReleaseDelay())
	e.width.Store(int64(width))
	e.debounce = schedule.NewDebouncer(cfg.Quiet(), e.runWidthSensitive)
	return e
}

// Width returns the viewport width the engine currently holds.
func (e *Engine) Width() int {
	return int(e.width.Load())
}

// CurrentClass classifies the current width. Recomputed on every call,
// never cached.
func (e *Engine) CurrentClass() viewport.Class {
	return e.bp.Classify(e.Width())
}

// Panels returns the collapsible panels created so far, in enhancement
// order.
func (e *Engine) Panels() []*Panel {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]*Panel, len(e.panels))
	copy(out, e.panels)
	return out
}

// TouchState returns the transient touch-feedback state for an
// element.
func (e *Engine) TouchState(n *html.Node) TouchState {
	return e.touch.state(n)
}

// Bootstrap waits for the page to signal readiness, then runs every
// pass once in order and logs the readiness acknowledgment. If the
// page never becomes ready the engine never activates; ctx bounds the
// wait.
func (e *Engine) Bootstrap(ctx context.Context, ready <-chan struct{}) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-ready:
	}

	e.RunAll()
	logging.Info("responsive enhancements ready",
		zap.Int("width", e.Width()),
		zap.String("class", e.CurrentClass().String()),
	)
	return nil
}

// RunAll runs every pass once, in the fixed order. Structural passes
// are guarded by their document markers and the once-only binding
// passes by engine flags, so repeated invocation leaves the document
// unchanged.
func (e *Engine) RunAll() {
	e.mu.Lock()
	defer e.mu.Unlock()

	class := e.CurrentClass()
	for _, p := range passTable {
		logging.LogPass(p.info.Name, class.String(), p.info.WidthSensitive)
		p.run(e, class)
	}
}

// Resize records a new viewport width and feeds the debouncer. The
// width-sensitive passes re-run once the resize burst goes quiet.
func (e *Engine) Resize(width int) {
	e.width.Store(int64(width))
	logging.LogViewport(width, e.CurrentClass().String())
	e.debounce.Notify()
}

// runWidthSensitive re-runs only the passes whose outcome depends on
// the viewport width. The once-only binding passes are skipped; their
// effects are event bindings, not viewport-dependent state.
func (e *Engine) runWidthSensitive() {
	e.mu.Lock()
	defer e.mu.Unlock()

	class := e.CurrentClass()
	for _, p := range passTable {
		if !p.info.WidthSensitive {
			continue
		}
		logging.LogPass(p.info.Name, class.String(), true)
		p.run(e, class)
	}
}

// Close cancels the pending debounce callback and touch timers and
// detaches every handler the engine bound.
func (e *Engine) Close() {
	e.debounce.Stop()
	e.touch.stopAll()

	e.mu.Lock()
	defer e.mu.Unlock()
	for _, sub := range e.subs {
		sub.Cancel()
	}
	e.subs = nil
}

// bind registers a handler and retains the subscription for Close.
func (e *Engine) bind(n *html.Node, t events.Type, h events.Handler) events.Subscription {
	sub := e.events.Bind(n, t, h)
	e.subs = append(e.subs, sub)
	return sub
}
