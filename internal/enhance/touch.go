package enhance

import (
	"sync"
	"time"

	"golang.org/x/net/html"

	"github.com/KunalPoonia/smart-attendance-system/internal/dom"
	"github.com/KunalPoonia/smart-attendance-system/internal/schedule"
)

const (
	pressedTransform = "scale(0.97)"
	pressedOpacity   = "0.85"
)

// TouchState is the transient per-element touch-feedback state.
type TouchState string

const (
	TouchIdle      TouchState = "idle"
	TouchPressed   TouchState = "pressed"
	TouchReleasing TouchState = "releasing"
)

// touchController applies and reverts the transient pressed styling.
// Each element reverts on its own timer; the state map holds only
// non-idle elements and is never persisted.
//
// mu is the engine lock. The revert runs on a release-timer goroutine
// and writes the element's style attribute, which the width-sensitive
// passes also write from the debounce goroutine, so every styling
// mutation here must hold the same lock the passes hold.
type touchController struct {
	mu     *sync.Mutex
	states map[*html.Node]TouchState
	timers *schedule.ReleaseTimers
}

func newTouchController(mu *sync.Mutex, delay time.Duration) *touchController {
	return &touchController{
		mu:     mu,
		states: make(map[*html.Node]TouchState),
		timers: schedule.NewReleaseTimers(delay),
	}
}

// press applies the pressed styling. A press during the releasing
// window cancels the pending revert.
func (t *touchController) press(n *html.Node) {
	t.timers.Cancel(n)

	t.mu.Lock()
	defer t.mu.Unlock()
	t.states[n] = TouchPressed
	dom.SetStyle(n, "transform", pressedTransform)
	dom.SetStyle(n, "opacity", pressedOpacity)
}

// release schedules the styling revert after the fixed delay.
func (t *touchController) release(n *html.Node) {
	t.mu.Lock()
	if t.states[n] != TouchPressed {
		t.mu.Unlock()
		return
	}
	t.states[n] = TouchReleasing
	t.mu.Unlock()

	t.timers.Schedule(n, func() { t.revert(n) })
}

func (t *touchController) revert(n *html.Node) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.states, n)
	dom.RemoveStyle(n, "transform")
	dom.RemoveStyle(n, "opacity")
}

// state returns the element's current touch state.
func (t *touchController) state(n *html.Node) TouchState {
	t.mu.Lock()
	defer t.mu.Unlock()
	if s, ok := t.states[n]; ok {
		return s
	}
	return TouchIdle
}

// stopAll cancels pending reverts and clears the transient styling of
// any non-idle element.
func (t *touchController) stopAll() {
	t.timers.StopAll()

	t.mu.Lock()
	defer t.mu.Unlock()
	for n := range t.states {
		dom.RemoveStyle(n, "transform")
		dom.RemoveStyle(n, "opacity")
	}
	t.states = make(map[*html.Node]TouchState)
}
