package slider

import (
	"math"
	"sync"
)

// Swipe is the outcome of a completed gesture
type Swipe int

const (
	SwipeNone Swipe = iota
	SwipeUp         // finger or cursor moved up: next slide
	SwipeDown       // moved down: previous slide
)

// GestureState is the transient tracking state of one pointer sequence
type GestureState struct {
	StartY    float64
	CurrentY  float64
	Dragging  bool
	Threshold float64
}

// GestureDetector turns vertical pointer movement into discrete swipes.
// Touch and mouse input go through the same state machine.
type GestureDetector struct {
	mu          sync.Mutex
	state       GestureState
	enabled     bool
	onSwipeUp   func()
	onSwipeDown func()
}

// NewGestureDetector returns a detector that calls onSwipeUp or onSwipeDown
// when a gesture ends at least threshold units from where it started.
// A disabled detector ignores all input.
func NewGestureDetector(threshold float64, enabled bool, onSwipeUp, onSwipeDown func()) *GestureDetector {
	if threshold <= 0 {
		threshold = DefaultSwipeThreshold
	}
	return &GestureDetector{
		state:       GestureState{Threshold: threshold},
		enabled:     enabled,
		onSwipeUp:   onSwipeUp,
		onSwipeDown: onSwipeDown,
	}
}

// Enabled reports whether the detector accepts input
func (g *GestureDetector) Enabled() bool {
	return g.enabled
}

// State returns a copy of the current tracking state
func (g *GestureDetector) State() GestureState {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state
}

// Start begins tracking at y
func (g *GestureDetector) Start(y float64) bool {
	if !g.enabled {
		return false
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	g.state.StartY = y
	g.state.CurrentY = y
	g.state.Dragging = true
	return true
}

// Move updates the tracked position. It reports true while a drag is in
// progress, meaning the page should not scroll.
func (g *GestureDetector) Move(y float64) bool {
	if !g.enabled {
		return false
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.state.Dragging {
		return false
	}
	g.state.CurrentY = y
	return true
}

// End finishes the gesture, fires at most one callback and resets to idle
func (g *GestureDetector) End() Swipe {
	if !g.enabled {
		return SwipeNone
	}
	g.mu.Lock()
	if !g.state.Dragging {
		g.mu.Unlock()
		return SwipeNone
	}
	delta := g.state.StartY - g.state.CurrentY
	threshold := g.state.Threshold
	g.resetLocked()
	g.mu.Unlock()

	if math.Abs(delta) < threshold {
		return SwipeNone
	}
	if delta > 0 {
		if g.onSwipeUp != nil {
			g.onSwipeUp()
		}
		return SwipeUp
	}
	if g.onSwipeDown != nil {
		g.onSwipeDown()
	}
	return SwipeDown
}

// Cancel aborts the gesture without firing
func (g *GestureDetector) Cancel() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.resetLocked()
}

func (g *GestureDetector) resetLocked() {
	g.state.StartY = 0
	g.state.CurrentY = 0
	g.state.Dragging = false
}

// Attach subscribes the detector to pointer events on bus. A disabled
// detector acquires nothing.
func (g *GestureDetector) Attach(bus *Bus) []*Subscription {
	if !g.enabled || bus == nil {
		return nil
	}
	return []*Subscription{
		bus.Subscribe(PointerDown, func(ev Event) bool {
			g.Start(ev.Y)
			return false
		}),
		bus.Subscribe(PointerMove, func(ev Event) bool {
			return g.Move(ev.Y)
		}),
		bus.Subscribe(PointerUp, func(ev Event) bool {
			return g.End() != SwipeNone
		}),
		bus.Subscribe(PointerCancel, func(ev Event) bool {
			g.Cancel()
			return false
		}),
	}
}
