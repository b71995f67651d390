package slider

import "sync"

// Direction of the most recent accepted navigation
type Direction string

const (
	DirectionUp   Direction = "up"
	DirectionDown Direction = "down"
)

// State is the runtime state of one slider instance
type State struct {
	CurrentIndex  int
	AutoPlaying   bool
	Transitioning bool
	Direction     Direction
}

// Snapshot is what observers and the presentation layer see
type Snapshot struct {
	State
	Total int
	// Target is the index being transitioned to. It equals CurrentIndex
	// when no transition is in flight.
	Target int
}

// Controller owns the slider state. All navigation goes through it, and at
// most one transition is in flight at any time: requests that arrive while
// a transition is running are dropped.
//
// Observers registered with OnChange are called in mutation order and must
// not call back into the Controller.
type Controller struct {
	cfg   Config
	total int
	clock Clock

	mu              sync.Mutex
	state           State
	target          int
	active          bool
	disposed        bool
	autoplayTimer   Timer
	autoplayGen     uint64
	transitionTimer Timer
	transitionGen   uint64
	observers       map[uint64]func(Snapshot)
	nextObserver    uint64
	subs            []*Subscription
	gesture         *GestureDetector

	emitMu sync.Mutex
}

// NewController creates a controller for total slides. A nil clock means
// SystemClock. Autoplay does not start until Activate.
func NewController(total int, cfg Config, clock Clock) *Controller {
	if clock == nil {
		clock = SystemClock
	}
	if total < 0 {
		total = 0
	}
	return &Controller{
		cfg:   cfg,
		total: total,
		clock: clock,
		state: State{
			AutoPlaying: cfg.Autoplay,
			Direction:   DirectionDown,
		},
		observers: make(map[uint64]func(Snapshot)),
	}
}

// Config returns the controller's configuration
func (c *Controller) Config() Config {
	return c.cfg
}

// Total returns the number of slides
func (c *Controller) Total() int {
	return c.total
}

// Snapshot returns the current state
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

func (c *Controller) snapshotLocked() Snapshot {
	return Snapshot{State: c.state, Total: c.total, Target: c.target}
}

// OnChange registers fn to receive every state change. The returned func
// unregisters it.
func (c *Controller) OnChange(fn func(Snapshot)) func() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.disposed {
		return func() {}
	}
	c.nextObserver++
	id := c.nextObserver
	c.observers[id] = fn
	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		delete(c.observers, id)
	}
}

// Activate subscribes the controller to bus (keyboard, hover and, when
// enabled, pointer gestures) and starts autoplay. bus may be nil.
func (c *Controller) Activate(bus *Bus) {
	c.mu.Lock()
	if c.disposed || c.active {
		c.mu.Unlock()
		return
	}
	c.active = true
	c.gesture = NewGestureDetector(c.cfg.SwipeThreshold, c.cfg.EnableTouch,
		func() { c.Next() },
		func() { c.Previous() },
	)
	c.syncAutoplayLocked()
	c.mu.Unlock()

	if bus == nil {
		return
	}

	var subs []*Subscription
	if c.cfg.EnableKeyboard {
		subs = append(subs, bus.Subscribe(KeyDown, func(ev Event) bool {
			return c.HandleKey(ev.Key)
		}))
	}
	if c.cfg.PauseOnHover {
		subs = append(subs,
			bus.Subscribe(HoverEnter, func(Event) bool {
				c.PauseAutoplay()
				return false
			}),
			bus.Subscribe(HoverLeave, func(Event) bool {
				c.ResumeAutoplay()
				return false
			}),
		)
	}
	subs = append(subs, c.gesture.Attach(bus)...)

	c.mu.Lock()
	if c.disposed {
		c.mu.Unlock()
		for _, s := range subs {
			s.Release()
		}
		return
	}
	c.subs = append(c.subs, subs...)
	c.mu.Unlock()
}

// Gesture returns the pointer gesture detector created by Activate
func (c *Controller) Gesture() *GestureDetector {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.gesture
}

// Dispose cancels pending timers, releases every subscription and drops
// observers. Timer callbacks that fire afterwards do nothing.
func (c *Controller) Dispose() {
	c.mu.Lock()
	if c.disposed {
		c.mu.Unlock()
		return
	}
	c.disposed = true
	c.stopAutoplayLocked()
	if c.transitionTimer != nil {
		c.transitionTimer.Stop()
		c.transitionTimer = nil
	}
	c.transitionGen++
	subs := c.subs
	c.subs = nil
	c.observers = make(map[uint64]func(Snapshot))
	gesture := c.gesture
	c.mu.Unlock()

	for _, s := range subs {
		s.Release()
	}
	if gesture != nil {
		gesture.Cancel()
	}
}

// Disposed reports whether Dispose has been called
func (c *Controller) Disposed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.disposed
}

// Next moves to the following slide, wrapping or clamping per Config
func (c *Controller) Next() bool {
	c.mu.Lock()
	if !c.navigableLocked() {
		c.mu.Unlock()
		return false
	}
	target := c.state.CurrentIndex + 1
	if c.cfg.Infinite {
		target %= c.total
	} else if target > c.total-1 {
		target = c.total - 1
	}
	return c.finish(c.beginTransitionLocked(target, DirectionDown))
}

// Previous moves to the preceding slide, wrapping or clamping per Config
func (c *Controller) Previous() bool {
	c.mu.Lock()
	if !c.navigableLocked() {
		c.mu.Unlock()
		return false
	}
	target := c.state.CurrentIndex - 1
	if target < 0 {
		if c.cfg.Infinite {
			target = c.total - 1
		} else {
			target = 0
		}
	}
	return c.finish(c.beginTransitionLocked(target, DirectionUp))
}

// GoTo moves to index. Out-of-range indexes and the current index are
// ignored.
func (c *Controller) GoTo(index int) bool {
	c.mu.Lock()
	if c.disposed || c.state.Transitioning {
		c.mu.Unlock()
		return false
	}
	dir := DirectionDown
	if index < c.state.CurrentIndex {
		dir = DirectionUp
	}
	return c.finish(c.beginTransitionLocked(index, dir))
}

// PauseAutoplay stops automatic advancement
func (c *Controller) PauseAutoplay() bool {
	c.mu.Lock()
	if c.disposed || !c.state.AutoPlaying {
		c.mu.Unlock()
		return false
	}
	c.state.AutoPlaying = false
	c.syncAutoplayLocked()
	return c.finish(true)
}

// ResumeAutoplay restarts automatic advancement. It does nothing when
// autoplay is disabled by configuration.
func (c *Controller) ResumeAutoplay() bool {
	c.mu.Lock()
	if c.disposed || !c.cfg.Autoplay || c.state.AutoPlaying {
		c.mu.Unlock()
		return false
	}
	c.state.AutoPlaying = true
	c.syncAutoplayLocked()
	return c.finish(true)
}

// ToggleAutoplay pauses a running autoplay or resumes a paused one
func (c *Controller) ToggleAutoplay() bool {
	c.mu.Lock()
	playing := c.state.AutoPlaying
	c.mu.Unlock()

	if playing {
		return c.PauseAutoplay()
	}
	return c.ResumeAutoplay()
}

// HandleKey maps a keyboard key to a navigation. It reports whether the
// key was consumed.
func (c *Controller) HandleKey(key string) bool {
	if !c.cfg.EnableKeyboard {
		return false
	}
	switch key {
	case "ArrowUp", "ArrowLeft":
		c.Previous()
	case "ArrowDown", "ArrowRight":
		c.Next()
	case " ", "Space", "Spacebar":
		c.ToggleAutoplay()
	default:
		return false
	}
	return true
}

func (c *Controller) navigableLocked() bool {
	return !c.disposed && !c.state.Transitioning && c.total > 1
}

// beginTransitionLocked starts the two-phase transition to target: the
// flag is raised now and the index is committed after TransitionDuration.
func (c *Controller) beginTransitionLocked(target int, dir Direction) bool {
	if target < 0 || target >= c.total || target == c.state.CurrentIndex {
		return false
	}

	c.state.Transitioning = true
	c.state.Direction = dir
	c.target = target

	if c.cfg.TransitionDuration <= 0 {
		c.commitLocked()
		return true
	}

	c.transitionGen++
	gen := c.transitionGen
	c.transitionTimer = c.clock.AfterFunc(c.cfg.TransitionDuration, func() {
		c.commit(gen)
	})
	return true
}

func (c *Controller) commit(gen uint64) {
	c.mu.Lock()
	if c.disposed || gen != c.transitionGen || !c.state.Transitioning {
		c.mu.Unlock()
		return
	}
	c.transitionTimer = nil
	c.commitLocked()
	c.finish(true)
}

func (c *Controller) commitLocked() {
	c.state.CurrentIndex = c.target
	c.state.Transitioning = false
}

// syncAutoplayLocked tears down the autoplay timer and recreates it when
// autoplay should be running.
func (c *Controller) syncAutoplayLocked() {
	c.stopAutoplayLocked()
	if !c.active || c.disposed || !c.state.AutoPlaying || !c.cfg.Autoplay || c.total <= 1 {
		return
	}
	c.scheduleTickLocked(c.autoplayGen)
}

func (c *Controller) stopAutoplayLocked() {
	if c.autoplayTimer != nil {
		c.autoplayTimer.Stop()
		c.autoplayTimer = nil
	}
	c.autoplayGen++
}

func (c *Controller) scheduleTickLocked(gen uint64) {
	c.autoplayTimer = c.clock.AfterFunc(c.cfg.AutoplayInterval, func() {
		c.tick(gen)
	})
}

func (c *Controller) tick(gen uint64) {
	c.mu.Lock()
	if c.disposed || gen != c.autoplayGen {
		c.mu.Unlock()
		return
	}
	c.scheduleTickLocked(gen)
	c.mu.Unlock()

	c.Next()
}

// finish releases c.mu and, when changed, notifies observers with the
// state as of the mutation. emitMu is taken before c.mu is released so
// notifications keep mutation order.
func (c *Controller) finish(changed bool) bool {
	if !changed {
		c.mu.Unlock()
		return false
	}
	snap := c.snapshotLocked()
	observers := make([]func(Snapshot), 0, len(c.observers))
	ids := make([]uint64, 0, len(c.observers))
	for id := range c.observers {
		ids = append(ids, id)
	}
	sortIDs(ids)
	for _, id := range ids {
		observers = append(observers, c.observers[id])
	}

	c.emitMu.Lock()
	c.mu.Unlock()
	defer c.emitMu.Unlock()

	for _, fn := range observers {
		fn(snap)
	}
	return true
}
