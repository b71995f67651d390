package slider

import (
	"sort"
	"sync"
)

// EventKind identifies an input event delivered through a Bus
type EventKind int

const (
	KeyDown EventKind = iota
	PointerDown
	PointerMove
	PointerUp
	PointerCancel
	HoverEnter
	HoverLeave
)

func (k EventKind) String() string {
	switch k {
	case KeyDown:
		return "keydown"
	case PointerDown:
		return "pointerdown"
	case PointerMove:
		return "pointermove"
	case PointerUp:
		return "pointerup"
	case PointerCancel:
		return "pointercancel"
	case HoverEnter:
		return "hoverenter"
	case HoverLeave:
		return "hoverleave"
	}
	return "unknown"
}

// PointerSource tells touch input apart from mouse drags. Both feed the
// same gesture state machine.
type PointerSource string

const (
	SourceTouch PointerSource = "touch"
	SourceMouse PointerSource = "mouse"
)

// Event is one raw input from the page hosting a slider
type Event struct {
	Kind   EventKind
	Key    string        // KeyDown
	Y      float64       // pointer events, vertical coordinate only
	Source PointerSource // pointer events
}

// Handler consumes an event and reports whether the page should suppress
// the event's default action.
type Handler func(Event) bool

// Bus is the input surface of a single slider instance. Handlers are
// registered through Subscriptions, which the owner must release.
type Bus struct {
	mu       sync.Mutex
	nextID   uint64
	handlers map[EventKind]map[uint64]Handler
}

func NewBus() *Bus {
	return &Bus{handlers: make(map[EventKind]map[uint64]Handler)}
}

// Subscription is a registered handler. Release is idempotent.
type Subscription struct {
	bus  *Bus
	kind EventKind
	id   uint64
	once sync.Once
}

// Subscribe registers h for events of the given kind
func (b *Bus) Subscribe(kind EventKind, h Handler) *Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	if b.handlers[kind] == nil {
		b.handlers[kind] = make(map[uint64]Handler)
	}
	b.handlers[kind][b.nextID] = h
	return &Subscription{bus: b, kind: kind, id: b.nextID}
}

// Release removes the handler from its bus
func (s *Subscription) Release() {
	s.once.Do(func() {
		s.bus.mu.Lock()
		defer s.bus.mu.Unlock()
		delete(s.bus.handlers[s.kind], s.id)
	})
}

// Publish delivers ev to every handler of its kind in subscription order.
// Handlers run without the bus lock held.
func (b *Bus) Publish(ev Event) bool {
	b.mu.Lock()
	ids := make([]uint64, 0, len(b.handlers[ev.Kind]))
	for id := range b.handlers[ev.Kind] {
		ids = append(ids, id)
	}
	sortIDs(ids)
	hs := make([]Handler, 0, len(ids))
	for _, id := range ids {
		hs = append(hs, b.handlers[ev.Kind][id])
	}
	b.mu.Unlock()

	prevent := false
	for _, h := range hs {
		if h(ev) {
			prevent = true
		}
	}
	return prevent
}

// Len returns the number of live subscriptions
func (b *Bus) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()

	n := 0
	for _, hs := range b.handlers {
		n += len(hs)
	}
	return n
}

func sortIDs(ids []uint64) {
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
}
