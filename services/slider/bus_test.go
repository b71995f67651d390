package slider

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBusPublishOrderAndRelease(t *testing.T) {
	bus := NewBus()
	var calls []string

	first := bus.Subscribe(KeyDown, func(ev Event) bool {
		calls = append(calls, "first:"+ev.Key)
		return false
	})
	bus.Subscribe(KeyDown, func(ev Event) bool {
		calls = append(calls, "second:"+ev.Key)
		return true
	})
	bus.Subscribe(HoverEnter, func(Event) bool {
		calls = append(calls, "hover")
		return false
	})
	assert.Equal(t, 3, bus.Len())

	prevented := bus.Publish(Event{Kind: KeyDown, Key: "ArrowDown"})
	assert.True(t, prevented)
	assert.Equal(t, []string{"first:ArrowDown", "second:ArrowDown"}, calls)

	first.Release()
	first.Release()
	assert.Equal(t, 2, bus.Len())

	calls = nil
	bus.Publish(Event{Kind: KeyDown, Key: "x"})
	assert.Equal(t, []string{"second:x"}, calls)
}

func TestBusPublishWithoutHandlers(t *testing.T) {
	bus := NewBus()
	assert.False(t, bus.Publish(Event{Kind: PointerMove, Y: 10}))
}

func TestEventKindString(t *testing.T) {
	assert.Equal(t, "keydown", KeyDown.String())
	assert.Equal(t, "pointerup", PointerUp.String())
	assert.Equal(t, "unknown", EventKind(99).String())
}
