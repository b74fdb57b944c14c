package anim

import "robot-rig/internal/pose"

type EventType int

const (
	// EventStep fires when the gait flips phase, i.e. a foot lands.
	EventStep EventType = iota
	EventWalkStart
	EventWalkStop
	EventSpinStart
	EventSpinStop
)

type Event struct {
	Type  EventType
	State State
	Tick  uint64
	Pose  pose.Pose
}

type EventHandler func(Event)

// EventBus fans animator events out to subscribers. Handlers run synchronously
// inside the callback that emitted the event.
type EventBus struct {
	handlers map[EventType][]EventHandler
}

func NewEventBus() *EventBus {
	return &EventBus{
		handlers: make(map[EventType][]EventHandler),
	}
}

func (eb *EventBus) Subscribe(t EventType, fn EventHandler) {
	eb.handlers[t] = append(eb.handlers[t], fn)
}

func (eb *EventBus) Emit(e Event) {
	for _, fn := range eb.handlers[e.Type] {
		fn(e)
	}
}
