package ecs

// Event is a generic ECS event payload.
type Event struct {
	Type string
	Data any
}

const EventContact = "contact"

// ContactEvent is pushed when two bodies start touching. A is the entity the
// handler was registered for (the player), B the other body.
type ContactEvent struct {
	A Entity
	B Entity
}

// EventQueue is a FIFO queue readable by every system in a frame.
type EventQueue struct {
	items []Event
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Peek returns the queued events without removing them.
func (q *EventQueue) Peek() []Event {
	if q == nil {
		return nil
	}
	return q.items
}

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

func (q *EventQueue) flush() {
	if q == nil {
		return
	}
	q.items = nil
}
