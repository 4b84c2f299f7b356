package ecs

// EventType identifies the payload carried by an Event.
type EventType string

const (
	EventContact    EventType = "contact"
	EventBoundsExit EventType = "bounds_exit"
)

// Event is a generic ECS event payload.
type Event struct {
	Type EventType
	Data any
}

// ContactKind identifies which pair of groups started touching.
type ContactKind string

const (
	ContactBulletEnemy  ContactKind = "bullet_enemy"
	ContactPlayerEnemy  ContactKind = "player_enemy"
	ContactPlayerMeteor ContactKind = "player_meteor"
)

// ContactEvent is emitted once per contact onset. A is always the first
// group named by Kind (bullet or player), B the second.
type ContactEvent struct {
	Kind ContactKind
	A    Entity
	B    Entity
}

// BoundsExitEvent is emitted when an entity touches or crosses the world edge.
type BoundsExitEvent struct {
	Entity Entity
}

// EventQueue is a simple FIFO queue.
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

// PushContact queues a contact onset.
func (q *EventQueue) PushContact(kind ContactKind, a, b Entity) {
	q.Push(Event{Type: EventContact, Data: ContactEvent{Kind: kind, A: a, B: b}})
}

// PushBoundsExit queues a bounds exit.
func (q *EventQueue) PushBoundsExit(e Entity) {
	q.Push(Event{Type: EventBoundsExit, Data: BoundsExitEvent{Entity: e}})
}

// Len returns the number of pending events.
func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
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

// Clear discards pending events.
func (q *EventQueue) Clear() {
	if q == nil {
		return
	}
	q.items = nil
}
