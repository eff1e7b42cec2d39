// Package events dispatches game events to subscribed handlers.
// Dispatch is synchronous: Emit returns after every handler ran.
package events

// Type identifies different kinds of events
type Type string

// Event interface that all events must implement
type Event interface {
	Type() Type
}

// Handler is a function that processes events
type Handler func(Event)

// Subscription identifies a registered handler so it can be removed later
type Subscription struct {
	eventType Type
	id        uint64
}

type subscriber struct {
	id      uint64
	handler Handler
}

// Manager manages event subscriptions and dispatches
type Manager struct {
	subscribers map[Type][]subscriber
	nextID      uint64
}

// NewManager creates a new event manager
func NewManager() *Manager {
	return &Manager{
		subscribers: make(map[Type][]subscriber),
	}
}

// Subscribe registers a handler for a specific event type
func (m *Manager) Subscribe(eventType Type, handler Handler) Subscription {
	m.nextID++
	m.subscribers[eventType] = append(m.subscribers[eventType], subscriber{id: m.nextID, handler: handler})
	return Subscription{eventType: eventType, id: m.nextID}
}

// Unsubscribe removes a previously registered handler
func (m *Manager) Unsubscribe(sub Subscription) {
	subs, exists := m.subscribers[sub.eventType]
	if !exists {
		return
	}

	kept := make([]subscriber, 0, len(subs))
	for _, s := range subs {
		if s.id != sub.id {
			kept = append(kept, s)
		}
	}

	if len(kept) == 0 {
		delete(m.subscribers, sub.eventType)
	} else {
		m.subscribers[sub.eventType] = kept
	}
}

// Emit dispatches an event to all subscribed handlers in subscription order.
// A nil manager drops the event.
func (m *Manager) Emit(event Event) {
	if m == nil {
		return
	}
	for _, s := range m.subscribers[event.Type()] {
		s.handler(event)
	}
}
