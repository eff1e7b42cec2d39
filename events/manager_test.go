package events

import "testing"

type pingEvent struct{ n int }

func (pingEvent) Type() Type { return "ping" }

type pongEvent struct{}

func (pongEvent) Type() Type { return "pong" }

func TestEmitReachesSubscribersInOrder(t *testing.T) {
	m := NewManager()
	var got []int
	m.Subscribe("ping", func(e Event) { got = append(got, e.(pingEvent).n) })
	m.Subscribe("ping", func(e Event) { got = append(got, e.(pingEvent).n*10) })

	m.Emit(pingEvent{n: 2})

	if len(got) != 2 || got[0] != 2 || got[1] != 20 {
		t.Fatalf("got %v, want [2 20]", got)
	}
}

func TestEmitIgnoresOtherTypes(t *testing.T) {
	m := NewManager()
	called := false
	m.Subscribe("ping", func(Event) { called = true })

	m.Emit(pongEvent{})

	if called {
		t.Fatal("ping handler received a pong event")
	}
}

func TestUnsubscribe(t *testing.T) {
	m := NewManager()
	var first, second int
	sub := m.Subscribe("ping", func(Event) { first++ })
	m.Subscribe("ping", func(Event) { second++ })

	m.Emit(pingEvent{})
	m.Unsubscribe(sub)
	m.Emit(pingEvent{})

	if first != 1 {
		t.Errorf("first = %d, want 1", first)
	}
	if second != 2 {
		t.Errorf("second = %d, want 2", second)
	}
}

func TestUnsubscribeLastHandlerDropsType(t *testing.T) {
	m := NewManager()
	sub := m.Subscribe("ping", func(Event) {})
	m.Unsubscribe(sub)

	if _, ok := m.subscribers["ping"]; ok {
		t.Fatal("empty subscriber list was kept")
	}
}

func TestNilManagerEmit(t *testing.T) {
	var m *Manager
	m.Emit(pingEvent{})
}
