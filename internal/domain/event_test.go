package domain

import (
	"testing"
	"time"
)

type stubEvent struct {
	EventModel
	name string
}

func (e stubEvent) EventName() string { return e.name }

func TestEvents_RaiseAndClear(t *testing.T) {
	t.Parallel()

	var q Events

	if got := q.PendingEvents(); len(got) != 0 {
		t.Fatalf("new queue has %d pending events, want 0", len(got))
	}

	q.Raise(stubEvent{EventModel: NewEventModel(), name: "first"})
	q.Raise(stubEvent{EventModel: NewEventModel(), name: "second"})

	pending := q.PendingEvents()
	if len(pending) != 2 {
		t.Fatalf("PendingEvents() returned %d events, want 2", len(pending))
	}
	if pending[0].EventName() != "first" || pending[1].EventName() != "second" {
		t.Errorf("events out of raise order: [%s, %s]",
			pending[0].EventName(), pending[1].EventName())
	}

	q.ClearEvents()
	if got := q.PendingEvents(); len(got) != 0 {
		t.Errorf("after ClearEvents() queue has %d events, want 0", len(got))
	}
}

func TestNewEventModel(t *testing.T) {
	t.Parallel()

	before := time.Now().UTC().Add(-time.Second)
	m := NewEventModel()
	after := time.Now().UTC().Add(time.Second)

	if m.EventID().String() == "00000000-0000-0000-0000-000000000000" {
		t.Error("EventID() is the zero UUID")
	}
	if m.OccurredOn().Before(before) || m.OccurredOn().After(after) {
		t.Errorf("OccurredOn() = %s, not within test window", m.OccurredOn())
	}
}
