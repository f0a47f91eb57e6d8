package domain

import (
	"time"

	"github.com/google/uuid"
)

// Event is an immutable fact describing something that happened inside an
// aggregate. Events carry snapshot payloads (quantities before and after a
// change), never live references to aggregate state, so a dispatched event
// stays valid regardless of what happens to the aggregate afterwards.
//
// Events are queued on the aggregate that raised them and consumed exactly
// once by the unit-of-work after durable persistence succeeds.
type Event interface {
	// EventID returns the unique identifier of this event instance.
	EventID() uuid.UUID

	// EventName returns a stable, dot-separated name for subscriber routing,
	// e.g. "inventory.low_stock_detected".
	EventName() string

	// OccurredOn returns the instant the fact was recorded.
	OccurredOn() time.Time
}

// EventModel supplies the identity and timestamp fields shared by all events.
// Concrete event types embed it by value; construct with NewEventModel.
type EventModel struct {
	ID         uuid.UUID
	RecordedAt time.Time
}

// NewEventModel creates the embedded identity portion of a new event.
func NewEventModel() EventModel {
	return EventModel{ID: uuid.New(), RecordedAt: time.Now().UTC()}
}

func (m EventModel) EventID() uuid.UUID    { return m.ID }
func (m EventModel) OccurredOn() time.Time { return m.RecordedAt }

// EventRaiser is implemented by aggregate roots that queue domain events.
// The unit-of-work collects events from every registered root before
// persisting and clears them after dispatch.
type EventRaiser interface {
	// PendingEvents returns the queued events in the order they were raised.
	// The returned slice must not be mutated by the caller.
	PendingEvents() []Event

	// ClearEvents empties the queue. Called by the unit-of-work after
	// dispatch so the same event is never delivered twice from the same
	// aggregate instance.
	ClearEvents()
}

// Events is the pending-event capability that aggregate roots embed. It is a
// small composable struct rather than a base-class hierarchy: an aggregate
// gains event queueing by embedding Events and calling Raise from its
// mutating methods.
//
// Events is not safe for concurrent use; aggregates follow a
// single-writer-per-instance model (load, mutate, persist).
type Events struct {
	pending []Event
}

// Raise appends an event to the pending queue.
func (e *Events) Raise(ev Event) {
	e.pending = append(e.pending, ev)
}

// PendingEvents implements EventRaiser.
func (e *Events) PendingEvents() []Event {
	return e.pending
}

// ClearEvents implements EventRaiser.
func (e *Events) ClearEvents() {
	e.pending = nil
}
