package uow

import (
	"context"
	"log/slog"
	"sync"

	"github.com/forgeline/heavyshop/internal/domain"
	"github.com/forgeline/heavyshop/internal/ports"
)

// Compile-time check that Dispatcher implements ports.EventDispatcher.
var _ ports.EventDispatcher = (*Dispatcher)(nil)

// Dispatcher is an in-process subscriber registry. Subscribers run
// synchronously in event order within the committing call, which keeps
// dispatch call-site-local to the unit of work: a slow subscriber stalls the
// caller of SaveChanges, and a failing one is logged and skipped.
type Dispatcher struct {
	logger *slog.Logger

	mu       sync.RWMutex
	handlers map[string][]ports.EventSubscriber
}

// NewDispatcher creates an empty registry.
func NewDispatcher(logger *slog.Logger) *Dispatcher {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Dispatcher{
		logger:   logger,
		handlers: make(map[string][]ports.EventSubscriber),
	}
}

// Subscribe registers a handler for the named event. Handlers for the same
// name run in subscription order.
func (d *Dispatcher) Subscribe(eventName string, handler ports.EventSubscriber) {
	if handler == nil {
		return
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	d.handlers[eventName] = append(d.handlers[eventName], handler)
}

// Dispatch delivers each event to its subscribers in list order. Delivery is
// at-most-once relative to the commit that produced the events: a subscriber
// error is logged at ERROR and swallowed, never unwinding the persisted
// state. Operators monitor these logs for missed deliveries.
func (d *Dispatcher) Dispatch(ctx context.Context, events []domain.Event) {
	for _, event := range events {
		d.mu.RLock()
		handlers := d.handlers[event.EventName()]
		d.mu.RUnlock()

		for _, handler := range handlers {
			if err := handler(ctx, event); err != nil {
				d.logger.ErrorContext(ctx, "event subscriber failed",
					slog.String("operation", "Dispatcher.Dispatch"),
					slog.String("event", event.EventName()),
					slog.String("event_id", event.EventID().String()),
					slog.Any("error", err),
				)
			}
		}
	}
}
