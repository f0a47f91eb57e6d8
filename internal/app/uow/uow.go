// Package uow implements the unit of work: it tracks the aggregate roots
// mutated by one logical operation and guarantees that their domain events
// fire if and only if the state they describe durably persisted.
package uow

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/forgeline/heavyshop/internal/domain"
	"github.com/forgeline/heavyshop/internal/ports"
)

// ErrAlreadyCommitted is returned when SaveChanges is called a second time on
// the same unit of work. A unit of work covers exactly one commit cycle.
var ErrAlreadyCommitted = errors.New("unit of work already committed")

// Compile-time check that UnitOfWork implements ports.UnitOfWork.
var _ ports.UnitOfWork = (*UnitOfWork)(nil)

// UnitOfWork collects aggregate roots and commits them in one cycle:
//
//  1. Queued events are gathered from every registered root, in registration
//     order. The order is not globally meaningful but is stable per call.
//  2. All roots are persisted as a single atomic operation. On failure the
//     error propagates, no event is dispatched, and the queues stay attached
//     to their aggregates so the caller may retry or discard.
//  3. On success the collected events are dispatched in order. A subscriber
//     failure is logged and does not unwind the already-committed state.
//  4. Every root's queue is cleared, whether or not dispatch succeeded, so
//     the same event is never delivered twice from the same instance.
//
// The one accepted gap: state can persist and a subscriber can still fail
// afterwards. Those misses are logged for operators; there is no outbox.
type UnitOfWork struct {
	store      ports.AggregateStore
	dispatcher ports.EventDispatcher
	logger     *slog.Logger

	mu        sync.Mutex
	roots     []domain.EventRaiser
	committed bool
}

// New creates a unit of work for one commit cycle.
func New(store ports.AggregateStore, dispatcher ports.EventDispatcher, logger *slog.Logger) *UnitOfWork {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &UnitOfWork{
		store:      store,
		dispatcher: dispatcher,
		logger:     logger,
	}
}

// Register adds an aggregate root to the commit cycle. Registering the same
// root again is a no-op; registration order determines event collection
// order. Register is safe for concurrent use, though aggregates themselves
// follow a single-writer model.
func (u *UnitOfWork) Register(root domain.EventRaiser) {
	if root == nil {
		return
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	if u.committed {
		return
	}
	for _, existing := range u.roots {
		if existing == root {
			return
		}
	}
	u.roots = append(u.roots, root)
}

// SaveChanges runs the commit cycle and returns the count of persisted
// changes. Returns ErrAlreadyCommitted if called more than once.
func (u *UnitOfWork) SaveChanges(ctx context.Context) (int, error) {
	u.mu.Lock()
	if u.committed {
		u.mu.Unlock()
		return 0, ErrAlreadyCommitted
	}
	u.committed = true
	// Snapshot under lock. Once committed=true, Register cannot append, so
	// iterating the snapshot without the lock is safe.
	roots := u.roots
	u.mu.Unlock()

	// Collect before persisting: the event list must reflect exactly the
	// state change that is about to be written.
	var events []domain.Event
	for _, root := range roots {
		events = append(events, root.PendingEvents()...)
	}

	count, err := u.store.Flush(ctx, roots)
	if err != nil {
		u.logger.ErrorContext(ctx, "persistence failed, no events dispatched",
			slog.String("operation", "UnitOfWork.SaveChanges"),
			slog.Int("aggregates", len(roots)),
			slog.Int("queued_events", len(events)),
			slog.Any("error", err),
		)
		return 0, fmt.Errorf("flushing %d aggregates: %w", len(roots), err)
	}

	if len(events) > 0 {
		u.dispatcher.Dispatch(ctx, events)
	}

	for _, root := range roots {
		root.ClearEvents()
	}

	return count, nil
}

// Factory builds a fresh unit of work per logical operation. Application
// services hold a Factory rather than a UnitOfWork because each commit cycle
// needs its own instance.
type Factory struct {
	Store      ports.AggregateStore
	Dispatcher ports.EventDispatcher
	Logger     *slog.Logger
}

// New creates a unit of work wired to the factory's store and dispatcher.
func (f Factory) New() ports.UnitOfWork {
	return New(f.Store, f.Dispatcher, f.Logger)
}
