package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/forgeline/heavyshop/internal/domain"
	"github.com/forgeline/heavyshop/internal/domain/inventory"
	"github.com/forgeline/heavyshop/internal/domain/part"
	"github.com/forgeline/heavyshop/internal/domain/technician"
	"github.com/forgeline/heavyshop/internal/domain/workorder"
)

// InventoryRepository is the aggregate-scoped persistence port for Inventory.
// Loads always include the owned transaction collection so the aggregate is
// complete in memory.
type InventoryRepository interface {
	// GetByID returns the inventory with its transactions.
	// Returns domain.ErrNotFound if it does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*inventory.Inventory, error)

	// GetByPartAndWarehouse returns the single inventory row for the
	// (partID, warehouse) pair. Returns domain.ErrNotFound if none exists.
	GetByPartAndWarehouse(ctx context.Context, partID uuid.UUID, warehouse string) (*inventory.Inventory, error)

	// ListByPart returns every warehouse location holding the part.
	ListByPart(ctx context.Context, partID uuid.UUID) ([]inventory.Inventory, error)

	// ListLowStock returns active locations whose available quantity is at
	// or below their minimum level.
	ListLowStock(ctx context.Context) ([]inventory.Inventory, error)

	// Add inserts a new inventory with its transactions. Fails with
	// domain.ErrConflict if the (partID, warehouse) pair already exists.
	Add(ctx context.Context, inv *inventory.Inventory) error

	// Update persists the aggregate's current state and any new
	// transactions. Fails with domain.ErrConflict on a version mismatch
	// with a concurrent writer. Application services normally write through
	// the UnitOfWork instead, which batches Add/Update with event dispatch.
	Update(ctx context.Context, inv *inventory.Inventory) error
}

// WorkOrderRepository is the aggregate-scoped persistence port for WorkOrder.
type WorkOrderRepository interface {
	// GetByID returns the work order with its required parts and
	// notifications. Returns domain.ErrNotFound if it does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*workorder.WorkOrder, error)

	// GetByNumber looks a work order up by its business key.
	// Returns domain.ErrNotFound if it does not exist.
	GetByNumber(ctx context.Context, number string) (*workorder.WorkOrder, error)

	// List returns work orders filtered by status; a zero-value status
	// means all.
	List(ctx context.Context, status workorder.Status) ([]workorder.WorkOrder, error)

	// CountActiveByTechnician returns how many non-terminal work orders are
	// assigned to the technician. Used by the application layer to check
	// capacity before assignment, a cross-aggregate fact the WorkOrder
	// aggregate itself cannot see.
	CountActiveByTechnician(ctx context.Context, technicianID uuid.UUID) (int, error)

	// Add inserts a new work order with its children. Fails with
	// domain.ErrConflict if the number is already taken.
	Add(ctx context.Context, wo *workorder.WorkOrder) error

	// Update persists the aggregate and its children. Fails with
	// domain.ErrConflict on a version mismatch with a concurrent writer.
	Update(ctx context.Context, wo *workorder.WorkOrder) error
}

// PartRepository is the CRUD port for the parts catalog.
type PartRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*part.Part, error)
	GetByNumber(ctx context.Context, partNumber string) (*part.Part, error)
	List(ctx context.Context) ([]part.Part, error)
	Add(ctx context.Context, p *part.Part) error
	Update(ctx context.Context, p *part.Part) error
}

// TechnicianRepository is the CRUD port for the technician roster.
type TechnicianRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*technician.Technician, error)
	List(ctx context.Context) ([]technician.Technician, error)
	Add(ctx context.Context, tech *technician.Technician) error
	Update(ctx context.Context, tech *technician.Technician) error
}

// AggregateStore persists every change from one commit cycle as a single
// atomic operation. Implemented by the storage adapter; called only by the
// unit-of-work. Flush must either persist all registered roots or none:
// a version conflict or constraint violation rolls the whole batch back.
//
// Returns the count of persisted changes (rows written). A version mismatch
// against a concurrently-updated row fails with domain.ErrConflict so the
// caller can re-read and retry the whole cycle.
type AggregateStore interface {
	Flush(ctx context.Context, roots []domain.EventRaiser) (int, error)
}

// UnitOfWork tracks the aggregate roots mutated by one logical operation and
// commits them together. SaveChanges performs the collect-persist-dispatch
// protocol: queued domain events are gathered from every registered root in
// registration order, persistence happens atomically, and only on success
// are the events dispatched and the queues cleared. On persistence failure
// no event is dispatched and the queues remain intact.
type UnitOfWork interface {
	// Register adds an aggregate root to the current commit cycle.
	// Registering the same root twice is a no-op.
	Register(root domain.EventRaiser)

	// SaveChanges persists all registered roots and dispatches their events.
	// Returns the count of persisted changes.
	SaveChanges(ctx context.Context) (int, error)
}

// UnitOfWorkFactory builds a fresh UnitOfWork per logical operation; a unit
// of work covers exactly one commit cycle and cannot be reused.
type UnitOfWorkFactory interface {
	New() UnitOfWork
}

// EventSubscriber handles one dispatched domain event. A subscriber error is
// logged by the dispatcher and never unwinds the commit that produced the
// event.
type EventSubscriber func(ctx context.Context, event domain.Event) error

// EventDispatcher routes committed domain events to subscribers.
type EventDispatcher interface {
	// Subscribe registers a handler for the named event
	// (e.g. inventory.low_stock_detected).
	Subscribe(eventName string, handler EventSubscriber)

	// Dispatch delivers events to their subscribers in list order.
	// Delivery is at-most-once: failures are logged, not retried.
	Dispatch(ctx context.Context, events []domain.Event)
}

// PurchasingGateway submits reorder requests to the purchasing system.
// Implemented by the outbound HTTP adapter.
type PurchasingGateway interface {
	// SubmitReorder asks purchasing to buy quantity units of the part for
	// the given warehouse. Returns domain.ErrUnavailable when the
	// purchasing system cannot be reached.
	SubmitReorder(ctx context.Context, partID uuid.UUID, warehouse string, quantity int) error
}
