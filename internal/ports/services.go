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

// InventoryService defines the service port for stock operations.
// Implemented by the application layer; called by inbound adapters. Every
// mutating method runs a full load-mutate-commit cycle through the unit of
// work, so domain events fire only after the change durably persisted.
type InventoryService interface {
	// CreateInventory opens a new stock location for a part at a warehouse.
	// Returns domain.ErrConflict if the (part, warehouse) pair exists.
	CreateInventory(ctx context.Context, partID uuid.UUID, warehouse, binLocation string, minLevel, maxLevel int) (*inventory.Inventory, error)

	// GetInventory returns one inventory with its transaction history.
	GetInventory(ctx context.Context, id uuid.UUID) (*inventory.Inventory, error)

	// GetByPartAndWarehouse returns the inventory for a (part, warehouse) pair.
	GetByPartAndWarehouse(ctx context.Context, partID uuid.UUID, warehouse string) (*inventory.Inventory, error)

	// ListLowStock returns active locations at or below their minimum level.
	ListLowStock(ctx context.Context) ([]inventory.Inventory, error)

	// ReceiveParts adds delivered stock.
	ReceiveParts(ctx context.Context, id uuid.UUID, quantity int, receivedBy, referenceNumber string) (*inventory.Inventory, error)

	// ReserveParts soft-holds stock for a work order.
	ReserveParts(ctx context.Context, id uuid.UUID, quantity int, workOrderID uuid.UUID, requestedBy string) (*inventory.Inventory, error)

	// ReleaseReservation gives back part of a hold.
	ReleaseReservation(ctx context.Context, id uuid.UUID, quantity int, workOrderID uuid.UUID, releasedBy string) (*inventory.Inventory, error)

	// IssueParts removes reserved stock for a work order.
	IssueParts(ctx context.Context, id uuid.UUID, quantity int, workOrderID uuid.UUID, issuedBy string) (*inventory.Inventory, error)

	// ReturnParts puts unused work-order stock back on hand.
	ReturnParts(ctx context.Context, id uuid.UUID, quantity int, workOrderID uuid.UUID, returnedBy string) (*inventory.Inventory, error)

	// AdjustQuantity sets on-hand to an absolute count after a cycle count.
	AdjustQuantity(ctx context.Context, id uuid.UUID, newQuantity int, reason, adjustedBy string) (*inventory.Inventory, error)

	// UpdateStockLevels changes the reorder thresholds.
	UpdateStockLevels(ctx context.Context, id uuid.UUID, minLevel, maxLevel, reorderQty int) (*inventory.Inventory, error)

	// MoveToBinLocation relocates stock within the warehouse.
	MoveToBinLocation(ctx context.Context, id uuid.UUID, binLocation, movedBy string) (*inventory.Inventory, error)

	// DeactivateInventory retires an empty location.
	DeactivateInventory(ctx context.Context, id uuid.UUID) error
}

// WorkOrderService defines the service port for repair-job operations.
type WorkOrderService interface {
	// CreateWorkOrder opens a pending work order. A zero serviceAddress
	// means shop work rather than a field repair.
	// Returns domain.ErrConflict if the number is taken.
	CreateWorkOrder(ctx context.Context, number string, equipment domain.EquipmentIdentifier, customerID uuid.UUID, description string, estimatedCost domain.Money, serviceAddress domain.Address) (*workorder.WorkOrder, error)

	// GetWorkOrder returns one work order with its children.
	GetWorkOrder(ctx context.Context, id uuid.UUID) (*workorder.WorkOrder, error)

	// GetByNumber looks a work order up by its business key.
	GetByNumber(ctx context.Context, number string) (*workorder.WorkOrder, error)

	// ListWorkOrders returns work orders, optionally filtered by status.
	ListWorkOrders(ctx context.Context, status workorder.Status) ([]workorder.WorkOrder, error)

	// AssignTechnician validates the technician's capacity against their
	// active work-order count, then assigns. Returns domain.ErrConflict
	// when the technician is at their concurrent-job limit.
	AssignTechnician(ctx context.Context, id, technicianID uuid.UUID) (*workorder.WorkOrder, error)

	// StartWork begins the repair.
	StartWork(ctx context.Context, id uuid.UUID) (*workorder.WorkOrder, error)

	// HoldWork pauses the repair with a reason.
	HoldWork(ctx context.Context, id uuid.UUID, reason string) (*workorder.WorkOrder, error)

	// ResumeWork continues a held repair.
	ResumeWork(ctx context.Context, id uuid.UUID) (*workorder.WorkOrder, error)

	// CompleteWork closes the job with its final cost.
	CompleteWork(ctx context.Context, id uuid.UUID, actualCost domain.Money) (*workorder.WorkOrder, error)

	// CancelWork aborts the job and releases any stock still reserved for it.
	CancelWork(ctx context.Context, id uuid.UUID, reason string) (*workorder.WorkOrder, error)

	// AddRequiredPart appends a parts line to the work order.
	AddRequiredPart(ctx context.Context, id, partID uuid.UUID, quantity int) (*workorder.WorkOrder, error)

	// ReserveRequiredParts holds stock for every unreserved parts line at
	// the given warehouse. Reservations across lines are not atomic: each
	// inventory commits independently, and on a failed line the already
	// reserved lines are compensated by releasing their holds.
	ReserveRequiredParts(ctx context.Context, id uuid.UUID, warehouse, requestedBy string) (*workorder.WorkOrder, error)
}

// PartService defines the CRUD service port for the parts catalog.
type PartService interface {
	GetPart(ctx context.Context, id uuid.UUID) (*part.Part, error)
	ListParts(ctx context.Context) ([]part.Part, error)
	CreatePart(ctx context.Context, p *part.Part) (*part.Part, error)
	UpdatePart(ctx context.Context, id uuid.UUID, p *part.Part) (*part.Part, error)
}

// TechnicianService defines the CRUD service port for the roster.
type TechnicianService interface {
	GetTechnician(ctx context.Context, id uuid.UUID) (*technician.Technician, error)
	ListTechnicians(ctx context.Context) ([]technician.Technician, error)
	CreateTechnician(ctx context.Context, tech *technician.Technician) (*technician.Technician, error)
	UpdateTechnician(ctx context.Context, id uuid.UUID, tech *technician.Technician) (*technician.Technician, error)
}
