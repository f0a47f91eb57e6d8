package inventory

import (
	"github.com/google/uuid"

	"github.com/forgeline/heavyshop/internal/domain"
)

// Event names for subscriber routing.
const (
	EventReceived         = "inventory.received"
	EventReserved         = "inventory.reserved"
	EventIssued           = "inventory.issued"
	EventAdjusted         = "inventory.adjusted"
	EventLowStockDetected = "inventory.low_stock_detected"
)

// Received is raised when stock physically arrives at a warehouse location,
// either from a supplier receipt or a return from a work order.
type Received struct {
	domain.EventModel
	InventoryID uuid.UUID
	PartID      uuid.UUID
	Warehouse   string
	Quantity    int
	NewOnHand   int
	ReceivedBy  string
}

func (Received) EventName() string { return EventReceived }

// Reserved is raised when stock is soft-held for a work order.
type Reserved struct {
	domain.EventModel
	InventoryID        uuid.UUID
	PartID             uuid.UUID
	Warehouse          string
	WorkOrderID        uuid.UUID
	Quantity           int
	RemainingAvailable int
}

func (Reserved) EventName() string { return EventReserved }

// Issued is raised when reserved stock is physically removed for a work order.
type Issued struct {
	domain.EventModel
	InventoryID     uuid.UUID
	PartID          uuid.UUID
	Warehouse       string
	WorkOrderID     uuid.UUID
	Quantity        int
	RemainingOnHand int
	IssuedBy        string
}

func (Issued) EventName() string { return EventIssued }

// Adjusted is raised when a cycle count or correction sets on-hand to a new
// absolute quantity. Difference is new minus old, signed.
type Adjusted struct {
	domain.EventModel
	InventoryID uuid.UUID
	PartID      uuid.UUID
	Warehouse   string
	OldQuantity int
	NewQuantity int
	Difference  int
	Reason      string
}

func (Adjusted) EventName() string { return EventAdjusted }

// LowStockDetected is raised after any quantity-decreasing or adjusting
// operation leaves available stock at or below the minimum level. Suggested
// is the reorder quantity computed from the configured maximum.
type LowStockDetected struct {
	domain.EventModel
	InventoryID uuid.UUID
	PartID      uuid.UUID
	Warehouse   string
	Available   int
	Minimum     int
	Suggested   int
}

func (LowStockDetected) EventName() string { return EventLowStockDetected }
