package workorder

import (
	"github.com/google/uuid"

	"github.com/forgeline/heavyshop/internal/domain"
)

// RequiredPart is a child entity: one line of the work order's parts list.
// PartID references the catalog; the aggregate never holds the part itself.
type RequiredPart struct {
	ID          uuid.UUID
	WorkOrderID uuid.UUID
	PartID      uuid.UUID
	Quantity    int
	// Reserved tracks whether stock has been held for this line, and
	// Warehouse records where. Both are set by the orchestrating service
	// after the inventory reservation commits, so a later release or
	// cancellation knows which location to give the hold back to.
	Reserved      bool
	Warehouse     string
	EstimatedCost domain.Money
}
