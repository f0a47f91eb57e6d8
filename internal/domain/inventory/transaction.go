package inventory

import (
	"time"

	"github.com/google/uuid"
)

// TransactionType classifies a stock movement.
type TransactionType string

const (
	TypeReceipt     TransactionType = "receipt"
	TypeIssue       TransactionType = "issue"
	TypeReservation TransactionType = "reservation"
	TypeRelease     TransactionType = "release"
	TypeAdjustment  TransactionType = "adjustment"
	TypeReturn      TransactionType = "return"
)

// IsValid returns true if the type is one of the defined constants.
func (t TransactionType) IsValid() bool {
	switch t {
	case TypeReceipt, TypeIssue, TypeReservation, TypeRelease, TypeAdjustment, TypeReturn:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (t TransactionType) String() string {
	return string(t)
}

// Transaction is the immutable audit record of a single stock movement,
// owned by the Inventory aggregate that produced it. Quantity is signed:
// positive for movements that add stock or a hold (receipt, reservation,
// return), negative for movements that remove one (issue, release), and the
// signed difference for adjustments.
//
// Transactions are created only as a side effect of an Inventory method call
// and are never mutated or removed; deactivated inventory keeps its history.
type Transaction struct {
	ID              uuid.UUID
	InventoryID     uuid.UUID
	Type            TransactionType
	Quantity        int
	WorkOrderID     uuid.UUID // zero when the movement is not tied to a work order
	ReferenceNumber string
	Notes           string
	TransactionDate time.Time
	TransactionBy   string
}
