// Package inventory contains the Inventory aggregate: the single authority
// over stock quantities for one part at one warehouse location. Every
// mutating operation appends exactly one audit Transaction, and all quantity
// checks run before any state changes, so a failed call leaves the aggregate
// exactly as it found it.
package inventory

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/forgeline/heavyshop/internal/domain"
)

// Inventory is the aggregate root for stock at one (part, warehouse) pair.
// The uniqueness of that pair is enforced at the persistence boundary, not
// here. PartID is a reference only; the aggregate never navigates to the
// parts catalog.
//
// Invariant: QuantityReserved <= QuantityOnHand after every completed
// operation. Available stock is always derived (on-hand minus reserved),
// never stored.
//
// State is mutated only through the methods below. Repositories hydrate the
// struct directly but must never bypass the methods for business changes.
type Inventory struct {
	domain.Events

	ID                uuid.UUID
	PartID            uuid.UUID
	Warehouse         string
	BinLocation       string
	QuantityOnHand    int
	QuantityReserved  int
	MinimumStockLevel int
	MaximumStockLevel int
	ReorderQuantity   int
	Active            bool

	// Version supports optimistic concurrency at the persistence boundary.
	Version   int
	CreatedAt time.Time
	UpdatedAt time.Time

	Transactions []Transaction
}

// New creates an active Inventory at zero quantities. The reorder quantity
// defaults to the gap between the maximum and minimum stock levels.
func New(partID uuid.UUID, warehouse, binLocation string, minLevel, maxLevel int) (*Inventory, error) {
	fields := make(map[string]string)

	if partID == uuid.Nil {
		fields["part_id"] = "is required"
	}
	if strings.TrimSpace(warehouse) == "" {
		fields["warehouse"] = "is required"
	}
	if minLevel < 0 {
		fields["minimum_stock_level"] = fmt.Sprintf("must not be negative, got %d", minLevel)
	}
	if maxLevel < minLevel {
		fields["maximum_stock_level"] = fmt.Sprintf("must be >= minimum %d, got %d", minLevel, maxLevel)
	}
	if len(fields) > 0 {
		return nil, &domain.ValidationError{Fields: fields}
	}

	now := time.Now().UTC()
	return &Inventory{
		ID:                uuid.New(),
		PartID:            partID,
		Warehouse:         warehouse,
		BinLocation:       binLocation,
		MinimumStockLevel: minLevel,
		MaximumStockLevel: maxLevel,
		ReorderQuantity:   maxLevel - minLevel,
		Active:            true,
		CreatedAt:         now,
		UpdatedAt:         now,
	}, nil
}

// AvailableQuantity returns on-hand minus reserved. Never persisted.
func (inv *Inventory) AvailableQuantity() int {
	return inv.QuantityOnHand - inv.QuantityReserved
}

// IsLowStock reports whether available stock is at or below the minimum level.
func (inv *Inventory) IsLowStock() bool {
	return inv.AvailableQuantity() <= inv.MinimumStockLevel
}

// IsOutOfStock reports whether no stock is available.
func (inv *Inventory) IsOutOfStock() bool {
	return inv.AvailableQuantity() <= 0
}

// CalculateReorderQuantity returns how much to order to refill the location
// to its maximum, or zero when stock is not low.
func (inv *Inventory) CalculateReorderQuantity() int {
	if !inv.IsLowStock() {
		return 0
	}
	return inv.MaximumStockLevel - inv.AvailableQuantity()
}

// ReserveParts places a soft hold on stock for a work order.
// Fails with a state error if the quantity exceeds available stock.
func (inv *Inventory) ReserveParts(quantity int, workOrderID uuid.UUID, requestedBy string) error {
	if err := validateMovement("quantity", quantity, workOrderID, "requested_by", requestedBy); err != nil {
		return err
	}
	if err := inv.requireActive("ReserveParts"); err != nil {
		return err
	}
	if quantity > inv.AvailableQuantity() {
		return domain.NewStateError("ReserveParts",
			"cannot reserve %d: only %d available", quantity, inv.AvailableQuantity())
	}

	inv.QuantityReserved += quantity
	inv.appendTransaction(TypeReservation, quantity, workOrderID, "",
		fmt.Sprintf("reserved for work order %s", workOrderID), requestedBy)

	inv.Raise(Reserved{
		EventModel:         domain.NewEventModel(),
		InventoryID:        inv.ID,
		PartID:             inv.PartID,
		Warehouse:          inv.Warehouse,
		WorkOrderID:        workOrderID,
		Quantity:           quantity,
		RemainingAvailable: inv.AvailableQuantity(),
	})
	return nil
}

// ReleaseReservation gives back part or all of a hold without moving stock.
// Fails with a state error if the quantity exceeds what is reserved.
func (inv *Inventory) ReleaseReservation(quantity int, workOrderID uuid.UUID, releasedBy string) error {
	if err := validateMovement("quantity", quantity, workOrderID, "released_by", releasedBy); err != nil {
		return err
	}
	if err := inv.requireActive("ReleaseReservation"); err != nil {
		return err
	}
	if quantity > inv.QuantityReserved {
		return domain.NewStateError("ReleaseReservation",
			"cannot release %d: only %d reserved", quantity, inv.QuantityReserved)
	}

	inv.QuantityReserved -= quantity
	inv.appendTransaction(TypeRelease, -quantity, workOrderID, "",
		fmt.Sprintf("released reservation for work order %s", workOrderID), releasedBy)
	return nil
}

// IssueParts physically removes reserved stock for a work order, decrementing
// both on-hand and reserved. Raises Issued, and LowStockDetected when the
// resulting available quantity is at or below the minimum level.
func (inv *Inventory) IssueParts(quantity int, workOrderID uuid.UUID, issuedBy string) error {
	if err := validateMovement("quantity", quantity, workOrderID, "issued_by", issuedBy); err != nil {
		return err
	}
	if err := inv.requireActive("IssueParts"); err != nil {
		return err
	}
	if quantity > inv.QuantityReserved {
		return domain.NewStateError("IssueParts",
			"cannot issue %d: only %d reserved", quantity, inv.QuantityReserved)
	}
	if quantity > inv.QuantityOnHand {
		return domain.NewStateError("IssueParts",
			"cannot issue %d: only %d on hand", quantity, inv.QuantityOnHand)
	}

	inv.QuantityOnHand -= quantity
	inv.QuantityReserved -= quantity
	inv.appendTransaction(TypeIssue, -quantity, workOrderID, "",
		fmt.Sprintf("issued to work order %s", workOrderID), issuedBy)

	inv.Raise(Issued{
		EventModel:      domain.NewEventModel(),
		InventoryID:     inv.ID,
		PartID:          inv.PartID,
		Warehouse:       inv.Warehouse,
		WorkOrderID:     workOrderID,
		Quantity:        quantity,
		RemainingOnHand: inv.QuantityOnHand,
		IssuedBy:        issuedBy,
	})
	inv.raiseLowStockIfNeeded()
	return nil
}

// ReceiveParts adds stock from a supplier delivery. The reference number
// ties the movement back to a purchase order and may be empty.
func (inv *Inventory) ReceiveParts(quantity int, receivedBy, referenceNumber string) error {
	if err := validatePositive("quantity", quantity, "received_by", receivedBy); err != nil {
		return err
	}
	if err := inv.requireActive("ReceiveParts"); err != nil {
		return err
	}

	inv.QuantityOnHand += quantity
	inv.appendTransaction(TypeReceipt, quantity, uuid.Nil, referenceNumber,
		"received stock", receivedBy)

	inv.Raise(Received{
		EventModel:  domain.NewEventModel(),
		InventoryID: inv.ID,
		PartID:      inv.PartID,
		Warehouse:   inv.Warehouse,
		Quantity:    quantity,
		NewOnHand:   inv.QuantityOnHand,
		ReceivedBy:  receivedBy,
	})
	return nil
}

// ReturnParts puts unused stock from a work order back on hand.
func (inv *Inventory) ReturnParts(quantity int, workOrderID uuid.UUID, returnedBy string) error {
	if err := validateMovement("quantity", quantity, workOrderID, "returned_by", returnedBy); err != nil {
		return err
	}
	if err := inv.requireActive("ReturnParts"); err != nil {
		return err
	}

	inv.QuantityOnHand += quantity
	inv.appendTransaction(TypeReturn, quantity, workOrderID, "",
		fmt.Sprintf("returned from work order %s", workOrderID), returnedBy)

	inv.Raise(Received{
		EventModel:  domain.NewEventModel(),
		InventoryID: inv.ID,
		PartID:      inv.PartID,
		Warehouse:   inv.Warehouse,
		Quantity:    quantity,
		NewOnHand:   inv.QuantityOnHand,
		ReceivedBy:  returnedBy,
	})
	return nil
}

// AdjustQuantity sets on-hand to an absolute count, recording the signed
// difference. Fails with a state error if the new quantity is below what is
// already promised to work orders. Raises Adjusted, and LowStockDetected when
// the adjustment leaves the location at or below its minimum.
func (inv *Inventory) AdjustQuantity(newQuantity int, reason, adjustedBy string) error {
	fields := make(map[string]string)
	if newQuantity < 0 {
		fields["new_quantity"] = fmt.Sprintf("must not be negative, got %d", newQuantity)
	}
	if strings.TrimSpace(reason) == "" {
		fields["reason"] = "is required"
	}
	if strings.TrimSpace(adjustedBy) == "" {
		fields["adjusted_by"] = "is required"
	}
	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	if err := inv.requireActive("AdjustQuantity"); err != nil {
		return err
	}

	if newQuantity < inv.QuantityReserved {
		return domain.NewStateError("AdjustQuantity",
			"cannot adjust to %d: %d already reserved", newQuantity, inv.QuantityReserved)
	}

	old := inv.QuantityOnHand
	diff := newQuantity - old
	inv.QuantityOnHand = newQuantity
	inv.appendTransaction(TypeAdjustment, diff, uuid.Nil, "", reason, adjustedBy)

	inv.Raise(Adjusted{
		EventModel:  domain.NewEventModel(),
		InventoryID: inv.ID,
		PartID:      inv.PartID,
		Warehouse:   inv.Warehouse,
		OldQuantity: old,
		NewQuantity: newQuantity,
		Difference:  diff,
		Reason:      reason,
	})
	inv.raiseLowStockIfNeeded()
	return nil
}

// UpdateStockLevels changes the reorder thresholds. Pure configuration: no
// transaction is recorded and no event is raised.
func (inv *Inventory) UpdateStockLevels(minLevel, maxLevel, reorderQty int) error {
	fields := make(map[string]string)
	if minLevel < 0 {
		fields["minimum_stock_level"] = fmt.Sprintf("must not be negative, got %d", minLevel)
	}
	if maxLevel < minLevel {
		fields["maximum_stock_level"] = fmt.Sprintf("must be >= minimum %d, got %d", minLevel, maxLevel)
	}
	if reorderQty < 0 {
		fields["reorder_quantity"] = fmt.Sprintf("must not be negative, got %d", reorderQty)
	}
	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}

	inv.MinimumStockLevel = minLevel
	inv.MaximumStockLevel = maxLevel
	inv.ReorderQuantity = reorderQty
	inv.touch()
	return nil
}

// MoveToBinLocation relocates the stock within the warehouse. The move is
// audited as a zero-quantity adjustment transaction.
func (inv *Inventory) MoveToBinLocation(newBin, movedBy string) error {
	fields := make(map[string]string)
	if strings.TrimSpace(newBin) == "" {
		fields["bin_location"] = "is required"
	}
	if strings.TrimSpace(movedBy) == "" {
		fields["moved_by"] = "is required"
	}
	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	if err := inv.requireActive("MoveToBinLocation"); err != nil {
		return err
	}

	old := inv.BinLocation
	inv.BinLocation = newBin
	inv.appendTransaction(TypeAdjustment, 0, uuid.Nil, "",
		fmt.Sprintf("moved from bin %q to bin %q", old, newBin), movedBy)
	return nil
}

// Deactivate retires the location. Only allowed once it holds nothing and
// promises nothing; the transaction history stays attributable, so inventory
// records are never deleted.
func (inv *Inventory) Deactivate() error {
	if inv.QuantityOnHand > 0 || inv.QuantityReserved > 0 {
		return domain.NewStateError("Deactivate",
			"inventory still holds stock: %d on hand, %d reserved",
			inv.QuantityOnHand, inv.QuantityReserved)
	}
	inv.Active = false
	inv.touch()
	return nil
}

func (inv *Inventory) requireActive(op string) error {
	if !inv.Active {
		return domain.NewStateError(op, "inventory is inactive")
	}
	return nil
}

func (inv *Inventory) raiseLowStockIfNeeded() {
	if !inv.IsLowStock() {
		return
	}
	inv.Raise(LowStockDetected{
		EventModel:  domain.NewEventModel(),
		InventoryID: inv.ID,
		PartID:      inv.PartID,
		Warehouse:   inv.Warehouse,
		Available:   inv.AvailableQuantity(),
		Minimum:     inv.MinimumStockLevel,
		Suggested:   inv.CalculateReorderQuantity(),
	})
}

func (inv *Inventory) appendTransaction(txType TransactionType, quantity int, workOrderID uuid.UUID, reference, notes, by string) {
	inv.Transactions = append(inv.Transactions, Transaction{
		ID:              uuid.New(),
		InventoryID:     inv.ID,
		Type:            txType,
		Quantity:        quantity,
		WorkOrderID:     workOrderID,
		ReferenceNumber: reference,
		Notes:           notes,
		TransactionDate: time.Now().UTC(),
		TransactionBy:   by,
	})
	inv.touch()
}

func (inv *Inventory) touch() {
	inv.UpdatedAt = time.Now().UTC()
}

// validateMovement checks the common inputs of work-order-scoped movements.
func validateMovement(qtyField string, quantity int, workOrderID uuid.UUID, byField, by string) error {
	fields := make(map[string]string)
	if quantity <= 0 {
		fields[qtyField] = fmt.Sprintf("must be positive, got %d", quantity)
	}
	if workOrderID == uuid.Nil {
		fields["work_order_id"] = "is required"
	}
	if strings.TrimSpace(by) == "" {
		fields[byField] = "is required"
	}
	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// validatePositive checks quantity and actor for movements without a work order.
func validatePositive(qtyField string, quantity int, byField, by string) error {
	fields := make(map[string]string)
	if quantity <= 0 {
		fields[qtyField] = fmt.Sprintf("must be positive, got %d", quantity)
	}
	if strings.TrimSpace(by) == "" {
		fields[byField] = "is required"
	}
	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}
