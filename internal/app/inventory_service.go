// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port
// interfaces. Services load aggregates, invoke domain methods, and commit
// through a unit of work so state change and event dispatch stay consistent.
package app

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/forgeline/heavyshop/internal/domain/inventory"
	"github.com/forgeline/heavyshop/internal/ports"
)

// Compile-time check that InventoryService implements ports.InventoryService.
var _ ports.InventoryService = (*InventoryService)(nil)

// InventoryService implements ports.InventoryService. Every mutation follows
// the same cycle: load the aggregate, call its domain method, register it
// with a fresh unit of work, and save. The aggregate enforces the stock
// invariants; this layer contributes logging and the commit protocol.
type InventoryService struct {
	inventories ports.InventoryRepository
	uow         ports.UnitOfWorkFactory
	logger      *slog.Logger
}

// NewInventoryService creates an InventoryService.
func NewInventoryService(inventories ports.InventoryRepository, uowFactory ports.UnitOfWorkFactory, logger *slog.Logger) *InventoryService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &InventoryService{
		inventories: inventories,
		uow:         uowFactory,
		logger:      logger,
	}
}

// CreateInventory opens a stock location for a part at a warehouse. The
// (part, warehouse) uniqueness lives in the storage schema; a duplicate
// surfaces as domain.ErrConflict from the commit.
func (s *InventoryService) CreateInventory(ctx context.Context, partID uuid.UUID, warehouse, binLocation string, minLevel, maxLevel int) (*inventory.Inventory, error) {
	s.logger.InfoContext(ctx, "creating inventory",
		slog.String("part_id", partID.String()),
		slog.String("warehouse", warehouse),
	)

	inv, err := inventory.New(partID, warehouse, binLocation, minLevel, maxLevel)
	if err != nil {
		return nil, err
	}

	if err := s.commit(ctx, "CreateInventory", inv); err != nil {
		return nil, err
	}
	return inv, nil
}

// GetInventory returns one inventory with its transaction history.
func (s *InventoryService) GetInventory(ctx context.Context, id uuid.UUID) (*inventory.Inventory, error) {
	return s.inventories.GetByID(ctx, id)
}

// GetByPartAndWarehouse returns the inventory for a (part, warehouse) pair.
func (s *InventoryService) GetByPartAndWarehouse(ctx context.Context, partID uuid.UUID, warehouse string) (*inventory.Inventory, error) {
	return s.inventories.GetByPartAndWarehouse(ctx, partID, warehouse)
}

// ListLowStock returns active locations at or below their minimum level.
func (s *InventoryService) ListLowStock(ctx context.Context) ([]inventory.Inventory, error) {
	return s.inventories.ListLowStock(ctx)
}

// ReceiveParts adds delivered stock.
func (s *InventoryService) ReceiveParts(ctx context.Context, id uuid.UUID, quantity int, receivedBy, referenceNumber string) (*inventory.Inventory, error) {
	return s.mutate(ctx, "ReceiveParts", id, func(inv *inventory.Inventory) error {
		return inv.ReceiveParts(quantity, receivedBy, referenceNumber)
	})
}

// ReserveParts soft-holds stock for a work order.
func (s *InventoryService) ReserveParts(ctx context.Context, id uuid.UUID, quantity int, workOrderID uuid.UUID, requestedBy string) (*inventory.Inventory, error) {
	return s.mutate(ctx, "ReserveParts", id, func(inv *inventory.Inventory) error {
		return inv.ReserveParts(quantity, workOrderID, requestedBy)
	})
}

// ReleaseReservation gives back part of a hold.
func (s *InventoryService) ReleaseReservation(ctx context.Context, id uuid.UUID, quantity int, workOrderID uuid.UUID, releasedBy string) (*inventory.Inventory, error) {
	return s.mutate(ctx, "ReleaseReservation", id, func(inv *inventory.Inventory) error {
		return inv.ReleaseReservation(quantity, workOrderID, releasedBy)
	})
}

// IssueParts removes reserved stock for a work order.
func (s *InventoryService) IssueParts(ctx context.Context, id uuid.UUID, quantity int, workOrderID uuid.UUID, issuedBy string) (*inventory.Inventory, error) {
	return s.mutate(ctx, "IssueParts", id, func(inv *inventory.Inventory) error {
		return inv.IssueParts(quantity, workOrderID, issuedBy)
	})
}

// ReturnParts puts unused work-order stock back on hand.
func (s *InventoryService) ReturnParts(ctx context.Context, id uuid.UUID, quantity int, workOrderID uuid.UUID, returnedBy string) (*inventory.Inventory, error) {
	return s.mutate(ctx, "ReturnParts", id, func(inv *inventory.Inventory) error {
		return inv.ReturnParts(quantity, workOrderID, returnedBy)
	})
}

// AdjustQuantity sets on-hand to an absolute count after a cycle count.
func (s *InventoryService) AdjustQuantity(ctx context.Context, id uuid.UUID, newQuantity int, reason, adjustedBy string) (*inventory.Inventory, error) {
	return s.mutate(ctx, "AdjustQuantity", id, func(inv *inventory.Inventory) error {
		return inv.AdjustQuantity(newQuantity, reason, adjustedBy)
	})
}

// UpdateStockLevels changes the reorder thresholds.
func (s *InventoryService) UpdateStockLevels(ctx context.Context, id uuid.UUID, minLevel, maxLevel, reorderQty int) (*inventory.Inventory, error) {
	return s.mutate(ctx, "UpdateStockLevels", id, func(inv *inventory.Inventory) error {
		return inv.UpdateStockLevels(minLevel, maxLevel, reorderQty)
	})
}

// MoveToBinLocation relocates stock within the warehouse.
func (s *InventoryService) MoveToBinLocation(ctx context.Context, id uuid.UUID, binLocation, movedBy string) (*inventory.Inventory, error) {
	return s.mutate(ctx, "MoveToBinLocation", id, func(inv *inventory.Inventory) error {
		return inv.MoveToBinLocation(binLocation, movedBy)
	})
}

// DeactivateInventory retires an empty location.
func (s *InventoryService) DeactivateInventory(ctx context.Context, id uuid.UUID) error {
	_, err := s.mutate(ctx, "DeactivateInventory", id, func(inv *inventory.Inventory) error {
		return inv.Deactivate()
	})
	return err
}

// mutate runs one load-mutate-commit cycle against a single inventory.
func (s *InventoryService) mutate(ctx context.Context, operation string, id uuid.UUID, fn func(*inventory.Inventory) error) (*inventory.Inventory, error) {
	inv, err := s.inventories.GetByID(ctx, id)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to load inventory",
			slog.String("operation", operation),
			slog.String("inventory_id", id.String()),
			slog.Any("error", err),
		)
		return nil, err
	}

	if err := fn(inv); err != nil {
		return nil, err
	}

	if err := s.commit(ctx, operation, inv); err != nil {
		return nil, err
	}
	return inv, nil
}

func (s *InventoryService) commit(ctx context.Context, operation string, inv *inventory.Inventory) error {
	u := s.uow.New()
	u.Register(inv)

	if _, err := u.SaveChanges(ctx); err != nil {
		s.logger.ErrorContext(ctx, "failed to commit inventory",
			slog.String("operation", operation),
			slog.String("inventory_id", inv.ID.String()),
			slog.Any("error", err),
		)
		return err
	}
	return nil
}
