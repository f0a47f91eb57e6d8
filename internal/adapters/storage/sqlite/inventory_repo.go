package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/forgeline/heavyshop/internal/domain"
	"github.com/forgeline/heavyshop/internal/domain/inventory"
	"github.com/forgeline/heavyshop/internal/ports"
)

// Compile-time check that InventoryRepo implements ports.InventoryRepository.
var _ ports.InventoryRepository = (*InventoryRepo)(nil)

// InventoryRepo is the SQLite-backed inventory repository. Loads always
// hydrate the full transaction history so the aggregate is complete.
type InventoryRepo struct {
	db *sql.DB
}

// NewInventoryRepo creates an InventoryRepo.
func NewInventoryRepo(db *sql.DB) *InventoryRepo {
	return &InventoryRepo{db: db}
}

const inventoryColumns = `
	id, part_id, warehouse, bin_location,
	quantity_on_hand, quantity_reserved,
	minimum_stock_level, maximum_stock_level, reorder_quantity,
	active, version, created_at, updated_at`

func (r *InventoryRepo) GetByID(ctx context.Context, id uuid.UUID) (*inventory.Inventory, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT`+inventoryColumns+` FROM inventories WHERE id = ?`, id)
	inv, err := scanInventory(row)
	if err != nil {
		return nil, err
	}
	if err := r.loadTransactions(ctx, inv); err != nil {
		return nil, err
	}
	return inv, nil
}

func (r *InventoryRepo) GetByPartAndWarehouse(ctx context.Context, partID uuid.UUID, warehouse string) (*inventory.Inventory, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT`+inventoryColumns+` FROM inventories WHERE part_id = ? AND warehouse = ?`,
		partID, warehouse)
	inv, err := scanInventory(row)
	if err != nil {
		return nil, err
	}
	if err := r.loadTransactions(ctx, inv); err != nil {
		return nil, err
	}
	return inv, nil
}

func (r *InventoryRepo) ListByPart(ctx context.Context, partID uuid.UUID) ([]inventory.Inventory, error) {
	return r.list(ctx,
		`SELECT`+inventoryColumns+` FROM inventories WHERE part_id = ? ORDER BY warehouse`,
		partID)
}

func (r *InventoryRepo) ListLowStock(ctx context.Context) ([]inventory.Inventory, error) {
	return r.list(ctx,
		`SELECT`+inventoryColumns+` FROM inventories
		 WHERE active = 1 AND quantity_on_hand - quantity_reserved <= minimum_stock_level
		 ORDER BY warehouse, part_id`)
}

// Add inserts a fresh aggregate in its own transaction.
func (r *InventoryRepo) Add(ctx context.Context, inv *inventory.Inventory) error {
	if inv.Version != 0 {
		return fmt.Errorf("inventory %s already persisted: %w", inv.ID, domain.ErrConflict)
	}
	return r.write(ctx, inv)
}

// Update persists the aggregate's current state in its own transaction.
func (r *InventoryRepo) Update(ctx context.Context, inv *inventory.Inventory) error {
	if inv.Version == 0 {
		return fmt.Errorf("inventory %s not persisted yet: %w", inv.ID, domain.ErrNotFound)
	}
	return r.write(ctx, inv)
}

func (r *InventoryRepo) write(ctx context.Context, inv *inventory.Inventory) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	if _, err := upsertInventory(ctx, tx, inv); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", mapConstraintErr(err))
	}
	inv.Version++
	return nil
}

func (r *InventoryRepo) list(ctx context.Context, query string, args ...any) ([]inventory.Inventory, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []inventory.Inventory
	for rows.Next() {
		var inv inventory.Inventory
		if err := scanInventoryFields(rows.Scan, &inv); err != nil {
			return nil, err
		}
		out = append(out, inv)
	}
	return out, rows.Err()
}

func (r *InventoryRepo) loadTransactions(ctx context.Context, inv *inventory.Inventory) error {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, inventory_id, type, quantity, work_order_id,
		       reference_number, notes, transaction_date, transaction_by
		FROM inventory_transactions
		WHERE inventory_id = ?
		ORDER BY transaction_date, id`, inv.ID)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var txn inventory.Transaction
		var txnType string
		if err := rows.Scan(
			&txn.ID, &txn.InventoryID, &txnType, &txn.Quantity, &txn.WorkOrderID,
			&txn.ReferenceNumber, &txn.Notes, &txn.TransactionDate, &txn.TransactionBy,
		); err != nil {
			return err
		}
		txn.Type = inventory.TransactionType(txnType)
		inv.Transactions = append(inv.Transactions, txn)
	}
	return rows.Err()
}

func scanInventory(row *sql.Row) (*inventory.Inventory, error) {
	var inv inventory.Inventory
	err := scanInventoryFields(row.Scan, &inv)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

func scanInventoryFields(scan func(...any) error, inv *inventory.Inventory) error {
	return scan(
		&inv.ID, &inv.PartID, &inv.Warehouse, &inv.BinLocation,
		&inv.QuantityOnHand, &inv.QuantityReserved,
		&inv.MinimumStockLevel, &inv.MaximumStockLevel, &inv.ReorderQuantity,
		&inv.Active, &inv.Version, &inv.CreatedAt, &inv.UpdatedAt,
	)
}
