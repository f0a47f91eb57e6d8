package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sqlitedrv "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/forgeline/heavyshop/internal/domain"
	"github.com/forgeline/heavyshop/internal/domain/inventory"
	"github.com/forgeline/heavyshop/internal/domain/workorder"
	"github.com/forgeline/heavyshop/internal/ports"
)

// Compile-time check that Store implements ports.AggregateStore.
var _ ports.AggregateStore = (*Store)(nil)

// Store persists the aggregate roots of one commit cycle in a single
// transaction. The repositories reuse its upsert helpers so a direct write
// and a unit-of-work flush follow identical SQL.
type Store struct {
	db *sql.DB
}

// NewStore creates a Store.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// Flush writes every registered root atomically. A version mismatch or a
// uniqueness violation rolls the whole batch back and surfaces as
// domain.ErrConflict. Root versions are bumped in memory only after the
// transaction commits.
func (s *Store) Flush(ctx context.Context, roots []domain.EventRaiser) (int, error) {
	if len(roots) == 0 {
		return 0, nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	written := 0
	for _, root := range roots {
		var n int
		switch agg := root.(type) {
		case *inventory.Inventory:
			n, err = upsertInventory(ctx, tx, agg)
		case *workorder.WorkOrder:
			n, err = upsertWorkOrder(ctx, tx, agg)
		default:
			return 0, fmt.Errorf("unsupported aggregate type %T", root)
		}
		if err != nil {
			return 0, err
		}
		written += n
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit: %w", mapConstraintErr(err))
	}

	for _, root := range roots {
		switch agg := root.(type) {
		case *inventory.Inventory:
			agg.Version++
		case *workorder.WorkOrder:
			agg.Version++
		}
	}
	return written, nil
}

// execer covers *sql.DB and *sql.Tx.
type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// upsertInventory writes the aggregate row and any new transactions. The
// version column implements the optimistic check: version 0 means a fresh
// aggregate and inserts, anything else updates the exact stored version.
// The in-memory version is left alone for the caller to bump after commit.
func upsertInventory(ctx context.Context, ex execer, inv *inventory.Inventory) (int, error) {
	written := 0

	if inv.Version == 0 {
		res, err := ex.ExecContext(ctx, `
			INSERT INTO inventories (
				id, part_id, warehouse, bin_location,
				quantity_on_hand, quantity_reserved,
				minimum_stock_level, maximum_stock_level, reorder_quantity,
				active, version, created_at, updated_at
			) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, 1, ?, ?)`,
			inv.ID, inv.PartID, inv.Warehouse, inv.BinLocation,
			inv.QuantityOnHand, inv.QuantityReserved,
			inv.MinimumStockLevel, inv.MaximumStockLevel, inv.ReorderQuantity,
			inv.Active, inv.CreatedAt, inv.UpdatedAt,
		)
		if err != nil {
			return 0, fmt.Errorf("insert inventory %s: %w", inv.ID, mapConstraintErr(err))
		}
		n, _ := res.RowsAffected()
		written += int(n)
	} else {
		res, err := ex.ExecContext(ctx, `
			UPDATE inventories SET
				bin_location = ?,
				quantity_on_hand = ?, quantity_reserved = ?,
				minimum_stock_level = ?, maximum_stock_level = ?, reorder_quantity = ?,
				active = ?, version = version + 1, updated_at = ?
			WHERE id = ? AND version = ?`,
			inv.BinLocation,
			inv.QuantityOnHand, inv.QuantityReserved,
			inv.MinimumStockLevel, inv.MaximumStockLevel, inv.ReorderQuantity,
			inv.Active, inv.UpdatedAt,
			inv.ID, inv.Version,
		)
		if err != nil {
			return 0, fmt.Errorf("update inventory %s: %w", inv.ID, mapConstraintErr(err))
		}
		n, err := res.RowsAffected()
		if err != nil {
			return 0, err
		}
		if n == 0 {
			return 0, fmt.Errorf("inventory %s version %d: %w", inv.ID, inv.Version, domain.ErrConflict)
		}
		written += int(n)
	}

	for _, txn := range inv.Transactions {
		res, err := ex.ExecContext(ctx, `
			INSERT INTO inventory_transactions (
				id, inventory_id, type, quantity, work_order_id,
				reference_number, notes, transaction_date, transaction_by
			) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
			ON CONFLICT (id) DO NOTHING`,
			txn.ID, txn.InventoryID, string(txn.Type), txn.Quantity, txn.WorkOrderID,
			txn.ReferenceNumber, txn.Notes, txn.TransactionDate, txn.TransactionBy,
		)
		if err != nil {
			return 0, fmt.Errorf("insert transaction %s: %w", txn.ID, mapConstraintErr(err))
		}
		n, _ := res.RowsAffected()
		written += int(n)
	}
	return written, nil
}

// upsertWorkOrder writes the aggregate row, its parts lines, and its
// notifications.
func upsertWorkOrder(ctx context.Context, ex execer, wo *workorder.WorkOrder) (int, error) {
	written := 0

	schedStart, schedEnd := rangeColumns(wo.ScheduledPeriod)
	actualStart, actualEnd := rangeColumns(wo.ActualPeriod)

	if wo.Version == 0 {
		res, err := ex.ExecContext(ctx, `
			INSERT INTO work_orders (
				id, number, vin, equipment_type, equipment_model,
				customer_id, description, status, assigned_technician_id,
				service_street, service_city, service_state, service_postal_code, service_country,
				scheduled_start, scheduled_end, actual_start, actual_end,
				estimated_cost, estimated_currency, actual_cost, actual_currency,
				version, created_at, updated_at
			) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, 1, ?, ?)`,
			wo.ID, wo.Number, wo.Equipment.VIN(), wo.Equipment.Type(), wo.Equipment.Model(),
			wo.CustomerID, wo.Description, string(wo.Status), wo.AssignedTechnicianID,
			wo.ServiceAddress.Street, wo.ServiceAddress.City, wo.ServiceAddress.State,
			wo.ServiceAddress.PostalCode, wo.ServiceAddress.Country,
			schedStart, schedEnd, actualStart, actualEnd,
			wo.EstimatedCost.Amount().String(), wo.EstimatedCost.Currency(),
			wo.ActualCost.Amount().String(), wo.ActualCost.Currency(),
			wo.CreatedAt, wo.UpdatedAt,
		)
		if err != nil {
			return 0, fmt.Errorf("insert work order %s: %w", wo.ID, mapConstraintErr(err))
		}
		n, _ := res.RowsAffected()
		written += int(n)
	} else {
		res, err := ex.ExecContext(ctx, `
			UPDATE work_orders SET
				description = ?, status = ?, assigned_technician_id = ?,
				service_street = ?, service_city = ?, service_state = ?,
				service_postal_code = ?, service_country = ?,
				scheduled_start = ?, scheduled_end = ?, actual_start = ?, actual_end = ?,
				estimated_cost = ?, estimated_currency = ?, actual_cost = ?, actual_currency = ?,
				version = version + 1, updated_at = ?
			WHERE id = ? AND version = ?`,
			wo.Description, string(wo.Status), wo.AssignedTechnicianID,
			wo.ServiceAddress.Street, wo.ServiceAddress.City, wo.ServiceAddress.State,
			wo.ServiceAddress.PostalCode, wo.ServiceAddress.Country,
			schedStart, schedEnd, actualStart, actualEnd,
			wo.EstimatedCost.Amount().String(), wo.EstimatedCost.Currency(),
			wo.ActualCost.Amount().String(), wo.ActualCost.Currency(),
			wo.UpdatedAt,
			wo.ID, wo.Version,
		)
		if err != nil {
			return 0, fmt.Errorf("update work order %s: %w", wo.ID, mapConstraintErr(err))
		}
		n, err := res.RowsAffected()
		if err != nil {
			return 0, err
		}
		if n == 0 {
			return 0, fmt.Errorf("work order %s version %d: %w", wo.ID, wo.Version, domain.ErrConflict)
		}
		written += int(n)
	}

	for _, line := range wo.RequiredParts {
		res, err := ex.ExecContext(ctx, `
			INSERT INTO required_parts (
				id, work_order_id, part_id, quantity, reserved, warehouse,
				estimated_cost, estimated_currency
			) VALUES (?, ?, ?, ?, ?, ?, ?, ?)
			ON CONFLICT (id) DO UPDATE SET
				quantity = excluded.quantity,
				reserved = excluded.reserved,
				warehouse = excluded.warehouse,
				estimated_cost = excluded.estimated_cost,
				estimated_currency = excluded.estimated_currency`,
			line.ID, line.WorkOrderID, line.PartID, line.Quantity, line.Reserved, line.Warehouse,
			line.EstimatedCost.Amount().String(), line.EstimatedCost.Currency(),
		)
		if err != nil {
			return 0, fmt.Errorf("upsert required part %s: %w", line.ID, mapConstraintErr(err))
		}
		n, _ := res.RowsAffected()
		written += int(n)
	}

	for _, note := range wo.Notifications {
		res, err := ex.ExecContext(ctx, `
			INSERT INTO work_order_notifications (
				id, work_order_id, kind, message, created_at, sent
			) VALUES (?, ?, ?, ?, ?, ?)
			ON CONFLICT (id) DO UPDATE SET sent = excluded.sent`,
			note.ID, note.WorkOrderID, string(note.Kind), note.Message, note.CreatedAt, note.Sent,
		)
		if err != nil {
			return 0, fmt.Errorf("upsert notification %s: %w", note.ID, mapConstraintErr(err))
		}
		n, _ := res.RowsAffected()
		written += int(n)
	}
	return written, nil
}

// rangeColumns splits a date range into two nullable columns. A zero range
// stores two NULLs; an open-ended range stores a NULL end.
func rangeColumns(r domain.DateRange) (start, end any) {
	if r.IsZero() {
		return nil, nil
	}
	if r.IsOpenEnded() {
		return r.Start(), nil
	}
	return r.Start(), r.End()
}

// rangeFromColumns rebuilds a date range from its stored columns.
func rangeFromColumns(start, end sql.NullTime) (domain.DateRange, error) {
	if !start.Valid {
		return domain.DateRange{}, nil
	}
	if !end.Valid {
		return domain.NewOpenDateRange(start.Time), nil
	}
	return domain.NewDateRange(start.Time, end.Time)
}

// moneyFromColumns rebuilds a money value. An empty currency means the value
// was never set and comes back as the zero value.
func moneyFromColumns(amount, currency string) (domain.Money, error) {
	if currency == "" {
		return domain.Money{}, nil
	}
	return domain.NewMoneyFromString(amount, currency)
}

// mapConstraintErr converts a sqlite constraint violation into
// domain.ErrConflict so callers see the domain taxonomy, not driver codes.
func mapConstraintErr(err error) error {
	if err == nil {
		return nil
	}
	var se *sqlitedrv.Error
	if errors.As(err, &se) && se.Code()&0xff == sqlite3.SQLITE_CONSTRAINT {
		return fmt.Errorf("%w: %v", domain.ErrConflict, err)
	}
	return err
}
