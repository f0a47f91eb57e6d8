package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/forgeline/heavyshop/internal/domain"
	"github.com/forgeline/heavyshop/internal/domain/workorder"
	"github.com/forgeline/heavyshop/internal/ports"
)

// Compile-time check that WorkOrderRepo implements ports.WorkOrderRepository.
var _ ports.WorkOrderRepository = (*WorkOrderRepo)(nil)

// WorkOrderRepo is the SQLite-backed work order repository. Loads hydrate
// the parts lines and notifications so the aggregate is complete.
type WorkOrderRepo struct {
	db *sql.DB
}

// NewWorkOrderRepo creates a WorkOrderRepo.
func NewWorkOrderRepo(db *sql.DB) *WorkOrderRepo {
	return &WorkOrderRepo{db: db}
}

const workOrderColumns = `
	id, number, vin, equipment_type, equipment_model,
	customer_id, description, status, assigned_technician_id,
	service_street, service_city, service_state, service_postal_code, service_country,
	scheduled_start, scheduled_end, actual_start, actual_end,
	estimated_cost, estimated_currency, actual_cost, actual_currency,
	version, created_at, updated_at`

func (r *WorkOrderRepo) GetByID(ctx context.Context, id uuid.UUID) (*workorder.WorkOrder, error) {
	return r.getOne(ctx, `SELECT`+workOrderColumns+` FROM work_orders WHERE id = ?`, id)
}

func (r *WorkOrderRepo) GetByNumber(ctx context.Context, number string) (*workorder.WorkOrder, error) {
	return r.getOne(ctx, `SELECT`+workOrderColumns+` FROM work_orders WHERE number = ?`, number)
}

func (r *WorkOrderRepo) List(ctx context.Context, status workorder.Status) ([]workorder.WorkOrder, error) {
	query := `SELECT` + workOrderColumns + ` FROM work_orders`
	var args []any
	if status != "" {
		query += ` WHERE status = ?`
		args = append(args, string(status))
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []workorder.WorkOrder
	for rows.Next() {
		wo, err := scanWorkOrder(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, *wo)
	}
	return out, rows.Err()
}

// CountActiveByTechnician counts the technician's non-terminal work orders.
func (r *WorkOrderRepo) CountActiveByTechnician(ctx context.Context, technicianID uuid.UUID) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM work_orders
		WHERE assigned_technician_id = ? AND status NOT IN (?, ?)`,
		technicianID, string(workorder.StatusCompleted), string(workorder.StatusCancelled),
	).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}

// Add inserts a fresh aggregate in its own transaction.
func (r *WorkOrderRepo) Add(ctx context.Context, wo *workorder.WorkOrder) error {
	if wo.Version != 0 {
		return fmt.Errorf("work order %s already persisted: %w", wo.ID, domain.ErrConflict)
	}
	return r.write(ctx, wo)
}

// Update persists the aggregate's current state in its own transaction.
func (r *WorkOrderRepo) Update(ctx context.Context, wo *workorder.WorkOrder) error {
	if wo.Version == 0 {
		return fmt.Errorf("work order %s not persisted yet: %w", wo.ID, domain.ErrNotFound)
	}
	return r.write(ctx, wo)
}

func (r *WorkOrderRepo) write(ctx context.Context, wo *workorder.WorkOrder) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	if _, err := upsertWorkOrder(ctx, tx, wo); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", mapConstraintErr(err))
	}
	wo.Version++
	return nil
}

func (r *WorkOrderRepo) getOne(ctx context.Context, query string, arg any) (*workorder.WorkOrder, error) {
	row := r.db.QueryRowContext(ctx, query, arg)
	wo, err := scanWorkOrder(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if err := r.loadChildren(ctx, wo); err != nil {
		return nil, err
	}
	return wo, nil
}

func (r *WorkOrderRepo) loadChildren(ctx context.Context, wo *workorder.WorkOrder) error {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, work_order_id, part_id, quantity, reserved, warehouse,
		       estimated_cost, estimated_currency
		FROM required_parts WHERE work_order_id = ? ORDER BY id`, wo.ID)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var line workorder.RequiredPart
		var amount, currency string
		if err := rows.Scan(
			&line.ID, &line.WorkOrderID, &line.PartID, &line.Quantity,
			&line.Reserved, &line.Warehouse, &amount, &currency,
		); err != nil {
			return err
		}
		if line.EstimatedCost, err = moneyFromColumns(amount, currency); err != nil {
			return err
		}
		wo.RequiredParts = append(wo.RequiredParts, line)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	noteRows, err := r.db.QueryContext(ctx, `
		SELECT id, work_order_id, kind, message, created_at, sent
		FROM work_order_notifications WHERE work_order_id = ? ORDER BY created_at, id`, wo.ID)
	if err != nil {
		return err
	}
	defer noteRows.Close()

	for noteRows.Next() {
		var note workorder.Notification
		var kind string
		if err := noteRows.Scan(
			&note.ID, &note.WorkOrderID, &kind, &note.Message, &note.CreatedAt, &note.Sent,
		); err != nil {
			return err
		}
		note.Kind = workorder.NotificationKind(kind)
		wo.Notifications = append(wo.Notifications, note)
	}
	return noteRows.Err()
}

func scanWorkOrder(scan func(...any) error) (*workorder.WorkOrder, error) {
	var (
		wo                                             workorder.WorkOrder
		vin, equipmentType, equipmentModel, status     string
		schedStart, schedEnd, actualStart, actualEnd   sql.NullTime
		estAmount, estCurrency, actAmount, actCurrency string
	)

	err := scan(
		&wo.ID, &wo.Number, &vin, &equipmentType, &equipmentModel,
		&wo.CustomerID, &wo.Description, &status, &wo.AssignedTechnicianID,
		&wo.ServiceAddress.Street, &wo.ServiceAddress.City, &wo.ServiceAddress.State,
		&wo.ServiceAddress.PostalCode, &wo.ServiceAddress.Country,
		&schedStart, &schedEnd, &actualStart, &actualEnd,
		&estAmount, &estCurrency, &actAmount, &actCurrency,
		&wo.Version, &wo.CreatedAt, &wo.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if wo.Equipment, err = domain.NewEquipmentIdentifier(vin, equipmentType, equipmentModel); err != nil {
		return nil, fmt.Errorf("work order %s: %w", wo.ID, err)
	}
	wo.Status = workorder.Status(status)
	if wo.ScheduledPeriod, err = rangeFromColumns(schedStart, schedEnd); err != nil {
		return nil, fmt.Errorf("work order %s: %w", wo.ID, err)
	}
	if wo.ActualPeriod, err = rangeFromColumns(actualStart, actualEnd); err != nil {
		return nil, fmt.Errorf("work order %s: %w", wo.ID, err)
	}
	if wo.EstimatedCost, err = moneyFromColumns(estAmount, estCurrency); err != nil {
		return nil, fmt.Errorf("work order %s: %w", wo.ID, err)
	}
	if wo.ActualCost, err = moneyFromColumns(actAmount, actCurrency); err != nil {
		return nil, fmt.Errorf("work order %s: %w", wo.ID, err)
	}
	return &wo, nil
}
