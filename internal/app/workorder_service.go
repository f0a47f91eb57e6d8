package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/forgeline/heavyshop/internal/domain"
	"github.com/forgeline/heavyshop/internal/domain/workorder"
	"github.com/forgeline/heavyshop/internal/ports"
)

// Compile-time check that WorkOrderService implements ports.WorkOrderService.
var _ ports.WorkOrderService = (*WorkOrderService)(nil)

// WorkOrderService implements ports.WorkOrderService. Beyond the plain
// load-mutate-commit cycle it owns the two orchestrations the aggregates
// cannot do alone: the technician capacity check (needs a cross-aggregate
// count) and multi-line parts reservation (independent inventory commits
// with compensating releases).
type WorkOrderService struct {
	workOrders  ports.WorkOrderRepository
	inventories ports.InventoryRepository
	technicians ports.TechnicianRepository
	uow         ports.UnitOfWorkFactory
	logger      *slog.Logger
}

// NewWorkOrderService creates a WorkOrderService.
func NewWorkOrderService(
	workOrders ports.WorkOrderRepository,
	inventories ports.InventoryRepository,
	technicians ports.TechnicianRepository,
	uowFactory ports.UnitOfWorkFactory,
	logger *slog.Logger,
) *WorkOrderService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &WorkOrderService{
		workOrders:  workOrders,
		inventories: inventories,
		technicians: technicians,
		uow:         uowFactory,
		logger:      logger,
	}
}

// CreateWorkOrder opens a pending work order. Number uniqueness lives in the
// storage schema; a duplicate surfaces as domain.ErrConflict.
func (s *WorkOrderService) CreateWorkOrder(ctx context.Context, number string, equipment domain.EquipmentIdentifier, customerID uuid.UUID, description string, estimatedCost domain.Money, serviceAddress domain.Address) (*workorder.WorkOrder, error) {
	s.logger.InfoContext(ctx, "creating work order",
		slog.String("number", number),
		slog.String("vin", equipment.VIN()),
	)

	wo, err := workorder.New(number, equipment, customerID, description, estimatedCost)
	if err != nil {
		return nil, err
	}
	if serviceAddress != (domain.Address{}) {
		if err := wo.SetServiceAddress(serviceAddress); err != nil {
			return nil, err
		}
	}

	if err := s.commit(ctx, "CreateWorkOrder", wo); err != nil {
		return nil, err
	}
	return wo, nil
}

// GetWorkOrder returns one work order with its children.
func (s *WorkOrderService) GetWorkOrder(ctx context.Context, id uuid.UUID) (*workorder.WorkOrder, error) {
	return s.workOrders.GetByID(ctx, id)
}

// GetByNumber looks a work order up by its business key.
func (s *WorkOrderService) GetByNumber(ctx context.Context, number string) (*workorder.WorkOrder, error) {
	return s.workOrders.GetByNumber(ctx, number)
}

// ListWorkOrders returns work orders, optionally filtered by status.
func (s *WorkOrderService) ListWorkOrders(ctx context.Context, status workorder.Status) ([]workorder.WorkOrder, error) {
	return s.workOrders.List(ctx, status)
}

// AssignTechnician checks the technician's concurrent-job capacity and then
// assigns. The check happens here because it needs a count of active work
// orders across the store, which the WorkOrder aggregate cannot see. The
// check and the assignment are not atomic; a concurrent assignment can slip
// past the count and is tolerated, since the cap is a scheduling guideline
// rather than a hard stock invariant.
func (s *WorkOrderService) AssignTechnician(ctx context.Context, id, technicianID uuid.UUID) (*workorder.WorkOrder, error) {
	tech, err := s.technicians.GetByID(ctx, technicianID)
	if err != nil {
		return nil, fmt.Errorf("loading technician: %w", err)
	}
	if !tech.Active {
		return nil, domain.NewStateError("AssignTechnician",
			"technician %s is inactive", technicianID)
	}

	active, err := s.workOrders.CountActiveByTechnician(ctx, technicianID)
	if err != nil {
		return nil, fmt.Errorf("counting active work orders: %w", err)
	}
	if active >= tech.MaxConcurrentJobs {
		return nil, domain.NewStateError("AssignTechnician",
			"technician %s already has %d active work orders (limit %d)",
			technicianID, active, tech.MaxConcurrentJobs)
	}

	return s.mutate(ctx, "AssignTechnician", id, func(wo *workorder.WorkOrder) error {
		return wo.AssignTechnician(technicianID)
	})
}

// StartWork begins the repair.
func (s *WorkOrderService) StartWork(ctx context.Context, id uuid.UUID) (*workorder.WorkOrder, error) {
	return s.mutate(ctx, "StartWork", id, func(wo *workorder.WorkOrder) error {
		return wo.Start()
	})
}

// HoldWork pauses the repair with a reason.
func (s *WorkOrderService) HoldWork(ctx context.Context, id uuid.UUID, reason string) (*workorder.WorkOrder, error) {
	return s.mutate(ctx, "HoldWork", id, func(wo *workorder.WorkOrder) error {
		return wo.Hold(reason)
	})
}

// ResumeWork continues a held repair.
func (s *WorkOrderService) ResumeWork(ctx context.Context, id uuid.UUID) (*workorder.WorkOrder, error) {
	return s.mutate(ctx, "ResumeWork", id, func(wo *workorder.WorkOrder) error {
		return wo.Resume()
	})
}

// CompleteWork closes the job with its final cost.
func (s *WorkOrderService) CompleteWork(ctx context.Context, id uuid.UUID, actualCost domain.Money) (*workorder.WorkOrder, error) {
	return s.mutate(ctx, "CompleteWork", id, func(wo *workorder.WorkOrder) error {
		return wo.Complete(actualCost)
	})
}

// CancelWork aborts the job. Stock still reserved for its parts lines is
// released first, each inventory in its own commit cycle; a release that
// fails is logged and skipped so cancellation always goes through, leaving
// any stuck reservation for manual release.
func (s *WorkOrderService) CancelWork(ctx context.Context, id uuid.UUID, reason string) (*workorder.WorkOrder, error) {
	wo, err := s.workOrders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	for _, line := range wo.RequiredParts {
		if !line.Reserved {
			continue
		}
		if err := s.releaseLine(ctx, wo.ID, line.PartID, line.Warehouse, line.Quantity); err != nil {
			s.logger.ErrorContext(ctx, "failed to release reservation during cancel",
				slog.String("operation", "CancelWork"),
				slog.String("work_order_id", id.String()),
				slog.String("part_id", line.PartID.String()),
				slog.Any("error", err),
			)
		}
	}

	if err := wo.Cancel(reason); err != nil {
		return nil, err
	}
	if err := s.commit(ctx, "CancelWork", wo); err != nil {
		return nil, err
	}
	return wo, nil
}

// AddRequiredPart appends a parts line to the work order. The estimated cost
// for the line comes in as zero; pricing is filled by catalog lookups at the
// HTTP layer when available.
func (s *WorkOrderService) AddRequiredPart(ctx context.Context, id, partID uuid.UUID, quantity int) (*workorder.WorkOrder, error) {
	return s.mutate(ctx, "AddRequiredPart", id, func(wo *workorder.WorkOrder) error {
		return wo.AddRequiredPart(partID, quantity, domain.ZeroMoney("USD"))
	})
}

// ReserveRequiredParts holds stock for every unreserved parts line at the
// given warehouse. Each inventory commits independently; aggregates are
// deliberately not spanned by one transaction. On a failed line the already
// held lines are compensated by releasing their reservations, so the caller
// sees all-or-nothing at the work-order level even though the store never
// does a distributed transaction.
func (s *WorkOrderService) ReserveRequiredParts(ctx context.Context, id uuid.UUID, warehouse, requestedBy string) (*workorder.WorkOrder, error) {
	wo, err := s.workOrders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	type reservedLine struct {
		partID   uuid.UUID
		quantity int
	}
	var done []reservedLine

	for _, line := range wo.RequiredParts {
		if line.Reserved {
			continue
		}

		if err := s.reserveLine(ctx, wo, line.PartID, warehouse, line.Quantity, requestedBy); err != nil {
			s.logger.ErrorContext(ctx, "reservation failed, compensating",
				slog.String("operation", "ReserveRequiredParts"),
				slog.String("work_order_id", id.String()),
				slog.String("part_id", line.PartID.String()),
				slog.Int("reserved_lines", len(done)),
				slog.Any("error", err),
			)
			for i := len(done) - 1; i >= 0; i-- {
				if relErr := s.releaseLine(ctx, wo.ID, done[i].partID, warehouse, done[i].quantity); relErr != nil {
					s.logger.ErrorContext(ctx, "compensating release failed",
						slog.String("operation", "ReserveRequiredParts"),
						slog.String("part_id", done[i].partID.String()),
						slog.Any("error", relErr),
					)
				}
			}
			return nil, fmt.Errorf("reserving part %s: %w", line.PartID, err)
		}

		done = append(done, reservedLine{partID: line.PartID, quantity: line.Quantity})
		if err := wo.MarkPartReserved(line.PartID, warehouse); err != nil {
			return nil, err
		}
	}

	if err := s.commit(ctx, "ReserveRequiredParts", wo); err != nil {
		return nil, err
	}
	return wo, nil
}

// reserveLine runs one reserve-and-commit cycle against a single inventory.
func (s *WorkOrderService) reserveLine(ctx context.Context, wo *workorder.WorkOrder, partID uuid.UUID, warehouse string, quantity int, requestedBy string) error {
	inv, err := s.inventories.GetByPartAndWarehouse(ctx, partID, warehouse)
	if err != nil {
		return err
	}
	if err := inv.ReserveParts(quantity, wo.ID, requestedBy); err != nil {
		return err
	}

	u := s.uow.New()
	u.Register(inv)
	_, err = u.SaveChanges(ctx)
	return err
}

// releaseLine undoes one line's reservation in its own commit cycle.
func (s *WorkOrderService) releaseLine(ctx context.Context, workOrderID, partID uuid.UUID, warehouse string, quantity int) error {
	inv, err := s.inventories.GetByPartAndWarehouse(ctx, partID, warehouse)
	if err != nil {
		return err
	}
	if err := inv.ReleaseReservation(quantity, workOrderID, "system"); err != nil {
		return err
	}

	u := s.uow.New()
	u.Register(inv)
	_, err = u.SaveChanges(ctx)
	return err
}

// mutate runs one load-mutate-commit cycle against a single work order.
func (s *WorkOrderService) mutate(ctx context.Context, operation string, id uuid.UUID, fn func(*workorder.WorkOrder) error) (*workorder.WorkOrder, error) {
	wo, err := s.workOrders.GetByID(ctx, id)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to load work order",
			slog.String("operation", operation),
			slog.String("work_order_id", id.String()),
			slog.Any("error", err),
		)
		return nil, err
	}

	if err := fn(wo); err != nil {
		return nil, err
	}

	if err := s.commit(ctx, operation, wo); err != nil {
		return nil, err
	}
	return wo, nil
}

func (s *WorkOrderService) commit(ctx context.Context, operation string, wo *workorder.WorkOrder) error {
	u := s.uow.New()
	u.Register(wo)

	if _, err := u.SaveChanges(ctx); err != nil {
		s.logger.ErrorContext(ctx, "failed to commit work order",
			slog.String("operation", operation),
			slog.String("work_order_id", wo.ID.String()),
			slog.Any("error", err),
		)
		return err
	}
	return nil
}
