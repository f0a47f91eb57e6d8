package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/forgeline/heavyshop/internal/domain"
	"github.com/forgeline/heavyshop/internal/domain/inventory"
	"github.com/forgeline/heavyshop/internal/domain/workorder"
	"github.com/forgeline/heavyshop/internal/ports"
)

// LowStockReorderSubscriber reacts to inventory.low_stock_detected by
// submitting a reorder request to the purchasing system for the suggested
// quantity.
type LowStockReorderSubscriber struct {
	purchasing ports.PurchasingGateway
	logger     *slog.Logger
}

// NewLowStockReorderSubscriber creates a LowStockReorderSubscriber.
func NewLowStockReorderSubscriber(purchasing ports.PurchasingGateway, logger *slog.Logger) *LowStockReorderSubscriber {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &LowStockReorderSubscriber{purchasing: purchasing, logger: logger}
}

// Handle submits a reorder for the event's suggested quantity. Events with
// nothing to order are ignored.
func (s *LowStockReorderSubscriber) Handle(ctx context.Context, event domain.Event) error {
	low, ok := event.(inventory.LowStockDetected)
	if !ok {
		return fmt.Errorf("low stock subscriber: unexpected event type %T", event)
	}
	if low.Suggested <= 0 {
		return nil
	}

	if err := s.purchasing.SubmitReorder(ctx, low.PartID, low.Warehouse, low.Suggested); err != nil {
		return fmt.Errorf("submit reorder for part %s: %w", low.PartID, err)
	}

	s.logger.InfoContext(ctx, "reorder submitted",
		slog.String("part_id", low.PartID.String()),
		slog.String("warehouse", low.Warehouse),
		slog.Int("quantity", low.Suggested),
	)
	return nil
}

// PartsIssuedSubscriber reacts to inventory.issued by recording a
// parts-issued notification on the originating work order. The notification
// is persisted through its own unit of work, separate from the commit that
// produced the event.
type PartsIssuedSubscriber struct {
	workOrders ports.WorkOrderRepository
	uowFactory ports.UnitOfWorkFactory
	logger     *slog.Logger
}

// NewPartsIssuedSubscriber creates a PartsIssuedSubscriber.
func NewPartsIssuedSubscriber(workOrders ports.WorkOrderRepository, uowFactory ports.UnitOfWorkFactory, logger *slog.Logger) *PartsIssuedSubscriber {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &PartsIssuedSubscriber{workOrders: workOrders, uowFactory: uowFactory, logger: logger}
}

// Handle records a parts-issued notification on the work order named by the
// event. Issues not tied to a work order are ignored.
func (s *PartsIssuedSubscriber) Handle(ctx context.Context, event domain.Event) error {
	issued, ok := event.(inventory.Issued)
	if !ok {
		return fmt.Errorf("parts issued subscriber: unexpected event type %T", event)
	}
	if issued.WorkOrderID == uuid.Nil {
		return nil
	}

	wo, err := s.workOrders.GetByID(ctx, issued.WorkOrderID)
	if err != nil {
		return fmt.Errorf("load work order %s: %w", issued.WorkOrderID, err)
	}

	message := fmt.Sprintf("issued %d units of part %s from %s", issued.Quantity, issued.PartID, issued.Warehouse)
	if err := wo.AddNotification(workorder.NotifyPartsIssued, message); err != nil {
		return fmt.Errorf("record notification on work order %s: %w", wo.ID, err)
	}

	uow := s.uowFactory.New()
	uow.Register(wo)
	if _, err := uow.SaveChanges(ctx); err != nil {
		return fmt.Errorf("save work order %s: %w", wo.ID, err)
	}
	return nil
}

// RegisterSubscribers wires the application's event subscribers onto the
// dispatcher.
func RegisterSubscribers(dispatcher ports.EventDispatcher, lowStock *LowStockReorderSubscriber, partsIssued *PartsIssuedSubscriber) {
	dispatcher.Subscribe(inventory.EventLowStockDetected, lowStock.Handle)
	dispatcher.Subscribe(inventory.EventIssued, partsIssued.Handle)
}
