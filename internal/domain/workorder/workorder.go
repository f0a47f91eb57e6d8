// Package workorder contains the WorkOrder aggregate: a repair job for one
// piece of equipment, owning its status state machine and its required-parts
// and notification children. Customer and technician are referenced by
// identifier only; the aggregate never loads them.
package workorder

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/forgeline/heavyshop/internal/domain"
)

// WorkOrder is the aggregate root for a repair job.
//
// Status changes go through the transition table in status.go; an attempt
// not listed there fails with a state error and changes nothing. Technician
// capacity (max concurrent jobs) is deliberately not validated here: it
// needs a count of active work orders across the whole store, which this
// aggregate cannot see. The orchestrating service checks it before calling
// AssignTechnician.
type WorkOrder struct {
	domain.Events

	ID          uuid.UUID
	Number      string
	Equipment   domain.EquipmentIdentifier
	CustomerID  uuid.UUID
	Description string

	Status               Status
	ServiceAddress       domain.Address // on-site repair location, zero when shop work
	AssignedTechnicianID uuid.UUID      // zero when unassigned
	ScheduledPeriod      domain.DateRange
	ActualPeriod         domain.DateRange
	EstimatedCost        domain.Money
	ActualCost           domain.Money

	RequiredParts []RequiredPart
	Notifications []Notification

	Version   int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// New opens a pending work order. The number is the unique business key
// (uniqueness enforced at the persistence boundary).
func New(number string, equipment domain.EquipmentIdentifier, customerID uuid.UUID, description string, estimatedCost domain.Money) (*WorkOrder, error) {
	fields := make(map[string]string)

	if strings.TrimSpace(number) == "" {
		fields["number"] = "is required"
	}
	if equipment.IsZero() {
		fields["equipment"] = "is required"
	}
	if customerID == uuid.Nil {
		fields["customer_id"] = "is required"
	}
	if len(fields) > 0 {
		return nil, &domain.ValidationError{Fields: fields}
	}

	now := time.Now().UTC()
	wo := &WorkOrder{
		ID:            uuid.New(),
		Number:        number,
		Equipment:     equipment,
		CustomerID:    customerID,
		Description:   description,
		Status:        StatusPending,
		EstimatedCost: estimatedCost,
		ActualCost:    domain.ZeroMoney(estimatedCost.Currency()),
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	wo.Raise(Created{
		EventModel:      domain.NewEventModel(),
		WorkOrderID:     wo.ID,
		WorkOrderNumber: wo.Number,
		CustomerID:      customerID,
		VIN:             equipment.VIN(),
	})
	return wo, nil
}

// AssignTechnician puts the job in a technician's queue. A pending order
// moves to assigned; an already-assigned order may be handed to a different
// technician without a status change.
func (wo *WorkOrder) AssignTechnician(technicianID uuid.UUID) error {
	if technicianID == uuid.Nil {
		return &domain.ValidationError{Fields: map[string]string{
			"technician_id": "is required",
		}}
	}

	switch wo.Status {
	case StatusPending:
		if err := wo.transitionTo(StatusAssigned); err != nil {
			return err
		}
	case StatusAssigned:
		// Reassignment, no status change.
	default:
		return domain.NewStateError("AssignTechnician",
			"cannot assign technician while %s", wo.Status)
	}

	wo.AssignedTechnicianID = technicianID
	wo.Raise(TechnicianAssigned{
		EventModel:      domain.NewEventModel(),
		WorkOrderID:     wo.ID,
		WorkOrderNumber: wo.Number,
		TechnicianID:    technicianID,
	})
	return nil
}

// Schedule books the planned work period. Only sensible before work starts.
func (wo *WorkOrder) Schedule(period domain.DateRange) error {
	if period.IsZero() {
		return &domain.ValidationError{Fields: map[string]string{
			"scheduled_period": "is required",
		}}
	}
	if wo.Status != StatusPending && wo.Status != StatusAssigned {
		return domain.NewStateError("Schedule", "cannot schedule while %s", wo.Status)
	}
	wo.ScheduledPeriod = period
	wo.touch()
	return nil
}

// SetServiceAddress records where the equipment sits for field repairs.
// Once the job is terminal the address is frozen.
func (wo *WorkOrder) SetServiceAddress(addr domain.Address) error {
	if addr == (domain.Address{}) {
		return &domain.ValidationError{Fields: map[string]string{
			"service_address": "is required",
		}}
	}
	if wo.Status == StatusCompleted || wo.Status == StatusCancelled {
		return domain.NewStateError("SetServiceAddress",
			"cannot change service address while %s", wo.Status)
	}
	wo.ServiceAddress = addr
	wo.touch()
	return nil
}

// Start begins the repair, opening the actual-work period.
func (wo *WorkOrder) Start() error {
	if err := wo.transitionTo(StatusInProgress); err != nil {
		return err
	}
	if wo.ActualPeriod.IsZero() {
		wo.ActualPeriod = domain.NewOpenDateRange(time.Now().UTC())
	}
	return nil
}

// Hold pauses an in-progress repair, typically while waiting on parts.
func (wo *WorkOrder) Hold(reason string) error {
	if strings.TrimSpace(reason) == "" {
		return &domain.ValidationError{Fields: map[string]string{
			"reason": "is required",
		}}
	}
	if err := wo.transitionTo(StatusOnHold); err != nil {
		return err
	}
	wo.addNotification(NotifyStatusChange, fmt.Sprintf("work on hold: %s", reason))
	return nil
}

// Resume continues a held repair.
func (wo *WorkOrder) Resume() error {
	if wo.Status != StatusOnHold {
		return domain.NewStateError("Resume", "cannot resume from %s", wo.Status)
	}
	return wo.transitionTo(StatusInProgress)
}

// Complete closes the job with the final cost, ending the actual-work period
// at the current instant.
func (wo *WorkOrder) Complete(actualCost domain.Money) error {
	if err := wo.transitionTo(StatusCompleted); err != nil {
		return err
	}

	closed, err := wo.ActualPeriod.Close(time.Now().UTC())
	if err == nil {
		wo.ActualPeriod = closed
	}
	wo.ActualCost = actualCost

	wo.Raise(Completed{
		EventModel:      domain.NewEventModel(),
		WorkOrderID:     wo.ID,
		WorkOrderNumber: wo.Number,
		ActualPeriod:    wo.ActualPeriod,
		ActualCost:      actualCost,
	})
	return nil
}

// Cancel aborts the job from any state except an already-cancelled one.
// Cancelling a completed job voids it. An open work period is closed at the
// cancellation instant.
func (wo *WorkOrder) Cancel(reason string) error {
	if strings.TrimSpace(reason) == "" {
		return &domain.ValidationError{Fields: map[string]string{
			"reason": "is required",
		}}
	}
	if err := wo.transitionTo(StatusCancelled); err != nil {
		return err
	}
	if wo.ActualPeriod.IsOpenEnded() {
		if closed, err := wo.ActualPeriod.Close(time.Now().UTC()); err == nil {
			wo.ActualPeriod = closed
		}
	}
	wo.addNotification(NotifyStatusChange, fmt.Sprintf("work order cancelled: %s", reason))
	return nil
}

// AddRequiredPart appends a parts line. Rejected once work has finished.
func (wo *WorkOrder) AddRequiredPart(partID uuid.UUID, quantity int, estimatedCost domain.Money) error {
	fields := make(map[string]string)
	if partID == uuid.Nil {
		fields["part_id"] = "is required"
	}
	if quantity <= 0 {
		fields["quantity"] = fmt.Sprintf("must be positive, got %d", quantity)
	}
	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	if wo.Status.IsTerminal() {
		return domain.NewStateError("AddRequiredPart",
			"cannot add parts to a %s work order", wo.Status)
	}

	wo.RequiredParts = append(wo.RequiredParts, RequiredPart{
		ID:            uuid.New(),
		WorkOrderID:   wo.ID,
		PartID:        partID,
		Quantity:      quantity,
		EstimatedCost: estimatedCost,
	})
	wo.touch()
	return nil
}

// MarkPartReserved flags the parts line for partID as having stock held at
// the given warehouse. Called by the orchestrating service after the
// inventory reservation commits.
func (wo *WorkOrder) MarkPartReserved(partID uuid.UUID, warehouse string) error {
	for i := range wo.RequiredParts {
		if wo.RequiredParts[i].PartID == partID {
			wo.RequiredParts[i].Reserved = true
			wo.RequiredParts[i].Warehouse = warehouse
			wo.touch()
			return nil
		}
	}
	return fmt.Errorf("part %s: %w", partID, domain.ErrNotFound)
}

// AddNotification records a message to be delivered about this work order.
func (wo *WorkOrder) AddNotification(kind NotificationKind, message string) error {
	if strings.TrimSpace(message) == "" {
		return &domain.ValidationError{Fields: map[string]string{
			"message": "is required",
		}}
	}
	wo.addNotification(kind, message)
	return nil
}

// MarkNotificationSent flags a notification record as delivered.
func (wo *WorkOrder) MarkNotificationSent(notificationID uuid.UUID) error {
	for i := range wo.Notifications {
		if wo.Notifications[i].ID == notificationID {
			wo.Notifications[i].Sent = true
			wo.touch()
			return nil
		}
	}
	return fmt.Errorf("notification %s: %w", notificationID, domain.ErrNotFound)
}

func (wo *WorkOrder) addNotification(kind NotificationKind, message string) {
	wo.Notifications = append(wo.Notifications, Notification{
		ID:          uuid.New(),
		WorkOrderID: wo.ID,
		Kind:        kind,
		Message:     message,
		CreatedAt:   time.Now().UTC(),
	})
	wo.touch()
}

// transitionTo validates the move against the transition table, applies it,
// and raises StatusChanged. The check happens before any mutation.
func (wo *WorkOrder) transitionTo(next Status) error {
	if !wo.Status.CanTransitionTo(next) {
		return domain.NewStateError("transition",
			"cannot move from %s to %s", wo.Status, next)
	}

	from := wo.Status
	wo.Status = next
	wo.touch()

	wo.Raise(StatusChanged{
		EventModel:      domain.NewEventModel(),
		WorkOrderID:     wo.ID,
		WorkOrderNumber: wo.Number,
		From:            from,
		To:              next,
	})
	return nil
}

func (wo *WorkOrder) touch() {
	wo.UpdatedAt = time.Now().UTC()
}
