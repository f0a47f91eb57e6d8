package workorder

import (
	"github.com/google/uuid"

	"github.com/forgeline/heavyshop/internal/domain"
)

// Event names for subscriber routing.
const (
	EventCreated            = "workorder.created"
	EventTechnicianAssigned = "workorder.technician_assigned"
	EventStatusChanged      = "workorder.status_changed"
	EventCompleted          = "workorder.completed"
)

// Created is raised when a work order is opened for a piece of equipment.
type Created struct {
	domain.EventModel
	WorkOrderID     uuid.UUID
	WorkOrderNumber string
	CustomerID      uuid.UUID
	VIN             string
}

func (Created) EventName() string { return EventCreated }

// TechnicianAssigned is raised when a technician takes ownership of the job.
type TechnicianAssigned struct {
	domain.EventModel
	WorkOrderID     uuid.UUID
	WorkOrderNumber string
	TechnicianID    uuid.UUID
}

func (TechnicianAssigned) EventName() string { return EventTechnicianAssigned }

// StatusChanged is raised on every permitted status transition, carrying the
// from/to snapshot.
type StatusChanged struct {
	domain.EventModel
	WorkOrderID     uuid.UUID
	WorkOrderNumber string
	From            Status
	To              Status
}

func (StatusChanged) EventName() string { return EventStatusChanged }

// Completed is raised alongside StatusChanged when work finishes, carrying
// the closed actual-work period and final cost.
type Completed struct {
	domain.EventModel
	WorkOrderID     uuid.UUID
	WorkOrderNumber string
	ActualPeriod    domain.DateRange
	ActualCost      domain.Money
}

func (Completed) EventName() string { return EventCompleted }
