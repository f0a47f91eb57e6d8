package workorder

import (
	"time"

	"github.com/google/uuid"
)

// NotificationKind classifies a notification record on the work order.
type NotificationKind string

const (
	NotifyStatusChange NotificationKind = "status_change"
	NotifyPartsIssued  NotificationKind = "parts_issued"
	NotifyCustomer     NotificationKind = "customer"
)

// Notification is a child entity recording a message queued for the customer
// or shop staff about this work order. Delivery is someone else's problem;
// the aggregate only keeps the record.
type Notification struct {
	ID          uuid.UUID
	WorkOrderID uuid.UUID
	Kind        NotificationKind
	Message     string
	CreatedAt   time.Time
	Sent        bool
}
