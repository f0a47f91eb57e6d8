package inventory

import (
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/forgeline/heavyshop/internal/domain"
)

func newTestInventory(t *testing.T, minLevel, maxLevel int) *Inventory {
	t.Helper()
	inv, err := New(uuid.New(), "duluth-main", "A-14-3", minLevel, maxLevel)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return inv
}

// snapshot captures the observable quantity state and audit length so tests
// can assert that failed operations change nothing.
type snapshot struct {
	onHand   int
	reserved int
	txCount  int
	events   int
}

func snap(inv *Inventory) snapshot {
	return snapshot{
		onHand:   inv.QuantityOnHand,
		reserved: inv.QuantityReserved,
		txCount:  len(inv.Transactions),
		events:   len(inv.PendingEvents()),
	}
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("starts at zero and active", func(t *testing.T) {
		t.Parallel()
		inv := newTestInventory(t, 10, 50)

		if inv.QuantityOnHand != 0 || inv.QuantityReserved != 0 {
			t.Errorf("quantities = %d/%d, want 0/0", inv.QuantityOnHand, inv.QuantityReserved)
		}
		if !inv.Active {
			t.Error("new inventory is not active")
		}
		if inv.ReorderQuantity != 40 {
			t.Errorf("ReorderQuantity = %d, want max-min = 40", inv.ReorderQuantity)
		}
		if len(inv.PendingEvents()) != 0 {
			t.Errorf("new inventory has %d pending events, want 0", len(inv.PendingEvents()))
		}
	})

	tests := []struct {
		name      string
		partID    uuid.UUID
		warehouse string
		minLevel  int
		maxLevel  int
	}{
		{"nil part id", uuid.Nil, "duluth-main", 10, 50},
		{"blank warehouse", uuid.New(), "   ", 10, 50},
		{"negative minimum", uuid.New(), "duluth-main", -1, 50},
		{"maximum below minimum", uuid.New(), "duluth-main", 10, 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := New(tt.partID, tt.warehouse, "A-14-3", tt.minLevel, tt.maxLevel)
			if !errors.Is(err, domain.ErrValidation) {
				t.Errorf("error = %v, want ErrValidation", err)
			}
		})
	}
}

func TestReceiveParts(t *testing.T) {
	t.Parallel()

	inv := newTestInventory(t, 10, 50)

	if err := inv.ReceiveParts(30, "mechanic.ortiz", "PO-1041"); err != nil {
		t.Fatalf("ReceiveParts failed: %v", err)
	}

	if inv.QuantityOnHand != 30 {
		t.Errorf("QuantityOnHand = %d, want 30", inv.QuantityOnHand)
	}
	if len(inv.Transactions) != 1 {
		t.Fatalf("transaction count = %d, want 1", len(inv.Transactions))
	}
	tx := inv.Transactions[0]
	if tx.Type != TypeReceipt || tx.Quantity != 30 {
		t.Errorf("transaction = %s/%d, want receipt/+30", tx.Type, tx.Quantity)
	}
	if tx.ReferenceNumber != "PO-1041" {
		t.Errorf("ReferenceNumber = %q, want PO-1041", tx.ReferenceNumber)
	}

	events := inv.PendingEvents()
	if len(events) != 1 {
		t.Fatalf("pending events = %d, want 1", len(events))
	}
	received, ok := events[0].(Received)
	if !ok {
		t.Fatalf("event type = %T, want Received", events[0])
	}
	if received.NewOnHand != 30 {
		t.Errorf("Received.NewOnHand = %d, want 30", received.NewOnHand)
	}
}

func TestReserveParts(t *testing.T) {
	t.Parallel()

	workOrder := uuid.New()

	t.Run("reserves within available", func(t *testing.T) {
		t.Parallel()
		inv := newTestInventory(t, 10, 50)
		if err := inv.ReceiveParts(30, "mechanic.ortiz", ""); err != nil {
			t.Fatalf("ReceiveParts failed: %v", err)
		}
		inv.ClearEvents()

		if err := inv.ReserveParts(25, workOrder, "planner.vee"); err != nil {
			t.Fatalf("ReserveParts failed: %v", err)
		}

		if inv.QuantityReserved != 25 {
			t.Errorf("QuantityReserved = %d, want 25", inv.QuantityReserved)
		}
		if inv.AvailableQuantity() != 5 {
			t.Errorf("AvailableQuantity() = %d, want 5", inv.AvailableQuantity())
		}

		events := inv.PendingEvents()
		if len(events) != 1 {
			t.Fatalf("pending events = %d, want 1", len(events))
		}
		reserved, ok := events[0].(Reserved)
		if !ok {
			t.Fatalf("event type = %T, want Reserved", events[0])
		}
		if reserved.RemainingAvailable != 5 {
			t.Errorf("Reserved.RemainingAvailable = %d, want 5", reserved.RemainingAvailable)
		}

		tx := inv.Transactions[len(inv.Transactions)-1]
		if tx.Type != TypeReservation || tx.Quantity != 25 || tx.WorkOrderID != workOrder {
			t.Errorf("transaction = %s/%d/%s, want reservation/+25/%s",
				tx.Type, tx.Quantity, tx.WorkOrderID, workOrder)
		}
	})

	t.Run("over-reservation fails and leaves state unchanged", func(t *testing.T) {
		t.Parallel()
		inv := newTestInventory(t, 10, 50)
		if err := inv.ReceiveParts(10, "mechanic.ortiz", ""); err != nil {
			t.Fatalf("ReceiveParts failed: %v", err)
		}

		before := snap(inv)
		err := inv.ReserveParts(11, workOrder, "planner.vee")
		if !errors.Is(err, domain.ErrConflict) {
			t.Fatalf("error = %v, want ErrConflict", err)
		}
		if got := snap(inv); got != before {
			t.Errorf("state changed on failed reserve: %+v -> %+v", before, got)
		}
	})

	t.Run("invalid input fails validation without mutation", func(t *testing.T) {
		t.Parallel()
		inv := newTestInventory(t, 10, 50)
		if err := inv.ReceiveParts(10, "mechanic.ortiz", ""); err != nil {
			t.Fatalf("ReceiveParts failed: %v", err)
		}

		before := snap(inv)
		tests := []struct {
			name     string
			quantity int
			wo       uuid.UUID
			by       string
		}{
			{"zero quantity", 0, workOrder, "planner.vee"},
			{"negative quantity", -5, workOrder, "planner.vee"},
			{"nil work order", 5, uuid.Nil, "planner.vee"},
			{"blank requester", 5, workOrder, "  "},
		}
		for _, tt := range tests {
			if err := inv.ReserveParts(tt.quantity, tt.wo, tt.by); !errors.Is(err, domain.ErrValidation) {
				t.Errorf("%s: error = %v, want ErrValidation", tt.name, err)
			}
		}
		if got := snap(inv); got != before {
			t.Errorf("state changed on failed validation: %+v -> %+v", before, got)
		}
	})

	t.Run("inactive inventory rejects reservations", func(t *testing.T) {
		t.Parallel()
		inv := newTestInventory(t, 0, 50)
		if err := inv.Deactivate(); err != nil {
			t.Fatalf("Deactivate failed: %v", err)
		}
		if err := inv.ReserveParts(1, workOrder, "planner.vee"); !errors.Is(err, domain.ErrConflict) {
			t.Errorf("error = %v, want ErrConflict", err)
		}
	})
}

func TestReleaseReservation(t *testing.T) {
	t.Parallel()

	workOrder := uuid.New()
	inv := newTestInventory(t, 10, 50)
	if err := inv.ReceiveParts(30, "mechanic.ortiz", ""); err != nil {
		t.Fatalf("ReceiveParts failed: %v", err)
	}
	if err := inv.ReserveParts(20, workOrder, "planner.vee"); err != nil {
		t.Fatalf("ReserveParts failed: %v", err)
	}
	inv.ClearEvents()

	if err := inv.ReleaseReservation(15, workOrder, "planner.vee"); err != nil {
		t.Fatalf("ReleaseReservation failed: %v", err)
	}

	if inv.QuantityReserved != 5 {
		t.Errorf("QuantityReserved = %d, want 5", inv.QuantityReserved)
	}
	// Release is audit-only: no event.
	if len(inv.PendingEvents()) != 0 {
		t.Errorf("pending events = %d, want 0", len(inv.PendingEvents()))
	}
	tx := inv.Transactions[len(inv.Transactions)-1]
	if tx.Type != TypeRelease || tx.Quantity != -15 {
		t.Errorf("transaction = %s/%d, want release/-15", tx.Type, tx.Quantity)
	}

	// Releasing more than reserved is a state error.
	before := snap(inv)
	if err := inv.ReleaseReservation(6, workOrder, "planner.vee"); !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("error = %v, want ErrConflict", err)
	}
	if got := snap(inv); got != before {
		t.Errorf("state changed on failed release: %+v -> %+v", before, got)
	}
}

func TestIssueParts(t *testing.T) {
	t.Parallel()

	workOrder := uuid.New()

	t.Run("issue decrements on-hand and reserved", func(t *testing.T) {
		t.Parallel()
		inv := newTestInventory(t, 2, 50)
		if err := inv.ReceiveParts(30, "mechanic.ortiz", ""); err != nil {
			t.Fatalf("ReceiveParts failed: %v", err)
		}
		if err := inv.ReserveParts(10, workOrder, "planner.vee"); err != nil {
			t.Fatalf("ReserveParts failed: %v", err)
		}
		inv.ClearEvents()

		if err := inv.IssueParts(10, workOrder, "mechanic.ortiz"); err != nil {
			t.Fatalf("IssueParts failed: %v", err)
		}

		if inv.QuantityOnHand != 20 || inv.QuantityReserved != 0 {
			t.Errorf("quantities = %d/%d, want 20/0", inv.QuantityOnHand, inv.QuantityReserved)
		}

		// Above threshold: exactly one event.
		events := inv.PendingEvents()
		if len(events) != 1 {
			t.Fatalf("pending events = %d, want 1", len(events))
		}
		issued, ok := events[0].(Issued)
		if !ok {
			t.Fatalf("event type = %T, want Issued", events[0])
		}
		if issued.RemainingOnHand != 20 {
			t.Errorf("Issued.RemainingOnHand = %d, want 20", issued.RemainingOnHand)
		}

		tx := inv.Transactions[len(inv.Transactions)-1]
		if tx.Type != TypeIssue || tx.Quantity != -10 {
			t.Errorf("transaction = %s/%d, want issue/-10", tx.Type, tx.Quantity)
		}
	})

	t.Run("issue crossing the threshold raises low stock second", func(t *testing.T) {
		t.Parallel()
		inv := newTestInventory(t, 10, 50)
		if err := inv.ReceiveParts(30, "mechanic.ortiz", ""); err != nil {
			t.Fatalf("ReceiveParts failed: %v", err)
		}
		if err := inv.ReserveParts(25, workOrder, "planner.vee"); err != nil {
			t.Fatalf("ReserveParts failed: %v", err)
		}
		inv.ClearEvents()

		if err := inv.IssueParts(25, workOrder, "mechanic.ortiz"); err != nil {
			t.Fatalf("IssueParts failed: %v", err)
		}

		events := inv.PendingEvents()
		if len(events) != 2 {
			t.Fatalf("pending events = %d, want 2", len(events))
		}
		if _, ok := events[0].(Issued); !ok {
			t.Errorf("first event = %T, want Issued", events[0])
		}
		low, ok := events[1].(LowStockDetected)
		if !ok {
			t.Fatalf("second event = %T, want LowStockDetected", events[1])
		}
		if low.Available != 5 || low.Minimum != 10 {
			t.Errorf("LowStockDetected = %d available / %d minimum, want 5/10", low.Available, low.Minimum)
		}
		if low.Suggested != 45 {
			t.Errorf("LowStockDetected.Suggested = %d, want max-available = 45", low.Suggested)
		}
	})

	t.Run("issuing beyond reservation fails", func(t *testing.T) {
		t.Parallel()
		inv := newTestInventory(t, 2, 50)
		if err := inv.ReceiveParts(30, "mechanic.ortiz", ""); err != nil {
			t.Fatalf("ReceiveParts failed: %v", err)
		}
		if err := inv.ReserveParts(5, workOrder, "planner.vee"); err != nil {
			t.Fatalf("ReserveParts failed: %v", err)
		}

		before := snap(inv)
		if err := inv.IssueParts(6, workOrder, "mechanic.ortiz"); !errors.Is(err, domain.ErrConflict) {
			t.Fatalf("error = %v, want ErrConflict", err)
		}
		if got := snap(inv); got != before {
			t.Errorf("state changed on failed issue: %+v -> %+v", before, got)
		}
	})
}

func TestAdjustQuantity(t *testing.T) {
	t.Parallel()

	t.Run("adjustment records signed difference", func(t *testing.T) {
		t.Parallel()
		inv := newTestInventory(t, 5, 50)
		if err := inv.ReceiveParts(40, "mechanic.ortiz", ""); err != nil {
			t.Fatalf("ReceiveParts failed: %v", err)
		}
		inv.ClearEvents()

		if err := inv.AdjustQuantity(33, "cycle count", "auditor.kim"); err != nil {
			t.Fatalf("AdjustQuantity failed: %v", err)
		}

		if inv.QuantityOnHand != 33 {
			t.Errorf("QuantityOnHand = %d, want 33", inv.QuantityOnHand)
		}
		tx := inv.Transactions[len(inv.Transactions)-1]
		if tx.Type != TypeAdjustment || tx.Quantity != -7 {
			t.Errorf("transaction = %s/%d, want adjustment/-7", tx.Type, tx.Quantity)
		}

		events := inv.PendingEvents()
		if len(events) != 1 {
			t.Fatalf("pending events = %d, want 1", len(events))
		}
		adj, ok := events[0].(Adjusted)
		if !ok {
			t.Fatalf("event type = %T, want Adjusted", events[0])
		}
		if adj.OldQuantity != 40 || adj.NewQuantity != 33 || adj.Difference != -7 {
			t.Errorf("Adjusted = %d->%d (%+d), want 40->33 (-7)",
				adj.OldQuantity, adj.NewQuantity, adj.Difference)
		}
	})

	t.Run("adjustment below threshold raises low stock", func(t *testing.T) {
		t.Parallel()
		inv := newTestInventory(t, 10, 50)
		if err := inv.ReceiveParts(40, "mechanic.ortiz", ""); err != nil {
			t.Fatalf("ReceiveParts failed: %v", err)
		}
		inv.ClearEvents()

		if err := inv.AdjustQuantity(8, "shrinkage", "auditor.kim"); err != nil {
			t.Fatalf("AdjustQuantity failed: %v", err)
		}

		events := inv.PendingEvents()
		if len(events) != 2 {
			t.Fatalf("pending events = %d, want 2", len(events))
		}
		if _, ok := events[1].(LowStockDetected); !ok {
			t.Errorf("second event = %T, want LowStockDetected", events[1])
		}
	})

	t.Run("adjusting below reserved fails unchanged", func(t *testing.T) {
		t.Parallel()
		inv := newTestInventory(t, 5, 50)
		workOrder := uuid.New()
		if err := inv.ReceiveParts(30, "mechanic.ortiz", ""); err != nil {
			t.Fatalf("ReceiveParts failed: %v", err)
		}
		if err := inv.ReserveParts(20, workOrder, "planner.vee"); err != nil {
			t.Fatalf("ReserveParts failed: %v", err)
		}

		before := snap(inv)
		if err := inv.AdjustQuantity(19, "cycle count", "auditor.kim"); !errors.Is(err, domain.ErrConflict) {
			t.Fatalf("error = %v, want ErrConflict", err)
		}
		if got := snap(inv); got != before {
			t.Errorf("state changed on failed adjust: %+v -> %+v", before, got)
		}
	})
}

func TestReturnParts(t *testing.T) {
	t.Parallel()

	workOrder := uuid.New()
	inv := newTestInventory(t, 2, 50)
	if err := inv.ReceiveParts(10, "mechanic.ortiz", ""); err != nil {
		t.Fatalf("ReceiveParts failed: %v", err)
	}
	inv.ClearEvents()

	if err := inv.ReturnParts(3, workOrder, "mechanic.ortiz"); err != nil {
		t.Fatalf("ReturnParts failed: %v", err)
	}

	if inv.QuantityOnHand != 13 {
		t.Errorf("QuantityOnHand = %d, want 13", inv.QuantityOnHand)
	}
	tx := inv.Transactions[len(inv.Transactions)-1]
	if tx.Type != TypeReturn || tx.Quantity != 3 {
		t.Errorf("transaction = %s/%d, want return/+3", tx.Type, tx.Quantity)
	}
}

func TestMoveToBinLocation(t *testing.T) {
	t.Parallel()

	inv := newTestInventory(t, 2, 50)
	if err := inv.MoveToBinLocation("B-02-1", "mechanic.ortiz"); err != nil {
		t.Fatalf("MoveToBinLocation failed: %v", err)
	}

	if inv.BinLocation != "B-02-1" {
		t.Errorf("BinLocation = %q, want B-02-1", inv.BinLocation)
	}
	if len(inv.Transactions) != 1 {
		t.Fatalf("transaction count = %d, want 1", len(inv.Transactions))
	}
	tx := inv.Transactions[0]
	if tx.Type != TypeAdjustment || tx.Quantity != 0 {
		t.Errorf("transaction = %s/%d, want adjustment/0", tx.Type, tx.Quantity)
	}
	if len(inv.PendingEvents()) != 0 {
		t.Errorf("pending events = %d, want 0", len(inv.PendingEvents()))
	}

	if err := inv.MoveToBinLocation("  ", "mechanic.ortiz"); !errors.Is(err, domain.ErrValidation) {
		t.Errorf("blank bin: error = %v, want ErrValidation", err)
	}
}

func TestDeactivate(t *testing.T) {
	t.Parallel()

	t.Run("allowed only when empty", func(t *testing.T) {
		t.Parallel()
		inv := newTestInventory(t, 0, 50)
		if err := inv.Deactivate(); err != nil {
			t.Fatalf("Deactivate failed: %v", err)
		}
		if inv.Active {
			t.Error("inventory still active after Deactivate")
		}
	})

	t.Run("rejected while stocked", func(t *testing.T) {
		t.Parallel()
		inv := newTestInventory(t, 0, 50)
		if err := inv.ReceiveParts(1, "mechanic.ortiz", ""); err != nil {
			t.Fatalf("ReceiveParts failed: %v", err)
		}
		if err := inv.Deactivate(); !errors.Is(err, domain.ErrConflict) {
			t.Errorf("error = %v, want ErrConflict", err)
		}
	})

	t.Run("all movements rejected once inactive", func(t *testing.T) {
		t.Parallel()
		inv := newTestInventory(t, 0, 50)
		if err := inv.Deactivate(); err != nil {
			t.Fatalf("Deactivate failed: %v", err)
		}
		before := snap(inv)

		ops := map[string]func() error{
			"ReceiveParts":       func() error { return inv.ReceiveParts(5, "mechanic.ortiz", "") },
			"ReserveParts":       func() error { return inv.ReserveParts(1, uuid.New(), "planner") },
			"ReleaseReservation": func() error { return inv.ReleaseReservation(1, uuid.New(), "planner") },
			"IssueParts":         func() error { return inv.IssueParts(1, uuid.New(), "mechanic.ortiz") },
			"ReturnParts":        func() error { return inv.ReturnParts(1, uuid.New(), "mechanic.ortiz") },
			"AdjustQuantity":     func() error { return inv.AdjustQuantity(10, "cycle count", "auditor") },
			"MoveToBinLocation":  func() error { return inv.MoveToBinLocation("B-02-1", "mechanic.ortiz") },
		}
		for name, op := range ops {
			if err := op(); !errors.Is(err, domain.ErrConflict) {
				t.Errorf("%s on inactive inventory: error = %v, want ErrConflict", name, err)
			}
		}
		if got := snap(inv); got != before {
			t.Errorf("inactive inventory mutated: %+v -> %+v", before, got)
		}
	})
}

func TestDerivedQueries(t *testing.T) {
	t.Parallel()

	inv := newTestInventory(t, 10, 50)

	if !inv.IsOutOfStock() {
		t.Error("empty inventory is not out of stock")
	}
	if !inv.IsLowStock() {
		t.Error("empty inventory is not low stock")
	}
	if got := inv.CalculateReorderQuantity(); got != 50 {
		t.Errorf("CalculateReorderQuantity() = %d, want 50", got)
	}

	if err := inv.ReceiveParts(45, "mechanic.ortiz", ""); err != nil {
		t.Fatalf("ReceiveParts failed: %v", err)
	}
	if inv.IsLowStock() {
		t.Error("45 available against minimum 10 reports low stock")
	}
	if got := inv.CalculateReorderQuantity(); got != 0 {
		t.Errorf("CalculateReorderQuantity() = %d above threshold, want 0", got)
	}
}

// TestReservedNeverExceedsOnHand drives a mixed operation sequence and checks
// the core invariant after every successful call.
func TestReservedNeverExceedsOnHand(t *testing.T) {
	t.Parallel()

	workOrder := uuid.New()
	inv := newTestInventory(t, 5, 100)

	steps := []struct {
		name string
		op   func() error
	}{
		{"receive 20", func() error { return inv.ReceiveParts(20, "a", "") }},
		{"reserve 15", func() error { return inv.ReserveParts(15, workOrder, "a") }},
		{"reserve 10 (fails)", func() error { return inv.ReserveParts(10, workOrder, "a") }},
		{"issue 10", func() error { return inv.IssueParts(10, workOrder, "a") }},
		{"release 5", func() error { return inv.ReleaseReservation(5, workOrder, "a") }},
		{"adjust to 3", func() error { return inv.AdjustQuantity(3, "count", "a") }},
		{"reserve 3", func() error { return inv.ReserveParts(3, workOrder, "a") }},
		{"issue 4 (fails)", func() error { return inv.IssueParts(4, workOrder, "a") }},
		{"issue 3", func() error { return inv.IssueParts(3, workOrder, "a") }},
	}

	txCount := 0
	for _, step := range steps {
		err := step.op()
		if err == nil {
			txCount++
		}
		if inv.QuantityReserved > inv.QuantityOnHand {
			t.Fatalf("after %q: reserved %d > on hand %d", step.name, inv.QuantityReserved, inv.QuantityOnHand)
		}
		if inv.AvailableQuantity() != inv.QuantityOnHand-inv.QuantityReserved {
			t.Fatalf("after %q: available %d != %d - %d",
				step.name, inv.AvailableQuantity(), inv.QuantityOnHand, inv.QuantityReserved)
		}
		if len(inv.Transactions) != txCount {
			t.Fatalf("after %q: %d transactions, want %d (one per successful mutation)",
				step.name, len(inv.Transactions), txCount)
		}
	}
}

// TestReceiveReserveIssueScenario walks the end-to-end flow from the shop
// floor: receive a delivery, hold most of it for a work order, then issue the
// hold and drop below the minimum.
func TestReceiveReserveIssueScenario(t *testing.T) {
	t.Parallel()

	workOrder := uuid.New()
	inv := newTestInventory(t, 10, 50)

	if err := inv.ReceiveParts(30, "mechanic.ortiz", "PO-88"); err != nil {
		t.Fatalf("ReceiveParts failed: %v", err)
	}
	if inv.QuantityOnHand != 30 || inv.QuantityReserved != 0 {
		t.Fatalf("after receive: %d/%d, want 30/0", inv.QuantityOnHand, inv.QuantityReserved)
	}

	if err := inv.ReserveParts(25, workOrder, "planner.vee"); err != nil {
		t.Fatalf("ReserveParts failed: %v", err)
	}
	if inv.QuantityReserved != 25 || inv.AvailableQuantity() != 5 {
		t.Fatalf("after reserve: reserved %d available %d, want 25/5",
			inv.QuantityReserved, inv.AvailableQuantity())
	}

	if err := inv.IssueParts(25, workOrder, "mechanic.ortiz"); err != nil {
		t.Fatalf("IssueParts failed: %v", err)
	}
	if inv.QuantityOnHand != 5 || inv.QuantityReserved != 0 {
		t.Fatalf("after issue: %d/%d, want 5/0", inv.QuantityOnHand, inv.QuantityReserved)
	}

	names := make([]string, 0, 4)
	for _, ev := range inv.PendingEvents() {
		names = append(names, ev.EventName())
	}
	want := []string{EventReceived, EventReserved, EventIssued, EventLowStockDetected}
	if len(names) != len(want) {
		t.Fatalf("event names = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("event names = %v, want %v", names, want)
		}
	}
}
