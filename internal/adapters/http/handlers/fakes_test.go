package handlers_test

import (
	"context"

	"github.com/google/uuid"

	"github.com/forgeline/heavyshop/internal/domain"
	"github.com/forgeline/heavyshop/internal/domain/inventory"
	"github.com/forgeline/heavyshop/internal/domain/part"
	"github.com/forgeline/heavyshop/internal/domain/technician"
	"github.com/forgeline/heavyshop/internal/domain/workorder"
	"github.com/forgeline/heavyshop/internal/ports"
)

// fakeInventoryService is a pass-through stub: every method records its
// arguments and returns the configured inventory or error.
type fakeInventoryService struct {
	inv  *inventory.Inventory
	list []inventory.Inventory
	err  error

	gotOp        string
	gotID        uuid.UUID
	gotQuantity  int
	gotWorkOrder uuid.UUID
	gotActor     string
}

var _ ports.InventoryService = (*fakeInventoryService)(nil)

func (f *fakeInventoryService) record(op string, id uuid.UUID, qty int, workOrderID uuid.UUID, actor string) (*inventory.Inventory, error) {
	f.gotOp = op
	f.gotID = id
	f.gotQuantity = qty
	f.gotWorkOrder = workOrderID
	f.gotActor = actor
	if f.err != nil {
		return nil, f.err
	}
	return f.inv, nil
}

func (f *fakeInventoryService) CreateInventory(_ context.Context, partID uuid.UUID, _, _ string, minLevel, _ int) (*inventory.Inventory, error) {
	return f.record("CreateInventory", partID, minLevel, uuid.Nil, "")
}

func (f *fakeInventoryService) GetInventory(_ context.Context, id uuid.UUID) (*inventory.Inventory, error) {
	return f.record("GetInventory", id, 0, uuid.Nil, "")
}

func (f *fakeInventoryService) GetByPartAndWarehouse(_ context.Context, partID uuid.UUID, warehouse string) (*inventory.Inventory, error) {
	return f.record("GetByPartAndWarehouse", partID, 0, uuid.Nil, warehouse)
}

func (f *fakeInventoryService) ListLowStock(context.Context) ([]inventory.Inventory, error) {
	f.gotOp = "ListLowStock"
	if f.err != nil {
		return nil, f.err
	}
	return f.list, nil
}

func (f *fakeInventoryService) ReceiveParts(_ context.Context, id uuid.UUID, quantity int, receivedBy, _ string) (*inventory.Inventory, error) {
	return f.record("ReceiveParts", id, quantity, uuid.Nil, receivedBy)
}

func (f *fakeInventoryService) ReserveParts(_ context.Context, id uuid.UUID, quantity int, workOrderID uuid.UUID, requestedBy string) (*inventory.Inventory, error) {
	return f.record("ReserveParts", id, quantity, workOrderID, requestedBy)
}

func (f *fakeInventoryService) ReleaseReservation(_ context.Context, id uuid.UUID, quantity int, workOrderID uuid.UUID, releasedBy string) (*inventory.Inventory, error) {
	return f.record("ReleaseReservation", id, quantity, workOrderID, releasedBy)
}

func (f *fakeInventoryService) IssueParts(_ context.Context, id uuid.UUID, quantity int, workOrderID uuid.UUID, issuedBy string) (*inventory.Inventory, error) {
	return f.record("IssueParts", id, quantity, workOrderID, issuedBy)
}

func (f *fakeInventoryService) ReturnParts(_ context.Context, id uuid.UUID, quantity int, workOrderID uuid.UUID, returnedBy string) (*inventory.Inventory, error) {
	return f.record("ReturnParts", id, quantity, workOrderID, returnedBy)
}

func (f *fakeInventoryService) AdjustQuantity(_ context.Context, id uuid.UUID, newQuantity int, _, adjustedBy string) (*inventory.Inventory, error) {
	return f.record("AdjustQuantity", id, newQuantity, uuid.Nil, adjustedBy)
}

func (f *fakeInventoryService) UpdateStockLevels(_ context.Context, id uuid.UUID, minLevel, _, _ int) (*inventory.Inventory, error) {
	return f.record("UpdateStockLevels", id, minLevel, uuid.Nil, "")
}

func (f *fakeInventoryService) MoveToBinLocation(_ context.Context, id uuid.UUID, binLocation, movedBy string) (*inventory.Inventory, error) {
	f.gotActor = binLocation
	return f.record("MoveToBinLocation", id, 0, uuid.Nil, movedBy)
}

func (f *fakeInventoryService) DeactivateInventory(_ context.Context, id uuid.UUID) error {
	_, err := f.record("DeactivateInventory", id, 0, uuid.Nil, "")
	return err
}

// fakeWorkOrderService mirrors fakeInventoryService for the work order port.
type fakeWorkOrderService struct {
	wo   *workorder.WorkOrder
	list []workorder.WorkOrder
	err  error

	gotOp        string
	gotID        uuid.UUID
	gotOther     uuid.UUID
	gotReason    string
	gotWarehouse string
	gotStatus    workorder.Status
	gotCost      domain.Money
	gotAddress   domain.Address
	gotQuantity  int
}

var _ ports.WorkOrderService = (*fakeWorkOrderService)(nil)

func (f *fakeWorkOrderService) record(op string, id, other uuid.UUID, reason string) (*workorder.WorkOrder, error) {
	f.gotOp = op
	f.gotID = id
	f.gotOther = other
	f.gotReason = reason
	if f.err != nil {
		return nil, f.err
	}
	return f.wo, nil
}

func (f *fakeWorkOrderService) CreateWorkOrder(_ context.Context, number string, _ domain.EquipmentIdentifier, customerID uuid.UUID, _ string, estimatedCost domain.Money, serviceAddress domain.Address) (*workorder.WorkOrder, error) {
	f.gotCost = estimatedCost
	f.gotAddress = serviceAddress
	return f.record("CreateWorkOrder", uuid.Nil, customerID, number)
}

func (f *fakeWorkOrderService) GetWorkOrder(_ context.Context, id uuid.UUID) (*workorder.WorkOrder, error) {
	return f.record("GetWorkOrder", id, uuid.Nil, "")
}

func (f *fakeWorkOrderService) GetByNumber(_ context.Context, number string) (*workorder.WorkOrder, error) {
	return f.record("GetByNumber", uuid.Nil, uuid.Nil, number)
}

func (f *fakeWorkOrderService) ListWorkOrders(_ context.Context, status workorder.Status) ([]workorder.WorkOrder, error) {
	f.gotOp = "ListWorkOrders"
	f.gotStatus = status
	if f.err != nil {
		return nil, f.err
	}
	return f.list, nil
}

func (f *fakeWorkOrderService) AssignTechnician(_ context.Context, id, technicianID uuid.UUID) (*workorder.WorkOrder, error) {
	return f.record("AssignTechnician", id, technicianID, "")
}

func (f *fakeWorkOrderService) StartWork(_ context.Context, id uuid.UUID) (*workorder.WorkOrder, error) {
	return f.record("StartWork", id, uuid.Nil, "")
}

func (f *fakeWorkOrderService) HoldWork(_ context.Context, id uuid.UUID, reason string) (*workorder.WorkOrder, error) {
	return f.record("HoldWork", id, uuid.Nil, reason)
}

func (f *fakeWorkOrderService) ResumeWork(_ context.Context, id uuid.UUID) (*workorder.WorkOrder, error) {
	return f.record("ResumeWork", id, uuid.Nil, "")
}

func (f *fakeWorkOrderService) CompleteWork(_ context.Context, id uuid.UUID, actualCost domain.Money) (*workorder.WorkOrder, error) {
	f.gotCost = actualCost
	return f.record("CompleteWork", id, uuid.Nil, "")
}

func (f *fakeWorkOrderService) CancelWork(_ context.Context, id uuid.UUID, reason string) (*workorder.WorkOrder, error) {
	return f.record("CancelWork", id, uuid.Nil, reason)
}

func (f *fakeWorkOrderService) AddRequiredPart(_ context.Context, id, partID uuid.UUID, quantity int) (*workorder.WorkOrder, error) {
	f.gotQuantity = quantity
	return f.record("AddRequiredPart", id, partID, "")
}

func (f *fakeWorkOrderService) ReserveRequiredParts(_ context.Context, id uuid.UUID, warehouse, requestedBy string) (*workorder.WorkOrder, error) {
	f.gotWarehouse = warehouse
	return f.record("ReserveRequiredParts", id, uuid.Nil, requestedBy)
}

// fakePartService stubs the catalog port.
type fakePartService struct {
	part *part.Part
	list []part.Part
	err  error

	gotOp string
	gotID uuid.UUID
}

var _ ports.PartService = (*fakePartService)(nil)

func (f *fakePartService) GetPart(_ context.Context, id uuid.UUID) (*part.Part, error) {
	f.gotOp, f.gotID = "GetPart", id
	if f.err != nil {
		return nil, f.err
	}
	return f.part, nil
}

func (f *fakePartService) ListParts(context.Context) ([]part.Part, error) {
	f.gotOp = "ListParts"
	if f.err != nil {
		return nil, f.err
	}
	return f.list, nil
}

func (f *fakePartService) CreatePart(_ context.Context, p *part.Part) (*part.Part, error) {
	f.gotOp = "CreatePart"
	if f.err != nil {
		return nil, f.err
	}
	if f.part != nil {
		return f.part, nil
	}
	return p, nil
}

func (f *fakePartService) UpdatePart(_ context.Context, id uuid.UUID, p *part.Part) (*part.Part, error) {
	f.gotOp, f.gotID = "UpdatePart", id
	if f.err != nil {
		return nil, f.err
	}
	if f.part != nil {
		return f.part, nil
	}
	return p, nil
}

// fakeTechnicianService stubs the roster port.
type fakeTechnicianService struct {
	tech *technician.Technician
	list []technician.Technician
	err  error

	gotOp string
	gotID uuid.UUID
}

var _ ports.TechnicianService = (*fakeTechnicianService)(nil)

func (f *fakeTechnicianService) GetTechnician(_ context.Context, id uuid.UUID) (*technician.Technician, error) {
	f.gotOp, f.gotID = "GetTechnician", id
	if f.err != nil {
		return nil, f.err
	}
	return f.tech, nil
}

func (f *fakeTechnicianService) ListTechnicians(context.Context) ([]technician.Technician, error) {
	f.gotOp = "ListTechnicians"
	if f.err != nil {
		return nil, f.err
	}
	return f.list, nil
}

func (f *fakeTechnicianService) CreateTechnician(_ context.Context, tech *technician.Technician) (*technician.Technician, error) {
	f.gotOp = "CreateTechnician"
	if f.err != nil {
		return nil, f.err
	}
	if f.tech != nil {
		return f.tech, nil
	}
	return tech, nil
}

func (f *fakeTechnicianService) UpdateTechnician(_ context.Context, id uuid.UUID, tech *technician.Technician) (*technician.Technician, error) {
	f.gotOp, f.gotID = "UpdateTechnician", id
	if f.err != nil {
		return nil, f.err
	}
	if f.tech != nil {
		return f.tech, nil
	}
	return tech, nil
}
