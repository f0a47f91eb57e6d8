package app

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

// fakeUowFactory builds in-memory units of work that mimic the real
// collect-persist-dispatch protocol: on a successful save the pending events
// are recorded and the queues cleared; on a failed save the queues stay
// intact and nothing is recorded.
type fakeUowFactory struct {
	saveErr error
	commits [][]domain.EventRaiser
	events  []domain.Event
}

func (f *fakeUowFactory) New() ports.UnitOfWork {
	return &fakeUow{factory: f}
}

type fakeUow struct {
	factory *fakeUowFactory
	roots   []domain.EventRaiser
}

func (u *fakeUow) Register(root domain.EventRaiser) {
	for _, r := range u.roots {
		if r == root {
			return
		}
	}
	u.roots = append(u.roots, root)
}

func (u *fakeUow) SaveChanges(ctx context.Context) (int, error) {
	if u.factory.saveErr != nil {
		return 0, u.factory.saveErr
	}
	u.factory.commits = append(u.factory.commits, u.roots)
	for _, root := range u.roots {
		u.factory.events = append(u.factory.events, root.PendingEvents()...)
		root.ClearEvents()
	}
	return len(u.roots), nil
}

// eventNames flattens the recorded events for order assertions.
func (f *fakeUowFactory) eventNames() []string {
	names := make([]string, 0, len(f.events))
	for _, ev := range f.events {
		names = append(names, ev.EventName())
	}
	return names
}

type fakeInventoryRepo struct {
	byID map[uuid.UUID]*inventory.Inventory
}

func newFakeInventoryRepo(invs ...*inventory.Inventory) *fakeInventoryRepo {
	r := &fakeInventoryRepo{byID: make(map[uuid.UUID]*inventory.Inventory)}
	for _, inv := range invs {
		r.byID[inv.ID] = inv
	}
	return r
}

func (r *fakeInventoryRepo) GetByID(_ context.Context, id uuid.UUID) (*inventory.Inventory, error) {
	inv, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return inv, nil
}

func (r *fakeInventoryRepo) GetByPartAndWarehouse(_ context.Context, partID uuid.UUID, warehouse string) (*inventory.Inventory, error) {
	for _, inv := range r.byID {
		if inv.PartID == partID && inv.Warehouse == warehouse {
			return inv, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *fakeInventoryRepo) ListByPart(_ context.Context, partID uuid.UUID) ([]inventory.Inventory, error) {
	var out []inventory.Inventory
	for _, inv := range r.byID {
		if inv.PartID == partID {
			out = append(out, *inv)
		}
	}
	return out, nil
}

func (r *fakeInventoryRepo) ListLowStock(_ context.Context) ([]inventory.Inventory, error) {
	var out []inventory.Inventory
	for _, inv := range r.byID {
		if inv.Active && inv.IsLowStock() {
			out = append(out, *inv)
		}
	}
	return out, nil
}

func (r *fakeInventoryRepo) Add(_ context.Context, inv *inventory.Inventory) error {
	r.byID[inv.ID] = inv
	return nil
}

func (r *fakeInventoryRepo) Update(_ context.Context, inv *inventory.Inventory) error {
	r.byID[inv.ID] = inv
	return nil
}

type fakeWorkOrderRepo struct {
	byID        map[uuid.UUID]*workorder.WorkOrder
	activeCount int
	countErr    error
	getErr      error
}

func newFakeWorkOrderRepo(wos ...*workorder.WorkOrder) *fakeWorkOrderRepo {
	r := &fakeWorkOrderRepo{byID: make(map[uuid.UUID]*workorder.WorkOrder)}
	for _, wo := range wos {
		r.byID[wo.ID] = wo
	}
	return r
}

func (r *fakeWorkOrderRepo) GetByID(_ context.Context, id uuid.UUID) (*workorder.WorkOrder, error) {
	if r.getErr != nil {
		return nil, r.getErr
	}
	wo, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return wo, nil
}

func (r *fakeWorkOrderRepo) GetByNumber(_ context.Context, number string) (*workorder.WorkOrder, error) {
	for _, wo := range r.byID {
		if wo.Number == number {
			return wo, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *fakeWorkOrderRepo) List(_ context.Context, status workorder.Status) ([]workorder.WorkOrder, error) {
	var out []workorder.WorkOrder
	for _, wo := range r.byID {
		if status == "" || wo.Status == status {
			out = append(out, *wo)
		}
	}
	return out, nil
}

func (r *fakeWorkOrderRepo) CountActiveByTechnician(_ context.Context, _ uuid.UUID) (int, error) {
	if r.countErr != nil {
		return 0, r.countErr
	}
	return r.activeCount, nil
}

func (r *fakeWorkOrderRepo) Add(_ context.Context, wo *workorder.WorkOrder) error {
	r.byID[wo.ID] = wo
	return nil
}

func (r *fakeWorkOrderRepo) Update(_ context.Context, wo *workorder.WorkOrder) error {
	r.byID[wo.ID] = wo
	return nil
}

type fakeTechnicianRepo struct {
	byID map[uuid.UUID]*technician.Technician
}

func newFakeTechnicianRepo(techs ...*technician.Technician) *fakeTechnicianRepo {
	r := &fakeTechnicianRepo{byID: make(map[uuid.UUID]*technician.Technician)}
	for _, t := range techs {
		r.byID[t.ID] = t
	}
	return r
}

func (r *fakeTechnicianRepo) GetByID(_ context.Context, id uuid.UUID) (*technician.Technician, error) {
	t, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return t, nil
}

func (r *fakeTechnicianRepo) List(_ context.Context) ([]technician.Technician, error) {
	var out []technician.Technician
	for _, t := range r.byID {
		out = append(out, *t)
	}
	return out, nil
}

func (r *fakeTechnicianRepo) Add(_ context.Context, t *technician.Technician) error {
	r.byID[t.ID] = t
	return nil
}

func (r *fakeTechnicianRepo) Update(_ context.Context, t *technician.Technician) error {
	r.byID[t.ID] = t
	return nil
}

type fakePartRepo struct {
	byID   map[uuid.UUID]*part.Part
	addErr error
}

func newFakePartRepo(parts ...*part.Part) *fakePartRepo {
	r := &fakePartRepo{byID: make(map[uuid.UUID]*part.Part)}
	for _, p := range parts {
		r.byID[p.ID] = p
	}
	return r
}

func (r *fakePartRepo) GetByID(_ context.Context, id uuid.UUID) (*part.Part, error) {
	p, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return p, nil
}

func (r *fakePartRepo) GetByNumber(_ context.Context, partNumber string) (*part.Part, error) {
	for _, p := range r.byID {
		if p.PartNumber == partNumber {
			return p, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *fakePartRepo) List(_ context.Context) ([]part.Part, error) {
	var out []part.Part
	for _, p := range r.byID {
		out = append(out, *p)
	}
	return out, nil
}

func (r *fakePartRepo) Add(_ context.Context, p *part.Part) error {
	if r.addErr != nil {
		return r.addErr
	}
	r.byID[p.ID] = p
	return nil
}

func (r *fakePartRepo) Update(_ context.Context, p *part.Part) error {
	r.byID[p.ID] = p
	return nil
}

type fakePurchasingGateway struct {
	err   error
	calls []reorderCall
}

type reorderCall struct {
	partID    uuid.UUID
	warehouse string
	quantity  int
}

func (g *fakePurchasingGateway) SubmitReorder(_ context.Context, partID uuid.UUID, warehouse string, quantity int) error {
	if g.err != nil {
		return g.err
	}
	g.calls = append(g.calls, reorderCall{partID: partID, warehouse: warehouse, quantity: quantity})
	return nil
}
