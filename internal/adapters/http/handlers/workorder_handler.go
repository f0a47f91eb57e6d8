package handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/forgeline/heavyshop/internal/adapters/http/dto"
	"github.com/forgeline/heavyshop/internal/domain"
	"github.com/forgeline/heavyshop/internal/domain/workorder"
	"github.com/forgeline/heavyshop/internal/ports"
)

// WorkOrderHandler handles HTTP requests for the work order lifecycle.
type WorkOrderHandler struct {
	svc ports.WorkOrderService
}

// NewWorkOrderHandler creates a new WorkOrderHandler with the given service port.
func NewWorkOrderHandler(svc ports.WorkOrderService) *WorkOrderHandler {
	return &WorkOrderHandler{svc: svc}
}

// CreateWorkOrder handles POST /api/v1/work-orders.
func (h *WorkOrderHandler) CreateWorkOrder(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateWorkOrderRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	equipment, err := domain.NewEquipmentIdentifier(req.VIN, req.EquipmentType, req.EquipmentModel)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	customerID, err := parseBodyUUID(req.CustomerID, "customer_id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	cost, err := domain.NewMoneyFromString(req.EstimatedCost, req.Currency)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var serviceAddress domain.Address
	if req.ServiceAddress != nil {
		serviceAddress, err = domain.NewAddress(
			req.ServiceAddress.Street,
			req.ServiceAddress.City,
			req.ServiceAddress.State,
			req.ServiceAddress.PostalCode,
			req.ServiceAddress.Country,
		)
		if err != nil {
			dto.WriteErrorResponse(w, r, err)
			return
		}
	}

	wo, err := h.svc.CreateWorkOrder(r.Context(), req.Number, equipment, customerID, req.Description, cost, serviceAddress)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.ToWorkOrderResponse(wo))
}

// GetWorkOrder handles GET /api/v1/work-orders/{id}.
func (h *WorkOrderHandler) GetWorkOrder(w http.ResponseWriter, r *http.Request) {
	id, err := parseUUID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	wo, err := h.svc.GetWorkOrder(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToWorkOrderResponse(wo))
}

// ListWorkOrders handles GET /api/v1/work-orders. An optional status query
// parameter filters the result.
func (h *WorkOrderHandler) ListWorkOrders(w http.ResponseWriter, r *http.Request) {
	status := workorder.Status(r.URL.Query().Get("status"))
	if status != "" && !status.IsValid() {
		dto.WriteErrorResponse(w, r, &domain.ValidationError{
			Fields: map[string]string{"status": "invalid status"},
		})
		return
	}

	// A lookup by number takes priority over listing.
	if number := r.URL.Query().Get("number"); number != "" {
		wo, err := h.svc.GetByNumber(r.Context(), number)
		if err != nil {
			dto.WriteErrorResponse(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, dto.ToWorkOrderResponse(wo))
		return
	}

	wos, err := h.svc.ListWorkOrders(r.Context(), status)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToWorkOrderListResponse(wos))
}

// AssignTechnician handles POST /api/v1/work-orders/{id}/assign.
func (h *WorkOrderHandler) AssignTechnician(w http.ResponseWriter, r *http.Request) {
	id, err := parseUUID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.AssignTechnicianRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	technicianID, err := parseBodyUUID(req.TechnicianID, "technician_id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	wo, err := h.svc.AssignTechnician(r.Context(), id, technicianID)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToWorkOrderResponse(wo))
}

// StartWork handles POST /api/v1/work-orders/{id}/start.
func (h *WorkOrderHandler) StartWork(w http.ResponseWriter, r *http.Request) {
	h.lifecycle(w, r, h.svc.StartWork)
}

// ResumeWork handles POST /api/v1/work-orders/{id}/resume.
func (h *WorkOrderHandler) ResumeWork(w http.ResponseWriter, r *http.Request) {
	h.lifecycle(w, r, h.svc.ResumeWork)
}

// HoldWork handles POST /api/v1/work-orders/{id}/hold.
func (h *WorkOrderHandler) HoldWork(w http.ResponseWriter, r *http.Request) {
	h.reasoned(w, r, h.svc.HoldWork)
}

// CancelWork handles POST /api/v1/work-orders/{id}/cancel.
func (h *WorkOrderHandler) CancelWork(w http.ResponseWriter, r *http.Request) {
	h.reasoned(w, r, h.svc.CancelWork)
}

// CompleteWork handles POST /api/v1/work-orders/{id}/complete.
func (h *WorkOrderHandler) CompleteWork(w http.ResponseWriter, r *http.Request) {
	id, err := parseUUID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.CompleteWorkOrderRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	cost, err := domain.NewMoneyFromString(req.ActualCost, req.Currency)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	wo, err := h.svc.CompleteWork(r.Context(), id, cost)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToWorkOrderResponse(wo))
}

// AddRequiredPart handles POST /api/v1/work-orders/{id}/parts.
func (h *WorkOrderHandler) AddRequiredPart(w http.ResponseWriter, r *http.Request) {
	id, err := parseUUID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.AddRequiredPartRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	partID, err := parseBodyUUID(req.PartID, "part_id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	wo, err := h.svc.AddRequiredPart(r.Context(), id, partID, req.Quantity)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.ToWorkOrderResponse(wo))
}

// ReserveRequiredParts handles POST /api/v1/work-orders/{id}/parts/reserve.
func (h *WorkOrderHandler) ReserveRequiredParts(w http.ResponseWriter, r *http.Request) {
	id, err := parseUUID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.ReservePartsRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	wo, err := h.svc.ReserveRequiredParts(r.Context(), id, req.Warehouse, req.RequestedBy)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToWorkOrderResponse(wo))
}

type lifecycleOp func(ctx context.Context, id uuid.UUID) (*workorder.WorkOrder, error)

// lifecycle runs the parse-call-respond cycle for body-less transitions.
func (h *WorkOrderHandler) lifecycle(w http.ResponseWriter, r *http.Request, op lifecycleOp) {
	id, err := parseUUID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	wo, err := op(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToWorkOrderResponse(wo))
}

type reasonedOp func(ctx context.Context, id uuid.UUID, reason string) (*workorder.WorkOrder, error)

// reasoned runs the cycle for transitions that carry a reason in the body.
func (h *WorkOrderHandler) reasoned(w http.ResponseWriter, r *http.Request, op reasonedOp) {
	id, err := parseUUID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.ReasonRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	wo, err := op(r.Context(), id, req.Reason)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToWorkOrderResponse(wo))
}
