// Package handlers provides HTTP request handlers for the service's API endpoints.
package handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/forgeline/heavyshop/internal/adapters/http/dto"
	"github.com/forgeline/heavyshop/internal/domain/inventory"
	"github.com/forgeline/heavyshop/internal/ports"
)

// InventoryHandler handles HTTP requests for stock locations and the
// stock-movement operations.
type InventoryHandler struct {
	svc ports.InventoryService
}

// NewInventoryHandler creates a new InventoryHandler with the given service port.
func NewInventoryHandler(svc ports.InventoryService) *InventoryHandler {
	return &InventoryHandler{svc: svc}
}

// CreateInventory handles POST /api/v1/inventories.
func (h *InventoryHandler) CreateInventory(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateInventoryRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	partID, err := parseBodyUUID(req.PartID, "part_id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	inv, err := h.svc.CreateInventory(r.Context(), partID, req.Warehouse, req.BinLocation,
		req.MinimumStockLevel, req.MaximumStockLevel)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.ToInventoryResponse(inv))
}

// GetInventory handles GET /api/v1/inventories/{id}.
func (h *InventoryHandler) GetInventory(w http.ResponseWriter, r *http.Request) {
	id, err := parseUUID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	inv, err := h.svc.GetInventory(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToInventoryResponse(inv))
}

// Lookup handles GET /api/v1/inventories?part_id=...&warehouse=... and
// resolves the single stock location for a (part, warehouse) pair.
func (h *InventoryHandler) Lookup(w http.ResponseWriter, r *http.Request) {
	partID, err := parseBodyUUID(r.URL.Query().Get("part_id"), "part_id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	warehouse := r.URL.Query().Get("warehouse")

	inv, err := h.svc.GetByPartAndWarehouse(r.Context(), partID, warehouse)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToInventoryResponse(inv))
}

// ListLowStock handles GET /api/v1/inventories/low-stock.
func (h *InventoryHandler) ListLowStock(w http.ResponseWriter, r *http.Request) {
	invs, err := h.svc.ListLowStock(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToInventoryListResponse(invs))
}

// ReceiveParts handles POST /api/v1/inventories/{id}/receive.
func (h *InventoryHandler) ReceiveParts(w http.ResponseWriter, r *http.Request) {
	h.movement(w, r, func(id uuid.UUID, req *dto.StockMovementRequest) (any, error) {
		inv, err := h.svc.ReceiveParts(r.Context(), id, req.Quantity, req.PerformedBy, req.ReferenceNumber)
		if err != nil {
			return nil, err
		}
		return dto.ToInventoryResponse(inv), nil
	})
}

// ReserveParts handles POST /api/v1/inventories/{id}/reserve.
func (h *InventoryHandler) ReserveParts(w http.ResponseWriter, r *http.Request) {
	h.workOrderMovement(w, r, h.svc.ReserveParts)
}

// ReleaseReservation handles POST /api/v1/inventories/{id}/release.
func (h *InventoryHandler) ReleaseReservation(w http.ResponseWriter, r *http.Request) {
	h.workOrderMovement(w, r, h.svc.ReleaseReservation)
}

// IssueParts handles POST /api/v1/inventories/{id}/issue.
func (h *InventoryHandler) IssueParts(w http.ResponseWriter, r *http.Request) {
	h.workOrderMovement(w, r, h.svc.IssueParts)
}

// ReturnParts handles POST /api/v1/inventories/{id}/return.
func (h *InventoryHandler) ReturnParts(w http.ResponseWriter, r *http.Request) {
	h.workOrderMovement(w, r, h.svc.ReturnParts)
}

// AdjustQuantity handles POST /api/v1/inventories/{id}/adjust.
func (h *InventoryHandler) AdjustQuantity(w http.ResponseWriter, r *http.Request) {
	id, err := parseUUID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.AdjustQuantityRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	inv, err := h.svc.AdjustQuantity(r.Context(), id, req.NewQuantity, req.Reason, req.AdjustedBy)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToInventoryResponse(inv))
}

// UpdateStockLevels handles PATCH /api/v1/inventories/{id}/stock-levels.
func (h *InventoryHandler) UpdateStockLevels(w http.ResponseWriter, r *http.Request) {
	id, err := parseUUID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.UpdateStockLevelsRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	inv, err := h.svc.UpdateStockLevels(r.Context(), id, req.MinimumStockLevel, req.MaximumStockLevel, req.ReorderQuantity)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToInventoryResponse(inv))
}

// MoveToBinLocation handles POST /api/v1/inventories/{id}/move.
func (h *InventoryHandler) MoveToBinLocation(w http.ResponseWriter, r *http.Request) {
	id, err := parseUUID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.MoveBinLocationRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	inv, err := h.svc.MoveToBinLocation(r.Context(), id, req.BinLocation, req.MovedBy)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToInventoryResponse(inv))
}

// DeactivateInventory handles DELETE /api/v1/inventories/{id}.
func (h *InventoryHandler) DeactivateInventory(w http.ResponseWriter, r *http.Request) {
	id, err := parseUUID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	if err := h.svc.DeactivateInventory(r.Context(), id); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// movement runs the decode-validate-respond cycle shared by the stock
// movement endpoints.
func (h *InventoryHandler) movement(w http.ResponseWriter, r *http.Request, fn func(uuid.UUID, *dto.StockMovementRequest) (any, error)) {
	id, err := parseUUID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.StockMovementRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	resp, err := fn(id, &req)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// workOrderMovement handles the movements tied to a work order: reserve,
// release, issue, return. They share one service signature.
func (h *InventoryHandler) workOrderMovement(
	w http.ResponseWriter,
	r *http.Request,
	op func(ctx context.Context, id uuid.UUID, quantity int, workOrderID uuid.UUID, by string) (*inventory.Inventory, error),
) {
	h.movement(w, r, func(id uuid.UUID, req *dto.StockMovementRequest) (any, error) {
		workOrderID, err := parseBodyUUID(req.WorkOrderID, "work_order_id")
		if err != nil {
			return nil, err
		}
		inv, err := op(r.Context(), id, req.Quantity, workOrderID, req.PerformedBy)
		if err != nil {
			return nil, err
		}
		return dto.ToInventoryResponse(inv), nil
	})
}
