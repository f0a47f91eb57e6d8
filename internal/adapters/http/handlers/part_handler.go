package handlers

import (
	"net/http"

	"github.com/forgeline/heavyshop/internal/adapters/http/dto"
	"github.com/forgeline/heavyshop/internal/domain"
	"github.com/forgeline/heavyshop/internal/domain/part"
	"github.com/forgeline/heavyshop/internal/ports"
)

// PartHandler handles HTTP requests for the parts catalog.
type PartHandler struct {
	svc ports.PartService
}

// NewPartHandler creates a new PartHandler with the given service port.
func NewPartHandler(svc ports.PartService) *PartHandler {
	return &PartHandler{svc: svc}
}

// ListParts handles GET /api/v1/parts.
func (h *PartHandler) ListParts(w http.ResponseWriter, r *http.Request) {
	parts, err := h.svc.ListParts(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToPartListResponse(parts))
}

// CreatePart handles POST /api/v1/parts.
func (h *PartHandler) CreatePart(w http.ResponseWriter, r *http.Request) {
	p, ok := decodePart(w, r)
	if !ok {
		return
	}

	created, err := h.svc.CreatePart(r.Context(), p)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.ToPartResponse(created))
}

// GetPart handles GET /api/v1/parts/{id}.
func (h *PartHandler) GetPart(w http.ResponseWriter, r *http.Request) {
	id, err := parseUUID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	p, err := h.svc.GetPart(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToPartResponse(p))
}

// UpdatePart handles PUT /api/v1/parts/{id}.
func (h *PartHandler) UpdatePart(w http.ResponseWriter, r *http.Request) {
	id, err := parseUUID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	p, ok := decodePart(w, r)
	if !ok {
		return
	}

	updated, err := h.svc.UpdatePart(r.Context(), id, p)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToPartResponse(updated))
}

// decodePart decodes and validates a part body, mapping the money fields.
func decodePart(w http.ResponseWriter, r *http.Request) (*part.Part, bool) {
	var req dto.CreatePartRequest
	if !decodeAndValidate(w, r, &req) {
		return nil, false
	}

	p := &part.Part{
		PartNumber:   req.PartNumber,
		Name:         req.Name,
		Description:  req.Description,
		Manufacturer: req.Manufacturer,
	}
	if req.UnitCost != "" {
		cost, err := domain.NewMoneyFromString(req.UnitCost, req.Currency)
		if err != nil {
			dto.WriteErrorResponse(w, r, err)
			return nil, false
		}
		p.UnitCost = cost
	}
	return p, true
}
