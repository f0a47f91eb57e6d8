package handlers

import (
	"net/http"

	"github.com/forgeline/heavyshop/internal/adapters/http/dto"
	"github.com/forgeline/heavyshop/internal/domain/technician"
	"github.com/forgeline/heavyshop/internal/ports"
)

// TechnicianHandler handles HTTP requests for the technician roster.
type TechnicianHandler struct {
	svc ports.TechnicianService
}

// NewTechnicianHandler creates a new TechnicianHandler with the given service port.
func NewTechnicianHandler(svc ports.TechnicianService) *TechnicianHandler {
	return &TechnicianHandler{svc: svc}
}

// ListTechnicians handles GET /api/v1/technicians.
func (h *TechnicianHandler) ListTechnicians(w http.ResponseWriter, r *http.Request) {
	techs, err := h.svc.ListTechnicians(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToTechnicianListResponse(techs))
}

// CreateTechnician handles POST /api/v1/technicians.
func (h *TechnicianHandler) CreateTechnician(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateTechnicianRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	tech := &technician.Technician{
		Name:              req.Name,
		Email:             req.Email,
		Certifications:    req.Certifications,
		MaxConcurrentJobs: req.MaxConcurrentJobs,
	}

	created, err := h.svc.CreateTechnician(r.Context(), tech)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.ToTechnicianResponse(created))
}

// GetTechnician handles GET /api/v1/technicians/{id}.
func (h *TechnicianHandler) GetTechnician(w http.ResponseWriter, r *http.Request) {
	id, err := parseUUID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	tech, err := h.svc.GetTechnician(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToTechnicianResponse(tech))
}

// UpdateTechnician handles PATCH /api/v1/technicians/{id}. Omitted fields
// keep their stored values.
func (h *TechnicianHandler) UpdateTechnician(w http.ResponseWriter, r *http.Request) {
	id, err := parseUUID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.UpdateTechnicianRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	existing, err := h.svc.GetTechnician(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	tech := *existing
	if req.Name != nil {
		tech.Name = *req.Name
	}
	if req.Email != nil {
		tech.Email = *req.Email
	}
	if req.Certifications != nil {
		tech.Certifications = *req.Certifications
	}
	if req.MaxConcurrentJobs != nil {
		tech.MaxConcurrentJobs = *req.MaxConcurrentJobs
	}
	if req.Active != nil {
		tech.Active = *req.Active
	}

	updated, err := h.svc.UpdateTechnician(r.Context(), id, &tech)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToTechnicianResponse(updated))
}
