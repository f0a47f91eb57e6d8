package app

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/forgeline/heavyshop/internal/domain/technician"
	"github.com/forgeline/heavyshop/internal/ports"
)

// Compile-time check that TechnicianService implements ports.TechnicianService.
var _ ports.TechnicianService = (*TechnicianService)(nil)

// TechnicianService implements ports.TechnicianService. Roster management
// is plain CRUD; workload checks happen in the work-order service.
type TechnicianService struct {
	technicians ports.TechnicianRepository
	logger      *slog.Logger
}

// NewTechnicianService creates a TechnicianService.
func NewTechnicianService(technicians ports.TechnicianRepository, logger *slog.Logger) *TechnicianService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &TechnicianService{technicians: technicians, logger: logger}
}

// GetTechnician returns one roster entry.
func (s *TechnicianService) GetTechnician(ctx context.Context, id uuid.UUID) (*technician.Technician, error) {
	return s.technicians.GetByID(ctx, id)
}

// ListTechnicians returns the whole roster.
func (s *TechnicianService) ListTechnicians(ctx context.Context) ([]technician.Technician, error) {
	return s.technicians.List(ctx)
}

// CreateTechnician validates and inserts a roster entry. New technicians
// start active.
func (s *TechnicianService) CreateTechnician(ctx context.Context, tech *technician.Technician) (*technician.Technician, error) {
	if err := tech.Validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	tech.ID = uuid.New()
	tech.Active = true
	tech.CreatedAt = now
	tech.UpdatedAt = now

	if err := s.technicians.Add(ctx, tech); err != nil {
		s.logger.ErrorContext(ctx, "failed to create technician",
			slog.String("operation", "CreateTechnician"),
			slog.String("email", tech.Email),
			slog.Any("error", err),
		)
		return nil, err
	}
	return tech, nil
}

// UpdateTechnician validates and persists changes to a roster entry.
func (s *TechnicianService) UpdateTechnician(ctx context.Context, id uuid.UUID, tech *technician.Technician) (*technician.Technician, error) {
	if err := tech.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.technicians.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	existing.Name = tech.Name
	existing.Email = tech.Email
	existing.Certifications = tech.Certifications
	existing.MaxConcurrentJobs = tech.MaxConcurrentJobs
	existing.Active = tech.Active
	existing.UpdatedAt = time.Now().UTC()

	if err := s.technicians.Update(ctx, existing); err != nil {
		s.logger.ErrorContext(ctx, "failed to update technician",
			slog.String("operation", "UpdateTechnician"),
			slog.String("technician_id", id.String()),
			slog.Any("error", err),
		)
		return nil, err
	}
	return existing, nil
}
