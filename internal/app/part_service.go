package app

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/forgeline/heavyshop/internal/domain/part"
	"github.com/forgeline/heavyshop/internal/ports"
)

// Compile-time check that PartService implements ports.PartService.
var _ ports.PartService = (*PartService)(nil)

// PartService implements ports.PartService. Catalog management is plain
// CRUD; no domain events are involved, so writes go straight through the
// repository.
type PartService struct {
	parts  ports.PartRepository
	logger *slog.Logger
}

// NewPartService creates a PartService.
func NewPartService(parts ports.PartRepository, logger *slog.Logger) *PartService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &PartService{parts: parts, logger: logger}
}

// GetPart returns one catalog entry.
func (s *PartService) GetPart(ctx context.Context, id uuid.UUID) (*part.Part, error) {
	return s.parts.GetByID(ctx, id)
}

// ListParts returns the whole catalog.
func (s *PartService) ListParts(ctx context.Context) ([]part.Part, error) {
	return s.parts.List(ctx)
}

// CreatePart validates and inserts a catalog entry.
func (s *PartService) CreatePart(ctx context.Context, p *part.Part) (*part.Part, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	p.ID = uuid.New()
	p.CreatedAt = now
	p.UpdatedAt = now

	if err := s.parts.Add(ctx, p); err != nil {
		s.logger.ErrorContext(ctx, "failed to create part",
			slog.String("operation", "CreatePart"),
			slog.String("part_number", p.PartNumber),
			slog.Any("error", err),
		)
		return nil, err
	}
	return p, nil
}

// UpdatePart validates and persists changes to a catalog entry.
func (s *PartService) UpdatePart(ctx context.Context, id uuid.UUID, p *part.Part) (*part.Part, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.parts.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	existing.PartNumber = p.PartNumber
	existing.Name = p.Name
	existing.Description = p.Description
	existing.Manufacturer = p.Manufacturer
	existing.UnitCost = p.UnitCost
	existing.UpdatedAt = time.Now().UTC()

	if err := s.parts.Update(ctx, existing); err != nil {
		s.logger.ErrorContext(ctx, "failed to update part",
			slog.String("operation", "UpdatePart"),
			slog.String("part_id", id.String()),
			slog.Any("error", err),
		)
		return nil, err
	}
	return existing, nil
}
