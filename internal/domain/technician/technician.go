// Package technician contains the technician roster entity. Roster
// management is plain CRUD; a technician's workload is derived by the
// application layer from active work orders, never stored here.
package technician

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/forgeline/heavyshop/internal/domain"
)

// Technician is one roster entry. MaxConcurrentJobs caps how many active
// work orders the scheduler may assign; the cap is checked by the work-order
// service against a live count, not by the WorkOrder aggregate.
type Technician struct {
	ID                uuid.UUID
	Name              string
	Email             string
	Certifications    []string
	MaxConcurrentJobs int
	Active            bool
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// Validate checks business rules for the Technician entity. Returns a
// *domain.ValidationError with per-field details, or nil if all rules pass.
func (t *Technician) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(t.Name) == "" {
		fields["name"] = "is required"
	}
	if strings.TrimSpace(t.Email) == "" {
		fields["email"] = "is required"
	}
	if t.MaxConcurrentJobs <= 0 {
		fields["max_concurrent_jobs"] = fmt.Sprintf("must be positive, got %d", t.MaxConcurrentJobs)
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}
