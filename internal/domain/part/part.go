// Package part contains the parts-catalog entity. Catalog management is
// plain CRUD; inventory levels for a part live in the inventory aggregate,
// referenced by part ID only.
package part

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/forgeline/heavyshop/internal/domain"
)

// Part is one catalog entry. PartNumber is the unique business key
// (uniqueness enforced at the persistence boundary).
type Part struct {
	ID           uuid.UUID
	PartNumber   string
	Name         string
	Description  string
	Manufacturer string
	UnitCost     domain.Money
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// msgRequired is the validation message for mandatory fields.
const msgRequired = "is required"

// Validate checks business rules for the Part entity. Returns a
// *domain.ValidationError with per-field details, or nil if all rules pass.
func (p *Part) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(p.PartNumber) == "" {
		fields["part_number"] = msgRequired
	}
	if strings.TrimSpace(p.Name) == "" {
		fields["name"] = msgRequired
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}
