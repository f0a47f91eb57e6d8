package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/forgeline/heavyshop/internal/domain"
	"github.com/forgeline/heavyshop/internal/domain/part"
	"github.com/forgeline/heavyshop/internal/ports"
)

// Compile-time check that PartRepo implements ports.PartRepository.
var _ ports.PartRepository = (*PartRepo)(nil)

// PartRepo is the SQLite-backed parts catalog.
type PartRepo struct {
	db *sql.DB
}

// NewPartRepo creates a PartRepo.
func NewPartRepo(db *sql.DB) *PartRepo {
	return &PartRepo{db: db}
}

const partColumns = `
	id, part_number, name, description, manufacturer,
	unit_cost, unit_currency, created_at, updated_at`

func (r *PartRepo) GetByID(ctx context.Context, id uuid.UUID) (*part.Part, error) {
	return r.getOne(ctx, `SELECT`+partColumns+` FROM parts WHERE id = ?`, id)
}

func (r *PartRepo) GetByNumber(ctx context.Context, partNumber string) (*part.Part, error) {
	return r.getOne(ctx, `SELECT`+partColumns+` FROM parts WHERE part_number = ?`, partNumber)
}

func (r *PartRepo) List(ctx context.Context) ([]part.Part, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT`+partColumns+` FROM parts ORDER BY part_number`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []part.Part
	for rows.Next() {
		p, err := scanPart(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, *p)
	}
	return out, rows.Err()
}

func (r *PartRepo) Add(ctx context.Context, p *part.Part) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO parts (`+partColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.PartNumber, p.Name, p.Description, p.Manufacturer,
		p.UnitCost.Amount().String(), p.UnitCost.Currency(), p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert part %s: %w", p.PartNumber, mapConstraintErr(err))
	}
	return nil
}

func (r *PartRepo) Update(ctx context.Context, p *part.Part) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE parts SET
			part_number = ?, name = ?, description = ?, manufacturer = ?,
			unit_cost = ?, unit_currency = ?, updated_at = ?
		WHERE id = ?`,
		p.PartNumber, p.Name, p.Description, p.Manufacturer,
		p.UnitCost.Amount().String(), p.UnitCost.Currency(), p.UpdatedAt,
		p.ID,
	)
	if err != nil {
		return fmt.Errorf("update part %s: %w", p.ID, mapConstraintErr(err))
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("part %s: %w", p.ID, domain.ErrNotFound)
	}
	return nil
}

func (r *PartRepo) getOne(ctx context.Context, query string, arg any) (*part.Part, error) {
	row := r.db.QueryRowContext(ctx, query, arg)
	p, err := scanPart(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

func scanPart(scan func(...any) error) (*part.Part, error) {
	var (
		p                part.Part
		amount, currency string
	)
	err := scan(
		&p.ID, &p.PartNumber, &p.Name, &p.Description, &p.Manufacturer,
		&amount, &currency, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if p.UnitCost, err = moneyFromColumns(amount, currency); err != nil {
		return nil, err
	}
	return &p, nil
}
