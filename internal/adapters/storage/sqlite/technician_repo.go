package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/forgeline/heavyshop/internal/domain"
	"github.com/forgeline/heavyshop/internal/domain/technician"
	"github.com/forgeline/heavyshop/internal/ports"
)

// Compile-time check that TechnicianRepo implements ports.TechnicianRepository.
var _ ports.TechnicianRepository = (*TechnicianRepo)(nil)

// TechnicianRepo is the SQLite-backed technician roster. Certifications are
// stored as a JSON array in a single column.
type TechnicianRepo struct {
	db *sql.DB
}

// NewTechnicianRepo creates a TechnicianRepo.
func NewTechnicianRepo(db *sql.DB) *TechnicianRepo {
	return &TechnicianRepo{db: db}
}

const technicianColumns = `
	id, name, email, certifications, max_concurrent_jobs,
	active, created_at, updated_at`

func (r *TechnicianRepo) GetByID(ctx context.Context, id uuid.UUID) (*technician.Technician, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT`+technicianColumns+` FROM technicians WHERE id = ?`, id)
	t, err := scanTechnician(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return t, nil
}

func (r *TechnicianRepo) List(ctx context.Context) ([]technician.Technician, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT`+technicianColumns+` FROM technicians ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []technician.Technician
	for rows.Next() {
		t, err := scanTechnician(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, *t)
	}
	return out, rows.Err()
}

func (r *TechnicianRepo) Add(ctx context.Context, t *technician.Technician) error {
	certs, err := json.Marshal(t.Certifications)
	if err != nil {
		return fmt.Errorf("marshal certifications: %w", err)
	}
	_, err = r.db.ExecContext(ctx, `
		INSERT INTO technicians (`+technicianColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		t.ID, t.Name, t.Email, string(certs), t.MaxConcurrentJobs,
		t.Active, t.CreatedAt, t.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert technician %s: %w", t.Email, mapConstraintErr(err))
	}
	return nil
}

func (r *TechnicianRepo) Update(ctx context.Context, t *technician.Technician) error {
	certs, err := json.Marshal(t.Certifications)
	if err != nil {
		return fmt.Errorf("marshal certifications: %w", err)
	}
	res, err := r.db.ExecContext(ctx, `
		UPDATE technicians SET
			name = ?, email = ?, certifications = ?, max_concurrent_jobs = ?,
			active = ?, updated_at = ?
		WHERE id = ?`,
		t.Name, t.Email, string(certs), t.MaxConcurrentJobs,
		t.Active, t.UpdatedAt,
		t.ID,
	)
	if err != nil {
		return fmt.Errorf("update technician %s: %w", t.ID, mapConstraintErr(err))
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("technician %s: %w", t.ID, domain.ErrNotFound)
	}
	return nil
}

func scanTechnician(scan func(...any) error) (*technician.Technician, error) {
	var (
		t     technician.Technician
		certs string
	)
	err := scan(
		&t.ID, &t.Name, &t.Email, &certs, &t.MaxConcurrentJobs,
		&t.Active, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if certs != "" {
		if err := json.Unmarshal([]byte(certs), &t.Certifications); err != nil {
			return nil, fmt.Errorf("unmarshal certifications: %w", err)
		}
	}
	return &t, nil
}
