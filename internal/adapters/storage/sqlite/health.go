package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/forgeline/heavyshop/internal/ports"
)

// Compile-time check that HealthChecker implements ports.HealthChecker.
var _ ports.HealthChecker = (*HealthChecker)(nil)

// HealthChecker reports database health for the readiness endpoint.
type HealthChecker struct {
	db *sql.DB
}

// NewHealthChecker creates a HealthChecker.
func NewHealthChecker(db *sql.DB) *HealthChecker {
	return &HealthChecker{db: db}
}

// Name identifies this component in readiness responses.
func (c *HealthChecker) Name() string { return "database" }

// HealthCheck pings the database.
func (c *HealthChecker) HealthCheck(ctx context.Context) error {
	if err := c.db.PingContext(ctx); err != nil {
		return fmt.Errorf("database ping: %w", err)
	}
	return nil
}
