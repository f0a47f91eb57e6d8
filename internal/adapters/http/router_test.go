package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"

	adapthttp "github.com/forgeline/heavyshop/internal/adapters/http"
	"github.com/forgeline/heavyshop/internal/adapters/http/handlers"
	"github.com/forgeline/heavyshop/internal/domain/part"
	"github.com/forgeline/heavyshop/internal/platform/health"
)

// stubPartService satisfies ports.PartService for routing tests; only
// ListParts is expected to be reached.
type stubPartService struct{}

func (stubPartService) GetPart(context.Context, uuid.UUID) (*part.Part, error) {
	return &part.Part{}, nil
}
func (stubPartService) ListParts(context.Context) ([]part.Part, error) { return nil, nil }
func (stubPartService) CreatePart(_ context.Context, p *part.Part) (*part.Part, error) {
	return p, nil
}
func (stubPartService) UpdatePart(_ context.Context, _ uuid.UUID, p *part.Part) (*part.Part, error) {
	return p, nil
}

func newTestRouter() http.Handler {
	return adapthttp.NewRouter(
		handlers.NewInventoryHandler(nil),
		handlers.NewWorkOrderHandler(nil),
		handlers.NewPartHandler(stubPartService{}),
		handlers.NewTechnicianHandler(nil),
		handlers.NewHealthHandler(health.New()),
	)
}

func TestRouter_HealthLive(t *testing.T) {
	t.Parallel()

	router := newTestRouter()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health/live", nil))

	if rec.Code != http.StatusOK {
		t.Errorf("GET /health/live = %d, want 200", rec.Code)
	}
}

func TestRouter_HealthReady(t *testing.T) {
	t.Parallel()

	router := newTestRouter()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health/ready", nil))

	if rec.Code != http.StatusOK {
		t.Errorf("GET /health/ready = %d, want 200", rec.Code)
	}
}

func TestRouter_ListPartsRoute(t *testing.T) {
	t.Parallel()

	router := newTestRouter()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/parts", nil))

	if rec.Code != http.StatusOK {
		t.Errorf("GET /api/v1/parts = %d, want 200", rec.Code)
	}
}

func TestRouter_UnknownRoute(t *testing.T) {
	t.Parallel()

	router := newTestRouter()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/nope", nil))

	if rec.Code != http.StatusNotFound {
		t.Errorf("GET /api/v1/nope = %d, want 404", rec.Code)
	}
}

func TestRouter_MethodNotAllowed(t *testing.T) {
	t.Parallel()

	router := newTestRouter()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/v1/parts", nil))

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("DELETE /api/v1/parts = %d, want 405", rec.Code)
	}
}
