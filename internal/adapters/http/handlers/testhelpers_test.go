package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/forgeline/heavyshop/internal/domain"
	"github.com/forgeline/heavyshop/internal/domain/inventory"
	"github.com/forgeline/heavyshop/internal/domain/part"
	"github.com/forgeline/heavyshop/internal/domain/technician"
	"github.com/forgeline/heavyshop/internal/domain/workorder"
)

var testTime = time.Date(2026, 3, 9, 15, 4, 5, 0, time.UTC)

func withChiParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func validInventory(t *testing.T) *inventory.Inventory {
	t.Helper()
	inv, err := inventory.New(uuid.New(), "central", "A-12-3", 10, 50)
	if err != nil {
		t.Fatalf("building inventory fixture: %v", err)
	}
	if err := inv.ReceiveParts(30, "tester", "PO-100"); err != nil {
		t.Fatalf("stocking inventory fixture: %v", err)
	}
	inv.ClearEvents()
	return inv
}

func validWorkOrder(t *testing.T) *workorder.WorkOrder {
	t.Helper()
	equipment, err := domain.NewEquipmentIdentifier("1FDXF46S12EB12345", "excavator", "CAT 320")
	if err != nil {
		t.Fatalf("building equipment fixture: %v", err)
	}
	cost, err := domain.NewMoneyFromString("1500.00", "USD")
	if err != nil {
		t.Fatalf("building cost fixture: %v", err)
	}
	wo, err := workorder.New("WO-2026-0042", equipment, uuid.New(), "replace hydraulic pump", cost)
	if err != nil {
		t.Fatalf("building work order fixture: %v", err)
	}
	wo.ClearEvents()
	return wo
}

func validPart() *part.Part {
	cost, _ := domain.NewMoneyFromString("89.50", "USD")
	return &part.Part{
		ID:           uuid.New(),
		PartNumber:   "HYD-4410",
		Name:         "Hydraulic pump seal kit",
		Manufacturer: "Parker",
		UnitCost:     cost,
		CreatedAt:    testTime,
		UpdatedAt:    testTime,
	}
}

func validTechnician() *technician.Technician {
	return &technician.Technician{
		ID:                uuid.New(),
		Name:              "Dana Whitfield",
		Email:             "dana@example.com",
		Certifications:    []string{"hydraulics"},
		MaxConcurrentJobs: 3,
		Active:            true,
		CreatedAt:         testTime,
		UpdatedAt:         testTime,
	}
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	if err := json.NewEncoder(buf).Encode(v); err != nil {
		t.Fatalf("failed to encode JSON body: %v", err)
	}
	return buf
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var result T
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode JSON response: %v", err)
	}
	return result
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Fatalf("status = %d, want %d; body = %s", rec.Code, want, rec.Body.String())
	}
}
