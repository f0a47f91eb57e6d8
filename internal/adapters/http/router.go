// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/forgeline/heavyshop/internal/adapters/http/handlers"
)

// NewRouter creates an HTTP handler with all application routes registered.
// Middleware is applied globally in the order given.
func NewRouter(
	inventoryHandler *handlers.InventoryHandler,
	workOrderHandler *handlers.WorkOrderHandler,
	partHandler *handlers.PartHandler,
	technicianHandler *handlers.TechnicianHandler,
	healthHandler *handlers.HealthHandler,
	middlewares ...func(http.Handler) http.Handler,
) http.Handler {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	// Health endpoints (outside /api/v1 prefix).
	r.Get("/health/live", healthHandler.Liveness)
	r.Get("/health/ready", healthHandler.Readiness)

	// API v1 routes.
	r.Route("/api/v1", func(r chi.Router) {
		// Stock locations and movements.
		r.Get("/inventories", inventoryHandler.Lookup)
		r.Post("/inventories", inventoryHandler.CreateInventory)
		r.Get("/inventories/low-stock", inventoryHandler.ListLowStock)
		r.Get("/inventories/{id}", inventoryHandler.GetInventory)
		r.Delete("/inventories/{id}", inventoryHandler.DeactivateInventory)
		r.Post("/inventories/{id}/receive", inventoryHandler.ReceiveParts)
		r.Post("/inventories/{id}/reserve", inventoryHandler.ReserveParts)
		r.Post("/inventories/{id}/release", inventoryHandler.ReleaseReservation)
		r.Post("/inventories/{id}/issue", inventoryHandler.IssueParts)
		r.Post("/inventories/{id}/return", inventoryHandler.ReturnParts)
		r.Post("/inventories/{id}/adjust", inventoryHandler.AdjustQuantity)
		r.Patch("/inventories/{id}/stock-levels", inventoryHandler.UpdateStockLevels)
		r.Post("/inventories/{id}/move", inventoryHandler.MoveToBinLocation)

		// Work order lifecycle.
		r.Get("/work-orders", workOrderHandler.ListWorkOrders)
		r.Post("/work-orders", workOrderHandler.CreateWorkOrder)
		r.Get("/work-orders/{id}", workOrderHandler.GetWorkOrder)
		r.Post("/work-orders/{id}/assign", workOrderHandler.AssignTechnician)
		r.Post("/work-orders/{id}/start", workOrderHandler.StartWork)
		r.Post("/work-orders/{id}/hold", workOrderHandler.HoldWork)
		r.Post("/work-orders/{id}/resume", workOrderHandler.ResumeWork)
		r.Post("/work-orders/{id}/complete", workOrderHandler.CompleteWork)
		r.Post("/work-orders/{id}/cancel", workOrderHandler.CancelWork)
		r.Post("/work-orders/{id}/parts", workOrderHandler.AddRequiredPart)
		r.Post("/work-orders/{id}/parts/reserve", workOrderHandler.ReserveRequiredParts)

		// Parts catalog.
		r.Get("/parts", partHandler.ListParts)
		r.Post("/parts", partHandler.CreatePart)
		r.Get("/parts/{id}", partHandler.GetPart)
		r.Put("/parts/{id}", partHandler.UpdatePart)

		// Technician roster.
		r.Get("/technicians", technicianHandler.ListTechnicians)
		r.Post("/technicians", technicianHandler.CreateTechnician)
		r.Get("/technicians/{id}", technicianHandler.GetTechnician)
		r.Patch("/technicians/{id}", technicianHandler.UpdateTechnician)
	})

	return r
}
