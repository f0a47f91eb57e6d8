// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/forgeline/heavyshop/internal/domain"
	"github.com/forgeline/heavyshop/internal/domain/inventory"
	"github.com/forgeline/heavyshop/internal/domain/part"
	"github.com/forgeline/heavyshop/internal/domain/technician"
	"github.com/forgeline/heavyshop/internal/domain/workorder"
)

// MoneyResponse represents a money value in HTTP responses.
type MoneyResponse struct {
	Amount   string `json:"amount"`
	Currency string `json:"currency"`
}

// ToMoneyResponse converts a domain money value to its response form.
func ToMoneyResponse(m domain.Money) MoneyResponse {
	return MoneyResponse{Amount: m.Amount().String(), Currency: m.Currency()}
}

// PeriodResponse represents a date range in HTTP responses. End is empty
// while the period is still open.
type PeriodResponse struct {
	Start string `json:"start"`
	End   string `json:"end,omitempty"`
}

// ToPeriodResponse converts a date range; a zero range comes back nil so the
// field can be omitted.
func ToPeriodResponse(r domain.DateRange) *PeriodResponse {
	if r.IsZero() {
		return nil
	}
	resp := &PeriodResponse{Start: r.Start().Format(time.RFC3339)}
	if !r.IsOpenEnded() {
		resp.End = r.End().Format(time.RFC3339)
	}
	return resp
}

// InventoryResponse represents a stock location in HTTP responses.
type InventoryResponse struct {
	ID                string                `json:"id"`
	PartID            string                `json:"part_id"`
	Warehouse         string                `json:"warehouse"`
	BinLocation       string                `json:"bin_location"`
	QuantityOnHand    int                   `json:"quantity_on_hand"`
	QuantityReserved  int                   `json:"quantity_reserved"`
	QuantityAvailable int                   `json:"quantity_available"`
	MinimumStockLevel int                   `json:"minimum_stock_level"`
	MaximumStockLevel int                   `json:"maximum_stock_level"`
	ReorderQuantity   int                   `json:"reorder_quantity"`
	LowStock          bool                  `json:"low_stock"`
	Active            bool                  `json:"active"`
	Transactions      []TransactionResponse `json:"transactions,omitempty"`
	CreatedAt         string                `json:"created_at"`
	UpdatedAt         string                `json:"updated_at"`
}

// TransactionResponse represents one stock movement in HTTP responses.
type TransactionResponse struct {
	ID              string `json:"id"`
	Type            string `json:"type"`
	Quantity        int    `json:"quantity"`
	WorkOrderID     string `json:"work_order_id,omitempty"`
	ReferenceNumber string `json:"reference_number,omitempty"`
	Notes           string `json:"notes,omitempty"`
	TransactionDate string `json:"transaction_date"`
	TransactionBy   string `json:"transaction_by"`
}

// ToInventoryResponse converts an inventory aggregate to an HTTP response
// DTO. Transactions are included only when the aggregate has them populated.
func ToInventoryResponse(inv *inventory.Inventory) InventoryResponse {
	resp := InventoryResponse{
		ID:                inv.ID.String(),
		PartID:            inv.PartID.String(),
		Warehouse:         inv.Warehouse,
		BinLocation:       inv.BinLocation,
		QuantityOnHand:    inv.QuantityOnHand,
		QuantityReserved:  inv.QuantityReserved,
		QuantityAvailable: inv.AvailableQuantity(),
		MinimumStockLevel: inv.MinimumStockLevel,
		MaximumStockLevel: inv.MaximumStockLevel,
		ReorderQuantity:   inv.ReorderQuantity,
		LowStock:          inv.IsLowStock(),
		Active:            inv.Active,
		CreatedAt:         inv.CreatedAt.Format(time.RFC3339),
		UpdatedAt:         inv.UpdatedAt.Format(time.RFC3339),
	}

	if len(inv.Transactions) > 0 {
		resp.Transactions = make([]TransactionResponse, len(inv.Transactions))
		for i := range inv.Transactions {
			resp.Transactions[i] = toTransactionResponse(&inv.Transactions[i])
		}
	}

	return resp
}

func toTransactionResponse(txn *inventory.Transaction) TransactionResponse {
	resp := TransactionResponse{
		ID:              txn.ID.String(),
		Type:            txn.Type.String(),
		Quantity:        txn.Quantity,
		ReferenceNumber: txn.ReferenceNumber,
		Notes:           txn.Notes,
		TransactionDate: txn.TransactionDate.Format(time.RFC3339),
		TransactionBy:   txn.TransactionBy,
	}
	if txn.WorkOrderID != uuid.Nil {
		resp.WorkOrderID = txn.WorkOrderID.String()
	}
	return resp
}

// InventoryListResponse represents a list of stock locations.
type InventoryListResponse struct {
	Inventories []InventoryResponse `json:"inventories"`
	Count       int                 `json:"count"`
}

// ToInventoryListResponse converts a slice of inventory aggregates.
func ToInventoryListResponse(invs []inventory.Inventory) InventoryListResponse {
	items := make([]InventoryResponse, len(invs))
	for i := range invs {
		items[i] = ToInventoryResponse(&invs[i])
	}
	return InventoryListResponse{Inventories: items, Count: len(items)}
}

// WorkOrderResponse represents a work order in HTTP responses.
type WorkOrderResponse struct {
	ID                   string                 `json:"id"`
	Number               string                 `json:"number"`
	VIN                  string                 `json:"vin"`
	EquipmentType        string                 `json:"equipment_type"`
	EquipmentModel       string                 `json:"equipment_model"`
	CustomerID           string                 `json:"customer_id"`
	Description          string                 `json:"description"`
	Status               string                 `json:"status"`
	ServiceAddress       *AddressResponse       `json:"service_address,omitempty"`
	AssignedTechnicianID string                 `json:"assigned_technician_id,omitempty"`
	ScheduledPeriod      *PeriodResponse        `json:"scheduled_period,omitempty"`
	ActualPeriod         *PeriodResponse        `json:"actual_period,omitempty"`
	EstimatedCost        MoneyResponse          `json:"estimated_cost"`
	ActualCost           MoneyResponse          `json:"actual_cost"`
	RequiredParts        []RequiredPartResponse `json:"required_parts,omitempty"`
	Notifications        []NotificationResponse `json:"notifications,omitempty"`
	CreatedAt            string                 `json:"created_at"`
	UpdatedAt            string                 `json:"updated_at"`
}

// AddressResponse represents a postal address in HTTP responses.
type AddressResponse struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	State      string `json:"state,omitempty"`
	PostalCode string `json:"postal_code,omitempty"`
	Country    string `json:"country"`
}

// RequiredPartResponse represents one parts line in HTTP responses.
type RequiredPartResponse struct {
	ID            string        `json:"id"`
	PartID        string        `json:"part_id"`
	Quantity      int           `json:"quantity"`
	Reserved      bool          `json:"reserved"`
	Warehouse     string        `json:"warehouse,omitempty"`
	EstimatedCost MoneyResponse `json:"estimated_cost"`
}

// NotificationResponse represents one notification record in HTTP responses.
type NotificationResponse struct {
	ID        string `json:"id"`
	Kind      string `json:"kind"`
	Message   string `json:"message"`
	Sent      bool   `json:"sent"`
	CreatedAt string `json:"created_at"`
}

// ToWorkOrderResponse converts a work order aggregate to an HTTP response DTO.
func ToWorkOrderResponse(wo *workorder.WorkOrder) WorkOrderResponse {
	resp := WorkOrderResponse{
		ID:              wo.ID.String(),
		Number:          wo.Number,
		VIN:             wo.Equipment.VIN(),
		EquipmentType:   wo.Equipment.Type(),
		EquipmentModel:  wo.Equipment.Model(),
		CustomerID:      wo.CustomerID.String(),
		Description:     wo.Description,
		Status:          wo.Status.String(),
		ScheduledPeriod: ToPeriodResponse(wo.ScheduledPeriod),
		ActualPeriod:    ToPeriodResponse(wo.ActualPeriod),
		EstimatedCost:   ToMoneyResponse(wo.EstimatedCost),
		ActualCost:      ToMoneyResponse(wo.ActualCost),
		CreatedAt:       wo.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       wo.UpdatedAt.Format(time.RFC3339),
	}

	if wo.ServiceAddress != (domain.Address{}) {
		resp.ServiceAddress = &AddressResponse{
			Street:     wo.ServiceAddress.Street,
			City:       wo.ServiceAddress.City,
			State:      wo.ServiceAddress.State,
			PostalCode: wo.ServiceAddress.PostalCode,
			Country:    wo.ServiceAddress.Country,
		}
	}

	if wo.AssignedTechnicianID != uuid.Nil {
		resp.AssignedTechnicianID = wo.AssignedTechnicianID.String()
	}

	if len(wo.RequiredParts) > 0 {
		resp.RequiredParts = make([]RequiredPartResponse, len(wo.RequiredParts))
		for i, line := range wo.RequiredParts {
			resp.RequiredParts[i] = RequiredPartResponse{
				ID:            line.ID.String(),
				PartID:        line.PartID.String(),
				Quantity:      line.Quantity,
				Reserved:      line.Reserved,
				Warehouse:     line.Warehouse,
				EstimatedCost: ToMoneyResponse(line.EstimatedCost),
			}
		}
	}

	if len(wo.Notifications) > 0 {
		resp.Notifications = make([]NotificationResponse, len(wo.Notifications))
		for i, note := range wo.Notifications {
			resp.Notifications[i] = NotificationResponse{
				ID:        note.ID.String(),
				Kind:      string(note.Kind),
				Message:   note.Message,
				Sent:      note.Sent,
				CreatedAt: note.CreatedAt.Format(time.RFC3339),
			}
		}
	}

	return resp
}

// WorkOrderListResponse represents a list of work orders.
type WorkOrderListResponse struct {
	WorkOrders []WorkOrderResponse `json:"work_orders"`
	Count      int                 `json:"count"`
}

// ToWorkOrderListResponse converts a slice of work order aggregates.
func ToWorkOrderListResponse(wos []workorder.WorkOrder) WorkOrderListResponse {
	items := make([]WorkOrderResponse, len(wos))
	for i := range wos {
		items[i] = ToWorkOrderResponse(&wos[i])
	}
	return WorkOrderListResponse{WorkOrders: items, Count: len(items)}
}

// PartResponse represents a catalog entry in HTTP responses.
type PartResponse struct {
	ID           string        `json:"id"`
	PartNumber   string        `json:"part_number"`
	Name         string        `json:"name"`
	Description  string        `json:"description,omitempty"`
	Manufacturer string        `json:"manufacturer,omitempty"`
	UnitCost     MoneyResponse `json:"unit_cost"`
	CreatedAt    string        `json:"created_at"`
	UpdatedAt    string        `json:"updated_at"`
}

// ToPartResponse converts a catalog entry to an HTTP response DTO.
func ToPartResponse(p *part.Part) PartResponse {
	return PartResponse{
		ID:           p.ID.String(),
		PartNumber:   p.PartNumber,
		Name:         p.Name,
		Description:  p.Description,
		Manufacturer: p.Manufacturer,
		UnitCost:     ToMoneyResponse(p.UnitCost),
		CreatedAt:    p.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    p.UpdatedAt.Format(time.RFC3339),
	}
}

// PartListResponse represents a list of catalog entries.
type PartListResponse struct {
	Parts []PartResponse `json:"parts"`
	Count int            `json:"count"`
}

// ToPartListResponse converts a slice of catalog entries.
func ToPartListResponse(parts []part.Part) PartListResponse {
	items := make([]PartResponse, len(parts))
	for i := range parts {
		items[i] = ToPartResponse(&parts[i])
	}
	return PartListResponse{Parts: items, Count: len(items)}
}

// TechnicianResponse represents a roster entry in HTTP responses.
type TechnicianResponse struct {
	ID                string   `json:"id"`
	Name              string   `json:"name"`
	Email             string   `json:"email"`
	Certifications    []string `json:"certifications,omitempty"`
	MaxConcurrentJobs int      `json:"max_concurrent_jobs"`
	Active            bool     `json:"active"`
	CreatedAt         string   `json:"created_at"`
	UpdatedAt         string   `json:"updated_at"`
}

// ToTechnicianResponse converts a roster entry to an HTTP response DTO.
func ToTechnicianResponse(t *technician.Technician) TechnicianResponse {
	return TechnicianResponse{
		ID:                t.ID.String(),
		Name:              t.Name,
		Email:             t.Email,
		Certifications:    t.Certifications,
		MaxConcurrentJobs: t.MaxConcurrentJobs,
		Active:            t.Active,
		CreatedAt:         t.CreatedAt.Format(time.RFC3339),
		UpdatedAt:         t.UpdatedAt.Format(time.RFC3339),
	}
}

// TechnicianListResponse represents a list of roster entries.
type TechnicianListResponse struct {
	Technicians []TechnicianResponse `json:"technicians"`
	Count       int                  `json:"count"`
}

// ToTechnicianListResponse converts a slice of roster entries.
func ToTechnicianListResponse(techs []technician.Technician) TechnicianListResponse {
	items := make([]TechnicianResponse, len(techs))
	for i := range techs {
		items[i] = ToTechnicianResponse(&techs[i])
	}
	return TechnicianListResponse{Technicians: items, Count: len(items)}
}
