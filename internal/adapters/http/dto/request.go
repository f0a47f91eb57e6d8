package dto

import (
	"fmt"
	"strings"

	"github.com/forgeline/heavyshop/internal/domain"
)

const (
	msgRequired     = "is required"
	msgMustNotEmpty = "must not be empty"
	msgMustBePos    = "must be positive"
)

// CreateInventoryRequest is the JSON body for opening a stock location.
type CreateInventoryRequest struct {
	PartID            string `json:"part_id"`
	Warehouse         string `json:"warehouse"`
	BinLocation       string `json:"bin_location,omitempty"`
	MinimumStockLevel int    `json:"minimum_stock_level"`
	MaximumStockLevel int    `json:"maximum_stock_level"`
}

// Validate checks that required fields are present.
// Returns a *domain.ValidationError if any checks fail.
func (r *CreateInventoryRequest) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(r.PartID) == "" {
		fields["part_id"] = msgRequired
	}
	if strings.TrimSpace(r.Warehouse) == "" {
		fields["warehouse"] = msgRequired
	}
	if r.MinimumStockLevel < 0 {
		fields["minimum_stock_level"] = "must not be negative"
	}
	if r.MaximumStockLevel < r.MinimumStockLevel {
		fields["maximum_stock_level"] = fmt.Sprintf("must be >= minimum %d", r.MinimumStockLevel)
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// StockMovementRequest is the JSON body shared by the receive, reserve,
// release, issue, and return operations. WorkOrderID is ignored by receive.
type StockMovementRequest struct {
	Quantity        int    `json:"quantity"`
	WorkOrderID     string `json:"work_order_id,omitempty"`
	PerformedBy     string `json:"performed_by"`
	ReferenceNumber string `json:"reference_number,omitempty"`
}

// Validate checks that the movement has a positive quantity and an actor.
func (r *StockMovementRequest) Validate() error {
	fields := make(map[string]string)

	if r.Quantity <= 0 {
		fields["quantity"] = msgMustBePos
	}
	if strings.TrimSpace(r.PerformedBy) == "" {
		fields["performed_by"] = msgRequired
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// AdjustQuantityRequest is the JSON body for a cycle-count correction.
type AdjustQuantityRequest struct {
	NewQuantity int    `json:"new_quantity"`
	Reason      string `json:"reason"`
	AdjustedBy  string `json:"adjusted_by"`
}

// Validate checks that the adjustment names a reason and an actor.
func (r *AdjustQuantityRequest) Validate() error {
	fields := make(map[string]string)

	if r.NewQuantity < 0 {
		fields["new_quantity"] = "must not be negative"
	}
	if strings.TrimSpace(r.Reason) == "" {
		fields["reason"] = msgRequired
	}
	if strings.TrimSpace(r.AdjustedBy) == "" {
		fields["adjusted_by"] = msgRequired
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// UpdateStockLevelsRequest is the JSON body for changing reorder thresholds.
type UpdateStockLevelsRequest struct {
	MinimumStockLevel int `json:"minimum_stock_level"`
	MaximumStockLevel int `json:"maximum_stock_level"`
	ReorderQuantity   int `json:"reorder_quantity"`
}

// Validate checks the threshold ordering.
func (r *UpdateStockLevelsRequest) Validate() error {
	fields := make(map[string]string)

	if r.MinimumStockLevel < 0 {
		fields["minimum_stock_level"] = "must not be negative"
	}
	if r.MaximumStockLevel < r.MinimumStockLevel {
		fields["maximum_stock_level"] = fmt.Sprintf("must be >= minimum %d", r.MinimumStockLevel)
	}
	if r.ReorderQuantity <= 0 {
		fields["reorder_quantity"] = msgMustBePos
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// MoveBinLocationRequest is the JSON body for relocating stock in-warehouse.
type MoveBinLocationRequest struct {
	BinLocation string `json:"bin_location"`
	MovedBy     string `json:"moved_by"`
}

// Validate checks that the target bin and actor are present.
func (r *MoveBinLocationRequest) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(r.BinLocation) == "" {
		fields["bin_location"] = msgRequired
	}
	if strings.TrimSpace(r.MovedBy) == "" {
		fields["moved_by"] = msgRequired
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// AddressPayload is a postal address in JSON request bodies.
type AddressPayload struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
}

// CreateWorkOrderRequest is the JSON body for opening a work order.
// ServiceAddress is set for field repairs and omitted for shop work.
type CreateWorkOrderRequest struct {
	Number         string          `json:"number"`
	VIN            string          `json:"vin"`
	EquipmentType  string          `json:"equipment_type"`
	EquipmentModel string          `json:"equipment_model"`
	CustomerID     string          `json:"customer_id"`
	Description    string          `json:"description"`
	EstimatedCost  string          `json:"estimated_cost"`
	Currency       string          `json:"currency"`
	ServiceAddress *AddressPayload `json:"service_address,omitempty"`
}

// Validate checks that required fields are present.
func (r *CreateWorkOrderRequest) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(r.Number) == "" {
		fields["number"] = msgRequired
	}
	if strings.TrimSpace(r.VIN) == "" {
		fields["vin"] = msgRequired
	}
	if strings.TrimSpace(r.CustomerID) == "" {
		fields["customer_id"] = msgRequired
	}
	if strings.TrimSpace(r.EstimatedCost) == "" {
		fields["estimated_cost"] = msgRequired
	}
	if strings.TrimSpace(r.Currency) == "" {
		fields["currency"] = msgRequired
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// AssignTechnicianRequest is the JSON body for assigning a technician.
type AssignTechnicianRequest struct {
	TechnicianID string `json:"technician_id"`
}

// Validate checks that the technician is named.
func (r *AssignTechnicianRequest) Validate() error {
	if strings.TrimSpace(r.TechnicianID) == "" {
		return &domain.ValidationError{Fields: map[string]string{"technician_id": msgRequired}}
	}
	return nil
}

// ReasonRequest is the JSON body for hold and cancel operations.
type ReasonRequest struct {
	Reason string `json:"reason"`
}

// Validate checks that a reason is given.
func (r *ReasonRequest) Validate() error {
	if strings.TrimSpace(r.Reason) == "" {
		return &domain.ValidationError{Fields: map[string]string{"reason": msgRequired}}
	}
	return nil
}

// CompleteWorkOrderRequest is the JSON body for closing a work order.
type CompleteWorkOrderRequest struct {
	ActualCost string `json:"actual_cost"`
	Currency   string `json:"currency"`
}

// Validate checks that the final cost is given.
func (r *CompleteWorkOrderRequest) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(r.ActualCost) == "" {
		fields["actual_cost"] = msgRequired
	}
	if strings.TrimSpace(r.Currency) == "" {
		fields["currency"] = msgRequired
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// AddRequiredPartRequest is the JSON body for appending a parts line.
type AddRequiredPartRequest struct {
	PartID   string `json:"part_id"`
	Quantity int    `json:"quantity"`
}

// Validate checks the line fields.
func (r *AddRequiredPartRequest) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(r.PartID) == "" {
		fields["part_id"] = msgRequired
	}
	if r.Quantity <= 0 {
		fields["quantity"] = msgMustBePos
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// ReservePartsRequest is the JSON body for reserving a work order's lines.
type ReservePartsRequest struct {
	Warehouse   string `json:"warehouse"`
	RequestedBy string `json:"requested_by"`
}

// Validate checks the warehouse and actor.
func (r *ReservePartsRequest) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(r.Warehouse) == "" {
		fields["warehouse"] = msgRequired
	}
	if strings.TrimSpace(r.RequestedBy) == "" {
		fields["requested_by"] = msgRequired
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// CreatePartRequest is the JSON body for adding a catalog entry.
type CreatePartRequest struct {
	PartNumber   string `json:"part_number"`
	Name         string `json:"name"`
	Description  string `json:"description,omitempty"`
	Manufacturer string `json:"manufacturer,omitempty"`
	UnitCost     string `json:"unit_cost,omitempty"`
	Currency     string `json:"currency,omitempty"`
}

// Validate checks that required fields are present.
func (r *CreatePartRequest) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(r.PartNumber) == "" {
		fields["part_number"] = msgRequired
	}
	if strings.TrimSpace(r.Name) == "" {
		fields["name"] = msgRequired
	}
	if (r.UnitCost == "") != (r.Currency == "") {
		fields["unit_cost"] = "unit_cost and currency must be given together"
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// CreateTechnicianRequest is the JSON body for adding a roster entry.
type CreateTechnicianRequest struct {
	Name              string   `json:"name"`
	Email             string   `json:"email"`
	Certifications    []string `json:"certifications,omitempty"`
	MaxConcurrentJobs int      `json:"max_concurrent_jobs"`
}

// Validate checks that required fields are present.
func (r *CreateTechnicianRequest) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(r.Name) == "" {
		fields["name"] = msgRequired
	}
	if strings.TrimSpace(r.Email) == "" {
		fields["email"] = msgRequired
	}
	if r.MaxConcurrentJobs <= 0 {
		fields["max_concurrent_jobs"] = msgMustBePos
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// UpdateTechnicianRequest is the JSON body for updating a roster entry.
// All fields are optional; nil means "do not change this field.".
type UpdateTechnicianRequest struct {
	Name              *string   `json:"name,omitempty"`
	Email             *string   `json:"email,omitempty"`
	Certifications    *[]string `json:"certifications,omitempty"`
	MaxConcurrentJobs *int      `json:"max_concurrent_jobs,omitempty"`
	Active            *bool     `json:"active,omitempty"`
}

// Validate checks that any provided fields have valid values.
func (r *UpdateTechnicianRequest) Validate() error {
	fields := make(map[string]string)

	if r.Name != nil && strings.TrimSpace(*r.Name) == "" {
		fields["name"] = msgMustNotEmpty
	}
	if r.Email != nil && strings.TrimSpace(*r.Email) == "" {
		fields["email"] = msgMustNotEmpty
	}
	if r.MaxConcurrentJobs != nil && *r.MaxConcurrentJobs <= 0 {
		fields["max_concurrent_jobs"] = msgMustBePos
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}
