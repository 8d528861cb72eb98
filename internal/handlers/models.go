package handlers

import (
	"encoding/json"
	"errors"
	"strings"
	"time"

	"medical-store/internal/domain"
	apperrors "medical-store/pkg/errors"
)

// ErrorResponse represents an error response
// @Description Standard error body
type ErrorResponse struct {
	Error   string `json:"error" example:"ValidationError"`
	Message string `json:"message" example:"expiryDate is required"`
	Details string `json:"details,omitempty" example:"Field: expiryDate"`
}

// SuccessResponse represents a success response
type SuccessResponse struct {
	Message string `json:"message" example:"item deleted successfully"`
}

// CreateItemRequest represents the request body for creating an item
// @Description Request to add a SKU batch to the inventory
type CreateItemRequest struct {
	Name        string `json:"name" binding:"required" example:"Cetirizine 10mg"`
	Category    string `json:"category" binding:"required" example:"Respiratory"`
	BatchNumber string `json:"batchNumber" binding:"required" example:"CTZ-2024-07"`
	Supplier    string `json:"supplier" binding:"required" example:"MedSupply Co."`
	Quantity    int    `json:"quantity" binding:"min=0" example:"60"`
	Unit        string `json:"unit" binding:"required,oneof=tablet capsule ml mg piece packet bottle tube sachet other" example:"tablet"`
	// RFC 3339 date-time or YYYY-MM-DD
	ExpiryDate string `json:"expiryDate" binding:"required" example:"2025-06-30"`
	// Optional. Blank means unknown
	PurchaseDate  string  `json:"purchaseDate" example:"2024-03-01"`
	PricePerUnit  float64 `json:"pricePerUnit" binding:"min=0" example:"1.2"`
	MinStockLevel int     `json:"minStockLevel" binding:"min=0" example:"20"`
	Notes         string  `json:"notes" example:"Non-drowsy"`
}

// toNewItem parses the date fields, resolving calendar dates in loc. The
// returned error is a validation error.
func (r CreateItemRequest) toNewItem(loc *time.Location) (domain.NewItem, error) {
	expiry, err := domain.ParseDateIn(r.ExpiryDate, loc)
	if err != nil {
		return domain.NewItem{}, apperrors.NewValidationError(err.Error(), "expiryDate")
	}
	purchase, err := parseOptionalDate(r.PurchaseDate, loc)
	if err != nil {
		return domain.NewItem{}, err
	}

	item := domain.NewItem{
		Name:          r.Name,
		Category:      r.Category,
		BatchNumber:   r.BatchNumber,
		Supplier:      r.Supplier,
		Quantity:      r.Quantity,
		Unit:          domain.Unit(r.Unit),
		ExpiryDate:    expiry,
		PurchaseDate:  purchase,
		PricePerUnit:  r.PricePerUnit,
		MinStockLevel: r.MinStockLevel,
		Notes:         r.Notes,
	}
	if err := item.Validate(); err != nil {
		var field string
		var vErr *domain.ValidationError
		if errors.As(err, &vErr) {
			field = vErr.Field
		}
		return domain.NewItem{}, apperrors.NewValidationError(err.Error(), field)
	}
	return item, nil
}

// toPatch turns a full replacement into a patch that sets every field.
func (r CreateItemRequest) toPatch(loc *time.Location) (domain.ItemPatch, error) {
	input, err := r.toNewItem(loc)
	if err != nil {
		return domain.ItemPatch{}, err
	}
	item := input.Build("")
	patch := domain.ItemPatch{
		Name:          &item.Name,
		Category:      &item.Category,
		BatchNumber:   &item.BatchNumber,
		Supplier:      &item.Supplier,
		Quantity:      &item.Quantity,
		Unit:          &item.Unit,
		ExpiryDate:    &item.ExpiryDate,
		PurchaseDate:  item.PurchaseDate,
		PricePerUnit:  &item.PricePerUnit,
		MinStockLevel: &item.MinStockLevel,
		Notes:         &item.Notes,
	}
	return patch, nil
}

// UpdateItemRequest is a partial update. Omitted fields are left untouched.
// @Description Partial update of an inventory item
type UpdateItemRequest struct {
	Name          *string  `json:"name" binding:"omitempty,min=1" example:"Cetirizine 10mg"`
	Category      *string  `json:"category" binding:"omitempty,min=1" example:"Respiratory"`
	BatchNumber   *string  `json:"batchNumber" example:"CTZ-2024-07"`
	Supplier      *string  `json:"supplier" binding:"omitempty,min=1" example:"MedSupply Co."`
	Quantity      *int     `json:"quantity" binding:"omitempty,min=0" example:"40"`
	Unit          *string  `json:"unit" binding:"omitempty,oneof=tablet capsule ml mg piece packet bottle tube sachet other" example:"tablet"`
	ExpiryDate    *string  `json:"expiryDate" example:"2025-06-30"`
	PurchaseDate  *string  `json:"purchaseDate" example:"2024-03-01"`
	PricePerUnit  *float64 `json:"pricePerUnit" binding:"omitempty,min=0" example:"1.5"`
	MinStockLevel *int     `json:"minStockLevel" binding:"omitempty,min=0" example:"25"`
	Notes         *string  `json:"notes" example:"Moved to shelf 3"`
}

func (r UpdateItemRequest) toPatch(loc *time.Location) (domain.ItemPatch, error) {
	patch := domain.ItemPatch{
		Name:          r.Name,
		Category:      r.Category,
		BatchNumber:   r.BatchNumber,
		Supplier:      r.Supplier,
		Quantity:      r.Quantity,
		PricePerUnit:  r.PricePerUnit,
		MinStockLevel: r.MinStockLevel,
		Notes:         r.Notes,
	}
	if r.Unit != nil {
		unit := domain.Unit(*r.Unit)
		patch.Unit = &unit
	}
	if r.ExpiryDate != nil {
		expiry, err := domain.ParseDateIn(*r.ExpiryDate, loc)
		if err != nil {
			return domain.ItemPatch{}, apperrors.NewValidationError(err.Error(), "expiryDate")
		}
		patch.ExpiryDate = &expiry
	}
	if r.PurchaseDate != nil {
		purchase, err := parseOptionalDate(*r.PurchaseDate, loc)
		if err != nil {
			return domain.ItemPatch{}, err
		}
		patch.PurchaseDate = purchase
	}
	return patch, nil
}

func parseOptionalDate(s string, loc *time.Location) (*time.Time, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	t, err := domain.ParseDateIn(s, loc)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error(), "purchaseDate")
	}
	return &t, nil
}

// AdjustQuantityRequest represents the request body for adjusting stock
// @Description Signed quantity change. The result never drops below zero.
type AdjustQuantityRequest struct {
	Delta *int `json:"delta" binding:"required" example:"-1"`
}

// ItemResponse is an item plus its derived status
// @Description Inventory item with status computed against today
type ItemResponse struct {
	domain.InventoryItem
	Status          domain.Status `json:"status" example:"expiring"`
	StatusLabel     string        `json:"statusLabel" example:"Expiring Soon"`
	DaysUntilExpiry int           `json:"daysUntilExpiry" example:"10"`
	Countdown       string        `json:"countdown" example:"Expires in 10 days"`
}

// UnmarshalJSON decodes the item and its derived fields. The item's own
// UnmarshalJSON is promoted through the embedding and would skip the rest.
func (r *ItemResponse) UnmarshalJSON(data []byte) error {
	if err := json.Unmarshal(data, &r.InventoryItem); err != nil {
		return err
	}
	var derived struct {
		Status          domain.Status `json:"status"`
		StatusLabel     string        `json:"statusLabel"`
		DaysUntilExpiry int           `json:"daysUntilExpiry"`
		Countdown       string        `json:"countdown"`
	}
	if err := json.Unmarshal(data, &derived); err != nil {
		return err
	}
	r.Status = derived.Status
	r.StatusLabel = derived.StatusLabel
	r.DaysUntilExpiry = derived.DaysUntilExpiry
	r.Countdown = derived.Countdown
	return nil
}

// ItemListResponse represents a filtered item list
type ItemListResponse struct {
	Items   []ItemResponse `json:"items"`
	Count   int            `json:"count" example:"3"`
	Filters domain.Filters `json:"filters"`
}

// StatusOption is one entry of the status filter
type StatusOption struct {
	Value string `json:"value" example:"low-stock"`
	Label string `json:"label" example:"Low stock"`
}

// VocabularyResponse lists the fixed vocabularies a data-entry form needs
type VocabularyResponse struct {
	Units               []domain.Unit  `json:"units"`
	SuggestedCategories []string       `json:"suggestedCategories"`
	Statuses            []StatusOption `json:"statuses"`
	ExpiryThresholdDays int            `json:"expiryThresholdDays" example:"30"`
}

// SuppliersResponse is the distinct supplier count
type SuppliersResponse struct {
	Count int `json:"count" example:"3"`
}
