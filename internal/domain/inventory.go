package domain

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Unit is the dispensing unit of a SKU batch.
type Unit string

const (
	UnitTablet  Unit = "tablet"
	UnitCapsule Unit = "capsule"
	UnitML      Unit = "ml"
	UnitMG      Unit = "mg"
	UnitPiece   Unit = "piece"
	UnitPacket  Unit = "packet"
	UnitBottle  Unit = "bottle"
	UnitTube    Unit = "tube"
	UnitSachet  Unit = "sachet"
	UnitOther   Unit = "other"
)

// Units is the fixed unit vocabulary, in display order.
var Units = []Unit{
	UnitTablet,
	UnitCapsule,
	UnitML,
	UnitMG,
	UnitPiece,
	UnitPacket,
	UnitBottle,
	UnitTube,
	UnitSachet,
	UnitOther,
}

// Valid reports whether u belongs to the unit vocabulary.
func (u Unit) Valid() bool {
	for _, known := range Units {
		if u == known {
			return true
		}
	}
	return false
}

// SuggestedCategories seeds the category picker. Users may add their own.
var SuggestedCategories = []string{
	"Analgesic",
	"Antibiotic",
	"Supplement",
	"First Aid",
	"Dermatology",
	"Respiratory",
	"Gastrointestinal",
	"Cardiology",
	"Diabetes Care",
	"Wellness",
}

// InventoryItem is one SKU batch.
type InventoryItem struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	Category      string     `json:"category"`
	BatchNumber   string     `json:"batchNumber"`
	Supplier      string     `json:"supplier"`
	Quantity      int        `json:"quantity"`
	Unit          Unit       `json:"unit"`
	ExpiryDate    time.Time  `json:"expiryDate"`
	PurchaseDate  *time.Time `json:"purchaseDate,omitempty"`
	PricePerUnit  float64    `json:"pricePerUnit"`
	MinStockLevel int        `json:"minStockLevel"`
	Notes         string     `json:"notes,omitempty"`
}

// UnmarshalJSON accepts RFC 3339 date-times as well as bare YYYY-MM-DD dates,
// and treats an empty purchaseDate as unset.
func (i *InventoryItem) UnmarshalJSON(data []byte) error {
	type alias InventoryItem
	aux := struct {
		*alias
		ExpiryDate   string `json:"expiryDate"`
		PurchaseDate string `json:"purchaseDate"`
	}{alias: (*alias)(i)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	expiry, err := ParseDate(aux.ExpiryDate)
	if err != nil {
		return fmt.Errorf("expiryDate: %w", err)
	}
	i.ExpiryDate = expiry

	i.PurchaseDate = nil
	if strings.TrimSpace(aux.PurchaseDate) != "" {
		purchased, err := ParseDate(aux.PurchaseDate)
		if err != nil {
			return fmt.Errorf("purchaseDate: %w", err)
		}
		i.PurchaseDate = &purchased
	}
	return nil
}

// ParseDate parses an RFC 3339 date-time or a YYYY-MM-DD calendar date.
// Calendar dates resolve to midnight in time.Local.
func ParseDate(s string) (time.Time, error) {
	return ParseDateIn(s, time.Local)
}

// ParseDateIn is ParseDate with calendar dates resolved to midnight in loc,
// which should be the zone the store's clock reports today in. A nil loc
// means time.Local.
func ParseDateIn(s string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, nil
	}
	t, err := time.ParseInLocation(time.DateOnly, s, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q", s)
	}
	return t, nil
}

// NewItem carries the caller-supplied fields of an item about to be created.
type NewItem struct {
	Name          string
	Category      string
	BatchNumber   string
	Supplier      string
	Quantity      int
	Unit          Unit
	ExpiryDate    time.Time
	PurchaseDate  *time.Time
	PricePerUnit  float64
	MinStockLevel int
	Notes         string
}

// Validate checks the fields a data-entry form would require. The store does
// not call it; presentation adapters do.
func (n NewItem) Validate() error {
	required := []struct {
		field string
		value string
	}{
		{"name", n.Name},
		{"category", n.Category},
		{"batchNumber", n.BatchNumber},
		{"supplier", n.Supplier},
		{"unit", string(n.Unit)},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return &ValidationError{Field: r.field, Message: "is required"}
		}
	}
	if !n.Unit.Valid() {
		return &ValidationError{Field: "unit", Message: fmt.Sprintf("unknown unit %q", n.Unit)}
	}
	if n.ExpiryDate.IsZero() {
		return &ValidationError{Field: "expiryDate", Message: "is required"}
	}
	if n.Quantity < 0 {
		return &ValidationError{Field: "quantity", Message: "must be >= 0"}
	}
	if n.MinStockLevel < 0 {
		return &ValidationError{Field: "minStockLevel", Message: "must be >= 0"}
	}
	if n.PricePerUnit < 0 {
		return &ValidationError{Field: "pricePerUnit", Message: "must be >= 0"}
	}
	return nil
}

// Build materialises the item under the given id.
func (n NewItem) Build(id string) InventoryItem {
	return InventoryItem{
		ID:            id,
		Name:          strings.TrimSpace(n.Name),
		Category:      strings.TrimSpace(n.Category),
		BatchNumber:   strings.TrimSpace(n.BatchNumber),
		Supplier:      strings.TrimSpace(n.Supplier),
		Quantity:      max(0, n.Quantity),
		Unit:          n.Unit,
		ExpiryDate:    n.ExpiryDate,
		PurchaseDate:  n.PurchaseDate,
		PricePerUnit:  n.PricePerUnit,
		MinStockLevel: n.MinStockLevel,
		Notes:         n.Notes,
	}
}

// ItemPatch is a partial update. Nil fields are left untouched. There is no
// ID field: an item's id never changes.
type ItemPatch struct {
	Name          *string
	Category      *string
	BatchNumber   *string
	Supplier      *string
	Quantity      *int
	Unit          *Unit
	ExpiryDate    *time.Time
	PurchaseDate  *time.Time
	PricePerUnit  *float64
	MinStockLevel *int
	Notes         *string
}

// IsEmpty reports whether the patch would change nothing.
func (p ItemPatch) IsEmpty() bool {
	return p == ItemPatch{}
}

// Apply returns item with the patch merged in. Quantity is clamped at 0.
func (p ItemPatch) Apply(item InventoryItem) InventoryItem {
	if p.Name != nil {
		item.Name = *p.Name
	}
	if p.Category != nil {
		item.Category = strings.TrimSpace(*p.Category)
	}
	if p.BatchNumber != nil {
		item.BatchNumber = *p.BatchNumber
	}
	if p.Supplier != nil {
		item.Supplier = *p.Supplier
	}
	if p.Quantity != nil {
		item.Quantity = max(0, *p.Quantity)
	}
	if p.Unit != nil {
		item.Unit = *p.Unit
	}
	if p.ExpiryDate != nil {
		item.ExpiryDate = *p.ExpiryDate
	}
	if p.PurchaseDate != nil {
		purchased := *p.PurchaseDate
		item.PurchaseDate = &purchased
	}
	if p.PricePerUnit != nil {
		item.PricePerUnit = *p.PricePerUnit
	}
	if p.MinStockLevel != nil {
		item.MinStockLevel = *p.MinStockLevel
	}
	if p.Notes != nil {
		item.Notes = *p.Notes
	}
	return item
}

// Domain errors
var (
	ErrItemNotFound = &DomainError{Message: "item not found"}
	ErrInvalidItem  = &DomainError{Message: "invalid inventory item"}
)

// DomainError represents a domain-level error
type DomainError struct {
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// ValidationError names the offending field. It matches ErrInvalidItem under errors.Is.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidItem
}
