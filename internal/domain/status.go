package domain

import (
	"time"

	"medical-store/internal/clock"
)

// ExpiryThresholdDays is the forward window, in calendar days, inside which a
// batch counts as expiring soon.
const ExpiryThresholdDays = 30

// Status is the derived freshness/stock state of an item. It is never stored.
type Status string

const (
	StatusHealthy  Status = "healthy"
	StatusExpiring Status = "expiring"
	StatusExpired  Status = "expired"
	StatusLowStock Status = "low-stock"
)

// FilterAll is the sentinel accepted by category and status filters.
const FilterAll = "all"

// Statuses lists every status in filter order.
var Statuses = []Status{StatusHealthy, StatusExpiring, StatusExpired, StatusLowStock}

// StatusFilterValues are the accepted values of the status filter.
var StatusFilterValues = []string{
	FilterAll,
	string(StatusHealthy),
	string(StatusExpiring),
	string(StatusExpired),
	string(StatusLowStock),
}

// Valid reports whether s is one of the four statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusHealthy, StatusExpiring, StatusExpired, StatusLowStock:
		return true
	}
	return false
}

// Label is the badge text shown next to an item.
func (s Status) Label() string {
	switch s {
	case StatusHealthy:
		return "Healthy"
	case StatusExpiring:
		return "Expiring Soon"
	case StatusExpired:
		return "Expired"
	case StatusLowStock:
		return "Low Stock"
	}
	return string(s)
}

// StatusFilterLabel is the option text of a status filter value.
func StatusFilterLabel(value string) string {
	switch value {
	case FilterAll:
		return "All statuses"
	case string(StatusExpiring):
		return "Expiring soon"
	case string(StatusLowStock):
		return "Low stock"
	}
	return Status(value).Label()
}

// IsExpired reports whether the expiry calendar day is before today's.
func IsExpired(expiry, today time.Time) bool {
	return clock.DaysUntil(expiry, today) < 0
}

// IsExpiringSoon reports whether expiry falls within [0, ExpiryThresholdDays]
// calendar days of today.
func IsExpiringSoon(expiry, today time.Time) bool {
	days := clock.DaysUntil(expiry, today)
	return days >= 0 && days <= ExpiryThresholdDays
}

// IsLowStock reports whether quantity is at or below the reorder threshold.
func IsLowStock(item InventoryItem) bool {
	return item.Quantity <= item.MinStockLevel
}

// Classify derives an item's status. Expired beats expiring, which beats
// low-stock. Items matching none of those are healthy.
func Classify(item InventoryItem, today time.Time) Status {
	switch {
	case IsExpired(item.ExpiryDate, today):
		return StatusExpired
	case IsExpiringSoon(item.ExpiryDate, today):
		return StatusExpiring
	case IsLowStock(item):
		return StatusLowStock
	default:
		return StatusHealthy
	}
}
