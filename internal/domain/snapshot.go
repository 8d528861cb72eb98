package domain

import (
	"time"

	"medical-store/internal/clock"
)

// Snapshot is a point-in-time summary of the whole collection.
type Snapshot struct {
	TotalSkus    int `json:"totalSkus"`
	TotalUnits   int `json:"totalUnits"`
	ExpiringSoon int `json:"expiringSoon"`
	Expired      int `json:"expired"`
	LowStock     int `json:"lowStock"`
}

// Aggregate reduces the collection to a Snapshot in one pass. An expired item
// counts only as expired; a non-expired item may count as both expiring soon
// and low stock.
func Aggregate(items []InventoryItem, today time.Time) Snapshot {
	snap := Snapshot{TotalSkus: len(items)}

	for _, item := range items {
		snap.TotalUnits += item.Quantity

		days := clock.DaysUntil(item.ExpiryDate, today)
		if days < 0 {
			snap.Expired++
			continue
		}
		if days <= ExpiryThresholdDays {
			snap.ExpiringSoon++
		}
		if IsLowStock(item) {
			snap.LowStock++
		}
	}

	return snap
}
