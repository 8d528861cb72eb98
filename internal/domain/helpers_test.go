package domain

import (
	"fmt"
	"time"
)

var testToday = time.Date(2024, 3, 15, 14, 30, 0, 0, time.UTC)

func daysFromToday(days int) time.Time {
	return testToday.AddDate(0, 0, days)
}

func newTestItem(id string, quantity, minStock, expiresInDays int) InventoryItem {
	return InventoryItem{
		ID:            id,
		Name:          "Item " + id,
		Category:      "Analgesic",
		BatchNumber:   "B-" + id,
		Supplier:      "Supplier " + id,
		Quantity:      quantity,
		Unit:          UnitTablet,
		ExpiryDate:    daysFromToday(expiresInDays),
		MinStockLevel: minStock,
	}
}

func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
}
