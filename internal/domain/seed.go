package domain

import "time"

// SeedInventory builds the demo collection used on first run and by reset.
// Expiry dates are relative to now.
func SeedInventory(now time.Time, newID func() string) []InventoryItem {
	return []InventoryItem{
		{
			ID:            newID(),
			Name:          "Paracetamol 500mg",
			Category:      "Analgesic",
			BatchNumber:   "PCM-A23",
			Supplier:      "GoodHealth Distributors",
			Quantity:      150,
			Unit:          UnitTablet,
			ExpiryDate:    now.AddDate(0, 3, 0),
			PurchaseDate:  timePtr(now),
			PricePerUnit:  0.35,
			MinStockLevel: 50,
			Notes:         "Best seller for fever and headaches.",
		},
		{
			ID:            newID(),
			Name:          "Amoxicillin 250mg",
			Category:      "Antibiotic",
			BatchNumber:   "AMX-2023-09",
			Supplier:      "MedSupply Co.",
			Quantity:      80,
			Unit:          UnitCapsule,
			ExpiryDate:    now.AddDate(0, 1, 0),
			PurchaseDate:  timePtr(now),
			PricePerUnit:  0.65,
			MinStockLevel: 40,
			Notes:         "Keep refrigerated once opened.",
		},
		{
			ID:            newID(),
			Name:          "Vitamin C Syrup",
			Category:      "Supplement",
			BatchNumber:   "VITC-332",
			Supplier:      "NatureLife Labs",
			Quantity:      45,
			Unit:          UnitBottle,
			ExpiryDate:    now.AddDate(0, 0, 10),
			PurchaseDate:  timePtr(now),
			PricePerUnit:  4.25,
			MinStockLevel: 30,
			Notes:         "Child-friendly syrup.",
		},
	}
}

func timePtr(t time.Time) *time.Time {
	return &t
}
