package domain

import (
	"sort"
	"strings"
	"time"
)

// Filters narrows the inventory list. Empty Category or Status behave like FilterAll.
type Filters struct {
	Search   string `json:"search"`
	Category string `json:"category"`
	Status   string `json:"status"`
}

// DefaultFilters matches every item.
func DefaultFilters() Filters {
	return Filters{Category: FilterAll, Status: FilterAll}
}

// Matches reports whether item passes every filter clause.
func (f Filters) Matches(item InventoryItem, today time.Time) bool {
	if f.Category != "" && f.Category != FilterAll && item.Category != f.Category {
		return false
	}
	if f.Status != "" && f.Status != FilterAll && string(Classify(item, today)) != f.Status {
		return false
	}
	return MatchesSearch(item, f.Search)
}

// MatchesSearch does a case-insensitive substring match of the trimmed term
// against name, batch number and supplier. An empty term matches everything.
func MatchesSearch(item InventoryItem, term string) bool {
	needle := strings.ToLower(strings.TrimSpace(term))
	if needle == "" {
		return true
	}
	return strings.Contains(strings.ToLower(item.Name), needle) ||
		strings.Contains(strings.ToLower(item.BatchNumber), needle) ||
		strings.Contains(strings.ToLower(item.Supplier), needle)
}

// Filter returns the matching items ordered by expiry date, earliest first.
// Equal expiry dates keep collection order. items is not modified.
func Filter(items []InventoryItem, f Filters, today time.Time) []InventoryItem {
	out := make([]InventoryItem, 0, len(items))
	for _, item := range items {
		if f.Matches(item, today) {
			out = append(out, item)
		}
	}
	sortByExpiry(out)
	return out
}

// Alerts returns expired and expiring items ordered by expiry date.
func Alerts(items []InventoryItem, today time.Time) []InventoryItem {
	out := make([]InventoryItem, 0)
	for _, item := range items {
		if IsExpired(item.ExpiryDate, today) || IsExpiringSoon(item.ExpiryDate, today) {
			out = append(out, item)
		}
	}
	sortByExpiry(out)
	return out
}

func sortByExpiry(items []InventoryItem) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].ExpiryDate.Before(items[j].ExpiryDate)
	})
}

// Categories is the sorted union of the suggested categories and every
// category present in items.
func Categories(items []InventoryItem) []string {
	seen := make(map[string]struct{}, len(SuggestedCategories)+len(items))
	for _, c := range SuggestedCategories {
		seen[c] = struct{}{}
	}
	for _, item := range items {
		if item.Category != "" {
			seen[item.Category] = struct{}{}
		}
	}

	out := make([]string, 0, len(seen))
	for c := range seen {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

// SupplierCount is the number of distinct suppliers in items.
func SupplierCount(items []InventoryItem) int {
	seen := make(map[string]struct{})
	for _, item := range items {
		seen[item.Supplier] = struct{}{}
	}
	return len(seen)
}
