package domain

import (
	"fmt"
	"time"

	"medical-store/internal/clock"
)

// FormatCountdown describes the distance from today to an expiry date.
func FormatCountdown(expiry, today time.Time) string {
	days := clock.DaysUntil(expiry, today)
	switch {
	case days < 0:
		overdue := -days
		return fmt.Sprintf("%d %s overdue", overdue, plural(overdue, "day"))
	case days == 0:
		return "Expires today"
	case days == 1:
		return "Expires tomorrow"
	default:
		return fmt.Sprintf("Expires in %d days", days)
	}
}

// FormatQuantity renders "150 tablets", "1 bottle".
func FormatQuantity(n int, unit Unit) string {
	return fmt.Sprintf("%d %s", n, plural(n, string(unit)))
}

// FormatPrice renders a unit price in rupees, or a dash when unset.
func FormatPrice(price float64) string {
	if price == 0 {
		return "—"
	}
	return fmt.Sprintf("₹%.2f", price)
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
