package cli

import (
	"fmt"
	"io"
	"time"

	"medical-store/internal/domain"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

	statusColors = map[domain.Status]lipgloss.Color{
		domain.StatusHealthy:  lipgloss.Color("42"),
		domain.StatusExpiring: lipgloss.Color("214"),
		domain.StatusExpired:  lipgloss.Color("196"),
		domain.StatusLowStock: lipgloss.Color("99"),
	}
)

var itemHeaders = []string{"ID", "Name", "Category", "Batch", "Supplier", "Quantity", "Expiry", "Countdown", "Price", "Status"}

const statusColumn = 9

func statusStyle(status domain.Status) lipgloss.Style {
	style := cellStyle
	if color, ok := statusColors[status]; ok {
		style = style.Foreground(color).Bold(true)
	}
	return style
}

func formatDate(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(time.DateOnly)
}

// renderItems writes one table row per item, the status cell coloured by status.
func renderItems(w io.Writer, items []domain.InventoryItem, today time.Time) {
	if len(items) == 0 {
		fmt.Fprintln(w, mutedStyle.Render("No items match the current filters."))
		return
	}

	statuses := make([]domain.Status, len(items))
	rows := make([][]string, len(items))
	for i, item := range items {
		statuses[i] = domain.Classify(item, today)
		rows[i] = []string{
			item.ID,
			item.Name,
			item.Category,
			item.BatchNumber,
			item.Supplier,
			domain.FormatQuantity(item.Quantity, item.Unit),
			formatDate(item.ExpiryDate, today.Location()),
			domain.FormatCountdown(item.ExpiryDate, today),
			domain.FormatPrice(item.PricePerUnit),
			statuses[i].Label(),
		}
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		Headers(itemHeaders...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			if col == statusColumn && row >= 0 && row < len(statuses) {
				return statusStyle(statuses[row])
			}
			return cellStyle
		})

	fmt.Fprintln(w, t.String())
	fmt.Fprintln(w, mutedStyle.Render(fmt.Sprintf("%d %s", len(items), pluralize(len(items), "item"))))
}

// renderItem prints a single item as a two-column detail table.
func renderItem(w io.Writer, item domain.InventoryItem, today time.Time) {
	status := domain.Classify(item, today)

	purchase := "—"
	if item.PurchaseDate != nil {
		purchase = formatDate(*item.PurchaseDate, today.Location())
	}
	notes := item.Notes
	if notes == "" {
		notes = "—"
	}

	rows := [][]string{
		{"ID", item.ID},
		{"Name", item.Name},
		{"Category", item.Category},
		{"Batch", item.BatchNumber},
		{"Supplier", item.Supplier},
		{"Quantity", domain.FormatQuantity(item.Quantity, item.Unit)},
		{"Min stock", domain.FormatQuantity(item.MinStockLevel, item.Unit)},
		{"Price per unit", domain.FormatPrice(item.PricePerUnit)},
		{"Expiry", formatDate(item.ExpiryDate, today.Location())},
		{"Countdown", domain.FormatCountdown(item.ExpiryDate, today)},
		{"Purchased", purchase},
		{"Notes", notes},
		{"Status", status.Label()},
	}
	last := len(rows) - 1

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case col == 0:
				return headerStyle
			case row == last:
				return statusStyle(status)
			}
			return cellStyle
		})

	fmt.Fprintln(w, t.String())
}

// renderSnapshot prints the dashboard counters.
func renderSnapshot(w io.Writer, snapshot domain.Snapshot, suppliers int) {
	rows := [][]string{
		{"Total SKUs", fmt.Sprint(snapshot.TotalSkus)},
		{"Units in stock", fmt.Sprint(snapshot.TotalUnits)},
		{"Expiring soon", fmt.Sprint(snapshot.ExpiringSoon)},
		{"Expired", fmt.Sprint(snapshot.Expired)},
		{"Low stock", fmt.Sprint(snapshot.LowStock)},
		{"Trusted suppliers", fmt.Sprint(suppliers)},
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		Headers("Metric", "Value").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	fmt.Fprintln(w, titleStyle.Render("Inventory snapshot"))
	fmt.Fprintln(w, t.String())
}

func pluralize(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
