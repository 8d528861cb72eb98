package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"medical-store/internal/app"
	"medical-store/internal/domain"

	"github.com/spf13/cobra"
)

func newListCommand(s *session) *cobra.Command {
	var (
		filters domain.Filters
		asJSON  bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List items, optionally filtered",
		Example: `  medstore list --search amox
  medstore list --category Antibiotic --status expiring`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !validStatusFilter(filters.Status) {
				return fmt.Errorf("invalid status %q: expected one of %s",
					filters.Status, strings.Join(domain.StatusFilterValues, ", "))
			}
			return s.withInventory(cmd, func(ctx context.Context, inv *app.Inventory) error {
				items := inv.Store.Filtered(filters)
				if asJSON {
					return writeJSON(cmd, items)
				}
				renderItems(cmd.OutOrStdout(), items, inv.Store.Today())
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&filters.Search, "search", "s", "", "Match name, batch number or supplier")
	cmd.Flags().StringVar(&filters.Category, "category", domain.FilterAll, "Category to show, or all")
	cmd.Flags().StringVar(&filters.Status, "status", domain.FilterAll, "Status to show: "+strings.Join(domain.StatusFilterValues, ", "))
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print items as JSON")

	return cmd
}

func newShowCommand(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show every field of one item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return s.withInventory(cmd, func(ctx context.Context, inv *app.Inventory) error {
				item, err := inv.Store.Get(args[0])
				if err != nil {
					return fmt.Errorf("item %s: %w", args[0], err)
				}
				renderItem(cmd.OutOrStdout(), item, inv.Store.Today())
				return nil
			})
		},
	}
}

func newAlertsCommand(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "alerts",
		Short: "List expired and expiring batches, soonest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return s.withInventory(cmd, func(ctx context.Context, inv *app.Inventory) error {
				alerts := inv.Store.Alerts()
				out := cmd.OutOrStdout()
				if len(alerts) == 0 {
					fmt.Fprintln(out, mutedStyle.Render(fmt.Sprintf("No batches expire within %d days.", domain.ExpiryThresholdDays)))
					return nil
				}
				fmt.Fprintln(out, titleStyle.Render("Expiry alerts"))
				renderItems(out, alerts, inv.Store.Today())
				return nil
			})
		},
	}
}

func newSnapshotCommand(s *session) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Show inventory counters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return s.withInventory(cmd, func(ctx context.Context, inv *app.Inventory) error {
				snapshot := inv.Store.Snapshot()
				if asJSON {
					return writeJSON(cmd, snapshot)
				}
				renderSnapshot(cmd.OutOrStdout(), snapshot, inv.Store.SupplierCount())
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the snapshot as JSON")
	return cmd
}

func newCategoriesCommand(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List suggested and in-use categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return s.withInventory(cmd, func(ctx context.Context, inv *app.Inventory) error {
				for _, category := range inv.Store.Categories() {
					fmt.Fprintln(cmd.OutOrStdout(), category)
				}
				return nil
			})
		},
	}
}

func validStatusFilter(value string) bool {
	for _, allowed := range domain.StatusFilterValues {
		if value == allowed {
			return true
		}
	}
	return false
}

func writeJSON(cmd *cobra.Command, v interface{}) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
