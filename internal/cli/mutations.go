package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"medical-store/internal/app"
	"medical-store/internal/domain"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// itemFlags binds the editable item fields to command flags.
type itemFlags struct {
	name          string
	category      string
	batchNumber   string
	supplier      string
	quantity      int
	unit          string
	expiryDate    string
	purchaseDate  string
	pricePerUnit  float64
	minStockLevel int
	notes         string
}

func (f *itemFlags) register(flags *pflag.FlagSet) {
	units := make([]string, len(domain.Units))
	for i, u := range domain.Units {
		units[i] = string(u)
	}

	flags.StringVar(&f.name, "name", "", "Product name")
	flags.StringVar(&f.category, "category", "", "Category, suggested or custom")
	flags.StringVar(&f.batchNumber, "batch", "", "Batch number")
	flags.StringVar(&f.supplier, "supplier", "", "Supplier")
	flags.IntVar(&f.quantity, "quantity", 0, "Units in stock")
	flags.StringVar(&f.unit, "unit", "", "Unit: "+strings.Join(units, ", "))
	flags.StringVar(&f.expiryDate, "expiry", "", "Expiry date (YYYY-MM-DD)")
	flags.StringVar(&f.purchaseDate, "purchase", "", "Purchase date (YYYY-MM-DD)")
	flags.Float64Var(&f.pricePerUnit, "price", 0, "Price per unit")
	flags.IntVar(&f.minStockLevel, "min-stock", 0, "Low-stock threshold")
	flags.StringVar(&f.notes, "notes", "", "Free-form notes")
}

func (f *itemFlags) newItem(loc *time.Location) (domain.NewItem, error) {
	item := domain.NewItem{
		Name:          f.name,
		Category:      f.category,
		BatchNumber:   f.batchNumber,
		Supplier:      f.supplier,
		Quantity:      f.quantity,
		Unit:          domain.Unit(strings.ToLower(strings.TrimSpace(f.unit))),
		PricePerUnit:  f.pricePerUnit,
		MinStockLevel: f.minStockLevel,
		Notes:         f.notes,
	}

	if strings.TrimSpace(f.expiryDate) != "" {
		expiry, err := domain.ParseDateIn(f.expiryDate, loc)
		if err != nil {
			return domain.NewItem{}, fmt.Errorf("--expiry: %w", err)
		}
		item.ExpiryDate = expiry
	}
	purchase, err := parseOptionalDate(f.purchaseDate, loc)
	if err != nil {
		return domain.NewItem{}, fmt.Errorf("--purchase: %w", err)
	}
	item.PurchaseDate = purchase

	if err := item.Validate(); err != nil {
		return domain.NewItem{}, flagError(err)
	}
	return item, nil
}

// patch includes only the flags set on the command line.
func (f *itemFlags) patch(flags *pflag.FlagSet, loc *time.Location) (domain.ItemPatch, error) {
	var p domain.ItemPatch

	var err error
	if p.Name, err = changedText(flags, "name", f.name); err != nil {
		return domain.ItemPatch{}, err
	}
	if p.Category, err = changedText(flags, "category", f.category); err != nil {
		return domain.ItemPatch{}, err
	}
	if p.BatchNumber, err = changedText(flags, "batch", f.batchNumber); err != nil {
		return domain.ItemPatch{}, err
	}
	if p.Supplier, err = changedText(flags, "supplier", f.supplier); err != nil {
		return domain.ItemPatch{}, err
	}

	if flags.Changed("quantity") {
		if f.quantity < 0 {
			return domain.ItemPatch{}, errors.New("--quantity must be >= 0")
		}
		p.Quantity = &f.quantity
	}
	if flags.Changed("unit") {
		unit := domain.Unit(strings.ToLower(strings.TrimSpace(f.unit)))
		if !unit.Valid() {
			return domain.ItemPatch{}, fmt.Errorf("--unit: unknown unit %q", f.unit)
		}
		p.Unit = &unit
	}
	if flags.Changed("expiry") {
		expiry, err := domain.ParseDateIn(f.expiryDate, loc)
		if err != nil {
			return domain.ItemPatch{}, fmt.Errorf("--expiry: %w", err)
		}
		p.ExpiryDate = &expiry
	}
	if flags.Changed("purchase") {
		purchase, err := parseOptionalDate(f.purchaseDate, loc)
		if err != nil {
			return domain.ItemPatch{}, fmt.Errorf("--purchase: %w", err)
		}
		p.PurchaseDate = purchase
	}
	if flags.Changed("price") {
		if f.pricePerUnit < 0 {
			return domain.ItemPatch{}, errors.New("--price must be >= 0")
		}
		p.PricePerUnit = &f.pricePerUnit
	}
	if flags.Changed("min-stock") {
		if f.minStockLevel < 0 {
			return domain.ItemPatch{}, errors.New("--min-stock must be >= 0")
		}
		p.MinStockLevel = &f.minStockLevel
	}
	if flags.Changed("notes") {
		p.Notes = &f.notes
	}

	return p, nil
}

func newAddCommand(s *session) *cobra.Command {
	var f itemFlags

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a batch to the inventory",
		Example: `  medstore add --name "Cetirizine 10mg" --category Respiratory --batch CTZ-01 \
    --supplier "MedSupply Co." --quantity 60 --unit tablet --expiry 2025-06-30`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			loc, err := s.location()
			if err != nil {
				return err
			}
			input, err := f.newItem(loc)
			if err != nil {
				return err
			}
			return s.withInventory(cmd, func(ctx context.Context, inv *app.Inventory) error {
				item := inv.Store.Create(ctx, input)
				fmt.Fprintf(cmd.OutOrStdout(), "Added %s (%s)\n", item.Name, item.ID)
				return nil
			})
		},
	}

	f.register(cmd.Flags())
	for _, name := range []string{"name", "category", "batch", "supplier", "unit", "expiry"} {
		_ = cmd.MarkFlagRequired(name)
	}
	return cmd
}

func newUpdateCommand(s *session) *cobra.Command {
	var f itemFlags

	cmd := &cobra.Command{
		Use:     "update <id>",
		Short:   "Change fields of an existing item",
		Example: `  medstore update 3f2a... --quantity 120 --notes "Restocked"`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			loc, err := s.location()
			if err != nil {
				return err
			}
			patch, err := f.patch(cmd.Flags(), loc)
			if err != nil {
				return err
			}
			if patch.IsEmpty() {
				return errors.New("nothing to update: pass at least one field flag")
			}
			return s.withInventory(cmd, func(ctx context.Context, inv *app.Inventory) error {
				item, err := inv.Store.Update(ctx, args[0], patch)
				if err != nil {
					return fmt.Errorf("item %s: %w", args[0], err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Updated %s (%s)\n", item.Name, item.ID)
				return nil
			})
		},
	}

	f.register(cmd.Flags())
	return cmd
}

func newAdjustCommand(s *session) *cobra.Command {
	var delta int

	cmd := &cobra.Command{
		Use:   "adjust <id>",
		Short: "Add or remove stock; the quantity never drops below zero",
		Example: `  medstore adjust 3f2a... --by 10
  medstore adjust 3f2a... --by=-5`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return s.withInventory(cmd, func(ctx context.Context, inv *app.Inventory) error {
				item, err := inv.Store.AdjustQuantity(ctx, args[0], delta)
				if err != nil {
					return fmt.Errorf("item %s: %w", args[0], err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s now has %s\n", item.Name, domain.FormatQuantity(item.Quantity, item.Unit))
				return nil
			})
		},
	}

	cmd.Flags().IntVar(&delta, "by", 0, "Signed change in units")
	_ = cmd.MarkFlagRequired("by")
	return cmd
}

func newDeleteCommand(s *session) *cobra.Command {
	return &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Short:   "Remove an item",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return s.withInventory(cmd, func(ctx context.Context, inv *app.Inventory) error {
				if err := inv.Store.Delete(ctx, args[0]); err != nil {
					return fmt.Errorf("item %s: %w", args[0], err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", args[0])
				return nil
			})
		},
	}
}

func newResetCommand(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Replace the inventory with the sample data",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return s.withInventory(cmd, func(ctx context.Context, inv *app.Inventory) error {
				items := inv.Store.Reset(ctx)
				fmt.Fprintf(cmd.OutOrStdout(), "Inventory reset to %d sample %s\n", len(items), pluralize(len(items), "item"))
				return nil
			})
		},
	}
}

func parseOptionalDate(value string, loc *time.Location) (*time.Time, error) {
	if strings.TrimSpace(value) == "" {
		return nil, nil
	}
	t, err := domain.ParseDateIn(value, loc)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// changedText returns the trimmed flag value when the flag was set. Required
// text fields cannot be cleared.
func changedText(flags *pflag.FlagSet, name, value string) (*string, error) {
	if !flags.Changed(name) {
		return nil, nil
	}
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return nil, fmt.Errorf("--%s must not be empty", name)
	}
	return &trimmed, nil
}

var flagNames = map[string]string{
	"batchNumber":   "batch",
	"expiryDate":    "expiry",
	"pricePerUnit":  "price",
	"minStockLevel": "min-stock",
}

// flagError names the offending flag of a validation failure.
func flagError(err error) error {
	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		return err
	}
	name := verr.Field
	if mapped, ok := flagNames[name]; ok {
		name = mapped
	}
	return fmt.Errorf("--%s %s: %w", name, verr.Message, domain.ErrInvalidItem)
}
