// Package cli implements the medstore terminal client. Every command opens
// the configured storage, runs one operation against the inventory store and
// closes the storage again.
package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"medical-store/internal/app"
	"medical-store/internal/clock"
	"medical-store/internal/config"
	"medical-store/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const (
	Version = "1.0.0"
	appName = "medstore"
)

// session holds the flag values shared by all commands.
type session struct {
	cfg     *config.Config
	verbose bool
}

// NewRootCommand builds the command tree. cfg supplies the flag defaults and
// is updated in place by the persistent storage flags.
func NewRootCommand(cfg *config.Config) *cobra.Command {
	s := &session{cfg: cfg}

	cmd := &cobra.Command{
		Use:   appName,
		Short: "Pharmacy inventory from the terminal",
		Long: `medstore tracks pharmacy stock batches: quantities, expiry dates
and low-stock thresholds. It reads and writes the same storage as the
HTTP API, so both can be used against one inventory.`,
		SilenceUsage: true,
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&cfg.StorageDriver, "storage", cfg.StorageDriver, "Storage driver (memory, file, sqlite, redis)")
	flags.StringVar(&cfg.StorageDir, "storage-dir", cfg.StorageDir, "Directory for the file driver")
	flags.StringVar(&cfg.StorageKey, "storage-key", cfg.StorageKey, "Key the inventory is stored under")
	flags.StringVar(&cfg.SQLitePath, "sqlite-path", cfg.SQLitePath, "Database file for the sqlite driver")
	flags.StringVar(&cfg.Timezone, "timezone", cfg.Timezone, "Timezone that decides which calendar day is today")
	flags.BoolVarP(&s.verbose, "verbose", "v", false, "Log storage activity to stderr")

	cmd.AddCommand(
		newListCommand(s),
		newShowCommand(s),
		newAlertsCommand(s),
		newSnapshotCommand(s),
		newCategoriesCommand(s),
		newAddCommand(s),
		newUpdateCommand(s),
		newAdjustCommand(s),
		newDeleteCommand(s),
		newResetCommand(s),
		newVersionCommand(),
	)

	return cmd
}

// withInventory opens the inventory, runs fn and closes it. A close failure
// is reported only if fn succeeded.
func (s *session) withInventory(cmd *cobra.Command, fn func(ctx context.Context, inv *app.Inventory) error) (err error) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	s.cfg.StorageDriver = strings.ToLower(strings.TrimSpace(s.cfg.StorageDriver))

	log := logger.NewCLI(s.verbose)
	defer func() { _ = log.Sync() }()

	inv, err := app.NewInventory(ctx, s.cfg, log)
	if err != nil {
		return err
	}
	log.Debug("Inventory opened",
		zap.String("driver", s.cfg.StorageDriver),
		zap.Int("items", len(inv.Store.Items())),
	)

	defer func() {
		if cerr := inv.Close(ctx); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close storage: %w", cerr)
		}
	}()

	return fn(ctx, inv)
}

// location is the zone calendar dates given on the command line resolve in.
// It matches the zone the store decides today in.
func (s *session) location() (*time.Location, error) {
	loc, err := clock.LoadLocation(s.cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid --timezone %q: %w", s.cfg.Timezone, err)
	}
	return loc, nil
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s version %s\n", appName, Version)
		},
	}
}
