package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"
	_ "time/tzdata"

	"medical-store/internal/config"
	"medical-store/internal/domain"
	"medical-store/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testKey = "cli-test"

func testConfig(dir string) *config.Config {
	return &config.Config{
		Timezone:      "UTC",
		StorageDriver: config.StorageFile,
		StorageDir:    dir,
		StorageKey:    testKey,
	}
}

// run executes one medstore invocation against the file storage in dir.
func run(t *testing.T, dir string, args ...string) (string, error) {
	t.Helper()

	cmd := NewRootCommand(testConfig(dir))
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func writeFixture(t *testing.T, dir string) {
	t.Helper()

	today := time.Now().UTC()
	items := []domain.InventoryItem{
		{
			ID: "id-1", Name: "Paracetamol 500mg", Category: "Analgesic", BatchNumber: "PCM-A23",
			Supplier: "GoodHealth Distributors", Quantity: 150, Unit: domain.UnitTablet,
			ExpiryDate: today.AddDate(0, 0, 90), PricePerUnit: 0.35, MinStockLevel: 50,
		},
		{
			ID: "id-2", Name: "Eye Drops", Category: "Ophthalmic", BatchNumber: "EYE-7",
			Supplier: "ClearSight", Quantity: 10, Unit: domain.UnitBottle,
			ExpiryDate: today.AddDate(0, 0, 200), PricePerUnit: 3, MinStockLevel: 20,
		},
		{
			ID: "id-3", Name: "Vitamin C Syrup", Category: "Supplement", BatchNumber: "VITC-332",
			Supplier: "NatureLife Labs", Quantity: 45, Unit: domain.UnitBottle,
			ExpiryDate: today.AddDate(0, 0, 10), PricePerUnit: 4.25, MinStockLevel: 30,
		},
		{
			ID: "id-4", Name: "Cough Syrup", Category: "Respiratory", BatchNumber: "CS-11",
			Supplier: "MedSupply Co.", Quantity: 12, Unit: domain.UnitBottle,
			ExpiryDate: today.AddDate(0, 0, -3), MinStockLevel: 5,
		},
	}

	repo, err := repository.NewFileRepository(dir, testKey)
	require.NoError(t, err)
	require.NoError(t, repo.Save(context.Background(), items))
}

func loadStored(t *testing.T, dir string) []domain.InventoryItem {
	t.Helper()

	repo, err := repository.NewFileRepository(dir, testKey)
	require.NoError(t, err)
	items, err := repo.Load(context.Background())
	require.NoError(t, err)
	return items
}

func TestVersion(t *testing.T) {
	dir := t.TempDir()

	out, err := run(t, dir, "version")

	require.NoError(t, err)
	assert.Equal(t, "medstore version "+Version+"\n", out)
	_, statErr := os.Stat(filepath.Join(dir, testKey+".json"))
	assert.True(t, os.IsNotExist(statErr), "version must not touch storage")
}

func TestList(t *testing.T) {
	t.Run("first run seeds and persists sample data", func(t *testing.T) {
		dir := t.TempDir()

		out, err := run(t, dir, "list")

		require.NoError(t, err)
		assert.Contains(t, out, "Paracetamol 500mg")
		assert.Contains(t, out, "Amoxicillin 250mg")
		assert.Contains(t, out, "Vitamin C Syrup")
		assert.Contains(t, out, "3 items")
		assert.Len(t, loadStored(t, dir), 3)
	})

	t.Run("status filter", func(t *testing.T) {
		dir := t.TempDir()
		writeFixture(t, dir)

		out, err := run(t, dir, "list", "--status", "expiring")

		require.NoError(t, err)
		assert.Contains(t, out, "Vitamin C Syrup")
		assert.Contains(t, out, "Expiring Soon")
		assert.Contains(t, out, "Expires in 10 days")
		assert.NotContains(t, out, "Paracetamol")
		assert.Contains(t, out, "1 item")
	})

	t.Run("search and category", func(t *testing.T) {
		dir := t.TempDir()
		writeFixture(t, dir)

		out, err := run(t, dir, "list", "--search", "syrup", "--category", "Respiratory")

		require.NoError(t, err)
		assert.Contains(t, out, "Cough Syrup")
		assert.Contains(t, out, "3 days overdue")
		assert.NotContains(t, out, "Vitamin C Syrup")
	})

	t.Run("no matches", func(t *testing.T) {
		dir := t.TempDir()
		writeFixture(t, dir)

		out, err := run(t, dir, "list", "--search", "insulin")

		require.NoError(t, err)
		assert.Contains(t, out, "No items match")
	})

	t.Run("unknown status is rejected", func(t *testing.T) {
		dir := t.TempDir()

		_, err := run(t, dir, "list", "--status", "fresh")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid status")
	})

	t.Run("json output is ordered by expiry", func(t *testing.T) {
		dir := t.TempDir()
		writeFixture(t, dir)

		out, err := run(t, dir, "list", "--json")
		require.NoError(t, err)

		var items []map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(out), &items))
		require.Len(t, items, 4)
		assert.Equal(t, "id-4", items[0]["id"])
		assert.Equal(t, "id-3", items[1]["id"])
		assert.Equal(t, "id-1", items[2]["id"])
		assert.Equal(t, "id-2", items[3]["id"])
	})
}

func TestShow(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir)

	out, err := run(t, dir, "show", "id-2")

	require.NoError(t, err)
	assert.Contains(t, out, "Eye Drops")
	assert.Contains(t, out, "10 bottles")
	assert.Contains(t, out, "₹3.00")
	assert.Contains(t, out, "Low Stock")

	_, err = run(t, dir, "show", "missing")
	assert.ErrorIs(t, err, domain.ErrItemNotFound)
}

func TestAlerts(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir)

	out, err := run(t, dir, "alerts")

	require.NoError(t, err)
	assert.Contains(t, out, "Expiry alerts")
	assert.Contains(t, out, "Cough Syrup")
	assert.Contains(t, out, "Vitamin C Syrup")
	assert.NotContains(t, out, "Eye Drops")
	assert.Contains(t, out, "2 items")
}

func TestAlertsEmpty(t *testing.T) {
	dir := t.TempDir()
	repo, err := repository.NewFileRepository(dir, testKey)
	require.NoError(t, err)
	require.NoError(t, repo.Save(context.Background(), []domain.InventoryItem{}))

	out, err := run(t, dir, "alerts")

	require.NoError(t, err)
	assert.Contains(t, out, "No batches expire within 30 days.")
}

func TestSnapshot(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir)

	out, err := run(t, dir, "snapshot", "--json")
	require.NoError(t, err)

	var snapshot domain.Snapshot
	require.NoError(t, json.Unmarshal([]byte(out), &snapshot))
	assert.Equal(t, domain.Snapshot{TotalSkus: 4, TotalUnits: 217, ExpiringSoon: 1, Expired: 1, LowStock: 1}, snapshot)

	out, err = run(t, dir, "snapshot")
	require.NoError(t, err)
	assert.Contains(t, out, "Inventory snapshot")
	assert.Contains(t, out, "Trusted suppliers")
	assert.Contains(t, out, "217")
}

func TestCategories(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir)

	out, err := run(t, dir, "categories")

	require.NoError(t, err)
	assert.Contains(t, out, "Analgesic\n")
	assert.Contains(t, out, "Ophthalmic\n")
	assert.Contains(t, out, "Wellness\n")
}

func TestAdd(t *testing.T) {
	t.Run("creates and persists", func(t *testing.T) {
		dir := t.TempDir()
		writeFixture(t, dir)

		out, err := run(t, dir, "add",
			"--name", " Cetirizine 10mg ",
			"--category", "Allergy",
			"--batch", "CTZ-01",
			"--supplier", "MedSupply Co.",
			"--quantity", "60",
			"--unit", "Tablet",
			"--expiry", "2030-06-30",
			"--price", "0.5",
		)

		require.NoError(t, err)
		assert.Contains(t, out, "Added Cetirizine 10mg (")

		items := loadStored(t, dir)
		require.Len(t, items, 5)
		assert.Equal(t, "Cetirizine 10mg", items[0].Name)
		assert.Equal(t, domain.UnitTablet, items[0].Unit)
		assert.Equal(t, 60, items[0].Quantity)
		assert.NotEmpty(t, items[0].ID)
		assert.Nil(t, items[0].PurchaseDate)
	})

	t.Run("required flags", func(t *testing.T) {
		dir := t.TempDir()

		_, err := run(t, dir, "add", "--name", "Cetirizine")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "required flag")
	})

	t.Run("validation names the flag", func(t *testing.T) {
		dir := t.TempDir()

		_, err := run(t, dir, "add",
			"--name", "Cetirizine", "--category", "Allergy", "--batch", "CTZ-01",
			"--supplier", "MedSupply Co.", "--unit", "tablet", "--expiry", "2030-06-30",
			"--min-stock=-1",
		)

		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrInvalidItem)
		assert.Contains(t, err.Error(), "--min-stock")
	})

	t.Run("unknown unit", func(t *testing.T) {
		dir := t.TempDir()

		_, err := run(t, dir, "add",
			"--name", "Cetirizine", "--category", "Allergy", "--batch", "CTZ-01",
			"--supplier", "MedSupply Co.", "--unit", "crate", "--expiry", "2030-06-30",
		)

		assert.ErrorIs(t, err, domain.ErrInvalidItem)
	})

	t.Run("bad expiry", func(t *testing.T) {
		dir := t.TempDir()

		_, err := run(t, dir, "add",
			"--name", "Cetirizine", "--category", "Allergy", "--batch", "CTZ-01",
			"--supplier", "MedSupply Co.", "--unit", "tablet", "--expiry", "next year",
		)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "--expiry")
	})
}

func TestAdd_CalendarDateUsesTimezoneFlag(t *testing.T) {
	dir := t.TempDir()
	const zone = "Etc/GMT+11"
	loc, err := time.LoadLocation(zone)
	require.NoError(t, err)
	today := time.Now().In(loc).Format(time.DateOnly)

	_, err = run(t, dir, "--timezone", zone, "add",
		"--name", "Cetirizine 10mg", "--category", "Allergy", "--batch", "CTZ-01",
		"--supplier", "MedSupply Co.", "--quantity", "60", "--unit", "tablet", "--expiry", today,
	)
	require.NoError(t, err)

	stored := loadStored(t, dir)[0]
	assert.Equal(t, today, stored.ExpiryDate.In(loc).Format(time.DateOnly))
	assert.Equal(t, 0, stored.ExpiryDate.In(loc).Hour())

	out, err := run(t, dir, "--timezone", zone, "list", "--status", "expiring", "--search", "cetirizine")
	require.NoError(t, err)
	assert.Contains(t, out, "Expires today")
	assert.Contains(t, out, "Expiring Soon")
}

func TestAdd_InvalidTimezone(t *testing.T) {
	_, err := run(t, t.TempDir(), "--timezone", "Mars/Olympus", "add",
		"--name", "Cetirizine 10mg", "--category", "Allergy", "--batch", "CTZ-01",
		"--supplier", "MedSupply Co.", "--unit", "tablet", "--expiry", "2030-06-30",
	)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid --timezone")
}

func TestUpdate(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir)

	out, err := run(t, dir, "update", "id-2", "--quantity", "40", "--notes", "Restocked")
	require.NoError(t, err)
	assert.Contains(t, out, "Updated Eye Drops (id-2)")

	items := loadStored(t, dir)
	require.Len(t, items, 4)
	assert.Equal(t, "id-2", items[1].ID)
	assert.Equal(t, 40, items[1].Quantity)
	assert.Equal(t, "Restocked", items[1].Notes)
	assert.Equal(t, "ClearSight", items[1].Supplier)

	_, err = run(t, dir, "update", "id-2")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nothing to update")

	_, err = run(t, dir, "update", "id-2", "--name", "  ")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--name must not be empty")

	_, err = run(t, dir, "update", "missing", "--quantity", "1")
	assert.ErrorIs(t, err, domain.ErrItemNotFound)
}

func TestAdjust(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir)

	out, err := run(t, dir, "adjust", "id-1", "--by", "10")
	require.NoError(t, err)
	assert.Contains(t, out, "Paracetamol 500mg now has 160 tablets")

	out, err = run(t, dir, "adjust", "id-1", "--by=-500")
	require.NoError(t, err)
	assert.Contains(t, out, "now has 0 tablets")
	assert.Equal(t, 0, loadStored(t, dir)[0].Quantity)

	_, err = run(t, dir, "adjust", "id-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "required flag")

	_, err = run(t, dir, "adjust", "missing", "--by", "1")
	assert.ErrorIs(t, err, domain.ErrItemNotFound)
}

func TestDelete(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir)

	out, err := run(t, dir, "delete", "id-3")
	require.NoError(t, err)
	assert.Contains(t, out, "Deleted id-3")

	items := loadStored(t, dir)
	require.Len(t, items, 3)
	for _, item := range items {
		assert.NotEqual(t, "id-3", item.ID)
	}

	_, err = run(t, dir, "rm", "id-3")
	assert.ErrorIs(t, err, domain.ErrItemNotFound)
	assert.Len(t, loadStored(t, dir), 3)
}

func TestReset(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir)

	out, err := run(t, dir, "reset")
	require.NoError(t, err)
	assert.Contains(t, out, "Inventory reset to 3 sample items")

	items := loadStored(t, dir)
	require.Len(t, items, 3)
	assert.Equal(t, "Paracetamol 500mg", items[0].Name)
	assert.Equal(t, "Amoxicillin 250mg", items[1].Name)
	assert.Equal(t, "Vitamin C Syrup", items[2].Name)
}

func TestMemoryStorageFlag(t *testing.T) {
	dir := t.TempDir()

	out, err := run(t, dir, "--storage", "MEMORY", "reset")
	require.NoError(t, err)
	assert.Contains(t, out, "Inventory reset to 3 sample items")

	_, statErr := os.Stat(filepath.Join(dir, testKey+".json"))
	assert.True(t, os.IsNotExist(statErr))
}
