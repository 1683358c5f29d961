package storage_test

import (
	"os"
	"path/filepath"
	"testing"

	"optic-backend/internal/models"
	"optic-backend/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotRoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "db.json")
	snap := storage.SeedSnapshot()

	require.NoError(t, storage.Save(path, &snap))

	loaded := storage.Load(path, storage.Snapshot{})
	assert.Equal(t, snap.Customers, loaded.Customers)
	assert.Equal(t, snap.Products, loaded.Products)
	assert.Equal(t, snap.Sales, loaded.Sales)
	assert.Equal(t, snap.Settings, loaded.Settings)
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nope.json")
	defaults := storage.SeedSnapshot()

	loaded := storage.Load(path, defaults)
	assert.Equal(t, defaults.Settings.Name, loaded.Settings.Name)
	assert.Len(t, loaded.Customers, len(defaults.Customers))
}

func TestLoadCorruptFileUsesDefaults(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "db.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	defaults := storage.SeedSnapshot()
	loaded := storage.Load(path, defaults)
	assert.Equal(t, defaults.Settings, loaded.Settings)
	assert.Len(t, loaded.Sales, len(defaults.Sales))
}

func TestLoadMissingKeysKeepDefaults(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "db.json")
	blob := `{"customers": [{"id": "c1", "first_name": "Nora", "last_name": "El Idrissi"}]}`
	require.NoError(t, os.WriteFile(path, []byte(blob), 0o644))

	defaults := storage.SeedSnapshot()
	loaded := storage.Load(path, defaults)

	// Present key overrides, absent keys fall back
	require.Len(t, loaded.Customers, 1)
	assert.Equal(t, "Nora", loaded.Customers[0].FirstName)
	assert.Equal(t, defaults.Settings, loaded.Settings)
	assert.Len(t, loaded.Products, len(defaults.Products))
}

func TestStoreUpdatePersistsAndNotifies(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "db.json")
	store := storage.Open(path, storage.Snapshot{})

	var changed []string
	store.OnChange(func(collection string) {
		changed = append(changed, collection)
	})

	err := store.Update("customers", func(tx *storage.Tx) error {
		tx.Snap.Customers = append(tx.Snap.Customers, models.Customer{
			ID:        "c1",
			FirstName: "Amine",
			LastName:  "Berrada",
		})
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"customers"}, changed)

	// The file is rewritten wholesale on every mutation
	reopened := storage.Open(path, storage.Snapshot{})
	counts := reopened.Counts()
	assert.Equal(t, 1, counts["customers"])
}

func TestStorePrimesSaleCounterFromExistingIDs(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "db.json")
	snap := storage.Snapshot{
		Sales: []models.Sale{{ID: "C0007"}, {ID: "C0002"}},
	}
	require.NoError(t, storage.Save(path, &snap))

	store := storage.Open(path, storage.Snapshot{})

	var next string
	err := store.Update("sales", func(tx *storage.Tx) error {
		next = tx.NextSaleID()
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, "C0008", next)
}

func TestStoreExport(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "db.json")
	store := storage.Open(path, storage.SeedSnapshot())

	data, err := store.Export()
	require.NoError(t, err)
	assert.Contains(t, string(data), `"customers"`)
	assert.Contains(t, string(data), `"settings"`)
}
