package repositories

import (
	"context"

	"optic-backend/internal/models"
	"optic-backend/internal/storage"
)

type SettingsRepository struct {
	Store *storage.Store
}

func NewSettingsRepository(store *storage.Store) *SettingsRepository {
	return &SettingsRepository{Store: store}
}

func (r *SettingsRepository) Get(ctx context.Context) (models.ShopSettings, error) {
	var settings models.ShopSettings
	r.Store.View(func(snap *storage.Snapshot) {
		settings = snap.Settings
	})
	return settings, nil
}

func (r *SettingsRepository) Replace(ctx context.Context, settings models.ShopSettings) error {
	return r.Store.Update("settings", func(tx *storage.Tx) error {
		tx.Snap.Settings = settings
		return nil
	})
}
