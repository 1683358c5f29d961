package repositories

import (
	"context"
	"strings"

	"optic-backend/internal/models"
	"optic-backend/internal/storage"

	"github.com/google/uuid"
)

type StaffRepository struct {
	Store *storage.Store
}

func NewStaffRepository(store *storage.Store) *StaffRepository {
	return &StaffRepository{Store: store}
}

func (r *StaffRepository) Create(ctx context.Context, m *models.StaffMember) error {
	m.ID = uuid.NewString()
	return r.Store.Update("staff", func(tx *storage.Tx) error {
		tx.Snap.Staff = append([]models.StaffMember{*m}, tx.Snap.Staff...)
		return nil
	})
}

func (r *StaffRepository) Get(ctx context.Context, id string) (*models.StaffMember, error) {
	var found *models.StaffMember
	r.Store.View(func(snap *storage.Snapshot) {
		for i := range snap.Staff {
			if snap.Staff[i].ID == id {
				m := snap.Staff[i]
				found = &m
				return
			}
		}
	})
	if found == nil {
		return nil, ErrNotFound
	}
	return found, nil
}

func (r *StaffRepository) List(ctx context.Context) ([]models.StaffMember, error) {
	var staff []models.StaffMember
	r.Store.View(func(snap *storage.Snapshot) {
		staff = append(staff, snap.Staff...)
	})
	return staff, nil
}

func (r *StaffRepository) Search(ctx context.Context, query string) ([]models.StaffMember, error) {
	q := strings.ToLower(query)
	var staff []models.StaffMember
	r.Store.View(func(snap *storage.Snapshot) {
		for _, m := range snap.Staff {
			if strings.Contains(strings.ToLower(m.DisplayName()), q) || strings.Contains(strings.ToLower(m.Phone), q) {
				staff = append(staff, m)
			}
		}
	})
	return staff, nil
}

func (r *StaffRepository) Replace(ctx context.Context, m *models.StaffMember) error {
	return r.Store.Update("staff", func(tx *storage.Tx) error {
		for i := range tx.Snap.Staff {
			if tx.Snap.Staff[i].ID == m.ID {
				tx.Snap.Staff[i] = *m
				return nil
			}
		}
		return ErrNotFound
	})
}

func (r *StaffRepository) Delete(ctx context.Context, id string) error {
	return r.Store.Update("staff", func(tx *storage.Tx) error {
		kept := tx.Snap.Staff[:0]
		removed := false
		for _, m := range tx.Snap.Staff {
			if m.ID == id {
				removed = true
				continue
			}
			kept = append(kept, m)
		}
		if !removed {
			return ErrNotFound
		}
		tx.Snap.Staff = kept
		return nil
	})
}
