package repositories

import (
	"context"

	"optic-backend/internal/models"
	"optic-backend/internal/storage"

	"github.com/google/uuid"
)

type AppointmentRepository struct {
	Store *storage.Store
}

func NewAppointmentRepository(store *storage.Store) *AppointmentRepository {
	return &AppointmentRepository{Store: store}
}

func (r *AppointmentRepository) Create(ctx context.Context, a *models.Appointment) error {
	a.ID = uuid.NewString()
	return r.Store.Update("appointments", func(tx *storage.Tx) error {
		tx.Snap.Appointments = append([]models.Appointment{*a}, tx.Snap.Appointments...)
		return nil
	})
}

func (r *AppointmentRepository) Get(ctx context.Context, id string) (*models.Appointment, error) {
	var found *models.Appointment
	r.Store.View(func(snap *storage.Snapshot) {
		for i := range snap.Appointments {
			if snap.Appointments[i].ID == id {
				a := snap.Appointments[i]
				found = &a
				return
			}
		}
	})
	if found == nil {
		return nil, ErrNotFound
	}
	return found, nil
}

func (r *AppointmentRepository) List(ctx context.Context) ([]models.Appointment, error) {
	var appointments []models.Appointment
	r.Store.View(func(snap *storage.Snapshot) {
		appointments = append(appointments, snap.Appointments...)
	})
	return appointments, nil
}

func (r *AppointmentRepository) ListByCustomer(ctx context.Context, customerID string) ([]models.Appointment, error) {
	var appointments []models.Appointment
	r.Store.View(func(snap *storage.Snapshot) {
		for _, a := range snap.Appointments {
			if a.CustomerID == customerID {
				appointments = append(appointments, a)
			}
		}
	})
	return appointments, nil
}

func (r *AppointmentRepository) Replace(ctx context.Context, a *models.Appointment) error {
	return r.Store.Update("appointments", func(tx *storage.Tx) error {
		for i := range tx.Snap.Appointments {
			if tx.Snap.Appointments[i].ID == a.ID {
				tx.Snap.Appointments[i] = *a
				return nil
			}
		}
		return ErrNotFound
	})
}

func (r *AppointmentRepository) Delete(ctx context.Context, id string) error {
	return r.Store.Update("appointments", func(tx *storage.Tx) error {
		kept := tx.Snap.Appointments[:0]
		removed := false
		for _, a := range tx.Snap.Appointments {
			if a.ID == id {
				removed = true
				continue
			}
			kept = append(kept, a)
		}
		if !removed {
			return ErrNotFound
		}
		tx.Snap.Appointments = kept
		return nil
	})
}
