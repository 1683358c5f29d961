package services

import (
	"context"
	"fmt"

	"optic-backend/internal/models"
	"optic-backend/internal/repositories"
)

type AppointmentService struct {
	Repo *repositories.AppointmentRepository
}

func NewAppointmentService(repo *repositories.AppointmentRepository) *AppointmentService {
	return &AppointmentService{Repo: repo}
}

func (s *AppointmentService) CreateAppointment(ctx context.Context, req *models.CreateAppointmentRequest) (*models.Appointment, error) {
	if req.CustomerID == "" {
		return nil, fmt.Errorf("%w: no customer selected", ErrValidation)
	}
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: appointment date is required", ErrValidation)
	}
	appointment := models.Appointment{
		CustomerID: req.CustomerID,
		StaffID:    req.StaffID,
		Date:       req.Date,
		Status:     models.AppointmentPlanned,
		Notes:      req.Notes,
	}
	if err := s.Repo.Create(ctx, &appointment); err != nil {
		return nil, err
	}
	return &appointment, nil
}

func (s *AppointmentService) GetAppointment(ctx context.Context, id string) (*models.Appointment, error) {
	return s.Repo.Get(ctx, id)
}

func (s *AppointmentService) ListAppointments(ctx context.Context) ([]models.Appointment, error) {
	return s.Repo.List(ctx)
}

func (s *AppointmentService) ListByCustomer(ctx context.Context, customerID string) ([]models.Appointment, error) {
	return s.Repo.ListByCustomer(ctx, customerID)
}

func (s *AppointmentService) UpdateAppointment(ctx context.Context, id string, req *models.UpdateAppointmentRequest) (*models.Appointment, error) {
	appointment, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.CustomerID != nil {
		appointment.CustomerID = *req.CustomerID
	}
	if req.StaffID != nil {
		appointment.StaffID = *req.StaffID
	}
	if req.Date != nil {
		appointment.Date = *req.Date
	}
	if req.Status != nil {
		if !models.ValidAppointmentStatus(*req.Status) {
			return nil, fmt.Errorf("%w: unknown status %q", ErrValidation, *req.Status)
		}
		appointment.Status = *req.Status
	}
	if req.Notes != nil {
		appointment.Notes = *req.Notes
	}
	if err := s.Repo.Replace(ctx, appointment); err != nil {
		return nil, err
	}
	return appointment, nil
}

func (s *AppointmentService) DeleteAppointment(ctx context.Context, id string) error {
	return s.Repo.Delete(ctx, id)
}
