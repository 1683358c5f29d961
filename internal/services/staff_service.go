package services

import (
	"context"
	"fmt"

	"optic-backend/internal/models"
	"optic-backend/internal/repositories"
)

type StaffService struct {
	Repo *repositories.StaffRepository
}

func NewStaffService(repo *repositories.StaffRepository) *StaffService {
	return &StaffService{Repo: repo}
}

func validStaffRole(role models.StaffRole) bool {
	switch role {
	case models.RoleAdministrator, models.RoleOptician, models.RoleSecretary,
		models.RoleSalesperson, models.RoleTechnician:
		return true
	}
	return false
}

func (s *StaffService) CreateStaff(ctx context.Context, req *models.CreateStaffRequest) (*models.StaffMember, error) {
	if req.FirstName == "" && req.LastName == "" {
		return nil, fmt.Errorf("%w: staff name is required", ErrValidation)
	}
	if !validStaffRole(req.Role) {
		return nil, fmt.Errorf("%w: unknown role %q", ErrValidation, req.Role)
	}
	member := models.StaffMember{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		Role:      req.Role,
		Salary:    req.Salary,
		HireDate:  req.HireDate,
		Status:    models.StaffActive,
	}
	if err := s.Repo.Create(ctx, &member); err != nil {
		return nil, err
	}
	return &member, nil
}

func (s *StaffService) GetStaff(ctx context.Context, id string) (*models.StaffMember, error) {
	return s.Repo.Get(ctx, id)
}

func (s *StaffService) ListStaff(ctx context.Context) ([]models.StaffMember, error) {
	return s.Repo.List(ctx)
}

func (s *StaffService) SearchStaff(ctx context.Context, query string) ([]models.StaffMember, error) {
	return s.Repo.Search(ctx, query)
}

func (s *StaffService) UpdateStaff(ctx context.Context, id string, req *models.UpdateStaffRequest) (*models.StaffMember, error) {
	member, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.FirstName != nil {
		member.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		member.LastName = *req.LastName
	}
	if req.Email != nil {
		member.Email = *req.Email
	}
	if req.Phone != nil {
		member.Phone = *req.Phone
	}
	if req.Role != nil {
		if !validStaffRole(*req.Role) {
			return nil, fmt.Errorf("%w: unknown role %q", ErrValidation, *req.Role)
		}
		member.Role = *req.Role
	}
	if req.Salary != nil {
		member.Salary = req.Salary
	}
	if req.HireDate != nil {
		member.HireDate = *req.HireDate
	}
	if req.Status != nil {
		member.Status = *req.Status
	}
	if err := s.Repo.Replace(ctx, member); err != nil {
		return nil, err
	}
	return member, nil
}

func (s *StaffService) DeleteStaff(ctx context.Context, id string) error {
	return s.Repo.Delete(ctx, id)
}
