package services

import (
	"context"
	"fmt"

	"optic-backend/internal/models"
	"optic-backend/internal/repositories"
)

type CustomerService struct {
	Repo *repositories.CustomerRepository
}

func NewCustomerService(repo *repositories.CustomerRepository) *CustomerService {
	return &CustomerService{Repo: repo}
}

func (s *CustomerService) CreateCustomer(ctx context.Context, req *models.CreateCustomerRequest) (*models.Customer, error) {
	if req.FirstName == "" && req.LastName == "" {
		return nil, fmt.Errorf("%w: customer name is required", ErrValidation)
	}
	customer := models.Customer{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		Address:   req.Address,
		BirthDate: req.BirthDate,
		Notes:     req.Notes,
		PhotoURL:  req.PhotoURL,
	}
	if err := s.Repo.Create(ctx, &customer); err != nil {
		return nil, err
	}
	return &customer, nil
}

func (s *CustomerService) GetCustomer(ctx context.Context, id string) (*models.Customer, error) {
	return s.Repo.Get(ctx, id)
}

func (s *CustomerService) ListCustomers(ctx context.Context) ([]models.Customer, error) {
	return s.Repo.List(ctx)
}

func (s *CustomerService) SearchCustomers(ctx context.Context, query string) ([]models.Customer, error) {
	return s.Repo.Search(ctx, query)
}

// UpdateCustomer merges the provided fields onto the existing record;
// absent fields are preserved.
func (s *CustomerService) UpdateCustomer(ctx context.Context, id string, req *models.UpdateCustomerRequest) (*models.Customer, error) {
	customer, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.FirstName != nil {
		customer.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		customer.LastName = *req.LastName
	}
	if req.Email != nil {
		customer.Email = *req.Email
	}
	if req.Phone != nil {
		customer.Phone = *req.Phone
	}
	if req.Address != nil {
		customer.Address = *req.Address
	}
	if req.BirthDate != nil {
		customer.BirthDate = *req.BirthDate
	}
	if req.Notes != nil {
		customer.Notes = *req.Notes
	}
	if req.PhotoURL != nil {
		customer.PhotoURL = *req.PhotoURL
	}
	if err := s.Repo.Replace(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

// DeleteCustomer removes the customer only; sales that reference the
// identifier keep their reference and render as an unknown client.
func (s *CustomerService) DeleteCustomer(ctx context.Context, id string) error {
	return s.Repo.Delete(ctx, id)
}
