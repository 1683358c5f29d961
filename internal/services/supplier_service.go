package services

import (
	"context"
	"fmt"

	"optic-backend/internal/models"
	"optic-backend/internal/repositories"
)

type SupplierService struct {
	Repo *repositories.SupplierRepository
}

func NewSupplierService(repo *repositories.SupplierRepository) *SupplierService {
	return &SupplierService{Repo: repo}
}

func (s *SupplierService) CreateSupplier(ctx context.Context, req *models.CreateSupplierRequest) (*models.Supplier, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("%w: supplier name is required", ErrValidation)
	}
	supplier := models.Supplier{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Address: req.Address,
	}
	if err := s.Repo.Create(ctx, &supplier); err != nil {
		return nil, err
	}
	return &supplier, nil
}

func (s *SupplierService) GetSupplier(ctx context.Context, id string) (*models.Supplier, error) {
	return s.Repo.Get(ctx, id)
}

func (s *SupplierService) ListSuppliers(ctx context.Context) ([]models.Supplier, error) {
	return s.Repo.List(ctx)
}

func (s *SupplierService) SearchSuppliers(ctx context.Context, query string) ([]models.Supplier, error) {
	return s.Repo.Search(ctx, query)
}

func (s *SupplierService) UpdateSupplier(ctx context.Context, id string, req *models.UpdateSupplierRequest) (*models.Supplier, error) {
	supplier, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Name != nil {
		supplier.Name = *req.Name
	}
	if req.Email != nil {
		supplier.Email = *req.Email
	}
	if req.Phone != nil {
		supplier.Phone = *req.Phone
	}
	if req.Address != nil {
		supplier.Address = *req.Address
	}
	if err := s.Repo.Replace(ctx, supplier); err != nil {
		return nil, err
	}
	return supplier, nil
}

func (s *SupplierService) DeleteSupplier(ctx context.Context, id string) error {
	return s.Repo.Delete(ctx, id)
}
