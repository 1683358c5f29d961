package services

import (
	"context"
	"fmt"

	"optic-backend/internal/models"
	"optic-backend/internal/repositories"
)

type ProductService struct {
	Repo *repositories.ProductRepository
}

func NewProductService(repo *repositories.ProductRepository) *ProductService {
	return &ProductService{Repo: repo}
}

func (s *ProductService) CreateProduct(ctx context.Context, req *models.CreateProductRequest) (*models.Product, error) {
	if req.Brand == "" && req.Model == "" {
		return nil, fmt.Errorf("%w: product brand or model is required", ErrValidation)
	}
	if req.SellingPrice < 0 || req.PurchasePrice < 0 {
		return nil, fmt.Errorf("%w: prices must not be negative", ErrValidation)
	}
	product := models.Product{
		Brand:         req.Brand,
		Model:         req.Model,
		Reference:     req.Reference,
		Type:          req.Type,
		Category:      req.Category,
		Color:         req.Color,
		PurchasePrice: req.PurchasePrice,
		SellingPrice:  req.SellingPrice,
		Quantity:      req.Quantity,
		MinStock:      req.MinStock,
		ImageURL:      req.ImageURL,
		SupplierID:    req.SupplierID,
	}
	if err := s.Repo.Create(ctx, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (s *ProductService) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	return s.Repo.Get(ctx, id)
}

func (s *ProductService) ListProducts(ctx context.Context) ([]models.Product, error) {
	return s.Repo.List(ctx)
}

func (s *ProductService) SearchProducts(ctx context.Context, query string) ([]models.Product, error) {
	return s.Repo.Search(ctx, query)
}

func (s *ProductService) ListLowStock(ctx context.Context) ([]models.Product, error) {
	return s.Repo.LowStock(ctx)
}

func (s *ProductService) UpdateProduct(ctx context.Context, id string, req *models.UpdateProductRequest) (*models.Product, error) {
	product, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Brand != nil {
		product.Brand = *req.Brand
	}
	if req.Model != nil {
		product.Model = *req.Model
	}
	if req.Reference != nil {
		product.Reference = *req.Reference
	}
	if req.Type != nil {
		product.Type = *req.Type
	}
	if req.Category != nil {
		product.Category = *req.Category
	}
	if req.Color != nil {
		product.Color = *req.Color
	}
	if req.PurchasePrice != nil {
		product.PurchasePrice = *req.PurchasePrice
	}
	if req.SellingPrice != nil {
		product.SellingPrice = *req.SellingPrice
	}
	if req.Quantity != nil {
		product.Quantity = *req.Quantity
	}
	if req.MinStock != nil {
		product.MinStock = *req.MinStock
	}
	if req.ImageURL != nil {
		product.ImageURL = *req.ImageURL
	}
	if req.SupplierID != nil {
		product.SupplierID = *req.SupplierID
	}
	if err := s.Repo.Replace(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *ProductService) DeleteProduct(ctx context.Context, id string) error {
	return s.Repo.Delete(ctx, id)
}
