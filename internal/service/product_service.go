package service

import (
	"context"

	"github.com/yolimar-textil/storefront-api/internal/catalog"
	"github.com/yolimar-textil/storefront-api/internal/models"
)

// ProductService handles business logic for products
type ProductService struct {
	repo catalog.Repository
}

// NewProductService creates a new product service
func NewProductService(repo catalog.Repository) *ProductService {
	return &ProductService{
		repo: repo,
	}
}

// ListProducts returns all available products
func (s *ProductService) ListProducts(ctx context.Context) ([]models.Product, error) {
	return s.repo.GetAll(ctx)
}

// GetProduct returns a product by ID
func (s *ProductService) GetProduct(ctx context.Context, id int) (*models.Product, error) {
	return s.repo.GetByID(ctx, id)
}

// GetVariants returns every color/size combination of a product
func (s *ProductService) GetVariants(ctx context.Context, id int) ([]models.Variant, error) {
	return s.repo.Variants(ctx, id)
}
