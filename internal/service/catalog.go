package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	apperrors "github.com/Nghalu/KingdomFarming/pkg/errors"
	"github.com/Nghalu/KingdomFarming/pkg/pagination"

	"github.com/Nghalu/KingdomFarming/internal/domain"
	"github.com/Nghalu/KingdomFarming/internal/repository"
)

// CreateProductInput holds the parameters for listing a new product.
type CreateProductInput struct {
	Name        string   `json:"name" validate:"required,min=2,max=120"`
	Description string   `json:"description" validate:"max=2000"`
	Category    string   `json:"category" validate:"required"`
	Price       int64    `json:"price" validate:"required,gt=0"`
	Unit        string   `json:"unit" validate:"required,max=60"`
	Quantity    int      `json:"quantity" validate:"gte=0"`
	Organic     bool     `json:"organic"`
	Images      []string `json:"images"`
}

// UpdateProductInput holds the optional fields for editing a listing.
type UpdateProductInput struct {
	Name        *string `json:"name" validate:"omitempty,min=2,max=120"`
	Description *string `json:"description" validate:"omitempty,max=2000"`
	Price       *int64  `json:"price" validate:"omitempty,gt=0"`
	Unit        *string `json:"unit" validate:"omitempty,max=60"`
	Quantity    *int    `json:"quantity" validate:"omitempty,gte=0"`
	InStock     *bool   `json:"in_stock"`
	Organic     *bool   `json:"organic"`
}

// CatalogService implements product and farm browsing plus farmer-side
// listing management.
type CatalogService struct {
	products repository.ProductRepository
	farms    repository.FarmRepository
	logger   *slog.Logger
}

// NewCatalogService creates a new catalog service.
func NewCatalogService(products repository.ProductRepository, farms repository.FarmRepository, logger *slog.Logger) *CatalogService {
	return &CatalogService{
		products: products,
		farms:    farms,
		logger:   logger,
	}
}

// ListProducts returns a page of products matching the filter.
func (s *CatalogService) ListProducts(ctx context.Context, filter domain.ProductFilter, params pagination.Params) (*pagination.Result[domain.Product], error) {
	if filter.Category != "" && !domain.IsValidCategory(filter.Category) {
		return nil, apperrors.InvalidInput(fmt.Sprintf("unknown category %q", filter.Category))
	}

	products, total, err := s.products.List(ctx, filter, params.Offset, params.PerPage)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}

	result := pagination.NewResult(products, total, params)
	return &result, nil
}

// GetProduct retrieves a single product by ID.
func (s *CatalogService) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	if id == "" {
		return nil, apperrors.InvalidInput("product id is required")
	}
	product, err := s.products.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get product: %w", err)
	}
	return product, nil
}

// ListFarms returns all farms, optionally restricted to a district.
func (s *CatalogService) ListFarms(ctx context.Context, district string) ([]domain.Farm, error) {
	farms, err := s.farms.List(ctx, district)
	if err != nil {
		return nil, fmt.Errorf("list farms: %w", err)
	}
	return farms, nil
}

// GetFarm retrieves a single farm profile by ID.
func (s *CatalogService) GetFarm(ctx context.Context, id string) (*domain.Farm, error) {
	if id == "" {
		return nil, apperrors.InvalidInput("farm id is required")
	}
	farm, err := s.farms.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get farm: %w", err)
	}
	return farm, nil
}

// CreateProduct lists a new product under the farmer's farm. The farmer
// must have a registered farm.
func (s *CatalogService) CreateProduct(ctx context.Context, farmerID string, input CreateProductInput) (*domain.Product, error) {
	if farmerID == "" {
		return nil, apperrors.InvalidInput("farmer id is required")
	}

	category := domain.ProductCategory(input.Category)
	if !domain.IsValidCategory(category) {
		return nil, apperrors.InvalidInput(fmt.Sprintf("unknown category %q", input.Category))
	}

	farm, err := s.farms.GetByFarmerID(ctx, farmerID)
	if err != nil {
		return nil, fmt.Errorf("look up farm: %w", err)
	}

	now := time.Now().UTC()
	product := &domain.Product{
		ID:          uuid.New().String(),
		FarmID:      farm.ID,
		FarmerID:    farmerID,
		Name:        input.Name,
		Description: input.Description,
		Category:    category,
		Price:       input.Price,
		Unit:        input.Unit,
		Images:      input.Images,
		InStock:     input.Quantity > 0,
		Quantity:    input.Quantity,
		Organic:     input.Organic,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.products.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}

	s.logger.InfoContext(ctx, "product listed",
		slog.String("product_id", product.ID),
		slog.String("farmer_id", farmerID),
		slog.String("category", string(category)),
		slog.Int64("price", product.Price),
	)

	return product, nil
}

// UpdateProduct edits a farmer's own listing. Only the owning farmer may
// change it.
func (s *CatalogService) UpdateProduct(ctx context.Context, farmerID, productID string, input UpdateProductInput) (*domain.Product, error) {
	if farmerID == "" {
		return nil, apperrors.InvalidInput("farmer id is required")
	}
	if productID == "" {
		return nil, apperrors.InvalidInput("product id is required")
	}

	product, err := s.products.GetByID(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("get product: %w", err)
	}
	if product.FarmerID != farmerID {
		return nil, apperrors.Forbidden("product belongs to another farmer")
	}

	if input.Name != nil {
		product.Name = *input.Name
	}
	if input.Description != nil {
		product.Description = *input.Description
	}
	if input.Price != nil {
		product.Price = *input.Price
	}
	if input.Unit != nil {
		product.Unit = *input.Unit
	}
	if input.Quantity != nil {
		product.Quantity = *input.Quantity
		product.InStock = *input.Quantity > 0
	}
	if input.InStock != nil {
		product.InStock = *input.InStock
	}
	if input.Organic != nil {
		product.Organic = *input.Organic
	}
	product.UpdatedAt = time.Now().UTC()

	if err := s.products.Update(ctx, product); err != nil {
		return nil, fmt.Errorf("update product: %w", err)
	}

	s.logger.InfoContext(ctx, "product updated",
		slog.String("product_id", product.ID),
		slog.String("farmer_id", farmerID),
	)

	return product, nil
}
