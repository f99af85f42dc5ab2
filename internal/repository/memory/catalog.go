package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	apperrors "github.com/Nghalu/KingdomFarming/pkg/errors"

	"github.com/Nghalu/KingdomFarming/internal/domain"
)

// ProductRepository implements repository.ProductRepository in process
// memory, seeded from the marketplace fixtures.
type ProductRepository struct {
	mu       sync.RWMutex
	products map[string]*domain.Product
	farms    *FarmRepository
}

// NewProductRepository creates a new in-memory product repository. The farm
// repository is consulted for district and farm-name filtering.
func NewProductRepository(farms *FarmRepository) *ProductRepository {
	return &ProductRepository{
		products: make(map[string]*domain.Product),
		farms:    farms,
	}
}

// GetByID retrieves a product by its identifier.
func (r *ProductRepository) GetByID(_ context.Context, id string) (*domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.products[id]
	if !ok {
		return nil, apperrors.NotFound("product", id)
	}
	cp := *p
	return &cp, nil
}

// Create inserts a new product into the catalog.
func (r *ProductRepository) Create(_ context.Context, product *domain.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.products[product.ID]; exists {
		return apperrors.AlreadyExists("product", "id", product.ID)
	}
	cp := *product
	r.products[product.ID] = &cp
	return nil
}

// Update modifies an existing product.
func (r *ProductRepository) Update(_ context.Context, product *domain.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[product.ID]; !ok {
		return apperrors.NotFound("product", product.ID)
	}
	cp := *product
	r.products[product.ID] = &cp
	return nil
}

// List returns products matching the filter, sorted by creation time
// (newest first), along with the total match count.
func (r *ProductRepository) List(ctx context.Context, filter domain.ProductFilter, offset, limit int) ([]domain.Product, int, error) {
	r.mu.RLock()
	all := make([]domain.Product, 0, len(r.products))
	for _, p := range r.products {
		all = append(all, *p)
	}
	r.mu.RUnlock()

	matched := all[:0]
	for _, p := range all {
		if r.matches(ctx, p, filter) {
			matched = append(matched, p)
		}
	}

	sort.Slice(matched, func(i, j int) bool {
		if matched[i].CreatedAt.Equal(matched[j].CreatedAt) {
			return matched[i].ID < matched[j].ID
		}
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	total := len(matched)
	if offset >= total {
		return []domain.Product{}, total, nil
	}
	end := offset + limit
	if limit <= 0 || end > total {
		end = total
	}
	page := make([]domain.Product, end-offset)
	copy(page, matched[offset:end])
	return page, total, nil
}

func (r *ProductRepository) matches(ctx context.Context, p domain.Product, f domain.ProductFilter) bool {
	if f.Category != "" && p.Category != f.Category {
		return false
	}
	if f.OrganicOnly && !p.Organic {
		return false
	}
	if f.InStockOnly && !p.InStock {
		return false
	}
	if f.FarmerID != "" && p.FarmerID != f.FarmerID {
		return false
	}

	var farm *domain.Farm
	if f.District != "" || f.Search != "" {
		farm, _ = r.farms.GetByID(ctx, p.FarmID)
	}

	if f.District != "" {
		if farm == nil || !strings.EqualFold(farm.District, f.District) {
			return false
		}
	}

	if f.Search != "" {
		term := strings.ToLower(f.Search)
		haystack := strings.ToLower(p.Name + " " + p.Description)
		if farm != nil {
			haystack += " " + strings.ToLower(farm.Name)
		}
		if !strings.Contains(haystack, term) {
			return false
		}
	}

	return true
}

// Count returns the number of products in the catalog.
func (r *ProductRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.products)
}

// FarmRepository implements repository.FarmRepository in process memory.
type FarmRepository struct {
	mu    sync.RWMutex
	farms map[string]*domain.Farm
}

// NewFarmRepository creates a new in-memory farm repository.
func NewFarmRepository() *FarmRepository {
	return &FarmRepository{
		farms: make(map[string]*domain.Farm),
	}
}

// GetByID retrieves a farm by its identifier.
func (r *FarmRepository) GetByID(_ context.Context, id string) (*domain.Farm, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	f, ok := r.farms[id]
	if !ok {
		return nil, apperrors.NotFound("farm", id)
	}
	cp := *f
	return &cp, nil
}

// GetByFarmerID retrieves the farm owned by the given farmer.
func (r *FarmRepository) GetByFarmerID(_ context.Context, farmerID string) (*domain.Farm, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, f := range r.farms {
		if f.FarmerID == farmerID {
			cp := *f
			return &cp, nil
		}
	}
	return nil, apperrors.NotFound("farm for farmer", farmerID)
}

// List returns all farms, optionally restricted to a district, sorted by name.
func (r *FarmRepository) List(_ context.Context, district string) ([]domain.Farm, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Farm, 0, len(r.farms))
	for _, f := range r.farms {
		if district != "" && !strings.EqualFold(f.District, district) {
			continue
		}
		out = append(out, *f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// Create inserts a new farm profile.
func (r *FarmRepository) Create(_ context.Context, farm *domain.Farm) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.farms[farm.ID]; exists {
		return apperrors.AlreadyExists("farm", "id", farm.ID)
	}
	cp := *farm
	r.farms[farm.ID] = &cp
	return nil
}

// Count returns the number of farms in the repository.
func (r *FarmRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.farms)
}
