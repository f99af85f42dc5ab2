package domain

import "time"

// ProductCategory classifies marketplace produce.
type ProductCategory string

const (
	CategoryVegetables  ProductCategory = "vegetables"
	CategoryFruits      ProductCategory = "fruits"
	CategoryGrains      ProductCategory = "grains"
	CategoryPoultry     ProductCategory = "poultry"
	CategoryLivestock   ProductCategory = "livestock"
	CategoryMeats       ProductCategory = "meats"
	CategoryDairy       ProductCategory = "dairy"
	CategorySeedlings   ProductCategory = "seedlings"
	CategoryFertilizers ProductCategory = "fertilizers"
	CategoryHerbs       ProductCategory = "herbs"
)

// ValidCategories returns the set of valid product categories.
func ValidCategories() []ProductCategory {
	return []ProductCategory{
		CategoryVegetables,
		CategoryFruits,
		CategoryGrains,
		CategoryPoultry,
		CategoryLivestock,
		CategoryMeats,
		CategoryDairy,
		CategorySeedlings,
		CategoryFertilizers,
		CategoryHerbs,
	}
}

// IsValidCategory checks whether the given category is valid.
func IsValidCategory(c ProductCategory) bool {
	for _, v := range ValidCategories() {
		if v == c {
			return true
		}
	}
	return false
}

// Product is a listing on the marketplace, read-only from the cart's
// perspective. Price is in whole loti per unit.
type Product struct {
	ID           string          `json:"id"`
	FarmID       string          `json:"farm_id"`
	FarmerID     string          `json:"farmer_id"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	Category     ProductCategory `json:"category"`
	Price        int64           `json:"price"`
	Unit         string          `json:"unit"`
	Images       []string        `json:"images,omitempty"`
	InStock      bool            `json:"in_stock"`
	Quantity     int             `json:"quantity"`
	Organic      bool            `json:"organic"`
	Featured     bool            `json:"featured"`
	Rating       float64         `json:"rating"`
	TotalReviews int             `json:"total_reviews"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// ProductFilter defines filter criteria for listing products. Zero values
// mean "no constraint".
type ProductFilter struct {
	Search      string
	Category    ProductCategory
	District    string
	OrganicOnly bool
	InStockOnly bool
	FarmerID    string
}
