package memory

import (
	"context"
	"time"

	"github.com/Nghalu/KingdomFarming/internal/domain"
)

// Seed loads the launch catalog: three verified farms around Maseru and
// Berea and their initial listings. Prices are in whole loti.
func Seed(ctx context.Context, farms *FarmRepository, products *ProductRepository) error {
	for _, f := range seedFarms() {
		farm := f
		if err := farms.Create(ctx, &farm); err != nil {
			return err
		}
	}
	for _, p := range seedProducts() {
		product := p
		if err := products.Create(ctx, &product); err != nil {
			return err
		}
	}
	return nil
}

func seedFarms() []domain.Farm {
	return []domain.Farm{
		{
			ID:       "farm-1",
			FarmerID: "farmer-1",
			Name:     "Mokotso and Thetsane Agric Solutions",
			Location: "Sefika Complex",
			District: "Maseru",
			Contact: domain.FarmContact{
				Phone:    "+26658653136",
				WhatsApp: "+26658653136",
			},
			Description: "Specializes on potato farming and seeds",
			Practices:   []string{"Mondial", "Panamera"},
			Verified:    true,
			CreatedAt:   time.Date(2023, 1, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:       "farm-2",
			FarmerID: "farmer-2",
			Name:     "Letsoara Farm",
			Location: "Roma",
			District: "Maseru",
			Contact: domain.FarmContact{
				Phone:    "+26658653137",
				WhatsApp: "+26658653137",
			},
			Description: "Letsoara Farm specializing in vegetables, seedlings, poultry and agric equipment.",
			Practices:   []string{"red cabbage", "onion", "eggs"},
			Verified:    true,
			CreatedAt:   time.Date(2023, 2, 20, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:       "farm-3",
			FarmerID: "farmer-3",
			Name:     "Green Field Butchery",
			Location: "Selakhapane, Ha Foso",
			District: "Berea",
			Contact: domain.FarmContact{
				WhatsApp: "+26658653138",
			},
			Description: "Specializing in free-range meats",
			Practices:   []string{"beef", "mutton", "chicken", "trout", "sausages"},
			Verified:    true,
			CreatedAt:   time.Date(2025, 8, 10, 0, 0, 0, 0, time.UTC),
		},
	}
}

func seedProducts() []domain.Product {
	return []domain.Product{
		{
			ID:          "prod-1",
			FarmID:      "farm-1",
			FarmerID:    "farmer-1",
			Name:        "Fresh Organic Spinach",
			Description: "Crisp, fresh organic spinach grown without chemicals. Perfect for salads and cooking.",
			Category:    domain.CategoryVegetables,
			Price:       25,
			Unit:        "1 kg",
			Images:      []string{"https://images.pexels.com/photos/2325843/pexels-photo-2325843.jpeg"},
			InStock:     true,
			Quantity:    50,
			Organic:     true,
			Featured:    true,
			CreatedAt:   time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
			UpdatedAt:   time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:           "prod-2",
			FarmID:       "farm-3",
			FarmerID:     "farmer-3",
			Name:         "Free-Range Chicken Eggs",
			Description:  "Fresh eggs from free-range chickens. Rich in nutrients and flavor.",
			Category:     domain.CategoryPoultry,
			Price:        45,
			Unit:         "30 eggs",
			Images:       []string{"https://images.pexels.com/photos/162712/egg-white-food-protein-162712.jpeg"},
			InStock:      true,
			Quantity:     100,
			Featured:     true,
			Rating:       4.9,
			TotalReviews: 67,
			CreatedAt:    time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC),
			UpdatedAt:    time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:          "prod-3",
			FarmID:      "farm-2",
			FarmerID:    "farmer-2",
			Name:        "Fresh Tomatoes",
			Description: "Vine-ripened tomatoes grown in mountain soil. Sweet and juicy.",
			Category:    domain.CategoryVegetables,
			Price:       30,
			Unit:        "2 kg",
			Images:      []string{"https://images.pexels.com/photos/533280/pexels-photo-533280.jpeg"},
			InStock:     true,
			Quantity:    75,
			CreatedAt:   time.Date(2024, 1, 12, 0, 0, 0, 0, time.UTC),
			UpdatedAt:   time.Date(2024, 1, 18, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:           "prod-4",
			FarmID:       "farm-3",
			FarmerID:     "farmer-3",
			Name:         "Whole Free-Range Chicken",
			Description:  "Fresh, healthy free-range chicken raised naturally without antibiotics.",
			Category:     domain.CategoryMeats,
			Price:        120,
			Unit:         "1 whole chicken (1.5kg)",
			InStock:      true,
			Quantity:     25,
			Featured:     true,
			Rating:       4.8,
			TotalReviews: 45,
			CreatedAt:    time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC),
			UpdatedAt:    time.Date(2024, 1, 22, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:           "prod-5",
			FarmID:       "farm-1",
			FarmerID:     "farmer-1",
			Name:         "Organic Fertilizer",
			Description:  "Compost-based organic fertilizer perfect for home gardens and farming.",
			Category:     domain.CategoryFertilizers,
			Price:        80,
			Unit:         "10 kg bag",
			InStock:      true,
			Quantity:     40,
			Organic:      true,
			Rating:       4.6,
			TotalReviews: 28,
			CreatedAt:    time.Date(2024, 1, 14, 0, 0, 0, 0, time.UTC),
			UpdatedAt:    time.Date(2024, 1, 19, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:           "prod-6",
			FarmID:       "farm-2",
			FarmerID:     "farmer-2",
			Name:         "Fresh Carrots",
			Description:  "Sweet, crunchy carrots grown in highland soil. Rich in vitamins.",
			Category:     domain.CategoryVegetables,
			Price:        20,
			Unit:         "1 kg",
			Images:       []string{"https://images.pexels.com/photos/143133/pexels-photo-143133.jpeg"},
			InStock:      true,
			Quantity:     60,
			Rating:       4.4,
			TotalReviews: 19,
			CreatedAt:    time.Date(2024, 1, 16, 0, 0, 0, 0, time.UTC),
			UpdatedAt:    time.Date(2024, 1, 21, 0, 0, 0, 0, time.UTC),
		},
	}
}
