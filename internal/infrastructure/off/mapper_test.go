package off

import (
	"testing"
)

func TestMapToProduct(t *testing.T) {
	t.Run("maps a complete record", func(t *testing.T) {
		record := &providerProduct{
			Brands:          "Acme",
			ProductName:     "Salted Crackers",
			Quantity:        "200 g",
			Categories:      "Crackers, Snacks, Baked goods",
			IngredientsText: "Wheat flour, Palm oil, Salt",
			Nutriments: map[string]any{
				"energy-kcal_100g":   float64(480),
				"proteins_100g":      float64(7.2),
				"fat_100g":           float64(22),
				"saturated-fat_100g": float64(10.5),
				"carbohydrates_100g": float64(62),
				"sugars_100g":        float64(3.1),
				"fiber_100g":         float64(2.4),
				"sodium_100g":        float64(0.45),
			},
		}

		product := MapToProduct("8900000000001", record)

		if product.GTIN != "8900000000001" {
			t.Errorf("GTIN = %q, want 8900000000001", product.GTIN)
		}
		if product.Name != "Salted Crackers" {
			t.Errorf("Name = %q, want Salted Crackers", product.Name)
		}
		if product.Category != "Crackers" {
			t.Errorf("Category = %q, want first comma segment", product.Category)
		}
		if product.Per != 100 {
			t.Errorf("Per = %v, want 100", product.Per)
		}
		if product.IngredientsRaw != "Wheat flour, Palm oil, Salt" {
			t.Errorf("IngredientsRaw = %q", product.IngredientsRaw)
		}
		if product.Nutrition.Sodium == nil || *product.Nutrition.Sodium != 450 {
			t.Errorf("Sodium = %v, want 450 (0.45g scaled to mg)", product.Nutrition.Sodium)
		}
		if product.Nutrition.SatFat == nil || *product.Nutrition.SatFat != 10.5 {
			t.Errorf("SatFat = %v, want 10.5", product.Nutrition.SatFat)
		}
	})

	t.Run("derives sodium from salt when sodium is absent", func(t *testing.T) {
		record := &providerProduct{
			Nutriments: map[string]any{
				"salt_100g": float64(1.2),
			},
		}

		product := MapToProduct("x", record)
		if product.Nutrition.Sodium == nil || *product.Nutrition.Sodium != 480 {
			t.Errorf("Sodium = %v, want 480 (1.2g salt x 400)", product.Nutrition.Sodium)
		}
	})

	t.Run("prefers direct sodium over salt", func(t *testing.T) {
		record := &providerProduct{
			Nutriments: map[string]any{
				"sodium_100g": float64(0.2),
				"salt_100g":   float64(5),
			},
		}

		product := MapToProduct("x", record)
		if product.Nutrition.Sodium == nil || *product.Nutrition.Sodium != 200 {
			t.Errorf("Sodium = %v, want 200 from the direct field", product.Nutrition.Sodium)
		}
	})

	t.Run("sodium stays unknown when both fields are absent", func(t *testing.T) {
		product := MapToProduct("x", &providerProduct{Nutriments: map[string]any{}})
		if product.Nutrition.Sodium != nil {
			t.Errorf("Sodium = %v, want nil", product.Nutrition.Sodium)
		}
	})

	t.Run("rounds derived sodium to the nearest milligram", func(t *testing.T) {
		record := &providerProduct{
			Nutriments: map[string]any{
				"sodium_100g": float64(0.1234),
			},
		}

		product := MapToProduct("x", record)
		if product.Nutrition.Sodium == nil || *product.Nutrition.Sodium != 123 {
			t.Errorf("Sodium = %v, want 123", product.Nutrition.Sodium)
		}
	})

	t.Run("accepts string-encoded nutriment values", func(t *testing.T) {
		record := &providerProduct{
			Nutriments: map[string]any{
				"sugars_100g": "12.5",
			},
		}

		product := MapToProduct("x", record)
		if product.Nutrition.Sugar == nil || *product.Nutrition.Sugar != 12.5 {
			t.Errorf("Sugar = %v, want 12.5", product.Nutrition.Sugar)
		}
	})

	t.Run("ignores unparseable nutriment values", func(t *testing.T) {
		record := &providerProduct{
			Nutriments: map[string]any{
				"sugars_100g": "n/a",
				"fat_100g":    true,
			},
		}

		product := MapToProduct("x", record)
		if product.Nutrition.Sugar != nil {
			t.Errorf("Sugar = %v, want nil", product.Nutrition.Sugar)
		}
		if product.Nutrition.Fat != nil {
			t.Errorf("Fat = %v, want nil", product.Nutrition.Fat)
		}
	})

	t.Run("falls back to generic name", func(t *testing.T) {
		product := MapToProduct("x", &providerProduct{GenericName: "Biscuit assortment"})
		if product.Name != "Biscuit assortment" {
			t.Errorf("Name = %q, want generic_name fallback", product.Name)
		}
	})

	t.Run("tolerates a fully empty record", func(t *testing.T) {
		product := MapToProduct("123", &providerProduct{})
		if product.GTIN != "123" {
			t.Errorf("GTIN = %q, want 123", product.GTIN)
		}
		if product.Category != "" {
			t.Errorf("Category = %q, want empty", product.Category)
		}
		if product.Per != 100 {
			t.Errorf("Per = %v, want 100", product.Per)
		}
	})
}

func TestFirstCategory(t *testing.T) {
	testCases := []struct {
		input string
		want  string
	}{
		{"Snacks, Sweet snacks, Biscuits", "Snacks"},
		{"  Instant Noodles , Pasta", "Instant Noodles"},
		{"Single", "Single"},
		{"", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			if got := firstCategory(tc.input); got != tc.want {
				t.Errorf("firstCategory(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}
