package off

import (
	"math"
	"strconv"
	"strings"

	"github.com/labelwise/backend/internal/domain"
)

// Sodium derivation constants. Open Food Facts reports sodium and salt in
// grams per 100g; we store sodium in milligrams.
const (
	sodiumGramsToMilligrams = 1000
	saltToSodiumMilligrams  = 400 // mg sodium per gram of salt
)

// productEnvelope wraps the provider's product response; status 1 means the
// barcode was found.
type productEnvelope struct {
	Status  int              `json:"status"`
	Product *providerProduct `json:"product"`
}

// providerProduct is the subset of an Open Food Facts record we consume.
// Every field may be absent.
type providerProduct struct {
	Brands          string         `json:"brands"`
	ProductName     string         `json:"product_name"`
	GenericName     string         `json:"generic_name"`
	Quantity        string         `json:"quantity"`
	Categories      string         `json:"categories"`
	IngredientsText string         `json:"ingredients_text"`
	Nutriments      map[string]any `json:"nutriments"`
}

// MapToProduct converts an Open Food Facts record to the domain Product
// shape, normalized to a 100g serving basis.
func MapToProduct(gtin string, record *providerProduct) *domain.Product {
	product := &domain.Product{
		GTIN:           gtin,
		Brand:          record.Brands,
		Name:           productName(record),
		Variant:        record.Quantity,
		Category:       firstCategory(record.Categories),
		Per:            100,
		IngredientsRaw: record.IngredientsText,
	}

	n := &product.Nutrition
	n.Energy = nutriment(record.Nutriments, "energy-kcal_100g")
	n.Protein = nutriment(record.Nutriments, "proteins_100g")
	n.Fat = nutriment(record.Nutriments, "fat_100g")
	n.SatFat = nutriment(record.Nutriments, "saturated-fat_100g")
	n.TransFat = nutriment(record.Nutriments, "trans-fat_100g")
	n.Carbs = nutriment(record.Nutriments, "carbohydrates_100g")
	n.Sugar = nutriment(record.Nutriments, "sugars_100g")
	n.Fiber = nutriment(record.Nutriments, "fiber_100g")
	n.Sodium = sodiumMilligrams(record.Nutriments)

	return product
}

// productName falls back from product_name to generic_name
func productName(record *providerProduct) string {
	if record.ProductName != "" {
		return record.ProductName
	}
	return record.GenericName
}

// firstCategory takes the first comma-separated segment of the provider's
// category string
func firstCategory(categories string) string {
	if categories == "" {
		return ""
	}
	first, _, _ := strings.Cut(categories, ",")
	return strings.TrimSpace(first)
}

// sodiumMilligrams prefers the direct sodium field; when only salt content
// is reported it is converted at 400 mg sodium per gram of salt. Both paths
// round to the nearest milligram. Absent both, sodium stays unknown.
func sodiumMilligrams(nutriments map[string]any) *float64 {
	if v := nutriment(nutriments, "sodium_100g"); v != nil {
		mg := math.Round(*v * sodiumGramsToMilligrams)
		return &mg
	}
	if v := nutriment(nutriments, "salt_100g"); v != nil {
		mg := math.Round(*v * saltToSodiumMilligrams)
		return &mg
	}
	return nil
}

// nutriment coerces a nutriments map value to a float pointer. Open Food
// Facts sometimes reports numbers as strings; both forms are accepted, and
// anything else means the nutrient is unknown.
func nutriment(nutriments map[string]any, key string) *float64 {
	value, ok := nutriments[key]
	if !ok {
		return nil
	}
	switch v := value.(type) {
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil
		}
		return &v
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return nil
		}
		return &f
	}
	return nil
}
