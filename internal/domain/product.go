package domain

// Product represents one packaged-food item, either read from the local
// catalog or mapped from the Open Food Facts provider.
type Product struct {
	GTIN           string    `json:"gtin"`
	Brand          string    `json:"brand,omitempty"`
	Name           string    `json:"name,omitempty"`
	Variant        string    `json:"variant,omitempty"`
	Category       string    `json:"category,omitempty"`
	Per            float64   `json:"per"` // serving basis in grams for all nutrient fields
	Nutrition      Nutrition `json:"nutrition"`
	IngredientsRaw string    `json:"ingredients_raw,omitempty"`
}

// Nutrition holds nutrient amounts per Product.Per grams.
// A nil field means the value is unknown, which is distinct from zero.
type Nutrition struct {
	Energy   *float64 `json:"energy,omitempty"`    // kcal
	Protein  *float64 `json:"protein,omitempty"`   // g
	Fat      *float64 `json:"fat,omitempty"`       // g
	SatFat   *float64 `json:"sat_fat,omitempty"`   // g
	TransFat *float64 `json:"trans_fat,omitempty"` // g
	Carbs    *float64 `json:"carbs,omitempty"`     // g
	Sugar    *float64 `json:"sugar,omitempty"`     // g
	Sodium   *float64 `json:"sodium,omitempty"`    // mg
	Fiber    *float64 `json:"fiber,omitempty"`     // g
}
