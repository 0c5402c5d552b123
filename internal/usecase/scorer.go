package usecase

import (
	"math"
	"strings"

	"github.com/labelwise/backend/internal/domain"
)

// Score thresholds and rule penalties. These are part of the scoring
// contract, not deployment configuration.
const (
	baseScore = 100

	ultraProcessedPenalty = 18

	sugarFreeLimit      = 5.0   // g per serving basis before penalties start
	sugarPenaltyCap     = 25    // cap on the graduated sugar penalty
	highSugarLimit      = 22.5  // g, triggers the flat high-sugar penalty
	highSugarPenalty    = 15
	sodiumFreeLimit     = 120.0 // mg per serving basis before penalties start
	sodiumPenaltyCap    = 20    // cap on the graduated sodium penalty
	highSodiumLimit     = 600.0 // mg, triggers the flat high-sodium penalty
	highSodiumPenalty   = 15
	transFatPenalty     = 25
	satFatLimit         = 5.0 // g
	satFatPenalty       = 5
	redDefaultPenalty   = 10 // red additive with no severity
	amberDefaultPenalty = 5  // amber additive with no severity
	amberPenaltyCap     = 10
	palmOilPenalty      = 7
	positiveBonus       = 6

	cautionBand     = 80 // below this an Approved product becomes Caution
	notApprovedBand = 60 // below this the status is always Not Approved
)

// ultraProcessedCategories trigger an automatic penalty on a
// case-insensitive substring match against the product category.
var ultraProcessedCategories = []string{
	"instant noodles",
	"potato chips",
	"sugar confectionery",
	"processed meat",
	"premix",
	"soft drink",
	"cola",
	"energy drink",
	"breakfast cereal (sweetened)",
}

// positiveIngredients earn a one-time bonus when any ingredient token
// contains one of them.
var positiveIngredients = []string{
	"whole wheat", "millets", "ragi", "jowar", "bajra", "oats", "nuts",
	"almonds", "peanuts", "chana", "moong", "urad", "rajma", "chickpea",
}

// ComputeHealthScore scores a product against the additive knowledge base.
// The rules run in a fixed order and each one adjusts the running score,
// reasons and status; later rules may override earlier status assignments,
// so the order here is load-bearing. The result is deterministic for
// identical inputs.
func ComputeHealthScore(product *domain.Product, additives []domain.AdditiveRecord) *domain.ScoreResult {
	result := &domain.ScoreResult{
		Score:      baseScore,
		Status:     domain.StatusApproved,
		Reasons:    []string{},
		Highlights: []domain.Highlight{},
	}
	if product == nil {
		return result
	}

	applyCategoryRule(product, result)
	applySugarRule(product, result)
	applySodiumRule(product, result)
	applyTransFatRule(product, result)
	applySatFatRule(product, result)

	tokens := ExtractTokens(product.IngredientsRaw)
	applyAdditiveRules(tokens, additives, result)
	applyPalmOilRule(tokens, result)
	applyPositiveRule(tokens, result)

	// Clamp, then finalize status. The score-based bands only tighten the
	// status; a Not Approved set by the trans-fat rule survives even when
	// the final score lands in 60-79.
	if result.Score > 100 {
		result.Score = 100
	}
	if result.Score < 0 {
		result.Score = 0
	}
	if result.Status == domain.StatusApproved && result.Score < cautionBand {
		result.Status = domain.StatusCaution
	}
	if result.Score < notApprovedBand {
		result.Status = domain.StatusNotApproved
	}

	return result
}

func applyCategoryRule(product *domain.Product, result *domain.ScoreResult) {
	category := strings.ToLower(product.Category)
	if category == "" {
		return
	}
	for _, ultra := range ultraProcessedCategories {
		if strings.Contains(category, ultra) {
			result.Score -= ultraProcessedPenalty
			result.Reasons = append(result.Reasons, "Ultra-processed category")
			return
		}
	}
}

func applySugarRule(product *domain.Product, result *domain.ScoreResult) {
	sugar := product.Nutrition.Sugar
	if sugar == nil || *sugar <= sugarFreeLimit {
		return
	}
	result.Score -= minInt(sugarPenaltyCap, int(math.Floor(*sugar-sugarFreeLimit)))
	if *sugar > highSugarLimit {
		result.Score -= highSugarPenalty
		result.Reasons = append(result.Reasons, "High sugar")
	}
}

func applySodiumRule(product *domain.Product, result *domain.ScoreResult) {
	sodium := product.Nutrition.Sodium
	if sodium == nil || *sodium <= sodiumFreeLimit {
		return
	}
	result.Score -= minInt(sodiumPenaltyCap, int(math.Floor((*sodium-sodiumFreeLimit)/100)))
	if *sodium > highSodiumLimit {
		result.Score -= highSodiumPenalty
		result.Reasons = append(result.Reasons, "High sodium")
	}
}

func applyTransFatRule(product *domain.Product, result *domain.ScoreResult) {
	transFat := product.Nutrition.TransFat
	if transFat == nil || *transFat <= 0 {
		return
	}
	result.Score -= transFatPenalty
	result.Status = domain.StatusNotApproved
	result.Reasons = append(result.Reasons, "Contains trans fat")
}

func applySatFatRule(product *domain.Product, result *domain.ScoreResult) {
	satFat := product.Nutrition.SatFat
	if satFat != nil && *satFat > satFatLimit {
		result.Score -= satFatPenalty
	}
}

// applyAdditiveRules walks the knowledge base in order; each matched record
// is processed independently and cumulatively, so KB order determines the
// order of reasons and highlights.
func applyAdditiveRules(tokens []string, additives []domain.AdditiveRecord, result *domain.ScoreResult) {
	tokenSet := make(map[string]bool, len(tokens))
	for _, token := range tokens {
		tokenSet[token] = true
	}

	for _, record := range additives {
		if !matchesAdditive(record, tokenSet) {
			continue
		}

		switch record.Level {
		case domain.LevelRed:
			penalty := redDefaultPenalty
			if record.Severity > 0 {
				penalty = record.Severity
			}
			result.Score -= penalty

			reason := record.Short
			if reason == "" {
				reason = record.Name
			}
			result.Reasons = append(result.Reasons, reason)

			note := record.Short
			if note == "" {
				note = "Avoid frequent use"
			}
			result.Highlights = append(result.Highlights, domain.Highlight{
				Name: record.Name, Level: domain.LevelRed, Note: note,
			})

			if result.Status == domain.StatusApproved && result.Score >= notApprovedBand {
				result.Status = domain.StatusCaution
			}
			if result.Score < notApprovedBand {
				result.Status = domain.StatusNotApproved
			}

		case domain.LevelAmber:
			penalty := amberDefaultPenalty
			if record.Severity > 0 {
				penalty = record.Severity
			}
			result.Score -= minInt(amberPenaltyCap, penalty)

			note := record.Short
			if note == "" {
				note = "Limit intake"
			}
			result.Highlights = append(result.Highlights, domain.Highlight{
				Name: record.Name, Level: domain.LevelAmber, Note: note,
			})

		default:
			result.Highlights = append(result.Highlights, domain.Highlight{
				Name: record.Name, Level: domain.LevelGreen, Note: "Generally safe",
			})
		}
	}
}

// matchesAdditive reports whether any product token equals the record's
// normalized name or one of its normalized aliases.
func matchesAdditive(record domain.AdditiveRecord, tokenSet map[string]bool) bool {
	if tokenSet[NormalizeToken(record.Name)] {
		return true
	}
	for _, alias := range record.Aliases {
		if tokenSet[NormalizeToken(alias)] {
			return true
		}
	}
	return false
}

func applyPalmOilRule(tokens []string, result *domain.ScoreResult) {
	for _, token := range tokens {
		if strings.Contains(token, "palm") || strings.Contains(token, "palmolein") {
			result.Score -= palmOilPenalty
			result.Reasons = append(result.Reasons, "Refined palm oil/palmolein")
			return
		}
	}
}

// applyPositiveRule grants the wholesome-ingredient bonus at most once,
// however many positives match.
func applyPositiveRule(tokens []string, result *domain.ScoreResult) {
	for _, token := range tokens {
		for _, positive := range positiveIngredients {
			if strings.Contains(token, positive) {
				result.Score += positiveBonus
				return
			}
		}
	}
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
