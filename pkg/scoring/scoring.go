package scoring

import "imbewu-be/internal/entity"

// The report assembled for a verified product has three independent panels:
// a compliance checklist, an ingredient concern scan, and an overall safety
// assessment. Each panel is produced by its own evaluator so they can be
// swapped or tested in isolation.

type ComplianceCheck struct {
	Id    string `json:"id"`
	Label string `json:"label"`
	Valid bool   `json:"valid"`
}

type ComplianceResult struct {
	Checks      []ComplianceCheck `json:"checks"`
	Score       int               `json:"score"`
	Explanation string            `json:"explanation"`
}

type IngredientsResult struct {
	IngredientsText string   `json:"ingredients_text"`
	Warnings        []string `json:"warnings"`
	Affirmation     string   `json:"affirmation,omitempty"`
	Allergens       string   `json:"allergens"`
}

type SafetyBand string

const (
	BandSafe    SafetyBand = "safe"
	BandWarning SafetyBand = "warning"
	BandDanger  SafetyBand = "danger"
)

type SafetyResult struct {
	Score           int        `json:"score"`
	Band            SafetyBand `json:"band"`
	Statement       string     `json:"statement"`
	Recommendations []string   `json:"recommendations"`
}

type ComplianceEvaluator interface {
	Evaluate(record *entity.ProductRecord) ComplianceResult
}

type IngredientScanner interface {
	Scan(record *entity.ProductRecord) IngredientsResult
}

type SafetyEvaluator interface {
	Assess(record *entity.ProductRecord) SafetyResult
}
