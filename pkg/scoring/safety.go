package scoring

import (
	"strings"

	"imbewu-be/internal/entity"
)

const (
	StatementSafe    = "This product appears to be generally safe for consumption."
	StatementWarning = "This product has some safety concerns that should be addressed."
	StatementDanger  = "This product has significant safety concerns."
)

var (
	recommendationsSafe = []string{
		"Maintain current formulation and safety standards",
		"Continue monitoring for any ingredient changes",
	}
	recommendationsWarning = []string{
		"Consider reformulating to reduce problematic ingredients",
		"Improve labeling clarity for allergens",
		"Conduct additional safety testing",
	}
	recommendationsDanger = []string{
		"Immediately review and reformulate product",
		"Consult with food safety experts",
		"Consider discontinuing product until safety issues are resolved",
	}
)

// gradeBase anchors the safety score on the product's nutrition grade, then
// penalizes flagged ingredients and undeclared-allergen risk on top.
var gradeBase = map[string]int{
	"a": 90,
	"b": 80,
	"c": 65,
	"d": 50,
	"e": 35,
}

const (
	ungradedBase    = 55
	warningPenalty  = 10
	allergenPenalty = 5
)

type safetyEvaluator struct{}

func NewSafetyEvaluator() SafetyEvaluator {
	return &safetyEvaluator{}
}

func (e *safetyEvaluator) Assess(record *entity.ProductRecord) SafetyResult {
	score := ungradedBase
	if base, ok := gradeBase[strings.ToLower(record.NutritionGrade)]; ok {
		score = base
	}

	score -= warningPenalty * len(ScanWarnings(record.IngredientsText))
	if record.Allergens != "" {
		score -= allergenPenalty
	}

	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	result := SafetyResult{Score: score}
	switch {
	case score >= 70:
		result.Band = BandSafe
		result.Statement = StatementSafe
		result.Recommendations = recommendationsSafe
	case score >= 40:
		result.Band = BandWarning
		result.Statement = StatementWarning
		result.Recommendations = recommendationsWarning
	default:
		result.Band = BandDanger
		result.Statement = StatementDanger
		result.Recommendations = recommendationsDanger
	}
	return result
}
