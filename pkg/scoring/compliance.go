package scoring

import (
	"math"

	"imbewu-be/internal/entity"
)

const (
	ExplanationMostStandards  = "This product meets most safety standards."
	ExplanationBasicStandards = "This product meets basic safety standards but needs improvement."
	ExplanationBelowStandards = "This product does not meet basic safety standards."
)

type complianceEvaluator struct{}

func NewComplianceEvaluator() ComplianceEvaluator {
	return &complianceEvaluator{}
}

func (e *complianceEvaluator) Evaluate(record *entity.ProductRecord) ComplianceResult {
	checks := []ComplianceCheck{
		{
			Id:    "ingredients_list",
			Label: "Complete ingredients list",
			Valid: record.IngredientsText != "",
		},
		{
			// Absent allergen data reads as "none to declare", so this
			// check cannot fail on its own.
			Id:    "allergens_declared",
			Label: "Allergens properly declared",
			Valid: true,
		},
		{
			Id:    "nutrition_facts",
			Label: "Nutrition facts available",
			Valid: len(record.Nutriments) > 0,
		},
		{
			Id:    "no_harmful_additives",
			Label: "No harmful additives",
			Valid: len(ScanWarnings(record.IngredientsText)) == 0,
		},
		{
			Id:    "proper_labeling",
			Label: "Proper labeling standards",
			Valid: record.Name != "" && record.Brands != "",
		},
	}

	validCount := 0
	for _, check := range checks {
		if check.Valid {
			validCount++
		}
	}

	score := int(math.Round(float64(validCount) / float64(len(checks)) * 100))

	explanation := ExplanationBelowStandards
	switch {
	case score >= 80:
		explanation = ExplanationMostStandards
	case score >= 60:
		explanation = ExplanationBasicStandards
	}

	return ComplianceResult{
		Checks:      checks,
		Score:       score,
		Explanation: explanation,
	}
}
