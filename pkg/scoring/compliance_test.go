package scoring

import (
	"testing"

	"imbewu-be/internal/entity"

	"github.com/stretchr/testify/assert"
)

func fullRecord() *entity.ProductRecord {
	return &entity.ProductRecord{
		Code:            "6001234567890",
		Name:            "Maize Meal",
		Brands:          "Imbewu Foods",
		IngredientsText: "maize, salt, vitamin a",
		Nutriments:      map[string]any{"energy-kcal_100g": 360.0},
		NutritionGrade:  "a",
	}
}

func TestComplianceEvaluate(t *testing.T) {
	evaluator := NewComplianceEvaluator()

	tests := []struct {
		name            string
		mutate          func(*entity.ProductRecord)
		wantScore       int
		wantExplanation string
	}{
		{
			name:            "all checks pass",
			mutate:          func(r *entity.ProductRecord) {},
			wantScore:       100,
			wantExplanation: ExplanationMostStandards,
		},
		{
			name: "missing nutrition facts",
			mutate: func(r *entity.ProductRecord) {
				r.Nutriments = nil
			},
			wantScore:       80,
			wantExplanation: ExplanationMostStandards,
		},
		{
			name: "missing nutrition and brand",
			mutate: func(r *entity.ProductRecord) {
				r.Nutriments = nil
				r.Brands = ""
			},
			wantScore:       60,
			wantExplanation: ExplanationBasicStandards,
		},
		{
			name: "bare record",
			mutate: func(r *entity.ProductRecord) {
				r.Name = ""
				r.Brands = ""
				r.IngredientsText = ""
				r.Nutriments = nil
			},
			// Only the allergens check and the (vacuously passing) additive
			// check survive an empty record.
			wantScore:       40,
			wantExplanation: ExplanationBelowStandards,
		},
		{
			name: "harmful additive fails the additive check",
			mutate: func(r *entity.ProductRecord) {
				r.IngredientsText = "maize, partially hydrogenated soybean oil"
			},
			wantScore:       80,
			wantExplanation: ExplanationMostStandards,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record := fullRecord()
			tt.mutate(record)

			result := evaluator.Evaluate(record)

			assert.Equal(t, tt.wantScore, result.Score)
			assert.Equal(t, tt.wantExplanation, result.Explanation)
			assert.Len(t, result.Checks, 5)
		})
	}
}

func TestComplianceIsDeterministic(t *testing.T) {
	evaluator := NewComplianceEvaluator()
	record := fullRecord()

	first := evaluator.Evaluate(record)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, evaluator.Evaluate(record))
	}
}

func TestComplianceAllergensCheckAlwaysPasses(t *testing.T) {
	evaluator := NewComplianceEvaluator()
	record := fullRecord()
	record.Allergens = ""

	result := evaluator.Evaluate(record)
	for _, check := range result.Checks {
		if check.Id == "allergens_declared" {
			assert.True(t, check.Valid)
			return
		}
	}
	t.Fatal("allergens_declared check missing")
}
