package scoring

import (
	"testing"

	"imbewu-be/internal/entity"

	"github.com/stretchr/testify/assert"
)

func TestSafetyAssess(t *testing.T) {
	evaluator := NewSafetyEvaluator()

	tests := []struct {
		name      string
		record    entity.ProductRecord
		wantScore int
		wantBand  SafetyBand
	}{
		{
			name:      "grade a is safe",
			record:    entity.ProductRecord{NutritionGrade: "a"},
			wantScore: 90,
			wantBand:  BandSafe,
		},
		{
			name:      "grade is case insensitive",
			record:    entity.ProductRecord{NutritionGrade: "B"},
			wantScore: 80,
			wantBand:  BandSafe,
		},
		{
			name:      "ungraded product starts mid-band",
			record:    entity.ProductRecord{},
			wantScore: 55,
			wantBand:  BandWarning,
		},
		{
			name:      "grade e is danger",
			record:    entity.ProductRecord{NutritionGrade: "e"},
			wantScore: 35,
			wantBand:  BandDanger,
		},
		{
			name: "ingredient warnings cost ten points each",
			record: entity.ProductRecord{
				NutritionGrade:  "a",
				IngredientsText: "high fructose corn syrup, artificial flavor",
			},
			wantScore: 70,
			wantBand:  BandSafe,
		},
		{
			name: "declared allergens cost five points",
			record: entity.ProductRecord{
				NutritionGrade: "a",
				Allergens:      "milk, nuts",
			},
			wantScore: 85,
			wantBand:  BandSafe,
		},
		{
			name: "score clamps at zero",
			record: entity.ProductRecord{
				NutritionGrade:  "e",
				IngredientsText: "hydrogenated oil, high fructose corn syrup, artificial color, sodium nitrite",
				Allergens:       "soy",
			},
			wantScore: 0,
			wantBand:  BandDanger,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := evaluator.Assess(&tt.record)
			assert.Equal(t, tt.wantScore, result.Score)
			assert.Equal(t, tt.wantBand, result.Band)
		})
	}
}

func TestSafetyStatements(t *testing.T) {
	evaluator := NewSafetyEvaluator()

	safe := evaluator.Assess(&entity.ProductRecord{NutritionGrade: "a"})
	assert.Equal(t, StatementSafe, safe.Statement)
	assert.Len(t, safe.Recommendations, 2)

	warning := evaluator.Assess(&entity.ProductRecord{})
	assert.Equal(t, StatementWarning, warning.Statement)
	assert.Len(t, warning.Recommendations, 3)

	danger := evaluator.Assess(&entity.ProductRecord{NutritionGrade: "e"})
	assert.Equal(t, StatementDanger, danger.Statement)
	assert.Len(t, danger.Recommendations, 3)
}
