package scoring

import (
	"testing"

	"imbewu-be/internal/entity"

	"github.com/stretchr/testify/assert"
)

func TestScanWarnings(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "clean ingredients",
			text: "maize, salt, water",
			want: []string{},
		},
		{
			name: "empty text",
			text: "",
			want: []string{},
		},
		{
			name: "trans fats",
			text: "Partially Hydrogenated soybean oil",
			want: []string{"Contains trans fats (hydrogenated oils)"},
		},
		{
			name: "one warning per marker even when both substrings match",
			text: "hydrogenated oil, partially hydrogenated oil",
			want: []string{"Contains trans fats (hydrogenated oils)"},
		},
		{
			name: "multiple markers",
			text: "high fructose corn syrup, artificial color, sodium nitrite",
			want: []string{
				"Contains high fructose corn syrup",
				"Contains artificial flavors or colors",
				"Contains sodium nitrate/nitrite (preservative)",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ScanWarnings(tt.text))
		})
	}
}

func TestIngredientScan(t *testing.T) {
	scanner := NewIngredientScanner()

	t.Run("clean product gets the affirmation", func(t *testing.T) {
		result := scanner.Scan(&entity.ProductRecord{
			IngredientsText: "maize, salt",
			Allergens:       "gluten",
		})
		assert.Empty(t, result.Warnings)
		assert.Equal(t, NoConcernsAffirmation, result.Affirmation)
		assert.Equal(t, "maize, salt", result.IngredientsText)
		assert.Equal(t, "gluten", result.Allergens)
	})

	t.Run("flagged product gets no affirmation", func(t *testing.T) {
		result := scanner.Scan(&entity.ProductRecord{
			IngredientsText: "sodium nitrate, pork",
		})
		assert.Equal(t, []string{"Contains sodium nitrate/nitrite (preservative)"}, result.Warnings)
		assert.Empty(t, result.Affirmation)
	})

	t.Run("missing data falls back to placeholders", func(t *testing.T) {
		result := scanner.Scan(&entity.ProductRecord{})
		assert.Equal(t, NoIngredientsText, result.IngredientsText)
		assert.Equal(t, NoAllergensText, result.Allergens)
		assert.Equal(t, NoConcernsAffirmation, result.Affirmation)
	})
}
