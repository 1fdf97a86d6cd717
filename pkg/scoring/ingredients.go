package scoring

import (
	"strings"

	"imbewu-be/internal/entity"
)

const (
	NoConcernsAffirmation = "No significant ingredient concerns detected"
	NoIngredientsText     = "No ingredients information available."
	NoAllergensText       = "No allergen information available."
)

// ingredientMarker flags a concern when any of its substrings appears in the
// lower-cased ingredients text. One warning per marker regardless of how many
// substrings match.
type ingredientMarker struct {
	substrings []string
	warning    string
}

var markers = []ingredientMarker{
	{
		substrings: []string{"hydrogenated", "partially hydrogenated"},
		warning:    "Contains trans fats (hydrogenated oils)",
	},
	{
		substrings: []string{"high fructose corn syrup"},
		warning:    "Contains high fructose corn syrup",
	},
	{
		substrings: []string{"artificial flavor", "artificial color"},
		warning:    "Contains artificial flavors or colors",
	},
	{
		substrings: []string{"sodium nitrate", "sodium nitrite"},
		warning:    "Contains sodium nitrate/nitrite (preservative)",
	},
}

type ingredientScanner struct{}

func NewIngredientScanner() IngredientScanner {
	return &ingredientScanner{}
}

// ScanWarnings returns the concern warnings for the given ingredients text.
// Exposed separately so other evaluators can reuse the marker table.
func ScanWarnings(ingredientsText string) []string {
	warnings := []string{}
	if ingredientsText == "" {
		return warnings
	}

	lowered := strings.ToLower(ingredientsText)
	for _, marker := range markers {
		for _, sub := range marker.substrings {
			if strings.Contains(lowered, sub) {
				warnings = append(warnings, marker.warning)
				break
			}
		}
	}
	return warnings
}

func (s *ingredientScanner) Scan(record *entity.ProductRecord) IngredientsResult {
	result := IngredientsResult{
		IngredientsText: record.IngredientsText,
		Warnings:        ScanWarnings(record.IngredientsText),
		Allergens:       record.Allergens,
	}

	if result.IngredientsText == "" {
		result.IngredientsText = NoIngredientsText
	}
	if result.Allergens == "" {
		result.Allergens = NoAllergensText
	}
	if len(result.Warnings) == 0 {
		result.Affirmation = NoConcernsAffirmation
	}
	return result
}
