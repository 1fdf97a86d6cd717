// FILE: internal/entity/product_entity.go
package entity

import (
	"fmt"
	"time"
)

// ProductRecord is the single unit the verification report is computed
// from. It is either fetched from the external product database or
// synthesized from a new-product submission; once assembled it is treated
// as immutable.
type ProductRecord struct {
	Code            string
	Name            string
	Brands          string
	Categories      string
	ImageURL        string
	IngredientsText string
	Allergens       string
	Nutriments      map[string]any
	NutritionGrade  string
	EcoScoreGrade   string
	// Synthetic marks records authored through the new-product form;
	// they are previewed but never recorded into the recent list.
	Synthetic bool
}

// NewSyntheticRecord builds a ProductRecord from vendor-entered fields.
// A blank barcode gets a timestamp-derived placeholder so the record can
// flow through the same report path as a fetched one.
func NewSyntheticRecord(name, brands, barcode, categories, ingredients, allergens string, now time.Time) *ProductRecord {
	if barcode == "" {
		barcode = fmt.Sprintf("NEW-%d", now.UnixMilli())
	}
	return &ProductRecord{
		Code:            barcode,
		Name:            name,
		Brands:          brands,
		Categories:      categories,
		IngredientsText: ingredients,
		Allergens:       allergens,
		Synthetic:       true,
	}
}
