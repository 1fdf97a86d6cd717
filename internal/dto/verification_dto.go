package dto

import (
	"imbewu-be/pkg/offclient"
	"imbewu-be/pkg/scoring"

	"github.com/google/uuid"
)

type ProductResponse struct {
	Code           string `json:"code"`
	Name           string `json:"name"`
	Brands         string `json:"brands,omitempty"`
	Categories     string `json:"categories,omitempty"`
	Image          string `json:"image,omitempty"`
	NutritionGrade string `json:"nutrition_grade,omitempty"`
	EcoScoreGrade  string `json:"eco_score_grade,omitempty"`
	Synthetic      bool   `json:"synthetic,omitempty"`
}

type VerificationHistoryItem struct {
	Date   string `json:"date"`
	Status string `json:"status"`
	By     string `json:"by"`
}

// VerificationReportResponse is the full report assembled per request:
// product identity plus the three analysis panels and the stored history.
type VerificationReportResponse struct {
	Product     ProductResponse           `json:"product"`
	Verified    bool                      `json:"verified"`
	Compliance  scoring.ComplianceResult  `json:"compliance"`
	Ingredients scoring.IngredientsResult `json:"ingredients"`
	Safety      scoring.SafetyResult      `json:"safety"`
	History     []VerificationHistoryItem `json:"history"`
}

type ManualLookupRequest struct {
	Barcode string `json:"barcode" validate:"required,numeric"`
}

type SearchResponse struct {
	Hits []offclient.SearchHit `json:"hits"`
}

// RecordVerificationMessage rides the internal pipeline from a completed
// lookup to the history writer.
type RecordVerificationMessage struct {
	Barcode         string    `json:"barcode"`
	UserId          uuid.UUID `json:"user_id"`
	Status          string    `json:"status"`
	VerifiedBy      string    `json:"verified_by"`
	ComplianceScore int       `json:"compliance_score"`
	ProductName     string    `json:"product_name"`
}

type NewProductPreviewRequest struct {
	Name        string `json:"name" validate:"required,min=2"`
	Brand       string `json:"brand" validate:"omitempty,max=128"`
	Barcode     string `json:"barcode" validate:"omitempty,numeric"`
	Category    string `json:"category" validate:"omitempty,max=128"`
	Ingredients string `json:"ingredients"`
}
