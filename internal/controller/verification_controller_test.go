// FILE: internal/controller/verification_controller_test.go
package controller

import (
	"context"
	"net/http/httptest"
	"testing"

	"imbewu-be/internal/dto"
	"imbewu-be/internal/entity"
	"imbewu-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubVerificationService captures the search term the handler forwards.
type stubVerificationService struct {
	searchTerms string
}

func (s *stubVerificationService) LookupProduct(ctx context.Context, userId uuid.UUID, barcode string) (*dto.VerificationReportResponse, error) {
	return &dto.VerificationReportResponse{}, nil
}

func (s *stubVerificationService) ManualLookup(ctx context.Context, userId uuid.UUID, req *dto.ManualLookupRequest) (*dto.VerificationReportResponse, error) {
	return &dto.VerificationReportResponse{}, nil
}

func (s *stubVerificationService) SearchProducts(ctx context.Context, terms string) (*dto.SearchResponse, error) {
	s.searchTerms = terms
	return &dto.SearchResponse{}, nil
}

func (s *stubVerificationService) PreviewNewProduct(ctx context.Context, req *dto.NewProductPreviewRequest) (*dto.VerificationReportResponse, error) {
	return &dto.VerificationReportResponse{}, nil
}

func (s *stubVerificationService) GetRecent(ctx context.Context, userId uuid.UUID) ([]entity.RecentVerificationEntry, error) {
	return nil, nil
}

var _ service.IVerificationService = (*stubVerificationService)(nil)

func TestSearchReadsQueryParameter(t *testing.T) {
	stub := &stubVerificationService{}
	controller := NewVerificationController(stub)

	app := fiber.New()
	app.Get("/search", controller.Search)

	resp, err := app.Test(httptest.NewRequest("GET", "/search?query=maize+meal", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "maize meal", stub.searchTerms)
}
