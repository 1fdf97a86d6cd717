// FILE: internal/service/verification_service_test.go
package service

import (
	"context"
	"testing"

	"imbewu-be/internal/dto"
	"imbewu-be/internal/entity"
	"imbewu-be/internal/pkg/apperrors"
	"imbewu-be/pkg/offclient"
	"imbewu-be/pkg/scoring"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newVerificationFixture(client *fakeProductClient) IVerificationService {
	return NewVerificationService(client, nil, newFakeRecentRepo(), &fakePublisher{}, nopLogger{})
}

func TestManualLookupRejectsBadBarcodes(t *testing.T) {
	tests := []struct {
		name    string
		barcode string
		wantMsg string
	}{
		{name: "empty", barcode: "", wantMsg: "Please enter a barcode"},
		{name: "whitespace only", barcode: "   ", wantMsg: "Please enter a barcode"},
		{name: "letters", barcode: "abc123", wantMsg: "Barcode must contain only numbers"},
		{name: "embedded space", barcode: "600 123", wantMsg: "Barcode must contain only numbers"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &fakeProductClient{}
			svc := newVerificationFixture(client)

			_, err := svc.ManualLookup(context.Background(), uuid.New(), &dto.ManualLookupRequest{Barcode: tt.barcode})
			require.Error(t, err)

			appErr, ok := apperrors.As(err)
			require.True(t, ok)
			assert.Equal(t, apperrors.KindValidation, appErr.Kind)
			assert.Equal(t, tt.wantMsg, appErr.Message)
			// Rejected input must never reach the upstream API.
			assert.Zero(t, client.fetchCalls)
		})
	}
}

// compliantRecord passes all five compliance checks, so the report is
// verified on score alone.
func compliantRecord(code string) *entity.ProductRecord {
	return &entity.ProductRecord{
		Code:            code,
		Name:            "Maize Meal",
		Brands:          "Imbewu Foods",
		Categories:      "cereals",
		ImageURL:        "https://img.example/maize.jpg",
		IngredientsText: "maize, salt",
		Nutriments:      map[string]any{"energy": 1500.0},
		NutritionGrade:  "a",
	}
}

func TestLookupProductRecordsRecent(t *testing.T) {
	client := &fakeProductClient{record: compliantRecord("6001234567890")}
	recents := newFakeRecentRepo()
	publisher := &fakePublisher{}
	uowFactory := newFakeUowFactory()
	uowFactory.uow.records.records = []*entity.VerificationRecord{{
		Barcode:    "6001234567890",
		Status:     entity.VerificationStatusVerified,
		VerifiedBy: "System Auto-Check",
	}}

	svc := NewVerificationService(client, uowFactory, recents, publisher, nopLogger{})
	userId := uuid.New()

	report, err := svc.LookupProduct(context.Background(), userId, "6001234567890")
	require.NoError(t, err)

	// All five checks pass, so the score alone marks the product verified.
	assert.Equal(t, 100, report.Compliance.Score)
	assert.True(t, report.Verified)
	require.Len(t, report.History, 1)
	assert.Equal(t, "Verified", report.History[0].Status)
	assert.Equal(t, "System Auto-Check", report.History[0].By)

	list := recents.lists[userId]
	require.Len(t, list, 1)
	assert.Equal(t, "6001234567890", list[0].Code)
	assert.Equal(t, "Maize Meal", list[0].Name)
	assert.Equal(t, "Imbewu Foods", list[0].Brand)
	assert.True(t, list[0].Verified)

	// A history record is queued for the pipeline.
	assert.Len(t, publisher.payloads, 1)
}

func TestLookupProductCertificateMarksVerified(t *testing.T) {
	// Sparse record: no ingredients, no nutrition facts, so the score
	// stays below the verified threshold.
	client := &fakeProductClient{record: &entity.ProductRecord{
		Code:   "6009999999990",
		Name:   "Mystery Snack",
		Brands: "Nowhere Brands",
	}}
	uowFactory := newFakeUowFactory()
	uowFactory.uow.certs.certs = []*entity.Certificate{{
		CertificateId: "CERT-ABCDEF123",
		Barcode:       "6009999999990",
	}}

	svc := NewVerificationService(client, uowFactory, newFakeRecentRepo(), &fakePublisher{}, nopLogger{})

	report, err := svc.LookupProduct(context.Background(), uuid.New(), "6009999999990")
	require.NoError(t, err)
	assert.Less(t, report.Compliance.Score, 80)
	assert.True(t, report.Verified, "an issued certificate verifies the product regardless of score")
}

func TestLookupProductNotFound(t *testing.T) {
	client := &fakeProductClient{fetchErr: offclient.ErrProductNotFound}
	recents := newFakeRecentRepo()
	userId := uuid.New()
	svc := NewVerificationService(client, nil, recents, &fakePublisher{}, nopLogger{})

	_, err := svc.LookupProduct(context.Background(), userId, "0000000000000")
	require.Error(t, err)

	appErr, ok := apperrors.As(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.KindNotFound, appErr.Kind)
	assert.Equal(t, "Product not found in the database.", appErr.Message)
	assert.Equal(t, 1, client.fetchCalls)
	// A failed lookup never touches the recent list.
	assert.Empty(t, recents.lists[userId])
}

func TestLookupProductUpstreamFailure(t *testing.T) {
	client := &fakeProductClient{fetchErr: assert.AnError}
	svc := newVerificationFixture(client)

	_, err := svc.LookupProduct(context.Background(), uuid.New(), "6001234567890")
	require.Error(t, err)

	appErr, ok := apperrors.As(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.KindNetwork, appErr.Kind)
	assert.Equal(t, "Failed to fetch product data. Please try again.", appErr.Message)
}

func TestSearchProducts(t *testing.T) {
	t.Run("empty term is rejected before the API", func(t *testing.T) {
		client := &fakeProductClient{}
		svc := newVerificationFixture(client)

		_, err := svc.SearchProducts(context.Background(), "   ")
		require.Error(t, err)

		appErr, ok := apperrors.As(err)
		require.True(t, ok)
		assert.Equal(t, "Please enter a search term", appErr.Message)
		assert.Zero(t, client.searchCalls)
	})

	t.Run("upstream failure maps to a network error", func(t *testing.T) {
		client := &fakeProductClient{searchErr: assert.AnError}
		svc := newVerificationFixture(client)

		_, err := svc.SearchProducts(context.Background(), "maize")
		require.Error(t, err)

		appErr, ok := apperrors.As(err)
		require.True(t, ok)
		assert.Equal(t, apperrors.KindNetwork, appErr.Kind)
		assert.Equal(t, "Failed to search for products. Please try again.", appErr.Message)
	})

	t.Run("returns the upstream hits", func(t *testing.T) {
		client := &fakeProductClient{hits: []offclient.SearchHit{{Code: "111", Name: "Maize Meal"}}}
		svc := newVerificationFixture(client)

		res, err := svc.SearchProducts(context.Background(), "maize")
		require.NoError(t, err)
		require.Len(t, res.Hits, 1)
		assert.Equal(t, "111", res.Hits[0].Code)
	})
}

func TestPreviewNewProduct(t *testing.T) {
	svc := newVerificationFixture(&fakeProductClient{})

	report, err := svc.PreviewNewProduct(context.Background(), &dto.NewProductPreviewRequest{
		Name:        "Morogo Mix",
		Brand:       "Imbewu Foods",
		Ingredients: "morogo, salt",
	})
	require.NoError(t, err)

	// A preview is never verified and carries no history.
	assert.False(t, report.Verified)
	assert.Empty(t, report.History)
	assert.True(t, report.Product.Synthetic)
	assert.Equal(t, "Morogo Mix", report.Product.Name)
	assert.NotEmpty(t, report.Product.Code, "a blank barcode gets a placeholder")
	assert.NotZero(t, report.Compliance.Score)
	assert.Equal(t, scoring.NoConcernsAffirmation, report.Ingredients.Affirmation)
}

func TestGetRecent(t *testing.T) {
	recents := newFakeRecentRepo()
	userId := uuid.New()
	recents.lists[userId] = []entity.RecentVerificationEntry{{Code: "111", Name: "Maize Meal"}}

	svc := NewVerificationService(&fakeProductClient{}, nil, recents, &fakePublisher{}, nopLogger{})

	list, err := svc.GetRecent(context.Background(), userId)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "111", list[0].Code)
}
