package offclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchProduct(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		assert.Equal(t, "/api/v2/product/6001234567890", r.URL.Path)
		assert.Contains(t, r.URL.RawQuery, "fields=")

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"status": 1,
			"code": "6001234567890",
			"product": {
				"product_name": "Maize Meal",
				"brands": "Imbewu Foods",
				"categories": "cereals",
				"image_url": "https://img.example/maize.jpg",
				"ingredients_text": "maize, salt",
				"allergens": "gluten",
				"nutriments": {"energy-kcal_100g": 360},
				"nutrition_grades": "a",
				"ecoscore_grade": "b"
			}
		}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Minute)

	record, err := client.FetchProduct(context.Background(), "6001234567890")
	require.NoError(t, err)

	assert.Equal(t, "6001234567890", record.Code)
	assert.Equal(t, "Maize Meal", record.Name)
	assert.Equal(t, "Imbewu Foods", record.Brands)
	assert.Equal(t, "cereals", record.Categories)
	assert.Equal(t, "https://img.example/maize.jpg", record.ImageURL)
	assert.Equal(t, "maize, salt", record.IngredientsText)
	assert.Equal(t, "gluten", record.Allergens)
	assert.Equal(t, "a", record.NutritionGrade)
	assert.Equal(t, "b", record.EcoScoreGrade)
	assert.NotEmpty(t, record.Nutriments)

	// Second call is served from cache.
	_, err = client.FetchProduct(context.Background(), "6001234567890")
	require.NoError(t, err)
	assert.Equal(t, int32(1), atomic.LoadInt32(&hits))
}

func TestFetchProductUnknownBarcode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status": 0, "code": "0000000000000"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Minute)

	_, err := client.FetchProduct(context.Background(), "0000000000000")
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestFetchProductUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Minute)

	_, err := client.FetchProduct(context.Background(), "6001234567890")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrProductNotFound)
}

func TestSearchProducts(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v2/search", r.URL.Path)
		assert.Equal(t, "maize meal", r.URL.Query().Get("search_terms"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"count": 2,
			"products": [
				{"code": "111", "product_name": "Maize Meal", "brands": "A", "image_url": "https://img.example/1.jpg"},
				{"code": "222", "product_name": "Super Maize Meal", "brands": "B", "image_url": ""}
			]
		}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Minute)

	hits, err := client.SearchProducts(context.Background(), "maize meal")
	require.NoError(t, err)
	require.Len(t, hits, 2)
	assert.Equal(t, SearchHit{Code: "111", Name: "Maize Meal", Brand: "A", Image: "https://img.example/1.jpg"}, hits[0])
	assert.Equal(t, "222", hits[1].Code)
}
