package offclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"imbewu-be/internal/entity"

	"github.com/patrickmn/go-cache"
)

// ErrProductNotFound is returned when the upstream database has no record
// for the requested barcode (status 0 in the response envelope).
var ErrProductNotFound = errors.New("product not found")

const (
	productFields = "product_name,brands,categories,image_url,ingredients_text,allergens,nutriments,nutrition_grades,ecoscore_grade"
	searchFields  = "code,product_name,brands,image_url"
)

// Client talks to the Open Food Facts HTTP API.
type Client interface {
	FetchProduct(ctx context.Context, barcode string) (*entity.ProductRecord, error)
	SearchProducts(ctx context.Context, terms string) ([]SearchHit, error)
}

type clientImpl struct {
	baseURL    string
	httpClient *http.Client
	cache      *cache.Cache
}

func NewClient(baseURL string, cacheTTL time.Duration) Client {
	if baseURL == "" {
		baseURL = "https://world.openfoodfacts.org"
	}
	return &clientImpl{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
		cache: cache.New(cacheTTL, 2*cacheTTL),
	}
}

func (c *clientImpl) FetchProduct(ctx context.Context, barcode string) (*entity.ProductRecord, error) {
	if x, found := c.cache.Get("product:" + barcode); found {
		return x.(*entity.ProductRecord), nil
	}

	endpoint := fmt.Sprintf("%s/api/v2/product/%s?fields=%s", c.baseURL, url.PathEscape(barcode), productFields)
	body, err := c.get(ctx, endpoint)
	if err != nil {
		return nil, err
	}

	var resp productResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to decode product response: %w", err)
	}

	if resp.Status == 0 || resp.Product == nil {
		return nil, ErrProductNotFound
	}

	record := &entity.ProductRecord{
		Code:            barcode,
		Name:            resp.Product.ProductName,
		Brands:          resp.Product.Brands,
		Categories:      resp.Product.Categories,
		ImageURL:        resp.Product.ImageURL,
		IngredientsText: resp.Product.IngredientsText,
		Allergens:       resp.Product.Allergens,
		Nutriments:      resp.Product.Nutriments,
		NutritionGrade:  resp.Product.NutritionGrades,
		EcoScoreGrade:   resp.Product.EcoScoreGrade,
	}

	c.cache.Set("product:"+barcode, record, cache.DefaultExpiration)
	return record, nil
}

func (c *clientImpl) SearchProducts(ctx context.Context, terms string) ([]SearchHit, error) {
	endpoint := fmt.Sprintf("%s/api/v2/search?fields=%s&search_terms=%s", c.baseURL, searchFields, url.QueryEscape(terms))
	body, err := c.get(ctx, endpoint)
	if err != nil {
		return nil, err
	}

	var resp searchResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to decode search response: %w", err)
	}

	hits := make([]SearchHit, 0, len(resp.Products))
	for _, p := range resp.Products {
		hits = append(hits, SearchHit{
			Code:  p.Code,
			Name:  p.ProductName,
			Brand: p.Brands,
			Image: p.ImageURL,
		})
	}
	return hits, nil
}

func (c *clientImpl) get(ctx context.Context, endpoint string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrProductNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("upstream api error (status %d)", resp.StatusCode)
	}
	return body, nil
}
