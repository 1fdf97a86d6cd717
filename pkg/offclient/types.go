package offclient

// productResponse is the envelope Open Food Facts returns for a single
// product lookup. Status is 1 when the barcode is known and 0 otherwise.
type productResponse struct {
	Status  int         `json:"status"`
	Code    string      `json:"code"`
	Product *productDoc `json:"product"`
}

type productDoc struct {
	ProductName     string         `json:"product_name"`
	Brands          string         `json:"brands"`
	Categories      string         `json:"categories"`
	ImageURL        string         `json:"image_url"`
	IngredientsText string         `json:"ingredients_text"`
	Allergens       string         `json:"allergens"`
	Nutriments      map[string]any `json:"nutriments"`
	NutritionGrades string         `json:"nutrition_grades"`
	EcoScoreGrade   string         `json:"ecoscore_grade"`
}

type searchResponse struct {
	Count    int         `json:"count"`
	Products []searchDoc `json:"products"`
}

type searchDoc struct {
	Code        string `json:"code"`
	ProductName string `json:"product_name"`
	Brands      string `json:"brands"`
	ImageURL    string `json:"image_url"`
}

// SearchHit is a trimmed search result row, enough to render a pick list.
type SearchHit struct {
	Code  string `json:"code"`
	Name  string `json:"name"`
	Brand string `json:"brand"`
	Image string `json:"image"`
}
