package catalog

import (
	"github.com/example/product-catalog-demo/domain/product"
)

// Service answers catalog queries from a stable dataset.
type Service struct {
	dataset  *product.Dataset
	defaults product.QueryDefaults
}

// NewService creates a catalog service over dataset.
func NewService(dataset *product.Dataset, defaults product.QueryDefaults) *Service {
	if defaults.MaxTotal <= 0 || defaults.MaxTotal > dataset.Size() {
		defaults.MaxTotal = dataset.Size()
	}
	return &Service{
		dataset:  dataset,
		defaults: defaults,
	}
}

// ListProducts runs the query pipeline and wraps the page in the response
// envelope. Invalid parameters degrade to defaults; it never fails.
func (s *Service) ListProducts(raw product.RawQuery) ListProductsResponse {
	page := product.Run(s.dataset, s.defaults.Parse(raw))
	return newListProductsResponse(page)
}

// ListCategories returns the fixed category list.
func (s *Service) ListCategories() []string {
	return product.Categories()
}

// Dataset returns the dataset backing the service.
func (s *Service) Dataset() *product.Dataset {
	return s.dataset
}

// newListProductsResponse builds the response envelope from a page.
func newListProductsResponse(page product.Page) ListProductsResponse {
	return ListProductsResponse{
		Data:       page.Items,
		Page:       page.Page,
		Limit:      page.Limit,
		Total:      page.Total,
		TotalPages: page.TotalPages,
	}
}
