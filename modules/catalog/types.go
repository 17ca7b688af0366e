package catalog

import (
	"context"

	"github.com/example/product-catalog-demo/domain/product"
)

// Service names registered in the catalog service container.
const (
	ServiceListProducts   = "list-products"
	ServiceListCategories = "list-categories"
)

// ListProductsRequest is the request for listing products. Parameters are
// carried as received; the catalog applies defaults and coercion.
type ListProductsRequest struct {
	product.RawQuery
}

// ListProductsResponse is one page of products plus paging metadata.
type ListProductsResponse struct {
	Data       []product.Product `json:"data"`
	Page       int               `json:"page"`
	Limit      int               `json:"limit"`
	Total      int               `json:"total"`
	TotalPages int               `json:"totalPages"`
}

// ListCategoriesRequest is the request for listing categories.
type ListCategoriesRequest struct{}

// ListCategoriesResponse is the response containing the category list.
type ListCategoriesResponse struct {
	Categories []string `json:"categories"`
}

// CatalogPort defines the interface for catalog operations (hexagonal port).
// Driving adapters such as the HTTP API depend on this, not on the module.
type CatalogPort interface {
	ListProducts(ctx context.Context, req *ListProductsRequest) (*ListProductsResponse, error)
	ListCategories(ctx context.Context) ([]string, error)
}
