package catalog

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
)

// catalogAdapter wraps ServiceContainer for type-safe cross-module calls.
// It implements CatalogPort.
type catalogAdapter struct {
	container mono.ServiceContainer
}

// NewCatalogAdapter creates a CatalogPort backed by the catalog module's
// service container, as received via SetDependencyServiceContainer.
func NewCatalogAdapter(container mono.ServiceContainer) CatalogPort {
	if container == nil {
		panic("catalog adapter requires non-nil ServiceContainer")
	}
	return &catalogAdapter{container: container}
}

// ListProducts queries products via the list-products service.
func (a *catalogAdapter) ListProducts(ctx context.Context, req *ListProductsRequest) (*ListProductsResponse, error) {
	var resp ListProductsResponse
	if err := helper.CallRequestReplyService(
		ctx,
		a.container,
		ServiceListProducts,
		json.Marshal,
		json.Unmarshal,
		req,
		&resp,
	); err != nil {
		return nil, fmt.Errorf("%s service call failed: %w", ServiceListProducts, err)
	}
	return &resp, nil
}

// ListCategories fetches the category list via the list-categories service.
func (a *catalogAdapter) ListCategories(ctx context.Context) ([]string, error) {
	req := ListCategoriesRequest{}
	var resp ListCategoriesResponse
	if err := helper.CallRequestReplyService(
		ctx,
		a.container,
		ServiceListCategories,
		json.Marshal,
		json.Unmarshal,
		&req,
		&resp,
	); err != nil {
		return nil, fmt.Errorf("%s service call failed: %w", ServiceListCategories, err)
	}
	return resp.Categories, nil
}
