package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/example/product-catalog-demo/domain/product"
	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
	"github.com/go-monolith/mono/pkg/types"
)

// CatalogModule serves the product catalog (core domain). It owns the stable
// dataset and exposes the query pipeline as request-reply services.
type CatalogModule struct {
	config  Config
	dataset *product.Dataset
	service *Service
	logger  types.Logger
}

// Compile-time interface checks.
var _ mono.Module = (*CatalogModule)(nil)
var _ mono.ServiceProviderModule = (*CatalogModule)(nil)
var _ mono.HealthCheckableModule = (*CatalogModule)(nil)

// NewModule creates a new CatalogModule. The dataset is allocated here and
// generated once in Start.
func NewModule(logger types.Logger, opts ...Option) (*CatalogModule, error) {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid catalog config: %w", err)
	}

	return &CatalogModule{
		config:  cfg,
		dataset: product.NewDataset(cfg.DatasetSize),
		logger:  logger,
	}, nil
}

// Name returns the module name.
func (m *CatalogModule) Name() string {
	return "catalog"
}

// RegisterServices registers request-reply services in the service container.
// The framework prefixes names with "services.catalog.".
func (m *CatalogModule) RegisterServices(container mono.ServiceContainer) error {
	if err := helper.RegisterTypedRequestReplyService(
		container, ServiceListProducts, json.Unmarshal, json.Marshal, m.listProducts,
	); err != nil {
		return fmt.Errorf("failed to register %s service: %w", ServiceListProducts, err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, ServiceListCategories, json.Unmarshal, json.Marshal, m.listCategories,
	); err != nil {
		return fmt.Errorf("failed to register %s service: %w", ServiceListCategories, err)
	}

	log.Printf("[catalog] Registered services: %s, %s", ServiceListProducts, ServiceListCategories)
	return nil
}

// Start generates the dataset and creates the service.
func (m *CatalogModule) Start(_ context.Context) error {
	started := time.Now()
	m.dataset.Warm()
	m.service = NewService(m.dataset, m.config.queryDefaults())

	m.logger.Info("Catalog dataset generated",
		"records", m.dataset.Size(),
		"duration", time.Since(started).String())
	log.Println("[catalog] Module started")
	return nil
}

// Stop stops the module. The dataset lives until the process exits.
func (m *CatalogModule) Stop(_ context.Context) error {
	log.Println("[catalog] Module stopped")
	return nil
}

// Service returns the catalog service, or nil before Start.
func (m *CatalogModule) Service() *Service {
	return m.service
}

// Health reports whether the dataset has been generated.
func (m *CatalogModule) Health(_ context.Context) mono.HealthStatus {
	if !m.dataset.Ready() {
		return mono.HealthStatus{
			Healthy: false,
			Message: "dataset not generated",
		}
	}
	return mono.HealthStatus{
		Healthy: true,
		Message: "operational",
		Details: map[string]any{
			"dataset_size":  m.dataset.Size(),
			"default_limit": m.config.DefaultLimit,
			"max_limit":     m.config.MaxLimit,
		},
	}
}

// listProducts handles the list-products service request.
func (m *CatalogModule) listProducts(_ context.Context, req ListProductsRequest, _ *mono.Msg) (ListProductsResponse, error) {
	if m.service == nil {
		return ListProductsResponse{}, ErrNotStarted
	}

	resp := m.service.ListProducts(req.RawQuery)
	m.logger.Debug("Products listed",
		"q", req.Q,
		"category", req.Category,
		"page", resp.Page,
		"limit", resp.Limit,
		"total", resp.Total)
	return resp, nil
}

// listCategories handles the list-categories service request.
func (m *CatalogModule) listCategories(_ context.Context, _ ListCategoriesRequest, _ *mono.Msg) (ListCategoriesResponse, error) {
	if m.service == nil {
		return ListCategoriesResponse{}, ErrNotStarted
	}
	return ListCategoriesResponse{Categories: m.service.ListCategories()}, nil
}
