package catalog

import (
	"context"
	"testing"

	"github.com/example/product-catalog-demo/domain/product"
	"github.com/go-monolith/mono/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockLogger implements types.Logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(_ string, _ ...any)         {}
func (m *mockLogger) Info(_ string, _ ...any)          {}
func (m *mockLogger) Warn(_ string, _ ...any)          {}
func (m *mockLogger) Error(_ string, _ ...any)         {}
func (m *mockLogger) With(_ ...any) types.Logger       { return m }
func (m *mockLogger) WithError(_ error) types.Logger   { return m }
func (m *mockLogger) WithModule(_ string) types.Logger { return m }

func startedModule(t *testing.T, opts ...Option) *CatalogModule {
	t.Helper()

	m, err := NewModule(&mockLogger{}, opts...)
	require.NoError(t, err)
	require.NoError(t, m.Start(context.Background()))
	t.Cleanup(func() {
		_ = m.Stop(context.Background())
	})
	return m
}

func TestNewModule_InvalidConfig(t *testing.T) {
	m, err := NewModule(&mockLogger{}, WithDefaultLimit(0))

	assert.Nil(t, m)
	assert.Error(t, err)
}

func TestModule_Name(t *testing.T) {
	m, err := NewModule(&mockLogger{})
	require.NoError(t, err)

	assert.Equal(t, "catalog", m.Name())
}

func TestModule_HandlersBeforeStart(t *testing.T) {
	m, err := NewModule(&mockLogger{})
	require.NoError(t, err)

	_, err = m.listProducts(context.Background(), ListProductsRequest{}, nil)
	assert.ErrorIs(t, err, ErrNotStarted)

	_, err = m.listCategories(context.Background(), ListCategoriesRequest{}, nil)
	assert.ErrorIs(t, err, ErrNotStarted)
}

func TestModule_Health(t *testing.T) {
	m, err := NewModule(&mockLogger{})
	require.NoError(t, err)

	before := m.Health(context.Background())
	assert.False(t, before.Healthy)

	require.NoError(t, m.Start(context.Background()))

	after := m.Health(context.Background())
	assert.True(t, after.Healthy)
	assert.Equal(t, 1000, after.Details["dataset_size"])
}

func TestHandleListCategories(t *testing.T) {
	m := startedModule(t)

	resp, err := m.listCategories(context.Background(), ListCategoriesRequest{}, nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"electronics", "clothing", "home", "outdoors"}, resp.Categories)
}

func TestHandleListProducts_Defaults(t *testing.T) {
	m := startedModule(t)

	resp, err := m.listProducts(context.Background(), ListProductsRequest{}, nil)
	require.NoError(t, err)

	assert.Len(t, resp.Data, 50)
	assert.Equal(t, 1, resp.Page)
	assert.Equal(t, 50, resp.Limit)
	assert.Equal(t, 1000, resp.Total)
	assert.Equal(t, 20, resp.TotalPages)
	assert.Equal(t, 1, resp.Data[0].ID)
	assert.Equal(t, 50, resp.Data[49].ID)
}

func TestHandleListProducts_CategoryPage(t *testing.T) {
	m := startedModule(t)

	req := ListProductsRequest{RawQuery: product.RawQuery{Category: "electronics", Limit: "2", Page: "1"}}
	resp, err := m.listProducts(context.Background(), req, nil)
	require.NoError(t, err)

	require.Len(t, resp.Data, 2)
	for _, p := range resp.Data {
		assert.Equal(t, "electronics", p.Category)
	}
	assert.Equal(t, 333, resp.Total)
	assert.Equal(t, 167, resp.TotalPages)
}

func TestHandleListProducts_PageOverflowClamps(t *testing.T) {
	m := startedModule(t)

	req := ListProductsRequest{RawQuery: product.RawQuery{Q: "smartphone", Limit: "100", Page: "99"}}
	resp, err := m.listProducts(context.Background(), req, nil)
	require.NoError(t, err)

	// 166 smartphone records (seed index 4) across two pages of 100.
	assert.Equal(t, 166, resp.Total)
	assert.Equal(t, 2, resp.TotalPages)
	assert.Equal(t, 2, resp.Page)
	assert.Len(t, resp.Data, 66)
}

func TestHandleListProducts_MaxLimit(t *testing.T) {
	m := startedModule(t, WithMaxLimit(100))

	req := ListProductsRequest{RawQuery: product.RawQuery{Limit: "1000"}}
	resp, err := m.listProducts(context.Background(), req, nil)
	require.NoError(t, err)

	assert.Equal(t, 100, resp.Limit)
	assert.Len(t, resp.Data, 100)
	assert.Equal(t, 10, resp.TotalPages)
}

func TestHandleListProducts_DatasetSize(t *testing.T) {
	m := startedModule(t, WithDatasetSize(40))

	req := ListProductsRequest{RawQuery: product.RawQuery{Total: "5000"}}
	resp, err := m.listProducts(context.Background(), req, nil)
	require.NoError(t, err)

	assert.Equal(t, 40, resp.Total)
}

func TestService_UsesInjectedDataset(t *testing.T) {
	calls := 0
	ds := product.NewDatasetWithGenerator(12, func(total int) []product.Product {
		calls++
		return product.Generate(total)
	})
	svc := NewService(ds, product.QueryDefaults{Limit: 5})

	first := svc.ListProducts(product.RawQuery{Sort: "category", Order: "desc"})
	second := svc.ListProducts(product.RawQuery{Sort: "category", Order: "desc"})

	assert.Equal(t, 1, calls)
	assert.Equal(t, first, second)
	assert.Equal(t, 12, first.Total)
	assert.Equal(t, 3, first.TotalPages)
	assert.Equal(t, "outdoors", first.Data[0].Category)
}

func TestService_TotalPrefix(t *testing.T) {
	svc := NewService(product.NewDataset(product.DefaultDatasetSize), product.QueryDefaults{})

	resp := svc.ListProducts(product.RawQuery{Total: "3"})

	require.Len(t, resp.Data, 3)
	seed := product.Seed()
	for i, p := range resp.Data {
		assert.Equal(t, seed[i].ID, p.ID)
		assert.Equal(t, seed[i].Title, p.Title)
		assert.Equal(t, seed[i].Price, p.Price)
		assert.Equal(t, seed[i].Category, p.Category)
	}
}
