package api

import (
	"github.com/example/product-catalog-demo/domain/product"
	"github.com/example/product-catalog-demo/modules/catalog"
	"github.com/gofiber/fiber/v2"
)

// setupRoutes configures all HTTP routes. Catalog routes are served at the
// root and again under /api.
func (m *APIModule) setupRoutes(app *fiber.App) {
	app.Get("/health", m.healthHandler)

	for _, r := range []fiber.Router{app, app.Group("/api")} {
		r.Get("/categories", m.listCategories)
		r.Get("/products", m.listProducts)
	}
}

// healthHandler handles GET /health.
func (m *APIModule) healthHandler(c *fiber.Ctx) error {
	return c.JSON(HealthResponse{
		Status: "healthy",
		Details: map[string]any{
			"module": "api",
			"port":   m.port,
		},
	})
}

// listCategories handles GET /categories.
func (m *APIModule) listCategories(c *fiber.Ctx) error {
	categories, err := m.catalogAdapter.ListCategories(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error:   "list_failed",
			Message: err.Error(),
		})
	}

	return c.JSON(categories)
}

// listProducts handles GET /products. Query parameters are forwarded as
// received; the catalog substitutes defaults for missing or invalid values.
func (m *APIModule) listProducts(c *fiber.Ctx) error {
	req := &catalog.ListProductsRequest{
		RawQuery: product.RawQuery{
			Q:        c.Query("q"),
			Sort:     c.Query("sort"),
			Order:    c.Query("order"),
			Category: c.Query("category"),
			Page:     c.Query("page"),
			Limit:    c.Query("limit"),
			Total:    c.Query("total"),
		},
	}

	resp, err := m.catalogAdapter.ListProducts(c.UserContext(), req)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error:   "list_failed",
			Message: err.Error(),
		})
	}

	data := make([]ProductResponse, 0, len(resp.Data))
	for _, p := range resp.Data {
		data = append(data, toProductResponse(p))
	}

	return c.JSON(ListProductsResponse{
		Data:       data,
		Page:       resp.Page,
		Limit:      resp.Limit,
		Total:      resp.Total,
		TotalPages: resp.TotalPages,
	})
}

func toProductResponse(p product.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		Title:       p.Title,
		Price:       p.Price,
		Description: p.Description,
		Category:    p.Category,
		Image:       p.Image,
		Rating: RatingResponse{
			Rate:  p.Rating.Rate,
			Count: p.Rating.Count,
		},
	}
}
