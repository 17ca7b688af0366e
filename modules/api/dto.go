package api

// RatingResponse is the HTTP representation of a product rating.
type RatingResponse struct {
	Rate  float64 `json:"rate"`
	Count int     `json:"count"`
}

// ProductResponse is the HTTP response for a single product.
type ProductResponse struct {
	ID          int            `json:"id"`
	Title       string         `json:"title"`
	Price       float64        `json:"price"`
	Description string         `json:"description"`
	Category    string         `json:"category"`
	Image       string         `json:"image"`
	Rating      RatingResponse `json:"rating"`
}

// ListProductsResponse is the HTTP response for listing products.
type ListProductsResponse struct {
	Data       []ProductResponse `json:"data"`
	Page       int               `json:"page"`
	Limit      int               `json:"limit"`
	Total      int               `json:"total"`
	TotalPages int               `json:"totalPages"`
}

// HealthResponse is the HTTP response for health check.
type HealthResponse struct {
	Status  string         `json:"status"`
	Details map[string]any `json:"details,omitempty"`
}

// ErrorResponse is the HTTP response for errors.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}
