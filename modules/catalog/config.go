package catalog

import (
	"fmt"

	"github.com/example/product-catalog-demo/domain/product"
)

// Config holds catalog module configuration.
type Config struct {
	// DatasetSize is the number of records generated at startup and the
	// upper bound of the "total" query parameter.
	DatasetSize int

	// DefaultLimit is the page size used when "limit" is absent or invalid.
	DefaultLimit int

	// MaxLimit caps the page size. Zero leaves "limit" unbounded.
	MaxLimit int
}

// DefaultConfig returns the configuration of the reference catalog:
// 1000 records, 50 per page, no page size cap.
func DefaultConfig() Config {
	return Config{
		DatasetSize:  product.DefaultDatasetSize,
		DefaultLimit: product.DefaultLimit,
		MaxLimit:     0,
	}
}

// Option is a function that modifies Config.
type Option func(*Config)

// WithDatasetSize sets the number of pre-generated records.
func WithDatasetSize(size int) Option {
	return func(c *Config) {
		c.DatasetSize = size
	}
}

// WithDefaultLimit sets the default page size.
func WithDefaultLimit(limit int) Option {
	return func(c *Config) {
		c.DefaultLimit = limit
	}
}

// WithMaxLimit caps the page size. Zero disables the cap.
func WithMaxLimit(limit int) Option {
	return func(c *Config) {
		c.MaxLimit = limit
	}
}

// Validate checks the configuration for invalid values.
func (c Config) Validate() error {
	if c.DatasetSize <= 0 {
		return fmt.Errorf("dataset size must be positive, got %d", c.DatasetSize)
	}
	if c.DefaultLimit <= 0 {
		return fmt.Errorf("default limit must be positive, got %d", c.DefaultLimit)
	}
	if c.MaxLimit < 0 {
		return fmt.Errorf("max limit must not be negative, got %d", c.MaxLimit)
	}
	if c.MaxLimit > 0 && c.DefaultLimit > c.MaxLimit {
		return fmt.Errorf("default limit %d exceeds max limit %d", c.DefaultLimit, c.MaxLimit)
	}
	return nil
}

// queryDefaults converts the configuration into query coercion rules.
func (c Config) queryDefaults() product.QueryDefaults {
	return product.QueryDefaults{
		Limit:    c.DefaultLimit,
		MaxLimit: c.MaxLimit,
		MaxTotal: c.DatasetSize,
	}
}
