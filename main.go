package main

import (
	"context"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/example/product-catalog-demo/domain/product"
	"github.com/example/product-catalog-demo/modules/api"
	"github.com/example/product-catalog-demo/modules/catalog"
	gfshutdown "github.com/gelmium/graceful-shutdown"
	"github.com/go-monolith/mono"
)

const shutdownTimeout = 30 * time.Second

func main() {
	log.Println("=== Product Catalog Demo ===")

	httpPort := getEnvInt("HTTP_PORT", 3000)
	corsOrigins := getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:8080")
	datasetSize := getEnvInt("CATALOG_DATASET_SIZE", 1000)
	defaultLimit := getEnvInt("CATALOG_DEFAULT_LIMIT", 50)
	maxLimit := getEnvInt("CATALOG_MAX_LIMIT", 0)

	// Create mono application
	app, err := mono.NewMonoApplication(
		mono.WithShutdownTimeout(shutdownTimeout),
		mono.WithLogLevel(mono.LogLevelInfo),
		mono.WithLogFormat(mono.LogFormatText),
	)
	if err != nil {
		log.Fatalf("Failed to create application: %v", err)
	}

	catalogModule, err := catalog.NewModule(
		app.Logger(),
		catalog.WithDatasetSize(datasetSize),
		catalog.WithDefaultLimit(defaultLimit),
		catalog.WithMaxLimit(maxLimit),
	)
	if err != nil {
		log.Fatalf("Failed to create catalog module: %v", err)
	}
	apiModule := api.NewModule(httpPort, corsOrigins, app.Logger())

	// Order: core module first, then the driving adapter that depends on it
	if err := app.Register(catalogModule); err != nil {
		log.Fatalf("Failed to register catalog module: %v", err)
	}
	if err := app.Register(apiModule); err != nil {
		log.Fatalf("Failed to register api module: %v", err)
	}

	// Start application
	if err := app.Start(context.Background()); err != nil {
		log.Fatalf("Failed to start application: %v", err)
	}

	printStartupInfo(httpPort, datasetSize)

	// Graceful shutdown
	wait := gfshutdown.GracefulShutdown(
		context.Background(),
		shutdownTimeout,
		map[string]gfshutdown.Operation{
			"mono-app": func(ctx context.Context) error {
				log.Println("Graceful shutdown initiated...")
				return app.Stop(ctx)
			},
		},
	)

	exitCode := <-wait
	log.Printf("Application exited with code: %d", exitCode)
	os.Exit(exitCode)
}

func printStartupInfo(port, datasetSize int) {
	log.Println("")
	log.Println("Application started successfully!")
	log.Println("")
	log.Printf("Catalog: %d generated products across %d categories", datasetSize, len(product.Categories()))
	log.Println("")
	log.Printf("REST API Endpoints (http://localhost:%d):", port)
	log.Println("  GET /products     - Search, sort, filter and paginate products")
	log.Println("  GET /categories   - List product categories")
	log.Println("  GET /api/...      - Same routes under the /api prefix")
	log.Println("  GET /health       - Health check")
	log.Println("")
	log.Println("Query parameters for /products:")
	log.Println("  q         - Case-insensitive search over title, description and category")
	log.Println("  sort      - 'category' to sort by category")
	log.Println("  order     - 'asc' (default) or 'desc'")
	log.Println("  category  - Exact category match")
	log.Println("  page      - Page number (default 1)")
	log.Println("  limit     - Page size")
	log.Println("  total     - Dataset prefix length")
	log.Println("")
	log.Println("Press Ctrl+C to shutdown gracefully")
}

// getEnv returns environment variable or default.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt returns environment variable as int or default.
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
		log.Printf("Warning: invalid int value for %s: %s, using default: %d", key, value, defaultValue)
	}
	return defaultValue
}
