package main

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/foodtuck/storefront-api/internal/config"
	"github.com/foodtuck/storefront-api/internal/content"
	"github.com/foodtuck/storefront-api/internal/service"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	logger, _ := zap.NewDevelopment()
	defer logger.Sync()

	catalog := service.NewCatalogService(content.NewClient(cfg.Content, logger), logger)
	ctx := context.Background()

	// With a slug argument, fetch one product; otherwise list the catalog
	if len(os.Args) > 1 {
		slug := os.Args[1]
		fmt.Printf("🔍 Fetching product: %s\n\n", slug)

		product, err := catalog.GetProductBySlug(ctx, slug)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to fetch product: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("ID:       %d\n", product.ID)
		fmt.Printf("Slug:     %s\n", product.Slug)
		fmt.Printf("Name:     %s\n", product.Name)
		fmt.Printf("Price:    $%.2f\n", product.Price)
		fmt.Printf("ImageURL: %s\n", product.ImageURL)
		return
	}

	fmt.Println("🔍 Fetching product catalog...")

	products, err := catalog.ListProducts(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to fetch products: %v\n", err)
		os.Exit(1)
	}

	if len(products) == 0 {
		fmt.Println("No products found.")
		return
	}

	fmt.Printf("Found %d products:\n\n", len(products))
	for _, product := range products {
		fmt.Printf("  %-30s $%-8.2f %s\n", product.Name, product.Price, product.Slug)
	}
}
