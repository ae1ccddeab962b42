package app

import (
	"context"

	"github.com/productfinder/productfinder/domain"
)

// CatalogService queries the product search API.
type CatalogService interface {
	// Search returns products matching q. An empty slice is a valid "no results" answer.
	Search(ctx context.Context, q string) ([]domain.Product, error)

	// Suggestions returns search box suggestions. Missing sections come back nil.
	Suggestions(ctx context.Context) (domain.Suggestions, error)

	// ProductNames returns the bare product list exposed by /api/products.
	ProductNames(ctx context.Context) ([]string, error)
}
