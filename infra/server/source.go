package server

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/productfinder/productfinder/domain"
)

// Source supplies the catalog behind the API.
type Source interface {
	Search(ctx context.Context, q string) ([]domain.Product, error)
	Categories(ctx context.Context) ([]string, error)
	All(ctx context.Context) ([]domain.Product, error)
	// Describe is reported by the health endpoint.
	Describe() string
}

//go:embed seed.json
var seedJSON []byte

type seedSource struct {
	products []domain.Product
}

// NewSeedSource serves the catalog embedded in the binary.
func NewSeedSource() (*seedSource, error) {
	var products []domain.Product
	if err := json.Unmarshal(seedJSON, &products); err != nil {
		return nil, fmt.Errorf("parsing embedded catalog: %w", err)
	}
	return &seedSource{products: products}, nil
}

func (s *seedSource) Search(_ context.Context, q string) ([]domain.Product, error) {
	return rank(s.products, q), nil
}

func (s *seedSource) Categories(context.Context) ([]string, error) {
	seen := map[string]bool{}
	var out []string
	for _, p := range s.products {
		c := strings.TrimSpace(p.Category)
		if c == "" || seen[c] {
			continue
		}
		seen[c] = true
		out = append(out, c)
	}
	sort.Strings(out)
	return out, nil
}

func (s *seedSource) All(context.Context) ([]domain.Product, error) {
	return s.products, nil
}

func (s *seedSource) Describe() string {
	return fmt.Sprintf("Backend is running with the embedded catalog (%d products)", len(s.products))
}
