package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"time"

	"golang.org/x/time/rate"

	"github.com/productfinder/productfinder/domain"
	"github.com/productfinder/productfinder/infra/catalog"
)

// DefaultUpstream is the public DummyJSON API.
const DefaultUpstream = "https://dummyjson.com"

type upstreamSource struct {
	client  *catalog.Client
	limiter *rate.Limiter
}

// NewUpstreamSource proxies a DummyJSON-compatible API. Outbound calls are
// limited to five per second with a small burst.
func NewUpstreamSource(client *catalog.Client) *upstreamSource {
	return &upstreamSource{
		client:  client,
		limiter: rate.NewLimiter(rate.Every(200*time.Millisecond), 5),
	}
}

func (s *upstreamSource) get(ctx context.Context, path string) ([]byte, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit: %w", err)
	}
	data, err := s.client.Get(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrUpstream, err)
	}
	return data, nil
}

func (s *upstreamSource) products(ctx context.Context, path string) ([]domain.Product, error) {
	data, err := s.get(ctx, path)
	if err != nil {
		return nil, err
	}
	var body struct {
		Products []domain.Product `json:"products"`
	}
	if err := json.Unmarshal(data, &body); err != nil {
		return nil, fmt.Errorf("%w: parsing products: %w", domain.ErrUpstream, err)
	}
	return body.Products, nil
}

func (s *upstreamSource) Search(ctx context.Context, q string) ([]domain.Product, error) {
	return s.products(ctx, "/products/search?q="+url.QueryEscape(q))
}

func (s *upstreamSource) All(ctx context.Context) ([]domain.Product, error) {
	return s.products(ctx, "/products?limit=0")
}

func (s *upstreamSource) Categories(ctx context.Context) ([]string, error) {
	data, err := s.get(ctx, "/products/categories")
	if err != nil {
		return nil, err
	}
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: parsing categories: %w", domain.ErrUpstream, err)
	}
	out := make([]string, 0, len(raw))
	for _, r := range raw {
		if name := catalog.CategoryName(r); name != "" {
			out = append(out, name)
		}
	}
	return out, nil
}

func (s *upstreamSource) Describe() string {
	return "Backend is running with DummyJSON API integration"
}
