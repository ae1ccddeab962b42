package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/productfinder/productfinder/domain"
	"github.com/productfinder/productfinder/infra/logging"
)

type catalogService struct {
	client *Client
}

// NewService creates a CatalogService backed by the search API.
func NewService(client *Client) *catalogService {
	return &catalogService{client: client}
}

func (s *catalogService) Search(ctx context.Context, q string) ([]domain.Product, error) {
	q = strings.TrimSpace(q)
	if q == "" {
		return nil, domain.ErrEmptyQuery
	}

	data, err := s.client.Get(ctx, "/api/search?q="+url.QueryEscape(q))
	if err != nil {
		return nil, fmt.Errorf("searching %q: %w: %w", q, domain.ErrUpstream, err)
	}

	var products []domain.Product
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, fmt.Errorf("parsing search results: %w", err)
	}
	for i := range products {
		products[i].Title = sanitizeForTerminal(products[i].Title)
		products[i].Category = sanitizeForTerminal(products[i].Category)
		products[i].Brand = sanitizeForTerminal(products[i].Brand)
		products[i].Description = sanitizeForTerminal(products[i].Description)
	}
	if products == nil {
		products = []domain.Product{}
	}
	return products, nil
}

func (s *catalogService) Suggestions(ctx context.Context) (domain.Suggestions, error) {
	data, err := s.client.Get(ctx, "/api/search-suggestions")
	if err != nil {
		return domain.Suggestions{}, fmt.Errorf("fetching suggestions: %w: %w", domain.ErrUpstream, err)
	}

	// Sections decode independently; a malformed one is hidden on its own.
	var sections map[string]json.RawMessage
	if err := json.Unmarshal(data, &sections); err != nil {
		return domain.Suggestions{}, fmt.Errorf("parsing suggestions: %w", err)
	}

	out := domain.Suggestions{
		PopularTerms: termSection(sections, "popular_terms"),
		Examples:     termSection(sections, "examples"),
	}
	var cats []json.RawMessage
	if decodeSection(sections, "categories", &cats) && cats != nil {
		names := make([]string, 0, len(cats))
		for _, raw := range cats {
			if name := CategoryName(raw); name != "" {
				names = append(names, name)
			}
		}
		out.Categories = cleanTerms(names)
	}
	return out, nil
}

func termSection(sections map[string]json.RawMessage, key string) []string {
	var terms []string
	if !decodeSection(sections, key, &terms) {
		return nil
	}
	return cleanTerms(terms)
}

// decodeSection reports whether key was present and decoded into v.
func decodeSection(sections map[string]json.RawMessage, key string, v any) bool {
	raw, ok := sections[key]
	if !ok {
		return false
	}
	if err := json.Unmarshal(raw, v); err != nil {
		logging.Debug("ignoring malformed suggestions section", "key", key, "err", err)
		return false
	}
	return true
}

func (s *catalogService) ProductNames(ctx context.Context) ([]string, error) {
	data, err := s.client.Get(ctx, "/api/products")
	if err != nil {
		return nil, fmt.Errorf("fetching products: %w: %w", domain.ErrUpstream, err)
	}
	var body struct {
		Products []string `json:"products"`
	}
	if err := json.Unmarshal(data, &body); err != nil {
		return nil, fmt.Errorf("parsing products: %w", err)
	}
	return cleanTerms(body.Products), nil
}

// CategoryName extracts a display name from a JSON string or an object
// carrying "slug" and/or "name".
func CategoryName(raw json.RawMessage) string {
	var name string
	if err := json.Unmarshal(raw, &name); err == nil {
		return name
	}
	var obj struct {
		Slug string `json:"slug"`
		Name string `json:"name"`
	}
	if err := json.Unmarshal(raw, &obj); err != nil {
		return ""
	}
	if obj.Slug != "" {
		return obj.Slug
	}
	return obj.Name
}

// cleanTerms keeps nil as nil so a missing section stays hidden.
func cleanTerms(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, 0, len(in))
	for _, t := range in {
		t = strings.TrimSpace(sanitizeForTerminal(t))
		if t != "" {
			out = append(out, t)
		}
	}
	return out
}

// sanitizeForTerminal strips escape sequences and control characters so
// API text cannot drive the terminal.
func sanitizeForTerminal(s string) string {
	s = ansi.Strip(s)
	return strings.Map(func(r rune) rune {
		if r == '\n' || r == '\t' {
			return ' '
		}
		if r < 0x20 || r == 0x7f {
			return -1
		}
		return r
	}, s)
}
