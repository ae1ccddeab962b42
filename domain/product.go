package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
)

// ProductID identifies a product. The search API emits numeric ids, other
// sources emit strings; both decode into the same value.
type ProductID string

// UnmarshalJSON accepts a JSON string or number.
func (id *ProductID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ProductID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("product id: %w", err)
	}
	*id = ProductID(n.String())
	return nil
}

// MarshalJSON emits integer ids as numbers so round trips keep the upstream shape.
func (id ProductID) MarshalJSON() ([]byte, error) {
	if _, err := strconv.ParseInt(string(id), 10, 64); err == nil {
		return []byte(id), nil
	}
	return json.Marshal(string(id))
}

// Product is a catalog item as returned by the search API.
type Product struct {
	ID          ProductID        `json:"id"`
	Title       string           `json:"title"`
	Price       *decimal.Decimal `json:"price,omitempty"`
	Thumbnail   string           `json:"thumbnail"`
	Category    string           `json:"category,omitempty"`
	Description string           `json:"description,omitempty"`
	Brand       string           `json:"brand,omitempty"`
	Rating      float64          `json:"rating,omitempty"`
	URL         string           `json:"url,omitempty"`
}

// PriceLabel formats the price as "$12.99", or "N/A" when the price is unknown.
func (p Product) PriceLabel() string {
	if p.Price == nil {
		return "N/A"
	}
	return "$" + p.Price.StringFixed(2)
}

// Engagement holds the display-only like and review counters of a product.
type Engagement struct {
	Likes   int
	Reviews int
}

// SeededEngagement derives stable counters from the product id so the same
// product always shows the same numbers.
func SeededEngagement(p Product) Engagement {
	s := string(p.ID)
	if s == "" {
		s = p.Title
	}
	if s == "" {
		s = "id"
	}
	h := 0
	for _, c := range []byte(s) {
		h = (h*31 + int(c)) % 10000
	}
	return Engagement{
		Likes:   120 + h%880,
		Reviews: 7 + (h/7)%193,
	}
}
