package server

import (
	"sort"
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/productfinder/productfinder/domain"
)

// descriptionScore ranks description-only hits below every fuzzy hit.
const descriptionScore = -1 << 20

type fieldSource struct {
	products []domain.Product
	field    func(domain.Product) string
}

func (f fieldSource) String(i int) string { return f.field(f.products[i]) }
func (f fieldSource) Len() int            { return len(f.products) }

var rankedFields = []func(domain.Product) string{
	func(p domain.Product) string { return p.Title },
	func(p domain.Product) string { return strings.ReplaceAll(p.Category, "-", " ") },
	func(p domain.Product) string { return p.Brand },
}

// rank returns the products matching q, best first. Title, category and
// brand are fuzzy matched; the description needs a plain substring hit.
func rank(products []domain.Product, q string) []domain.Product {
	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" {
		return []domain.Product{}
	}

	best := map[int]int{}
	for _, field := range rankedFields {
		for _, m := range fuzzy.FindFrom(q, fieldSource{products: products, field: field}) {
			if !tight(m, len([]rune(q))) {
				continue
			}
			if cur, ok := best[m.Index]; !ok || m.Score > cur {
				best[m.Index] = m.Score
			}
		}
	}
	for i, p := range products {
		if _, ok := best[i]; ok {
			continue
		}
		if strings.Contains(strings.ToLower(p.Description), q) {
			best[i] = descriptionScore
		}
	}

	idx := make([]int, 0, len(best))
	for i := range best {
		idx = append(idx, i)
	}
	sort.Slice(idx, func(a, b int) bool {
		if best[idx[a]] != best[idx[b]] {
			return best[idx[a]] > best[idx[b]]
		}
		return idx[a] < idx[b]
	})

	out := make([]domain.Product, 0, len(idx))
	for _, i := range idx {
		out = append(out, products[i])
	}
	return out
}

// tight rejects scattered subsequence matches: the matched characters must
// fall within twice the query length.
func tight(m fuzzy.Match, n int) bool {
	if len(m.MatchedIndexes) == 0 {
		return false
	}
	span := m.MatchedIndexes[len(m.MatchedIndexes)-1] - m.MatchedIndexes[0] + 1
	return span <= 2*n
}
