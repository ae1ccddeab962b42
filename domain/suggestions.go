package domain

// Suggestions feeds the search box dropdown. Any section may be nil when the
// API omits its key; the UI renders nothing for that section.
type Suggestions struct {
	PopularTerms []string `json:"popular_terms,omitempty"`
	Categories   []string `json:"categories,omitempty"`
	Examples     []string `json:"examples,omitempty"`
}

// Empty reports whether no section carries any entry.
func (s Suggestions) Empty() bool {
	return len(s.PopularTerms) == 0 && len(s.Categories) == 0 && len(s.Examples) == 0
}
