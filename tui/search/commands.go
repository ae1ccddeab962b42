package search

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/productfinder/productfinder/domain"
)

const requestTimeout = 10 * time.Second

func (m Model) searchCmd(seq int, q string) tea.Cmd {
	catalog := m.catalog
	if catalog == nil {
		return nil
	}
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		products, err := catalog.Search(ctx, q)
		return SearchResultMsg{Seq: seq, Query: q, Products: products, Err: err}
	}
}

func (m Model) fetchSuggestions() tea.Cmd {
	catalog := m.catalog
	if catalog == nil {
		return nil
	}
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		s, err := catalog.Suggestions(ctx)
		return SuggestionsLoadedMsg{Suggestions: s, Err: err}
	}
}

func openFeed(products []domain.Product, index int) tea.Cmd {
	return func() tea.Msg {
		return OpenFeedMsg{Products: products, Index: index}
	}
}

// flattenChips orders the dropdown entries the way they are drawn.
func flattenChips(s domain.Suggestions) []chip {
	var out []chip
	popular := s.PopularTerms
	if len(popular) > popularLimit {
		popular = popular[:popularLimit]
	}
	for i, terms := range [][]string{popular, s.Categories, s.Examples} {
		for _, t := range terms {
			out = append(out, chip{section: i, term: t})
		}
	}
	return out
}
