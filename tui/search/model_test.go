package search

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/google/go-cmp/cmp"

	"github.com/productfinder/productfinder/domain"
)

type stubCatalog struct {
	products    []domain.Product
	err         error
	suggestions domain.Suggestions
	queries     []string
}

func (s *stubCatalog) Search(_ context.Context, q string) ([]domain.Product, error) {
	s.queries = append(s.queries, q)
	return s.products, s.err
}

func (s *stubCatalog) Suggestions(context.Context) (domain.Suggestions, error) {
	return s.suggestions, nil
}

func (s *stubCatalog) ProductNames(context.Context) ([]string, error) {
	return nil, nil
}

func products(n int) []domain.Product {
	out := make([]domain.Product, n)
	for i := range out {
		out[i] = domain.Product{ID: domain.ProductID(string(rune('a' + i))), Title: "Item " + string(rune('A'+i))}
	}
	return out
}

func typeText(m Model, s string) Model {
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
	return m
}

// runSearch submits the input and feeds the result back.
func runSearch(t *testing.T, m Model) (Model, tea.Cmd) {
	t.Helper()
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if !m.Loading() {
		t.Fatalf("expected a search in flight")
	}
	var result SearchResultMsg
	found := false
	for _, msg := range collect(cmd) {
		if r, ok := msg.(SearchResultMsg); ok {
			result, found = r, true
		}
	}
	if !found {
		t.Fatalf("expected a search result message")
	}
	return m.Update(result)
}

// collect runs cmd and every batched command, returning the messages.
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, collect(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

func TestSearch_SubmitsTrimmedQueryAndShowsResults(t *testing.T) {
	cat := &stubCatalog{products: products(3)}
	m := New(cat)
	m = typeText(m, "  phone ")

	m, _ = runSearch(t, m)
	if diff := cmp.Diff([]string{"phone"}, cat.queries); diff != "" {
		t.Fatalf("queries mismatch (-want +got):\n%s", diff)
	}
	if m.Loading() || len(m.Products()) != 3 || m.Err() != "" || m.ShowTips() {
		t.Fatalf("unexpected state loading=%v products=%d err=%q tips=%v", m.Loading(), len(m.Products()), m.Err(), m.ShowTips())
	}
	if m.Focused() {
		t.Fatalf("expected the search box to blur after submitting")
	}
	out := ansi.Strip(m.View())
	if !strings.Contains(out, `Found 3 products for "phone"`) || !strings.Contains(out, "Item A") {
		t.Fatalf("expected results summary and cards:\n%s", out)
	}
}

func TestSearch_NoResultsShowsMessageAndTips(t *testing.T) {
	cat := &stubCatalog{}
	m := typeText(New(cat), "zzz")
	m, _ = runSearch(t, m)

	if m.Err() != `No products found for "zzz". Try a different search term.` || !m.ShowTips() {
		t.Fatalf("unexpected no-results state err=%q tips=%v", m.Err(), m.ShowTips())
	}
	if !strings.Contains(ansi.Strip(m.View()), "Search Tips:") {
		t.Fatalf("expected the tips panel")
	}
}

func TestSearch_APIFailureClearsProducts(t *testing.T) {
	cat := &stubCatalog{products: products(2)}
	m := typeText(New(cat), "phone")
	m, _ = runSearch(t, m)

	cat.err = errors.New("connection refused")
	cat.products = nil
	m.input.Focus()
	m, _ = runSearch(t, m)
	if m.Err() != unavailableMessage || len(m.Products()) != 0 {
		t.Fatalf("expected failure banner and no products, err=%q n=%d", m.Err(), len(m.Products()))
	}
	if len(cat.queries) != 2 {
		t.Fatalf("failures must not retry, queries=%v", cat.queries)
	}
}

func TestSearch_EmptyQueryClearsState(t *testing.T) {
	cat := &stubCatalog{}
	m := typeText(New(cat), "zzz")
	m, _ = runSearch(t, m)

	m.input.Focus()
	m.input.SetValue("   ")
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd != nil || m.Loading() || m.Err() != "" || m.ShowTips() || m.Query() != "" {
		t.Fatalf("expected a blank submit to clear state")
	}
	if len(cat.queries) != 1 {
		t.Fatalf("blank queries must not reach the API, got %v", cat.queries)
	}
	if !strings.Contains(ansi.Strip(m.View()), "Welcome to Product Finder!") {
		t.Fatalf("expected the welcome section")
	}
}

func TestSearch_StaleResultIgnored(t *testing.T) {
	m := New(&stubCatalog{})
	m, _ = m.submit("first")
	m, _ = m.submit("second")

	m, _ = m.Update(SearchResultMsg{Seq: m.searchSeq - 1, Query: "first", Products: products(1)})
	if !m.Loading() || len(m.Products()) != 0 {
		t.Fatalf("a superseded result must be dropped")
	}
}

func TestSuggestions_ChipSelectionSearches(t *testing.T) {
	terms := []string{"t1", "t2", "t3", "t4", "t5", "t6", "t7", "t8", "t9"}
	cat := &stubCatalog{suggestions: domain.Suggestions{PopularTerms: terms, Categories: []string{"laptops"}}}
	m := New(cat)
	m, _ = m.Update(SuggestionsLoadedMsg{Suggestions: cat.suggestions})

	out := ansi.Strip(m.View())
	if !strings.Contains(out, "Popular Searches") || !strings.Contains(out, "Categories") || strings.Contains(out, "Try These") {
		t.Fatalf("unexpected dropdown sections:\n%s", out)
	}
	if strings.Contains(out, "t9") {
		t.Fatalf("popular searches are capped at eight")
	}

	for range 9 {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	}
	m, _ = runSearch(t, m)
	if diff := cmp.Diff([]string{"laptops"}, cat.queries); diff != "" {
		t.Fatalf("expected the selected chip to be searched (-want +got):\n%s", diff)
	}
	if m.input.Value() != "laptops" {
		t.Fatalf("expected the chip to fill the box, got %q", m.input.Value())
	}
}

func TestToggle_ScrollViewOpensFeedAtCursor(t *testing.T) {
	cat := &stubCatalog{products: products(5)}
	m := typeText(New(cat), "item")
	m, _ = runSearch(t, m)
	m = m.SetSize(80, 40)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	if m.Cursor() != 1 {
		t.Fatalf("expected cursor to move right, got %d", m.Cursor())
	}
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	open, ok := cmd().(OpenFeedMsg)
	if !ok || open.Index != 1 || len(open.Products) != 5 || m.Mode() != ScrollView {
		t.Fatalf("expected feed to open at 1, got %#v mode=%v", open, m.Mode())
	}

	m = m.ReturnFromFeed(3)
	if m.Mode() != ListView || m.Cursor() != 3 {
		t.Fatalf("expected list view at 3, mode=%v cursor=%d", m.Mode(), m.Cursor())
	}
}

func TestScrollMode_NewResultsOpenFeed(t *testing.T) {
	cat := &stubCatalog{products: products(2)}
	m := typeText(New(cat).WithMode(ScrollView), "item")
	m, cmd := runSearch(t, m)
	if cmd == nil {
		t.Fatalf("expected results to open the feed in scroll view")
	}
	if _, ok := cmd().(OpenFeedMsg); !ok {
		t.Fatalf("expected OpenFeedMsg")
	}
}

func TestGrid_LikedHeartAndCursorMoves(t *testing.T) {
	cat := &stubCatalog{products: products(5)}
	m := New(cat).WithLiked(func(id domain.ProductID) bool { return id == "b" })
	m = m.SetSize(62, 40) // two columns
	m = typeText(m, "item")
	m, _ = runSearch(t, m)

	if !strings.Contains(ansi.Strip(m.View()), "♥") {
		t.Fatalf("expected a heart on the liked card")
	}
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	if m.Cursor() != 2 {
		t.Fatalf("down should move one row of two columns, got %d", m.Cursor())
	}
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	if m.Cursor() != 4 {
		t.Fatalf("expected cursor clamped to the last card, got %d", m.Cursor())
	}
}

func TestWithQuery_RestoresAndSearchesOnInit(t *testing.T) {
	m := New(&stubCatalog{}).WithQuery("shoes")
	if m.Query() != "shoes" || !m.Loading() || m.input.Value() != "shoes" {
		t.Fatalf("expected restored query to be in flight")
	}
	if ParseViewMode("scroll") != ScrollView || ParseViewMode("bogus") != ListView {
		t.Fatalf("unexpected view mode parsing")
	}
}
