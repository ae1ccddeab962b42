package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/productfinder/productfinder/domain"
	"github.com/productfinder/productfinder/infra/config"
	"github.com/productfinder/productfinder/tui/feed"
	"github.com/productfinder/productfinder/tui/search"
)

type stubCatalog struct{ products []domain.Product }

func (s stubCatalog) Search(context.Context, string) ([]domain.Product, error) {
	return s.products, nil
}
func (stubCatalog) Suggestions(context.Context) (domain.Suggestions, error) {
	return domain.Suggestions{}, nil
}
func (stubCatalog) ProductNames(context.Context) ([]string, error) { return nil, nil }

func testProducts() []domain.Product {
	return []domain.Product{{ID: "1", Title: "One"}, {ID: "2", Title: "Two"}, {ID: "3", Title: "Three"}}
}

func update(t *testing.T, a App, msg tea.Msg) (App, tea.Cmd) {
	t.Helper()
	m, cmd := a.Update(msg)
	next, ok := m.(App)
	if !ok {
		t.Fatalf("expected App, got %T", m)
	}
	return next, cmd
}

func TestApp_OpenFeedAndExitBackToList(t *testing.T) {
	a := NewApp(Deps{Catalog: stubCatalog{products: testProducts()}})
	a, _ = update(t, a, tea.WindowSizeMsg{Width: 80, Height: 30})

	a, _ = update(t, a, search.OpenFeedMsg{Products: testProducts(), Index: 2})
	if a.active != feedView || a.feed.Active() != 2 {
		t.Fatalf("expected the feed at index 2, active=%v index=%d", a.active, a.feed.Active())
	}

	a, cmd := update(t, a, tea.KeyMsg{Type: tea.KeyEsc})
	exit, ok := cmd().(feed.ExitMsg)
	if !ok {
		t.Fatalf("expected esc in the feed to request exit")
	}
	a, _ = update(t, a, exit)
	if a.active != searchView || a.search.Mode() != search.ListView {
		t.Fatalf("expected to return to the list view, active=%v mode=%v", a.active, a.search.Mode())
	}
}

func TestApp_QuitOnlyWhenSearchBoxBlurred(t *testing.T) {
	a := NewApp(Deps{Catalog: stubCatalog{}})

	a, cmd := update(t, a, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd != nil {
		if _, quit := cmd().(tea.QuitMsg); quit {
			t.Fatalf("typing q into the search box must not quit")
		}
	}

	a, _ = update(t, a, tea.KeyMsg{Type: tea.KeyEsc})
	_, cmd = update(t, a, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, quit := cmd().(tea.QuitMsg); !quit {
		t.Fatalf("expected q to quit once the box is blurred")
	}
}

func TestApp_RestoresAndReportsUIState(t *testing.T) {
	want := config.UIState{Query: "shoes", ViewMode: "scroll"}
	a := NewApp(Deps{Catalog: stubCatalog{}, UIState: want})
	if a.search.Query() != "shoes" || a.search.Mode() != search.ScrollView {
		t.Fatalf("expected restored query and mode")
	}
	if got := a.UIState(); got != want {
		t.Fatalf("unexpected ui state %+v", got)
	}

	_, cmd := update(t, a, tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, quit := cmd().(tea.QuitMsg); !quit {
		t.Fatalf("expected ctrl+c to quit")
	}
}

func TestApp_LikesSharedWithList(t *testing.T) {
	a := NewApp(Deps{Catalog: stubCatalog{}})
	a, _ = update(t, a, search.OpenFeedMsg{Products: testProducts(), Index: 0})
	a, _ = update(t, a, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'l'}})
	if !a.feed.IsLiked("1") {
		t.Fatalf("expected the feed to like the product")
	}
	if a.UIState().ViewMode != "list" {
		t.Fatalf("opening from a message keeps the toggle as it was, got %q", a.UIState().ViewMode)
	}
}
