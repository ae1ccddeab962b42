package feed

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/productfinder/productfinder/app"
	"github.com/productfinder/productfinder/domain"
)

type stubLikes struct {
	initial []domain.ProductID
	saved   [][]domain.ProductID
}

func (s *stubLikes) Load() []domain.ProductID { return s.initial }
func (s *stubLikes) Save(ids []domain.ProductID) error {
	s.saved = append(s.saved, ids)
	return nil
}

type stubSharer struct {
	outcome app.ShareOutcome
	urls    []string
}

func (s *stubSharer) Share(_ context.Context, _ string, url string) (app.ShareOutcome, error) {
	s.urls = append(s.urls, url)
	return s.outcome, nil
}

type stubOpener struct{ urls []string }

func (s *stubOpener) Open(url string) error {
	s.urls = append(s.urls, url)
	return nil
}

type stubThumbs struct{ calls []string }

func (s *stubThumbs) Render(_ context.Context, url string, cols, rows int) (string, error) {
	s.calls = append(s.calls, url)
	return "ART:" + url, nil
}

type clock struct{ t time.Time }

func (c *clock) now() time.Time          { return c.t }
func (c *clock) advance(d time.Duration) { c.t = c.t.Add(d) }

// immediate delivers scheduled messages without waiting; tests decide
// whether to feed them back.
func immediate(_ time.Duration, msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}

func makeProducts(n int) []domain.Product {
	out := make([]domain.Product, 0, n)
	for i := 1; i <= n; i++ {
		price := decimal.NewFromFloat(549)
		out = append(out, domain.Product{
			ID:        domain.ProductID(string(rune('0' + i))),
			Title:     "Product " + string(rune('0'+i)),
			Price:     &price,
			Thumbnail: "http://img/" + string(rune('0'+i)) + ".png",
			Category:  "smartphones",
		})
	}
	return out
}

// newTestModel builds an 80x31 feed (30 rows of cards) resting on item 0.
func newTestModel(t *testing.T, n int, deps Deps) (Model, *clock) {
	t.Helper()
	c := &clock{t: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)}
	m := New(deps).WithClock(c.now, immediate)
	m, _ = m.SetSize(80, 31)
	m, _ = m.SetProducts(makeProducts(n), 0)
	return m, c
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
	if msg == nil {
		return nil
	}
	return []tea.Msg{msg}
}

func find[T any](msgs []tea.Msg) (T, bool) {
	for _, msg := range msgs {
		if v, ok := msg.(T); ok {
			return v, true
		}
	}
	var zero T
	return zero, false
}

func settle(t *testing.T, m Model, c *clock) Model {
	t.Helper()
	for i := 0; m.ctrl.Animating(); i++ {
		if i > 2000 {
			t.Fatalf("feed never settled, state=%v shown=%v", m.ctrl.State(), m.ctrl.Shown())
		}
		c.advance(16 * time.Millisecond)
		m, _ = m.Update(frameMsg{seq: m.frameSeq})
	}
	return m
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func motion(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft}
}

func release(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionRelease, Button: tea.MouseButtonNone}
}

// click presses and releases in place, returning the release command.
func click(m Model, x, y int) (Model, tea.Cmd) {
	m, _ = m.Update(press(x, y))
	return m.Update(release(x, y))
}
