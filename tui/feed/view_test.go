package feed

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"

	"github.com/productfinder/productfinder/domain"
)

func TestView_Empty(t *testing.T) {
	m, _ := newTestModel(t, 0, Deps{})
	if !strings.Contains(ansi.Strip(m.View()), "No products found.") {
		t.Fatalf("expected empty state")
	}
}

func TestView_CardContent(t *testing.T) {
	m, _ := newTestModel(t, 3, Deps{})
	out := ansi.Strip(m.View())

	for _, want := range []string{"Product 1", "$549.00", "incl. taxes", "Buy Now", "+ Add to Cart", "View Details", "Share", "Scroll ↓", "no image"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in view:\n%s", want, out)
		}
	}
	lines := strings.Split(out, "\n")
	if len(lines) != 31 {
		t.Fatalf("expected a full screen of lines, got %d", len(lines))
	}
	for i, line := range lines[:30] {
		if w := ansi.StringWidth(line); w != 80 {
			t.Fatalf("line %d has width %d", i, w)
		}
	}
}

func TestView_LikeCountIncludesViewer(t *testing.T) {
	m, _ := newTestModel(t, 1, Deps{})
	p := m.products[0]
	base := domain.SeededEngagement(p).Likes

	m, _ = m.Update(keyMsg("l"))
	if got := displayedLikes(p, m.IsLiked(p.ID)); got != base+1 {
		t.Fatalf("expected %d likes, got %d", base+1, got)
	}
	if !strings.Contains(ansi.Strip(m.View()), "♥") {
		t.Fatalf("expected a filled heart")
	}
}

func TestView_ScrollHintHiddenAfterLeavingFirst(t *testing.T) {
	m, c := newTestModel(t, 3, Deps{})
	m, _ = m.Update(keyMsg("j"))
	m = settle(t, m, c)
	c.advance(2 * m.ctrl.Config().Debounce)
	m, _ = m.Update(settleCheckMsg{seq: m.settleSeq})
	if strings.Contains(ansi.Strip(m.View()), "Scroll ↓") {
		t.Fatalf("scroll hint belongs to the first item only")
	}
}

func TestView_ReviewsDrawer(t *testing.T) {
	m, _ := newTestModel(t, 1, Deps{})
	m, _ = m.Update(keyMsg("c"))
	out := ansi.Strip(m.View())
	if !strings.Contains(out, "Reviews") || !strings.Contains(out, "Write a review (mock UI)") {
		t.Fatalf("expected the drawer:\n%s", out)
	}
}

func TestThumbnails_PreloadedOncePerSize(t *testing.T) {
	thumbs := &stubThumbs{}
	c := &clock{t: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)}
	m := New(Deps{Thumbnails: thumbs}).WithClock(c.now, immediate)
	m, _ = m.SetSize(80, 31)
	m, cmd := m.SetProducts(makeProducts(3), 0)
	for _, msg := range collect(cmd) {
		m, _ = m.Update(msg)
	}
	if len(thumbs.calls) != 2 {
		t.Fatalf("expected active and next slot fetched, got %v", thumbs.calls)
	}
	if !strings.Contains(ansi.Strip(m.View()), "ART:http://img/1.png") {
		t.Fatalf("expected the rendered thumbnail in the view")
	}

	m, cmd = m.SetSize(80, 31)
	if len(collect(cmd)) != 0 {
		t.Fatalf("expected cached thumbnails to be reused")
	}
}

func TestCanonicalURL(t *testing.T) {
	tests := []struct {
		name string
		p    domain.Product
		base string
		want string
	}{
		{"base", domain.Product{ID: "7"}, "http://localhost:5000", "http://localhost:5000#product-7"},
		{"product url", domain.Product{ID: "7", URL: "https://shop/p/7"}, "http://x", "https://shop/p/7#product-7"},
		{"strips fragment", domain.Product{ID: "a", URL: "https://shop/p#top"}, "", "https://shop/p#product-a"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := canonicalURL(tt.p, tt.base); got != tt.want {
				t.Fatalf("got %q, want %q", got, tt.want)
			}
		})
	}
}
