package feed

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/productfinder/productfinder/app"
	"github.com/productfinder/productfinder/domain"
	"github.com/productfinder/productfinder/infra/logging"
)

const thumbnailTimeout = 8 * time.Second

// ensureAnimating starts the frame loop if the controller is animating.
func (m *Model) ensureAnimating() tea.Cmd {
	if m.ticking || !m.ctrl.Animating() {
		return nil
	}
	m.ticking = true
	m.frameSeq++
	return m.after(m.ctrl.Config().FrameInterval(), frameMsg{seq: m.frameSeq})
}

// observe feeds the visibility detector and arms a check for a pending
// candidate, since nothing else wakes the model while the feed is still.
func (m *Model) observe() tea.Cmd {
	var cmds []tea.Cmd
	if _, changed := m.ctrl.Observe(m.now()); changed {
		cmds = append(cmds, m.preloadThumbnails())
	}
	if m.ctrl.SettlePending() && !m.settleArmed {
		m.settleArmed = true
		wait := max(m.ctrl.SettleDue().Sub(m.now()), time.Millisecond)
		m.settleSeq++
		cmds = append(cmds, m.after(wait, settleCheckMsg{seq: m.settleSeq}))
	}
	return tea.Batch(cmds...)
}

// preloadThumbnails fetches art for every mounted slot once per size.
func (m *Model) preloadThumbnails() tea.Cmd {
	if m.deps.Thumbnails == nil {
		return nil
	}
	l := m.layout()
	if l.thumbRows < 2 {
		return nil
	}
	var cmds []tea.Cmd
	for _, s := range m.ctrl.Slots() {
		p := m.products[s.Index]
		key := thumbKey(p.Thumbnail, l.thumbCols, l.thumbRows)
		if _, ok := m.thumbs[key]; ok || m.thumbLoading[key] {
			continue
		}
		m.thumbLoading[key] = true
		cmds = append(cmds, fetchThumbnail(m.deps.Thumbnails, key, p.Thumbnail, l.thumbCols, l.thumbRows))
	}
	return tea.Batch(cmds...)
}

func thumbKey(url string, cols, rows int) string {
	return fmt.Sprintf("%dx%d|%s", cols, rows, url)
}

func fetchThumbnail(r app.ThumbnailRenderer, key, url string, cols, rows int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), thumbnailTimeout)
		defer cancel()
		art, err := r.Render(ctx, url, cols, rows)
		return ThumbnailLoadedMsg{Key: key, Art: art, Err: err}
	}
}

// canonicalURL is the product's own page, or the share base, with a
// #product-<id> fragment.
func canonicalURL(p domain.Product, base string) string {
	u := strings.TrimSpace(p.URL)
	if u == "" {
		u = base
	}
	if i := strings.IndexByte(u, '#'); i >= 0 {
		u = u[:i]
	}
	return u + "#product-" + string(p.ID)
}

func (m Model) shareCmd(p domain.Product) tea.Cmd {
	sharer := m.deps.Sharer
	if sharer == nil {
		return nil
	}
	url := canonicalURL(p, m.deps.ShareBaseURL)
	return func() tea.Msg {
		outcome, err := sharer.Share(context.Background(), p.Title, url)
		return ShareResultMsg{Outcome: outcome, Err: err}
	}
}

func (m Model) openCmd(p domain.Product) tea.Cmd {
	opener := m.deps.Opener
	if opener == nil {
		return nil
	}
	url := canonicalURL(p, m.deps.ShareBaseURL)
	return func() tea.Msg {
		if err := opener.Open(url); err != nil {
			logging.Warn("open product failed", "url", url, "err", err)
		}
		return nil
	}
}

func (m Model) saveLikesCmd() tea.Cmd {
	store := m.deps.Likes
	if store == nil {
		return nil
	}
	liked, snap := m.liked, m.liked.snapshot()
	return func() tea.Msg {
		written, err := liked.save(store, snap)
		return LikesSavedMsg{Stale: !written, Err: err}
	}
}

func (m *Model) showToast(text string) tea.Cmd {
	m.toastSeq++
	m.toast = text
	return m.after(toastDuration, toastExpiredMsg{seq: m.toastSeq})
}

func (m *Model) startBurst(id domain.ProductID) tea.Cmd {
	m.burstSeq++
	m.burstID = id
	return m.after(burstDuration, burstExpiredMsg{id: id, seq: m.burstSeq})
}

func (m *Model) startPop(id domain.ProductID) tea.Cmd {
	m.popSeq++
	m.popID = id
	return m.after(popDuration, popExpiredMsg{seq: m.popSeq})
}
