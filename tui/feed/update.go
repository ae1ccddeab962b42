package feed

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/productfinder/productfinder/app"
	"github.com/productfinder/productfinder/domain"
	"github.com/productfinder/productfinder/infra/logging"
)

// Update handles messages for the feed view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case frameMsg:
		if msg.seq != m.frameSeq {
			return m, nil
		}
		more := m.ctrl.Tick()
		cmd := m.observe()
		if !more {
			m.ticking = false
			return m, tea.Batch(cmd, m.preloadThumbnails())
		}
		return m, tea.Batch(cmd, m.after(m.ctrl.Config().FrameInterval(), msg))

	case settleCheckMsg:
		if msg.seq != m.settleSeq {
			return m, nil
		}
		m.settleArmed = false
		return m, m.observe()

	case ThumbnailLoadedMsg:
		delete(m.thumbLoading, msg.Key)
		if msg.Err != nil {
			logging.Debug("thumbnail unavailable", "key", msg.Key, "err", msg.Err)
		}
		if msg.Art != "" {
			m.thumbs[msg.Key] = msg.Art
		}
		return m, nil

	case ShareResultMsg:
		// Share failures are not surfaced; the native sheet reports its own.
		if msg.Err != nil {
			logging.Debug("share failed", "err", msg.Err)
		}
		if msg.Outcome == app.ShareCopied {
			return m, m.showToast(copiedToast)
		}
		return m, nil

	case LikesSavedMsg:
		if msg.Err != nil {
			logging.Warn("saving liked products failed", "err", msg.Err)
		}
		return m, nil

	case toastExpiredMsg:
		if msg.seq == m.toastSeq {
			m.toast = ""
		}
		return m, nil

	case burstExpiredMsg:
		if msg.seq == m.burstSeq {
			m.burstID = ""
		}
		return m, nil

	case popExpiredMsg:
		if msg.seq == m.popSeq {
			m.popID = ""
		}
		return m, nil
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Back) {
		if m.reviewsOpen {
			m.reviewsOpen = false
			return m, nil
		}
		index := m.ctrl.Active()
		return m, func() tea.Msg { return ExitMsg{Index: index} }
	}

	p, ok := m.current()
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Next):
		return m.step(1)
	case key.Matches(msg, m.keys.Prev):
		return m.step(-1)
	case key.Matches(msg, m.keys.Like):
		return m.toggleLike(p.ID)
	case key.Matches(msg, m.keys.Love):
		return m.love(p.ID)
	case key.Matches(msg, m.keys.Reviews):
		m.reviewsOpen = !m.reviewsOpen
		return m, nil
	case key.Matches(msg, m.keys.Share):
		return m, m.shareCmd(p)
	case key.Matches(msg, m.keys.Open):
		return m, m.openCmd(p)
	case key.Matches(msg, m.keys.Buy), key.Matches(msg, m.keys.Cart):
		return m, m.showToast(checkoutToast)
	}
	return m, nil
}

// step navigates one item, animated like a committed swipe.
func (m Model) step(dir int) (Model, tea.Cmd) {
	if m.reviewsOpen {
		return m, nil
	}
	m.ctrl.Step(dir)
	return m, tea.Batch(m.ensureAnimating(), m.observe(), m.preloadThumbnails())
}

// toggleLike flips the like from the rail button; liking also bursts.
func (m Model) toggleLike(id domain.ProductID) (Model, tea.Cmd) {
	cmds := []tea.Cmd{m.startPop(id)}
	if m.liked.toggle(id) {
		cmds = append(cmds, m.startBurst(id))
	}
	cmds = append(cmds, m.saveLikesCmd())
	return m, tea.Batch(cmds...)
}

// love is the double-tap like: it never unlikes.
func (m Model) love(id domain.ProductID) (Model, tea.Cmd) {
	cmds := []tea.Cmd{m.startBurst(id)}
	if m.liked.add(id) {
		cmds = append(cmds, m.startPop(id), m.saveLikesCmd())
	}
	return m, tea.Batch(cmds...)
}
