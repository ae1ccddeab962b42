package feed

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/productfinder/productfinder/tui/swipe"
)

// cellAspect scales columns to rows: a terminal cell is about twice as tall
// as it is wide, and the horizontal guard compares physical distances.
const cellAspect = 0.5

func (m Model) handleMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	if len(m.products) == 0 {
		return m, nil
	}
	now := m.now()

	switch {
	case msg.Button == tea.MouseButtonWheelDown && msg.Action == tea.MouseActionPress:
		return m.wheel(1)
	case msg.Button == tea.MouseButtonWheelUp && msg.Action == tea.MouseActionPress:
		return m.wheel(-1)
	}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		if m.reviewsOpen {
			// The drawer is modal; a press on the dimmed feed closes it.
			if msg.Y < m.drawerTop() {
				m.reviewsOpen = false
			}
			return m, nil
		}
		m.pressed = true
		m.pressX, m.pressY = msg.X, msg.Y
		m.pressAtRest = m.ctrl.State() == swipe.Idle
		m.ctrl.Press(float64(msg.X)*cellAspect, float64(msg.Y), now)
		return m, nil

	case tea.MouseActionMotion:
		if !m.pressed {
			return m, nil
		}
		if m.ctrl.Drag(float64(msg.X)*cellAspect, float64(msg.Y), now) {
			return m, m.observe()
		}
		return m, nil

	case tea.MouseActionRelease:
		if !m.pressed {
			return m, nil
		}
		m.pressed = false
		if m.isClick(msg.X, msg.Y) {
			// A click is not a swipe: settle in place with zero velocity.
			m.ctrl.Cancel()
			settle := tea.Batch(m.ensureAnimating(), m.observe())
			if !m.pressAtRest {
				// Grabbing a moving feed only stops it.
				return m, settle
			}
			var click tea.Cmd
			m, click = m.click(m.pressX, m.pressY)
			return m, tea.Batch(settle, click)
		}
		m.ctrl.Release(float64(msg.X)*cellAspect, float64(msg.Y), now)
		return m, tea.Batch(m.ensureAnimating(), m.observe(), m.preloadThumbnails())
	}
	return m, nil
}

// isClick is a press and release that moved at most one row.
func (m Model) isClick(x, y int) bool {
	dy, dx := y-m.pressY, x-m.pressX
	return dy >= -1 && dy <= 1 && dx >= -2 && dx <= 2
}

func (m Model) wheel(dir int) (Model, tea.Cmd) {
	if m.reviewsOpen || m.pressed {
		return m, nil
	}
	if _, ok := m.ctrl.Wheel(dir, m.now()); !ok {
		return m, nil
	}
	return m, tea.Batch(m.ensureAnimating(), m.observe(), m.preloadThumbnails())
}

// click dispatches a click on the resting active card.
func (m Model) click(x, y int) (Model, tea.Cmd) {
	p, ok := m.current()
	if !ok {
		return m, nil
	}
	switch m.layout().hit(x, y) {
	case hitLike:
		return m.toggleLike(p.ID)
	case hitReviews:
		m.reviewsOpen = true
		return m, nil
	case hitShare:
		return m, m.shareCmd(p)
	case hitBuy, hitCart:
		return m, m.showToast(checkoutToast)
	case hitDetails:
		return m, m.openCmd(p)
	}
	if m.taps.Tap(string(p.ID), m.now()) {
		return m.love(p.ID)
	}
	return m, nil
}
