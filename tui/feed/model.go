package feed

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/productfinder/productfinder/app"
	"github.com/productfinder/productfinder/domain"
	"github.com/productfinder/productfinder/tui/common"
	"github.com/productfinder/productfinder/tui/swipe"
)

const (
	burstDuration = 550 * time.Millisecond
	popDuration   = 300 * time.Millisecond
	toastDuration = 1500 * time.Millisecond

	// reservedRows is the help line under the feed.
	reservedRows = 1

	copiedToast   = "Link copied to clipboard"
	checkoutToast = "Checkout isn't available in this demo"
)

// --- Messages ---

// ExitMsg asks the root model to return to the list view.
type ExitMsg struct {
	Index int
}

// ThumbnailLoadedMsg carries a rendered thumbnail. Art is a placeholder
// when Err is set.
type ThumbnailLoadedMsg struct {
	Key string
	Art string
	Err error
}

// ShareResultMsg reports a finished share attempt.
type ShareResultMsg struct {
	Outcome app.ShareOutcome
	Err     error
}

// LikesSavedMsg reports a finished liked-set write.
type LikesSavedMsg struct {
	Stale bool // skipped, a newer snapshot was already written
	Err   error
}

// frameMsg and settleCheckMsg carry the loop sequence that scheduled them;
// SetProducts bumps it so a timer from the previous content is ignored.
type frameMsg struct{ seq int }

type settleCheckMsg struct{ seq int }

type toastExpiredMsg struct{ seq int }

type burstExpiredMsg struct {
	id  domain.ProductID
	seq int
}

type popExpiredMsg struct{ seq int }

// Deps are the services the feed talks to. Any of them may be nil.
type Deps struct {
	Likes        app.LikeStore
	Sharer       app.Sharer
	Opener       app.Opener
	Thumbnails   app.ThumbnailRenderer
	ShareBaseURL string
	Swipe        swipe.Config
	DoubleTap    time.Duration
}

// --- Model ---

// Model is the immersive one-product-per-screen feed.
type Model struct {
	deps     Deps
	keys     common.KeyMap
	products []domain.Product

	ctrl     swipe.Controller
	viewport swipe.Viewport
	width    int
	taps     swipe.TapTracker

	// Pointer press tracked for click detection.
	pressed        bool
	pressX, pressY int
	pressAtRest    bool

	liked *likedSet

	thumbs       map[string]string
	thumbLoading map[string]bool

	ticking     bool // frame loop running
	frameSeq    int
	settleArmed bool // settle check scheduled
	settleSeq   int

	burstID  domain.ProductID
	burstSeq int
	popID    domain.ProductID
	popSeq   int
	toast    string
	toastSeq int

	reviewsOpen bool

	now   func() time.Time
	after func(d time.Duration, msg tea.Msg) tea.Cmd
}

// New creates a feed model. The liked set is loaded once from deps.Likes.
func New(deps Deps) Model {
	if deps.Swipe == (swipe.Config{}) {
		deps.Swipe = swipe.DefaultConfig()
	}
	if deps.DoubleTap <= 0 {
		deps.DoubleTap = 300 * time.Millisecond
	}
	m := Model{
		deps:         deps,
		keys:         common.DefaultKeyMap(),
		viewport:     swipe.NewViewport(24, reservedRows),
		width:        80,
		taps:         swipe.NewTapTracker(deps.DoubleTap),
		liked:        loadLikedSet(deps.Likes),
		thumbs:       map[string]string{},
		thumbLoading: map[string]bool{},
		now:          time.Now,
		after: func(d time.Duration, msg tea.Msg) tea.Cmd {
			return tea.Tick(d, func(time.Time) tea.Msg { return msg })
		},
	}
	m.ctrl = swipe.NewController(deps.Swipe, 0, float64(m.viewport.Height()))
	return m
}

// WithClock replaces the wall clock and timer, for tests.
func (m Model) WithClock(now func() time.Time, after func(time.Duration, tea.Msg) tea.Cmd) Model {
	m.now = now
	m.after = after
	return m
}

// SetProducts replaces the feed content and rests on index.
func (m Model) SetProducts(products []domain.Product, index int) (Model, tea.Cmd) {
	m.products = products
	m.ctrl.Reset(len(products), index)
	m.reviewsOpen = false
	m.pressed = false
	m.ticking = false
	m.frameSeq++
	m.settleArmed = false
	m.settleSeq++
	return m, m.preloadThumbnails()
}

// SetSize applies the terminal size.
func (m Model) SetSize(width, height int) (Model, tea.Cmd) {
	m.width = max(width, 20)
	if m.viewport.Resize(height) {
		m.ctrl.Resize(float64(m.viewport.Height()))
	}
	return m, m.preloadThumbnails()
}

func (m Model) Init() tea.Cmd {
	return m.preloadThumbnails()
}

// Active is the product index the feed rests on.
func (m Model) Active() int { return m.ctrl.Active() }

// Products returns the feed content.
func (m Model) Products() []domain.Product { return m.products }

// IsLiked reports whether id is in the liked set.
func (m Model) IsLiked(id domain.ProductID) bool { return m.liked.has(id) }

// Liked returns the liked ids in the order they were liked.
func (m Model) Liked() []domain.ProductID { return m.liked.ids() }

// Toast is the notice currently shown, if any.
func (m Model) Toast() string { return m.toast }

func (m Model) height() int { return m.viewport.Height() }

func (m Model) current() (domain.Product, bool) {
	if len(m.products) == 0 {
		return domain.Product{}, false
	}
	return m.products[m.ctrl.Active()], true
}
