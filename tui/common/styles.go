package common

import "github.com/charmbracelet/lipgloss"

const (
	Amber = lipgloss.Color("#F59E0B")
	Slate = lipgloss.Color("#0F172A")
	Muted = lipgloss.Color("#94A3B8")
	Rose  = lipgloss.Color("#F43F5E")
)

var (
	// AppTitleStyle styles the application title. Rendered at call site with content.
	AppTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Padding(1, 2, 0, 1)

	// TaglineStyle styles the app's tagline.
	TaglineStyle = lipgloss.NewStyle().
			Foreground(Muted).
			Italic(true).
			MarginLeft(1)

	// SearchBoxStyle frames the search input.
	SearchBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#334155")).
			Padding(0, 1)

	SearchBoxFocusedStyle = SearchBoxStyle.
				BorderForeground(Amber)

	// SectionTitleStyle styles dropdown and panel headings.
	SectionTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#E2E8F0"))

	ChipStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#CBD5E1")).
			Background(lipgloss.Color("#1E293B")).
			Padding(0, 1)

	ChipSelectedStyle = ChipStyle.
				Foreground(lipgloss.Color("#FFFFFF")).
				Background(Amber).
				Bold(true)

	// CardStyle frames a product card in the list grid.
	CardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#334155")).
			Padding(0, 1)

	// SelectedCardStyle highlights the card under the cursor.
	SelectedCardStyle = CardStyle.
				BorderForeground(Amber)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#F8FAFC"))

	CategoryStyle = lipgloss.NewStyle().
			Foreground(Muted)

	PriceStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Amber)

	HeartStyle = lipgloss.NewStyle().
			Foreground(Rose).
			Bold(true)

	ActionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#334155")).
			Padding(0, 1)

	PrimaryActionStyle = ActionStyle.
				Background(Amber).
				Bold(true)

	ToggleActiveStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#FFFFFF")).
				Background(Amber).
				Bold(true).
				Padding(0, 2)

	ToggleInactiveStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#E2E8F0")).
				Background(lipgloss.Color("#334155")).
				Padding(0, 2)

	// ToastStyle styles short-lived notices.
	ToastStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#111827")).
			Padding(0, 2)

	// DrawerStyle styles the reviews bottom sheet.
	DrawerStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder(), true, true, false, true).
			BorderForeground(lipgloss.Color("#475569")).
			Background(lipgloss.Color("#0B1220")).
			Padding(0, 2)

	// StatusBarStyle styles the bottom status bar.
	StatusBarStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#64748B")).
			Padding(1, 0, 0, 0)

	// ErrorStyle styles error messages.
	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FECACA")).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#7F1D1D")).
			Padding(0, 2)

	// TipsStyle frames the search tips panel.
	TipsStyle = lipgloss.NewStyle().
			Foreground(Muted).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#334155")).
			Padding(0, 2)

	// HighlightStyle emphasises inline values like counts and queries.
	HighlightStyle = lipgloss.NewStyle().
			Foreground(Amber).
			Bold(true)
)
