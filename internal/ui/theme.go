package ui

import (
	"image/color"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// Theme defines colors and styles for the UI.
type Theme struct {
	Name string
	Dark bool // selects the glamour style for markdown bodies

	// Base colors
	Background string // Outermost background
	Surface    string // Header, command bar, sidebar
	SurfaceAlt string // Main content panels
	FocusBg    string // Modals and focused inputs

	SelectionBg   string
	SelectionText string

	Border      string
	BorderMuted string
	BorderFocus string

	Text    string
	Muted   string
	Faint   string
	Accent  string
	Success string
	Warning string
	Danger  string
	Info    string

	// Badge is the cart count pill; BadgePulse replaces it briefly after an add.
	Badge      string
	BadgePulse string

	CategoryColors map[string]string
}

// Styles returns Lipgloss styles for this theme.
func (t Theme) Styles() Styles {
	return Styles{
		Background: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Background)),

		Surface: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Text)),

		SurfaceAlt: lipgloss.NewStyle().
			Background(lipgloss.Color(t.SurfaceAlt)).
			Foreground(lipgloss.Color(t.Text)),

		Text: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)),

		MutedText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)),

		FaintText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Faint)),

		AccentText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)),

		SuccessText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Success)).
			Bold(true),

		WarningText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Warning)),

		DangerText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Danger)).
			Bold(true),

		InfoText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Info)),

		Header: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Text)).
			Padding(0, 1),

		Footer: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Muted)).
			Padding(0, 1),

		Logo: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)).
			Bold(true),

		Selected: lipgloss.NewStyle().
			Background(lipgloss.Color(t.SelectionBg)).
			Foreground(lipgloss.Color(t.SelectionText)),

		categoryColors: t.CategoryColors,
		badge:          t.Badge,
		badgePulse:     t.BadgePulse,
		background:     t.Background,
		muted:          t.Muted,
	}
}

// Styles contains pre-built Lipgloss styles for the theme.
type Styles struct {
	Background lipgloss.Style
	Surface    lipgloss.Style
	SurfaceAlt lipgloss.Style

	Text        lipgloss.Style
	MutedText   lipgloss.Style
	FaintText   lipgloss.Style
	AccentText  lipgloss.Style
	SuccessText lipgloss.Style
	WarningText lipgloss.Style
	DangerText  lipgloss.Style
	InfoText    lipgloss.Style

	Header   lipgloss.Style
	Footer   lipgloss.Style
	Logo     lipgloss.Style
	Selected lipgloss.Style

	categoryColors map[string]string
	badge          string
	badgePulse     string
	background     string
	muted          string
}

// CategoryStyle returns the tab style for a category id.
func (s Styles) CategoryStyle(id string) lipgloss.Style {
	c := s.categoryColors[id]
	if c == "" {
		c = s.muted
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(c)).Bold(true)
}

// BadgeStyle returns the cart count pill, brighter while pulsing.
func (s Styles) BadgeStyle(pulse bool) lipgloss.Style {
	c := s.badge
	if pulse {
		c = s.badgePulse
	}
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(s.background)).
		Background(lipgloss.Color(c)).
		Bold(pulse).
		Padding(0, 1)
}

// WithBackground returns a copy of Styles with every text style on bgColor.
func (s Styles) WithBackground(bgColor string) Styles {
	bg := lipgloss.Color(bgColor)

	return Styles{
		Background: s.Background.Background(bg),
		Surface:    s.Surface.Background(bg),
		SurfaceAlt: s.SurfaceAlt.Background(bg),

		Text:        s.Text.Background(bg),
		MutedText:   s.MutedText.Background(bg),
		FaintText:   s.FaintText.Background(bg),
		AccentText:  s.AccentText.Background(bg),
		SuccessText: s.SuccessText.Background(bg),
		WarningText: s.WarningText.Background(bg),
		DangerText:  s.DangerText.Background(bg),
		InfoText:    s.InfoText.Background(bg),

		Header:   s.Header.Background(bg),
		Footer:   s.Footer.Background(bg),
		Logo:     s.Logo.Background(bg),
		Selected: s.Selected,

		categoryColors: s.categoryColors,
		badge:          s.badge,
		badgePulse:     s.badgePulse,
		background:     s.background,
		muted:          s.muted,
	}
}

// PreviewBackground is the canvas colour behind product images.
func (t Theme) PreviewBackground() color.Color {
	return hexColor(t.FocusBg)
}

// Theme definitions

var themes = map[string]Theme{
	"Boutique": boutiqueTheme(),
	"Noir":     noirTheme(),
	"Linen":    linenTheme(),
}

var themeOrder = []string{"Boutique", "Noir", "Linen"}

// GetTheme returns a theme by name.
func GetTheme(name string) Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return boutiqueTheme()
}

// NextTheme returns the next theme name in the cycle.
func NextTheme(current string) string {
	for i, name := range themeOrder {
		if name == current {
			return themeOrder[(i+1)%len(themeOrder)]
		}
	}
	return themeOrder[0]
}

// ThemeNames returns available theme names.
func ThemeNames() []string {
	return themeOrder
}

func boutiqueTheme() Theme {
	// Rosé-on-plum storefront palette
	return Theme{
		Name: "Boutique",
		Dark: true,

		Background: "#1a1420",
		Surface:    "#251c2e",
		SurfaceAlt: "#1f1827",
		FocusBg:    "#2f2439",

		SelectionBg:   "#4a3656",
		SelectionText: "#fbeff5",

		Border:      "#4a3656",
		BorderMuted: "#2f2439",
		BorderFocus: "#f472b6",

		Text:    "#fbeff5",
		Muted:   "#b39bbf",
		Faint:   "#7a6585",
		Accent:  "#f472b6", // pink-400
		Success: "#86efac",
		Warning: "#fcd34d",
		Danger:  "#f87171",
		Info:    "#93c5fd",

		Badge:      "#f472b6",
		BadgePulse: "#fde68a",

		CategoryColors: map[string]string{
			"pants":    "#93c5fd",
			"jewelry":  "#fcd34d",
			"tops":     "#f9a8d4",
			"dresses":  "#c4b5fd",
			"footwear": "#86efac",
		},
	}
}

func noirTheme() Theme {
	// Tailwind CSS zinc palette: https://tailwindcss.com/docs/colors
	return Theme{
		Name: "Noir",
		Dark: true,

		Background: "#09090b", // zinc-950
		Surface:    "#18181b", // zinc-900
		SurfaceAlt: "#111113",
		FocusBg:    "#27272a", // zinc-800

		SelectionBg:   "#3f3f46", // zinc-700
		SelectionText: "#fafafa", // zinc-50

		Border:      "#3f3f46",
		BorderMuted: "#27272a",
		BorderFocus: "#e4e4e7", // zinc-200

		Text:    "#f4f4f5", // zinc-100
		Muted:   "#a1a1aa", // zinc-400
		Faint:   "#71717a", // zinc-500
		Accent:  "#e4e4e7",
		Success: "#4ade80", // green-400
		Warning: "#facc15", // yellow-400
		Danger:  "#ef4444", // red-500
		Info:    "#38bdf8", // sky-400

		Badge:      "#e4e4e7",
		BadgePulse: "#facc15",

		CategoryColors: map[string]string{
			"pants":    "#d4d4d8",
			"jewelry":  "#facc15",
			"tops":     "#d4d4d8",
			"dresses":  "#d4d4d8",
			"footwear": "#d4d4d8",
		},
	}
}

func linenTheme() Theme {
	// Tailwind CSS stone palette, light
	return Theme{
		Name: "Linen",
		Dark: false,

		Background: "#fafaf9", // stone-50
		Surface:    "#f5f5f4", // stone-100
		SurfaceAlt: "#ffffff",
		FocusBg:    "#e7e5e4", // stone-200

		SelectionBg:   "#d6d3d1", // stone-300
		SelectionText: "#1c1917", // stone-900

		Border:      "#d6d3d1",
		BorderMuted: "#e7e5e4",
		BorderFocus: "#b45309", // amber-700

		Text:    "#1c1917",
		Muted:   "#57534e", // stone-600
		Faint:   "#a8a29e", // stone-400
		Accent:  "#b45309",
		Success: "#15803d", // green-700
		Warning: "#a16207", // yellow-700
		Danger:  "#b91c1c", // red-700
		Info:    "#0369a1", // sky-700

		Badge:      "#b45309",
		BadgePulse: "#15803d",

		CategoryColors: map[string]string{
			"pants":    "#0369a1",
			"jewelry":  "#a16207",
			"tops":     "#be185d",
			"dresses":  "#6d28d9",
			"footwear": "#15803d",
		},
	}
}

// hexColor parses "#rrggbb", returning black for anything else.
func hexColor(hex string) color.Color {
	c, err := colorful.Hex(hex)
	if err != nil {
		return color.Black
	}
	return c
}
