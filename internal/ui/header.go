package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/chased/internal/cart"
	"github.com/five82/chased/internal/storefront"
)

const logoText = "CHASED"

// renderHeader renders the navigation bar: logo, section tabs, sidebar
// toggle and the cart badge.
func (m *Model) renderHeader() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)
	compact := m.width < LayoutCompactWidth
	sep := bg.Spaces(2)

	parts := []string{bg.Render(logoText, styles.Logo)}

	tabs := make([]string, 0, len(storefront.Sections))
	for i, s := range storefront.Sections {
		label := s.Label()
		if !compact {
			label = fmt.Sprintf("%d %s", i+1, label)
		}
		style := styles.MutedText
		if m.page.Visible(s) {
			style = styles.AccentText.Bold(true).Underline(true)
		}
		tabs = append(tabs, bg.Render(label, style))
	}
	parts = append(parts, bg.Join(tabs, "  "))

	left := bg.Join(parts, "   ")

	right := []string{
		bg.Render(m.page.SidebarIcon(), styles.MutedText),
		m.renderBadge(compact, styles, bg),
	}
	rightStr := strings.Join(right, sep)

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(rightStr) - 2
	if gap < 1 {
		gap = 1
	}
	return styles.Header.Width(m.width).Render(left + bg.Spaces(gap) + rightStr)
}

// renderBadge draws the cart count. Wide layouts show the labelled badge;
// narrow ones show the compact pill.
func (m *Model) renderBadge(compact bool, styles Styles, bg BgStyle) string {
	badge := styles.BadgeStyle(m.pulse)
	if compact {
		return bg.Render("🛒", styles.Text) + bg.Space() +
			badge.Render(fmt.Sprintf("%d", m.cartView.Badge(cart.Secondary)))
	}
	return bg.Render("Cart", styles.Text) + bg.Space() +
		badge.Render(fmt.Sprintf("%d", m.cartView.Badge(cart.Primary)))
}

// renderSearchBar renders the expanded search box under the header.
func (m *Model) renderSearchBar() string {
	styles := m.theme.Styles().WithBackground(m.theme.FocusBg)
	bg := NewBgStyle(m.theme.FocusBg)
	content := bg.Render("Search", styles.AccentText.Bold(true)) + bg.Spaces(2) +
		m.search.View() + bg.Spaces(2) +
		bg.Render("enter go · esc close", styles.FaintText)
	return bg.FillLine(" "+content, m.width)
}

// renderCommandBar renders the footer: a status message when one is up,
// otherwise the key hints for the current context.
func (m *Model) renderCommandBar() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	themeIndicator := bg.Render("T:", styles.FaintText) + bg.Render(m.theme.Name, styles.MutedText)

	var left string
	switch {
	case m.status != "":
		style := styles.SuccessText
		if m.statusErr {
			style = styles.DangerText
		}
		left = bg.Render(m.status, style)
	case m.degraded && m.reloadErr != nil:
		left = bg.Render("catalog reload failing:", styles.WarningText.Bold(true)) + bg.Space() +
			bg.Render(truncate(m.reloadErr.Error(), max(20, m.width/2)), styles.WarningText)
	default:
		left = m.renderHints(styles, bg)
	}

	if avail := m.width - lipgloss.Width(themeIndicator) - 3; lipgloss.Width(left) > avail {
		left = lipgloss.NewStyle().MaxWidth(max(avail, 0)).Render(left)
	}
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(themeIndicator) - 2
	if gap < 1 {
		gap = 1
	}
	return styles.Footer.Width(m.width).Render(left + bg.Spaces(gap) + themeIndicator)
}

func (m *Model) renderHints(styles Styles, bg BgStyle) string {
	var bindings []key.Binding
	switch {
	case m.page.SearchOpen():
		return ""
	case m.editing:
		bindings = []key.Binding{m.keys.NextField, m.keys.Confirm, m.keys.Escape}
	case m.page.Visible(storefront.SectionBuy):
		bindings = []key.Binding{m.keys.NextCategory, m.keys.Down, m.keys.AddToCart, m.keys.ViewImage, m.keys.Cart, m.keys.Search, m.keys.ToggleSidebar, m.keys.Help, m.keys.Quit}
	case m.page.Visible(storefront.SectionProfile):
		bindings = []key.Binding{m.keys.SwitchForm, m.keys.Edit, m.keys.Cart, m.keys.Contact, m.keys.Help, m.keys.Quit}
	default:
		bindings = []key.Binding{m.keys.Buy, m.keys.Search, m.keys.Cart, m.keys.SellMenu, m.keys.Contact, m.keys.Activity, m.keys.Help, m.keys.Quit}
	}

	segments := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		segments = append(segments,
			bg.Render(h.Key, styles.AccentText)+bg.Render(":", styles.FaintText)+bg.Render(h.Desc, styles.MutedText))
	}
	return bg.Join(segments, "  ")
}
