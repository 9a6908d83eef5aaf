package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/chased/internal/account"
	"github.com/five82/chased/internal/storefront"
)

// renderMain renders the full UI: header, optional search bar, the visible
// section or a modal, and the command bar.
func (m *Model) renderMain() string {
	top := m.renderHeader()
	if m.page.SearchOpen() {
		top += "\n" + m.renderSearchBar()
	}
	bodyHeight := max(1, m.height-lipgloss.Height(top)-1)

	var body string
	if m.modal != modalNone {
		body = m.renderModal(bodyHeight)
	} else {
		body = m.renderBody(bodyHeight)
	}
	return top + "\n" + body + "\n" + m.renderCommandBar()
}

// renderBody renders whichever section is visible.
func (m *Model) renderBody(height int) string {
	bg := NewBgStyle(m.theme.SurfaceAlt)
	switch m.page.Section() {
	case storefront.SectionBuy:
		return m.renderBuy(height)
	case storefront.SectionSell:
		return bg.FillBlock(m.renderSell(), m.width, height)
	case storefront.SectionProfile:
		return bg.FillBlock(m.renderProfile(), m.width, height)
	case storefront.SectionHome:
		return bg.FillBlock(m.renderHome(), m.width, height)
	default:
		return bg.FillBlock("", m.width, height)
	}
}

func (m *Model) renderHome() string {
	styles := m.theme.Styles().WithBackground(m.theme.SurfaceAlt)
	bg := NewBgStyle(m.theme.SurfaceAlt)

	lines := []string{
		"",
		"  " + bg.Render("Welcome to "+logoText, styles.Logo),
		"  " + bg.Render("Pre-loved fashion, chased down for you.", styles.MutedText),
		"",
	}
	for _, c := range m.page.Categories() {
		count := len(m.catalog.ByCategory(c.ID))
		lines = append(lines, "  "+
			bg.Render("•", styles.FaintText)+bg.Space()+
			bg.Render(c.Label, styles.CategoryStyle(c.ID))+bg.Space()+
			bg.Render(fmt.Sprintf("(%d)", count), styles.FaintText))
	}
	lines = append(lines, "",
		"  "+bg.Render("Press 2 to shop or / to search.", styles.Text))
	return strings.Join(lines, "\n")
}

func (m *Model) renderBuy(height int) string {
	mainWidth := m.width
	var sidebar string
	if !m.page.SidebarHidden() && m.width >= SidebarWidth*2 {
		mainWidth -= SidebarWidth
		sidebar = m.renderSidebar(height)
	}

	styles := m.theme.Styles().WithBackground(m.theme.SurfaceAlt)
	bg := NewBgStyle(m.theme.SurfaceAlt)

	lines := []string{"", " " + m.renderCategoryTabs(styles, bg), ""}
	switch {
	case m.page.PlaceholderVisible():
		lines = append(lines,
			"  "+bg.Render("Pick a category to start browsing.", styles.Text),
			"  "+bg.Render("Use h/l to switch tabs or / to search, e.g. \"blue jeans\".", styles.MutedText),
		)
	case len(m.products()) == 0:
		lines = append(lines, "  "+bg.Render("Nothing listed here yet.", styles.MutedText))
	default:
		lines = append(lines, m.renderProducts(mainWidth, styles, bg)...)
	}

	main := bg.FillBlock(strings.Join(lines, "\n"), mainWidth, height)
	if sidebar == "" {
		return main
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, sidebar, main)
}

func (m *Model) renderSidebar(height int) string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	lines := []string{"", " " + bg.Render("Categories", styles.FaintText.Bold(true)), ""}
	for _, c := range m.page.Categories() {
		label := truncate(c.Label, SidebarWidth-4)
		if c.ID == m.page.Category() {
			lines = append(lines, " "+styles.Selected.Render(" "+padRight(label, SidebarWidth-4)+" "))
			continue
		}
		lines = append(lines, "  "+bg.Render(label, styles.CategoryStyle(c.ID)))
	}
	return bg.FillBlock(strings.Join(lines, "\n"), SidebarWidth, height)
}

func (m *Model) renderCategoryTabs(styles Styles, bg BgStyle) string {
	tabs := make([]string, 0, len(m.page.Categories()))
	for _, c := range m.page.Categories() {
		style := styles.CategoryStyle(c.ID).Background(lipgloss.Color(m.theme.SurfaceAlt))
		if c.ID == m.page.Category() {
			tabs = append(tabs, style.Underline(true).Render("["+c.Label+"]"))
			continue
		}
		tabs = append(tabs, style.Bold(false).Render(" "+c.Label+" "))
	}
	return bg.Join(tabs, " ")
}

func (m *Model) renderProducts(width int, styles Styles, bg BgStyle) []string {
	products := m.products()
	priceWidth := 10
	buttonWidth := 14
	nameWidth := max(8, width-priceWidth-buttonWidth-8)

	lines := make([]string, 0, len(products))
	for i, p := range products {
		button := bg.Render("[ Add to cart ]", styles.AccentText)
		if m.isAdded(p) {
			button = bg.Render("[ Added ✓ ]", styles.SuccessText)
		}
		name := padRight(truncate(p.Name, nameWidth), nameWidth)
		price := padRight(truncate(p.PriceText, priceWidth), priceWidth)

		if i == m.productIdx {
			row := styles.Selected.Render("› " + name + "  " + price)
			lines = append(lines, "  "+row+bg.Spaces(2)+button)
			continue
		}
		lines = append(lines, "  "+
			bg.Render("  "+name, styles.Text)+bg.Spaces(2)+
			bg.Render(price, styles.InfoText)+bg.Spaces(2)+button)
	}
	return lines
}

func (m *Model) renderSell() string {
	styles := m.theme.Styles().WithBackground(m.theme.SurfaceAlt)
	bg := NewBgStyle(m.theme.SurfaceAlt)
	lines := []string{
		"",
		"  " + bg.Render("Sell with "+logoText, styles.Logo),
		"  " + bg.Render("List your pieces and reach shoppers who love second-hand style.", styles.MutedText),
		"",
	}
	for _, opt := range sellOptions {
		lines = append(lines, "  "+bg.Render("•", styles.FaintText)+bg.Space()+bg.Render(opt, styles.Text))
	}
	lines = append(lines, "", "  "+bg.Render("Press s to open the sell menu.", styles.Text))
	return strings.Join(lines, "\n")
}

func (m *Model) renderProfile() string {
	styles := m.theme.Styles().WithBackground(m.theme.SurfaceAlt)
	bg := NewBgStyle(m.theme.SurfaceAlt)

	loginStyle, signupStyle := styles.AccentText.Bold(true).Underline(true), styles.MutedText
	labels := []string{"Email", "Password"}
	button := "Log in"
	if m.profileTab == account.TabSignup {
		loginStyle, signupStyle = signupStyle, loginStyle
		labels = []string{"Name", "Email", "Password", "Confirm"}
		button = "Create account"
	}

	lines := []string{
		"",
		"  " + bg.Render("Login", loginStyle) + bg.Spaces(3) + bg.Render("Sign up", signupStyle),
		"",
	}
	for i, in := range m.formInputs() {
		labelStyle := styles.MutedText
		if m.editing && i == m.focusIdx {
			labelStyle = styles.AccentText
		}
		lines = append(lines, "  "+bg.Render(padRight(labels[i], 10), labelStyle)+bg.Space()+in.View())
	}

	hint := "i edit · t switch form"
	if m.editing {
		hint = "enter " + strings.ToLower(button) + " · tab next field · esc done"
	}
	lines = append(lines, "",
		"  "+bg.Render("[ "+button+" ]", styles.AccentText.Bold(true)),
		"  "+bg.Render(hint, styles.FaintText),
	)
	return strings.Join(lines, "\n")
}
