// Package storefront tracks which parts of the page are visible: the active
// section, the selected category tab, the sidebar and the search box.
package storefront

import (
	"strings"

	"github.com/five82/chased/internal/catalog"
)

// Section is one of the top-level content sections.
type Section string

const (
	SectionHome    Section = "home"
	SectionBuy     Section = "buy"
	SectionSell    Section = "sell"
	SectionProfile Section = "profile"
)

// Sections lists the navigation order.
var Sections = []Section{SectionHome, SectionBuy, SectionSell, SectionProfile}

// Label returns the navigation caption.
func (s Section) Label() string {
	switch s {
	case SectionHome:
		return "Home"
	case SectionBuy:
		return "Buy"
	case SectionSell:
		return "Sell"
	case SectionProfile:
		return "Profile"
	default:
		return string(s)
	}
}

// Page holds visibility state for one storefront session.
type Page struct {
	section       Section
	category      string
	placeholder   bool
	sidebarHidden bool
	searchOpen    bool
	searchQuery   string
	categories    []catalog.Category
}

// NewPage returns a page on the home section with the category placeholder
// showing and no tab selected.
func NewPage(categories []catalog.Category) *Page {
	return &Page{
		section:     SectionHome,
		placeholder: true,
		categories:  categories,
	}
}

// SetCategories replaces the category table, e.g. after a catalog reload. A
// selected tab that no longer exists is cleared and the placeholder returns.
func (p *Page) SetCategories(categories []catalog.Category) {
	p.categories = categories
	if p.category == "" {
		return
	}
	for _, c := range categories {
		if c.ID == p.category {
			return
		}
	}
	p.category = ""
	p.placeholder = true
}

// Categories returns the tab list in declaration order.
func (p *Page) Categories() []catalog.Category {
	return p.categories
}

// Section returns the visible section.
func (p *Page) Section() Section {
	return p.section
}

// Navigate shows exactly one section. Unknown names hide every section, as a
// link to a missing section would.
func (p *Page) Navigate(s Section) {
	p.section = s
}

// Visible reports whether s is the shown section.
func (p *Page) Visible(s Section) bool {
	return p.section == s
}

// SelectCategory activates a tab and hides the placeholder. An unknown id
// still hides the placeholder but leaves no panel showing.
func (p *Page) SelectCategory(id string) {
	p.placeholder = false
	p.category = ""
	for _, c := range p.categories {
		if c.ID == id {
			p.category = id
			return
		}
	}
}

// Category returns the active tab id, or "" when none is active.
func (p *Page) Category() string {
	return p.category
}

// PlaceholderVisible reports whether the "pick a category" prompt shows.
func (p *Page) PlaceholderVisible() bool {
	return p.placeholder
}

// ToggleSidebar shows or hides the sidebar.
func (p *Page) ToggleSidebar() {
	p.sidebarHidden = !p.sidebarHidden
}

// SidebarHidden reports whether the sidebar is collapsed; the main content
// is expanded while it is.
func (p *Page) SidebarHidden() bool {
	return p.sidebarHidden
}

// SidebarIcon is the toggle glyph: bars while open, a list while hidden.
func (p *Page) SidebarIcon() string {
	if p.sidebarHidden {
		return "☰"
	}
	return "≡"
}

// ToggleSearch expands or collapses the search box.
func (p *Page) ToggleSearch() {
	p.searchOpen = !p.searchOpen
}

// ExpandSearch opens the search box.
func (p *Page) ExpandSearch() {
	p.searchOpen = true
}

// CollapseSearch closes the search box, keeping whatever was typed.
func (p *Page) CollapseSearch() {
	p.searchOpen = false
}

// SearchOpen reports whether the search box is expanded.
func (p *Page) SearchOpen() bool {
	return p.searchOpen
}

// SearchQuery returns the pending search input.
func (p *Page) SearchQuery() string {
	return p.searchQuery
}

// SetSearchQuery records typed input.
func (p *Page) SetSearchQuery(q string) {
	p.searchQuery = q
}

// SubmitSearch routes query to a category. On a match the page moves to the
// buy section, selects the tab, clears the input and collapses the search
// box. Without a match nothing changes and the input is kept.
func (p *Page) SubmitSearch(query string) (string, bool) {
	p.searchQuery = query
	id, ok := catalog.Match(p.categories, strings.ToLower(query))
	if !ok {
		return "", false
	}
	p.Navigate(SectionBuy)
	p.SelectCategory(id)
	p.searchQuery = ""
	p.searchOpen = false
	return id, true
}
