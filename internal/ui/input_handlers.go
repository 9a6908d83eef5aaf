package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/five82/chased/internal/account"
	"github.com/five82/chased/internal/cart"
	"github.com/five82/chased/internal/catalog"
	"github.com/five82/chased/internal/logtail"
	"github.com/five82/chased/internal/prefs"
	"github.com/five82/chased/internal/storefront"
	"github.com/five82/chased/internal/viewer"
)

// handleKey routes a key press to whichever surface owns the keyboard:
// the search box, an open modal, a profile form being edited, or the page.
func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if msg.Type == tea.KeyCtrlC {
		m.shutdown()
		return tea.Quit
	}

	if m.page.SearchOpen() {
		return m.handleSearchKey(msg)
	}

	switch m.modal {
	case modalNone:
	case modalCart:
		return m.handleCartKey(msg)
	case modalSell:
		return m.handleSellKey(msg)
	case modalViewer:
		return m.handleViewerKey(msg)
	case modalContact:
		return m.handleContactKey(msg)
	case modalActivity:
		return m.handleActivityKey(msg)
	default:
		// Help closes on any key
		m.modal = modalNone
		return nil
	}

	if m.editing {
		return m.handleFormKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.shutdown()
		return tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.modal = modalHelp
		return nil
	case key.Matches(msg, m.keys.CycleTheme):
		m.cycleTheme()
		return nil
	case key.Matches(msg, m.keys.Search):
		m.page.ExpandSearch()
		m.search.SetValue(m.page.SearchQuery())
		return m.search.Focus()
	case key.Matches(msg, m.keys.ToggleSidebar):
		m.page.ToggleSidebar()
		m.savePrefs()
		return nil
	case key.Matches(msg, m.keys.Home):
		m.navigate(storefront.SectionHome)
		return nil
	case key.Matches(msg, m.keys.Buy):
		m.navigate(storefront.SectionBuy)
		return nil
	case key.Matches(msg, m.keys.Sell):
		m.navigate(storefront.SectionSell)
		return nil
	case key.Matches(msg, m.keys.Profile):
		m.navigate(storefront.SectionProfile)
		return nil
	case key.Matches(msg, m.keys.NextSection):
		m.cycleSection(1)
		return nil
	case key.Matches(msg, m.keys.PrevSection):
		m.cycleSection(-1)
		return nil
	case key.Matches(msg, m.keys.Cart):
		m.openCart()
		return nil
	case key.Matches(msg, m.keys.SellMenu):
		m.sellIdx = 0
		m.modal = modalSell
		return nil
	case key.Matches(msg, m.keys.Contact):
		m.modal = modalContact
		m.contactNote = ""
		return m.focusContact(0)
	case key.Matches(msg, m.keys.Activity):
		m.openActivity()
		return nil
	}

	switch m.page.Section() {
	case storefront.SectionBuy:
		return m.handleBuyKey(msg)
	case storefront.SectionProfile:
		return m.handleProfileKey(msg)
	}
	return nil
}

// handleMouse maps wheel scrolling to viewer zoom while the viewer is up.
func (m *Model) handleMouse(msg tea.MouseMsg) {
	if m.modal != modalViewer || msg.Action != tea.MouseActionPress {
		return
	}
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.viewer.Wheel(-1)
	case tea.MouseButtonWheelDown:
		m.viewer.Wheel(1)
	}
}

func (m *Model) handleSearchKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyEsc:
		m.page.CollapseSearch()
		m.search.Blur()
		return nil
	case tea.KeyEnter:
		m.submitSearch()
		return nil
	}
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.page.SetSearchQuery(m.search.Value())
	return cmd
}

func (m *Model) submitSearch() {
	query := m.search.Value()
	id, ok := m.page.SubmitSearch(query)
	if !ok {
		m.logger.Debug("search matched no category", zap.String("query", query))
		m.setStatus(fmt.Sprintf("No category matches %q", strings.TrimSpace(query)), true)
		return
	}
	m.search.SetValue("")
	m.search.Blur()
	m.modal = modalNone
	m.productIdx = 0
	m.logger.Debug("search routed", zap.String("query", query), zap.String("category", id))
	m.setStatus("Showing "+m.categoryLabel(id), false)
}

func (m *Model) handleBuyKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.PrevCategory):
		m.cycleCategory(-1)
	case key.Matches(msg, m.keys.NextCategory):
		m.cycleCategory(1)
	case key.Matches(msg, m.keys.Up):
		if m.productIdx > 0 {
			m.productIdx--
		}
	case key.Matches(msg, m.keys.Down):
		if m.productIdx < len(m.products())-1 {
			m.productIdx++
		}
	case key.Matches(msg, m.keys.AddToCart):
		if p, ok := m.selectedProduct(); ok {
			m.addToCart(p)
		}
	case key.Matches(msg, m.keys.ViewImage):
		if p, ok := m.selectedProduct(); ok {
			m.viewer.Open(viewer.Subject{ImageRef: p.ImageRef, Name: p.Name, PriceText: p.PriceText})
			m.modal = modalViewer
		}
	}
	return nil
}

func (m *Model) handleCartKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Escape), key.Matches(msg, m.keys.Cart):
		m.modal = modalNone
	case key.Matches(msg, m.keys.Up):
		if m.cartIdx > 0 {
			m.cartIdx--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cartIdx < m.cart.Count()-1 {
			m.cartIdx++
		}
	case key.Matches(msg, m.keys.Remove):
		if m.cart.RemoveAt(m.cartIdx) && m.cartIdx >= m.cart.Count() {
			m.cartIdx = max(0, m.cart.Count()-1)
		}
	case key.Matches(msg, m.keys.Confirm):
		if m.cart.Count() == 0 {
			m.setStatus("Your cart is empty", true)
			return nil
		}
		m.logger.Info("checkout requested",
			zap.Int("items", m.cart.Count()),
			zap.String("total", m.cart.Total()),
		)
		m.setStatus("Checkout is coming soon. Your cart has been kept.", false)
		m.modal = modalNone
	}
	return nil
}

func (m *Model) handleSellKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Escape), key.Matches(msg, m.keys.SellMenu):
		m.modal = modalNone
	case key.Matches(msg, m.keys.Up):
		if m.sellIdx > 0 {
			m.sellIdx--
		}
	case key.Matches(msg, m.keys.Down):
		if m.sellIdx < len(sellOptions)-1 {
			m.sellIdx++
		}
	case key.Matches(msg, m.keys.Confirm):
		m.setStatus(sellOptions[m.sellIdx]+" is coming soon", false)
		m.modal = modalNone
	}
	return nil
}

func (m *Model) handleViewerKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Escape), key.Matches(msg, m.keys.Quit):
		m.viewer.Close()
		m.modal = modalNone
	case key.Matches(msg, m.keys.ZoomIn):
		m.viewer.ZoomIn()
	case key.Matches(msg, m.keys.ZoomOut):
		m.viewer.ZoomOut()
	case key.Matches(msg, m.keys.ResetZoom):
		m.viewer.Reset()
	case key.Matches(msg, m.keys.RotateLeft):
		m.viewer.RotateLeft()
	case key.Matches(msg, m.keys.RotateRight):
		m.viewer.RotateRight()
	case key.Matches(msg, m.keys.Sweep):
		m.viewer.StartSweep()
	}
	return nil
}

func (m *Model) handleActivityKey(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, m.keys.Escape) || key.Matches(msg, m.keys.Activity) || key.Matches(msg, m.keys.Quit) {
		m.modal = modalNone
		return nil
	}
	var cmd tea.Cmd
	m.activity, cmd = m.activity.Update(msg)
	return cmd
}

func (m *Model) handleContactKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyEsc:
		m.contact.Cancel()
		m.blurContact()
		m.modal = modalNone
		return nil
	case tea.KeyTab, tea.KeyDown:
		return m.focusContact((m.contactFocus + 1) % len(m.contactInput))
	case tea.KeyShiftTab, tea.KeyUp:
		return m.focusContact((m.contactFocus + len(m.contactInput) - 1) % len(m.contactInput))
	case tea.KeyEnter:
		if m.contactFocus < len(m.contactInput)-1 {
			return m.focusContact(m.contactFocus + 1)
		}
		m.submitContact()
		return nil
	}
	var cmd tea.Cmd
	m.contactInput[m.contactFocus], cmd = m.contactInput[m.contactFocus].Update(msg)
	return cmd
}

func (m *Model) submitContact() {
	for _, in := range m.contactInput {
		if strings.TrimSpace(in.Value()) == "" {
			m.contactNote = "Please fill in every field."
			return
		}
	}
	m.contactNote = ""
	m.contact.Submit(func(message string) {
		m.contactNote = message
		for i := range m.contactInput {
			m.contactInput[i].Reset()
		}
		m.logger.Info("contact message sent")
	})
}

func (m *Model) handleProfileKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.SwitchForm):
		if m.profileTab == account.TabLogin {
			m.profileTab = account.TabSignup
		} else {
			m.profileTab = account.TabLogin
		}
		m.focusIdx = 0
	case key.Matches(msg, m.keys.Edit):
		m.editing = true
		return m.focusField(0)
	}
	return nil
}

func (m *Model) handleFormKey(msg tea.KeyMsg) tea.Cmd {
	inputs := m.formInputs()
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.editing = false
		m.blurFields()
		return nil
	case key.Matches(msg, m.keys.NextField):
		return m.focusField((m.focusIdx + 1) % len(inputs))
	case key.Matches(msg, m.keys.PrevField):
		return m.focusField((m.focusIdx + len(inputs) - 1) % len(inputs))
	case key.Matches(msg, m.keys.Confirm):
		m.submitForm()
		return nil
	}
	var cmd tea.Cmd
	*inputs[m.focusIdx], cmd = inputs[m.focusIdx].Update(msg)
	return cmd
}

func (m *Model) submitForm() {
	var (
		text string
		err  error
	)
	if m.profileTab == account.TabLogin {
		text, err = account.Login(m.loginInputs[0].Value(), m.loginInputs[1].Value())
	} else {
		text, err = account.Signup(
			m.signupInput[0].Value(),
			m.signupInput[1].Value(),
			m.signupInput[2].Value(),
			m.signupInput[3].Value(),
		)
	}
	if err != nil {
		m.setStatus(capitalize(err.Error()), true)
		return
	}
	m.setStatus(text, false)
	for _, in := range m.formInputs() {
		in.Reset()
	}
	m.editing = false
	m.blurFields()
}

// formInputs returns the active profile form's fields in tab order.
func (m *Model) formInputs() []*textinput.Model {
	if m.profileTab == account.TabLogin {
		return []*textinput.Model{&m.loginInputs[0], &m.loginInputs[1]}
	}
	return []*textinput.Model{&m.signupInput[0], &m.signupInput[1], &m.signupInput[2], &m.signupInput[3]}
}

func (m *Model) focusField(idx int) tea.Cmd {
	m.blurFields()
	m.focusIdx = idx
	return m.formInputs()[idx].Focus()
}

func (m *Model) blurFields() {
	for _, in := range m.formInputs() {
		in.Blur()
	}
}

func (m *Model) focusContact(idx int) tea.Cmd {
	m.blurContact()
	m.contactFocus = idx
	return m.contactInput[idx].Focus()
}

func (m *Model) blurContact() {
	for i := range m.contactInput {
		m.contactInput[i].Blur()
	}
}

// Page actions

func (m *Model) navigate(s storefront.Section) {
	m.page.Navigate(s)
	m.editing = false
	m.blurFields()
}

func (m *Model) cycleSection(delta int) {
	n := len(storefront.Sections)
	idx := 0
	for i, s := range storefront.Sections {
		if s == m.page.Section() {
			idx = i
			break
		}
	}
	m.navigate(storefront.Sections[(idx+delta+n)%n])
}

func (m *Model) cycleCategory(delta int) {
	cats := m.page.Categories()
	if len(cats) == 0 {
		return
	}
	idx := -1
	for i, c := range cats {
		if c.ID == m.page.Category() {
			idx = i
			break
		}
	}
	switch {
	case idx < 0 && delta < 0:
		idx = len(cats) - 1
	case idx < 0:
		idx = 0
	default:
		idx = (idx + delta + len(cats)) % len(cats)
	}
	m.page.SelectCategory(cats[idx].ID)
	m.productIdx = 0
}

func (m *Model) products() []catalog.Product {
	if m.page.Category() == "" {
		return nil
	}
	return m.catalog.ByCategory(m.page.Category())
}

func (m *Model) selectedProduct() (catalog.Product, bool) {
	products := m.products()
	if m.productIdx < 0 || m.productIdx >= len(products) {
		return catalog.Product{}, false
	}
	return products[m.productIdx], true
}

func (m *Model) clampProduct() {
	if n := len(m.products()); m.productIdx >= n {
		m.productIdx = max(0, n-1)
	}
}

func (m *Model) categoryLabel(id string) string {
	if c, ok := m.catalog.Category(id); ok && c.Label != "" {
		return c.Label
	}
	return id
}

func productKey(p catalog.Product) string {
	return p.Category + "/" + p.Name
}

func (m *Model) addToCart(p catalog.Product) {
	m.cart.Add(cart.Product{Name: p.Name, PriceText: p.PriceText, ImageRef: p.ImageRef})

	k := productKey(p)
	if stop := m.added[k]; stop != nil {
		stop()
	}
	m.added[k] = m.sched.After(AddedFlash, func() {
		delete(m.added, k)
	})

	if m.pulseStop != nil {
		m.pulseStop()
	}
	m.pulse = true
	m.pulseStop = m.sched.After(BadgePulse, func() {
		m.pulse = false
		m.pulseStop = nil
	})
}

// isAdded reports whether p's add button is still flashing.
func (m *Model) isAdded(p catalog.Product) bool {
	_, ok := m.added[productKey(p)]
	return ok
}

func (m *Model) openCart() {
	m.cart.Refresh()
	if m.cartIdx >= m.cart.Count() {
		m.cartIdx = max(0, m.cart.Count()-1)
	}
	m.modal = modalCart
}

func (m *Model) openActivity() {
	m.modal = modalActivity
	m.resizeActivity()
	if m.logPath == "" {
		m.activity.SetContent("Logging is disabled.")
		return
	}
	lines, err := logtail.Read(m.logPath, ActivityLines)
	if err != nil {
		m.activity.SetContent(fmt.Sprintf("Cannot read %s: %v", m.logPath, err))
		return
	}
	entries := logtail.ParseLines(lines)
	if len(entries) == 0 {
		m.activity.SetContent("No activity yet.")
		return
	}
	m.activity.SetContent(m.formatActivity(entries))
	m.activity.GotoBottom()
}

func (m *Model) resizeActivity() {
	w, h := m.modalSize()
	m.activity.Width = max(10, w-4)
	m.activity.Height = max(3, h-4)
}

// setStatus shows a footer message that clears itself after StatusTimeout.
func (m *Model) setStatus(text string, isErr bool) {
	if m.statusOff != nil {
		m.statusOff()
	}
	m.status = text
	m.statusErr = isErr
	m.statusOff = m.sched.After(StatusTimeout, func() {
		m.status = ""
		m.statusErr = false
		m.statusOff = nil
	})
}

func (m *Model) cycleTheme() {
	m.theme = GetTheme(NextTheme(m.theme.Name))
	m.preview.SetBackground(m.theme.PreviewBackground())
	m.savePrefs()
}

func (m *Model) savePrefs() {
	if m.prefsPath == "" {
		return
	}
	p := prefs.Prefs{Theme: m.theme.Name, SidebarHidden: m.page.SidebarHidden()}
	if err := prefs.Save(m.prefsPath, p); err != nil {
		m.logger.Warn("failed to save preferences", zap.String("path", m.prefsPath), zap.Error(err))
	}
}

// shutdown stops timers that would otherwise outlive the program.
func (m *Model) shutdown() {
	m.viewer.Close()
	m.contact.Cancel()
}

func (m *Model) initInputs() {
	m.search = newInput("Search pants, jewelry, tops, dresses…", 64, false)
	m.loginInputs = [2]textinput.Model{
		newInput("you@example.com", 128, false),
		newInput("password", 64, true),
	}
	m.signupInput = [4]textinput.Model{
		newInput("Full name", 64, false),
		newInput("you@example.com", 128, false),
		newInput("password", 64, true),
		newInput("confirm password", 64, true),
	}
	m.contactInput = [3]textinput.Model{
		newInput("Your name", 64, false),
		newInput("you@example.com", 128, false),
		newInput("How can we help?", 500, false),
	}
}

func newInput(placeholder string, limit int, secret bool) textinput.Model {
	in := textinput.New()
	in.Placeholder = placeholder
	in.CharLimit = limit
	in.Prompt = ""
	if secret {
		in.EchoMode = textinput.EchoPassword
		in.EchoCharacter = '•'
	}
	return in
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
