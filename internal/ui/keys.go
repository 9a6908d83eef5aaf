package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the application.
type keyMap struct {
	// Global
	Quit          key.Binding
	Help          key.Binding
	CycleTheme    key.Binding
	NextSection   key.Binding
	PrevSection   key.Binding
	Escape        key.Binding
	Confirm       key.Binding
	ToggleSidebar key.Binding
	Search        key.Binding

	// Section shortcuts
	Home    key.Binding
	Buy     key.Binding
	Sell    key.Binding
	Profile key.Binding

	// Header links
	Cart     key.Binding
	SellMenu key.Binding
	Contact  key.Binding
	Activity key.Binding

	// Navigation
	Up           key.Binding
	Down         key.Binding
	PrevCategory key.Binding
	NextCategory key.Binding

	// Products
	AddToCart key.Binding
	ViewImage key.Binding

	// Cart modal
	Remove key.Binding

	// Image viewer
	ZoomIn      key.Binding
	ZoomOut     key.Binding
	ResetZoom   key.Binding
	RotateLeft  key.Binding
	RotateRight key.Binding
	Sweep       key.Binding

	// Profile forms
	Edit       key.Binding
	SwitchForm key.Binding
	NextField  key.Binding
	PrevField  key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "Quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "Help"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Cycle theme"),
		),
		NextSection: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "Next section"),
		),
		PrevSection: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "Previous section"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "Close"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "Confirm"),
		),
		ToggleSidebar: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "Toggle sidebar"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "Search"),
		),

		Home: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "Home"),
		),
		Buy: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "Buy"),
		),
		Sell: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "Sell"),
		),
		Profile: key.NewBinding(
			key.WithKeys("4"),
			key.WithHelp("4", "Profile"),
		),

		Cart: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "Cart"),
		),
		SellMenu: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "Sell menu"),
		),
		Contact: key.NewBinding(
			key.WithKeys("C"),
			key.WithHelp("C", "Contact"),
		),
		Activity: key.NewBinding(
			key.WithKeys("L"),
			key.WithHelp("L", "Activity log"),
		),

		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/up", "Move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/down", "Move down"),
		),
		PrevCategory: key.NewBinding(
			key.WithKeys("h", "left"),
			key.WithHelp("h/left", "Previous category"),
		),
		NextCategory: key.NewBinding(
			key.WithKeys("l", "right"),
			key.WithHelp("l/right", "Next category"),
		),

		AddToCart: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "Add to cart"),
		),
		ViewImage: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "View image"),
		),

		Remove: key.NewBinding(
			key.WithKeys("x", "delete"),
			key.WithHelp("x", "Remove item"),
		),

		ZoomIn: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "Zoom in"),
		),
		ZoomOut: key.NewBinding(
			key.WithKeys("-", "_"),
			key.WithHelp("-", "Zoom out"),
		),
		ResetZoom: key.NewBinding(
			key.WithKeys("0"),
			key.WithHelp("0", "Reset"),
		),
		RotateLeft: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "Rotate left"),
		),
		RotateRight: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "Rotate right"),
		),
		Sweep: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "360° spin"),
		),

		Edit: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "Edit form"),
		),
		SwitchForm: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "Login/Sign up"),
		),
		NextField: key.NewBinding(
			key.WithKeys("tab", "down"),
			key.WithHelp("tab", "Next field"),
		),
		PrevField: key.NewBinding(
			key.WithKeys("shift+tab", "up"),
			key.WithHelp("shift+tab", "Previous field"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Home, k.Buy, k.Sell, k.Profile, k.NextSection},
		{k.Up, k.Down, k.PrevCategory, k.NextCategory, k.Search, k.ToggleSidebar},
		{k.AddToCart, k.ViewImage, k.Cart, k.Remove},
		{k.ZoomIn, k.ZoomOut, k.ResetZoom, k.RotateLeft, k.RotateRight, k.Sweep},
		{k.SellMenu, k.Contact, k.Activity, k.CycleTheme, k.Help, k.Quit},
	}
}
