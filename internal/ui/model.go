package ui

import (
	"context"
	"errors"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/five82/chased/internal/account"
	"github.com/five82/chased/internal/cart"
	"github.com/five82/chased/internal/catalog"
	"github.com/five82/chased/internal/config"
	"github.com/five82/chased/internal/prefs"
	"github.com/five82/chased/internal/preview"
	"github.com/five82/chased/internal/schedule"
	"github.com/five82/chased/internal/state"
	"github.com/five82/chased/internal/storefront"
	"github.com/five82/chased/internal/viewer"
)

// modalKind identifies the overlay drawn above the page, if any.
type modalKind int

const (
	modalNone modalKind = iota
	modalCart
	modalSell
	modalViewer
	modalHelp
	modalContact
	modalActivity
)

// sellOptions are the entries of the sell dropdown.
var sellOptions = []string{"List New Item", "My Listings", "Sales Dashboard"}

// Options configures the UI.
type Options struct {
	Context       context.Context
	Store         *state.Store
	Config        config.Config
	Logger        *zap.Logger
	ThemeName     string
	SidebarHidden bool
	PrefsPath     string
	LogPath       string
	Reloads       <-chan struct{} // signalled after the catalog file changes
}

// Model is the root application state for Bubble Tea. It is used through a
// pointer because scheduled callbacks close over it.
type Model struct {
	// Configuration
	ctx       context.Context
	store     *state.Store
	config    config.Config
	logger    *zap.Logger
	prefsPath string
	logPath   string
	reloads   <-chan struct{}

	sched schedule.Scheduler
	ticks *tickScheduler // nil when sched is not tick-driven

	// UI state
	keys   keyMap
	theme  Theme
	width  int
	height int
	ready  bool
	modal  modalKind

	// Data state
	catalog   catalog.Catalog
	degraded  bool
	reloadErr error

	// Page state
	page       *storefront.Page
	search     textinput.Model
	productIdx int

	// Cart state
	cart     *cart.Cart
	cartView *cartDisplay
	cartIdx  int

	// Viewer state
	viewer     *viewer.Viewer
	viewerView *viewerDisplay
	preview    *preview.Renderer

	// Sell dropdown
	sellIdx int

	// Transient feedback
	added     map[string]func() // product key -> stop for its "Added" flash
	pulse     bool
	pulseStop func()
	status    string
	statusErr bool
	statusOff func()

	// Profile forms
	profileTab  account.Tab
	editing     bool
	loginInputs [2]textinput.Model // email, password
	signupInput [4]textinput.Model // name, email, password, confirm
	focusIdx    int

	// Contact modal
	contact      *account.ContactForm
	contactInput [3]textinput.Model // name, email, message
	contactFocus int
	contactNote  string

	// Activity modal
	activity viewport.Model

	markdown *markdownCache
}

var _ tea.Model = (*Model)(nil)

// New creates the root model with timers driven by Bubble Tea ticks.
func New(opts Options) *Model {
	ticks := newTickScheduler()
	m := newModel(opts, ticks)
	m.ticks = ticks
	return m
}

func newModel(opts Options, sched schedule.Scheduler) *Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	store := opts.Store
	if store == nil {
		store = &state.Store{}
		cat, err := catalog.Default()
		store.Update(cat, err)
	}
	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}
	themeName := opts.ThemeName
	if themeName == "" {
		themeName = "Boutique"
	}
	theme := GetTheme(themeName)

	m := &Model{
		ctx:        ctx,
		store:      store,
		config:     opts.Config,
		logger:     logger,
		prefsPath:  prefsPath,
		logPath:    opts.LogPath,
		reloads:    opts.Reloads,
		sched:      sched,
		keys:       DefaultKeyMap(),
		theme:      theme,
		cartView:   &cartDisplay{},
		viewerView: &viewerDisplay{},
		added:      make(map[string]func()),
		markdown:   newMarkdownCache(),
	}

	m.cart = cart.New(
		cart.WithBadges(m.cartView),
		cart.WithList(m.cartView),
		cart.WithCurrency(opts.Config.Currency),
		cart.WithLogger(logger.Named("cart")),
	)
	m.cart.Refresh()

	m.viewer = viewer.New(sched,
		viewer.WithSink(m.viewerView),
		viewer.WithLogger(logger.Named("viewer")),
	)
	m.preview = preview.NewRenderer(
		preview.WithBackground(theme.PreviewBackground()),
		preview.WithLogger(logger.Named("preview")),
	)
	m.contact = account.NewContactForm(sched)

	snap := store.Snapshot()
	m.catalog = snap.Catalog
	m.page = storefront.NewPage(m.catalog.Categories)
	if opts.SidebarHidden {
		m.page.ToggleSidebar()
	}

	m.initInputs()
	m.activity = viewport.New(0, 0)
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(tea.SetWindowTitle("CHASED"), m.waitForReload())
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := m.update(msg)
	if m.ticks != nil {
		if ticks := m.ticks.Drain(); ticks != nil {
			return m, tea.Batch(cmd, ticks)
		}
	}
	return m, cmd
}

func (m *Model) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.handleMouse(msg)
		return nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.resizeActivity()
		return nil

	case timerFiredMsg:
		if m.ticks != nil {
			m.ticks.Fire(msg.id)
		}
		return nil

	case catalogReloadedMsg:
		m.applySnapshot()
		return m.waitForReload()
	}
	return nil
}

// View implements tea.Model.
func (m *Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	return m.renderMain()
}

// Messages

type catalogReloadedMsg struct{}

// Commands

func (m *Model) waitForReload() tea.Cmd {
	if m.reloads == nil {
		return nil
	}
	ch, ctx := m.reloads, m.ctx
	return func() tea.Msg {
		select {
		case _, ok := <-ch:
			if !ok {
				return nil
			}
			return catalogReloadedMsg{}
		case <-ctx.Done():
			return nil
		}
	}
}

// applySnapshot swaps in the store's latest catalog.
func (m *Model) applySnapshot() {
	snap := m.store.Snapshot()
	m.degraded = snap.IsDegraded()
	m.reloadErr = snap.LastError
	if !snap.HasCatalog {
		return
	}
	m.catalog = snap.Catalog
	m.page.SetCategories(m.catalog.Categories)
	m.clampProduct()
	if snap.LastError == nil {
		m.setStatus("Catalog updated", false)
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	m := New(opts)
	progOpts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithMouseCellMotion()}
	if opts.Context != nil {
		progOpts = append(progOpts, tea.WithContext(opts.Context))
	}
	p := tea.NewProgram(m, progOpts...)
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && m.ctx.Err() != nil {
		return nil
	}
	return err
}
